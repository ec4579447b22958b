package export

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"labelproof/constants"
	"labelproof/internal/entity"
	"labelproof/internal/verify"
	"labelproof/internal/vision"
)

type fakeApps struct {
	apps []*entity.Application
}

func (f *fakeApps) GetByID(context.Context, uuid.UUID) (*entity.Application, error) {
	return nil, os.ErrNotExist
}

func (f *fakeApps) List(_ context.Context, status *constants.ApplicationStatus) ([]*entity.Application, error) {
	if status == nil {
		return f.apps, nil
	}
	var out []*entity.Application
	for _, a := range f.apps {
		if a.Status == *status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApps) ListIDsByStatus(context.Context, constants.ApplicationStatus) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeApps) UpdateStatus(context.Context, uuid.UUID, constants.ApplicationStatus, string) error {
	return nil
}

func (f *fakeApps) Create(_ context.Context, app *entity.Application) (*entity.Application, error) {
	return app, nil
}

type fakeRecords struct {
	byApp map[uuid.UUID][]*entity.ExtractionRecord
}

func (f *fakeRecords) RecordExtraction(context.Context, uuid.UUID, uuid.UUID, vision.Extraction, verify.Result, time.Duration) (*entity.ExtractionRecord, error) {
	return nil, os.ErrInvalid
}

func (f *fakeRecords) GetByImageID(context.Context, uuid.UUID) (*entity.ExtractionRecord, error) {
	return nil, os.ErrNotExist
}

func (f *fakeRecords) ListByApplicationID(_ context.Context, applicationID uuid.UUID) ([]*entity.ExtractionRecord, error) {
	return f.byApp[applicationID], nil
}

func mustVerification(t *testing.T, result verify.Result) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal verification: %v", err)
	}
	return raw
}

func TestExportVerificationXLSX(t *testing.T) {
	appID := uuid.New()
	apps := &fakeApps{apps: []*entity.Application{{
		ID:           appID,
		SerialNumber: "26-0042",
		BrandName:    "Old Tom",
		BeverageType: constants.Spirits,
		Status:       constants.StatusNeedsReview,
		ReviewNotes:  "flagged by verification",
	}}}

	// two images: the back label downgrades alcohol_content to a hard mismatch
	records := &fakeRecords{byApp: map[uuid.UUID][]*entity.ExtractionRecord{
		appID: {
			{
				ID: uuid.New(), ApplicationID: appID,
				VerificationJSON: mustVerification(t, verify.Result{
					constants.FieldBrandName:      {Matched: true, Category: constants.MatchExact},
					constants.FieldAlcoholContent: {Category: constants.MatchSoftMismatch},
				}),
			},
			{
				ID: uuid.New(), ApplicationID: appID,
				VerificationJSON: mustVerification(t, verify.Result{
					constants.FieldAlcoholContent: {Category: constants.MatchHardMismatch},
				}),
			},
		},
	}}

	svc := NewService(apps, records, slog.New(slog.DiscardHandler))
	raw, err := svc.ExportVerificationXLSX(context.Background(), nil)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Verification")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}

	header, row := rows[0], rows[1]
	cell := func(name string) string {
		for i, h := range header {
			if h == name {
				if i < len(row) {
					return row[i]
				}
				return ""
			}
		}
		t.Fatalf("missing column %q", name)
		return ""
	}

	if cell("Serial Number") != "26-0042" {
		t.Fatalf("wrong serial: %q", cell("Serial Number"))
	}
	if cell("Status") != "needs_review" {
		t.Fatalf("wrong status: %q", cell("Status"))
	}
	if cell("Brand Name Match") != "match" {
		t.Fatalf("wrong brand verdict: %q", cell("Brand Name Match"))
	}
	// the worst verdict across images wins
	if cell("Alcohol Content Match") != "hard_mismatch" {
		t.Fatalf("wrong alcohol verdict: %q", cell("Alcohol Content Match"))
	}
	if cell("Vintage Match") != "" {
		t.Fatalf("unverified field must stay blank, got %q", cell("Vintage Match"))
	}
}

func TestExportFiltersByStatus(t *testing.T) {
	apps := &fakeApps{apps: []*entity.Application{
		{ID: uuid.New(), SerialNumber: "26-0001", Status: constants.StatusPending},
		{ID: uuid.New(), SerialNumber: "26-0002", Status: constants.StatusNeedsReview},
	}}
	records := &fakeRecords{}

	svc := NewService(apps, records, slog.New(slog.DiscardHandler))
	needsReview := constants.StatusNeedsReview
	raw, err := svc.ExportVerificationXLSX(context.Background(), &needsReview)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Verification")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one filtered row, got %d", len(rows))
	}
	if rows[1][0] != "26-0002" {
		t.Fatalf("wrong application exported: %q", rows[1][0])
	}
}
