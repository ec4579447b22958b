package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"labelproof/constants"
	"labelproof/internal/entity"
)

type fakeApps struct {
	created []*entity.Application
}

func (f *fakeApps) GetByID(context.Context, uuid.UUID) (*entity.Application, error) {
	return nil, os.ErrNotExist
}

func (f *fakeApps) List(context.Context, *constants.ApplicationStatus) ([]*entity.Application, error) {
	return f.created, nil
}

func (f *fakeApps) ListIDsByStatus(context.Context, constants.ApplicationStatus) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeApps) UpdateStatus(context.Context, uuid.UUID, constants.ApplicationStatus, string) error {
	return nil
}

func (f *fakeApps) Create(_ context.Context, app *entity.Application) (*entity.Application, error) {
	cp := *app
	cp.ID = uuid.New()
	cp.Status = constants.StatusPending
	f.created = append(f.created, &cp)
	return &cp, nil
}

type fakeImages struct {
	stored []*entity.LabelImage
}

func (f *fakeImages) GetByID(context.Context, uuid.UUID) (*entity.LabelImage, error) {
	return nil, os.ErrNotExist
}

func (f *fakeImages) ListByApplicationID(_ context.Context, applicationID uuid.UUID) ([]*entity.LabelImage, error) {
	var out []*entity.LabelImage
	for _, img := range f.stored {
		if img.ApplicationID == applicationID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImages) Create(_ context.Context, applicationID uuid.UUID, role constants.ImageRole, contentType string, data []byte) (*entity.LabelImage, error) {
	img := &entity.LabelImage{
		ID:            uuid.New(),
		ApplicationID: applicationID,
		Role:          role,
		ContentType:   contentType,
		Data:          data,
		FileSize:      len(data),
	}
	f.stored = append(f.stored, img)
	return img, nil
}

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestIngestManifestPersistsApplicationsAndImages(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "front.png"), pngBytes, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "back.png"), pngBytes, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	path := writeManifest(t, dir, `{
		"applications": [{
			"serial_number": "26-0001",
			"brand_name": "Old Tom",
			"producer_name": "Tom Distilling Co.",
			"beverage_type": "gin",
			"alcohol_content": "45%",
			"images": [
				{"path": "front.png", "role": "front"},
				{"path": "back.png", "role": "back"}
			]
		}]
	}`)

	apps := &fakeApps{}
	imgs := &fakeImages{}
	u := NewUsecase(apps, imgs, slog.New(slog.DiscardHandler))

	results, stats, err := u.IngestManifest(context.Background(), path)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if stats.Succeeded != 1 || stats.Failed != 0 || stats.Images != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(results) != 1 || results[0].Err != "" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if len(apps.created) != 1 {
		t.Fatalf("expected one application, got %d", len(apps.created))
	}
	// synonym resolves to the canonical type
	if apps.created[0].BeverageType != constants.Spirits {
		t.Fatalf("expected spirits, got %s", apps.created[0].BeverageType)
	}
	if len(imgs.stored) != 2 {
		t.Fatalf("expected two images, got %d", len(imgs.stored))
	}
	if imgs.stored[0].ContentType != "image/png" {
		t.Fatalf("expected image/png, got %s", imgs.stored[0].ContentType)
	}
}

func TestIngestManifestIsolatesBadApplications(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "front.png"), pngBytes, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	path := writeManifest(t, dir, `{
		"applications": [
			{
				"serial_number": "26-0002",
				"producer_name": "No Brand Brewing",
				"beverage_type": "beer",
				"images": [{"path": "front.png", "role": "front"}]
			},
			{
				"serial_number": "26-0003",
				"brand_name": "Hop Ledger",
				"producer_name": "No Brand Brewing",
				"beverage_type": "beer",
				"images": [{"path": "front.png", "role": "front"}]
			}
		]
	}`)

	apps := &fakeApps{}
	imgs := &fakeImages{}
	u := NewUsecase(apps, imgs, slog.New(slog.DiscardHandler))

	results, stats, err := u.IngestManifest(context.Background(), path)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if stats.Succeeded != 1 || stats.Failed != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if results[0].Err == "" {
		t.Fatalf("missing brand_name must be reported: %+v", results[0])
	}
	if len(apps.created) != 1 || apps.created[0].SerialNumber != "26-0003" {
		t.Fatalf("only the valid application may be created: %+v", apps.created)
	}
}

func TestIngestManifestRejectsUnknownRoleAndMissingFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "front.png"), pngBytes, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	path := writeManifest(t, dir, `{
		"applications": [
			{
				"serial_number": "26-0004",
				"brand_name": "Vineyard Echo",
				"producer_name": "Echo Cellars",
				"beverage_type": "wine",
				"images": [{"path": "front.png", "role": "bottom"}]
			},
			{
				"serial_number": "26-0005",
				"brand_name": "Vineyard Echo",
				"producer_name": "Echo Cellars",
				"beverage_type": "wine",
				"images": [{"path": "missing.png", "role": "front"}]
			}
		]
	}`)

	apps := &fakeApps{}
	u := NewUsecase(apps, &fakeImages{}, slog.New(slog.DiscardHandler))

	_, stats, err := u.IngestManifest(context.Background(), path)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if stats.Failed != 2 || stats.Succeeded != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(apps.created) != 0 {
		t.Fatalf("no applications may be created: %+v", apps.created)
	}
}
