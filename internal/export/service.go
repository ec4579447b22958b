package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"labelproof/constants"
	"labelproof/internal/repository"
	"labelproof/internal/verify"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// verification reports.
type Service struct {
	appsRepo    repository.ApplicationRepository
	recordsRepo repository.ExtractionRecordRepository
	logger      *slog.Logger
}

func NewService(appsRepo repository.ApplicationRepository, recordsRepo repository.ExtractionRecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{appsRepo: appsRepo, recordsRepo: recordsRepo, logger: logger}
}

// ExportVerificationXLSX returns an XLSX workbook (as bytes) with one row per
// application: identity columns, review status, and the worst verification
// verdict per label field across every image on record. A nil status exports
// everything; otherwise only applications in that status.
func (s *Service) ExportVerificationXLSX(ctx context.Context, status *constants.ApplicationStatus) ([]byte, error) {
	start := time.Now()

	apps, err := s.appsRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Verification"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Serial Number",
		"Brand Name",
		"Beverage Type",
		"Status",
		"Images Verified",
		"Review Notes",
	}
	for _, field := range constants.LabelFields {
		headers = append(headers, fieldHeader(field))
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, app := range apps {
		recs, err := s.recordsRepo.ListByApplicationID(ctx, app.ID)
		if err != nil {
			return nil, fmt.Errorf("query extraction records for %s: %w", app.SerialNumber, err)
		}

		// fold every image's per-field verdicts, keeping the worst
		verdicts := make(map[string]constants.MatchCategory)
		for _, rec := range recs {
			if len(rec.VerificationJSON) == 0 {
				continue
			}
			var result verify.Result
			if err := json.Unmarshal(rec.VerificationJSON, &result); err != nil {
				s.logger.Warn("skipping unreadable verification record",
					"application_id", app.ID, "record_id", rec.ID, "error", err)
				continue
			}
			for name, fr := range result {
				if current, ok := verdicts[name]; !ok || categoryRank(fr.Category) > categoryRank(current) {
					verdicts[name] = fr.Category
				}
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, app.SerialNumber)
		write(2, app.BrandName)
		write(3, string(app.BeverageType))
		write(4, string(app.Status))
		write(5, len(recs))
		write(6, truncate(app.ReviewNotes, 140))

		col := 7
		for _, field := range constants.LabelFields {
			if v, ok := verdicts[field]; ok {
				write(col, string(v))
			} else {
				write(col, "")
			}
			col++
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 16) // serial
	_ = f.SetColWidth(sheet, "B", "B", 28) // brand
	_ = f.SetColWidth(sheet, "C", "D", 14) // type, status
	_ = f.SetColWidth(sheet, "F", "F", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"applications", len(apps),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// categoryRank orders verdicts from benign to blocking so folding keeps the
// one a reviewer cares about most.
func categoryRank(c constants.MatchCategory) int {
	switch c {
	case constants.MatchNotApplicable:
		return 0
	case constants.MatchExact:
		return 1
	case constants.MatchSoftMismatch:
		return 2
	case constants.MatchNotFound:
		return 3
	case constants.MatchHardMismatch:
		return 4
	default:
		return 0
	}
}

func fieldHeader(field string) string {
	switch field {
	case constants.FieldBrandName:
		return "Brand Name Match"
	case constants.FieldFancifulName:
		return "Fanciful Name Match"
	case constants.FieldProducerName:
		return "Producer Match"
	case constants.FieldClassType:
		return "Class/Type Match"
	case constants.FieldAlcoholContent:
		return "Alcohol Content Match"
	case constants.FieldNetContents:
		return "Net Contents Match"
	case constants.FieldGrapeVarietal:
		return "Grape Varietal Match"
	case constants.FieldAppellation:
		return "Appellation Match"
	case constants.FieldVintage:
		return "Vintage Match"
	case constants.FieldCountryOfOrigin:
		return "Country of Origin Match"
	case constants.FieldHealthWarning:
		return "Health Warning Match"
	default:
		return field
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
