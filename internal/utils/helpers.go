package utils

import (
	"time"

	"labelproof/constants"
	"labelproof/gen/ent"
	labelspb "labelproof/gen/proto/labels/v1"
	"labelproof/internal/entity"
	"labelproof/internal/verify"
)

func ToApplication(e *ent.Application) *entity.Application {
	return &entity.Application{
		ID:              e.ID,
		SerialNumber:    e.SerialNumber,
		BrandName:       e.BrandName,
		FancifulName:    e.FancifulName,
		ProducerName:    e.ProducerName,
		ClassType:       e.ClassType,
		BeverageType:    constants.BeverageType(e.BeverageType),
		AlcoholContent:  e.AlcoholContent,
		NetContents:     e.NetContents,
		GrapeVarietal:   e.GrapeVarietal,
		Appellation:     e.Appellation,
		Vintage:         e.Vintage,
		CountryOfOrigin: e.CountryOfOrigin,
		HealthWarning:   e.HealthWarning,
		Status:          constants.ApplicationStatus(e.Status),
		ReviewNotes:     e.ReviewNotes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToLabelImage(e *ent.LabelImage) *entity.LabelImage {
	return &entity.LabelImage{
		ID:            e.ID,
		ApplicationID: e.ApplicationID,
		Role:          constants.ImageRole(e.Role),
		ContentType:   e.ContentType,
		Data:          e.Data,
		FileSize:      e.FileSize,
		UploadedAt:    e.UploadedAt,
	}
}

func ToExtractionRecord(e *ent.ExtractionRecord) *entity.ExtractionRecord {
	return &entity.ExtractionRecord{
		ID:               e.ID,
		ImageID:          e.ImageID,
		ApplicationID:    e.ApplicationID,
		ExtractedJSON:    e.ExtractedJSON,
		VerificationJSON: e.VerificationJSON,
		Confidence:       e.Confidence,
		ProcessingTimeMs: e.ProcessingTimeMs,
		ModelName:        e.ModelName,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToPBApplication(a *entity.Application) *labelspb.Application {
	return &labelspb.Application{
		Id:              a.ID.String(),
		SerialNumber:    a.SerialNumber,
		BrandName:       a.BrandName,
		FancifulName:    a.FancifulName,
		ProducerName:    a.ProducerName,
		ClassType:       a.ClassType,
		BeverageType:    string(a.BeverageType),
		AlcoholContent:  a.AlcoholContent,
		NetContents:     a.NetContents,
		CountryOfOrigin: a.CountryOfOrigin,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBFieldResults(result verify.Result) map[string]*labelspb.FieldResult {
	out := make(map[string]*labelspb.FieldResult, len(result))
	for name, fr := range result {
		out[name] = &labelspb.FieldResult{
			Matched:        fr.Matched,
			Category:       string(fr.Category),
			DeclaredValue:  fr.DeclaredValue,
			ExtractedValue: fr.ExtractedValue,
		}
	}
	return out
}
