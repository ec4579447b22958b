package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"labelproof/gen/ent"
	entrec "labelproof/gen/ent/extractionrecord"
	"labelproof/internal/entity"
	"labelproof/internal/utils"
	"labelproof/internal/verify"
	"labelproof/internal/vision"
)

type ExtractionRecordRepository interface {
	RecordExtraction(ctx context.Context, imageID, applicationID uuid.UUID, extraction vision.Extraction, result verify.Result, processingTime time.Duration) (*entity.ExtractionRecord, error)
	GetByImageID(ctx context.Context, imageID uuid.UUID) (*entity.ExtractionRecord, error)
	ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entity.ExtractionRecord, error)
}

type extractionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionRecordRepository(entc *ent.Client, log *slog.Logger) ExtractionRecordRepository {
	return &extractionRepo{ent: entc, log: log}
}

// RecordExtraction persists one image's extraction and verification outcome.
// The record is keyed by image id: a re-run deletes and replaces the prior
// row so no stale per-field entries survive across runs.
func (r *extractionRepo) RecordExtraction(ctx context.Context, imageID, applicationID uuid.UUID, extraction vision.Extraction, result verify.Result, processingTime time.Duration) (*entity.ExtractionRecord, error) {
	extractedJSON, err := json.Marshal(extraction.Fields)
	if err != nil {
		return nil, err
	}
	verificationJSON, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	// full replacement, not merge
	if _, err := r.ent.ExtractionRecord.Delete().
		Where(entrec.ImageID(imageID)).
		Exec(ctx); err != nil {
		r.log.Error("failed to clear prior extraction record", "image_id", imageID, "error", err)
		return nil, err
	}

	row, err := r.ent.ExtractionRecord.Create().
		SetImageID(imageID).
		SetApplicationID(applicationID).
		SetExtractedJSON(extractedJSON).
		SetVerificationJSON(verificationJSON).
		SetConfidence(extraction.Confidence()).
		SetProcessingTimeMs(processingTime.Milliseconds()).
		SetModelName(extraction.ModelName).
		Save(ctx)
	if err != nil {
		r.log.Error("failed to record extraction", "image_id", imageID, "error", err)
		return nil, err
	}
	r.log.Info("extraction recorded",
		"image_id", imageID,
		"application_id", applicationID,
		"fields", len(result),
		"confidence", extraction.Confidence(),
		"elapsed_ms", processingTime.Milliseconds(),
	)
	return utils.ToExtractionRecord(row), nil
}

func (r *extractionRepo) GetByImageID(ctx context.Context, imageID uuid.UUID) (*entity.ExtractionRecord, error) {
	row, err := r.ent.ExtractionRecord.Query().
		Where(entrec.ImageID(imageID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToExtractionRecord(row), nil
}

func (r *extractionRepo) ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entity.ExtractionRecord, error) {
	rows, err := r.ent.ExtractionRecord.Query().
		Where(entrec.ApplicationID(applicationID)).
		Order(entrec.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list extraction records", "application_id", applicationID, "error", err)
		return nil, err
	}
	result := make([]*entity.ExtractionRecord, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtractionRecord(row)
	}
	return result, nil
}
