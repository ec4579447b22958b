package batch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"labelproof/constants"
	"labelproof/internal/entity"
	"labelproof/internal/verify"
	"labelproof/internal/vision"
)

// Narrow views of the persistence layer, satisfied by internal/repository.
// The coordinator only ever reads applications and images, writes extraction
// outcomes, and promotes the workflow status.

type ApplicationStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ApplicationStatus, notes string) error
}

type ImageStore interface {
	ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entity.LabelImage, error)
}

type ResultStore interface {
	RecordExtraction(ctx context.Context, imageID, applicationID uuid.UUID, extraction vision.Extraction, result verify.Result, processingTime time.Duration) (*entity.ExtractionRecord, error)
}
