package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionRecord represents one image's extraction + verification outcome
// for data transfer between layers. Re-verifying an image replaces its record.
type ExtractionRecord struct {
	ID               uuid.UUID       `json:"id"`
	ImageID          uuid.UUID       `json:"image_id"`
	ApplicationID    uuid.UUID       `json:"application_id"`
	ExtractedJSON    json.RawMessage `json:"extracted_json,omitempty"`
	VerificationJSON json.RawMessage `json:"verification_json,omitempty"`
	Confidence       float32         `json:"confidence"`
	ProcessingTimeMs int64           `json:"processing_time_ms"`
	ModelName        string          `json:"model_name,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
