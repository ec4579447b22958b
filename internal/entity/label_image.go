package entity

import (
	"time"

	"github.com/google/uuid"

	"labelproof/constants"
)

// LabelImage represents one uploaded label image for data transfer between layers.
type LabelImage struct {
	ID            uuid.UUID           `json:"id"`
	ApplicationID uuid.UUID           `json:"application_id"`
	Role          constants.ImageRole `json:"role"`
	ContentType   string              `json:"content_type"`
	Data          []byte              `json:"-"`
	FileSize      int                 `json:"file_size"`
	UploadedAt    time.Time           `json:"uploaded_at"`
}
