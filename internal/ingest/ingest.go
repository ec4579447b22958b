package ingest

import (
	"context"

	"github.com/google/uuid"

	"labelproof/constants"
)

// Manifest is the on-disk submission format: one JSON document describing a
// set of applications and the label images that accompany them. Image paths
// are resolved relative to the manifest file.
type Manifest struct {
	Applications []ManifestApplication `json:"applications"`
}

type ManifestApplication struct {
	SerialNumber    string          `json:"serial_number"`
	BrandName       string          `json:"brand_name"`
	FancifulName    string          `json:"fanciful_name,omitempty"`
	ProducerName    string          `json:"producer_name"`
	ClassType       string          `json:"class_type,omitempty"`
	BeverageType    string          `json:"beverage_type"`
	AlcoholContent  string          `json:"alcohol_content,omitempty"`
	NetContents     string          `json:"net_contents,omitempty"`
	GrapeVarietal   string          `json:"grape_varietal,omitempty"`
	Appellation     string          `json:"appellation,omitempty"`
	Vintage         string          `json:"vintage,omitempty"`
	CountryOfOrigin string          `json:"country_of_origin,omitempty"`
	HealthWarning   string          `json:"health_warning,omitempty"`
	Images          []ManifestImage `json:"images"`
}

type ManifestImage struct {
	Path string `json:"path"`
	Role string `json:"role"`
}

// Result is the per-application ingest outcome.
type Result struct {
	SerialNumber  string
	ApplicationID uuid.UUID
	Images        int
	Err           string
}

// Stats summarizes one manifest ingest.
type Stats struct {
	Applications uint32
	Succeeded    uint32
	Failed       uint32
	Images       uint32
}

// Ingestor is the behavior the server and CLI depend on.
type Ingestor interface {
	// IngestManifest loads one manifest file and persists its applications
	// and images. Per-application failures are recorded, not fatal.
	IngestManifest(ctx context.Context, path string) ([]Result, Stats, error)
}

var roleSet = func() map[string]constants.ImageRole {
	m := make(map[string]constants.ImageRole, len(constants.ImageRoles))
	for _, r := range constants.ImageRoles {
		m[string(r)] = r
	}
	return m
}()
