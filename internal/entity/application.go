package entity

import (
	"time"

	"github.com/google/uuid"

	"labelproof/constants"
)

// Application represents a label application for data transfer between layers.
type Application struct {
	ID              uuid.UUID                   `json:"id"`
	SerialNumber    string                      `json:"serial_number"`
	BrandName       string                      `json:"brand_name"`
	FancifulName    string                      `json:"fanciful_name,omitempty"`
	ProducerName    string                      `json:"producer_name"`
	ClassType       string                      `json:"class_type,omitempty"`
	BeverageType    constants.BeverageType      `json:"beverage_type"`
	AlcoholContent  string                      `json:"alcohol_content,omitempty"`
	NetContents     string                      `json:"net_contents,omitempty"`
	GrapeVarietal   string                      `json:"grape_varietal,omitempty"`
	Appellation     string                      `json:"appellation,omitempty"`
	Vintage         string                      `json:"vintage,omitempty"`
	CountryOfOrigin string                      `json:"country_of_origin,omitempty"`
	HealthWarning   string                      `json:"health_warning,omitempty"`
	Status          constants.ApplicationStatus `json:"status"`
	ReviewNotes     string                      `json:"review_notes,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// DeclaredFields returns the applicant-asserted name→value mapping the
// verifier consumes. Empty values stay in the map; the verifier skips them.
func (a *Application) DeclaredFields() map[string]string {
	return map[string]string{
		constants.FieldBrandName:       a.BrandName,
		constants.FieldFancifulName:    a.FancifulName,
		constants.FieldProducerName:    a.ProducerName,
		constants.FieldClassType:       a.ClassType,
		constants.FieldAlcoholContent:  a.AlcoholContent,
		constants.FieldNetContents:     a.NetContents,
		constants.FieldGrapeVarietal:   a.GrapeVarietal,
		constants.FieldAppellation:     a.Appellation,
		constants.FieldVintage:         a.Vintage,
		constants.FieldCountryOfOrigin: a.CountryOfOrigin,
		constants.FieldHealthWarning:   a.HealthWarning,
	}
}
