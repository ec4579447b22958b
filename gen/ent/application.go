// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"labelproof/gen/ent/application"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Application is the model entity for the Application schema.
type Application struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SerialNumber holds the value of the "serial_number" field.
	SerialNumber string `json:"serial_number,omitempty"`
	// BrandName holds the value of the "brand_name" field.
	BrandName string `json:"brand_name,omitempty"`
	// FancifulName holds the value of the "fanciful_name" field.
	FancifulName string `json:"fanciful_name,omitempty"`
	// ProducerName holds the value of the "producer_name" field.
	ProducerName string `json:"producer_name,omitempty"`
	// ClassType holds the value of the "class_type" field.
	ClassType string `json:"class_type,omitempty"`
	// BeverageType holds the value of the "beverage_type" field.
	BeverageType application.BeverageType `json:"beverage_type,omitempty"`
	// AlcoholContent holds the value of the "alcohol_content" field.
	AlcoholContent string `json:"alcohol_content,omitempty"`
	// NetContents holds the value of the "net_contents" field.
	NetContents string `json:"net_contents,omitempty"`
	// GrapeVarietal holds the value of the "grape_varietal" field.
	GrapeVarietal string `json:"grape_varietal,omitempty"`
	// Appellation holds the value of the "appellation" field.
	Appellation string `json:"appellation,omitempty"`
	// Vintage holds the value of the "vintage" field.
	Vintage string `json:"vintage,omitempty"`
	// CountryOfOrigin holds the value of the "country_of_origin" field.
	CountryOfOrigin string `json:"country_of_origin,omitempty"`
	// HealthWarning holds the value of the "health_warning" field.
	HealthWarning string `json:"health_warning,omitempty"`
	// Status holds the value of the "status" field.
	Status application.Status `json:"status,omitempty"`
	// ReviewNotes holds the value of the "review_notes" field.
	ReviewNotes string `json:"review_notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicationQuery when eager-loading is set.
	Edges        ApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicationEdges holds the relations/edges for other nodes in the graph.
type ApplicationEdges struct {
	// Images holds the value of the images edge.
	Images []*LabelImage `json:"images,omitempty"`
	// Extractions holds the value of the extractions edge.
	Extractions []*ExtractionRecord `json:"extractions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ImagesOrErr returns the Images value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationEdges) ImagesOrErr() ([]*LabelImage, error) {
	if e.loadedTypes[0] {
		return e.Images, nil
	}
	return nil, &NotLoadedError{edge: "images"}
}

// ExtractionsOrErr returns the Extractions value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationEdges) ExtractionsOrErr() ([]*ExtractionRecord, error) {
	if e.loadedTypes[1] {
		return e.Extractions, nil
	}
	return nil, &NotLoadedError{edge: "extractions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Application) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case application.FieldSerialNumber, application.FieldBrandName, application.FieldFancifulName, application.FieldProducerName, application.FieldClassType, application.FieldBeverageType, application.FieldAlcoholContent, application.FieldNetContents, application.FieldGrapeVarietal, application.FieldAppellation, application.FieldVintage, application.FieldCountryOfOrigin, application.FieldHealthWarning, application.FieldStatus, application.FieldReviewNotes:
			values[i] = new(sql.NullString)
		case application.FieldCreatedAt, application.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case application.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Application fields.
func (_m *Application) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case application.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case application.FieldSerialNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field serial_number", values[i])
			} else if value.Valid {
				_m.SerialNumber = value.String
			}
		case application.FieldBrandName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand_name", values[i])
			} else if value.Valid {
				_m.BrandName = value.String
			}
		case application.FieldFancifulName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fanciful_name", values[i])
			} else if value.Valid {
				_m.FancifulName = value.String
			}
		case application.FieldProducerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field producer_name", values[i])
			} else if value.Valid {
				_m.ProducerName = value.String
			}
		case application.FieldClassType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class_type", values[i])
			} else if value.Valid {
				_m.ClassType = value.String
			}
		case application.FieldBeverageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field beverage_type", values[i])
			} else if value.Valid {
				_m.BeverageType = application.BeverageType(value.String)
			}
		case application.FieldAlcoholContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alcohol_content", values[i])
			} else if value.Valid {
				_m.AlcoholContent = value.String
			}
		case application.FieldNetContents:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field net_contents", values[i])
			} else if value.Valid {
				_m.NetContents = value.String
			}
		case application.FieldGrapeVarietal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grape_varietal", values[i])
			} else if value.Valid {
				_m.GrapeVarietal = value.String
			}
		case application.FieldAppellation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field appellation", values[i])
			} else if value.Valid {
				_m.Appellation = value.String
			}
		case application.FieldVintage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vintage", values[i])
			} else if value.Valid {
				_m.Vintage = value.String
			}
		case application.FieldCountryOfOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_of_origin", values[i])
			} else if value.Valid {
				_m.CountryOfOrigin = value.String
			}
		case application.FieldHealthWarning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field health_warning", values[i])
			} else if value.Valid {
				_m.HealthWarning = value.String
			}
		case application.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = application.Status(value.String)
			}
		case application.FieldReviewNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_notes", values[i])
			} else if value.Valid {
				_m.ReviewNotes = value.String
			}
		case application.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case application.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Application.
// This includes values selected through modifiers, order, etc.
func (_m *Application) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryImages queries the "images" edge of the Application entity.
func (_m *Application) QueryImages() *LabelImageQuery {
	return NewApplicationClient(_m.config).QueryImages(_m)
}

// QueryExtractions queries the "extractions" edge of the Application entity.
func (_m *Application) QueryExtractions() *ExtractionRecordQuery {
	return NewApplicationClient(_m.config).QueryExtractions(_m)
}

// Update returns a builder for updating this Application.
// Note that you need to call Application.Unwrap() before calling this method if this Application
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Application) Update() *ApplicationUpdateOne {
	return NewApplicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Application entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Application) Unwrap() *Application {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Application is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Application) String() string {
	var builder strings.Builder
	builder.WriteString("Application(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("serial_number=")
	builder.WriteString(_m.SerialNumber)
	builder.WriteString(", ")
	builder.WriteString("brand_name=")
	builder.WriteString(_m.BrandName)
	builder.WriteString(", ")
	builder.WriteString("fanciful_name=")
	builder.WriteString(_m.FancifulName)
	builder.WriteString(", ")
	builder.WriteString("producer_name=")
	builder.WriteString(_m.ProducerName)
	builder.WriteString(", ")
	builder.WriteString("class_type=")
	builder.WriteString(_m.ClassType)
	builder.WriteString(", ")
	builder.WriteString("beverage_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.BeverageType))
	builder.WriteString(", ")
	builder.WriteString("alcohol_content=")
	builder.WriteString(_m.AlcoholContent)
	builder.WriteString(", ")
	builder.WriteString("net_contents=")
	builder.WriteString(_m.NetContents)
	builder.WriteString(", ")
	builder.WriteString("grape_varietal=")
	builder.WriteString(_m.GrapeVarietal)
	builder.WriteString(", ")
	builder.WriteString("appellation=")
	builder.WriteString(_m.Appellation)
	builder.WriteString(", ")
	builder.WriteString("vintage=")
	builder.WriteString(_m.Vintage)
	builder.WriteString(", ")
	builder.WriteString("country_of_origin=")
	builder.WriteString(_m.CountryOfOrigin)
	builder.WriteString(", ")
	builder.WriteString("health_warning=")
	builder.WriteString(_m.HealthWarning)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("review_notes=")
	builder.WriteString(_m.ReviewNotes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Applications is a parsable slice of Application.
type Applications []*Application
