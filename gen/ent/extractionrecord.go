// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"labelproof/gen/ent/application"
	"labelproof/gen/ent/extractionrecord"
	"labelproof/gen/ent/labelimage"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ExtractionRecord is the model entity for the ExtractionRecord schema.
type ExtractionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ImageID holds the value of the "image_id" field.
	ImageID uuid.UUID `json:"image_id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID uuid.UUID `json:"application_id,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON []uint8 `json:"extracted_json,omitempty"`
	// VerificationJSON holds the value of the "verification_json" field.
	VerificationJSON []uint8 `json:"verification_json,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// ProcessingTimeMs holds the value of the "processing_time_ms" field.
	ProcessingTimeMs int64 `json:"processing_time_ms,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionRecordQuery when eager-loading is set.
	Edges        ExtractionRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionRecordEdges holds the relations/edges for other nodes in the graph.
type ExtractionRecordEdges struct {
	// Image holds the value of the image edge.
	Image *LabelImage `json:"image,omitempty"`
	// Application holds the value of the application edge.
	Application *Application `json:"application,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ImageOrErr returns the Image value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionRecordEdges) ImageOrErr() (*LabelImage, error) {
	if e.Image != nil {
		return e.Image, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: labelimage.Label}
	}
	return nil, &NotLoadedError{edge: "image"}
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionRecordEdges) ApplicationOrErr() (*Application, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: application.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionrecord.FieldExtractedJSON, extractionrecord.FieldVerificationJSON:
			values[i] = new([]byte)
		case extractionrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case extractionrecord.FieldProcessingTimeMs:
			values[i] = new(sql.NullInt64)
		case extractionrecord.FieldModelName:
			values[i] = new(sql.NullString)
		case extractionrecord.FieldCreatedAt, extractionrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractionrecord.FieldID, extractionrecord.FieldImageID, extractionrecord.FieldApplicationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionRecord fields.
func (_m *ExtractionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionrecord.FieldImageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field image_id", values[i])
			} else if value != nil {
				_m.ImageID = *value
			}
		case extractionrecord.FieldApplicationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value != nil {
				_m.ApplicationID = *value
			}
		case extractionrecord.FieldExtractedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case extractionrecord.FieldVerificationJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field verification_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VerificationJSON); err != nil {
					return fmt.Errorf("unmarshal field verification_json: %w", err)
				}
			}
		case extractionrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case extractionrecord.FieldProcessingTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_ms", values[i])
			} else if value.Valid {
				_m.ProcessingTimeMs = value.Int64
			}
		case extractionrecord.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case extractionrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractionrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryImage queries the "image" edge of the ExtractionRecord entity.
func (_m *ExtractionRecord) QueryImage() *LabelImageQuery {
	return NewExtractionRecordClient(_m.config).QueryImage(_m)
}

// QueryApplication queries the "application" edge of the ExtractionRecord entity.
func (_m *ExtractionRecord) QueryApplication() *ApplicationQuery {
	return NewExtractionRecordClient(_m.config).QueryApplication(_m)
}

// Update returns a builder for updating this ExtractionRecord.
// Note that you need to call ExtractionRecord.Unwrap() before calling this method if this ExtractionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionRecord) Update() *ExtractionRecordUpdateOne {
	return NewExtractionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionRecord) Unwrap() *ExtractionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("image_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageID))
	builder.WriteString(", ")
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedJSON))
	builder.WriteString(", ")
	builder.WriteString("verification_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerificationJSON))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("processing_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTimeMs))
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionRecords is a parsable slice of ExtractionRecord.
type ExtractionRecords []*ExtractionRecord
