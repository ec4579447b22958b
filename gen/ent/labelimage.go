// Code generated by ent, DO NOT EDIT.

package ent

import (
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

// LabelImage is the model entity for the LabelImage schema.
type LabelImage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID uuid.UUID `json:"application_id,omitempty"`
	// Role holds the value of the "role" field.
	Role labelimage.Role `json:"role,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// Data holds the value of the "data" field.
	Data []byte `json:"data,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LabelImageQuery when eager-loading is set.
	Edges        LabelImageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LabelImageEdges holds the relations/edges for other nodes in the graph.
type LabelImageEdges struct {
	// Application holds the value of the application edge.
	Application *Application `json:"application,omitempty"`
	// Extraction holds the value of the extraction edge.
	Extraction *ExtractionRecord `json:"extraction,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LabelImageEdges) ApplicationOrErr() (*Application, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: application.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// ExtractionOrErr returns the Extraction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LabelImageEdges) ExtractionOrErr() (*ExtractionRecord, error) {
	if e.Extraction != nil {
		return e.Extraction, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: extractionrecord.Label}
	}
	return nil, &NotLoadedError{edge: "extraction"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LabelImage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case labelimage.FieldData:
			values[i] = new([]byte)
		case labelimage.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case labelimage.FieldRole, labelimage.FieldContentType:
			values[i] = new(sql.NullString)
		case labelimage.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case labelimage.FieldID, labelimage.FieldApplicationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LabelImage fields.
func (_m *LabelImage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case labelimage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case labelimage.FieldApplicationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value != nil {
				_m.ApplicationID = *value
			}
		case labelimage.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = labelimage.Role(value.String)
			}
		case labelimage.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case labelimage.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil {
				_m.Data = *value
			}
		case labelimage.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case labelimage.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LabelImage.
// This includes values selected through modifiers, order, etc.
func (_m *LabelImage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplication queries the "application" edge of the LabelImage entity.
func (_m *LabelImage) QueryApplication() *ApplicationQuery {
	return NewLabelImageClient(_m.config).QueryApplication(_m)
}

// QueryExtraction queries the "extraction" edge of the LabelImage entity.
func (_m *LabelImage) QueryExtraction() *ExtractionRecordQuery {
	return NewLabelImageClient(_m.config).QueryExtraction(_m)
}

// Update returns a builder for updating this LabelImage.
// Note that you need to call LabelImage.Unwrap() before calling this method if this LabelImage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LabelImage) Update() *LabelImageUpdateOne {
	return NewLabelImageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LabelImage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LabelImage) Unwrap() *LabelImage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LabelImage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LabelImage) String() string {
	var builder strings.Builder
	builder.WriteString("LabelImage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LabelImages is a parsable slice of LabelImage.
type LabelImages []*LabelImage
