// Code generated by ent, DO NOT EDIT.

package application

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the application type in the database.
	Label = "application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSerialNumber holds the string denoting the serial_number field in the database.
	FieldSerialNumber = "serial_number"
	// FieldBrandName holds the string denoting the brand_name field in the database.
	FieldBrandName = "brand_name"
	// FieldFancifulName holds the string denoting the fanciful_name field in the database.
	FieldFancifulName = "fanciful_name"
	// FieldProducerName holds the string denoting the producer_name field in the database.
	FieldProducerName = "producer_name"
	// FieldClassType holds the string denoting the class_type field in the database.
	FieldClassType = "class_type"
	// FieldBeverageType holds the string denoting the beverage_type field in the database.
	FieldBeverageType = "beverage_type"
	// FieldAlcoholContent holds the string denoting the alcohol_content field in the database.
	FieldAlcoholContent = "alcohol_content"
	// FieldNetContents holds the string denoting the net_contents field in the database.
	FieldNetContents = "net_contents"
	// FieldGrapeVarietal holds the string denoting the grape_varietal field in the database.
	FieldGrapeVarietal = "grape_varietal"
	// FieldAppellation holds the string denoting the appellation field in the database.
	FieldAppellation = "appellation"
	// FieldVintage holds the string denoting the vintage field in the database.
	FieldVintage = "vintage"
	// FieldCountryOfOrigin holds the string denoting the country_of_origin field in the database.
	FieldCountryOfOrigin = "country_of_origin"
	// FieldHealthWarning holds the string denoting the health_warning field in the database.
	FieldHealthWarning = "health_warning"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReviewNotes holds the string denoting the review_notes field in the database.
	FieldReviewNotes = "review_notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeImages holds the string denoting the images edge name in mutations.
	EdgeImages = "images"
	// EdgeExtractions holds the string denoting the extractions edge name in mutations.
	EdgeExtractions = "extractions"
	// Table holds the table name of the application in the database.
	Table = "applications"
	// ImagesTable is the table that holds the images relation/edge.
	ImagesTable = "label_images"
	// ImagesInverseTable is the table name for the LabelImage entity.
	// It exists in this package in order to avoid circular dependency with the "labelimage" package.
	ImagesInverseTable = "label_images"
	// ImagesColumn is the table column denoting the images relation/edge.
	ImagesColumn = "application_id"
	// ExtractionsTable is the table that holds the extractions relation/edge.
	ExtractionsTable = "extraction_records"
	// ExtractionsInverseTable is the table name for the ExtractionRecord entity.
	// It exists in this package in order to avoid circular dependency with the "extractionrecord" package.
	ExtractionsInverseTable = "extraction_records"
	// ExtractionsColumn is the table column denoting the extractions relation/edge.
	ExtractionsColumn = "application_id"
)

// Columns holds all SQL columns for application fields.
var Columns = []string{
	FieldID,
	FieldSerialNumber,
	FieldBrandName,
	FieldFancifulName,
	FieldProducerName,
	FieldClassType,
	FieldBeverageType,
	FieldAlcoholContent,
	FieldNetContents,
	FieldGrapeVarietal,
	FieldAppellation,
	FieldVintage,
	FieldCountryOfOrigin,
	FieldHealthWarning,
	FieldStatus,
	FieldReviewNotes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SerialNumberValidator is a validator for the "serial_number" field. It is called by the builders before save.
	SerialNumberValidator func(string) error
	// BrandNameValidator is a validator for the "brand_name" field. It is called by the builders before save.
	BrandNameValidator func(string) error
	// ProducerNameValidator is a validator for the "producer_name" field. It is called by the builders before save.
	ProducerNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// BeverageType defines the type for the "beverage_type" enum field.
type BeverageType string

// BeverageType values.
const (
	BeverageTypeWine    BeverageType = "wine"
	BeverageTypeBeer    BeverageType = "beer"
	BeverageTypeSpirits BeverageType = "spirits"
)

func (bt BeverageType) String() string {
	return string(bt)
}

// BeverageTypeValidator is a validator for the "beverage_type" field enum values. It is called by the builders before save.
func BeverageTypeValidator(bt BeverageType) error {
	switch bt {
	case BeverageTypeWine, BeverageTypeBeer, BeverageTypeSpirits:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for beverage_type field: %q", bt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending     Status = "pending"
	StatusNeedsReview Status = "needs_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusNeedsReview, StatusApproved, StatusRejected:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Application queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySerialNumber orders the results by the serial_number field.
func BySerialNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSerialNumber, opts...).ToFunc()
}

// ByBrandName orders the results by the brand_name field.
func ByBrandName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandName, opts...).ToFunc()
}

// ByFancifulName orders the results by the fanciful_name field.
func ByFancifulName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFancifulName, opts...).ToFunc()
}

// ByProducerName orders the results by the producer_name field.
func ByProducerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProducerName, opts...).ToFunc()
}

// ByClassType orders the results by the class_type field.
func ByClassType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassType, opts...).ToFunc()
}

// ByBeverageType orders the results by the beverage_type field.
func ByBeverageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeverageType, opts...).ToFunc()
}

// ByAlcoholContent orders the results by the alcohol_content field.
func ByAlcoholContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlcoholContent, opts...).ToFunc()
}

// ByNetContents orders the results by the net_contents field.
func ByNetContents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetContents, opts...).ToFunc()
}

// ByGrapeVarietal orders the results by the grape_varietal field.
func ByGrapeVarietal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrapeVarietal, opts...).ToFunc()
}

// ByAppellation orders the results by the appellation field.
func ByAppellation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppellation, opts...).ToFunc()
}

// ByVintage orders the results by the vintage field.
func ByVintage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVintage, opts...).ToFunc()
}

// ByCountryOfOrigin orders the results by the country_of_origin field.
func ByCountryOfOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountryOfOrigin, opts...).ToFunc()
}

// ByHealthWarning orders the results by the health_warning field.
func ByHealthWarning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthWarning, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReviewNotes orders the results by the review_notes field.
func ByReviewNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByImagesCount orders the results by images count.
func ByImagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImagesStep(), opts...)
	}
}

// ByImages orders the results by images terms.
func ByImages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExtractionsCount orders the results by extractions count.
func ByExtractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExtractionsStep(), opts...)
	}
}

// ByExtractions orders the results by extractions terms.
func ByExtractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newImagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
	)
}
func newExtractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
	)
}
