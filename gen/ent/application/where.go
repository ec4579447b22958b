// Code generated by ent, DO NOT EDIT.

package application

import (
	"labelproof/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// SerialNumber applies equality check predicate on the "serial_number" field. It's identical to SerialNumberEQ.
func SerialNumber(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSerialNumber, v))
}

// BrandName applies equality check predicate on the "brand_name" field. It's identical to BrandNameEQ.
func BrandName(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldBrandName, v))
}

// FancifulName applies equality check predicate on the "fanciful_name" field. It's identical to FancifulNameEQ.
func FancifulName(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldFancifulName, v))
}

// ProducerName applies equality check predicate on the "producer_name" field. It's identical to ProducerNameEQ.
func ProducerName(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldProducerName, v))
}

// ClassType applies equality check predicate on the "class_type" field. It's identical to ClassTypeEQ.
func ClassType(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldClassType, v))
}

// AlcoholContent applies equality check predicate on the "alcohol_content" field. It's identical to AlcoholContentEQ.
func AlcoholContent(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAlcoholContent, v))
}

// NetContents applies equality check predicate on the "net_contents" field. It's identical to NetContentsEQ.
func NetContents(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldNetContents, v))
}

// GrapeVarietal applies equality check predicate on the "grape_varietal" field. It's identical to GrapeVarietalEQ.
func GrapeVarietal(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldGrapeVarietal, v))
}

// Appellation applies equality check predicate on the "appellation" field. It's identical to AppellationEQ.
func Appellation(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAppellation, v))
}

// Vintage applies equality check predicate on the "vintage" field. It's identical to VintageEQ.
func Vintage(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldVintage, v))
}

// CountryOfOrigin applies equality check predicate on the "country_of_origin" field. It's identical to CountryOfOriginEQ.
func CountryOfOrigin(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCountryOfOrigin, v))
}

// HealthWarning applies equality check predicate on the "health_warning" field. It's identical to HealthWarningEQ.
func HealthWarning(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldHealthWarning, v))
}

// ReviewNotes applies equality check predicate on the "review_notes" field. It's identical to ReviewNotesEQ.
func ReviewNotes(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldReviewNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// SerialNumberEQ applies the EQ predicate on the "serial_number" field.
func SerialNumberEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSerialNumber, v))
}

// SerialNumberNEQ applies the NEQ predicate on the "serial_number" field.
func SerialNumberNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldSerialNumber, v))
}

// SerialNumberIn applies the In predicate on the "serial_number" field.
func SerialNumberIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldSerialNumber, vs...))
}

// SerialNumberNotIn applies the NotIn predicate on the "serial_number" field.
func SerialNumberNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldSerialNumber, vs...))
}

// SerialNumberGT applies the GT predicate on the "serial_number" field.
func SerialNumberGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldSerialNumber, v))
}

// SerialNumberGTE applies the GTE predicate on the "serial_number" field.
func SerialNumberGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldSerialNumber, v))
}

// SerialNumberLT applies the LT predicate on the "serial_number" field.
func SerialNumberLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldSerialNumber, v))
}

// SerialNumberLTE applies the LTE predicate on the "serial_number" field.
func SerialNumberLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldSerialNumber, v))
}

// SerialNumberContains applies the Contains predicate on the "serial_number" field.
func SerialNumberContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldSerialNumber, v))
}

// SerialNumberHasPrefix applies the HasPrefix predicate on the "serial_number" field.
func SerialNumberHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldSerialNumber, v))
}

// SerialNumberHasSuffix applies the HasSuffix predicate on the "serial_number" field.
func SerialNumberHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldSerialNumber, v))
}

// SerialNumberEqualFold applies the EqualFold predicate on the "serial_number" field.
func SerialNumberEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldSerialNumber, v))
}

// SerialNumberContainsFold applies the ContainsFold predicate on the "serial_number" field.
func SerialNumberContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldSerialNumber, v))
}

// BrandNameEQ applies the EQ predicate on the "brand_name" field.
func BrandNameEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldBrandName, v))
}

// BrandNameNEQ applies the NEQ predicate on the "brand_name" field.
func BrandNameNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldBrandName, v))
}

// BrandNameIn applies the In predicate on the "brand_name" field.
func BrandNameIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldBrandName, vs...))
}

// BrandNameNotIn applies the NotIn predicate on the "brand_name" field.
func BrandNameNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldBrandName, vs...))
}

// BrandNameGT applies the GT predicate on the "brand_name" field.
func BrandNameGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldBrandName, v))
}

// BrandNameGTE applies the GTE predicate on the "brand_name" field.
func BrandNameGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldBrandName, v))
}

// BrandNameLT applies the LT predicate on the "brand_name" field.
func BrandNameLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldBrandName, v))
}

// BrandNameLTE applies the LTE predicate on the "brand_name" field.
func BrandNameLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldBrandName, v))
}

// BrandNameContains applies the Contains predicate on the "brand_name" field.
func BrandNameContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldBrandName, v))
}

// BrandNameHasPrefix applies the HasPrefix predicate on the "brand_name" field.
func BrandNameHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldBrandName, v))
}

// BrandNameHasSuffix applies the HasSuffix predicate on the "brand_name" field.
func BrandNameHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldBrandName, v))
}

// BrandNameEqualFold applies the EqualFold predicate on the "brand_name" field.
func BrandNameEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldBrandName, v))
}

// BrandNameContainsFold applies the ContainsFold predicate on the "brand_name" field.
func BrandNameContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldBrandName, v))
}

// FancifulNameEQ applies the EQ predicate on the "fanciful_name" field.
func FancifulNameEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldFancifulName, v))
}

// FancifulNameNEQ applies the NEQ predicate on the "fanciful_name" field.
func FancifulNameNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldFancifulName, v))
}

// FancifulNameIn applies the In predicate on the "fanciful_name" field.
func FancifulNameIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldFancifulName, vs...))
}

// FancifulNameNotIn applies the NotIn predicate on the "fanciful_name" field.
func FancifulNameNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldFancifulName, vs...))
}

// FancifulNameGT applies the GT predicate on the "fanciful_name" field.
func FancifulNameGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldFancifulName, v))
}

// FancifulNameGTE applies the GTE predicate on the "fanciful_name" field.
func FancifulNameGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldFancifulName, v))
}

// FancifulNameLT applies the LT predicate on the "fanciful_name" field.
func FancifulNameLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldFancifulName, v))
}

// FancifulNameLTE applies the LTE predicate on the "fanciful_name" field.
func FancifulNameLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldFancifulName, v))
}

// FancifulNameContains applies the Contains predicate on the "fanciful_name" field.
func FancifulNameContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldFancifulName, v))
}

// FancifulNameHasPrefix applies the HasPrefix predicate on the "fanciful_name" field.
func FancifulNameHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldFancifulName, v))
}

// FancifulNameHasSuffix applies the HasSuffix predicate on the "fanciful_name" field.
func FancifulNameHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldFancifulName, v))
}

// FancifulNameIsNil applies the IsNil predicate on the "fanciful_name" field.
func FancifulNameIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldFancifulName))
}

// FancifulNameNotNil applies the NotNil predicate on the "fanciful_name" field.
func FancifulNameNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldFancifulName))
}

// FancifulNameEqualFold applies the EqualFold predicate on the "fanciful_name" field.
func FancifulNameEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldFancifulName, v))
}

// FancifulNameContainsFold applies the ContainsFold predicate on the "fanciful_name" field.
func FancifulNameContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldFancifulName, v))
}

// ProducerNameEQ applies the EQ predicate on the "producer_name" field.
func ProducerNameEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldProducerName, v))
}

// ProducerNameNEQ applies the NEQ predicate on the "producer_name" field.
func ProducerNameNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldProducerName, v))
}

// ProducerNameIn applies the In predicate on the "producer_name" field.
func ProducerNameIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldProducerName, vs...))
}

// ProducerNameNotIn applies the NotIn predicate on the "producer_name" field.
func ProducerNameNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldProducerName, vs...))
}

// ProducerNameGT applies the GT predicate on the "producer_name" field.
func ProducerNameGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldProducerName, v))
}

// ProducerNameGTE applies the GTE predicate on the "producer_name" field.
func ProducerNameGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldProducerName, v))
}

// ProducerNameLT applies the LT predicate on the "producer_name" field.
func ProducerNameLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldProducerName, v))
}

// ProducerNameLTE applies the LTE predicate on the "producer_name" field.
func ProducerNameLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldProducerName, v))
}

// ProducerNameContains applies the Contains predicate on the "producer_name" field.
func ProducerNameContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldProducerName, v))
}

// ProducerNameHasPrefix applies the HasPrefix predicate on the "producer_name" field.
func ProducerNameHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldProducerName, v))
}

// ProducerNameHasSuffix applies the HasSuffix predicate on the "producer_name" field.
func ProducerNameHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldProducerName, v))
}

// ProducerNameEqualFold applies the EqualFold predicate on the "producer_name" field.
func ProducerNameEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldProducerName, v))
}

// ProducerNameContainsFold applies the ContainsFold predicate on the "producer_name" field.
func ProducerNameContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldProducerName, v))
}

// ClassTypeEQ applies the EQ predicate on the "class_type" field.
func ClassTypeEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldClassType, v))
}

// ClassTypeNEQ applies the NEQ predicate on the "class_type" field.
func ClassTypeNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldClassType, v))
}

// ClassTypeIn applies the In predicate on the "class_type" field.
func ClassTypeIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldClassType, vs...))
}

// ClassTypeNotIn applies the NotIn predicate on the "class_type" field.
func ClassTypeNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldClassType, vs...))
}

// ClassTypeGT applies the GT predicate on the "class_type" field.
func ClassTypeGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldClassType, v))
}

// ClassTypeGTE applies the GTE predicate on the "class_type" field.
func ClassTypeGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldClassType, v))
}

// ClassTypeLT applies the LT predicate on the "class_type" field.
func ClassTypeLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldClassType, v))
}

// ClassTypeLTE applies the LTE predicate on the "class_type" field.
func ClassTypeLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldClassType, v))
}

// ClassTypeContains applies the Contains predicate on the "class_type" field.
func ClassTypeContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldClassType, v))
}

// ClassTypeHasPrefix applies the HasPrefix predicate on the "class_type" field.
func ClassTypeHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldClassType, v))
}

// ClassTypeHasSuffix applies the HasSuffix predicate on the "class_type" field.
func ClassTypeHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldClassType, v))
}

// ClassTypeIsNil applies the IsNil predicate on the "class_type" field.
func ClassTypeIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldClassType))
}

// ClassTypeNotNil applies the NotNil predicate on the "class_type" field.
func ClassTypeNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldClassType))
}

// ClassTypeEqualFold applies the EqualFold predicate on the "class_type" field.
func ClassTypeEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldClassType, v))
}

// ClassTypeContainsFold applies the ContainsFold predicate on the "class_type" field.
func ClassTypeContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldClassType, v))
}

// BeverageTypeEQ applies the EQ predicate on the "beverage_type" field.
func BeverageTypeEQ(v BeverageType) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldBeverageType, v))
}

// BeverageTypeNEQ applies the NEQ predicate on the "beverage_type" field.
func BeverageTypeNEQ(v BeverageType) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldBeverageType, v))
}

// BeverageTypeIn applies the In predicate on the "beverage_type" field.
func BeverageTypeIn(vs ...BeverageType) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldBeverageType, vs...))
}

// BeverageTypeNotIn applies the NotIn predicate on the "beverage_type" field.
func BeverageTypeNotIn(vs ...BeverageType) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldBeverageType, vs...))
}

// AlcoholContentEQ applies the EQ predicate on the "alcohol_content" field.
func AlcoholContentEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAlcoholContent, v))
}

// AlcoholContentNEQ applies the NEQ predicate on the "alcohol_content" field.
func AlcoholContentNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldAlcoholContent, v))
}

// AlcoholContentIn applies the In predicate on the "alcohol_content" field.
func AlcoholContentIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldAlcoholContent, vs...))
}

// AlcoholContentNotIn applies the NotIn predicate on the "alcohol_content" field.
func AlcoholContentNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldAlcoholContent, vs...))
}

// AlcoholContentGT applies the GT predicate on the "alcohol_content" field.
func AlcoholContentGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldAlcoholContent, v))
}

// AlcoholContentGTE applies the GTE predicate on the "alcohol_content" field.
func AlcoholContentGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldAlcoholContent, v))
}

// AlcoholContentLT applies the LT predicate on the "alcohol_content" field.
func AlcoholContentLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldAlcoholContent, v))
}

// AlcoholContentLTE applies the LTE predicate on the "alcohol_content" field.
func AlcoholContentLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldAlcoholContent, v))
}

// AlcoholContentContains applies the Contains predicate on the "alcohol_content" field.
func AlcoholContentContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldAlcoholContent, v))
}

// AlcoholContentHasPrefix applies the HasPrefix predicate on the "alcohol_content" field.
func AlcoholContentHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldAlcoholContent, v))
}

// AlcoholContentHasSuffix applies the HasSuffix predicate on the "alcohol_content" field.
func AlcoholContentHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldAlcoholContent, v))
}

// AlcoholContentIsNil applies the IsNil predicate on the "alcohol_content" field.
func AlcoholContentIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldAlcoholContent))
}

// AlcoholContentNotNil applies the NotNil predicate on the "alcohol_content" field.
func AlcoholContentNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldAlcoholContent))
}

// AlcoholContentEqualFold applies the EqualFold predicate on the "alcohol_content" field.
func AlcoholContentEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldAlcoholContent, v))
}

// AlcoholContentContainsFold applies the ContainsFold predicate on the "alcohol_content" field.
func AlcoholContentContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldAlcoholContent, v))
}

// NetContentsEQ applies the EQ predicate on the "net_contents" field.
func NetContentsEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldNetContents, v))
}

// NetContentsNEQ applies the NEQ predicate on the "net_contents" field.
func NetContentsNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldNetContents, v))
}

// NetContentsIn applies the In predicate on the "net_contents" field.
func NetContentsIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldNetContents, vs...))
}

// NetContentsNotIn applies the NotIn predicate on the "net_contents" field.
func NetContentsNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldNetContents, vs...))
}

// NetContentsGT applies the GT predicate on the "net_contents" field.
func NetContentsGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldNetContents, v))
}

// NetContentsGTE applies the GTE predicate on the "net_contents" field.
func NetContentsGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldNetContents, v))
}

// NetContentsLT applies the LT predicate on the "net_contents" field.
func NetContentsLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldNetContents, v))
}

// NetContentsLTE applies the LTE predicate on the "net_contents" field.
func NetContentsLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldNetContents, v))
}

// NetContentsContains applies the Contains predicate on the "net_contents" field.
func NetContentsContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldNetContents, v))
}

// NetContentsHasPrefix applies the HasPrefix predicate on the "net_contents" field.
func NetContentsHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldNetContents, v))
}

// NetContentsHasSuffix applies the HasSuffix predicate on the "net_contents" field.
func NetContentsHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldNetContents, v))
}

// NetContentsIsNil applies the IsNil predicate on the "net_contents" field.
func NetContentsIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldNetContents))
}

// NetContentsNotNil applies the NotNil predicate on the "net_contents" field.
func NetContentsNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldNetContents))
}

// NetContentsEqualFold applies the EqualFold predicate on the "net_contents" field.
func NetContentsEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldNetContents, v))
}

// NetContentsContainsFold applies the ContainsFold predicate on the "net_contents" field.
func NetContentsContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldNetContents, v))
}

// GrapeVarietalEQ applies the EQ predicate on the "grape_varietal" field.
func GrapeVarietalEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldGrapeVarietal, v))
}

// GrapeVarietalNEQ applies the NEQ predicate on the "grape_varietal" field.
func GrapeVarietalNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldGrapeVarietal, v))
}

// GrapeVarietalIn applies the In predicate on the "grape_varietal" field.
func GrapeVarietalIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldGrapeVarietal, vs...))
}

// GrapeVarietalNotIn applies the NotIn predicate on the "grape_varietal" field.
func GrapeVarietalNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldGrapeVarietal, vs...))
}

// GrapeVarietalGT applies the GT predicate on the "grape_varietal" field.
func GrapeVarietalGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldGrapeVarietal, v))
}

// GrapeVarietalGTE applies the GTE predicate on the "grape_varietal" field.
func GrapeVarietalGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldGrapeVarietal, v))
}

// GrapeVarietalLT applies the LT predicate on the "grape_varietal" field.
func GrapeVarietalLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldGrapeVarietal, v))
}

// GrapeVarietalLTE applies the LTE predicate on the "grape_varietal" field.
func GrapeVarietalLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldGrapeVarietal, v))
}

// GrapeVarietalContains applies the Contains predicate on the "grape_varietal" field.
func GrapeVarietalContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldGrapeVarietal, v))
}

// GrapeVarietalHasPrefix applies the HasPrefix predicate on the "grape_varietal" field.
func GrapeVarietalHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldGrapeVarietal, v))
}

// GrapeVarietalHasSuffix applies the HasSuffix predicate on the "grape_varietal" field.
func GrapeVarietalHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldGrapeVarietal, v))
}

// GrapeVarietalIsNil applies the IsNil predicate on the "grape_varietal" field.
func GrapeVarietalIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldGrapeVarietal))
}

// GrapeVarietalNotNil applies the NotNil predicate on the "grape_varietal" field.
func GrapeVarietalNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldGrapeVarietal))
}

// GrapeVarietalEqualFold applies the EqualFold predicate on the "grape_varietal" field.
func GrapeVarietalEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldGrapeVarietal, v))
}

// GrapeVarietalContainsFold applies the ContainsFold predicate on the "grape_varietal" field.
func GrapeVarietalContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldGrapeVarietal, v))
}

// AppellationEQ applies the EQ predicate on the "appellation" field.
func AppellationEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAppellation, v))
}

// AppellationNEQ applies the NEQ predicate on the "appellation" field.
func AppellationNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldAppellation, v))
}

// AppellationIn applies the In predicate on the "appellation" field.
func AppellationIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldAppellation, vs...))
}

// AppellationNotIn applies the NotIn predicate on the "appellation" field.
func AppellationNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldAppellation, vs...))
}

// AppellationGT applies the GT predicate on the "appellation" field.
func AppellationGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldAppellation, v))
}

// AppellationGTE applies the GTE predicate on the "appellation" field.
func AppellationGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldAppellation, v))
}

// AppellationLT applies the LT predicate on the "appellation" field.
func AppellationLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldAppellation, v))
}

// AppellationLTE applies the LTE predicate on the "appellation" field.
func AppellationLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldAppellation, v))
}

// AppellationContains applies the Contains predicate on the "appellation" field.
func AppellationContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldAppellation, v))
}

// AppellationHasPrefix applies the HasPrefix predicate on the "appellation" field.
func AppellationHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldAppellation, v))
}

// AppellationHasSuffix applies the HasSuffix predicate on the "appellation" field.
func AppellationHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldAppellation, v))
}

// AppellationIsNil applies the IsNil predicate on the "appellation" field.
func AppellationIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldAppellation))
}

// AppellationNotNil applies the NotNil predicate on the "appellation" field.
func AppellationNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldAppellation))
}

// AppellationEqualFold applies the EqualFold predicate on the "appellation" field.
func AppellationEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldAppellation, v))
}

// AppellationContainsFold applies the ContainsFold predicate on the "appellation" field.
func AppellationContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldAppellation, v))
}

// VintageEQ applies the EQ predicate on the "vintage" field.
func VintageEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldVintage, v))
}

// VintageNEQ applies the NEQ predicate on the "vintage" field.
func VintageNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldVintage, v))
}

// VintageIn applies the In predicate on the "vintage" field.
func VintageIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldVintage, vs...))
}

// VintageNotIn applies the NotIn predicate on the "vintage" field.
func VintageNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldVintage, vs...))
}

// VintageGT applies the GT predicate on the "vintage" field.
func VintageGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldVintage, v))
}

// VintageGTE applies the GTE predicate on the "vintage" field.
func VintageGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldVintage, v))
}

// VintageLT applies the LT predicate on the "vintage" field.
func VintageLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldVintage, v))
}

// VintageLTE applies the LTE predicate on the "vintage" field.
func VintageLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldVintage, v))
}

// VintageContains applies the Contains predicate on the "vintage" field.
func VintageContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldVintage, v))
}

// VintageHasPrefix applies the HasPrefix predicate on the "vintage" field.
func VintageHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldVintage, v))
}

// VintageHasSuffix applies the HasSuffix predicate on the "vintage" field.
func VintageHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldVintage, v))
}

// VintageIsNil applies the IsNil predicate on the "vintage" field.
func VintageIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldVintage))
}

// VintageNotNil applies the NotNil predicate on the "vintage" field.
func VintageNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldVintage))
}

// VintageEqualFold applies the EqualFold predicate on the "vintage" field.
func VintageEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldVintage, v))
}

// VintageContainsFold applies the ContainsFold predicate on the "vintage" field.
func VintageContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldVintage, v))
}

// CountryOfOriginEQ applies the EQ predicate on the "country_of_origin" field.
func CountryOfOriginEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCountryOfOrigin, v))
}

// CountryOfOriginNEQ applies the NEQ predicate on the "country_of_origin" field.
func CountryOfOriginNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCountryOfOrigin, v))
}

// CountryOfOriginIn applies the In predicate on the "country_of_origin" field.
func CountryOfOriginIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCountryOfOrigin, vs...))
}

// CountryOfOriginNotIn applies the NotIn predicate on the "country_of_origin" field.
func CountryOfOriginNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCountryOfOrigin, vs...))
}

// CountryOfOriginGT applies the GT predicate on the "country_of_origin" field.
func CountryOfOriginGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCountryOfOrigin, v))
}

// CountryOfOriginGTE applies the GTE predicate on the "country_of_origin" field.
func CountryOfOriginGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCountryOfOrigin, v))
}

// CountryOfOriginLT applies the LT predicate on the "country_of_origin" field.
func CountryOfOriginLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCountryOfOrigin, v))
}

// CountryOfOriginLTE applies the LTE predicate on the "country_of_origin" field.
func CountryOfOriginLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCountryOfOrigin, v))
}

// CountryOfOriginContains applies the Contains predicate on the "country_of_origin" field.
func CountryOfOriginContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldCountryOfOrigin, v))
}

// CountryOfOriginHasPrefix applies the HasPrefix predicate on the "country_of_origin" field.
func CountryOfOriginHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldCountryOfOrigin, v))
}

// CountryOfOriginHasSuffix applies the HasSuffix predicate on the "country_of_origin" field.
func CountryOfOriginHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldCountryOfOrigin, v))
}

// CountryOfOriginIsNil applies the IsNil predicate on the "country_of_origin" field.
func CountryOfOriginIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldCountryOfOrigin))
}

// CountryOfOriginNotNil applies the NotNil predicate on the "country_of_origin" field.
func CountryOfOriginNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldCountryOfOrigin))
}

// CountryOfOriginEqualFold applies the EqualFold predicate on the "country_of_origin" field.
func CountryOfOriginEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldCountryOfOrigin, v))
}

// CountryOfOriginContainsFold applies the ContainsFold predicate on the "country_of_origin" field.
func CountryOfOriginContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldCountryOfOrigin, v))
}

// HealthWarningEQ applies the EQ predicate on the "health_warning" field.
func HealthWarningEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldHealthWarning, v))
}

// HealthWarningNEQ applies the NEQ predicate on the "health_warning" field.
func HealthWarningNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldHealthWarning, v))
}

// HealthWarningIn applies the In predicate on the "health_warning" field.
func HealthWarningIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldHealthWarning, vs...))
}

// HealthWarningNotIn applies the NotIn predicate on the "health_warning" field.
func HealthWarningNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldHealthWarning, vs...))
}

// HealthWarningGT applies the GT predicate on the "health_warning" field.
func HealthWarningGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldHealthWarning, v))
}

// HealthWarningGTE applies the GTE predicate on the "health_warning" field.
func HealthWarningGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldHealthWarning, v))
}

// HealthWarningLT applies the LT predicate on the "health_warning" field.
func HealthWarningLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldHealthWarning, v))
}

// HealthWarningLTE applies the LTE predicate on the "health_warning" field.
func HealthWarningLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldHealthWarning, v))
}

// HealthWarningContains applies the Contains predicate on the "health_warning" field.
func HealthWarningContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldHealthWarning, v))
}

// HealthWarningHasPrefix applies the HasPrefix predicate on the "health_warning" field.
func HealthWarningHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldHealthWarning, v))
}

// HealthWarningHasSuffix applies the HasSuffix predicate on the "health_warning" field.
func HealthWarningHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldHealthWarning, v))
}

// HealthWarningIsNil applies the IsNil predicate on the "health_warning" field.
func HealthWarningIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldHealthWarning))
}

// HealthWarningNotNil applies the NotNil predicate on the "health_warning" field.
func HealthWarningNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldHealthWarning))
}

// HealthWarningEqualFold applies the EqualFold predicate on the "health_warning" field.
func HealthWarningEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldHealthWarning, v))
}

// HealthWarningContainsFold applies the ContainsFold predicate on the "health_warning" field.
func HealthWarningContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldHealthWarning, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStatus, vs...))
}

// ReviewNotesEQ applies the EQ predicate on the "review_notes" field.
func ReviewNotesEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldReviewNotes, v))
}

// ReviewNotesNEQ applies the NEQ predicate on the "review_notes" field.
func ReviewNotesNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldReviewNotes, v))
}

// ReviewNotesIn applies the In predicate on the "review_notes" field.
func ReviewNotesIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldReviewNotes, vs...))
}

// ReviewNotesNotIn applies the NotIn predicate on the "review_notes" field.
func ReviewNotesNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldReviewNotes, vs...))
}

// ReviewNotesGT applies the GT predicate on the "review_notes" field.
func ReviewNotesGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldReviewNotes, v))
}

// ReviewNotesGTE applies the GTE predicate on the "review_notes" field.
func ReviewNotesGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldReviewNotes, v))
}

// ReviewNotesLT applies the LT predicate on the "review_notes" field.
func ReviewNotesLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldReviewNotes, v))
}

// ReviewNotesLTE applies the LTE predicate on the "review_notes" field.
func ReviewNotesLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldReviewNotes, v))
}

// ReviewNotesContains applies the Contains predicate on the "review_notes" field.
func ReviewNotesContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldReviewNotes, v))
}

// ReviewNotesHasPrefix applies the HasPrefix predicate on the "review_notes" field.
func ReviewNotesHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldReviewNotes, v))
}

// ReviewNotesHasSuffix applies the HasSuffix predicate on the "review_notes" field.
func ReviewNotesHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldReviewNotes, v))
}

// ReviewNotesIsNil applies the IsNil predicate on the "review_notes" field.
func ReviewNotesIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldReviewNotes))
}

// ReviewNotesNotNil applies the NotNil predicate on the "review_notes" field.
func ReviewNotesNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldReviewNotes))
}

// ReviewNotesEqualFold applies the EqualFold predicate on the "review_notes" field.
func ReviewNotesEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldReviewNotes, v))
}

// ReviewNotesContainsFold applies the ContainsFold predicate on the "review_notes" field.
func ReviewNotesContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldReviewNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasImages applies the HasEdge predicate on the "images" edge.
func HasImages() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImagesWith applies the HasEdge predicate on the "images" edge with a given conditions (other predicates).
func HasImagesWith(preds ...predicate.LabelImage) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newImagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExtractions applies the HasEdge predicate on the "extractions" edge.
func HasExtractions() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionsWith applies the HasEdge predicate on the "extractions" edge with a given conditions (other predicates).
func HasExtractionsWith(preds ...predicate.ExtractionRecord) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newExtractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
