// Code generated by ent, DO NOT EDIT.

package extractionrecord

import (
	"labelproof/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldID, id))
}

// ImageID applies equality check predicate on the "image_id" field. It's identical to ImageIDEQ.
func ImageID(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldImageID, v))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldApplicationID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldConfidence, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldModelName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// ImageIDEQ applies the EQ predicate on the "image_id" field.
func ImageIDEQ(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldImageID, v))
}

// ImageIDNEQ applies the NEQ predicate on the "image_id" field.
func ImageIDNEQ(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldImageID, v))
}

// ImageIDIn applies the In predicate on the "image_id" field.
func ImageIDIn(vs ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldImageID, vs...))
}

// ImageIDNotIn applies the NotIn predicate on the "image_id" field.
func ImageIDNotIn(vs ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldImageID, vs...))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotNull(FieldExtractedJSON))
}

// VerificationJSONIsNil applies the IsNil predicate on the "verification_json" field.
func VerificationJSONIsNil() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIsNull(FieldVerificationJSON))
}

// VerificationJSONNotNil applies the NotNil predicate on the "verification_json" field.
func VerificationJSONNotNil() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotNull(FieldVerificationJSON))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldConfidence, v))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldModelName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasImage applies the HasEdge predicate on the "image" edge.
func HasImage() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ImageTable, ImageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImageWith applies the HasEdge predicate on the "image" edge with a given conditions (other predicates).
func HasImageWith(preds ...predicate.LabelImage) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(func(s *sql.Selector) {
		step := newImageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasApplication applies the HasEdge predicate on the "application" edge.
func HasApplication() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationWith applies the HasEdge predicate on the "application" edge with a given conditions (other predicates).
func HasApplicationWith(preds ...predicate.Application) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(func(s *sql.Selector) {
		step := newApplicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.NotPredicates(p))
}
