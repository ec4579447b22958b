// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"labelproof/gen/ent/application"
	"labelproof/gen/ent/extractionrecord"
	"labelproof/gen/ent/labelimage"
	"labelproof/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ExtractionRecordUpdate is the builder for updating ExtractionRecord entities.
type ExtractionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionRecordMutation
}

// Where appends a list predicates to the ExtractionRecordUpdate builder.
func (_u *ExtractionRecordUpdate) Where(ps ...predicate.ExtractionRecord) *ExtractionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetImageID sets the "image_id" field.
func (_u *ExtractionRecordUpdate) SetImageID(v uuid.UUID) *ExtractionRecordUpdate {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableImageID(v *uuid.UUID) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *ExtractionRecordUpdate) SetApplicationID(v uuid.UUID) *ExtractionRecordUpdate {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableApplicationID(v *uuid.UUID) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ExtractionRecordUpdate) SetExtractedJSON(v []uint8) *ExtractionRecordUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ExtractionRecordUpdate) AppendExtractedJSON(v []uint8) *ExtractionRecordUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ExtractionRecordUpdate) ClearExtractedJSON() *ExtractionRecordUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetVerificationJSON sets the "verification_json" field.
func (_u *ExtractionRecordUpdate) SetVerificationJSON(v []uint8) *ExtractionRecordUpdate {
	_u.mutation.SetVerificationJSON(v)
	return _u
}

// AppendVerificationJSON appends value to the "verification_json" field.
func (_u *ExtractionRecordUpdate) AppendVerificationJSON(v []uint8) *ExtractionRecordUpdate {
	_u.mutation.AppendVerificationJSON(v)
	return _u
}

// ClearVerificationJSON clears the value of the "verification_json" field.
func (_u *ExtractionRecordUpdate) ClearVerificationJSON() *ExtractionRecordUpdate {
	_u.mutation.ClearVerificationJSON()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionRecordUpdate) SetConfidence(v float32) *ExtractionRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableConfidence(v *float32) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionRecordUpdate) AddConfidence(v float32) *ExtractionRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *ExtractionRecordUpdate) SetProcessingTimeMs(v int64) *ExtractionRecordUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableProcessingTimeMs(v *int64) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *ExtractionRecordUpdate) AddProcessingTimeMs(v int64) *ExtractionRecordUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionRecordUpdate) SetModelName(v string) *ExtractionRecordUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableModelName(v *string) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionRecordUpdate) ClearModelName() *ExtractionRecordUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionRecordUpdate) SetCreatedAt(v time.Time) *ExtractionRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionRecordUpdate) SetUpdatedAt(v time.Time) *ExtractionRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetImage sets the "image" edge to the LabelImage entity.
func (_u *ExtractionRecordUpdate) SetImage(v *LabelImage) *ExtractionRecordUpdate {
	return _u.SetImageID(v.ID)
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *ExtractionRecordUpdate) SetApplication(v *Application) *ExtractionRecordUpdate {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_u *ExtractionRecordUpdate) Mutation() *ExtractionRecordMutation {
	return _u.mutation
}

// ClearImage clears the "image" edge to the LabelImage entity.
func (_u *ExtractionRecordUpdate) ClearImage() *ExtractionRecordUpdate {
	_u.mutation.ClearImage()
	return _u
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *ExtractionRecordUpdate) ClearApplication() *ExtractionRecordUpdate {
	_u.mutation.ClearApplication()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRecordUpdate) check() error {
	if v, ok := _u.mutation.ProcessingTimeMs(); ok {
		if err := extractionrecord.ProcessingTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "processing_time_ms", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.processing_time_ms": %w`, err)}
		}
	}
	if _u.mutation.ImageCleared() && len(_u.mutation.ImageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRecord.image"`)
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRecord.application"`)
	}
	return nil
}

func (_u *ExtractionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrecord.Table, extractionrecord.Columns, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(extractionrecord.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(extractionrecord.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.VerificationJSON(); ok {
		_spec.SetField(extractionrecord.FieldVerificationJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerificationJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldVerificationJSON, value)
		})
	}
	if _u.mutation.VerificationJSONCleared() {
		_spec.ClearField(extractionrecord.FieldVerificationJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(extractionrecord.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(extractionrecord.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionrecord.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionrecord.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ImageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extractionrecord.ImageTable,
			Columns: []string{extractionrecord.ImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extractionrecord.ImageTable,
			Columns: []string{extractionrecord.ImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.ApplicationTable,
			Columns: []string{extractionrecord.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.ApplicationTable,
			Columns: []string{extractionrecord.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionRecordUpdateOne is the builder for updating a single ExtractionRecord entity.
type ExtractionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionRecordMutation
}

// SetImageID sets the "image_id" field.
func (_u *ExtractionRecordUpdateOne) SetImageID(v uuid.UUID) *ExtractionRecordUpdateOne {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableImageID(v *uuid.UUID) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *ExtractionRecordUpdateOne) SetApplicationID(v uuid.UUID) *ExtractionRecordUpdateOne {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableApplicationID(v *uuid.UUID) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ExtractionRecordUpdateOne) SetExtractedJSON(v []uint8) *ExtractionRecordUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ExtractionRecordUpdateOne) AppendExtractedJSON(v []uint8) *ExtractionRecordUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ExtractionRecordUpdateOne) ClearExtractedJSON() *ExtractionRecordUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetVerificationJSON sets the "verification_json" field.
func (_u *ExtractionRecordUpdateOne) SetVerificationJSON(v []uint8) *ExtractionRecordUpdateOne {
	_u.mutation.SetVerificationJSON(v)
	return _u
}

// AppendVerificationJSON appends value to the "verification_json" field.
func (_u *ExtractionRecordUpdateOne) AppendVerificationJSON(v []uint8) *ExtractionRecordUpdateOne {
	_u.mutation.AppendVerificationJSON(v)
	return _u
}

// ClearVerificationJSON clears the value of the "verification_json" field.
func (_u *ExtractionRecordUpdateOne) ClearVerificationJSON() *ExtractionRecordUpdateOne {
	_u.mutation.ClearVerificationJSON()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionRecordUpdateOne) SetConfidence(v float32) *ExtractionRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableConfidence(v *float32) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionRecordUpdateOne) AddConfidence(v float32) *ExtractionRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *ExtractionRecordUpdateOne) SetProcessingTimeMs(v int64) *ExtractionRecordUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableProcessingTimeMs(v *int64) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *ExtractionRecordUpdateOne) AddProcessingTimeMs(v int64) *ExtractionRecordUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionRecordUpdateOne) SetModelName(v string) *ExtractionRecordUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableModelName(v *string) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionRecordUpdateOne) ClearModelName() *ExtractionRecordUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionRecordUpdateOne) SetCreatedAt(v time.Time) *ExtractionRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionRecordUpdateOne) SetUpdatedAt(v time.Time) *ExtractionRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetImage sets the "image" edge to the LabelImage entity.
func (_u *ExtractionRecordUpdateOne) SetImage(v *LabelImage) *ExtractionRecordUpdateOne {
	return _u.SetImageID(v.ID)
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *ExtractionRecordUpdateOne) SetApplication(v *Application) *ExtractionRecordUpdateOne {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_u *ExtractionRecordUpdateOne) Mutation() *ExtractionRecordMutation {
	return _u.mutation
}

// ClearImage clears the "image" edge to the LabelImage entity.
func (_u *ExtractionRecordUpdateOne) ClearImage() *ExtractionRecordUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *ExtractionRecordUpdateOne) ClearApplication() *ExtractionRecordUpdateOne {
	_u.mutation.ClearApplication()
	return _u
}

// Where appends a list predicates to the ExtractionRecordUpdate builder.
func (_u *ExtractionRecordUpdateOne) Where(ps ...predicate.ExtractionRecord) *ExtractionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionRecordUpdateOne) Select(field string, fields ...string) *ExtractionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionRecord entity.
func (_u *ExtractionRecordUpdateOne) Save(ctx context.Context) (*ExtractionRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRecordUpdateOne) SaveX(ctx context.Context) *ExtractionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ProcessingTimeMs(); ok {
		if err := extractionrecord.ProcessingTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "processing_time_ms", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.processing_time_ms": %w`, err)}
		}
	}
	if _u.mutation.ImageCleared() && len(_u.mutation.ImageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRecord.image"`)
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRecord.application"`)
	}
	return nil
}

func (_u *ExtractionRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrecord.Table, extractionrecord.Columns, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionrecord.FieldID)
		for _, f := range fields {
			if !extractionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(extractionrecord.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(extractionrecord.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.VerificationJSON(); ok {
		_spec.SetField(extractionrecord.FieldVerificationJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerificationJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldVerificationJSON, value)
		})
	}
	if _u.mutation.VerificationJSONCleared() {
		_spec.ClearField(extractionrecord.FieldVerificationJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(extractionrecord.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(extractionrecord.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionrecord.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionrecord.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ImageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extractionrecord.ImageTable,
			Columns: []string{extractionrecord.ImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extractionrecord.ImageTable,
			Columns: []string{extractionrecord.ImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.ApplicationTable,
			Columns: []string{extractionrecord.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.ApplicationTable,
			Columns: []string{extractionrecord.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
