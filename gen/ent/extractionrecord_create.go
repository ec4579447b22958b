// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"labelproof/gen/ent/application"
	"labelproof/gen/ent/extractionrecord"
	"labelproof/gen/ent/labelimage"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ExtractionRecordCreate is the builder for creating a ExtractionRecord entity.
type ExtractionRecordCreate struct {
	config
	mutation *ExtractionRecordMutation
	hooks    []Hook
}

// SetImageID sets the "image_id" field.
func (_c *ExtractionRecordCreate) SetImageID(v uuid.UUID) *ExtractionRecordCreate {
	_c.mutation.SetImageID(v)
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *ExtractionRecordCreate) SetApplicationID(v uuid.UUID) *ExtractionRecordCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *ExtractionRecordCreate) SetExtractedJSON(v []uint8) *ExtractionRecordCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetVerificationJSON sets the "verification_json" field.
func (_c *ExtractionRecordCreate) SetVerificationJSON(v []uint8) *ExtractionRecordCreate {
	_c.mutation.SetVerificationJSON(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractionRecordCreate) SetConfidence(v float32) *ExtractionRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableConfidence(v *float32) *ExtractionRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *ExtractionRecordCreate) SetProcessingTimeMs(v int64) *ExtractionRecordCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableProcessingTimeMs(v *int64) *ExtractionRecordCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ExtractionRecordCreate) SetModelName(v string) *ExtractionRecordCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableModelName(v *string) *ExtractionRecordCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionRecordCreate) SetCreatedAt(v time.Time) *ExtractionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableCreatedAt(v *time.Time) *ExtractionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionRecordCreate) SetUpdatedAt(v time.Time) *ExtractionRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionRecordCreate) SetID(v uuid.UUID) *ExtractionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableID(v *uuid.UUID) *ExtractionRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetImage sets the "image" edge to the LabelImage entity.
func (_c *ExtractionRecordCreate) SetImage(v *LabelImage) *ExtractionRecordCreate {
	return _c.SetImageID(v.ID)
}

// SetApplication sets the "application" edge to the Application entity.
func (_c *ExtractionRecordCreate) SetApplication(v *Application) *ExtractionRecordCreate {
	return _c.SetApplicationID(v.ID)
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_c *ExtractionRecordCreate) Mutation() *ExtractionRecordMutation {
	return _c.mutation
}

// Save creates the ExtractionRecord in the database.
func (_c *ExtractionRecordCreate) Save(ctx context.Context) (*ExtractionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionRecordCreate) SaveX(ctx context.Context) *ExtractionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionRecordCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := extractionrecord.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		v := extractionrecord.DefaultProcessingTimeMs
		_c.mutation.SetProcessingTimeMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractionrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionRecordCreate) check() error {
	if _, ok := _c.mutation.ImageID(); !ok {
		return &ValidationError{Name: "image_id", err: errors.New(`ent: missing required field "ExtractionRecord.image_id"`)}
	}
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "ExtractionRecord.application_id"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ExtractionRecord.confidence"`)}
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		return &ValidationError{Name: "processing_time_ms", err: errors.New(`ent: missing required field "ExtractionRecord.processing_time_ms"`)}
	}
	if v, ok := _c.mutation.ProcessingTimeMs(); ok {
		if err := extractionrecord.ProcessingTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "processing_time_ms", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.processing_time_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionRecord.updated_at"`)}
	}
	if len(_c.mutation.ImageIDs()) == 0 {
		return &ValidationError{Name: "image", err: errors.New(`ent: missing required edge "ExtractionRecord.image"`)}
	}
	if len(_c.mutation.ApplicationIDs()) == 0 {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "ExtractionRecord.application"`)}
	}
	return nil
}

func (_c *ExtractionRecordCreate) sqlSave(ctx context.Context) (*ExtractionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionRecordCreate) createSpec() (*ExtractionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionrecord.Table, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(extractionrecord.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.VerificationJSON(); ok {
		_spec.SetField(extractionrecord.FieldVerificationJSON, field.TypeJSON, value)
		_node.VerificationJSON = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extractionrecord.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(extractionrecord.FieldProcessingTimeMs, field.TypeInt64, value)
		_node.ProcessingTimeMs = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(extractionrecord.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ImageIDs(); len(nodes) > 0 {
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
		_node.ImageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
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
		_node.ApplicationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionRecordCreateBulk is the builder for creating many ExtractionRecord entities in bulk.
type ExtractionRecordCreateBulk struct {
	config
	err      error
	builders []*ExtractionRecordCreate
}

// Save creates the ExtractionRecord entities in the database.
func (_c *ExtractionRecordCreateBulk) Save(ctx context.Context) ([]*ExtractionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionRecordCreateBulk) SaveX(ctx context.Context) []*ExtractionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
