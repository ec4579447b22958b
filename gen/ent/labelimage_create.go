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

// LabelImageCreate is the builder for creating a LabelImage entity.
type LabelImageCreate struct {
	config
	mutation *LabelImageMutation
	hooks    []Hook
}

// SetApplicationID sets the "application_id" field.
func (_c *LabelImageCreate) SetApplicationID(v uuid.UUID) *LabelImageCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *LabelImageCreate) SetRole(v labelimage.Role) *LabelImageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *LabelImageCreate) SetContentType(v string) *LabelImageCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetData sets the "data" field.
func (_c *LabelImageCreate) SetData(v []byte) *LabelImageCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *LabelImageCreate) SetFileSize(v int) *LabelImageCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *LabelImageCreate) SetUploadedAt(v time.Time) *LabelImageCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *LabelImageCreate) SetNillableUploadedAt(v *time.Time) *LabelImageCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabelImageCreate) SetID(v uuid.UUID) *LabelImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabelImageCreate) SetNillableID(v *uuid.UUID) *LabelImageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetApplication sets the "application" edge to the Application entity.
func (_c *LabelImageCreate) SetApplication(v *Application) *LabelImageCreate {
	return _c.SetApplicationID(v.ID)
}

// SetExtractionID sets the "extraction" edge to the ExtractionRecord entity by ID.
func (_c *LabelImageCreate) SetExtractionID(id uuid.UUID) *LabelImageCreate {
	_c.mutation.SetExtractionID(id)
	return _c
}

// SetNillableExtractionID sets the "extraction" edge to the ExtractionRecord entity by ID if the given value is not nil.
func (_c *LabelImageCreate) SetNillableExtractionID(id *uuid.UUID) *LabelImageCreate {
	if id != nil {
		_c = _c.SetExtractionID(*id)
	}
	return _c
}

// SetExtraction sets the "extraction" edge to the ExtractionRecord entity.
func (_c *LabelImageCreate) SetExtraction(v *ExtractionRecord) *LabelImageCreate {
	return _c.SetExtractionID(v.ID)
}

// Mutation returns the LabelImageMutation object of the builder.
func (_c *LabelImageCreate) Mutation() *LabelImageMutation {
	return _c.mutation
}

// Save creates the LabelImage in the database.
func (_c *LabelImageCreate) Save(ctx context.Context) (*LabelImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabelImageCreate) SaveX(ctx context.Context) *LabelImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabelImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabelImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabelImageCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := labelimage.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := labelimage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabelImageCreate) check() error {
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "LabelImage.application_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "LabelImage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := labelimage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "LabelImage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "LabelImage.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := labelimage.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "LabelImage.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "LabelImage.data"`)}
	}
	if v, ok := _c.mutation.Data(); ok {
		if err := labelimage.DataValidator(v); err != nil {
			return &ValidationError{Name: "data", err: fmt.Errorf(`ent: validator failed for field "LabelImage.data": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "LabelImage.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := labelimage.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "LabelImage.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "LabelImage.uploaded_at"`)}
	}
	if len(_c.mutation.ApplicationIDs()) == 0 {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "LabelImage.application"`)}
	}
	return nil
}

func (_c *LabelImageCreate) sqlSave(ctx context.Context) (*LabelImage, error) {
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

func (_c *LabelImageCreate) createSpec() (*LabelImage, *sqlgraph.CreateSpec) {
	var (
		_node = &LabelImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labelimage.Table, sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(labelimage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(labelimage.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(labelimage.FieldData, field.TypeBytes, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(labelimage.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(labelimage.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labelimage.ApplicationTable,
			Columns: []string{labelimage.ApplicationColumn},
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
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   labelimage.ExtractionTable,
			Columns: []string{labelimage.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LabelImageCreateBulk is the builder for creating many LabelImage entities in bulk.
type LabelImageCreateBulk struct {
	config
	err      error
	builders []*LabelImageCreate
}

// Save creates the LabelImage entities in the database.
func (_c *LabelImageCreateBulk) Save(ctx context.Context) ([]*LabelImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabelImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabelImageMutation)
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
func (_c *LabelImageCreateBulk) SaveX(ctx context.Context) []*LabelImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabelImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabelImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
