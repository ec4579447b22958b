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
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// LabelImageUpdate is the builder for updating LabelImage entities.
type LabelImageUpdate struct {
	config
	hooks    []Hook
	mutation *LabelImageMutation
}

// Where appends a list predicates to the LabelImageUpdate builder.
func (_u *LabelImageUpdate) Where(ps ...predicate.LabelImage) *LabelImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *LabelImageUpdate) SetApplicationID(v uuid.UUID) *LabelImageUpdate {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *LabelImageUpdate) SetNillableApplicationID(v *uuid.UUID) *LabelImageUpdate {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *LabelImageUpdate) SetRole(v labelimage.Role) *LabelImageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *LabelImageUpdate) SetNillableRole(v *labelimage.Role) *LabelImageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *LabelImageUpdate) SetContentType(v string) *LabelImageUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *LabelImageUpdate) SetNillableContentType(v *string) *LabelImageUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *LabelImageUpdate) SetData(v []byte) *LabelImageUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *LabelImageUpdate) SetFileSize(v int) *LabelImageUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *LabelImageUpdate) SetNillableFileSize(v *int) *LabelImageUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *LabelImageUpdate) AddFileSize(v int) *LabelImageUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *LabelImageUpdate) SetUploadedAt(v time.Time) *LabelImageUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *LabelImageUpdate) SetNillableUploadedAt(v *time.Time) *LabelImageUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *LabelImageUpdate) SetApplication(v *Application) *LabelImageUpdate {
	return _u.SetApplicationID(v.ID)
}

// SetExtractionID sets the "extraction" edge to the ExtractionRecord entity by ID.
func (_u *LabelImageUpdate) SetExtractionID(id uuid.UUID) *LabelImageUpdate {
	_u.mutation.SetExtractionID(id)
	return _u
}

// SetNillableExtractionID sets the "extraction" edge to the ExtractionRecord entity by ID if the given value is not nil.
func (_u *LabelImageUpdate) SetNillableExtractionID(id *uuid.UUID) *LabelImageUpdate {
	if id != nil {
		_u = _u.SetExtractionID(*id)
	}
	return _u
}

// SetExtraction sets the "extraction" edge to the ExtractionRecord entity.
func (_u *LabelImageUpdate) SetExtraction(v *ExtractionRecord) *LabelImageUpdate {
	return _u.SetExtractionID(v.ID)
}

// Mutation returns the LabelImageMutation object of the builder.
func (_u *LabelImageUpdate) Mutation() *LabelImageMutation {
	return _u.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *LabelImageUpdate) ClearApplication() *LabelImageUpdate {
	_u.mutation.ClearApplication()
	return _u
}

// ClearExtraction clears the "extraction" edge to the ExtractionRecord entity.
func (_u *LabelImageUpdate) ClearExtraction() *LabelImageUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabelImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabelImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabelImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabelImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabelImageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := labelimage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "LabelImage.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := labelimage.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "LabelImage.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Data(); ok {
		if err := labelimage.DataValidator(v); err != nil {
			return &ValidationError{Name: "data", err: fmt.Errorf(`ent: validator failed for field "LabelImage.data": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := labelimage.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "LabelImage.file_size": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LabelImage.application"`)
	}
	return nil
}

func (_u *LabelImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labelimage.Table, labelimage.Columns, sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(labelimage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(labelimage.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(labelimage.FieldData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(labelimage.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(labelimage.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(labelimage.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labelimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabelImageUpdateOne is the builder for updating a single LabelImage entity.
type LabelImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabelImageMutation
}

// SetApplicationID sets the "application_id" field.
func (_u *LabelImageUpdateOne) SetApplicationID(v uuid.UUID) *LabelImageUpdateOne {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillableApplicationID(v *uuid.UUID) *LabelImageUpdateOne {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *LabelImageUpdateOne) SetRole(v labelimage.Role) *LabelImageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillableRole(v *labelimage.Role) *LabelImageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *LabelImageUpdateOne) SetContentType(v string) *LabelImageUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillableContentType(v *string) *LabelImageUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *LabelImageUpdateOne) SetData(v []byte) *LabelImageUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *LabelImageUpdateOne) SetFileSize(v int) *LabelImageUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillableFileSize(v *int) *LabelImageUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *LabelImageUpdateOne) AddFileSize(v int) *LabelImageUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *LabelImageUpdateOne) SetUploadedAt(v time.Time) *LabelImageUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillableUploadedAt(v *time.Time) *LabelImageUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *LabelImageUpdateOne) SetApplication(v *Application) *LabelImageUpdateOne {
	return _u.SetApplicationID(v.ID)
}

// SetExtractionID sets the "extraction" edge to the ExtractionRecord entity by ID.
func (_u *LabelImageUpdateOne) SetExtractionID(id uuid.UUID) *LabelImageUpdateOne {
	_u.mutation.SetExtractionID(id)
	return _u
}

// SetNillableExtractionID sets the "extraction" edge to the ExtractionRecord entity by ID if the given value is not nil.
func (_u *LabelImageUpdateOne) SetNillableExtractionID(id *uuid.UUID) *LabelImageUpdateOne {
	if id != nil {
		_u = _u.SetExtractionID(*id)
	}
	return _u
}

// SetExtraction sets the "extraction" edge to the ExtractionRecord entity.
func (_u *LabelImageUpdateOne) SetExtraction(v *ExtractionRecord) *LabelImageUpdateOne {
	return _u.SetExtractionID(v.ID)
}

// Mutation returns the LabelImageMutation object of the builder.
func (_u *LabelImageUpdateOne) Mutation() *LabelImageMutation {
	return _u.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *LabelImageUpdateOne) ClearApplication() *LabelImageUpdateOne {
	_u.mutation.ClearApplication()
	return _u
}

// ClearExtraction clears the "extraction" edge to the ExtractionRecord entity.
func (_u *LabelImageUpdateOne) ClearExtraction() *LabelImageUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// Where appends a list predicates to the LabelImageUpdate builder.
func (_u *LabelImageUpdateOne) Where(ps ...predicate.LabelImage) *LabelImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabelImageUpdateOne) Select(field string, fields ...string) *LabelImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabelImage entity.
func (_u *LabelImageUpdateOne) Save(ctx context.Context) (*LabelImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabelImageUpdateOne) SaveX(ctx context.Context) *LabelImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabelImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabelImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabelImageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := labelimage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "LabelImage.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := labelimage.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "LabelImage.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Data(); ok {
		if err := labelimage.DataValidator(v); err != nil {
			return &ValidationError{Name: "data", err: fmt.Errorf(`ent: validator failed for field "LabelImage.data": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := labelimage.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "LabelImage.file_size": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LabelImage.application"`)
	}
	return nil
}

func (_u *LabelImageUpdateOne) sqlSave(ctx context.Context) (_node *LabelImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labelimage.Table, labelimage.Columns, sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LabelImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labelimage.FieldID)
		for _, f := range fields {
			if !labelimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != labelimage.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(labelimage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(labelimage.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(labelimage.FieldData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(labelimage.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(labelimage.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(labelimage.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LabelImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labelimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
