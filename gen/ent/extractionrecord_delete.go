// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"labelproof/gen/ent/extractionrecord"
	"labelproof/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ExtractionRecordDelete is the builder for deleting a ExtractionRecord entity.
type ExtractionRecordDelete struct {
	config
	hooks    []Hook
	mutation *ExtractionRecordMutation
}

// Where appends a list predicates to the ExtractionRecordDelete builder.
func (_d *ExtractionRecordDelete) Where(ps ...predicate.ExtractionRecord) *ExtractionRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractionRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractionRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractionrecord.Table, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractionRecordDeleteOne is the builder for deleting a single ExtractionRecord entity.
type ExtractionRecordDeleteOne struct {
	_d *ExtractionRecordDelete
}

// Where appends a list predicates to the ExtractionRecordDelete builder.
func (_d *ExtractionRecordDeleteOne) Where(ps ...predicate.ExtractionRecord) *ExtractionRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractionRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractionrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
