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

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
}

// SetSerialNumber sets the "serial_number" field.
func (_c *ApplicationCreate) SetSerialNumber(v string) *ApplicationCreate {
	_c.mutation.SetSerialNumber(v)
	return _c
}

// SetBrandName sets the "brand_name" field.
func (_c *ApplicationCreate) SetBrandName(v string) *ApplicationCreate {
	_c.mutation.SetBrandName(v)
	return _c
}

// SetFancifulName sets the "fanciful_name" field.
func (_c *ApplicationCreate) SetFancifulName(v string) *ApplicationCreate {
	_c.mutation.SetFancifulName(v)
	return _c
}

// SetNillableFancifulName sets the "fanciful_name" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableFancifulName(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetFancifulName(*v)
	}
	return _c
}

// SetProducerName sets the "producer_name" field.
func (_c *ApplicationCreate) SetProducerName(v string) *ApplicationCreate {
	_c.mutation.SetProducerName(v)
	return _c
}

// SetClassType sets the "class_type" field.
func (_c *ApplicationCreate) SetClassType(v string) *ApplicationCreate {
	_c.mutation.SetClassType(v)
	return _c
}

// SetNillableClassType sets the "class_type" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableClassType(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetClassType(*v)
	}
	return _c
}

// SetBeverageType sets the "beverage_type" field.
func (_c *ApplicationCreate) SetBeverageType(v application.BeverageType) *ApplicationCreate {
	_c.mutation.SetBeverageType(v)
	return _c
}

// SetAlcoholContent sets the "alcohol_content" field.
func (_c *ApplicationCreate) SetAlcoholContent(v string) *ApplicationCreate {
	_c.mutation.SetAlcoholContent(v)
	return _c
}

// SetNillableAlcoholContent sets the "alcohol_content" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableAlcoholContent(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetAlcoholContent(*v)
	}
	return _c
}

// SetNetContents sets the "net_contents" field.
func (_c *ApplicationCreate) SetNetContents(v string) *ApplicationCreate {
	_c.mutation.SetNetContents(v)
	return _c
}

// SetNillableNetContents sets the "net_contents" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableNetContents(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetNetContents(*v)
	}
	return _c
}

// SetGrapeVarietal sets the "grape_varietal" field.
func (_c *ApplicationCreate) SetGrapeVarietal(v string) *ApplicationCreate {
	_c.mutation.SetGrapeVarietal(v)
	return _c
}

// SetNillableGrapeVarietal sets the "grape_varietal" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableGrapeVarietal(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetGrapeVarietal(*v)
	}
	return _c
}

// SetAppellation sets the "appellation" field.
func (_c *ApplicationCreate) SetAppellation(v string) *ApplicationCreate {
	_c.mutation.SetAppellation(v)
	return _c
}

// SetNillableAppellation sets the "appellation" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableAppellation(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetAppellation(*v)
	}
	return _c
}

// SetVintage sets the "vintage" field.
func (_c *ApplicationCreate) SetVintage(v string) *ApplicationCreate {
	_c.mutation.SetVintage(v)
	return _c
}

// SetNillableVintage sets the "vintage" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableVintage(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetVintage(*v)
	}
	return _c
}

// SetCountryOfOrigin sets the "country_of_origin" field.
func (_c *ApplicationCreate) SetCountryOfOrigin(v string) *ApplicationCreate {
	_c.mutation.SetCountryOfOrigin(v)
	return _c
}

// SetNillableCountryOfOrigin sets the "country_of_origin" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableCountryOfOrigin(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetCountryOfOrigin(*v)
	}
	return _c
}

// SetHealthWarning sets the "health_warning" field.
func (_c *ApplicationCreate) SetHealthWarning(v string) *ApplicationCreate {
	_c.mutation.SetHealthWarning(v)
	return _c
}

// SetNillableHealthWarning sets the "health_warning" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableHealthWarning(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetHealthWarning(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApplicationCreate) SetStatus(v application.Status) *ApplicationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableStatus(v *application.Status) *ApplicationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReviewNotes sets the "review_notes" field.
func (_c *ApplicationCreate) SetReviewNotes(v string) *ApplicationCreate {
	_c.mutation.SetReviewNotes(v)
	return _c
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableReviewNotes(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetReviewNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationCreate) SetCreatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableCreatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationCreate) SetUpdatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationCreate) SetID(v uuid.UUID) *ApplicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableID(v *uuid.UUID) *ApplicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddImageIDs adds the "images" edge to the LabelImage entity by IDs.
func (_c *ApplicationCreate) AddImageIDs(ids ...uuid.UUID) *ApplicationCreate {
	_c.mutation.AddImageIDs(ids...)
	return _c
}

// AddImages adds the "images" edges to the LabelImage entity.
func (_c *ApplicationCreate) AddImages(v ...*LabelImage) *ApplicationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImageIDs(ids...)
}

// AddExtractionIDs adds the "extractions" edge to the ExtractionRecord entity by IDs.
func (_c *ApplicationCreate) AddExtractionIDs(ids ...uuid.UUID) *ApplicationCreate {
	_c.mutation.AddExtractionIDs(ids...)
	return _c
}

// AddExtractions adds the "extractions" edges to the ExtractionRecord entity.
func (_c *ApplicationCreate) AddExtractions(v ...*ExtractionRecord) *ApplicationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExtractionIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_c *ApplicationCreate) Mutation() *ApplicationMutation {
	return _c.mutation
}

// Save creates the Application in the database.
func (_c *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := application.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := application.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := application.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationCreate) check() error {
	if _, ok := _c.mutation.SerialNumber(); !ok {
		return &ValidationError{Name: "serial_number", err: errors.New(`ent: missing required field "Application.serial_number"`)}
	}
	if v, ok := _c.mutation.SerialNumber(); ok {
		if err := application.SerialNumberValidator(v); err != nil {
			return &ValidationError{Name: "serial_number", err: fmt.Errorf(`ent: validator failed for field "Application.serial_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BrandName(); !ok {
		return &ValidationError{Name: "brand_name", err: errors.New(`ent: missing required field "Application.brand_name"`)}
	}
	if v, ok := _c.mutation.BrandName(); ok {
		if err := application.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`ent: validator failed for field "Application.brand_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProducerName(); !ok {
		return &ValidationError{Name: "producer_name", err: errors.New(`ent: missing required field "Application.producer_name"`)}
	}
	if v, ok := _c.mutation.ProducerName(); ok {
		if err := application.ProducerNameValidator(v); err != nil {
			return &ValidationError{Name: "producer_name", err: fmt.Errorf(`ent: validator failed for field "Application.producer_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BeverageType(); !ok {
		return &ValidationError{Name: "beverage_type", err: errors.New(`ent: missing required field "Application.beverage_type"`)}
	}
	if v, ok := _c.mutation.BeverageType(); ok {
		if err := application.BeverageTypeValidator(v); err != nil {
			return &ValidationError{Name: "beverage_type", err: fmt.Errorf(`ent: validator failed for field "Application.beverage_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Application.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Application.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	return nil
}

func (_c *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
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

func (_c *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SerialNumber(); ok {
		_spec.SetField(application.FieldSerialNumber, field.TypeString, value)
		_node.SerialNumber = value
	}
	if value, ok := _c.mutation.BrandName(); ok {
		_spec.SetField(application.FieldBrandName, field.TypeString, value)
		_node.BrandName = value
	}
	if value, ok := _c.mutation.FancifulName(); ok {
		_spec.SetField(application.FieldFancifulName, field.TypeString, value)
		_node.FancifulName = value
	}
	if value, ok := _c.mutation.ProducerName(); ok {
		_spec.SetField(application.FieldProducerName, field.TypeString, value)
		_node.ProducerName = value
	}
	if value, ok := _c.mutation.ClassType(); ok {
		_spec.SetField(application.FieldClassType, field.TypeString, value)
		_node.ClassType = value
	}
	if value, ok := _c.mutation.BeverageType(); ok {
		_spec.SetField(application.FieldBeverageType, field.TypeEnum, value)
		_node.BeverageType = value
	}
	if value, ok := _c.mutation.AlcoholContent(); ok {
		_spec.SetField(application.FieldAlcoholContent, field.TypeString, value)
		_node.AlcoholContent = value
	}
	if value, ok := _c.mutation.NetContents(); ok {
		_spec.SetField(application.FieldNetContents, field.TypeString, value)
		_node.NetContents = value
	}
	if value, ok := _c.mutation.GrapeVarietal(); ok {
		_spec.SetField(application.FieldGrapeVarietal, field.TypeString, value)
		_node.GrapeVarietal = value
	}
	if value, ok := _c.mutation.Appellation(); ok {
		_spec.SetField(application.FieldAppellation, field.TypeString, value)
		_node.Appellation = value
	}
	if value, ok := _c.mutation.Vintage(); ok {
		_spec.SetField(application.FieldVintage, field.TypeString, value)
		_node.Vintage = value
	}
	if value, ok := _c.mutation.CountryOfOrigin(); ok {
		_spec.SetField(application.FieldCountryOfOrigin, field.TypeString, value)
		_node.CountryOfOrigin = value
	}
	if value, ok := _c.mutation.HealthWarning(); ok {
		_spec.SetField(application.FieldHealthWarning, field.TypeString, value)
		_node.HealthWarning = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReviewNotes(); ok {
		_spec.SetField(application.FieldReviewNotes, field.TypeString, value)
		_node.ReviewNotes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ImagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.ImagesTable,
			Columns: []string{application.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labelimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExtractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.ExtractionsTable,
			Columns: []string{application.ExtractionsColumn},
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

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
}

// Save creates the Application entities in the database.
func (_c *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Application, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
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
func (_c *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
