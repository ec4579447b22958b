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
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplication      = "Application"
	TypeExtractionRecord = "ExtractionRecord"
	TypeLabelImage       = "LabelImage"
)

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	serial_number      *string
	brand_name         *string
	fanciful_name      *string
	producer_name      *string
	class_type         *string
	beverage_type      *application.BeverageType
	alcohol_content    *string
	net_contents       *string
	grape_varietal     *string
	appellation        *string
	vintage            *string
	country_of_origin  *string
	health_warning     *string
	status             *application.Status
	review_notes       *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	images             map[uuid.UUID]struct{}
	removedimages      map[uuid.UUID]struct{}
	clearedimages      bool
	extractions        map[uuid.UUID]struct{}
	removedextractions map[uuid.UUID]struct{}
	clearedextractions bool
	done               bool
	oldValue           func(context.Context) (*Application, error)
	predicates         []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id uuid.UUID) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Application entities.
func (m *ApplicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSerialNumber sets the "serial_number" field.
func (m *ApplicationMutation) SetSerialNumber(s string) {
	m.serial_number = &s
}

// SerialNumber returns the value of the "serial_number" field in the mutation.
func (m *ApplicationMutation) SerialNumber() (r string, exists bool) {
	v := m.serial_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSerialNumber returns the old "serial_number" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSerialNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSerialNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSerialNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSerialNumber: %w", err)
	}
	return oldValue.SerialNumber, nil
}

// ResetSerialNumber resets all changes to the "serial_number" field.
func (m *ApplicationMutation) ResetSerialNumber() {
	m.serial_number = nil
}

// SetBrandName sets the "brand_name" field.
func (m *ApplicationMutation) SetBrandName(s string) {
	m.brand_name = &s
}

// BrandName returns the value of the "brand_name" field in the mutation.
func (m *ApplicationMutation) BrandName() (r string, exists bool) {
	v := m.brand_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandName returns the old "brand_name" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldBrandName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandName: %w", err)
	}
	return oldValue.BrandName, nil
}

// ResetBrandName resets all changes to the "brand_name" field.
func (m *ApplicationMutation) ResetBrandName() {
	m.brand_name = nil
}

// SetFancifulName sets the "fanciful_name" field.
func (m *ApplicationMutation) SetFancifulName(s string) {
	m.fanciful_name = &s
}

// FancifulName returns the value of the "fanciful_name" field in the mutation.
func (m *ApplicationMutation) FancifulName() (r string, exists bool) {
	v := m.fanciful_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFancifulName returns the old "fanciful_name" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldFancifulName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFancifulName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFancifulName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFancifulName: %w", err)
	}
	return oldValue.FancifulName, nil
}

// ClearFancifulName clears the value of the "fanciful_name" field.
func (m *ApplicationMutation) ClearFancifulName() {
	m.fanciful_name = nil
	m.clearedFields[application.FieldFancifulName] = struct{}{}
}

// FancifulNameCleared returns if the "fanciful_name" field was cleared in this mutation.
func (m *ApplicationMutation) FancifulNameCleared() bool {
	_, ok := m.clearedFields[application.FieldFancifulName]
	return ok
}

// ResetFancifulName resets all changes to the "fanciful_name" field.
func (m *ApplicationMutation) ResetFancifulName() {
	m.fanciful_name = nil
	delete(m.clearedFields, application.FieldFancifulName)
}

// SetProducerName sets the "producer_name" field.
func (m *ApplicationMutation) SetProducerName(s string) {
	m.producer_name = &s
}

// ProducerName returns the value of the "producer_name" field in the mutation.
func (m *ApplicationMutation) ProducerName() (r string, exists bool) {
	v := m.producer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProducerName returns the old "producer_name" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldProducerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducerName: %w", err)
	}
	return oldValue.ProducerName, nil
}

// ResetProducerName resets all changes to the "producer_name" field.
func (m *ApplicationMutation) ResetProducerName() {
	m.producer_name = nil
}

// SetClassType sets the "class_type" field.
func (m *ApplicationMutation) SetClassType(s string) {
	m.class_type = &s
}

// ClassType returns the value of the "class_type" field in the mutation.
func (m *ApplicationMutation) ClassType() (r string, exists bool) {
	v := m.class_type
	if v == nil {
		return
	}
	return *v, true
}

// OldClassType returns the old "class_type" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldClassType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassType: %w", err)
	}
	return oldValue.ClassType, nil
}

// ClearClassType clears the value of the "class_type" field.
func (m *ApplicationMutation) ClearClassType() {
	m.class_type = nil
	m.clearedFields[application.FieldClassType] = struct{}{}
}

// ClassTypeCleared returns if the "class_type" field was cleared in this mutation.
func (m *ApplicationMutation) ClassTypeCleared() bool {
	_, ok := m.clearedFields[application.FieldClassType]
	return ok
}

// ResetClassType resets all changes to the "class_type" field.
func (m *ApplicationMutation) ResetClassType() {
	m.class_type = nil
	delete(m.clearedFields, application.FieldClassType)
}

// SetBeverageType sets the "beverage_type" field.
func (m *ApplicationMutation) SetBeverageType(at application.BeverageType) {
	m.beverage_type = &at
}

// BeverageType returns the value of the "beverage_type" field in the mutation.
func (m *ApplicationMutation) BeverageType() (r application.BeverageType, exists bool) {
	v := m.beverage_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBeverageType returns the old "beverage_type" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldBeverageType(ctx context.Context) (v application.BeverageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeverageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeverageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeverageType: %w", err)
	}
	return oldValue.BeverageType, nil
}

// ResetBeverageType resets all changes to the "beverage_type" field.
func (m *ApplicationMutation) ResetBeverageType() {
	m.beverage_type = nil
}

// SetAlcoholContent sets the "alcohol_content" field.
func (m *ApplicationMutation) SetAlcoholContent(s string) {
	m.alcohol_content = &s
}

// AlcoholContent returns the value of the "alcohol_content" field in the mutation.
func (m *ApplicationMutation) AlcoholContent() (r string, exists bool) {
	v := m.alcohol_content
	if v == nil {
		return
	}
	return *v, true
}

// OldAlcoholContent returns the old "alcohol_content" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldAlcoholContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlcoholContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlcoholContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlcoholContent: %w", err)
	}
	return oldValue.AlcoholContent, nil
}

// ClearAlcoholContent clears the value of the "alcohol_content" field.
func (m *ApplicationMutation) ClearAlcoholContent() {
	m.alcohol_content = nil
	m.clearedFields[application.FieldAlcoholContent] = struct{}{}
}

// AlcoholContentCleared returns if the "alcohol_content" field was cleared in this mutation.
func (m *ApplicationMutation) AlcoholContentCleared() bool {
	_, ok := m.clearedFields[application.FieldAlcoholContent]
	return ok
}

// ResetAlcoholContent resets all changes to the "alcohol_content" field.
func (m *ApplicationMutation) ResetAlcoholContent() {
	m.alcohol_content = nil
	delete(m.clearedFields, application.FieldAlcoholContent)
}

// SetNetContents sets the "net_contents" field.
func (m *ApplicationMutation) SetNetContents(s string) {
	m.net_contents = &s
}

// NetContents returns the value of the "net_contents" field in the mutation.
func (m *ApplicationMutation) NetContents() (r string, exists bool) {
	v := m.net_contents
	if v == nil {
		return
	}
	return *v, true
}

// OldNetContents returns the old "net_contents" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldNetContents(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetContents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetContents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetContents: %w", err)
	}
	return oldValue.NetContents, nil
}

// ClearNetContents clears the value of the "net_contents" field.
func (m *ApplicationMutation) ClearNetContents() {
	m.net_contents = nil
	m.clearedFields[application.FieldNetContents] = struct{}{}
}

// NetContentsCleared returns if the "net_contents" field was cleared in this mutation.
func (m *ApplicationMutation) NetContentsCleared() bool {
	_, ok := m.clearedFields[application.FieldNetContents]
	return ok
}

// ResetNetContents resets all changes to the "net_contents" field.
func (m *ApplicationMutation) ResetNetContents() {
	m.net_contents = nil
	delete(m.clearedFields, application.FieldNetContents)
}

// SetGrapeVarietal sets the "grape_varietal" field.
func (m *ApplicationMutation) SetGrapeVarietal(s string) {
	m.grape_varietal = &s
}

// GrapeVarietal returns the value of the "grape_varietal" field in the mutation.
func (m *ApplicationMutation) GrapeVarietal() (r string, exists bool) {
	v := m.grape_varietal
	if v == nil {
		return
	}
	return *v, true
}

// OldGrapeVarietal returns the old "grape_varietal" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldGrapeVarietal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrapeVarietal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrapeVarietal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrapeVarietal: %w", err)
	}
	return oldValue.GrapeVarietal, nil
}

// ClearGrapeVarietal clears the value of the "grape_varietal" field.
func (m *ApplicationMutation) ClearGrapeVarietal() {
	m.grape_varietal = nil
	m.clearedFields[application.FieldGrapeVarietal] = struct{}{}
}

// GrapeVarietalCleared returns if the "grape_varietal" field was cleared in this mutation.
func (m *ApplicationMutation) GrapeVarietalCleared() bool {
	_, ok := m.clearedFields[application.FieldGrapeVarietal]
	return ok
}

// ResetGrapeVarietal resets all changes to the "grape_varietal" field.
func (m *ApplicationMutation) ResetGrapeVarietal() {
	m.grape_varietal = nil
	delete(m.clearedFields, application.FieldGrapeVarietal)
}

// SetAppellation sets the "appellation" field.
func (m *ApplicationMutation) SetAppellation(s string) {
	m.appellation = &s
}

// Appellation returns the value of the "appellation" field in the mutation.
func (m *ApplicationMutation) Appellation() (r string, exists bool) {
	v := m.appellation
	if v == nil {
		return
	}
	return *v, true
}

// OldAppellation returns the old "appellation" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldAppellation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppellation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppellation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppellation: %w", err)
	}
	return oldValue.Appellation, nil
}

// ClearAppellation clears the value of the "appellation" field.
func (m *ApplicationMutation) ClearAppellation() {
	m.appellation = nil
	m.clearedFields[application.FieldAppellation] = struct{}{}
}

// AppellationCleared returns if the "appellation" field was cleared in this mutation.
func (m *ApplicationMutation) AppellationCleared() bool {
	_, ok := m.clearedFields[application.FieldAppellation]
	return ok
}

// ResetAppellation resets all changes to the "appellation" field.
func (m *ApplicationMutation) ResetAppellation() {
	m.appellation = nil
	delete(m.clearedFields, application.FieldAppellation)
}

// SetVintage sets the "vintage" field.
func (m *ApplicationMutation) SetVintage(s string) {
	m.vintage = &s
}

// Vintage returns the value of the "vintage" field in the mutation.
func (m *ApplicationMutation) Vintage() (r string, exists bool) {
	v := m.vintage
	if v == nil {
		return
	}
	return *v, true
}

// OldVintage returns the old "vintage" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldVintage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVintage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVintage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVintage: %w", err)
	}
	return oldValue.Vintage, nil
}

// ClearVintage clears the value of the "vintage" field.
func (m *ApplicationMutation) ClearVintage() {
	m.vintage = nil
	m.clearedFields[application.FieldVintage] = struct{}{}
}

// VintageCleared returns if the "vintage" field was cleared in this mutation.
func (m *ApplicationMutation) VintageCleared() bool {
	_, ok := m.clearedFields[application.FieldVintage]
	return ok
}

// ResetVintage resets all changes to the "vintage" field.
func (m *ApplicationMutation) ResetVintage() {
	m.vintage = nil
	delete(m.clearedFields, application.FieldVintage)
}

// SetCountryOfOrigin sets the "country_of_origin" field.
func (m *ApplicationMutation) SetCountryOfOrigin(s string) {
	m.country_of_origin = &s
}

// CountryOfOrigin returns the value of the "country_of_origin" field in the mutation.
func (m *ApplicationMutation) CountryOfOrigin() (r string, exists bool) {
	v := m.country_of_origin
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryOfOrigin returns the old "country_of_origin" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCountryOfOrigin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryOfOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryOfOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryOfOrigin: %w", err)
	}
	return oldValue.CountryOfOrigin, nil
}

// ClearCountryOfOrigin clears the value of the "country_of_origin" field.
func (m *ApplicationMutation) ClearCountryOfOrigin() {
	m.country_of_origin = nil
	m.clearedFields[application.FieldCountryOfOrigin] = struct{}{}
}

// CountryOfOriginCleared returns if the "country_of_origin" field was cleared in this mutation.
func (m *ApplicationMutation) CountryOfOriginCleared() bool {
	_, ok := m.clearedFields[application.FieldCountryOfOrigin]
	return ok
}

// ResetCountryOfOrigin resets all changes to the "country_of_origin" field.
func (m *ApplicationMutation) ResetCountryOfOrigin() {
	m.country_of_origin = nil
	delete(m.clearedFields, application.FieldCountryOfOrigin)
}

// SetHealthWarning sets the "health_warning" field.
func (m *ApplicationMutation) SetHealthWarning(s string) {
	m.health_warning = &s
}

// HealthWarning returns the value of the "health_warning" field in the mutation.
func (m *ApplicationMutation) HealthWarning() (r string, exists bool) {
	v := m.health_warning
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthWarning returns the old "health_warning" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldHealthWarning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthWarning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthWarning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthWarning: %w", err)
	}
	return oldValue.HealthWarning, nil
}

// ClearHealthWarning clears the value of the "health_warning" field.
func (m *ApplicationMutation) ClearHealthWarning() {
	m.health_warning = nil
	m.clearedFields[application.FieldHealthWarning] = struct{}{}
}

// HealthWarningCleared returns if the "health_warning" field was cleared in this mutation.
func (m *ApplicationMutation) HealthWarningCleared() bool {
	_, ok := m.clearedFields[application.FieldHealthWarning]
	return ok
}

// ResetHealthWarning resets all changes to the "health_warning" field.
func (m *ApplicationMutation) ResetHealthWarning() {
	m.health_warning = nil
	delete(m.clearedFields, application.FieldHealthWarning)
}

// SetStatus sets the "status" field.
func (m *ApplicationMutation) SetStatus(a application.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApplicationMutation) Status() (r application.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStatus(ctx context.Context) (v application.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetReviewNotes sets the "review_notes" field.
func (m *ApplicationMutation) SetReviewNotes(s string) {
	m.review_notes = &s
}

// ReviewNotes returns the value of the "review_notes" field in the mutation.
func (m *ApplicationMutation) ReviewNotes() (r string, exists bool) {
	v := m.review_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewNotes returns the old "review_notes" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldReviewNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewNotes: %w", err)
	}
	return oldValue.ReviewNotes, nil
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (m *ApplicationMutation) ClearReviewNotes() {
	m.review_notes = nil
	m.clearedFields[application.FieldReviewNotes] = struct{}{}
}

// ReviewNotesCleared returns if the "review_notes" field was cleared in this mutation.
func (m *ApplicationMutation) ReviewNotesCleared() bool {
	_, ok := m.clearedFields[application.FieldReviewNotes]
	return ok
}

// ResetReviewNotes resets all changes to the "review_notes" field.
func (m *ApplicationMutation) ResetReviewNotes() {
	m.review_notes = nil
	delete(m.clearedFields, application.FieldReviewNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddImageIDs adds the "images" edge to the LabelImage entity by ids.
func (m *ApplicationMutation) AddImageIDs(ids ...uuid.UUID) {
	if m.images == nil {
		m.images = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.images[ids[i]] = struct{}{}
	}
}

// ClearImages clears the "images" edge to the LabelImage entity.
func (m *ApplicationMutation) ClearImages() {
	m.clearedimages = true
}

// ImagesCleared reports if the "images" edge to the LabelImage entity was cleared.
func (m *ApplicationMutation) ImagesCleared() bool {
	return m.clearedimages
}

// RemoveImageIDs removes the "images" edge to the LabelImage entity by IDs.
func (m *ApplicationMutation) RemoveImageIDs(ids ...uuid.UUID) {
	if m.removedimages == nil {
		m.removedimages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.images, ids[i])
		m.removedimages[ids[i]] = struct{}{}
	}
}

// RemovedImages returns the removed IDs of the "images" edge to the LabelImage entity.
func (m *ApplicationMutation) RemovedImagesIDs() (ids []uuid.UUID) {
	for id := range m.removedimages {
		ids = append(ids, id)
	}
	return
}

// ImagesIDs returns the "images" edge IDs in the mutation.
func (m *ApplicationMutation) ImagesIDs() (ids []uuid.UUID) {
	for id := range m.images {
		ids = append(ids, id)
	}
	return
}

// ResetImages resets all changes to the "images" edge.
func (m *ApplicationMutation) ResetImages() {
	m.images = nil
	m.clearedimages = false
	m.removedimages = nil
}

// AddExtractionIDs adds the "extractions" edge to the ExtractionRecord entity by ids.
func (m *ApplicationMutation) AddExtractionIDs(ids ...uuid.UUID) {
	if m.extractions == nil {
		m.extractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the ExtractionRecord entity.
func (m *ApplicationMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the ExtractionRecord entity was cleared.
func (m *ApplicationMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the ExtractionRecord entity by IDs.
func (m *ApplicationMutation) RemoveExtractionIDs(ids ...uuid.UUID) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the ExtractionRecord entity.
func (m *ApplicationMutation) RemovedExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *ApplicationMutation) ExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *ApplicationMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.serial_number != nil {
		fields = append(fields, application.FieldSerialNumber)
	}
	if m.brand_name != nil {
		fields = append(fields, application.FieldBrandName)
	}
	if m.fanciful_name != nil {
		fields = append(fields, application.FieldFancifulName)
	}
	if m.producer_name != nil {
		fields = append(fields, application.FieldProducerName)
	}
	if m.class_type != nil {
		fields = append(fields, application.FieldClassType)
	}
	if m.beverage_type != nil {
		fields = append(fields, application.FieldBeverageType)
	}
	if m.alcohol_content != nil {
		fields = append(fields, application.FieldAlcoholContent)
	}
	if m.net_contents != nil {
		fields = append(fields, application.FieldNetContents)
	}
	if m.grape_varietal != nil {
		fields = append(fields, application.FieldGrapeVarietal)
	}
	if m.appellation != nil {
		fields = append(fields, application.FieldAppellation)
	}
	if m.vintage != nil {
		fields = append(fields, application.FieldVintage)
	}
	if m.country_of_origin != nil {
		fields = append(fields, application.FieldCountryOfOrigin)
	}
	if m.health_warning != nil {
		fields = append(fields, application.FieldHealthWarning)
	}
	if m.status != nil {
		fields = append(fields, application.FieldStatus)
	}
	if m.review_notes != nil {
		fields = append(fields, application.FieldReviewNotes)
	}
	if m.created_at != nil {
		fields = append(fields, application.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, application.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldSerialNumber:
		return m.SerialNumber()
	case application.FieldBrandName:
		return m.BrandName()
	case application.FieldFancifulName:
		return m.FancifulName()
	case application.FieldProducerName:
		return m.ProducerName()
	case application.FieldClassType:
		return m.ClassType()
	case application.FieldBeverageType:
		return m.BeverageType()
	case application.FieldAlcoholContent:
		return m.AlcoholContent()
	case application.FieldNetContents:
		return m.NetContents()
	case application.FieldGrapeVarietal:
		return m.GrapeVarietal()
	case application.FieldAppellation:
		return m.Appellation()
	case application.FieldVintage:
		return m.Vintage()
	case application.FieldCountryOfOrigin:
		return m.CountryOfOrigin()
	case application.FieldHealthWarning:
		return m.HealthWarning()
	case application.FieldStatus:
		return m.Status()
	case application.FieldReviewNotes:
		return m.ReviewNotes()
	case application.FieldCreatedAt:
		return m.CreatedAt()
	case application.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldSerialNumber:
		return m.OldSerialNumber(ctx)
	case application.FieldBrandName:
		return m.OldBrandName(ctx)
	case application.FieldFancifulName:
		return m.OldFancifulName(ctx)
	case application.FieldProducerName:
		return m.OldProducerName(ctx)
	case application.FieldClassType:
		return m.OldClassType(ctx)
	case application.FieldBeverageType:
		return m.OldBeverageType(ctx)
	case application.FieldAlcoholContent:
		return m.OldAlcoholContent(ctx)
	case application.FieldNetContents:
		return m.OldNetContents(ctx)
	case application.FieldGrapeVarietal:
		return m.OldGrapeVarietal(ctx)
	case application.FieldAppellation:
		return m.OldAppellation(ctx)
	case application.FieldVintage:
		return m.OldVintage(ctx)
	case application.FieldCountryOfOrigin:
		return m.OldCountryOfOrigin(ctx)
	case application.FieldHealthWarning:
		return m.OldHealthWarning(ctx)
	case application.FieldStatus:
		return m.OldStatus(ctx)
	case application.FieldReviewNotes:
		return m.OldReviewNotes(ctx)
	case application.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case application.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldSerialNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSerialNumber(v)
		return nil
	case application.FieldBrandName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandName(v)
		return nil
	case application.FieldFancifulName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFancifulName(v)
		return nil
	case application.FieldProducerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducerName(v)
		return nil
	case application.FieldClassType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassType(v)
		return nil
	case application.FieldBeverageType:
		v, ok := value.(application.BeverageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeverageType(v)
		return nil
	case application.FieldAlcoholContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlcoholContent(v)
		return nil
	case application.FieldNetContents:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetContents(v)
		return nil
	case application.FieldGrapeVarietal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrapeVarietal(v)
		return nil
	case application.FieldAppellation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppellation(v)
		return nil
	case application.FieldVintage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVintage(v)
		return nil
	case application.FieldCountryOfOrigin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryOfOrigin(v)
		return nil
	case application.FieldHealthWarning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthWarning(v)
		return nil
	case application.FieldStatus:
		v, ok := value.(application.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case application.FieldReviewNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewNotes(v)
		return nil
	case application.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case application.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(application.FieldFancifulName) {
		fields = append(fields, application.FieldFancifulName)
	}
	if m.FieldCleared(application.FieldClassType) {
		fields = append(fields, application.FieldClassType)
	}
	if m.FieldCleared(application.FieldAlcoholContent) {
		fields = append(fields, application.FieldAlcoholContent)
	}
	if m.FieldCleared(application.FieldNetContents) {
		fields = append(fields, application.FieldNetContents)
	}
	if m.FieldCleared(application.FieldGrapeVarietal) {
		fields = append(fields, application.FieldGrapeVarietal)
	}
	if m.FieldCleared(application.FieldAppellation) {
		fields = append(fields, application.FieldAppellation)
	}
	if m.FieldCleared(application.FieldVintage) {
		fields = append(fields, application.FieldVintage)
	}
	if m.FieldCleared(application.FieldCountryOfOrigin) {
		fields = append(fields, application.FieldCountryOfOrigin)
	}
	if m.FieldCleared(application.FieldHealthWarning) {
		fields = append(fields, application.FieldHealthWarning)
	}
	if m.FieldCleared(application.FieldReviewNotes) {
		fields = append(fields, application.FieldReviewNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	switch name {
	case application.FieldFancifulName:
		m.ClearFancifulName()
		return nil
	case application.FieldClassType:
		m.ClearClassType()
		return nil
	case application.FieldAlcoholContent:
		m.ClearAlcoholContent()
		return nil
	case application.FieldNetContents:
		m.ClearNetContents()
		return nil
	case application.FieldGrapeVarietal:
		m.ClearGrapeVarietal()
		return nil
	case application.FieldAppellation:
		m.ClearAppellation()
		return nil
	case application.FieldVintage:
		m.ClearVintage()
		return nil
	case application.FieldCountryOfOrigin:
		m.ClearCountryOfOrigin()
		return nil
	case application.FieldHealthWarning:
		m.ClearHealthWarning()
		return nil
	case application.FieldReviewNotes:
		m.ClearReviewNotes()
		return nil
	}
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldSerialNumber:
		m.ResetSerialNumber()
		return nil
	case application.FieldBrandName:
		m.ResetBrandName()
		return nil
	case application.FieldFancifulName:
		m.ResetFancifulName()
		return nil
	case application.FieldProducerName:
		m.ResetProducerName()
		return nil
	case application.FieldClassType:
		m.ResetClassType()
		return nil
	case application.FieldBeverageType:
		m.ResetBeverageType()
		return nil
	case application.FieldAlcoholContent:
		m.ResetAlcoholContent()
		return nil
	case application.FieldNetContents:
		m.ResetNetContents()
		return nil
	case application.FieldGrapeVarietal:
		m.ResetGrapeVarietal()
		return nil
	case application.FieldAppellation:
		m.ResetAppellation()
		return nil
	case application.FieldVintage:
		m.ResetVintage()
		return nil
	case application.FieldCountryOfOrigin:
		m.ResetCountryOfOrigin()
		return nil
	case application.FieldHealthWarning:
		m.ResetHealthWarning()
		return nil
	case application.FieldStatus:
		m.ResetStatus()
		return nil
	case application.FieldReviewNotes:
		m.ResetReviewNotes()
		return nil
	case application.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case application.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.images != nil {
		edges = append(edges, application.EdgeImages)
	}
	if m.extractions != nil {
		edges = append(edges, application.EdgeExtractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeImages:
		ids := make([]ent.Value, 0, len(m.images))
		for id := range m.images {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedimages != nil {
		edges = append(edges, application.EdgeImages)
	}
	if m.removedextractions != nil {
		edges = append(edges, application.EdgeExtractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeImages:
		ids := make([]ent.Value, 0, len(m.removedimages))
		for id := range m.removedimages {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedimages {
		edges = append(edges, application.EdgeImages)
	}
	if m.clearedextractions {
		edges = append(edges, application.EdgeExtractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case application.EdgeImages:
		return m.clearedimages
	case application.EdgeExtractions:
		return m.clearedextractions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	switch name {
	case application.EdgeImages:
		m.ResetImages()
		return nil
	case application.EdgeExtractions:
		m.ResetExtractions()
		return nil
	}
	return fmt.Errorf("unknown Application edge %s", name)
}

// ExtractionRecordMutation represents an operation that mutates the ExtractionRecord nodes in the graph.
type ExtractionRecordMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	extracted_json          *[]uint8
	appendextracted_json    []uint8
	verification_json       *[]uint8
	appendverification_json []uint8
	confidence              *float32
	addconfidence           *float32
	processing_time_ms      *int64
	addprocessing_time_ms   *int64
	model_name              *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	image                   *uuid.UUID
	clearedimage            bool
	application             *uuid.UUID
	clearedapplication      bool
	done                    bool
	oldValue                func(context.Context) (*ExtractionRecord, error)
	predicates              []predicate.ExtractionRecord
}

var _ ent.Mutation = (*ExtractionRecordMutation)(nil)

// extractionrecordOption allows management of the mutation configuration using functional options.
type extractionrecordOption func(*ExtractionRecordMutation)

// newExtractionRecordMutation creates new mutation for the ExtractionRecord entity.
func newExtractionRecordMutation(c config, op Op, opts ...extractionrecordOption) *ExtractionRecordMutation {
	m := &ExtractionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionRecordID sets the ID field of the mutation.
func withExtractionRecordID(id uuid.UUID) extractionrecordOption {
	return func(m *ExtractionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionRecord
		)
		m.oldValue = func(ctx context.Context) (*ExtractionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionRecord sets the old ExtractionRecord of the mutation.
func withExtractionRecord(node *ExtractionRecord) extractionrecordOption {
	return func(m *ExtractionRecordMutation) {
		m.oldValue = func(context.Context) (*ExtractionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionRecord entities.
func (m *ExtractionRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetImageID sets the "image_id" field.
func (m *ExtractionRecordMutation) SetImageID(u uuid.UUID) {
	m.image = &u
}

// ImageID returns the value of the "image_id" field in the mutation.
func (m *ExtractionRecordMutation) ImageID() (r uuid.UUID, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImageID returns the old "image_id" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldImageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageID: %w", err)
	}
	return oldValue.ImageID, nil
}

// ResetImageID resets all changes to the "image_id" field.
func (m *ExtractionRecordMutation) ResetImageID() {
	m.image = nil
}

// SetApplicationID sets the "application_id" field.
func (m *ExtractionRecordMutation) SetApplicationID(u uuid.UUID) {
	m.application = &u
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *ExtractionRecordMutation) ApplicationID() (r uuid.UUID, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldApplicationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *ExtractionRecordMutation) ResetApplicationID() {
	m.application = nil
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractionRecordMutation) SetExtractedJSON(u []uint8) {
	m.extracted_json = &u
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractionRecordMutation) ExtractedJSON() (r []uint8, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldExtractedJSON(ctx context.Context) (v []uint8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds u to the "extracted_json" field.
func (m *ExtractionRecordMutation) AppendExtractedJSON(u []uint8) {
	m.appendextracted_json = append(m.appendextracted_json, u...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractionRecordMutation) AppendedExtractedJSON() ([]uint8, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractionRecordMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractionrecord.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractionRecordMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractionrecord.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractionRecordMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractionrecord.FieldExtractedJSON)
}

// SetVerificationJSON sets the "verification_json" field.
func (m *ExtractionRecordMutation) SetVerificationJSON(u []uint8) {
	m.verification_json = &u
	m.appendverification_json = nil
}

// VerificationJSON returns the value of the "verification_json" field in the mutation.
func (m *ExtractionRecordMutation) VerificationJSON() (r []uint8, exists bool) {
	v := m.verification_json
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationJSON returns the old "verification_json" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldVerificationJSON(ctx context.Context) (v []uint8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationJSON: %w", err)
	}
	return oldValue.VerificationJSON, nil
}

// AppendVerificationJSON adds u to the "verification_json" field.
func (m *ExtractionRecordMutation) AppendVerificationJSON(u []uint8) {
	m.appendverification_json = append(m.appendverification_json, u...)
}

// AppendedVerificationJSON returns the list of values that were appended to the "verification_json" field in this mutation.
func (m *ExtractionRecordMutation) AppendedVerificationJSON() ([]uint8, bool) {
	if len(m.appendverification_json) == 0 {
		return nil, false
	}
	return m.appendverification_json, true
}

// ClearVerificationJSON clears the value of the "verification_json" field.
func (m *ExtractionRecordMutation) ClearVerificationJSON() {
	m.verification_json = nil
	m.appendverification_json = nil
	m.clearedFields[extractionrecord.FieldVerificationJSON] = struct{}{}
}

// VerificationJSONCleared returns if the "verification_json" field was cleared in this mutation.
func (m *ExtractionRecordMutation) VerificationJSONCleared() bool {
	_, ok := m.clearedFields[extractionrecord.FieldVerificationJSON]
	return ok
}

// ResetVerificationJSON resets all changes to the "verification_json" field.
func (m *ExtractionRecordMutation) ResetVerificationJSON() {
	m.verification_json = nil
	m.appendverification_json = nil
	delete(m.clearedFields, extractionrecord.FieldVerificationJSON)
}

// SetConfidence sets the "confidence" field.
func (m *ExtractionRecordMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractionRecordMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractionRecordMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractionRecordMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractionRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *ExtractionRecordMutation) SetProcessingTimeMs(i int64) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *ExtractionRecordMutation) ProcessingTimeMs() (r int64, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldProcessingTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *ExtractionRecordMutation) AddProcessingTimeMs(i int64) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *ExtractionRecordMutation) AddedProcessingTimeMs() (r int64, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *ExtractionRecordMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
}

// SetModelName sets the "model_name" field.
func (m *ExtractionRecordMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractionRecordMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractionRecordMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractionrecord.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractionRecordMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractionrecord.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractionRecordMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractionrecord.FieldModelName)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearImage clears the "image" edge to the LabelImage entity.
func (m *ExtractionRecordMutation) ClearImage() {
	m.clearedimage = true
	m.clearedFields[extractionrecord.FieldImageID] = struct{}{}
}

// ImageCleared reports if the "image" edge to the LabelImage entity was cleared.
func (m *ExtractionRecordMutation) ImageCleared() bool {
	return m.clearedimage
}

// ImageIDs returns the "image" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImageID instead. It exists only for internal usage by the builders.
func (m *ExtractionRecordMutation) ImageIDs() (ids []uuid.UUID) {
	if id := m.image; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImage resets all changes to the "image" edge.
func (m *ExtractionRecordMutation) ResetImage() {
	m.image = nil
	m.clearedimage = false
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *ExtractionRecordMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[extractionrecord.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *ExtractionRecordMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *ExtractionRecordMutation) ApplicationIDs() (ids []uuid.UUID) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *ExtractionRecordMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the ExtractionRecordMutation builder.
func (m *ExtractionRecordMutation) Where(ps ...predicate.ExtractionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionRecord).
func (m *ExtractionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.image != nil {
		fields = append(fields, extractionrecord.FieldImageID)
	}
	if m.application != nil {
		fields = append(fields, extractionrecord.FieldApplicationID)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractionrecord.FieldExtractedJSON)
	}
	if m.verification_json != nil {
		fields = append(fields, extractionrecord.FieldVerificationJSON)
	}
	if m.confidence != nil {
		fields = append(fields, extractionrecord.FieldConfidence)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, extractionrecord.FieldProcessingTimeMs)
	}
	if m.model_name != nil {
		fields = append(fields, extractionrecord.FieldModelName)
	}
	if m.created_at != nil {
		fields = append(fields, extractionrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractionrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionrecord.FieldImageID:
		return m.ImageID()
	case extractionrecord.FieldApplicationID:
		return m.ApplicationID()
	case extractionrecord.FieldExtractedJSON:
		return m.ExtractedJSON()
	case extractionrecord.FieldVerificationJSON:
		return m.VerificationJSON()
	case extractionrecord.FieldConfidence:
		return m.Confidence()
	case extractionrecord.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case extractionrecord.FieldModelName:
		return m.ModelName()
	case extractionrecord.FieldCreatedAt:
		return m.CreatedAt()
	case extractionrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionrecord.FieldImageID:
		return m.OldImageID(ctx)
	case extractionrecord.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case extractionrecord.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case extractionrecord.FieldVerificationJSON:
		return m.OldVerificationJSON(ctx)
	case extractionrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case extractionrecord.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case extractionrecord.FieldModelName:
		return m.OldModelName(ctx)
	case extractionrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionrecord.FieldImageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageID(v)
		return nil
	case extractionrecord.FieldApplicationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case extractionrecord.FieldExtractedJSON:
		v, ok := value.([]uint8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case extractionrecord.FieldVerificationJSON:
		v, ok := value.([]uint8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationJSON(v)
		return nil
	case extractionrecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extractionrecord.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case extractionrecord.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractionrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionRecordMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, extractionrecord.FieldConfidence)
	}
	if m.addprocessing_time_ms != nil {
		fields = append(fields, extractionrecord.FieldProcessingTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionrecord.FieldConfidence:
		return m.AddedConfidence()
	case extractionrecord.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionrecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extractionrecord.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionrecord.FieldExtractedJSON) {
		fields = append(fields, extractionrecord.FieldExtractedJSON)
	}
	if m.FieldCleared(extractionrecord.FieldVerificationJSON) {
		fields = append(fields, extractionrecord.FieldVerificationJSON)
	}
	if m.FieldCleared(extractionrecord.FieldModelName) {
		fields = append(fields, extractionrecord.FieldModelName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionRecordMutation) ClearField(name string) error {
	switch name {
	case extractionrecord.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case extractionrecord.FieldVerificationJSON:
		m.ClearVerificationJSON()
		return nil
	case extractionrecord.FieldModelName:
		m.ClearModelName()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionRecordMutation) ResetField(name string) error {
	switch name {
	case extractionrecord.FieldImageID:
		m.ResetImageID()
		return nil
	case extractionrecord.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case extractionrecord.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case extractionrecord.FieldVerificationJSON:
		m.ResetVerificationJSON()
		return nil
	case extractionrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extractionrecord.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case extractionrecord.FieldModelName:
		m.ResetModelName()
		return nil
	case extractionrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.image != nil {
		edges = append(edges, extractionrecord.EdgeImage)
	}
	if m.application != nil {
		edges = append(edges, extractionrecord.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionrecord.EdgeImage:
		if id := m.image; id != nil {
			return []ent.Value{*id}
		}
	case extractionrecord.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedimage {
		edges = append(edges, extractionrecord.EdgeImage)
	}
	if m.clearedapplication {
		edges = append(edges, extractionrecord.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionrecord.EdgeImage:
		return m.clearedimage
	case extractionrecord.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionRecordMutation) ClearEdge(name string) error {
	switch name {
	case extractionrecord.EdgeImage:
		m.ClearImage()
		return nil
	case extractionrecord.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionRecordMutation) ResetEdge(name string) error {
	switch name {
	case extractionrecord.EdgeImage:
		m.ResetImage()
		return nil
	case extractionrecord.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord edge %s", name)
}

// LabelImageMutation represents an operation that mutates the LabelImage nodes in the graph.
type LabelImageMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	role               *labelimage.Role
	content_type       *string
	data               *[]byte
	file_size          *int
	addfile_size       *int
	uploaded_at        *time.Time
	clearedFields      map[string]struct{}
	application        *uuid.UUID
	clearedapplication bool
	extraction         *uuid.UUID
	clearedextraction  bool
	done               bool
	oldValue           func(context.Context) (*LabelImage, error)
	predicates         []predicate.LabelImage
}

var _ ent.Mutation = (*LabelImageMutation)(nil)

// labelimageOption allows management of the mutation configuration using functional options.
type labelimageOption func(*LabelImageMutation)

// newLabelImageMutation creates new mutation for the LabelImage entity.
func newLabelImageMutation(c config, op Op, opts ...labelimageOption) *LabelImageMutation {
	m := &LabelImageMutation{
		config:        c,
		op:            op,
		typ:           TypeLabelImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabelImageID sets the ID field of the mutation.
func withLabelImageID(id uuid.UUID) labelimageOption {
	return func(m *LabelImageMutation) {
		var (
			err   error
			once  sync.Once
			value *LabelImage
		)
		m.oldValue = func(ctx context.Context) (*LabelImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabelImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabelImage sets the old LabelImage of the mutation.
func withLabelImage(node *LabelImage) labelimageOption {
	return func(m *LabelImageMutation) {
		m.oldValue = func(context.Context) (*LabelImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabelImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabelImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LabelImage entities.
func (m *LabelImageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabelImageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabelImageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabelImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *LabelImageMutation) SetApplicationID(u uuid.UUID) {
	m.application = &u
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *LabelImageMutation) ApplicationID() (r uuid.UUID, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldApplicationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *LabelImageMutation) ResetApplicationID() {
	m.application = nil
}

// SetRole sets the "role" field.
func (m *LabelImageMutation) SetRole(l labelimage.Role) {
	m.role = &l
}

// Role returns the value of the "role" field in the mutation.
func (m *LabelImageMutation) Role() (r labelimage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldRole(ctx context.Context) (v labelimage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *LabelImageMutation) ResetRole() {
	m.role = nil
}

// SetContentType sets the "content_type" field.
func (m *LabelImageMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *LabelImageMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *LabelImageMutation) ResetContentType() {
	m.content_type = nil
}

// SetData sets the "data" field.
func (m *LabelImageMutation) SetData(b []byte) {
	m.data = &b
}

// Data returns the value of the "data" field in the mutation.
func (m *LabelImageMutation) Data() (r []byte, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldData(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *LabelImageMutation) ResetData() {
	m.data = nil
}

// SetFileSize sets the "file_size" field.
func (m *LabelImageMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *LabelImageMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *LabelImageMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *LabelImageMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *LabelImageMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *LabelImageMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *LabelImageMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the LabelImage entity.
// If the LabelImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelImageMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *LabelImageMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *LabelImageMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[labelimage.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *LabelImageMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *LabelImageMutation) ApplicationIDs() (ids []uuid.UUID) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *LabelImageMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// SetExtractionID sets the "extraction" edge to the ExtractionRecord entity by id.
func (m *LabelImageMutation) SetExtractionID(id uuid.UUID) {
	m.extraction = &id
}

// ClearExtraction clears the "extraction" edge to the ExtractionRecord entity.
func (m *LabelImageMutation) ClearExtraction() {
	m.clearedextraction = true
}

// ExtractionCleared reports if the "extraction" edge to the ExtractionRecord entity was cleared.
func (m *LabelImageMutation) ExtractionCleared() bool {
	return m.clearedextraction
}

// ExtractionID returns the "extraction" edge ID in the mutation.
func (m *LabelImageMutation) ExtractionID() (id uuid.UUID, exists bool) {
	if m.extraction != nil {
		return *m.extraction, true
	}
	return
}

// ExtractionIDs returns the "extraction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractionID instead. It exists only for internal usage by the builders.
func (m *LabelImageMutation) ExtractionIDs() (ids []uuid.UUID) {
	if id := m.extraction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtraction resets all changes to the "extraction" edge.
func (m *LabelImageMutation) ResetExtraction() {
	m.extraction = nil
	m.clearedextraction = false
}

// Where appends a list predicates to the LabelImageMutation builder.
func (m *LabelImageMutation) Where(ps ...predicate.LabelImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabelImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabelImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabelImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabelImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabelImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabelImage).
func (m *LabelImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabelImageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.application != nil {
		fields = append(fields, labelimage.FieldApplicationID)
	}
	if m.role != nil {
		fields = append(fields, labelimage.FieldRole)
	}
	if m.content_type != nil {
		fields = append(fields, labelimage.FieldContentType)
	}
	if m.data != nil {
		fields = append(fields, labelimage.FieldData)
	}
	if m.file_size != nil {
		fields = append(fields, labelimage.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, labelimage.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabelImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case labelimage.FieldApplicationID:
		return m.ApplicationID()
	case labelimage.FieldRole:
		return m.Role()
	case labelimage.FieldContentType:
		return m.ContentType()
	case labelimage.FieldData:
		return m.Data()
	case labelimage.FieldFileSize:
		return m.FileSize()
	case labelimage.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabelImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case labelimage.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case labelimage.FieldRole:
		return m.OldRole(ctx)
	case labelimage.FieldContentType:
		return m.OldContentType(ctx)
	case labelimage.FieldData:
		return m.OldData(ctx)
	case labelimage.FieldFileSize:
		return m.OldFileSize(ctx)
	case labelimage.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LabelImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case labelimage.FieldApplicationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case labelimage.FieldRole:
		v, ok := value.(labelimage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case labelimage.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case labelimage.FieldData:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case labelimage.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case labelimage.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LabelImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabelImageMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, labelimage.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabelImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case labelimage.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case labelimage.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown LabelImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabelImageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabelImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabelImageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LabelImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabelImageMutation) ResetField(name string) error {
	switch name {
	case labelimage.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case labelimage.FieldRole:
		m.ResetRole()
		return nil
	case labelimage.FieldContentType:
		m.ResetContentType()
		return nil
	case labelimage.FieldData:
		m.ResetData()
		return nil
	case labelimage.FieldFileSize:
		m.ResetFileSize()
		return nil
	case labelimage.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown LabelImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabelImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.application != nil {
		edges = append(edges, labelimage.EdgeApplication)
	}
	if m.extraction != nil {
		edges = append(edges, labelimage.EdgeExtraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabelImageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case labelimage.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	case labelimage.EdgeExtraction:
		if id := m.extraction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabelImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabelImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabelImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapplication {
		edges = append(edges, labelimage.EdgeApplication)
	}
	if m.clearedextraction {
		edges = append(edges, labelimage.EdgeExtraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabelImageMutation) EdgeCleared(name string) bool {
	switch name {
	case labelimage.EdgeApplication:
		return m.clearedapplication
	case labelimage.EdgeExtraction:
		return m.clearedextraction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabelImageMutation) ClearEdge(name string) error {
	switch name {
	case labelimage.EdgeApplication:
		m.ClearApplication()
		return nil
	case labelimage.EdgeExtraction:
		m.ClearExtraction()
		return nil
	}
	return fmt.Errorf("unknown LabelImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabelImageMutation) ResetEdge(name string) error {
	switch name {
	case labelimage.EdgeApplication:
		m.ResetApplication()
		return nil
	case labelimage.EdgeExtraction:
		m.ResetExtraction()
		return nil
	}
	return fmt.Errorf("unknown LabelImage edge %s", name)
}
