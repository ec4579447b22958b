// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"labelproof/gen/ent/migrate"

	"labelproof/gen/ent/application"
	"labelproof/gen/ent/extractionrecord"
	"labelproof/gen/ent/labelimage"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Application is the client for interacting with the Application builders.
	Application *ApplicationClient
	// ExtractionRecord is the client for interacting with the ExtractionRecord builders.
	ExtractionRecord *ExtractionRecordClient
	// LabelImage is the client for interacting with the LabelImage builders.
	LabelImage *LabelImageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Application = NewApplicationClient(c.config)
	c.ExtractionRecord = NewExtractionRecordClient(c.config)
	c.LabelImage = NewLabelImageClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Application:      NewApplicationClient(cfg),
		ExtractionRecord: NewExtractionRecordClient(cfg),
		LabelImage:       NewLabelImageClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Application:      NewApplicationClient(cfg),
		ExtractionRecord: NewExtractionRecordClient(cfg),
		LabelImage:       NewLabelImageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Application.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Application.Use(hooks...)
	c.ExtractionRecord.Use(hooks...)
	c.LabelImage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Application.Intercept(interceptors...)
	c.ExtractionRecord.Intercept(interceptors...)
	c.LabelImage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApplicationMutation:
		return c.Application.mutate(ctx, m)
	case *ExtractionRecordMutation:
		return c.ExtractionRecord.mutate(ctx, m)
	case *LabelImageMutation:
		return c.LabelImage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApplicationClient is a client for the Application schema.
type ApplicationClient struct {
	config
}

// NewApplicationClient returns a client for the Application from the given config.
func NewApplicationClient(c config) *ApplicationClient {
	return &ApplicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `application.Hooks(f(g(h())))`.
func (c *ApplicationClient) Use(hooks ...Hook) {
	c.hooks.Application = append(c.hooks.Application, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `application.Intercept(f(g(h())))`.
func (c *ApplicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Application = append(c.inters.Application, interceptors...)
}

// Create returns a builder for creating a Application entity.
func (c *ApplicationClient) Create() *ApplicationCreate {
	mutation := newApplicationMutation(c.config, OpCreate)
	return &ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Application entities.
func (c *ApplicationClient) CreateBulk(builders ...*ApplicationCreate) *ApplicationCreateBulk {
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationClient) MapCreateBulk(slice any, setFunc func(*ApplicationCreate, int)) *ApplicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationCreateBulk{err: fmt.Errorf("calling to ApplicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Application.
func (c *ApplicationClient) Update() *ApplicationUpdate {
	mutation := newApplicationMutation(c.config, OpUpdate)
	return &ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationClient) UpdateOne(_m *Application) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplication(_m))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationClient) UpdateOneID(id uuid.UUID) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplicationID(id))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Application.
func (c *ApplicationClient) Delete() *ApplicationDelete {
	mutation := newApplicationMutation(c.config, OpDelete)
	return &ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationClient) DeleteOne(_m *Application) *ApplicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationClient) DeleteOneID(id uuid.UUID) *ApplicationDeleteOne {
	builder := c.Delete().Where(application.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationDeleteOne{builder}
}

// Query returns a query builder for Application.
func (c *ApplicationClient) Query() *ApplicationQuery {
	return &ApplicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplication},
		inters: c.Interceptors(),
	}
}

// Get returns a Application entity by its id.
func (c *ApplicationClient) Get(ctx context.Context, id uuid.UUID) (*Application, error) {
	return c.Query().Where(application.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationClient) GetX(ctx context.Context, id uuid.UUID) *Application {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryImages queries the images edge of a Application.
func (c *ApplicationClient) QueryImages(_m *Application) *LabelImageQuery {
	query := (&LabelImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(labelimage.Table, labelimage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, application.ImagesTable, application.ImagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExtractions queries the extractions edge of a Application.
func (c *ApplicationClient) QueryExtractions(_m *Application) *ExtractionRecordQuery {
	query := (&ExtractionRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(extractionrecord.Table, extractionrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, application.ExtractionsTable, application.ExtractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApplicationClient) Hooks() []Hook {
	return c.hooks.Application
}

// Interceptors returns the client interceptors.
func (c *ApplicationClient) Interceptors() []Interceptor {
	return c.inters.Application
}

func (c *ApplicationClient) mutate(ctx context.Context, m *ApplicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Application mutation op: %q", m.Op())
	}
}

// ExtractionRecordClient is a client for the ExtractionRecord schema.
type ExtractionRecordClient struct {
	config
}

// NewExtractionRecordClient returns a client for the ExtractionRecord from the given config.
func NewExtractionRecordClient(c config) *ExtractionRecordClient {
	return &ExtractionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionrecord.Hooks(f(g(h())))`.
func (c *ExtractionRecordClient) Use(hooks ...Hook) {
	c.hooks.ExtractionRecord = append(c.hooks.ExtractionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionrecord.Intercept(f(g(h())))`.
func (c *ExtractionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionRecord = append(c.inters.ExtractionRecord, interceptors...)
}

// Create returns a builder for creating a ExtractionRecord entity.
func (c *ExtractionRecordClient) Create() *ExtractionRecordCreate {
	mutation := newExtractionRecordMutation(c.config, OpCreate)
	return &ExtractionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionRecord entities.
func (c *ExtractionRecordClient) CreateBulk(builders ...*ExtractionRecordCreate) *ExtractionRecordCreateBulk {
	return &ExtractionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionRecordClient) MapCreateBulk(slice any, setFunc func(*ExtractionRecordCreate, int)) *ExtractionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionRecordCreateBulk{err: fmt.Errorf("calling to ExtractionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionRecord.
func (c *ExtractionRecordClient) Update() *ExtractionRecordUpdate {
	mutation := newExtractionRecordMutation(c.config, OpUpdate)
	return &ExtractionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionRecordClient) UpdateOne(_m *ExtractionRecord) *ExtractionRecordUpdateOne {
	mutation := newExtractionRecordMutation(c.config, OpUpdateOne, withExtractionRecord(_m))
	return &ExtractionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionRecordClient) UpdateOneID(id uuid.UUID) *ExtractionRecordUpdateOne {
	mutation := newExtractionRecordMutation(c.config, OpUpdateOne, withExtractionRecordID(id))
	return &ExtractionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionRecord.
func (c *ExtractionRecordClient) Delete() *ExtractionRecordDelete {
	mutation := newExtractionRecordMutation(c.config, OpDelete)
	return &ExtractionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionRecordClient) DeleteOne(_m *ExtractionRecord) *ExtractionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionRecordClient) DeleteOneID(id uuid.UUID) *ExtractionRecordDeleteOne {
	builder := c.Delete().Where(extractionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionRecordDeleteOne{builder}
}

// Query returns a query builder for ExtractionRecord.
func (c *ExtractionRecordClient) Query() *ExtractionRecordQuery {
	return &ExtractionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionRecord entity by its id.
func (c *ExtractionRecordClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionRecord, error) {
	return c.Query().Where(extractionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionRecordClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryImage queries the image edge of a ExtractionRecord.
func (c *ExtractionRecordClient) QueryImage(_m *ExtractionRecord) *LabelImageQuery {
	query := (&LabelImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionrecord.Table, extractionrecord.FieldID, id),
			sqlgraph.To(labelimage.Table, labelimage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, extractionrecord.ImageTable, extractionrecord.ImageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApplication queries the application edge of a ExtractionRecord.
func (c *ExtractionRecordClient) QueryApplication(_m *ExtractionRecord) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionrecord.Table, extractionrecord.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionrecord.ApplicationTable, extractionrecord.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionRecordClient) Hooks() []Hook {
	return c.hooks.ExtractionRecord
}

// Interceptors returns the client interceptors.
func (c *ExtractionRecordClient) Interceptors() []Interceptor {
	return c.inters.ExtractionRecord
}

func (c *ExtractionRecordClient) mutate(ctx context.Context, m *ExtractionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionRecord mutation op: %q", m.Op())
	}
}

// LabelImageClient is a client for the LabelImage schema.
type LabelImageClient struct {
	config
}

// NewLabelImageClient returns a client for the LabelImage from the given config.
func NewLabelImageClient(c config) *LabelImageClient {
	return &LabelImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labelimage.Hooks(f(g(h())))`.
func (c *LabelImageClient) Use(hooks ...Hook) {
	c.hooks.LabelImage = append(c.hooks.LabelImage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labelimage.Intercept(f(g(h())))`.
func (c *LabelImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabelImage = append(c.inters.LabelImage, interceptors...)
}

// Create returns a builder for creating a LabelImage entity.
func (c *LabelImageClient) Create() *LabelImageCreate {
	mutation := newLabelImageMutation(c.config, OpCreate)
	return &LabelImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabelImage entities.
func (c *LabelImageClient) CreateBulk(builders ...*LabelImageCreate) *LabelImageCreateBulk {
	return &LabelImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabelImageClient) MapCreateBulk(slice any, setFunc func(*LabelImageCreate, int)) *LabelImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabelImageCreateBulk{err: fmt.Errorf("calling to LabelImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabelImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabelImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabelImage.
func (c *LabelImageClient) Update() *LabelImageUpdate {
	mutation := newLabelImageMutation(c.config, OpUpdate)
	return &LabelImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabelImageClient) UpdateOne(_m *LabelImage) *LabelImageUpdateOne {
	mutation := newLabelImageMutation(c.config, OpUpdateOne, withLabelImage(_m))
	return &LabelImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabelImageClient) UpdateOneID(id uuid.UUID) *LabelImageUpdateOne {
	mutation := newLabelImageMutation(c.config, OpUpdateOne, withLabelImageID(id))
	return &LabelImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabelImage.
func (c *LabelImageClient) Delete() *LabelImageDelete {
	mutation := newLabelImageMutation(c.config, OpDelete)
	return &LabelImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabelImageClient) DeleteOne(_m *LabelImage) *LabelImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabelImageClient) DeleteOneID(id uuid.UUID) *LabelImageDeleteOne {
	builder := c.Delete().Where(labelimage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabelImageDeleteOne{builder}
}

// Query returns a query builder for LabelImage.
func (c *LabelImageClient) Query() *LabelImageQuery {
	return &LabelImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabelImage},
		inters: c.Interceptors(),
	}
}

// Get returns a LabelImage entity by its id.
func (c *LabelImageClient) Get(ctx context.Context, id uuid.UUID) (*LabelImage, error) {
	return c.Query().Where(labelimage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabelImageClient) GetX(ctx context.Context, id uuid.UUID) *LabelImage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a LabelImage.
func (c *LabelImageClient) QueryApplication(_m *LabelImage) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(labelimage.Table, labelimage.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, labelimage.ApplicationTable, labelimage.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExtraction queries the extraction edge of a LabelImage.
func (c *LabelImageClient) QueryExtraction(_m *LabelImage) *ExtractionRecordQuery {
	query := (&ExtractionRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(labelimage.Table, labelimage.FieldID, id),
			sqlgraph.To(extractionrecord.Table, extractionrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, labelimage.ExtractionTable, labelimage.ExtractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LabelImageClient) Hooks() []Hook {
	return c.hooks.LabelImage
}

// Interceptors returns the client interceptors.
func (c *LabelImageClient) Interceptors() []Interceptor {
	return c.inters.LabelImage
}

func (c *LabelImageClient) mutate(ctx context.Context, m *LabelImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabelImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabelImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabelImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabelImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LabelImage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Application, ExtractionRecord, LabelImage []ent.Hook
	}
	inters struct {
		Application, ExtractionRecord, LabelImage []ent.Interceptor
	}
)
