// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/specularhq/specular/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/auditevent"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/ent/company"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Audit is the client for interacting with the Audit builders.
	Audit *AuditClient
	// AuditAggregate is the client for interacting with the AuditAggregate builders.
	AuditAggregate *AuditAggregateClient
	// AuditAnalysis is the client for interacting with the AuditAnalysis builders.
	AuditAnalysis *AuditAnalysisClient
	// AuditDashboard is the client for interacting with the AuditDashboard builders.
	AuditDashboard *AuditDashboardClient
	// AuditEvent is the client for interacting with the AuditEvent builders.
	AuditEvent *AuditEventClient
	// AuditQuery is the client for interacting with the AuditQuery builders.
	AuditQuery *AuditQueryClient
	// AuditResponse is the client for interacting with the AuditResponse builders.
	AuditResponse *AuditResponseClient
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Audit = NewAuditClient(c.config)
	c.AuditAggregate = NewAuditAggregateClient(c.config)
	c.AuditAnalysis = NewAuditAnalysisClient(c.config)
	c.AuditDashboard = NewAuditDashboardClient(c.config)
	c.AuditEvent = NewAuditEventClient(c.config)
	c.AuditQuery = NewAuditQueryClient(c.config)
	c.AuditResponse = NewAuditResponseClient(c.config)
	c.Company = NewCompanyClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		Audit:          NewAuditClient(cfg),
		AuditAggregate: NewAuditAggregateClient(cfg),
		AuditAnalysis:  NewAuditAnalysisClient(cfg),
		AuditDashboard: NewAuditDashboardClient(cfg),
		AuditEvent:     NewAuditEventClient(cfg),
		AuditQuery:     NewAuditQueryClient(cfg),
		AuditResponse:  NewAuditResponseClient(cfg),
		Company:        NewCompanyClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		Audit:          NewAuditClient(cfg),
		AuditAggregate: NewAuditAggregateClient(cfg),
		AuditAnalysis:  NewAuditAnalysisClient(cfg),
		AuditDashboard: NewAuditDashboardClient(cfg),
		AuditEvent:     NewAuditEventClient(cfg),
		AuditQuery:     NewAuditQueryClient(cfg),
		AuditResponse:  NewAuditResponseClient(cfg),
		Company:        NewCompanyClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Audit.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Audit, c.AuditAggregate, c.AuditAnalysis, c.AuditDashboard, c.AuditEvent,
		c.AuditQuery, c.AuditResponse, c.Company,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Audit, c.AuditAggregate, c.AuditAnalysis, c.AuditDashboard, c.AuditEvent,
		c.AuditQuery, c.AuditResponse, c.Company,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditMutation:
		return c.Audit.mutate(ctx, m)
	case *AuditAggregateMutation:
		return c.AuditAggregate.mutate(ctx, m)
	case *AuditAnalysisMutation:
		return c.AuditAnalysis.mutate(ctx, m)
	case *AuditDashboardMutation:
		return c.AuditDashboard.mutate(ctx, m)
	case *AuditEventMutation:
		return c.AuditEvent.mutate(ctx, m)
	case *AuditQueryMutation:
		return c.AuditQuery.mutate(ctx, m)
	case *AuditResponseMutation:
		return c.AuditResponse.mutate(ctx, m)
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditClient is a client for the Audit schema.
type AuditClient struct {
	config
}

// NewAuditClient returns a client for the Audit from the given config.
func NewAuditClient(c config) *AuditClient {
	return &AuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `audit.Hooks(f(g(h())))`.
func (c *AuditClient) Use(hooks ...Hook) {
	c.hooks.Audit = append(c.hooks.Audit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `audit.Intercept(f(g(h())))`.
func (c *AuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.Audit = append(c.inters.Audit, interceptors...)
}

// Create returns a builder for creating a Audit entity.
func (c *AuditClient) Create() *AuditCreate {
	mutation := newAuditMutation(c.config, OpCreate)
	return &AuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Audit entities.
func (c *AuditClient) CreateBulk(builders ...*AuditCreate) *AuditCreateBulk {
	return &AuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditClient) MapCreateBulk(slice any, setFunc func(*AuditCreate, int)) *AuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditCreateBulk{err: fmt.Errorf("calling to AuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Audit.
func (c *AuditClient) Update() *AuditUpdate {
	mutation := newAuditMutation(c.config, OpUpdate)
	return &AuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditClient) UpdateOne(_m *Audit) *AuditUpdateOne {
	mutation := newAuditMutation(c.config, OpUpdateOne, withAudit(_m))
	return &AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditClient) UpdateOneID(id string) *AuditUpdateOne {
	mutation := newAuditMutation(c.config, OpUpdateOne, withAuditID(id))
	return &AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Audit.
func (c *AuditClient) Delete() *AuditDelete {
	mutation := newAuditMutation(c.config, OpDelete)
	return &AuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditClient) DeleteOne(_m *Audit) *AuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditClient) DeleteOneID(id string) *AuditDeleteOne {
	builder := c.Delete().Where(audit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditDeleteOne{builder}
}

// Query returns a query builder for Audit.
func (c *AuditClient) Query() *AuditQueryBuilder {
	return &AuditQueryBuilder{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a Audit entity by its id.
func (c *AuditClient) Get(ctx context.Context, id string) (*Audit, error) {
	return c.Query().Where(audit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditClient) GetX(ctx context.Context, id string) *Audit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a Audit.
func (c *AuditClient) QueryCompany(_m *Audit) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, audit.CompanyTable, audit.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQueries queries the queries edge of a Audit.
func (c *AuditClient) QueryQueries(_m *Audit) *AuditQueryQuery {
	query := (&AuditQueryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(auditquery.Table, auditquery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.QueriesTable, audit.QueriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResponses queries the responses edge of a Audit.
func (c *AuditClient) QueryResponses(_m *Audit) *AuditResponseQuery {
	query := (&AuditResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(auditresponse.Table, auditresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.ResponsesTable, audit.ResponsesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalyses queries the analyses edge of a Audit.
func (c *AuditClient) QueryAnalyses(_m *Audit) *AuditAnalysisQuery {
	query := (&AuditAnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(auditanalysis.Table, auditanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.AnalysesTable, audit.AnalysesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAggregate queries the aggregate edge of a Audit.
func (c *AuditClient) QueryAggregate(_m *Audit) *AuditAggregateQuery {
	query := (&AuditAggregateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(auditaggregate.Table, auditaggregate.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, audit.AggregateTable, audit.AggregateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDashboard queries the dashboard edge of a Audit.
func (c *AuditClient) QueryDashboard(_m *Audit) *AuditDashboardQuery {
	query := (&AuditDashboardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(auditdashboard.Table, auditdashboard.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, audit.DashboardTable, audit.DashboardColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Audit.
func (c *AuditClient) QueryEvents(_m *Audit) *AuditEventQuery {
	query := (&AuditEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(auditevent.Table, auditevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.EventsTable, audit.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditClient) Hooks() []Hook {
	return c.hooks.Audit
}

// Interceptors returns the client interceptors.
func (c *AuditClient) Interceptors() []Interceptor {
	return c.inters.Audit
}

func (c *AuditClient) mutate(ctx context.Context, m *AuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Audit mutation op: %q", m.Op())
	}
}

// AuditAggregateClient is a client for the AuditAggregate schema.
type AuditAggregateClient struct {
	config
}

// NewAuditAggregateClient returns a client for the AuditAggregate from the given config.
func NewAuditAggregateClient(c config) *AuditAggregateClient {
	return &AuditAggregateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditaggregate.Hooks(f(g(h())))`.
func (c *AuditAggregateClient) Use(hooks ...Hook) {
	c.hooks.AuditAggregate = append(c.hooks.AuditAggregate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditaggregate.Intercept(f(g(h())))`.
func (c *AuditAggregateClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditAggregate = append(c.inters.AuditAggregate, interceptors...)
}

// Create returns a builder for creating a AuditAggregate entity.
func (c *AuditAggregateClient) Create() *AuditAggregateCreate {
	mutation := newAuditAggregateMutation(c.config, OpCreate)
	return &AuditAggregateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditAggregate entities.
func (c *AuditAggregateClient) CreateBulk(builders ...*AuditAggregateCreate) *AuditAggregateCreateBulk {
	return &AuditAggregateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditAggregateClient) MapCreateBulk(slice any, setFunc func(*AuditAggregateCreate, int)) *AuditAggregateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditAggregateCreateBulk{err: fmt.Errorf("calling to AuditAggregateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditAggregateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditAggregateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditAggregate.
func (c *AuditAggregateClient) Update() *AuditAggregateUpdate {
	mutation := newAuditAggregateMutation(c.config, OpUpdate)
	return &AuditAggregateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditAggregateClient) UpdateOne(_m *AuditAggregate) *AuditAggregateUpdateOne {
	mutation := newAuditAggregateMutation(c.config, OpUpdateOne, withAuditAggregate(_m))
	return &AuditAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditAggregateClient) UpdateOneID(id string) *AuditAggregateUpdateOne {
	mutation := newAuditAggregateMutation(c.config, OpUpdateOne, withAuditAggregateID(id))
	return &AuditAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditAggregate.
func (c *AuditAggregateClient) Delete() *AuditAggregateDelete {
	mutation := newAuditAggregateMutation(c.config, OpDelete)
	return &AuditAggregateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditAggregateClient) DeleteOne(_m *AuditAggregate) *AuditAggregateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditAggregateClient) DeleteOneID(id string) *AuditAggregateDeleteOne {
	builder := c.Delete().Where(auditaggregate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditAggregateDeleteOne{builder}
}

// Query returns a query builder for AuditAggregate.
func (c *AuditAggregateClient) Query() *AuditAggregateQuery {
	return &AuditAggregateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditAggregate},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditAggregate entity by its id.
func (c *AuditAggregateClient) Get(ctx context.Context, id string) (*AuditAggregate, error) {
	return c.Query().Where(auditaggregate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditAggregateClient) GetX(ctx context.Context, id string) *AuditAggregate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a AuditAggregate.
func (c *AuditAggregateClient) QueryAudit(_m *AuditAggregate) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditaggregate.Table, auditaggregate.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, auditaggregate.AuditTable, auditaggregate.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditAggregateClient) Hooks() []Hook {
	return c.hooks.AuditAggregate
}

// Interceptors returns the client interceptors.
func (c *AuditAggregateClient) Interceptors() []Interceptor {
	return c.inters.AuditAggregate
}

func (c *AuditAggregateClient) mutate(ctx context.Context, m *AuditAggregateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditAggregateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditAggregateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditAggregateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditAggregate mutation op: %q", m.Op())
	}
}

// AuditAnalysisClient is a client for the AuditAnalysis schema.
type AuditAnalysisClient struct {
	config
}

// NewAuditAnalysisClient returns a client for the AuditAnalysis from the given config.
func NewAuditAnalysisClient(c config) *AuditAnalysisClient {
	return &AuditAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditanalysis.Hooks(f(g(h())))`.
func (c *AuditAnalysisClient) Use(hooks ...Hook) {
	c.hooks.AuditAnalysis = append(c.hooks.AuditAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditanalysis.Intercept(f(g(h())))`.
func (c *AuditAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditAnalysis = append(c.inters.AuditAnalysis, interceptors...)
}

// Create returns a builder for creating a AuditAnalysis entity.
func (c *AuditAnalysisClient) Create() *AuditAnalysisCreate {
	mutation := newAuditAnalysisMutation(c.config, OpCreate)
	return &AuditAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditAnalysis entities.
func (c *AuditAnalysisClient) CreateBulk(builders ...*AuditAnalysisCreate) *AuditAnalysisCreateBulk {
	return &AuditAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditAnalysisClient) MapCreateBulk(slice any, setFunc func(*AuditAnalysisCreate, int)) *AuditAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditAnalysisCreateBulk{err: fmt.Errorf("calling to AuditAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditAnalysis.
func (c *AuditAnalysisClient) Update() *AuditAnalysisUpdate {
	mutation := newAuditAnalysisMutation(c.config, OpUpdate)
	return &AuditAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditAnalysisClient) UpdateOne(_m *AuditAnalysis) *AuditAnalysisUpdateOne {
	mutation := newAuditAnalysisMutation(c.config, OpUpdateOne, withAuditAnalysis(_m))
	return &AuditAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditAnalysisClient) UpdateOneID(id string) *AuditAnalysisUpdateOne {
	mutation := newAuditAnalysisMutation(c.config, OpUpdateOne, withAuditAnalysisID(id))
	return &AuditAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditAnalysis.
func (c *AuditAnalysisClient) Delete() *AuditAnalysisDelete {
	mutation := newAuditAnalysisMutation(c.config, OpDelete)
	return &AuditAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditAnalysisClient) DeleteOne(_m *AuditAnalysis) *AuditAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditAnalysisClient) DeleteOneID(id string) *AuditAnalysisDeleteOne {
	builder := c.Delete().Where(auditanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditAnalysisDeleteOne{builder}
}

// Query returns a query builder for AuditAnalysis.
func (c *AuditAnalysisClient) Query() *AuditAnalysisQuery {
	return &AuditAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditAnalysis entity by its id.
func (c *AuditAnalysisClient) Get(ctx context.Context, id string) (*AuditAnalysis, error) {
	return c.Query().Where(auditanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditAnalysisClient) GetX(ctx context.Context, id string) *AuditAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a AuditAnalysis.
func (c *AuditAnalysisClient) QueryAudit(_m *AuditAnalysis) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditanalysis.Table, auditanalysis.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditanalysis.AuditTable, auditanalysis.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResponse queries the response edge of a AuditAnalysis.
func (c *AuditAnalysisClient) QueryResponse(_m *AuditAnalysis) *AuditResponseQuery {
	query := (&AuditResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditanalysis.Table, auditanalysis.FieldID, id),
			sqlgraph.To(auditresponse.Table, auditresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, auditanalysis.ResponseTable, auditanalysis.ResponseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditAnalysisClient) Hooks() []Hook {
	return c.hooks.AuditAnalysis
}

// Interceptors returns the client interceptors.
func (c *AuditAnalysisClient) Interceptors() []Interceptor {
	return c.inters.AuditAnalysis
}

func (c *AuditAnalysisClient) mutate(ctx context.Context, m *AuditAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditAnalysis mutation op: %q", m.Op())
	}
}

// AuditDashboardClient is a client for the AuditDashboard schema.
type AuditDashboardClient struct {
	config
}

// NewAuditDashboardClient returns a client for the AuditDashboard from the given config.
func NewAuditDashboardClient(c config) *AuditDashboardClient {
	return &AuditDashboardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditdashboard.Hooks(f(g(h())))`.
func (c *AuditDashboardClient) Use(hooks ...Hook) {
	c.hooks.AuditDashboard = append(c.hooks.AuditDashboard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditdashboard.Intercept(f(g(h())))`.
func (c *AuditDashboardClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditDashboard = append(c.inters.AuditDashboard, interceptors...)
}

// Create returns a builder for creating a AuditDashboard entity.
func (c *AuditDashboardClient) Create() *AuditDashboardCreate {
	mutation := newAuditDashboardMutation(c.config, OpCreate)
	return &AuditDashboardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditDashboard entities.
func (c *AuditDashboardClient) CreateBulk(builders ...*AuditDashboardCreate) *AuditDashboardCreateBulk {
	return &AuditDashboardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditDashboardClient) MapCreateBulk(slice any, setFunc func(*AuditDashboardCreate, int)) *AuditDashboardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditDashboardCreateBulk{err: fmt.Errorf("calling to AuditDashboardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditDashboardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditDashboardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditDashboard.
func (c *AuditDashboardClient) Update() *AuditDashboardUpdate {
	mutation := newAuditDashboardMutation(c.config, OpUpdate)
	return &AuditDashboardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditDashboardClient) UpdateOne(_m *AuditDashboard) *AuditDashboardUpdateOne {
	mutation := newAuditDashboardMutation(c.config, OpUpdateOne, withAuditDashboard(_m))
	return &AuditDashboardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditDashboardClient) UpdateOneID(id string) *AuditDashboardUpdateOne {
	mutation := newAuditDashboardMutation(c.config, OpUpdateOne, withAuditDashboardID(id))
	return &AuditDashboardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditDashboard.
func (c *AuditDashboardClient) Delete() *AuditDashboardDelete {
	mutation := newAuditDashboardMutation(c.config, OpDelete)
	return &AuditDashboardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditDashboardClient) DeleteOne(_m *AuditDashboard) *AuditDashboardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditDashboardClient) DeleteOneID(id string) *AuditDashboardDeleteOne {
	builder := c.Delete().Where(auditdashboard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditDashboardDeleteOne{builder}
}

// Query returns a query builder for AuditDashboard.
func (c *AuditDashboardClient) Query() *AuditDashboardQuery {
	return &AuditDashboardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditDashboard},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditDashboard entity by its id.
func (c *AuditDashboardClient) Get(ctx context.Context, id string) (*AuditDashboard, error) {
	return c.Query().Where(auditdashboard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditDashboardClient) GetX(ctx context.Context, id string) *AuditDashboard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a AuditDashboard.
func (c *AuditDashboardClient) QueryAudit(_m *AuditDashboard) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditdashboard.Table, auditdashboard.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, auditdashboard.AuditTable, auditdashboard.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditDashboardClient) Hooks() []Hook {
	return c.hooks.AuditDashboard
}

// Interceptors returns the client interceptors.
func (c *AuditDashboardClient) Interceptors() []Interceptor {
	return c.inters.AuditDashboard
}

func (c *AuditDashboardClient) mutate(ctx context.Context, m *AuditDashboardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditDashboardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditDashboardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditDashboardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditDashboardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditDashboard mutation op: %q", m.Op())
	}
}

// AuditEventClient is a client for the AuditEvent schema.
type AuditEventClient struct {
	config
}

// NewAuditEventClient returns a client for the AuditEvent from the given config.
func NewAuditEventClient(c config) *AuditEventClient {
	return &AuditEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditevent.Hooks(f(g(h())))`.
func (c *AuditEventClient) Use(hooks ...Hook) {
	c.hooks.AuditEvent = append(c.hooks.AuditEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditevent.Intercept(f(g(h())))`.
func (c *AuditEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEvent = append(c.inters.AuditEvent, interceptors...)
}

// Create returns a builder for creating a AuditEvent entity.
func (c *AuditEventClient) Create() *AuditEventCreate {
	mutation := newAuditEventMutation(c.config, OpCreate)
	return &AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEvent entities.
func (c *AuditEventClient) CreateBulk(builders ...*AuditEventCreate) *AuditEventCreateBulk {
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEventClient) MapCreateBulk(slice any, setFunc func(*AuditEventCreate, int)) *AuditEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEventCreateBulk{err: fmt.Errorf("calling to AuditEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEvent.
func (c *AuditEventClient) Update() *AuditEventUpdate {
	mutation := newAuditEventMutation(c.config, OpUpdate)
	return &AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEventClient) UpdateOne(_m *AuditEvent) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEvent(_m))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEventClient) UpdateOneID(id int) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEventID(id))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEvent.
func (c *AuditEventClient) Delete() *AuditEventDelete {
	mutation := newAuditEventMutation(c.config, OpDelete)
	return &AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEventClient) DeleteOne(_m *AuditEvent) *AuditEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEventClient) DeleteOneID(id int) *AuditEventDeleteOne {
	builder := c.Delete().Where(auditevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEventDeleteOne{builder}
}

// Query returns a query builder for AuditEvent.
func (c *AuditEventClient) Query() *AuditEventQuery {
	return &AuditEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEvent entity by its id.
func (c *AuditEventClient) Get(ctx context.Context, id int) (*AuditEvent, error) {
	return c.Query().Where(auditevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEventClient) GetX(ctx context.Context, id int) *AuditEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a AuditEvent.
func (c *AuditEventClient) QueryAudit(_m *AuditEvent) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditevent.Table, auditevent.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditevent.AuditTable, auditevent.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditEventClient) Hooks() []Hook {
	return c.hooks.AuditEvent
}

// Interceptors returns the client interceptors.
func (c *AuditEventClient) Interceptors() []Interceptor {
	return c.inters.AuditEvent
}

func (c *AuditEventClient) mutate(ctx context.Context, m *AuditEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEvent mutation op: %q", m.Op())
	}
}

// AuditQueryClient is a client for the AuditQuery schema.
type AuditQueryClient struct {
	config
}

// NewAuditQueryClient returns a client for the AuditQuery from the given config.
func NewAuditQueryClient(c config) *AuditQueryClient {
	return &AuditQueryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditquery.Hooks(f(g(h())))`.
func (c *AuditQueryClient) Use(hooks ...Hook) {
	c.hooks.AuditQuery = append(c.hooks.AuditQuery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditquery.Intercept(f(g(h())))`.
func (c *AuditQueryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditQuery = append(c.inters.AuditQuery, interceptors...)
}

// Create returns a builder for creating a AuditQuery entity.
func (c *AuditQueryClient) Create() *AuditQueryCreate {
	mutation := newAuditQueryMutation(c.config, OpCreate)
	return &AuditQueryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditQuery entities.
func (c *AuditQueryClient) CreateBulk(builders ...*AuditQueryCreate) *AuditQueryCreateBulk {
	return &AuditQueryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditQueryClient) MapCreateBulk(slice any, setFunc func(*AuditQueryCreate, int)) *AuditQueryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditQueryCreateBulk{err: fmt.Errorf("calling to AuditQueryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditQueryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditQueryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditQuery.
func (c *AuditQueryClient) Update() *AuditQueryUpdate {
	mutation := newAuditQueryMutation(c.config, OpUpdate)
	return &AuditQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditQueryClient) UpdateOne(_m *AuditQuery) *AuditQueryUpdateOne {
	mutation := newAuditQueryMutation(c.config, OpUpdateOne, withAuditQuery(_m))
	return &AuditQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditQueryClient) UpdateOneID(id string) *AuditQueryUpdateOne {
	mutation := newAuditQueryMutation(c.config, OpUpdateOne, withAuditQueryID(id))
	return &AuditQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditQuery.
func (c *AuditQueryClient) Delete() *AuditQueryDelete {
	mutation := newAuditQueryMutation(c.config, OpDelete)
	return &AuditQueryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditQueryClient) DeleteOne(_m *AuditQuery) *AuditQueryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditQueryClient) DeleteOneID(id string) *AuditQueryDeleteOne {
	builder := c.Delete().Where(auditquery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditQueryDeleteOne{builder}
}

// Query returns a query builder for AuditQuery.
func (c *AuditQueryClient) Query() *AuditQueryQuery {
	return &AuditQueryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditQuery},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditQuery entity by its id.
func (c *AuditQueryClient) Get(ctx context.Context, id string) (*AuditQuery, error) {
	return c.Query().Where(auditquery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditQueryClient) GetX(ctx context.Context, id string) *AuditQuery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a AuditQuery.
func (c *AuditQueryClient) QueryAudit(_m *AuditQuery) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditquery.Table, auditquery.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditquery.AuditTable, auditquery.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResponses queries the responses edge of a AuditQuery.
func (c *AuditQueryClient) QueryResponses(_m *AuditQuery) *AuditResponseQuery {
	query := (&AuditResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditquery.Table, auditquery.FieldID, id),
			sqlgraph.To(auditresponse.Table, auditresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, auditquery.ResponsesTable, auditquery.ResponsesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditQueryClient) Hooks() []Hook {
	return c.hooks.AuditQuery
}

// Interceptors returns the client interceptors.
func (c *AuditQueryClient) Interceptors() []Interceptor {
	return c.inters.AuditQuery
}

func (c *AuditQueryClient) mutate(ctx context.Context, m *AuditQueryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditQueryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditQueryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditQuery mutation op: %q", m.Op())
	}
}

// AuditResponseClient is a client for the AuditResponse schema.
type AuditResponseClient struct {
	config
}

// NewAuditResponseClient returns a client for the AuditResponse from the given config.
func NewAuditResponseClient(c config) *AuditResponseClient {
	return &AuditResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditresponse.Hooks(f(g(h())))`.
func (c *AuditResponseClient) Use(hooks ...Hook) {
	c.hooks.AuditResponse = append(c.hooks.AuditResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditresponse.Intercept(f(g(h())))`.
func (c *AuditResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditResponse = append(c.inters.AuditResponse, interceptors...)
}

// Create returns a builder for creating a AuditResponse entity.
func (c *AuditResponseClient) Create() *AuditResponseCreate {
	mutation := newAuditResponseMutation(c.config, OpCreate)
	return &AuditResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditResponse entities.
func (c *AuditResponseClient) CreateBulk(builders ...*AuditResponseCreate) *AuditResponseCreateBulk {
	return &AuditResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditResponseClient) MapCreateBulk(slice any, setFunc func(*AuditResponseCreate, int)) *AuditResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditResponseCreateBulk{err: fmt.Errorf("calling to AuditResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditResponse.
func (c *AuditResponseClient) Update() *AuditResponseUpdate {
	mutation := newAuditResponseMutation(c.config, OpUpdate)
	return &AuditResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditResponseClient) UpdateOne(_m *AuditResponse) *AuditResponseUpdateOne {
	mutation := newAuditResponseMutation(c.config, OpUpdateOne, withAuditResponse(_m))
	return &AuditResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditResponseClient) UpdateOneID(id string) *AuditResponseUpdateOne {
	mutation := newAuditResponseMutation(c.config, OpUpdateOne, withAuditResponseID(id))
	return &AuditResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditResponse.
func (c *AuditResponseClient) Delete() *AuditResponseDelete {
	mutation := newAuditResponseMutation(c.config, OpDelete)
	return &AuditResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditResponseClient) DeleteOne(_m *AuditResponse) *AuditResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditResponseClient) DeleteOneID(id string) *AuditResponseDeleteOne {
	builder := c.Delete().Where(auditresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditResponseDeleteOne{builder}
}

// Query returns a query builder for AuditResponse.
func (c *AuditResponseClient) Query() *AuditResponseQuery {
	return &AuditResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditResponse entity by its id.
func (c *AuditResponseClient) Get(ctx context.Context, id string) (*AuditResponse, error) {
	return c.Query().Where(auditresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditResponseClient) GetX(ctx context.Context, id string) *AuditResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudit queries the audit edge of a AuditResponse.
func (c *AuditResponseClient) QueryAudit(_m *AuditResponse) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditresponse.Table, auditresponse.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditresponse.AuditTable, auditresponse.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuery queries the query edge of a AuditResponse.
func (c *AuditResponseClient) QueryQuery(_m *AuditResponse) *AuditQueryQuery {
	query := (&AuditQueryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditresponse.Table, auditresponse.FieldID, id),
			sqlgraph.To(auditquery.Table, auditquery.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditresponse.QueryTable, auditresponse.QueryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalysis queries the analysis edge of a AuditResponse.
func (c *AuditResponseClient) QueryAnalysis(_m *AuditResponse) *AuditAnalysisQuery {
	query := (&AuditAnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditresponse.Table, auditresponse.FieldID, id),
			sqlgraph.To(auditanalysis.Table, auditanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, auditresponse.AnalysisTable, auditresponse.AnalysisColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditResponseClient) Hooks() []Hook {
	return c.hooks.AuditResponse
}

// Interceptors returns the client interceptors.
func (c *AuditResponseClient) Interceptors() []Interceptor {
	return c.inters.AuditResponse
}

func (c *AuditResponseClient) mutate(ctx context.Context, m *AuditResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditResponse mutation op: %q", m.Op())
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id string) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id string) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id string) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id string) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAudits queries the audits edge of a Company.
func (c *CompanyClient) QueryAudits(_m *Company) *AuditQueryBuilder {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.AuditsTable, company.AuditsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Audit, AuditAggregate, AuditAnalysis, AuditDashboard, AuditEvent, AuditQuery,
		AuditResponse, Company []ent.Hook
	}
	inters struct {
		Audit, AuditAggregate, AuditAnalysis, AuditDashboard, AuditEvent, AuditQuery,
		AuditResponse, Company []ent.Interceptor
	}
)
