// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/headspace-sh/headspace/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/headspace-sh/headspace/ent/activitymetric"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/apicalllog"
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/ent/handoff"
	"github.com/headspace-sh/headspace/ent/headspacesnapshot"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/objective"
	"github.com/headspace-sh/headspace/ent/organisation"
	"github.com/headspace-sh/headspace/ent/persona"
	"github.com/headspace-sh/headspace/ent/position"
	"github.com/headspace-sh/headspace/ent/project"
	"github.com/headspace-sh/headspace/ent/role"
	"github.com/headspace-sh/headspace/ent/turn"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivityMetric is the client for interacting with the ActivityMetric builders.
	ActivityMetric *ActivityMetricClient
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// ApiCallLog is the client for interacting with the ApiCallLog builders.
	ApiCallLog *ApiCallLogClient
	// Command is the client for interacting with the Command builders.
	Command *CommandClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Handoff is the client for interacting with the Handoff builders.
	Handoff *HandoffClient
	// HeadspaceSnapshot is the client for interacting with the HeadspaceSnapshot builders.
	HeadspaceSnapshot *HeadspaceSnapshotClient
	// InferenceCall is the client for interacting with the InferenceCall builders.
	InferenceCall *InferenceCallClient
	// Objective is the client for interacting with the Objective builders.
	Objective *ObjectiveClient
	// Organisation is the client for interacting with the Organisation builders.
	Organisation *OrganisationClient
	// Persona is the client for interacting with the Persona builders.
	Persona *PersonaClient
	// Position is the client for interacting with the Position builders.
	Position *PositionClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// Role is the client for interacting with the Role builders.
	Role *RoleClient
	// Turn is the client for interacting with the Turn builders.
	Turn *TurnClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivityMetric = NewActivityMetricClient(c.config)
	c.Agent = NewAgentClient(c.config)
	c.ApiCallLog = NewApiCallLogClient(c.config)
	c.Command = NewCommandClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Handoff = NewHandoffClient(c.config)
	c.HeadspaceSnapshot = NewHeadspaceSnapshotClient(c.config)
	c.InferenceCall = NewInferenceCallClient(c.config)
	c.Objective = NewObjectiveClient(c.config)
	c.Organisation = NewOrganisationClient(c.config)
	c.Persona = NewPersonaClient(c.config)
	c.Position = NewPositionClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.Role = NewRoleClient(c.config)
	c.Turn = NewTurnClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		ActivityMetric:    NewActivityMetricClient(cfg),
		Agent:             NewAgentClient(cfg),
		ApiCallLog:        NewApiCallLogClient(cfg),
		Command:           NewCommandClient(cfg),
		Event:             NewEventClient(cfg),
		Handoff:           NewHandoffClient(cfg),
		HeadspaceSnapshot: NewHeadspaceSnapshotClient(cfg),
		InferenceCall:     NewInferenceCallClient(cfg),
		Objective:         NewObjectiveClient(cfg),
		Organisation:      NewOrganisationClient(cfg),
		Persona:           NewPersonaClient(cfg),
		Position:          NewPositionClient(cfg),
		Project:           NewProjectClient(cfg),
		Role:              NewRoleClient(cfg),
		Turn:              NewTurnClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		ActivityMetric:    NewActivityMetricClient(cfg),
		Agent:             NewAgentClient(cfg),
		ApiCallLog:        NewApiCallLogClient(cfg),
		Command:           NewCommandClient(cfg),
		Event:             NewEventClient(cfg),
		Handoff:           NewHandoffClient(cfg),
		HeadspaceSnapshot: NewHeadspaceSnapshotClient(cfg),
		InferenceCall:     NewInferenceCallClient(cfg),
		Objective:         NewObjectiveClient(cfg),
		Organisation:      NewOrganisationClient(cfg),
		Persona:           NewPersonaClient(cfg),
		Position:          NewPositionClient(cfg),
		Project:           NewProjectClient(cfg),
		Role:              NewRoleClient(cfg),
		Turn:              NewTurnClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivityMetric.
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
		c.ActivityMetric, c.Agent, c.ApiCallLog, c.Command, c.Event, c.Handoff,
		c.HeadspaceSnapshot, c.InferenceCall, c.Objective, c.Organisation, c.Persona,
		c.Position, c.Project, c.Role, c.Turn,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActivityMetric, c.Agent, c.ApiCallLog, c.Command, c.Event, c.Handoff,
		c.HeadspaceSnapshot, c.InferenceCall, c.Objective, c.Organisation, c.Persona,
		c.Position, c.Project, c.Role, c.Turn,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityMetricMutation:
		return c.ActivityMetric.mutate(ctx, m)
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *ApiCallLogMutation:
		return c.ApiCallLog.mutate(ctx, m)
	case *CommandMutation:
		return c.Command.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *HandoffMutation:
		return c.Handoff.mutate(ctx, m)
	case *HeadspaceSnapshotMutation:
		return c.HeadspaceSnapshot.mutate(ctx, m)
	case *InferenceCallMutation:
		return c.InferenceCall.mutate(ctx, m)
	case *ObjectiveMutation:
		return c.Objective.mutate(ctx, m)
	case *OrganisationMutation:
		return c.Organisation.mutate(ctx, m)
	case *PersonaMutation:
		return c.Persona.mutate(ctx, m)
	case *PositionMutation:
		return c.Position.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *RoleMutation:
		return c.Role.mutate(ctx, m)
	case *TurnMutation:
		return c.Turn.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivityMetricClient is a client for the ActivityMetric schema.
type ActivityMetricClient struct {
	config
}

// NewActivityMetricClient returns a client for the ActivityMetric from the given config.
func NewActivityMetricClient(c config) *ActivityMetricClient {
	return &ActivityMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activitymetric.Hooks(f(g(h())))`.
func (c *ActivityMetricClient) Use(hooks ...Hook) {
	c.hooks.ActivityMetric = append(c.hooks.ActivityMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activitymetric.Intercept(f(g(h())))`.
func (c *ActivityMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityMetric = append(c.inters.ActivityMetric, interceptors...)
}

// Create returns a builder for creating a ActivityMetric entity.
func (c *ActivityMetricClient) Create() *ActivityMetricCreate {
	mutation := newActivityMetricMutation(c.config, OpCreate)
	return &ActivityMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityMetric entities.
func (c *ActivityMetricClient) CreateBulk(builders ...*ActivityMetricCreate) *ActivityMetricCreateBulk {
	return &ActivityMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityMetricClient) MapCreateBulk(slice any, setFunc func(*ActivityMetricCreate, int)) *ActivityMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityMetricCreateBulk{err: fmt.Errorf("calling to ActivityMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityMetric.
func (c *ActivityMetricClient) Update() *ActivityMetricUpdate {
	mutation := newActivityMetricMutation(c.config, OpUpdate)
	return &ActivityMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityMetricClient) UpdateOne(_m *ActivityMetric) *ActivityMetricUpdateOne {
	mutation := newActivityMetricMutation(c.config, OpUpdateOne, withActivityMetric(_m))
	return &ActivityMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityMetricClient) UpdateOneID(id int) *ActivityMetricUpdateOne {
	mutation := newActivityMetricMutation(c.config, OpUpdateOne, withActivityMetricID(id))
	return &ActivityMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityMetric.
func (c *ActivityMetricClient) Delete() *ActivityMetricDelete {
	mutation := newActivityMetricMutation(c.config, OpDelete)
	return &ActivityMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityMetricClient) DeleteOne(_m *ActivityMetric) *ActivityMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityMetricClient) DeleteOneID(id int) *ActivityMetricDeleteOne {
	builder := c.Delete().Where(activitymetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityMetricDeleteOne{builder}
}

// Query returns a query builder for ActivityMetric.
func (c *ActivityMetricClient) Query() *ActivityMetricQuery {
	return &ActivityMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityMetric entity by its id.
func (c *ActivityMetricClient) Get(ctx context.Context, id int) (*ActivityMetric, error) {
	return c.Query().Where(activitymetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityMetricClient) GetX(ctx context.Context, id int) *ActivityMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a ActivityMetric.
func (c *ActivityMetricClient) QueryAgent(_m *ActivityMetric) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(activitymetric.Table, activitymetric.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, activitymetric.AgentTable, activitymetric.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProject queries the project edge of a ActivityMetric.
func (c *ActivityMetricClient) QueryProject(_m *ActivityMetric) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(activitymetric.Table, activitymetric.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, activitymetric.ProjectTable, activitymetric.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ActivityMetricClient) Hooks() []Hook {
	return c.hooks.ActivityMetric
}

// Interceptors returns the client interceptors.
func (c *ActivityMetricClient) Interceptors() []Interceptor {
	return c.inters.ActivityMetric
}

func (c *ActivityMetricClient) mutate(ctx context.Context, m *ActivityMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityMetric mutation op: %q", m.Op())
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id int) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id int) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id int) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id int) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Agent.
func (c *AgentClient) QueryProject(_m *Agent) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agent.ProjectTable, agent.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPersona queries the persona edge of a Agent.
func (c *AgentClient) QueryPersona(_m *Agent) *PersonaQuery {
	query := (&PersonaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(persona.Table, persona.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agent.PersonaTable, agent.PersonaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPosition queries the position edge of a Agent.
func (c *AgentClient) QueryPosition(_m *Agent) *PositionQuery {
	query := (&PositionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(position.Table, position.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agent.PositionTable, agent.PositionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPreviousAgent queries the previous_agent edge of a Agent.
func (c *AgentClient) QueryPreviousAgent(_m *Agent) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agent.PreviousAgentTable, agent.PreviousAgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuccessors queries the successors edge of a Agent.
func (c *AgentClient) QuerySuccessors(_m *Agent) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.SuccessorsTable, agent.SuccessorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommands queries the commands edge of a Agent.
func (c *AgentClient) QueryCommands(_m *Agent) *CommandQuery {
	query := (&CommandClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(command.Table, command.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.CommandsTable, agent.CommandsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Agent.
func (c *AgentClient) QueryEvents(_m *Agent) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.EventsTable, agent.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHandoff queries the handoff edge of a Agent.
func (c *AgentClient) QueryHandoff(_m *Agent) *HandoffQuery {
	query := (&HandoffClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(handoff.Table, handoff.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, agent.HandoffTable, agent.HandoffColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActivityMetrics queries the activity_metrics edge of a Agent.
func (c *AgentClient) QueryActivityMetrics(_m *Agent) *ActivityMetricQuery {
	query := (&ActivityMetricClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(activitymetric.Table, activitymetric.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.ActivityMetricsTable, agent.ActivityMetricsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySnapshots queries the snapshots edge of a Agent.
func (c *AgentClient) QuerySnapshots(_m *Agent) *HeadspaceSnapshotQuery {
	query := (&HeadspaceSnapshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(headspacesnapshot.Table, headspacesnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.SnapshotsTable, agent.SnapshotsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInferenceCalls queries the inference_calls edge of a Agent.
func (c *AgentClient) QueryInferenceCalls(_m *Agent) *InferenceCallQuery {
	query := (&InferenceCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(inferencecall.Table, inferencecall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.InferenceCallsTable, agent.InferenceCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// ApiCallLogClient is a client for the ApiCallLog schema.
type ApiCallLogClient struct {
	config
}

// NewApiCallLogClient returns a client for the ApiCallLog from the given config.
func NewApiCallLogClient(c config) *ApiCallLogClient {
	return &ApiCallLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apicalllog.Hooks(f(g(h())))`.
func (c *ApiCallLogClient) Use(hooks ...Hook) {
	c.hooks.ApiCallLog = append(c.hooks.ApiCallLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apicalllog.Intercept(f(g(h())))`.
func (c *ApiCallLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApiCallLog = append(c.inters.ApiCallLog, interceptors...)
}

// Create returns a builder for creating a ApiCallLog entity.
func (c *ApiCallLogClient) Create() *ApiCallLogCreate {
	mutation := newApiCallLogMutation(c.config, OpCreate)
	return &ApiCallLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApiCallLog entities.
func (c *ApiCallLogClient) CreateBulk(builders ...*ApiCallLogCreate) *ApiCallLogCreateBulk {
	return &ApiCallLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApiCallLogClient) MapCreateBulk(slice any, setFunc func(*ApiCallLogCreate, int)) *ApiCallLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApiCallLogCreateBulk{err: fmt.Errorf("calling to ApiCallLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApiCallLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApiCallLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApiCallLog.
func (c *ApiCallLogClient) Update() *ApiCallLogUpdate {
	mutation := newApiCallLogMutation(c.config, OpUpdate)
	return &ApiCallLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApiCallLogClient) UpdateOne(_m *ApiCallLog) *ApiCallLogUpdateOne {
	mutation := newApiCallLogMutation(c.config, OpUpdateOne, withApiCallLog(_m))
	return &ApiCallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApiCallLogClient) UpdateOneID(id int) *ApiCallLogUpdateOne {
	mutation := newApiCallLogMutation(c.config, OpUpdateOne, withApiCallLogID(id))
	return &ApiCallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApiCallLog.
func (c *ApiCallLogClient) Delete() *ApiCallLogDelete {
	mutation := newApiCallLogMutation(c.config, OpDelete)
	return &ApiCallLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApiCallLogClient) DeleteOne(_m *ApiCallLog) *ApiCallLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApiCallLogClient) DeleteOneID(id int) *ApiCallLogDeleteOne {
	builder := c.Delete().Where(apicalllog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApiCallLogDeleteOne{builder}
}

// Query returns a query builder for ApiCallLog.
func (c *ApiCallLogClient) Query() *ApiCallLogQuery {
	return &ApiCallLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApiCallLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ApiCallLog entity by its id.
func (c *ApiCallLogClient) Get(ctx context.Context, id int) (*ApiCallLog, error) {
	return c.Query().Where(apicalllog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApiCallLogClient) GetX(ctx context.Context, id int) *ApiCallLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApiCallLogClient) Hooks() []Hook {
	return c.hooks.ApiCallLog
}

// Interceptors returns the client interceptors.
func (c *ApiCallLogClient) Interceptors() []Interceptor {
	return c.inters.ApiCallLog
}

func (c *ApiCallLogClient) mutate(ctx context.Context, m *ApiCallLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApiCallLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApiCallLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApiCallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApiCallLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApiCallLog mutation op: %q", m.Op())
	}
}

// CommandClient is a client for the Command schema.
type CommandClient struct {
	config
}

// NewCommandClient returns a client for the Command from the given config.
func NewCommandClient(c config) *CommandClient {
	return &CommandClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `command.Hooks(f(g(h())))`.
func (c *CommandClient) Use(hooks ...Hook) {
	c.hooks.Command = append(c.hooks.Command, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `command.Intercept(f(g(h())))`.
func (c *CommandClient) Intercept(interceptors ...Interceptor) {
	c.inters.Command = append(c.inters.Command, interceptors...)
}

// Create returns a builder for creating a Command entity.
func (c *CommandClient) Create() *CommandCreate {
	mutation := newCommandMutation(c.config, OpCreate)
	return &CommandCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Command entities.
func (c *CommandClient) CreateBulk(builders ...*CommandCreate) *CommandCreateBulk {
	return &CommandCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommandClient) MapCreateBulk(slice any, setFunc func(*CommandCreate, int)) *CommandCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommandCreateBulk{err: fmt.Errorf("calling to CommandClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommandCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommandCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Command.
func (c *CommandClient) Update() *CommandUpdate {
	mutation := newCommandMutation(c.config, OpUpdate)
	return &CommandUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommandClient) UpdateOne(_m *Command) *CommandUpdateOne {
	mutation := newCommandMutation(c.config, OpUpdateOne, withCommand(_m))
	return &CommandUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommandClient) UpdateOneID(id int) *CommandUpdateOne {
	mutation := newCommandMutation(c.config, OpUpdateOne, withCommandID(id))
	return &CommandUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Command.
func (c *CommandClient) Delete() *CommandDelete {
	mutation := newCommandMutation(c.config, OpDelete)
	return &CommandDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommandClient) DeleteOne(_m *Command) *CommandDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommandClient) DeleteOneID(id int) *CommandDeleteOne {
	builder := c.Delete().Where(command.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommandDeleteOne{builder}
}

// Query returns a query builder for Command.
func (c *CommandClient) Query() *CommandQuery {
	return &CommandQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommand},
		inters: c.Interceptors(),
	}
}

// Get returns a Command entity by its id.
func (c *CommandClient) Get(ctx context.Context, id int) (*Command, error) {
	return c.Query().Where(command.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommandClient) GetX(ctx context.Context, id int) *Command {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a Command.
func (c *CommandClient) QueryAgent(_m *Command) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(command.Table, command.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, command.AgentTable, command.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTurns queries the turns edge of a Command.
func (c *CommandClient) QueryTurns(_m *Command) *TurnQuery {
	query := (&TurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(command.Table, command.FieldID, id),
			sqlgraph.To(turn.Table, turn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, command.TurnsTable, command.TurnsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Command.
func (c *CommandClient) QueryEvents(_m *Command) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(command.Table, command.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, command.EventsTable, command.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInferenceCalls queries the inference_calls edge of a Command.
func (c *CommandClient) QueryInferenceCalls(_m *Command) *InferenceCallQuery {
	query := (&InferenceCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(command.Table, command.FieldID, id),
			sqlgraph.To(inferencecall.Table, inferencecall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, command.InferenceCallsTable, command.InferenceCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommandClient) Hooks() []Hook {
	return c.hooks.Command
}

// Interceptors returns the client interceptors.
func (c *CommandClient) Interceptors() []Interceptor {
	return c.inters.Command
}

func (c *CommandClient) mutate(ctx context.Context, m *CommandMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommandCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommandUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommandUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommandDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Command mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Event.
func (c *EventClient) QueryProject(_m *Event) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.ProjectTable, event.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgent queries the agent edge of a Event.
func (c *EventClient) QueryAgent(_m *Event) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.AgentTable, event.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommand queries the command edge of a Event.
func (c *EventClient) QueryCommand(_m *Event) *CommandQuery {
	query := (&CommandClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(command.Table, command.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.CommandTable, event.CommandColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTurn queries the turn edge of a Event.
func (c *EventClient) QueryTurn(_m *Event) *TurnQuery {
	query := (&TurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(turn.Table, turn.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.TurnTable, event.TurnColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// HandoffClient is a client for the Handoff schema.
type HandoffClient struct {
	config
}

// NewHandoffClient returns a client for the Handoff from the given config.
func NewHandoffClient(c config) *HandoffClient {
	return &HandoffClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `handoff.Hooks(f(g(h())))`.
func (c *HandoffClient) Use(hooks ...Hook) {
	c.hooks.Handoff = append(c.hooks.Handoff, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `handoff.Intercept(f(g(h())))`.
func (c *HandoffClient) Intercept(interceptors ...Interceptor) {
	c.inters.Handoff = append(c.inters.Handoff, interceptors...)
}

// Create returns a builder for creating a Handoff entity.
func (c *HandoffClient) Create() *HandoffCreate {
	mutation := newHandoffMutation(c.config, OpCreate)
	return &HandoffCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Handoff entities.
func (c *HandoffClient) CreateBulk(builders ...*HandoffCreate) *HandoffCreateBulk {
	return &HandoffCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HandoffClient) MapCreateBulk(slice any, setFunc func(*HandoffCreate, int)) *HandoffCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HandoffCreateBulk{err: fmt.Errorf("calling to HandoffClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HandoffCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HandoffCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Handoff.
func (c *HandoffClient) Update() *HandoffUpdate {
	mutation := newHandoffMutation(c.config, OpUpdate)
	return &HandoffUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HandoffClient) UpdateOne(_m *Handoff) *HandoffUpdateOne {
	mutation := newHandoffMutation(c.config, OpUpdateOne, withHandoff(_m))
	return &HandoffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HandoffClient) UpdateOneID(id int) *HandoffUpdateOne {
	mutation := newHandoffMutation(c.config, OpUpdateOne, withHandoffID(id))
	return &HandoffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Handoff.
func (c *HandoffClient) Delete() *HandoffDelete {
	mutation := newHandoffMutation(c.config, OpDelete)
	return &HandoffDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HandoffClient) DeleteOne(_m *Handoff) *HandoffDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HandoffClient) DeleteOneID(id int) *HandoffDeleteOne {
	builder := c.Delete().Where(handoff.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HandoffDeleteOne{builder}
}

// Query returns a query builder for Handoff.
func (c *HandoffClient) Query() *HandoffQuery {
	return &HandoffQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHandoff},
		inters: c.Interceptors(),
	}
}

// Get returns a Handoff entity by its id.
func (c *HandoffClient) Get(ctx context.Context, id int) (*Handoff, error) {
	return c.Query().Where(handoff.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HandoffClient) GetX(ctx context.Context, id int) *Handoff {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a Handoff.
func (c *HandoffClient) QueryAgent(_m *Handoff) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(handoff.Table, handoff.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, handoff.AgentTable, handoff.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HandoffClient) Hooks() []Hook {
	return c.hooks.Handoff
}

// Interceptors returns the client interceptors.
func (c *HandoffClient) Interceptors() []Interceptor {
	return c.inters.Handoff
}

func (c *HandoffClient) mutate(ctx context.Context, m *HandoffMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HandoffCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HandoffUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HandoffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HandoffDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Handoff mutation op: %q", m.Op())
	}
}

// HeadspaceSnapshotClient is a client for the HeadspaceSnapshot schema.
type HeadspaceSnapshotClient struct {
	config
}

// NewHeadspaceSnapshotClient returns a client for the HeadspaceSnapshot from the given config.
func NewHeadspaceSnapshotClient(c config) *HeadspaceSnapshotClient {
	return &HeadspaceSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `headspacesnapshot.Hooks(f(g(h())))`.
func (c *HeadspaceSnapshotClient) Use(hooks ...Hook) {
	c.hooks.HeadspaceSnapshot = append(c.hooks.HeadspaceSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `headspacesnapshot.Intercept(f(g(h())))`.
func (c *HeadspaceSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.HeadspaceSnapshot = append(c.inters.HeadspaceSnapshot, interceptors...)
}

// Create returns a builder for creating a HeadspaceSnapshot entity.
func (c *HeadspaceSnapshotClient) Create() *HeadspaceSnapshotCreate {
	mutation := newHeadspaceSnapshotMutation(c.config, OpCreate)
	return &HeadspaceSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HeadspaceSnapshot entities.
func (c *HeadspaceSnapshotClient) CreateBulk(builders ...*HeadspaceSnapshotCreate) *HeadspaceSnapshotCreateBulk {
	return &HeadspaceSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HeadspaceSnapshotClient) MapCreateBulk(slice any, setFunc func(*HeadspaceSnapshotCreate, int)) *HeadspaceSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HeadspaceSnapshotCreateBulk{err: fmt.Errorf("calling to HeadspaceSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HeadspaceSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HeadspaceSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HeadspaceSnapshot.
func (c *HeadspaceSnapshotClient) Update() *HeadspaceSnapshotUpdate {
	mutation := newHeadspaceSnapshotMutation(c.config, OpUpdate)
	return &HeadspaceSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HeadspaceSnapshotClient) UpdateOne(_m *HeadspaceSnapshot) *HeadspaceSnapshotUpdateOne {
	mutation := newHeadspaceSnapshotMutation(c.config, OpUpdateOne, withHeadspaceSnapshot(_m))
	return &HeadspaceSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HeadspaceSnapshotClient) UpdateOneID(id int) *HeadspaceSnapshotUpdateOne {
	mutation := newHeadspaceSnapshotMutation(c.config, OpUpdateOne, withHeadspaceSnapshotID(id))
	return &HeadspaceSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HeadspaceSnapshot.
func (c *HeadspaceSnapshotClient) Delete() *HeadspaceSnapshotDelete {
	mutation := newHeadspaceSnapshotMutation(c.config, OpDelete)
	return &HeadspaceSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HeadspaceSnapshotClient) DeleteOne(_m *HeadspaceSnapshot) *HeadspaceSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HeadspaceSnapshotClient) DeleteOneID(id int) *HeadspaceSnapshotDeleteOne {
	builder := c.Delete().Where(headspacesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HeadspaceSnapshotDeleteOne{builder}
}

// Query returns a query builder for HeadspaceSnapshot.
func (c *HeadspaceSnapshotClient) Query() *HeadspaceSnapshotQuery {
	return &HeadspaceSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHeadspaceSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a HeadspaceSnapshot entity by its id.
func (c *HeadspaceSnapshotClient) Get(ctx context.Context, id int) (*HeadspaceSnapshot, error) {
	return c.Query().Where(headspacesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HeadspaceSnapshotClient) GetX(ctx context.Context, id int) *HeadspaceSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a HeadspaceSnapshot.
func (c *HeadspaceSnapshotClient) QueryAgent(_m *HeadspaceSnapshot) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(headspacesnapshot.Table, headspacesnapshot.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, headspacesnapshot.AgentTable, headspacesnapshot.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HeadspaceSnapshotClient) Hooks() []Hook {
	return c.hooks.HeadspaceSnapshot
}

// Interceptors returns the client interceptors.
func (c *HeadspaceSnapshotClient) Interceptors() []Interceptor {
	return c.inters.HeadspaceSnapshot
}

func (c *HeadspaceSnapshotClient) mutate(ctx context.Context, m *HeadspaceSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HeadspaceSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HeadspaceSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HeadspaceSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HeadspaceSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HeadspaceSnapshot mutation op: %q", m.Op())
	}
}

// InferenceCallClient is a client for the InferenceCall schema.
type InferenceCallClient struct {
	config
}

// NewInferenceCallClient returns a client for the InferenceCall from the given config.
func NewInferenceCallClient(c config) *InferenceCallClient {
	return &InferenceCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inferencecall.Hooks(f(g(h())))`.
func (c *InferenceCallClient) Use(hooks ...Hook) {
	c.hooks.InferenceCall = append(c.hooks.InferenceCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inferencecall.Intercept(f(g(h())))`.
func (c *InferenceCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.InferenceCall = append(c.inters.InferenceCall, interceptors...)
}

// Create returns a builder for creating a InferenceCall entity.
func (c *InferenceCallClient) Create() *InferenceCallCreate {
	mutation := newInferenceCallMutation(c.config, OpCreate)
	return &InferenceCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InferenceCall entities.
func (c *InferenceCallClient) CreateBulk(builders ...*InferenceCallCreate) *InferenceCallCreateBulk {
	return &InferenceCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InferenceCallClient) MapCreateBulk(slice any, setFunc func(*InferenceCallCreate, int)) *InferenceCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InferenceCallCreateBulk{err: fmt.Errorf("calling to InferenceCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InferenceCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InferenceCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InferenceCall.
func (c *InferenceCallClient) Update() *InferenceCallUpdate {
	mutation := newInferenceCallMutation(c.config, OpUpdate)
	return &InferenceCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InferenceCallClient) UpdateOne(_m *InferenceCall) *InferenceCallUpdateOne {
	mutation := newInferenceCallMutation(c.config, OpUpdateOne, withInferenceCall(_m))
	return &InferenceCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InferenceCallClient) UpdateOneID(id int) *InferenceCallUpdateOne {
	mutation := newInferenceCallMutation(c.config, OpUpdateOne, withInferenceCallID(id))
	return &InferenceCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InferenceCall.
func (c *InferenceCallClient) Delete() *InferenceCallDelete {
	mutation := newInferenceCallMutation(c.config, OpDelete)
	return &InferenceCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InferenceCallClient) DeleteOne(_m *InferenceCall) *InferenceCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InferenceCallClient) DeleteOneID(id int) *InferenceCallDeleteOne {
	builder := c.Delete().Where(inferencecall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InferenceCallDeleteOne{builder}
}

// Query returns a query builder for InferenceCall.
func (c *InferenceCallClient) Query() *InferenceCallQuery {
	return &InferenceCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInferenceCall},
		inters: c.Interceptors(),
	}
}

// Get returns a InferenceCall entity by its id.
func (c *InferenceCallClient) Get(ctx context.Context, id int) (*InferenceCall, error) {
	return c.Query().Where(inferencecall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InferenceCallClient) GetX(ctx context.Context, id int) *InferenceCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a InferenceCall.
func (c *InferenceCallClient) QueryProject(_m *InferenceCall) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inferencecall.Table, inferencecall.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inferencecall.ProjectTable, inferencecall.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgent queries the agent edge of a InferenceCall.
func (c *InferenceCallClient) QueryAgent(_m *InferenceCall) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inferencecall.Table, inferencecall.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inferencecall.AgentTable, inferencecall.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommand queries the command edge of a InferenceCall.
func (c *InferenceCallClient) QueryCommand(_m *InferenceCall) *CommandQuery {
	query := (&CommandClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inferencecall.Table, inferencecall.FieldID, id),
			sqlgraph.To(command.Table, command.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inferencecall.CommandTable, inferencecall.CommandColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTurn queries the turn edge of a InferenceCall.
func (c *InferenceCallClient) QueryTurn(_m *InferenceCall) *TurnQuery {
	query := (&TurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inferencecall.Table, inferencecall.FieldID, id),
			sqlgraph.To(turn.Table, turn.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inferencecall.TurnTable, inferencecall.TurnColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InferenceCallClient) Hooks() []Hook {
	return c.hooks.InferenceCall
}

// Interceptors returns the client interceptors.
func (c *InferenceCallClient) Interceptors() []Interceptor {
	return c.inters.InferenceCall
}

func (c *InferenceCallClient) mutate(ctx context.Context, m *InferenceCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InferenceCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InferenceCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InferenceCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InferenceCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InferenceCall mutation op: %q", m.Op())
	}
}

// ObjectiveClient is a client for the Objective schema.
type ObjectiveClient struct {
	config
}

// NewObjectiveClient returns a client for the Objective from the given config.
func NewObjectiveClient(c config) *ObjectiveClient {
	return &ObjectiveClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `objective.Hooks(f(g(h())))`.
func (c *ObjectiveClient) Use(hooks ...Hook) {
	c.hooks.Objective = append(c.hooks.Objective, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `objective.Intercept(f(g(h())))`.
func (c *ObjectiveClient) Intercept(interceptors ...Interceptor) {
	c.inters.Objective = append(c.inters.Objective, interceptors...)
}

// Create returns a builder for creating a Objective entity.
func (c *ObjectiveClient) Create() *ObjectiveCreate {
	mutation := newObjectiveMutation(c.config, OpCreate)
	return &ObjectiveCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Objective entities.
func (c *ObjectiveClient) CreateBulk(builders ...*ObjectiveCreate) *ObjectiveCreateBulk {
	return &ObjectiveCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ObjectiveClient) MapCreateBulk(slice any, setFunc func(*ObjectiveCreate, int)) *ObjectiveCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ObjectiveCreateBulk{err: fmt.Errorf("calling to ObjectiveClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ObjectiveCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ObjectiveCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Objective.
func (c *ObjectiveClient) Update() *ObjectiveUpdate {
	mutation := newObjectiveMutation(c.config, OpUpdate)
	return &ObjectiveUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ObjectiveClient) UpdateOne(_m *Objective) *ObjectiveUpdateOne {
	mutation := newObjectiveMutation(c.config, OpUpdateOne, withObjective(_m))
	return &ObjectiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ObjectiveClient) UpdateOneID(id int) *ObjectiveUpdateOne {
	mutation := newObjectiveMutation(c.config, OpUpdateOne, withObjectiveID(id))
	return &ObjectiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Objective.
func (c *ObjectiveClient) Delete() *ObjectiveDelete {
	mutation := newObjectiveMutation(c.config, OpDelete)
	return &ObjectiveDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ObjectiveClient) DeleteOne(_m *Objective) *ObjectiveDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ObjectiveClient) DeleteOneID(id int) *ObjectiveDeleteOne {
	builder := c.Delete().Where(objective.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ObjectiveDeleteOne{builder}
}

// Query returns a query builder for Objective.
func (c *ObjectiveClient) Query() *ObjectiveQuery {
	return &ObjectiveQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeObjective},
		inters: c.Interceptors(),
	}
}

// Get returns a Objective entity by its id.
func (c *ObjectiveClient) Get(ctx context.Context, id int) (*Objective, error) {
	return c.Query().Where(objective.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ObjectiveClient) GetX(ctx context.Context, id int) *Objective {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ObjectiveClient) Hooks() []Hook {
	return c.hooks.Objective
}

// Interceptors returns the client interceptors.
func (c *ObjectiveClient) Interceptors() []Interceptor {
	return c.inters.Objective
}

func (c *ObjectiveClient) mutate(ctx context.Context, m *ObjectiveMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ObjectiveCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ObjectiveUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ObjectiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ObjectiveDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Objective mutation op: %q", m.Op())
	}
}

// OrganisationClient is a client for the Organisation schema.
type OrganisationClient struct {
	config
}

// NewOrganisationClient returns a client for the Organisation from the given config.
func NewOrganisationClient(c config) *OrganisationClient {
	return &OrganisationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `organisation.Hooks(f(g(h())))`.
func (c *OrganisationClient) Use(hooks ...Hook) {
	c.hooks.Organisation = append(c.hooks.Organisation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `organisation.Intercept(f(g(h())))`.
func (c *OrganisationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Organisation = append(c.inters.Organisation, interceptors...)
}

// Create returns a builder for creating a Organisation entity.
func (c *OrganisationClient) Create() *OrganisationCreate {
	mutation := newOrganisationMutation(c.config, OpCreate)
	return &OrganisationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Organisation entities.
func (c *OrganisationClient) CreateBulk(builders ...*OrganisationCreate) *OrganisationCreateBulk {
	return &OrganisationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrganisationClient) MapCreateBulk(slice any, setFunc func(*OrganisationCreate, int)) *OrganisationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrganisationCreateBulk{err: fmt.Errorf("calling to OrganisationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrganisationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrganisationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Organisation.
func (c *OrganisationClient) Update() *OrganisationUpdate {
	mutation := newOrganisationMutation(c.config, OpUpdate)
	return &OrganisationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrganisationClient) UpdateOne(_m *Organisation) *OrganisationUpdateOne {
	mutation := newOrganisationMutation(c.config, OpUpdateOne, withOrganisation(_m))
	return &OrganisationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrganisationClient) UpdateOneID(id int) *OrganisationUpdateOne {
	mutation := newOrganisationMutation(c.config, OpUpdateOne, withOrganisationID(id))
	return &OrganisationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Organisation.
func (c *OrganisationClient) Delete() *OrganisationDelete {
	mutation := newOrganisationMutation(c.config, OpDelete)
	return &OrganisationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrganisationClient) DeleteOne(_m *Organisation) *OrganisationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrganisationClient) DeleteOneID(id int) *OrganisationDeleteOne {
	builder := c.Delete().Where(organisation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrganisationDeleteOne{builder}
}

// Query returns a query builder for Organisation.
func (c *OrganisationClient) Query() *OrganisationQuery {
	return &OrganisationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrganisation},
		inters: c.Interceptors(),
	}
}

// Get returns a Organisation entity by its id.
func (c *OrganisationClient) Get(ctx context.Context, id int) (*Organisation, error) {
	return c.Query().Where(organisation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrganisationClient) GetX(ctx context.Context, id int) *Organisation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRoles queries the roles edge of a Organisation.
func (c *OrganisationClient) QueryRoles(_m *Organisation) *RoleQuery {
	query := (&RoleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(organisation.Table, organisation.FieldID, id),
			sqlgraph.To(role.Table, role.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, organisation.RolesTable, organisation.RolesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrganisationClient) Hooks() []Hook {
	return c.hooks.Organisation
}

// Interceptors returns the client interceptors.
func (c *OrganisationClient) Interceptors() []Interceptor {
	return c.inters.Organisation
}

func (c *OrganisationClient) mutate(ctx context.Context, m *OrganisationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrganisationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrganisationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrganisationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrganisationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Organisation mutation op: %q", m.Op())
	}
}

// PersonaClient is a client for the Persona schema.
type PersonaClient struct {
	config
}

// NewPersonaClient returns a client for the Persona from the given config.
func NewPersonaClient(c config) *PersonaClient {
	return &PersonaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `persona.Hooks(f(g(h())))`.
func (c *PersonaClient) Use(hooks ...Hook) {
	c.hooks.Persona = append(c.hooks.Persona, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `persona.Intercept(f(g(h())))`.
func (c *PersonaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Persona = append(c.inters.Persona, interceptors...)
}

// Create returns a builder for creating a Persona entity.
func (c *PersonaClient) Create() *PersonaCreate {
	mutation := newPersonaMutation(c.config, OpCreate)
	return &PersonaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Persona entities.
func (c *PersonaClient) CreateBulk(builders ...*PersonaCreate) *PersonaCreateBulk {
	return &PersonaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonaClient) MapCreateBulk(slice any, setFunc func(*PersonaCreate, int)) *PersonaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonaCreateBulk{err: fmt.Errorf("calling to PersonaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Persona.
func (c *PersonaClient) Update() *PersonaUpdate {
	mutation := newPersonaMutation(c.config, OpUpdate)
	return &PersonaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonaClient) UpdateOne(_m *Persona) *PersonaUpdateOne {
	mutation := newPersonaMutation(c.config, OpUpdateOne, withPersona(_m))
	return &PersonaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonaClient) UpdateOneID(id int) *PersonaUpdateOne {
	mutation := newPersonaMutation(c.config, OpUpdateOne, withPersonaID(id))
	return &PersonaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Persona.
func (c *PersonaClient) Delete() *PersonaDelete {
	mutation := newPersonaMutation(c.config, OpDelete)
	return &PersonaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonaClient) DeleteOne(_m *Persona) *PersonaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonaClient) DeleteOneID(id int) *PersonaDeleteOne {
	builder := c.Delete().Where(persona.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonaDeleteOne{builder}
}

// Query returns a query builder for Persona.
func (c *PersonaClient) Query() *PersonaQuery {
	return &PersonaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePersona},
		inters: c.Interceptors(),
	}
}

// Get returns a Persona entity by its id.
func (c *PersonaClient) Get(ctx context.Context, id int) (*Persona, error) {
	return c.Query().Where(persona.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonaClient) GetX(ctx context.Context, id int) *Persona {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRole queries the role edge of a Persona.
func (c *PersonaClient) QueryRole(_m *Persona) *RoleQuery {
	query := (&RoleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(persona.Table, persona.FieldID, id),
			sqlgraph.To(role.Table, role.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, persona.RoleTable, persona.RoleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgents queries the agents edge of a Persona.
func (c *PersonaClient) QueryAgents(_m *Persona) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(persona.Table, persona.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, persona.AgentsTable, persona.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PersonaClient) Hooks() []Hook {
	return c.hooks.Persona
}

// Interceptors returns the client interceptors.
func (c *PersonaClient) Interceptors() []Interceptor {
	return c.inters.Persona
}

func (c *PersonaClient) mutate(ctx context.Context, m *PersonaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Persona mutation op: %q", m.Op())
	}
}

// PositionClient is a client for the Position schema.
type PositionClient struct {
	config
}

// NewPositionClient returns a client for the Position from the given config.
func NewPositionClient(c config) *PositionClient {
	return &PositionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `position.Hooks(f(g(h())))`.
func (c *PositionClient) Use(hooks ...Hook) {
	c.hooks.Position = append(c.hooks.Position, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `position.Intercept(f(g(h())))`.
func (c *PositionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Position = append(c.inters.Position, interceptors...)
}

// Create returns a builder for creating a Position entity.
func (c *PositionClient) Create() *PositionCreate {
	mutation := newPositionMutation(c.config, OpCreate)
	return &PositionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Position entities.
func (c *PositionClient) CreateBulk(builders ...*PositionCreate) *PositionCreateBulk {
	return &PositionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PositionClient) MapCreateBulk(slice any, setFunc func(*PositionCreate, int)) *PositionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PositionCreateBulk{err: fmt.Errorf("calling to PositionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PositionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PositionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Position.
func (c *PositionClient) Update() *PositionUpdate {
	mutation := newPositionMutation(c.config, OpUpdate)
	return &PositionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PositionClient) UpdateOne(_m *Position) *PositionUpdateOne {
	mutation := newPositionMutation(c.config, OpUpdateOne, withPosition(_m))
	return &PositionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PositionClient) UpdateOneID(id int) *PositionUpdateOne {
	mutation := newPositionMutation(c.config, OpUpdateOne, withPositionID(id))
	return &PositionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Position.
func (c *PositionClient) Delete() *PositionDelete {
	mutation := newPositionMutation(c.config, OpDelete)
	return &PositionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PositionClient) DeleteOne(_m *Position) *PositionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PositionClient) DeleteOneID(id int) *PositionDeleteOne {
	builder := c.Delete().Where(position.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PositionDeleteOne{builder}
}

// Query returns a query builder for Position.
func (c *PositionClient) Query() *PositionQuery {
	return &PositionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePosition},
		inters: c.Interceptors(),
	}
}

// Get returns a Position entity by its id.
func (c *PositionClient) Get(ctx context.Context, id int) (*Position, error) {
	return c.Query().Where(position.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PositionClient) GetX(ctx context.Context, id int) *Position {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRole queries the role edge of a Position.
func (c *PositionClient) QueryRole(_m *Position) *RoleQuery {
	query := (&RoleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(position.Table, position.FieldID, id),
			sqlgraph.To(role.Table, role.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, position.RoleTable, position.RoleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReportsTo queries the reports_to edge of a Position.
func (c *PositionClient) QueryReportsTo(_m *Position) *PositionQuery {
	query := (&PositionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(position.Table, position.FieldID, id),
			sqlgraph.To(position.Table, position.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, position.ReportsToTable, position.ReportsToColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a Position.
func (c *PositionClient) QueryReports(_m *Position) *PositionQuery {
	query := (&PositionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(position.Table, position.FieldID, id),
			sqlgraph.To(position.Table, position.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, position.ReportsTable, position.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEscalatesTo queries the escalates_to edge of a Position.
func (c *PositionClient) QueryEscalatesTo(_m *Position) *PositionQuery {
	query := (&PositionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(position.Table, position.FieldID, id),
			sqlgraph.To(position.Table, position.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, position.EscalatesToTable, position.EscalatesToColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEscalations queries the escalations edge of a Position.
func (c *PositionClient) QueryEscalations(_m *Position) *PositionQuery {
	query := (&PositionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(position.Table, position.FieldID, id),
			sqlgraph.To(position.Table, position.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, position.EscalationsTable, position.EscalationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgents queries the agents edge of a Position.
func (c *PositionClient) QueryAgents(_m *Position) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(position.Table, position.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, position.AgentsTable, position.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PositionClient) Hooks() []Hook {
	return c.hooks.Position
}

// Interceptors returns the client interceptors.
func (c *PositionClient) Interceptors() []Interceptor {
	return c.inters.Position
}

func (c *PositionClient) mutate(ctx context.Context, m *PositionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PositionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PositionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PositionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PositionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Position mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id int) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id int) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id int) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id int) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgents queries the agents edge of a Project.
func (c *ProjectClient) QueryAgents(_m *Project) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.AgentsTable, project.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Project.
func (c *ProjectClient) QueryEvents(_m *Project) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.EventsTable, project.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActivityMetrics queries the activity_metrics edge of a Project.
func (c *ProjectClient) QueryActivityMetrics(_m *Project) *ActivityMetricQuery {
	query := (&ActivityMetricClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(activitymetric.Table, activitymetric.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.ActivityMetricsTable, project.ActivityMetricsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInferenceCalls queries the inference_calls edge of a Project.
func (c *ProjectClient) QueryInferenceCalls(_m *Project) *InferenceCallQuery {
	query := (&InferenceCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(inferencecall.Table, inferencecall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.InferenceCallsTable, project.InferenceCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// RoleClient is a client for the Role schema.
type RoleClient struct {
	config
}

// NewRoleClient returns a client for the Role from the given config.
func NewRoleClient(c config) *RoleClient {
	return &RoleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `role.Hooks(f(g(h())))`.
func (c *RoleClient) Use(hooks ...Hook) {
	c.hooks.Role = append(c.hooks.Role, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `role.Intercept(f(g(h())))`.
func (c *RoleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Role = append(c.inters.Role, interceptors...)
}

// Create returns a builder for creating a Role entity.
func (c *RoleClient) Create() *RoleCreate {
	mutation := newRoleMutation(c.config, OpCreate)
	return &RoleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Role entities.
func (c *RoleClient) CreateBulk(builders ...*RoleCreate) *RoleCreateBulk {
	return &RoleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoleClient) MapCreateBulk(slice any, setFunc func(*RoleCreate, int)) *RoleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoleCreateBulk{err: fmt.Errorf("calling to RoleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Role.
func (c *RoleClient) Update() *RoleUpdate {
	mutation := newRoleMutation(c.config, OpUpdate)
	return &RoleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoleClient) UpdateOne(_m *Role) *RoleUpdateOne {
	mutation := newRoleMutation(c.config, OpUpdateOne, withRole(_m))
	return &RoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoleClient) UpdateOneID(id int) *RoleUpdateOne {
	mutation := newRoleMutation(c.config, OpUpdateOne, withRoleID(id))
	return &RoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Role.
func (c *RoleClient) Delete() *RoleDelete {
	mutation := newRoleMutation(c.config, OpDelete)
	return &RoleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoleClient) DeleteOne(_m *Role) *RoleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoleClient) DeleteOneID(id int) *RoleDeleteOne {
	builder := c.Delete().Where(role.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoleDeleteOne{builder}
}

// Query returns a query builder for Role.
func (c *RoleClient) Query() *RoleQuery {
	return &RoleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRole},
		inters: c.Interceptors(),
	}
}

// Get returns a Role entity by its id.
func (c *RoleClient) Get(ctx context.Context, id int) (*Role, error) {
	return c.Query().Where(role.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoleClient) GetX(ctx context.Context, id int) *Role {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrganisation queries the organisation edge of a Role.
func (c *RoleClient) QueryOrganisation(_m *Role) *OrganisationQuery {
	query := (&OrganisationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(role.Table, role.FieldID, id),
			sqlgraph.To(organisation.Table, organisation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, role.OrganisationTable, role.OrganisationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPersonas queries the personas edge of a Role.
func (c *RoleClient) QueryPersonas(_m *Role) *PersonaQuery {
	query := (&PersonaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(role.Table, role.FieldID, id),
			sqlgraph.To(persona.Table, persona.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, role.PersonasTable, role.PersonasColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPositions queries the positions edge of a Role.
func (c *RoleClient) QueryPositions(_m *Role) *PositionQuery {
	query := (&PositionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(role.Table, role.FieldID, id),
			sqlgraph.To(position.Table, position.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, role.PositionsTable, role.PositionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RoleClient) Hooks() []Hook {
	return c.hooks.Role
}

// Interceptors returns the client interceptors.
func (c *RoleClient) Interceptors() []Interceptor {
	return c.inters.Role
}

func (c *RoleClient) mutate(ctx context.Context, m *RoleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Role mutation op: %q", m.Op())
	}
}

// TurnClient is a client for the Turn schema.
type TurnClient struct {
	config
}

// NewTurnClient returns a client for the Turn from the given config.
func NewTurnClient(c config) *TurnClient {
	return &TurnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `turn.Hooks(f(g(h())))`.
func (c *TurnClient) Use(hooks ...Hook) {
	c.hooks.Turn = append(c.hooks.Turn, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `turn.Intercept(f(g(h())))`.
func (c *TurnClient) Intercept(interceptors ...Interceptor) {
	c.inters.Turn = append(c.inters.Turn, interceptors...)
}

// Create returns a builder for creating a Turn entity.
func (c *TurnClient) Create() *TurnCreate {
	mutation := newTurnMutation(c.config, OpCreate)
	return &TurnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Turn entities.
func (c *TurnClient) CreateBulk(builders ...*TurnCreate) *TurnCreateBulk {
	return &TurnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TurnClient) MapCreateBulk(slice any, setFunc func(*TurnCreate, int)) *TurnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TurnCreateBulk{err: fmt.Errorf("calling to TurnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TurnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TurnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Turn.
func (c *TurnClient) Update() *TurnUpdate {
	mutation := newTurnMutation(c.config, OpUpdate)
	return &TurnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TurnClient) UpdateOne(_m *Turn) *TurnUpdateOne {
	mutation := newTurnMutation(c.config, OpUpdateOne, withTurn(_m))
	return &TurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TurnClient) UpdateOneID(id int) *TurnUpdateOne {
	mutation := newTurnMutation(c.config, OpUpdateOne, withTurnID(id))
	return &TurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Turn.
func (c *TurnClient) Delete() *TurnDelete {
	mutation := newTurnMutation(c.config, OpDelete)
	return &TurnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TurnClient) DeleteOne(_m *Turn) *TurnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TurnClient) DeleteOneID(id int) *TurnDeleteOne {
	builder := c.Delete().Where(turn.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TurnDeleteOne{builder}
}

// Query returns a query builder for Turn.
func (c *TurnClient) Query() *TurnQuery {
	return &TurnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTurn},
		inters: c.Interceptors(),
	}
}

// Get returns a Turn entity by its id.
func (c *TurnClient) Get(ctx context.Context, id int) (*Turn, error) {
	return c.Query().Where(turn.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TurnClient) GetX(ctx context.Context, id int) *Turn {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCommand queries the command edge of a Turn.
func (c *TurnClient) QueryCommand(_m *Turn) *CommandQuery {
	query := (&CommandClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(turn.Table, turn.FieldID, id),
			sqlgraph.To(command.Table, command.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, turn.CommandTable, turn.CommandColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnsweredBy queries the answered_by edge of a Turn.
func (c *TurnClient) QueryAnsweredBy(_m *Turn) *TurnQuery {
	query := (&TurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(turn.Table, turn.FieldID, id),
			sqlgraph.To(turn.Table, turn.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, turn.AnsweredByTable, turn.AnsweredByColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnswers queries the answers edge of a Turn.
func (c *TurnClient) QueryAnswers(_m *Turn) *TurnQuery {
	query := (&TurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(turn.Table, turn.FieldID, id),
			sqlgraph.To(turn.Table, turn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, turn.AnswersTable, turn.AnswersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Turn.
func (c *TurnClient) QueryEvents(_m *Turn) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(turn.Table, turn.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, turn.EventsTable, turn.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInferenceCalls queries the inference_calls edge of a Turn.
func (c *TurnClient) QueryInferenceCalls(_m *Turn) *InferenceCallQuery {
	query := (&InferenceCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(turn.Table, turn.FieldID, id),
			sqlgraph.To(inferencecall.Table, inferencecall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, turn.InferenceCallsTable, turn.InferenceCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TurnClient) Hooks() []Hook {
	return c.hooks.Turn
}

// Interceptors returns the client interceptors.
func (c *TurnClient) Interceptors() []Interceptor {
	return c.inters.Turn
}

func (c *TurnClient) mutate(ctx context.Context, m *TurnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TurnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TurnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TurnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Turn mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivityMetric, Agent, ApiCallLog, Command, Event, Handoff, HeadspaceSnapshot,
		InferenceCall, Objective, Organisation, Persona, Position, Project, Role,
		Turn []ent.Hook
	}
	inters struct {
		ActivityMetric, Agent, ApiCallLog, Command, Event, Handoff, HeadspaceSnapshot,
		InferenceCall, Objective, Organisation, Persona, Position, Project, Role,
		Turn []ent.Interceptor
	}
)
