// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
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
	"github.com/headspace-sh/headspace/ent/predicate"
	"github.com/headspace-sh/headspace/ent/project"
	"github.com/headspace-sh/headspace/ent/role"
	"github.com/headspace-sh/headspace/ent/turn"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivityMetric    = "ActivityMetric"
	TypeAgent             = "Agent"
	TypeApiCallLog        = "ApiCallLog"
	TypeCommand           = "Command"
	TypeEvent             = "Event"
	TypeHandoff           = "Handoff"
	TypeHeadspaceSnapshot = "HeadspaceSnapshot"
	TypeInferenceCall     = "InferenceCall"
	TypeObjective         = "Objective"
	TypeOrganisation      = "Organisation"
	TypePersona           = "Persona"
	TypePosition          = "Position"
	TypeProject           = "Project"
	TypeRole              = "Role"
	TypeTurn              = "Turn"
)

// ActivityMetricMutation represents an operation that mutates the ActivityMetric nodes in the graph.
type ActivityMetricMutation struct {
	config
	op               Op
	typ              string
	id               *int
	bucket_start     *time.Time
	is_overall       *bool
	turn_count       *int
	addturn_count    *int
	command_count    *int
	addcommand_count *int
	clearedFields    map[string]struct{}
	agent            *int
	clearedagent     bool
	project          *int
	clearedproject   bool
	done             bool
	oldValue         func(context.Context) (*ActivityMetric, error)
	predicates       []predicate.ActivityMetric
}

var _ ent.Mutation = (*ActivityMetricMutation)(nil)

// activitymetricOption allows management of the mutation configuration using functional options.
type activitymetricOption func(*ActivityMetricMutation)

// newActivityMetricMutation creates new mutation for the ActivityMetric entity.
func newActivityMetricMutation(c config, op Op, opts ...activitymetricOption) *ActivityMetricMutation {
	m := &ActivityMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityMetricID sets the ID field of the mutation.
func withActivityMetricID(id int) activitymetricOption {
	return func(m *ActivityMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityMetric
		)
		m.oldValue = func(ctx context.Context) (*ActivityMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityMetric sets the old ActivityMetric of the mutation.
func withActivityMetric(node *ActivityMetric) activitymetricOption {
	return func(m *ActivityMetricMutation) {
		m.oldValue = func(context.Context) (*ActivityMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityMetricMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityMetricMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBucketStart sets the "bucket_start" field.
func (m *ActivityMetricMutation) SetBucketStart(t time.Time) {
	m.bucket_start = &t
}

// BucketStart returns the value of the "bucket_start" field in the mutation.
func (m *ActivityMetricMutation) BucketStart() (r time.Time, exists bool) {
	v := m.bucket_start
	if v == nil {
		return
	}
	return *v, true
}

// OldBucketStart returns the old "bucket_start" field's value of the ActivityMetric entity.
// If the ActivityMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMetricMutation) OldBucketStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucketStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucketStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucketStart: %w", err)
	}
	return oldValue.BucketStart, nil
}

// ResetBucketStart resets all changes to the "bucket_start" field.
func (m *ActivityMetricMutation) ResetBucketStart() {
	m.bucket_start = nil
}

// SetIsOverall sets the "is_overall" field.
func (m *ActivityMetricMutation) SetIsOverall(b bool) {
	m.is_overall = &b
}

// IsOverall returns the value of the "is_overall" field in the mutation.
func (m *ActivityMetricMutation) IsOverall() (r bool, exists bool) {
	v := m.is_overall
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOverall returns the old "is_overall" field's value of the ActivityMetric entity.
// If the ActivityMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMetricMutation) OldIsOverall(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOverall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOverall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOverall: %w", err)
	}
	return oldValue.IsOverall, nil
}

// ResetIsOverall resets all changes to the "is_overall" field.
func (m *ActivityMetricMutation) ResetIsOverall() {
	m.is_overall = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ActivityMetricMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ActivityMetricMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ActivityMetric entity.
// If the ActivityMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMetricMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *ActivityMetricMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[activitymetric.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *ActivityMetricMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[activitymetric.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ActivityMetricMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, activitymetric.FieldAgentID)
}

// SetProjectID sets the "project_id" field.
func (m *ActivityMetricMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ActivityMetricMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ActivityMetric entity.
// If the ActivityMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMetricMutation) OldProjectID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *ActivityMetricMutation) ClearProjectID() {
	m.project = nil
	m.clearedFields[activitymetric.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *ActivityMetricMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[activitymetric.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ActivityMetricMutation) ResetProjectID() {
	m.project = nil
	delete(m.clearedFields, activitymetric.FieldProjectID)
}

// SetTurnCount sets the "turn_count" field.
func (m *ActivityMetricMutation) SetTurnCount(i int) {
	m.turn_count = &i
	m.addturn_count = nil
}

// TurnCount returns the value of the "turn_count" field in the mutation.
func (m *ActivityMetricMutation) TurnCount() (r int, exists bool) {
	v := m.turn_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnCount returns the old "turn_count" field's value of the ActivityMetric entity.
// If the ActivityMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMetricMutation) OldTurnCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnCount: %w", err)
	}
	return oldValue.TurnCount, nil
}

// AddTurnCount adds i to the "turn_count" field.
func (m *ActivityMetricMutation) AddTurnCount(i int) {
	if m.addturn_count != nil {
		*m.addturn_count += i
	} else {
		m.addturn_count = &i
	}
}

// AddedTurnCount returns the value that was added to the "turn_count" field in this mutation.
func (m *ActivityMetricMutation) AddedTurnCount() (r int, exists bool) {
	v := m.addturn_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnCount resets all changes to the "turn_count" field.
func (m *ActivityMetricMutation) ResetTurnCount() {
	m.turn_count = nil
	m.addturn_count = nil
}

// SetCommandCount sets the "command_count" field.
func (m *ActivityMetricMutation) SetCommandCount(i int) {
	m.command_count = &i
	m.addcommand_count = nil
}

// CommandCount returns the value of the "command_count" field in the mutation.
func (m *ActivityMetricMutation) CommandCount() (r int, exists bool) {
	v := m.command_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandCount returns the old "command_count" field's value of the ActivityMetric entity.
// If the ActivityMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMetricMutation) OldCommandCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandCount: %w", err)
	}
	return oldValue.CommandCount, nil
}

// AddCommandCount adds i to the "command_count" field.
func (m *ActivityMetricMutation) AddCommandCount(i int) {
	if m.addcommand_count != nil {
		*m.addcommand_count += i
	} else {
		m.addcommand_count = &i
	}
}

// AddedCommandCount returns the value that was added to the "command_count" field in this mutation.
func (m *ActivityMetricMutation) AddedCommandCount() (r int, exists bool) {
	v := m.addcommand_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommandCount resets all changes to the "command_count" field.
func (m *ActivityMetricMutation) ResetCommandCount() {
	m.command_count = nil
	m.addcommand_count = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *ActivityMetricMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[activitymetric.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *ActivityMetricMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *ActivityMetricMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *ActivityMetricMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ActivityMetricMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[activitymetric.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ActivityMetricMutation) ProjectCleared() bool {
	return m.ProjectIDCleared() || m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ActivityMetricMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ActivityMetricMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ActivityMetricMutation builder.
func (m *ActivityMetricMutation) Where(ps ...predicate.ActivityMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityMetric).
func (m *ActivityMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityMetricMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.bucket_start != nil {
		fields = append(fields, activitymetric.FieldBucketStart)
	}
	if m.is_overall != nil {
		fields = append(fields, activitymetric.FieldIsOverall)
	}
	if m.agent != nil {
		fields = append(fields, activitymetric.FieldAgentID)
	}
	if m.project != nil {
		fields = append(fields, activitymetric.FieldProjectID)
	}
	if m.turn_count != nil {
		fields = append(fields, activitymetric.FieldTurnCount)
	}
	if m.command_count != nil {
		fields = append(fields, activitymetric.FieldCommandCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activitymetric.FieldBucketStart:
		return m.BucketStart()
	case activitymetric.FieldIsOverall:
		return m.IsOverall()
	case activitymetric.FieldAgentID:
		return m.AgentID()
	case activitymetric.FieldProjectID:
		return m.ProjectID()
	case activitymetric.FieldTurnCount:
		return m.TurnCount()
	case activitymetric.FieldCommandCount:
		return m.CommandCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activitymetric.FieldBucketStart:
		return m.OldBucketStart(ctx)
	case activitymetric.FieldIsOverall:
		return m.OldIsOverall(ctx)
	case activitymetric.FieldAgentID:
		return m.OldAgentID(ctx)
	case activitymetric.FieldProjectID:
		return m.OldProjectID(ctx)
	case activitymetric.FieldTurnCount:
		return m.OldTurnCount(ctx)
	case activitymetric.FieldCommandCount:
		return m.OldCommandCount(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activitymetric.FieldBucketStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucketStart(v)
		return nil
	case activitymetric.FieldIsOverall:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOverall(v)
		return nil
	case activitymetric.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case activitymetric.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case activitymetric.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnCount(v)
		return nil
	case activitymetric.FieldCommandCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandCount(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityMetricMutation) AddedFields() []string {
	var fields []string
	if m.addturn_count != nil {
		fields = append(fields, activitymetric.FieldTurnCount)
	}
	if m.addcommand_count != nil {
		fields = append(fields, activitymetric.FieldCommandCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activitymetric.FieldTurnCount:
		return m.AddedTurnCount()
	case activitymetric.FieldCommandCount:
		return m.AddedCommandCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activitymetric.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnCount(v)
		return nil
	case activitymetric.FieldCommandCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommandCount(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityMetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activitymetric.FieldAgentID) {
		fields = append(fields, activitymetric.FieldAgentID)
	}
	if m.FieldCleared(activitymetric.FieldProjectID) {
		fields = append(fields, activitymetric.FieldProjectID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityMetricMutation) ClearField(name string) error {
	switch name {
	case activitymetric.FieldAgentID:
		m.ClearAgentID()
		return nil
	case activitymetric.FieldProjectID:
		m.ClearProjectID()
		return nil
	}
	return fmt.Errorf("unknown ActivityMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityMetricMutation) ResetField(name string) error {
	switch name {
	case activitymetric.FieldBucketStart:
		m.ResetBucketStart()
		return nil
	case activitymetric.FieldIsOverall:
		m.ResetIsOverall()
		return nil
	case activitymetric.FieldAgentID:
		m.ResetAgentID()
		return nil
	case activitymetric.FieldProjectID:
		m.ResetProjectID()
		return nil
	case activitymetric.FieldTurnCount:
		m.ResetTurnCount()
		return nil
	case activitymetric.FieldCommandCount:
		m.ResetCommandCount()
		return nil
	}
	return fmt.Errorf("unknown ActivityMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.agent != nil {
		edges = append(edges, activitymetric.EdgeAgent)
	}
	if m.project != nil {
		edges = append(edges, activitymetric.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityMetricMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case activitymetric.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case activitymetric.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedagent {
		edges = append(edges, activitymetric.EdgeAgent)
	}
	if m.clearedproject {
		edges = append(edges, activitymetric.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityMetricMutation) EdgeCleared(name string) bool {
	switch name {
	case activitymetric.EdgeAgent:
		return m.clearedagent
	case activitymetric.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityMetricMutation) ClearEdge(name string) error {
	switch name {
	case activitymetric.EdgeAgent:
		m.ClearAgent()
		return nil
	case activitymetric.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ActivityMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityMetricMutation) ResetEdge(name string) error {
	switch name {
	case activitymetric.EdgeAgent:
		m.ResetAgent()
		return nil
	case activitymetric.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ActivityMetric edge %s", name)
}

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	session_uuid             *uuid.UUID
	tmux_session_name        *string
	tmux_pane_id             *string
	legacy_window_id         *string
	started_at               *time.Time
	last_seen_at             *time.Time
	ended_at                 *time.Time
	prompt_injected_at       *time.Time
	priority_score           *int
	addpriority_score        *int
	priority_reason          *string
	priority_updated_at      *time.Time
	context_percent_used     *int
	addcontext_percent_used  *int
	context_remaining_tokens *string
	context_updated_at       *time.Time
	guardrails_version_hash  *string
	clearedFields            map[string]struct{}
	project                  *int
	clearedproject           bool
	persona                  *int
	clearedpersona           bool
	position                 *int
	clearedposition          bool
	previous_agent           *int
	clearedprevious_agent    bool
	successors               map[int]struct{}
	removedsuccessors        map[int]struct{}
	clearedsuccessors        bool
	commands                 map[int]struct{}
	removedcommands          map[int]struct{}
	clearedcommands          bool
	events                   map[int]struct{}
	removedevents            map[int]struct{}
	clearedevents            bool
	handoff                  *int
	clearedhandoff           bool
	activity_metrics         map[int]struct{}
	removedactivity_metrics  map[int]struct{}
	clearedactivity_metrics  bool
	snapshots                map[int]struct{}
	removedsnapshots         map[int]struct{}
	clearedsnapshots         bool
	inference_calls          map[int]struct{}
	removedinference_calls   map[int]struct{}
	clearedinference_calls   bool
	done                     bool
	oldValue                 func(context.Context) (*Agent, error)
	predicates               []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id int) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionUUID sets the "session_uuid" field.
func (m *AgentMutation) SetSessionUUID(u uuid.UUID) {
	m.session_uuid = &u
}

// SessionUUID returns the value of the "session_uuid" field in the mutation.
func (m *AgentMutation) SessionUUID() (r uuid.UUID, exists bool) {
	v := m.session_uuid
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionUUID returns the old "session_uuid" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSessionUUID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionUUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionUUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionUUID: %w", err)
	}
	return oldValue.SessionUUID, nil
}

// ResetSessionUUID resets all changes to the "session_uuid" field.
func (m *AgentMutation) ResetSessionUUID() {
	m.session_uuid = nil
}

// SetProjectID sets the "project_id" field.
func (m *AgentMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AgentMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AgentMutation) ResetProjectID() {
	m.project = nil
}

// SetPersonaID sets the "persona_id" field.
func (m *AgentMutation) SetPersonaID(i int) {
	m.persona = &i
}

// PersonaID returns the value of the "persona_id" field in the mutation.
func (m *AgentMutation) PersonaID() (r int, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonaID returns the old "persona_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPersonaID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonaID: %w", err)
	}
	return oldValue.PersonaID, nil
}

// ClearPersonaID clears the value of the "persona_id" field.
func (m *AgentMutation) ClearPersonaID() {
	m.persona = nil
	m.clearedFields[agent.FieldPersonaID] = struct{}{}
}

// PersonaIDCleared returns if the "persona_id" field was cleared in this mutation.
func (m *AgentMutation) PersonaIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldPersonaID]
	return ok
}

// ResetPersonaID resets all changes to the "persona_id" field.
func (m *AgentMutation) ResetPersonaID() {
	m.persona = nil
	delete(m.clearedFields, agent.FieldPersonaID)
}

// SetPositionID sets the "position_id" field.
func (m *AgentMutation) SetPositionID(i int) {
	m.position = &i
}

// PositionID returns the value of the "position_id" field in the mutation.
func (m *AgentMutation) PositionID() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPositionID returns the old "position_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPositionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositionID: %w", err)
	}
	return oldValue.PositionID, nil
}

// ClearPositionID clears the value of the "position_id" field.
func (m *AgentMutation) ClearPositionID() {
	m.position = nil
	m.clearedFields[agent.FieldPositionID] = struct{}{}
}

// PositionIDCleared returns if the "position_id" field was cleared in this mutation.
func (m *AgentMutation) PositionIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldPositionID]
	return ok
}

// ResetPositionID resets all changes to the "position_id" field.
func (m *AgentMutation) ResetPositionID() {
	m.position = nil
	delete(m.clearedFields, agent.FieldPositionID)
}

// SetPreviousAgentID sets the "previous_agent_id" field.
func (m *AgentMutation) SetPreviousAgentID(i int) {
	m.previous_agent = &i
}

// PreviousAgentID returns the value of the "previous_agent_id" field in the mutation.
func (m *AgentMutation) PreviousAgentID() (r int, exists bool) {
	v := m.previous_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousAgentID returns the old "previous_agent_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPreviousAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousAgentID: %w", err)
	}
	return oldValue.PreviousAgentID, nil
}

// ClearPreviousAgentID clears the value of the "previous_agent_id" field.
func (m *AgentMutation) ClearPreviousAgentID() {
	m.previous_agent = nil
	m.clearedFields[agent.FieldPreviousAgentID] = struct{}{}
}

// PreviousAgentIDCleared returns if the "previous_agent_id" field was cleared in this mutation.
func (m *AgentMutation) PreviousAgentIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldPreviousAgentID]
	return ok
}

// ResetPreviousAgentID resets all changes to the "previous_agent_id" field.
func (m *AgentMutation) ResetPreviousAgentID() {
	m.previous_agent = nil
	delete(m.clearedFields, agent.FieldPreviousAgentID)
}

// SetTmuxSessionName sets the "tmux_session_name" field.
func (m *AgentMutation) SetTmuxSessionName(s string) {
	m.tmux_session_name = &s
}

// TmuxSessionName returns the value of the "tmux_session_name" field in the mutation.
func (m *AgentMutation) TmuxSessionName() (r string, exists bool) {
	v := m.tmux_session_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTmuxSessionName returns the old "tmux_session_name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTmuxSessionName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTmuxSessionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTmuxSessionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTmuxSessionName: %w", err)
	}
	return oldValue.TmuxSessionName, nil
}

// ClearTmuxSessionName clears the value of the "tmux_session_name" field.
func (m *AgentMutation) ClearTmuxSessionName() {
	m.tmux_session_name = nil
	m.clearedFields[agent.FieldTmuxSessionName] = struct{}{}
}

// TmuxSessionNameCleared returns if the "tmux_session_name" field was cleared in this mutation.
func (m *AgentMutation) TmuxSessionNameCleared() bool {
	_, ok := m.clearedFields[agent.FieldTmuxSessionName]
	return ok
}

// ResetTmuxSessionName resets all changes to the "tmux_session_name" field.
func (m *AgentMutation) ResetTmuxSessionName() {
	m.tmux_session_name = nil
	delete(m.clearedFields, agent.FieldTmuxSessionName)
}

// SetTmuxPaneID sets the "tmux_pane_id" field.
func (m *AgentMutation) SetTmuxPaneID(s string) {
	m.tmux_pane_id = &s
}

// TmuxPaneID returns the value of the "tmux_pane_id" field in the mutation.
func (m *AgentMutation) TmuxPaneID() (r string, exists bool) {
	v := m.tmux_pane_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTmuxPaneID returns the old "tmux_pane_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTmuxPaneID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTmuxPaneID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTmuxPaneID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTmuxPaneID: %w", err)
	}
	return oldValue.TmuxPaneID, nil
}

// ClearTmuxPaneID clears the value of the "tmux_pane_id" field.
func (m *AgentMutation) ClearTmuxPaneID() {
	m.tmux_pane_id = nil
	m.clearedFields[agent.FieldTmuxPaneID] = struct{}{}
}

// TmuxPaneIDCleared returns if the "tmux_pane_id" field was cleared in this mutation.
func (m *AgentMutation) TmuxPaneIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldTmuxPaneID]
	return ok
}

// ResetTmuxPaneID resets all changes to the "tmux_pane_id" field.
func (m *AgentMutation) ResetTmuxPaneID() {
	m.tmux_pane_id = nil
	delete(m.clearedFields, agent.FieldTmuxPaneID)
}

// SetLegacyWindowID sets the "legacy_window_id" field.
func (m *AgentMutation) SetLegacyWindowID(s string) {
	m.legacy_window_id = &s
}

// LegacyWindowID returns the value of the "legacy_window_id" field in the mutation.
func (m *AgentMutation) LegacyWindowID() (r string, exists bool) {
	v := m.legacy_window_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyWindowID returns the old "legacy_window_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLegacyWindowID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyWindowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyWindowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyWindowID: %w", err)
	}
	return oldValue.LegacyWindowID, nil
}

// ClearLegacyWindowID clears the value of the "legacy_window_id" field.
func (m *AgentMutation) ClearLegacyWindowID() {
	m.legacy_window_id = nil
	m.clearedFields[agent.FieldLegacyWindowID] = struct{}{}
}

// LegacyWindowIDCleared returns if the "legacy_window_id" field was cleared in this mutation.
func (m *AgentMutation) LegacyWindowIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldLegacyWindowID]
	return ok
}

// ResetLegacyWindowID resets all changes to the "legacy_window_id" field.
func (m *AgentMutation) ResetLegacyWindowID() {
	m.legacy_window_id = nil
	delete(m.clearedFields, agent.FieldLegacyWindowID)
}

// SetStartedAt sets the "started_at" field.
func (m *AgentMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *AgentMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *AgentMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *AgentMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *AgentMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AgentMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *AgentMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[agent.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *AgentMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AgentMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, agent.FieldEndedAt)
}

// SetPromptInjectedAt sets the "prompt_injected_at" field.
func (m *AgentMutation) SetPromptInjectedAt(t time.Time) {
	m.prompt_injected_at = &t
}

// PromptInjectedAt returns the value of the "prompt_injected_at" field in the mutation.
func (m *AgentMutation) PromptInjectedAt() (r time.Time, exists bool) {
	v := m.prompt_injected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptInjectedAt returns the old "prompt_injected_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPromptInjectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptInjectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptInjectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptInjectedAt: %w", err)
	}
	return oldValue.PromptInjectedAt, nil
}

// ClearPromptInjectedAt clears the value of the "prompt_injected_at" field.
func (m *AgentMutation) ClearPromptInjectedAt() {
	m.prompt_injected_at = nil
	m.clearedFields[agent.FieldPromptInjectedAt] = struct{}{}
}

// PromptInjectedAtCleared returns if the "prompt_injected_at" field was cleared in this mutation.
func (m *AgentMutation) PromptInjectedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldPromptInjectedAt]
	return ok
}

// ResetPromptInjectedAt resets all changes to the "prompt_injected_at" field.
func (m *AgentMutation) ResetPromptInjectedAt() {
	m.prompt_injected_at = nil
	delete(m.clearedFields, agent.FieldPromptInjectedAt)
}

// SetPriorityScore sets the "priority_score" field.
func (m *AgentMutation) SetPriorityScore(i int) {
	m.priority_score = &i
	m.addpriority_score = nil
}

// PriorityScore returns the value of the "priority_score" field in the mutation.
func (m *AgentMutation) PriorityScore() (r int, exists bool) {
	v := m.priority_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityScore returns the old "priority_score" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPriorityScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityScore: %w", err)
	}
	return oldValue.PriorityScore, nil
}

// AddPriorityScore adds i to the "priority_score" field.
func (m *AgentMutation) AddPriorityScore(i int) {
	if m.addpriority_score != nil {
		*m.addpriority_score += i
	} else {
		m.addpriority_score = &i
	}
}

// AddedPriorityScore returns the value that was added to the "priority_score" field in this mutation.
func (m *AgentMutation) AddedPriorityScore() (r int, exists bool) {
	v := m.addpriority_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearPriorityScore clears the value of the "priority_score" field.
func (m *AgentMutation) ClearPriorityScore() {
	m.priority_score = nil
	m.addpriority_score = nil
	m.clearedFields[agent.FieldPriorityScore] = struct{}{}
}

// PriorityScoreCleared returns if the "priority_score" field was cleared in this mutation.
func (m *AgentMutation) PriorityScoreCleared() bool {
	_, ok := m.clearedFields[agent.FieldPriorityScore]
	return ok
}

// ResetPriorityScore resets all changes to the "priority_score" field.
func (m *AgentMutation) ResetPriorityScore() {
	m.priority_score = nil
	m.addpriority_score = nil
	delete(m.clearedFields, agent.FieldPriorityScore)
}

// SetPriorityReason sets the "priority_reason" field.
func (m *AgentMutation) SetPriorityReason(s string) {
	m.priority_reason = &s
}

// PriorityReason returns the value of the "priority_reason" field in the mutation.
func (m *AgentMutation) PriorityReason() (r string, exists bool) {
	v := m.priority_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityReason returns the old "priority_reason" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPriorityReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityReason: %w", err)
	}
	return oldValue.PriorityReason, nil
}

// ClearPriorityReason clears the value of the "priority_reason" field.
func (m *AgentMutation) ClearPriorityReason() {
	m.priority_reason = nil
	m.clearedFields[agent.FieldPriorityReason] = struct{}{}
}

// PriorityReasonCleared returns if the "priority_reason" field was cleared in this mutation.
func (m *AgentMutation) PriorityReasonCleared() bool {
	_, ok := m.clearedFields[agent.FieldPriorityReason]
	return ok
}

// ResetPriorityReason resets all changes to the "priority_reason" field.
func (m *AgentMutation) ResetPriorityReason() {
	m.priority_reason = nil
	delete(m.clearedFields, agent.FieldPriorityReason)
}

// SetPriorityUpdatedAt sets the "priority_updated_at" field.
func (m *AgentMutation) SetPriorityUpdatedAt(t time.Time) {
	m.priority_updated_at = &t
}

// PriorityUpdatedAt returns the value of the "priority_updated_at" field in the mutation.
func (m *AgentMutation) PriorityUpdatedAt() (r time.Time, exists bool) {
	v := m.priority_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityUpdatedAt returns the old "priority_updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPriorityUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityUpdatedAt: %w", err)
	}
	return oldValue.PriorityUpdatedAt, nil
}

// ClearPriorityUpdatedAt clears the value of the "priority_updated_at" field.
func (m *AgentMutation) ClearPriorityUpdatedAt() {
	m.priority_updated_at = nil
	m.clearedFields[agent.FieldPriorityUpdatedAt] = struct{}{}
}

// PriorityUpdatedAtCleared returns if the "priority_updated_at" field was cleared in this mutation.
func (m *AgentMutation) PriorityUpdatedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldPriorityUpdatedAt]
	return ok
}

// ResetPriorityUpdatedAt resets all changes to the "priority_updated_at" field.
func (m *AgentMutation) ResetPriorityUpdatedAt() {
	m.priority_updated_at = nil
	delete(m.clearedFields, agent.FieldPriorityUpdatedAt)
}

// SetContextPercentUsed sets the "context_percent_used" field.
func (m *AgentMutation) SetContextPercentUsed(i int) {
	m.context_percent_used = &i
	m.addcontext_percent_used = nil
}

// ContextPercentUsed returns the value of the "context_percent_used" field in the mutation.
func (m *AgentMutation) ContextPercentUsed() (r int, exists bool) {
	v := m.context_percent_used
	if v == nil {
		return
	}
	return *v, true
}

// OldContextPercentUsed returns the old "context_percent_used" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldContextPercentUsed(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextPercentUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextPercentUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextPercentUsed: %w", err)
	}
	return oldValue.ContextPercentUsed, nil
}

// AddContextPercentUsed adds i to the "context_percent_used" field.
func (m *AgentMutation) AddContextPercentUsed(i int) {
	if m.addcontext_percent_used != nil {
		*m.addcontext_percent_used += i
	} else {
		m.addcontext_percent_used = &i
	}
}

// AddedContextPercentUsed returns the value that was added to the "context_percent_used" field in this mutation.
func (m *AgentMutation) AddedContextPercentUsed() (r int, exists bool) {
	v := m.addcontext_percent_used
	if v == nil {
		return
	}
	return *v, true
}

// ClearContextPercentUsed clears the value of the "context_percent_used" field.
func (m *AgentMutation) ClearContextPercentUsed() {
	m.context_percent_used = nil
	m.addcontext_percent_used = nil
	m.clearedFields[agent.FieldContextPercentUsed] = struct{}{}
}

// ContextPercentUsedCleared returns if the "context_percent_used" field was cleared in this mutation.
func (m *AgentMutation) ContextPercentUsedCleared() bool {
	_, ok := m.clearedFields[agent.FieldContextPercentUsed]
	return ok
}

// ResetContextPercentUsed resets all changes to the "context_percent_used" field.
func (m *AgentMutation) ResetContextPercentUsed() {
	m.context_percent_used = nil
	m.addcontext_percent_used = nil
	delete(m.clearedFields, agent.FieldContextPercentUsed)
}

// SetContextRemainingTokens sets the "context_remaining_tokens" field.
func (m *AgentMutation) SetContextRemainingTokens(s string) {
	m.context_remaining_tokens = &s
}

// ContextRemainingTokens returns the value of the "context_remaining_tokens" field in the mutation.
func (m *AgentMutation) ContextRemainingTokens() (r string, exists bool) {
	v := m.context_remaining_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldContextRemainingTokens returns the old "context_remaining_tokens" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldContextRemainingTokens(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextRemainingTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextRemainingTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextRemainingTokens: %w", err)
	}
	return oldValue.ContextRemainingTokens, nil
}

// ClearContextRemainingTokens clears the value of the "context_remaining_tokens" field.
func (m *AgentMutation) ClearContextRemainingTokens() {
	m.context_remaining_tokens = nil
	m.clearedFields[agent.FieldContextRemainingTokens] = struct{}{}
}

// ContextRemainingTokensCleared returns if the "context_remaining_tokens" field was cleared in this mutation.
func (m *AgentMutation) ContextRemainingTokensCleared() bool {
	_, ok := m.clearedFields[agent.FieldContextRemainingTokens]
	return ok
}

// ResetContextRemainingTokens resets all changes to the "context_remaining_tokens" field.
func (m *AgentMutation) ResetContextRemainingTokens() {
	m.context_remaining_tokens = nil
	delete(m.clearedFields, agent.FieldContextRemainingTokens)
}

// SetContextUpdatedAt sets the "context_updated_at" field.
func (m *AgentMutation) SetContextUpdatedAt(t time.Time) {
	m.context_updated_at = &t
}

// ContextUpdatedAt returns the value of the "context_updated_at" field in the mutation.
func (m *AgentMutation) ContextUpdatedAt() (r time.Time, exists bool) {
	v := m.context_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldContextUpdatedAt returns the old "context_updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldContextUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextUpdatedAt: %w", err)
	}
	return oldValue.ContextUpdatedAt, nil
}

// ClearContextUpdatedAt clears the value of the "context_updated_at" field.
func (m *AgentMutation) ClearContextUpdatedAt() {
	m.context_updated_at = nil
	m.clearedFields[agent.FieldContextUpdatedAt] = struct{}{}
}

// ContextUpdatedAtCleared returns if the "context_updated_at" field was cleared in this mutation.
func (m *AgentMutation) ContextUpdatedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldContextUpdatedAt]
	return ok
}

// ResetContextUpdatedAt resets all changes to the "context_updated_at" field.
func (m *AgentMutation) ResetContextUpdatedAt() {
	m.context_updated_at = nil
	delete(m.clearedFields, agent.FieldContextUpdatedAt)
}

// SetGuardrailsVersionHash sets the "guardrails_version_hash" field.
func (m *AgentMutation) SetGuardrailsVersionHash(s string) {
	m.guardrails_version_hash = &s
}

// GuardrailsVersionHash returns the value of the "guardrails_version_hash" field in the mutation.
func (m *AgentMutation) GuardrailsVersionHash() (r string, exists bool) {
	v := m.guardrails_version_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldGuardrailsVersionHash returns the old "guardrails_version_hash" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldGuardrailsVersionHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuardrailsVersionHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuardrailsVersionHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuardrailsVersionHash: %w", err)
	}
	return oldValue.GuardrailsVersionHash, nil
}

// ClearGuardrailsVersionHash clears the value of the "guardrails_version_hash" field.
func (m *AgentMutation) ClearGuardrailsVersionHash() {
	m.guardrails_version_hash = nil
	m.clearedFields[agent.FieldGuardrailsVersionHash] = struct{}{}
}

// GuardrailsVersionHashCleared returns if the "guardrails_version_hash" field was cleared in this mutation.
func (m *AgentMutation) GuardrailsVersionHashCleared() bool {
	_, ok := m.clearedFields[agent.FieldGuardrailsVersionHash]
	return ok
}

// ResetGuardrailsVersionHash resets all changes to the "guardrails_version_hash" field.
func (m *AgentMutation) ResetGuardrailsVersionHash() {
	m.guardrails_version_hash = nil
	delete(m.clearedFields, agent.FieldGuardrailsVersionHash)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *AgentMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[agent.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *AgentMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *AgentMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearPersona clears the "persona" edge to the Persona entity.
func (m *AgentMutation) ClearPersona() {
	m.clearedpersona = true
	m.clearedFields[agent.FieldPersonaID] = struct{}{}
}

// PersonaCleared reports if the "persona" edge to the Persona entity was cleared.
func (m *AgentMutation) PersonaCleared() bool {
	return m.PersonaIDCleared() || m.clearedpersona
}

// PersonaIDs returns the "persona" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PersonaID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) PersonaIDs() (ids []int) {
	if id := m.persona; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPersona resets all changes to the "persona" edge.
func (m *AgentMutation) ResetPersona() {
	m.persona = nil
	m.clearedpersona = false
}

// ClearPosition clears the "position" edge to the Position entity.
func (m *AgentMutation) ClearPosition() {
	m.clearedposition = true
	m.clearedFields[agent.FieldPositionID] = struct{}{}
}

// PositionCleared reports if the "position" edge to the Position entity was cleared.
func (m *AgentMutation) PositionCleared() bool {
	return m.PositionIDCleared() || m.clearedposition
}

// PositionIDs returns the "position" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PositionID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) PositionIDs() (ids []int) {
	if id := m.position; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPosition resets all changes to the "position" edge.
func (m *AgentMutation) ResetPosition() {
	m.position = nil
	m.clearedposition = false
}

// ClearPreviousAgent clears the "previous_agent" edge to the Agent entity.
func (m *AgentMutation) ClearPreviousAgent() {
	m.clearedprevious_agent = true
	m.clearedFields[agent.FieldPreviousAgentID] = struct{}{}
}

// PreviousAgentCleared reports if the "previous_agent" edge to the Agent entity was cleared.
func (m *AgentMutation) PreviousAgentCleared() bool {
	return m.PreviousAgentIDCleared() || m.clearedprevious_agent
}

// PreviousAgentIDs returns the "previous_agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PreviousAgentID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) PreviousAgentIDs() (ids []int) {
	if id := m.previous_agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPreviousAgent resets all changes to the "previous_agent" edge.
func (m *AgentMutation) ResetPreviousAgent() {
	m.previous_agent = nil
	m.clearedprevious_agent = false
}

// AddSuccessorIDs adds the "successors" edge to the Agent entity by ids.
func (m *AgentMutation) AddSuccessorIDs(ids ...int) {
	if m.successors == nil {
		m.successors = make(map[int]struct{})
	}
	for i := range ids {
		m.successors[ids[i]] = struct{}{}
	}
}

// ClearSuccessors clears the "successors" edge to the Agent entity.
func (m *AgentMutation) ClearSuccessors() {
	m.clearedsuccessors = true
}

// SuccessorsCleared reports if the "successors" edge to the Agent entity was cleared.
func (m *AgentMutation) SuccessorsCleared() bool {
	return m.clearedsuccessors
}

// RemoveSuccessorIDs removes the "successors" edge to the Agent entity by IDs.
func (m *AgentMutation) RemoveSuccessorIDs(ids ...int) {
	if m.removedsuccessors == nil {
		m.removedsuccessors = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.successors, ids[i])
		m.removedsuccessors[ids[i]] = struct{}{}
	}
}

// RemovedSuccessors returns the removed IDs of the "successors" edge to the Agent entity.
func (m *AgentMutation) RemovedSuccessorsIDs() (ids []int) {
	for id := range m.removedsuccessors {
		ids = append(ids, id)
	}
	return
}

// SuccessorsIDs returns the "successors" edge IDs in the mutation.
func (m *AgentMutation) SuccessorsIDs() (ids []int) {
	for id := range m.successors {
		ids = append(ids, id)
	}
	return
}

// ResetSuccessors resets all changes to the "successors" edge.
func (m *AgentMutation) ResetSuccessors() {
	m.successors = nil
	m.clearedsuccessors = false
	m.removedsuccessors = nil
}

// AddCommandIDs adds the "commands" edge to the Command entity by ids.
func (m *AgentMutation) AddCommandIDs(ids ...int) {
	if m.commands == nil {
		m.commands = make(map[int]struct{})
	}
	for i := range ids {
		m.commands[ids[i]] = struct{}{}
	}
}

// ClearCommands clears the "commands" edge to the Command entity.
func (m *AgentMutation) ClearCommands() {
	m.clearedcommands = true
}

// CommandsCleared reports if the "commands" edge to the Command entity was cleared.
func (m *AgentMutation) CommandsCleared() bool {
	return m.clearedcommands
}

// RemoveCommandIDs removes the "commands" edge to the Command entity by IDs.
func (m *AgentMutation) RemoveCommandIDs(ids ...int) {
	if m.removedcommands == nil {
		m.removedcommands = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.commands, ids[i])
		m.removedcommands[ids[i]] = struct{}{}
	}
}

// RemovedCommands returns the removed IDs of the "commands" edge to the Command entity.
func (m *AgentMutation) RemovedCommandsIDs() (ids []int) {
	for id := range m.removedcommands {
		ids = append(ids, id)
	}
	return
}

// CommandsIDs returns the "commands" edge IDs in the mutation.
func (m *AgentMutation) CommandsIDs() (ids []int) {
	for id := range m.commands {
		ids = append(ids, id)
	}
	return
}

// ResetCommands resets all changes to the "commands" edge.
func (m *AgentMutation) ResetCommands() {
	m.commands = nil
	m.clearedcommands = false
	m.removedcommands = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *AgentMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *AgentMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *AgentMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *AgentMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *AgentMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *AgentMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *AgentMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// SetHandoffID sets the "handoff" edge to the Handoff entity by id.
func (m *AgentMutation) SetHandoffID(id int) {
	m.handoff = &id
}

// ClearHandoff clears the "handoff" edge to the Handoff entity.
func (m *AgentMutation) ClearHandoff() {
	m.clearedhandoff = true
}

// HandoffCleared reports if the "handoff" edge to the Handoff entity was cleared.
func (m *AgentMutation) HandoffCleared() bool {
	return m.clearedhandoff
}

// HandoffID returns the "handoff" edge ID in the mutation.
func (m *AgentMutation) HandoffID() (id int, exists bool) {
	if m.handoff != nil {
		return *m.handoff, true
	}
	return
}

// HandoffIDs returns the "handoff" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HandoffID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) HandoffIDs() (ids []int) {
	if id := m.handoff; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHandoff resets all changes to the "handoff" edge.
func (m *AgentMutation) ResetHandoff() {
	m.handoff = nil
	m.clearedhandoff = false
}

// AddActivityMetricIDs adds the "activity_metrics" edge to the ActivityMetric entity by ids.
func (m *AgentMutation) AddActivityMetricIDs(ids ...int) {
	if m.activity_metrics == nil {
		m.activity_metrics = make(map[int]struct{})
	}
	for i := range ids {
		m.activity_metrics[ids[i]] = struct{}{}
	}
}

// ClearActivityMetrics clears the "activity_metrics" edge to the ActivityMetric entity.
func (m *AgentMutation) ClearActivityMetrics() {
	m.clearedactivity_metrics = true
}

// ActivityMetricsCleared reports if the "activity_metrics" edge to the ActivityMetric entity was cleared.
func (m *AgentMutation) ActivityMetricsCleared() bool {
	return m.clearedactivity_metrics
}

// RemoveActivityMetricIDs removes the "activity_metrics" edge to the ActivityMetric entity by IDs.
func (m *AgentMutation) RemoveActivityMetricIDs(ids ...int) {
	if m.removedactivity_metrics == nil {
		m.removedactivity_metrics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activity_metrics, ids[i])
		m.removedactivity_metrics[ids[i]] = struct{}{}
	}
}

// RemovedActivityMetrics returns the removed IDs of the "activity_metrics" edge to the ActivityMetric entity.
func (m *AgentMutation) RemovedActivityMetricsIDs() (ids []int) {
	for id := range m.removedactivity_metrics {
		ids = append(ids, id)
	}
	return
}

// ActivityMetricsIDs returns the "activity_metrics" edge IDs in the mutation.
func (m *AgentMutation) ActivityMetricsIDs() (ids []int) {
	for id := range m.activity_metrics {
		ids = append(ids, id)
	}
	return
}

// ResetActivityMetrics resets all changes to the "activity_metrics" edge.
func (m *AgentMutation) ResetActivityMetrics() {
	m.activity_metrics = nil
	m.clearedactivity_metrics = false
	m.removedactivity_metrics = nil
}

// AddSnapshotIDs adds the "snapshots" edge to the HeadspaceSnapshot entity by ids.
func (m *AgentMutation) AddSnapshotIDs(ids ...int) {
	if m.snapshots == nil {
		m.snapshots = make(map[int]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the HeadspaceSnapshot entity.
func (m *AgentMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the HeadspaceSnapshot entity was cleared.
func (m *AgentMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the HeadspaceSnapshot entity by IDs.
func (m *AgentMutation) RemoveSnapshotIDs(ids ...int) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the HeadspaceSnapshot entity.
func (m *AgentMutation) RemovedSnapshotsIDs() (ids []int) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *AgentMutation) SnapshotsIDs() (ids []int) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *AgentMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by ids.
func (m *AgentMutation) AddInferenceCallIDs(ids ...int) {
	if m.inference_calls == nil {
		m.inference_calls = make(map[int]struct{})
	}
	for i := range ids {
		m.inference_calls[ids[i]] = struct{}{}
	}
}

// ClearInferenceCalls clears the "inference_calls" edge to the InferenceCall entity.
func (m *AgentMutation) ClearInferenceCalls() {
	m.clearedinference_calls = true
}

// InferenceCallsCleared reports if the "inference_calls" edge to the InferenceCall entity was cleared.
func (m *AgentMutation) InferenceCallsCleared() bool {
	return m.clearedinference_calls
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to the InferenceCall entity by IDs.
func (m *AgentMutation) RemoveInferenceCallIDs(ids ...int) {
	if m.removedinference_calls == nil {
		m.removedinference_calls = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.inference_calls, ids[i])
		m.removedinference_calls[ids[i]] = struct{}{}
	}
}

// RemovedInferenceCalls returns the removed IDs of the "inference_calls" edge to the InferenceCall entity.
func (m *AgentMutation) RemovedInferenceCallsIDs() (ids []int) {
	for id := range m.removedinference_calls {
		ids = append(ids, id)
	}
	return
}

// InferenceCallsIDs returns the "inference_calls" edge IDs in the mutation.
func (m *AgentMutation) InferenceCallsIDs() (ids []int) {
	for id := range m.inference_calls {
		ids = append(ids, id)
	}
	return
}

// ResetInferenceCalls resets all changes to the "inference_calls" edge.
func (m *AgentMutation) ResetInferenceCalls() {
	m.inference_calls = nil
	m.clearedinference_calls = false
	m.removedinference_calls = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.session_uuid != nil {
		fields = append(fields, agent.FieldSessionUUID)
	}
	if m.project != nil {
		fields = append(fields, agent.FieldProjectID)
	}
	if m.persona != nil {
		fields = append(fields, agent.FieldPersonaID)
	}
	if m.position != nil {
		fields = append(fields, agent.FieldPositionID)
	}
	if m.previous_agent != nil {
		fields = append(fields, agent.FieldPreviousAgentID)
	}
	if m.tmux_session_name != nil {
		fields = append(fields, agent.FieldTmuxSessionName)
	}
	if m.tmux_pane_id != nil {
		fields = append(fields, agent.FieldTmuxPaneID)
	}
	if m.legacy_window_id != nil {
		fields = append(fields, agent.FieldLegacyWindowID)
	}
	if m.started_at != nil {
		fields = append(fields, agent.FieldStartedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, agent.FieldLastSeenAt)
	}
	if m.ended_at != nil {
		fields = append(fields, agent.FieldEndedAt)
	}
	if m.prompt_injected_at != nil {
		fields = append(fields, agent.FieldPromptInjectedAt)
	}
	if m.priority_score != nil {
		fields = append(fields, agent.FieldPriorityScore)
	}
	if m.priority_reason != nil {
		fields = append(fields, agent.FieldPriorityReason)
	}
	if m.priority_updated_at != nil {
		fields = append(fields, agent.FieldPriorityUpdatedAt)
	}
	if m.context_percent_used != nil {
		fields = append(fields, agent.FieldContextPercentUsed)
	}
	if m.context_remaining_tokens != nil {
		fields = append(fields, agent.FieldContextRemainingTokens)
	}
	if m.context_updated_at != nil {
		fields = append(fields, agent.FieldContextUpdatedAt)
	}
	if m.guardrails_version_hash != nil {
		fields = append(fields, agent.FieldGuardrailsVersionHash)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldSessionUUID:
		return m.SessionUUID()
	case agent.FieldProjectID:
		return m.ProjectID()
	case agent.FieldPersonaID:
		return m.PersonaID()
	case agent.FieldPositionID:
		return m.PositionID()
	case agent.FieldPreviousAgentID:
		return m.PreviousAgentID()
	case agent.FieldTmuxSessionName:
		return m.TmuxSessionName()
	case agent.FieldTmuxPaneID:
		return m.TmuxPaneID()
	case agent.FieldLegacyWindowID:
		return m.LegacyWindowID()
	case agent.FieldStartedAt:
		return m.StartedAt()
	case agent.FieldLastSeenAt:
		return m.LastSeenAt()
	case agent.FieldEndedAt:
		return m.EndedAt()
	case agent.FieldPromptInjectedAt:
		return m.PromptInjectedAt()
	case agent.FieldPriorityScore:
		return m.PriorityScore()
	case agent.FieldPriorityReason:
		return m.PriorityReason()
	case agent.FieldPriorityUpdatedAt:
		return m.PriorityUpdatedAt()
	case agent.FieldContextPercentUsed:
		return m.ContextPercentUsed()
	case agent.FieldContextRemainingTokens:
		return m.ContextRemainingTokens()
	case agent.FieldContextUpdatedAt:
		return m.ContextUpdatedAt()
	case agent.FieldGuardrailsVersionHash:
		return m.GuardrailsVersionHash()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldSessionUUID:
		return m.OldSessionUUID(ctx)
	case agent.FieldProjectID:
		return m.OldProjectID(ctx)
	case agent.FieldPersonaID:
		return m.OldPersonaID(ctx)
	case agent.FieldPositionID:
		return m.OldPositionID(ctx)
	case agent.FieldPreviousAgentID:
		return m.OldPreviousAgentID(ctx)
	case agent.FieldTmuxSessionName:
		return m.OldTmuxSessionName(ctx)
	case agent.FieldTmuxPaneID:
		return m.OldTmuxPaneID(ctx)
	case agent.FieldLegacyWindowID:
		return m.OldLegacyWindowID(ctx)
	case agent.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agent.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case agent.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case agent.FieldPromptInjectedAt:
		return m.OldPromptInjectedAt(ctx)
	case agent.FieldPriorityScore:
		return m.OldPriorityScore(ctx)
	case agent.FieldPriorityReason:
		return m.OldPriorityReason(ctx)
	case agent.FieldPriorityUpdatedAt:
		return m.OldPriorityUpdatedAt(ctx)
	case agent.FieldContextPercentUsed:
		return m.OldContextPercentUsed(ctx)
	case agent.FieldContextRemainingTokens:
		return m.OldContextRemainingTokens(ctx)
	case agent.FieldContextUpdatedAt:
		return m.OldContextUpdatedAt(ctx)
	case agent.FieldGuardrailsVersionHash:
		return m.OldGuardrailsVersionHash(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldSessionUUID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionUUID(v)
		return nil
	case agent.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case agent.FieldPersonaID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonaID(v)
		return nil
	case agent.FieldPositionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositionID(v)
		return nil
	case agent.FieldPreviousAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousAgentID(v)
		return nil
	case agent.FieldTmuxSessionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTmuxSessionName(v)
		return nil
	case agent.FieldTmuxPaneID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTmuxPaneID(v)
		return nil
	case agent.FieldLegacyWindowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyWindowID(v)
		return nil
	case agent.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agent.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case agent.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case agent.FieldPromptInjectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptInjectedAt(v)
		return nil
	case agent.FieldPriorityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityScore(v)
		return nil
	case agent.FieldPriorityReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityReason(v)
		return nil
	case agent.FieldPriorityUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityUpdatedAt(v)
		return nil
	case agent.FieldContextPercentUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextPercentUsed(v)
		return nil
	case agent.FieldContextRemainingTokens:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextRemainingTokens(v)
		return nil
	case agent.FieldContextUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextUpdatedAt(v)
		return nil
	case agent.FieldGuardrailsVersionHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuardrailsVersionHash(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addpriority_score != nil {
		fields = append(fields, agent.FieldPriorityScore)
	}
	if m.addcontext_percent_used != nil {
		fields = append(fields, agent.FieldContextPercentUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldPriorityScore:
		return m.AddedPriorityScore()
	case agent.FieldContextPercentUsed:
		return m.AddedContextPercentUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldPriorityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityScore(v)
		return nil
	case agent.FieldContextPercentUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContextPercentUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldPersonaID) {
		fields = append(fields, agent.FieldPersonaID)
	}
	if m.FieldCleared(agent.FieldPositionID) {
		fields = append(fields, agent.FieldPositionID)
	}
	if m.FieldCleared(agent.FieldPreviousAgentID) {
		fields = append(fields, agent.FieldPreviousAgentID)
	}
	if m.FieldCleared(agent.FieldTmuxSessionName) {
		fields = append(fields, agent.FieldTmuxSessionName)
	}
	if m.FieldCleared(agent.FieldTmuxPaneID) {
		fields = append(fields, agent.FieldTmuxPaneID)
	}
	if m.FieldCleared(agent.FieldLegacyWindowID) {
		fields = append(fields, agent.FieldLegacyWindowID)
	}
	if m.FieldCleared(agent.FieldEndedAt) {
		fields = append(fields, agent.FieldEndedAt)
	}
	if m.FieldCleared(agent.FieldPromptInjectedAt) {
		fields = append(fields, agent.FieldPromptInjectedAt)
	}
	if m.FieldCleared(agent.FieldPriorityScore) {
		fields = append(fields, agent.FieldPriorityScore)
	}
	if m.FieldCleared(agent.FieldPriorityReason) {
		fields = append(fields, agent.FieldPriorityReason)
	}
	if m.FieldCleared(agent.FieldPriorityUpdatedAt) {
		fields = append(fields, agent.FieldPriorityUpdatedAt)
	}
	if m.FieldCleared(agent.FieldContextPercentUsed) {
		fields = append(fields, agent.FieldContextPercentUsed)
	}
	if m.FieldCleared(agent.FieldContextRemainingTokens) {
		fields = append(fields, agent.FieldContextRemainingTokens)
	}
	if m.FieldCleared(agent.FieldContextUpdatedAt) {
		fields = append(fields, agent.FieldContextUpdatedAt)
	}
	if m.FieldCleared(agent.FieldGuardrailsVersionHash) {
		fields = append(fields, agent.FieldGuardrailsVersionHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldPersonaID:
		m.ClearPersonaID()
		return nil
	case agent.FieldPositionID:
		m.ClearPositionID()
		return nil
	case agent.FieldPreviousAgentID:
		m.ClearPreviousAgentID()
		return nil
	case agent.FieldTmuxSessionName:
		m.ClearTmuxSessionName()
		return nil
	case agent.FieldTmuxPaneID:
		m.ClearTmuxPaneID()
		return nil
	case agent.FieldLegacyWindowID:
		m.ClearLegacyWindowID()
		return nil
	case agent.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case agent.FieldPromptInjectedAt:
		m.ClearPromptInjectedAt()
		return nil
	case agent.FieldPriorityScore:
		m.ClearPriorityScore()
		return nil
	case agent.FieldPriorityReason:
		m.ClearPriorityReason()
		return nil
	case agent.FieldPriorityUpdatedAt:
		m.ClearPriorityUpdatedAt()
		return nil
	case agent.FieldContextPercentUsed:
		m.ClearContextPercentUsed()
		return nil
	case agent.FieldContextRemainingTokens:
		m.ClearContextRemainingTokens()
		return nil
	case agent.FieldContextUpdatedAt:
		m.ClearContextUpdatedAt()
		return nil
	case agent.FieldGuardrailsVersionHash:
		m.ClearGuardrailsVersionHash()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldSessionUUID:
		m.ResetSessionUUID()
		return nil
	case agent.FieldProjectID:
		m.ResetProjectID()
		return nil
	case agent.FieldPersonaID:
		m.ResetPersonaID()
		return nil
	case agent.FieldPositionID:
		m.ResetPositionID()
		return nil
	case agent.FieldPreviousAgentID:
		m.ResetPreviousAgentID()
		return nil
	case agent.FieldTmuxSessionName:
		m.ResetTmuxSessionName()
		return nil
	case agent.FieldTmuxPaneID:
		m.ResetTmuxPaneID()
		return nil
	case agent.FieldLegacyWindowID:
		m.ResetLegacyWindowID()
		return nil
	case agent.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agent.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case agent.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case agent.FieldPromptInjectedAt:
		m.ResetPromptInjectedAt()
		return nil
	case agent.FieldPriorityScore:
		m.ResetPriorityScore()
		return nil
	case agent.FieldPriorityReason:
		m.ResetPriorityReason()
		return nil
	case agent.FieldPriorityUpdatedAt:
		m.ResetPriorityUpdatedAt()
		return nil
	case agent.FieldContextPercentUsed:
		m.ResetContextPercentUsed()
		return nil
	case agent.FieldContextRemainingTokens:
		m.ResetContextRemainingTokens()
		return nil
	case agent.FieldContextUpdatedAt:
		m.ResetContextUpdatedAt()
		return nil
	case agent.FieldGuardrailsVersionHash:
		m.ResetGuardrailsVersionHash()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 11)
	if m.project != nil {
		edges = append(edges, agent.EdgeProject)
	}
	if m.persona != nil {
		edges = append(edges, agent.EdgePersona)
	}
	if m.position != nil {
		edges = append(edges, agent.EdgePosition)
	}
	if m.previous_agent != nil {
		edges = append(edges, agent.EdgePreviousAgent)
	}
	if m.successors != nil {
		edges = append(edges, agent.EdgeSuccessors)
	}
	if m.commands != nil {
		edges = append(edges, agent.EdgeCommands)
	}
	if m.events != nil {
		edges = append(edges, agent.EdgeEvents)
	}
	if m.handoff != nil {
		edges = append(edges, agent.EdgeHandoff)
	}
	if m.activity_metrics != nil {
		edges = append(edges, agent.EdgeActivityMetrics)
	}
	if m.snapshots != nil {
		edges = append(edges, agent.EdgeSnapshots)
	}
	if m.inference_calls != nil {
		edges = append(edges, agent.EdgeInferenceCalls)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgePersona:
		if id := m.persona; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgePosition:
		if id := m.position; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgePreviousAgent:
		if id := m.previous_agent; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeSuccessors:
		ids := make([]ent.Value, 0, len(m.successors))
		for id := range m.successors {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeCommands:
		ids := make([]ent.Value, 0, len(m.commands))
		for id := range m.commands {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeHandoff:
		if id := m.handoff; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeActivityMetrics:
		ids := make([]ent.Value, 0, len(m.activity_metrics))
		for id := range m.activity_metrics {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeInferenceCalls:
		ids := make([]ent.Value, 0, len(m.inference_calls))
		for id := range m.inference_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 11)
	if m.removedsuccessors != nil {
		edges = append(edges, agent.EdgeSuccessors)
	}
	if m.removedcommands != nil {
		edges = append(edges, agent.EdgeCommands)
	}
	if m.removedevents != nil {
		edges = append(edges, agent.EdgeEvents)
	}
	if m.removedactivity_metrics != nil {
		edges = append(edges, agent.EdgeActivityMetrics)
	}
	if m.removedsnapshots != nil {
		edges = append(edges, agent.EdgeSnapshots)
	}
	if m.removedinference_calls != nil {
		edges = append(edges, agent.EdgeInferenceCalls)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeSuccessors:
		ids := make([]ent.Value, 0, len(m.removedsuccessors))
		for id := range m.removedsuccessors {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeCommands:
		ids := make([]ent.Value, 0, len(m.removedcommands))
		for id := range m.removedcommands {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeActivityMetrics:
		ids := make([]ent.Value, 0, len(m.removedactivity_metrics))
		for id := range m.removedactivity_metrics {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeInferenceCalls:
		ids := make([]ent.Value, 0, len(m.removedinference_calls))
		for id := range m.removedinference_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 11)
	if m.clearedproject {
		edges = append(edges, agent.EdgeProject)
	}
	if m.clearedpersona {
		edges = append(edges, agent.EdgePersona)
	}
	if m.clearedposition {
		edges = append(edges, agent.EdgePosition)
	}
	if m.clearedprevious_agent {
		edges = append(edges, agent.EdgePreviousAgent)
	}
	if m.clearedsuccessors {
		edges = append(edges, agent.EdgeSuccessors)
	}
	if m.clearedcommands {
		edges = append(edges, agent.EdgeCommands)
	}
	if m.clearedevents {
		edges = append(edges, agent.EdgeEvents)
	}
	if m.clearedhandoff {
		edges = append(edges, agent.EdgeHandoff)
	}
	if m.clearedactivity_metrics {
		edges = append(edges, agent.EdgeActivityMetrics)
	}
	if m.clearedsnapshots {
		edges = append(edges, agent.EdgeSnapshots)
	}
	if m.clearedinference_calls {
		edges = append(edges, agent.EdgeInferenceCalls)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeProject:
		return m.clearedproject
	case agent.EdgePersona:
		return m.clearedpersona
	case agent.EdgePosition:
		return m.clearedposition
	case agent.EdgePreviousAgent:
		return m.clearedprevious_agent
	case agent.EdgeSuccessors:
		return m.clearedsuccessors
	case agent.EdgeCommands:
		return m.clearedcommands
	case agent.EdgeEvents:
		return m.clearedevents
	case agent.EdgeHandoff:
		return m.clearedhandoff
	case agent.EdgeActivityMetrics:
		return m.clearedactivity_metrics
	case agent.EdgeSnapshots:
		return m.clearedsnapshots
	case agent.EdgeInferenceCalls:
		return m.clearedinference_calls
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeProject:
		m.ClearProject()
		return nil
	case agent.EdgePersona:
		m.ClearPersona()
		return nil
	case agent.EdgePosition:
		m.ClearPosition()
		return nil
	case agent.EdgePreviousAgent:
		m.ClearPreviousAgent()
		return nil
	case agent.EdgeHandoff:
		m.ClearHandoff()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeProject:
		m.ResetProject()
		return nil
	case agent.EdgePersona:
		m.ResetPersona()
		return nil
	case agent.EdgePosition:
		m.ResetPosition()
		return nil
	case agent.EdgePreviousAgent:
		m.ResetPreviousAgent()
		return nil
	case agent.EdgeSuccessors:
		m.ResetSuccessors()
		return nil
	case agent.EdgeCommands:
		m.ResetCommands()
		return nil
	case agent.EdgeEvents:
		m.ResetEvents()
		return nil
	case agent.EdgeHandoff:
		m.ResetHandoff()
		return nil
	case agent.EdgeActivityMetrics:
		m.ResetActivityMetrics()
		return nil
	case agent.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	case agent.EdgeInferenceCalls:
		m.ResetInferenceCalls()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// ApiCallLogMutation represents an operation that mutates the ApiCallLog nodes in the graph.
type ApiCallLogMutation struct {
	config
	op              Op
	typ             string
	id              *int
	method          *string
	_path           *string
	status          *int
	addstatus       *int
	latency_ms      *int
	addlatency_ms   *int
	authenticated   *bool
	request_headers *map[string]string
	request_body    *string
	response_body   *string
	truncated       *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ApiCallLog, error)
	predicates      []predicate.ApiCallLog
}

var _ ent.Mutation = (*ApiCallLogMutation)(nil)

// apicalllogOption allows management of the mutation configuration using functional options.
type apicalllogOption func(*ApiCallLogMutation)

// newApiCallLogMutation creates new mutation for the ApiCallLog entity.
func newApiCallLogMutation(c config, op Op, opts ...apicalllogOption) *ApiCallLogMutation {
	m := &ApiCallLogMutation{
		config:        c,
		op:            op,
		typ:           TypeApiCallLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApiCallLogID sets the ID field of the mutation.
func withApiCallLogID(id int) apicalllogOption {
	return func(m *ApiCallLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ApiCallLog
		)
		m.oldValue = func(ctx context.Context) (*ApiCallLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApiCallLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApiCallLog sets the old ApiCallLog of the mutation.
func withApiCallLog(node *ApiCallLog) apicalllogOption {
	return func(m *ApiCallLogMutation) {
		m.oldValue = func(context.Context) (*ApiCallLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApiCallLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApiCallLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApiCallLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApiCallLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApiCallLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMethod sets the "method" field.
func (m *ApiCallLogMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ApiCallLogMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *ApiCallLogMutation) ResetMethod() {
	m.method = nil
}

// SetPath sets the "path" field.
func (m *ApiCallLogMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ApiCallLogMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ApiCallLogMutation) ResetPath() {
	m._path = nil
}

// SetStatus sets the "status" field.
func (m *ApiCallLogMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *ApiCallLogMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldStatus(ctx context.Context) (v int, err error) {
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

// AddStatus adds i to the "status" field.
func (m *ApiCallLogMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *ApiCallLogMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *ApiCallLogMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ApiCallLogMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ApiCallLogMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ApiCallLogMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ApiCallLogMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ApiCallLogMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetAuthenticated sets the "authenticated" field.
func (m *ApiCallLogMutation) SetAuthenticated(b bool) {
	m.authenticated = &b
}

// Authenticated returns the value of the "authenticated" field in the mutation.
func (m *ApiCallLogMutation) Authenticated() (r bool, exists bool) {
	v := m.authenticated
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthenticated returns the old "authenticated" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldAuthenticated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthenticated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthenticated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthenticated: %w", err)
	}
	return oldValue.Authenticated, nil
}

// ResetAuthenticated resets all changes to the "authenticated" field.
func (m *ApiCallLogMutation) ResetAuthenticated() {
	m.authenticated = nil
}

// SetRequestHeaders sets the "request_headers" field.
func (m *ApiCallLogMutation) SetRequestHeaders(value map[string]string) {
	m.request_headers = &value
}

// RequestHeaders returns the value of the "request_headers" field in the mutation.
func (m *ApiCallLogMutation) RequestHeaders() (r map[string]string, exists bool) {
	v := m.request_headers
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestHeaders returns the old "request_headers" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldRequestHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestHeaders: %w", err)
	}
	return oldValue.RequestHeaders, nil
}

// ClearRequestHeaders clears the value of the "request_headers" field.
func (m *ApiCallLogMutation) ClearRequestHeaders() {
	m.request_headers = nil
	m.clearedFields[apicalllog.FieldRequestHeaders] = struct{}{}
}

// RequestHeadersCleared returns if the "request_headers" field was cleared in this mutation.
func (m *ApiCallLogMutation) RequestHeadersCleared() bool {
	_, ok := m.clearedFields[apicalllog.FieldRequestHeaders]
	return ok
}

// ResetRequestHeaders resets all changes to the "request_headers" field.
func (m *ApiCallLogMutation) ResetRequestHeaders() {
	m.request_headers = nil
	delete(m.clearedFields, apicalllog.FieldRequestHeaders)
}

// SetRequestBody sets the "request_body" field.
func (m *ApiCallLogMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *ApiCallLogMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ClearRequestBody clears the value of the "request_body" field.
func (m *ApiCallLogMutation) ClearRequestBody() {
	m.request_body = nil
	m.clearedFields[apicalllog.FieldRequestBody] = struct{}{}
}

// RequestBodyCleared returns if the "request_body" field was cleared in this mutation.
func (m *ApiCallLogMutation) RequestBodyCleared() bool {
	_, ok := m.clearedFields[apicalllog.FieldRequestBody]
	return ok
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *ApiCallLogMutation) ResetRequestBody() {
	m.request_body = nil
	delete(m.clearedFields, apicalllog.FieldRequestBody)
}

// SetResponseBody sets the "response_body" field.
func (m *ApiCallLogMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *ApiCallLogMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ClearResponseBody clears the value of the "response_body" field.
func (m *ApiCallLogMutation) ClearResponseBody() {
	m.response_body = nil
	m.clearedFields[apicalllog.FieldResponseBody] = struct{}{}
}

// ResponseBodyCleared returns if the "response_body" field was cleared in this mutation.
func (m *ApiCallLogMutation) ResponseBodyCleared() bool {
	_, ok := m.clearedFields[apicalllog.FieldResponseBody]
	return ok
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *ApiCallLogMutation) ResetResponseBody() {
	m.response_body = nil
	delete(m.clearedFields, apicalllog.FieldResponseBody)
}

// SetTruncated sets the "truncated" field.
func (m *ApiCallLogMutation) SetTruncated(b bool) {
	m.truncated = &b
}

// Truncated returns the value of the "truncated" field in the mutation.
func (m *ApiCallLogMutation) Truncated() (r bool, exists bool) {
	v := m.truncated
	if v == nil {
		return
	}
	return *v, true
}

// OldTruncated returns the old "truncated" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldTruncated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTruncated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTruncated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTruncated: %w", err)
	}
	return oldValue.Truncated, nil
}

// ResetTruncated resets all changes to the "truncated" field.
func (m *ApiCallLogMutation) ResetTruncated() {
	m.truncated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApiCallLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApiCallLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ApiCallLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ApiCallLogMutation builder.
func (m *ApiCallLogMutation) Where(ps ...predicate.ApiCallLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApiCallLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApiCallLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApiCallLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApiCallLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApiCallLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApiCallLog).
func (m *ApiCallLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApiCallLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.method != nil {
		fields = append(fields, apicalllog.FieldMethod)
	}
	if m._path != nil {
		fields = append(fields, apicalllog.FieldPath)
	}
	if m.status != nil {
		fields = append(fields, apicalllog.FieldStatus)
	}
	if m.latency_ms != nil {
		fields = append(fields, apicalllog.FieldLatencyMs)
	}
	if m.authenticated != nil {
		fields = append(fields, apicalllog.FieldAuthenticated)
	}
	if m.request_headers != nil {
		fields = append(fields, apicalllog.FieldRequestHeaders)
	}
	if m.request_body != nil {
		fields = append(fields, apicalllog.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, apicalllog.FieldResponseBody)
	}
	if m.truncated != nil {
		fields = append(fields, apicalllog.FieldTruncated)
	}
	if m.created_at != nil {
		fields = append(fields, apicalllog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApiCallLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apicalllog.FieldMethod:
		return m.Method()
	case apicalllog.FieldPath:
		return m.Path()
	case apicalllog.FieldStatus:
		return m.Status()
	case apicalllog.FieldLatencyMs:
		return m.LatencyMs()
	case apicalllog.FieldAuthenticated:
		return m.Authenticated()
	case apicalllog.FieldRequestHeaders:
		return m.RequestHeaders()
	case apicalllog.FieldRequestBody:
		return m.RequestBody()
	case apicalllog.FieldResponseBody:
		return m.ResponseBody()
	case apicalllog.FieldTruncated:
		return m.Truncated()
	case apicalllog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApiCallLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apicalllog.FieldMethod:
		return m.OldMethod(ctx)
	case apicalllog.FieldPath:
		return m.OldPath(ctx)
	case apicalllog.FieldStatus:
		return m.OldStatus(ctx)
	case apicalllog.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case apicalllog.FieldAuthenticated:
		return m.OldAuthenticated(ctx)
	case apicalllog.FieldRequestHeaders:
		return m.OldRequestHeaders(ctx)
	case apicalllog.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case apicalllog.FieldResponseBody:
		return m.OldResponseBody(ctx)
	case apicalllog.FieldTruncated:
		return m.OldTruncated(ctx)
	case apicalllog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApiCallLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApiCallLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apicalllog.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case apicalllog.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case apicalllog.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case apicalllog.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case apicalllog.FieldAuthenticated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthenticated(v)
		return nil
	case apicalllog.FieldRequestHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestHeaders(v)
		return nil
	case apicalllog.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case apicalllog.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	case apicalllog.FieldTruncated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTruncated(v)
		return nil
	case apicalllog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApiCallLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApiCallLogMutation) AddedFields() []string {
	var fields []string
	if m.addstatus != nil {
		fields = append(fields, apicalllog.FieldStatus)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, apicalllog.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApiCallLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apicalllog.FieldStatus:
		return m.AddedStatus()
	case apicalllog.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApiCallLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apicalllog.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case apicalllog.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown ApiCallLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApiCallLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apicalllog.FieldRequestHeaders) {
		fields = append(fields, apicalllog.FieldRequestHeaders)
	}
	if m.FieldCleared(apicalllog.FieldRequestBody) {
		fields = append(fields, apicalllog.FieldRequestBody)
	}
	if m.FieldCleared(apicalllog.FieldResponseBody) {
		fields = append(fields, apicalllog.FieldResponseBody)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApiCallLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApiCallLogMutation) ClearField(name string) error {
	switch name {
	case apicalllog.FieldRequestHeaders:
		m.ClearRequestHeaders()
		return nil
	case apicalllog.FieldRequestBody:
		m.ClearRequestBody()
		return nil
	case apicalllog.FieldResponseBody:
		m.ClearResponseBody()
		return nil
	}
	return fmt.Errorf("unknown ApiCallLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApiCallLogMutation) ResetField(name string) error {
	switch name {
	case apicalllog.FieldMethod:
		m.ResetMethod()
		return nil
	case apicalllog.FieldPath:
		m.ResetPath()
		return nil
	case apicalllog.FieldStatus:
		m.ResetStatus()
		return nil
	case apicalllog.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case apicalllog.FieldAuthenticated:
		m.ResetAuthenticated()
		return nil
	case apicalllog.FieldRequestHeaders:
		m.ResetRequestHeaders()
		return nil
	case apicalllog.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case apicalllog.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	case apicalllog.FieldTruncated:
		m.ResetTruncated()
		return nil
	case apicalllog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApiCallLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApiCallLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApiCallLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApiCallLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApiCallLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApiCallLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApiCallLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApiCallLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApiCallLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApiCallLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApiCallLog edge %s", name)
}

// CommandMutation represents an operation that mutates the Command nodes in the graph.
type CommandMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	state                  *command.State
	started_at             *time.Time
	completed_at           *time.Time
	instruction            *string
	completion_summary     *string
	full_command           *string
	full_output            *string
	plan_file_path         *string
	plan_content           *string
	plan_approved_at       *time.Time
	clearedFields          map[string]struct{}
	agent                  *int
	clearedagent           bool
	turns                  map[int]struct{}
	removedturns           map[int]struct{}
	clearedturns           bool
	events                 map[int]struct{}
	removedevents          map[int]struct{}
	clearedevents          bool
	inference_calls        map[int]struct{}
	removedinference_calls map[int]struct{}
	clearedinference_calls bool
	done                   bool
	oldValue               func(context.Context) (*Command, error)
	predicates             []predicate.Command
}

var _ ent.Mutation = (*CommandMutation)(nil)

// commandOption allows management of the mutation configuration using functional options.
type commandOption func(*CommandMutation)

// newCommandMutation creates new mutation for the Command entity.
func newCommandMutation(c config, op Op, opts ...commandOption) *CommandMutation {
	m := &CommandMutation{
		config:        c,
		op:            op,
		typ:           TypeCommand,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommandID sets the ID field of the mutation.
func withCommandID(id int) commandOption {
	return func(m *CommandMutation) {
		var (
			err   error
			once  sync.Once
			value *Command
		)
		m.oldValue = func(ctx context.Context) (*Command, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Command.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommand sets the old Command of the mutation.
func withCommand(node *Command) commandOption {
	return func(m *CommandMutation) {
		m.oldValue = func(context.Context) (*Command, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommandMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommandMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommandMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommandMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Command.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *CommandMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CommandMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CommandMutation) ResetAgentID() {
	m.agent = nil
}

// SetState sets the "state" field.
func (m *CommandMutation) SetState(c command.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *CommandMutation) State() (r command.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldState(ctx context.Context) (v command.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CommandMutation) ResetState() {
	m.state = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CommandMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CommandMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CommandMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *CommandMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CommandMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CommandMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[command.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CommandMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[command.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CommandMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, command.FieldCompletedAt)
}

// SetInstruction sets the "instruction" field.
func (m *CommandMutation) SetInstruction(s string) {
	m.instruction = &s
}

// Instruction returns the value of the "instruction" field in the mutation.
func (m *CommandMutation) Instruction() (r string, exists bool) {
	v := m.instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldInstruction returns the old "instruction" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldInstruction(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstruction: %w", err)
	}
	return oldValue.Instruction, nil
}

// ClearInstruction clears the value of the "instruction" field.
func (m *CommandMutation) ClearInstruction() {
	m.instruction = nil
	m.clearedFields[command.FieldInstruction] = struct{}{}
}

// InstructionCleared returns if the "instruction" field was cleared in this mutation.
func (m *CommandMutation) InstructionCleared() bool {
	_, ok := m.clearedFields[command.FieldInstruction]
	return ok
}

// ResetInstruction resets all changes to the "instruction" field.
func (m *CommandMutation) ResetInstruction() {
	m.instruction = nil
	delete(m.clearedFields, command.FieldInstruction)
}

// SetCompletionSummary sets the "completion_summary" field.
func (m *CommandMutation) SetCompletionSummary(s string) {
	m.completion_summary = &s
}

// CompletionSummary returns the value of the "completion_summary" field in the mutation.
func (m *CommandMutation) CompletionSummary() (r string, exists bool) {
	v := m.completion_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionSummary returns the old "completion_summary" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldCompletionSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionSummary: %w", err)
	}
	return oldValue.CompletionSummary, nil
}

// ClearCompletionSummary clears the value of the "completion_summary" field.
func (m *CommandMutation) ClearCompletionSummary() {
	m.completion_summary = nil
	m.clearedFields[command.FieldCompletionSummary] = struct{}{}
}

// CompletionSummaryCleared returns if the "completion_summary" field was cleared in this mutation.
func (m *CommandMutation) CompletionSummaryCleared() bool {
	_, ok := m.clearedFields[command.FieldCompletionSummary]
	return ok
}

// ResetCompletionSummary resets all changes to the "completion_summary" field.
func (m *CommandMutation) ResetCompletionSummary() {
	m.completion_summary = nil
	delete(m.clearedFields, command.FieldCompletionSummary)
}

// SetFullCommand sets the "full_command" field.
func (m *CommandMutation) SetFullCommand(s string) {
	m.full_command = &s
}

// FullCommand returns the value of the "full_command" field in the mutation.
func (m *CommandMutation) FullCommand() (r string, exists bool) {
	v := m.full_command
	if v == nil {
		return
	}
	return *v, true
}

// OldFullCommand returns the old "full_command" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldFullCommand(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullCommand: %w", err)
	}
	return oldValue.FullCommand, nil
}

// ClearFullCommand clears the value of the "full_command" field.
func (m *CommandMutation) ClearFullCommand() {
	m.full_command = nil
	m.clearedFields[command.FieldFullCommand] = struct{}{}
}

// FullCommandCleared returns if the "full_command" field was cleared in this mutation.
func (m *CommandMutation) FullCommandCleared() bool {
	_, ok := m.clearedFields[command.FieldFullCommand]
	return ok
}

// ResetFullCommand resets all changes to the "full_command" field.
func (m *CommandMutation) ResetFullCommand() {
	m.full_command = nil
	delete(m.clearedFields, command.FieldFullCommand)
}

// SetFullOutput sets the "full_output" field.
func (m *CommandMutation) SetFullOutput(s string) {
	m.full_output = &s
}

// FullOutput returns the value of the "full_output" field in the mutation.
func (m *CommandMutation) FullOutput() (r string, exists bool) {
	v := m.full_output
	if v == nil {
		return
	}
	return *v, true
}

// OldFullOutput returns the old "full_output" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldFullOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullOutput: %w", err)
	}
	return oldValue.FullOutput, nil
}

// ClearFullOutput clears the value of the "full_output" field.
func (m *CommandMutation) ClearFullOutput() {
	m.full_output = nil
	m.clearedFields[command.FieldFullOutput] = struct{}{}
}

// FullOutputCleared returns if the "full_output" field was cleared in this mutation.
func (m *CommandMutation) FullOutputCleared() bool {
	_, ok := m.clearedFields[command.FieldFullOutput]
	return ok
}

// ResetFullOutput resets all changes to the "full_output" field.
func (m *CommandMutation) ResetFullOutput() {
	m.full_output = nil
	delete(m.clearedFields, command.FieldFullOutput)
}

// SetPlanFilePath sets the "plan_file_path" field.
func (m *CommandMutation) SetPlanFilePath(s string) {
	m.plan_file_path = &s
}

// PlanFilePath returns the value of the "plan_file_path" field in the mutation.
func (m *CommandMutation) PlanFilePath() (r string, exists bool) {
	v := m.plan_file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanFilePath returns the old "plan_file_path" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldPlanFilePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanFilePath: %w", err)
	}
	return oldValue.PlanFilePath, nil
}

// ClearPlanFilePath clears the value of the "plan_file_path" field.
func (m *CommandMutation) ClearPlanFilePath() {
	m.plan_file_path = nil
	m.clearedFields[command.FieldPlanFilePath] = struct{}{}
}

// PlanFilePathCleared returns if the "plan_file_path" field was cleared in this mutation.
func (m *CommandMutation) PlanFilePathCleared() bool {
	_, ok := m.clearedFields[command.FieldPlanFilePath]
	return ok
}

// ResetPlanFilePath resets all changes to the "plan_file_path" field.
func (m *CommandMutation) ResetPlanFilePath() {
	m.plan_file_path = nil
	delete(m.clearedFields, command.FieldPlanFilePath)
}

// SetPlanContent sets the "plan_content" field.
func (m *CommandMutation) SetPlanContent(s string) {
	m.plan_content = &s
}

// PlanContent returns the value of the "plan_content" field in the mutation.
func (m *CommandMutation) PlanContent() (r string, exists bool) {
	v := m.plan_content
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanContent returns the old "plan_content" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldPlanContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanContent: %w", err)
	}
	return oldValue.PlanContent, nil
}

// ClearPlanContent clears the value of the "plan_content" field.
func (m *CommandMutation) ClearPlanContent() {
	m.plan_content = nil
	m.clearedFields[command.FieldPlanContent] = struct{}{}
}

// PlanContentCleared returns if the "plan_content" field was cleared in this mutation.
func (m *CommandMutation) PlanContentCleared() bool {
	_, ok := m.clearedFields[command.FieldPlanContent]
	return ok
}

// ResetPlanContent resets all changes to the "plan_content" field.
func (m *CommandMutation) ResetPlanContent() {
	m.plan_content = nil
	delete(m.clearedFields, command.FieldPlanContent)
}

// SetPlanApprovedAt sets the "plan_approved_at" field.
func (m *CommandMutation) SetPlanApprovedAt(t time.Time) {
	m.plan_approved_at = &t
}

// PlanApprovedAt returns the value of the "plan_approved_at" field in the mutation.
func (m *CommandMutation) PlanApprovedAt() (r time.Time, exists bool) {
	v := m.plan_approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanApprovedAt returns the old "plan_approved_at" field's value of the Command entity.
// If the Command object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandMutation) OldPlanApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanApprovedAt: %w", err)
	}
	return oldValue.PlanApprovedAt, nil
}

// ClearPlanApprovedAt clears the value of the "plan_approved_at" field.
func (m *CommandMutation) ClearPlanApprovedAt() {
	m.plan_approved_at = nil
	m.clearedFields[command.FieldPlanApprovedAt] = struct{}{}
}

// PlanApprovedAtCleared returns if the "plan_approved_at" field was cleared in this mutation.
func (m *CommandMutation) PlanApprovedAtCleared() bool {
	_, ok := m.clearedFields[command.FieldPlanApprovedAt]
	return ok
}

// ResetPlanApprovedAt resets all changes to the "plan_approved_at" field.
func (m *CommandMutation) ResetPlanApprovedAt() {
	m.plan_approved_at = nil
	delete(m.clearedFields, command.FieldPlanApprovedAt)
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *CommandMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[command.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *CommandMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *CommandMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *CommandMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// AddTurnIDs adds the "turns" edge to the Turn entity by ids.
func (m *CommandMutation) AddTurnIDs(ids ...int) {
	if m.turns == nil {
		m.turns = make(map[int]struct{})
	}
	for i := range ids {
		m.turns[ids[i]] = struct{}{}
	}
}

// ClearTurns clears the "turns" edge to the Turn entity.
func (m *CommandMutation) ClearTurns() {
	m.clearedturns = true
}

// TurnsCleared reports if the "turns" edge to the Turn entity was cleared.
func (m *CommandMutation) TurnsCleared() bool {
	return m.clearedturns
}

// RemoveTurnIDs removes the "turns" edge to the Turn entity by IDs.
func (m *CommandMutation) RemoveTurnIDs(ids ...int) {
	if m.removedturns == nil {
		m.removedturns = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.turns, ids[i])
		m.removedturns[ids[i]] = struct{}{}
	}
}

// RemovedTurns returns the removed IDs of the "turns" edge to the Turn entity.
func (m *CommandMutation) RemovedTurnsIDs() (ids []int) {
	for id := range m.removedturns {
		ids = append(ids, id)
	}
	return
}

// TurnsIDs returns the "turns" edge IDs in the mutation.
func (m *CommandMutation) TurnsIDs() (ids []int) {
	for id := range m.turns {
		ids = append(ids, id)
	}
	return
}

// ResetTurns resets all changes to the "turns" edge.
func (m *CommandMutation) ResetTurns() {
	m.turns = nil
	m.clearedturns = false
	m.removedturns = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *CommandMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *CommandMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *CommandMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *CommandMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *CommandMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *CommandMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *CommandMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by ids.
func (m *CommandMutation) AddInferenceCallIDs(ids ...int) {
	if m.inference_calls == nil {
		m.inference_calls = make(map[int]struct{})
	}
	for i := range ids {
		m.inference_calls[ids[i]] = struct{}{}
	}
}

// ClearInferenceCalls clears the "inference_calls" edge to the InferenceCall entity.
func (m *CommandMutation) ClearInferenceCalls() {
	m.clearedinference_calls = true
}

// InferenceCallsCleared reports if the "inference_calls" edge to the InferenceCall entity was cleared.
func (m *CommandMutation) InferenceCallsCleared() bool {
	return m.clearedinference_calls
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to the InferenceCall entity by IDs.
func (m *CommandMutation) RemoveInferenceCallIDs(ids ...int) {
	if m.removedinference_calls == nil {
		m.removedinference_calls = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.inference_calls, ids[i])
		m.removedinference_calls[ids[i]] = struct{}{}
	}
}

// RemovedInferenceCalls returns the removed IDs of the "inference_calls" edge to the InferenceCall entity.
func (m *CommandMutation) RemovedInferenceCallsIDs() (ids []int) {
	for id := range m.removedinference_calls {
		ids = append(ids, id)
	}
	return
}

// InferenceCallsIDs returns the "inference_calls" edge IDs in the mutation.
func (m *CommandMutation) InferenceCallsIDs() (ids []int) {
	for id := range m.inference_calls {
		ids = append(ids, id)
	}
	return
}

// ResetInferenceCalls resets all changes to the "inference_calls" edge.
func (m *CommandMutation) ResetInferenceCalls() {
	m.inference_calls = nil
	m.clearedinference_calls = false
	m.removedinference_calls = nil
}

// Where appends a list predicates to the CommandMutation builder.
func (m *CommandMutation) Where(ps ...predicate.Command) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommandMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommandMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Command, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommandMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommandMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Command).
func (m *CommandMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommandMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.agent != nil {
		fields = append(fields, command.FieldAgentID)
	}
	if m.state != nil {
		fields = append(fields, command.FieldState)
	}
	if m.started_at != nil {
		fields = append(fields, command.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, command.FieldCompletedAt)
	}
	if m.instruction != nil {
		fields = append(fields, command.FieldInstruction)
	}
	if m.completion_summary != nil {
		fields = append(fields, command.FieldCompletionSummary)
	}
	if m.full_command != nil {
		fields = append(fields, command.FieldFullCommand)
	}
	if m.full_output != nil {
		fields = append(fields, command.FieldFullOutput)
	}
	if m.plan_file_path != nil {
		fields = append(fields, command.FieldPlanFilePath)
	}
	if m.plan_content != nil {
		fields = append(fields, command.FieldPlanContent)
	}
	if m.plan_approved_at != nil {
		fields = append(fields, command.FieldPlanApprovedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommandMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case command.FieldAgentID:
		return m.AgentID()
	case command.FieldState:
		return m.State()
	case command.FieldStartedAt:
		return m.StartedAt()
	case command.FieldCompletedAt:
		return m.CompletedAt()
	case command.FieldInstruction:
		return m.Instruction()
	case command.FieldCompletionSummary:
		return m.CompletionSummary()
	case command.FieldFullCommand:
		return m.FullCommand()
	case command.FieldFullOutput:
		return m.FullOutput()
	case command.FieldPlanFilePath:
		return m.PlanFilePath()
	case command.FieldPlanContent:
		return m.PlanContent()
	case command.FieldPlanApprovedAt:
		return m.PlanApprovedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommandMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case command.FieldAgentID:
		return m.OldAgentID(ctx)
	case command.FieldState:
		return m.OldState(ctx)
	case command.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case command.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case command.FieldInstruction:
		return m.OldInstruction(ctx)
	case command.FieldCompletionSummary:
		return m.OldCompletionSummary(ctx)
	case command.FieldFullCommand:
		return m.OldFullCommand(ctx)
	case command.FieldFullOutput:
		return m.OldFullOutput(ctx)
	case command.FieldPlanFilePath:
		return m.OldPlanFilePath(ctx)
	case command.FieldPlanContent:
		return m.OldPlanContent(ctx)
	case command.FieldPlanApprovedAt:
		return m.OldPlanApprovedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Command field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommandMutation) SetField(name string, value ent.Value) error {
	switch name {
	case command.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case command.FieldState:
		v, ok := value.(command.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case command.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case command.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case command.FieldInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstruction(v)
		return nil
	case command.FieldCompletionSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionSummary(v)
		return nil
	case command.FieldFullCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullCommand(v)
		return nil
	case command.FieldFullOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullOutput(v)
		return nil
	case command.FieldPlanFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanFilePath(v)
		return nil
	case command.FieldPlanContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanContent(v)
		return nil
	case command.FieldPlanApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanApprovedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Command field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommandMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommandMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommandMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Command numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommandMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(command.FieldCompletedAt) {
		fields = append(fields, command.FieldCompletedAt)
	}
	if m.FieldCleared(command.FieldInstruction) {
		fields = append(fields, command.FieldInstruction)
	}
	if m.FieldCleared(command.FieldCompletionSummary) {
		fields = append(fields, command.FieldCompletionSummary)
	}
	if m.FieldCleared(command.FieldFullCommand) {
		fields = append(fields, command.FieldFullCommand)
	}
	if m.FieldCleared(command.FieldFullOutput) {
		fields = append(fields, command.FieldFullOutput)
	}
	if m.FieldCleared(command.FieldPlanFilePath) {
		fields = append(fields, command.FieldPlanFilePath)
	}
	if m.FieldCleared(command.FieldPlanContent) {
		fields = append(fields, command.FieldPlanContent)
	}
	if m.FieldCleared(command.FieldPlanApprovedAt) {
		fields = append(fields, command.FieldPlanApprovedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommandMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommandMutation) ClearField(name string) error {
	switch name {
	case command.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case command.FieldInstruction:
		m.ClearInstruction()
		return nil
	case command.FieldCompletionSummary:
		m.ClearCompletionSummary()
		return nil
	case command.FieldFullCommand:
		m.ClearFullCommand()
		return nil
	case command.FieldFullOutput:
		m.ClearFullOutput()
		return nil
	case command.FieldPlanFilePath:
		m.ClearPlanFilePath()
		return nil
	case command.FieldPlanContent:
		m.ClearPlanContent()
		return nil
	case command.FieldPlanApprovedAt:
		m.ClearPlanApprovedAt()
		return nil
	}
	return fmt.Errorf("unknown Command nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommandMutation) ResetField(name string) error {
	switch name {
	case command.FieldAgentID:
		m.ResetAgentID()
		return nil
	case command.FieldState:
		m.ResetState()
		return nil
	case command.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case command.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case command.FieldInstruction:
		m.ResetInstruction()
		return nil
	case command.FieldCompletionSummary:
		m.ResetCompletionSummary()
		return nil
	case command.FieldFullCommand:
		m.ResetFullCommand()
		return nil
	case command.FieldFullOutput:
		m.ResetFullOutput()
		return nil
	case command.FieldPlanFilePath:
		m.ResetPlanFilePath()
		return nil
	case command.FieldPlanContent:
		m.ResetPlanContent()
		return nil
	case command.FieldPlanApprovedAt:
		m.ResetPlanApprovedAt()
		return nil
	}
	return fmt.Errorf("unknown Command field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommandMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.agent != nil {
		edges = append(edges, command.EdgeAgent)
	}
	if m.turns != nil {
		edges = append(edges, command.EdgeTurns)
	}
	if m.events != nil {
		edges = append(edges, command.EdgeEvents)
	}
	if m.inference_calls != nil {
		edges = append(edges, command.EdgeInferenceCalls)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommandMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case command.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case command.EdgeTurns:
		ids := make([]ent.Value, 0, len(m.turns))
		for id := range m.turns {
			ids = append(ids, id)
		}
		return ids
	case command.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case command.EdgeInferenceCalls:
		ids := make([]ent.Value, 0, len(m.inference_calls))
		for id := range m.inference_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommandMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedturns != nil {
		edges = append(edges, command.EdgeTurns)
	}
	if m.removedevents != nil {
		edges = append(edges, command.EdgeEvents)
	}
	if m.removedinference_calls != nil {
		edges = append(edges, command.EdgeInferenceCalls)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommandMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case command.EdgeTurns:
		ids := make([]ent.Value, 0, len(m.removedturns))
		for id := range m.removedturns {
			ids = append(ids, id)
		}
		return ids
	case command.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case command.EdgeInferenceCalls:
		ids := make([]ent.Value, 0, len(m.removedinference_calls))
		for id := range m.removedinference_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommandMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedagent {
		edges = append(edges, command.EdgeAgent)
	}
	if m.clearedturns {
		edges = append(edges, command.EdgeTurns)
	}
	if m.clearedevents {
		edges = append(edges, command.EdgeEvents)
	}
	if m.clearedinference_calls {
		edges = append(edges, command.EdgeInferenceCalls)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommandMutation) EdgeCleared(name string) bool {
	switch name {
	case command.EdgeAgent:
		return m.clearedagent
	case command.EdgeTurns:
		return m.clearedturns
	case command.EdgeEvents:
		return m.clearedevents
	case command.EdgeInferenceCalls:
		return m.clearedinference_calls
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommandMutation) ClearEdge(name string) error {
	switch name {
	case command.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Command unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommandMutation) ResetEdge(name string) error {
	switch name {
	case command.EdgeAgent:
		m.ResetAgent()
		return nil
	case command.EdgeTurns:
		m.ResetTurns()
		return nil
	case command.EdgeEvents:
		m.ResetEvents()
		return nil
	case command.EdgeInferenceCalls:
		m.ResetInferenceCalls()
		return nil
	}
	return fmt.Errorf("unknown Command edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	event_type     *event.EventType
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *int
	clearedproject bool
	agent          *int
	clearedagent   bool
	command        *int
	clearedcommand bool
	turn           *int
	clearedturn    bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(et event.EventType) {
	m.event_type = &et
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r event.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v event.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProjectID sets the "project_id" field.
func (m *EventMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EventMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProjectID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *EventMutation) ClearProjectID() {
	m.project = nil
	m.clearedFields[event.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *EventMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[event.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EventMutation) ResetProjectID() {
	m.project = nil
	delete(m.clearedFields, event.FieldProjectID)
}

// SetAgentID sets the "agent_id" field.
func (m *EventMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *EventMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *EventMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[event.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *EventMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[event.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *EventMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, event.FieldAgentID)
}

// SetCommandID sets the "command_id" field.
func (m *EventMutation) SetCommandID(i int) {
	m.command = &i
}

// CommandID returns the value of the "command_id" field in the mutation.
func (m *EventMutation) CommandID() (r int, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandID returns the old "command_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCommandID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandID: %w", err)
	}
	return oldValue.CommandID, nil
}

// ClearCommandID clears the value of the "command_id" field.
func (m *EventMutation) ClearCommandID() {
	m.command = nil
	m.clearedFields[event.FieldCommandID] = struct{}{}
}

// CommandIDCleared returns if the "command_id" field was cleared in this mutation.
func (m *EventMutation) CommandIDCleared() bool {
	_, ok := m.clearedFields[event.FieldCommandID]
	return ok
}

// ResetCommandID resets all changes to the "command_id" field.
func (m *EventMutation) ResetCommandID() {
	m.command = nil
	delete(m.clearedFields, event.FieldCommandID)
}

// SetTurnID sets the "turn_id" field.
func (m *EventMutation) SetTurnID(i int) {
	m.turn = &i
}

// TurnID returns the value of the "turn_id" field in the mutation.
func (m *EventMutation) TurnID() (r int, exists bool) {
	v := m.turn
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnID returns the old "turn_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTurnID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnID: %w", err)
	}
	return oldValue.TurnID, nil
}

// ClearTurnID clears the value of the "turn_id" field.
func (m *EventMutation) ClearTurnID() {
	m.turn = nil
	m.clearedFields[event.FieldTurnID] = struct{}{}
}

// TurnIDCleared returns if the "turn_id" field was cleared in this mutation.
func (m *EventMutation) TurnIDCleared() bool {
	_, ok := m.clearedFields[event.FieldTurnID]
	return ok
}

// ResetTurnID resets all changes to the "turn_id" field.
func (m *EventMutation) ResetTurnID() {
	m.turn = nil
	delete(m.clearedFields, event.FieldTurnID)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *EventMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[event.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *EventMutation) ProjectCleared() bool {
	return m.ProjectIDCleared() || m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *EventMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *EventMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *EventMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[event.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *EventMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *EventMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *EventMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearCommand clears the "command" edge to the Command entity.
func (m *EventMutation) ClearCommand() {
	m.clearedcommand = true
	m.clearedFields[event.FieldCommandID] = struct{}{}
}

// CommandCleared reports if the "command" edge to the Command entity was cleared.
func (m *EventMutation) CommandCleared() bool {
	return m.CommandIDCleared() || m.clearedcommand
}

// CommandIDs returns the "command" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CommandID instead. It exists only for internal usage by the builders.
func (m *EventMutation) CommandIDs() (ids []int) {
	if id := m.command; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCommand resets all changes to the "command" edge.
func (m *EventMutation) ResetCommand() {
	m.command = nil
	m.clearedcommand = false
}

// ClearTurn clears the "turn" edge to the Turn entity.
func (m *EventMutation) ClearTurn() {
	m.clearedturn = true
	m.clearedFields[event.FieldTurnID] = struct{}{}
}

// TurnCleared reports if the "turn" edge to the Turn entity was cleared.
func (m *EventMutation) TurnCleared() bool {
	return m.TurnIDCleared() || m.clearedturn
}

// TurnIDs returns the "turn" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TurnID instead. It exists only for internal usage by the builders.
func (m *EventMutation) TurnIDs() (ids []int) {
	if id := m.turn; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTurn resets all changes to the "turn" edge.
func (m *EventMutation) ResetTurn() {
	m.turn = nil
	m.clearedturn = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.project != nil {
		fields = append(fields, event.FieldProjectID)
	}
	if m.agent != nil {
		fields = append(fields, event.FieldAgentID)
	}
	if m.command != nil {
		fields = append(fields, event.FieldCommandID)
	}
	if m.turn != nil {
		fields = append(fields, event.FieldTurnID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventType:
		return m.EventType()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldProjectID:
		return m.ProjectID()
	case event.FieldAgentID:
		return m.AgentID()
	case event.FieldCommandID:
		return m.CommandID()
	case event.FieldTurnID:
		return m.TurnID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldProjectID:
		return m.OldProjectID(ctx)
	case event.FieldAgentID:
		return m.OldAgentID(ctx)
	case event.FieldCommandID:
		return m.OldCommandID(ctx)
	case event.FieldTurnID:
		return m.OldTurnID(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventType:
		v, ok := value.(event.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case event.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case event.FieldCommandID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandID(v)
		return nil
	case event.FieldTurnID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnID(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldProjectID) {
		fields = append(fields, event.FieldProjectID)
	}
	if m.FieldCleared(event.FieldAgentID) {
		fields = append(fields, event.FieldAgentID)
	}
	if m.FieldCleared(event.FieldCommandID) {
		fields = append(fields, event.FieldCommandID)
	}
	if m.FieldCleared(event.FieldTurnID) {
		fields = append(fields, event.FieldTurnID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldProjectID:
		m.ClearProjectID()
		return nil
	case event.FieldAgentID:
		m.ClearAgentID()
		return nil
	case event.FieldCommandID:
		m.ClearCommandID()
		return nil
	case event.FieldTurnID:
		m.ClearTurnID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldProjectID:
		m.ResetProjectID()
		return nil
	case event.FieldAgentID:
		m.ResetAgentID()
		return nil
	case event.FieldCommandID:
		m.ResetCommandID()
		return nil
	case event.FieldTurnID:
		m.ResetTurnID()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.project != nil {
		edges = append(edges, event.EdgeProject)
	}
	if m.agent != nil {
		edges = append(edges, event.EdgeAgent)
	}
	if m.command != nil {
		edges = append(edges, event.EdgeCommand)
	}
	if m.turn != nil {
		edges = append(edges, event.EdgeTurn)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeCommand:
		if id := m.command; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeTurn:
		if id := m.turn; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedproject {
		edges = append(edges, event.EdgeProject)
	}
	if m.clearedagent {
		edges = append(edges, event.EdgeAgent)
	}
	if m.clearedcommand {
		edges = append(edges, event.EdgeCommand)
	}
	if m.clearedturn {
		edges = append(edges, event.EdgeTurn)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeProject:
		return m.clearedproject
	case event.EdgeAgent:
		return m.clearedagent
	case event.EdgeCommand:
		return m.clearedcommand
	case event.EdgeTurn:
		return m.clearedturn
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeProject:
		m.ClearProject()
		return nil
	case event.EdgeAgent:
		m.ClearAgent()
		return nil
	case event.EdgeCommand:
		m.ClearCommand()
		return nil
	case event.EdgeTurn:
		m.ClearTurn()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeProject:
		m.ResetProject()
		return nil
	case event.EdgeAgent:
		m.ResetAgent()
		return nil
	case event.EdgeCommand:
		m.ResetCommand()
		return nil
	case event.EdgeTurn:
		m.ResetTurn()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// HandoffMutation represents an operation that mutates the Handoff nodes in the graph.
type HandoffMutation struct {
	config
	op            Op
	typ           string
	id            *int
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	agent         *int
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*Handoff, error)
	predicates    []predicate.Handoff
}

var _ ent.Mutation = (*HandoffMutation)(nil)

// handoffOption allows management of the mutation configuration using functional options.
type handoffOption func(*HandoffMutation)

// newHandoffMutation creates new mutation for the Handoff entity.
func newHandoffMutation(c config, op Op, opts ...handoffOption) *HandoffMutation {
	m := &HandoffMutation{
		config:        c,
		op:            op,
		typ:           TypeHandoff,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHandoffID sets the ID field of the mutation.
func withHandoffID(id int) handoffOption {
	return func(m *HandoffMutation) {
		var (
			err   error
			once  sync.Once
			value *Handoff
		)
		m.oldValue = func(ctx context.Context) (*Handoff, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Handoff.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHandoff sets the old Handoff of the mutation.
func withHandoff(node *Handoff) handoffOption {
	return func(m *HandoffMutation) {
		m.oldValue = func(context.Context) (*Handoff, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HandoffMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HandoffMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HandoffMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HandoffMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Handoff.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *HandoffMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *HandoffMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *HandoffMutation) ResetAgentID() {
	m.agent = nil
}

// SetReason sets the "reason" field.
func (m *HandoffMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *HandoffMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *HandoffMutation) ResetReason() {
	m.reason = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HandoffMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HandoffMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Handoff entity.
// If the Handoff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HandoffMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *HandoffMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *HandoffMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[handoff.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *HandoffMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *HandoffMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *HandoffMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the HandoffMutation builder.
func (m *HandoffMutation) Where(ps ...predicate.Handoff) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HandoffMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HandoffMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Handoff, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HandoffMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HandoffMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Handoff).
func (m *HandoffMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HandoffMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.agent != nil {
		fields = append(fields, handoff.FieldAgentID)
	}
	if m.reason != nil {
		fields = append(fields, handoff.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, handoff.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HandoffMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case handoff.FieldAgentID:
		return m.AgentID()
	case handoff.FieldReason:
		return m.Reason()
	case handoff.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HandoffMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case handoff.FieldAgentID:
		return m.OldAgentID(ctx)
	case handoff.FieldReason:
		return m.OldReason(ctx)
	case handoff.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Handoff field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HandoffMutation) SetField(name string, value ent.Value) error {
	switch name {
	case handoff.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case handoff.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case handoff.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Handoff field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HandoffMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HandoffMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HandoffMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Handoff numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HandoffMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HandoffMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HandoffMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Handoff nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HandoffMutation) ResetField(name string) error {
	switch name {
	case handoff.FieldAgentID:
		m.ResetAgentID()
		return nil
	case handoff.FieldReason:
		m.ResetReason()
		return nil
	case handoff.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Handoff field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HandoffMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, handoff.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HandoffMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case handoff.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HandoffMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HandoffMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HandoffMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, handoff.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HandoffMutation) EdgeCleared(name string) bool {
	switch name {
	case handoff.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HandoffMutation) ClearEdge(name string) error {
	switch name {
	case handoff.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Handoff unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HandoffMutation) ResetEdge(name string) error {
	switch name {
	case handoff.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown Handoff edge %s", name)
}

// HeadspaceSnapshotMutation represents an operation that mutates the HeadspaceSnapshot nodes in the graph.
type HeadspaceSnapshotMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	captured_at              *time.Time
	context_percent_used     *int
	addcontext_percent_used  *int
	context_remaining_tokens *string
	raw                      *string
	clearedFields            map[string]struct{}
	agent                    *int
	clearedagent             bool
	done                     bool
	oldValue                 func(context.Context) (*HeadspaceSnapshot, error)
	predicates               []predicate.HeadspaceSnapshot
}

var _ ent.Mutation = (*HeadspaceSnapshotMutation)(nil)

// headspacesnapshotOption allows management of the mutation configuration using functional options.
type headspacesnapshotOption func(*HeadspaceSnapshotMutation)

// newHeadspaceSnapshotMutation creates new mutation for the HeadspaceSnapshot entity.
func newHeadspaceSnapshotMutation(c config, op Op, opts ...headspacesnapshotOption) *HeadspaceSnapshotMutation {
	m := &HeadspaceSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeHeadspaceSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHeadspaceSnapshotID sets the ID field of the mutation.
func withHeadspaceSnapshotID(id int) headspacesnapshotOption {
	return func(m *HeadspaceSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *HeadspaceSnapshot
		)
		m.oldValue = func(ctx context.Context) (*HeadspaceSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HeadspaceSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHeadspaceSnapshot sets the old HeadspaceSnapshot of the mutation.
func withHeadspaceSnapshot(node *HeadspaceSnapshot) headspacesnapshotOption {
	return func(m *HeadspaceSnapshotMutation) {
		m.oldValue = func(context.Context) (*HeadspaceSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HeadspaceSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HeadspaceSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HeadspaceSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HeadspaceSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HeadspaceSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *HeadspaceSnapshotMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *HeadspaceSnapshotMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the HeadspaceSnapshot entity.
// If the HeadspaceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeadspaceSnapshotMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *HeadspaceSnapshotMutation) ResetAgentID() {
	m.agent = nil
}

// SetCapturedAt sets the "captured_at" field.
func (m *HeadspaceSnapshotMutation) SetCapturedAt(t time.Time) {
	m.captured_at = &t
}

// CapturedAt returns the value of the "captured_at" field in the mutation.
func (m *HeadspaceSnapshotMutation) CapturedAt() (r time.Time, exists bool) {
	v := m.captured_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCapturedAt returns the old "captured_at" field's value of the HeadspaceSnapshot entity.
// If the HeadspaceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeadspaceSnapshotMutation) OldCapturedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapturedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapturedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapturedAt: %w", err)
	}
	return oldValue.CapturedAt, nil
}

// ResetCapturedAt resets all changes to the "captured_at" field.
func (m *HeadspaceSnapshotMutation) ResetCapturedAt() {
	m.captured_at = nil
}

// SetContextPercentUsed sets the "context_percent_used" field.
func (m *HeadspaceSnapshotMutation) SetContextPercentUsed(i int) {
	m.context_percent_used = &i
	m.addcontext_percent_used = nil
}

// ContextPercentUsed returns the value of the "context_percent_used" field in the mutation.
func (m *HeadspaceSnapshotMutation) ContextPercentUsed() (r int, exists bool) {
	v := m.context_percent_used
	if v == nil {
		return
	}
	return *v, true
}

// OldContextPercentUsed returns the old "context_percent_used" field's value of the HeadspaceSnapshot entity.
// If the HeadspaceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeadspaceSnapshotMutation) OldContextPercentUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextPercentUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextPercentUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextPercentUsed: %w", err)
	}
	return oldValue.ContextPercentUsed, nil
}

// AddContextPercentUsed adds i to the "context_percent_used" field.
func (m *HeadspaceSnapshotMutation) AddContextPercentUsed(i int) {
	if m.addcontext_percent_used != nil {
		*m.addcontext_percent_used += i
	} else {
		m.addcontext_percent_used = &i
	}
}

// AddedContextPercentUsed returns the value that was added to the "context_percent_used" field in this mutation.
func (m *HeadspaceSnapshotMutation) AddedContextPercentUsed() (r int, exists bool) {
	v := m.addcontext_percent_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetContextPercentUsed resets all changes to the "context_percent_used" field.
func (m *HeadspaceSnapshotMutation) ResetContextPercentUsed() {
	m.context_percent_used = nil
	m.addcontext_percent_used = nil
}

// SetContextRemainingTokens sets the "context_remaining_tokens" field.
func (m *HeadspaceSnapshotMutation) SetContextRemainingTokens(s string) {
	m.context_remaining_tokens = &s
}

// ContextRemainingTokens returns the value of the "context_remaining_tokens" field in the mutation.
func (m *HeadspaceSnapshotMutation) ContextRemainingTokens() (r string, exists bool) {
	v := m.context_remaining_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldContextRemainingTokens returns the old "context_remaining_tokens" field's value of the HeadspaceSnapshot entity.
// If the HeadspaceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeadspaceSnapshotMutation) OldContextRemainingTokens(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextRemainingTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextRemainingTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextRemainingTokens: %w", err)
	}
	return oldValue.ContextRemainingTokens, nil
}

// ResetContextRemainingTokens resets all changes to the "context_remaining_tokens" field.
func (m *HeadspaceSnapshotMutation) ResetContextRemainingTokens() {
	m.context_remaining_tokens = nil
}

// SetRaw sets the "raw" field.
func (m *HeadspaceSnapshotMutation) SetRaw(s string) {
	m.raw = &s
}

// Raw returns the value of the "raw" field in the mutation.
func (m *HeadspaceSnapshotMutation) Raw() (r string, exists bool) {
	v := m.raw
	if v == nil {
		return
	}
	return *v, true
}

// OldRaw returns the old "raw" field's value of the HeadspaceSnapshot entity.
// If the HeadspaceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HeadspaceSnapshotMutation) OldRaw(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRaw: %w", err)
	}
	return oldValue.Raw, nil
}

// ResetRaw resets all changes to the "raw" field.
func (m *HeadspaceSnapshotMutation) ResetRaw() {
	m.raw = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *HeadspaceSnapshotMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[headspacesnapshot.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *HeadspaceSnapshotMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *HeadspaceSnapshotMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *HeadspaceSnapshotMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the HeadspaceSnapshotMutation builder.
func (m *HeadspaceSnapshotMutation) Where(ps ...predicate.HeadspaceSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HeadspaceSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HeadspaceSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HeadspaceSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HeadspaceSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HeadspaceSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HeadspaceSnapshot).
func (m *HeadspaceSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HeadspaceSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.agent != nil {
		fields = append(fields, headspacesnapshot.FieldAgentID)
	}
	if m.captured_at != nil {
		fields = append(fields, headspacesnapshot.FieldCapturedAt)
	}
	if m.context_percent_used != nil {
		fields = append(fields, headspacesnapshot.FieldContextPercentUsed)
	}
	if m.context_remaining_tokens != nil {
		fields = append(fields, headspacesnapshot.FieldContextRemainingTokens)
	}
	if m.raw != nil {
		fields = append(fields, headspacesnapshot.FieldRaw)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HeadspaceSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case headspacesnapshot.FieldAgentID:
		return m.AgentID()
	case headspacesnapshot.FieldCapturedAt:
		return m.CapturedAt()
	case headspacesnapshot.FieldContextPercentUsed:
		return m.ContextPercentUsed()
	case headspacesnapshot.FieldContextRemainingTokens:
		return m.ContextRemainingTokens()
	case headspacesnapshot.FieldRaw:
		return m.Raw()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HeadspaceSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case headspacesnapshot.FieldAgentID:
		return m.OldAgentID(ctx)
	case headspacesnapshot.FieldCapturedAt:
		return m.OldCapturedAt(ctx)
	case headspacesnapshot.FieldContextPercentUsed:
		return m.OldContextPercentUsed(ctx)
	case headspacesnapshot.FieldContextRemainingTokens:
		return m.OldContextRemainingTokens(ctx)
	case headspacesnapshot.FieldRaw:
		return m.OldRaw(ctx)
	}
	return nil, fmt.Errorf("unknown HeadspaceSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HeadspaceSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case headspacesnapshot.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case headspacesnapshot.FieldCapturedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapturedAt(v)
		return nil
	case headspacesnapshot.FieldContextPercentUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextPercentUsed(v)
		return nil
	case headspacesnapshot.FieldContextRemainingTokens:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextRemainingTokens(v)
		return nil
	case headspacesnapshot.FieldRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRaw(v)
		return nil
	}
	return fmt.Errorf("unknown HeadspaceSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HeadspaceSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addcontext_percent_used != nil {
		fields = append(fields, headspacesnapshot.FieldContextPercentUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HeadspaceSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case headspacesnapshot.FieldContextPercentUsed:
		return m.AddedContextPercentUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HeadspaceSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case headspacesnapshot.FieldContextPercentUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContextPercentUsed(v)
		return nil
	}
	return fmt.Errorf("unknown HeadspaceSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HeadspaceSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HeadspaceSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HeadspaceSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown HeadspaceSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HeadspaceSnapshotMutation) ResetField(name string) error {
	switch name {
	case headspacesnapshot.FieldAgentID:
		m.ResetAgentID()
		return nil
	case headspacesnapshot.FieldCapturedAt:
		m.ResetCapturedAt()
		return nil
	case headspacesnapshot.FieldContextPercentUsed:
		m.ResetContextPercentUsed()
		return nil
	case headspacesnapshot.FieldContextRemainingTokens:
		m.ResetContextRemainingTokens()
		return nil
	case headspacesnapshot.FieldRaw:
		m.ResetRaw()
		return nil
	}
	return fmt.Errorf("unknown HeadspaceSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HeadspaceSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, headspacesnapshot.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HeadspaceSnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case headspacesnapshot.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HeadspaceSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HeadspaceSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HeadspaceSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, headspacesnapshot.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HeadspaceSnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case headspacesnapshot.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HeadspaceSnapshotMutation) ClearEdge(name string) error {
	switch name {
	case headspacesnapshot.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown HeadspaceSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HeadspaceSnapshotMutation) ResetEdge(name string) error {
	switch name {
	case headspacesnapshot.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown HeadspaceSnapshot edge %s", name)
}

// InferenceCallMutation represents an operation that mutates the InferenceCall nodes in the graph.
type InferenceCallMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	level                *inferencecall.Level
	input_hash           *string
	cached               *bool
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	cost_usd             *float64
	addcost_usd          *float64
	latency_ms           *int
	addlatency_ms        *int
	created_at           *time.Time
	clearedFields        map[string]struct{}
	project              *int
	clearedproject       bool
	agent                *int
	clearedagent         bool
	command              *int
	clearedcommand       bool
	turn                 *int
	clearedturn          bool
	done                 bool
	oldValue             func(context.Context) (*InferenceCall, error)
	predicates           []predicate.InferenceCall
}

var _ ent.Mutation = (*InferenceCallMutation)(nil)

// inferencecallOption allows management of the mutation configuration using functional options.
type inferencecallOption func(*InferenceCallMutation)

// newInferenceCallMutation creates new mutation for the InferenceCall entity.
func newInferenceCallMutation(c config, op Op, opts ...inferencecallOption) *InferenceCallMutation {
	m := &InferenceCallMutation{
		config:        c,
		op:            op,
		typ:           TypeInferenceCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInferenceCallID sets the ID field of the mutation.
func withInferenceCallID(id int) inferencecallOption {
	return func(m *InferenceCallMutation) {
		var (
			err   error
			once  sync.Once
			value *InferenceCall
		)
		m.oldValue = func(ctx context.Context) (*InferenceCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InferenceCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInferenceCall sets the old InferenceCall of the mutation.
func withInferenceCall(node *InferenceCall) inferencecallOption {
	return func(m *InferenceCallMutation) {
		m.oldValue = func(context.Context) (*InferenceCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InferenceCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InferenceCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InferenceCallMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InferenceCallMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InferenceCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLevel sets the "level" field.
func (m *InferenceCallMutation) SetLevel(i inferencecall.Level) {
	m.level = &i
}

// Level returns the value of the "level" field in the mutation.
func (m *InferenceCallMutation) Level() (r inferencecall.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldLevel(ctx context.Context) (v inferencecall.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *InferenceCallMutation) ResetLevel() {
	m.level = nil
}

// SetInputHash sets the "input_hash" field.
func (m *InferenceCallMutation) SetInputHash(s string) {
	m.input_hash = &s
}

// InputHash returns the value of the "input_hash" field in the mutation.
func (m *InferenceCallMutation) InputHash() (r string, exists bool) {
	v := m.input_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldInputHash returns the old "input_hash" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldInputHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputHash: %w", err)
	}
	return oldValue.InputHash, nil
}

// ResetInputHash resets all changes to the "input_hash" field.
func (m *InferenceCallMutation) ResetInputHash() {
	m.input_hash = nil
}

// SetCached sets the "cached" field.
func (m *InferenceCallMutation) SetCached(b bool) {
	m.cached = &b
}

// Cached returns the value of the "cached" field in the mutation.
func (m *InferenceCallMutation) Cached() (r bool, exists bool) {
	v := m.cached
	if v == nil {
		return
	}
	return *v, true
}

// OldCached returns the old "cached" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldCached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCached: %w", err)
	}
	return oldValue.Cached, nil
}

// ResetCached resets all changes to the "cached" field.
func (m *InferenceCallMutation) ResetCached() {
	m.cached = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *InferenceCallMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *InferenceCallMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *InferenceCallMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *InferenceCallMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *InferenceCallMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *InferenceCallMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *InferenceCallMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *InferenceCallMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *InferenceCallMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *InferenceCallMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *InferenceCallMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *InferenceCallMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *InferenceCallMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *InferenceCallMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *InferenceCallMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *InferenceCallMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *InferenceCallMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *InferenceCallMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *InferenceCallMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *InferenceCallMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InferenceCallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InferenceCallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InferenceCallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProjectID sets the "project_id" field.
func (m *InferenceCallMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *InferenceCallMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldProjectID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *InferenceCallMutation) ClearProjectID() {
	m.project = nil
	m.clearedFields[inferencecall.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *InferenceCallMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[inferencecall.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *InferenceCallMutation) ResetProjectID() {
	m.project = nil
	delete(m.clearedFields, inferencecall.FieldProjectID)
}

// SetAgentID sets the "agent_id" field.
func (m *InferenceCallMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *InferenceCallMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *InferenceCallMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[inferencecall.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *InferenceCallMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[inferencecall.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *InferenceCallMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, inferencecall.FieldAgentID)
}

// SetCommandID sets the "command_id" field.
func (m *InferenceCallMutation) SetCommandID(i int) {
	m.command = &i
}

// CommandID returns the value of the "command_id" field in the mutation.
func (m *InferenceCallMutation) CommandID() (r int, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandID returns the old "command_id" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldCommandID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandID: %w", err)
	}
	return oldValue.CommandID, nil
}

// ClearCommandID clears the value of the "command_id" field.
func (m *InferenceCallMutation) ClearCommandID() {
	m.command = nil
	m.clearedFields[inferencecall.FieldCommandID] = struct{}{}
}

// CommandIDCleared returns if the "command_id" field was cleared in this mutation.
func (m *InferenceCallMutation) CommandIDCleared() bool {
	_, ok := m.clearedFields[inferencecall.FieldCommandID]
	return ok
}

// ResetCommandID resets all changes to the "command_id" field.
func (m *InferenceCallMutation) ResetCommandID() {
	m.command = nil
	delete(m.clearedFields, inferencecall.FieldCommandID)
}

// SetTurnID sets the "turn_id" field.
func (m *InferenceCallMutation) SetTurnID(i int) {
	m.turn = &i
}

// TurnID returns the value of the "turn_id" field in the mutation.
func (m *InferenceCallMutation) TurnID() (r int, exists bool) {
	v := m.turn
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnID returns the old "turn_id" field's value of the InferenceCall entity.
// If the InferenceCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InferenceCallMutation) OldTurnID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnID: %w", err)
	}
	return oldValue.TurnID, nil
}

// ClearTurnID clears the value of the "turn_id" field.
func (m *InferenceCallMutation) ClearTurnID() {
	m.turn = nil
	m.clearedFields[inferencecall.FieldTurnID] = struct{}{}
}

// TurnIDCleared returns if the "turn_id" field was cleared in this mutation.
func (m *InferenceCallMutation) TurnIDCleared() bool {
	_, ok := m.clearedFields[inferencecall.FieldTurnID]
	return ok
}

// ResetTurnID resets all changes to the "turn_id" field.
func (m *InferenceCallMutation) ResetTurnID() {
	m.turn = nil
	delete(m.clearedFields, inferencecall.FieldTurnID)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *InferenceCallMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[inferencecall.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *InferenceCallMutation) ProjectCleared() bool {
	return m.ProjectIDCleared() || m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *InferenceCallMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *InferenceCallMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *InferenceCallMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[inferencecall.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *InferenceCallMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *InferenceCallMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *InferenceCallMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearCommand clears the "command" edge to the Command entity.
func (m *InferenceCallMutation) ClearCommand() {
	m.clearedcommand = true
	m.clearedFields[inferencecall.FieldCommandID] = struct{}{}
}

// CommandCleared reports if the "command" edge to the Command entity was cleared.
func (m *InferenceCallMutation) CommandCleared() bool {
	return m.CommandIDCleared() || m.clearedcommand
}

// CommandIDs returns the "command" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CommandID instead. It exists only for internal usage by the builders.
func (m *InferenceCallMutation) CommandIDs() (ids []int) {
	if id := m.command; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCommand resets all changes to the "command" edge.
func (m *InferenceCallMutation) ResetCommand() {
	m.command = nil
	m.clearedcommand = false
}

// ClearTurn clears the "turn" edge to the Turn entity.
func (m *InferenceCallMutation) ClearTurn() {
	m.clearedturn = true
	m.clearedFields[inferencecall.FieldTurnID] = struct{}{}
}

// TurnCleared reports if the "turn" edge to the Turn entity was cleared.
func (m *InferenceCallMutation) TurnCleared() bool {
	return m.TurnIDCleared() || m.clearedturn
}

// TurnIDs returns the "turn" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TurnID instead. It exists only for internal usage by the builders.
func (m *InferenceCallMutation) TurnIDs() (ids []int) {
	if id := m.turn; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTurn resets all changes to the "turn" edge.
func (m *InferenceCallMutation) ResetTurn() {
	m.turn = nil
	m.clearedturn = false
}

// Where appends a list predicates to the InferenceCallMutation builder.
func (m *InferenceCallMutation) Where(ps ...predicate.InferenceCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InferenceCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InferenceCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InferenceCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InferenceCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InferenceCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InferenceCall).
func (m *InferenceCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InferenceCallMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.level != nil {
		fields = append(fields, inferencecall.FieldLevel)
	}
	if m.input_hash != nil {
		fields = append(fields, inferencecall.FieldInputHash)
	}
	if m.cached != nil {
		fields = append(fields, inferencecall.FieldCached)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, inferencecall.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, inferencecall.FieldCompletionTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, inferencecall.FieldCostUsd)
	}
	if m.latency_ms != nil {
		fields = append(fields, inferencecall.FieldLatencyMs)
	}
	if m.created_at != nil {
		fields = append(fields, inferencecall.FieldCreatedAt)
	}
	if m.project != nil {
		fields = append(fields, inferencecall.FieldProjectID)
	}
	if m.agent != nil {
		fields = append(fields, inferencecall.FieldAgentID)
	}
	if m.command != nil {
		fields = append(fields, inferencecall.FieldCommandID)
	}
	if m.turn != nil {
		fields = append(fields, inferencecall.FieldTurnID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InferenceCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inferencecall.FieldLevel:
		return m.Level()
	case inferencecall.FieldInputHash:
		return m.InputHash()
	case inferencecall.FieldCached:
		return m.Cached()
	case inferencecall.FieldPromptTokens:
		return m.PromptTokens()
	case inferencecall.FieldCompletionTokens:
		return m.CompletionTokens()
	case inferencecall.FieldCostUsd:
		return m.CostUsd()
	case inferencecall.FieldLatencyMs:
		return m.LatencyMs()
	case inferencecall.FieldCreatedAt:
		return m.CreatedAt()
	case inferencecall.FieldProjectID:
		return m.ProjectID()
	case inferencecall.FieldAgentID:
		return m.AgentID()
	case inferencecall.FieldCommandID:
		return m.CommandID()
	case inferencecall.FieldTurnID:
		return m.TurnID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InferenceCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inferencecall.FieldLevel:
		return m.OldLevel(ctx)
	case inferencecall.FieldInputHash:
		return m.OldInputHash(ctx)
	case inferencecall.FieldCached:
		return m.OldCached(ctx)
	case inferencecall.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case inferencecall.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case inferencecall.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case inferencecall.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case inferencecall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case inferencecall.FieldProjectID:
		return m.OldProjectID(ctx)
	case inferencecall.FieldAgentID:
		return m.OldAgentID(ctx)
	case inferencecall.FieldCommandID:
		return m.OldCommandID(ctx)
	case inferencecall.FieldTurnID:
		return m.OldTurnID(ctx)
	}
	return nil, fmt.Errorf("unknown InferenceCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InferenceCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inferencecall.FieldLevel:
		v, ok := value.(inferencecall.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case inferencecall.FieldInputHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputHash(v)
		return nil
	case inferencecall.FieldCached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCached(v)
		return nil
	case inferencecall.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case inferencecall.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case inferencecall.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case inferencecall.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case inferencecall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case inferencecall.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case inferencecall.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case inferencecall.FieldCommandID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandID(v)
		return nil
	case inferencecall.FieldTurnID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnID(v)
		return nil
	}
	return fmt.Errorf("unknown InferenceCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InferenceCallMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, inferencecall.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, inferencecall.FieldCompletionTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, inferencecall.FieldCostUsd)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, inferencecall.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InferenceCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inferencecall.FieldPromptTokens:
		return m.AddedPromptTokens()
	case inferencecall.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case inferencecall.FieldCostUsd:
		return m.AddedCostUsd()
	case inferencecall.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InferenceCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inferencecall.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case inferencecall.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case inferencecall.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case inferencecall.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown InferenceCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InferenceCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inferencecall.FieldProjectID) {
		fields = append(fields, inferencecall.FieldProjectID)
	}
	if m.FieldCleared(inferencecall.FieldAgentID) {
		fields = append(fields, inferencecall.FieldAgentID)
	}
	if m.FieldCleared(inferencecall.FieldCommandID) {
		fields = append(fields, inferencecall.FieldCommandID)
	}
	if m.FieldCleared(inferencecall.FieldTurnID) {
		fields = append(fields, inferencecall.FieldTurnID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InferenceCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InferenceCallMutation) ClearField(name string) error {
	switch name {
	case inferencecall.FieldProjectID:
		m.ClearProjectID()
		return nil
	case inferencecall.FieldAgentID:
		m.ClearAgentID()
		return nil
	case inferencecall.FieldCommandID:
		m.ClearCommandID()
		return nil
	case inferencecall.FieldTurnID:
		m.ClearTurnID()
		return nil
	}
	return fmt.Errorf("unknown InferenceCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InferenceCallMutation) ResetField(name string) error {
	switch name {
	case inferencecall.FieldLevel:
		m.ResetLevel()
		return nil
	case inferencecall.FieldInputHash:
		m.ResetInputHash()
		return nil
	case inferencecall.FieldCached:
		m.ResetCached()
		return nil
	case inferencecall.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case inferencecall.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case inferencecall.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case inferencecall.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case inferencecall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case inferencecall.FieldProjectID:
		m.ResetProjectID()
		return nil
	case inferencecall.FieldAgentID:
		m.ResetAgentID()
		return nil
	case inferencecall.FieldCommandID:
		m.ResetCommandID()
		return nil
	case inferencecall.FieldTurnID:
		m.ResetTurnID()
		return nil
	}
	return fmt.Errorf("unknown InferenceCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InferenceCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.project != nil {
		edges = append(edges, inferencecall.EdgeProject)
	}
	if m.agent != nil {
		edges = append(edges, inferencecall.EdgeAgent)
	}
	if m.command != nil {
		edges = append(edges, inferencecall.EdgeCommand)
	}
	if m.turn != nil {
		edges = append(edges, inferencecall.EdgeTurn)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InferenceCallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case inferencecall.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case inferencecall.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case inferencecall.EdgeCommand:
		if id := m.command; id != nil {
			return []ent.Value{*id}
		}
	case inferencecall.EdgeTurn:
		if id := m.turn; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InferenceCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InferenceCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InferenceCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedproject {
		edges = append(edges, inferencecall.EdgeProject)
	}
	if m.clearedagent {
		edges = append(edges, inferencecall.EdgeAgent)
	}
	if m.clearedcommand {
		edges = append(edges, inferencecall.EdgeCommand)
	}
	if m.clearedturn {
		edges = append(edges, inferencecall.EdgeTurn)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InferenceCallMutation) EdgeCleared(name string) bool {
	switch name {
	case inferencecall.EdgeProject:
		return m.clearedproject
	case inferencecall.EdgeAgent:
		return m.clearedagent
	case inferencecall.EdgeCommand:
		return m.clearedcommand
	case inferencecall.EdgeTurn:
		return m.clearedturn
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InferenceCallMutation) ClearEdge(name string) error {
	switch name {
	case inferencecall.EdgeProject:
		m.ClearProject()
		return nil
	case inferencecall.EdgeAgent:
		m.ClearAgent()
		return nil
	case inferencecall.EdgeCommand:
		m.ClearCommand()
		return nil
	case inferencecall.EdgeTurn:
		m.ClearTurn()
		return nil
	}
	return fmt.Errorf("unknown InferenceCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InferenceCallMutation) ResetEdge(name string) error {
	switch name {
	case inferencecall.EdgeProject:
		m.ResetProject()
		return nil
	case inferencecall.EdgeAgent:
		m.ResetAgent()
		return nil
	case inferencecall.EdgeCommand:
		m.ResetCommand()
		return nil
	case inferencecall.EdgeTurn:
		m.ResetTurn()
		return nil
	}
	return fmt.Errorf("unknown InferenceCall edge %s", name)
}

// ObjectiveMutation represents an operation that mutates the Objective nodes in the graph.
type ObjectiveMutation struct {
	config
	op               Op
	typ              string
	id               *int
	text             *string
	priority_enabled *bool
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Objective, error)
	predicates       []predicate.Objective
}

var _ ent.Mutation = (*ObjectiveMutation)(nil)

// objectiveOption allows management of the mutation configuration using functional options.
type objectiveOption func(*ObjectiveMutation)

// newObjectiveMutation creates new mutation for the Objective entity.
func newObjectiveMutation(c config, op Op, opts ...objectiveOption) *ObjectiveMutation {
	m := &ObjectiveMutation{
		config:        c,
		op:            op,
		typ:           TypeObjective,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withObjectiveID sets the ID field of the mutation.
func withObjectiveID(id int) objectiveOption {
	return func(m *ObjectiveMutation) {
		var (
			err   error
			once  sync.Once
			value *Objective
		)
		m.oldValue = func(ctx context.Context) (*Objective, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Objective.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withObjective sets the old Objective of the mutation.
func withObjective(node *Objective) objectiveOption {
	return func(m *ObjectiveMutation) {
		m.oldValue = func(context.Context) (*Objective, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ObjectiveMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ObjectiveMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ObjectiveMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ObjectiveMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Objective.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *ObjectiveMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ObjectiveMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ObjectiveMutation) ResetText() {
	m.text = nil
}

// SetPriorityEnabled sets the "priority_enabled" field.
func (m *ObjectiveMutation) SetPriorityEnabled(b bool) {
	m.priority_enabled = &b
}

// PriorityEnabled returns the value of the "priority_enabled" field in the mutation.
func (m *ObjectiveMutation) PriorityEnabled() (r bool, exists bool) {
	v := m.priority_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityEnabled returns the old "priority_enabled" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldPriorityEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityEnabled: %w", err)
	}
	return oldValue.PriorityEnabled, nil
}

// ResetPriorityEnabled resets all changes to the "priority_enabled" field.
func (m *ObjectiveMutation) ResetPriorityEnabled() {
	m.priority_enabled = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ObjectiveMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ObjectiveMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Objective entity.
// If the Objective object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjectiveMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ObjectiveMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ObjectiveMutation builder.
func (m *ObjectiveMutation) Where(ps ...predicate.Objective) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ObjectiveMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ObjectiveMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Objective, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ObjectiveMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ObjectiveMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Objective).
func (m *ObjectiveMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ObjectiveMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.text != nil {
		fields = append(fields, objective.FieldText)
	}
	if m.priority_enabled != nil {
		fields = append(fields, objective.FieldPriorityEnabled)
	}
	if m.updated_at != nil {
		fields = append(fields, objective.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ObjectiveMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case objective.FieldText:
		return m.Text()
	case objective.FieldPriorityEnabled:
		return m.PriorityEnabled()
	case objective.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ObjectiveMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case objective.FieldText:
		return m.OldText(ctx)
	case objective.FieldPriorityEnabled:
		return m.OldPriorityEnabled(ctx)
	case objective.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Objective field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObjectiveMutation) SetField(name string, value ent.Value) error {
	switch name {
	case objective.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case objective.FieldPriorityEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityEnabled(v)
		return nil
	case objective.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Objective field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ObjectiveMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ObjectiveMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObjectiveMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Objective numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ObjectiveMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ObjectiveMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ObjectiveMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Objective nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ObjectiveMutation) ResetField(name string) error {
	switch name {
	case objective.FieldText:
		m.ResetText()
		return nil
	case objective.FieldPriorityEnabled:
		m.ResetPriorityEnabled()
		return nil
	case objective.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Objective field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ObjectiveMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ObjectiveMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ObjectiveMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ObjectiveMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ObjectiveMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ObjectiveMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ObjectiveMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Objective unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ObjectiveMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Objective edge %s", name)
}

// OrganisationMutation represents an operation that mutates the Organisation nodes in the graph.
type OrganisationMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	roles         map[int]struct{}
	removedroles  map[int]struct{}
	clearedroles  bool
	done          bool
	oldValue      func(context.Context) (*Organisation, error)
	predicates    []predicate.Organisation
}

var _ ent.Mutation = (*OrganisationMutation)(nil)

// organisationOption allows management of the mutation configuration using functional options.
type organisationOption func(*OrganisationMutation)

// newOrganisationMutation creates new mutation for the Organisation entity.
func newOrganisationMutation(c config, op Op, opts ...organisationOption) *OrganisationMutation {
	m := &OrganisationMutation{
		config:        c,
		op:            op,
		typ:           TypeOrganisation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrganisationID sets the ID field of the mutation.
func withOrganisationID(id int) organisationOption {
	return func(m *OrganisationMutation) {
		var (
			err   error
			once  sync.Once
			value *Organisation
		)
		m.oldValue = func(ctx context.Context) (*Organisation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Organisation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrganisation sets the old Organisation of the mutation.
func withOrganisation(node *Organisation) organisationOption {
	return func(m *OrganisationMutation) {
		m.oldValue = func(context.Context) (*Organisation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrganisationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrganisationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrganisationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrganisationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Organisation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *OrganisationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OrganisationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Organisation entity.
// If the Organisation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganisationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OrganisationMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrganisationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrganisationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Organisation entity.
// If the Organisation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganisationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OrganisationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddRoleIDs adds the "roles" edge to the Role entity by ids.
func (m *OrganisationMutation) AddRoleIDs(ids ...int) {
	if m.roles == nil {
		m.roles = make(map[int]struct{})
	}
	for i := range ids {
		m.roles[ids[i]] = struct{}{}
	}
}

// ClearRoles clears the "roles" edge to the Role entity.
func (m *OrganisationMutation) ClearRoles() {
	m.clearedroles = true
}

// RolesCleared reports if the "roles" edge to the Role entity was cleared.
func (m *OrganisationMutation) RolesCleared() bool {
	return m.clearedroles
}

// RemoveRoleIDs removes the "roles" edge to the Role entity by IDs.
func (m *OrganisationMutation) RemoveRoleIDs(ids ...int) {
	if m.removedroles == nil {
		m.removedroles = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.roles, ids[i])
		m.removedroles[ids[i]] = struct{}{}
	}
}

// RemovedRoles returns the removed IDs of the "roles" edge to the Role entity.
func (m *OrganisationMutation) RemovedRolesIDs() (ids []int) {
	for id := range m.removedroles {
		ids = append(ids, id)
	}
	return
}

// RolesIDs returns the "roles" edge IDs in the mutation.
func (m *OrganisationMutation) RolesIDs() (ids []int) {
	for id := range m.roles {
		ids = append(ids, id)
	}
	return
}

// ResetRoles resets all changes to the "roles" edge.
func (m *OrganisationMutation) ResetRoles() {
	m.roles = nil
	m.clearedroles = false
	m.removedroles = nil
}

// Where appends a list predicates to the OrganisationMutation builder.
func (m *OrganisationMutation) Where(ps ...predicate.Organisation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrganisationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrganisationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Organisation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrganisationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrganisationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Organisation).
func (m *OrganisationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrganisationMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, organisation.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, organisation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrganisationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case organisation.FieldName:
		return m.Name()
	case organisation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrganisationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case organisation.FieldName:
		return m.OldName(ctx)
	case organisation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Organisation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganisationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case organisation.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case organisation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Organisation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrganisationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrganisationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganisationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Organisation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrganisationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrganisationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrganisationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Organisation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrganisationMutation) ResetField(name string) error {
	switch name {
	case organisation.FieldName:
		m.ResetName()
		return nil
	case organisation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Organisation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrganisationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.roles != nil {
		edges = append(edges, organisation.EdgeRoles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrganisationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case organisation.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.roles))
		for id := range m.roles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrganisationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedroles != nil {
		edges = append(edges, organisation.EdgeRoles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrganisationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case organisation.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.removedroles))
		for id := range m.removedroles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrganisationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedroles {
		edges = append(edges, organisation.EdgeRoles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrganisationMutation) EdgeCleared(name string) bool {
	switch name {
	case organisation.EdgeRoles:
		return m.clearedroles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrganisationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Organisation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrganisationMutation) ResetEdge(name string) error {
	switch name {
	case organisation.EdgeRoles:
		m.ResetRoles()
		return nil
	}
	return fmt.Errorf("unknown Organisation edge %s", name)
}

// PersonaMutation represents an operation that mutates the Persona nodes in the graph.
type PersonaMutation struct {
	config
	op            Op
	typ           string
	id            *int
	slug          *string
	name          *string
	description   *string
	status        *persona.Status
	skill_path    *string
	created_at    *time.Time
	archived_at   *time.Time
	clearedFields map[string]struct{}
	role          *int
	clearedrole   bool
	agents        map[int]struct{}
	removedagents map[int]struct{}
	clearedagents bool
	done          bool
	oldValue      func(context.Context) (*Persona, error)
	predicates    []predicate.Persona
}

var _ ent.Mutation = (*PersonaMutation)(nil)

// personaOption allows management of the mutation configuration using functional options.
type personaOption func(*PersonaMutation)

// newPersonaMutation creates new mutation for the Persona entity.
func newPersonaMutation(c config, op Op, opts ...personaOption) *PersonaMutation {
	m := &PersonaMutation{
		config:        c,
		op:            op,
		typ:           TypePersona,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonaID sets the ID field of the mutation.
func withPersonaID(id int) personaOption {
	return func(m *PersonaMutation) {
		var (
			err   error
			once  sync.Once
			value *Persona
		)
		m.oldValue = func(ctx context.Context) (*Persona, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Persona.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPersona sets the old Persona of the mutation.
func withPersona(node *Persona) personaOption {
	return func(m *PersonaMutation) {
		m.oldValue = func(context.Context) (*Persona, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonaMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonaMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Persona.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *PersonaMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *PersonaMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *PersonaMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *PersonaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PersonaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PersonaMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *PersonaMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PersonaMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PersonaMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[persona.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PersonaMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[persona.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PersonaMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, persona.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *PersonaMutation) SetStatus(pe persona.Status) {
	m.status = &pe
}

// Status returns the value of the "status" field in the mutation.
func (m *PersonaMutation) Status() (r persona.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldStatus(ctx context.Context) (v persona.Status, err error) {
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
func (m *PersonaMutation) ResetStatus() {
	m.status = nil
}

// SetSkillPath sets the "skill_path" field.
func (m *PersonaMutation) SetSkillPath(s string) {
	m.skill_path = &s
}

// SkillPath returns the value of the "skill_path" field in the mutation.
func (m *PersonaMutation) SkillPath() (r string, exists bool) {
	v := m.skill_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillPath returns the old "skill_path" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldSkillPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillPath: %w", err)
	}
	return oldValue.SkillPath, nil
}

// ClearSkillPath clears the value of the "skill_path" field.
func (m *PersonaMutation) ClearSkillPath() {
	m.skill_path = nil
	m.clearedFields[persona.FieldSkillPath] = struct{}{}
}

// SkillPathCleared returns if the "skill_path" field was cleared in this mutation.
func (m *PersonaMutation) SkillPathCleared() bool {
	_, ok := m.clearedFields[persona.FieldSkillPath]
	return ok
}

// ResetSkillPath resets all changes to the "skill_path" field.
func (m *PersonaMutation) ResetSkillPath() {
	m.skill_path = nil
	delete(m.clearedFields, persona.FieldSkillPath)
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PersonaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *PersonaMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *PersonaMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *PersonaMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[persona.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *PersonaMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[persona.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *PersonaMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, persona.FieldArchivedAt)
}

// SetRoleID sets the "role" edge to the Role entity by id.
func (m *PersonaMutation) SetRoleID(id int) {
	m.role = &id
}

// ClearRole clears the "role" edge to the Role entity.
func (m *PersonaMutation) ClearRole() {
	m.clearedrole = true
}

// RoleCleared reports if the "role" edge to the Role entity was cleared.
func (m *PersonaMutation) RoleCleared() bool {
	return m.clearedrole
}

// RoleID returns the "role" edge ID in the mutation.
func (m *PersonaMutation) RoleID() (id int, exists bool) {
	if m.role != nil {
		return *m.role, true
	}
	return
}

// RoleIDs returns the "role" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoleID instead. It exists only for internal usage by the builders.
func (m *PersonaMutation) RoleIDs() (ids []int) {
	if id := m.role; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRole resets all changes to the "role" edge.
func (m *PersonaMutation) ResetRole() {
	m.role = nil
	m.clearedrole = false
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *PersonaMutation) AddAgentIDs(ids ...int) {
	if m.agents == nil {
		m.agents = make(map[int]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *PersonaMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *PersonaMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *PersonaMutation) RemoveAgentIDs(ids ...int) {
	if m.removedagents == nil {
		m.removedagents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *PersonaMutation) RemovedAgentsIDs() (ids []int) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *PersonaMutation) AgentsIDs() (ids []int) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *PersonaMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// Where appends a list predicates to the PersonaMutation builder.
func (m *PersonaMutation) Where(ps ...predicate.Persona) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Persona, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Persona).
func (m *PersonaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonaMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.slug != nil {
		fields = append(fields, persona.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, persona.FieldName)
	}
	if m.description != nil {
		fields = append(fields, persona.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, persona.FieldStatus)
	}
	if m.skill_path != nil {
		fields = append(fields, persona.FieldSkillPath)
	}
	if m.created_at != nil {
		fields = append(fields, persona.FieldCreatedAt)
	}
	if m.archived_at != nil {
		fields = append(fields, persona.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case persona.FieldSlug:
		return m.Slug()
	case persona.FieldName:
		return m.Name()
	case persona.FieldDescription:
		return m.Description()
	case persona.FieldStatus:
		return m.Status()
	case persona.FieldSkillPath:
		return m.SkillPath()
	case persona.FieldCreatedAt:
		return m.CreatedAt()
	case persona.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case persona.FieldSlug:
		return m.OldSlug(ctx)
	case persona.FieldName:
		return m.OldName(ctx)
	case persona.FieldDescription:
		return m.OldDescription(ctx)
	case persona.FieldStatus:
		return m.OldStatus(ctx)
	case persona.FieldSkillPath:
		return m.OldSkillPath(ctx)
	case persona.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case persona.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Persona field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case persona.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case persona.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case persona.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case persona.FieldStatus:
		v, ok := value.(persona.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case persona.FieldSkillPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillPath(v)
		return nil
	case persona.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case persona.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Persona field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Persona numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(persona.FieldDescription) {
		fields = append(fields, persona.FieldDescription)
	}
	if m.FieldCleared(persona.FieldSkillPath) {
		fields = append(fields, persona.FieldSkillPath)
	}
	if m.FieldCleared(persona.FieldArchivedAt) {
		fields = append(fields, persona.FieldArchivedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonaMutation) ClearField(name string) error {
	switch name {
	case persona.FieldDescription:
		m.ClearDescription()
		return nil
	case persona.FieldSkillPath:
		m.ClearSkillPath()
		return nil
	case persona.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Persona nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonaMutation) ResetField(name string) error {
	switch name {
	case persona.FieldSlug:
		m.ResetSlug()
		return nil
	case persona.FieldName:
		m.ResetName()
		return nil
	case persona.FieldDescription:
		m.ResetDescription()
		return nil
	case persona.FieldStatus:
		m.ResetStatus()
		return nil
	case persona.FieldSkillPath:
		m.ResetSkillPath()
		return nil
	case persona.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case persona.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Persona field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonaMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.role != nil {
		edges = append(edges, persona.EdgeRole)
	}
	if m.agents != nil {
		edges = append(edges, persona.EdgeAgents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case persona.EdgeRole:
		if id := m.role; id != nil {
			return []ent.Value{*id}
		}
	case persona.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedagents != nil {
		edges = append(edges, persona.EdgeAgents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonaMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case persona.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrole {
		edges = append(edges, persona.EdgeRole)
	}
	if m.clearedagents {
		edges = append(edges, persona.EdgeAgents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonaMutation) EdgeCleared(name string) bool {
	switch name {
	case persona.EdgeRole:
		return m.clearedrole
	case persona.EdgeAgents:
		return m.clearedagents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonaMutation) ClearEdge(name string) error {
	switch name {
	case persona.EdgeRole:
		m.ClearRole()
		return nil
	}
	return fmt.Errorf("unknown Persona unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonaMutation) ResetEdge(name string) error {
	switch name {
	case persona.EdgeRole:
		m.ResetRole()
		return nil
	case persona.EdgeAgents:
		m.ResetAgents()
		return nil
	}
	return fmt.Errorf("unknown Persona edge %s", name)
}

// PositionMutation represents an operation that mutates the Position nodes in the graph.
type PositionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	title               *string
	clearedFields       map[string]struct{}
	role                *int
	clearedrole         bool
	reports_to          *int
	clearedreports_to   bool
	reports             map[int]struct{}
	removedreports      map[int]struct{}
	clearedreports      bool
	escalates_to        *int
	clearedescalates_to bool
	escalations         map[int]struct{}
	removedescalations  map[int]struct{}
	clearedescalations  bool
	agents              map[int]struct{}
	removedagents       map[int]struct{}
	clearedagents       bool
	done                bool
	oldValue            func(context.Context) (*Position, error)
	predicates          []predicate.Position
}

var _ ent.Mutation = (*PositionMutation)(nil)

// positionOption allows management of the mutation configuration using functional options.
type positionOption func(*PositionMutation)

// newPositionMutation creates new mutation for the Position entity.
func newPositionMutation(c config, op Op, opts ...positionOption) *PositionMutation {
	m := &PositionMutation{
		config:        c,
		op:            op,
		typ:           TypePosition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPositionID sets the ID field of the mutation.
func withPositionID(id int) positionOption {
	return func(m *PositionMutation) {
		var (
			err   error
			once  sync.Once
			value *Position
		)
		m.oldValue = func(ctx context.Context) (*Position, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Position.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPosition sets the old Position of the mutation.
func withPosition(node *Position) positionOption {
	return func(m *PositionMutation) {
		m.oldValue = func(context.Context) (*Position, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PositionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PositionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PositionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PositionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Position.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *PositionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PositionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PositionMutation) ResetTitle() {
	m.title = nil
}

// SetReportsToID sets the "reports_to_id" field.
func (m *PositionMutation) SetReportsToID(i int) {
	m.reports_to = &i
}

// ReportsToID returns the value of the "reports_to_id" field in the mutation.
func (m *PositionMutation) ReportsToID() (r int, exists bool) {
	v := m.reports_to
	if v == nil {
		return
	}
	return *v, true
}

// OldReportsToID returns the old "reports_to_id" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldReportsToID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportsToID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportsToID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportsToID: %w", err)
	}
	return oldValue.ReportsToID, nil
}

// ClearReportsToID clears the value of the "reports_to_id" field.
func (m *PositionMutation) ClearReportsToID() {
	m.reports_to = nil
	m.clearedFields[position.FieldReportsToID] = struct{}{}
}

// ReportsToIDCleared returns if the "reports_to_id" field was cleared in this mutation.
func (m *PositionMutation) ReportsToIDCleared() bool {
	_, ok := m.clearedFields[position.FieldReportsToID]
	return ok
}

// ResetReportsToID resets all changes to the "reports_to_id" field.
func (m *PositionMutation) ResetReportsToID() {
	m.reports_to = nil
	delete(m.clearedFields, position.FieldReportsToID)
}

// SetEscalatesToID sets the "escalates_to_id" field.
func (m *PositionMutation) SetEscalatesToID(i int) {
	m.escalates_to = &i
}

// EscalatesToID returns the value of the "escalates_to_id" field in the mutation.
func (m *PositionMutation) EscalatesToID() (r int, exists bool) {
	v := m.escalates_to
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalatesToID returns the old "escalates_to_id" field's value of the Position entity.
// If the Position object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PositionMutation) OldEscalatesToID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalatesToID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalatesToID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalatesToID: %w", err)
	}
	return oldValue.EscalatesToID, nil
}

// ClearEscalatesToID clears the value of the "escalates_to_id" field.
func (m *PositionMutation) ClearEscalatesToID() {
	m.escalates_to = nil
	m.clearedFields[position.FieldEscalatesToID] = struct{}{}
}

// EscalatesToIDCleared returns if the "escalates_to_id" field was cleared in this mutation.
func (m *PositionMutation) EscalatesToIDCleared() bool {
	_, ok := m.clearedFields[position.FieldEscalatesToID]
	return ok
}

// ResetEscalatesToID resets all changes to the "escalates_to_id" field.
func (m *PositionMutation) ResetEscalatesToID() {
	m.escalates_to = nil
	delete(m.clearedFields, position.FieldEscalatesToID)
}

// SetRoleID sets the "role" edge to the Role entity by id.
func (m *PositionMutation) SetRoleID(id int) {
	m.role = &id
}

// ClearRole clears the "role" edge to the Role entity.
func (m *PositionMutation) ClearRole() {
	m.clearedrole = true
}

// RoleCleared reports if the "role" edge to the Role entity was cleared.
func (m *PositionMutation) RoleCleared() bool {
	return m.clearedrole
}

// RoleID returns the "role" edge ID in the mutation.
func (m *PositionMutation) RoleID() (id int, exists bool) {
	if m.role != nil {
		return *m.role, true
	}
	return
}

// RoleIDs returns the "role" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoleID instead. It exists only for internal usage by the builders.
func (m *PositionMutation) RoleIDs() (ids []int) {
	if id := m.role; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRole resets all changes to the "role" edge.
func (m *PositionMutation) ResetRole() {
	m.role = nil
	m.clearedrole = false
}

// ClearReportsTo clears the "reports_to" edge to the Position entity.
func (m *PositionMutation) ClearReportsTo() {
	m.clearedreports_to = true
	m.clearedFields[position.FieldReportsToID] = struct{}{}
}

// ReportsToCleared reports if the "reports_to" edge to the Position entity was cleared.
func (m *PositionMutation) ReportsToCleared() bool {
	return m.ReportsToIDCleared() || m.clearedreports_to
}

// ReportsToIDs returns the "reports_to" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportsToID instead. It exists only for internal usage by the builders.
func (m *PositionMutation) ReportsToIDs() (ids []int) {
	if id := m.reports_to; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReportsTo resets all changes to the "reports_to" edge.
func (m *PositionMutation) ResetReportsTo() {
	m.reports_to = nil
	m.clearedreports_to = false
}

// AddReportIDs adds the "reports" edge to the Position entity by ids.
func (m *PositionMutation) AddReportIDs(ids ...int) {
	if m.reports == nil {
		m.reports = make(map[int]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Position entity.
func (m *PositionMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Position entity was cleared.
func (m *PositionMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Position entity by IDs.
func (m *PositionMutation) RemoveReportIDs(ids ...int) {
	if m.removedreports == nil {
		m.removedreports = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Position entity.
func (m *PositionMutation) RemovedReportsIDs() (ids []int) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *PositionMutation) ReportsIDs() (ids []int) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *PositionMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// ClearEscalatesTo clears the "escalates_to" edge to the Position entity.
func (m *PositionMutation) ClearEscalatesTo() {
	m.clearedescalates_to = true
	m.clearedFields[position.FieldEscalatesToID] = struct{}{}
}

// EscalatesToCleared reports if the "escalates_to" edge to the Position entity was cleared.
func (m *PositionMutation) EscalatesToCleared() bool {
	return m.EscalatesToIDCleared() || m.clearedescalates_to
}

// EscalatesToIDs returns the "escalates_to" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EscalatesToID instead. It exists only for internal usage by the builders.
func (m *PositionMutation) EscalatesToIDs() (ids []int) {
	if id := m.escalates_to; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEscalatesTo resets all changes to the "escalates_to" edge.
func (m *PositionMutation) ResetEscalatesTo() {
	m.escalates_to = nil
	m.clearedescalates_to = false
}

// AddEscalationIDs adds the "escalations" edge to the Position entity by ids.
func (m *PositionMutation) AddEscalationIDs(ids ...int) {
	if m.escalations == nil {
		m.escalations = make(map[int]struct{})
	}
	for i := range ids {
		m.escalations[ids[i]] = struct{}{}
	}
}

// ClearEscalations clears the "escalations" edge to the Position entity.
func (m *PositionMutation) ClearEscalations() {
	m.clearedescalations = true
}

// EscalationsCleared reports if the "escalations" edge to the Position entity was cleared.
func (m *PositionMutation) EscalationsCleared() bool {
	return m.clearedescalations
}

// RemoveEscalationIDs removes the "escalations" edge to the Position entity by IDs.
func (m *PositionMutation) RemoveEscalationIDs(ids ...int) {
	if m.removedescalations == nil {
		m.removedescalations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.escalations, ids[i])
		m.removedescalations[ids[i]] = struct{}{}
	}
}

// RemovedEscalations returns the removed IDs of the "escalations" edge to the Position entity.
func (m *PositionMutation) RemovedEscalationsIDs() (ids []int) {
	for id := range m.removedescalations {
		ids = append(ids, id)
	}
	return
}

// EscalationsIDs returns the "escalations" edge IDs in the mutation.
func (m *PositionMutation) EscalationsIDs() (ids []int) {
	for id := range m.escalations {
		ids = append(ids, id)
	}
	return
}

// ResetEscalations resets all changes to the "escalations" edge.
func (m *PositionMutation) ResetEscalations() {
	m.escalations = nil
	m.clearedescalations = false
	m.removedescalations = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *PositionMutation) AddAgentIDs(ids ...int) {
	if m.agents == nil {
		m.agents = make(map[int]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *PositionMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *PositionMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *PositionMutation) RemoveAgentIDs(ids ...int) {
	if m.removedagents == nil {
		m.removedagents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *PositionMutation) RemovedAgentsIDs() (ids []int) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *PositionMutation) AgentsIDs() (ids []int) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *PositionMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// Where appends a list predicates to the PositionMutation builder.
func (m *PositionMutation) Where(ps ...predicate.Position) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PositionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PositionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Position, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PositionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PositionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Position).
func (m *PositionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PositionMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.title != nil {
		fields = append(fields, position.FieldTitle)
	}
	if m.reports_to != nil {
		fields = append(fields, position.FieldReportsToID)
	}
	if m.escalates_to != nil {
		fields = append(fields, position.FieldEscalatesToID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PositionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case position.FieldTitle:
		return m.Title()
	case position.FieldReportsToID:
		return m.ReportsToID()
	case position.FieldEscalatesToID:
		return m.EscalatesToID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PositionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case position.FieldTitle:
		return m.OldTitle(ctx)
	case position.FieldReportsToID:
		return m.OldReportsToID(ctx)
	case position.FieldEscalatesToID:
		return m.OldEscalatesToID(ctx)
	}
	return nil, fmt.Errorf("unknown Position field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PositionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case position.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case position.FieldReportsToID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportsToID(v)
		return nil
	case position.FieldEscalatesToID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalatesToID(v)
		return nil
	}
	return fmt.Errorf("unknown Position field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PositionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PositionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PositionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Position numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PositionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(position.FieldReportsToID) {
		fields = append(fields, position.FieldReportsToID)
	}
	if m.FieldCleared(position.FieldEscalatesToID) {
		fields = append(fields, position.FieldEscalatesToID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PositionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PositionMutation) ClearField(name string) error {
	switch name {
	case position.FieldReportsToID:
		m.ClearReportsToID()
		return nil
	case position.FieldEscalatesToID:
		m.ClearEscalatesToID()
		return nil
	}
	return fmt.Errorf("unknown Position nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PositionMutation) ResetField(name string) error {
	switch name {
	case position.FieldTitle:
		m.ResetTitle()
		return nil
	case position.FieldReportsToID:
		m.ResetReportsToID()
		return nil
	case position.FieldEscalatesToID:
		m.ResetEscalatesToID()
		return nil
	}
	return fmt.Errorf("unknown Position field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PositionMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.role != nil {
		edges = append(edges, position.EdgeRole)
	}
	if m.reports_to != nil {
		edges = append(edges, position.EdgeReportsTo)
	}
	if m.reports != nil {
		edges = append(edges, position.EdgeReports)
	}
	if m.escalates_to != nil {
		edges = append(edges, position.EdgeEscalatesTo)
	}
	if m.escalations != nil {
		edges = append(edges, position.EdgeEscalations)
	}
	if m.agents != nil {
		edges = append(edges, position.EdgeAgents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PositionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case position.EdgeRole:
		if id := m.role; id != nil {
			return []ent.Value{*id}
		}
	case position.EdgeReportsTo:
		if id := m.reports_to; id != nil {
			return []ent.Value{*id}
		}
	case position.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	case position.EdgeEscalatesTo:
		if id := m.escalates_to; id != nil {
			return []ent.Value{*id}
		}
	case position.EdgeEscalations:
		ids := make([]ent.Value, 0, len(m.escalations))
		for id := range m.escalations {
			ids = append(ids, id)
		}
		return ids
	case position.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PositionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedreports != nil {
		edges = append(edges, position.EdgeReports)
	}
	if m.removedescalations != nil {
		edges = append(edges, position.EdgeEscalations)
	}
	if m.removedagents != nil {
		edges = append(edges, position.EdgeAgents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PositionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case position.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	case position.EdgeEscalations:
		ids := make([]ent.Value, 0, len(m.removedescalations))
		for id := range m.removedescalations {
			ids = append(ids, id)
		}
		return ids
	case position.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PositionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedrole {
		edges = append(edges, position.EdgeRole)
	}
	if m.clearedreports_to {
		edges = append(edges, position.EdgeReportsTo)
	}
	if m.clearedreports {
		edges = append(edges, position.EdgeReports)
	}
	if m.clearedescalates_to {
		edges = append(edges, position.EdgeEscalatesTo)
	}
	if m.clearedescalations {
		edges = append(edges, position.EdgeEscalations)
	}
	if m.clearedagents {
		edges = append(edges, position.EdgeAgents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PositionMutation) EdgeCleared(name string) bool {
	switch name {
	case position.EdgeRole:
		return m.clearedrole
	case position.EdgeReportsTo:
		return m.clearedreports_to
	case position.EdgeReports:
		return m.clearedreports
	case position.EdgeEscalatesTo:
		return m.clearedescalates_to
	case position.EdgeEscalations:
		return m.clearedescalations
	case position.EdgeAgents:
		return m.clearedagents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PositionMutation) ClearEdge(name string) error {
	switch name {
	case position.EdgeRole:
		m.ClearRole()
		return nil
	case position.EdgeReportsTo:
		m.ClearReportsTo()
		return nil
	case position.EdgeEscalatesTo:
		m.ClearEscalatesTo()
		return nil
	}
	return fmt.Errorf("unknown Position unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PositionMutation) ResetEdge(name string) error {
	switch name {
	case position.EdgeRole:
		m.ResetRole()
		return nil
	case position.EdgeReportsTo:
		m.ResetReportsTo()
		return nil
	case position.EdgeReports:
		m.ResetReports()
		return nil
	case position.EdgeEscalatesTo:
		m.ResetEscalatesTo()
		return nil
	case position.EdgeEscalations:
		m.ResetEscalations()
		return nil
	case position.EdgeAgents:
		m.ResetAgents()
		return nil
	}
	return fmt.Errorf("unknown Position edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	slug                    *string
	name                    *string
	_path                   *string
	git_origin_url          *string
	git_branch              *string
	inference_paused        *bool
	inference_paused_reason *string
	inference_paused_at     *time.Time
	created_at              *time.Time
	clearedFields           map[string]struct{}
	agents                  map[int]struct{}
	removedagents           map[int]struct{}
	clearedagents           bool
	events                  map[int]struct{}
	removedevents           map[int]struct{}
	clearedevents           bool
	activity_metrics        map[int]struct{}
	removedactivity_metrics map[int]struct{}
	clearedactivity_metrics bool
	inference_calls         map[int]struct{}
	removedinference_calls  map[int]struct{}
	clearedinference_calls  bool
	done                    bool
	oldValue                func(context.Context) (*Project, error)
	predicates              []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id int) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *ProjectMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ProjectMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ProjectMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetPath sets the "path" field.
func (m *ProjectMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ProjectMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ProjectMutation) ResetPath() {
	m._path = nil
}

// SetGitOriginURL sets the "git_origin_url" field.
func (m *ProjectMutation) SetGitOriginURL(s string) {
	m.git_origin_url = &s
}

// GitOriginURL returns the value of the "git_origin_url" field in the mutation.
func (m *ProjectMutation) GitOriginURL() (r string, exists bool) {
	v := m.git_origin_url
	if v == nil {
		return
	}
	return *v, true
}

// OldGitOriginURL returns the old "git_origin_url" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldGitOriginURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGitOriginURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGitOriginURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGitOriginURL: %w", err)
	}
	return oldValue.GitOriginURL, nil
}

// ClearGitOriginURL clears the value of the "git_origin_url" field.
func (m *ProjectMutation) ClearGitOriginURL() {
	m.git_origin_url = nil
	m.clearedFields[project.FieldGitOriginURL] = struct{}{}
}

// GitOriginURLCleared returns if the "git_origin_url" field was cleared in this mutation.
func (m *ProjectMutation) GitOriginURLCleared() bool {
	_, ok := m.clearedFields[project.FieldGitOriginURL]
	return ok
}

// ResetGitOriginURL resets all changes to the "git_origin_url" field.
func (m *ProjectMutation) ResetGitOriginURL() {
	m.git_origin_url = nil
	delete(m.clearedFields, project.FieldGitOriginURL)
}

// SetGitBranch sets the "git_branch" field.
func (m *ProjectMutation) SetGitBranch(s string) {
	m.git_branch = &s
}

// GitBranch returns the value of the "git_branch" field in the mutation.
func (m *ProjectMutation) GitBranch() (r string, exists bool) {
	v := m.git_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldGitBranch returns the old "git_branch" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldGitBranch(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGitBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGitBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGitBranch: %w", err)
	}
	return oldValue.GitBranch, nil
}

// ClearGitBranch clears the value of the "git_branch" field.
func (m *ProjectMutation) ClearGitBranch() {
	m.git_branch = nil
	m.clearedFields[project.FieldGitBranch] = struct{}{}
}

// GitBranchCleared returns if the "git_branch" field was cleared in this mutation.
func (m *ProjectMutation) GitBranchCleared() bool {
	_, ok := m.clearedFields[project.FieldGitBranch]
	return ok
}

// ResetGitBranch resets all changes to the "git_branch" field.
func (m *ProjectMutation) ResetGitBranch() {
	m.git_branch = nil
	delete(m.clearedFields, project.FieldGitBranch)
}

// SetInferencePaused sets the "inference_paused" field.
func (m *ProjectMutation) SetInferencePaused(b bool) {
	m.inference_paused = &b
}

// InferencePaused returns the value of the "inference_paused" field in the mutation.
func (m *ProjectMutation) InferencePaused() (r bool, exists bool) {
	v := m.inference_paused
	if v == nil {
		return
	}
	return *v, true
}

// OldInferencePaused returns the old "inference_paused" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldInferencePaused(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInferencePaused is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInferencePaused requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInferencePaused: %w", err)
	}
	return oldValue.InferencePaused, nil
}

// ResetInferencePaused resets all changes to the "inference_paused" field.
func (m *ProjectMutation) ResetInferencePaused() {
	m.inference_paused = nil
}

// SetInferencePausedReason sets the "inference_paused_reason" field.
func (m *ProjectMutation) SetInferencePausedReason(s string) {
	m.inference_paused_reason = &s
}

// InferencePausedReason returns the value of the "inference_paused_reason" field in the mutation.
func (m *ProjectMutation) InferencePausedReason() (r string, exists bool) {
	v := m.inference_paused_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldInferencePausedReason returns the old "inference_paused_reason" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldInferencePausedReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInferencePausedReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInferencePausedReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInferencePausedReason: %w", err)
	}
	return oldValue.InferencePausedReason, nil
}

// ClearInferencePausedReason clears the value of the "inference_paused_reason" field.
func (m *ProjectMutation) ClearInferencePausedReason() {
	m.inference_paused_reason = nil
	m.clearedFields[project.FieldInferencePausedReason] = struct{}{}
}

// InferencePausedReasonCleared returns if the "inference_paused_reason" field was cleared in this mutation.
func (m *ProjectMutation) InferencePausedReasonCleared() bool {
	_, ok := m.clearedFields[project.FieldInferencePausedReason]
	return ok
}

// ResetInferencePausedReason resets all changes to the "inference_paused_reason" field.
func (m *ProjectMutation) ResetInferencePausedReason() {
	m.inference_paused_reason = nil
	delete(m.clearedFields, project.FieldInferencePausedReason)
}

// SetInferencePausedAt sets the "inference_paused_at" field.
func (m *ProjectMutation) SetInferencePausedAt(t time.Time) {
	m.inference_paused_at = &t
}

// InferencePausedAt returns the value of the "inference_paused_at" field in the mutation.
func (m *ProjectMutation) InferencePausedAt() (r time.Time, exists bool) {
	v := m.inference_paused_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInferencePausedAt returns the old "inference_paused_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldInferencePausedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInferencePausedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInferencePausedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInferencePausedAt: %w", err)
	}
	return oldValue.InferencePausedAt, nil
}

// ClearInferencePausedAt clears the value of the "inference_paused_at" field.
func (m *ProjectMutation) ClearInferencePausedAt() {
	m.inference_paused_at = nil
	m.clearedFields[project.FieldInferencePausedAt] = struct{}{}
}

// InferencePausedAtCleared returns if the "inference_paused_at" field was cleared in this mutation.
func (m *ProjectMutation) InferencePausedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldInferencePausedAt]
	return ok
}

// ResetInferencePausedAt resets all changes to the "inference_paused_at" field.
func (m *ProjectMutation) ResetInferencePausedAt() {
	m.inference_paused_at = nil
	delete(m.clearedFields, project.FieldInferencePausedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *ProjectMutation) AddAgentIDs(ids ...int) {
	if m.agents == nil {
		m.agents = make(map[int]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *ProjectMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *ProjectMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *ProjectMutation) RemoveAgentIDs(ids ...int) {
	if m.removedagents == nil {
		m.removedagents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *ProjectMutation) RemovedAgentsIDs() (ids []int) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *ProjectMutation) AgentsIDs() (ids []int) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *ProjectMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ProjectMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ProjectMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ProjectMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ProjectMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ProjectMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ProjectMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ProjectMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddActivityMetricIDs adds the "activity_metrics" edge to the ActivityMetric entity by ids.
func (m *ProjectMutation) AddActivityMetricIDs(ids ...int) {
	if m.activity_metrics == nil {
		m.activity_metrics = make(map[int]struct{})
	}
	for i := range ids {
		m.activity_metrics[ids[i]] = struct{}{}
	}
}

// ClearActivityMetrics clears the "activity_metrics" edge to the ActivityMetric entity.
func (m *ProjectMutation) ClearActivityMetrics() {
	m.clearedactivity_metrics = true
}

// ActivityMetricsCleared reports if the "activity_metrics" edge to the ActivityMetric entity was cleared.
func (m *ProjectMutation) ActivityMetricsCleared() bool {
	return m.clearedactivity_metrics
}

// RemoveActivityMetricIDs removes the "activity_metrics" edge to the ActivityMetric entity by IDs.
func (m *ProjectMutation) RemoveActivityMetricIDs(ids ...int) {
	if m.removedactivity_metrics == nil {
		m.removedactivity_metrics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activity_metrics, ids[i])
		m.removedactivity_metrics[ids[i]] = struct{}{}
	}
}

// RemovedActivityMetrics returns the removed IDs of the "activity_metrics" edge to the ActivityMetric entity.
func (m *ProjectMutation) RemovedActivityMetricsIDs() (ids []int) {
	for id := range m.removedactivity_metrics {
		ids = append(ids, id)
	}
	return
}

// ActivityMetricsIDs returns the "activity_metrics" edge IDs in the mutation.
func (m *ProjectMutation) ActivityMetricsIDs() (ids []int) {
	for id := range m.activity_metrics {
		ids = append(ids, id)
	}
	return
}

// ResetActivityMetrics resets all changes to the "activity_metrics" edge.
func (m *ProjectMutation) ResetActivityMetrics() {
	m.activity_metrics = nil
	m.clearedactivity_metrics = false
	m.removedactivity_metrics = nil
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by ids.
func (m *ProjectMutation) AddInferenceCallIDs(ids ...int) {
	if m.inference_calls == nil {
		m.inference_calls = make(map[int]struct{})
	}
	for i := range ids {
		m.inference_calls[ids[i]] = struct{}{}
	}
}

// ClearInferenceCalls clears the "inference_calls" edge to the InferenceCall entity.
func (m *ProjectMutation) ClearInferenceCalls() {
	m.clearedinference_calls = true
}

// InferenceCallsCleared reports if the "inference_calls" edge to the InferenceCall entity was cleared.
func (m *ProjectMutation) InferenceCallsCleared() bool {
	return m.clearedinference_calls
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to the InferenceCall entity by IDs.
func (m *ProjectMutation) RemoveInferenceCallIDs(ids ...int) {
	if m.removedinference_calls == nil {
		m.removedinference_calls = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.inference_calls, ids[i])
		m.removedinference_calls[ids[i]] = struct{}{}
	}
}

// RemovedInferenceCalls returns the removed IDs of the "inference_calls" edge to the InferenceCall entity.
func (m *ProjectMutation) RemovedInferenceCallsIDs() (ids []int) {
	for id := range m.removedinference_calls {
		ids = append(ids, id)
	}
	return
}

// InferenceCallsIDs returns the "inference_calls" edge IDs in the mutation.
func (m *ProjectMutation) InferenceCallsIDs() (ids []int) {
	for id := range m.inference_calls {
		ids = append(ids, id)
	}
	return
}

// ResetInferenceCalls resets all changes to the "inference_calls" edge.
func (m *ProjectMutation) ResetInferenceCalls() {
	m.inference_calls = nil
	m.clearedinference_calls = false
	m.removedinference_calls = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.slug != nil {
		fields = append(fields, project.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m._path != nil {
		fields = append(fields, project.FieldPath)
	}
	if m.git_origin_url != nil {
		fields = append(fields, project.FieldGitOriginURL)
	}
	if m.git_branch != nil {
		fields = append(fields, project.FieldGitBranch)
	}
	if m.inference_paused != nil {
		fields = append(fields, project.FieldInferencePaused)
	}
	if m.inference_paused_reason != nil {
		fields = append(fields, project.FieldInferencePausedReason)
	}
	if m.inference_paused_at != nil {
		fields = append(fields, project.FieldInferencePausedAt)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldSlug:
		return m.Slug()
	case project.FieldName:
		return m.Name()
	case project.FieldPath:
		return m.Path()
	case project.FieldGitOriginURL:
		return m.GitOriginURL()
	case project.FieldGitBranch:
		return m.GitBranch()
	case project.FieldInferencePaused:
		return m.InferencePaused()
	case project.FieldInferencePausedReason:
		return m.InferencePausedReason()
	case project.FieldInferencePausedAt:
		return m.InferencePausedAt()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldSlug:
		return m.OldSlug(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldPath:
		return m.OldPath(ctx)
	case project.FieldGitOriginURL:
		return m.OldGitOriginURL(ctx)
	case project.FieldGitBranch:
		return m.OldGitBranch(ctx)
	case project.FieldInferencePaused:
		return m.OldInferencePaused(ctx)
	case project.FieldInferencePausedReason:
		return m.OldInferencePausedReason(ctx)
	case project.FieldInferencePausedAt:
		return m.OldInferencePausedAt(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case project.FieldGitOriginURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGitOriginURL(v)
		return nil
	case project.FieldGitBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGitBranch(v)
		return nil
	case project.FieldInferencePaused:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInferencePaused(v)
		return nil
	case project.FieldInferencePausedReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInferencePausedReason(v)
		return nil
	case project.FieldInferencePausedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInferencePausedAt(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldGitOriginURL) {
		fields = append(fields, project.FieldGitOriginURL)
	}
	if m.FieldCleared(project.FieldGitBranch) {
		fields = append(fields, project.FieldGitBranch)
	}
	if m.FieldCleared(project.FieldInferencePausedReason) {
		fields = append(fields, project.FieldInferencePausedReason)
	}
	if m.FieldCleared(project.FieldInferencePausedAt) {
		fields = append(fields, project.FieldInferencePausedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldGitOriginURL:
		m.ClearGitOriginURL()
		return nil
	case project.FieldGitBranch:
		m.ClearGitBranch()
		return nil
	case project.FieldInferencePausedReason:
		m.ClearInferencePausedReason()
		return nil
	case project.FieldInferencePausedAt:
		m.ClearInferencePausedAt()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldSlug:
		m.ResetSlug()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldPath:
		m.ResetPath()
		return nil
	case project.FieldGitOriginURL:
		m.ResetGitOriginURL()
		return nil
	case project.FieldGitBranch:
		m.ResetGitBranch()
		return nil
	case project.FieldInferencePaused:
		m.ResetInferencePaused()
		return nil
	case project.FieldInferencePausedReason:
		m.ResetInferencePausedReason()
		return nil
	case project.FieldInferencePausedAt:
		m.ResetInferencePausedAt()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.agents != nil {
		edges = append(edges, project.EdgeAgents)
	}
	if m.events != nil {
		edges = append(edges, project.EdgeEvents)
	}
	if m.activity_metrics != nil {
		edges = append(edges, project.EdgeActivityMetrics)
	}
	if m.inference_calls != nil {
		edges = append(edges, project.EdgeInferenceCalls)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeActivityMetrics:
		ids := make([]ent.Value, 0, len(m.activity_metrics))
		for id := range m.activity_metrics {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeInferenceCalls:
		ids := make([]ent.Value, 0, len(m.inference_calls))
		for id := range m.inference_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedagents != nil {
		edges = append(edges, project.EdgeAgents)
	}
	if m.removedevents != nil {
		edges = append(edges, project.EdgeEvents)
	}
	if m.removedactivity_metrics != nil {
		edges = append(edges, project.EdgeActivityMetrics)
	}
	if m.removedinference_calls != nil {
		edges = append(edges, project.EdgeInferenceCalls)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeActivityMetrics:
		ids := make([]ent.Value, 0, len(m.removedactivity_metrics))
		for id := range m.removedactivity_metrics {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeInferenceCalls:
		ids := make([]ent.Value, 0, len(m.removedinference_calls))
		for id := range m.removedinference_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedagents {
		edges = append(edges, project.EdgeAgents)
	}
	if m.clearedevents {
		edges = append(edges, project.EdgeEvents)
	}
	if m.clearedactivity_metrics {
		edges = append(edges, project.EdgeActivityMetrics)
	}
	if m.clearedinference_calls {
		edges = append(edges, project.EdgeInferenceCalls)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeAgents:
		return m.clearedagents
	case project.EdgeEvents:
		return m.clearedevents
	case project.EdgeActivityMetrics:
		return m.clearedactivity_metrics
	case project.EdgeInferenceCalls:
		return m.clearedinference_calls
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeAgents:
		m.ResetAgents()
		return nil
	case project.EdgeEvents:
		m.ResetEvents()
		return nil
	case project.EdgeActivityMetrics:
		m.ResetActivityMetrics()
		return nil
	case project.EdgeInferenceCalls:
		m.ResetInferenceCalls()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// RoleMutation represents an operation that mutates the Role nodes in the graph.
type RoleMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	name                *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	organisation        *int
	clearedorganisation bool
	personas            map[int]struct{}
	removedpersonas     map[int]struct{}
	clearedpersonas     bool
	positions           map[int]struct{}
	removedpositions    map[int]struct{}
	clearedpositions    bool
	done                bool
	oldValue            func(context.Context) (*Role, error)
	predicates          []predicate.Role
}

var _ ent.Mutation = (*RoleMutation)(nil)

// roleOption allows management of the mutation configuration using functional options.
type roleOption func(*RoleMutation)

// newRoleMutation creates new mutation for the Role entity.
func newRoleMutation(c config, op Op, opts ...roleOption) *RoleMutation {
	m := &RoleMutation{
		config:        c,
		op:            op,
		typ:           TypeRole,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoleID sets the ID field of the mutation.
func withRoleID(id int) roleOption {
	return func(m *RoleMutation) {
		var (
			err   error
			once  sync.Once
			value *Role
		)
		m.oldValue = func(ctx context.Context) (*Role, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Role.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRole sets the old Role of the mutation.
func withRole(node *Role) roleOption {
	return func(m *RoleMutation) {
		m.oldValue = func(context.Context) (*Role, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Role.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RoleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RoleMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Role entity.
// If the Role object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RoleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOrganisationID sets the "organisation" edge to the Organisation entity by id.
func (m *RoleMutation) SetOrganisationID(id int) {
	m.organisation = &id
}

// ClearOrganisation clears the "organisation" edge to the Organisation entity.
func (m *RoleMutation) ClearOrganisation() {
	m.clearedorganisation = true
}

// OrganisationCleared reports if the "organisation" edge to the Organisation entity was cleared.
func (m *RoleMutation) OrganisationCleared() bool {
	return m.clearedorganisation
}

// OrganisationID returns the "organisation" edge ID in the mutation.
func (m *RoleMutation) OrganisationID() (id int, exists bool) {
	if m.organisation != nil {
		return *m.organisation, true
	}
	return
}

// OrganisationIDs returns the "organisation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganisationID instead. It exists only for internal usage by the builders.
func (m *RoleMutation) OrganisationIDs() (ids []int) {
	if id := m.organisation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganisation resets all changes to the "organisation" edge.
func (m *RoleMutation) ResetOrganisation() {
	m.organisation = nil
	m.clearedorganisation = false
}

// AddPersonaIDs adds the "personas" edge to the Persona entity by ids.
func (m *RoleMutation) AddPersonaIDs(ids ...int) {
	if m.personas == nil {
		m.personas = make(map[int]struct{})
	}
	for i := range ids {
		m.personas[ids[i]] = struct{}{}
	}
}

// ClearPersonas clears the "personas" edge to the Persona entity.
func (m *RoleMutation) ClearPersonas() {
	m.clearedpersonas = true
}

// PersonasCleared reports if the "personas" edge to the Persona entity was cleared.
func (m *RoleMutation) PersonasCleared() bool {
	return m.clearedpersonas
}

// RemovePersonaIDs removes the "personas" edge to the Persona entity by IDs.
func (m *RoleMutation) RemovePersonaIDs(ids ...int) {
	if m.removedpersonas == nil {
		m.removedpersonas = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.personas, ids[i])
		m.removedpersonas[ids[i]] = struct{}{}
	}
}

// RemovedPersonas returns the removed IDs of the "personas" edge to the Persona entity.
func (m *RoleMutation) RemovedPersonasIDs() (ids []int) {
	for id := range m.removedpersonas {
		ids = append(ids, id)
	}
	return
}

// PersonasIDs returns the "personas" edge IDs in the mutation.
func (m *RoleMutation) PersonasIDs() (ids []int) {
	for id := range m.personas {
		ids = append(ids, id)
	}
	return
}

// ResetPersonas resets all changes to the "personas" edge.
func (m *RoleMutation) ResetPersonas() {
	m.personas = nil
	m.clearedpersonas = false
	m.removedpersonas = nil
}

// AddPositionIDs adds the "positions" edge to the Position entity by ids.
func (m *RoleMutation) AddPositionIDs(ids ...int) {
	if m.positions == nil {
		m.positions = make(map[int]struct{})
	}
	for i := range ids {
		m.positions[ids[i]] = struct{}{}
	}
}

// ClearPositions clears the "positions" edge to the Position entity.
func (m *RoleMutation) ClearPositions() {
	m.clearedpositions = true
}

// PositionsCleared reports if the "positions" edge to the Position entity was cleared.
func (m *RoleMutation) PositionsCleared() bool {
	return m.clearedpositions
}

// RemovePositionIDs removes the "positions" edge to the Position entity by IDs.
func (m *RoleMutation) RemovePositionIDs(ids ...int) {
	if m.removedpositions == nil {
		m.removedpositions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.positions, ids[i])
		m.removedpositions[ids[i]] = struct{}{}
	}
}

// RemovedPositions returns the removed IDs of the "positions" edge to the Position entity.
func (m *RoleMutation) RemovedPositionsIDs() (ids []int) {
	for id := range m.removedpositions {
		ids = append(ids, id)
	}
	return
}

// PositionsIDs returns the "positions" edge IDs in the mutation.
func (m *RoleMutation) PositionsIDs() (ids []int) {
	for id := range m.positions {
		ids = append(ids, id)
	}
	return
}

// ResetPositions resets all changes to the "positions" edge.
func (m *RoleMutation) ResetPositions() {
	m.positions = nil
	m.clearedpositions = false
	m.removedpositions = nil
}

// Where appends a list predicates to the RoleMutation builder.
func (m *RoleMutation) Where(ps ...predicate.Role) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Role, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Role).
func (m *RoleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoleMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, role.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, role.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case role.FieldName:
		return m.Name()
	case role.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case role.FieldName:
		return m.OldName(ctx)
	case role.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Role field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case role.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case role.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Role field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Role numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Role nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoleMutation) ResetField(name string) error {
	switch name {
	case role.FieldName:
		m.ResetName()
		return nil
	case role.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Role field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoleMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.organisation != nil {
		edges = append(edges, role.EdgeOrganisation)
	}
	if m.personas != nil {
		edges = append(edges, role.EdgePersonas)
	}
	if m.positions != nil {
		edges = append(edges, role.EdgePositions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case role.EdgeOrganisation:
		if id := m.organisation; id != nil {
			return []ent.Value{*id}
		}
	case role.EdgePersonas:
		ids := make([]ent.Value, 0, len(m.personas))
		for id := range m.personas {
			ids = append(ids, id)
		}
		return ids
	case role.EdgePositions:
		ids := make([]ent.Value, 0, len(m.positions))
		for id := range m.positions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedpersonas != nil {
		edges = append(edges, role.EdgePersonas)
	}
	if m.removedpositions != nil {
		edges = append(edges, role.EdgePositions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case role.EdgePersonas:
		ids := make([]ent.Value, 0, len(m.removedpersonas))
		for id := range m.removedpersonas {
			ids = append(ids, id)
		}
		return ids
	case role.EdgePositions:
		ids := make([]ent.Value, 0, len(m.removedpositions))
		for id := range m.removedpositions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedorganisation {
		edges = append(edges, role.EdgeOrganisation)
	}
	if m.clearedpersonas {
		edges = append(edges, role.EdgePersonas)
	}
	if m.clearedpositions {
		edges = append(edges, role.EdgePositions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoleMutation) EdgeCleared(name string) bool {
	switch name {
	case role.EdgeOrganisation:
		return m.clearedorganisation
	case role.EdgePersonas:
		return m.clearedpersonas
	case role.EdgePositions:
		return m.clearedpositions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoleMutation) ClearEdge(name string) error {
	switch name {
	case role.EdgeOrganisation:
		m.ClearOrganisation()
		return nil
	}
	return fmt.Errorf("unknown Role unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoleMutation) ResetEdge(name string) error {
	switch name {
	case role.EdgeOrganisation:
		m.ResetOrganisation()
		return nil
	case role.EdgePersonas:
		m.ResetPersonas()
		return nil
	case role.EdgePositions:
		m.ResetPositions()
		return nil
	}
	return fmt.Errorf("unknown Role edge %s", name)
}

// TurnMutation represents an operation that mutates the Turn nodes in the graph.
type TurnMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	actor                  *turn.Actor
	intent                 *turn.Intent
	text                   *string
	timestamp              *time.Time
	timestamp_source       *turn.TimestampSource
	jsonl_entry_hash       *string
	is_internal            *bool
	tool_input             *map[string]interface{}
	file_metadata          *map[string]interface{}
	summary                *string
	summary_generated_at   *time.Time
	clearedFields          map[string]struct{}
	command                *int
	clearedcommand         bool
	answered_by            *int
	clearedanswered_by     bool
	answers                map[int]struct{}
	removedanswers         map[int]struct{}
	clearedanswers         bool
	events                 map[int]struct{}
	removedevents          map[int]struct{}
	clearedevents          bool
	inference_calls        map[int]struct{}
	removedinference_calls map[int]struct{}
	clearedinference_calls bool
	done                   bool
	oldValue               func(context.Context) (*Turn, error)
	predicates             []predicate.Turn
}

var _ ent.Mutation = (*TurnMutation)(nil)

// turnOption allows management of the mutation configuration using functional options.
type turnOption func(*TurnMutation)

// newTurnMutation creates new mutation for the Turn entity.
func newTurnMutation(c config, op Op, opts ...turnOption) *TurnMutation {
	m := &TurnMutation{
		config:        c,
		op:            op,
		typ:           TypeTurn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTurnID sets the ID field of the mutation.
func withTurnID(id int) turnOption {
	return func(m *TurnMutation) {
		var (
			err   error
			once  sync.Once
			value *Turn
		)
		m.oldValue = func(ctx context.Context) (*Turn, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Turn.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTurn sets the old Turn of the mutation.
func withTurn(node *Turn) turnOption {
	return func(m *TurnMutation) {
		m.oldValue = func(context.Context) (*Turn, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TurnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TurnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TurnMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TurnMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Turn.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCommandID sets the "command_id" field.
func (m *TurnMutation) SetCommandID(i int) {
	m.command = &i
}

// CommandID returns the value of the "command_id" field in the mutation.
func (m *TurnMutation) CommandID() (r int, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandID returns the old "command_id" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldCommandID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandID: %w", err)
	}
	return oldValue.CommandID, nil
}

// ResetCommandID resets all changes to the "command_id" field.
func (m *TurnMutation) ResetCommandID() {
	m.command = nil
}

// SetActor sets the "actor" field.
func (m *TurnMutation) SetActor(t turn.Actor) {
	m.actor = &t
}

// Actor returns the value of the "actor" field in the mutation.
func (m *TurnMutation) Actor() (r turn.Actor, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldActor(ctx context.Context) (v turn.Actor, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *TurnMutation) ResetActor() {
	m.actor = nil
}

// SetIntent sets the "intent" field.
func (m *TurnMutation) SetIntent(t turn.Intent) {
	m.intent = &t
}

// Intent returns the value of the "intent" field in the mutation.
func (m *TurnMutation) Intent() (r turn.Intent, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldIntent(ctx context.Context) (v turn.Intent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ResetIntent resets all changes to the "intent" field.
func (m *TurnMutation) ResetIntent() {
	m.intent = nil
}

// SetText sets the "text" field.
func (m *TurnMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *TurnMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *TurnMutation) ResetText() {
	m.text = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TurnMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TurnMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TurnMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetTimestampSource sets the "timestamp_source" field.
func (m *TurnMutation) SetTimestampSource(ts turn.TimestampSource) {
	m.timestamp_source = &ts
}

// TimestampSource returns the value of the "timestamp_source" field in the mutation.
func (m *TurnMutation) TimestampSource() (r turn.TimestampSource, exists bool) {
	v := m.timestamp_source
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestampSource returns the old "timestamp_source" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldTimestampSource(ctx context.Context) (v turn.TimestampSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestampSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestampSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestampSource: %w", err)
	}
	return oldValue.TimestampSource, nil
}

// ResetTimestampSource resets all changes to the "timestamp_source" field.
func (m *TurnMutation) ResetTimestampSource() {
	m.timestamp_source = nil
}

// SetJsonlEntryHash sets the "jsonl_entry_hash" field.
func (m *TurnMutation) SetJsonlEntryHash(s string) {
	m.jsonl_entry_hash = &s
}

// JsonlEntryHash returns the value of the "jsonl_entry_hash" field in the mutation.
func (m *TurnMutation) JsonlEntryHash() (r string, exists bool) {
	v := m.jsonl_entry_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldJsonlEntryHash returns the old "jsonl_entry_hash" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldJsonlEntryHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJsonlEntryHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJsonlEntryHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJsonlEntryHash: %w", err)
	}
	return oldValue.JsonlEntryHash, nil
}

// ClearJsonlEntryHash clears the value of the "jsonl_entry_hash" field.
func (m *TurnMutation) ClearJsonlEntryHash() {
	m.jsonl_entry_hash = nil
	m.clearedFields[turn.FieldJsonlEntryHash] = struct{}{}
}

// JsonlEntryHashCleared returns if the "jsonl_entry_hash" field was cleared in this mutation.
func (m *TurnMutation) JsonlEntryHashCleared() bool {
	_, ok := m.clearedFields[turn.FieldJsonlEntryHash]
	return ok
}

// ResetJsonlEntryHash resets all changes to the "jsonl_entry_hash" field.
func (m *TurnMutation) ResetJsonlEntryHash() {
	m.jsonl_entry_hash = nil
	delete(m.clearedFields, turn.FieldJsonlEntryHash)
}

// SetIsInternal sets the "is_internal" field.
func (m *TurnMutation) SetIsInternal(b bool) {
	m.is_internal = &b
}

// IsInternal returns the value of the "is_internal" field in the mutation.
func (m *TurnMutation) IsInternal() (r bool, exists bool) {
	v := m.is_internal
	if v == nil {
		return
	}
	return *v, true
}

// OldIsInternal returns the old "is_internal" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldIsInternal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsInternal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsInternal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsInternal: %w", err)
	}
	return oldValue.IsInternal, nil
}

// ResetIsInternal resets all changes to the "is_internal" field.
func (m *TurnMutation) ResetIsInternal() {
	m.is_internal = nil
}

// SetToolInput sets the "tool_input" field.
func (m *TurnMutation) SetToolInput(value map[string]interface{}) {
	m.tool_input = &value
}

// ToolInput returns the value of the "tool_input" field in the mutation.
func (m *TurnMutation) ToolInput() (r map[string]interface{}, exists bool) {
	v := m.tool_input
	if v == nil {
		return
	}
	return *v, true
}

// OldToolInput returns the old "tool_input" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldToolInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolInput: %w", err)
	}
	return oldValue.ToolInput, nil
}

// ClearToolInput clears the value of the "tool_input" field.
func (m *TurnMutation) ClearToolInput() {
	m.tool_input = nil
	m.clearedFields[turn.FieldToolInput] = struct{}{}
}

// ToolInputCleared returns if the "tool_input" field was cleared in this mutation.
func (m *TurnMutation) ToolInputCleared() bool {
	_, ok := m.clearedFields[turn.FieldToolInput]
	return ok
}

// ResetToolInput resets all changes to the "tool_input" field.
func (m *TurnMutation) ResetToolInput() {
	m.tool_input = nil
	delete(m.clearedFields, turn.FieldToolInput)
}

// SetFileMetadata sets the "file_metadata" field.
func (m *TurnMutation) SetFileMetadata(value map[string]interface{}) {
	m.file_metadata = &value
}

// FileMetadata returns the value of the "file_metadata" field in the mutation.
func (m *TurnMutation) FileMetadata() (r map[string]interface{}, exists bool) {
	v := m.file_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldFileMetadata returns the old "file_metadata" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldFileMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileMetadata: %w", err)
	}
	return oldValue.FileMetadata, nil
}

// ClearFileMetadata clears the value of the "file_metadata" field.
func (m *TurnMutation) ClearFileMetadata() {
	m.file_metadata = nil
	m.clearedFields[turn.FieldFileMetadata] = struct{}{}
}

// FileMetadataCleared returns if the "file_metadata" field was cleared in this mutation.
func (m *TurnMutation) FileMetadataCleared() bool {
	_, ok := m.clearedFields[turn.FieldFileMetadata]
	return ok
}

// ResetFileMetadata resets all changes to the "file_metadata" field.
func (m *TurnMutation) ResetFileMetadata() {
	m.file_metadata = nil
	delete(m.clearedFields, turn.FieldFileMetadata)
}

// SetAnsweredByTurnID sets the "answered_by_turn_id" field.
func (m *TurnMutation) SetAnsweredByTurnID(i int) {
	m.answered_by = &i
}

// AnsweredByTurnID returns the value of the "answered_by_turn_id" field in the mutation.
func (m *TurnMutation) AnsweredByTurnID() (r int, exists bool) {
	v := m.answered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredByTurnID returns the old "answered_by_turn_id" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldAnsweredByTurnID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredByTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredByTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredByTurnID: %w", err)
	}
	return oldValue.AnsweredByTurnID, nil
}

// ClearAnsweredByTurnID clears the value of the "answered_by_turn_id" field.
func (m *TurnMutation) ClearAnsweredByTurnID() {
	m.answered_by = nil
	m.clearedFields[turn.FieldAnsweredByTurnID] = struct{}{}
}

// AnsweredByTurnIDCleared returns if the "answered_by_turn_id" field was cleared in this mutation.
func (m *TurnMutation) AnsweredByTurnIDCleared() bool {
	_, ok := m.clearedFields[turn.FieldAnsweredByTurnID]
	return ok
}

// ResetAnsweredByTurnID resets all changes to the "answered_by_turn_id" field.
func (m *TurnMutation) ResetAnsweredByTurnID() {
	m.answered_by = nil
	delete(m.clearedFields, turn.FieldAnsweredByTurnID)
}

// SetSummary sets the "summary" field.
func (m *TurnMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *TurnMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *TurnMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[turn.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *TurnMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[turn.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *TurnMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, turn.FieldSummary)
}

// SetSummaryGeneratedAt sets the "summary_generated_at" field.
func (m *TurnMutation) SetSummaryGeneratedAt(t time.Time) {
	m.summary_generated_at = &t
}

// SummaryGeneratedAt returns the value of the "summary_generated_at" field in the mutation.
func (m *TurnMutation) SummaryGeneratedAt() (r time.Time, exists bool) {
	v := m.summary_generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryGeneratedAt returns the old "summary_generated_at" field's value of the Turn entity.
// If the Turn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnMutation) OldSummaryGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryGeneratedAt: %w", err)
	}
	return oldValue.SummaryGeneratedAt, nil
}

// ClearSummaryGeneratedAt clears the value of the "summary_generated_at" field.
func (m *TurnMutation) ClearSummaryGeneratedAt() {
	m.summary_generated_at = nil
	m.clearedFields[turn.FieldSummaryGeneratedAt] = struct{}{}
}

// SummaryGeneratedAtCleared returns if the "summary_generated_at" field was cleared in this mutation.
func (m *TurnMutation) SummaryGeneratedAtCleared() bool {
	_, ok := m.clearedFields[turn.FieldSummaryGeneratedAt]
	return ok
}

// ResetSummaryGeneratedAt resets all changes to the "summary_generated_at" field.
func (m *TurnMutation) ResetSummaryGeneratedAt() {
	m.summary_generated_at = nil
	delete(m.clearedFields, turn.FieldSummaryGeneratedAt)
}

// ClearCommand clears the "command" edge to the Command entity.
func (m *TurnMutation) ClearCommand() {
	m.clearedcommand = true
	m.clearedFields[turn.FieldCommandID] = struct{}{}
}

// CommandCleared reports if the "command" edge to the Command entity was cleared.
func (m *TurnMutation) CommandCleared() bool {
	return m.clearedcommand
}

// CommandIDs returns the "command" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CommandID instead. It exists only for internal usage by the builders.
func (m *TurnMutation) CommandIDs() (ids []int) {
	if id := m.command; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCommand resets all changes to the "command" edge.
func (m *TurnMutation) ResetCommand() {
	m.command = nil
	m.clearedcommand = false
}

// SetAnsweredByID sets the "answered_by" edge to the Turn entity by id.
func (m *TurnMutation) SetAnsweredByID(id int) {
	m.answered_by = &id
}

// ClearAnsweredBy clears the "answered_by" edge to the Turn entity.
func (m *TurnMutation) ClearAnsweredBy() {
	m.clearedanswered_by = true
	m.clearedFields[turn.FieldAnsweredByTurnID] = struct{}{}
}

// AnsweredByCleared reports if the "answered_by" edge to the Turn entity was cleared.
func (m *TurnMutation) AnsweredByCleared() bool {
	return m.AnsweredByTurnIDCleared() || m.clearedanswered_by
}

// AnsweredByID returns the "answered_by" edge ID in the mutation.
func (m *TurnMutation) AnsweredByID() (id int, exists bool) {
	if m.answered_by != nil {
		return *m.answered_by, true
	}
	return
}

// AnsweredByIDs returns the "answered_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnsweredByID instead. It exists only for internal usage by the builders.
func (m *TurnMutation) AnsweredByIDs() (ids []int) {
	if id := m.answered_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnsweredBy resets all changes to the "answered_by" edge.
func (m *TurnMutation) ResetAnsweredBy() {
	m.answered_by = nil
	m.clearedanswered_by = false
}

// AddAnswerIDs adds the "answers" edge to the Turn entity by ids.
func (m *TurnMutation) AddAnswerIDs(ids ...int) {
	if m.answers == nil {
		m.answers = make(map[int]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Turn entity.
func (m *TurnMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Turn entity was cleared.
func (m *TurnMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Turn entity by IDs.
func (m *TurnMutation) RemoveAnswerIDs(ids ...int) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Turn entity.
func (m *TurnMutation) RemovedAnswersIDs() (ids []int) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *TurnMutation) AnswersIDs() (ids []int) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *TurnMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *TurnMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *TurnMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *TurnMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *TurnMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *TurnMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TurnMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TurnMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by ids.
func (m *TurnMutation) AddInferenceCallIDs(ids ...int) {
	if m.inference_calls == nil {
		m.inference_calls = make(map[int]struct{})
	}
	for i := range ids {
		m.inference_calls[ids[i]] = struct{}{}
	}
}

// ClearInferenceCalls clears the "inference_calls" edge to the InferenceCall entity.
func (m *TurnMutation) ClearInferenceCalls() {
	m.clearedinference_calls = true
}

// InferenceCallsCleared reports if the "inference_calls" edge to the InferenceCall entity was cleared.
func (m *TurnMutation) InferenceCallsCleared() bool {
	return m.clearedinference_calls
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to the InferenceCall entity by IDs.
func (m *TurnMutation) RemoveInferenceCallIDs(ids ...int) {
	if m.removedinference_calls == nil {
		m.removedinference_calls = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.inference_calls, ids[i])
		m.removedinference_calls[ids[i]] = struct{}{}
	}
}

// RemovedInferenceCalls returns the removed IDs of the "inference_calls" edge to the InferenceCall entity.
func (m *TurnMutation) RemovedInferenceCallsIDs() (ids []int) {
	for id := range m.removedinference_calls {
		ids = append(ids, id)
	}
	return
}

// InferenceCallsIDs returns the "inference_calls" edge IDs in the mutation.
func (m *TurnMutation) InferenceCallsIDs() (ids []int) {
	for id := range m.inference_calls {
		ids = append(ids, id)
	}
	return
}

// ResetInferenceCalls resets all changes to the "inference_calls" edge.
func (m *TurnMutation) ResetInferenceCalls() {
	m.inference_calls = nil
	m.clearedinference_calls = false
	m.removedinference_calls = nil
}

// Where appends a list predicates to the TurnMutation builder.
func (m *TurnMutation) Where(ps ...predicate.Turn) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TurnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TurnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Turn, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TurnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TurnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Turn).
func (m *TurnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TurnMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.command != nil {
		fields = append(fields, turn.FieldCommandID)
	}
	if m.actor != nil {
		fields = append(fields, turn.FieldActor)
	}
	if m.intent != nil {
		fields = append(fields, turn.FieldIntent)
	}
	if m.text != nil {
		fields = append(fields, turn.FieldText)
	}
	if m.timestamp != nil {
		fields = append(fields, turn.FieldTimestamp)
	}
	if m.timestamp_source != nil {
		fields = append(fields, turn.FieldTimestampSource)
	}
	if m.jsonl_entry_hash != nil {
		fields = append(fields, turn.FieldJsonlEntryHash)
	}
	if m.is_internal != nil {
		fields = append(fields, turn.FieldIsInternal)
	}
	if m.tool_input != nil {
		fields = append(fields, turn.FieldToolInput)
	}
	if m.file_metadata != nil {
		fields = append(fields, turn.FieldFileMetadata)
	}
	if m.answered_by != nil {
		fields = append(fields, turn.FieldAnsweredByTurnID)
	}
	if m.summary != nil {
		fields = append(fields, turn.FieldSummary)
	}
	if m.summary_generated_at != nil {
		fields = append(fields, turn.FieldSummaryGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TurnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case turn.FieldCommandID:
		return m.CommandID()
	case turn.FieldActor:
		return m.Actor()
	case turn.FieldIntent:
		return m.Intent()
	case turn.FieldText:
		return m.Text()
	case turn.FieldTimestamp:
		return m.Timestamp()
	case turn.FieldTimestampSource:
		return m.TimestampSource()
	case turn.FieldJsonlEntryHash:
		return m.JsonlEntryHash()
	case turn.FieldIsInternal:
		return m.IsInternal()
	case turn.FieldToolInput:
		return m.ToolInput()
	case turn.FieldFileMetadata:
		return m.FileMetadata()
	case turn.FieldAnsweredByTurnID:
		return m.AnsweredByTurnID()
	case turn.FieldSummary:
		return m.Summary()
	case turn.FieldSummaryGeneratedAt:
		return m.SummaryGeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TurnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case turn.FieldCommandID:
		return m.OldCommandID(ctx)
	case turn.FieldActor:
		return m.OldActor(ctx)
	case turn.FieldIntent:
		return m.OldIntent(ctx)
	case turn.FieldText:
		return m.OldText(ctx)
	case turn.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case turn.FieldTimestampSource:
		return m.OldTimestampSource(ctx)
	case turn.FieldJsonlEntryHash:
		return m.OldJsonlEntryHash(ctx)
	case turn.FieldIsInternal:
		return m.OldIsInternal(ctx)
	case turn.FieldToolInput:
		return m.OldToolInput(ctx)
	case turn.FieldFileMetadata:
		return m.OldFileMetadata(ctx)
	case turn.FieldAnsweredByTurnID:
		return m.OldAnsweredByTurnID(ctx)
	case turn.FieldSummary:
		return m.OldSummary(ctx)
	case turn.FieldSummaryGeneratedAt:
		return m.OldSummaryGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Turn field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case turn.FieldCommandID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandID(v)
		return nil
	case turn.FieldActor:
		v, ok := value.(turn.Actor)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case turn.FieldIntent:
		v, ok := value.(turn.Intent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case turn.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case turn.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case turn.FieldTimestampSource:
		v, ok := value.(turn.TimestampSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestampSource(v)
		return nil
	case turn.FieldJsonlEntryHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJsonlEntryHash(v)
		return nil
	case turn.FieldIsInternal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsInternal(v)
		return nil
	case turn.FieldToolInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolInput(v)
		return nil
	case turn.FieldFileMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileMetadata(v)
		return nil
	case turn.FieldAnsweredByTurnID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredByTurnID(v)
		return nil
	case turn.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case turn.FieldSummaryGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Turn field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TurnMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TurnMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Turn numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TurnMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(turn.FieldJsonlEntryHash) {
		fields = append(fields, turn.FieldJsonlEntryHash)
	}
	if m.FieldCleared(turn.FieldToolInput) {
		fields = append(fields, turn.FieldToolInput)
	}
	if m.FieldCleared(turn.FieldFileMetadata) {
		fields = append(fields, turn.FieldFileMetadata)
	}
	if m.FieldCleared(turn.FieldAnsweredByTurnID) {
		fields = append(fields, turn.FieldAnsweredByTurnID)
	}
	if m.FieldCleared(turn.FieldSummary) {
		fields = append(fields, turn.FieldSummary)
	}
	if m.FieldCleared(turn.FieldSummaryGeneratedAt) {
		fields = append(fields, turn.FieldSummaryGeneratedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TurnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TurnMutation) ClearField(name string) error {
	switch name {
	case turn.FieldJsonlEntryHash:
		m.ClearJsonlEntryHash()
		return nil
	case turn.FieldToolInput:
		m.ClearToolInput()
		return nil
	case turn.FieldFileMetadata:
		m.ClearFileMetadata()
		return nil
	case turn.FieldAnsweredByTurnID:
		m.ClearAnsweredByTurnID()
		return nil
	case turn.FieldSummary:
		m.ClearSummary()
		return nil
	case turn.FieldSummaryGeneratedAt:
		m.ClearSummaryGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown Turn nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TurnMutation) ResetField(name string) error {
	switch name {
	case turn.FieldCommandID:
		m.ResetCommandID()
		return nil
	case turn.FieldActor:
		m.ResetActor()
		return nil
	case turn.FieldIntent:
		m.ResetIntent()
		return nil
	case turn.FieldText:
		m.ResetText()
		return nil
	case turn.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case turn.FieldTimestampSource:
		m.ResetTimestampSource()
		return nil
	case turn.FieldJsonlEntryHash:
		m.ResetJsonlEntryHash()
		return nil
	case turn.FieldIsInternal:
		m.ResetIsInternal()
		return nil
	case turn.FieldToolInput:
		m.ResetToolInput()
		return nil
	case turn.FieldFileMetadata:
		m.ResetFileMetadata()
		return nil
	case turn.FieldAnsweredByTurnID:
		m.ResetAnsweredByTurnID()
		return nil
	case turn.FieldSummary:
		m.ResetSummary()
		return nil
	case turn.FieldSummaryGeneratedAt:
		m.ResetSummaryGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown Turn field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TurnMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.command != nil {
		edges = append(edges, turn.EdgeCommand)
	}
	if m.answered_by != nil {
		edges = append(edges, turn.EdgeAnsweredBy)
	}
	if m.answers != nil {
		edges = append(edges, turn.EdgeAnswers)
	}
	if m.events != nil {
		edges = append(edges, turn.EdgeEvents)
	}
	if m.inference_calls != nil {
		edges = append(edges, turn.EdgeInferenceCalls)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TurnMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case turn.EdgeCommand:
		if id := m.command; id != nil {
			return []ent.Value{*id}
		}
	case turn.EdgeAnsweredBy:
		if id := m.answered_by; id != nil {
			return []ent.Value{*id}
		}
	case turn.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	case turn.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case turn.EdgeInferenceCalls:
		ids := make([]ent.Value, 0, len(m.inference_calls))
		for id := range m.inference_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TurnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedanswers != nil {
		edges = append(edges, turn.EdgeAnswers)
	}
	if m.removedevents != nil {
		edges = append(edges, turn.EdgeEvents)
	}
	if m.removedinference_calls != nil {
		edges = append(edges, turn.EdgeInferenceCalls)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TurnMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case turn.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	case turn.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case turn.EdgeInferenceCalls:
		ids := make([]ent.Value, 0, len(m.removedinference_calls))
		for id := range m.removedinference_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TurnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedcommand {
		edges = append(edges, turn.EdgeCommand)
	}
	if m.clearedanswered_by {
		edges = append(edges, turn.EdgeAnsweredBy)
	}
	if m.clearedanswers {
		edges = append(edges, turn.EdgeAnswers)
	}
	if m.clearedevents {
		edges = append(edges, turn.EdgeEvents)
	}
	if m.clearedinference_calls {
		edges = append(edges, turn.EdgeInferenceCalls)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TurnMutation) EdgeCleared(name string) bool {
	switch name {
	case turn.EdgeCommand:
		return m.clearedcommand
	case turn.EdgeAnsweredBy:
		return m.clearedanswered_by
	case turn.EdgeAnswers:
		return m.clearedanswers
	case turn.EdgeEvents:
		return m.clearedevents
	case turn.EdgeInferenceCalls:
		return m.clearedinference_calls
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TurnMutation) ClearEdge(name string) error {
	switch name {
	case turn.EdgeCommand:
		m.ClearCommand()
		return nil
	case turn.EdgeAnsweredBy:
		m.ClearAnsweredBy()
		return nil
	}
	return fmt.Errorf("unknown Turn unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TurnMutation) ResetEdge(name string) error {
	switch name {
	case turn.EdgeCommand:
		m.ResetCommand()
		return nil
	case turn.EdgeAnsweredBy:
		m.ResetAnsweredBy()
		return nil
	case turn.EdgeAnswers:
		m.ResetAnswers()
		return nil
	case turn.EdgeEvents:
		m.ResetEvents()
		return nil
	case turn.EdgeInferenceCalls:
		m.ResetInferenceCalls()
		return nil
	}
	return fmt.Errorf("unknown Turn edge %s", name)
}
