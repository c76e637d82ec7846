// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityMetric is the predicate function for activitymetric builders.
type ActivityMetric func(*sql.Selector)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// ApiCallLog is the predicate function for apicalllog builders.
type ApiCallLog func(*sql.Selector)

// Command is the predicate function for command builders.
type Command func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Handoff is the predicate function for handoff builders.
type Handoff func(*sql.Selector)

// HeadspaceSnapshot is the predicate function for headspacesnapshot builders.
type HeadspaceSnapshot func(*sql.Selector)

// InferenceCall is the predicate function for inferencecall builders.
type InferenceCall func(*sql.Selector)

// Objective is the predicate function for objective builders.
type Objective func(*sql.Selector)

// Organisation is the predicate function for organisation builders.
type Organisation func(*sql.Selector)

// Persona is the predicate function for persona builders.
type Persona func(*sql.Selector)

// Position is the predicate function for position builders.
type Position func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Role is the predicate function for role builders.
type Role func(*sql.Selector)

// Turn is the predicate function for turn builders.
type Turn func(*sql.Selector)
