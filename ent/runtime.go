// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

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
	"github.com/headspace-sh/headspace/ent/schema"
	"github.com/headspace-sh/headspace/ent/turn"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activitymetricFields := schema.ActivityMetric{}.Fields()
	_ = activitymetricFields
	// activitymetricDescIsOverall is the schema descriptor for is_overall field.
	activitymetricDescIsOverall := activitymetricFields[1].Descriptor()
	// activitymetric.DefaultIsOverall holds the default value on creation for the is_overall field.
	activitymetric.DefaultIsOverall = activitymetricDescIsOverall.Default.(bool)
	// activitymetricDescTurnCount is the schema descriptor for turn_count field.
	activitymetricDescTurnCount := activitymetricFields[4].Descriptor()
	// activitymetric.DefaultTurnCount holds the default value on creation for the turn_count field.
	activitymetric.DefaultTurnCount = activitymetricDescTurnCount.Default.(int)
	// activitymetricDescCommandCount is the schema descriptor for command_count field.
	activitymetricDescCommandCount := activitymetricFields[5].Descriptor()
	// activitymetric.DefaultCommandCount holds the default value on creation for the command_count field.
	activitymetric.DefaultCommandCount = activitymetricDescCommandCount.Default.(int)
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescStartedAt is the schema descriptor for started_at field.
	agentDescStartedAt := agentFields[8].Descriptor()
	// agent.DefaultStartedAt holds the default value on creation for the started_at field.
	agent.DefaultStartedAt = agentDescStartedAt.Default.(func() time.Time)
	// agentDescLastSeenAt is the schema descriptor for last_seen_at field.
	agentDescLastSeenAt := agentFields[9].Descriptor()
	// agent.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	agent.DefaultLastSeenAt = agentDescLastSeenAt.Default.(func() time.Time)
	apicalllogFields := schema.ApiCallLog{}.Fields()
	_ = apicalllogFields
	// apicalllogDescAuthenticated is the schema descriptor for authenticated field.
	apicalllogDescAuthenticated := apicalllogFields[4].Descriptor()
	// apicalllog.DefaultAuthenticated holds the default value on creation for the authenticated field.
	apicalllog.DefaultAuthenticated = apicalllogDescAuthenticated.Default.(bool)
	// apicalllogDescTruncated is the schema descriptor for truncated field.
	apicalllogDescTruncated := apicalllogFields[8].Descriptor()
	// apicalllog.DefaultTruncated holds the default value on creation for the truncated field.
	apicalllog.DefaultTruncated = apicalllogDescTruncated.Default.(bool)
	// apicalllogDescCreatedAt is the schema descriptor for created_at field.
	apicalllogDescCreatedAt := apicalllogFields[9].Descriptor()
	// apicalllog.DefaultCreatedAt holds the default value on creation for the created_at field.
	apicalllog.DefaultCreatedAt = apicalllogDescCreatedAt.Default.(func() time.Time)
	commandFields := schema.Command{}.Fields()
	_ = commandFields
	// commandDescStartedAt is the schema descriptor for started_at field.
	commandDescStartedAt := commandFields[2].Descriptor()
	// command.DefaultStartedAt holds the default value on creation for the started_at field.
	command.DefaultStartedAt = commandDescStartedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[2].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	handoffFields := schema.Handoff{}.Fields()
	_ = handoffFields
	// handoffDescCreatedAt is the schema descriptor for created_at field.
	handoffDescCreatedAt := handoffFields[2].Descriptor()
	// handoff.DefaultCreatedAt holds the default value on creation for the created_at field.
	handoff.DefaultCreatedAt = handoffDescCreatedAt.Default.(func() time.Time)
	headspacesnapshotFields := schema.HeadspaceSnapshot{}.Fields()
	_ = headspacesnapshotFields
	// headspacesnapshotDescCapturedAt is the schema descriptor for captured_at field.
	headspacesnapshotDescCapturedAt := headspacesnapshotFields[1].Descriptor()
	// headspacesnapshot.DefaultCapturedAt holds the default value on creation for the captured_at field.
	headspacesnapshot.DefaultCapturedAt = headspacesnapshotDescCapturedAt.Default.(func() time.Time)
	inferencecallFields := schema.InferenceCall{}.Fields()
	_ = inferencecallFields
	// inferencecallDescCached is the schema descriptor for cached field.
	inferencecallDescCached := inferencecallFields[2].Descriptor()
	// inferencecall.DefaultCached holds the default value on creation for the cached field.
	inferencecall.DefaultCached = inferencecallDescCached.Default.(bool)
	// inferencecallDescPromptTokens is the schema descriptor for prompt_tokens field.
	inferencecallDescPromptTokens := inferencecallFields[3].Descriptor()
	// inferencecall.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	inferencecall.DefaultPromptTokens = inferencecallDescPromptTokens.Default.(int)
	// inferencecallDescCompletionTokens is the schema descriptor for completion_tokens field.
	inferencecallDescCompletionTokens := inferencecallFields[4].Descriptor()
	// inferencecall.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	inferencecall.DefaultCompletionTokens = inferencecallDescCompletionTokens.Default.(int)
	// inferencecallDescCostUsd is the schema descriptor for cost_usd field.
	inferencecallDescCostUsd := inferencecallFields[5].Descriptor()
	// inferencecall.DefaultCostUsd holds the default value on creation for the cost_usd field.
	inferencecall.DefaultCostUsd = inferencecallDescCostUsd.Default.(float64)
	// inferencecallDescLatencyMs is the schema descriptor for latency_ms field.
	inferencecallDescLatencyMs := inferencecallFields[6].Descriptor()
	// inferencecall.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	inferencecall.DefaultLatencyMs = inferencecallDescLatencyMs.Default.(int)
	// inferencecallDescCreatedAt is the schema descriptor for created_at field.
	inferencecallDescCreatedAt := inferencecallFields[7].Descriptor()
	// inferencecall.DefaultCreatedAt holds the default value on creation for the created_at field.
	inferencecall.DefaultCreatedAt = inferencecallDescCreatedAt.Default.(func() time.Time)
	objectiveFields := schema.Objective{}.Fields()
	_ = objectiveFields
	// objectiveDescText is the schema descriptor for text field.
	objectiveDescText := objectiveFields[0].Descriptor()
	// objective.TextValidator is a validator for the "text" field. It is called by the builders before save.
	objective.TextValidator = objectiveDescText.Validators[0].(func(string) error)
	// objectiveDescPriorityEnabled is the schema descriptor for priority_enabled field.
	objectiveDescPriorityEnabled := objectiveFields[1].Descriptor()
	// objective.DefaultPriorityEnabled holds the default value on creation for the priority_enabled field.
	objective.DefaultPriorityEnabled = objectiveDescPriorityEnabled.Default.(bool)
	// objectiveDescUpdatedAt is the schema descriptor for updated_at field.
	objectiveDescUpdatedAt := objectiveFields[2].Descriptor()
	// objective.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	objective.DefaultUpdatedAt = objectiveDescUpdatedAt.Default.(func() time.Time)
	// objective.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	objective.UpdateDefaultUpdatedAt = objectiveDescUpdatedAt.UpdateDefault.(func() time.Time)
	organisationFields := schema.Organisation{}.Fields()
	_ = organisationFields
	// organisationDescName is the schema descriptor for name field.
	organisationDescName := organisationFields[0].Descriptor()
	// organisation.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organisation.NameValidator = organisationDescName.Validators[0].(func(string) error)
	// organisationDescCreatedAt is the schema descriptor for created_at field.
	organisationDescCreatedAt := organisationFields[1].Descriptor()
	// organisation.DefaultCreatedAt holds the default value on creation for the created_at field.
	organisation.DefaultCreatedAt = organisationDescCreatedAt.Default.(func() time.Time)
	personaFields := schema.Persona{}.Fields()
	_ = personaFields
	// personaDescSlug is the schema descriptor for slug field.
	personaDescSlug := personaFields[0].Descriptor()
	// persona.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	persona.SlugValidator = personaDescSlug.Validators[0].(func(string) error)
	// personaDescName is the schema descriptor for name field.
	personaDescName := personaFields[1].Descriptor()
	// persona.NameValidator is a validator for the "name" field. It is called by the builders before save.
	persona.NameValidator = personaDescName.Validators[0].(func(string) error)
	// personaDescCreatedAt is the schema descriptor for created_at field.
	personaDescCreatedAt := personaFields[5].Descriptor()
	// persona.DefaultCreatedAt holds the default value on creation for the created_at field.
	persona.DefaultCreatedAt = personaDescCreatedAt.Default.(func() time.Time)
	positionFields := schema.Position{}.Fields()
	_ = positionFields
	// positionDescTitle is the schema descriptor for title field.
	positionDescTitle := positionFields[0].Descriptor()
	// position.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	position.TitleValidator = positionDescTitle.Validators[0].(func(string) error)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescSlug is the schema descriptor for slug field.
	projectDescSlug := projectFields[0].Descriptor()
	// project.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	project.SlugValidator = projectDescSlug.Validators[0].(func(string) error)
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescPath is the schema descriptor for path field.
	projectDescPath := projectFields[2].Descriptor()
	// project.PathValidator is a validator for the "path" field. It is called by the builders before save.
	project.PathValidator = projectDescPath.Validators[0].(func(string) error)
	// projectDescInferencePaused is the schema descriptor for inference_paused field.
	projectDescInferencePaused := projectFields[5].Descriptor()
	// project.DefaultInferencePaused holds the default value on creation for the inference_paused field.
	project.DefaultInferencePaused = projectDescInferencePaused.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[8].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	roleFields := schema.Role{}.Fields()
	_ = roleFields
	// roleDescName is the schema descriptor for name field.
	roleDescName := roleFields[0].Descriptor()
	// role.NameValidator is a validator for the "name" field. It is called by the builders before save.
	role.NameValidator = roleDescName.Validators[0].(func(string) error)
	// roleDescCreatedAt is the schema descriptor for created_at field.
	roleDescCreatedAt := roleFields[1].Descriptor()
	// role.DefaultCreatedAt holds the default value on creation for the created_at field.
	role.DefaultCreatedAt = roleDescCreatedAt.Default.(func() time.Time)
	turnFields := schema.Turn{}.Fields()
	_ = turnFields
	// turnDescIsInternal is the schema descriptor for is_internal field.
	turnDescIsInternal := turnFields[7].Descriptor()
	// turn.DefaultIsInternal holds the default value on creation for the is_internal field.
	turn.DefaultIsInternal = turnDescIsInternal.Default.(bool)
}
