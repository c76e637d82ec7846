// Package hooks dispatches host lifecycle callbacks: it resolves the
// session to an agent, records the durable hook event, and routes
// state-bearing hooks through the correlator.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/turn"
	"github.com/headspace-sh/headspace/pkg/correlator"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/registry"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/statemachine"
)

// ActivityNoter is the watcher's interval-switching signal.
type ActivityNoter interface {
	NoteHookActivity()
}

// Request is the common body every hook carries.
type Request struct {
	SessionUUID      string `json:"claude_session_id" binding:"required"`
	WorkingDirectory string `json:"working_directory"`
	// Prompt is set on user_prompt_submit.
	Prompt string `json:"prompt"`
	// Message is set on notification.
	Message string `json:"message"`
	// Reason is set on session_end.
	Reason string `json:"reason"`
	// StopHookActive is set on stop.
	StopHookActive bool `json:"stop_hook_active"`
	// ToolName is set on post_tool_use.
	ToolName string `json:"tool_name"`
	// ToolError carries a failed tool's output on post_tool_use.
	ToolError string `json:"tool_error"`
}

// Receiver handles the five hook kinds.
type Receiver struct {
	registry *registry.Registry
	projects *services.ProjectService
	agents   *services.AgentService
	corr     *correlator.Correlator
	writer   *events.Writer
	pub      *events.Publisher
	noter    ActivityNoter
}

// NewReceiver creates a hook receiver.
func NewReceiver(
	reg *registry.Registry,
	projects *services.ProjectService,
	agents *services.AgentService,
	corr *correlator.Correlator,
	writer *events.Writer,
	pub *events.Publisher,
	noter ActivityNoter,
) *Receiver {
	return &Receiver{
		registry: reg,
		projects: projects,
		agents:   agents,
		corr:     corr,
		writer:   writer,
		pub:      pub,
		noter:    noter,
	}
}

func (r *Receiver) note() {
	if r.noter != nil {
		r.noter.NoteHookActivity()
	}
}

// resolveAgent maps the hook's session id to its agent row.
func (r *Receiver) resolveAgent(ctx context.Context, sessionUUID string) (*ent.Agent, error) {
	id, err := uuid.Parse(sessionUUID)
	if err != nil {
		return nil, services.NewValidationError("claude_session_id", "not a UUID")
	}
	return r.agents.GetBySessionUUID(ctx, id)
}

// SessionStart registers the session and creates the agent row.
func (r *Receiver) SessionStart(ctx context.Context, req Request) (*ent.Agent, error) {
	r.note()

	sessionUUID, err := uuid.Parse(req.SessionUUID)
	if err != nil {
		return nil, services.NewValidationError("claude_session_id", "not a UUID")
	}
	if req.WorkingDirectory == "" {
		return nil, services.NewValidationError("working_directory", "required on session_start")
	}

	project, err := r.projects.FindOrCreateByPath(ctx, req.WorkingDirectory)
	if err != nil {
		return nil, err
	}

	agent, err := r.agents.Register(ctx, services.RegisterInput{
		SessionUUID: sessionUUID,
		ProjectID:   project.ID,
	})
	if err != nil {
		return nil, err
	}

	r.registry.Register(req.SessionUUID, project.Path, req.WorkingDirectory)

	for _, w := range []events.WriteResult{
		r.writer.Write(ctx, events.EventTypeHookSessionStart, map[string]interface{}{
			"session_uuid":      req.SessionUUID,
			"working_directory": req.WorkingDirectory,
		}, events.WithAgent(agent.ID), events.WithProject(project.ID)),
		r.writer.Write(ctx, events.EventTypeSessionRegistered, map[string]interface{}{
			"session_uuid": req.SessionUUID,
			"project_path": project.Path,
		}, events.WithAgent(agent.ID), events.WithProject(project.ID)),
	} {
		if w.Err != nil {
			slog.Warn("Failed to record session_start events", "error", w.Err)
		}
	}

	r.publish(ctx, events.StreamSessionCreated, agent.ID, "session_start")
	r.publish(ctx, events.StreamCardRefresh, agent.ID, "session_start")

	slog.Info("Session registered", "session_uuid", req.SessionUUID, "agent_id", agent.ID, "project", project.Slug)
	return agent, nil
}

// SessionEnd terminates the agent and clears its runtime state.
func (r *Receiver) SessionEnd(ctx context.Context, req Request) error {
	r.note()

	agent, err := r.resolveAgent(ctx, req.SessionUUID)
	if err != nil {
		return err
	}

	reason := req.Reason
	if reason == "" {
		reason = "session_end"
	}

	// End-of-life mutation holds the agent lock so it cannot interleave
	// with a correlator transaction or a reaper pass.
	err = r.corr.WithAgentLock(ctx, agent.ID, func(ctx context.Context) error {
		if _, err := r.agents.End(ctx, agent.ID); err != nil {
			return fmt.Errorf("failed to end agent %d: %w", agent.ID, err)
		}
		r.registry.Remove(req.SessionUUID)
		r.corr.ForgetAgent(agent.ID)
		return nil
	})
	if err != nil {
		return err
	}

	for _, w := range []events.WriteResult{
		r.writer.Write(ctx, events.EventTypeHookSessionEnd, map[string]interface{}{
			"session_uuid": req.SessionUUID,
			"reason":       reason,
		}, events.WithAgent(agent.ID)),
		r.writer.Write(ctx, events.EventTypeSessionEnded, map[string]interface{}{
			"session_uuid": req.SessionUUID,
			"reason":       reason,
		}, events.WithAgent(agent.ID)),
	} {
		if w.Err != nil {
			slog.Warn("Failed to record session_end events", "error", w.Err)
		}
	}

	r.publish(ctx, events.StreamSessionEnded, agent.ID, reason)

	slog.Info("Session ended", "session_uuid", req.SessionUUID, "agent_id", agent.ID, "reason", reason)
	return nil
}

// UserPrompt records the prompt and feeds it to the correlator as a
// user turn.
func (r *Receiver) UserPrompt(ctx context.Context, req Request) (correlator.Outcome, error) {
	r.note()

	agent, err := r.resolveAgent(ctx, req.SessionUUID)
	if err != nil {
		return correlator.Outcome{}, err
	}
	if req.Prompt == "" {
		return correlator.Outcome{}, services.NewValidationError("prompt", "required on user_prompt_submit")
	}

	if w := r.writer.Write(ctx, events.EventTypeHookUserPrompt, map[string]interface{}{
		"session_uuid":   req.SessionUUID,
		"prompt_preview": previewText(req.Prompt),
	}, events.WithAgent(agent.ID)); w.Err != nil {
		slog.Warn("Failed to record user_prompt event", "error", w.Err)
	}

	r.registry.Touch(req.SessionUUID)

	return r.corr.ObserveTurn(ctx, agent, correlator.TurnObservation{
		Actor:           statemachine.ActorUser,
		Text:            req.Prompt,
		Timestamp:       time.Now(),
		TimestampSource: turn.TimestampSourceHook,
	})
}

// Stop completes the agent's live command.
func (r *Receiver) Stop(ctx context.Context, req Request) (correlator.Outcome, error) {
	r.note()

	agent, err := r.resolveAgent(ctx, req.SessionUUID)
	if err != nil {
		return correlator.Outcome{}, err
	}

	if w := r.writer.Write(ctx, events.EventTypeHookStop, map[string]interface{}{
		"session_uuid":     req.SessionUUID,
		"stop_hook_active": req.StopHookActive,
	}, events.WithAgent(agent.ID)); w.Err != nil {
		slog.Warn("Failed to record stop event", "error", w.Err)
	}

	r.registry.Touch(req.SessionUUID)

	return r.corr.ObserveHook(ctx, agent, statemachine.HookStop)
}

// Notification moves a processing command to awaiting input.
func (r *Receiver) Notification(ctx context.Context, req Request) (correlator.Outcome, error) {
	r.note()

	agent, err := r.resolveAgent(ctx, req.SessionUUID)
	if err != nil {
		return correlator.Outcome{}, err
	}

	if w := r.writer.Write(ctx, events.EventTypeHookNotification, map[string]interface{}{
		"session_uuid": req.SessionUUID,
		"message":      previewText(req.Message),
	}, events.WithAgent(agent.ID)); w.Err != nil {
		slog.Warn("Failed to record notification event", "error", w.Err)
	}

	r.registry.Touch(req.SessionUUID)

	return r.corr.ObserveHook(ctx, agent, statemachine.HookNotification)
}

// PostToolUse records tool activity for the audit trail. It carries no
// command-state semantics; sanitisation of tool errors happens in the
// guardrail layer before anything reaches a dashboard.
func (r *Receiver) PostToolUse(ctx context.Context, req Request, sanitized bool) error {
	r.note()

	agent, err := r.resolveAgent(ctx, req.SessionUUID)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"session_uuid": req.SessionUUID,
		"tool_name":    req.ToolName,
		"sanitized":    sanitized,
	}
	if req.ToolError != "" {
		payload["tool_error"] = previewText(req.ToolError)
	}
	if w := r.writer.Write(ctx, events.EventTypeHookPostToolUse, payload, events.WithAgent(agent.ID)); w.Err != nil {
		return w.Err
	}

	r.registry.Touch(req.SessionUUID)
	return nil
}

// IsUnknownSession reports whether an error means the hook referenced a
// session we have no agent for.
func IsUnknownSession(err error) bool {
	return errors.Is(err, services.ErrNotFound)
}

func (r *Receiver) publish(ctx context.Context, streamType string, agentID int, reason string) {
	if r.pub == nil {
		return
	}
	r.pub.Publish(ctx, events.StreamMessage{
		Type:    streamType,
		AgentID: &agentID,
		Reason:  reason,
	})
}

func previewText(text string) string {
	const max = 200
	if len(text) <= max {
		return text
	}
	return text[:max] + "…"
}
