// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityMetricsColumns holds the columns for the "activity_metrics" table.
	ActivityMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "bucket_start", Type: field.TypeTime},
		{Name: "is_overall", Type: field.TypeBool, Default: false},
		{Name: "turn_count", Type: field.TypeInt, Default: 0},
		{Name: "command_count", Type: field.TypeInt, Default: 0},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "project_id", Type: field.TypeInt, Nullable: true},
	}
	// ActivityMetricsTable holds the schema information for the "activity_metrics" table.
	ActivityMetricsTable = &schema.Table{
		Name:       "activity_metrics",
		Columns:    ActivityMetricsColumns,
		PrimaryKey: []*schema.Column{ActivityMetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activity_metrics_agents_activity_metrics",
				Columns:    []*schema.Column{ActivityMetricsColumns[5]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "activity_metrics_projects_activity_metrics",
				Columns:    []*schema.Column{ActivityMetricsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activitymetric_bucket_start",
				Unique:  false,
				Columns: []*schema.Column{ActivityMetricsColumns[1]},
			},
		},
	}
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_uuid", Type: field.TypeUUID, Unique: true},
		{Name: "tmux_session_name", Type: field.TypeString, Nullable: true},
		{Name: "tmux_pane_id", Type: field.TypeString, Nullable: true},
		{Name: "legacy_window_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "prompt_injected_at", Type: field.TypeTime, Nullable: true},
		{Name: "priority_score", Type: field.TypeInt, Nullable: true},
		{Name: "priority_reason", Type: field.TypeString, Nullable: true},
		{Name: "priority_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "context_percent_used", Type: field.TypeInt, Nullable: true},
		{Name: "context_remaining_tokens", Type: field.TypeString, Nullable: true},
		{Name: "context_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "guardrails_version_hash", Type: field.TypeString, Nullable: true},
		{Name: "previous_agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "persona_id", Type: field.TypeInt, Nullable: true},
		{Name: "position_id", Type: field.TypeInt, Nullable: true},
		{Name: "project_id", Type: field.TypeInt},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_agents_successors",
				Columns:    []*schema.Column{AgentsColumns[16]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "agents_personas_agents",
				Columns:    []*schema.Column{AgentsColumns[17]},
				RefColumns: []*schema.Column{PersonasColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "agents_positions_agents",
				Columns:    []*schema.Column{AgentsColumns[18]},
				RefColumns: []*schema.Column{PositionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "agents_projects_agents",
				Columns:    []*schema.Column{AgentsColumns[19]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_project_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[19]},
			},
			{
				Name:    "agent_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[6]},
			},
			{
				Name:    "agent_ended_at",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "ended_at IS NULL",
				},
			},
		},
	}
	// APICallLogsColumns holds the columns for the "api_call_logs" table.
	APICallLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "method", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "status", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt},
		{Name: "authenticated", Type: field.TypeBool, Default: false},
		{Name: "request_headers", Type: field.TypeJSON, Nullable: true},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "truncated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// APICallLogsTable holds the schema information for the "api_call_logs" table.
	APICallLogsTable = &schema.Table{
		Name:       "api_call_logs",
		Columns:    APICallLogsColumns,
		PrimaryKey: []*schema.Column{APICallLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apicalllog_path_created_at",
				Unique:  false,
				Columns: []*schema.Column{APICallLogsColumns[2], APICallLogsColumns[10]},
			},
		},
	}
	// CommandsColumns holds the columns for the "commands" table.
	CommandsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"idle", "commanded", "processing", "awaiting_input", "complete"}, Default: "commanded"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "instruction", Type: field.TypeString, Nullable: true},
		{Name: "completion_summary", Type: field.TypeString, Nullable: true},
		{Name: "full_command", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "full_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "plan_file_path", Type: field.TypeString, Nullable: true},
		{Name: "plan_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "plan_approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "agent_id", Type: field.TypeInt},
	}
	// CommandsTable holds the schema information for the "commands" table.
	CommandsTable = &schema.Table{
		Name:       "commands",
		Columns:    CommandsColumns,
		PrimaryKey: []*schema.Column{CommandsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "commands_agents_commands",
				Columns:    []*schema.Column{CommandsColumns[11]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "command_agent_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{CommandsColumns[11], CommandsColumns[2]},
			},
			{
				Name:    "command_state",
				Unique:  false,
				Columns: []*schema.Column{CommandsColumns[1]},
			},
			{
				Name:    "command_agent_id",
				Unique:  false,
				Columns: []*schema.Column{CommandsColumns[11]},
				Annotation: &entsql.IndexAnnotation{
					Where: "state != 'complete'",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"session_registered", "session_ended", "turn_detected", "state_transition", "state_transition_rejected", "hook_received", "hook_session_start", "hook_session_end", "hook_user_prompt", "hook_stop", "hook_notification", "hook_post_tool_use", "question_detected", "reconnection_ambiguous"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "command_id", Type: field.TypeInt, Nullable: true},
		{Name: "project_id", Type: field.TypeInt, Nullable: true},
		{Name: "turn_id", Type: field.TypeInt, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_agents_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "events_commands_events",
				Columns:    []*schema.Column{EventsColumns[5]},
				RefColumns: []*schema.Column{CommandsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "events_projects_events",
				Columns:    []*schema.Column{EventsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "events_turns_events",
				Columns:    []*schema.Column{EventsColumns[7]},
				RefColumns: []*schema.Column{TurnsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[3]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// HandoffsColumns holds the columns for the "handoffs" table.
	HandoffsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "reason", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt, Unique: true},
	}
	// HandoffsTable holds the schema information for the "handoffs" table.
	HandoffsTable = &schema.Table{
		Name:       "handoffs",
		Columns:    HandoffsColumns,
		PrimaryKey: []*schema.Column{HandoffsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "handoffs_agents_handoff",
				Columns:    []*schema.Column{HandoffsColumns[3]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// HeadspaceSnapshotsColumns holds the columns for the "headspace_snapshots" table.
	HeadspaceSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "captured_at", Type: field.TypeTime},
		{Name: "context_percent_used", Type: field.TypeInt},
		{Name: "context_remaining_tokens", Type: field.TypeString},
		{Name: "raw", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeInt},
	}
	// HeadspaceSnapshotsTable holds the schema information for the "headspace_snapshots" table.
	HeadspaceSnapshotsTable = &schema.Table{
		Name:       "headspace_snapshots",
		Columns:    HeadspaceSnapshotsColumns,
		PrimaryKey: []*schema.Column{HeadspaceSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "headspace_snapshots_agents_snapshots",
				Columns:    []*schema.Column{HeadspaceSnapshotsColumns[5]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "headspacesnapshot_agent_id_captured_at",
				Unique:  false,
				Columns: []*schema.Column{HeadspaceSnapshotsColumns[5], HeadspaceSnapshotsColumns[1]},
			},
		},
	}
	// InferenceCallsColumns holds the columns for the "inference_calls" table.
	InferenceCallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"turn", "command", "project", "priority"}},
		{Name: "input_hash", Type: field.TypeString},
		{Name: "cached", Type: field.TypeBool, Default: false},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "command_id", Type: field.TypeInt, Nullable: true},
		{Name: "project_id", Type: field.TypeInt, Nullable: true},
		{Name: "turn_id", Type: field.TypeInt, Nullable: true},
	}
	// InferenceCallsTable holds the schema information for the "inference_calls" table.
	InferenceCallsTable = &schema.Table{
		Name:       "inference_calls",
		Columns:    InferenceCallsColumns,
		PrimaryKey: []*schema.Column{InferenceCallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inference_calls_agents_inference_calls",
				Columns:    []*schema.Column{InferenceCallsColumns[9]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "inference_calls_commands_inference_calls",
				Columns:    []*schema.Column{InferenceCallsColumns[10]},
				RefColumns: []*schema.Column{CommandsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "inference_calls_projects_inference_calls",
				Columns:    []*schema.Column{InferenceCallsColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "inference_calls_turns_inference_calls",
				Columns:    []*schema.Column{InferenceCallsColumns[12]},
				RefColumns: []*schema.Column{TurnsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inferencecall_input_hash",
				Unique:  false,
				Columns: []*schema.Column{InferenceCallsColumns[2]},
			},
			{
				Name:    "inferencecall_level_created_at",
				Unique:  false,
				Columns: []*schema.Column{InferenceCallsColumns[1], InferenceCallsColumns[8]},
			},
		},
	}
	// ObjectivesColumns holds the columns for the "objectives" table.
	ObjectivesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "priority_enabled", Type: field.TypeBool, Default: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ObjectivesTable holds the schema information for the "objectives" table.
	ObjectivesTable = &schema.Table{
		Name:       "objectives",
		Columns:    ObjectivesColumns,
		PrimaryKey: []*schema.Column{ObjectivesColumns[0]},
	}
	// OrganisationsColumns holds the columns for the "organisations" table.
	OrganisationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrganisationsTable holds the schema information for the "organisations" table.
	OrganisationsTable = &schema.Table{
		Name:       "organisations",
		Columns:    OrganisationsColumns,
		PrimaryKey: []*schema.Column{OrganisationsColumns[0]},
	}
	// PersonasColumns holds the columns for the "personas" table.
	PersonasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "archived"}, Default: "active"},
		{Name: "skill_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "role_personas", Type: field.TypeInt, Nullable: true},
	}
	// PersonasTable holds the schema information for the "personas" table.
	PersonasTable = &schema.Table{
		Name:       "personas",
		Columns:    PersonasColumns,
		PrimaryKey: []*schema.Column{PersonasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "personas_roles_personas",
				Columns:    []*schema.Column{PersonasColumns[8]},
				RefColumns: []*schema.Column{RolesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "persona_status",
				Unique:  false,
				Columns: []*schema.Column{PersonasColumns[4]},
			},
		},
	}
	// PositionsColumns holds the columns for the "positions" table.
	PositionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "reports_to_id", Type: field.TypeInt, Nullable: true},
		{Name: "escalates_to_id", Type: field.TypeInt, Nullable: true},
		{Name: "role_positions", Type: field.TypeInt, Nullable: true},
	}
	// PositionsTable holds the schema information for the "positions" table.
	PositionsTable = &schema.Table{
		Name:       "positions",
		Columns:    PositionsColumns,
		PrimaryKey: []*schema.Column{PositionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "positions_positions_reports",
				Columns:    []*schema.Column{PositionsColumns[2]},
				RefColumns: []*schema.Column{PositionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "positions_positions_escalations",
				Columns:    []*schema.Column{PositionsColumns[3]},
				RefColumns: []*schema.Column{PositionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "positions_roles_positions",
				Columns:    []*schema.Column{PositionsColumns[4]},
				RefColumns: []*schema.Column{RolesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "path", Type: field.TypeString, Unique: true},
		{Name: "git_origin_url", Type: field.TypeString, Nullable: true},
		{Name: "git_branch", Type: field.TypeString, Nullable: true},
		{Name: "inference_paused", Type: field.TypeBool, Default: false},
		{Name: "inference_paused_reason", Type: field.TypeString, Nullable: true},
		{Name: "inference_paused_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_inference_paused",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[6]},
			},
		},
	}
	// RolesColumns holds the columns for the "roles" table.
	RolesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "organisation_roles", Type: field.TypeInt, Nullable: true},
	}
	// RolesTable holds the schema information for the "roles" table.
	RolesTable = &schema.Table{
		Name:       "roles",
		Columns:    RolesColumns,
		PrimaryKey: []*schema.Column{RolesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "roles_organisations_roles",
				Columns:    []*schema.Column{RolesColumns[3]},
				RefColumns: []*schema.Column{OrganisationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// TurnsColumns holds the columns for the "turns" table.
	TurnsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "actor", Type: field.TypeEnum, Enums: []string{"user", "agent"}},
		{Name: "intent", Type: field.TypeEnum, Enums: []string{"command", "answer", "question", "completion", "progress", "end_of_command"}},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "timestamp_source", Type: field.TypeEnum, Enums: []string{"hook", "jsonl", "inferred"}},
		{Name: "jsonl_entry_hash", Type: field.TypeString, Nullable: true},
		{Name: "is_internal", Type: field.TypeBool, Default: false},
		{Name: "tool_input", Type: field.TypeJSON, Nullable: true},
		{Name: "file_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true},
		{Name: "summary_generated_at", Type: field.TypeTime, Nullable: true},
		{Name: "command_id", Type: field.TypeInt},
		{Name: "answered_by_turn_id", Type: field.TypeInt, Nullable: true},
	}
	// TurnsTable holds the schema information for the "turns" table.
	TurnsTable = &schema.Table{
		Name:       "turns",
		Columns:    TurnsColumns,
		PrimaryKey: []*schema.Column{TurnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "turns_commands_turns",
				Columns:    []*schema.Column{TurnsColumns[12]},
				RefColumns: []*schema.Column{CommandsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "turns_turns_answers",
				Columns:    []*schema.Column{TurnsColumns[13]},
				RefColumns: []*schema.Column{TurnsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "turn_command_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TurnsColumns[12], TurnsColumns[4]},
			},
			{
				Name:    "turn_command_id_jsonl_entry_hash",
				Unique:  true,
				Columns: []*schema.Column{TurnsColumns[12], TurnsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "jsonl_entry_hash IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityMetricsTable,
		AgentsTable,
		APICallLogsTable,
		CommandsTable,
		EventsTable,
		HandoffsTable,
		HeadspaceSnapshotsTable,
		InferenceCallsTable,
		ObjectivesTable,
		OrganisationsTable,
		PersonasTable,
		PositionsTable,
		ProjectsTable,
		RolesTable,
		TurnsTable,
	}
)

func init() {
	ActivityMetricsTable.ForeignKeys[0].RefTable = AgentsTable
	ActivityMetricsTable.ForeignKeys[1].RefTable = ProjectsTable
	AgentsTable.ForeignKeys[0].RefTable = AgentsTable
	AgentsTable.ForeignKeys[1].RefTable = PersonasTable
	AgentsTable.ForeignKeys[2].RefTable = PositionsTable
	AgentsTable.ForeignKeys[3].RefTable = ProjectsTable
	CommandsTable.ForeignKeys[0].RefTable = AgentsTable
	EventsTable.ForeignKeys[0].RefTable = AgentsTable
	EventsTable.ForeignKeys[1].RefTable = CommandsTable
	EventsTable.ForeignKeys[2].RefTable = ProjectsTable
	EventsTable.ForeignKeys[3].RefTable = TurnsTable
	HandoffsTable.ForeignKeys[0].RefTable = AgentsTable
	HeadspaceSnapshotsTable.ForeignKeys[0].RefTable = AgentsTable
	InferenceCallsTable.ForeignKeys[0].RefTable = AgentsTable
	InferenceCallsTable.ForeignKeys[1].RefTable = CommandsTable
	InferenceCallsTable.ForeignKeys[2].RefTable = ProjectsTable
	InferenceCallsTable.ForeignKeys[3].RefTable = TurnsTable
	PersonasTable.ForeignKeys[0].RefTable = RolesTable
	PositionsTable.ForeignKeys[0].RefTable = PositionsTable
	PositionsTable.ForeignKeys[1].RefTable = PositionsTable
	PositionsTable.ForeignKeys[2].RefTable = RolesTable
	RolesTable.ForeignKeys[0].RefTable = OrganisationsTable
	TurnsTable.ForeignKeys[0].RefTable = CommandsTable
	TurnsTable.ForeignKeys[1].RefTable = TurnsTable
}
