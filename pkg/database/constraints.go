package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateConstraints creates the PostgreSQL partial unique and functional
// indexes that Ent/Atlas cannot express. These must match the definitions
// in migrations/000001_init.up.sql.
func CreateConstraints(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Storage-level turn dedup: the TOCTOU belt-and-braces behind
	// concurrent hook handlers reading the same JSONL line.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS turn_command_id_jsonl_entry_hash
		ON turns (command_id, jsonl_entry_hash)
		WHERE jsonl_entry_hash IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create turn dedup index: %w", err)
	}

	// One activity-metric row per (bucket, scope). COALESCE(-1) stands in
	// for NULL so the overall / per-agent / per-project shapes cannot
	// collide; -1 can never be a real row id.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS activitymetric_bucket_scope
		ON activity_metrics (bucket_start, COALESCE(agent_id, -1), COALESCE(project_id, -1), is_overall)`)
	if err != nil {
		return fmt.Errorf("failed to create activity metric scope index: %w", err)
	}

	// CHECK constraints ent cannot express. DROP+ADD keeps the calls
	// idempotent across re-runs on the same schema.
	checks := []struct{ table, name, expr string }{
		{
			"agents", "agent_priority_triplet",
			`(priority_score IS NULL AND priority_reason IS NULL AND priority_updated_at IS NULL)
			 OR (priority_score IS NOT NULL AND priority_reason IS NOT NULL AND priority_updated_at IS NOT NULL)`,
		},
		{
			"inference_calls", "inference_call_has_parent",
			`project_id IS NOT NULL OR agent_id IS NOT NULL OR command_id IS NOT NULL OR turn_id IS NOT NULL`,
		},
	}
	for _, c := range checks {
		if _, err := db.ExecContext(ctx,
			fmt.Sprintf(`ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s`, c.table, c.name)); err != nil {
			return fmt.Errorf("failed to drop constraint %s: %w", c.name, err)
		}
		if _, err := db.ExecContext(ctx,
			fmt.Sprintf(`ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s)`, c.table, c.name, c.expr)); err != nil {
			return fmt.Errorf("failed to create constraint %s: %w", c.name, err)
		}
	}

	return nil
}
