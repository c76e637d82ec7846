package services

import (
	"context"
	"fmt"
	"time"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/activitymetric"
	"github.com/headspace-sh/headspace/ent/headspacesnapshot"
)

// ActivityService maintains per-bucket turn/command counters and the
// context-usage snapshot history.
type ActivityService struct {
	client     *ent.Client
	bucketSize time.Duration
}

// NewActivityService creates a new ActivityService. bucketSize is the
// metric aggregation window.
func NewActivityService(client *ent.Client, bucketSize time.Duration) *ActivityService {
	if bucketSize <= 0 {
		bucketSize = 5 * time.Minute
	}
	return &ActivityService{client: client, bucketSize: bucketSize}
}

// Bucket truncates t to the metric window.
func (s *ActivityService) Bucket(t time.Time) time.Time {
	return t.UTC().Truncate(s.bucketSize)
}

// RecordTurn increments the turn counter in the agent's bucket, the
// project's bucket, and the overall bucket.
func (s *ActivityService) RecordTurn(ctx context.Context, agentID, projectID int, at time.Time) error {
	return s.bump(ctx, agentID, projectID, at, 1, 0)
}

// RecordCommand increments the command counter across the three scopes.
func (s *ActivityService) RecordCommand(ctx context.Context, agentID, projectID int, at time.Time) error {
	return s.bump(ctx, agentID, projectID, at, 0, 1)
}

func (s *ActivityService) bump(ctx context.Context, agentID, projectID int, at time.Time, turns, commands int) error {
	bucket := s.Bucket(at)

	if err := s.bumpScope(ctx, bucket, &agentID, nil, false, turns, commands); err != nil {
		return err
	}
	if err := s.bumpScope(ctx, bucket, nil, &projectID, false, turns, commands); err != nil {
		return err
	}
	return s.bumpScope(ctx, bucket, nil, nil, true, turns, commands)
}

// bumpScope upserts one (bucket, scope) row. The functional unique
// index serialises concurrent writers; a lost create race falls back to
// the in-place increment.
func (s *ActivityService) bumpScope(ctx context.Context, bucket time.Time, agentID, projectID *int, overall bool, turns, commands int) error {
	for attempt := 0; attempt < 2; attempt++ {
		q := s.client.ActivityMetric.Query().
			Where(
				activitymetric.BucketStartEQ(bucket),
				activitymetric.IsOverallEQ(overall),
			)
		if agentID != nil {
			q = q.Where(activitymetric.AgentIDEQ(*agentID))
		} else {
			q = q.Where(activitymetric.AgentIDIsNil())
		}
		if projectID != nil {
			q = q.Where(activitymetric.ProjectIDEQ(*projectID))
		} else {
			q = q.Where(activitymetric.ProjectIDIsNil())
		}

		existing, err := q.Only(ctx)
		if err == nil {
			return existing.Update().
				AddTurnCount(turns).
				AddCommandCount(commands).
				Exec(ctx)
		}
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query activity metric: %w", err)
		}

		builder := s.client.ActivityMetric.Create().
			SetBucketStart(bucket).
			SetIsOverall(overall).
			SetTurnCount(turns).
			SetCommandCount(commands)
		if agentID != nil {
			builder.SetAgentID(*agentID)
		}
		if projectID != nil {
			builder.SetProjectID(*projectID)
		}
		err = builder.Exec(ctx)
		if err == nil {
			return nil
		}
		if !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to create activity metric: %w", err)
		}
		// Concurrent creator won the index; increment their row.
	}
	return ErrConflict
}

// RecentForAgent returns an agent's buckets newest first.
func (s *ActivityService) RecentForAgent(ctx context.Context, agentID int, since time.Time) ([]*ent.ActivityMetric, error) {
	metrics, err := s.client.ActivityMetric.Query().
		Where(
			activitymetric.AgentIDEQ(agentID),
			activitymetric.BucketStartGTE(s.Bucket(since)),
		).
		Order(ent.Desc(activitymetric.FieldBucketStart)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity metrics: %w", err)
	}
	return metrics, nil
}

// RecordSnapshot appends one context-usage observation for an agent.
func (s *ActivityService) RecordSnapshot(ctx context.Context, agentID, percentUsed int, remaining, raw string) error {
	return s.client.HeadspaceSnapshot.Create().
		SetAgentID(agentID).
		SetContextPercentUsed(percentUsed).
		SetContextRemainingTokens(remaining).
		SetRaw(raw).
		Exec(ctx)
}

// SnapshotsForAgent returns an agent's context history oldest first.
func (s *ActivityService) SnapshotsForAgent(ctx context.Context, agentID int, limit int) ([]*ent.HeadspaceSnapshot, error) {
	q := s.client.HeadspaceSnapshot.Query().
		Where(headspacesnapshot.AgentIDEQ(agentID)).
		Order(ent.Asc(headspacesnapshot.FieldCapturedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	snaps, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snaps, nil
}
