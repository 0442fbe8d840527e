package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateLeadActivityParams represents parameters for appending a lead activity
type CreateLeadActivityParams struct {
	OrganizationID uuid.UUID
	LeadID         uuid.UUID
	ActivityType   string
	ActorID        *uuid.UUID
	Note           *string
	OldStatus      *string
	NewStatus      *string
}

const sqlCreateLeadActivity = `
INSERT INTO lead_activities (organization_id, lead_id, activity_type, actor_id, note, old_status, new_status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, organization_id, lead_id, activity_type, actor_id, note, old_status, new_status, created_at
`

// CreateLeadActivity appends an activity row. The table is append-only; no
// update or delete statements exist for it.
func (s *Store) CreateLeadActivity(ctx context.Context, params CreateLeadActivityParams) (LeadActivity, error) {
	var activity LeadActivity
	err := s.db.GetContext(ctx, &activity, sqlCreateLeadActivity,
		params.OrganizationID,
		params.LeadID,
		params.ActivityType,
		params.ActorID,
		params.Note,
		params.OldStatus,
		params.NewStatus)
	if err != nil {
		s.logger.Error(ctx, "failed to create lead activity", err)
		return LeadActivity{}, fmt.Errorf("failed to create lead activity: %w", err)
	}
	return activity, nil
}

const sqlGetActivitiesByLead = `
SELECT id, organization_id, lead_id, activity_type, actor_id, note, old_status, new_status, created_at
FROM lead_activities
WHERE organization_id = $1 AND lead_id = $2
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

// GetActivitiesByLead retrieves a lead's activity trail, newest first
func (s *Store) GetActivitiesByLead(ctx context.Context, orgID, leadID uuid.UUID, limit, offset int) ([]LeadActivity, error) {
	var activities []LeadActivity
	err := s.db.SelectContext(ctx, &activities, sqlGetActivitiesByLead, orgID, leadID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to get activities by lead", err)
		return nil, fmt.Errorf("failed to get activities by lead: %w", err)
	}
	return activities, nil
}
