package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateAuditEntryParams represents parameters for appending an audit entry
type CreateAuditEntryParams struct {
	OrganizationID uuid.UUID
	Action         string
	EntityType     string
	EntityID       uuid.UUID
	ActorID        *uuid.UUID
	Changes        JSONB
}

const sqlCreateAuditEntry = `
INSERT INTO audit_entries (organization_id, action, entity_type, entity_id, actor_id, changes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, organization_id, action, entity_type, entity_id, actor_id, changes, created_at
`

// CreateAuditEntry appends an audit row
func (s *Store) CreateAuditEntry(ctx context.Context, params CreateAuditEntryParams) (AuditEntry, error) {
	var entry AuditEntry
	err := s.db.GetContext(ctx, &entry, sqlCreateAuditEntry,
		params.OrganizationID,
		params.Action,
		params.EntityType,
		params.EntityID,
		params.ActorID,
		params.Changes)
	if err != nil {
		s.logger.Error(ctx, "failed to create audit entry", err)
		return AuditEntry{}, fmt.Errorf("failed to create audit entry: %w", err)
	}
	return entry, nil
}
