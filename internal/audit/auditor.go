package audit

import (
	"context"
	"growth-server/internal/observability"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

// Sink is the storage surface the auditor writes to
type Sink interface {
	CreateAuditEntry(ctx context.Context, params store.CreateAuditEntryParams) (store.AuditEntry, error)
}

// Auditor records state-changing operations to an append-only side channel.
// Recording is best-effort: a failed insert is logged and swallowed so it
// never unwinds the primary write.
type Auditor struct {
	sink   Sink
	logger *observability.Logger
}

func New(sink Sink, logger *observability.Logger) *Auditor {
	return &Auditor{
		sink:   sink,
		logger: logger,
	}
}

// Record appends an audit entry after a successful state change
func (a *Auditor) Record(ctx context.Context, orgID uuid.UUID, action, entityType string, entityID uuid.UUID, actorID *uuid.UUID, changes store.JSONB) {
	_, err := a.sink.CreateAuditEntry(ctx, store.CreateAuditEntryParams{
		OrganizationID: orgID,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		ActorID:        actorID,
		Changes:        changes,
	})
	if err != nil {
		a.logger.InfoWithError(ctx, "audit entry dropped", err)
	}
}
