package processor

import (
	"context"
	"growth-server/internal/store"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// Store defines the database operations required by NurtureProcessor
type Store interface {
	CreateNurtureSequence(ctx context.Context, params store.CreateNurtureSequenceParams) (store.NurtureSequence, error)
	GetNurtureSequenceByID(ctx context.Context, orgID, sequenceID uuid.UUID) (store.NurtureSequence, error)
	ListNurtureSequences(ctx context.Context, orgID uuid.UUID) ([]store.NurtureSequence, error)
	UpdateSequenceStatusIf(ctx context.Context, orgID, sequenceID uuid.UUID, newStatus, expectedStatus string) error
	CreateNurtureStep(ctx context.Context, params store.CreateNurtureStepParams) (store.NurtureStep, error)
	GetStepsBySequence(ctx context.Context, orgID, sequenceID uuid.UUID) ([]store.NurtureStep, error)
	CountStepsBySequence(ctx context.Context, orgID, sequenceID uuid.UUID) (int, error)
	CreateStepExecution(ctx context.Context, params store.CreateStepExecutionParams) (store.StepExecution, error)
	GetStepExecutions(ctx context.Context, orgID, leadID, sequenceID uuid.UUID) ([]store.StepExecution, error)

	GetLeadByID(ctx context.Context, orgID, leadID uuid.UUID) (store.Lead, error)
	EnrollLead(ctx context.Context, orgID, leadID, sequenceID uuid.UUID, enrolledAt time.Time) error
	ClearLeadSequence(ctx context.Context, orgID, leadID uuid.UUID) error
	AdjustLeadScore(ctx context.Context, orgID, leadID uuid.UUID, delta int) (store.Lead, error)
	SetLeadFollowUp(ctx context.Context, orgID, leadID uuid.UUID, followUpAt *time.Time) error
	GetEnrolledLeads(ctx context.Context, limit, offset int) ([]store.Lead, error)
	CreateLeadActivity(ctx context.Context, params store.CreateLeadActivityParams) (store.LeadActivity, error)
}

// Messenger delivers step actions. The processor records the intent to send;
// delivery outcome is the provider's concern.
type Messenger interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// Auditor defines the audit side channel required by NurtureProcessor
type Auditor interface {
	Record(ctx context.Context, orgID uuid.UUID, action, entityType string, entityID uuid.UUID, actorID *uuid.UUID, changes store.JSONB)
}
