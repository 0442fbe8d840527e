package processor

import (
	"context"
	"growth-server/internal/store"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// Store defines the database operations required by LeadProcessor
type Store interface {
	CreateLead(ctx context.Context, params store.CreateLeadParams) (store.Lead, error)
	GetLeadByID(ctx context.Context, orgID, leadID uuid.UUID) (store.Lead, error)
	FindLeadByEmailOrPhone(ctx context.Context, orgID uuid.UUID, email, phone *string) (store.Lead, error)
	UpdateLeadStatus(ctx context.Context, orgID, leadID uuid.UUID, status string) (store.Lead, error)
	ConvertLead(ctx context.Context, orgID, leadID, patientID uuid.UUID) (store.Lead, error)
	SetLeadFollowUp(ctx context.Context, orgID, leadID uuid.UUID, followUpAt *time.Time) error
	SetLeadOptedOut(ctx context.Context, orgID, leadID uuid.UUID) error
	GetLeadsDueForFollowUp(ctx context.Context, orgID uuid.UUID, now time.Time) ([]store.Lead, error)
	ListLeads(ctx context.Context, params store.ListLeadsParams) ([]store.Lead, error)
	CreateLeadActivity(ctx context.Context, params store.CreateLeadActivityParams) (store.LeadActivity, error)
	GetActivitiesByLead(ctx context.Context, orgID, leadID uuid.UUID, limit, offset int) ([]store.LeadActivity, error)
}

// Deduplicator decides whether an incoming lead duplicates an existing one.
// The returned lead is the duplicate when found.
type Deduplicator interface {
	FindDuplicate(ctx context.Context, orgID uuid.UUID, email, phone *string) (store.Lead, bool, error)
}

// ReferralCompleter closes the loop on referral-attributed leads when they
// convert to patients. The conversion value feeds percentage-based rewards.
type ReferralCompleter interface {
	CompleteReferralForLead(ctx context.Context, orgID, referralID, patientID uuid.UUID, conversionValue *float64) error
}

// CampaignRecorder receives attribution events for campaign-sourced leads
type CampaignRecorder interface {
	RecordLead(ctx context.Context, orgID, campaignID uuid.UUID) error
	RecordConversion(ctx context.Context, orgID, campaignID uuid.UUID, revenue float64) error
}

// Auditor defines the audit side channel required by LeadProcessor
type Auditor interface {
	Record(ctx context.Context, orgID uuid.UUID, action, entityType string, entityID uuid.UUID, actorID *uuid.UUID, changes store.JSONB)
}
