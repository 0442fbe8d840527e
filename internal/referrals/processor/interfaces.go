package processor

import (
	"context"
	"growth-server/internal/store"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// Store defines the database operations required by ReferralProcessor
type Store interface {
	CreateReferralProgram(ctx context.Context, params store.CreateReferralProgramParams) (store.ReferralProgram, error)
	GetReferralProgramByID(ctx context.Context, orgID, programID uuid.UUID) (store.ReferralProgram, error)
	ListReferralPrograms(ctx context.Context, orgID uuid.UUID) ([]store.ReferralProgram, error)
	UpdateReferralProgram(ctx context.Context, orgID, programID uuid.UUID, params store.UpdateReferralProgramParams) (store.ReferralProgram, error)
	CreateReferral(ctx context.Context, params store.CreateReferralParams) (store.Referral, error)
	GetReferralByID(ctx context.Context, orgID, referralID uuid.UUID) (store.Referral, error)
	GetReferralByCode(ctx context.Context, orgID uuid.UUID, code string) (store.Referral, error)
	ReferralCodeExists(ctx context.Context, orgID uuid.UUID, code string) (bool, error)
	CountReferralsByReferrer(ctx context.Context, orgID, programID, referrerID uuid.UUID) (int, error)
	LinkReferee(ctx context.Context, orgID, referralID, refereeID uuid.UUID, flagged bool) (store.Referral, error)
	CompleteReferral(ctx context.Context, orgID, referralID uuid.UUID, issuances []store.RewardIssuanceParams) (store.Referral, []store.RewardIssuance, error)
	GetRewardIssuancesByReferral(ctx context.Context, orgID, referralID uuid.UUID) ([]store.RewardIssuance, error)
	TransitionReferralStatus(ctx context.Context, orgID, referralID uuid.UUID, status string) error
	ListReferrals(ctx context.Context, params store.ListReferralsParams) ([]store.Referral, error)
	CountReferralsByStatus(ctx context.Context, orgID uuid.UUID, from, to time.Time) ([]store.ReferralStatusCount, error)
	GetTopReferrers(ctx context.Context, orgID uuid.UUID, from, to time.Time, limit int) ([]store.TopReferrer, error)
}

// Auditor defines the audit side channel required by ReferralProcessor
type Auditor interface {
	Record(ctx context.Context, orgID uuid.UUID, action, entityType string, entityID uuid.UUID, actorID *uuid.UUID, changes store.JSONB)
}
