package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateReferralProgramParams represents parameters for creating a referral program
type CreateReferralProgramParams struct {
	OrganizationID         uuid.UUID
	Name                   string
	ReferrerRewardType     string
	ReferrerRewardValue    float64
	ReferrerRewardMax      *float64
	RefereeRewardType      *string
	RefereeRewardValue     *float64
	QualificationCriteria  *string
	ExpirationDays         int
	MaxReferralsPerPatient *int
	RequireNewPatient      bool
	StartsAt               *time.Time
	EndsAt                 *time.Time
}

const sqlCreateReferralProgram = `
INSERT INTO referral_programs (
    organization_id, name, referrer_reward_type, referrer_reward_value, referrer_reward_max,
    referee_reward_type, referee_reward_value, qualification_criteria, expiration_days,
    max_referrals_per_patient, require_new_patient, active, starts_at, ends_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, $12, $13)
RETURNING id, organization_id, name, referrer_reward_type, referrer_reward_value, referrer_reward_max,
    referee_reward_type, referee_reward_value, qualification_criteria, expiration_days,
    max_referrals_per_patient, require_new_patient, active, starts_at, ends_at, created_at, updated_at
`

// CreateReferralProgram creates a new referral program
func (s *Store) CreateReferralProgram(ctx context.Context, params CreateReferralProgramParams) (ReferralProgram, error) {
	var program ReferralProgram
	err := s.db.GetContext(ctx, &program, sqlCreateReferralProgram,
		params.OrganizationID,
		params.Name,
		params.ReferrerRewardType,
		params.ReferrerRewardValue,
		params.ReferrerRewardMax,
		params.RefereeRewardType,
		params.RefereeRewardValue,
		params.QualificationCriteria,
		params.ExpirationDays,
		params.MaxReferralsPerPatient,
		params.RequireNewPatient,
		params.StartsAt,
		params.EndsAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create referral program", err)
		return ReferralProgram{}, fmt.Errorf("failed to create referral program: %w", err)
	}
	return program, nil
}

const sqlGetReferralProgramByID = `
SELECT id, organization_id, name, referrer_reward_type, referrer_reward_value, referrer_reward_max,
    referee_reward_type, referee_reward_value, qualification_criteria, expiration_days,
    max_referrals_per_patient, require_new_patient, active, starts_at, ends_at, created_at, updated_at
FROM referral_programs
WHERE id = $1 AND organization_id = $2
`

// GetReferralProgramByID retrieves a referral program scoped to an organization
func (s *Store) GetReferralProgramByID(ctx context.Context, orgID, programID uuid.UUID) (ReferralProgram, error) {
	var program ReferralProgram
	err := s.db.GetContext(ctx, &program, sqlGetReferralProgramByID, programID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralProgram{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral program", err)
		return ReferralProgram{}, fmt.Errorf("failed to get referral program: %w", err)
	}
	return program, nil
}

const sqlListReferralPrograms = `
SELECT id, organization_id, name, referrer_reward_type, referrer_reward_value, referrer_reward_max,
    referee_reward_type, referee_reward_value, qualification_criteria, expiration_days,
    max_referrals_per_patient, require_new_patient, active, starts_at, ends_at, created_at, updated_at
FROM referral_programs
WHERE organization_id = $1
ORDER BY created_at DESC
`

// ListReferralPrograms retrieves all referral programs for an organization
func (s *Store) ListReferralPrograms(ctx context.Context, orgID uuid.UUID) ([]ReferralProgram, error) {
	var programs []ReferralProgram
	err := s.db.SelectContext(ctx, &programs, sqlListReferralPrograms, orgID)
	if err != nil {
		s.logger.Error(ctx, "failed to list referral programs", err)
		return nil, fmt.Errorf("failed to list referral programs: %w", err)
	}
	return programs, nil
}

// UpdateReferralProgramParams represents optional fields for updating a program
type UpdateReferralProgramParams struct {
	Name                   *string
	Active                 *bool
	ExpirationDays         *int
	MaxReferralsPerPatient *int
}

const sqlUpdateReferralProgram = `
UPDATE referral_programs
SET name = COALESCE($3, name),
    active = COALESCE($4, active),
    expiration_days = COALESCE($5, expiration_days),
    max_referrals_per_patient = COALESCE($6, max_referrals_per_patient),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2
RETURNING id, organization_id, name, referrer_reward_type, referrer_reward_value, referrer_reward_max,
    referee_reward_type, referee_reward_value, qualification_criteria, expiration_days,
    max_referrals_per_patient, require_new_patient, active, starts_at, ends_at, created_at, updated_at
`

// UpdateReferralProgram applies an explicit update to program configuration
func (s *Store) UpdateReferralProgram(ctx context.Context, orgID, programID uuid.UUID, params UpdateReferralProgramParams) (ReferralProgram, error) {
	var program ReferralProgram
	err := s.db.GetContext(ctx, &program, sqlUpdateReferralProgram,
		programID, orgID, params.Name, params.Active, params.ExpirationDays, params.MaxReferralsPerPatient)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralProgram{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update referral program", err)
		return ReferralProgram{}, fmt.Errorf("failed to update referral program: %w", err)
	}
	return program, nil
}
