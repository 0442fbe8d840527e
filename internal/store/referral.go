package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

const referralColumns = `id, organization_id, program_id, referrer_id, referee_id, referral_code, status,
    referee_contact, existing_patient_flagged, utm_source, utm_medium, utm_campaign,
    created_at, qualified_at, completed_at, updated_at`

// CreateReferralParams represents parameters for creating a referral
type CreateReferralParams struct {
	OrganizationID uuid.UUID
	ProgramID      uuid.UUID
	ReferrerID     uuid.UUID
	ReferralCode   string
	RefereeContact *string
	UTMSource      *string
	UTMMedium      *string
	UTMCampaign    *string
}

const sqlCreateReferral = `
INSERT INTO referrals (organization_id, program_id, referrer_id, referral_code, status,
    referee_contact, utm_source, utm_medium, utm_campaign)
VALUES ($1, $2, $3, $4, 'pending', $5, $6, $7, $8)
RETURNING ` + referralColumns

// CreateReferral creates a new pending referral. Returns ErrConflict when the
// referral code collides with an existing one in the organization.
func (s *Store) CreateReferral(ctx context.Context, params CreateReferralParams) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlCreateReferral,
		params.OrganizationID,
		params.ProgramID,
		params.ReferrerID,
		params.ReferralCode,
		params.RefereeContact,
		params.UTMSource,
		params.UTMMedium,
		params.UTMCampaign)
	if err != nil {
		if isUniqueViolation(err) {
			return Referral{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to create referral", err)
		return Referral{}, fmt.Errorf("failed to create referral: %w", err)
	}
	return referral, nil
}

const sqlGetReferralByID = `
SELECT ` + referralColumns + `
FROM referrals
WHERE id = $1 AND organization_id = $2
`

// GetReferralByID retrieves a referral scoped to an organization
func (s *Store) GetReferralByID(ctx context.Context, orgID, referralID uuid.UUID) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlGetReferralByID, referralID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Referral{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral by id", err)
		return Referral{}, fmt.Errorf("failed to get referral by id: %w", err)
	}
	return referral, nil
}

const sqlGetReferralByCode = `
SELECT ` + referralColumns + `
FROM referrals
WHERE referral_code = $1 AND organization_id = $2
`

// GetReferralByCode retrieves a referral by its code within an organization
func (s *Store) GetReferralByCode(ctx context.Context, orgID uuid.UUID, code string) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlGetReferralByCode, code, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Referral{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral by code", err)
		return Referral{}, fmt.Errorf("failed to get referral by code: %w", err)
	}
	return referral, nil
}

const sqlReferralCodeExists = `
SELECT EXISTS (SELECT 1 FROM referrals WHERE organization_id = $1 AND referral_code = $2)
`

// ReferralCodeExists reports whether a code is already taken within an organization
func (s *Store) ReferralCodeExists(ctx context.Context, orgID uuid.UUID, code string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlReferralCodeExists, orgID, code)
	if err != nil {
		s.logger.Error(ctx, "failed to check referral code", err)
		return false, fmt.Errorf("failed to check referral code: %w", err)
	}
	return exists, nil
}

const sqlCountReferralsByReferrer = `
SELECT COUNT(*)
FROM referrals
WHERE organization_id = $1 AND program_id = $2 AND referrer_id = $3 AND status != 'cancelled'
`

// CountReferralsByReferrer counts a referrer's non-cancelled referrals in a program
func (s *Store) CountReferralsByReferrer(ctx context.Context, orgID, programID, referrerID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountReferralsByReferrer, orgID, programID, referrerID)
	if err != nil {
		s.logger.Error(ctx, "failed to count referrals by referrer", err)
		return 0, fmt.Errorf("failed to count referrals by referrer: %w", err)
	}
	return count, nil
}

const sqlLinkReferee = `
UPDATE referrals
SET referee_id = $3,
    existing_patient_flagged = $4,
    status = 'qualified',
    qualified_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status = 'pending' AND referee_id IS NULL
RETURNING ` + referralColumns

// LinkReferee links a referee patient to a pending referral and qualifies it.
// The WHERE clause is the compare-and-set guard: a referral that is no longer
// pending, or already linked, is not touched and ErrConflict is returned.
func (s *Store) LinkReferee(ctx context.Context, orgID, referralID, refereeID uuid.UUID, flagged bool) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlLinkReferee, referralID, orgID, refereeID, flagged)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Referral{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to link referee", err)
		return Referral{}, fmt.Errorf("failed to link referee: %w", err)
	}
	return referral, nil
}

const sqlCompleteReferral = `
UPDATE referrals
SET status = 'completed',
    completed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status = 'qualified'
RETURNING ` + referralColumns

const sqlInsertRewardIssuance = `
INSERT INTO reward_issuances (organization_id, referral_id, recipient, patient_id, reward_type, value)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, organization_id, referral_id, recipient, patient_id, reward_type, value, issued_at
`

// RewardIssuanceParams describes one reward to record during completion
type RewardIssuanceParams struct {
	Recipient  string
	PatientID  uuid.UUID
	RewardType string
	Value      float64
}

// CompleteReferral flips a qualified referral to completed and records its
// reward issuances in a single transaction. The status guard in the UPDATE
// means concurrent callers race safely: exactly one sees rows affected, the
// rest get ErrConflict and can read the prior result. Either all issuances
// are recorded or none are.
func (s *Store) CompleteReferral(ctx context.Context, orgID, referralID uuid.UUID, issuances []RewardIssuanceParams) (Referral, []RewardIssuance, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Referral{}, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var referral Referral
	err = tx.GetContext(ctx, &referral, sqlCompleteReferral, referralID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Referral{}, nil, ErrConflict
		}
		s.logger.Error(ctx, "failed to complete referral", err)
		return Referral{}, nil, fmt.Errorf("failed to complete referral: %w", err)
	}

	recorded := make([]RewardIssuance, 0, len(issuances))
	for _, issuance := range issuances {
		var row RewardIssuance
		err = tx.GetContext(ctx, &row, sqlInsertRewardIssuance,
			orgID, referralID, issuance.Recipient, issuance.PatientID, issuance.RewardType, issuance.Value)
		if err != nil {
			if isUniqueViolation(err) {
				return Referral{}, nil, ErrConflict
			}
			s.logger.Error(ctx, "failed to record reward issuance", err)
			return Referral{}, nil, fmt.Errorf("failed to record reward issuance: %w", err)
		}
		recorded = append(recorded, row)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit referral completion", err)
		return Referral{}, nil, fmt.Errorf("failed to commit referral completion: %w", err)
	}

	return referral, recorded, nil
}

const sqlGetRewardIssuancesByReferral = `
SELECT id, organization_id, referral_id, recipient, patient_id, reward_type, value, issued_at
FROM reward_issuances
WHERE organization_id = $1 AND referral_id = $2
ORDER BY recipient DESC
`

// GetRewardIssuancesByReferral retrieves the rewards recorded for a referral
func (s *Store) GetRewardIssuancesByReferral(ctx context.Context, orgID, referralID uuid.UUID) ([]RewardIssuance, error) {
	var issuances []RewardIssuance
	err := s.db.SelectContext(ctx, &issuances, sqlGetRewardIssuancesByReferral, orgID, referralID)
	if err != nil {
		s.logger.Error(ctx, "failed to get reward issuances", err)
		return nil, fmt.Errorf("failed to get reward issuances: %w", err)
	}
	return issuances, nil
}

const sqlTransitionReferralStatus = `
UPDATE referrals
SET status = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status IN ('pending', 'qualified')
`

// TransitionReferralStatus moves a non-terminal referral to expired or
// cancelled. ErrConflict when the referral has already reached a terminal
// state.
func (s *Store) TransitionReferralStatus(ctx context.Context, orgID, referralID uuid.UUID, status string) error {
	res, err := s.db.ExecContext(ctx, sqlTransitionReferralStatus, referralID, orgID, status)
	if err != nil {
		s.logger.Error(ctx, "failed to transition referral status", err)
		return fmt.Errorf("failed to transition referral status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrConflict
	}

	return nil
}

// ListReferralsParams represents filters for listing referrals
type ListReferralsParams struct {
	OrganizationID uuid.UUID
	ProgramID      *uuid.UUID
	Status         *string
	Limit          int
	Offset         int
}

const sqlListReferrals = `
SELECT ` + referralColumns + `
FROM referrals
WHERE organization_id = $1
  AND ($2::uuid IS NULL OR program_id = $2)
  AND ($3::text IS NULL OR status = $3)
ORDER BY created_at DESC
LIMIT $4 OFFSET $5
`

// ListReferrals retrieves referrals with optional program and status filters
func (s *Store) ListReferrals(ctx context.Context, params ListReferralsParams) ([]Referral, error) {
	var referrals []Referral
	err := s.db.SelectContext(ctx, &referrals, sqlListReferrals,
		params.OrganizationID, params.ProgramID, params.Status, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list referrals", err)
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	return referrals, nil
}

const sqlCountReferralsByStatus = `
SELECT status, COUNT(*) AS count
FROM referrals
WHERE organization_id = $1 AND created_at >= $2 AND created_at < $3
GROUP BY status
`

// ReferralStatusCount is one row of the per-status breakdown
type ReferralStatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// CountReferralsByStatus aggregates referral counts per status within a range
func (s *Store) CountReferralsByStatus(ctx context.Context, orgID uuid.UUID, from, to time.Time) ([]ReferralStatusCount, error) {
	var counts []ReferralStatusCount
	err := s.db.SelectContext(ctx, &counts, sqlCountReferralsByStatus, orgID, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to count referrals by status", err)
		return nil, fmt.Errorf("failed to count referrals by status: %w", err)
	}
	return counts, nil
}

const sqlGetTopReferrers = `
SELECT referrer_id, COUNT(*) AS completed_count, MIN(created_at) AS first_referral_at
FROM referrals
WHERE organization_id = $1 AND status = 'completed' AND created_at >= $2 AND created_at < $3
GROUP BY referrer_id
ORDER BY completed_count DESC, first_referral_at ASC
LIMIT $4
`

// TopReferrer is one row of the referrer ranking
type TopReferrer struct {
	ReferrerID      uuid.UUID `db:"referrer_id" json:"referrer_id"`
	CompletedCount  int       `db:"completed_count" json:"completed_count"`
	FirstReferralAt time.Time `db:"first_referral_at" json:"first_referral_at"`
}

// GetTopReferrers ranks referrers by completed referral count, ties broken by
// earliest referral creation time
func (s *Store) GetTopReferrers(ctx context.Context, orgID uuid.UUID, from, to time.Time, limit int) ([]TopReferrer, error) {
	var referrers []TopReferrer
	err := s.db.SelectContext(ctx, &referrers, sqlGetTopReferrers, orgID, from, to, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get top referrers", err)
		return nil, fmt.Errorf("failed to get top referrers: %w", err)
	}
	return referrers, nil
}
