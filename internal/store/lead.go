package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const leadColumns = `id, organization_id, first_name, last_name, email, phone, source, status, score,
    utm_source, utm_medium, utm_campaign, utm_content, utm_term,
    campaign_id, referral_id, current_sequence_id, enrolled_at,
    follow_up_at, converted_patient_id, opted_out, created_at, updated_at`

// CreateLeadParams represents parameters for creating a lead
type CreateLeadParams struct {
	OrganizationID uuid.UUID
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	Source         string
	Score          int
	UTMSource      *string
	UTMMedium      *string
	UTMCampaign    *string
	UTMContent     *string
	UTMTerm        *string
	CampaignID     *uuid.UUID
	ReferralID     *uuid.UUID
}

const sqlCreateLead = `
INSERT INTO leads (organization_id, first_name, last_name, email, phone, source, status, score,
    utm_source, utm_medium, utm_campaign, utm_content, utm_term, campaign_id, referral_id)
VALUES ($1, $2, $3, $4, $5, $6, 'new', $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + leadColumns

// CreateLead creates a new lead with status NEW
func (s *Store) CreateLead(ctx context.Context, params CreateLeadParams) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlCreateLead,
		params.OrganizationID,
		params.FirstName,
		params.LastName,
		params.Email,
		params.Phone,
		params.Source,
		params.Score,
		params.UTMSource,
		params.UTMMedium,
		params.UTMCampaign,
		params.UTMContent,
		params.UTMTerm,
		params.CampaignID,
		params.ReferralID)
	if err != nil {
		s.logger.Error(ctx, "failed to create lead", err)
		return Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

const sqlGetLeadByID = `
SELECT ` + leadColumns + `
FROM leads
WHERE id = $1 AND organization_id = $2
`

// GetLeadByID retrieves a lead scoped to an organization
func (s *Store) GetLeadByID(ctx context.Context, orgID, leadID uuid.UUID) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlGetLeadByID, leadID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get lead by id", err)
		return Lead{}, fmt.Errorf("failed to get lead by id: %w", err)
	}
	return lead, nil
}

const sqlFindLeadByEmailOrPhone = `
SELECT ` + leadColumns + `
FROM leads
WHERE organization_id = $1
  AND (($2::text IS NOT NULL AND email = $2) OR ($3::text IS NOT NULL AND phone = $3))
ORDER BY created_at ASC
LIMIT 1
`

// FindLeadByEmailOrPhone finds the earliest lead matching either contact field
func (s *Store) FindLeadByEmailOrPhone(ctx context.Context, orgID uuid.UUID, email, phone *string) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlFindLeadByEmailOrPhone, orgID, email, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to find lead by contact", err)
		return Lead{}, fmt.Errorf("failed to find lead by contact: %w", err)
	}
	return lead, nil
}

const sqlUpdateLeadStatus = `
UPDATE leads
SET status = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status NOT IN ('converted', 'lost')
RETURNING ` + leadColumns

// UpdateLeadStatus moves a non-terminal lead to a new status. ErrConflict
// when the lead has already reached a terminal state.
func (s *Store) UpdateLeadStatus(ctx context.Context, orgID, leadID uuid.UUID, status string) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlUpdateLeadStatus, leadID, orgID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to update lead status", err)
		return Lead{}, fmt.Errorf("failed to update lead status: %w", err)
	}
	return lead, nil
}

const sqlConvertLead = `
UPDATE leads
SET status = 'converted',
    converted_patient_id = $3,
    current_sequence_id = NULL,
    enrolled_at = NULL,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status NOT IN ('converted', 'lost')
RETURNING ` + leadColumns

// ConvertLead marks a lead converted and records the patient it became. The
// status guard makes conversion a one-shot transition.
func (s *Store) ConvertLead(ctx context.Context, orgID, leadID, patientID uuid.UUID) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlConvertLead, leadID, orgID, patientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to convert lead", err)
		return Lead{}, fmt.Errorf("failed to convert lead: %w", err)
	}
	return lead, nil
}

const sqlSetLeadFollowUp = `
UPDATE leads
SET follow_up_at = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2
`

// SetLeadFollowUp sets or clears the follow-up timestamp
func (s *Store) SetLeadFollowUp(ctx context.Context, orgID, leadID uuid.UUID, followUpAt *time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlSetLeadFollowUp, leadID, orgID, followUpAt)
	if err != nil {
		s.logger.Error(ctx, "failed to set lead follow-up", err)
		return fmt.Errorf("failed to set lead follow-up: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

const sqlSetLeadOptedOut = `
UPDATE leads
SET opted_out = TRUE,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2
`

// SetLeadOptedOut flags a lead as unsubscribed from outreach
func (s *Store) SetLeadOptedOut(ctx context.Context, orgID, leadID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlSetLeadOptedOut, leadID, orgID)
	if err != nil {
		s.logger.Error(ctx, "failed to set lead opted out", err)
		return fmt.Errorf("failed to set lead opted out: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

const sqlAdjustLeadScore = `
UPDATE leads
SET score = GREATEST(score + $3, 0),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2
RETURNING ` + leadColumns

// AdjustLeadScore applies a signed delta to the lead score, floored at zero
func (s *Store) AdjustLeadScore(ctx context.Context, orgID, leadID uuid.UUID, delta int) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlAdjustLeadScore, leadID, orgID, delta)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to adjust lead score", err)
		return Lead{}, fmt.Errorf("failed to adjust lead score: %w", err)
	}
	return lead, nil
}

const sqlEnrollLead = `
UPDATE leads
SET current_sequence_id = $3,
    enrolled_at = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND current_sequence_id IS NULL
`

// EnrollLead attaches a lead to a sequence. The NULL guard enforces at most
// one active enrollment; ErrConflict when already enrolled.
func (s *Store) EnrollLead(ctx context.Context, orgID, leadID, sequenceID uuid.UUID, enrolledAt time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlEnrollLead, leadID, orgID, sequenceID, enrolledAt)
	if err != nil {
		s.logger.Error(ctx, "failed to enroll lead", err)
		return fmt.Errorf("failed to enroll lead: %w", err)
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

const sqlClearLeadSequence = `
UPDATE leads
SET current_sequence_id = NULL,
    enrolled_at = NULL,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2
`

// ClearLeadSequence removes a lead from its current sequence
func (s *Store) ClearLeadSequence(ctx context.Context, orgID, leadID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlClearLeadSequence, leadID, orgID)
	if err != nil {
		s.logger.Error(ctx, "failed to clear lead sequence", err)
		return fmt.Errorf("failed to clear lead sequence: %w", err)
	}
	return nil
}

const sqlGetLeadsDueForFollowUp = `
SELECT ` + leadColumns + `
FROM leads
WHERE organization_id = $1
  AND follow_up_at IS NOT NULL AND follow_up_at <= $2
  AND status NOT IN ('converted', 'lost')
ORDER BY follow_up_at ASC
`

// GetLeadsDueForFollowUp retrieves non-terminal leads whose follow-up time has passed
func (s *Store) GetLeadsDueForFollowUp(ctx context.Context, orgID uuid.UUID, now time.Time) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlGetLeadsDueForFollowUp, orgID, now)
	if err != nil {
		s.logger.Error(ctx, "failed to get leads due for follow-up", err)
		return nil, fmt.Errorf("failed to get leads due for follow-up: %w", err)
	}
	return leads, nil
}

const sqlGetEnrolledLeads = `
SELECT ` + leadColumns + `
FROM leads
WHERE current_sequence_id IS NOT NULL
ORDER BY enrolled_at ASC
LIMIT $1 OFFSET $2
`

// GetEnrolledLeads retrieves leads currently enrolled in any sequence, across
// organizations, for the periodic advance driver
func (s *Store) GetEnrolledLeads(ctx context.Context, limit, offset int) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlGetEnrolledLeads, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to get enrolled leads", err)
		return nil, fmt.Errorf("failed to get enrolled leads: %w", err)
	}
	return leads, nil
}

// ListLeadsParams represents filters for listing leads
type ListLeadsParams struct {
	OrganizationID uuid.UUID
	Status         *string
	Source         *string
	Limit          int
	Offset         int
}

const sqlListLeads = `
SELECT ` + leadColumns + `
FROM leads
WHERE organization_id = $1
  AND ($2::text IS NULL OR status = $2)
  AND ($3::text IS NULL OR source = $3)
ORDER BY created_at DESC
LIMIT $4 OFFSET $5
`

// ListLeads retrieves leads with optional status and source filters
func (s *Store) ListLeads(ctx context.Context, params ListLeadsParams) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlListLeads,
		params.OrganizationID, params.Status, params.Source, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list leads", err)
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}
