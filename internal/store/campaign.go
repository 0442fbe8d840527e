package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const campaignColumns = `id, organization_id, name, type, status, start_date, end_date,
    budget, target_leads, target_conversions, target_revenue,
    impressions, clicks, spend, leads_generated, conversions, revenue_generated,
    utm_source, utm_medium, utm_campaign, created_at, updated_at`

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	OrganizationID    uuid.UUID
	Name              string
	Type              string
	StartDate         *time.Time
	Budget            *float64
	TargetLeads       *int
	TargetConversions *int
	TargetRevenue     *float64
	UTMSource         *string
	UTMMedium         *string
	UTMCampaign       *string
}

const sqlCreateCampaign = `
INSERT INTO campaigns (organization_id, name, type, status, start_date, budget,
    target_leads, target_conversions, target_revenue, utm_source, utm_medium, utm_campaign)
VALUES ($1, $2, $3, 'draft', $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + campaignColumns

// CreateCampaign creates a new draft campaign
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.OrganizationID,
		params.Name,
		params.Type,
		params.StartDate,
		params.Budget,
		params.TargetLeads,
		params.TargetConversions,
		params.TargetRevenue,
		params.UTMSource,
		params.UTMMedium,
		params.UTMCampaign)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1 AND organization_id = $2
`

// GetCampaignByID retrieves a campaign scoped to an organization
func (s *Store) GetCampaignByID(ctx context.Context, orgID, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlListCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE organization_id = $1
  AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC
`

// ListCampaigns retrieves campaigns with an optional status filter
func (s *Store) ListCampaigns(ctx context.Context, orgID uuid.UUID, status *string) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, orgID, status)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlUpdateCampaignStatus = `
UPDATE campaigns
SET status = $3,
    start_date = CASE WHEN $3 = 'active' AND start_date IS NULL THEN CURRENT_TIMESTAMP ELSE start_date END,
    end_date = CASE WHEN $3 IN ('completed', 'cancelled') THEN CURRENT_TIMESTAMP ELSE end_date END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status NOT IN ('completed', 'cancelled')
RETURNING ` + campaignColumns

// UpdateCampaignStatus moves a non-terminal campaign to a new status.
// ErrConflict when the campaign has already completed or been cancelled.
func (s *Store) UpdateCampaignStatus(ctx context.Context, orgID, campaignID uuid.UUID, status string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaignStatus, campaignID, orgID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to update campaign status", err)
		return Campaign{}, fmt.Errorf("failed to update campaign status: %w", err)
	}
	return campaign, nil
}

const sqlIncrementCampaignCounters = `
UPDATE campaigns
SET impressions = impressions + $3,
    clicks = clicks + $4,
    leads_generated = leads_generated + $5,
    conversions = conversions + $6,
    revenue_generated = revenue_generated + $7,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2
`

// IncrementCampaignCountersParams carries the monotonic metric increments
type IncrementCampaignCountersParams struct {
	Impressions int
	Clicks      int
	Leads       int
	Conversions int
	Revenue     float64
}

// IncrementCampaignCounters applies monotonic increments to campaign metrics.
// Counters only ever grow; spend is set absolutely via SetCampaignSpend.
func (s *Store) IncrementCampaignCounters(ctx context.Context, orgID, campaignID uuid.UUID, params IncrementCampaignCountersParams) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementCampaignCounters, campaignID, orgID,
		params.Impressions, params.Clicks, params.Leads, params.Conversions, params.Revenue)
	if err != nil {
		s.logger.Error(ctx, "failed to increment campaign counters", err)
		return fmt.Errorf("failed to increment campaign counters: %w", err)
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

const sqlSetCampaignSpend = `
UPDATE campaigns
SET spend = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2
`

// SetCampaignSpend sets the absolute spend figure for a campaign
func (s *Store) SetCampaignSpend(ctx context.Context, orgID, campaignID uuid.UUID, amount float64) error {
	res, err := s.db.ExecContext(ctx, sqlSetCampaignSpend, campaignID, orgID, amount)
	if err != nil {
		s.logger.Error(ctx, "failed to set campaign spend", err)
		return fmt.Errorf("failed to set campaign spend: %w", err)
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

const sqlGetCampaignsRankedBy = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE organization_id = $1
ORDER BY
    CASE $2
        WHEN 'leads' THEN leads_generated
        WHEN 'conversions' THEN conversions
        WHEN 'clicks' THEN clicks
        WHEN 'impressions' THEN impressions
        ELSE revenue_generated
    END DESC,
    start_date ASC NULLS LAST
LIMIT $3
`

// GetCampaignsRankedBy retrieves campaigns ranked descending by the requested
// metric; ties break by earliest start date
func (s *Store) GetCampaignsRankedBy(ctx context.Context, orgID uuid.UUID, metric string, limit int) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetCampaignsRankedBy, orgID, metric, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to rank campaigns", err)
		return nil, fmt.Errorf("failed to rank campaigns: %w", err)
	}
	return campaigns, nil
}
