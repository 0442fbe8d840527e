package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const landingPageColumns = `id, organization_id, campaign_id, name, slug, views, submissions, created_at, updated_at`

// CreateLandingPageParams represents parameters for creating a landing page
type CreateLandingPageParams struct {
	OrganizationID uuid.UUID
	CampaignID     uuid.UUID
	Name           string
	Slug           string
}

const sqlCreateLandingPage = `
INSERT INTO landing_pages (organization_id, campaign_id, name, slug)
VALUES ($1, $2, $3, $4)
RETURNING ` + landingPageColumns

// CreateLandingPage creates a landing page tied to a campaign. ErrConflict on
// a duplicate slug within the organization.
func (s *Store) CreateLandingPage(ctx context.Context, params CreateLandingPageParams) (LandingPage, error) {
	var page LandingPage
	err := s.db.GetContext(ctx, &page, sqlCreateLandingPage,
		params.OrganizationID, params.CampaignID, params.Name, params.Slug)
	if err != nil {
		if isUniqueViolation(err) {
			return LandingPage{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to create landing page", err)
		return LandingPage{}, fmt.Errorf("failed to create landing page: %w", err)
	}
	return page, nil
}

const sqlGetLandingPageBySlug = `
SELECT ` + landingPageColumns + `
FROM landing_pages
WHERE organization_id = $1 AND slug = $2
`

// GetLandingPageBySlug retrieves a landing page by slug within an organization
func (s *Store) GetLandingPageBySlug(ctx context.Context, orgID uuid.UUID, slug string) (LandingPage, error) {
	var page LandingPage
	err := s.db.GetContext(ctx, &page, sqlGetLandingPageBySlug, orgID, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LandingPage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get landing page by slug", err)
		return LandingPage{}, fmt.Errorf("failed to get landing page by slug: %w", err)
	}
	return page, nil
}

const sqlIncrementLandingPageViews = `
UPDATE landing_pages
SET views = views + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2
RETURNING ` + landingPageColumns

// IncrementLandingPageViews adds one page view
func (s *Store) IncrementLandingPageViews(ctx context.Context, orgID, pageID uuid.UUID) (LandingPage, error) {
	var page LandingPage
	err := s.db.GetContext(ctx, &page, sqlIncrementLandingPageViews, pageID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LandingPage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to increment landing page views", err)
		return LandingPage{}, fmt.Errorf("failed to increment landing page views: %w", err)
	}
	return page, nil
}

const sqlIncrementLandingPageSubmissions = `
UPDATE landing_pages
SET submissions = submissions + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2
RETURNING ` + landingPageColumns

// IncrementLandingPageSubmissions adds one form submission
func (s *Store) IncrementLandingPageSubmissions(ctx context.Context, orgID, pageID uuid.UUID) (LandingPage, error) {
	var page LandingPage
	err := s.db.GetContext(ctx, &page, sqlIncrementLandingPageSubmissions, pageID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LandingPage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to increment landing page submissions", err)
		return LandingPage{}, fmt.Errorf("failed to increment landing page submissions: %w", err)
	}
	return page, nil
}

const sqlListLandingPagesByCampaign = `
SELECT ` + landingPageColumns + `
FROM landing_pages
WHERE organization_id = $1 AND campaign_id = $2
ORDER BY created_at DESC
`

// ListLandingPagesByCampaign retrieves a campaign's landing pages
func (s *Store) ListLandingPagesByCampaign(ctx context.Context, orgID, campaignID uuid.UUID) ([]LandingPage, error) {
	var pages []LandingPage
	err := s.db.SelectContext(ctx, &pages, sqlListLandingPagesByCampaign, orgID, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list landing pages", err)
		return nil, fmt.Errorf("failed to list landing pages: %w", err)
	}
	return pages, nil
}
