package processor

import (
	"context"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// Store defines the database operations required by CampaignProcessor
type Store interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, orgID, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, orgID uuid.UUID, status *string) ([]store.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, orgID, campaignID uuid.UUID, status string) (store.Campaign, error)
	IncrementCampaignCounters(ctx context.Context, orgID, campaignID uuid.UUID, params store.IncrementCampaignCountersParams) error
	SetCampaignSpend(ctx context.Context, orgID, campaignID uuid.UUID, amount float64) error
	GetCampaignsRankedBy(ctx context.Context, orgID uuid.UUID, metric string, limit int) ([]store.Campaign, error)
	CreateLandingPage(ctx context.Context, params store.CreateLandingPageParams) (store.LandingPage, error)
	GetLandingPageBySlug(ctx context.Context, orgID uuid.UUID, slug string) (store.LandingPage, error)
	IncrementLandingPageViews(ctx context.Context, orgID, pageID uuid.UUID) (store.LandingPage, error)
	IncrementLandingPageSubmissions(ctx context.Context, orgID, pageID uuid.UUID) (store.LandingPage, error)
	ListLandingPagesByCampaign(ctx context.Context, orgID, campaignID uuid.UUID) ([]store.LandingPage, error)
}

// Auditor defines the audit side channel required by CampaignProcessor
type Auditor interface {
	Record(ctx context.Context, orgID uuid.UUID, action, entityType string, entityID uuid.UUID, actorID *uuid.UUID, changes store.JSONB)
}
