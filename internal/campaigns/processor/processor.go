package processor

import (
	"context"
	"errors"
	"growth-server/internal/observability"
	"growth-server/internal/store"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrPageNotFound      = errors.New("landing page not found")
	ErrInvalidType       = errors.New("invalid campaign type")
	ErrInvalidStatus     = errors.New("invalid campaign status")
	ErrInvalidTransition = errors.New("campaign status transition is not allowed")
	ErrTerminalStatus    = errors.New("campaign is in a terminal status")
	ErrInvalidIncrement  = errors.New("increment must be positive")
	ErrInvalidSpend      = errors.New("spend must not be negative")
	ErrInvalidMetric     = errors.New("invalid ranking metric")
	ErrInvalidSlug       = errors.New("slug must be lowercase letters, digits and hyphens")
	ErrSlugTaken         = errors.New("slug is already in use")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// legalTransitions holds the allowed campaign status moves. Terminal statuses
// have no outgoing edges; the store guards them a second time.
var legalTransitions = map[string][]string{
	store.CampaignStatusDraft:     {store.CampaignStatusScheduled, store.CampaignStatusActive, store.CampaignStatusCancelled},
	store.CampaignStatusScheduled: {store.CampaignStatusActive, store.CampaignStatusCancelled},
	store.CampaignStatusActive:    {store.CampaignStatusPaused, store.CampaignStatusCompleted, store.CampaignStatusCancelled},
	store.CampaignStatusPaused:    {store.CampaignStatusActive, store.CampaignStatusCompleted, store.CampaignStatusCancelled},
}

var rankingMetrics = map[string]bool{
	"revenue":     true,
	"leads":       true,
	"conversions": true,
	"clicks":      true,
	"impressions": true,
}

type CampaignProcessor struct {
	store   Store
	auditor Auditor
	logger  *observability.Logger
}

func New(store Store, auditor Auditor, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:   store,
		auditor: auditor,
		logger:  logger,
	}
}

// CreateCampaignRequest represents a request to create a campaign
type CreateCampaignRequest struct {
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

// CreateCampaign creates a draft campaign
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, orgID uuid.UUID, req CreateCampaignRequest) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "campaign_name", Value: req.Name},
	)

	if !isValidType(req.Type) {
		return store.Campaign{}, ErrInvalidType
	}
	if req.Budget != nil && *req.Budget < 0 {
		return store.Campaign{}, ErrInvalidSpend
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		OrganizationID:    orgID,
		Name:              req.Name,
		Type:              req.Type,
		StartDate:         req.StartDate,
		Budget:            req.Budget,
		TargetLeads:       req.TargetLeads,
		TargetConversions: req.TargetConversions,
		TargetRevenue:     req.TargetRevenue,
		UTMSource:         req.UTMSource,
		UTMMedium:         req.UTMMedium,
		UTMCampaign:       req.UTMCampaign,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	p.auditor.Record(ctx, orgID, "campaign.created", "campaign", campaign.ID, nil,
		store.JSONB{"name": campaign.Name, "type": campaign.Type})
	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}

// UpdateStatus moves a campaign along the lifecycle. Activation stamps
// start_date when unset; completion and cancellation stamp end_date.
func (p *CampaignProcessor) UpdateStatus(ctx context.Context, orgID, campaignID uuid.UUID, newStatus string) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	if !isValidStatus(newStatus) {
		return store.Campaign{}, ErrInvalidStatus
	}

	campaign, err := p.store.GetCampaignByID(ctx, orgID, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}

	allowed, hasOutgoing := legalTransitions[campaign.Status]
	if !hasOutgoing {
		return store.Campaign{}, ErrTerminalStatus
	}
	if !contains(allowed, newStatus) {
		return store.Campaign{}, ErrInvalidTransition
	}

	updated, err := p.store.UpdateCampaignStatus(ctx, orgID, campaignID, newStatus)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.Campaign{}, ErrTerminalStatus
		}
		p.logger.Error(ctx, "failed to update campaign status", err)
		return store.Campaign{}, err
	}

	p.auditor.Record(ctx, orgID, "campaign.status_changed", "campaign", campaignID, nil,
		store.JSONB{"old_status": campaign.Status, "new_status": newStatus})
	p.logger.Info(ctx, "campaign status updated")
	return updated, nil
}

// RecordImpressions adds n impressions to a campaign
func (p *CampaignProcessor) RecordImpressions(ctx context.Context, orgID, campaignID uuid.UUID, n int) error {
	if n <= 0 {
		return ErrInvalidIncrement
	}
	return p.increment(ctx, orgID, campaignID, store.IncrementCampaignCountersParams{Impressions: n})
}

// RecordClicks adds n clicks to a campaign
func (p *CampaignProcessor) RecordClicks(ctx context.Context, orgID, campaignID uuid.UUID, n int) error {
	if n <= 0 {
		return ErrInvalidIncrement
	}
	return p.increment(ctx, orgID, campaignID, store.IncrementCampaignCountersParams{Clicks: n})
}

// UpdateSpend sets the absolute spend figure
func (p *CampaignProcessor) UpdateSpend(ctx context.Context, orgID, campaignID uuid.UUID, amount float64) error {
	if amount < 0 {
		return ErrInvalidSpend
	}

	if err := p.store.SetCampaignSpend(ctx, orgID, campaignID, amount); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to set campaign spend", err)
		return err
	}

	p.auditor.Record(ctx, orgID, "campaign.spend_updated", "campaign", campaignID, nil,
		store.JSONB{"spend": amount})
	return nil
}

// RecordLead attributes one new lead to a campaign
func (p *CampaignProcessor) RecordLead(ctx context.Context, orgID, campaignID uuid.UUID) error {
	return p.increment(ctx, orgID, campaignID, store.IncrementCampaignCountersParams{Leads: 1})
}

// RecordConversion attributes one conversion and its revenue to a campaign
func (p *CampaignProcessor) RecordConversion(ctx context.Context, orgID, campaignID uuid.UUID, revenue float64) error {
	if revenue < 0 {
		revenue = 0
	}
	return p.increment(ctx, orgID, campaignID, store.IncrementCampaignCountersParams{Conversions: 1, Revenue: revenue})
}

func (p *CampaignProcessor) increment(ctx context.Context, orgID, campaignID uuid.UUID, params store.IncrementCampaignCountersParams) error {
	if err := p.store.IncrementCampaignCounters(ctx, orgID, campaignID, params); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to increment campaign counters", err)
		return err
	}
	return nil
}

// GetCampaign retrieves a campaign
func (p *CampaignProcessor) GetCampaign(ctx context.Context, orgID, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, orgID, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// ListCampaigns retrieves campaigns with an optional status filter
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, orgID uuid.UUID, status *string) ([]store.Campaign, error) {
	if status != nil && !isValidStatus(*status) {
		return nil, ErrInvalidStatus
	}

	campaigns, err := p.store.ListCampaigns(ctx, orgID, status)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	if campaigns == nil {
		campaigns = []store.Campaign{}
	}
	return campaigns, nil
}

// Metrics reports derived campaign performance figures. Rates with a zero
// denominator are nil rather than an error.
type Metrics struct {
	Impressions      int      `json:"impressions"`
	Clicks           int      `json:"clicks"`
	Spend            float64  `json:"spend"`
	LeadsGenerated   int      `json:"leads_generated"`
	Conversions      int      `json:"conversions"`
	RevenueGenerated float64  `json:"revenue_generated"`
	ClickThroughRate *float64 `json:"click_through_rate,omitempty"`
	CostPerLead      *float64 `json:"cost_per_lead,omitempty"`
	ConversionRate   *float64 `json:"conversion_rate,omitempty"`
	ROI              *float64 `json:"roi,omitempty"`
}

// GetMetrics derives CTR, cost per lead, conversion rate and ROI for a campaign
func (p *CampaignProcessor) GetMetrics(ctx context.Context, orgID, campaignID uuid.UUID) (Metrics, error) {
	campaign, err := p.GetCampaign(ctx, orgID, campaignID)
	if err != nil {
		return Metrics{}, err
	}

	metrics := Metrics{
		Impressions:      campaign.Impressions,
		Clicks:           campaign.Clicks,
		Spend:            campaign.Spend,
		LeadsGenerated:   campaign.LeadsGenerated,
		Conversions:      campaign.Conversions,
		RevenueGenerated: campaign.RevenueGenerated,
	}

	if campaign.Impressions > 0 {
		ctr := float64(campaign.Clicks) / float64(campaign.Impressions)
		metrics.ClickThroughRate = &ctr
	}
	if campaign.LeadsGenerated > 0 {
		cpl := campaign.Spend / float64(campaign.LeadsGenerated)
		metrics.CostPerLead = &cpl
		cr := float64(campaign.Conversions) / float64(campaign.LeadsGenerated)
		metrics.ConversionRate = &cr
	}
	if campaign.Spend > 0 {
		roi := (campaign.RevenueGenerated - campaign.Spend) / campaign.Spend
		metrics.ROI = &roi
	}
	return metrics, nil
}

// GetTopCampaigns ranks campaigns descending by a metric; ties break by
// earliest start date
func (p *CampaignProcessor) GetTopCampaigns(ctx context.Context, orgID uuid.UUID, metric string, limit int) ([]store.Campaign, error) {
	if !rankingMetrics[metric] {
		return nil, ErrInvalidMetric
	}
	if limit < 1 {
		limit = 10
	}

	campaigns, err := p.store.GetCampaignsRankedBy(ctx, orgID, metric, limit)
	if err != nil {
		p.logger.Error(ctx, "failed to rank campaigns", err)
		return nil, err
	}
	if campaigns == nil {
		campaigns = []store.Campaign{}
	}
	return campaigns, nil
}

// PageWithRate decorates a landing page with its derived conversion rate
type PageWithRate struct {
	store.LandingPage
	ConversionRate float64 `json:"conversion_rate"`
}

// CreateLandingPage creates a landing page under a campaign
func (p *CampaignProcessor) CreateLandingPage(ctx context.Context, orgID, campaignID uuid.UUID, name, slug string) (store.LandingPage, error) {
	if !slugPattern.MatchString(slug) {
		return store.LandingPage{}, ErrInvalidSlug
	}

	if _, err := p.GetCampaign(ctx, orgID, campaignID); err != nil {
		return store.LandingPage{}, err
	}

	page, err := p.store.CreateLandingPage(ctx, store.CreateLandingPageParams{
		OrganizationID: orgID,
		CampaignID:     campaignID,
		Name:           name,
		Slug:           slug,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.LandingPage{}, ErrSlugTaken
		}
		p.logger.Error(ctx, "failed to create landing page", err)
		return store.LandingPage{}, err
	}

	p.auditor.Record(ctx, orgID, "landing_page.created", "landing_page", page.ID, nil,
		store.JSONB{"slug": page.Slug})
	return page, nil
}

// GetLandingPage retrieves a landing page by slug with its conversion rate
func (p *CampaignProcessor) GetLandingPage(ctx context.Context, orgID uuid.UUID, slug string) (PageWithRate, error) {
	page, err := p.store.GetLandingPageBySlug(ctx, orgID, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PageWithRate{}, ErrPageNotFound
		}
		p.logger.Error(ctx, "failed to get landing page", err)
		return PageWithRate{}, err
	}
	return withRate(page), nil
}

// RecordPageView counts one landing page view
func (p *CampaignProcessor) RecordPageView(ctx context.Context, orgID, pageID uuid.UUID) (PageWithRate, error) {
	page, err := p.store.IncrementLandingPageViews(ctx, orgID, pageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PageWithRate{}, ErrPageNotFound
		}
		p.logger.Error(ctx, "failed to record page view", err)
		return PageWithRate{}, err
	}
	return withRate(page), nil
}

// RecordPageSubmission counts one form submission and feeds the owning
// campaign's lead counter
func (p *CampaignProcessor) RecordPageSubmission(ctx context.Context, orgID, pageID uuid.UUID) (PageWithRate, error) {
	page, err := p.store.IncrementLandingPageSubmissions(ctx, orgID, pageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PageWithRate{}, ErrPageNotFound
		}
		p.logger.Error(ctx, "failed to record page submission", err)
		return PageWithRate{}, err
	}

	if err := p.RecordLead(ctx, orgID, page.CampaignID); err != nil {
		p.logger.InfoWithError(ctx, "failed to attribute page submission to campaign", err)
	}
	return withRate(page), nil
}

// ListLandingPages retrieves a campaign's landing pages with conversion rates
func (p *CampaignProcessor) ListLandingPages(ctx context.Context, orgID, campaignID uuid.UUID) ([]PageWithRate, error) {
	pages, err := p.store.ListLandingPagesByCampaign(ctx, orgID, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list landing pages", err)
		return nil, err
	}

	decorated := make([]PageWithRate, 0, len(pages))
	for _, page := range pages {
		decorated = append(decorated, withRate(page))
	}
	return decorated, nil
}

func withRate(page store.LandingPage) PageWithRate {
	rate := 0.0
	if page.Views > 0 {
		rate = float64(page.Submissions) / float64(page.Views)
	}
	return PageWithRate{LandingPage: page, ConversionRate: rate}
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func isValidType(campaignType string) bool {
	validTypes := map[string]bool{
		store.CampaignTypeGoogleAds:   true,
		store.CampaignTypeFacebookAds: true,
		store.CampaignTypeEmail:       true,
		store.CampaignTypePrint:       true,
		store.CampaignTypeEvent:       true,
		store.CampaignTypeOther:       true,
	}
	return validTypes[campaignType]
}

func isValidStatus(status string) bool {
	validStatuses := map[string]bool{
		store.CampaignStatusDraft:     true,
		store.CampaignStatusScheduled: true,
		store.CampaignStatusActive:    true,
		store.CampaignStatusPaused:    true,
		store.CampaignStatusCompleted: true,
		store.CampaignStatusCancelled: true,
	}
	return validStatuses[status]
}
