package handler

import (
	"context"
	"growth-server/internal/campaigns/processor"
	"growth-server/internal/observability"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

func (h *Handler) organizationID(c *gin.Context) (uuid.UUID, bool) {
	ctx := c.Request.Context()

	orgIDStr, exists := c.Get("Organization-ID")
	if !exists {
		h.logger.Error(ctx, "organization ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}

	orgID, err := uuid.Parse(orgIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse organization ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return uuid.Nil, false
	}
	return orgID, true
}

func (h *Handler) campaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse campaign ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return uuid.Nil, false
	}
	return campaignID, true
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name              string     `json:"name" binding:"required"`
	Type              string     `json:"type" binding:"required"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	Budget            *float64   `json:"budget,omitempty"`
	TargetLeads       *int       `json:"target_leads,omitempty"`
	TargetConversions *int       `json:"target_conversions,omitempty"`
	TargetRevenue     *float64   `json:"target_revenue,omitempty"`
	UTMSource         *string    `json:"utm_source,omitempty"`
	UTMMedium         *string    `json:"utm_medium,omitempty"`
	UTMCampaign       *string    `json:"utm_campaign,omitempty"`
}

// HandleCreateCampaign handles POST /api/v1/campaigns
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, orgID, processor.CreateCampaignRequest{
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
		h.logger.Error(ctx, "failed to create campaign", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// UpdateStatusRequest represents the HTTP request for a status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// HandleUpdateStatus handles PUT /api/v1/campaigns/:campaign_id/status
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	campaign, err := h.processor.UpdateStatus(ctx, orgID, campaignID, req.Status)
	if err != nil {
		h.logger.Error(ctx, "failed to update campaign status", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// RecordCountRequest represents a monotonic counter increment
type RecordCountRequest struct {
	Count int `json:"count" binding:"required"`
}

// HandleRecordImpressions handles POST /api/v1/campaigns/:campaign_id/impressions
func (h *Handler) HandleRecordImpressions(c *gin.Context) {
	h.recordCount(c, h.processor.RecordImpressions)
}

// HandleRecordClicks handles POST /api/v1/campaigns/:campaign_id/clicks
func (h *Handler) HandleRecordClicks(c *gin.Context) {
	h.recordCount(c, h.processor.RecordClicks)
}

func (h *Handler) recordCount(c *gin.Context, record func(ctx context.Context, orgID, campaignID uuid.UUID, n int) error) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	var req RecordCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := record(ctx, orgID, campaignID, req.Count); err != nil {
		h.logger.Error(ctx, "failed to record campaign counter", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recorded": req.Count})
}

// UpdateSpendRequest represents the HTTP request for an absolute spend update
type UpdateSpendRequest struct {
	Amount float64 `json:"amount"`
}

// HandleUpdateSpend handles PUT /api/v1/campaigns/:campaign_id/spend
func (h *Handler) HandleUpdateSpend(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	var req UpdateSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.processor.UpdateSpend(ctx, orgID, campaignID, req.Amount); err != nil {
		h.logger.Error(ctx, "failed to update campaign spend", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"spend": req.Amount})
}

// HandleGetCampaign handles GET /api/v1/campaigns/:campaign_id
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, orgID, campaignID)
	if err != nil {
		h.logger.Error(ctx, "failed to get campaign", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleListCampaigns handles GET /api/v1/campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var status *string
	if statusStr := c.Query("status"); statusStr != "" {
		status = &statusStr
	}

	campaigns, err := h.processor.ListCampaigns(ctx, orgID, status)
	if err != nil {
		h.logger.Error(ctx, "failed to list campaigns", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleGetMetrics handles GET /api/v1/campaigns/:campaign_id/metrics
func (h *Handler) HandleGetMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	metrics, err := h.processor.GetMetrics(ctx, orgID, campaignID)
	if err != nil {
		h.logger.Error(ctx, "failed to get campaign metrics", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// HandleGetTopCampaigns handles GET /api/v1/campaigns/top
func (h *Handler) HandleGetTopCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	metric := c.DefaultQuery("metric", "revenue")
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	campaigns, err := h.processor.GetTopCampaigns(ctx, orgID, metric, limit)
	if err != nil {
		h.logger.Error(ctx, "failed to get top campaigns", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// CreateLandingPageRequest represents the HTTP request for creating a landing page
type CreateLandingPageRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// HandleCreateLandingPage handles POST /api/v1/campaigns/:campaign_id/landing-pages
func (h *Handler) HandleCreateLandingPage(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	var req CreateLandingPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	page, err := h.processor.CreateLandingPage(ctx, orgID, campaignID, req.Name, req.Slug)
	if err != nil {
		h.logger.Error(ctx, "failed to create landing page", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, page)
}

// HandleListLandingPages handles GET /api/v1/campaigns/:campaign_id/landing-pages
func (h *Handler) HandleListLandingPages(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	pages, err := h.processor.ListLandingPages(ctx, orgID, campaignID)
	if err != nil {
		h.logger.Error(ctx, "failed to list landing pages", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"landing_pages": pages})
}

// HandleGetLandingPage handles GET /api/v1/landing-pages/:slug
func (h *Handler) HandleGetLandingPage(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	page, err := h.processor.GetLandingPage(ctx, orgID, c.Param("slug"))
	if err != nil {
		h.logger.Error(ctx, "failed to get landing page", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *Handler) pageID(c *gin.Context) (uuid.UUID, bool) {
	pageID, err := uuid.Parse(c.Param("page_id"))
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse landing page ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid landing page id"})
		return uuid.Nil, false
	}
	return pageID, true
}

// HandleRecordPageView handles POST /api/v1/landing-pages/:page_id/views
func (h *Handler) HandleRecordPageView(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	pageID, ok := h.pageID(c)
	if !ok {
		return
	}

	page, err := h.processor.RecordPageView(ctx, orgID, pageID)
	if err != nil {
		h.logger.Error(ctx, "failed to record page view", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// HandleRecordPageSubmission handles POST /api/v1/landing-pages/:page_id/submissions
func (h *Handler) HandleRecordPageSubmission(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	pageID, ok := h.pageID(c)
	if !ok {
		return
	}

	page, err := h.processor.RecordPageSubmission(ctx, orgID, pageID)
	if err != nil {
		h.logger.Error(ctx, "failed to record page submission", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// handleProcessorError maps processor errors to HTTP responses
func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	switch err {
	case processor.ErrCampaignNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
	case processor.ErrPageNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "landing page not found"})
	case processor.ErrInvalidType:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign type"})
	case processor.ErrInvalidStatus:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign status"})
	case processor.ErrInvalidTransition:
		c.JSON(http.StatusConflict, gin.H{"error": "campaign status transition is not allowed"})
	case processor.ErrTerminalStatus:
		c.JSON(http.StatusConflict, gin.H{"error": "campaign is in a terminal status"})
	case processor.ErrInvalidIncrement:
		c.JSON(http.StatusBadRequest, gin.H{"error": "increment must be positive"})
	case processor.ErrInvalidSpend:
		c.JSON(http.StatusBadRequest, gin.H{"error": "spend must not be negative"})
	case processor.ErrInvalidMetric:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ranking metric"})
	case processor.ErrInvalidSlug:
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug must be lowercase letters, digits and hyphens"})
	case processor.ErrSlugTaken:
		c.JSON(http.StatusConflict, gin.H{"error": "slug is already in use"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
