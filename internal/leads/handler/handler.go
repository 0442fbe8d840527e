package handler

import (
	"errors"
	"growth-server/internal/leads/processor"
	"growth-server/internal/observability"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.LeadProcessor
	logger    *observability.Logger
}

func New(processor processor.LeadProcessor, logger *observability.Logger) Handler {
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

func (h *Handler) leadID(c *gin.Context) (uuid.UUID, bool) {
	leadID, err := uuid.Parse(c.Param("lead_id"))
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse lead ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
		return uuid.Nil, false
	}
	return leadID, true
}

// CreateLeadRequest represents the HTTP request for capturing a lead
type CreateLeadRequest struct {
	FirstName   string     `json:"first_name" binding:"required"`
	LastName    string     `json:"last_name" binding:"required"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Source      string     `json:"source" binding:"required"`
	UTMSource   *string    `json:"utm_source,omitempty"`
	UTMMedium   *string    `json:"utm_medium,omitempty"`
	UTMCampaign *string    `json:"utm_campaign,omitempty"`
	UTMContent  *string    `json:"utm_content,omitempty"`
	UTMTerm     *string    `json:"utm_term,omitempty"`
	CampaignID  *uuid.UUID `json:"campaign_id,omitempty"`
	ReferralID  *uuid.UUID `json:"referral_id,omitempty"`
	ActorID     *uuid.UUID `json:"actor_id,omitempty"`
}

// HandleCreateLead handles POST /api/v1/leads
func (h *Handler) HandleCreateLead(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	lead, err := h.processor.CreateLead(ctx, orgID, processor.CreateLeadRequest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Source:      req.Source,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
		UTMContent:  req.UTMContent,
		UTMTerm:     req.UTMTerm,
		CampaignID:  req.CampaignID,
		ReferralID:  req.ReferralID,
		ActorID:     req.ActorID,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create lead", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// UpdateStatusRequest represents the HTTP request for a status change
type UpdateStatusRequest struct {
	Status  string     `json:"status" binding:"required"`
	ActorID *uuid.UUID `json:"actor_id,omitempty"`
}

// HandleUpdateStatus handles PATCH /api/v1/leads/:lead_id/status
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	leadID, ok := h.leadID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	lead, err := h.processor.UpdateStatus(ctx, orgID, leadID, req.Status, req.ActorID)
	if err != nil {
		h.logger.Error(ctx, "failed to update lead status", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// ActivityRequest represents the HTTP request for appending an activity
type ActivityRequest struct {
	Note    *string    `json:"note,omitempty"`
	ActorID *uuid.UUID `json:"actor_id,omitempty"`
}

// HandleLogContactAttempt handles POST /api/v1/leads/:lead_id/contact-attempts
func (h *Handler) HandleLogContactAttempt(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	leadID, ok := h.leadID(c)
	if !ok {
		return
	}

	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	activity, err := h.processor.LogContactAttempt(ctx, orgID, leadID, req.Note, req.ActorID)
	if err != nil {
		h.logger.Error(ctx, "failed to log contact attempt", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// AddNoteRequest represents the HTTP request for adding a note
type AddNoteRequest struct {
	Note    string     `json:"note" binding:"required"`
	ActorID *uuid.UUID `json:"actor_id,omitempty"`
}

// HandleAddNote handles POST /api/v1/leads/:lead_id/notes
func (h *Handler) HandleAddNote(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	leadID, ok := h.leadID(c)
	if !ok {
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	activity, err := h.processor.AddNote(ctx, orgID, leadID, req.Note, req.ActorID)
	if err != nil {
		h.logger.Error(ctx, "failed to add note", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// SetFollowUpRequest represents the HTTP request for scheduling a follow-up
type SetFollowUpRequest struct {
	FollowUpAt *time.Time `json:"follow_up_at,omitempty"`
}

// HandleSetFollowUp handles PUT /api/v1/leads/:lead_id/follow-up
func (h *Handler) HandleSetFollowUp(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	leadID, ok := h.leadID(c)
	if !ok {
		return
	}

	var req SetFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.processor.SetFollowUp(ctx, orgID, leadID, req.FollowUpAt); err != nil {
		h.logger.Error(ctx, "failed to set follow-up", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ConvertRequest represents the HTTP request for converting a lead
type ConvertRequest struct {
	PatientID       uuid.UUID  `json:"patient_id" binding:"required"`
	ConversionValue *float64   `json:"conversion_value,omitempty"`
	ActorID         *uuid.UUID `json:"actor_id,omitempty"`
}

// HandleConvertToPatient handles POST /api/v1/leads/:lead_id/convert
func (h *Handler) HandleConvertToPatient(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	leadID, ok := h.leadID(c)
	if !ok {
		return
	}

	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	response, err := h.processor.ConvertToPatient(ctx, orgID, leadID, processor.ConvertRequest{
		PatientID:       req.PatientID,
		ConversionValue: req.ConversionValue,
		ActorID:         req.ActorID,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to convert lead", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleMarkOptedOut handles POST /api/v1/leads/:lead_id/opt-out
func (h *Handler) HandleMarkOptedOut(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	leadID, ok := h.leadID(c)
	if !ok {
		return
	}

	if err := h.processor.MarkOptedOut(ctx, orgID, leadID, nil); err != nil {
		h.logger.Error(ctx, "failed to mark lead opted out", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "opted_out"})
}

// HandleGetLead handles GET /api/v1/leads/:lead_id
func (h *Handler) HandleGetLead(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	leadID, ok := h.leadID(c)
	if !ok {
		return
	}

	lead, err := h.processor.GetLead(ctx, orgID, leadID)
	if err != nil {
		h.logger.Error(ctx, "failed to get lead", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// HandleListLeads handles GET /api/v1/leads
func (h *Handler) HandleListLeads(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var status *string
	if statusParam := c.Query("status"); statusParam != "" {
		status = &statusParam
	}
	var source *string
	if sourceParam := c.Query("source"); sourceParam != "" {
		source = &sourceParam
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	leads, err := h.processor.ListLeads(ctx, orgID, processor.ListLeadsRequest{
		Status: status,
		Source: source,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to list leads", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// HandleListActivities handles GET /api/v1/leads/:lead_id/activities
func (h *Handler) HandleListActivities(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	leadID, ok := h.leadID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	activities, err := h.processor.ListActivities(ctx, orgID, leadID, page, limit)
	if err != nil {
		h.logger.Error(ctx, "failed to list lead activities", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// HandleGetFollowUpsDue handles GET /api/v1/leads/follow-ups
func (h *Handler) HandleGetFollowUpsDue(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	now := time.Now().UTC()
	if nowParam := c.Query("now"); nowParam != "" {
		parsed, err := time.Parse(time.RFC3339, nowParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp"})
			return
		}
		now = parsed
	}

	leads, err := h.processor.GetFollowUpsDue(ctx, orgID, now)
	if err != nil {
		h.logger.Error(ctx, "failed to get follow-ups due", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// handleProcessorError maps processor errors to HTTP responses
func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	var dupErr *processor.DuplicateLeadError
	if errors.As(err, &dupErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":            "duplicate lead",
			"existing_lead_id": dupErr.ExistingLeadID,
		})
		return
	}

	switch err {
	case processor.ErrLeadNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
	case processor.ErrMissingName:
		c.JSON(http.StatusBadRequest, gin.H{"error": "first and last name are required"})
	case processor.ErrMissingContact:
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one of email or phone is required"})
	case processor.ErrInvalidSource:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead source"})
	case processor.ErrInvalidStatus:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead status"})
	case processor.ErrInvalidTransition:
		c.JSON(http.StatusBadRequest, gin.H{"error": "status transition is not allowed"})
	case processor.ErrTerminalStatus:
		c.JSON(http.StatusBadRequest, gin.H{"error": "lead has reached a terminal status"})
	case processor.ErrNoteRequired:
		c.JSON(http.StatusBadRequest, gin.H{"error": "note text is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
