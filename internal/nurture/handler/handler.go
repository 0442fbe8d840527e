package handler

import (
	"growth-server/internal/nurture/processor"
	"growth-server/internal/observability"
	"growth-server/internal/store"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.NurtureProcessor
	logger    *observability.Logger
}

func New(processor processor.NurtureProcessor, logger *observability.Logger) Handler {
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

func (h *Handler) sequenceID(c *gin.Context) (uuid.UUID, bool) {
	sequenceID, err := uuid.Parse(c.Param("sequence_id"))
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse sequence ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sequence id"})
		return uuid.Nil, false
	}
	return sequenceID, true
}

// CreateSequenceRequest represents the HTTP request for creating a sequence
type CreateSequenceRequest struct {
	Name              string   `json:"name" binding:"required"`
	TriggerType       string   `json:"trigger_type" binding:"required"`
	TriggerValue      *string  `json:"trigger_value,omitempty"`
	MinScore          *int     `json:"min_score,omitempty"`
	MaxScore          *int     `json:"max_score,omitempty"`
	EligibleSources   []string `json:"eligible_sources,omitempty"`
	ExitOnConversion  bool     `json:"exit_on_conversion,omitempty"`
	ExitOnUnsubscribe bool     `json:"exit_on_unsubscribe,omitempty"`
	MaxDays           int      `json:"max_days,omitempty"`
}

// HandleCreateSequence handles POST /api/v1/nurture-sequences
func (h *Handler) HandleCreateSequence(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req CreateSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sequence, err := h.processor.CreateSequence(ctx, orgID, processor.CreateSequenceRequest{
		Name:              req.Name,
		TriggerType:       req.TriggerType,
		TriggerValue:      req.TriggerValue,
		MinScore:          req.MinScore,
		MaxScore:          req.MaxScore,
		EligibleSources:   req.EligibleSources,
		ExitOnConversion:  req.ExitOnConversion,
		ExitOnUnsubscribe: req.ExitOnUnsubscribe,
		MaxDays:           req.MaxDays,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create sequence", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sequence)
}

// AddStepRequest represents the HTTP request for appending a step
type AddStepRequest struct {
	Name       string      `json:"name" binding:"required"`
	DelayDays  int         `json:"delay_days"`
	DelayHours int         `json:"delay_hours"`
	SendTime   *string     `json:"send_time,omitempty"`
	ActionType string      `json:"action_type" binding:"required"`
	Payload    store.JSONB `json:"payload,omitempty"`
	Condition  store.JSONB `json:"condition,omitempty"`
}

// HandleAddStep handles POST /api/v1/nurture-sequences/:sequence_id/steps
func (h *Handler) HandleAddStep(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	sequenceID, ok := h.sequenceID(c)
	if !ok {
		return
	}

	var req AddStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	step, err := h.processor.AddStep(ctx, orgID, sequenceID, processor.AddStepRequest{
		Name:       req.Name,
		DelayDays:  req.DelayDays,
		DelayHours: req.DelayHours,
		SendTime:   req.SendTime,
		ActionType: req.ActionType,
		Payload:    req.Payload,
		Condition:  req.Condition,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to add step", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, step)
}

// HandleActivateSequence handles POST /api/v1/nurture-sequences/:sequence_id/activate
func (h *Handler) HandleActivateSequence(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	sequenceID, ok := h.sequenceID(c)
	if !ok {
		return
	}

	if err := h.processor.ActivateSequence(ctx, orgID, sequenceID); err != nil {
		h.logger.Error(ctx, "failed to activate sequence", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": store.SequenceStatusActive})
}

// HandlePauseSequence handles POST /api/v1/nurture-sequences/:sequence_id/pause
func (h *Handler) HandlePauseSequence(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	sequenceID, ok := h.sequenceID(c)
	if !ok {
		return
	}

	if err := h.processor.PauseSequence(ctx, orgID, sequenceID); err != nil {
		h.logger.Error(ctx, "failed to pause sequence", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": store.SequenceStatusPaused})
}

// HandleResumeSequence handles POST /api/v1/nurture-sequences/:sequence_id/resume
func (h *Handler) HandleResumeSequence(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	sequenceID, ok := h.sequenceID(c)
	if !ok {
		return
	}

	if err := h.processor.ResumeSequence(ctx, orgID, sequenceID); err != nil {
		h.logger.Error(ctx, "failed to resume sequence", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": store.SequenceStatusActive})
}

// HandleGetSequence handles GET /api/v1/nurture-sequences/:sequence_id
func (h *Handler) HandleGetSequence(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	sequenceID, ok := h.sequenceID(c)
	if !ok {
		return
	}

	sequence, err := h.processor.GetSequence(ctx, orgID, sequenceID)
	if err != nil {
		h.logger.Error(ctx, "failed to get sequence", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, sequence)
}

// HandleListSequences handles GET /api/v1/nurture-sequences
func (h *Handler) HandleListSequences(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	sequences, err := h.processor.ListSequences(ctx, orgID)
	if err != nil {
		h.logger.Error(ctx, "failed to list sequences", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sequences": sequences})
}

// EnrollLeadRequest represents the HTTP request for enrolling a lead
type EnrollLeadRequest struct {
	LeadID uuid.UUID `json:"lead_id" binding:"required"`
}

// HandleEnrollLead handles POST /api/v1/nurture-sequences/:sequence_id/enroll
func (h *Handler) HandleEnrollLead(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	sequenceID, ok := h.sequenceID(c)
	if !ok {
		return
	}

	var req EnrollLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.processor.EnrollLead(ctx, orgID, req.LeadID, sequenceID); err != nil {
		h.logger.Error(ctx, "failed to enroll lead", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "enrolled"})
}

// HandleAdvanceLead handles POST /api/v1/leads/:lead_id/advance. Exposed for
// operators; the periodic job is the usual driver.
func (h *Handler) HandleAdvanceLead(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	leadID, err := uuid.Parse(c.Param("lead_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse lead ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
		return
	}

	result, err := h.processor.AdvanceLead(ctx, orgID, leadID, time.Now().UTC())
	if err != nil {
		h.logger.Error(ctx, "failed to advance lead", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleProcessorError maps processor errors to HTTP responses
func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	switch err {
	case processor.ErrSequenceNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "sequence not found"})
	case processor.ErrLeadNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
	case processor.ErrSequenceNotDraft:
		c.JSON(http.StatusConflict, gin.H{"error": "sequence can only be edited in draft status"})
	case processor.ErrSequenceNotActive:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "sequence is not active"})
	case processor.ErrSequenceHasNoSteps:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "sequence has no steps"})
	case processor.ErrInvalidStatusMove:
		c.JSON(http.StatusConflict, gin.H{"error": "sequence status transition is not allowed"})
	case processor.ErrAlreadyEnrolled:
		c.JSON(http.StatusConflict, gin.H{"error": "lead is already enrolled in a sequence"})
	case processor.ErrLeadNotEligible:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "lead does not meet the sequence eligibility rules"})
	case processor.ErrInvalidTrigger:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sequence trigger type"})
	case processor.ErrInvalidAction:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step action type"})
	case processor.ErrInvalidDelay:
		c.JSON(http.StatusBadRequest, gin.H{"error": "step delay must not be negative"})
	case processor.ErrInvalidScoreRange:
		c.JSON(http.StatusBadRequest, gin.H{"error": "min score must not exceed max score"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
