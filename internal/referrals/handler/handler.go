package handler

import (
	"growth-server/internal/observability"
	"growth-server/internal/referrals/processor"
	"growth-server/internal/referrals/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ReferralProcessor
	logger    *observability.Logger
	baseURL   string
}

func New(processor processor.ReferralProcessor, logger *observability.Logger, baseURL string) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
		baseURL:   baseURL,
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

// CreateProgramRequest represents the HTTP request for creating a program
type CreateProgramRequest struct {
	Name                   string     `json:"name" binding:"required"`
	ReferrerRewardType     string     `json:"referrer_reward_type" binding:"required"`
	ReferrerRewardValue    float64    `json:"referrer_reward_value" binding:"required"`
	ReferrerRewardMax      *float64   `json:"referrer_reward_max,omitempty"`
	RefereeRewardType      *string    `json:"referee_reward_type,omitempty"`
	RefereeRewardValue     *float64   `json:"referee_reward_value,omitempty"`
	QualificationCriteria  *string    `json:"qualification_criteria,omitempty"`
	ExpirationDays         int        `json:"expiration_days,omitempty"`
	MaxReferralsPerPatient *int       `json:"max_referrals_per_patient,omitempty"`
	RequireNewPatient      bool       `json:"require_new_patient,omitempty"`
	StartsAt               *time.Time `json:"starts_at,omitempty"`
	EndsAt                 *time.Time `json:"ends_at,omitempty"`
}

// HandleCreateProgram handles POST /api/v1/referral-programs
func (h *Handler) HandleCreateProgram(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	program, err := h.processor.CreateProgram(ctx, orgID, processor.CreateProgramRequest{
		Name:                   req.Name,
		ReferrerRewardType:     req.ReferrerRewardType,
		ReferrerRewardValue:    req.ReferrerRewardValue,
		ReferrerRewardMax:      req.ReferrerRewardMax,
		RefereeRewardType:      req.RefereeRewardType,
		RefereeRewardValue:     req.RefereeRewardValue,
		QualificationCriteria:  req.QualificationCriteria,
		ExpirationDays:         req.ExpirationDays,
		MaxReferralsPerPatient: req.MaxReferralsPerPatient,
		RequireNewPatient:      req.RequireNewPatient,
		StartsAt:               req.StartsAt,
		EndsAt:                 req.EndsAt,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create referral program", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, program)
}

// CreateReferralRequest represents the HTTP request for creating a referral
type CreateReferralRequest struct {
	ProgramID      uuid.UUID `json:"program_id" binding:"required"`
	ReferrerID     uuid.UUID `json:"referrer_id" binding:"required"`
	RefereeContact *string   `json:"referee_contact,omitempty"`
	UTMSource      *string   `json:"utm_source,omitempty"`
	UTMMedium      *string   `json:"utm_medium,omitempty"`
	UTMCampaign    *string   `json:"utm_campaign,omitempty"`
}

// CreateReferralResponse carries the created referral and its share link
type CreateReferralResponse struct {
	Referral     interface{} `json:"referral"`
	ReferralLink string      `json:"referral_link"`
}

// HandleCreateReferral handles POST /api/v1/referrals
func (h *Handler) HandleCreateReferral(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req CreateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	referral, err := h.processor.CreateReferral(ctx, orgID, processor.CreateReferralRequest{
		ProgramID:      req.ProgramID,
		ReferrerID:     req.ReferrerID,
		RefereeContact: req.RefereeContact,
		UTMSource:      req.UTMSource,
		UTMMedium:      req.UTMMedium,
		UTMCampaign:    req.UTMCampaign,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create referral", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateReferralResponse{
		Referral:     referral,
		ReferralLink: utils.BuildReferralLink(h.baseURL, referral.ReferralCode),
	})
}

// LinkRefereeRequest represents the HTTP request for linking a referee
type LinkRefereeRequest struct {
	ReferralCode    string    `json:"referral_code" binding:"required"`
	PatientID       uuid.UUID `json:"patient_id" binding:"required"`
	ExistingPatient bool      `json:"existing_patient,omitempty"`
}

// HandleLinkReferee handles POST /api/v1/referrals/link
func (h *Handler) HandleLinkReferee(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req LinkRefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	referral, err := h.processor.LinkRefereePatient(ctx, orgID, processor.LinkRefereeRequest{
		ReferralCode:    req.ReferralCode,
		PatientID:       req.PatientID,
		ExistingPatient: req.ExistingPatient,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to link referee", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, referral)
}

// CompleteReferralRequest represents the HTTP request for completing a referral
type CompleteReferralRequest struct {
	ConversionValue *float64 `json:"conversion_value,omitempty"`
}

// HandleCompleteReferral handles POST /api/v1/referrals/:referral_id/complete
func (h *Handler) HandleCompleteReferral(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	referralID, err := uuid.Parse(c.Param("referral_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse referral ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referral id"})
		return
	}

	var req CompleteReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	response, err := h.processor.CompleteReferral(ctx, orgID, processor.CompleteReferralRequest{
		ReferralID:      referralID,
		ConversionValue: req.ConversionValue,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to complete referral", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleGetReferral handles GET /api/v1/referrals/:referral_id
func (h *Handler) HandleGetReferral(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	referralID, err := uuid.Parse(c.Param("referral_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse referral ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referral id"})
		return
	}

	referral, err := h.processor.GetReferral(ctx, orgID, referralID)
	if err != nil {
		h.logger.Error(ctx, "failed to get referral", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, referral)
}

// HandleListReferrals handles GET /api/v1/referrals
func (h *Handler) HandleListReferrals(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var programID *uuid.UUID
	if programParam := c.Query("program_id"); programParam != "" {
		parsed, err := uuid.Parse(programParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program id"})
			return
		}
		programID = &parsed
	}

	var status *string
	if statusParam := c.Query("status"); statusParam != "" {
		status = &statusParam
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	referrals, err := h.processor.ListReferrals(ctx, orgID, processor.ListReferralsRequest{
		ProgramID: programID,
		Status:    status,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to list referrals", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"referrals": referrals})
}

// HandleCancelReferral handles POST /api/v1/referrals/:referral_id/cancel
func (h *Handler) HandleCancelReferral(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	referralID, err := uuid.Parse(c.Param("referral_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse referral ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referral id"})
		return
	}

	if err := h.processor.CancelReferral(ctx, orgID, referralID); err != nil {
		h.logger.Error(ctx, "failed to cancel referral", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// HandleGetStatistics handles GET /api/v1/referrals/statistics
func (h *Handler) HandleGetStatistics(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}

	stats, err := h.processor.GetStatistics(ctx, orgID, from, to)
	if err != nil {
		h.logger.Error(ctx, "failed to get referral statistics", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleGetTopReferrers handles GET /api/v1/referrals/top-referrers
func (h *Handler) HandleGetTopReferrers(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	referrers, err := h.processor.GetTopReferrers(ctx, orgID, from, to, limit)
	if err != nil {
		h.logger.Error(ctx, "failed to get top referrers", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"referrers": referrers})
}

// parseDateRange reads optional from/to query params, defaulting to the last
// 30 days.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if fromParam := c.Query("from"); fromParam != "" {
		parsed, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if toParam := c.Query("to"); toParam != "" {
		parsed, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}

// handleProcessorError maps processor errors to HTTP responses
func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	switch err {
	case processor.ErrProgramNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "referral program not found"})
	case processor.ErrReferralNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "referral not found"})
	case processor.ErrProgramInactive:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "referral program is not active"})
	case processor.ErrReferralLimitReached:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "referral limit reached for this patient"})
	case processor.ErrAlreadyLinked:
		c.JSON(http.StatusConflict, gin.H{"error": "referral already has a linked referee"})
	case processor.ErrInvalidStatus:
		c.JSON(http.StatusConflict, gin.H{"error": "referral is not in a valid status for this operation"})
	case processor.ErrReferralExpired:
		c.JSON(http.StatusGone, gin.H{"error": "referral has expired"})
	case processor.ErrInvalidRewardType:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reward type"})
	case processor.ErrInvalidRewardValue:
		c.JSON(http.StatusBadRequest, gin.H{"error": "reward value must be positive"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
