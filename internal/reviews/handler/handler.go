package handler

import (
	"growth-server/internal/observability"
	"growth-server/internal/reviews/processor"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ReviewProcessor
	logger    *observability.Logger
}

func New(processor processor.ReviewProcessor, logger *observability.Logger) Handler {
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

func (h *Handler) requestID(c *gin.Context) (uuid.UUID, bool) {
	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse review request ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review request id"})
		return uuid.Nil, false
	}
	return requestID, true
}

// CreateReviewRequestRequest represents the HTTP request for scheduling a review ask
type CreateReviewRequestRequest struct {
	PatientID                uuid.UUID  `json:"patient_id" binding:"required"`
	Platform                 string     `json:"platform" binding:"required"`
	TriggeredByAppointmentID *uuid.UUID `json:"triggered_by_appointment_id,omitempty"`
	RecipientContact         string     `json:"recipient_contact" binding:"required"`
	ScheduledFor             *time.Time `json:"scheduled_for,omitempty"`
}

// HandleCreateReviewRequest handles POST /api/v1/review-requests
func (h *Handler) HandleCreateReviewRequest(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req CreateReviewRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	request, err := h.processor.CreateReviewRequest(ctx, orgID, processor.CreateRequest{
		PatientID:                req.PatientID,
		Platform:                 req.Platform,
		TriggeredByAppointmentID: req.TriggeredByAppointmentID,
		RecipientContact:         req.RecipientContact,
		ScheduledFor:             req.ScheduledFor,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create review request", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// HandleSendReviewRequest handles POST /api/v1/review-requests/:request_id/send
func (h *Handler) HandleSendReviewRequest(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	requestID, ok := h.requestID(c)
	if !ok {
		return
	}

	request, err := h.processor.SendReviewRequest(ctx, orgID, requestID)
	if err != nil {
		h.logger.Error(ctx, "failed to send review request", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// HandleTrackClick handles POST /api/v1/review-requests/:request_id/click
func (h *Handler) HandleTrackClick(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	requestID, ok := h.requestID(c)
	if !ok {
		return
	}

	request, err := h.processor.TrackClick(ctx, orgID, requestID)
	if err != nil {
		h.logger.Error(ctx, "failed to track review click", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// RecordReviewRequest represents the HTTP request for recording a completed review
type RecordReviewRequest struct {
	Rating *int `json:"rating,omitempty"`
}

// HandleRecordReview handles POST /api/v1/review-requests/:request_id/reviewed
func (h *Handler) HandleRecordReview(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	requestID, ok := h.requestID(c)
	if !ok {
		return
	}

	var req RecordReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	request, err := h.processor.RecordReview(ctx, orgID, requestID, req.Rating)
	if err != nil {
		h.logger.Error(ctx, "failed to record review", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// HandleDeclineRequest handles POST /api/v1/review-requests/:request_id/decline
func (h *Handler) HandleDeclineRequest(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	requestID, ok := h.requestID(c)
	if !ok {
		return
	}

	request, err := h.processor.DeclineRequest(ctx, orgID, requestID)
	if err != nil {
		h.logger.Error(ctx, "failed to decline review request", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// HandleGetReviewRequest handles GET /api/v1/review-requests/:request_id
func (h *Handler) HandleGetReviewRequest(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	requestID, ok := h.requestID(c)
	if !ok {
		return
	}

	request, err := h.processor.GetRequest(ctx, orgID, requestID)
	if err != nil {
		h.logger.Error(ctx, "failed to get review request", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// HandleGetStatistics handles GET /api/v1/review-requests/statistics
func (h *Handler) HandleGetStatistics(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}

	from, to, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	stats, err := h.processor.GetStatistics(ctx, orgID, from, to)
	if err != nil {
		h.logger.Error(ctx, "failed to get review statistics", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleGetDueRequests handles GET /api/v1/review-requests/due. Exposed for
// operators; the periodic job is the usual driver.
func (h *Handler) HandleGetDueRequests(c *gin.Context) {
	ctx := c.Request.Context()

	if _, ok := h.organizationID(c); !ok {
		return
	}

	limit := 200
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	requests, err := h.processor.GetDueRequests(ctx, time.Now().UTC(), limit)
	if err != nil {
		h.logger.Error(ctx, "failed to get due review requests", err)
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	return from, to, true
}

// handleProcessorError maps processor errors to HTTP responses
func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	switch err {
	case processor.ErrRequestNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "review request not found"})
	case processor.ErrInvalidPlatform:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review platform"})
	case processor.ErrInvalidRating:
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
	case processor.ErrNoContact:
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient contact is required"})
	case processor.ErrInvalidStatus:
		c.JSON(http.StatusConflict, gin.H{"error": "review request is not in a valid status for this operation"})
	case processor.ErrDeliveryFailed:
		c.JSON(http.StatusBadGateway, gin.H{"error": "review request delivery failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
