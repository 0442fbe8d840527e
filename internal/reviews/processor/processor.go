package processor

import (
	"context"
	"errors"
	"fmt"
	"growth-server/internal/observability"
	"growth-server/internal/store"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound = errors.New("review request not found")
	ErrInvalidPlatform = errors.New("invalid review platform")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus   = errors.New("review request is not in a valid status for this operation")
	ErrNoContact       = errors.New("recipient contact is required")
	ErrDeliveryFailed  = errors.New("review request delivery failed")
)

type ReviewProcessor struct {
	store     Store
	messenger Messenger
	auditor   Auditor
	logger    *observability.Logger
}

func New(store Store, messenger Messenger, auditor Auditor, logger *observability.Logger) ReviewProcessor {
	return ReviewProcessor{
		store:     store,
		messenger: messenger,
		auditor:   auditor,
		logger:    logger,
	}
}

// CreateRequest represents a request to schedule a review ask
type CreateRequest struct {
	PatientID                uuid.UUID
	Platform                 string
	TriggeredByAppointmentID *uuid.UUID
	RecipientContact         string
	ScheduledFor             *time.Time
}

// CreateReviewRequest schedules a pending review ask
func (p *ReviewProcessor) CreateReviewRequest(ctx context.Context, orgID uuid.UUID, req CreateRequest) (store.ReviewRequest, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "patient_id", Value: req.PatientID.String()},
		observability.Field{Key: "platform", Value: req.Platform},
	)

	if !isValidPlatform(req.Platform) {
		return store.ReviewRequest{}, ErrInvalidPlatform
	}
	if req.RecipientContact == "" {
		return store.ReviewRequest{}, ErrNoContact
	}

	scheduledFor := time.Now().UTC()
	if req.ScheduledFor != nil {
		scheduledFor = *req.ScheduledFor
	}

	request, err := p.store.CreateReviewRequest(ctx, store.CreateReviewRequestParams{
		OrganizationID:           orgID,
		PatientID:                req.PatientID,
		Platform:                 req.Platform,
		TriggeredByAppointmentID: req.TriggeredByAppointmentID,
		RecipientContact:         req.RecipientContact,
		ScheduledFor:             scheduledFor,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create review request", err)
		return store.ReviewRequest{}, err
	}

	p.auditor.Record(ctx, orgID, "review_request.created", "review_request", request.ID, nil,
		store.JSONB{"platform": request.Platform})
	p.logger.Info(ctx, "review request created")
	return request, nil
}

// SendReviewRequest delivers a pending ask over the channel implied by the
// recipient contact. A delivery failure closes the request as failed.
func (p *ReviewProcessor) SendReviewRequest(ctx context.Context, orgID, requestID uuid.UUID) (store.ReviewRequest, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: orgID.String()},
		observability.Field{Key: "review_request_id", Value: requestID.String()},
	)

	request, err := p.store.GetReviewRequestByID(ctx, orgID, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReviewRequest{}, ErrRequestNotFound
		}
		p.logger.Error(ctx, "failed to get review request", err)
		return store.ReviewRequest{}, err
	}

	if request.Status != store.ReviewStatusPending {
		return store.ReviewRequest{}, ErrInvalidStatus
	}

	channel := channelForContact(request.RecipientContact)
	messageID, deliveryErr := p.deliver(ctx, request, channel)
	if deliveryErr != nil {
		p.logger.Error(ctx, "review request delivery failed", deliveryErr)
		failed, closeErr := p.store.CloseReviewRequest(ctx, orgID, requestID, store.ReviewStatusFailed)
		if closeErr != nil && !errors.Is(closeErr, store.ErrConflict) {
			p.logger.Error(ctx, "failed to close review request after delivery failure", closeErr)
			return store.ReviewRequest{}, closeErr
		}
		p.auditor.Record(ctx, orgID, "review_request.failed", "review_request", requestID, nil, nil)
		return failed, ErrDeliveryFailed
	}

	sent, err := p.store.MarkReviewRequestSent(ctx, orgID, requestID, channel, messageID)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.ReviewRequest{}, ErrInvalidStatus
		}
		p.logger.Error(ctx, "failed to mark review request sent", err)
		return store.ReviewRequest{}, err
	}

	p.auditor.Record(ctx, orgID, "review_request.sent", "review_request", requestID, nil,
		store.JSONB{"channel": channel})
	p.logger.Info(ctx, "review request sent")
	return sent, nil
}

// TrackClick marks a sent request clicked. Already clicked or reviewed
// requests are an idempotent no-op.
func (p *ReviewProcessor) TrackClick(ctx context.Context, orgID, requestID uuid.UUID) (store.ReviewRequest, error) {
	clicked, err := p.store.MarkReviewRequestClicked(ctx, orgID, requestID)
	if err == nil {
		return clicked, nil
	}
	if !errors.Is(err, store.ErrConflict) {
		p.logger.Error(ctx, "failed to track review click", err)
		return store.ReviewRequest{}, err
	}

	current, getErr := p.store.GetReviewRequestByID(ctx, orgID, requestID)
	if getErr != nil {
		if errors.Is(getErr, store.ErrNotFound) {
			return store.ReviewRequest{}, ErrRequestNotFound
		}
		return store.ReviewRequest{}, getErr
	}

	switch current.Status {
	case store.ReviewStatusClicked, store.ReviewStatusReviewed:
		return current, nil
	default:
		return store.ReviewRequest{}, ErrInvalidStatus
	}
}

// RecordReview marks a sent or clicked request reviewed, optionally with a
// rating. Recording on an already reviewed request is an idempotent no-op.
func (p *ReviewProcessor) RecordReview(ctx context.Context, orgID, requestID uuid.UUID, rating *int) (store.ReviewRequest, error) {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return store.ReviewRequest{}, ErrInvalidRating
	}

	reviewed, err := p.store.MarkReviewRequestReviewed(ctx, orgID, requestID, rating)
	if err == nil {
		p.auditor.Record(ctx, orgID, "review_request.reviewed", "review_request", requestID, nil, nil)
		return reviewed, nil
	}
	if !errors.Is(err, store.ErrConflict) {
		p.logger.Error(ctx, "failed to record review", err)
		return store.ReviewRequest{}, err
	}

	current, getErr := p.store.GetReviewRequestByID(ctx, orgID, requestID)
	if getErr != nil {
		if errors.Is(getErr, store.ErrNotFound) {
			return store.ReviewRequest{}, ErrRequestNotFound
		}
		return store.ReviewRequest{}, getErr
	}

	if current.Status == store.ReviewStatusReviewed {
		return current, nil
	}
	return store.ReviewRequest{}, ErrInvalidStatus
}

// DeclineRequest closes a non-terminal request as declined
func (p *ReviewProcessor) DeclineRequest(ctx context.Context, orgID, requestID uuid.UUID) (store.ReviewRequest, error) {
	return p.closeRequest(ctx, orgID, requestID, store.ReviewStatusDeclined)
}

// FailRequest closes a non-terminal request as failed
func (p *ReviewProcessor) FailRequest(ctx context.Context, orgID, requestID uuid.UUID) (store.ReviewRequest, error) {
	return p.closeRequest(ctx, orgID, requestID, store.ReviewStatusFailed)
}

func (p *ReviewProcessor) closeRequest(ctx context.Context, orgID, requestID uuid.UUID, status string) (store.ReviewRequest, error) {
	closed, err := p.store.CloseReviewRequest(ctx, orgID, requestID, status)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.ReviewRequest{}, ErrInvalidStatus
		}
		p.logger.Error(ctx, "failed to close review request", err)
		return store.ReviewRequest{}, err
	}

	p.auditor.Record(ctx, orgID, "review_request."+status, "review_request", requestID, nil, nil)
	return closed, nil
}

// GetRequest retrieves a review request
func (p *ReviewProcessor) GetRequest(ctx context.Context, orgID, requestID uuid.UUID) (store.ReviewRequest, error) {
	request, err := p.store.GetReviewRequestByID(ctx, orgID, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReviewRequest{}, ErrRequestNotFound
		}
		p.logger.Error(ctx, "failed to get review request", err)
		return store.ReviewRequest{}, err
	}
	return request, nil
}

// Statistics reports the review funnel with conversion rates
type Statistics struct {
	TotalRequests    int      `json:"total_requests"`
	TotalSent        int      `json:"total_sent"`
	TotalClicked     int      `json:"total_clicked"`
	TotalReviewed    int      `json:"total_reviewed"`
	TotalDeclined    int      `json:"total_declined"`
	TotalFailed      int      `json:"total_failed"`
	ClickThroughRate *float64 `json:"click_through_rate,omitempty"`
	ReviewRate       *float64 `json:"review_rate,omitempty"`
	AverageRating    *float64 `json:"average_rating,omitempty"`
}

// GetStatistics aggregates the funnel for a range. Rates are nil when no
// requests were sent in the range.
func (p *ReviewProcessor) GetStatistics(ctx context.Context, orgID uuid.UUID, from, to time.Time) (Statistics, error) {
	funnel, err := p.store.GetReviewFunnelStats(ctx, orgID, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to get review statistics", err)
		return Statistics{}, err
	}

	stats := Statistics{
		TotalRequests: funnel.TotalRequests,
		TotalSent:     funnel.TotalSent,
		TotalClicked:  funnel.TotalClicked,
		TotalReviewed: funnel.TotalReviewed,
		TotalDeclined: funnel.TotalDeclined,
		TotalFailed:   funnel.TotalFailed,
		AverageRating: funnel.AverageRating,
	}

	if funnel.TotalSent > 0 {
		ctr := float64(funnel.TotalClicked) / float64(funnel.TotalSent)
		rr := float64(funnel.TotalReviewed) / float64(funnel.TotalSent)
		stats.ClickThroughRate = &ctr
		stats.ReviewRate = &rr
	}
	return stats, nil
}

// GetDueRequests lists pending requests whose scheduled time has passed
func (p *ReviewProcessor) GetDueRequests(ctx context.Context, now time.Time, limit int) ([]store.ReviewRequest, error) {
	if limit < 1 {
		limit = 200
	}
	requests, err := p.store.GetDueReviewRequests(ctx, now, limit)
	if err != nil {
		p.logger.Error(ctx, "failed to get due review requests", err)
		return nil, err
	}
	if requests == nil {
		requests = []store.ReviewRequest{}
	}
	return requests, nil
}

// DispatchSummary aggregates one dispatch sweep over due requests
type DispatchSummary struct {
	Due    int `json:"due"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// DispatchDueRequests sends every due request once. One request's failure
// never aborts the sweep.
func (p *ReviewProcessor) DispatchDueRequests(ctx context.Context, now time.Time, limit int) (DispatchSummary, error) {
	due, err := p.GetDueRequests(ctx, now, limit)
	if err != nil {
		return DispatchSummary{}, err
	}

	summary := DispatchSummary{Due: len(due)}
	for _, request := range due {
		if _, err := p.SendReviewRequest(ctx, request.OrganizationID, request.ID); err != nil {
			summary.Failed++
			p.logger.InfoWithError(ctx, "failed to dispatch review request", err)
			continue
		}
		summary.Sent++
	}
	return summary, nil
}

func (p *ReviewProcessor) deliver(ctx context.Context, request store.ReviewRequest, channel string) (*string, error) {
	body := reviewMessage(request.Platform)
	if channel == store.ReviewChannelEmail {
		id, err := p.messenger.SendEmail(ctx, request.RecipientContact, "How was your visit?", body)
		if err != nil {
			return nil, err
		}
		return &id, nil
	}
	id, err := p.messenger.SendSMS(ctx, request.RecipientContact, body)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// channelForContact infers the delivery channel from the contact value
func channelForContact(contact string) string {
	if strings.Contains(contact, "@") {
		return store.ReviewChannelEmail
	}
	return store.ReviewChannelSMS
}

func reviewMessage(platform string) string {
	return fmt.Sprintf("Thanks for visiting us! We'd love to hear how it went. Would you leave us a review on %s?", platformLabel(platform))
}

func platformLabel(platform string) string {
	switch platform {
	case store.ReviewPlatformGoogle:
		return "Google"
	case store.ReviewPlatformYelp:
		return "Yelp"
	case store.ReviewPlatformFacebook:
		return "Facebook"
	case store.ReviewPlatformHealthgrades:
		return "Healthgrades"
	default:
		return platform
	}
}

func isValidPlatform(platform string) bool {
	validPlatforms := map[string]bool{
		store.ReviewPlatformGoogle:       true,
		store.ReviewPlatformYelp:         true,
		store.ReviewPlatformFacebook:     true,
		store.ReviewPlatformHealthgrades: true,
	}
	return validPlatforms[platform]
}
