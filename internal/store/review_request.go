package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const reviewColumns = `id, organization_id, patient_id, platform, status, triggered_by_appointment_id,
    recipient_contact, scheduled_for, sent_at, sent_via, provider_message_id,
    clicked_at, reviewed_at, rating, created_at, updated_at`

// CreateReviewRequestParams represents parameters for creating a review request
type CreateReviewRequestParams struct {
	OrganizationID           uuid.UUID
	PatientID                uuid.UUID
	Platform                 string
	TriggeredByAppointmentID *uuid.UUID
	RecipientContact         string
	ScheduledFor             time.Time
}

const sqlCreateReviewRequest = `
INSERT INTO review_requests (organization_id, patient_id, platform, status,
    triggered_by_appointment_id, recipient_contact, scheduled_for)
VALUES ($1, $2, $3, 'pending', $4, $5, $6)
RETURNING ` + reviewColumns

// CreateReviewRequest creates a new pending review request
func (s *Store) CreateReviewRequest(ctx context.Context, params CreateReviewRequestParams) (ReviewRequest, error) {
	var request ReviewRequest
	err := s.db.GetContext(ctx, &request, sqlCreateReviewRequest,
		params.OrganizationID,
		params.PatientID,
		params.Platform,
		params.TriggeredByAppointmentID,
		params.RecipientContact,
		params.ScheduledFor)
	if err != nil {
		s.logger.Error(ctx, "failed to create review request", err)
		return ReviewRequest{}, fmt.Errorf("failed to create review request: %w", err)
	}
	return request, nil
}

const sqlGetReviewRequestByID = `
SELECT ` + reviewColumns + `
FROM review_requests
WHERE id = $1 AND organization_id = $2
`

// GetReviewRequestByID retrieves a review request scoped to an organization
func (s *Store) GetReviewRequestByID(ctx context.Context, orgID, requestID uuid.UUID) (ReviewRequest, error) {
	var request ReviewRequest
	err := s.db.GetContext(ctx, &request, sqlGetReviewRequestByID, requestID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReviewRequest{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get review request", err)
		return ReviewRequest{}, fmt.Errorf("failed to get review request: %w", err)
	}
	return request, nil
}

const sqlMarkReviewRequestSent = `
UPDATE review_requests
SET status = 'sent',
    sent_at = CURRENT_TIMESTAMP,
    sent_via = $3,
    provider_message_id = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status = 'pending'
RETURNING ` + reviewColumns

// MarkReviewRequestSent moves a pending request to sent, recording the channel
// and provider message id. ErrConflict when the request is not pending.
func (s *Store) MarkReviewRequestSent(ctx context.Context, orgID, requestID uuid.UUID, sentVia string, providerMessageID *string) (ReviewRequest, error) {
	var request ReviewRequest
	err := s.db.GetContext(ctx, &request, sqlMarkReviewRequestSent, requestID, orgID, sentVia, providerMessageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReviewRequest{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to mark review request sent", err)
		return ReviewRequest{}, fmt.Errorf("failed to mark review request sent: %w", err)
	}
	return request, nil
}

const sqlMarkReviewRequestClicked = `
UPDATE review_requests
SET status = 'clicked',
    clicked_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status = 'sent'
RETURNING ` + reviewColumns

// MarkReviewRequestClicked moves a sent request to clicked. ErrConflict when
// the request is not in sent status.
func (s *Store) MarkReviewRequestClicked(ctx context.Context, orgID, requestID uuid.UUID) (ReviewRequest, error) {
	var request ReviewRequest
	err := s.db.GetContext(ctx, &request, sqlMarkReviewRequestClicked, requestID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReviewRequest{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to mark review request clicked", err)
		return ReviewRequest{}, fmt.Errorf("failed to mark review request clicked: %w", err)
	}
	return request, nil
}

const sqlMarkReviewRequestReviewed = `
UPDATE review_requests
SET status = 'reviewed',
    reviewed_at = CURRENT_TIMESTAMP,
    rating = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status IN ('sent', 'clicked')
RETURNING ` + reviewColumns

// MarkReviewRequestReviewed records a completed review. ErrConflict when the
// request is not in sent or clicked status; callers treat an
// already-reviewed request as an idempotent no-op.
func (s *Store) MarkReviewRequestReviewed(ctx context.Context, orgID, requestID uuid.UUID, rating *int) (ReviewRequest, error) {
	var request ReviewRequest
	err := s.db.GetContext(ctx, &request, sqlMarkReviewRequestReviewed, requestID, orgID, rating)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReviewRequest{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to mark review request reviewed", err)
		return ReviewRequest{}, fmt.Errorf("failed to mark review request reviewed: %w", err)
	}
	return request, nil
}

const sqlCloseReviewRequest = `
UPDATE review_requests
SET status = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND organization_id = $2 AND status NOT IN ('reviewed', 'declined', 'failed')
RETURNING ` + reviewColumns

// CloseReviewRequest moves a non-terminal request to declined or failed
func (s *Store) CloseReviewRequest(ctx context.Context, orgID, requestID uuid.UUID, status string) (ReviewRequest, error) {
	var request ReviewRequest
	err := s.db.GetContext(ctx, &request, sqlCloseReviewRequest, requestID, orgID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReviewRequest{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to close review request", err)
		return ReviewRequest{}, fmt.Errorf("failed to close review request: %w", err)
	}
	return request, nil
}

const sqlGetDueReviewRequests = `
SELECT ` + reviewColumns + `
FROM review_requests
WHERE status = 'pending' AND scheduled_for <= $1
ORDER BY scheduled_for ASC
LIMIT $2
`

// GetDueReviewRequests retrieves pending requests whose scheduled time has
// passed, across organizations, for the dispatch driver
func (s *Store) GetDueReviewRequests(ctx context.Context, now time.Time, limit int) ([]ReviewRequest, error) {
	var requests []ReviewRequest
	err := s.db.SelectContext(ctx, &requests, sqlGetDueReviewRequests, now, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get due review requests", err)
		return nil, fmt.Errorf("failed to get due review requests: %w", err)
	}
	return requests, nil
}

// ReviewFunnelStats aggregates the review request funnel for a range
type ReviewFunnelStats struct {
	TotalRequests int      `db:"total_requests" json:"total_requests"`
	TotalSent     int      `db:"total_sent" json:"total_sent"`
	TotalClicked  int      `db:"total_clicked" json:"total_clicked"`
	TotalReviewed int      `db:"total_reviewed" json:"total_reviewed"`
	TotalDeclined int      `db:"total_declined" json:"total_declined"`
	TotalFailed   int      `db:"total_failed" json:"total_failed"`
	AverageRating *float64 `db:"average_rating" json:"average_rating,omitempty"`
}

const sqlGetReviewFunnelStats = `
SELECT COUNT(*) AS total_requests,
       COUNT(sent_at) AS total_sent,
       COUNT(clicked_at) AS total_clicked,
       COUNT(reviewed_at) AS total_reviewed,
       COUNT(*) FILTER (WHERE status = 'declined') AS total_declined,
       COUNT(*) FILTER (WHERE status = 'failed') AS total_failed,
       AVG(rating) AS average_rating
FROM review_requests
WHERE organization_id = $1 AND created_at >= $2 AND created_at < $3
`

// GetReviewFunnelStats aggregates funnel counts and the average rating over
// reviewed requests with a non-null rating
func (s *Store) GetReviewFunnelStats(ctx context.Context, orgID uuid.UUID, from, to time.Time) (ReviewFunnelStats, error) {
	var stats ReviewFunnelStats
	err := s.db.GetContext(ctx, &stats, sqlGetReviewFunnelStats, orgID, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to get review funnel stats", err)
		return ReviewFunnelStats{}, fmt.Errorf("failed to get review funnel stats: %w", err)
	}
	return stats, nil
}
