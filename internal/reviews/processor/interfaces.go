package processor

import (
	"context"
	"growth-server/internal/store"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// Store defines the database operations required by ReviewProcessor
type Store interface {
	CreateReviewRequest(ctx context.Context, params store.CreateReviewRequestParams) (store.ReviewRequest, error)
	GetReviewRequestByID(ctx context.Context, orgID, requestID uuid.UUID) (store.ReviewRequest, error)
	MarkReviewRequestSent(ctx context.Context, orgID, requestID uuid.UUID, sentVia string, providerMessageID *string) (store.ReviewRequest, error)
	MarkReviewRequestClicked(ctx context.Context, orgID, requestID uuid.UUID) (store.ReviewRequest, error)
	MarkReviewRequestReviewed(ctx context.Context, orgID, requestID uuid.UUID, rating *int) (store.ReviewRequest, error)
	CloseReviewRequest(ctx context.Context, orgID, requestID uuid.UUID, status string) (store.ReviewRequest, error)
	GetDueReviewRequests(ctx context.Context, now time.Time, limit int) ([]store.ReviewRequest, error)
	GetReviewFunnelStats(ctx context.Context, orgID uuid.UUID, from, to time.Time) (store.ReviewFunnelStats, error)
}

// Messenger delivers review asks over email or SMS
type Messenger interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// Auditor defines the audit side channel required by ReviewProcessor
type Auditor interface {
	Record(ctx context.Context, orgID uuid.UUID, action, entityType string, entityID uuid.UUID, actorID *uuid.UUID, changes store.JSONB)
}
