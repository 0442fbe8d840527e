package jobs

import (
	"context"
	"fmt"
	"growth-server/internal/observability"
	reviews "growth-server/internal/reviews/processor"
	"time"
)

// ReviewDispatcher sends review requests whose scheduled time has passed
type ReviewDispatcher interface {
	DispatchDueRequests(ctx context.Context, now time.Time, limit int) (reviews.DispatchSummary, error)
}

// ReviewDispatchJob periodically sends due review requests
type ReviewDispatchJob struct {
	dispatcher ReviewDispatcher
	logger     *observability.Logger
	interval   time.Duration
	batchSize  int
}

// NewReviewDispatchJob creates the periodic review-request driver
func NewReviewDispatchJob(dispatcher ReviewDispatcher, logger *observability.Logger, interval time.Duration, batchSize int) *ReviewDispatchJob {
	if interval == 0 {
		interval = 5 * time.Minute
	}
	if batchSize < 1 {
		batchSize = 200
	}

	return &ReviewDispatchJob{
		dispatcher: dispatcher,
		logger:     logger,
		interval:   interval,
		batchSize:  batchSize,
	}
}

// Name returns the job name
func (j *ReviewDispatchJob) Name() string {
	return "review_dispatch"
}

// Schedule returns how often the job should run
func (j *ReviewDispatchJob) Schedule() time.Duration {
	return j.interval
}

// Run sends every due review request once
func (j *ReviewDispatchJob) Run(ctx context.Context) error {
	summary, err := j.dispatcher.DispatchDueRequests(ctx, time.Now().UTC(), j.batchSize)
	if err != nil {
		return fmt.Errorf("failed to dispatch due review requests: %w", err)
	}

	j.logger.Info(ctx, fmt.Sprintf("Review dispatch pass: %d due, %d sent, %d failed",
		summary.Due, summary.Sent, summary.Failed))
	return nil
}
