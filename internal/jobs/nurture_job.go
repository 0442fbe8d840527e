package jobs

import (
	"context"
	"fmt"
	"growth-server/internal/observability"
	nurture "growth-server/internal/nurture/processor"
	"time"
)

// LeadAdvancer advances enrolled leads through their sequences
type LeadAdvancer interface {
	AdvanceDueLeads(ctx context.Context, now time.Time, batchSize int) (nurture.AdvanceSummary, error)
}

// NurtureAdvanceJob periodically advances every enrolled lead
type NurtureAdvanceJob struct {
	advancer  LeadAdvancer
	logger    *observability.Logger
	interval  time.Duration
	batchSize int
}

// NewNurtureAdvanceJob creates the periodic nurture driver
func NewNurtureAdvanceJob(advancer LeadAdvancer, logger *observability.Logger, interval time.Duration, batchSize int) *NurtureAdvanceJob {
	if interval == 0 {
		interval = 15 * time.Minute
	}
	if batchSize < 1 {
		batchSize = 200
	}

	return &NurtureAdvanceJob{
		advancer:  advancer,
		logger:    logger,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Name returns the job name
func (j *NurtureAdvanceJob) Name() string {
	return "nurture_advance"
}

// Schedule returns how often the job should run
func (j *NurtureAdvanceJob) Schedule() time.Duration {
	return j.interval
}

// Run advances every enrolled lead once
func (j *NurtureAdvanceJob) Run(ctx context.Context) error {
	summary, err := j.advancer.AdvanceDueLeads(ctx, time.Now().UTC(), j.batchSize)
	if err != nil {
		return fmt.Errorf("failed to advance due leads: %w", err)
	}

	j.logger.Info(ctx, fmt.Sprintf("Nurture advance pass: %d leads processed, %d steps executed, %d exited, %d failed",
		summary.Processed, summary.Executed, summary.Exited, summary.Failed))
	return nil
}
