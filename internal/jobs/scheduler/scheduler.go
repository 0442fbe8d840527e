package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"growth-server/internal/observability"
)

// Job is a unit of periodic background work
type Job interface {
	// Name identifies the job in logs
	Name() string
	// Run executes one pass of the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Scheduler drives registered jobs on their individual intervals. Each job
// runs in its own goroutine so a slow job never delays the others.
type Scheduler struct {
	jobs   []Job
	logger *observability.Logger
}

func New(logger *observability.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// Register adds a job. Must be called before Start.
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start launches every registered job and blocks until the context is
// cancelled. Jobs run once immediately, then on their interval.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("starting %d background jobs", len(s.jobs)))

	for _, job := range s.jobs {
		go s.loop(ctx, job)
	}

	<-ctx.Done()
	s.logger.Info(ctx, "background jobs stopped")
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	jobCtx := observability.WithFields(ctx,
		observability.Field{Key: "job", Value: job.Name()},
		observability.Field{Key: "job_interval", Value: job.Schedule().String()},
	)

	s.runOnce(jobCtx, job)

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(jobCtx, job)
		}
	}
}

// runOnce executes a single pass. A panicking job is contained so one bad
// run cannot take down the server or the other jobs.
func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "background job panicked", fmt.Errorf("%v\n%s", r, debug.Stack()))
		}
	}()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		s.logger.Error(ctx, fmt.Sprintf("background job failed after %s", time.Since(start)), err)
		return
	}
	s.logger.Info(ctx, fmt.Sprintf("background job completed in %s", time.Since(start)))
}
