package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"loyalty-server/internal/observability"
)

// Job is a unit of periodic work
type Job interface {
	Name() string
	Run(ctx context.Context) error
	Interval() time.Duration
}

// Scheduler runs registered jobs on their intervals inside the current process
type Scheduler struct {
	jobs   []Job
	logger *observability.Logger
	wg     sync.WaitGroup
}

// New creates a new scheduler
func New(logger *observability.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("registered scheduled job %s every %s", job.Name(), job.Interval()))
}

// Start runs every job until ctx is cancelled and then waits for in-flight runs to finish
func (s *Scheduler) Start(ctx context.Context) {
	for _, job := range s.jobs {
		s.wg.Add(1)
		go func(job Job) {
			defer s.wg.Done()
			s.runJob(ctx, job)
		}(job)
	}
	<-ctx.Done()
	s.wg.Wait()
	s.logger.Info(context.Background(), "scheduler stopped")
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	// first run happens on startup
	s.execute(jobCtx, job)

	ticker := time.NewTicker(job.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(jobCtx, job)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, job Job) {
	start := time.Now()
	err := job.Run(ctx)
	duration := time.Since(start)
	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("scheduled job %s failed after %v", job.Name(), duration), err)
		return
	}
	s.logger.Metrics(ctx,
		observability.MetricField{Key: "scheduled_job", Value: job.Name()},
		observability.MetricField{Key: "duration", Value: duration},
	)
}
