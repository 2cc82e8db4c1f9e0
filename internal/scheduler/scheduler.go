package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/ArcLab_Go/internal/logger"
)

// Job is a unit of recurring work
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Scheduler runs jobs at fixed intervals until stopped. A run that is still
// going when the next tick fires delays that tick rather than overlapping.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a scheduler. Jobs receive a context that is cancelled by Stop.
func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// Schedule starts running job every interval. The first run happens one
// interval from now. A non-positive interval is ignored.
func (s *Scheduler) Schedule(name string, interval time.Duration, job Job) {
	if interval <= 0 {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log := logger.FromContext(s.ctx).With("job", name)
		log.Info(LogMsgJobScheduled, "interval", interval)

		for {
			select {
			case <-ticker.C:
				if err := job.Process(s.ctx); err != nil {
					log.Error(LogMsgJobFailed, "error", err)
				}
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels running jobs and waits for every schedule to exit
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}
