package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	ucScheduling "github.com/BruksfildServices01/barber-slots/internal/usecase/scheduling"
)

// Scheduler drives the slot generator on a fixed interval. Generation is
// best effort: a failed run is logged and the next tick starts fresh.
type Scheduler struct {
	cron     *cron.Cron
	generate *ucScheduling.GenerateSlots
	now      func() time.Time
}

func New(generate *ucScheduling.GenerateSlots, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		cron:     cron.New(),
		generate: generate,
		now:      now,
	}
}

// Start registers the generation job and launches the cron loop. Any cron
// expression works, "@every 60m" by default.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[slot-agent] scheduler started (%s)", spec)
	return nil
}

// RunOnce executes a single generation pass. Errors are swallowed after
// logging so one bad run never stops the schedule.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	created, err := s.generate.Execute(ctx, s.now())
	if err != nil {
		log.Printf("[slot-agent] generation failed, rolled back: %v", err)
		return
	}
	log.Printf("[slot-agent] generation completed, %d new slots", created)
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[slot-agent] scheduler stopped")
}
