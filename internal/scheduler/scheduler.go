package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/heliowatch/solarwind/internal/solarwind"
)

// Scheduler periodically refreshes the solar-wind snapshot.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *solarwind.Service
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, service *solarwind.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		interval:  interval,
	}
}

// Start schedules the periodic refresh and starts the underlying scheduler.
// The first refresh runs immediately so the UI has data before the first
// tick.
func (s *Scheduler) Start() error {
	seconds := int(s.interval.Seconds())
	if seconds <= 0 {
		seconds = 60
	}

	_, err := s.scheduler.Every(seconds).Seconds().SingletonMode().StartImmediately().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.service.Refresh(ctx); err != nil {
			if errors.Is(err, solarwind.ErrRefreshInProgress) {
				log.Println("scheduler: previous refresh still running; skipping tick")
				return
			}
			log.Printf("scheduler: refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
