package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/aoisome461/suisantenki-app/internal/forecast"
)

// Scheduler periodically warms the forecast caches so interactive renders
// are served from fresh memory instead of triggering a burst of upstream
// calls.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *forecast.Service
	interval  time.Duration
	timeout   time.Duration
}

// New creates a Scheduler warming the given service every interval.
func New(service *forecast.Service, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the warm job and starts the underlying scheduler.
// An interval <= 0 disables warming.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: cache warming disabled")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: warming forecast caches")

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		s.service.WarmCaches(ctx)
		log.Println("scheduler: completed cache warm")
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
