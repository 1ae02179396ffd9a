package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the batch on a cron expression, for advisors who
// send the same review every period.
type Scheduler struct {
	Cron *cron.Cron
	Run  func()
}

func New(run func()) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Run:  run,
	}
}

// Register adds the batch job under the given cron expression.
func (s *Scheduler) Register(expr string) error {
	if _, err := s.Cron.AddFunc(expr, s.Run); err != nil {
		return fmt.Errorf("register batch schedule %q: %w", expr, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}
