// internal/scheduler/runner.go
package scheduler

import (
	"context"
	"fmt"

	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"

	"github.com/tamzrod/quakelight/internal/indicator"
	"github.com/tamzrod/quakelight/internal/status"
)

// Run connects once, then loops Polling → Indicating → Sleeping forever.
// It returns only when the link cannot be established or ctx is done.
// No overlap. No retries.
func (s *Scheduler) Run(ctx context.Context) error {
	log := s.deps.Logger

	s.phase = Initializing
	boot := s.snap
	boot.Health = status.HealthConnecting
	s.publish(boot)

	if _, err := s.deps.Connector.Connect(ctx, s.cfg.Credentials); err != nil {
		return fmt.Errorf("scheduler: connect: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.RunCycle(ctx)

		s.phase = Sleeping
		if err := s.deps.Indicator.Off(indicator.Status); err != nil {
			log.Warn("status off failed", attributes.ErrorKey, err)
		}
		log.Info("sleeping", "interval", s.cfg.Interval.String())

		if err := s.deps.Sleep(ctx, s.cfg.Interval); err != nil {
			return err
		}
	}
}
