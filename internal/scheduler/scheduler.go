// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"

	"github.com/tamzrod/quakelight/internal/classifier"
	"github.com/tamzrod/quakelight/internal/clock"
	"github.com/tamzrod/quakelight/internal/config"
	"github.com/tamzrod/quakelight/internal/fetcher"
	"github.com/tamzrod/quakelight/internal/indicator"
	"github.com/tamzrod/quakelight/internal/link"
	"github.com/tamzrod/quakelight/internal/status"
)

// Connector establishes the network link once.
type Connector interface {
	Connect(ctx context.Context, creds config.Credentials) (link.Info, error)
}

// Classifier produces one activity level per call.
type Classifier interface {
	Classify(ctx context.Context) (classifier.Result, error)
}

// Indicator drives the outputs.
type Indicator interface {
	Drive(ctx context.Context, p indicator.Pattern) error
	Off(id indicator.OutputID) error
}

// StatusWriter delivers the status block. Optional.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// Config is the minimal runtime config the scheduler needs.
type Config struct {
	Interval    time.Duration
	Credentials config.Credentials
}

type Deps struct {
	Connector  Connector
	Classifier Classifier
	Indicator  Indicator
	Status     StatusWriter  // nil = disabled
	Sleep      clock.Sleeper // nil = clock.Sleep
	Logger     *slog.Logger
}

// Scheduler is the single-threaded poll loop.
// Cycles never overlap: every phase blocks until done.
type Scheduler struct {
	cfg  Config
	deps Deps

	phase Phase
	snap  status.Snapshot
	now   func() time.Time
}

// New creates a scheduler with immutable config.
func New(cfg Config, deps Deps) (*Scheduler, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("scheduler: interval must be > 0")
	}
	if deps.Connector == nil || deps.Classifier == nil || deps.Indicator == nil {
		return nil, errors.New("scheduler: connector, classifier and indicator required")
	}
	if deps.Sleep == nil {
		deps.Sleep = clock.Sleep
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		cfg:   cfg,
		deps:  deps,
		phase: Initializing,
		snap:  status.Initial(),
		now:   time.Now,
	}, nil
}

// Phase reports the current phase.
func (s *Scheduler) Phase() Phase { return s.phase }

// Snapshot reports the current status block content.
func (s *Scheduler) Snapshot() status.Snapshot { return s.snap }

// RunCycle performs exactly one Polling → Indicating pass.
// A classification failure is logged and ends the cycle: nothing is
// indicated and the outputs keep their state.
func (s *Scheduler) RunCycle(ctx context.Context) PollCycle {
	log := s.deps.Logger

	s.phase = Polling
	cycle := PollCycle{At: s.now(), SecondaryLen: -1}

	res, err := s.deps.Classifier.Classify(ctx)
	cycle.PrimaryLen = res.PrimaryLen
	cycle.SecondaryLen = res.SecondaryLen
	cycle.Fetches = res.Fetches

	if err != nil {
		cycle.Err = err
		log.Error("cycle failed",
			attributes.ErrorKey, err,
			"cause", fetcher.KindOf(err).String(),
			"fetches", res.Fetches,
		)
		s.publish(s.snap.Failure(errorCode(err)))
		return cycle
	}

	cycle.Level = res.Level
	cycle.Pattern = PatternFor(res.Level)

	log.Info("activity classified",
		"level", res.Level.String(),
		"primary_len", res.PrimaryLen,
		"secondary_len", res.SecondaryLen,
		"fetches", res.Fetches,
	)
	s.publish(s.snap.Success(uint16(res.Level)))

	s.phase = Indicating
	log.Info("indicating", "pattern", cycle.Pattern.String())
	if err := s.deps.Indicator.Drive(ctx, cycle.Pattern); err != nil {
		cycle.IndicateErr = err
		if ctx.Err() == nil {
			log.Warn("indication failed", attributes.ErrorKey, err)
		}
	}

	return cycle
}

// publish records the snapshot and mirrors it when a writer is wired.
// A failed mirror write never affects the loop.
func (s *Scheduler) publish(next status.Snapshot) {
	s.snap = next
	if s.deps.Status == nil {
		return
	}
	if err := s.deps.Status.WriteStatus(next); err != nil {
		s.deps.Logger.Warn("status write failed", attributes.ErrorKey, err)
	}
}

// errorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// If the error does not expose a code, returns codeGeneric.
func errorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	type coder interface{ Code() uint16 }

	var c coder
	if errors.As(err, &c) && c.Code() != 0 {
		return c.Code()
	}
	return codeGeneric
}

const codeGeneric uint16 = 0xFF
