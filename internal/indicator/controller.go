// internal/indicator/controller.go
package indicator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tamzrod/quakelight/internal/clock"
)

// Controller owns every output exclusively.
// At most one output is logically on at any instant.
// Not safe for concurrent use: the monitor has a single thread of control.
type Controller struct {
	outputs map[OutputID]Output
	order   []OutputID
	on      map[OutputID]bool

	sleep  clock.Sleeper
	logger *slog.Logger
}

// New creates a controller over outputs. No IO is performed.
func New(outputs []Output, sleep clock.Sleeper, logger *slog.Logger) (*Controller, error) {
	if len(outputs) == 0 {
		return nil, errors.New("indicator: at least one output required")
	}
	if sleep == nil {
		sleep = clock.Sleep
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Controller{
		outputs: make(map[OutputID]Output, len(outputs)),
		on:      make(map[OutputID]bool, len(outputs)),
		sleep:   sleep,
		logger:  logger,
	}
	for _, o := range outputs {
		if o.ID == "" {
			return nil, errors.New("indicator: output id required")
		}
		if o.Line == nil {
			return nil, fmt.Errorf("indicator: output %q has no line", o.ID)
		}
		if _, dup := c.outputs[o.ID]; dup {
			return nil, fmt.Errorf("indicator: output %q defined twice", o.ID)
		}
		c.outputs[o.ID] = o
		c.order = append(c.order, o.ID)
		// Unknown until written: treat as on so the first AllOff reaches it.
		c.on[o.ID] = true
	}
	return c, nil
}

// Drive runs p to completion, blocking for p.Total().
// The output is left off on return, including on error.
func (c *Controller) Drive(ctx context.Context, p Pattern) error {
	if _, ok := c.outputs[p.Output]; !ok {
		return fmt.Errorf("indicator: unknown output %q", p.Output)
	}

	c.logger.Debug("indicator drive", "pattern", p.String())

	switch p.Mode {
	case ModeBlink:
		for i := 0; i < p.Count; i++ {
			if err := c.pulse(ctx, p.Output, p.Phase); err != nil {
				return err
			}
			if err := c.sleep(ctx, p.Phase); err != nil {
				return err
			}
		}
		return nil

	case ModeHold:
		return c.pulse(ctx, p.Output, p.Duration)

	default:
		return fmt.Errorf("indicator: unknown mode %d", p.Mode)
	}
}

// pulse switches id on for d, then off.
func (c *Controller) pulse(ctx context.Context, id OutputID, d time.Duration) error {
	if err := c.Set(id, true); err != nil {
		return err
	}
	sleepErr := c.sleep(ctx, d)
	if err := c.Set(id, false); err != nil {
		return err
	}
	return sleepErr
}

// Set switches one output to a logical state.
// Switching on first forces every other output off.
func (c *Controller) Set(id OutputID, on bool) error {
	o, ok := c.outputs[id]
	if !ok {
		return fmt.Errorf("indicator: unknown output %q", id)
	}

	if on {
		for _, other := range c.order {
			if other == id || !c.on[other] {
				continue
			}
			if err := c.write(c.outputs[other], false); err != nil {
				return err
			}
		}
	}

	return c.write(o, on)
}

// Off switches one output off.
func (c *Controller) Off(id OutputID) error {
	return c.Set(id, false)
}

// AllOff switches every output that may be on off. This is the idle state.
func (c *Controller) AllOff() error {
	var errs []error
	for _, id := range c.order {
		if !c.on[id] {
			continue
		}
		if err := c.write(c.outputs[id], false); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IsOn reports the last logical state written to id.
func (c *Controller) IsOn(id OutputID) bool {
	return c.on[id]
}

func (c *Controller) write(o Output, on bool) error {
	if err := o.Line.Set(o.level(on)); err != nil {
		// State unknown after a failed write; keep it marked on so a
		// later off reaches the line again.
		c.on[o.ID] = true
		return fmt.Errorf("indicator: set %s=%v: %w", o.ID, on, err)
	}
	c.on[o.ID] = on
	return nil
}
