// internal/scheduler/types.go
package scheduler

import (
	"fmt"
	"time"

	"github.com/tamzrod/quakelight/internal/classifier"
	"github.com/tamzrod/quakelight/internal/indicator"
)

// Phase is the scheduler state. There is no terminal phase.
type Phase int

const (
	Initializing Phase = iota
	Polling
	Indicating
	Sleeping
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case Polling:
		return "polling"
	case Indicating:
		return "indicating"
	case Sleeping:
		return "sleeping"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// PollCycle is what one iteration observed. It is discarded after logging.
type PollCycle struct {
	At time.Time

	PrimaryLen   int
	SecondaryLen int // -1 when not fetched
	Fetches      int

	Level   classifier.Level
	Pattern indicator.Pattern

	// Err non-nil means classification failed and nothing was indicated.
	Err error
	// IndicateErr is a failure while driving the outputs.
	IndicateErr error
}

// Indicated reports whether the cycle reached the Indicating phase.
func (c PollCycle) Indicated() bool {
	return c.Err == nil
}
