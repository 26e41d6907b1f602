// internal/indicator/types.go
package indicator

import (
	"fmt"
	"time"
)

// OutputID names one physical output.
type OutputID string

const (
	Status OutputID = "status"
	Red    OutputID = "red"
	Yellow OutputID = "yellow"
	Green  OutputID = "green"
)

// Mode selects how a pattern drives its output.
type Mode int

const (
	ModeHold Mode = iota
	ModeBlink
)

// Pattern is one blink or hold instruction for exactly one output.
type Pattern struct {
	Output OutputID
	Mode   Mode

	// Blink: Count on/off toggles, each phase held Phase.
	Count int
	Phase time.Duration

	// Hold: on for Duration, then off.
	Duration time.Duration
}

func Blink(out OutputID, count int, phase time.Duration) Pattern {
	return Pattern{Output: out, Mode: ModeBlink, Count: count, Phase: phase}
}

func Hold(out OutputID, d time.Duration) Pattern {
	return Pattern{Output: out, Mode: ModeHold, Duration: d}
}

// Total is how long Drive blocks for this pattern.
func (p Pattern) Total() time.Duration {
	if p.Mode == ModeBlink {
		return time.Duration(2*p.Count) * p.Phase
	}
	return p.Duration
}

func (p Pattern) String() string {
	if p.Mode == ModeBlink {
		return fmt.Sprintf("%s blink x%d @%s", p.Output, p.Count, p.Phase)
	}
	return fmt.Sprintf("%s hold %s", p.Output, p.Duration)
}

// Line is one physical binary drive line.
// high is the electrical level, not the logical state.
type Line interface {
	Set(high bool) error
}

// Output binds a line to an id and a polarity.
type Output struct {
	ID        OutputID
	Line      Line
	ActiveLow bool
}

// level converts a logical state into the electrical level for this output.
func (o Output) level(on bool) bool {
	return on != o.ActiveLow
}
