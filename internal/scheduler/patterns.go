// internal/scheduler/patterns.go
package scheduler

import (
	"time"

	"github.com/tamzrod/quakelight/internal/classifier"
	"github.com/tamzrod/quakelight/internal/indicator"
)

// PatternFor is the fixed level to pattern mapping.
func PatternFor(l classifier.Level) indicator.Pattern {
	switch l {
	case classifier.High:
		return indicator.Blink(indicator.Red, 5, 1*time.Second)
	case classifier.Moderate:
		return indicator.Hold(indicator.Red, 300*time.Second)
	case classifier.Mild:
		return indicator.Hold(indicator.Yellow, 1200*time.Second)
	default:
		return indicator.Hold(indicator.Green, 3600*time.Second)
	}
}
