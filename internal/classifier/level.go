// internal/classifier/level.go
package classifier

import "fmt"

// Level is the discrete activity classification.
// Lower values are more severe; the zero Level is no classification.
type Level uint16

const (
	High Level = iota + 1
	Moderate
	Mild
	Low
)

func (l Level) String() string {
	switch l {
	case High:
		return "high"
	case Moderate:
		return "moderate"
	case Mild:
		return "mild"
	case Low:
		return "low"
	default:
		return fmt.Sprintf("Level(%d)", uint16(l))
	}
}

// Valid reports whether l is one of the four classified levels.
func (l Level) Valid() bool {
	return l >= High && l <= Low
}

// MoreSevere reports whether l ranks above other.
// A classified level outranks the zero Level.
func (l Level) MoreSevere(other Level) bool {
	if !l.Valid() {
		return false
	}
	return !other.Valid() || l < other
}
