// internal/classifier/classifier.go
package classifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/tamzrod/quakelight/internal/fetcher"
)

// Magnitude thresholds of the two query tiers.
const (
	PrimaryMinMagnitude   = 3.5
	SecondaryMinMagnitude = 2.0
)

// Payload size thresholds in bytes. All comparisons are strict.
const (
	HighAbove     = 300 // primary
	ModerateAbove = 200 // primary
	MildAbove     = 200 // secondary
)

// Fetcher is the one call the classifier needs.
type Fetcher interface {
	Fetch(ctx context.Context, q fetcher.Query) ([]byte, error)
}

// Result is what one classification observed.
type Result struct {
	Level Level

	PrimaryLen   int
	SecondaryLen int // -1 when the secondary query was not issued
	Fetches      int
}

// Classifier runs the two-tier query protocol.
type Classifier struct {
	fetcher   Fetcher
	primary   fetcher.Query
	secondary fetcher.Query
}

// New creates a classifier. base supplies everything but the magnitude.
func New(f Fetcher, base fetcher.Query) (*Classifier, error) {
	if f == nil {
		return nil, errors.New("classifier: fetcher required")
	}
	primary := base
	primary.MinMagnitude = PrimaryMinMagnitude
	secondary := base
	secondary.MinMagnitude = SecondaryMinMagnitude

	return &Classifier{
		fetcher:   f,
		primary:   primary,
		secondary: secondary,
	}, nil
}

// Classify performs one classification.
// Exactly one fetch for High/Moderate, exactly two for Mild/Low.
// Any fetch failure aborts and is returned; it never becomes a level.
func (c *Classifier) Classify(ctx context.Context) (Result, error) {
	res := Result{SecondaryLen: -1}

	body, err := c.fetcher.Fetch(ctx, c.primary)
	res.Fetches++
	if err != nil {
		return res, fmt.Errorf("classifier: primary query: %w", err)
	}
	res.PrimaryLen = len(body)

	if level, ok := DecidePrimary(res.PrimaryLen); ok {
		res.Level = level
		return res, nil
	}

	body, err = c.fetcher.Fetch(ctx, c.secondary)
	res.Fetches++
	if err != nil {
		return res, fmt.Errorf("classifier: secondary query: %w", err)
	}
	res.SecondaryLen = len(body)
	res.Level = DecideSecondary(res.SecondaryLen)

	return res, nil
}

// DecidePrimary maps the primary payload length to a level.
// ok is false when the primary result is inconclusive.
func DecidePrimary(l1 int) (Level, bool) {
	switch {
	case l1 > HighAbove:
		return High, true
	case l1 > ModerateAbove:
		return Moderate, true
	default:
		return 0, false
	}
}

// DecideSecondary maps the secondary payload length to a level.
func DecideSecondary(l2 int) Level {
	if l2 > MildAbove {
		return Mild
	}
	return Low
}

// Decide is the whole policy as a pure function of both lengths.
// l2 is ignored when l1 alone is conclusive.
func Decide(l1, l2 int) Level {
	if level, ok := DecidePrimary(l1); ok {
		return level
	}
	return DecideSecondary(l2)
}
