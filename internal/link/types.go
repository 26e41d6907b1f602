// internal/link/types.go
package link

import (
	"context"
	"fmt"
	"time"

	"github.com/tamzrod/quakelight/internal/config"
)

// State is the link acquisition state. It only moves forward.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Info describes an established link.
type Info struct {
	Interface string
	Address   string
	Elapsed   time.Duration // time spent connecting
}

// Link is the narrow view of the network stack the manager needs.
type Link interface {
	// Join starts (or performs) association with the network.
	Join(ctx context.Context, creds config.Credentials) error
	// Up reports whether the link is usable.
	Up(ctx context.Context) (bool, error)
	// Describe reports interface details once up.
	Describe(ctx context.Context) (Info, error)
}
