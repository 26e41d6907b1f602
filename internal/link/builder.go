// internal/link/builder.go
package link

import (
	"fmt"

	cfg "github.com/tamzrod/quakelight/internal/config"
)

// Build selects the link backend.
func Build(c cfg.LinkConfig) (Link, error) {
	switch c.Driver {
	case cfg.LinkNmcli:
		return NewNmcli(c.Interface), nil
	case cfg.LinkProbe:
		return NewProbe(c.ProbeAddr), nil
	default:
		return nil, fmt.Errorf("link: unknown driver %q", c.Driver)
	}
}
