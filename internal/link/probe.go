// internal/link/probe.go
package link

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/tamzrod/quakelight/internal/config"
)

// Probe treats the link as up once a TCP dial to Addr succeeds.
// Association is left to the host; Join does nothing.
type Probe struct {
	Addr    string
	Timeout time.Duration

	local net.Addr
}

func NewProbe(addr string) *Probe {
	return &Probe{Addr: addr, Timeout: 3 * time.Second}
}

func (p *Probe) Join(ctx context.Context, creds config.Credentials) error {
	return nil
}

func (p *Probe) Up(ctx context.Context) (bool, error) {
	d := net.Dialer{Timeout: p.Timeout}
	conn, err := d.DialContext(ctx, "tcp", p.Addr)
	if err != nil {
		return false, err
	}
	p.local = conn.LocalAddr()
	return true, conn.Close()
}

func (p *Probe) Describe(ctx context.Context) (Info, error) {
	if p.local == nil {
		return Info{}, errors.New("probe: link not up")
	}
	return Info{Interface: "probe", Address: p.local.String()}, nil
}
