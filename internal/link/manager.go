// internal/link/manager.go
package link

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"

	"github.com/tamzrod/quakelight/internal/config"
	"github.com/tamzrod/quakelight/internal/indicator"
)

// ErrConnectTimeout is returned when an optional connect deadline passes.
var ErrConnectTimeout = errors.New("link: connect timed out")

// Indicator is the part of the indicator controller used for feedback.
type Indicator interface {
	Drive(ctx context.Context, p indicator.Pattern) error
	Off(id indicator.OutputID) error
}

type Options struct {
	// Cadence is the on and the off phase of the connecting blink.
	Cadence time.Duration
	// Timeout bounds Connect. 0 waits forever.
	Timeout time.Duration
	// RejoinEvery re-issues Join while a previous Join failed.
	RejoinEvery time.Duration
}

// Manager owns the connection state.
type Manager struct {
	link   Link
	ind    Indicator
	opts   Options
	state  State
	logger *slog.Logger
	now    func() time.Time
}

func NewManager(l Link, ind Indicator, opts Options, logger *slog.Logger) *Manager {
	if opts.Cadence <= 0 {
		opts.Cadence = 500 * time.Millisecond
	}
	if opts.RejoinEvery <= 0 {
		opts.RejoinEvery = 30 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		link:   l,
		ind:    ind,
		opts:   opts,
		state:  Disconnected,
		logger: logger,
		now:    time.Now,
	}
}

func (m *Manager) State() State { return m.state }

// Connect blocks until the link is up, blinking the status output meanwhile.
// Missing credentials fail before the link is touched.
// No reconnection: Connect succeeds at most once per Manager.
func (m *Manager) Connect(ctx context.Context, creds config.Credentials) (Info, error) {
	if creds.SSID == "" || creds.Password == "" {
		return Info{}, fmt.Errorf("link: %w", config.ErrMissingCredentials)
	}
	if m.state != Disconnected {
		return Info{}, fmt.Errorf("link: connect in state %s", m.state)
	}

	m.state = Connecting
	start := m.now()
	m.logger.Info("connecting", "ssid", creds.SSID)

	joined := m.join(ctx, creds)
	lastJoin := start

	for {
		up, err := m.link.Up(ctx)
		if err != nil {
			m.logger.Debug("link check failed", attributes.ErrorKey, err)
		}
		if up {
			break
		}

		if m.opts.Timeout > 0 && m.now().Sub(start) >= m.opts.Timeout {
			_ = m.ind.Off(indicator.Status)
			return Info{}, ErrConnectTimeout
		}

		if !joined && m.now().Sub(lastJoin) >= m.opts.RejoinEvery {
			joined = m.join(ctx, creds)
			lastJoin = m.now()
		}

		if err := m.ind.Drive(ctx, indicator.Blink(indicator.Status, 1, m.opts.Cadence)); err != nil {
			if ctx.Err() != nil {
				_ = m.ind.Off(indicator.Status)
				return Info{}, ctx.Err()
			}
			// Feedback is best effort; keep waiting for the link.
			m.logger.Warn("status blink failed", attributes.ErrorKey, err)
		}
	}

	m.state = Connected
	if err := m.ind.Off(indicator.Status); err != nil {
		m.logger.Warn("status off failed", attributes.ErrorKey, err)
	}

	info, err := m.link.Describe(ctx)
	if err != nil {
		m.logger.Warn("link describe failed", attributes.ErrorKey, err)
	}
	info.Elapsed = m.now().Sub(start)

	m.logger.Info("connected",
		"interface", info.Interface,
		"address", info.Address,
		"elapsed", info.Elapsed.String(),
	)
	return info, nil
}

func (m *Manager) join(ctx context.Context, creds config.Credentials) bool {
	if err := m.link.Join(ctx, creds); err != nil {
		m.logger.Warn("join failed", "ssid", creds.SSID, attributes.ErrorKey, err)
		return false
	}
	return true
}
