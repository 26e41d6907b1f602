// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrMissingCredentials is the fatal startup error for absent network credentials.
// Nothing may touch the network once it has been returned.
var ErrMissingCredentials = errors.New("network credentials missing")

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	// ------------------------------------------------------------
	// CREDENTIALS (checked first: fatal before anything else)
	// ------------------------------------------------------------

	if cfg.Credentials.SSID == "" {
		return fmt.Errorf("%w: LINK_SSID is not set", ErrMissingCredentials)
	}
	if cfg.Credentials.Password == "" {
		return fmt.Errorf("%w: LINK_PASSWORD is not set", ErrMissingCredentials)
	}

	// ------------------------------------------------------------
	// LINK
	// ------------------------------------------------------------

	switch cfg.Link.Driver {
	case LinkNmcli:
	case LinkProbe:
		if cfg.Link.ProbeAddr == "" {
			return errors.New("link: probe driver requires probe_addr")
		}
	default:
		return fmt.Errorf("link: unknown driver %q", cfg.Link.Driver)
	}
	if cfg.Link.TimeoutMs < 0 {
		return errors.New("link: timeout_ms must be >= 0")
	}
	if cfg.Link.BlinkMs <= 0 {
		return errors.New("link: blink_ms must be > 0")
	}

	// ------------------------------------------------------------
	// QUERY
	// ------------------------------------------------------------

	u, err := url.Parse(cfg.Query.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("query: invalid base_url %q", cfg.Query.BaseURL)
	}
	if cfg.Query.Latitude < -90 || cfg.Query.Latitude > 90 {
		return fmt.Errorf("query: latitude %v out of range", cfg.Query.Latitude)
	}
	if cfg.Query.Longitude < -180 || cfg.Query.Longitude > 180 {
		return fmt.Errorf("query: longitude %v out of range", cfg.Query.Longitude)
	}
	if cfg.Query.RadiusKm <= 0 {
		return errors.New("query: radius_km must be > 0")
	}
	if cfg.Query.WindowHours <= 0 {
		return errors.New("query: window_hours must be > 0")
	}
	if cfg.Query.TimeoutMs < 0 {
		return errors.New("query: timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if cfg.Poll.IntervalMs <= 0 {
		return errors.New("poll: interval_ms must be > 0")
	}

	// ------------------------------------------------------------
	// OUTPUTS (exactly the four roles, each once)
	// ------------------------------------------------------------

	return validateIndicator(&cfg.Indicator)
}

func validateIndicator(ic *IndicatorConfig) error {
	seen := make(map[string]bool)
	coilOwner := make(map[uint16]string)
	needDevice := ic.Status != nil

	for _, o := range ic.Outputs {
		if !knownOutput(o.ID) {
			return fmt.Errorf("indicator: unknown output id %q", o.ID)
		}
		if seen[o.ID] {
			return fmt.Errorf("indicator: output %q defined twice", o.ID)
		}
		seen[o.ID] = true

		switch o.Driver {
		case DriverLog:
		case DriverModbus:
			needDevice = true
			if prev, exists := coilOwner[o.Coil]; exists {
				return fmt.Errorf(
					"indicator: coil collision: coil=%d used by outputs %q and %q",
					o.Coil,
					prev,
					o.ID,
				)
			}
			coilOwner[o.Coil] = o.ID
		default:
			return fmt.Errorf("indicator: output %q has unknown driver %q", o.ID, o.Driver)
		}
	}

	for _, id := range OutputIDs {
		if !seen[id] {
			return fmt.Errorf("indicator: output %q is not defined", id)
		}
	}

	if !needDevice {
		return nil
	}

	d := ic.Device
	if d.Endpoint == "" {
		return errors.New("indicator: modbus device endpoint required")
	}
	switch d.Transport {
	case TransportTCP:
	case TransportRTU:
		if d.BaudRate <= 0 {
			return errors.New("indicator: rtu baud_rate must be > 0")
		}
		switch d.Parity {
		case "N", "E", "O":
		default:
			return fmt.Errorf("indicator: rtu parity %q must be N, E or O", d.Parity)
		}
	default:
		return fmt.Errorf("indicator: unknown device transport %q", d.Transport)
	}
	if d.TimeoutMs <= 0 {
		return errors.New("indicator: device timeout_ms must be > 0")
	}

	return nil
}

func knownOutput(id string) bool {
	for _, k := range OutputIDs {
		if k == id {
			return true
		}
	}
	return false
}
