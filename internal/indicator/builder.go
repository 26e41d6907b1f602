// internal/indicator/builder.go
package indicator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tamzrod/quakelight/internal/clock"
	cfg "github.com/tamzrod/quakelight/internal/config"
	imodbus "github.com/tamzrod/quakelight/internal/indicator/modbus"
)

// Build constructs the Controller and wires the I/O module lifecycle.
// The module is dialled only when some output or the status block needs it.
// Assumes config has passed Validate and Normalize.
// The returned closer switches every output off and releases the module.
func Build(ic cfg.IndicatorConfig, sleep clock.Sleeper, logger *slog.Logger) (*Controller, *imodbus.StatusWriter, func() error, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var dev *imodbus.Device

	device := func() (*imodbus.Device, error) {
		if dev != nil {
			return dev, nil
		}
		d, err := imodbus.Dial(imodbus.Config{
			Transport: ic.Device.Transport,
			Endpoint:  ic.Device.Endpoint,
			UnitID:    ic.Device.UnitID,
			Timeout:   time.Duration(ic.Device.TimeoutMs) * time.Millisecond,
			BaudRate:  ic.Device.BaudRate,
			DataBits:  ic.Device.DataBits,
			Parity:    ic.Device.Parity,
			StopBits:  ic.Device.StopBits,
		})
		if err != nil {
			return nil, err
		}
		dev = d
		return dev, nil
	}

	closeDevice := func() error {
		if dev == nil {
			return nil
		}
		return dev.Close()
	}

	outputs := make([]Output, 0, len(ic.Outputs))
	for _, o := range ic.Outputs {
		var line Line
		switch o.Driver {
		case cfg.DriverModbus:
			d, err := device()
			if err != nil {
				_ = closeDevice()
				return nil, nil, nil, err
			}
			line = d.Coil(o.Coil)
		case cfg.DriverLog:
			line = NewLogLine(OutputID(o.ID), logger)
		default:
			_ = closeDevice()
			return nil, nil, nil, fmt.Errorf("indicator: output %q has unknown driver %q", o.ID, o.Driver)
		}

		activeLow := o.ID == cfg.OutputStatus
		if o.ActiveLow != nil {
			activeLow = *o.ActiveLow
		}

		outputs = append(outputs, Output{
			ID:        OutputID(o.ID),
			Line:      line,
			ActiveLow: activeLow,
		})
	}

	var sw *imodbus.StatusWriter
	if ic.Status != nil {
		d, err := device()
		if err != nil {
			_ = closeDevice()
			return nil, nil, nil, err
		}
		sw = imodbus.NewStatusWriter(d, ic.Status.Address)
	}

	c, err := New(outputs, sleep, logger)
	if err != nil {
		_ = closeDevice()
		return nil, nil, nil, err
	}

	closer := func() error {
		offErr := c.AllOff()
		if err := closeDevice(); err != nil {
			return err
		}
		return offErr
	}

	return c, sw, closer, nil
}
