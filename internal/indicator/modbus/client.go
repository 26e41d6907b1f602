// internal/indicator/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

const (
	coilOn  uint16 = 0xFF00
	coilOff uint16 = 0x0000
)

// Device is a single connection to one Modbus I/O module.
// It serializes requests.
type Device struct {
	mu      sync.Mutex
	handler io.Closer
	client  modbus.Client
}

type Config struct {
	Transport string // tcp | rtu
	Endpoint  string // host:port or serial device
	UnitID    uint8
	Timeout   time.Duration

	// rtu only
	BaudRate int
	DataBits int
	Parity   string
	StopBits int
}

// Dial connects to the I/O module.
func Dial(cfg Config) (*Device, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("indicator modbus: endpoint required")
	}

	switch cfg.Transport {
	case "", "tcp":
		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("indicator modbus: connect %s: %w", cfg.Endpoint, err)
		}
		return NewDevice(modbus.NewClient(h), h), nil

	case "rtu":
		h := modbus.NewRTUClientHandler(cfg.Endpoint)
		h.BaudRate = cfg.BaudRate
		h.DataBits = cfg.DataBits
		h.Parity = cfg.Parity
		h.StopBits = cfg.StopBits
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("indicator modbus: open %s: %w", cfg.Endpoint, err)
		}
		return NewDevice(modbus.NewClient(h), h), nil

	default:
		return nil, fmt.Errorf("indicator modbus: unknown transport %q", cfg.Transport)
	}
}

// NewDevice wraps an already connected client. closer may be nil.
func NewDevice(client modbus.Client, closer io.Closer) *Device {
	return &Device{client: client, handler: closer}
}

func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handler == nil {
		return nil
	}
	return d.handler.Close()
}

// WriteCoil sets one coil (FC 5).
func (d *Device) WriteCoil(addr uint16, high bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	v := coilOff
	if high {
		v = coilOn
	}
	if _, err := d.client.WriteSingleCoil(addr, v); err != nil {
		return fmt.Errorf("indicator modbus: coil %d: %w", addr, err)
	}
	return nil
}

// WriteRegisters writes holding registers (FC 16).
func (d *Device) WriteRegisters(addr uint16, regs []uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	qty := uint16(len(regs))
	payload := packRegisters(regs)

	if _, err := d.client.WriteMultipleRegisters(addr, qty, payload); err != nil {
		return fmt.Errorf("indicator modbus: registers %d+%d: %w", addr, qty, err)
	}
	return nil
}

// Coil returns a drive line bound to one coil of this device.
func (d *Device) Coil(addr uint16) *Coil {
	return &Coil{dev: d, addr: addr}
}

// Coil is one coil used as a binary drive line.
type Coil struct {
	dev  *Device
	addr uint16
}

func (c *Coil) Set(high bool) error {
	return c.dev.WriteCoil(c.addr, high)
}

// Modbus register memory order (BIG-ENDIAN)
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
