// internal/indicator/modbus/status.go
package modbus

import (
	"errors"

	"github.com/tamzrod/quakelight/internal/status"
)

// StatusWriter delivers the monitor status block into holding registers.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter struct {
	dev  *Device
	addr uint16

	written bool
	last    status.Snapshot
}

func NewStatusWriter(dev *Device, addr uint16) *StatusWriter {
	return &StatusWriter{dev: dev, addr: addr}
}

// WriteStatus writes the full block when anything changed since the last
// successful write. A failed write forces the next call to write again.
func (sw *StatusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil || sw.dev == nil {
		return errors.New("status writer: disabled")
	}
	if sw.written && sw.last == s {
		return nil
	}

	if err := sw.dev.WriteRegisters(sw.addr, status.Encode(s)); err != nil {
		sw.written = false
		return err
	}

	sw.written = true
	sw.last = s
	return nil
}
