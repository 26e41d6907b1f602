// internal/status/snapshot.go
package status

// Snapshot represents exactly what the status writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health              uint16
	LastErrorCode       uint16
	ConsecutiveFailures uint16
	Level               uint16
	CycleCount          uint16
}

// Initial is the boot snapshot.
func Initial() Snapshot {
	return Snapshot{
		Health: HealthUnknown,
		Level:  LevelNone,
	}
}

// Success returns the snapshot after a classified cycle.
func (s Snapshot) Success(level uint16) Snapshot {
	s.Health = HealthOK
	s.LastErrorCode = 0
	s.ConsecutiveFailures = 0
	s.Level = level
	s.CycleCount++
	return s
}

// Failure returns the snapshot after a failed cycle.
// The level is kept: the indicator still shows it.
func (s Snapshot) Failure(code uint16) Snapshot {
	s.Health = HealthError
	s.LastErrorCode = code
	if s.ConsecutiveFailures < 0xFFFF {
		s.ConsecutiveFailures++
	}
	s.CycleCount++
	return s
}
