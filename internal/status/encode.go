// internal/status/encode.go
package status

// Encode converts a Snapshot into a full status block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerBlock)

	regs[SlotHealthCode] = s.Health
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotConsecutiveFailures] = s.ConsecutiveFailures
	regs[SlotLevel] = s.Level
	regs[SlotCycleCount] = s.CycleCount

	return regs
}
