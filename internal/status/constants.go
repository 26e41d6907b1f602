// internal/status/constants.go
package status

// Monitor Status Block layout constants.
// These values define the register protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerBlock is the fixed number of holding registers in the block.
const SlotsPerBlock = 8

// ---- SLOT INDICES ----

// SlotHealthCode holds the monitor health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the cause of the last failed cycle (0 = none).
const SlotLastErrorCode = 1

// SlotConsecutiveFailures holds the number of failed cycles in a row.
const SlotConsecutiveFailures = 2

// SlotLevel holds the last activity level, 1 (high) to 4 (low),
// or LevelNone before the first success.
const SlotLevel = 3

// SlotCycleCount holds the low 16 bits of the completed cycle counter.
const SlotCycleCount = 4

// ---- RESERVED RANGE ----

// Slots 5–7 are reserved for future use.
const SlotReservedStart = 5
const SlotReservedEnd = 7

// ---- HEALTH CODES ----

// HealthUnknown represents boot, before the first cycle.
const HealthUnknown uint16 = 0

// HealthOK represents a successful last cycle.
const HealthOK uint16 = 1

// HealthError represents a failed last cycle.
const HealthError uint16 = 2

// HealthConnecting represents link acquisition in progress.
const HealthConnecting uint16 = 3

// ---- LEVEL CODES ----

// LevelNone means no level has been classified yet.
const LevelNone uint16 = 0xFFFF
