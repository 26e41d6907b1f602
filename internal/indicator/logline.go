// internal/indicator/logline.go
package indicator

import "log/slog"

// LogLine is a dry-run line: it only logs level changes.
// Used when no I/O module is wired for an output.
type LogLine struct {
	id     OutputID
	logger *slog.Logger
	high   bool
}

func NewLogLine(id OutputID, logger *slog.Logger) *LogLine {
	return &LogLine{id: id, logger: logger}
}

func (l *LogLine) Set(high bool) error {
	if l.high != high {
		l.logger.Info("output level", "output", string(l.id), "high", high)
	}
	l.high = high
	return nil
}

// High reports the current electrical level.
func (l *LogLine) High() bool { return l.high }
