// internal/log/log.go
package log

import (
	"io"
	"log/slog"
	"os"

	slogger "github.com/SENERGY-Platform/go-service-base/struct-logger"
	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"

	"github.com/tamzrod/quakelight/internal/config"
)

// Logger is the process logger. It discards until Init is called.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func Init(cfg config.LogConfig) {
	Logger = New(cfg, os.Stdout)
	Logger.Debug("logger init")
}

// New builds a logger writing to w.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource: false,
		Level:     slogger.GetLevel(cfg.Level, slog.LevelInfo),
	}

	handler := slogger.GetHandler(cfg.Handler, w, options, slog.Default().Handler())
	handler = handler.WithAttrs([]slog.Attr{
		slog.String(attributes.ProjectKey, "github.com/tamzrod/quakelight"),
	})

	return slog.New(handler)
}
