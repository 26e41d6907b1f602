// cmd/quakelight/main.go
package main

import (
	"context"
	"errors"
	log_ "log"
	"os"
	"time"

	"github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"

	"github.com/tamzrod/quakelight/internal/classifier"
	"github.com/tamzrod/quakelight/internal/clock"
	"github.com/tamzrod/quakelight/internal/config"
	"github.com/tamzrod/quakelight/internal/fetcher"
	"github.com/tamzrod/quakelight/internal/indicator"
	"github.com/tamzrod/quakelight/internal/link"
	"github.com/tamzrod/quakelight/internal/log"
	"github.com/tamzrod/quakelight/internal/scheduler"
)

func main() {
	// --------------------
	// Load + validate config
	// --------------------

	env, err := config.LoadEnv()
	if err != nil {
		log_.Fatalf("config env failed: %v", err)
	}

	cfg, err := config.Load(env)
	if err != nil {
		log_.Fatalf("config load failed: %v", err)
	}

	log.Init(cfg.Log)

	if err := config.Validate(cfg); err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			log.Logger.Error("fatal configuration: set LINK_SSID and LINK_PASSWORD", attributes.ErrorKey, err)
		} else {
			log.Logger.Error("config validation failed", attributes.ErrorKey, err)
		}
		os.Exit(1)
	}
	config.Normalize(cfg)

	// No shutdown hook: the monitor runs until killed.
	ctx := context.Background()

	if err := run(ctx, cfg); err != nil {
		log.Logger.Error("monitor stopped", attributes.ErrorKey, err)
		os.Exit(1)
	}
}

// run wires every component and blocks in the poll loop.
func run(ctx context.Context, cfg *config.Config) error {
	logger := log.Logger

	// ---- indicator (outputs + optional status block) ----
	ind, statusWriter, closeIndicator, err := indicator.Build(cfg.Indicator, clock.Sleep, logger)
	if err != nil {
		return err
	}
	defer closeIndicator()

	// Idle state: every output off.
	if err := ind.AllOff(); err != nil {
		return err
	}

	// ---- link ----
	l, err := link.Build(cfg.Link)
	if err != nil {
		return err
	}
	mgr := link.NewManager(l, ind, link.Options{
		Cadence: time.Duration(cfg.Link.BlinkMs) * time.Millisecond,
		Timeout: time.Duration(cfg.Link.TimeoutMs) * time.Millisecond,
	}, logger)

	// ---- fetcher + classifier ----
	client, err := fetcher.NewHTTPClient(time.Duration(cfg.Query.TimeoutMs) * time.Millisecond)
	if err != nil {
		return err
	}
	cls, err := classifier.New(fetcher.New(client), fetcher.NewQuery(cfg.Query, 0))
	if err != nil {
		return err
	}

	// ---- scheduler ----
	deps := scheduler.Deps{
		Connector:  mgr,
		Classifier: cls,
		Indicator:  ind,
		Sleep:      clock.Sleep,
		Logger:     logger,
	}
	// Typed nil must not reach the interface.
	if statusWriter != nil {
		deps.Status = statusWriter
	}

	s, err := scheduler.New(scheduler.Config{
		Interval:    time.Duration(cfg.Poll.IntervalMs) * time.Millisecond,
		Credentials: cfg.Credentials,
	}, deps)
	if err != nil {
		return err
	}

	return s.Run(ctx)
}
