package commands

import (
	"io"
	"log/slog"
	"os"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/config"
	"tableflip.dev/cosmic/pkg/logging"
)

// environment is what every command needs: settings, a logger and a client.
type environment struct {
	cfg    *config.Config
	log    *slog.Logger
	client *apod.Client
	closer io.Closer
}

// loadEnv resolves configuration and builds the API client. Print commands
// log to stderr, the terminal UI only logs to log_file.
func loadEnv(tui bool) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level := logging.ParseLevel(cfg.LogLevel)

	var (
		log    *slog.Logger
		closer io.Closer = io.NopCloser(nil)
	)
	switch {
	case cfg.LogFile != "":
		log, closer, err = logging.OpenFile(cfg.LogFile, level)
		if err != nil {
			return nil, err
		}
	case tui:
		log = logging.Discard()
	default:
		log = logging.Console(os.Stderr, max(level, slog.LevelWarn))
	}

	opts := append(cfg.ClientOptions(), apod.WithLogger(log))
	return &environment{
		cfg:    cfg,
		log:    log,
		client: apod.New(cfg.Endpoint, cfg.APIKey, opts...),
		closer: closer,
	}, nil
}

func (e *environment) Close() {
	_ = e.closer.Close()
}
