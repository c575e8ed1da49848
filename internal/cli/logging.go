package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/leapstack-labs/sqlscript/internal/cli/config"
)

// newLogger builds the structured logger for a command run. Verbosity
// flags map onto slog levels: --debug wins over --verbose wins over
// --quiet. The returned closer releases the log file, if one is open.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level := slog.LevelWarn
	switch {
	case cfg.Debug:
		level = slog.LevelDebug
	case cfg.Verbose:
		level = slog.LevelInfo
	case cfg.Quiet:
		level = slog.LevelError
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, f)
		closer = func() { _ = f.Close() }
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
	})
	logger := slog.New(handler).With("run_id", uuid.New().String())
	return logger, closer, nil
}
