// Package logging wires up the process-wide zerolog logger: console
// output with optional color, an optional append-only file sink, and the
// verbosity level.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/basecoat/seoimg/internal/config"
	"github.com/basecoat/seoimg/internal/term"
)

// New builds the root logger from cfg. It also configures the term
// package's color state as a side effect, so call it before any colored
// output. The returned closer releases the file sink; it is a no-op when
// no log file was configured.
func New(cfg *config.Config) (zerolog.Logger, func() error, error) {
	term.Configure(cfg.ColorMode)

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !term.Enabled(),
		TimeFormat: time.Kitchen,
	}

	var w io.Writer = console
	closer := func() error { return nil }

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
		}
		w = zerolog.MultiLevelWriter(console, f)
		closer = f.Close
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return log, closer, nil
}
