// Package check provides environment diagnostics (the check command) and
// pre-run validation: is an API key configured, is the decoder support in
// place, is the analysis service reachable.
package check

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/basecoat/seoimg/internal/config"
	"github.com/basecoat/seoimg/internal/pipeline"
)

// ErrNoAPIKey is returned when no credential is configured at all.
var ErrNoAPIKey = errors.New("no API key configured (set GEMINI_API_KEY or run 'seoimg key set')")

// Pinger is the minimal reachability interface needed by Run.
// Defined here (rather than importing the gemini package) so that check
// remains dependency-light and testable with a mock.
type Pinger interface {
	Ping(ctx context.Context) error
}

// pingTimeout bounds the reachability probe so a dead network does not
// hang the check command.
const pingTimeout = 10 * time.Second

// Run performs the diagnostics flow. A missing API key is the only hard
// failure; everything else is informational and merely logged.
func Run(ctx context.Context, cfg *config.Config, pinger Pinger, log zerolog.Logger) error {
	log.Info().Msg("=== Environment Check ===")

	if cfg.APIKey == "" {
		log.Error().Msg("API key: missing")
		return ErrNoAPIKey
	}
	log.Info().Msg("API key: configured")
	log.Info().Str("model", cfg.Model).Msg("analysis model")

	checkDecoders(log)

	if pinger == nil {
		log.Warn().Msg("service reachability: skipped (no client)")
		return nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pinger.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Msg("service reachability: failed")
		return nil
	}
	log.Info().Msg("service reachability: ok")
	return nil
}

// checkDecoders verifies a sample of each registered image format decodes.
// The decoders are compiled in, so this mostly documents the supported
// formats in the check output.
func checkDecoders(log zerolog.Logger) {
	for _, ext := range []string{".jpg", ".png", ".webp", ".bmp", ".tiff", ".gif"} {
		log.Info().Str("format", ext).Str("mime", pipeline.MimeType(ext)).Msg("decoder registered")
	}
}

// Validate is the pre-run gate: it requires a configured API key before a
// batch is started. Returns ErrNoAPIKey on failure.
func Validate(cfg *config.Config) error {
	if cfg.APIKey == "" {
		return ErrNoAPIKey
	}
	return nil
}
