// Package config holds runtime configuration: defaults, validation, the
// stored API credential, and the built-in tag catalog.
package config

import (
	"errors"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultModel is the analysis model used when --model is not given.
const DefaultModel = "gemini-2.5-flash"

// Config holds all runtime settings for one invocation. It is populated by
// [DefaultConfig] and then mutated by the CLI layer before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Folder is the directory to process (positional arg).
	Folder string

	// Analysis settings.
	Model    string   // Default: gemini-2.5-flash.
	APIKey   string   // Resolved from env or the stored credential.
	HintTags []string // Category hints fed into the prompt. Empty means none.

	// Behavior flags.
	Rename         bool   // Apply SEO names on disk after analysis.
	AssumeYes      bool   // Skip the rename confirmation prompt.
	DryRun         bool   // Plan renames but never touch the filesystem.
	SkipDuplicates bool   // Drop perceptual duplicates before the run.
	ExportPath     string // Optional report file path.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults applied. Used as the
// base before the CLI applies flag overrides.
func DefaultConfig() Config {
	return Config{
		Model:     DefaultModel,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and required settings.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Model == "" {
		return errors.New("model must not be empty")
	}
	if c.Folder == "" {
		return errors.New("need a folder to process")
	}
	if c.DryRun && c.AssumeYes {
		return errors.New("--dry-run and --yes are mutually exclusive")
	}
	return nil
}
