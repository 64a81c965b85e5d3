// Package cli provides the Cobra-based command tree for seoimg.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/basecoat/seoimg/internal/config"
	"github.com/basecoat/seoimg/internal/version"
)

// globalOpts holds options shared by every subcommand, parsed from
// persistent flags before dispatch.
type globalOpts struct {
	Verbose   bool
	ColorMode string
	LogFile   string
}

var globals globalOpts

// applyGlobals copies the persistent flag state into cfg.
func applyGlobals(cfg *config.Config) {
	cfg.Verbose = globals.Verbose
	cfg.ColorMode = config.ColorMode(globals.ColorMode)
	cfg.LogFile = globals.LogFile
}

// NewRootCmd creates the root cobra command for seoimg.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seoimg",
		Short: "SEO-friendly titles, alt text, and file names for image folders",
		Long: `seoimg - SEO annotation for painting-company image folders

seoimg sends every image in a folder to the Gemini vision model, collects an
SEO title and alt text for each, and can rename the files on disk to match.
Results print as a table and can be exported to a report file.`,
		Version:       version.FullVersion(),
		SilenceErrors: true, // error printing happens in main.go
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().BoolVarP(&globals.Verbose, "verbose", "v", false, "show debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.ColorMode, "color", "auto", "color output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&globals.LogFile, "log-file", "", "append logs to this file")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newProcessCmd(),
		newKeyCmd(),
		newTagsCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go.
func Execute(stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
