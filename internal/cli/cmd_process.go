package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/basecoat/seoimg/internal/check"
	"github.com/basecoat/seoimg/internal/config"
	"github.com/basecoat/seoimg/internal/display"
	"github.com/basecoat/seoimg/internal/gemini"
	"github.com/basecoat/seoimg/internal/logging"
	"github.com/basecoat/seoimg/internal/pipeline"
	"github.com/basecoat/seoimg/internal/renamer"
	"github.com/basecoat/seoimg/internal/term"
)

func newProcessCmd() *cobra.Command {
	var (
		tagsFlag string
		cfg      = config.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "process <folder>",
		Short: "Analyze every image in a folder and optionally rename the files",
		Long: `Analyze every image in a folder and optionally rename the files.

Each image is sent to the analysis model in directory order. The run keeps
going past per-image failures; failed images show up in the results table
with an ERROR title. With --rename, successfully analyzed files are renamed
to their sanitized SEO title, with -2, -3... suffixes on collisions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyGlobals(&cfg)
			cfg.Folder = config.NormalizeDirArg(args[0])
			cfg.HintTags = config.ResolveTags(tagsFlag)

			key, err := config.LoadAPIKey()
			if err != nil {
				return err
			}
			cfg.APIKey = key

			if err := cfg.Validate(); err != nil {
				return err
			}
			return runProcess(cmd, &cfg)
		},
	}

	cmd.Flags().StringVar(&tagsFlag, "tags", "", "category hints: 'all' for the built-in catalog, or a comma-separated list")
	cmd.Flags().StringVar(&cfg.Model, "model", config.DefaultModel, "analysis model name")
	cmd.Flags().BoolVar(&cfg.Rename, "rename", false, "rename files to their SEO titles after analysis")
	cmd.Flags().BoolVarP(&cfg.AssumeYes, "yes", "y", false, "skip the rename confirmation prompt")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show planned renames without touching any file")
	cmd.Flags().BoolVar(&cfg.SkipDuplicates, "skip-duplicates", false, "drop perceptual duplicates before analysis")
	cmd.Flags().StringVar(&cfg.ExportPath, "export", "", "write a text report to this path")

	return cmd
}

func runProcess(cmd *cobra.Command, cfg *config.Config) error {
	stdout := cmd.OutOrStdout()

	log, closeLog, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	display.PrintBanner()

	if err := check.Validate(cfg); err != nil {
		return err
	}

	dir, err := filepath.Abs(cfg.Folder)
	if err != nil {
		return fmt.Errorf("resolving folder: %w", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	tasks, err := pipeline.Discover(dir)
	if err != nil {
		return fmt.Errorf("scanning folder: %w", err)
	}
	if len(tasks) == 0 {
		log.Warn().Str("folder", dir).Msg("no images found")
		return nil
	}
	log.Info().Int("images", len(tasks)).Str("folder", dir).Str("size", folderSize(tasks)).Msg("discovered")

	if cfg.SkipDuplicates {
		before := len(tasks)
		tasks = pipeline.FilterDuplicates(tasks, log)
		if dropped := before - len(tasks); dropped > 0 {
			log.Info().Int("dropped", dropped).Msg("duplicates skipped")
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	client, err := gemini.NewClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(client, log)
	var entries []*pipeline.Entry
	for ev := range runner.Start(ctx, tasks, cfg.HintTags) {
		switch ev.Kind {
		case pipeline.EventItemStarted:
			log.Info().Msgf("[%d/%d] %s", ev.Index+1, ev.Total, ev.Name)
		case pipeline.EventItemDone:
			if ev.Entry.Outcome == pipeline.OutcomeSuccess {
				log.Info().Msgf("  -> %s", ev.Entry.Title)
			} else {
				log.Warn().Msgf("  !! %s", ev.Entry.Description)
			}
		case pipeline.EventRunDone:
			entries = ev.Entries
		}
	}
	if err := ctx.Err(); err != nil {
		log.Warn().Msg("run interrupted")
	}

	stats := pipeline.Collect(len(tasks), entries)
	fmt.Fprintln(stdout)
	display.PrintResults(stdout, entries)
	display.PrintSummary(stdout, stats)

	if cfg.ExportPath != "" {
		if err := display.ExportReport(cfg.ExportPath, entries, dir); err != nil {
			return err
		}
		log.Info().Str("path", cfg.ExportPath).Msg("report exported")
	}

	if cfg.DryRun {
		previewRenames(stdout, entries, dir)
		return nil
	}
	if !cfg.Rename {
		return nil
	}
	if stats.Succeeded == 0 {
		log.Warn().Msg("nothing to rename")
		return nil
	}

	if !cfg.AssumeYes {
		ok, err := confirm(fmt.Sprintf("Rename %d file(s) in %s?", stats.Succeeded, dir))
		if err != nil {
			return err
		}
		if !ok {
			log.Info().Msg("rename skipped")
			return nil
		}
	}

	sum, err := renamer.Execute(entries, dir, log)
	if err != nil {
		return err
	}
	log.Info().Int("renamed", sum.Renamed).Int("failed", sum.Failed).Msg("rename finished")
	return nil
}

// previewRenames prints what --rename would do, using the same planner,
// without moving anything.
func previewRenames(w io.Writer, entries []*pipeline.Entry, dir string) {
	fmt.Fprintln(w, "Planned renames (dry run):")
	for _, e := range entries {
		target, err := renamer.Plan(e, dir)
		if err != nil {
			if errors.Is(err, renamer.ErrNotRenameable) {
				continue
			}
			fmt.Fprintf(w, "  %s: skipped (%v)\n", e.OriginalName, err)
			continue
		}
		fmt.Fprintf(w, "  %s -> %s\n", e.OriginalName, filepath.Base(target))
	}
}

// confirm asks an interactive yes/no question on the controlling
// terminal. A non-TTY stdin rejects the prompt so scripted runs must
// pass --yes explicitly.
func confirm(question string) (bool, error) {
	if !term.IsTerminal(os.Stdin) {
		return false, errors.New("stdin is not a terminal; pass --yes to rename without confirmation")
	}
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// folderSize sums the on-disk size of the discovered files for the
// startup log line.
func folderSize(tasks []pipeline.FileTask) string {
	var total int64
	for _, task := range tasks {
		if info, err := os.Stat(task.Path); err == nil {
			total += info.Size()
		}
	}
	return display.FormatBytes(total)
}
