package pipeline

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/basecoat/seoimg/internal/gemini"
)

// Analyzer is the external image-understanding capability the runner
// dispatches to. *gemini.Client satisfies it; tests substitute fakes.
type Analyzer interface {
	Analyze(ctx context.Context, data []byte, mimeType string, tags []string) (gemini.Annotation, error)
}

// Runner executes one batch of analysis calls, strictly sequentially, with
// at most one call in flight. It holds no per-run state: the same Runner
// may be reused for any number of runs, one at a time.
type Runner struct {
	analyzer Analyzer
	log      zerolog.Logger
}

// NewRunner builds a Runner over the given analysis client.
func NewRunner(analyzer Analyzer, log zerolog.Logger) *Runner {
	return &Runner{analyzer: analyzer, log: log}
}

// Start launches the run on its own goroutine and returns the event
// stream. The channel is buffered for the whole run so a slow consumer
// never stalls the analysis loop, and is closed after the RunDone event.
// Cancelling ctx stops the run before the next item is dispatched; the
// in-flight analysis call also observes ctx. RunDone is emitted either
// way, carrying whatever entries were completed.
func (r *Runner) Start(ctx context.Context, tasks []FileTask, tags []string) <-chan Event {
	events := make(chan Event, 2*len(tasks)+1)
	go func() {
		defer close(events)
		r.run(ctx, tasks, tags, events)
	}()
	return events
}

func (r *Runner) run(ctx context.Context, tasks []FileTask, tags []string, events chan<- Event) {
	runID := uuid.New()
	log := r.log.With().Stringer("run_id", runID).Logger()
	total := len(tasks)

	entries := make([]*Entry, 0, total)
	failures := 0

	for i, task := range tasks {
		if ctx.Err() != nil {
			log.Warn().Int("remaining", total-i).Msg("run interrupted")
			break
		}

		events <- Event{Kind: EventItemStarted, RunID: runID, Index: i, Total: total, Name: task.Name}

		entry := r.processTask(ctx, task, tags, log)
		if entry.Outcome == OutcomeFailure {
			failures++
		}
		entries = append(entries, entry)

		events <- Event{
			Kind: EventItemDone, RunID: runID, Index: i, Total: total,
			Entry: entry, Completed: len(entries),
		}
	}

	events <- Event{
		Kind: EventRunDone, RunID: runID, Total: total,
		Completed: len(entries), Failures: failures, Entries: entries,
	}
}

// processTask handles one image: read → inspect → analyze. Every failure
// path returns a Failure entry; nothing escapes as an error.
func (r *Runner) processTask(ctx context.Context, task FileTask, tags []string, log zerolog.Logger) *Entry {
	entry := &Entry{SourcePath: task.Path, OriginalName: task.Name}

	data, err := os.ReadFile(task.Path)
	if err != nil {
		log.Warn().Err(err).Str("file", task.Name).Msg("cannot read file")
		return entry.fail(err)
	}

	if w, h, ok := Inspect(data); ok {
		log.Debug().Str("file", task.Name).Int("width", w).Int("height", h).Msg("image inspected")
	}

	ann, err := r.analyzer.Analyze(ctx, data, MimeType(task.Ext), tags)
	if err != nil {
		log.Warn().Err(err).Str("file", task.Name).Msg("analysis failed")
		return entry.fail(err)
	}

	entry.Title = ann.Title
	entry.Description = ann.AltText
	entry.Outcome = OutcomeSuccess
	return entry
}
