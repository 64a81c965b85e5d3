package display

import (
	"fmt"
	"io"

	"github.com/basecoat/seoimg/internal/pipeline"
	"github.com/basecoat/seoimg/internal/term"
)

const (
	colOriginal = 28
	colTitle    = 32
	colAlt      = 44
)

// PrintResults writes the per-file results table. Failed rows are colored
// red when colors are enabled.
func PrintResults(w io.Writer, entries []*pipeline.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No images processed.")
		return
	}

	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n",
		colOriginal, "ORIGINAL", colTitle, "TITLE", colAlt, "ALT TEXT", "STATUS")
	for _, e := range entries {
		color, reset := "", ""
		status := "ok"
		if e.Outcome != pipeline.OutcomeSuccess {
			color, reset = term.Red, term.NC
			status = "failed"
		}
		fmt.Fprintf(w, "%s%-*s  %-*s  %-*s  %s%s\n",
			color,
			colOriginal, Truncate(e.OriginalName, colOriginal),
			colTitle, Truncate(e.Title, colTitle),
			colAlt, Truncate(e.Description, colAlt),
			status, reset)
	}
}

// PrintSummary writes the one-line run summary after the table.
func PrintSummary(w io.Writer, stats pipeline.RunStats) {
	color := term.Green
	if stats.Failed > 0 {
		color = term.Yellow
	}
	fmt.Fprintf(w, "\n%s%d analyzed, %d succeeded, %d failed%s\n",
		color, stats.Completed, stats.Succeeded, stats.Failed, term.NC)
}
