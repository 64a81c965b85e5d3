package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/basecoat/seoimg/internal/naming"
	"github.com/basecoat/seoimg/internal/pipeline"
)

// WriteReport writes a plain-text report of a finished run: one block per
// image with the original name, generated title, alt text, and the file
// name the title sanitizes to. Failed entries report their failure reason
// instead; a success whose title sanitizes to nothing gets "n/a" as the
// new name.
func WriteReport(w io.Writer, entries []*pipeline.Entry, dir string) error {
	fmt.Fprintf(w, "seoimg report\nfolder: %s\ndate: %s\n\n", dir, time.Now().Format(time.RFC3339))

	for i, e := range entries {
		fmt.Fprintf(w, "[%d] %s\n", i+1, e.OriginalName)
		if e.Outcome != pipeline.OutcomeSuccess {
			fmt.Fprintf(w, "    status:   failed\n    reason:   %s\n\n", e.Description)
			continue
		}
		newName := "n/a"
		if stem := naming.Sanitize(e.Title); stem != "" {
			newName = stem + filepath.Ext(e.SourcePath)
		}
		fmt.Fprintf(w, "    title:    %s\n    alt text: %s\n    new name: %s\n\n",
			e.Title, e.Description, newName)
	}
	return nil
}

// ExportReport writes the report to path, creating parent directories.
func ExportReport(path string, entries []*pipeline.Entry, dir string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()
	if err := WriteReport(f, entries, dir); err != nil {
		return err
	}
	return f.Close()
}
