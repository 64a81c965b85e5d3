package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/basecoat/seoimg/internal/naming"
	"github.com/basecoat/seoimg/internal/pipeline"
)

var (
	// ErrNotRenameable marks entries that did not finish analysis
	// successfully. They are skipped, not counted as failures.
	ErrNotRenameable = errors.New("entry is not renameable")

	// ErrEmptyStem marks titles that sanitize down to nothing.
	ErrEmptyStem = errors.New("title sanitizes to an empty name")
)

// Plan computes the target path for one entry without touching the
// filesystem beyond existence checks. The extension is taken from the
// entry's current source path, never from the title.
func Plan(entry *pipeline.Entry, dir string) (string, error) {
	if entry.Outcome != pipeline.OutcomeSuccess {
		return "", ErrNotRenameable
	}
	if _, err := os.Stat(entry.SourcePath); err != nil {
		return "", fmt.Errorf("source file: %w", err)
	}

	stem := naming.Sanitize(entry.Title)
	if stem == "" {
		return "", ErrEmptyStem
	}

	ext := filepath.Ext(entry.SourcePath)
	return naming.UniquePath(dir, stem, ext), nil
}
