package renamer

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/basecoat/seoimg/internal/pipeline"
)

// Summary counts the outcome of one Execute pass.
type Summary struct {
	Renamed int
	Failed  int
}

// Execute renames every successful entry in place. Entries that failed
// analysis are skipped silently and count toward neither total. Each
// rename is attempted independently: a vanished file, an empty stem, or
// an IO error marks that one entry failed and the pass continues. On
// success the entry's SourcePath is updated to the new location, so a
// later pass (an export, a second run) sees the file where it now lives.
func Execute(entries []*pipeline.Entry, dir string, log zerolog.Logger) (Summary, error) {
	if dir == "" {
		return Summary{}, errors.New("target directory is empty")
	}

	var sum Summary
	for _, entry := range entries {
		target, err := Plan(entry, dir)
		if err != nil {
			if errors.Is(err, ErrNotRenameable) {
				continue
			}
			log.Warn().Str("file", entry.OriginalName).Err(err).Msg("rename skipped")
			sum.Failed++
			continue
		}

		if err := os.Rename(entry.SourcePath, target); err != nil {
			log.Warn().Str("file", entry.OriginalName).Err(err).Msg("rename failed")
			sum.Failed++
			continue
		}

		log.Debug().Str("from", entry.OriginalName).Str("to", target).Msg("renamed")
		entry.SourcePath = target
		sum.Renamed++
	}
	return sum, nil
}
