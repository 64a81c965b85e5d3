package renamer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/basecoat/seoimg/internal/gemini"
	"github.com/basecoat/seoimg/internal/pipeline"
)

// seqAnalyzer returns canned annotations in call order.
type seqAnalyzer struct {
	results []func() (gemini.Annotation, error)
	calls   int
}

func (s *seqAnalyzer) Analyze(context.Context, []byte, string, []string) (gemini.Annotation, error) {
	r := s.results[s.calls]
	s.calls++
	return r()
}

func TestRunThenRename(t *testing.T) {
	dir := t.TempDir()
	var tasks []pipeline.FileTask
	for _, name := range []string{"001.jpg", "002.jpg", "003.jpg"} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("img"), 0o644); err != nil {
			t.Fatal(err)
		}
		tasks = append(tasks, pipeline.NewFileTask(p))
	}

	analyzer := &seqAnalyzer{results: []func() (gemini.Annotation, error){
		func() (gemini.Annotation, error) {
			return gemini.Annotation{Title: "Deck Staining", AltText: "cedar deck"}, nil
		},
		func() (gemini.Annotation, error) {
			return gemini.Annotation{}, errors.New("503 service unavailable")
		},
		func() (gemini.Annotation, error) {
			return gemini.Annotation{Title: "Fence Painting", AltText: "white fence"}, nil
		},
	}}

	runner := pipeline.NewRunner(analyzer, zerolog.Nop())
	var entries []*pipeline.Entry
	for ev := range runner.Start(context.Background(), tasks, nil) {
		if ev.Kind == pipeline.EventRunDone {
			entries = ev.Entries
		}
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[1].Title != pipeline.ErrorTitle {
		t.Errorf("entry 2 title = %q, want %q", entries[1].Title, pipeline.ErrorTitle)
	}

	sum, err := Execute(entries, dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if sum.Renamed != 2 || sum.Failed != 0 {
		t.Errorf("Summary = %+v, want {Renamed:2 Failed:0}", sum)
	}
	for _, want := range []string{"Deck-Staining.jpg", "002.jpg", "Fence-Painting.jpg"} {
		if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
			t.Errorf("expected %s on disk: %v", want, err)
		}
	}
}
