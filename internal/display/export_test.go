package display

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/basecoat/seoimg/internal/pipeline"
)

func sampleEntries() []*pipeline.Entry {
	return []*pipeline.Entry{
		{
			SourcePath:   "/photos/001.jpg",
			OriginalName: "001.jpg",
			Title:        "Deck Staining",
			Description:  "Freshly stained cedar deck",
			Outcome:      pipeline.OutcomeSuccess,
		},
		{
			SourcePath:   "/photos/002.jpg",
			OriginalName: "002.jpg",
			Title:        pipeline.ErrorTitle,
			Description:  "429 quota exceeded",
			Outcome:      pipeline.OutcomeFailure,
		},
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleEntries(), "/photos"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"folder: /photos",
		"001.jpg",
		"Deck Staining",
		"new name: Deck-Staining.jpg",
		"status:   failed",
		"429 quota exceeded",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReport_EmptyStemFallsBack(t *testing.T) {
	entries := []*pipeline.Entry{{
		SourcePath:   "/photos/a.jpg",
		OriginalName: "a.jpg",
		Title:        "???",
		Outcome:      pipeline.OutcomeSuccess,
	}}
	var buf bytes.Buffer
	if err := WriteReport(&buf, entries, "/photos"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "new name: n/a") {
		t.Errorf("unsanitizable title should report n/a:\n%s", buf.String())
	}
}

func TestExportReport_CreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.txt")
	if err := ExportReport(path, sampleEntries(), "/photos"); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "Deck Staining") {
		t.Errorf("exported report content: %s", b)
	}
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	PrintResults(&buf, sampleEntries())
	out := buf.String()

	if !strings.Contains(out, "ORIGINAL") {
		t.Error("missing header row")
	}
	if !strings.Contains(out, "failed") || !strings.Contains(out, "ok") {
		t.Errorf("missing status values:\n%s", out)
	}
}

func TestPrintResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintResults(&buf, nil)
	if !strings.Contains(buf.String(), "No images") {
		t.Errorf("empty run output: %q", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, pipeline.RunStats{Total: 3, Completed: 3, Succeeded: 2, Failed: 1})
	if !strings.Contains(buf.String(), "3 analyzed, 2 succeeded, 1 failed") {
		t.Errorf("summary = %q", buf.String())
	}
}
