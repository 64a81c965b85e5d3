package pipeline

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

// writeGradient writes a 64x64 PNG whose brightness ramps along one axis.
// Horizontal and vertical ramps produce maximally distant dHash values.
func writeGradient(t *testing.T, path string, horizontal bool) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := y
			if horizontal {
				v = x
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v * 4)})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestFilterDuplicates_DropsIdenticalKeepsFirst(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	c := filepath.Join(dir, "c.png")
	writeGradient(t, a, true)
	writeGradient(t, b, true) // same pixels as a
	writeGradient(t, c, false)

	tasks := []FileTask{NewFileTask(a), NewFileTask(b), NewFileTask(c)}
	kept := FilterDuplicates(tasks, zerolog.Nop())

	want := []string{"a.png", "c.png"}
	if got := names(kept); !sliceEqual(got, want) {
		t.Errorf("kept %v, want %v", got, want)
	}
}

func TestFilterDuplicates_KeepsDistinctImages(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writeGradient(t, a, true)
	writeGradient(t, b, false)

	tasks := []FileTask{NewFileTask(a), NewFileTask(b)}
	kept := FilterDuplicates(tasks, zerolog.Nop())

	if len(kept) != 2 {
		t.Errorf("kept %d tasks, want 2", len(kept))
	}
}

func TestFilterDuplicates_UndecodableFileKept(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	kept := FilterDuplicates([]FileTask{NewFileTask(bad)}, zerolog.Nop())
	if len(kept) != 1 {
		t.Errorf("kept %d tasks, want 1 (undecodable files pass through)", len(kept))
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "img.png")
	writeGradient(t, p, true)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}

	w, h, ok := Inspect(data)
	if !ok || w != 64 || h != 64 {
		t.Errorf("Inspect = %dx%d ok=%v, want 64x64 ok=true", w, h, ok)
	}

	if _, _, ok := Inspect([]byte("garbage")); ok {
		t.Error("Inspect on garbage should report ok=false")
	}
}
