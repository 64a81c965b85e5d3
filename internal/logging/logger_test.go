package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/basecoat/seoimg/internal/config"
)

func TestNew_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	log, closeLog, err := New(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()
	log.Info().Msg("test message")
}

func TestNew_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "nested", "seoimg.log")

	log, closeLog, err := New(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Str("file", "deck.jpg").Msg("to file")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("to file")) || !bytes.Contains(b, []byte("deck.jpg")) {
		t.Errorf("log file content: %s", string(b))
	}
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.Verbose = true
	cfg.LogFile = filepath.Join(dir, "seoimg.log")

	log, closeLog, err := New(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	log.Debug().Msg("debug visible")
	closeLog()

	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("debug visible")) {
		t.Error("verbose config should enable debug level")
	}
}
