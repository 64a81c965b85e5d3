package check

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/basecoat/seoimg/internal/config"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestRun_MissingKeyFails(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := Run(context.Background(), &cfg, nil, zerolog.Nop()); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestRun_NilPingerSkipsReachability(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.APIKey = "sk-test"
	if err := Run(context.Background(), &cfg, nil, zerolog.Nop()); err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestRun_UnreachableServiceIsNotFatal(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.APIKey = "sk-test"
	pinger := stubPinger{err: errors.New("dial tcp: timeout")}
	if err := Run(context.Background(), &cfg, pinger, zerolog.Nop()); err != nil {
		t.Errorf("network failure should only warn, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := Validate(&cfg); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("err = %v, want ErrNoAPIKey", err)
	}
	cfg.APIKey = "sk-test"
	if err := Validate(&cfg); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
