package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/l1jgo/pong/internal/input"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultsValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[game]
frame_rate = "10ms"

[physics]
step = "5ms"
max_substeps = 4

[paddle]
speed = 250.0

[controls]
player2_up = "i"
player2_down = "k"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.FrameRate != 10*time.Millisecond {
		t.Errorf("frame_rate = %v", cfg.Game.FrameRate)
	}
	if cfg.Physics.Step != 5*time.Millisecond || cfg.Physics.MaxSubsteps != 4 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Paddle.Speed != 250 {
		t.Errorf("paddle speed = %v", cfg.Paddle.Speed)
	}
	// Untouched sections keep their defaults.
	if cfg.Ball.LaunchSpeed != 100 || cfg.Controls.Reset != "space" {
		t.Errorf("defaults lost: ball=%+v controls=%+v", cfg.Ball, cfg.Controls)
	}

	keys, err := cfg.Controls.Bindings()
	if err != nil {
		t.Fatalf("Bindings: %v", err)
	}
	if keys.Player2Up != "i" || keys.Player2Down != "k" || keys.Reset != input.KeySpace {
		t.Errorf("bindings = %+v", keys)
	}
}

func TestDuplicateBindingIsFatal(t *testing.T) {
	path := writeConfig(t, `
[controls]
player1_up = "up"
`)
	_, err := Load(path)
	if !errors.Is(err, ErrDuplicateBinding) {
		t.Fatalf("expected ErrDuplicateBinding, got %v", err)
	}
}

func TestUnknownKeyIsFatal(t *testing.T) {
	cfg := Defaults()
	cfg.Controls.Reset = "hyper"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frame rate", func(c *Config) { c.Game.FrameRate = 0 }},
		{"negative step", func(c *Config) { c.Physics.Step = -time.Millisecond }},
		{"zero step", func(c *Config) { c.Physics.Step = 0 }},
		{"no substeps", func(c *Config) { c.Physics.MaxSubsteps = 0 }},
		{"zero paddle speed", func(c *Config) { c.Paddle.Speed = 0 }},
		{"launch below min", func(c *Config) { c.Ball.LaunchSpeed = 10 }},
		{"launch above max", func(c *Config) { c.Ball.LaunchSpeed = 5000 }},
		{"zero hold window", func(c *Config) { c.Input.HoldWindow = 0 }},
		{"grace below hold", func(c *Config) { c.Input.RepeatGrace = c.Input.HoldWindow / 2 }},
	}
	for _, tt := range tests {
		cfg := Defaults()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadShippedConfig(t *testing.T) {
	if _, err := Load("../../config/pong.toml"); err != nil {
		t.Fatalf("shipped config: %v", err)
	}
}
