package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/l1jgo/pong/internal/input"
)

var (
	// ErrDuplicateBinding is returned when one key drives two controls.
	ErrDuplicateBinding = errors.New("key bound to more than one control")
	// ErrUnknownKey is returned for key names outside the key table.
	ErrUnknownKey = input.ErrUnknownKey
	// ErrInvalid wraps every other validation failure.
	ErrInvalid = errors.New("invalid config")
)

type Config struct {
	Game     GameConfig     `toml:"game"`
	Physics  PhysicsConfig  `toml:"physics"`
	Ball     BallConfig     `toml:"ball"`
	Paddle   PaddleConfig   `toml:"paddle"`
	Controls ControlsConfig `toml:"controls"`
	Input    InputConfig    `toml:"input"`
	Logging  LoggingConfig  `toml:"logging"`
}

type GameConfig struct {
	FrameRate time.Duration `toml:"frame_rate"` // wall-clock time between frames
	Court     string        `toml:"court"`      // court layout YAML
}

type PhysicsConfig struct {
	Step        time.Duration `toml:"step"`         // fixed sub-step
	MaxSubsteps int           `toml:"max_substeps"` // cap per frame, excess time is dropped
	MinSpeed    float64       `toml:"min_speed"`    // ball speed floor (units/s)
	MaxSpeed    float64       `toml:"max_speed"`    // ball speed ceiling (units/s)
}

type BallConfig struct {
	LaunchSpeed float64 `toml:"launch_speed"` // speed after every reset
}

type PaddleConfig struct {
	Speed float64 `toml:"speed"` // units/s
}

type ControlsConfig struct {
	Player1Up   string `toml:"player1_up"`
	Player1Down string `toml:"player1_down"`
	Player2Up   string `toml:"player2_up"`
	Player2Down string `toml:"player2_down"`
	Reset       string `toml:"reset"`
	Quit        string `toml:"quit"`
}

type InputConfig struct {
	HoldWindow  time.Duration `toml:"hold_window"`  // key stays held this long after its last repeat
	RepeatGrace time.Duration `toml:"repeat_grace"` // re-arrival within this is a repeat, not a new press
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

// Bindings is the parsed form of ControlsConfig.
type Bindings struct {
	Player1Up   input.Key
	Player1Down input.Key
	Player2Up   input.Key
	Player2Down input.Key
	Reset       input.Key
	Quit        input.Key
}

// Load reads a TOML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			FrameRate: 16 * time.Millisecond,
			Court:     "data/yaml/court.yaml",
		},
		Physics: PhysicsConfig{
			Step:        time.Second / 120,
			MaxSubsteps: 8,
			MinSpeed:    60,
			MaxSpeed:    1400,
		},
		Ball: BallConfig{
			LaunchSpeed: 100,
		},
		Paddle: PaddleConfig{
			Speed: 400,
		},
		Controls: ControlsConfig{
			Player1Up:   "w",
			Player1Down: "s",
			Player2Up:   "up",
			Player2Down: "down",
			Reset:       "space",
			Quit:        "esc",
		},
		Input: InputConfig{
			HoldWindow:  180 * time.Millisecond,
			RepeatGrace: 700 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "pong.log",
		},
	}
}

// Validate checks everything that would otherwise fail mid-match.
func (c *Config) Validate() error {
	if c.Game.FrameRate <= 0 {
		return fmt.Errorf("%w: game.frame_rate must be positive", ErrInvalid)
	}
	if c.Physics.Step <= 0 {
		return fmt.Errorf("%w: physics.step must be positive", ErrInvalid)
	}
	if c.Physics.MaxSubsteps < 1 {
		return fmt.Errorf("%w: physics.max_substeps must be at least 1", ErrInvalid)
	}
	if c.Paddle.Speed <= 0 {
		return fmt.Errorf("%w: paddle.speed must be positive", ErrInvalid)
	}
	if c.Physics.MinSpeed <= 0 || c.Physics.MinSpeed > c.Ball.LaunchSpeed || c.Ball.LaunchSpeed > c.Physics.MaxSpeed {
		return fmt.Errorf("%w: need 0 < physics.min_speed <= ball.launch_speed <= physics.max_speed", ErrInvalid)
	}
	if c.Input.HoldWindow <= 0 {
		return fmt.Errorf("%w: input.hold_window must be positive", ErrInvalid)
	}
	if c.Input.RepeatGrace < c.Input.HoldWindow {
		return fmt.Errorf("%w: input.repeat_grace must not be shorter than input.hold_window", ErrInvalid)
	}
	_, err := c.Controls.Bindings()
	return err
}

type binding struct {
	name string
	raw  string
	dst  *input.Key
}

// Bindings parses every control and rejects keys used twice.
func (c ControlsConfig) Bindings() (Bindings, error) {
	var b Bindings
	controls := []binding{
		{"player1_up", c.Player1Up, &b.Player1Up},
		{"player1_down", c.Player1Down, &b.Player1Down},
		{"player2_up", c.Player2Up, &b.Player2Up},
		{"player2_down", c.Player2Down, &b.Player2Down},
		{"reset", c.Reset, &b.Reset},
		{"quit", c.Quit, &b.Quit},
	}

	owner := make(map[input.Key]string, len(controls))
	for _, ctl := range controls {
		k, err := input.ParseKey(ctl.raw)
		if err != nil {
			return Bindings{}, fmt.Errorf("controls.%s: %w", ctl.name, err)
		}
		if prev, ok := owner[k]; ok {
			return Bindings{}, fmt.Errorf("%w: %q used by controls.%s and controls.%s", ErrDuplicateBinding, k, prev, ctl.name)
		}
		owner[k] = ctl.name
		*ctl.dst = k
	}
	return b, nil
}
