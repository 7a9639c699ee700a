package data

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/pong/internal/component"
)

// ErrInvalidCourt is wrapped by every court validation failure.
var ErrInvalidCourt = errors.New("invalid court")

// Court is the static layout the world is built from.
type Court struct {
	Width             float64
	Height            float64
	WallThickness     float64
	GoalThickness     float64
	PaddleWidth       float64
	PaddleHeight      float64
	PaddleOffset      float64 // paddle center distance from its side edge
	BallRadius        float64
	BallRestitution   float64
	WallRestitution   float64
	PaddleRestitution float64
	Colors            map[component.Player]component.Color
}

type courtSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type courtBorders struct {
	WallThickness   float64 `yaml:"wall_thickness"`
	GoalThickness   float64 `yaml:"goal_thickness"`
	WallRestitution float64 `yaml:"wall_restitution"`
}

type courtPaddle struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Offset      float64 `yaml:"offset"`
	Restitution float64 `yaml:"restitution"`
}

type courtBall struct {
	Radius      float64 `yaml:"radius"`
	Restitution float64 `yaml:"restitution"`
}

type courtPlayer struct {
	Color string `yaml:"color"`
}

type courtFile struct {
	Field   courtSize              `yaml:"field"`
	Borders courtBorders           `yaml:"borders"`
	Paddle  courtPaddle            `yaml:"paddle"`
	Ball    courtBall              `yaml:"ball"`
	Players map[string]courtPlayer `yaml:"players"`
}

// DefaultCourt is the 1280x720 layout used when no file is given.
func DefaultCourt() *Court {
	return &Court{
		Width:             1280,
		Height:            720,
		WallThickness:     6,
		GoalThickness:     6,
		PaddleWidth:       10,
		PaddleHeight:      150,
		PaddleOffset:      20,
		BallRadius:        25,
		BallRestitution:   1.2,
		WallRestitution:   0,
		PaddleRestitution: 0,
		Colors: map[component.Player]component.Color{
			component.Player1: component.Player1.Color(),
			component.Player2: component.Player2.Color(),
		},
	}
}

// LoadCourt loads a court layout from a YAML file. Missing values keep the
// defaults.
func LoadCourt(path string) (*Court, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read court: %w", err)
	}
	c, err := ParseCourt(raw)
	if err != nil {
		return nil, fmt.Errorf("court %s: %w", path, err)
	}
	return c, nil
}

// ParseCourt decodes and validates a court document.
func ParseCourt(raw []byte) (*Court, error) {
	c := DefaultCourt()
	f := courtFile{
		Field:   courtSize{Width: c.Width, Height: c.Height},
		Borders: courtBorders{WallThickness: c.WallThickness, GoalThickness: c.GoalThickness, WallRestitution: c.WallRestitution},
		Paddle:  courtPaddle{Width: c.PaddleWidth, Height: c.PaddleHeight, Offset: c.PaddleOffset, Restitution: c.PaddleRestitution},
		Ball:    courtBall{Radius: c.BallRadius, Restitution: c.BallRestitution},
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse court: %w", err)
	}

	c.Width, c.Height = f.Field.Width, f.Field.Height
	c.WallThickness = f.Borders.WallThickness
	c.GoalThickness = f.Borders.GoalThickness
	c.WallRestitution = f.Borders.WallRestitution
	c.PaddleWidth, c.PaddleHeight = f.Paddle.Width, f.Paddle.Height
	c.PaddleOffset = f.Paddle.Offset
	c.PaddleRestitution = f.Paddle.Restitution
	c.BallRadius = f.Ball.Radius
	c.BallRestitution = f.Ball.Restitution

	for name, p := range f.Players {
		player, err := parsePlayer(name)
		if err != nil {
			return nil, err
		}
		if p.Color == "" {
			continue
		}
		col, err := component.ParseColor(p.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: players.%s: %v", ErrInvalidCourt, name, err)
		}
		c.Colors[player] = col
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func parsePlayer(name string) (component.Player, error) {
	for _, p := range component.Players {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown player %q", ErrInvalidCourt, name)
}

// Validate checks that the layout leaves room to play.
func (c *Court) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: field size must be positive", ErrInvalidCourt)
	case c.WallThickness <= 0 || c.GoalThickness <= 0:
		return fmt.Errorf("%w: border thickness must be positive", ErrInvalidCourt)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidCourt)
	case c.PaddleHeight > c.Height:
		return fmt.Errorf("%w: paddle taller than the field", ErrInvalidCourt)
	case c.PaddleOffset-c.PaddleWidth/2 < 0 || c.PaddleOffset*2 >= c.Width:
		return fmt.Errorf("%w: paddle offset outside the field", ErrInvalidCourt)
	case c.BallRadius <= 0 || c.BallRadius*2 >= c.Height:
		return fmt.Errorf("%w: ball radius must fit the field", ErrInvalidCourt)
	case c.BallRestitution < 0 || c.WallRestitution < 0 || c.PaddleRestitution < 0:
		return fmt.Errorf("%w: restitution must not be negative", ErrInvalidCourt)
	}
	return nil
}

// Center is the middle of the field.
func (c *Court) Center() (x, y float64) {
	return c.Width / 2, c.Height / 2
}
