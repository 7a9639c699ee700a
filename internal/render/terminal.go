package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/vmath"
	"github.com/l1jgo/pong/internal/world"
)

const (
	runeWall   = '─'
	runeGoal   = '┊'
	runePaddle = '█'
	runeBall   = '●'
	runeNet    = '╎'
)

// Terminal draws world snapshots onto a tcell screen. Row 0 holds the
// scoreboard; the field is scaled into the remaining rows.
type Terminal struct {
	screen  tcell.Screen
	palette map[component.Player]component.Color
	display [2]string
}

func NewTerminal(screen tcell.Screen, palette map[component.Player]component.Color) *Terminal {
	t := &Terminal{screen: screen, palette: palette}
	for _, p := range component.Players {
		t.display[p] = "0"
	}
	return t
}

// ScoreChanged refreshes one player's displayed count. Register it with
// world.Score.Watch.
func (t *Terminal) ScoreChanged(p component.Player, points int) {
	t.display[p] = fmt.Sprintf("%d", points)
}

// Scoreboard returns the text shown on row 0.
func (t *Terminal) Scoreboard() string {
	return fmt.Sprintf(" %s | %s ", t.display[component.Player1], t.display[component.Player2])
}

func (t *Terminal) Draw(snap world.Snapshot) {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	if cols < 4 || rows < 4 {
		t.screen.Show()
		return
	}
	v := viewport{field: snap.Field, cols: cols, rows: rows - 1, top: 1}

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := v.top; y < v.top+v.rows; y += 2 {
		t.screen.SetContent(cols/2, y, runeNet, nil, dim)
	}

	for _, b := range snap.Borders {
		r := runeWall
		style := tcell.StyleDefault
		if b.Border.IsGoal() {
			r = runeGoal
			style = style.Foreground(t.color(b.Border.Owner))
		}
		v.fill(t.screen, b.Box, r, style)
	}

	for _, p := range snap.Paddles {
		v.fill(t.screen, p.Box, runePaddle, tcell.StyleDefault.Foreground(t.color(p.Paddle.Owner)))
	}

	bx, by := v.cell(snap.Ball.Position)
	t.screen.SetContent(bx, by, runeBall, nil, tcell.StyleDefault.Foreground(rgb(snap.Ball.Ball.Tint)))

	board := t.Scoreboard()
	start := (cols - len([]rune(board))) / 2
	for i, r := range []rune(board) {
		t.screen.SetContent(start+i, 0, r, nil, tcell.StyleDefault.Bold(true))
	}
	t.screen.Show()
}

func (t *Terminal) color(p component.Player) tcell.Color {
	if c, ok := t.palette[p]; ok {
		return rgb(c)
	}
	return rgb(p.Color())
}

func rgb(c component.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// viewport maps field units to screen cells.
type viewport struct {
	field world.Field
	cols  int
	rows  int
	top   int
}

func (v viewport) cell(p vmath.Vec2) (int, int) {
	x := (p.X - v.field.MinX) / v.field.Width() * float64(v.cols)
	y := (p.Y - v.field.MinY) / v.field.Height() * float64(v.rows)
	cx := clampInt(int(math.Floor(x)), 0, v.cols-1)
	cy := clampInt(int(math.Floor(y)), 0, v.rows-1)
	return cx, cy + v.top
}

func (v viewport) fill(s tcell.Screen, box vmath.AABB, r rune, style tcell.Style) {
	x0, y0 := v.cell(box.Min())
	x1, y1 := v.cell(box.Max())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetContent(x, y, r, nil, style)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
