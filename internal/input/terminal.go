package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminal adapts tcell key events to a Device. Terminals report no key
// release, so a key stays held until holdWindow passes without another
// event for it (auto-repeat keeps refreshing it).
//
// Auto-repeat only starts after the terminal's repeat delay, which can be
// longer than holdWindow. A key that comes back within repeatGrace of its
// last event is treated as the same hold: it is held again without a new
// press edge.
type Terminal struct {
	kb          *Keyboard
	holdWindow  time.Duration
	repeatGrace time.Duration
	lastSeen    map[Key]time.Time
}

func NewTerminal(holdWindow, repeatGrace time.Duration) *Terminal {
	return &Terminal{
		kb:          NewKeyboard(),
		holdWindow:  holdWindow,
		repeatGrace: repeatGrace,
		lastSeen:    make(map[Key]time.Time, 8),
	}
}

// HandleEvent records a key event and returns the normalized key, or
// KeyNone for keys outside the key table.
func (t *Terminal) HandleEvent(ev *tcell.EventKey) Key {
	k := KeyFromEvent(ev)
	t.HandleKey(k, ev.When())
	return k
}

// HandleKey records one press or auto-repeat of k seen at when.
func (t *Terminal) HandleKey(k Key, when time.Time) {
	if k == KeyNone {
		return
	}
	prev, seen := t.lastSeen[k]
	t.lastSeen[k] = when
	if !t.kb.Held(k) && seen && when.Sub(prev) <= t.repeatGrace {
		t.kb.Hold(k)
		return
	}
	t.kb.Press(k)
}

// Expire releases keys that have not repeated within the hold window.
// Their last event time is kept for the repeat grace.
func (t *Terminal) Expire(now time.Time) {
	for k, seen := range t.lastSeen {
		if t.kb.Held(k) && now.Sub(seen) > t.holdWindow {
			t.kb.Release(k)
		}
	}
}

func (t *Terminal) Held(k Key) bool        { return t.kb.Held(k) }
func (t *Terminal) JustPressed(k Key) bool { return t.kb.JustPressed(k) }
func (t *Terminal) EndFrame()              { t.kb.EndFrame() }

// KeyFromEvent maps a tcell key event onto the key table.
func KeyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEscape:
		return KeyEsc
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyRune:
		k, err := ParseKey(string(ev.Rune()))
		if err != nil {
			return KeyNone
		}
		return k
	}
	return KeyNone
}
