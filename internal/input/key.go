package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned by ParseKey for names outside the key table.
var ErrUnknownKey = errors.New("unknown key")

// Key is a normalized key name such as "w", "up" or "space".
type Key string

const (
	KeyNone  Key = ""
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeySpace Key = "space"
	KeyEnter Key = "enter"
	KeyEsc   Key = "esc"
	KeyTab   Key = "tab"
)

var named = map[Key]bool{
	KeyUp: true, KeyDown: true, KeyLeft: true, KeyRight: true,
	KeySpace: true, KeyEnter: true, KeyEsc: true, KeyTab: true,
}

// ParseKey normalizes a configured key name. Single letters and digits are
// accepted as-is (case folded), everything else must be a named key.
func ParseKey(name string) (Key, error) {
	if name == " " {
		return KeySpace, nil
	}
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			return Key(n), nil
		}
	}
	if named[Key(n)] {
		return Key(n), nil
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Device is the input collaborator consumed by the simulation.
type Device interface {
	// Held reports whether k is currently down.
	Held(k Key) bool
	// JustPressed reports whether k went down since the last EndFrame.
	JustPressed(k Key) bool
}

// Latch is implemented by devices whose edge state is cleared once a frame
// has consumed it.
type Latch interface {
	EndFrame()
}
