package input

// Keyboard tracks held keys and press edges. Accessed only from the game
// loop goroutine, so it carries no lock.
type Keyboard struct {
	held    map[Key]bool
	pressed map[Key]bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		held:    make(map[Key]bool, 8),
		pressed: make(map[Key]bool, 4),
	}
}

// Press marks k as held. The press edge fires only if k was not already
// held, so auto-repeat does not re-trigger it.
func (k *Keyboard) Press(key Key) {
	if !k.held[key] {
		k.pressed[key] = true
	}
	k.held[key] = true
}

// Hold marks key as held without a press edge.
func (k *Keyboard) Hold(key Key) {
	k.held[key] = true
}

func (k *Keyboard) Release(key Key) {
	delete(k.held, key)
}

func (k *Keyboard) Held(key Key) bool        { return k.held[key] }
func (k *Keyboard) JustPressed(key Key) bool { return k.pressed[key] }

// EndFrame clears press edges. Held state survives.
func (k *Keyboard) EndFrame() {
	clear(k.pressed)
}
