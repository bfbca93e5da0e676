package window

// Input holds keyboard and mouse state for the current polling step.
// It is populated from host events by the runtime; readers treat it as
// read-only.
type Input struct {
	// Keyboard
	keyDown      [KeyCount]bool
	keyPressedAt [KeyCount]uint64 // step in which the key went down

	// Mouse buttons
	mouseDown      [MouseCount]bool
	mousePressedAt [MouseCount]uint64

	// Cursor
	cursorX, cursorY float64
	deltaX, deltaY   float64
	cursorDrag       bool // a first position has been seen
	cursorLocked     bool

	// Per-step events
	scroll      float64
	codepoints  []rune
	pressedKeys []Keycode

	step uint64
}

// NewInput creates an empty input state.
func NewInput() *Input {
	return &Input{
		step:        1,
		codepoints:  make([]rune, 0, 16),
		pressedKeys: make([]Keycode, 0, 8),
	}
}

// beginStep starts a new polling step, clearing per-step data.
func (in *Input) beginStep() {
	in.step++
	in.deltaX, in.deltaY = 0, 0
	in.scroll = 0
	in.codepoints = in.codepoints[:0]
	in.pressedKeys = in.pressedKeys[:0]
}

// handle applies a host event. It reports whether the event was an input
// event.
func (in *Input) handle(ev Event) bool {
	switch ev.Kind {
	case EventKey:
		in.setKey(ev.Key, ev.Pressed)
	case EventMouseButton:
		in.setButton(ev.Button, ev.Pressed)
	case EventCursorPos:
		in.SetCursorPos(ev.X, ev.Y)
	case EventScroll:
		in.scroll += ev.Y
	case EventChar:
		in.codepoints = append(in.codepoints, ev.Char)
	default:
		return false
	}
	return true
}

func (in *Input) setKey(key Keycode, down bool) {
	if !key.Valid() {
		return
	}
	if down && !in.keyDown[key] {
		in.keyPressedAt[key] = in.step
		in.pressedKeys = append(in.pressedKeys, key)
	}
	in.keyDown[key] = down
}

func (in *Input) setButton(button Mousecode, down bool) {
	if !button.Valid() {
		return
	}
	if down && !in.mouseDown[button] {
		in.mousePressedAt[button] = in.step
	}
	in.mouseDown[button] = down
}

// SetCursorPos records a cursor position. Movement since the previous
// position accumulates into the step delta.
func (in *Input) SetCursorPos(x, y float64) {
	if in.cursorDrag {
		in.deltaX += x - in.cursorX
		in.deltaY += y - in.cursorY
	} else {
		in.cursorDrag = true
	}
	in.cursorX, in.cursorY = x, y
}

// Pressed reports whether key is held.
func (in *Input) Pressed(key Keycode) bool {
	return key.Valid() && in.keyDown[key]
}

// JustPressed reports whether key went down during the current step.
func (in *Input) JustPressed(key Keycode) bool {
	return in.Pressed(key) && in.keyPressedAt[key] == in.step
}

// Clicked reports whether button is held.
func (in *Input) Clicked(button Mousecode) bool {
	return button.Valid() && in.mouseDown[button]
}

// JustClicked reports whether button went down during the current step.
func (in *Input) JustClicked(button Mousecode) bool {
	return in.Clicked(button) && in.mousePressedAt[button] == in.step
}

// CursorPos returns the last known cursor position.
func (in *Input) CursorPos() (x, y float64) {
	return in.cursorX, in.cursorY
}

// CursorDelta returns the cursor movement during the current step.
func (in *Input) CursorDelta() (dx, dy float64) {
	return in.deltaX, in.deltaY
}

// Scroll returns the vertical scroll accumulated during the current step.
func (in *Input) Scroll() float64 {
	return in.scroll
}

// Codepoints returns the characters typed during the current step.
func (in *Input) Codepoints() []rune {
	return in.codepoints
}

// PressedKeys returns the keys that went down during the current step, in
// event order.
func (in *Input) PressedKeys() []Keycode {
	return in.pressedKeys
}

// CursorLocked reports whether relative mouse mode is on.
func (in *Input) CursorLocked() bool {
	return in.cursorLocked
}

// state reports the held state of a binding's physical input.
func (in *Input) state(t InputType, code int) bool {
	switch t {
	case InputKeyboard:
		return in.Pressed(Keycode(code))
	case InputMouse:
		return in.Clicked(Mousecode(code))
	}
	return false
}
