package window

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// InputType selects the device a binding listens to.
type InputType int

const (
	InputKeyboard InputType = iota
	InputMouse
)

func (t InputType) String() string {
	switch t {
	case InputKeyboard:
		return "key"
	case InputMouse:
		return "mouse"
	default:
		return fmt.Sprintf("InputType(%d)", int(t))
	}
}

// Binding is a named logical control mapped to one physical input.
//
// Its state changes only during Bindings.Update. Active reports whether the
// input is held; JustActive is true only for the step in which it went down.
type Binding struct {
	Type InputType
	Code int

	state       bool
	justChanged bool
	enabled     bool

	onActivated callbacks[func()]
}

// NewBinding creates an enabled binding.
func NewBinding(t InputType, code int) *Binding {
	return &Binding{Type: t, Code: code, enabled: true}
}

// KeyBinding creates an enabled keyboard binding.
func KeyBinding(key Keycode) *Binding {
	return NewBinding(InputKeyboard, int(key))
}

// MouseBinding creates an enabled mouse button binding.
func MouseBinding(button Mousecode) *Binding {
	return NewBinding(InputMouse, int(button))
}

// Active reports whether the bound input is held.
func (b *Binding) Active() bool {
	return b.state
}

// JustActive reports whether the bound input went down in the current step.
func (b *Binding) JustActive() bool {
	return b.state && b.justChanged
}

// JustChanged reports whether the state changed in the current step.
func (b *Binding) JustChanged() bool {
	return b.justChanged
}

// Enabled reports whether the binding reacts to input.
func (b *Binding) Enabled() bool {
	return b.enabled
}

// SetEnabled turns the binding on or off. While disabled the state is
// frozen, JustActive is false and callbacks do not fire; the mapping is kept.
func (b *Binding) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// Reset reassigns the physical input without touching state or callbacks.
func (b *Binding) Reset(t InputType, code int) {
	b.Type = t
	b.Code = code
}

// ResetKey rebinds to a keyboard key.
func (b *Binding) ResetKey(key Keycode) {
	b.Reset(InputKeyboard, int(key))
}

// ResetMouse rebinds to a mouse button.
func (b *Binding) ResetMouse(button Mousecode) {
	b.Reset(InputMouse, int(button))
}

// OnActivated registers fn to run each time the binding becomes active.
// Callbacks run synchronously in registration order.
func (b *Binding) OnActivated(fn func()) *Subscription {
	return b.onActivated.add(fn)
}

// Text returns the display label of the bound input.
func (b *Binding) Text() string {
	switch b.Type {
	case InputKeyboard:
		return Keycode(b.Code).String()
	case InputMouse:
		return Mousecode(b.Code).String()
	}
	return "<unknown input type>"
}

// InputName returns the configuration form of the bound input, e.g. "key:space".
func (b *Binding) InputName() string {
	switch b.Type {
	case InputKeyboard:
		return "key:" + Keycode(b.Code).Name()
	case InputMouse:
		return "mouse:" + Mousecode(b.Code).Name()
	}
	return "unknown"
}

// update runs one polling step.
func (b *Binding) update(in *Input) {
	b.justChanged = false
	if !b.enabled {
		return
	}

	state := in.state(b.Type, b.Code)
	if state == b.state {
		return
	}
	b.state = state
	b.justChanged = true
	if state {
		b.onActivated.each(func(fn func()) { fn() })
	}
}

// ParseInput parses a configuration form such as "key:f11" or "mouse:left".
// Unknown key or button names resolve to the unknown sentinel; only a
// malformed prefix is an error.
func ParseInput(input string) (InputType, int, error) {
	prefix, name, ok := strings.Cut(strings.TrimSpace(input), ":")
	if !ok {
		return 0, 0, fmt.Errorf("input %q: expected <device>:<name>", input)
	}
	switch prefix {
	case "key":
		return InputKeyboard, int(KeycodeFromName(name)), nil
	case "mouse":
		return InputMouse, int(MousecodeFromName(name)), nil
	default:
		return 0, 0, fmt.Errorf("input %q: unknown device %q", input, prefix)
	}
}

// Bindings is the registry of named bindings consulted by UI code.
type Bindings struct {
	bindings map[string]*Binding
	logger   *slog.Logger
}

// NewBindings creates an empty registry.
func NewBindings() *Bindings {
	return &Bindings{
		bindings: make(map[string]*Binding),
		logger:   windowLogger,
	}
}

// Bind registers a binding under name, replacing the mapping of an existing
// one while keeping its state and callbacks. It returns the binding.
func (bs *Bindings) Bind(name string, t InputType, code int) *Binding {
	if b, ok := bs.bindings[name]; ok {
		b.Reset(t, code)
		return b
	}
	b := NewBinding(t, code)
	bs.bindings[name] = b
	return b
}

// BindKey registers a keyboard binding.
func (bs *Bindings) BindKey(name string, key Keycode) *Binding {
	return bs.Bind(name, InputKeyboard, int(key))
}

// BindMouse registers a mouse button binding.
func (bs *Bindings) BindMouse(name string, button Mousecode) *Binding {
	return bs.Bind(name, InputMouse, int(button))
}

// Get returns the binding registered under name, or nil.
func (bs *Bindings) Get(name string) *Binding {
	return bs.bindings[name]
}

// Remove deletes a binding.
func (bs *Bindings) Remove(name string) {
	delete(bs.bindings, name)
}

// Names returns the registered names in sorted order.
func (bs *Bindings) Names() []string {
	return slices.Sorted(maps.Keys(bs.bindings))
}

// Len returns the number of bindings.
func (bs *Bindings) Len() int {
	return len(bs.bindings)
}

// Active reports whether the named binding is held. Unknown names are
// inactive.
func (bs *Bindings) Active(name string) bool {
	b := bs.bindings[name]
	return b != nil && b.Active()
}

// JustActive reports whether the named binding went down this step.
func (bs *Bindings) JustActive(name string) bool {
	b := bs.bindings[name]
	return b != nil && b.JustActive()
}

// Update runs one polling step over every binding. Bindings are visited in
// name order so callbacks of different bindings fire deterministically.
// Callbacks may add or remove bindings; a binding removed during the step
// is skipped.
func (bs *Bindings) Update(in *Input) {
	for _, name := range bs.Names() {
		if b := bs.bindings[name]; b != nil {
			b.update(in)
		}
	}
}

// Load merges bindings from a YAML file mapping names to inputs:
//
//	fullscreen: key:f11
//	ui.click: mouse:left
//
// A missing file is not an error.
func (bs *Bindings) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read bindings: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse bindings %s: %w", path, err)
	}
	for name, input := range raw {
		t, code, err := ParseInput(input)
		if err != nil {
			return fmt.Errorf("binding %q: %w", name, err)
		}
		if (t == InputKeyboard && code == int(KeyUnknown)) || (t == InputMouse && code == int(MouseUnknown)) {
			bs.logger.Warn("unknown input in bindings", "binding", name, "input", input)
		}
		bs.Bind(name, t, code)
	}
	return nil
}

// Save writes all bindings to path as YAML.
func (bs *Bindings) Save(path string) error {
	raw := make(map[string]string, len(bs.bindings))
	for name, b := range bs.bindings {
		raw[name] = b.InputName()
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode bindings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create bindings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write bindings: %w", err)
	}
	return nil
}
