package window

import "strings"

// Keycode identifies a physical keyboard key.
type Keycode int

const (
	KeyUnknown Keycode = iota
	KeySpace
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySemicolon
	KeyEqual
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyLeft
	KeyRight
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightSuper
	KeyMenu
	KeyCount
)

// Mousecode identifies a mouse button.
type Mousecode int

const (
	MouseUnknown Mousecode = -1
	MouseLeft    Mousecode = 0
	MouseRight   Mousecode = 1
	MouseMiddle  Mousecode = 2
	MouseCount   Mousecode = 3
)

type codeNames struct {
	name  string // config name, e.g. "left-shift"
	label string // display label, e.g. "Left Shift"
}

var keyNames = [KeyCount]codeNames{
	KeyUnknown:      {"unknown", "?"},
	KeySpace:        {"space", "Space"},
	KeyApostrophe:   {"apostrophe", "'"},
	KeyComma:        {"comma", ","},
	KeyMinus:        {"minus", "-"},
	KeyPeriod:       {"period", "."},
	KeySlash:        {"slash", "/"},
	Key0:            {"0", "0"},
	Key1:            {"1", "1"},
	Key2:            {"2", "2"},
	Key3:            {"3", "3"},
	Key4:            {"4", "4"},
	Key5:            {"5", "5"},
	Key6:            {"6", "6"},
	Key7:            {"7", "7"},
	Key8:            {"8", "8"},
	Key9:            {"9", "9"},
	KeySemicolon:    {"semicolon", ";"},
	KeyEqual:        {"equal", "="},
	KeyA:            {"a", "A"},
	KeyB:            {"b", "B"},
	KeyC:            {"c", "C"},
	KeyD:            {"d", "D"},
	KeyE:            {"e", "E"},
	KeyF:            {"f", "F"},
	KeyG:            {"g", "G"},
	KeyH:            {"h", "H"},
	KeyI:            {"i", "I"},
	KeyJ:            {"j", "J"},
	KeyK:            {"k", "K"},
	KeyL:            {"l", "L"},
	KeyM:            {"m", "M"},
	KeyN:            {"n", "N"},
	KeyO:            {"o", "O"},
	KeyP:            {"p", "P"},
	KeyQ:            {"q", "Q"},
	KeyR:            {"r", "R"},
	KeyS:            {"s", "S"},
	KeyT:            {"t", "T"},
	KeyU:            {"u", "U"},
	KeyV:            {"v", "V"},
	KeyW:            {"w", "W"},
	KeyX:            {"x", "X"},
	KeyY:            {"y", "Y"},
	KeyZ:            {"z", "Z"},
	KeyLeftBracket:  {"left-bracket", "["},
	KeyBackslash:    {"backslash", "\\"},
	KeyRightBracket: {"right-bracket", "]"},
	KeyGraveAccent:  {"grave-accent", "`"},
	KeyEscape:       {"escape", "Esc"},
	KeyEnter:        {"enter", "Enter"},
	KeyTab:          {"tab", "Tab"},
	KeyBackspace:    {"backspace", "Backspace"},
	KeyInsert:       {"insert", "Ins"},
	KeyDelete:       {"delete", "Del"},
	KeyLeft:         {"left", "Left"},
	KeyRight:        {"right", "Right"},
	KeyDown:         {"down", "Down"},
	KeyUp:           {"up", "Up"},
	KeyPageUp:       {"page-up", "PgUp"},
	KeyPageDown:     {"page-down", "PgDn"},
	KeyHome:         {"home", "Home"},
	KeyEnd:          {"end", "End"},
	KeyCapsLock:     {"caps-lock", "Caps Lock"},
	KeyNumLock:      {"num-lock", "Num Lock"},
	KeyPrintScreen:  {"print-screen", "Print Screen"},
	KeyPause:        {"pause", "Pause"},
	KeyF1:           {"f1", "F1"},
	KeyF2:           {"f2", "F2"},
	KeyF3:           {"f3", "F3"},
	KeyF4:           {"f4", "F4"},
	KeyF5:           {"f5", "F5"},
	KeyF6:           {"f6", "F6"},
	KeyF7:           {"f7", "F7"},
	KeyF8:           {"f8", "F8"},
	KeyF9:           {"f9", "F9"},
	KeyF10:          {"f10", "F10"},
	KeyF11:          {"f11", "F11"},
	KeyF12:          {"f12", "F12"},
	KeyLeftShift:    {"left-shift", "Left Shift"},
	KeyLeftControl:  {"left-ctrl", "Left Ctrl"},
	KeyLeftAlt:      {"left-alt", "Left Alt"},
	KeyLeftSuper:    {"left-super", "Left Super"},
	KeyRightShift:   {"right-shift", "Right Shift"},
	KeyRightControl: {"right-ctrl", "Right Ctrl"},
	KeyRightAlt:     {"right-alt", "Right Alt"},
	KeyRightSuper:   {"right-super", "Right Super"},
	KeyMenu:         {"menu", "Menu"},
}

var mouseNames = [MouseCount]codeNames{
	MouseLeft:   {"left", "LMB"},
	MouseRight:  {"right", "RMB"},
	MouseMiddle: {"middle", "MMB"},
}

// Reverse lookup tables, built once from the forward tables.
var (
	keysByName  = make(map[string]Keycode, KeyCount)
	mouseByName = make(map[string]Mousecode, MouseCount)
)

func init() {
	for k := KeyUnknown + 1; k < KeyCount; k++ {
		keysByName[keyNames[k].name] = k
	}
	for m := Mousecode(0); m < MouseCount; m++ {
		mouseByName[mouseNames[m].name] = m
	}
}

// Valid reports whether k is a known key.
func (k Keycode) Valid() bool {
	return k > KeyUnknown && k < KeyCount
}

// Name returns the configuration name of the key, e.g. "left-shift".
func (k Keycode) Name() string {
	if !k.Valid() {
		return keyNames[KeyUnknown].name
	}
	return keyNames[k].name
}

// String returns the human-readable label of the key, e.g. "Left Shift".
func (k Keycode) String() string {
	if !k.Valid() {
		return keyNames[KeyUnknown].label
	}
	return keyNames[k].label
}

// KeycodeFromName resolves a configuration name. Unknown names yield
// KeyUnknown. Matching is case-insensitive.
func KeycodeFromName(name string) Keycode {
	if k, ok := keysByName[strings.ToLower(name)]; ok {
		return k
	}
	return KeyUnknown
}

// Valid reports whether m is a known mouse button.
func (m Mousecode) Valid() bool {
	return m >= 0 && m < MouseCount
}

// Name returns the configuration name of the button, e.g. "left".
func (m Mousecode) Name() string {
	if !m.Valid() {
		return "unknown"
	}
	return mouseNames[m].name
}

// String returns the human-readable label of the button.
func (m Mousecode) String() string {
	if !m.Valid() {
		return "?"
	}
	return mouseNames[m].label
}

// MousecodeFromName resolves a configuration name. Unknown names yield
// MouseUnknown.
func MousecodeFromName(name string) Mousecode {
	if m, ok := mouseByName[strings.ToLower(name)]; ok {
		return m
	}
	return MouseUnknown
}
