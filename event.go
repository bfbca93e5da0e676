package window

import "fmt"

// EventKind identifies the type of a host event.
type EventKind int

const (
	EventResize EventKind = iota
	EventFramebufferSize
	EventKey
	EventMouseButton
	EventCursorPos
	EventScroll
	EventChar
	EventFocus
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventFramebufferSize:
		return "framebuffer-size"
	case EventKey:
		return "key"
	case EventMouseButton:
		return "mouse-button"
	case EventCursorPos:
		return "cursor-pos"
	case EventScroll:
		return "scroll"
	case EventChar:
		return "char"
	case EventFocus:
		return "focus"
	case EventClose:
		return "close"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a raw input or window event produced by the host.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// EventResize (screen coordinates), EventFramebufferSize (pixels)
	Width, Height int

	// EventKey, EventMouseButton
	Key     Keycode
	Button  Mousecode
	Pressed bool

	// EventCursorPos (position), EventScroll (offsets)
	X, Y float64

	// EventChar
	Char rune

	// EventFocus
	Focused bool
}

// ResizeEvent returns a resize event for a new window size in screen
// coordinates.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// FramebufferSizeEvent returns a resize event for a new framebuffer size in
// pixels. It differs from the window size on HiDPI displays.
func FramebufferSizeEvent(width, height int) Event {
	return Event{Kind: EventFramebufferSize, Width: width, Height: height}
}

// KeyEvent returns a key press or release event.
func KeyEvent(key Keycode, pressed bool) Event {
	return Event{Kind: EventKey, Key: key, Pressed: pressed}
}

// MouseButtonEvent returns a mouse button press or release event.
func MouseButtonEvent(button Mousecode, pressed bool) Event {
	return Event{Kind: EventMouseButton, Button: button, Pressed: pressed}
}

// CursorPosEvent returns a cursor movement event.
func CursorPosEvent(x, y float64) Event {
	return Event{Kind: EventCursorPos, X: x, Y: y}
}
