package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/window"
)

// GLFWHost implements window.Host with GLFW.
// Native callbacks are queued as window.Events and drained by PollEvents.
type GLFWHost struct {
	window      *glfw.Window
	initialized bool
	events      []window.Event
}

// NewGLFWHost creates a host. No window exists until Create.
func NewGLFWHost() *GLFWHost {
	return &GLFWHost{events: make([]window.Event, 0, 32)}
}

// Window returns the underlying GLFW window, or nil before Create.
func (h *GLFWHost) Window() *glfw.Window {
	return h.window
}

// Create implements window.Host. A window left from a previous Create is
// destroyed first.
func (h *GLFWHost) Create(cfg window.HostConfig) error {
	if h.window != nil {
		h.window.Destroy()
		h.window = nil
	}
	h.events = h.events[:0]

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	h.initialized = true

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	h.window = win
	win.MakeContextCurrent()
	h.installCallbacks()

	return nil
}

// Terminate implements window.Host.
func (h *GLFWHost) Terminate() {
	if h.window != nil {
		h.window.Destroy()
		h.window = nil
	}
	if h.initialized {
		glfw.Terminate()
		h.initialized = false
	}
}

// Version implements window.Host.
func (h *GLFWHost) Version() string {
	return "GLFW " + glfw.GetVersionString()
}

func (h *GLFWHost) installCallbacks() {
	h.window.SetSizeCallback(h.sizeCallback)
	h.window.SetFramebufferSizeCallback(h.framebufferSizeCallback)
	h.window.SetKeyCallback(h.keyCallback)
	h.window.SetCharCallback(h.charCallback)
	h.window.SetMouseButtonCallback(h.mouseButtonCallback)
	h.window.SetScrollCallback(h.scrollCallback)
	h.window.SetCursorPosCallback(h.cursorPosCallback)
	h.window.SetFocusCallback(h.focusCallback)
	h.window.SetCloseCallback(h.closeCallback)
}

// PollEvents implements window.Host. The returned slice is reused by the
// next call.
func (h *GLFWHost) PollEvents() []window.Event {
	h.events = h.events[:0]
	if h.initialized {
		glfw.PollEvents()
	}
	return h.events
}

// SwapBuffers implements window.Host.
func (h *GLFWHost) SwapBuffers() {
	if h.window != nil {
		h.window.SwapBuffers()
	}
}

// SetSwapInterval implements window.Host.
func (h *GLFWHost) SetSwapInterval(interval int) {
	if h.window != nil {
		glfw.SwapInterval(interval)
	}
}

// ShouldClose implements window.Host.
func (h *GLFWHost) ShouldClose() bool {
	return h.window == nil || h.window.ShouldClose()
}

// SetShouldClose implements window.Host.
func (h *GLFWHost) SetShouldClose(close bool) {
	if h.window != nil {
		h.window.SetShouldClose(close)
	}
}

// Maximized implements window.Host.
func (h *GLFWHost) Maximized() bool {
	return h.attrib(glfw.Maximized)
}

// Focused implements window.Host.
func (h *GLFWHost) Focused() bool {
	return h.attrib(glfw.Focused)
}

// Iconified implements window.Host.
func (h *GLFWHost) Iconified() bool {
	return h.attrib(glfw.Iconified)
}

func (h *GLFWHost) attrib(hint glfw.Hint) bool {
	return h.window != nil && h.window.GetAttrib(hint) == glfw.True
}

// Pos implements window.Host.
func (h *GLFWHost) Pos() (x, y int) {
	if h.window == nil {
		return 0, 0
	}
	return h.window.GetPos()
}

// Size implements window.Host.
func (h *GLFWHost) Size() (width, height int) {
	if h.window == nil {
		return 0, 0
	}
	return h.window.GetSize()
}

// FramebufferSize implements window.Host.
func (h *GLFWHost) FramebufferSize() (width, height int) {
	if h.window == nil {
		return 0, 0
	}
	return h.window.GetFramebufferSize()
}

// ContentScale implements window.Host.
func (h *GLFWHost) ContentScale() float32 {
	if h.window == nil {
		return 1
	}
	sx, _ := h.window.GetContentScale()
	return sx
}

// SetFullscreen implements window.Host.
func (h *GLFWHost) SetFullscreen(fullscreen bool, x, y, width, height int) {
	if h.window == nil {
		return
	}
	if fullscreen {
		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		h.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, glfw.DontCare)
		return
	}
	h.window.SetMonitor(nil, x, y, width, height, glfw.DontCare)
}

// SetCursorPos implements window.Host.
func (h *GLFWHost) SetCursorPos(x, y float64) {
	if h.window != nil {
		h.window.SetCursorPos(x, y)
	}
}

// SetCursorLocked implements window.Host.
func (h *GLFWHost) SetCursorLocked(locked bool) {
	if h.window == nil {
		return
	}
	if locked {
		h.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		h.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// Clipboard implements window.Host.
func (h *GLFWHost) Clipboard() window.ClipboardProvider {
	return &GLFWClipboard{window: h.window}
}

// SetIcon implements window.Host. GLFW reports failures by panicking;
// they are returned as errors.
func (h *GLFWHost) SetIcon(images []image.Image) (err error) {
	if h.window == nil {
		return fmt.Errorf("set icon: no window")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("set icon: %v", rec)
		}
	}()
	h.window.SetIcon(images)
	return nil
}

// Time implements window.Host.
func (h *GLFWHost) Time() (t float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("glfw time: %v", rec)
		}
	}()
	return glfw.GetTime(), nil
}

func (h *GLFWHost) push(ev window.Event) {
	h.events = append(h.events, ev)
}

func (h *GLFWHost) sizeCallback(w *glfw.Window, width, height int) {
	h.push(window.ResizeEvent(width, height))
}

func (h *GLFWHost) framebufferSizeCallback(w *glfw.Window, width, height int) {
	h.push(window.FramebufferSizeEvent(width, height))
}

func (h *GLFWHost) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	code, ok := glfwKeys[key]
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		h.push(window.KeyEvent(code, true))
	case glfw.Release:
		h.push(window.KeyEvent(code, false))
	}
}

func (h *GLFWHost) charCallback(w *glfw.Window, char rune) {
	h.push(window.Event{Kind: window.EventChar, Char: char})
}

func (h *GLFWHost) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	code := glfwMouseButton(button)
	if code == window.MouseUnknown {
		return
	}

	switch action {
	case glfw.Press:
		h.push(window.MouseButtonEvent(code, true))
	case glfw.Release:
		h.push(window.MouseButtonEvent(code, false))
	}
}

func (h *GLFWHost) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	h.push(window.Event{Kind: window.EventScroll, X: xoff, Y: yoff})
}

func (h *GLFWHost) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	h.push(window.CursorPosEvent(xpos, ypos))
}

func (h *GLFWHost) focusCallback(w *glfw.Window, focused bool) {
	h.push(window.Event{Kind: window.EventFocus, Focused: focused})
}

func (h *GLFWHost) closeCallback(w *glfw.Window) {
	h.push(window.Event{Kind: window.EventClose})
}

// GLFWClipboard implements window.ClipboardProvider with the GLFW window
// clipboard.
type GLFWClipboard struct {
	window *glfw.Window
}

// GetText implements window.ClipboardProvider.
func (c *GLFWClipboard) GetText() string {
	if c.window == nil {
		return ""
	}
	return c.window.GetClipboardString()
}

// SetText implements window.ClipboardProvider.
func (c *GLFWClipboard) SetText(text string) {
	if c.window != nil {
		c.window.SetClipboardString(text)
	}
}

// glfwMouseButton maps GLFW mouse buttons to window mouse codes.
func glfwMouseButton(button glfw.MouseButton) window.Mousecode {
	switch button {
	case glfw.MouseButtonLeft:
		return window.MouseLeft
	case glfw.MouseButtonRight:
		return window.MouseRight
	case glfw.MouseButtonMiddle:
		return window.MouseMiddle
	default:
		return window.MouseUnknown
	}
}

// glfwKeys maps GLFW keys to window keycodes. Keypad digits share the
// digit codes of the main row.
var glfwKeys = map[glfw.Key]window.Keycode{
	glfw.KeySpace:        window.KeySpace,
	glfw.KeyApostrophe:   window.KeyApostrophe,
	glfw.KeyComma:        window.KeyComma,
	glfw.KeyMinus:        window.KeyMinus,
	glfw.KeyPeriod:       window.KeyPeriod,
	glfw.KeySlash:        window.KeySlash,
	glfw.Key0:            window.Key0,
	glfw.Key1:            window.Key1,
	glfw.Key2:            window.Key2,
	glfw.Key3:            window.Key3,
	glfw.Key4:            window.Key4,
	glfw.Key5:            window.Key5,
	glfw.Key6:            window.Key6,
	glfw.Key7:            window.Key7,
	glfw.Key8:            window.Key8,
	glfw.Key9:            window.Key9,
	glfw.KeyKP0:          window.Key0,
	glfw.KeyKP1:          window.Key1,
	glfw.KeyKP2:          window.Key2,
	glfw.KeyKP3:          window.Key3,
	glfw.KeyKP4:          window.Key4,
	glfw.KeyKP5:          window.Key5,
	glfw.KeyKP6:          window.Key6,
	glfw.KeyKP7:          window.Key7,
	glfw.KeyKP8:          window.Key8,
	glfw.KeyKP9:          window.Key9,
	glfw.KeySemicolon:    window.KeySemicolon,
	glfw.KeyEqual:        window.KeyEqual,
	glfw.KeyA:            window.KeyA,
	glfw.KeyB:            window.KeyB,
	glfw.KeyC:            window.KeyC,
	glfw.KeyD:            window.KeyD,
	glfw.KeyE:            window.KeyE,
	glfw.KeyF:            window.KeyF,
	glfw.KeyG:            window.KeyG,
	glfw.KeyH:            window.KeyH,
	glfw.KeyI:            window.KeyI,
	glfw.KeyJ:            window.KeyJ,
	glfw.KeyK:            window.KeyK,
	glfw.KeyL:            window.KeyL,
	glfw.KeyM:            window.KeyM,
	glfw.KeyN:            window.KeyN,
	glfw.KeyO:            window.KeyO,
	glfw.KeyP:            window.KeyP,
	glfw.KeyQ:            window.KeyQ,
	glfw.KeyR:            window.KeyR,
	glfw.KeyS:            window.KeyS,
	glfw.KeyT:            window.KeyT,
	glfw.KeyU:            window.KeyU,
	glfw.KeyV:            window.KeyV,
	glfw.KeyW:            window.KeyW,
	glfw.KeyX:            window.KeyX,
	glfw.KeyY:            window.KeyY,
	glfw.KeyZ:            window.KeyZ,
	glfw.KeyLeftBracket:  window.KeyLeftBracket,
	glfw.KeyBackslash:    window.KeyBackslash,
	glfw.KeyRightBracket: window.KeyRightBracket,
	glfw.KeyGraveAccent:  window.KeyGraveAccent,
	glfw.KeyEscape:       window.KeyEscape,
	glfw.KeyEnter:        window.KeyEnter,
	glfw.KeyKPEnter:      window.KeyEnter,
	glfw.KeyTab:          window.KeyTab,
	glfw.KeyBackspace:    window.KeyBackspace,
	glfw.KeyInsert:       window.KeyInsert,
	glfw.KeyDelete:       window.KeyDelete,
	glfw.KeyLeft:         window.KeyLeft,
	glfw.KeyRight:        window.KeyRight,
	glfw.KeyDown:         window.KeyDown,
	glfw.KeyUp:           window.KeyUp,
	glfw.KeyPageUp:       window.KeyPageUp,
	glfw.KeyPageDown:     window.KeyPageDown,
	glfw.KeyHome:         window.KeyHome,
	glfw.KeyEnd:          window.KeyEnd,
	glfw.KeyCapsLock:     window.KeyCapsLock,
	glfw.KeyNumLock:      window.KeyNumLock,
	glfw.KeyPrintScreen:  window.KeyPrintScreen,
	glfw.KeyPause:        window.KeyPause,
	glfw.KeyF1:           window.KeyF1,
	glfw.KeyF2:           window.KeyF2,
	glfw.KeyF3:           window.KeyF3,
	glfw.KeyF4:           window.KeyF4,
	glfw.KeyF5:           window.KeyF5,
	glfw.KeyF6:           window.KeyF6,
	glfw.KeyF7:           window.KeyF7,
	glfw.KeyF8:           window.KeyF8,
	glfw.KeyF9:           window.KeyF9,
	glfw.KeyF10:          window.KeyF10,
	glfw.KeyF11:          window.KeyF11,
	glfw.KeyF12:          window.KeyF12,
	glfw.KeyLeftShift:    window.KeyLeftShift,
	glfw.KeyLeftControl:  window.KeyLeftControl,
	glfw.KeyLeftAlt:      window.KeyLeftAlt,
	glfw.KeyLeftSuper:    window.KeyLeftSuper,
	glfw.KeyRightShift:   window.KeyRightShift,
	glfw.KeyRightControl: window.KeyRightControl,
	glfw.KeyRightAlt:     window.KeyRightAlt,
	glfw.KeyRightSuper:   window.KeyRightSuper,
	glfw.KeyMenu:         window.KeyMenu,
}
