package window

import (
	"image"
	"io"
	"log/slog"
)

// discardLogger keeps expected warnings out of test output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type scissorCall struct {
	x, y, w, h int32
}

// mockGraphics records the calls the runtime and clip stack make.
type mockGraphics struct {
	initErr error

	scissorOn  bool
	scissors   []scissorCall
	viewports  [][4]int32
	clearColor [4]float32
	clears     int
	blending   bool
	maxTexture int32
	pixels     []byte
}

func (m *mockGraphics) Init() error { return m.initErr }
func (m *mockGraphics) EnableScissor() {
	m.scissorOn = true
}
func (m *mockGraphics) DisableScissor() {
	m.scissorOn = false
}
func (m *mockGraphics) Scissor(x, y, w, h int32) {
	m.scissors = append(m.scissors, scissorCall{x, y, w, h})
}
func (m *mockGraphics) Viewport(x, y, w, h int32) {
	m.viewports = append(m.viewports, [4]int32{x, y, w, h})
}
func (m *mockGraphics) SetClearColor(r, g, b, a float32) {
	m.clearColor = [4]float32{r, g, b, a}
}
func (m *mockGraphics) Clear(color, depth bool) { m.clears++ }
func (m *mockGraphics) EnableAlphaBlending() { m.blending = true }
func (m *mockGraphics) MaxTextureSize() int32 { return m.maxTexture }
func (m *mockGraphics) ReadPixels(w, h int32) []byte {
	if m.pixels != nil {
		return m.pixels
	}
	return make([]byte, int(w)*int(h)*3)
}
func (m *mockGraphics) Info() (string, string) { return "mock", "mock renderer" }

func (m *mockGraphics) lastScissor() scissorCall {
	if len(m.scissors) == 0 {
		return scissorCall{-1, -1, -1, -1}
	}
	return m.scissors[len(m.scissors)-1]
}

// mockHost is an in-memory window. Fullscreen uses a 1920x1080 monitor.
type mockHost struct {
	createErr error
	cfg       HostConfig
	creates   int
	terms     int

	events      []Event
	swaps       int
	intervals   []int
	shouldClose bool

	maximized, focused, iconified bool

	x, y          int
	width, height int
	scale         int // framebuffer pixels per screen coordinate
	fullscreen    []bool

	cursorX, cursorY float64
	locked           bool

	clipboard string
	icons     [][]image.Image
	iconErr   error

	now     float64
	timeErr error
}

func newMockHost() *mockHost {
	return &mockHost{x: 100, y: 50, scale: 1}
}

func (m *mockHost) Create(cfg HostConfig) error {
	m.creates++
	if m.createErr != nil {
		return m.createErr
	}
	m.cfg = cfg
	m.width, m.height = cfg.Width, cfg.Height
	return nil
}
func (m *mockHost) Terminate() { m.terms++ }
func (m *mockHost) Version() string { return "mock" }
func (m *mockHost) PollEvents() []Event {
	events := m.events
	m.events = nil
	return events
}
func (m *mockHost) SwapBuffers() { m.swaps++ }
func (m *mockHost) SetSwapInterval(i int) { m.intervals = append(m.intervals, i) }
func (m *mockHost) ShouldClose() bool { return m.shouldClose }
func (m *mockHost) SetShouldClose(c bool) { m.shouldClose = c }
func (m *mockHost) Maximized() bool { return m.maximized }
func (m *mockHost) Focused() bool { return m.focused }
func (m *mockHost) Iconified() bool { return m.iconified }
func (m *mockHost) Pos() (int, int) { return m.x, m.y }
func (m *mockHost) Size() (int, int) { return m.width, m.height }
func (m *mockHost) FramebufferSize() (int, int) {
	return m.width * m.scale, m.height * m.scale
}
func (m *mockHost) ContentScale() float32 { return float32(m.scale) }
func (m *mockHost) SetCursorPos(x, y float64) { m.cursorX, m.cursorY = x, y }
func (m *mockHost) SetCursorLocked(l bool) { m.locked = l }
func (m *mockHost) SetFullscreen(on bool, x, y, w, h int) {
	m.fullscreen = append(m.fullscreen, on)
	if on {
		m.x, m.y = 0, 0
		m.width, m.height = 1920, 1080
		return
	}
	m.x, m.y = x, y
	m.width, m.height = w, h
}
func (m *mockHost) Clipboard() ClipboardProvider { return &mockClipboard{host: m} }
func (m *mockHost) SetIcon(images []image.Image) error {
	if m.iconErr != nil {
		return m.iconErr
	}
	m.icons = append(m.icons, images)
	return nil
}
func (m *mockHost) Time() (float64, error) { return m.now, m.timeErr }

type mockClipboard struct {
	host *mockHost
}

func (c *mockClipboard) GetText() string { return c.host.clipboard }
func (c *mockClipboard) SetText(text string) { c.host.clipboard = text }
