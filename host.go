package window

import "image"

// HostConfig describes the window and context to create.
type HostConfig struct {
	Title         string
	Width, Height int
	// Samples is the multisample count; 0 disables multisampling.
	Samples int

	ContextMajor, ContextMinor int
	// CoreProfile requests a forward-compatible core context; otherwise a
	// compatibility context is requested.
	CoreProfile bool
	// Hidden creates the window invisible, for off-screen rendering.
	Hidden bool
}

// Host is the native windowing system: one window with a graphics context,
// its event source, and window-level services.
//
// Implementations translate native callbacks into Events and hand them out
// through PollEvents. All methods run on the thread that owns the window.
type Host interface {
	// Create initializes the windowing subsystem, opens the window and makes
	// its context current.
	Create(cfg HostConfig) error
	// Terminate destroys the window and shuts the windowing subsystem down.
	// It must be safe to call when Create never succeeded.
	Terminate()
	// Version describes the windowing library.
	Version() string

	// PollEvents processes pending native events and returns them in
	// arrival order.
	PollEvents() []Event
	SwapBuffers()
	// SetSwapInterval sets the number of vblanks per swap: 1 vsync, 0 immediate.
	SetSwapInterval(interval int)

	ShouldClose() bool
	SetShouldClose(bool)

	Maximized() bool
	Focused() bool
	Iconified() bool
	Pos() (x, y int)
	// Size returns the window size in screen coordinates.
	Size() (width, height int)
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
	ContentScale() float32
	// SetFullscreen switches the window to the primary monitor's current
	// mode, or back to windowed mode at the given position and size.
	SetFullscreen(fullscreen bool, x, y, width, height int)

	SetCursorPos(x, y float64)
	// SetCursorLocked hides and captures the pointer for relative movement.
	SetCursorLocked(locked bool)

	Clipboard() ClipboardProvider
	SetIcon(images []image.Image) error

	// Time returns a monotonic time in seconds.
	Time() (float64, error)
}

// Graphics is the slice of the graphics API the runtime drives.
type Graphics interface {
	ScissorTarget

	// Init loads the API for the current context.
	Init() error
	Viewport(x, y, width, height int32)
	SetClearColor(r, g, b, a float32)
	Clear(color, depth bool)
	// EnableAlphaBlending sets src-alpha / one-minus-src-alpha blending.
	EnableAlphaBlending()
	MaxTextureSize() int32
	// ReadPixels reads the front framebuffer as tightly packed RGB888 rows,
	// bottom row first.
	ReadPixels(width, height int32) []byte
	// Info returns the driver vendor and renderer strings.
	Info() (vendor, renderer string)
}
