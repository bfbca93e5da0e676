package window

import (
	"errors"
	"fmt"
	"log/slog"
	goruntime "runtime"
	"time"
)

// ErrWindowCreation is returned by Initialize when the window or its
// graphics context cannot be created. Startup must abort.
var ErrWindowCreation = errors.New("window: failed to create window")

// DefaultMaxTextureSize is used when the driver reports no limit.
const DefaultMaxTextureSize int32 = 1024

// Runtime owns the single native window of the process and keeps it
// consistent with DisplaySettings, the clip stack, and input bindings.
//
// A Runtime is not safe for concurrent use; every method must run on the
// thread that owns the window.
type Runtime struct {
	host Host
	gfx  Graphics

	settings      *DisplaySettings
	fullscreenSub *Subscription

	input    *Input
	bindings *Bindings
	scissor  *ScissorStack
	pacer    framePacer

	// Window size in screen coordinates; persisted to settings.
	width, height     uint
	// Drawable size in pixels; drives viewport, clip stack and screenshots.
	fbWidth, fbHeight uint
	posX, posY        int
	fullscreen        bool
	created           bool

	maxTextureSize int32
	lastTime       float64
	clipboard      ClipboardProvider

	// Options
	title        string
	versionMajor int
	versionMinor int
	debugBuild   bool
	coreProfile  bool
	hidden       bool
	logger       *slog.Logger
	sleep        func(time.Duration)
}

// New creates a runtime over the given host and graphics API. No window
// exists until Initialize succeeds.
func New(host Host, gfx Graphics, opts ...Option) *Runtime {
	r := &Runtime{
		host:           host,
		gfx:            gfx,
		input:          NewInput(),
		bindings:       NewBindings(),
		pacer:          newFramePacer(),
		maxTextureSize: DefaultMaxTextureSize,
		clipboard:      SystemClipboard{},
		title:          "window",
		coreProfile:    goruntime.GOOS == "darwin",
		logger:         windowLogger,
		sleep:          time.Sleep,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.scissor = NewScissorStack(gfx, 0, 0)
	r.scissor.logger = r.logger
	r.bindings.logger = r.logger

	return r
}

// Title returns the window title built from the title, version and build
// options.
func (r *Runtime) Title() string {
	title := fmt.Sprintf("%s v%d.%d", r.title, r.versionMajor, r.versionMinor)
	if r.debugBuild {
		title += " [debug]"
	}
	return title
}

// Initialize creates the window and graphics context from settings and
// subscribes to settings.Fullscreen. Any failure releases the windowing
// subsystem and returns an error wrapping ErrWindowCreation.
func (r *Runtime) Initialize(settings *DisplaySettings) error {
	if r.fullscreenSub != nil {
		r.fullscreenSub.Unsubscribe()
		r.fullscreenSub = nil
	}
	r.created = false
	r.clipboard = SystemClipboard{}

	r.settings = settings
	r.width = settings.Width.Get()
	r.height = settings.Height.Get()
	r.fbWidth, r.fbHeight = r.width, r.height
	r.fullscreen = false
	r.pacer = newFramePacer()

	cfg := HostConfig{
		Title:        r.Title(),
		Width:        int(r.width),
		Height:       int(r.height),
		Samples:      int(settings.Samples.Get()),
		ContextMajor: 3,
		ContextMinor: 3,
		CoreProfile:  r.coreProfile,
		Hidden:       r.hidden,
	}
	if err := r.host.Create(cfg); err != nil {
		r.logger.Error("failed to create window", "err", err)
		r.host.Terminate()
		return fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	if err := r.gfx.Init(); err != nil {
		r.logger.Error("failed to initialize graphics context", "err", err)
		r.host.Terminate()
		return fmt.Errorf("%w: graphics: %w", ErrWindowCreation, err)
	}
	r.created = true
	r.clipboard = r.host.Clipboard()

	if w, h := r.host.FramebufferSize(); w > 0 && h > 0 {
		r.fbWidth, r.fbHeight = uint(w), uint(h)
	}
	r.gfx.Viewport(0, 0, int32(r.fbWidth), int32(r.fbHeight))
	r.gfx.SetClearColor(0, 0, 0, 1)
	r.gfx.EnableAlphaBlending()

	if size := r.gfx.MaxTextureSize(); size > 0 {
		r.maxTextureSize = size
		r.logger.Info("max texture size", "size", size)
	}
	r.scissor.Reset(r.fbWidth, r.fbHeight)

	r.fullscreenSub = settings.Fullscreen.Observe(func(fullscreen bool) {
		if fullscreen != r.fullscreen {
			r.ToggleFullscreen()
		}
	}, true)

	r.host.SetSwapInterval(1)
	r.SetFramerate(settings.Framerate.Get())

	vendor, renderer := r.gfx.Info()
	r.logger.Info("graphics context ready",
		"vendor", vendor,
		"renderer", renderer,
		"host", r.host.Version(),
		"scale", r.host.ContentScale())

	r.pacer.prevSwap = r.Time()
	return nil
}

// Terminate drops the settings subscription and shuts the windowing
// subsystem down. It is safe to call without a successful Initialize.
func (r *Runtime) Terminate() {
	if r.fullscreenSub != nil {
		r.fullscreenSub.Unsubscribe()
		r.fullscreenSub = nil
	}
	r.host.Terminate()
	r.created = false
	r.clipboard = SystemClipboard{}
}

// PollEvents runs one polling step: per-step input is cleared, pending
// host events are applied, then bindings observe the new input state.
func (r *Runtime) PollEvents() {
	r.input.beginStep()
	for _, ev := range r.host.PollEvents() {
		r.HandleEvent(ev)
	}
	r.bindings.Update(r.input)
}

// HandleEvent applies a single host event.
func (r *Runtime) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventResize:
		r.onResize(ev.Width, ev.Height)
	case EventFramebufferSize:
		r.onFramebufferResize(ev.Width, ev.Height)
	case EventFocus:
		r.logger.Debug("focus changed", "focused", ev.Focused)
	case EventClose:
		r.logger.Debug("close requested")
	default:
		r.input.handle(ev)
	}
}

// onResize updates the cached window size. Sizes chosen by the user in a
// normal window are written back to settings; fullscreen and maximized
// sizes are not. The clip stack is always reset.
func (r *Runtime) onResize(width, height int) {
	if width > 0 && height > 0 {
		r.width = uint(width)
		r.height = uint(height)

		if r.settings != nil && !r.IsFullscreen() && !r.IsMaximized() {
			r.settings.Width.Set(uint(width))
			r.settings.Height.Set(uint(height))
		}
	}
	r.scissor.Reset(r.fbWidth, r.fbHeight)
}

// onFramebufferResize updates the viewport and the drawable size. The clip
// stack is always reset.
func (r *Runtime) onFramebufferResize(width, height int) {
	if width > 0 && height > 0 {
		r.gfx.Viewport(0, 0, int32(width), int32(height))
		r.fbWidth = uint(width)
		r.fbHeight = uint(height)
	}
	r.scissor.Reset(r.fbWidth, r.fbHeight)
}

// ToggleFullscreen switches between windowed and fullscreen mode and
// records the new state in settings.
func (r *Runtime) ToggleFullscreen() {
	if !r.created {
		r.logger.Warn("fullscreen toggle without a window")
		return
	}
	if r.input.CursorLocked() {
		r.ToggleCursor()
	}

	r.fullscreen = !r.fullscreen
	if r.fullscreen {
		r.posX, r.posY = r.host.Pos()
		r.host.SetFullscreen(true, 0, 0, 0, 0)
	} else {
		r.host.SetFullscreen(false, r.posX, r.posY,
			int(r.settings.Width.Get()), int(r.settings.Height.Get()))
	}

	w, h := r.host.Size()
	x, y := float64(w)/2, float64(h)/2
	r.host.SetCursorPos(x, y)
	r.input.SetCursorPos(x, y)

	r.settings.Fullscreen.Set(r.fullscreen)
}

// ToggleCursor switches relative mouse mode on or off.
func (r *Runtime) ToggleCursor() {
	r.input.cursorLocked = !r.input.cursorLocked
	r.input.cursorDrag = false
	r.host.SetCursorLocked(r.input.cursorLocked)
}

// SetFramerate sets the framerate cap; Uncapped disables it. The swap
// interval changes only when the cap switches between enabled and disabled.
func (r *Runtime) SetFramerate(framerate int) {
	if interval, changed := r.pacer.setFramerate(framerate); changed {
		r.host.SetSwapInterval(interval)
	}
}

// Framerate returns the current framerate cap.
func (r *Runtime) Framerate() int {
	return r.pacer.framerate
}

// SwapBuffers presents the frame, resets the clip stack and sleeps for the
// rest of the frame budget when a cap is set.
func (r *Runtime) SwapBuffers() {
	r.host.SwapBuffers()
	r.scissor.Reset(r.fbWidth, r.fbHeight)
	if d := r.pacer.delay(r.Time()); d > 0 {
		r.sleep(d)
	}
	r.pacer.prevSwap = r.Time()
}

// Time returns the host clock in seconds. A clock failure is logged and the
// last good reading is returned.
func (r *Runtime) Time() float64 {
	t, err := r.host.Time()
	if err != nil {
		r.logger.Error("failed to read clock", "err", err)
		return r.lastTime
	}
	r.lastTime = t
	return t
}

// IsFullscreen reports whether the window is in fullscreen mode.
func (r *Runtime) IsFullscreen() bool {
	return r.fullscreen
}

// IsMaximized reports whether the OS has maximized the window.
func (r *Runtime) IsMaximized() bool {
	return r.created && r.host.Maximized()
}

// IsFocused reports whether the window has input focus.
func (r *Runtime) IsFocused() bool {
	return r.created && r.host.Focused()
}

// IsIconified reports whether the window is minimized.
func (r *Runtime) IsIconified() bool {
	return r.created && r.host.Iconified()
}

// Size returns the cached window size in screen coordinates.
func (r *Runtime) Size() (width, height uint) {
	return r.width, r.height
}

// FramebufferSize returns the cached drawable size in pixels. Clip
// rectangles and screenshots use this size.
func (r *Runtime) FramebufferSize() (width, height uint) {
	return r.fbWidth, r.fbHeight
}

// ShouldClose reports whether the user asked to close the window.
func (r *Runtime) ShouldClose() bool {
	return !r.created || r.host.ShouldClose()
}

// SetShouldClose sets or cancels a close request.
func (r *Runtime) SetShouldClose(close bool) {
	if r.created {
		r.host.SetShouldClose(close)
	}
}

// Viewport sets the graphics viewport.
func (r *Runtime) Viewport(x, y, width, height int32) {
	r.gfx.Viewport(x, y, width, height)
}

// Clear clears the colour and depth buffers.
func (r *Runtime) Clear() {
	r.gfx.Clear(true, true)
}

// ClearDepth clears the depth buffer only.
func (r *Runtime) ClearDepth() {
	r.gfx.Clear(false, true)
}

// SetBgColor sets the clear colour.
func (r *Runtime) SetBgColor(red, green, blue, alpha float32) {
	r.gfx.SetClearColor(red, green, blue, alpha)
}

// MaxTextureSize returns the largest texture dimension the driver accepts.
func (r *Runtime) MaxTextureSize() int32 {
	return r.maxTextureSize
}

// TakeScreenshot reads the framebuffer as RGB888, bottom row first.
func (r *Runtime) TakeScreenshot() *ImageData {
	w, h := int(r.fbWidth), int(r.fbHeight)
	return &ImageData{
		Format: FormatRGB888,
		Width:  w,
		Height: h,
		Data:   r.gfx.ReadPixels(int32(w), int32(h)),
	}
}

// SaveScreenshot writes the framebuffer to path, top row first, in the
// format named by the file extension.
func (r *Runtime) SaveScreenshot(path string) error {
	img := r.TakeScreenshot()
	img.FlipVertical()
	if err := img.SaveImage(path); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	r.logger.Info("saved screenshot", "path", path)
	return nil
}

// SetIcon sets the window icon. img must be RGB888 or RGBA8888; host
// failures are logged and leave the icon unchanged.
func (r *Runtime) SetIcon(img *ImageData) {
	if img.Format != FormatRGB888 && img.Format != FormatRGBA8888 {
		panic(fmt.Sprintf("window: unsupported icon format %v", img.Format))
	}
	if err := r.host.SetIcon(iconCandidates(img)); err != nil {
		r.logger.Error("failed to set window icon", "err", err)
	}
}

// ClipboardText returns the clipboard text.
func (r *Runtime) ClipboardText() string {
	return r.clipboard.GetText()
}

// SetClipboardText replaces the clipboard text.
func (r *Runtime) SetClipboardText(text string) {
	r.clipboard.SetText(text)
}

// Input returns the input state updated by PollEvents.
func (r *Runtime) Input() *Input {
	return r.input
}

// Bindings returns the binding registry updated by PollEvents.
func (r *Runtime) Bindings() *Bindings {
	return r.bindings
}

// Scissor returns the clip stack used by the UI renderer.
func (r *Runtime) Scissor() *ScissorStack {
	return r.scissor
}

// Settings returns the settings passed to Initialize.
func (r *Runtime) Settings() *DisplaySettings {
	return r.settings
}
