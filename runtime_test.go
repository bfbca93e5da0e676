package window

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"
)

type testRuntime struct {
	*Runtime
	host   *mockHost
	gfx    *mockGraphics
	sleeps []time.Duration
}

func newTestRuntime(opts ...Option) *testRuntime {
	tr := &testRuntime{host: newMockHost(), gfx: &mockGraphics{}}
	opts = append([]Option{
		WithLogger(discardLogger),
		WithSleep(func(d time.Duration) { tr.sleeps = append(tr.sleeps, d) }),
	}, opts...)
	tr.Runtime = New(tr.host, tr.gfx, opts...)
	return tr
}

func initTestRuntime(t *testing.T, settings *DisplaySettings, opts ...Option) *testRuntime {
	t.Helper()
	tr := newTestRuntime(opts...)
	if err := tr.Initialize(settings); err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}
	return tr
}

func TestRuntime_Initialize(t *testing.T) {
	settings := DefaultDisplaySettings()
	settings.Samples.Set(4)
	tr := newTestRuntime(WithTitle("Vice City"), WithVersion(0, 3), WithDebugBuild(true), WithCoreProfile(true), WithHiddenWindow())
	tr.gfx.maxTexture = 8192

	if err := tr.Initialize(settings); err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	cfg := tr.host.cfg
	if cfg.Title != "Vice City v0.3 [debug]" {
		t.Errorf("expected debug title, got %q", cfg.Title)
	}
	if cfg.Width != 1280 || cfg.Height != 720 || cfg.Samples != 4 {
		t.Errorf("expected 1280x720 with 4 samples, got %+v", cfg)
	}
	if cfg.ContextMajor != 3 || cfg.ContextMinor != 3 || !cfg.CoreProfile {
		t.Errorf("expected 3.3 core context, got %+v", cfg)
	}
	if !cfg.Hidden {
		t.Error("expected hidden window")
	}
	if !slices.Equal(tr.gfx.viewports, [][4]int32{{0, 0, 1280, 720}}) {
		t.Errorf("expected full window viewport, got %v", tr.gfx.viewports)
	}
	if tr.gfx.clearColor != [4]float32{0, 0, 0, 1} || !tr.gfx.blending {
		t.Error("expected opaque black clear colour and alpha blending")
	}
	if tr.MaxTextureSize() != 8192 {
		t.Errorf("expected max texture size 8192, got %d", tr.MaxTextureSize())
	}
	if !slices.Equal(tr.host.intervals, []int{1}) {
		t.Errorf("expected vsync enabled once, got %v", tr.host.intervals)
	}
	if tr.IsFullscreen() || len(tr.host.fullscreen) != 0 {
		t.Error("expected windowed start without fullscreen calls")
	}
	if settings.Fullscreen.Observers() != 1 {
		t.Errorf("expected one fullscreen observer, got %d", settings.Fullscreen.Observers())
	}
	if tr.Scissor().Window() != (ScissorArea{Right: 1280, Bottom: 720}) {
		t.Errorf("expected clip stack sized to the window, got %v", tr.Scissor().Window())
	}
}

func TestRuntime_TitleWithoutDebug(t *testing.T) {
	tr := newTestRuntime(WithTitle("gta"), WithVersion(1, 2))
	if tr.Title() != "gta v1.2" {
		t.Errorf("expected plain title, got %q", tr.Title())
	}
}

func TestRuntime_KeepsDefaultMaxTextureSize(t *testing.T) {
	tr := initTestRuntime(t, DefaultDisplaySettings())
	if tr.MaxTextureSize() != DefaultMaxTextureSize {
		t.Errorf("expected default max texture size, got %d", tr.MaxTextureSize())
	}
}

func TestRuntime_InitializeFailure(t *testing.T) {
	tr := newTestRuntime()
	tr.host.createErr = errors.New("no display")

	err := tr.Initialize(DefaultDisplaySettings())
	if !errors.Is(err, ErrWindowCreation) {
		t.Fatalf("expected ErrWindowCreation, got %v", err)
	}
	if !strings.Contains(err.Error(), "no display") {
		t.Errorf("expected cause in error, got %q", err)
	}
	if tr.host.terms != 1 {
		t.Errorf("expected host terminated once, got %d", tr.host.terms)
	}
	if !tr.ShouldClose() {
		t.Error("expected ShouldClose without a window")
	}
}

func TestRuntime_GraphicsInitFailure(t *testing.T) {
	tr := newTestRuntime()
	tr.gfx.initErr = errors.New("no GL 3.3")
	settings := DefaultDisplaySettings()

	if err := tr.Initialize(settings); !errors.Is(err, ErrWindowCreation) {
		t.Fatalf("expected ErrWindowCreation, got %v", err)
	}
	if tr.host.terms != 1 {
		t.Errorf("expected host terminated once, got %d", tr.host.terms)
	}
	if settings.Fullscreen.Observers() != 0 {
		t.Error("expected no observer after failed initialization")
	}
}

func TestRuntime_FailedReinitializeDropsObserver(t *testing.T) {
	first := DefaultDisplaySettings()
	tr := initTestRuntime(t, first)

	tr.host.createErr = errors.New("display lost")
	second := DefaultDisplaySettings()
	if err := tr.Initialize(second); !errors.Is(err, ErrWindowCreation) {
		t.Fatalf("Expected ErrWindowCreation, got %v", err)
	}

	if first.Fullscreen.Observers() != 0 || second.Fullscreen.Observers() != 0 {
		t.Fatalf("Expected no observers after failed re-initialization, got %d and %d",
			first.Fullscreen.Observers(), second.Fullscreen.Observers())
	}
	if !tr.ShouldClose() {
		t.Error("Expected no live window after failed re-initialization")
	}

	first.Fullscreen.Set(true)
	if len(tr.host.fullscreen) != 0 || tr.IsFullscreen() {
		t.Error("Expected old settings not to drive the window")
	}
	if second.Fullscreen.Get() {
		t.Error("Expected new settings untouched")
	}

	tr.ToggleFullscreen()
	if len(tr.host.fullscreen) != 0 {
		t.Error("Expected toggle ignored without a window")
	}
}

func TestRuntime_HiDPIInitialize(t *testing.T) {
	tr := newTestRuntime()
	tr.host.scale = 2
	if err := tr.Initialize(DefaultDisplaySettings()); err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	if !slices.Equal(tr.gfx.viewports, [][4]int32{{0, 0, 2560, 1440}}) {
		t.Errorf("Expected viewport covering the framebuffer, got %v", tr.gfx.viewports)
	}
	if got := tr.Scissor().Window(); got != (ScissorArea{Right: 2560, Bottom: 1440}) {
		t.Errorf("Expected clip stack sized to the framebuffer, got %v", got)
	}
	if w, h := tr.Size(); w != 1280 || h != 720 {
		t.Errorf("Expected window size 1280x720, got %dx%d", w, h)
	}
	if w, h := tr.FramebufferSize(); w != 2560 || h != 1440 {
		t.Errorf("Expected framebuffer size 2560x1440, got %dx%d", w, h)
	}
	if img := tr.TakeScreenshot(); img.Width != 2560 || img.Height != 1440 {
		t.Errorf("Expected 2560x1440 screenshot, got %dx%d", img.Width, img.Height)
	}
}

func TestRuntime_HiDPIResizePersistsWindowSize(t *testing.T) {
	settings := DefaultDisplaySettings()
	tr := newTestRuntime()
	tr.host.scale = 2
	if err := tr.Initialize(settings); err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	tr.HandleEvent(FramebufferSizeEvent(2048, 1536))
	tr.HandleEvent(ResizeEvent(1024, 768))

	if settings.Width.Get() != 1024 || settings.Height.Get() != 768 {
		t.Errorf("Expected window size persisted, got %dx%d", settings.Width.Get(), settings.Height.Get())
	}
	if got := tr.gfx.viewports[len(tr.gfx.viewports)-1]; got != [4]int32{0, 0, 2048, 1536} {
		t.Errorf("Expected viewport in pixels, got %v", got)
	}
	if got := tr.Scissor().Window(); got != (ScissorArea{Right: 2048, Bottom: 1536}) {
		t.Errorf("Expected clip stack in pixels, got %v", got)
	}

	tr.ToggleFullscreen()
	tr.ToggleFullscreen()
	if tr.host.width != 1024 || tr.host.height != 768 {
		t.Errorf("Expected windowed size restored in screen coordinates, got %dx%d", tr.host.width, tr.host.height)
	}
}

func TestRuntime_FramebufferResizeNotPersisted(t *testing.T) {
	settings := DefaultDisplaySettings()
	tr := initTestRuntime(t, settings)

	tr.HandleEvent(FramebufferSizeEvent(3000, 2000))

	if settings.Width.Get() != DefaultWidth || settings.Height.Get() != DefaultHeight {
		t.Errorf("Expected framebuffer size not persisted, got %dx%d", settings.Width.Get(), settings.Height.Get())
	}
	if w, h := tr.Size(); w != 1280 || h != 720 {
		t.Errorf("Expected window size unchanged, got %dx%d", w, h)
	}
}

func TestRuntime_ReinitializeReplacesObserver(t *testing.T) {
	settings := DefaultDisplaySettings()
	tr := initTestRuntime(t, settings)
	if err := tr.Initialize(settings); err != nil {
		t.Fatalf("second Initialize() returned error: %v", err)
	}
	if settings.Fullscreen.Observers() != 1 {
		t.Fatalf("expected one observer after re-initialization, got %d", settings.Fullscreen.Observers())
	}

	tr.Terminate()
	if settings.Fullscreen.Observers() != 0 {
		t.Errorf("expected observer dropped on Terminate, got %d", settings.Fullscreen.Observers())
	}
	if tr.host.terms != 1 {
		t.Errorf("expected one host termination, got %d", tr.host.terms)
	}
}

func TestRuntime_TerminateWithoutInitialize(t *testing.T) {
	tr := newTestRuntime()
	tr.Terminate()
	tr.Terminate()
	if tr.host.terms != 2 {
		t.Errorf("expected host Terminate forwarded, got %d", tr.host.terms)
	}
}

func TestRuntime_ResizePersistsWindowedSize(t *testing.T) {
	settings := DefaultDisplaySettings()
	tr := initTestRuntime(t, settings)
	tr.Scissor().Push(Rect{X: 0, Y: 0, Width: 10, Height: 10})

	tr.HandleEvent(ResizeEvent(1024, 768))
	tr.HandleEvent(FramebufferSizeEvent(1024, 768))

	if w, h := tr.Size(); w != 1024 || h != 768 {
		t.Errorf("expected cached size 1024x768, got %dx%d", w, h)
	}
	if settings.Width.Get() != 1024 || settings.Height.Get() != 768 {
		t.Errorf("expected settings updated, got %dx%d", settings.Width.Get(), settings.Height.Get())
	}
	if got := tr.gfx.viewports[len(tr.gfx.viewports)-1]; got != [4]int32{0, 0, 1024, 768} {
		t.Errorf("expected viewport 1024x768, got %v", got)
	}
	if tr.Scissor().Depth() != 0 || tr.Scissor().Window() != (ScissorArea{Right: 1024, Bottom: 768}) {
		t.Error("expected clip stack reset to the new size")
	}
}

func TestRuntime_ResizeMaximizedNotPersisted(t *testing.T) {
	settings := DefaultDisplaySettings()
	tr := initTestRuntime(t, settings)
	tr.host.maximized = true

	tr.HandleEvent(ResizeEvent(1920, 1050))

	if w, _ := tr.Size(); w != 1920 {
		t.Errorf("expected cached width 1920, got %d", w)
	}
	if settings.Width.Get() != DefaultWidth || settings.Height.Get() != DefaultHeight {
		t.Errorf("expected settings untouched, got %dx%d", settings.Width.Get(), settings.Height.Get())
	}
}

func TestRuntime_ResizeFullscreenNotPersisted(t *testing.T) {
	settings := DefaultDisplaySettings()
	tr := initTestRuntime(t, settings)
	tr.ToggleFullscreen()

	tr.HandleEvent(ResizeEvent(1920, 1080))

	if settings.Width.Get() != DefaultWidth || settings.Height.Get() != DefaultHeight {
		t.Errorf("expected settings untouched, got %dx%d", settings.Width.Get(), settings.Height.Get())
	}
}

func TestRuntime_ResizeToZeroKeepsSize(t *testing.T) {
	settings := DefaultDisplaySettings()
	tr := initTestRuntime(t, settings)
	viewports := len(tr.gfx.viewports)

	tr.HandleEvent(ResizeEvent(0, 0))
	tr.HandleEvent(FramebufferSizeEvent(0, 0))

	if w, h := tr.Size(); w != 1280 || h != 720 {
		t.Errorf("expected cached size kept, got %dx%d", w, h)
	}
	if w, h := tr.FramebufferSize(); w != 1280 || h != 720 {
		t.Errorf("expected framebuffer size kept, got %dx%d", w, h)
	}
	if len(tr.gfx.viewports) != viewports {
		t.Error("expected no viewport change for a minimized window")
	}
}

func TestRuntime_FullscreenSettingDrivesWindow(t *testing.T) {
	settings := DefaultDisplaySettings()
	tr := initTestRuntime(t, settings)

	settings.Fullscreen.Set(true)
	if !tr.IsFullscreen() {
		t.Fatal("expected fullscreen after setting change")
	}
	if !slices.Equal(tr.host.fullscreen, []bool{true}) {
		t.Errorf("expected one fullscreen call, got %v", tr.host.fullscreen)
	}
	if tr.host.cursorX != 960 || tr.host.cursorY != 540 {
		t.Errorf("expected cursor centred at 960,540, got %v,%v", tr.host.cursorX, tr.host.cursorY)
	}
	if x, y := tr.Input().CursorPos(); x != 960 || y != 540 {
		t.Errorf("expected input cursor at 960,540, got %v,%v", x, y)
	}

	settings.Fullscreen.Set(false)
	if tr.IsFullscreen() {
		t.Fatal("expected windowed after setting change")
	}
	if tr.host.x != 100 || tr.host.y != 50 {
		t.Errorf("expected window position restored to 100,50, got %d,%d", tr.host.x, tr.host.y)
	}
	if tr.host.width != 1280 || tr.host.height != 720 {
		t.Errorf("expected settings size restored, got %dx%d", tr.host.width, tr.host.height)
	}
	if tr.host.cursorX != 640 || tr.host.cursorY != 360 {
		t.Errorf("expected cursor centred at 640,360, got %v,%v", tr.host.cursorX, tr.host.cursorY)
	}
}

func TestRuntime_ToggleFullscreenSyncsSettings(t *testing.T) {
	settings := DefaultDisplaySettings()
	tr := initTestRuntime(t, settings)
	tr.ToggleCursor()

	tr.ToggleFullscreen()

	if !settings.Fullscreen.Get() {
		t.Error("expected settings to follow the toggle")
	}
	if len(tr.host.fullscreen) != 1 {
		t.Errorf("expected the observer not to toggle back, got %v", tr.host.fullscreen)
	}
	if tr.host.locked || tr.Input().CursorLocked() {
		t.Error("expected cursor unlocked by the toggle")
	}
}

func TestRuntime_InitializeFullscreen(t *testing.T) {
	settings := DefaultDisplaySettings()
	settings.Fullscreen.Set(true)

	tr := initTestRuntime(t, settings)

	if !tr.IsFullscreen() {
		t.Error("expected fullscreen right after initialization")
	}
	if !slices.Equal(tr.host.fullscreen, []bool{true}) {
		t.Errorf("expected one fullscreen call, got %v", tr.host.fullscreen)
	}
}

func TestRuntime_ToggleFullscreenWithoutWindow(t *testing.T) {
	tr := newTestRuntime()
	tr.ToggleFullscreen()
	if tr.IsFullscreen() || len(tr.host.fullscreen) != 0 {
		t.Error("expected toggle ignored without a window")
	}
}

func TestRuntime_SetFramerateTogglesInterval(t *testing.T) {
	settings := DefaultDisplaySettings()
	settings.Framerate.Set(30)
	tr := initTestRuntime(t, settings)

	if !slices.Equal(tr.host.intervals, []int{1, 0}) {
		t.Fatalf("expected vsync then immediate swap, got %v", tr.host.intervals)
	}

	tr.SetFramerate(60)
	if len(tr.host.intervals) != 2 {
		t.Errorf("expected no interval change between caps, got %v", tr.host.intervals)
	}

	tr.SetFramerate(Uncapped)
	if !slices.Equal(tr.host.intervals, []int{1, 0, 1}) {
		t.Errorf("expected vsync restored, got %v", tr.host.intervals)
	}
	if tr.Framerate() != Uncapped {
		t.Errorf("expected uncapped, got %d", tr.Framerate())
	}
}

func TestRuntime_SwapBuffersPacing(t *testing.T) {
	settings := DefaultDisplaySettings()
	settings.Framerate.Set(30)
	tr := initTestRuntime(t, settings)

	tr.SwapBuffers()

	if tr.host.swaps != 1 {
		t.Fatalf("expected one swap, got %d", tr.host.swaps)
	}
	if len(tr.sleeps) != 1 {
		t.Fatalf("expected one sleep, got %v", tr.sleeps)
	}
	want := time.Second / 30
	if diff := tr.sleeps[0] - want; diff < -time.Microsecond || diff > time.Microsecond {
		t.Errorf("expected sleep of about %v, got %v", want, tr.sleeps[0])
	}

	tr.host.now = 1
	tr.SwapBuffers()
	if len(tr.sleeps) != 1 {
		t.Errorf("expected no sleep once the budget is spent, got %v", tr.sleeps)
	}
}

func TestRuntime_SwapBuffersUncapped(t *testing.T) {
	tr := initTestRuntime(t, DefaultDisplaySettings())
	tr.Scissor().Push(Rect{X: 5, Y: 5, Width: 5, Height: 5})

	tr.SwapBuffers()

	if len(tr.sleeps) != 0 {
		t.Errorf("expected no sleep when uncapped, got %v", tr.sleeps)
	}
	if tr.Scissor().Depth() != 0 || tr.gfx.scissorOn {
		t.Error("expected clip stack reset after presenting")
	}
}

func TestRuntime_TimeFallsBackOnError(t *testing.T) {
	tr := initTestRuntime(t, DefaultDisplaySettings())
	tr.host.now = 12.5
	if tr.Time() != 12.5 {
		t.Fatalf("expected 12.5, got %v", tr.Time())
	}

	tr.host.now = 99
	tr.host.timeErr = errors.New("clock gone")
	if got := tr.Time(); got != 12.5 {
		t.Errorf("expected last good time 12.5, got %v", got)
	}
}

func TestRuntime_Screenshot(t *testing.T) {
	tr := initTestRuntime(t, DefaultDisplaySettings())

	img := tr.TakeScreenshot()
	if img.Format != FormatRGB888 || img.Width != 1280 || img.Height != 720 {
		t.Fatalf("expected 1280x720 rgb888, got %v %dx%d", img.Format, img.Width, img.Height)
	}
	if len(img.Data) != 1280*720*3 {
		t.Errorf("expected %d bytes, got %d", 1280*720*3, len(img.Data))
	}
}

func TestRuntime_SetIcon(t *testing.T) {
	tr := initTestRuntime(t, DefaultDisplaySettings())

	tr.SetIcon(NewImageData(FormatRGBA8888, 32, 32))
	if len(tr.host.icons) != 1 || len(tr.host.icons[0]) != 2 {
		t.Fatalf("expected one icon with 2 candidates, got %v", tr.host.icons)
	}

	tr.host.iconErr = errors.New("icons unsupported")
	tr.SetIcon(NewImageData(FormatRGB888, 8, 8))
	if len(tr.host.icons) != 1 {
		t.Error("expected failed icon not to be recorded")
	}
}

func TestRuntime_SetIconUnsupportedFormatPanics(t *testing.T) {
	tr := initTestRuntime(t, DefaultDisplaySettings())
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsupported icon format")
		}
	}()
	tr.SetIcon(&ImageData{Format: ImageFormat(7), Width: 1, Height: 1})
}

func TestRuntime_PollEventsUpdatesBindings(t *testing.T) {
	tr := initTestRuntime(t, DefaultDisplaySettings())
	toggled := 0
	tr.Bindings().BindKey("fullscreen", KeyF11).OnActivated(func() { toggled++ })

	tr.host.events = []Event{
		KeyEvent(KeyF11, true),
		{Kind: EventFocus, Focused: true},
		{Kind: EventClose},
	}
	tr.PollEvents()

	if !tr.Bindings().JustActive("fullscreen") || toggled != 1 {
		t.Fatalf("expected binding activated once, got %d", toggled)
	}

	tr.PollEvents()
	if tr.Bindings().JustActive("fullscreen") {
		t.Error("expected just active cleared on the next poll")
	}
	if !tr.Bindings().Active("fullscreen") {
		t.Error("expected binding still held")
	}
}

func TestRuntime_Clipboard(t *testing.T) {
	tr := initTestRuntime(t, DefaultDisplaySettings())

	tr.SetClipboardText("grove street")
	if tr.host.clipboard != "grove street" {
		t.Errorf("expected host clipboard after initialization, got %q", tr.host.clipboard)
	}
	if tr.ClipboardText() != "grove street" {
		t.Errorf("expected clipboard text back, got %q", tr.ClipboardText())
	}
}

func TestRuntime_QueriesWithoutWindow(t *testing.T) {
	tr := newTestRuntime()
	tr.host.maximized, tr.host.focused, tr.host.iconified = true, true, true

	if tr.IsMaximized() || tr.IsFocused() || tr.IsIconified() {
		t.Error("expected window state queries false without a window")
	}
	if !tr.ShouldClose() {
		t.Error("expected ShouldClose without a window")
	}
	tr.SetShouldClose(true)
	if tr.host.shouldClose {
		t.Error("expected SetShouldClose ignored without a window")
	}
}

func TestRuntime_Queries(t *testing.T) {
	tr := initTestRuntime(t, DefaultDisplaySettings())
	tr.host.focused = true

	if !tr.IsFocused() || tr.IsMaximized() || tr.IsIconified() {
		t.Error("expected focused, not maximized, not iconified")
	}
	if tr.ShouldClose() {
		t.Error("expected window open")
	}
	tr.SetShouldClose(true)
	if !tr.ShouldClose() {
		t.Error("expected close request forwarded")
	}

	tr.Clear()
	tr.ClearDepth()
	tr.SetBgColor(1, 0, 0, 1)
	if tr.gfx.clears != 2 || tr.gfx.clearColor != [4]float32{1, 0, 0, 1} {
		t.Error("expected clears and clear colour forwarded")
	}
}
