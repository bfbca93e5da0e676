package window

import (
	"log/slog"
	"time"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithTitle sets the application name shown in the window title.
func WithTitle(title string) Option {
	return func(r *Runtime) { r.title = title }
}

// WithVersion sets the major.minor version embedded in the window title.
func WithVersion(major, minor int) Option {
	return func(r *Runtime) { r.versionMajor, r.versionMinor = major, minor }
}

// WithDebugBuild marks the window title as a debug build.
func WithDebugBuild(debug bool) Option {
	return func(r *Runtime) { r.debugBuild = debug }
}

// WithLogger sets the logger used by the runtime, its scissor stack and its
// binding registry.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) { r.logger = logger }
}

// WithSleep replaces the function used for frame pacing sleeps.
func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Runtime) { r.sleep = sleep }
}

// WithCoreProfile overrides the platform default for requesting a core
// (true) or compatibility (false) context.
func WithCoreProfile(core bool) Option {
	return func(r *Runtime) { r.coreProfile = core }
}

// WithHiddenWindow creates the window invisible. Rendering and screenshots
// work as usual.
func WithHiddenWindow() Option {
	return func(r *Runtime) { r.hidden = true }
}
