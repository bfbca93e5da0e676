/*
Package window provides the window and display runtime of the game: it owns
the native window and its graphics context, keeps the window consistent with
persisted display settings, maintains the nested clip stack used by the UI
renderer, and turns raw input into named bindings.

# Overview

A Runtime drives a Host (the native window, see backend/opengl for the GLFW
implementation) and a Graphics API. Everything runs on the thread that owns
the window; nothing in this package is safe for concurrent use.

# Quick Start

	settings, err := window.LoadDisplaySettings("display.yaml")
	if err != nil {
	    return err
	}

	win := window.New(opengl.NewGLFWHost(), opengl.NewGraphics(),
	    window.WithTitle("gta"),
	    window.WithVersion(0, 1))
	if err := win.Initialize(settings); err != nil {
	    return err // wraps window.ErrWindowCreation
	}
	defer win.Terminate()

	win.Bindings().BindKey("fullscreen", window.KeyF11).OnActivated(func() {
	    settings.Fullscreen.Set(!settings.Fullscreen.Get())
	})

	for !win.ShouldClose() {
	    win.PollEvents()
	    win.Clear()

	    win.Scissor().Push(window.Rect{X: 10, Y: 10, Width: 200, Height: 200})
	    drawPanel()
	    win.Scissor().Pop()

	    win.SwapBuffers()
	}

# Display Settings

DisplaySettings holds observable values. The runtime subscribes to
Fullscreen, so flipping the setting toggles the window and toggling the
window updates the setting. Width and Height follow user resizes of a normal
window; maximized and fullscreen sizes are never written back.

File format (YAML):

	width: 1280
	height: 720
	fullscreen: false
	framerate: -1   # -1 = uncapped, presentation waits for vsync
	samples: 4

A positive framerate disables vsync and sleeps after each SwapBuffers for
the rest of the frame budget.

# Clip Stack

ScissorStack.Push intersects the requested rectangle with the active area;
Pop restores the previous one. Coordinates are framebuffer pixels with the origin
at the top-left. The clip test is enabled exactly while pushes are
outstanding, and SwapBuffers resets the stack every frame.

A push that falls outside the active area leaves an empty area: the
graphics API gets a zero rectangle and nothing nested inside it draws.

# Bindings

A Binding maps a named control to one key or mouse button. Bindings update
once per PollEvents:

	Active()      input is held
	JustActive()  input went down during this poll
	OnActivated   callbacks run in registration order on each press

Disabled bindings keep their last state and fire nothing.

Bindings file format (YAML):

	fullscreen: key:f11
	screenshot: key:f2
	ui.click: mouse:left

Unknown key names load as KeyUnknown and are logged.

# Logging

The package logs through log/slog. SetVerbose enables debug output;
WithLogger routes a runtime's output elsewhere.
*/
package window
