// Example opens a window through the runtime, draws nested clipped panels,
// and wires a few bindings: F11 toggles fullscreen through the settings,
// F2 saves a screenshot, Escape locks or unlocks the cursor.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-theft-auto/window"
	"github.com/go-theft-auto/window/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settingsPath := flag.String("settings", "display.yaml", "display settings file")
	bindingsPath := flag.String("bindings", "bindings.yaml", "input bindings file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	window.SetVerbose(*verbose)

	settings, err := window.LoadDisplaySettings(*settingsPath)
	if err != nil {
		return err
	}

	rt := window.New(opengl.NewGLFWHost(), opengl.NewGraphics(),
		window.WithTitle("window example"),
		window.WithVersion(0, 1),
	)
	if err := rt.Initialize(settings); err != nil {
		return err
	}
	defer rt.Terminate()

	bindings := rt.Bindings()
	bindings.BindKey("fullscreen", window.KeyF11)
	bindings.BindKey("screenshot", window.KeyF2)
	bindings.BindKey("cursor", window.KeyEscape)
	if err := bindings.Load(*bindingsPath); err != nil {
		return err
	}

	bindings.Get("fullscreen").OnActivated(func() {
		settings.Fullscreen.Set(!settings.Fullscreen.Get())
	})
	bindings.Get("cursor").OnActivated(rt.ToggleCursor)
	bindings.Get("screenshot").OnActivated(func() {
		name := fmt.Sprintf("screenshot-%s.png", time.Now().Format("20060102-150405"))
		if err := rt.SaveScreenshot(filepath.Join(os.TempDir(), name)); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})

	w, h := rt.FramebufferSize()
	quads, err := opengl.NewQuadRenderer(int(w), int(h))
	if err != nil {
		return fmt.Errorf("quad renderer: %w", err)
	}
	defer quads.Delete()

	rt.SetBgColor(0.12, 0.12, 0.14, 1.0)

	for !rt.ShouldClose() {
		rt.PollEvents()

		w, h := rt.FramebufferSize()
		quads.Resize(int(w), int(h))
		rt.Clear()

		scissor := rt.Scissor()
		scissor.Push(window.Rect{X: 40, Y: 40, Width: 300, Height: 200})
		quads.FillRect(0, 0, float32(w), float32(h), 0.2, 0.3, 0.5, 1)

		// The inner panel overflows its parent and gets clipped to it.
		scissor.Push(window.Rect{X: 200, Y: 120, Width: 400, Height: 400})
		quads.FillRect(0, 0, float32(w), float32(h), 0.8, 0.4, 0.1, 1)
		scissor.Pop()

		scissor.Pop()

		rt.SwapBuffers()
	}

	if err := settings.Save(*settingsPath); err != nil {
		return err
	}
	return bindings.Save(*bindingsPath)
}
