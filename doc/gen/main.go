// Command gen renders the clip stack scenes used in the package docs in a
// hidden window and saves PNG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/window"
	"github.com/go-theft-auto/window/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// scene defines a single screenshot to capture.
type scene struct {
	name string // filename without extension
	draw func(s *window.ScissorStack, quads *opengl.QuadRenderer)
}

const (
	sceneWidth  = 400
	sceneHeight = 300
)

func run() error {
	settings := window.DefaultDisplaySettings()
	settings.Width.Set(sceneWidth)
	settings.Height.Set(sceneHeight)
	settings.Framerate.Set(window.Uncapped)

	rt := window.New(opengl.NewGLFWHost(), opengl.NewGraphics(),
		window.WithTitle("screenshot-gen"),
		window.WithHiddenWindow(),
	)
	if err := rt.Initialize(settings); err != nil {
		return err
	}
	defer rt.Terminate()

	quads, err := opengl.NewQuadRenderer(sceneWidth, sceneHeight)
	if err != nil {
		return fmt.Errorf("quad renderer: %w", err)
	}
	defer quads.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	scenes := buildScenes()
	for _, sc := range scenes {
		path := filepath.Join(outDir, sc.name+".png")
		if err := capture(rt, quads, sc, path); err != nil {
			return fmt.Errorf("capture %s: %w", sc.name, err)
		}
		fmt.Printf("  %s.png (%dx%d)\n", sc.name, sceneWidth, sceneHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(scenes), outDir)
	return nil
}

func capture(rt *window.Runtime, quads *opengl.QuadRenderer, sc scene, path string) error {
	rt.SetBgColor(0.12, 0.12, 0.14, 1.0)
	rt.Clear()
	sc.draw(rt.Scissor(), quads)
	rt.SwapBuffers()
	return rt.SaveScreenshot(path)
}

// fill covers the whole window; the active clip area decides what shows.
func fill(quads *opengl.QuadRenderer, r, g, b float32) {
	quads.FillRect(0, 0, sceneWidth, sceneHeight, r, g, b, 1)
}

func buildScenes() []scene {
	return []scene{
		{
			name: "scissor-single",
			draw: func(s *window.ScissorStack, quads *opengl.QuadRenderer) {
				s.Push(window.Rect{X: 50, Y: 50, Width: 200, Height: 150})
				fill(quads, 0.2, 0.3, 0.5)
				s.Pop()
			},
		},
		{
			name: "scissor-nested",
			draw: func(s *window.ScissorStack, quads *opengl.QuadRenderer) {
				s.Push(window.Rect{X: 20, Y: 20, Width: 240, Height: 200})
				fill(quads, 0.2, 0.3, 0.5)

				s.Push(window.Rect{X: 150, Y: 100, Width: 300, Height: 300})
				fill(quads, 0.8, 0.4, 0.1)
				s.Pop()

				s.Pop()
			},
		},
		{
			name: "scissor-outside",
			draw: func(s *window.ScissorStack, quads *opengl.QuadRenderer) {
				s.Push(window.Rect{X: 20, Y: 20, Width: 100, Height: 100})
				fill(quads, 0.2, 0.3, 0.5)

				// Entirely outside the parent: nothing is drawn.
				s.Push(window.Rect{X: 200, Y: 150, Width: 100, Height: 100})
				fill(quads, 0.8, 0.1, 0.1)
				s.Pop()

				s.Pop()
			},
		},
	}
}
