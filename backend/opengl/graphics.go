// Package opengl provides the GLFW host and OpenGL 3.3 graphics backend for
// the window runtime.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Graphics implements window.Graphics with OpenGL 3.3.
type Graphics struct{}

// NewGraphics creates the graphics backend. Init must run once a context is
// current.
func NewGraphics() *Graphics {
	return &Graphics{}
}

// Init implements window.Graphics.
func (g *Graphics) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	return nil
}

// Viewport implements window.Graphics.
func (g *Graphics) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// SetClearColor implements window.Graphics.
func (g *Graphics) SetClearColor(r, gr, b, a float32) {
	gl.ClearColor(r, gr, b, a)
}

// Clear implements window.Graphics.
func (g *Graphics) Clear(color, depth bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

// EnableAlphaBlending implements window.Graphics.
func (g *Graphics) EnableAlphaBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// EnableScissor implements window.ScissorTarget.
func (g *Graphics) EnableScissor() {
	gl.Enable(gl.SCISSOR_TEST)
}

// DisableScissor implements window.ScissorTarget.
func (g *Graphics) DisableScissor() {
	gl.Disable(gl.SCISSOR_TEST)
}

// Scissor implements window.ScissorTarget.
func (g *Graphics) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

// MaxTextureSize implements window.Graphics.
func (g *Graphics) MaxTextureSize() int32 {
	var size int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &size)
	return size
}

// ReadPixels implements window.Graphics.
func (g *Graphics) ReadPixels(width, height int32) []byte {
	data := make([]byte, int(width)*int(height)*3)
	if len(data) == 0 {
		return data
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.FRONT)
	gl.ReadPixels(0, 0, width, height, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.ReadBuffer(gl.BACK)
	return data
}

// Info implements window.Graphics.
func (g *Graphics) Info() (vendor, renderer string) {
	return gl.GoStr(gl.GetString(gl.VENDOR)), gl.GoStr(gl.GetString(gl.RENDERER))
}
