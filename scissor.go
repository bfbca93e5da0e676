package window

import (
	"log/slog"
	"math"
)

// ScissorTarget is the part of the graphics API driven by the clip stack.
// Scissor takes bottom-left origin coordinates.
type ScissorTarget interface {
	EnableScissor()
	DisableScissor()
	Scissor(x, y, width, height int32)
}

// Rect is a requested clip rectangle in framebuffer pixels, top-left origin.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// ScissorArea is an active clip region expressed by its edges in
// framebuffer pixels, top-left origin.
type ScissorArea struct {
	Left, Top     float32
	Right, Bottom float32
}

// Width returns the horizontal extent, never negative.
func (a ScissorArea) Width() float32 {
	return max(0, a.Right-a.Left)
}

// Height returns the vertical extent, never negative.
func (a ScissorArea) Height() float32 {
	return max(0, a.Bottom-a.Top)
}

// Empty reports whether nothing inside the area can be drawn.
func (a ScissorArea) Empty() bool {
	return a.Width() <= 0 || a.Height() <= 0
}

// Contains reports whether b lies inside a. An empty b is inside everything.
func (a ScissorArea) Contains(b ScissorArea) bool {
	if b.Empty() {
		return true
	}
	return b.Left >= a.Left && b.Top >= a.Top && b.Right <= a.Right && b.Bottom <= a.Bottom
}

// ScissorStack maintains nested clip rectangles for the UI renderer.
//
// The stack holds the areas that were active before each Push; the current
// area is kept separately. The clip test is enabled exactly while the stack
// is non-empty.
//
// Usage:
//
//	scissor.Push(window.Rect{X: 10, Y: 10, Width: 200, Height: 200})
//	drawPanelContents()
//	scissor.Pop()
type ScissorStack struct {
	target ScissorTarget
	logger *slog.Logger

	width, height float32
	area          ScissorArea
	stack         []ScissorArea
}

// NewScissorStack creates a clip stack for a window of the given size.
// The stack starts empty and assumes the clip test is off, which is the
// graphics API default; target is not touched until the first call.
func NewScissorStack(target ScissorTarget, width, height uint) *ScissorStack {
	return &ScissorStack{
		target: target,
		logger: windowLogger,
		width:  float32(width),
		height: float32(height),
		area:   ScissorArea{Right: float32(width), Bottom: float32(height)},
	}
}

// Push narrows the active area to its intersection with rect.
func (s *ScissorStack) Push(rect Rect) {
	if len(s.stack) == 0 {
		s.target.EnableScissor()
	}
	s.stack = append(s.stack, s.area)

	area := ScissorArea{
		Left:   rect.X,
		Top:    rect.Y,
		Right:  rect.Width + ceil32(rect.X),
		Bottom: rect.Height + ceil32(rect.Y),
	}
	area.Left = max(area.Left, s.area.Left)
	area.Top = max(area.Top, s.area.Top)
	area.Right = min(area.Right, s.area.Right)
	area.Bottom = min(area.Bottom, s.area.Bottom)

	s.area = area
	s.apply(area)
}

// Pop restores the area that was active before the matching Push.
// An extra Pop is logged and ignored.
func (s *ScissorStack) Pop() {
	if len(s.stack) == 0 {
		s.logger.Warn("extra scissor pop")
		return
	}
	area := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	s.area = area
	s.apply(area)
	if len(s.stack) == 0 {
		s.target.DisableScissor()
	}
}

// Reset clears the stack and makes the whole window the active area.
func (s *ScissorStack) Reset(width, height uint) {
	s.width = float32(width)
	s.height = float32(height)
	s.area = ScissorArea{Right: s.width, Bottom: s.height}
	s.stack = s.stack[:0]
	s.target.DisableScissor()
}

// apply sends area to the graphics API. A degenerate area is sent as the
// zero rectangle at the origin; the active area keeps the intersection so
// nested pushes stay degenerate.
func (s *ScissorStack) apply(area ScissorArea) {
	if area.Right-area.Left <= 0 || area.Bottom-area.Top <= 0 {
		s.target.Scissor(0, 0, 0, 0)
		return
	}
	s.target.Scissor(
		int32(area.Left),
		int32(s.height-area.Bottom),
		int32(ceil32(area.Right-area.Left)),
		int32(ceil32(area.Bottom-area.Top)),
	)
}

// Area returns the active clip area. After a push outside the enclosing
// area its edges may cross; Empty reports true for it.
func (s *ScissorStack) Area() ScissorArea {
	return s.area
}

// Window returns the full-window area the stack was last reset to.
func (s *ScissorStack) Window() ScissorArea {
	return ScissorArea{Right: s.width, Bottom: s.height}
}

// Depth returns the number of unmatched pushes.
func (s *ScissorStack) Depth() int {
	return len(s.stack)
}

// Enabled reports whether the clip test is currently on.
func (s *ScissorStack) Enabled() bool {
	return len(s.stack) > 0
}

func ceil32(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}
