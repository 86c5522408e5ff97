package raster

import (
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/keyforge/keyshape"
	"github.com/keyforge/keyshape/internal/alpha"
)

var _ keyshape.Canvas = (*Canvas)(nil)

// state is the part of the canvas saved by Push.
type state struct {
	dx, dy float64
	clip   *image.Alpha // nil means unclipped
}

// Canvas paints keyshape layers into an *image.RGBA.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	dst       *image.RGBA
	ras       rasterizer
	tolerance float64

	state state
	stack []state
}

// NewCanvas creates a canvas over a new transparent width x height image.
func NewCanvas(width, height int) *Canvas {
	return NewCanvasFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewCanvasFor creates a canvas drawing into dst.
func NewCanvasFor(dst *image.RGBA) *Canvas {
	return &Canvas{
		dst:       dst,
		ras:       rasterizer{bounds: dst.Bounds()},
		tolerance: DefaultTolerance,
		stack:     make([]state, 0, 4),
	}
}

// Image returns the destination image.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

// SetTolerance sets the arc flattening tolerance used by strokes.
func (c *Canvas) SetTolerance(t float64) {
	if t > 0 {
		c.tolerance = t
	}
}

// Clear fills the whole image with col, ignoring clip and translation.
func (c *Canvas) Clear(col gg.RGBA) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// Push saves the translation and clip region.
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.state)
}

// Pop restores the last saved translation and clip region.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by (x, y).
func (c *Canvas) Translate(x, y float64) {
	c.state.dx += x
	c.state.dy += y
}

// ClipPath intersects the clip region with the area of paths under rule.
func (c *Canvas) ClipPath(rule gg.FillRule, paths ...*keyshape.Path) {
	cov := c.ras.fillRule(rule, c.state.dx, c.state.dy, paths...)
	c.state.clip = c.clipped(cov)
}

// FillPath fills p with col.
func (c *Canvas) FillPath(p *keyshape.Path, col gg.RGBA) error {
	if p == nil {
		return nil
	}
	c.paint(c.clipped(c.ras.fill(c.state.dx, c.state.dy, p)), image.NewUniform(col.Color()))
	return nil
}

// StrokePath strokes p with col. Non-positive widths draw nothing.
func (c *Canvas) StrokePath(p *keyshape.Path, col gg.RGBA, width float64) error {
	if p == nil || width <= 0 {
		return nil
	}
	cov := c.ras.stroke(p, width, c.tolerance, c.state.dx, c.state.dy)
	c.paint(c.clipped(cov), image.NewUniform(col.Color()))
	return nil
}

// DrawBacking paints src through the interior of p. src is aligned with
// the destination image, not with the current translation, the way a
// backing view shows whatever lies behind the key.
func (c *Canvas) DrawBacking(p *keyshape.Path, src image.Image) error {
	if p == nil || src == nil {
		return nil
	}
	c.paint(c.clipped(c.ras.fill(c.state.dx, c.state.dy, p)), src)
	return nil
}

// clipped applies the current clip to cov.
func (c *Canvas) clipped(cov *image.Alpha) *image.Alpha {
	if c.state.clip == nil {
		return cov
	}
	return alpha.Intersect(cov, c.state.clip)
}

func (c *Canvas) paint(cov *image.Alpha, src image.Image) {
	b := c.dst.Bounds()
	draw.DrawMask(c.dst, b, src, b.Min, cov, b.Min, draw.Over)
}
