package keyshape

import "github.com/gogpu/gg"

// Canvas is the drawing surface the layered renderer paints on.
//
// Implementations keep a state stack: Push saves the current translation
// and clip region, Pop restores them. Clip regions only ever shrink between
// a Push and its Pop.
//
// Available implementations:
//   - raster.Canvas: software rasterizer with exact clip masks
//   - ggcanvas.Canvas: forwards to a *gg.Context
//   - recording.Canvas: records gg commands for inspection
type Canvas interface {
	// Push saves the current state.
	Push()

	// Pop restores the last saved state. Pop on an empty stack is a no-op.
	Pop()

	// Translate moves the origin for subsequent operations.
	Translate(x, y float64)

	// ClipPath intersects the clip region with the area enclosed by paths
	// taken together under rule.
	ClipPath(rule gg.FillRule, paths ...*Path)

	// FillPath fills p with c using the non-zero rule.
	FillPath(p *Path, c gg.RGBA) error

	// StrokePath strokes p with c at the given line width.
	StrokePath(p *Path, c gg.RGBA, width float64) error
}
