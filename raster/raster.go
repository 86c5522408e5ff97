package raster

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/vector"

	"github.com/keyforge/keyshape"
	"github.com/keyforge/keyshape/internal/alpha"
)

// DefaultTolerance is the maximum distance, in pixels, between a stroked
// arc and the chords that approximate it.
const DefaultTolerance = 0.1

// sink feeds keyshape paths into a vector.Rasterizer, offset by (dx, dy).
// x/image/vector does not close subpaths on its own, so sink closes every
// open subpath before the next MoveTo and at the end.
type sink struct {
	z      *vector.Rasterizer
	dx, dy float64
	open   bool
}

func (s *sink) MoveTo(x, y float64) {
	if s.open {
		s.z.ClosePath()
	}
	s.z.MoveTo(float32(x+s.dx), float32(y+s.dy))
	s.open = true
}

func (s *sink) LineTo(x, y float64) {
	s.z.LineTo(float32(x+s.dx), float32(y+s.dy))
}

func (s *sink) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.z.CubeTo(
		float32(c1x+s.dx), float32(c1y+s.dy),
		float32(c2x+s.dx), float32(c2y+s.dy),
		float32(x+s.dx), float32(y+s.dy),
	)
}

func (s *sink) ClosePath() {
	s.z.ClosePath()
	s.open = false
}

func (s *sink) finish() {
	if s.open {
		s.z.ClosePath()
		s.open = false
	}
}

// rasterizer renders paths into coverage masks covering bounds. Device
// point (x, y) maps to rasterizer point (x - bounds.Min.X, y - bounds.Min.Y).
type rasterizer struct {
	z      vector.Rasterizer
	bounds image.Rectangle
}

func (r *rasterizer) reset() {
	r.z.Reset(r.bounds.Dx(), r.bounds.Dy())
}

func (r *rasterizer) mask() *image.Alpha {
	m := image.NewAlpha(r.bounds)
	r.z.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	return m
}

// fill returns the non-zero coverage of paths translated by (dx, dy).
func (r *rasterizer) fill(dx, dy float64, paths ...*keyshape.Path) *image.Alpha {
	r.reset()
	s := &sink{
		z:  &r.z,
		dx: dx - float64(r.bounds.Min.X),
		dy: dy - float64(r.bounds.Min.Y),
	}
	for _, p := range paths {
		if p == nil {
			continue
		}
		p.Emit(s)
		s.finish()
	}
	return r.mask()
}

// fillRule returns the coverage of paths taken together under rule. The
// even-odd combination is built path by path, so each path must not
// intersect itself.
func (r *rasterizer) fillRule(rule gg.FillRule, dx, dy float64, paths ...*keyshape.Path) *image.Alpha {
	if rule != gg.FillRuleEvenOdd || len(paths) < 2 {
		return r.fill(dx, dy, paths...)
	}
	cov := r.fill(dx, dy, paths[0])
	for _, p := range paths[1:] {
		cov = alpha.Xor(cov, r.fill(dx, dy, p))
	}
	return cov
}

// stroke returns the coverage of p stroked at width with butt ends. Each
// flattened segment becomes a quad; all quads share one winding so that
// overlaps at joints add up instead of cancelling.
func (r *rasterizer) stroke(p *keyshape.Path, width, tolerance, dx, dy float64) *image.Alpha {
	r.reset()
	hw := width / 2
	ox := dx - float64(r.bounds.Min.X)
	oy := dy - float64(r.bounds.Min.Y)

	for _, line := range p.Flatten(tolerance) {
		for i := 1; i < len(line); i++ {
			a, b := line[i-1], line[i]
			d := b.Sub(a)
			l := d.Length()
			if l == 0 {
				continue
			}
			n := gg.Pt(-d.Y/l*hw, d.X/l*hw)
			quad := [4]gg.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
			r.z.MoveTo(float32(quad[0].X+ox), float32(quad[0].Y+oy))
			for _, q := range quad[1:] {
				r.z.LineTo(float32(q.X+ox), float32(q.Y+oy))
			}
			r.z.ClosePath()
		}
	}
	return r.mask()
}

// PathMask rasterizes the non-zero interior of p into a width x height
// coverage mask. It is the software counterpart of masking a backing view
// with a key's fill path.
func PathMask(p *keyshape.Path, width, height int) *image.Alpha {
	r := &rasterizer{bounds: image.Rect(0, 0, width, height)}
	return r.fill(0, 0, p)
}

// Coverage returns the mask value at (x, y) scaled to [0, 1].
func Coverage(m *image.Alpha, x, y int) float64 {
	return float64(m.AlphaAt(x, y).A) / math.MaxUint8
}
