package keyshape

import (
	"math"

	"github.com/gogpu/gg"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath without drawing.
type MoveTo struct {
	Point gg.Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point gg.Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a circular arc around Center, starting at angle Start and
// turning by Sweep radians. Positive sweeps turn clockwise on screen.
// Arcs are kept as a first-class element rather than flattened to curves so
// that the corner structure of a key stays inspectable.
type ArcTo struct {
	Center gg.Point
	Radius float64
	Start  float64
	Sweep  float64
}

func (ArcTo) isPathElement() {}

// StartPoint returns the point where the arc begins.
func (a ArcTo) StartPoint() gg.Point {
	return a.pointAt(a.Start)
}

// EndPoint returns the point where the arc ends.
func (a ArcTo) EndPoint() gg.Point {
	return a.pointAt(a.Start + a.Sweep)
}

func (a ArcTo) pointAt(angle float64) gg.Point {
	return gg.Pt(a.Center.X+a.Radius*math.Cos(angle), a.Center.Y+a.Radius*math.Sin(angle))
}

// Close closes the current subpath with a line back to its start.
type Close struct{}

func (Close) isPathElement() {}

// PathSink receives a path as move, line and cubic commands.
// *gg.Context and *recording.Recorder from gogpu/gg both satisfy it.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Path is a sequence of path elements. Paths handed out by a Geometry are
// snapshots: they are never modified after construction and callers must
// not modify them either.
type Path struct {
	elements []PathElement
	start    gg.Point
	current  gg.Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 12),
	}
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt gg.Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to pt.
func (p *Path) LineTo(pt gg.Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Arc appends a circular arc. The pen is expected to sit at the arc's start
// point; no connecting line is added.
func (p *Path) Arc(center gg.Point, radius, start, sweep float64) {
	a := ArcTo{Center: center, Radius: radius, Start: start, Sweep: sweep}
	p.elements = append(p.elements, a)
	p.current = a.EndPoint()
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() gg.Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// IsClosed reports whether the last element closes the path.
func (p *Path) IsClosed() bool {
	if len(p.elements) == 0 {
		return false
	}
	_, ok := p.elements[len(p.elements)-1].(Close)
	return ok
}

// Translate returns a copy of the path moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	d := gg.Pt(dx, dy)
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start.Add(d),
		current:  p.current.Add(d),
	}
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements[i] = MoveTo{Point: e.Point.Add(d)}
		case LineTo:
			result.elements[i] = LineTo{Point: e.Point.Add(d)}
		case ArcTo:
			e.Center = e.Center.Add(d)
			result.elements[i] = e
		case Close:
			result.elements[i] = e
		}
	}
	return result
}

// Bounds returns the tight axis-aligned bounding box of the path.
// An empty path has a zero Rect.
func (p *Path) Bounds() gg.Rect {
	var (
		r     gg.Rect
		empty = true
	)
	add := func(pt gg.Point) {
		if empty {
			r = gg.Rect{Min: pt, Max: pt}
			empty = false
			return
		}
		r.Min.X = math.Min(r.Min.X, pt.X)
		r.Min.Y = math.Min(r.Min.Y, pt.Y)
		r.Max.X = math.Max(r.Max.X, pt.X)
		r.Max.Y = math.Max(r.Max.Y, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case ArcTo:
			lo, hi := e.Start, e.Start+e.Sweep
			if lo > hi {
				lo, hi = hi, lo
			}
			add(e.pointAt(lo))
			add(e.pointAt(hi))
			// Axis crossings inside the sweep are the arc's extrema.
			const quarter = math.Pi / 2
			for k := math.Ceil(lo / quarter); k*quarter < hi; k++ {
				add(e.pointAt(k * quarter))
			}
		}
	}
	return r
}

// Emit replays the path into s. Arcs are converted to cubic Bezier curves
// of at most 90 degrees each; zero-radius arcs contribute nothing.
func (p *Path) Emit(s PathSink) {
	hasCurrent := false
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			s.MoveTo(e.Point.X, e.Point.Y)
			hasCurrent = true
		case LineTo:
			s.LineTo(e.Point.X, e.Point.Y)
			hasCurrent = true
		case ArcTo:
			if e.Radius <= 0 || e.Sweep == 0 {
				continue
			}
			if !hasCurrent {
				sp := e.StartPoint()
				s.MoveTo(sp.X, sp.Y)
				hasCurrent = true
			}
			emitArc(s, e)
		case Close:
			s.ClosePath()
		}
	}
}

// emitArc splits an arc into segments of at most 90 degrees.
func emitArc(s PathSink, a ArcTo) {
	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(a.Sweep)/maxAngle - 1e-9))
	if n < 1 {
		n = 1
	}
	step := a.Sweep / float64(n)
	for i := 0; i < n; i++ {
		a1 := a.Start + float64(i)*step
		arcSegment(s, a.Center.X, a.Center.Y, a.Radius, a1, a1+step)
	}
}

// arcSegment emits a single cubic approximating the arc from a1 to a2.
func arcSegment(s PathSink, cx, cy, r, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	s.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// Flatten converts the path to polylines, one per subpath, such that no
// point of an arc deviates from its chord by more than tolerance.
// Closed subpaths end with a repeat of their first point.
func (p *Path) Flatten(tolerance float64) [][]gg.Point {
	var (
		out   [][]gg.Point
		cur   []gg.Point
		start gg.Point
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			start = e.Point
			cur = []gg.Point{e.Point}
		case LineTo:
			if cur == nil {
				start = e.Point
			}
			cur = append(cur, e.Point)
		case ArcTo:
			if cur == nil {
				start = e.StartPoint()
				cur = []gg.Point{start}
			}
			n := arcSteps(e.Radius, e.Sweep, tolerance)
			for i := 1; i <= n; i++ {
				cur = append(cur, e.pointAt(e.Start+e.Sweep*float64(i)/float64(n)))
			}
		case Close:
			if len(cur) > 1 {
				cur = append(cur, start)
			}
			flush()
			cur = []gg.Point{start}
		}
	}
	flush()
	return out
}

// arcSteps returns how many chords approximate an arc within tolerance.
func arcSteps(radius, sweep, tolerance float64) int {
	if radius <= tolerance || tolerance <= 0 {
		return 1
	}
	theta := 2 * math.Acos(1-tolerance/radius)
	n := int(math.Ceil(math.Abs(sweep) / theta))
	if n < 1 {
		n = 1
	}
	return n
}
