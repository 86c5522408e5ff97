package keyshape

import (
	"math"

	"github.com/gogpu/gg"
)

// Params are the inputs of the shape generator.
type Params struct {
	// Width and Height are the full bounds of the key, lip included.
	Width, Height float64

	// CornerRadius is conventionally at most min(Width, Height)/2; larger
	// values are not clamped and produce overlapping corners.
	CornerRadius float64

	// UnderOffset is the strip reserved at the bottom for the under lip.
	UnderOffset float64

	// Attachment selects the suppressed side, if any.
	Attachment Attachment
}

// Segment is the straight part of one edge after both ends have been
// pulled in by the corner radius.
type Segment struct {
	Start, End gg.Point
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Corner describes the quarter arc at one base corner. The arc at corner i
// joins edge i-1 to edge i and always sweeps +pi/2.
type Corner struct {
	Center     gg.Point
	StartAngle float64
}

// Geometry is an immutable snapshot of a key's outline. A new Geometry is
// built for every change of bounds, radius, offset or attachment; existing
// snapshots are never modified.
type Geometry struct {
	params   Params
	base     [directionCount]gg.Point
	segments [directionCount]Segment
	corners  [directionCount]Corner
	fill     *Path
	edges    []*Path
}

// cornerSetup gives, per base corner, the inset direction of the edge that
// starts there and the start angle of the arc at that corner.
var cornerSetup = [directionCount]struct {
	xDir, yDir float64
	angle      float64
}{
	{xDir: 0, yDir: -1, angle: math.Pi / 2}, // bottom-left, left edge runs up
	{xDir: 1, yDir: 0, angle: math.Pi},      // top-left, top edge runs right
	{xDir: 0, yDir: 1, angle: -math.Pi / 2}, // top-right, right edge runs down
	{xDir: -1, yDir: 0, angle: 0},           // bottom-right, bottom edge runs left
}

// Generate computes the outline for p. It returns nil when either
// dimension is not positive, since no outline exists for empty bounds.
func Generate(p Params) *Geometry {
	if p.Width <= 0 || p.Height <= 0 {
		return nil
	}

	w := p.Width
	h := p.Height - p.UnderOffset
	r := p.CornerRadius
	o := p.UnderOffset

	g := &Geometry{
		params: p,
		base: [directionCount]gg.Point{
			gg.Pt(0, h),
			gg.Pt(0, 0),
			gg.Pt(w, 0),
			gg.Pt(w, h),
		},
	}

	for i := range directionCount {
		cur := g.base[i]
		next := g.base[(i+1)%directionCount]
		setup := cornerSetup[i]

		p0 := gg.Pt(cur.X+setup.xDir*r, cur.Y+o+setup.yDir*r)
		p1 := gg.Pt(next.X-setup.xDir*r, next.Y+o-setup.yDir*r)
		g.segments[i] = Segment{Start: p0, End: p1}

		// The arc center sits on the inward side of the segment's start.
		g.corners[i] = Corner{
			Center:     gg.Pt(p0.X-setup.yDir*r, p0.Y+setup.xDir*r),
			StartAngle: setup.angle,
		}
	}

	g.fill, g.edges = g.assemble()
	return g
}

// assemble walks the edges in order, leaving out the attached edge and the
// arc that would lead into it. Edge i contributes its segment followed by
// the arc at corner i+1.
func (g *Geometry) assemble() (*Path, []*Path) {
	att := g.params.Attachment
	r := g.params.CornerRadius

	fill := NewPath()
	edges := make([]*Path, 0, directionCount)
	started := false
	// joined is true when the pen already rests on the next segment's start.
	joined := false

	for i := range directionCount {
		if att.Is(Direction(i)) {
			continue
		}
		seg := g.segments[i]

		edge := NewPath()
		edge.MoveTo(seg.Start)
		edge.LineTo(seg.End)

		switch {
		case !started:
			fill.MoveTo(seg.Start)
			started = true
		case !joined:
			fill.LineTo(seg.Start)
		}
		fill.LineTo(seg.End)

		next := (i + 1) % directionCount
		joined = false
		if !att.Is(Direction(next)) {
			c := g.corners[next]
			edge.Arc(c.Center, r, c.StartAngle, math.Pi/2)
			fill.Arc(c.Center, r, c.StartAngle, math.Pi/2)
			joined = true
		}

		edges = append(edges, edge)
	}
	fill.Close()

	return fill, edges
}

// Params returns the inputs the geometry was built from.
func (g *Geometry) Params() Params {
	return g.params
}

// FillPath returns the closed silhouette of the key face.
func (g *Geometry) FillPath() *Path {
	return g.fill
}

// EdgePaths returns one open path per non-attached edge, in edge order.
func (g *Geometry) EdgePaths() []*Path {
	return g.edges
}

// Segment returns the inset straight part of edge d, whether or not d is
// attached.
func (g *Geometry) Segment(d Direction) Segment {
	return g.segments[d.index()]
}

// Corner returns the arc description of base corner i (0 bottom-left,
// 1 top-left, 2 top-right, 3 bottom-right).
func (g *Geometry) Corner(i int) Corner {
	return g.corners[i%directionCount]
}

// Bounds returns the bounding box of the fill path.
func (g *Geometry) Bounds() gg.Rect {
	return g.fill.Bounds()
}

// AttachmentPoints returns the two points where a neighbour attached on
// side d meets this key, in the face's coordinate frame (the under offset
// removed). They come from the stored segments of the sides next to d, so
// they do not depend on the current attachment.
func (g *Geometry) AttachmentPoints(d Direction) (gg.Point, gg.Point) {
	a := g.segments[d.Clockwise().index()].Start
	b := g.segments[d.Counterclockwise().index()].End
	o := g.params.UnderOffset
	return gg.Pt(a.X, a.Y-o), gg.Pt(b.X, b.Y-o)
}
