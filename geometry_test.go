package keyshape

import (
	"math"
	"reflect"
	"testing"

	"github.com/gogpu/gg"
)

// countElements returns the number of LineTo, ArcTo and Close elements.
func countElements(p *Path) (lines, arcs, closes int) {
	for _, e := range p.Elements() {
		switch e.(type) {
		case LineTo:
			lines++
		case ArcTo:
			arcs++
		case Close:
			closes++
		}
	}
	return lines, arcs, closes
}

func keyParams() Params {
	return Params{Width: 100, Height: 44, CornerRadius: 5, UnderOffset: 1}
}

func TestGenerateEmptyBounds(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 44},
		{"zero height", 40, 0},
		{"negative", -1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := keyParams()
			p.Width, p.Height = tt.w, tt.h
			if g := Generate(p); g != nil {
				t.Errorf("Generate(%vx%v) = %v, want nil", tt.w, tt.h, g)
			}
		})
	}
}

func TestGenerateDetached(t *testing.T) {
	g := Generate(keyParams())
	if g == nil {
		t.Fatal("Generate() = nil")
	}

	fill := g.FillPath()
	lines, arcs, closes := countElements(fill)
	if lines != 4 || arcs != 4 || closes != 1 {
		t.Errorf("fill path has %d lines, %d arcs, %d closes, want 4, 4, 1", lines, arcs, closes)
	}
	if _, ok := fill.Elements()[0].(MoveTo); !ok {
		t.Errorf("fill path starts with %T, want MoveTo", fill.Elements()[0])
	}

	edges := g.EdgePaths()
	if len(edges) != 4 {
		t.Fatalf("len(EdgePaths()) = %d, want 4", len(edges))
	}
	for i, e := range edges {
		lines, arcs, closes := countElements(e)
		if lines != 1 || arcs != 1 || closes != 0 {
			t.Errorf("edge %d has %d lines, %d arcs, %d closes, want 1, 1, 0", i, lines, arcs, closes)
		}
	}

	b := g.Bounds()
	want := gg.Rect{Min: gg.Pt(0, 1), Max: gg.Pt(100, 44)}
	if !nearPt(b.Min, want.Min) || !nearPt(b.Max, want.Max) {
		t.Errorf("Bounds() = %v, want %v", b, want)
	}
}

func TestGenerateSegments(t *testing.T) {
	g := Generate(keyParams())
	tests := []struct {
		d          Direction
		start, end gg.Point
	}{
		{Left, gg.Pt(0, 39), gg.Pt(0, 6)},
		{Up, gg.Pt(5, 1), gg.Pt(95, 1)},
		{Right, gg.Pt(100, 6), gg.Pt(100, 39)},
		{Down, gg.Pt(95, 44), gg.Pt(5, 44)},
	}
	for _, tt := range tests {
		s := g.Segment(tt.d)
		if !nearPt(s.Start, tt.start) || !nearPt(s.End, tt.end) {
			t.Errorf("Segment(%v) = %v -> %v, want %v -> %v", tt.d, s.Start, s.End, tt.start, tt.end)
		}
	}
}

func TestGenerateCornersJoinSegments(t *testing.T) {
	g := Generate(keyParams())
	r := g.Params().CornerRadius
	for i := range directionCount {
		c := g.Corner(i)
		arc := ArcTo{Center: c.Center, Radius: r, Start: c.StartAngle, Sweep: math.Pi / 2}
		prev := g.Segment(Direction((i + directionCount - 1) % directionCount))
		cur := g.Segment(Direction(i))
		if !nearPt(arc.StartPoint(), prev.End) {
			t.Errorf("corner %d starts at %v, want end of previous edge %v", i, arc.StartPoint(), prev.End)
		}
		if !nearPt(arc.EndPoint(), cur.Start) {
			t.Errorf("corner %d ends at %v, want start of edge %v", i, arc.EndPoint(), cur.Start)
		}
	}
}

func TestGenerateAttached(t *testing.T) {
	tests := []struct {
		d         Direction
		fillLines int
	}{
		// A chord closes the gap explicitly unless Close does it.
		{Left, 3},
		{Up, 4},
		{Right, 4},
		{Down, 3},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			p := keyParams()
			p.Attachment = AttachedTo(tt.d)
			g := Generate(p)

			edges := g.EdgePaths()
			if len(edges) != 3 {
				t.Fatalf("len(EdgePaths()) = %d, want 3", len(edges))
			}
			edgeArcs := 0
			for _, e := range edges {
				_, arcs, _ := countElements(e)
				edgeArcs += arcs
			}
			if edgeArcs != 2 {
				t.Errorf("edges hold %d arcs, want 2", edgeArcs)
			}

			lines, arcs, closes := countElements(g.FillPath())
			if lines != tt.fillLines || arcs != 2 || closes != 1 {
				t.Errorf("fill path has %d lines, %d arcs, %d closes, want %d, 2, 1",
					lines, arcs, closes, tt.fillLines)
			}

			// The suppressed segment is not part of any edge.
			s := g.Segment(tt.d)
			for i, e := range edges {
				for _, el := range e.Elements() {
					if l, ok := el.(LineTo); ok && nearPt(l.Point, s.End) {
						if m, ok := e.Elements()[0].(MoveTo); ok && nearPt(m.Point, s.Start) {
							t.Errorf("edge %d draws the attached side %v", i, tt.d)
						}
					}
				}
			}
		})
	}
}

func TestAttachmentPoints(t *testing.T) {
	tests := []struct {
		d      Direction
		p0, p1 gg.Point
	}{
		{Left, gg.Pt(5, 0), gg.Pt(5, 43)},
		{Up, gg.Pt(100, 5), gg.Pt(0, 5)},
		{Right, gg.Pt(95, 43), gg.Pt(95, 0)},
		{Down, gg.Pt(0, 38), gg.Pt(100, 38)},
	}
	states := []Attachment{Detached, AttachedTo(Left), AttachedTo(Up), AttachedTo(Right), AttachedTo(Down)}
	for _, tt := range tests {
		for _, a := range states {
			p := keyParams()
			p.Attachment = a
			p0, p1 := Generate(p).AttachmentPoints(tt.d)
			if !nearPt(p0, tt.p0) || !nearPt(p1, tt.p1) {
				t.Errorf("attached %v: AttachmentPoints(%v) = %v, %v, want %v, %v",
					a, tt.d, p0, p1, tt.p0, tt.p1)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, a := range []Attachment{Detached, AttachedTo(Up), AttachedTo(Down)} {
		p := keyParams()
		p.Attachment = a
		if !reflect.DeepEqual(Generate(p), Generate(p)) {
			t.Errorf("attached %v: Generate is not deterministic", a)
		}
	}
}

func TestGenerateRadiusShortensSegments(t *testing.T) {
	prev := math.Inf(1)
	for _, r := range []float64{0, 2, 5, 10, 20, 21.5} {
		p := keyParams()
		p.CornerRadius = r
		g := Generate(p)
		top := g.Segment(Up).Length()
		if !near(top, 100-2*r) {
			t.Errorf("radius %v: top segment length = %v, want %v", r, top, 100-2*r)
		}
		if left := g.Segment(Left).Length(); !near(left, 43-2*r) {
			t.Errorf("radius %v: left segment length = %v, want %v", r, left, 43-2*r)
		}
		if top >= prev {
			t.Errorf("radius %v: top segment length %v did not shrink from %v", r, top, prev)
		}
		prev = top
	}
}

func TestGenerateSquareCorners(t *testing.T) {
	p := keyParams()
	p.CornerRadius = 0
	g := Generate(p)

	var s countingSink
	g.FillPath().Emit(&s)
	if s.cubics != 0 {
		t.Errorf("radius 0 emitted %d curves, want 0", s.cubics)
	}
	b := g.Bounds()
	if !nearPt(b.Min, gg.Pt(0, 1)) || !nearPt(b.Max, gg.Pt(100, 44)) {
		t.Errorf("Bounds() = %v, want (0,1)-(100,44)", b)
	}
}

func TestGenerateOffsetShiftsFace(t *testing.T) {
	for _, o := range []float64{0, 1, 3} {
		p := keyParams()
		p.UnderOffset = o
		b := Generate(p).Bounds()
		if !near(b.Min.Y, o) || !near(b.Max.Y, 44) {
			t.Errorf("offset %v: vertical extent = [%v, %v], want [%v, 44]", o, b.Min.Y, b.Max.Y, o)
		}
	}
}

func TestGenerateDegenerateSegments(t *testing.T) {
	// Face height is 44 - 1 = 43, so radius 21.5 consumes the vertical edges.
	states := []Attachment{Detached, AttachedTo(Left), AttachedTo(Up), AttachedTo(Right), AttachedTo(Down)}
	for _, a := range states {
		p := keyParams()
		p.CornerRadius = 21.5
		p.Attachment = a
		g := Generate(p)

		for _, d := range []Direction{Left, Right} {
			if l := g.Segment(d).Length(); !near(l, 0) {
				t.Errorf("attached %v: Segment(%v).Length() = %v, want 0", a, d, l)
			}
		}
		for _, d := range []Direction{Up, Down} {
			if l := g.Segment(d).Length(); !near(l, 100-43) {
				t.Errorf("attached %v: Segment(%v).Length() = %v, want 57", a, d, l)
			}
		}
		if a.IsAttached() {
			continue
		}
		if b := g.Bounds(); !nearPt(b.Min, gg.Pt(0, 1)) || !nearPt(b.Max, gg.Pt(100, 44)) {
			t.Errorf("Bounds() = %v, want (0,1)-(100,44)", b)
		}
	}
}
