package keyshape

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Background is the painted shape behind one key.
//
// Setters never draw. Geometry-affecting setters (bounds, radius, offset,
// attachment) mark the geometry stale; cosmetic setters (colors, layers)
// only request a repaint. The host calls Update from its render scheduling
// callback to learn whether a repaint is due, and Draw to paint. Draw
// regenerates stale geometry first, so a frame never sees a half-applied
// change.
//
// Background is NOT safe for concurrent use; it belongs to the rendering
// thread of its host.
type Background struct {
	radius float64
	offset float64
	style  Style

	width, height float64
	hasBounds     bool

	attached Attachment
	geom     *Geometry

	geometryDirty bool
	paintDirty    bool
}

// New creates a Background with the given options applied over the
// defaults. It has no bounds yet, so it draws nothing until SetBounds.
func New(opts ...Option) *Background {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Background{
		radius:        o.cornerRadius,
		offset:        o.underOffset,
		style:         o.style,
		attached:      o.attachment,
		geometryDirty: true,
		paintDirty:    true,
	}
}

// SetBounds records the key size. It reports whether anything changed:
// repeating the last recorded size is a no-op, so layout passes that do
// not resize the key cost nothing.
func (b *Background) SetBounds(width, height float64) bool {
	if b.hasBounds && b.width == width && b.height == height {
		return false
	}
	b.width, b.height = width, height
	b.hasBounds = true
	b.invalidateGeometry()
	return true
}

// Bounds returns the last recorded size.
func (b *Background) Bounds() (width, height float64) {
	return b.width, b.height
}

// SetCornerRadius sets the corner radius. Negative values are treated as 0.
func (b *Background) SetCornerRadius(r float64) {
	r = nonNegative(r)
	if r == b.radius {
		return
	}
	b.radius = r
	b.invalidateGeometry()
}

// CornerRadius returns the corner radius.
func (b *Background) CornerRadius() float64 {
	return b.radius
}

// SetUnderOffset sets the height of the under lip. Negative values are
// treated as 0.
func (b *Background) SetUnderOffset(offset float64) {
	offset = nonNegative(offset)
	if offset == b.offset {
		return
	}
	b.offset = offset
	b.invalidateGeometry()
}

// UnderOffset returns the height of the under lip.
func (b *Background) UnderOffset() float64 {
	return b.offset
}

// SetColors sets the face, lip and border colors.
func (b *Background) SetColors(main, under, border gg.RGBA) {
	b.style.Color = main
	b.style.UnderColor = under
	b.style.BorderColor = border
	b.paintDirty = true
}

// SetLayers selects which layers are painted.
func (b *Background) SetLayers(under, over, border bool) {
	b.style.DrawUnder = under
	b.style.DrawOver = over
	b.style.DrawBorder = border
	b.paintDirty = true
}

// SetBorderWidth sets the stroke width of the border layer.
func (b *Background) SetBorderWidth(width float64) {
	b.style.BorderWidth = nonNegative(width)
	b.paintDirty = true
}

// Style returns the cosmetic state.
func (b *Background) Style() Style {
	return b.style
}

// Attach suppresses side a, or no side for Detached. The geometry is
// rebuilt and a repaint requested.
func (b *Background) Attach(a Attachment) {
	b.attached = a
	b.invalidateGeometry()
}

// AttachmentDirection returns the current attachment state.
func (b *Background) AttachmentDirection() Attachment {
	return b.attached
}

// AttachmentPoints returns where a neighbour attached on side d meets this
// key. ok is false while the key has no geometry (no bounds yet, or empty
// bounds).
func (b *Background) AttachmentPoints(d Direction) (p0, p1 gg.Point, ok bool) {
	g := b.Geometry()
	if g == nil {
		return gg.Point{}, gg.Point{}, false
	}
	p0, p1 = g.AttachmentPoints(d)
	return p0, p1, true
}

// Geometry returns the current outline snapshot, rebuilding it first if an
// input changed. It is nil while the bounds are empty.
func (b *Background) Geometry() *Geometry {
	b.regenerate()
	return b.geom
}

// FillPath returns the current silhouette, for hosts that mask a backing
// surface with it. It is nil while the bounds are empty.
func (b *Background) FillPath() *Path {
	if g := b.Geometry(); g != nil {
		return g.FillPath()
	}
	return nil
}

// Update brings the geometry up to date and reports whether a repaint is
// due. The repaint request is consumed.
func (b *Background) Update() bool {
	b.regenerate()
	repaint := b.paintDirty
	b.paintDirty = false
	return repaint
}

// NeedsDisplay reports whether a repaint has been requested since the last
// Update or Draw.
func (b *Background) NeedsDisplay() bool {
	return b.paintDirty || b.geometryDirty
}

// Draw paints one frame onto c. Without geometry it draws nothing and
// returns nil.
func (b *Background) Draw(c Canvas) error {
	b.regenerate()
	b.paintDirty = false
	return Render(c, b.geom, b.style)
}

func (b *Background) invalidateGeometry() {
	b.geometryDirty = true
	b.paintDirty = true
}

// regenerate rebuilds the geometry when stale. The new snapshot replaces
// the old one in a single assignment.
func (b *Background) regenerate() {
	if !b.geometryDirty {
		return
	}
	b.geometryDirty = false

	if !b.hasBounds || b.width <= 0 || b.height <= 0 {
		b.geom = nil
		Logger().Debug("keyshape: geometry skipped, empty bounds",
			slog.Float64("width", b.width), slog.Float64("height", b.height))
		return
	}

	b.geom = Generate(Params{
		Width:        b.width,
		Height:       b.height,
		CornerRadius: b.radius,
		UnderOffset:  b.offset,
		Attachment:   b.attached,
	})
	Logger().Debug("keyshape: geometry regenerated",
		slog.Float64("width", b.width),
		slog.Float64("height", b.height),
		slog.Float64("radius", b.radius),
		slog.Float64("offset", b.offset),
		slog.String("attached", b.attached.String()))
}
