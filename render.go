package keyshape

import (
	"fmt"

	"github.com/gogpu/gg"
)

const defaultBorderWidth = 1

// Style holds the cosmetic inputs of the layered renderer.
type Style struct {
	Color       gg.RGBA // face fill
	UnderColor  gg.RGBA // lip below the face
	BorderColor gg.RGBA // edge strokes
	BorderWidth float64 // 0 or less draws 1 unit wide

	DrawUnder  bool
	DrawOver   bool
	DrawBorder bool
}

// DefaultStyle returns the look of a plain light key: white face, gray lip,
// black 1 unit border, with the border layer turned off.
func DefaultStyle() Style {
	return Style{
		Color:       gg.White,
		UnderColor:  gg.RGB(0.5, 0.5, 0.5),
		BorderColor: gg.Black,
		BorderWidth: defaultBorderWidth,
		DrawUnder:   true,
		DrawOver:    true,
		DrawBorder:  false,
	}
}

// Render paints one frame of g onto c in the order under, over, border.
// A nil geometry draws nothing and returns nil.
//
// The under layer is the face silhouette displaced down by the under
// offset, clipped so that only the part not covered by the face remains:
// a lip along the bottom edge. It is left out when the key is attached
// downwards. The face and its borders are then drawn one offset higher,
// at the true position of the face. Borders are clipped to the face, so
// they appear inset by half their width.
func Render(c Canvas, g *Geometry, s Style) error {
	if g == nil || g.fill == nil || g.edges == nil {
		Logger().Debug("keyshape: render skipped, no geometry")
		return nil
	}

	fill := g.fill
	offset := g.params.UnderOffset

	if s.DrawUnder && !g.params.Attachment.Is(Down) {
		c.Push()
		c.ClipPath(gg.FillRuleEvenOdd, fill.Translate(0, -offset), fill)
		err := c.FillPath(fill, s.UnderColor)
		c.Pop()
		if err != nil {
			return fmt.Errorf("keyshape: under layer: %w", err)
		}
	}

	c.Translate(0, -offset)
	err := renderFace(c, g, s)
	c.Translate(0, offset)
	return err
}

// renderFace draws the over and border layers in the face frame.
func renderFace(c Canvas, g *Geometry, s Style) error {
	c.Push()
	defer c.Pop()

	if s.DrawOver {
		c.ClipPath(gg.FillRuleNonZero, g.fill)
		if err := c.FillPath(g.fill, s.Color); err != nil {
			return fmt.Errorf("keyshape: over layer: %w", err)
		}
	}

	if s.DrawBorder {
		width := s.BorderWidth
		if width <= 0 {
			width = defaultBorderWidth
		}
		for i, edge := range g.edges {
			if err := c.StrokePath(edge, s.BorderColor, width); err != nil {
				return fmt.Errorf("keyshape: border %d: %w", i, err)
			}
		}
	}
	return nil
}
