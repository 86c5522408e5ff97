// Package alpha combines coverage masks stored as *image.Alpha.
//
// Coverage values range from 0 (outside) to 255 (fully inside). All
// functions return a new mask and leave their inputs untouched, so a mask
// saved on a state stack stays valid after later clips.
package alpha

import (
	"image"

	"golang.org/x/image/draw"
)

// mul255 multiplies two coverage values, rounding to nearest.
func mul255(a, b uint8) uint8 {
	v := uint32(a)*uint32(b) + 128
	// #nosec G115 -- (v + v>>8) >> 8 is always within [0, 255]
	return uint8((v + v>>8) >> 8)
}

// Intersect returns the pixelwise product of a and b over a's bounds.
// Pixels of a outside b's bounds become 0.
func Intersect(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Rect)
	draw.DrawMask(out, a.Rect, a, a.Rect.Min, b, a.Rect.Min, draw.Src)
	return out
}

// Xor returns the exclusive union of a and b over a's bounds: coverage
// a + b - 2ab. For fully covered or empty pixels this is exactly the
// even-odd combination of the two shapes. x/image/draw has no xor
// operator, so the combination is computed per pixel.
func Xor(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Rect)
	for y := a.Rect.Min.Y; y < a.Rect.Max.Y; y++ {
		for x := a.Rect.Min.X; x < a.Rect.Max.X; x++ {
			av := a.Pix[a.PixOffset(x, y)]
			var bv uint8
			if (image.Point{X: x, Y: y}).In(b.Rect) {
				bv = b.Pix[b.PixOffset(x, y)]
			}
			v := int(av) + int(bv) - 2*int(mul255(av, bv))
			out.Pix[out.PixOffset(x, y)] = uint8(max(0, min(255, v)))
		}
	}
	return out
}

// Empty reports whether every pixel of m is 0.
func Empty(m *image.Alpha) bool {
	for _, v := range m.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}
