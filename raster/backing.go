package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Soften returns a blurred copy of src, made by scaling it down by factor
// and back up. It stands in for the translucent blur some hosts put under
// a key; factors below 2 return a plain copy.
func Soften(src image.Image, factor int) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(b)
	if factor < 2 || b.Dx() < factor || b.Dy() < factor {
		draw.Draw(out, b, src, b.Min, draw.Src)
		return out
	}

	small := image.NewRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	draw.BiLinear.Scale(small, small.Bounds(), src, b, draw.Src, nil)
	draw.CatmullRom.Scale(out, b, small, small.Bounds(), draw.Src, nil)
	return out
}
