// Package raster is a software Canvas for keyshape built on
// golang.org/x/image/vector.
//
// Every fill, stroke and clip is rasterized into an anti-aliased coverage
// mask. Clip regions are kept as masks on a state stack and multiplied into
// each drawing operation, so clipping is exact under both fill rules:
//
//	c := raster.NewCanvas(100, 44)
//	c.Clear(gg.Hex("#d1d5db"))
//	bg.Draw(c)
//	png.Encode(w, c.Image())
//
// Besides the Canvas, the package offers PathMask to turn a key silhouette
// into an *image.Alpha, and Soften to build a blurred stand-in for a
// translucent backing surface that Canvas.DrawBacking paints through a key.
package raster
