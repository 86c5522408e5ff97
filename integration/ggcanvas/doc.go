// Copyright 2026 The keyshape Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas paints keyshape backgrounds onto a gg.Context.
//
// The adapter maps the keyshape Canvas contract onto gg's immediate-mode
// API: Push/Pop/Translate forward directly, paths are replayed through
// gg's MoveTo/LineTo/CubicTo, and fills, strokes and clips use gg's brush,
// line width and fill rule state.
//
// # Usage
//
//	dc := gg.NewContext(200, 100)
//	bg := keyshape.New()
//	bg.SetBounds(100, 44)
//
//	c := ggcanvas.New(dc)
//	c.Translate(50, 28)
//	if err := bg.Draw(c); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("key.png")
//
// # Clipping
//
// Clip regions are handed to gg.Context.Clip with the requested fill rule.
// How faithfully they are applied depends on the gg renderer in use; use
// the raster package when exact clipping matters, for example in pixel
// comparison tests.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use, like the gg.Context it wraps.
package ggcanvas
