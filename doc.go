// Package keyshape computes and paints the background of a single keyboard
// key: a rounded rectangle that can suppress one of its sides so that two
// neighbouring keys merge into one continuous shape.
//
// # Overview
//
// The package is split into a geometry half and a painting half:
//
//   - [Generate] turns bounds, a corner radius, an under offset and an
//     [Attachment] into an immutable [Geometry]: one closed fill path and up
//     to four open edge paths.
//   - [Render] paints a Geometry onto any [Canvas] in a fixed layer order:
//     the under lip, the face fill, then the border strokes.
//   - [Background] ties both together with the dirty-flag bookkeeping a host
//     view needs: geometry-affecting setters mark the geometry stale, cosmetic
//     setters only request a repaint.
//
// # Quick Start
//
//	bg := keyshape.New(keyshape.WithCornerRadius(5))
//	bg.SetBounds(100, 44)
//	bg.Attach(keyshape.AttachedTo(keyshape.Up))
//
//	c := raster.NewCanvas(100, 44)
//	if err := bg.Draw(c); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate System
//
// Same convention as gg: origin at the top-left, X grows right, Y grows
// down, angles in radians with positive sweeps turning clockwise on screen.
//
// # Edges and Corners
//
// Edges are indexed by [Direction]: Left=0, Up=1, Right=2, Down=3. Edge i
// runs from base corner i to base corner i+1, where the base corners are
// bottom-left, top-left, top-right and bottom-right. The arc at corner i
// joins edge i-1 to edge i.
//
// # Concurrency
//
// Nothing in this package starts goroutines or blocks. A Background is meant
// to be owned by the rendering thread; Geometry and Path values are
// immutable once built and may be shared freely.
package keyshape
