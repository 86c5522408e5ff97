// Copyright 2026 The keyshape Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/keyforge/keyshape"
)

var _ keyshape.Canvas = (*Canvas)(nil)

// Canvas adapts a *gg.Context to keyshape.Canvas.
type Canvas struct {
	dc *gg.Context
}

// New wraps dc. The context keeps its current transform, which acts as the
// origin for everything drawn through the adapter.
func New(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// Context returns the wrapped gg context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Push saves the gg state (transform, clip, mask).
func (c *Canvas) Push() {
	c.dc.Push()
}

// Pop restores the last saved gg state.
func (c *Canvas) Pop() {
	c.dc.Pop()
}

// Translate applies a translation to the gg transform.
func (c *Canvas) Translate(x, y float64) {
	c.dc.Translate(x, y)
}

// ClipPath sets the union of paths as a gg clip region under rule. The
// fill rule is restored to non-zero afterwards.
func (c *Canvas) ClipPath(rule gg.FillRule, paths ...*keyshape.Path) {
	c.dc.ClearPath()
	for _, p := range paths {
		if p != nil {
			p.Emit(c.dc)
		}
	}
	c.dc.SetFillRule(rule)
	c.dc.Clip()
	c.dc.SetFillRule(gg.FillRuleNonZero)
}

// FillPath fills p with col.
func (c *Canvas) FillPath(p *keyshape.Path, col gg.RGBA) error {
	if p == nil {
		return nil
	}
	c.dc.ClearPath()
	p.Emit(c.dc)
	c.dc.SetFillRule(gg.FillRuleNonZero)
	c.dc.SetFillBrush(gg.Solid(col))
	if err := c.dc.Fill(); err != nil {
		keyshape.Logger().Warn("ggcanvas: fill failed", slog.Any("err", err))
		return err
	}
	return nil
}

// StrokePath strokes p with col at width.
func (c *Canvas) StrokePath(p *keyshape.Path, col gg.RGBA, width float64) error {
	if p == nil || width <= 0 {
		return nil
	}
	c.dc.ClearPath()
	p.Emit(c.dc)
	c.dc.SetStrokeBrush(gg.Solid(col))
	c.dc.SetLineWidth(width)
	if err := c.dc.Stroke(); err != nil {
		keyshape.Logger().Warn("ggcanvas: stroke failed", slog.Any("err", err))
		return err
	}
	return nil
}
