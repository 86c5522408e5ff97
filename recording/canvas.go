package recording

import (
	"github.com/gogpu/gg"
	ggrec "github.com/gogpu/gg/recording"

	"github.com/keyforge/keyshape"
)

var _ keyshape.Canvas = (*Canvas)(nil)

// Canvas records keyshape drawing into a gg recording.Recorder.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	rec *ggrec.Recorder
}

// NewCanvas creates a canvas recording into a new width x height Recorder.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{rec: ggrec.NewRecorder(width, height)}
}

// Recorder returns the underlying gg recorder.
func (c *Canvas) Recorder() *ggrec.Recorder {
	return c.rec
}

// Finish returns the recording. The canvas must not be used afterwards.
func (c *Canvas) Finish() *ggrec.Recording {
	return c.rec.FinishRecording()
}

// Push records a Save.
func (c *Canvas) Push() {
	c.rec.Push()
}

// Pop records a Restore.
func (c *Canvas) Pop() {
	c.rec.Pop()
}

// Translate records the updated transform.
func (c *Canvas) Translate(x, y float64) {
	c.rec.Translate(x, y)
}

// ClipPath records one SetClip command whose path holds all of paths.
func (c *Canvas) ClipPath(rule gg.FillRule, paths ...*keyshape.Path) {
	c.rec.ClearPath()
	for _, p := range paths {
		if p != nil {
			p.Emit(c.rec)
		}
	}
	c.rec.SetFillRuleGG(rule)
	c.rec.Clip()
}

// FillPath records a non-zero FillPath command in col.
func (c *Canvas) FillPath(p *keyshape.Path, col gg.RGBA) error {
	if p == nil {
		return nil
	}
	c.rec.ClearPath()
	p.Emit(c.rec)
	c.rec.SetFillRuleGG(gg.FillRuleNonZero)
	c.rec.SetFillStyle(ggrec.NewSolidBrush(col))
	c.rec.Fill()
	return nil
}

// StrokePath records a StrokePath command in col at width.
func (c *Canvas) StrokePath(p *keyshape.Path, col gg.RGBA, width float64) error {
	if p == nil || width <= 0 {
		return nil
	}
	c.rec.ClearPath()
	p.Emit(c.rec)
	c.rec.SetStrokeStyle(ggrec.NewSolidBrush(col))
	c.rec.SetLineWidth(width)
	c.rec.Stroke()
	return nil
}

// Count returns how many commands of type t the recording holds.
func Count(r *ggrec.Recording, t ggrec.CommandType) int {
	n := 0
	for _, cmd := range r.Commands() {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Types returns the command types of r in order, skipping style commands
// (fill style, stroke style, line width, fill rule) that only decorate the
// drawing commands that follow them.
func Types(r *ggrec.Recording) []ggrec.CommandType {
	types := make([]ggrec.CommandType, 0, len(r.Commands()))
	for _, cmd := range r.Commands() {
		switch cmd.Type() {
		case ggrec.CmdSetFillStyle, ggrec.CmdSetStrokeStyle,
			ggrec.CmdSetLineWidth, ggrec.CmdSetFillRule:
			continue
		}
		types = append(types, cmd.Type())
	}
	return types
}
