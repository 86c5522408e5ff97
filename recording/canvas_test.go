package recording

import (
	"testing"

	"github.com/gogpu/gg"
	ggrec "github.com/gogpu/gg/recording"

	"github.com/keyforge/keyshape"
)

func square() *keyshape.Path {
	p := keyshape.NewPath()
	p.MoveTo(gg.Pt(0, 0))
	p.LineTo(gg.Pt(10, 0))
	p.LineTo(gg.Pt(10, 10))
	p.Close()
	return p
}

func TestCanvasRecordsCommands(t *testing.T) {
	c := NewCanvas(20, 20)
	if c.Recorder() == nil {
		t.Fatal("Recorder() = nil")
	}

	c.Push()
	c.Translate(2, 3)
	c.ClipPath(gg.FillRuleEvenOdd, square(), nil, square())
	if err := c.FillPath(square(), gg.White); err != nil {
		t.Fatal(err)
	}
	if err := c.StrokePath(square(), gg.Black, 1.5); err != nil {
		t.Fatal(err)
	}
	c.Pop()
	r := c.Finish()

	want := []ggrec.CommandType{
		ggrec.CmdSave, ggrec.CmdSetTransform, ggrec.CmdSetClip,
		ggrec.CmdFillPath, ggrec.CmdStrokePath, ggrec.CmdRestore,
	}
	got := Types(r)
	if len(got) != len(want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}

	for _, cmd := range r.Commands() {
		switch v := cmd.(type) {
		case ggrec.SetClipCommand:
			if v.Rule != ggrec.FillRuleEvenOdd {
				t.Errorf("clip rule = %v, want even-odd", v.Rule)
			}
		case ggrec.FillPathCommand:
			if v.Rule != ggrec.FillRuleNonZero {
				t.Errorf("fill rule = %v, want non-zero", v.Rule)
			}
		case ggrec.StrokePathCommand:
			if v.Stroke.Width != 1.5 {
				t.Errorf("stroke width = %v, want 1.5", v.Stroke.Width)
			}
		}
	}
}

func TestCanvasSkipsEmptyDraws(t *testing.T) {
	c := NewCanvas(20, 20)
	if err := c.FillPath(nil, gg.White); err != nil {
		t.Fatal(err)
	}
	if err := c.StrokePath(square(), gg.Black, 0); err != nil {
		t.Fatal(err)
	}
	c.ClipPath(gg.FillRuleNonZero)
	r := c.Finish()

	if n := Count(r, ggrec.CmdFillPath) + Count(r, ggrec.CmdStrokePath) + Count(r, ggrec.CmdSetClip); n != 0 {
		t.Errorf("recorded %d drawing commands, want 0", n)
	}
}
