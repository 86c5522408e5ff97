// Package recording captures keyshape drawing as gg recording commands.
//
// Canvas forwards every keyshape operation to a gg recording.Recorder, so a
// frame becomes an inspectable list of typed commands (SaveCommand,
// SetClipCommand, FillPathCommand, StrokePathCommand, ...). The command
// list can be replayed to any gg recording backend, and it is the oracle
// for draw-order tests:
//
//	c := recording.NewCanvas(100, 44)
//	bg.Draw(c)
//	r := c.Finish()
//	fills := recording.Count(r, ggrec.CmdFillPath)
package recording
