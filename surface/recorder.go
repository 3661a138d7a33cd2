// seehuhn.de/go/tianzige - field-character practice sheets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package surface

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Op identifies a recorded drawing operation.
type Op int

// These are the drawing operations which can be recorded.
const (
	OpSetLineWidth Op = iota + 1
	OpSetLineDash
	OpSetStrokeGray
	OpSetFillGray
	OpPush
	OpPop
	OpLine
	OpSetFont
	OpShowText
)

func (op Op) String() string {
	switch op {
	case OpSetLineWidth:
		return "w"
	case OpSetLineDash:
		return "d"
	case OpSetStrokeGray:
		return "G"
	case OpSetFillGray:
		return "g"
	case OpPush:
		return "q"
	case OpPop:
		return "Q"
	case OpLine:
		return "line"
	case OpSetFont:
		return "Tf"
	case OpShowText:
		return "text"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Cmd is a recorded drawing operation, together with the graphics
// state which was in effect when the operation was recorded.
type Cmd struct {
	Op Op

	// Args holds the numeric arguments, in the order of the
	// corresponding Surface method.
	Args []float64

	// Text is the string for OpShowText and the font name for OpSetFont.
	Text  string
	Align Align

	State State
}

// State is the part of the graphics state tracked by a Recorder.
type State struct {
	LineWidth  float64
	Dash       []float64
	DashPhase  float64
	StrokeGray float64
	FillGray   float64
	Font       string
	FontSize   float64
}

// Recorder is a [Surface] which records all drawing operations.
// The zero value is a valid, empty recorder.
type Recorder struct {
	Cmds []Cmd
	Err  error

	State
	stack []State
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) record(op Op, args ...float64) {
	r.recordCmd(Cmd{Op: op, Args: args})
}

func (r *Recorder) recordCmd(cmd Cmd) {
	if r.Err != nil {
		return
	}
	cmd.State = r.State
	cmd.State.Dash = slices.Clone(r.Dash)
	r.Cmds = append(r.Cmds, cmd)
}

// SetLineWidth implements the [Surface] interface.
func (r *Recorder) SetLineWidth(width float64) {
	if width < 0 {
		r.setErr(fmt.Errorf("SetLineWidth: invalid width %g", width))
		return
	}
	r.LineWidth = width
	r.record(OpSetLineWidth, width)
}

// SetLineDash implements the [Surface] interface.
func (r *Recorder) SetLineDash(pattern []float64, phase float64) {
	r.Dash = slices.Clone(pattern)
	r.DashPhase = phase
	r.record(OpSetLineDash, append(slices.Clone(pattern), phase)...)
}

// SetStrokeGray implements the [Surface] interface.
func (r *Recorder) SetStrokeGray(gray float64) {
	r.StrokeGray = gray
	r.record(OpSetStrokeGray, gray)
}

// SetFillGray implements the [Surface] interface.
func (r *Recorder) SetFillGray(gray float64) {
	r.FillGray = gray
	r.record(OpSetFillGray, gray)
}

// PushGraphicsState implements the [Surface] interface.
func (r *Recorder) PushGraphicsState() {
	r.record(OpPush)
	saved := r.State
	saved.Dash = slices.Clone(r.Dash)
	r.stack = append(r.stack, saved)
}

// PopGraphicsState implements the [Surface] interface.
func (r *Recorder) PopGraphicsState() {
	if len(r.stack) == 0 {
		r.setErr(errors.New("PopGraphicsState: no saved state"))
		return
	}
	n := len(r.stack) - 1
	r.State = r.stack[n]
	r.stack = r.stack[:n]
	r.record(OpPop)
}

// Line implements the [Surface] interface.
func (r *Recorder) Line(x0, y0, x1, y1 float64) {
	r.record(OpLine, x0, y0, x1, y1)
}

// SetFont implements the [Surface] interface.
func (r *Recorder) SetFont(f Font, size float64) {
	if f == nil {
		r.setErr(errors.New("SetFont: no font"))
		return
	}
	r.Font = f.Name()
	r.FontSize = size
	r.recordCmd(Cmd{Op: OpSetFont, Args: []float64{size}, Text: f.Name()})
}

// ShowText implements the [Surface] interface.
func (r *Recorder) ShowText(x, y float64, align Align, s string) {
	if r.Font == "" {
		r.setErr(errors.New("ShowText: no font set"))
		return
	}
	r.recordCmd(Cmd{Op: OpShowText, Args: []float64{x, y}, Text: s, Align: align})
}

// Close reports the first error which occurred while recording, and
// checks that all saved graphics states have been restored.
func (r *Recorder) Close() error {
	if r.Err != nil {
		return r.Err
	}
	if len(r.stack) > 0 {
		return fmt.Errorf("%d graphics states not restored", len(r.stack))
	}
	return nil
}

func (r *Recorder) setErr(err error) {
	if r.Err == nil {
		r.Err = err
	}
}

// Filter returns the recorded commands with the given operation.
func (r *Recorder) Filter(op Op) []Cmd {
	var res []Cmd
	for _, cmd := range r.Cmds {
		if cmd.Op == op {
			res = append(res, cmd)
		}
	}
	return res
}

// Count returns the number of recorded commands with the given operation.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, cmd := range r.Cmds {
		if cmd.Op == op {
			n++
		}
	}
	return n
}

// String returns a human-readable listing of the recorded commands.
func (r *Recorder) String() string {
	b := &strings.Builder{}
	for _, cmd := range r.Cmds {
		b.WriteString(cmd.Op.String())
		for _, x := range cmd.Args {
			fmt.Fprintf(b, " %.6g", x)
		}
		if cmd.Text != "" {
			fmt.Fprintf(b, " %q", cmd.Text)
		}
		if cmd.Op == OpShowText {
			b.WriteString(" " + cmd.Align.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
