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
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testFont string

func (f testFont) Name() string          { return string(f) }
func (f testFont) Data() ([]byte, error) { return nil, nil }

func TestRecorderState(t *testing.T) {
	r := &Recorder{}
	r.SetLineWidth(0.5)
	r.PushGraphicsState()
	r.SetLineWidth(0.4)
	r.SetLineDash([]float64{3, 3}, 0)
	r.SetStrokeGray(0.5)
	r.Line(0, 0, 10, 0)
	r.PopGraphicsState()
	r.Line(0, 0, 0, 10)

	err := r.Close()
	if err != nil {
		t.Fatal(err)
	}

	lines := r.Filter(OpLine)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	dashed := State{LineWidth: 0.4, Dash: []float64{3, 3}, StrokeGray: 0.5}
	if d := cmp.Diff(dashed, lines[0].State); d != "" {
		t.Errorf("dashed line state (-want +got):\n%s", d)
	}
	solid := State{LineWidth: 0.5}
	if d := cmp.Diff(solid, lines[1].State); d != "" {
		t.Errorf("solid line state (-want +got):\n%s", d)
	}
}

func TestRecorderErrors(t *testing.T) {
	r := &Recorder{}
	r.PopGraphicsState()
	r.Line(0, 0, 1, 1)
	if r.Close() == nil {
		t.Error("unbalanced PopGraphicsState not detected")
	}
	if len(r.Cmds) != 0 {
		t.Errorf("commands recorded after error: %v", r.Cmds)
	}

	r = &Recorder{}
	r.PushGraphicsState()
	if r.Close() == nil {
		t.Error("unbalanced PushGraphicsState not detected")
	}

	r = &Recorder{}
	r.ShowText(0, 0, AlignLeft, "x")
	if r.Close() == nil {
		t.Error("text without font not detected")
	}
}

func TestRecorderString(t *testing.T) {
	r := &Recorder{}
	r.SetFont(testFont("F"), 12)
	r.SetFillGray(0.5)
	r.ShowText(10, 20, AlignCenter, "永")

	want := "Tf 12 \"F\"\ng 0.5\ntext 10 20 \"永\" center\n"
	if got := r.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if r.Count(OpShowText) != 1 {
		t.Errorf("Count(OpShowText) = %d", r.Count(OpShowText))
	}
}
