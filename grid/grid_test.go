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

package grid

import (
	"math"
	"testing"

	"seehuhn.de/go/tianzige/geometry"
	"seehuhn.de/go/tianzige/surface"
)

func TestDrawCounts(t *testing.T) {
	for _, shape := range []struct{ rows, cols int }{{1, 1}, {8, 10}, {15, 10}, {3, 7}} {
		g := geometry.Grid{CellSize: 10, X: 15, Y: 20, Rows: shape.rows, Cols: shape.cols}
		r := &surface.Recorder{}
		Draw(r, g, DefaultStyle)
		if err := r.Close(); err != nil {
			t.Fatal(err)
		}

		var solidH, solidV, dashedH, dashedV int
		for _, cmd := range r.Filter(surface.OpLine) {
			x0, y0, x1, y1 := cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3]
			horizontal := y0 == y1
			if len(cmd.State.Dash) == 0 {
				if cmd.State.LineWidth != 0.5 {
					t.Errorf("solid line with width %g", cmd.State.LineWidth)
				}
				if horizontal {
					solidH++
					if x0 != g.X || x1 != g.Right() {
						t.Errorf("horizontal grid line from %g to %g", x0, x1)
					}
				} else {
					solidV++
					if y0 != g.Y || y1 != g.Top() {
						t.Errorf("vertical grid line from %g to %g", y0, y1)
					}
				}
				continue
			}

			if cmd.State.LineWidth != 0.4 || cmd.State.StrokeGray != 0.5 {
				t.Errorf("centerline with width %g and gray %g",
					cmd.State.LineWidth, cmd.State.StrokeGray)
			}
			length := math.Hypot(x1-x0, y1-y0)
			if math.Abs(length-g.CellSize) > 1e-9 {
				t.Errorf("centerline of length %g", length)
			}
			if horizontal {
				dashedH++
			} else {
				dashedV++
			}
		}

		n := shape.rows * shape.cols
		if solidH != shape.rows+1 || solidV != shape.cols+1 {
			t.Errorf("%dx%d: %d horizontal and %d vertical grid lines",
				shape.rows, shape.cols, solidH, solidV)
		}
		if dashedH != n || dashedV != n {
			t.Errorf("%dx%d: %d horizontal and %d vertical centerlines",
				shape.rows, shape.cols, dashedH, dashedV)
		}
	}
}

func TestDrawOrder(t *testing.T) {
	g := geometry.Grid{CellSize: 20, X: 0, Y: 0, Rows: 2, Cols: 2}
	r := &surface.Recorder{}
	Draw(r, g, DefaultStyle)

	// all solid lines come before the first dashed line
	seenDashed := false
	for _, cmd := range r.Filter(surface.OpLine) {
		dashed := len(cmd.State.Dash) > 0
		if seenDashed && !dashed {
			t.Fatal("solid line drawn after centerlines")
		}
		seenDashed = seenDashed || dashed
	}

	// the first two centerlines cross at the center of the top-left cell
	var centerlines []surface.Cmd
	for _, cmd := range r.Filter(surface.OpLine) {
		if len(cmd.State.Dash) > 0 {
			centerlines = append(centerlines, cmd)
		}
	}
	v, h := centerlines[0].Args, centerlines[1].Args
	if v[0] != 10 || v[2] != 10 || v[1] != 20 || v[3] != 40 {
		t.Errorf("vertical centerline %v", v)
	}
	if h[1] != 30 || h[3] != 30 || h[0] != 0 || h[2] != 20 {
		t.Errorf("horizontal centerline %v", h)
	}
}

func TestDrawRestoresState(t *testing.T) {
	g := geometry.Grid{CellSize: 20, Rows: 3, Cols: 3}
	r := &surface.Recorder{}
	r.SetFillGray(0.25)
	Draw(r, g, DefaultStyle)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	if len(r.Dash) != 0 || r.StrokeGray != 0 || r.LineWidth != 0.5 {
		t.Errorf("centerline state leaked: %+v", r.State)
	}
	if r.FillGray != 0.25 {
		t.Errorf("fill gray changed to %g", r.FillGray)
	}
	if r.Count(surface.OpPush) != 1 || r.Count(surface.OpPop) != 1 {
		t.Errorf("%d pushes and %d pops", r.Count(surface.OpPush), r.Count(surface.OpPop))
	}
}
