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

package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func TestResolve(t *testing.T) {
	page := PageSpec{Width: 210, Height: 297, Top: 20, Bottom: 20, Side: 15}

	cases := []struct {
		name string
		req  GridRequest
		want Grid
	}{
		{
			name: "width limited",
			req:  GridRequest{Rows: 8, Cols: 10},
			want: Grid{CellSize: 18, X: 15, Y: 277 - 8*18, Rows: 8, Cols: 10},
		},
		{
			name: "height limited",
			req:  GridRequest{Rows: 20, Cols: 5},
			want: Grid{CellSize: 257.0 / 20, X: 15, Y: 20, Rows: 20, Cols: 5},
		},
		{
			name: "desired cell size fits",
			req:  GridRequest{Rows: 8, Cols: 10, CellSize: 12},
			want: Grid{CellSize: 12, X: 15, Y: 277 - 8*12, Rows: 8, Cols: 10},
		},
		{
			name: "desired cell size too large",
			req:  GridRequest{Rows: 8, Cols: 10, CellSize: 25},
			want: Grid{CellSize: 18, X: 15, Y: 277 - 8*18, Rows: 8, Cols: 10},
		},
		{
			name: "single cell",
			req:  GridRequest{Rows: 1, Cols: 1},
			want: Grid{CellSize: 180, X: 15, Y: 97, Rows: 1, Cols: 1},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Resolve(page, c.req)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Errorf("unexpected grid (-want +got):\n%s", d)
			}
		})
	}
}

func TestResolveFits(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		page := PageSpec{
			Width:  50 + 1000*rng.Float64(),
			Height: 50 + 1000*rng.Float64(),
		}
		page.Side = rng.Float64() * page.Width / 2.1
		page.Top = rng.Float64() * page.Height / 2.1
		page.Bottom = rng.Float64() * page.Height / 2.1
		req := GridRequest{
			Rows: 1 + rng.Intn(40),
			Cols: 1 + rng.Intn(40),
		}
		if rng.Intn(2) == 0 {
			req.CellSize = 100 * rng.Float64()
		}

		g, err := Resolve(page, req)
		if err != nil {
			t.Fatalf("%v %v: %v", page, req, err)
		}

		if !(g.CellSize > 0) {
			t.Fatalf("%v %v: cell size %g", page, req, g.CellSize)
		}
		if g.X+float64(g.Cols)*g.CellSize > page.Width-page.Side {
			t.Errorf("%v %v: grid overflows on the right", page, req)
		}
		if g.Y < page.Bottom {
			t.Errorf("%v %v: grid overflows at the bottom", page, req)
		}
		if math.Abs(g.Top()-(page.Height-page.Top)) > 1e-9 {
			t.Errorf("%v %v: grid top %g is not at the top margin", page, req, g.Top())
		}

		maxCell := math.Min((page.Width-2*page.Side)/float64(req.Cols),
			(page.Height-page.Top-page.Bottom)/float64(req.Rows))
		want := maxCell
		if req.CellSize > 0 {
			want = math.Min(req.CellSize, maxCell)
		}
		if math.Abs(g.CellSize-want) > 1e-9*want {
			t.Errorf("%v %v: cell size %g, want %g", page, req, g.CellSize, want)
		}
	}
}

func TestResolveInvalid(t *testing.T) {
	good := PageSpec{Width: 210, Height: 297, Top: 20, Bottom: 20, Side: 15}

	cases := []struct {
		name string
		page PageSpec
		req  GridRequest
	}{
		{"zero rows", good, GridRequest{Rows: 0, Cols: 10}},
		{"zero cols", good, GridRequest{Rows: 8, Cols: 0}},
		{"negative rows", good, GridRequest{Rows: -1, Cols: 10}},
		{"negative cell size", good, GridRequest{Rows: 8, Cols: 10, CellSize: -3}},
		{"side margins too wide", PageSpec{Width: 100, Height: 100, Side: 50}, GridRequest{Rows: 1, Cols: 1}},
		{"vertical margins too tall", PageSpec{Width: 100, Height: 100, Top: 60, Bottom: 40}, GridRequest{Rows: 1, Cols: 1}},
		{"negative margin", PageSpec{Width: 100, Height: 100, Top: -1}, GridRequest{Rows: 1, Cols: 1}},
		{"empty page", PageSpec{}, GridRequest{Rows: 1, Cols: 1}},
		{"NaN page", PageSpec{Width: math.NaN(), Height: 100}, GridRequest{Rows: 1, Cols: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := Resolve(c.page, c.req)
			if err == nil {
				t.Fatalf("expected error, got %v", g)
			}
			if !IsInvalidGrid(err) {
				t.Errorf("wrong error type %T: %v", err, err)
			}
			if g != (Grid{}) {
				t.Errorf("expected zero grid, got %v", g)
			}
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	page := DefaultPage(A4)
	req := GridRequest{Rows: 15, Cols: 10, CellSize: 25 * MM}

	g1, err := Resolve(page, req)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := Resolve(page, req)
	if err != nil {
		t.Fatal(err)
	}
	if g1 != g2 {
		t.Errorf("%v != %v", g1, g2)
	}
}

func TestCellCenter(t *testing.T) {
	g := Grid{CellSize: 10, X: 5, Y: 100, Rows: 3, Cols: 4}

	cases := []struct {
		row, col int
		want     vec.Vec2
	}{
		{0, 0, vec.Vec2{X: 10, Y: 125}},
		{0, 3, vec.Vec2{X: 40, Y: 125}},
		{2, 0, vec.Vec2{X: 10, Y: 105}},
		{1, 2, vec.Vec2{X: 30, Y: 115}},
	}
	for _, c := range cases {
		got := g.CellCenter(c.row, c.col)
		if got != c.want {
			t.Errorf("CellCenter(%d, %d) = %v, want %v", c.row, c.col, got, c.want)
		}

		cell := g.Cell(c.row, c.col)
		mid := vec.Vec2{X: (cell.LLx + cell.URx) / 2, Y: (cell.LLy + cell.URy) / 2}
		if mid != got {
			t.Errorf("Cell(%d, %d) has center %v, want %v", c.row, c.col, mid, got)
		}
	}
}

func TestLandscape(t *testing.T) {
	p := A4.Landscape()
	if p.Width != A4.Height || p.Height != A4.Width {
		t.Errorf("unexpected landscape size %v", p)
	}
	if p.Landscape() != A4 {
		t.Errorf("rotating twice gives %v", p.Landscape())
	}
}
