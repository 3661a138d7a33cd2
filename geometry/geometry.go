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

// Package geometry fits a grid of square cells into the printable area
// of a page.
//
// All lengths are given in a common unit, normally PDF points.  Page
// coordinates have their origin in the bottom-left corner of the page,
// with y increasing upwards.
package geometry

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// PageSpec describes a page and its margins.
// The left and right margins are both equal to Side.
type PageSpec struct {
	Width, Height float64

	Top    float64
	Bottom float64
	Side   float64
}

// Validate checks that the page has a positive size and that the margins
// leave a non-empty printable area.
func (p PageSpec) Validate() error {
	if !(p.Width > 0) || !(p.Height > 0) || math.IsInf(p.Width, 0) || math.IsInf(p.Height, 0) {
		return &InvalidGridError{
			Reason: fmt.Sprintf("invalid page size %gx%g", p.Width, p.Height),
		}
	}
	if !(p.Top >= 0) || !(p.Bottom >= 0) || !(p.Side >= 0) {
		return &InvalidGridError{
			Reason: fmt.Sprintf("negative margin (top=%g, bottom=%g, side=%g)",
				p.Top, p.Bottom, p.Side),
		}
	}
	if !(p.Width-2*p.Side > 0) {
		return &InvalidGridError{
			Reason: fmt.Sprintf("side margins %g leave no usable width on a page of width %g",
				p.Side, p.Width),
		}
	}
	if !(p.Height-p.Top-p.Bottom > 0) {
		return &InvalidGridError{
			Reason: fmt.Sprintf("margins %g+%g leave no usable height on a page of height %g",
				p.Top, p.Bottom, p.Height),
		}
	}
	return nil
}

// Usable returns the printable area of the page, i.e. the page with the
// margins removed.
func (p PageSpec) Usable() rect.Rect {
	return rect.Rect{
		LLx: p.Side,
		LLy: p.Bottom,
		URx: p.Width - p.Side,
		URy: p.Height - p.Top,
	}
}

// GridRequest gives the shape of the grid to place on a page.
type GridRequest struct {
	Rows int
	Cols int

	// CellSize, if positive, is the preferred side length of a cell.
	// The resolved cell size is never larger than this, but may be smaller
	// if the grid would otherwise not fit on the page.
	CellSize float64
}

// Grid is a grid of square cells, positioned on a page.
type Grid struct {
	CellSize float64

	// X and Y give the bottom-left corner of the grid.
	X, Y float64

	Rows int
	Cols int
}

// Resolve computes the cell size and position of a grid on the given page.
//
// The cell size is the largest size for which the grid fits into the
// usable area of the page, capped by req.CellSize if this is given.  The
// grid is aligned with the left and top margins.
func Resolve(page PageSpec, req GridRequest) (Grid, error) {
	if req.Rows <= 0 {
		return Grid{}, &InvalidGridError{
			Reason: fmt.Sprintf("number of rows must be positive, not %d", req.Rows),
		}
	}
	if req.Cols <= 0 {
		return Grid{}, &InvalidGridError{
			Reason: fmt.Sprintf("number of columns must be positive, not %d", req.Cols),
		}
	}
	if req.CellSize < 0 || math.IsNaN(req.CellSize) {
		return Grid{}, &InvalidGridError{
			Reason: fmt.Sprintf("invalid cell size %g", req.CellSize),
		}
	}
	err := page.Validate()
	if err != nil {
		return Grid{}, err
	}

	area := page.Usable()
	rows := float64(req.Rows)
	cols := float64(req.Cols)

	usableWidth := page.Width - 2*page.Side
	usableHeight := page.Height - page.Top - page.Bottom
	cell := math.Min(usableWidth/cols, usableHeight/rows)
	if req.CellSize > 0 && req.CellSize < cell {
		cell = req.CellSize
	}

	// Rounding in the products below can push the grid past the margins
	// by a few ulp.
	for cell > 0 && (page.Side+cols*cell > area.URx || page.Height-page.Top-rows*cell < area.LLy) {
		cell = math.Nextafter(cell, 0)
	}
	if !(cell > 0) {
		return Grid{}, &InvalidGridError{
			Reason: fmt.Sprintf("%dx%d grid does not fit on the page", req.Rows, req.Cols),
		}
	}

	g := Grid{
		CellSize: cell,
		X:        page.Side,
		Y:        page.Height - page.Top - rows*cell,
		Rows:     req.Rows,
		Cols:     req.Cols,
	}
	return g, nil
}

// Width returns the total width of the grid.
func (g Grid) Width() float64 {
	return float64(g.Cols) * g.CellSize
}

// Height returns the total height of the grid.
func (g Grid) Height() float64 {
	return float64(g.Rows) * g.CellSize
}

// Top returns the y coordinate of the top edge of the grid.
func (g Grid) Top() float64 {
	return g.Y + g.Height()
}

// Right returns the x coordinate of the right edge of the grid.
func (g Grid) Right() float64 {
	return g.X + g.Width()
}

// Cell returns the area covered by the given cell.
// Rows are numbered from the top, starting at 0.
func (g Grid) Cell(row, col int) rect.Rect {
	x := g.X + float64(col)*g.CellSize
	y := g.Y + float64(g.Rows-row-1)*g.CellSize
	return rect.Rect{
		LLx: x,
		LLy: y,
		URx: x + g.CellSize,
		URy: y + g.CellSize,
	}
}

// CellCenter returns the center of the given cell.
// Rows are numbered from the top, starting at 0.
func (g Grid) CellCenter(row, col int) vec.Vec2 {
	return vec.Vec2{
		X: g.X + float64(col)*g.CellSize + g.CellSize/2,
		Y: g.Y + float64(g.Rows-row-1)*g.CellSize + g.CellSize/2,
	}
}
