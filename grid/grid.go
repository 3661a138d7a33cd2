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

// Package grid draws the cell grid of a practice sheet.
//
// Every cell of the grid is crossed by a dashed horizontal and a dashed
// vertical centerline, forming the "field character" (田) guide used in
// calligraphy practice.
package grid

import (
	"seehuhn.de/go/tianzige/geometry"
	"seehuhn.de/go/tianzige/surface"
)

// Style gives the line styles for drawing a grid.
type Style struct {
	// LineWidth is the width of the solid grid lines.
	LineWidth float64

	// CenterlineWidth is the width of the dashed centerlines.
	CenterlineWidth float64

	// Dash is the dash pattern of the centerlines.
	Dash []float64

	// CenterlineGray is the gray level of the centerlines.
	CenterlineGray float64
}

// DefaultStyle gives the standard line styles for practice sheets.
var DefaultStyle = Style{
	LineWidth:       0.5,
	CenterlineWidth: 0.4,
	Dash:            []float64{3, 3},
	CenterlineGray:  0.5,
}

// Draw draws the grid lines and the centerlines of all cells.
//
// The centerline settings are bracketed by PushGraphicsState and
// PopGraphicsState, so that the line width set for the solid lines is in
// effect again when Draw returns.
func Draw(s surface.Surface, g geometry.Grid, style Style) {
	left, right := g.X, g.Right()
	bottom, top := g.Y, g.Top()

	s.SetLineWidth(style.LineWidth)
	for row := 0; row <= g.Rows; row++ {
		y := g.Y + float64(row)*g.CellSize
		s.Line(left, y, right, y)
	}
	for col := 0; col <= g.Cols; col++ {
		x := g.X + float64(col)*g.CellSize
		s.Line(x, bottom, x, top)
	}

	s.PushGraphicsState()
	s.SetLineWidth(style.CenterlineWidth)
	s.SetLineDash(style.Dash, 0)
	s.SetStrokeGray(style.CenterlineGray)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := g.Cell(row, col)
			c := g.CellCenter(row, col)
			s.Line(c.X, cell.LLy, c.X, cell.URy)
			s.Line(cell.LLx, c.Y, cell.URx, c.Y)
		}
	}
	s.PopGraphicsState()
}
