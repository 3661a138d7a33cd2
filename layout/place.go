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

package layout

import (
	"seehuhn.de/go/tianzige/geometry"
	"seehuhn.de/go/tianzige/shade"
	"seehuhn.de/go/tianzige/surface"
)

// PlaceOptions controls how text is drawn into the cells of a grid.
type PlaceOptions struct {
	Font     surface.Font
	FontSize float64

	// BaselineShift moves the baseline of each character below the
	// vertical center of its cell, in multiples of FontSize.  This is a
	// tuning parameter for the glyph set in use, not a font metric.
	BaselineShift float64

	Policy shade.Policy
}

// Place draws the characters of text into the cells of g.
//
// Row r of the text goes into row r of the grid, counted from the top.
// Each character is centered horizontally in its cell.  Characters beyond
// the last column of the grid, and rows beyond the last row, are ignored.
func Place(s surface.Surface, text Text, g geometry.Grid, opt *PlaceOptions) {
	s.SetFont(opt.Font, opt.FontSize)
	dy := opt.FontSize * opt.BaselineShift

	for row, chars := range text {
		if row >= g.Rows {
			break
		}
		s.SetFillGray(opt.Policy.Intensity(row, g.Rows).Level())
		for col, c := range chars {
			if col >= g.Cols {
				break
			}
			p := g.CellCenter(row, col)
			s.ShowText(p.X, p.Y-dy, surface.AlignCenter, string(c))
		}
	}
}
