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

// MM is the length of one millimetre in PDF points.
const MM = 72 / 25.4

// Paper gives the size of a sheet of paper, in PDF points.
type Paper struct {
	Width, Height float64
}

// Default paper sizes, in portrait orientation.
var (
	A4     = Paper{Width: 595.276, Height: 841.890}
	A5     = Paper{Width: 420.945, Height: 595.276}
	Letter = Paper{Width: 612, Height: 792}
)

// Landscape returns the paper rotated by 90 degrees.
func (p Paper) Landscape() Paper {
	return Paper{Width: p.Height, Height: p.Width}
}

// WithMargins returns a PageSpec for the paper with the given margins.
func (p Paper) WithMargins(top, bottom, side float64) PageSpec {
	return PageSpec{
		Width:  p.Width,
		Height: p.Height,
		Top:    top,
		Bottom: bottom,
		Side:   side,
	}
}

// DefaultPage returns a PageSpec for the paper with 20mm margins at the
// top and bottom, and 15mm margins at the sides.
func DefaultPage(p Paper) PageSpec {
	return p.WithMargins(20*MM, 20*MM, 15*MM)
}
