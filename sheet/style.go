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

package sheet

import (
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/tianzige/grid"
)

// Style collects the parameters which control the appearance of a sheet.
type Style struct {
	// LineWidth is the width of the solid grid lines.
	LineWidth float64

	// CenterlineWidth is the width of the dashed centerlines.
	CenterlineWidth float64

	// Dash is the dash pattern of the centerlines.
	Dash []float64

	// CenterlineGray is the gray level of the centerlines,
	// from 0 (black) to 1 (white).
	CenterlineGray float64

	// TitleFontSize is the font size of the header label.
	TitleFontSize float64

	// FontScale gives the font size of the practice text as a fraction of
	// the cell size.
	FontScale float64

	// BaselineShift moves the baseline of each character below the
	// center of its cell, as a fraction of the font size.  The default
	// suits CJK glyphs.
	BaselineShift float64

	// HeaderInset is the distance of the right end of the header from
	// the right margin.
	HeaderInset float64

	// HeaderRise is the height of the header baseline above the top
	// margin.
	HeaderRise float64
}

// MinDashPeriod is the shortest total length of a non-empty dash pattern.
const MinDashPeriod = 0.1

// DefaultStyle returns the standard style for practice sheets.
func DefaultStyle() *Style {
	return &Style{
		LineWidth:       grid.DefaultStyle.LineWidth,
		CenterlineWidth: grid.DefaultStyle.CenterlineWidth,
		Dash:            slices.Clone(grid.DefaultStyle.Dash),
		CenterlineGray:  grid.DefaultStyle.CenterlineGray,
		TitleFontSize:   12,
		FontScale:       0.8,
		BaselineShift:   0.3,
		HeaderInset:     30,
		HeaderRise:      5,
	}
}

// Grid returns the line styles for drawing the grid.
func (s *Style) Grid() grid.Style {
	return grid.Style{
		LineWidth:       s.LineWidth,
		CenterlineWidth: s.CenterlineWidth,
		Dash:            s.Dash,
		CenterlineGray:  s.CenterlineGray,
	}
}

// Validate checks that all style parameters are in range.
func (s *Style) Validate() error {
	switch {
	case !(s.LineWidth >= 0):
		return &InvalidStyleError{"line width", s.LineWidth}
	case !(s.CenterlineWidth >= 0):
		return &InvalidStyleError{"centerline width", s.CenterlineWidth}
	case !(s.CenterlineGray >= 0 && s.CenterlineGray <= 1):
		return &InvalidStyleError{"centerline gray", s.CenterlineGray}
	case !(s.TitleFontSize > 0):
		return &InvalidStyleError{"title font size", s.TitleFontSize}
	case !(s.FontScale > 0):
		return &InvalidStyleError{"font scale", s.FontScale}
	case isNaNOrInf(s.BaselineShift):
		return &InvalidStyleError{"baseline shift", s.BaselineShift}
	case isNaNOrInf(s.HeaderInset):
		return &InvalidStyleError{"header inset", s.HeaderInset}
	case isNaNOrInf(s.HeaderRise):
		return &InvalidStyleError{"header rise", s.HeaderRise}
	}
	var period float64
	for _, x := range s.Dash {
		if !(x >= 0) || math.IsInf(x, 0) {
			return &InvalidStyleError{"dash pattern entry", x}
		}
		period += x
	}
	if period > 0 && period < MinDashPeriod {
		return &InvalidStyleError{"dash pattern period", period}
	}
	return nil
}

func isNaNOrInf(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// InvalidStyleError is returned when a style parameter is out of range.
type InvalidStyleError struct {
	Field string
	Value float64
}

func (err *InvalidStyleError) Error() string {
	return fmt.Sprintf("invalid style: %s %g", err.Field, err.Value)
}
