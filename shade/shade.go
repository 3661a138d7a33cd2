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

// Package shade implements the policies which determine how dark the
// text in each row of a practice sheet is printed.
//
// The first row of a sheet is always printed in solid black, as the model
// to copy.  The following rows are printed in gray, for tracing.
package shade

import "math"

// Names of the built-in policies.
const (
	SecondLineFaint = "second_line_faint"
	GradualFade     = "gradual_fade"
	RestFaint       = "rest_faint"
)

// Intensity gives the ink intensity for a row of text.
type Intensity struct {
	// Solid is true for solid black text.
	Solid bool

	// Gray is the gray level for non-solid text, where 0 is black and 1
	// is white.
	Gray float64
}

// Black is the intensity used for the model row.
var Black = Intensity{Solid: true}

// Level returns the gray level for the intensity.
func (i Intensity) Level() float64 {
	if i.Solid {
		return 0
	}
	return i.Gray
}

// Policy maps row numbers to ink intensities.
//
// If Base and Max are both zero, the standard levels for the named policy
// are used.  Policy values are immutable and safe for concurrent use.
type Policy struct {
	Name string

	// Base is the gray level of row 1 and Max the gray level of the last
	// row.  For policies which do not fade, Base and Max are equal.
	Base, Max float64
}

// Lookup returns the policy with the given name.
// If the name is not known, the returned policy prints all rows in
// solid black.
func Lookup(name string) Policy {
	switch name {
	case SecondLineFaint:
		return Policy{Name: name, Base: 0.5, Max: 0.5}
	case GradualFade:
		return Policy{Name: name, Base: 0.3, Max: 0.9}
	case RestFaint:
		return Policy{Name: name, Base: 0.7, Max: 0.7}
	default:
		return Policy{Name: name}
	}
}

// Names returns the names of the built-in policies.
func Names() []string {
	return []string{SecondLineFaint, GradualFade, RestFaint}
}

// IsKnown returns true if the policy is one of the built-in policies.
func (p Policy) IsKnown() bool {
	switch p.Name {
	case SecondLineFaint, GradualFade, RestFaint:
		return true
	}
	return false
}

// Intensity returns the ink intensity for the given row of a sheet with
// the given number of rows.  Rows are numbered from the top, starting
// at 0.
func (p Policy) Intensity(row, rows int) Intensity {
	if row <= 0 || !p.IsKnown() {
		return Black
	}
	if p.Base == 0 && p.Max == 0 {
		p = Lookup(p.Name)
	}

	switch p.Name {
	case GradualFade:
		scale := float64(row-1) / float64(max(rows-1, 1))
		gray := p.Base + scale*(p.Max-p.Base)
		return Intensity{Gray: clamp(gray, p.Base, p.Max)}
	default:
		return Intensity{Gray: p.Base}
	}
}

func clamp(x, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(x, hi))
}
