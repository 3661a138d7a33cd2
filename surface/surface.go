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

// Package surface defines the drawing operations used to render a
// practice sheet.
//
// A [Surface] receives the draw calls for exactly one page.  Surfaces
// record the first error which occurs and ignore all subsequent calls;
// the error is reported when the page is finished.
package surface

// Font is a font which can be used to draw text on a surface.
type Font interface {
	// Name returns the family name of the font.
	Name() string

	// Data returns the TrueType or OpenType font data.
	Data() ([]byte, error)
}

// Align specifies the horizontal alignment of text relative to the
// reference point.
type Align int

// These are the supported text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "invalid"
	}
}

// Surface is the destination for the drawing operations of one page.
//
// Coordinates have their origin at the bottom-left corner of the page,
// with y increasing upwards.
type Surface interface {
	// SetLineWidth sets the width of stroked lines.
	SetLineWidth(width float64)

	// SetLineDash sets the dash pattern for stroked lines.
	// An empty pattern gives solid lines.
	SetLineDash(pattern []float64, phase float64)

	// SetStrokeGray sets the gray level for stroked lines.
	// 0 is black, 1 is white.
	SetStrokeGray(gray float64)

	// SetFillGray sets the gray level for text.
	// 0 is black, 1 is white.
	SetFillGray(gray float64)

	// PushGraphicsState saves the line and color settings.
	PushGraphicsState()

	// PopGraphicsState restores the settings saved by the matching call
	// to PushGraphicsState.
	PopGraphicsState()

	// Line strokes the straight line from (x0, y0) to (x1, y1).
	Line(x0, y0, x1, y1 float64)

	// SetFont selects the font and font size for subsequent text.
	SetFont(f Font, size float64)

	// ShowText draws s with its baseline at height y.  The alignment
	// determines whether x is the left end, the center or the right end
	// of the text.
	ShowText(x, y float64, align Align, s string)
}
