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

// Package pdfsurface implements a drawing surface which writes a
// single-page PDF document.
package pdfsurface

import (
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/truetype"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/tianzige/fontreg"
	"seehuhn.de/go/tianzige/surface"
)

var errClosed = errors.New("surface already closed")

// Surface draws onto the only page of a PDF document.
type Surface struct {
	page *document.Page

	fonts    map[surface.Font]*truetype.Instance
	font     *truetype.Instance
	fontSize float64

	err error
}

var _ surface.Surface = (*Surface)(nil)

// New starts a new PDF document with a single page of the given size.
// The document is written to w when the surface is closed.
func New(w io.Writer, width, height float64) (*Surface, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("invalid page size %gx%g", width, height)
	}
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	s := &Surface{
		page:  page,
		fonts: make(map[surface.Font]*truetype.Instance),
	}
	return s, nil
}

// SetLineWidth implements the [surface.Surface] interface.
func (s *Surface) SetLineWidth(width float64) {
	if s.err != nil {
		return
	}
	s.page.SetLineWidth(width)
}

// SetLineDash implements the [surface.Surface] interface.
func (s *Surface) SetLineDash(pattern []float64, phase float64) {
	if s.err != nil {
		return
	}
	s.page.SetLineDash(pattern, phase)
}

// SetStrokeGray implements the [surface.Surface] interface.
func (s *Surface) SetStrokeGray(gray float64) {
	if s.err != nil {
		return
	}
	s.page.SetStrokeColor(color.DeviceGray(gray))
}

// SetFillGray implements the [surface.Surface] interface.
func (s *Surface) SetFillGray(gray float64) {
	if s.err != nil {
		return
	}
	s.page.SetFillColor(color.DeviceGray(gray))
}

// PushGraphicsState implements the [surface.Surface] interface.
func (s *Surface) PushGraphicsState() {
	if s.err != nil {
		return
	}
	s.page.PushGraphicsState()
}

// PopGraphicsState implements the [surface.Surface] interface.
func (s *Surface) PopGraphicsState() {
	if s.err != nil {
		return
	}
	s.page.PopGraphicsState()
}

// Line implements the [surface.Surface] interface.
func (s *Surface) Line(x0, y0, x1, y1 float64) {
	if s.err != nil {
		return
	}
	s.page.MoveTo(x0, y0)
	s.page.LineTo(x1, y1)
	s.page.Stroke()
}

// SetFont implements the [surface.Surface] interface.
//
// Each font is embedded into the PDF file only once, no matter how
// often it is selected.
func (s *Surface) SetFont(f surface.Font, size float64) {
	if s.err != nil {
		return
	}
	if f == nil {
		s.err = errors.New("SetFont: no font")
		return
	}

	F, ok := s.fonts[f]
	if !ok {
		var err error
		F, err = loadFont(f)
		if err != nil {
			s.err = err
			return
		}
		s.fonts[f] = F
	}
	s.font = F
	s.fontSize = size
}

func loadFont(f surface.Font) (*truetype.Instance, error) {
	data, err := f.Data()
	if err != nil {
		return nil, err
	}
	info, err := fontreg.ParseTrueType(f.Name(), data)
	if err != nil {
		return nil, err
	}
	F, err := truetype.New(info, nil)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", f.Name(), err)
	}
	return F, nil
}

// ShowText implements the [surface.Surface] interface.
func (s *Surface) ShowText(x, y float64, align surface.Align, text string) {
	if s.err != nil {
		return
	}
	if s.font == nil {
		s.err = errors.New("ShowText: no font set")
		return
	}

	s.page.TextBegin()
	s.page.TextSetFont(s.font, s.fontSize)
	gg := s.page.TextLayout(nil, text)
	switch align {
	case surface.AlignCenter:
		x -= gg.TotalWidth() / 2
	case surface.AlignRight:
		x -= gg.TotalWidth()
	}
	s.page.TextFirstLine(x, y)
	s.page.TextShowGlyphs(gg)
	s.page.TextEnd()
}

// Close finishes the page and writes the PDF document.
// Close returns the first error which occurred while drawing.
func (s *Surface) Close() error {
	if s.page == nil {
		return errClosed
	}
	page, err := s.page, s.err
	s.page = nil
	s.err = errClosed
	if err != nil {
		return err
	}
	return page.Close()
}
