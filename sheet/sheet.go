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

// Package sheet composes single-page character practice sheets.
//
// A practice sheet consists of an optional header label, a grid of square
// cells crossed by dashed centerlines, and rows of text drawn into the
// cells.  Rows are coloured according to a [shade.Policy], so that the
// characters can be traced in the lighter rows.
//
// All parameters of a sheet are given in a [Request].  The same request
// always produces the same drawing operations.
package sheet

import (
	"bytes"
	"io"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/tianzige/fontreg"
	"seehuhn.de/go/tianzige/geometry"
	"seehuhn.de/go/tianzige/grid"
	"seehuhn.de/go/tianzige/layout"
	"seehuhn.de/go/tianzige/pdfsurface"
	"seehuhn.de/go/tianzige/raster"
	"seehuhn.de/go/tianzige/shade"
	"seehuhn.de/go/tianzige/surface"
)

// tracer traces with key 'tianzige.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("tianzige.sheet")
}

// DefaultHeader is the date label printed above the grid.
const DefaultHeader = "日期：__________"

// Request describes a practice sheet.
type Request struct {
	Page geometry.PageSpec
	Grid geometry.GridRequest

	// Text is the practice text.  Characters which do not fit into a row
	// are dropped.
	Text string

	// Font is used for the practice text and for the header.
	Font surface.Font

	// Policy determines the colour of each row of text.  Unknown
	// policies draw all rows in black.
	Policy shade.Policy

	// Header, if non-empty, is drawn right-aligned above the grid.
	Header string

	// Fill selects which rows of the grid receive the text.
	Fill layout.Fill

	// Style gives the line and text styles.  If this is nil,
	// DefaultStyle() is used.
	Style *Style
}

// plan holds the validated form of a request.
type plan struct {
	req   *Request
	style *Style
	grid  geometry.Grid
	text  layout.Text
}

// Validate checks that the request describes a sheet which can be drawn.
// The returned error is a [*geometry.InvalidGridError],
// a [*fontreg.InvalidFontError] or an [*InvalidStyleError].
func (req *Request) Validate() error {
	_, err := req.prepare()
	return err
}

func (req *Request) prepare() (*plan, error) {
	g, err := geometry.Resolve(req.Page, req.Grid)
	if err != nil {
		return nil, err
	}

	style := req.Style
	if style == nil {
		style = DefaultStyle()
	}
	err = style.Validate()
	if err != nil {
		return nil, err
	}

	if req.Font == nil {
		return nil, &fontreg.InvalidFontError{Reason: "no font given"}
	}
	data, err := req.Font.Data()
	if err != nil {
		if fontreg.IsInvalidFont(err) {
			return nil, err
		}
		return nil, &fontreg.InvalidFontError{
			Name:   req.Font.Name(),
			Reason: err.Error(),
		}
	}
	_, err = fontreg.ParseTrueType(req.Font.Name(), data)
	if err != nil {
		return nil, err
	}

	if n := layout.Truncated(req.Text, g.Cols); n > 0 {
		tracer().Infof("%d characters do not fit into %d columns", n, g.Cols)
	}
	if !req.Policy.IsKnown() {
		tracer().Debugf("unknown policy %q, all rows are black", req.Policy.Name)
	}
	tracer().Debugf("grid %dx%d, cell size %.2f at (%.2f, %.2f)",
		g.Rows, g.Cols, g.CellSize, g.X, g.Y)

	p := &plan{
		req:   req,
		style: style,
		grid:  g,
		text:  layout.Layout(req.Text, g.Rows, g.Cols, req.Fill),
	}
	return p, nil
}

// RenderTo draws the sheet onto s.
// The request is validated before the first drawing operation.
func RenderTo(s surface.Surface, req *Request) error {
	p, err := req.prepare()
	if err != nil {
		return err
	}
	p.draw(s)
	return nil
}

func (p *plan) draw(s surface.Surface) {
	req := p.req
	style := p.style

	if req.Header != "" {
		x := req.Page.Width - req.Page.Side - style.HeaderInset
		y := req.Page.Height - req.Page.Top + style.HeaderRise
		s.SetFont(req.Font, style.TitleFontSize)
		s.SetFillGray(0)
		s.ShowText(x, y, surface.AlignRight, req.Header)
	}

	grid.Draw(s, p.grid, style.Grid())

	opt := &layout.PlaceOptions{
		Font:          req.Font,
		FontSize:      p.grid.CellSize * style.FontScale,
		BaselineShift: style.BaselineShift,
		Policy:        req.Policy,
	}
	layout.Place(s, p.text, p.grid, opt)
}

// Render writes the sheet to w as a single-page PDF document.
// Nothing is written if an error occurs.
func Render(w io.Writer, req *Request) error {
	data, err := RenderBytes(req)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// RenderBytes returns the sheet as a single-page PDF document.
func RenderBytes(req *Request) ([]byte, error) {
	p, err := req.prepare()
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	s, err := pdfsurface.New(buf, req.Page.Width, req.Page.Height)
	if err != nil {
		return nil, err
	}
	p.draw(s)
	err = s.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderPNG writes a preview image of the sheet to w, in PNG format,
// at the given resolution in dots per inch.
// Nothing is written if an error occurs.
func RenderPNG(w io.Writer, req *Request, dpi float64) error {
	p, err := req.prepare()
	if err != nil {
		return err
	}

	s, err := raster.New(req.Page.Width, req.Page.Height, dpi)
	if err != nil {
		return err
	}
	p.draw(s)
	err = s.Close()
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	err = s.EncodePNG(buf)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}
