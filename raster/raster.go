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

// Package raster implements a drawing surface which renders a page into
// a gray-scale image, for example to show a preview of a practice sheet.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"slices"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tianzige/surface"
)

// Surface renders drawing operations into an image.
type Surface struct {
	img   *image.Gray
	z     *vector.Rasterizer
	scale float64

	width, height float64

	state
	stack []state

	fonts map[surface.Font]*truetype.Font
	faces map[faceKey]font.Face

	err error
}

type state struct {
	lineWidth  float64
	dash       []float64
	dashPhase  float64
	strokeGray float64
	fillGray   float64

	font     *truetype.Font
	fontSize float64
}

type faceKey struct {
	font *truetype.Font
	size float64
}

var _ surface.Surface = (*Surface)(nil)

// New returns a surface for a page of the given size, in PDF points,
// rendered at the given resolution in dots per inch.
// The page starts out white.
func New(width, height, dpi float64) (*Surface, error) {
	if !(width > 0) || !(height > 0) || !(dpi > 0) {
		return nil, fmt.Errorf("invalid page size %gx%g at %g dpi", width, height, dpi)
	}
	scale := dpi / 72
	w := int(math.Ceil(width * scale))
	h := int(math.Ceil(height * scale))
	if w > 1<<14 || h > 1<<14 {
		return nil, fmt.Errorf("image size %dx%d too large", w, h)
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	s := &Surface{
		img:    img,
		z:      vector.NewRasterizer(w, h),
		scale:  scale,
		width:  width,
		height: height,
		state:  state{lineWidth: 1},
		fonts:  make(map[surface.Font]*truetype.Font),
		faces:  make(map[faceKey]font.Face),
	}
	return s, nil
}

// Image returns the rendered image.
func (s *Surface) Image() *image.Gray {
	return s.img
}

// EncodePNG writes the rendered image to w in PNG format.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return png.Encode(w, s.img)
}

// Close reports the first error which occurred while drawing.
func (s *Surface) Close() error {
	if s.err != nil {
		return s.err
	}
	if len(s.stack) > 0 {
		return fmt.Errorf("%d graphics states not restored", len(s.stack))
	}
	return nil
}

// SetLineWidth implements the [surface.Surface] interface.
func (s *Surface) SetLineWidth(width float64) {
	s.lineWidth = width
}

// SetLineDash implements the [surface.Surface] interface.
func (s *Surface) SetLineDash(pattern []float64, phase float64) {
	s.dash = slices.Clone(pattern)
	s.dashPhase = phase
}

// SetStrokeGray implements the [surface.Surface] interface.
func (s *Surface) SetStrokeGray(gray float64) {
	s.strokeGray = gray
}

// SetFillGray implements the [surface.Surface] interface.
func (s *Surface) SetFillGray(gray float64) {
	s.fillGray = gray
}

// PushGraphicsState implements the [surface.Surface] interface.
func (s *Surface) PushGraphicsState() {
	saved := s.state
	saved.dash = slices.Clone(s.dash)
	s.stack = append(s.stack, saved)
}

// PopGraphicsState implements the [surface.Surface] interface.
func (s *Surface) PopGraphicsState() {
	if len(s.stack) == 0 {
		s.setErr(errors.New("PopGraphicsState: no saved state"))
		return
	}
	n := len(s.stack) - 1
	s.state = s.stack[n]
	s.stack = s.stack[:n]
}

// Line implements the [surface.Surface] interface.
func (s *Surface) Line(x0, y0, x1, y1 float64) {
	if s.err != nil {
		return
	}
	p0 := vec.Vec2{X: x0, Y: y0}
	p1 := vec.Vec2{X: x1, Y: y1}
	for _, seg := range dashSegments(p0, p1, s.dash, s.dashPhase) {
		s.strokeSegment(seg[0], seg[1])
	}
}

// strokeSegment fills the rectangle covered by a line segment with butt
// caps.  Lines are at least one pixel wide.
func (s *Surface) strokeSegment(p0, p1 vec.Vec2) {
	a := s.toDevice(p0)
	b := s.toDevice(p1)
	d := b.Sub(a)
	if d.Length() == 0 {
		return
	}
	halfWidth := math.Max(s.lineWidth*s.scale, 1) / 2
	n := d.Normalize().Rot90().Mul(halfWidth)

	corners := []vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	s.z.Reset(s.img.Bounds().Dx(), s.img.Bounds().Dy())
	s.z.DrawOp = draw.Over
	s.z.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		s.z.LineTo(float32(c.X), float32(c.Y))
	}
	s.z.ClosePath()
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(grayColor(s.strokeGray)), image.Point{})
}

// maxDashPeriods limits the number of dash pattern repetitions along a
// single line.
const maxDashPeriods = 10000

// dashSegments splits the line from p0 to p1 into the parts which are
// painted when the given dash pattern is applied.
func dashSegments(p0, p1 vec.Vec2, pattern []float64, phase float64) [][2]vec.Vec2 {
	var period float64
	for _, x := range pattern {
		if x < 0 {
			return nil
		}
		period += x
	}
	if len(pattern) == 0 || period == 0 {
		return [][2]vec.Vec2{{p0, p1}}
	}
	if len(pattern)%2 == 1 {
		// an odd pattern is repeated to give an even one
		pattern = append(slices.Clone(pattern), pattern...)
		period *= 2
	}

	d := p1.Sub(p0)
	length := d.Length()
	if length == 0 {
		return nil
	}
	if length/period > maxDashPeriods {
		// the dashes are too fine to show at any resolution
		return [][2]vec.Vec2{{p0, p1}}
	}
	u := d.Mul(1 / length)

	// find the position within the pattern at the start of the line
	pos := math.Mod(phase, period)
	if pos < 0 {
		pos += period
	}
	idx := 0
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}

	var res [][2]vec.Vec2
	t := 0.0
	for t < length {
		step := math.Min(pattern[idx]-pos, length-t)
		if idx%2 == 0 && step > 0 {
			res = append(res, [2]vec.Vec2{p0.Add(u.Mul(t)), p0.Add(u.Mul(t + step))})
		}
		t += step
		pos = 0
		idx = (idx + 1) % len(pattern)
	}
	return res
}

// SetFont implements the [surface.Surface] interface.
func (s *Surface) SetFont(f surface.Font, size float64) {
	if s.err != nil {
		return
	}
	if f == nil {
		s.setErr(errors.New("SetFont: no font"))
		return
	}
	F, ok := s.fonts[f]
	if !ok {
		data, err := f.Data()
		if err != nil {
			s.setErr(err)
			return
		}
		F, err = truetype.Parse(data)
		if err != nil {
			s.setErr(fmt.Errorf("font %q: %w", f.Name(), err))
			return
		}
		s.fonts[f] = F
	}
	s.font = F
	s.fontSize = size
}

// ShowText implements the [surface.Surface] interface.
func (s *Surface) ShowText(x, y float64, align surface.Align, text string) {
	if s.err != nil {
		return
	}
	if s.font == nil {
		s.setErr(errors.New("ShowText: no font set"))
		return
	}

	face := s.face(s.font, s.fontSize)
	p := s.toDevice(vec.Vec2{X: x, Y: y})
	adv := float64(font.MeasureString(face, text)) / 64
	switch align {
	case surface.AlignCenter:
		p.X -= adv / 2
	case surface.AlignRight:
		p.X -= adv
	}

	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(grayColor(s.fillGray)),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)},
	}
	d.DrawString(text)
}

func (s *Surface) face(F *truetype.Font, size float64) font.Face {
	key := faceKey{font: F, size: size}
	face, ok := s.faces[key]
	if !ok {
		face = truetype.NewFace(F, &truetype.Options{
			Size:    size * s.scale,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		s.faces[key] = face
	}
	return face
}

func (s *Surface) toDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: p.X * s.scale, Y: (s.height - p.Y) * s.scale}
}

func (s *Surface) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

func grayColor(gray float64) color.Gray {
	gray = math.Max(0, math.Min(gray, 1))
	return color.Gray{Y: uint8(math.Round(gray * 255))}
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}
