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

package pdfsurface

import (
	"bytes"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/tianzige/fontreg"
	"seehuhn.de/go/tianzige/surface"
)

type memFont struct {
	name string
	data []byte
}

func (f *memFont) Name() string          { return f.name }
func (f *memFont) Data() ([]byte, error) { return f.data, nil }

func TestWritePage(t *testing.T) {
	buf := &bytes.Buffer{}
	s, err := New(buf, 200, 100)
	if err != nil {
		t.Fatal(err)
	}

	F := &memFont{name: "Go Regular", data: goregular.TTF}
	s.SetLineWidth(0.5)
	s.Line(10, 10, 190, 10)
	s.PushGraphicsState()
	s.SetLineDash([]float64{3, 3}, 0)
	s.SetStrokeGray(0.5)
	s.Line(10, 50, 190, 50)
	s.PopGraphicsState()
	s.SetFont(F, 12)
	s.SetFillGray(0.5)
	s.ShowText(100, 70, surface.AlignCenter, "Hello")
	s.SetFont(F, 10)
	s.ShowText(190, 90, surface.AlignRight, "x")

	err = s.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.fonts) != 1 {
		t.Errorf("%d fonts loaded", len(s.fonts))
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", out[:min(len(out), 16)])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Error("output has no end-of-file marker")
	}

	if err := s.Close(); err == nil {
		t.Error("second Close succeeded")
	}
}

func TestErrors(t *testing.T) {
	s, err := New(&bytes.Buffer{}, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	s.ShowText(10, 10, surface.AlignLeft, "x")
	if err := s.Close(); err == nil {
		t.Error("text without font did not fail")
	}

	s, err = New(&bytes.Buffer{}, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	s.SetFont(&memFont{name: "broken", data: []byte("not a font")}, 10)
	if err := s.Close(); !fontreg.IsInvalidFont(err) {
		t.Errorf("broken font data: got error %v, want InvalidFontError", err)
	}

	_, err = New(&bytes.Buffer{}, 0, 100)
	if err == nil {
		t.Error("empty page accepted")
	}
}
