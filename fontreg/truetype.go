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

package fontreg

import (
	"bytes"

	"seehuhn.de/go/sfnt"
)

// ParseTrueType decodes font data and checks that the font can be
// embedded.  Only fonts with TrueType outlines are supported.
// Errors are reported as [*InvalidFontError].
func ParseTrueType(name string, data []byte) (*sfnt.Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &InvalidFontError{Name: name, Reason: err.Error()}
	}
	err = checkOutlines(name, info)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func checkOutlines(name string, info *sfnt.Font) error {
	if info.IsCFF() {
		return &InvalidFontError{Name: name, Reason: "CFF outlines are not supported"}
	}
	return nil
}
