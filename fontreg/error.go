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
	"errors"
	"strconv"
)

// InvalidFontError indicates that a font is not known or cannot be used.
type InvalidFontError struct {
	Name   string
	Reason string
}

func (err *InvalidFontError) Error() string {
	return "font " + strconv.Quote(err.Name) + ": " + err.Reason
}

// IsInvalidFont returns true if err is or wraps an InvalidFontError.
func IsInvalidFont(err error) bool {
	var fontErr *InvalidFontError
	return errors.As(err, &fontErr)
}
