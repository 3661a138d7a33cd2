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

// Package layout distributes the characters of a text over the cells of
// a grid and draws them.
//
// Each row of the grid holds at most as many characters as the grid has
// columns.  Characters which do not fit into a row are dropped; text is
// never wrapped to the next row.
package layout

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Text is the content of a grid, one slice of characters per row.
type Text [][]rune

// Fill determines which rows of a grid receive the text.
// The zero value fills every row.
type Fill struct {
	// Limited is true if only the first Rows rows, counted from the top,
	// receive the text.
	Limited bool
	Rows    int
}

// RepeatEveryRow fills every row with the text.
var RepeatEveryRow = Fill{}

// FirstRows fills the first n rows with the text and leaves the remaining
// rows blank.
func FirstRows(n int) Fill {
	return Fill{Limited: true, Rows: max(n, 0)}
}

func (f Fill) String() string {
	if !f.Limited {
		return "repeat"
	}
	return "first:" + strconv.Itoa(f.Rows)
}

// ParseFill parses the textual form of a Fill, as returned by the String
// method: either "repeat", or "first:N" for a non-negative integer N.
func ParseFill(s string) (Fill, error) {
	if s == "repeat" || s == "" {
		return RepeatEveryRow, nil
	}
	if rest, ok := strings.CutPrefix(s, "first:"); ok {
		n, err := strconv.Atoi(rest)
		if err == nil && n >= 0 {
			return FirstRows(n), nil
		}
	}
	return Fill{}, fmt.Errorf("invalid row fill %q", s)
}

// Chars returns the characters of s which can be placed into grid cells.
// The text is converted to Unicode normalization form C, and control
// characters like tabs or newlines are removed.
func Chars(s string) []rune {
	s = norm.NFC.String(s)
	res := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		res = append(res, r)
	}
	return res
}

// Layout distributes text over a grid with the given number of rows
// and columns.
//
// Every row selected by fill receives the characters of the text, from the
// start, truncated to cols characters.  All other rows are empty.
func Layout(text string, rows, cols int, fill Fill) Text {
	if rows <= 0 {
		return nil
	}
	chars := Chars(text)
	if len(chars) > cols {
		chars = chars[:max(cols, 0)]
	}

	filled := rows
	if fill.Limited && fill.Rows < rows {
		filled = max(fill.Rows, 0)
	}

	res := make(Text, rows)
	for i := range filled {
		res[i] = slices.Clone(chars)
	}
	return res
}

// Truncated returns the number of characters of text which do not fit
// into a row of the given number of columns.
func Truncated(text string, cols int) int {
	n := len(Chars(text)) - max(cols, 0)
	return max(n, 0)
}
