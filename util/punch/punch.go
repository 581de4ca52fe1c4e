/*
 * Hollerith punch pattern for one card column.
 *
 * Copyright (c) 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package punch

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern holds the punched rows of one column as a 12 bit word.
// Row 12 is bit 11, row 11 is bit 10, row 0 is bit 9 and rows 1 to 9
// are bits 8 down to 0. Duplicates collapse and order is fixed by the
// word, so two patterns are equal exactly when they punch the same rows.
type Pattern uint16

// Blank is the pattern with no rows punched.
const Blank Pattern = 0

const (
	maskRows = 0o7777 // All twelve rows.
	Slots    = 12     // Positions in the positional vector.
)

// Rows in canonical ascending order.
var canonical = [...]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 12}

// Return bit for a row, 0 if not a valid row.
func rowBit(row int) Pattern {
	switch {
	case row == 12:
		return 0o4000
	case row == 11:
		return 0o2000
	case row >= 0 && row <= 9:
		return 0o1000 >> row
	}
	return 0
}

// New builds a pattern from row identifiers. Rows other than 0-9, 11
// and 12 are ignored.
func New(rows ...int) Pattern {
	p := Blank
	for _, row := range rows {
		p |= rowBit(row)
	}
	return p
}

// FromWord converts a 12 bit column image into a pattern.
func FromWord(word uint16) Pattern {
	return Pattern(word & maskRows)
}

// Word returns the 12 bit column image.
func (p Pattern) Word() uint16 {
	return uint16(p) & maskRows
}

// Rows returns punched rows in order 0, 1, ... 9, 11, 12.
func (p Pattern) Rows() []int {
	rows := make([]int, 0, p.Len())
	for _, row := range canonical {
		if p&rowBit(row) != 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// Len returns number of punched rows.
func (p Pattern) Len() int {
	n := 0
	for w := p & maskRows; w != 0; w &= w - 1 {
		n++
	}
	return n
}

// IsBlank reports whether no row is punched.
func (p Pattern) IsBlank() bool {
	return p&maskRows == 0
}

// IsPunched reports whether row is punched.
func (p Pattern) IsPunched(row int) bool {
	bit := rowBit(row)
	return bit != 0 && p&bit != 0
}

// ToPositional returns the pattern as a vector indexed by slot, slot
// order 12, 11, 0, 1, ... 9.
func (p Pattern) ToPositional() [Slots]bool {
	var slots [Slots]bool
	for s := 0; s < Slots; s++ {
		slots[s] = p&(1<<(Slots-1-s)) != 0
	}
	return slots
}

// FromPositional is the inverse of ToPositional.
func FromPositional(slots [Slots]bool) Pattern {
	p := Blank
	for s, punched := range slots {
		if punched {
			p |= 1 << (Slots - 1 - s)
		}
	}
	return p
}

// String returns rows in punching order, zone first, e.g. "12-1".
func (p Pattern) String() string {
	if p.IsBlank() {
		return "blank"
	}
	rows := p.Rows()
	parts := make([]string, 0, len(rows))
	// Zone rows are written first as on a keypunch reference card.
	for i := len(rows) - 1; i >= 0 && rows[i] > 9; i-- {
		parts = append(parts, strconv.Itoa(rows[i]))
	}
	for _, row := range rows {
		if row <= 9 {
			parts = append(parts, strconv.Itoa(row))
		}
	}
	return strings.Join(parts, "-")
}

// Parse reads a list of rows separated by '-' or ','.
func Parse(str string) (Pattern, error) {
	str = strings.TrimSpace(str)
	if str == "" || strings.EqualFold(str, "blank") {
		return Blank, nil
	}

	p := Blank
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == '-' || r == ','
	})
	for _, field := range fields {
		row, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Blank, fmt.Errorf("invalid row: %q", field)
		}
		bit := rowBit(row)
		if bit == 0 {
			return Blank, fmt.Errorf("invalid row: %d", row)
		}
		p |= bit
	}
	return p, nil
}
