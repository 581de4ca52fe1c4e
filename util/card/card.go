/*
 * Punch card image.
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

package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rcornwell/punchcard/util/ebcdic"
	"github.com/rcornwell/punchcard/util/hollerith"
	"github.com/rcornwell/punchcard/util/punch"
)

// Type tells how a card was made. It selects whether printed characters
// are shown, any operation may be used on either type.
type Type int

const (
	Text   Type = iota + 1 // Punched from characters.
	Binary                 // Raw column images.
)

func (t Type) String() string {
	switch t {
	case Text:
		return "text"
	case Binary:
		return "binary"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ErrColumnRange is returned when a column index is not 0 to 79.
var ErrColumnRange = errors.New("column index out of range")

// Column is one position on a card.
type Column struct {
	Punches punch.Pattern // Rows punched.
	Printed rune          // Character printed above column, 0 if none.
}

// Column for a typed character.
func charColumn(ch rune) Column {
	ch = hollerith.Upper(ch)
	p, ok := hollerith.CharToPattern(ch)
	if !ok {
		p = punch.Blank
	}
	return Column{Punches: p, Printed: ch}
}

// IsBlank reports whether nothing is punched in the column.
func (col Column) IsBlank() bool {
	return col.Punches.IsBlank()
}

// Char returns the character the punches stand for.
func (col Column) Char() (rune, bool) {
	return hollerith.PatternToChar(col.Punches)
}

// Card holds the 80 columns of one card.
type Card struct {
	columns  [Columns]Column
	cardType Type
}

// New returns a blank card.
func New(t Type) Card {
	return Card{cardType: t}
}

// FromText punches up to the first 80 characters of str. Characters with
// no punches leave the column blank but are still printed.
func FromText(str string) Card {
	c := New(Text)
	col := 0
	for _, ch := range str {
		if col >= Columns {
			break
		}
		c.columns[col] = charColumn(ch)
		col++
	}
	return c
}

// FromBinary loads column images from a buffer. A buffer of DenseSize
// bytes is an object deck card, anything else is read one byte per
// column.
func FromBinary(data []byte) Card {
	c := New(Binary)
	switch BinaryFormat(len(data)) {
	case FormatDense:
		c.loadDense(data)
	default:
		c.loadLegacy(data)
	}
	return c
}

// FromEBCDIC loads up to 80 EBCDIC codes, one per column.
func FromEBCDIC(data []byte) Card {
	c := New(Text)
	for i, code := range data {
		if i >= Columns {
			break
		}
		ch, ok := ebcdic.Printable(code)
		if !ok {
			ch = 0
		}
		c.columns[i] = Column{Punches: ebcdic.ToPattern(code), Printed: ch}
	}
	return c
}

// Type returns the type the card was created as.
func (c Card) Type() Type {
	return c.cardType
}

// Column returns column i.
func (c Card) Column(i int) (Column, bool) {
	if i < 0 || i >= Columns {
		return Column{}, false
	}
	return c.columns[i], true
}

// Columns returns a copy of all columns.
func (c Card) Columns() []Column {
	cols := make([]Column, Columns)
	copy(cols, c.columns[:])
	return cols
}

// Patterns returns the punches of every column.
func (c Card) Patterns() []punch.Pattern {
	codes := make([]punch.Pattern, Columns)
	for i, col := range c.columns {
		codes[i] = col.Punches
	}
	return codes
}

// Check column index.
func checkIndex(i int) error {
	if i < 0 || i >= Columns {
		return fmt.Errorf("%w: %d", ErrColumnRange, i)
	}
	return nil
}

// SetColumnChar punches character ch into column i.
func (c *Card) SetColumnChar(i int, ch rune) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	c.columns[i] = charColumn(ch)
	return nil
}

// SetColumnPattern punches p into column i, with nothing printed.
func (c *Card) SetColumnPattern(i int, p punch.Pattern) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	c.columns[i] = Column{Punches: p}
	return nil
}

// ClearColumn blanks column i.
func (c *Card) ClearColumn(i int) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	c.columns[i] = Column{}
	return nil
}

// Clear blanks every column. Type is not changed.
func (c *Card) Clear() {
	c.columns = [Columns]Column{}
}

// PunchedCount returns number of columns with any punch.
func (c Card) PunchedCount() int {
	n := 0
	for _, col := range c.columns {
		if !col.IsBlank() {
			n++
		}
	}
	return n
}

// ToText reads every column through the keypunch table, '?' when a
// column has no character.
func (c Card) ToText() string {
	var str strings.Builder
	for _, col := range c.columns {
		ch, ok := col.Char()
		if !ok {
			ch = '?'
		}
		str.WriteRune(ch)
	}
	return str.String()
}

// ToEBCDIC returns one EBCDIC code per column.
func (c Card) ToEBCDIC() []byte {
	out := make([]byte, EBCDICSize)
	for i, col := range c.columns {
		out[i] = ebcdic.FromPattern(col.Punches)
	}
	return out
}

// ToBinary returns the card in object deck format. Columns 73 to 80 are
// not saved.
func (c Card) ToBinary() []byte {
	out := make([]byte, DenseSize)
	for col := 0; col < DenseColumns; col++ {
		slots := c.columns[col].Punches.ToPositional()
		for s, punched := range slots {
			if punched {
				bit := col*punch.Slots + s
				out[bit/8] |= 1 << (bit % 8)
			}
		}
	}
	return out
}

// Load object deck format, 12 bits per column packed low bit first.
func (c *Card) loadDense(data []byte) {
	for col := 0; col < DenseColumns; col++ {
		var slots [punch.Slots]bool
		for s := 0; s < punch.Slots; s++ {
			bit := col*punch.Slots + s
			slots[s] = data[bit/8]&(1<<(bit%8)) != 0
		}
		c.columns[col] = Column{Punches: punch.FromPositional(slots)}
	}
}

// Load one byte per column. Only rows 12, 11 and 0 to 5 can be set.
func (c *Card) loadLegacy(data []byte) {
	for i, by := range data {
		if i >= Columns {
			break
		}
		var slots [punch.Slots]bool
		for b := 0; b < 8; b++ {
			slots[b] = by&(1<<b) != 0
		}
		c.columns[i] = Column{Punches: punch.FromPositional(slots)}
	}
}
