/*
 * Text picture of a punched card.
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

package picture

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/rcornwell/punchcard/util/card"
	"github.com/rcornwell/punchcard/util/punch"
)

// Rows in the order they appear on the card face.
var faceRows = [punch.Slots]int{12, 11, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

var rowLabel = [punch.Slots]string{"12", "11", " 0", " 1", " 2", " 3", " 4", " 5", " 6", " 7", " 8", " 9"}

const (
	holeMark = '#'
	margin   = "  |"
)

type Options struct {
	Color  bool // Highlight holes with escape sequences.
	Cursor int  // Column to highlight, -1 for none.
}

// Default options, no color and no cursor.
func Plain() Options {
	return Options{Cursor: -1}
}

// Return true if colors should be used on f.
func UseColor(f *os.File) bool {
	if f == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type painter struct {
	hole   *color.Color
	cursor *color.Color
	text   *color.Color
	on     bool
}

func newPainter(on bool) painter {
	p := painter{
		hole:   color.New(color.FgHiWhite, color.BgBlack),
		cursor: color.New(color.BgBlue),
		text:   color.New(color.FgYellow, color.Bold),
		on:     on,
	}
	if on {
		p.hole.EnableColor()
		p.cursor.EnableColor()
		p.text.EnableColor()
	}
	return p
}

func (p painter) paint(c *color.Color, str *strings.Builder, s string) {
	if !p.on {
		str.WriteString(s)
		return
	}
	str.WriteString(c.Sprint(s))
}

// Render card face: printed characters across the top when the card
// is a text card, then one line per row. Holes are marked with '#',
// unpunched digit rows show the row digit.
func Render(c card.Card, opts Options) string {
	var str strings.Builder
	p := newPainter(opts.Color)
	cols := c.Columns()

	str.WriteString(margin)
	for i, col := range cols {
		ch := ' '
		if c.Type() == card.Text && col.Printed != 0 {
			ch = col.Printed
		}
		if i == opts.Cursor {
			p.paint(p.cursor, &str, string(ch))
			continue
		}
		p.paint(p.text, &str, string(ch))
	}
	str.WriteByte('\n')

	for s, row := range faceRows {
		str.WriteString(rowLabel[s])
		str.WriteByte('|')
		for i, col := range cols {
			cell := " "
			if row <= 9 {
				cell = string(rune('0' + row))
			}
			switch {
			case col.Punches.IsPunched(row):
				p.paint(p.hole, &str, string(holeMark))
			case i == opts.Cursor:
				p.paint(p.cursor, &str, cell)
			default:
				str.WriteString(cell)
			}
		}
		str.WriteByte('\n')
	}

	// Column ruler, tens digit every 10 columns.
	str.WriteString(margin)
	for i := range cols {
		if (i+1)%10 == 0 {
			str.WriteByte(byte('0' + ((i+1)/10)%10))
		} else {
			str.WriteByte(' ')
		}
	}
	str.WriteByte('\n')
	return str.String()
}
