/*
 * IBM 029 keypunch character conversion.
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

package hollerith

import (
	"fmt"
	"strings"

	"github.com/rcornwell/punchcard/util/punch"
)

// Marks a pattern with no character.
const noChar rune = -1

// Back translation from 12 bit image to character.
var holToChar [4096]rune

// Forward translation.
var charToHol = map[rune]punch.Pattern{}

// Initialize translation tables.
func init() {
	for i := range holToChar {
		holToChar[i] = noChar
	}
	for _, t := range table029 {
		if _, ok := charToHol[t.ch]; ok {
			panic(fmt.Sprintf("Translation error character %q defined twice", t.ch))
		}
		p := punch.FromWord(t.hol)
		if holToChar[p.Word()] != noChar {
			s := fmt.Sprintf("Translation error %q is %04o and %q", t.ch, t.hol, holToChar[p.Word()])
			panic(s)
		}
		charToHol[t.ch] = p
		holToChar[p.Word()] = t.ch
	}
}

// CharToPattern returns the punches for a character. Case is not folded.
func CharToPattern(ch rune) (punch.Pattern, bool) {
	p, ok := charToHol[ch]
	return p, ok
}

// PatternToChar returns the character punched by pattern.
func PatternToChar(p punch.Pattern) (rune, bool) {
	ch := holToChar[p.Word()]
	if ch == noChar {
		return 0, false
	}
	return ch, true
}

// Upper converts ASCII lower case letters to upper case.
func Upper(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

// EncodeString converts a string to punches. Characters with no
// punches on the 029 are left blank.
func EncodeString(str string) []punch.Pattern {
	codes := make([]punch.Pattern, 0, len(str))
	for _, ch := range str {
		p, ok := CharToPattern(Upper(ch))
		if !ok {
			p = punch.Blank
		}
		codes = append(codes, p)
	}
	return codes
}

// DecodeString converts punches to a string, '?' for invalid codes.
func DecodeString(codes []punch.Pattern) string {
	var str strings.Builder
	for _, p := range codes {
		ch, ok := PatternToChar(p)
		if !ok {
			ch = '?'
		}
		str.WriteRune(ch)
	}
	return str.String()
}

// Characters returns all characters that can be punched, in table order.
func Characters() []rune {
	chars := make([]rune, len(table029))
	for i, t := range table029 {
		chars[i] = t.ch
	}
	return chars
}
