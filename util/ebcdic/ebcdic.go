/*
 * EBCDIC to Hollerith conversion.
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

package ebcdic

import (
	"fmt"

	"github.com/rcornwell/punchcard/util/punch"
)

// Space is used for every pattern without an EBCDIC code.
const Space byte = 0x40

// Column images for EBCDIC codes, 0xffff means no punches assigned.
var ebcdicToHol [256]uint16

// Back translation, indexed by column image.
var holToEbcdic [4096]uint16

// Initialize translation tables.
func init() {
	for i := range ebcdicToHol {
		ebcdicToHol[i] = 0xffff
	}
	for i := range holToEbcdic {
		holToEbcdic[i] = 0x100
	}

	ebcdicToHol[Space] = 0o0000
	ebcdicToHol[0x4c] = 0o4000 // & is the 12 punch alone
	ebcdicToHol[0x60] = 0o2000 // -
	ebcdicToHol[0x61] = 0o1400 // /
	for i := 0; i < 10; i++ {
		ebcdicToHol[0xf0+i] = 0o1000 >> i
	}
	for i := 0; i < 9; i++ {
		ebcdicToHol[0xc1+i] = 0o4000 | (0o400 >> i) // A-I
		ebcdicToHol[0xd1+i] = 0o2000 | (0o400 >> i) // J-R
	}
	for i := 0; i < 8; i++ {
		ebcdicToHol[0xe2+i] = 0o1000 | (0o200 >> i) // S-Z
	}

	for i, t := range ebcdicToHol {
		if t == 0xffff {
			continue
		}
		if holToEbcdic[t] != 0x100 {
			s := fmt.Sprintf("Translation error EBCDIC %02x is %04o and %02x", i, t, holToEbcdic[t])
			panic(s)
		}
		holToEbcdic[t] = uint16(i)
	}
}

// FromPattern returns the EBCDIC code for a column. Patterns with no
// code read as a space.
func FromPattern(p punch.Pattern) byte {
	code := holToEbcdic[p.Word()]
	if code > 0xff {
		return Space
	}
	return byte(code)
}

// ToPattern returns the punches for an EBCDIC code. Unknown codes are
// left blank.
func ToPattern(code byte) punch.Pattern {
	hol := ebcdicToHol[code]
	if hol == 0xffff {
		return punch.Blank
	}
	return punch.FromWord(hol)
}

// Printable returns the character printed for an EBCDIC code.
func Printable(code byte) (rune, bool) {
	switch {
	case code == Space:
		return ' ', true
	case code >= 0xf0 && code <= 0xf9:
		return '0' + rune(code-0xf0), true
	case code >= 0xc1 && code <= 0xc9:
		return 'A' + rune(code-0xc1), true
	case code >= 0xd1 && code <= 0xd9:
		return 'J' + rune(code-0xd1), true
	case code >= 0xe2 && code <= 0xe9:
		return 'S' + rune(code-0xe2), true
	}
	return 0, false
}

// Codes returns every EBCDIC code that has punches assigned.
func Codes() []byte {
	codes := []byte{}
	for i, t := range ebcdicToHol {
		if t != 0xffff {
			codes = append(codes, byte(i))
		}
	}
	return codes
}
