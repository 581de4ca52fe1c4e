/*
 * EBCDIC conversion test cases.
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
	"testing"

	"github.com/rcornwell/punchcard/util/hollerith"
	"github.com/rcornwell/punchcard/util/punch"
)

func TestSpace(t *testing.T) {
	if FromPattern(punch.Blank) != 0x40 {
		t.Errorf("Blank gave %02x", FromPattern(punch.Blank))
	}
	if !ToPattern(0x40).IsBlank() {
		t.Errorf("Space gave %v", ToPattern(0x40))
	}
}

func TestSingle(t *testing.T) {
	for i := 0; i < 10; i++ {
		if code := FromPattern(punch.New(i)); code != byte(0xf0+i) {
			t.Errorf("Row %d gave %02x", i, code)
		}
	}
	if code := FromPattern(punch.New(12)); code != 0x4c {
		t.Errorf("Row 12 gave %02x", code)
	}
	if code := FromPattern(punch.New(11)); code != 0x60 {
		t.Errorf("Row 11 gave %02x", code)
	}
	if code := FromPattern(punch.New(0, 1)); code != 0x61 {
		t.Errorf("Row 0-1 gave %02x", code)
	}
}

func TestLetters(t *testing.T) {
	for i := 1; i <= 9; i++ {
		if code := FromPattern(punch.New(12, i)); code != byte(0xc0+i) {
			t.Errorf("12-%d gave %02x", i, code)
		}
		if code := FromPattern(punch.New(11, i)); code != byte(0xd0+i) {
			t.Errorf("11-%d gave %02x", i, code)
		}
	}
	for i := 2; i <= 9; i++ {
		if code := FromPattern(punch.New(0, i)); code != byte(0xe0+i) {
			t.Errorf("0-%d gave %02x", i, code)
		}
	}
}

// Letters must agree with the keypunch table.
func TestAgreesWithKeypunch(t *testing.T) {
	for _, code := range Codes() {
		ch, ok := Printable(code)
		if !ok {
			continue
		}
		p, _ := hollerith.CharToPattern(ch)
		if p != ToPattern(code) {
			t.Errorf("Code %02x %q punched %v keypunch %v", code, ch, ToPattern(code), p)
		}
	}
}

// Patterns without a code fall back to space.
func TestFallback(t *testing.T) {
	tests := []punch.Pattern{
		punch.New(12, 3, 8),
		punch.New(2, 8),
		punch.New(12, 11),
		punch.New(0, 1, 2, 3),
		punch.New(1, 2),
	}
	for _, p := range tests {
		if code := FromPattern(p); code != 0x40 {
			t.Errorf("Pattern %v gave %02x", p, code)
		}
	}
	for w := 0; w < 4096; w++ {
		p := punch.FromWord(uint16(w))
		if p.Len() >= 3 && FromPattern(p) != 0x40 {
			t.Errorf("Pattern %v gave %02x", p, FromPattern(p))
		}
	}
}

func TestUnknownCode(t *testing.T) {
	for _, code := range []byte{0x00, 0x41, 0x4b, 0x5b, 0xc0, 0xca, 0xe1, 0xfa, 0xff} {
		if !ToPattern(code).IsBlank() {
			t.Errorf("Code %02x gave %v", code, ToPattern(code))
		}
	}
}

// Every code produced comes back unchanged.
func TestRoundTrip(t *testing.T) {
	for w := 0; w < 4096; w++ {
		code := FromPattern(punch.FromWord(uint16(w)))
		if back := FromPattern(ToPattern(code)); back != code {
			t.Errorf("Code %02x round trip gave %02x", code, back)
		}
	}
	if len(Codes()) != 40 {
		t.Errorf("Expected 40 codes got %d", len(Codes()))
	}
}

func TestPrintable(t *testing.T) {
	tests := []struct {
		code byte
		ch   rune
		ok   bool
	}{
		{0x40, ' ', true},
		{0xf0, '0', true},
		{0xf9, '9', true},
		{0xc1, 'A', true},
		{0xc9, 'I', true},
		{0xd1, 'J', true},
		{0xd9, 'R', true},
		{0xe2, 'S', true},
		{0xe9, 'Z', true},
		{0x4c, 0, false},
		{0x60, 0, false},
		{0x61, 0, false},
		{0x00, 0, false},
	}
	for _, test := range tests {
		ch, ok := Printable(test.code)
		if ok != test.ok || ch != test.ch {
			t.Errorf("Code %02x gave %q %v", test.code, ch, ok)
		}
	}
}
