/*
 * Hex dump test cases.
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

package hex

import (
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	var str strings.Builder
	FormatBytes(&str, true, []byte{0x00, 0x4f, 0xf0, 0xab})
	if v := str.String(); v != "00 4F F0 AB " {
		t.Errorf("FormatBytes got %q", v)
	}
	str.Reset()
	FormatBytes(&str, false, []byte{0x12, 0xc1})
	if v := str.String(); v != "12C1" {
		t.Errorf("FormatBytes no space got %q", v)
	}
}

func TestFormatOctal(t *testing.T) {
	var str strings.Builder
	FormatOctal(&str, true, []uint16{0o4000, 0o0001, 0o7777, 0})
	if v := str.String(); v != "4000 0001 7777 0000 " {
		t.Errorf("FormatOctal got %q", v)
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := map[byte]string{0: "0", 9: "9", 10: "10", 80: "80", 108: "108", 255: "255"}
	for num, want := range tests {
		var str strings.Builder
		FormatDecimal(&str, num)
		if str.String() != want {
			t.Errorf("FormatDecimal %d got %q", num, str.String())
		}
	}
}

func TestDump(t *testing.T) {
	data := []byte{0xc1, 0xc2, 0xc3, 0x40, 0xf1}
	want := "0000: C1 C2 C3 40 \n0004: F1 \n"
	if v := Dump(data, 4); v != want {
		t.Errorf("Dump got %q expected %q", v, want)
	}
	if v := Dump(nil, 4); v != "" {
		t.Errorf("Dump empty got %q", v)
	}
	if v := Dump(data, 0); v != "0000: C1 C2 C3 40 F1 \n" {
		t.Errorf("Dump default width got %q", v)
	}
}
