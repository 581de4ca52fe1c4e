/*
 * Punch pattern test cases.
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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Check rows are sorted and duplicates removed.
func TestNewCanonical(t *testing.T) {
	p := New(12, 1, 12, 1)
	if diff := cmp.Diff([]int{1, 12}, p.Rows()); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if p != New(1, 12) {
		t.Errorf("Order changed pattern %04o != %04o", p, New(1, 12))
	}
	if p.Len() != 2 {
		t.Errorf("Len got %d expected 2", p.Len())
	}
}

// Invalid rows are dropped.
func TestNewInvalidRow(t *testing.T) {
	p := New(10, 13, -1, 5)
	if diff := cmp.Diff([]int{5}, p.Rows()); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsOrder(t *testing.T) {
	p := New(12, 11, 9, 0, 8, 1)
	want := []int{0, 1, 8, 9, 11, 12}
	if diff := cmp.Diff(want, p.Rows()); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBlank(t *testing.T) {
	if !Blank.IsBlank() || Blank.Len() != 0 {
		t.Errorf("Blank pattern not blank")
	}
	if len(Blank.Rows()) != 0 {
		t.Errorf("Blank pattern has rows %v", Blank.Rows())
	}
	if New().IsBlank() != true {
		t.Errorf("Empty New not blank")
	}
}

// Slot order must be 12, 11, 0, 1 ... 9.
func TestPositionalOrder(t *testing.T) {
	slotRow := []int{12, 11, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	for slot, row := range slotRow {
		pos := New(row).ToPositional()
		for i := 0; i < Slots; i++ {
			if pos[i] != (i == slot) {
				t.Errorf("Row %d slot %d set=%v", row, i, pos[i])
			}
		}
		var want [Slots]bool
		want[slot] = true
		if FromPositional(want) != New(row) {
			t.Errorf("Slot %d did not give row %d", slot, row)
		}
	}
}

// Every reachable pattern round trips.
func TestPositionalRoundTrip(t *testing.T) {
	for w := 0; w < 4096; w++ {
		p := FromWord(uint16(w))
		if got := FromPositional(p.ToPositional()); got != p {
			t.Errorf("Pattern %04o round trip gave %04o", p, got)
		}
		if got := New(p.Rows()...); got != p {
			t.Errorf("Pattern %04o rows round trip gave %04o", p, got)
		}
	}
}

func TestWord(t *testing.T) {
	if New(12, 1).Word() != 0o4400 {
		t.Errorf("12-1 word %04o", New(12, 1).Word())
	}
	if FromWord(0xf000) != Blank {
		t.Errorf("High bits not masked")
	}
	if New(9).Word() != 1 {
		t.Errorf("Row 9 word %04o", New(9).Word())
	}
}

func TestIsPunched(t *testing.T) {
	p := New(11, 3, 8)
	for _, row := range []int{11, 3, 8} {
		if !p.IsPunched(row) {
			t.Errorf("Row %d not punched", row)
		}
	}
	for _, row := range []int{12, 0, 1, 9, 10} {
		if p.IsPunched(row) {
			t.Errorf("Row %d punched", row)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		p    Pattern
		want string
	}{
		{Blank, "blank"},
		{New(5), "5"},
		{New(12, 1), "12-1"},
		{New(12, 3, 8), "12-3-8"},
		{New(0, 7, 8), "0-7-8"},
		{New(12, 11, 0), "12-11-0"},
	}
	for _, test := range tests {
		if got := test.p.String(); got != test.want {
			t.Errorf("String %04o got %q expected %q", test.p, got, test.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Pattern
		ok   bool
	}{
		{"", Blank, true},
		{"blank", Blank, true},
		{"12-1", New(12, 1), true},
		{"1,12", New(12, 1), true},
		{" 0 - 3 - 8 ", New(0, 3, 8), true},
		{"10", Blank, false},
		{"x", Blank, false},
	}
	for _, test := range tests {
		got, err := Parse(test.in)
		if (err == nil) != test.ok {
			t.Errorf("Parse %q error %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse %q got %v expected %v", test.in, got, test.want)
		}
	}
	for w := 0; w < 4096; w++ {
		p := FromWord(uint16(w))
		got, err := Parse(p.String())
		if err != nil || got != p {
			t.Errorf("Parse of %q gave %v %v", p.String(), got, err)
		}
	}
}
