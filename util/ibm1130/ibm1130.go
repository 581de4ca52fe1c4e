/*
 * IBM 1130 assembler source and object deck cards.
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

package ibm1130

import (
	"errors"

	"github.com/rcornwell/punchcard/util/card"
)

var (
	ErrNotSource = errors.New("source cards must be text type")
	ErrNotObject = errors.New("object cards must be binary type")
	ErrBlank     = errors.New("object card cannot be blank")
)

// Sequence number punched in columns 73 to 80 of example object card.
const exampleSequence = "00000001"

// Source card layout: label 1-5, continuation 6, opcode 7-10, operands
// and comments 11-80.
func ExampleSource() card.Card {
	return card.FromText("START DC   0             IBM 1130 EXAMPLE PROGRAM")
}

// Object card with a repeating data pattern in columns 1-72 and the
// sequence number in 73-80. Loaded one byte per column.
func ExampleObject() card.Card {
	pattern := []byte{0xf0, 0xcc, 0xaa, 0x99}
	data := make([]byte, 0, card.LegacySize)
	for i := 0; i < card.DenseColumns; i++ {
		data = append(data, pattern[i%len(pattern)])
	}
	data = append(data, exampleSequence...)
	return card.FromBinary(data)
}

// Validate source card.
func ValidateSource(c card.Card) error {
	if c.Type() != card.Text {
		return ErrNotSource
	}
	return nil
}

// Validate object deck card.
func ValidateObject(c card.Card) error {
	if c.Type() != card.Binary {
		return ErrNotObject
	}
	if c.PunchedCount() == 0 {
		return ErrBlank
	}
	return nil
}
