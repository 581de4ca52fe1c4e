/*
 * Card image formats.
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

import "fmt"

const (
	Columns      = 80  // Columns on a card.
	DenseColumns = 72  // Columns held by an object deck card.
	DenseSize    = 108 // Bytes in an object deck card, 72 * 12 bits.
	EBCDICSize   = 80  // Bytes in an EBCDIC card.
	LegacySize   = 80  // Most bytes read from a one byte per column card.
)

// Format of a card image in a file.
type Format int

const (
	FormatDense  Format = iota + 1 // 72 columns of 12 bits.
	FormatLegacy                   // One byte per column, rows 12 to 5.
	FormatEBCDIC                   // One EBCDIC code per column.
)

func (f Format) String() string {
	switch f {
	case FormatDense:
		return "dense"
	case FormatLegacy:
		return "legacy"
	case FormatEBCDIC:
		return "ebcdic"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// BinaryFormat picks the format of a binary buffer from its length.
// Only a buffer of exactly DenseSize bytes is an object deck card.
func BinaryFormat(size int) Format {
	if size == DenseSize {
		return FormatDense
	}
	return FormatLegacy
}
