/*
 * Batch deck conversion test cases.
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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcornwell/punchcard/util/card"
	"github.com/rcornwell/punchcard/util/deck"
)

func TestConvertTextToBinary(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.bin")
	if err := os.WriteFile(in, []byte("ONE\nTWO\n~\nTHREE\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	n, err := convertDeck(in, deck.ModeText, out, deck.ModeBinary, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Converted %d cards expected 3", n)
	}
	info, err := os.Stat(out)
	if err != nil || info.Size() != 3*card.DenseSize {
		t.Errorf("Output size not correct: %v", err)
	}

	var buf bytes.Buffer
	n, err = convertDeck(out, deck.ModeAuto, "", deck.ModeText, &buf)
	if err != nil || n != 3 {
		t.Errorf("List converted %d cards: %v", n, err)
	}
	if buf.String() != "   1 ONE\n   2 TWO\n   3 THREE\n" {
		t.Errorf("Listing got %q", buf.String())
	}
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := convertDeck(filepath.Join(dir, "missing"), deck.ModeAuto, "", deck.ModeText, nil); err == nil {
		t.Errorf("Missing input accepted")
	}

	in := filepath.Join(dir, "short.bin")
	if err := os.WriteFile(in, make([]byte, 20), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := convertDeck(in, deck.ModeBinary, filepath.Join(dir, "out.txt"), deck.ModeText, nil)
	if !errors.Is(err, errBadCard) {
		t.Errorf("Short card got %v", err)
	}
}
