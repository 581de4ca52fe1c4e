/*
 * Station test cases.
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

package station

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcornwell/punchcard/command/command"
	"github.com/rcornwell/punchcard/util/card"
	"github.com/rcornwell/punchcard/util/deck"
	"github.com/rcornwell/punchcard/util/ibm1130"
	"github.com/rcornwell/punchcard/util/punch"
)

func newStation(t *testing.T) *Station {
	t.Helper()
	st, err := New(DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestPunchText(t *testing.T) {
	st := newStation(t)
	if err := st.Punch("HELLO"); err != nil {
		t.Error(err)
	}
	if st.Cursor() != 5 {
		t.Errorf("Cursor %d expected 5", st.Cursor())
	}
	if err := st.Punch(" world"); err != nil {
		t.Error(err)
	}
	if !strings.HasPrefix(st.Card().ToText(), "HELLO WORLD ") {
		t.Errorf("Card text %q", st.Card().ToText())
	}
	if err := st.Punch(strings.Repeat("X", 80)); !errors.Is(err, ErrEndOfCard) {
		t.Errorf("Punch past end got %v", err)
	}
	if st.Cursor() != card.Columns {
		t.Errorf("Cursor %d at end of card", st.Cursor())
	}
}

func TestSetRows(t *testing.T) {
	st := newStation(t)
	if err := st.SetRows(4, "12-3-8"); err != nil {
		t.Error(err)
	}
	col, _ := st.Card().Column(4)
	if col.Punches != punch.New(12, 3, 8) {
		t.Errorf("Column 5 punches %v", col.Punches)
	}
	if err := st.SetRows(4, "13"); err == nil {
		t.Errorf("Invalid row accepted")
	}
	if err := st.SetRows(80, "1"); !errors.Is(err, card.ErrColumnRange) {
		t.Errorf("Column 81 got %v", err)
	}
	if err := st.ClearColumn(4); err != nil {
		t.Error(err)
	}
	if st.Card().PunchedCount() != 0 {
		t.Errorf("Column not cleared")
	}
}

func TestSetCursor(t *testing.T) {
	st := newStation(t)
	if err := st.SetCursor(79); err != nil {
		t.Error(err)
	}
	if err := st.SetCursor(80); !errors.Is(err, card.ErrColumnRange) {
		t.Errorf("Cursor 80 got %v", err)
	}
	_ = st.SetChar(0, 'Q')
	st.Clear()
	if st.Cursor() != 0 || st.Card().PunchedCount() != 0 {
		t.Errorf("Clear left cursor %d punched %d", st.Cursor(), st.Card().PunchedCount())
	}
}

func TestFeedStack(t *testing.T) {
	dir := t.TempDir()
	readFile := filepath.Join(dir, "in.txt")
	punchFile := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(readFile, []byte("CARD ONE\nCARD TWO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	settings := DefaultSettings()
	settings.ReaderFile = readFile
	settings.ReaderEOF = true
	settings.PunchFile = punchFile
	settings.PunchMode = deck.ModeText
	st, err := New(settings)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"CARD ONE", "CARD TWO"} {
		if err := st.Feed(); err != nil {
			t.Error(err)
		}
		if !strings.HasPrefix(st.Card().ToText(), want) {
			t.Errorf("Fed card %q expected %s", st.Card().ToText(), want)
		}
		_ = st.SetCursor(9)
		_ = st.Punch("X")
		if err := st.Stack(); err != nil {
			t.Error(err)
		}
	}
	if err := st.Feed(); !errors.Is(err, ErrEOF) {
		t.Errorf("Feed at end of file got %v", err)
	}
	if err := st.Feed(); err != nil {
		t.Errorf("Feed empty hopper got %v", err)
	}
	if st.Card().PunchedCount() != 0 {
		t.Errorf("Empty hopper card not blank")
	}
	if st.PunchDeck().StackSize() != 2 {
		t.Errorf("Punched %d cards", st.PunchDeck().StackSize())
	}
	_ = st.Close()

	data, err := os.ReadFile(punchFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "CARD ONE X\nCARD TWO X\n" {
		t.Errorf("Punched file %q", string(data))
	}
}

func TestStackNoPunchFile(t *testing.T) {
	st := newStation(t)
	_ = st.Punch("A")
	if err := st.Stack(); err != nil {
		t.Error(err)
	}
	if st.PunchDeck().StackSize() != 1 {
		t.Errorf("Stacker holds %d cards", st.PunchDeck().StackSize())
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	st := newStation(t)
	_ = st.Example("object")
	want := st.Card()

	name := filepath.Join(dir, "card.bin")
	if err := st.Save(name, deck.ModeBinary); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(name)
	if err != nil || info.Size() != card.DenseSize {
		t.Errorf("Saved card size not correct: %v", err)
	}
	st.Clear()
	if err := st.Load(name, deck.ModeAuto); err != nil {
		t.Fatal(err)
	}
	got := st.Card()
	for i := 0; i < card.DenseColumns; i++ {
		a, _ := got.Column(i)
		b, _ := want.Column(i)
		if a.Punches != b.Punches {
			t.Errorf("Column %d %v != %v", i+1, a.Punches, b.Punches)
		}
	}

	name = filepath.Join(dir, "card.ebc")
	_ = st.Example("source")
	if err := st.Save(name, deck.ModeEBCDIC); err != nil {
		t.Fatal(err)
	}
	st.Clear()
	if err := st.Load(name, deck.ModeEBCDIC); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(st.Card().ToText(), "START DC") {
		t.Errorf("Loaded EBCDIC card %q", st.Card().ToText())
	}

	if err := st.Load(filepath.Join(dir, "missing"), deck.ModeAuto); err == nil {
		t.Errorf("Load of missing file succeeded")
	}
}

func TestExampleValidate(t *testing.T) {
	st := newStation(t)
	if err := st.Example("source"); err != nil {
		t.Error(err)
	}
	if err := st.Validate("source"); err != nil {
		t.Error(err)
	}
	if err := st.Validate("object"); !errors.Is(err, ibm1130.ErrNotObject) {
		t.Errorf("Source card valid as object: %v", err)
	}
	if err := st.Example("object"); err != nil {
		t.Error(err)
	}
	if err := st.Validate("object"); err != nil {
		t.Error(err)
	}
	if err := st.Example("listing"); err == nil {
		t.Errorf("Unknown example accepted")
	}
	if err := st.Validate("listing"); err == nil {
		t.Errorf("Unknown kind accepted")
	}
}

func TestUnitAttach(t *testing.T) {
	st := newStation(t)
	unit, err := st.Unit("Reader")
	if err != nil {
		t.Fatal(err)
	}
	opts := []*command.CmdOption{{Name: "blank", Value: 3}}
	if err := unit.Attach(opts); err != nil {
		t.Error(err)
	}
	if st.Reader().HopperSize() != 3 {
		t.Errorf("Hopper %d expected 3", st.Reader().HopperSize())
	}
	out, err := unit.Show([]*command.CmdOption{{Name: "cards"}})
	if err != nil {
		t.Error(err)
	}
	if out != "reader: not attached mode=auto hopper=3" {
		t.Errorf("Show got %q", out)
	}
	if err := unit.Attach([]*command.CmdOption{{Name: "mode", EqualOpt: "text"}}); err == nil {
		t.Errorf("Attach without file succeeded")
	}

	punchUnit, _ := st.Unit("punch")
	err = punchUnit.Attach([]*command.CmdOption{{Name: "file", EqualOpt: "x"}, {Name: "eof"}})
	if err == nil {
		t.Errorf("Punch accepted eof")
	}
	if _, err := st.Unit("printer"); err == nil {
		t.Errorf("Unknown unit found")
	}
}
