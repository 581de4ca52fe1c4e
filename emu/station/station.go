/*
 * Keypunch station, card being punched plus reader and punch.
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
	"fmt"
	"log/slog"
	"strings"

	"github.com/rcornwell/punchcard/command/command"
	"github.com/rcornwell/punchcard/util/card"
	"github.com/rcornwell/punchcard/util/deck"
	"github.com/rcornwell/punchcard/util/ibm1130"
	"github.com/rcornwell/punchcard/util/punch"
)

// Station settings, filled in from configuration file.
type Settings struct {
	Format     int    // Format for save and punch.
	ReaderFile string // Deck to load into reader.
	ReaderMode int    // Mode of reader deck.
	ReaderEOF  bool   // Signal end of file after reader deck.
	PunchFile  string // File to punch cards into.
	PunchMode  int    // Mode of punch file.
	Echo       bool   // Show card after each change.
	Color      bool   // Force color output.
}

// Settings used when station is created.
var Config = DefaultSettings()

func DefaultSettings() Settings {
	return Settings{
		Format:     deck.ModeAuto,
		ReaderMode: deck.ModeAuto,
		PunchMode:  deck.ModeAuto,
	}
}

var (
	ErrEndOfCard = errors.New("end of card")
	ErrEOF       = errors.New("reader at end of file")
)

type Station struct {
	card     card.Card // Card in punch station.
	cursor   int       // Next column to punch.
	reader   *Unit
	punch    *Unit
	settings Settings
}

// Create station, attach reader and punch if configured.
func New(settings Settings) (*Station, error) {
	st := &Station{
		card:     card.New(card.Text),
		reader:   newUnit("reader", false, settings.ReaderMode),
		punch:    newUnit("punch", true, settings.PunchMode),
		settings: settings,
	}
	if settings.ReaderFile != "" {
		err := st.reader.attachFile(settings.ReaderFile, settings.ReaderMode, settings.ReaderEOF)
		if err != nil {
			return nil, err
		}
	}
	if settings.PunchFile != "" {
		err := st.punch.attachFile(settings.PunchFile, settings.PunchMode, false)
		if err != nil {
			return nil, err
		}
	}
	return st, nil
}

// Close any open files.
func (st *Station) Close() error {
	err := st.reader.Detach()
	if perr := st.punch.Detach(); perr != nil {
		err = perr
	}
	return err
}

func (st *Station) Settings() Settings {
	return st.settings
}

// Return card in punch station.
func (st *Station) Card() card.Card {
	return st.card
}

// Replace card in punch station.
func (st *Station) SetCard(c card.Card) {
	st.card = c
	st.cursor = 0
}

// Return next column to punch.
func (st *Station) Cursor() int {
	return st.cursor
}

// Move to column.
func (st *Station) SetCursor(col int) error {
	if col < 0 || col >= card.Columns {
		return fmt.Errorf("column %d: %w", col+1, card.ErrColumnRange)
	}
	st.cursor = col
	return nil
}

// Return unit by name.
func (st *Station) Unit(name string) (command.Command, error) {
	switch strings.ToLower(name) {
	case "reader":
		return st.reader, nil
	case "punch":
		return st.punch, nil
	}
	return nil, errors.New("unknown unit: " + name)
}

// Names of units.
func UnitNames() []string {
	return []string{"punch", "reader"}
}

func (st *Station) Reader() *deck.Deck {
	return st.reader.deck
}

func (st *Station) PunchDeck() *deck.Deck {
	return st.punch.deck
}

// Type text at cursor. Stops at end of card.
func (st *Station) Punch(text string) error {
	for _, ch := range text {
		if st.cursor >= card.Columns {
			return ErrEndOfCard
		}
		if err := st.card.SetColumnChar(st.cursor, ch); err != nil {
			return err
		}
		st.cursor++
	}
	return nil
}

// Punch character into column.
func (st *Station) SetChar(col int, ch rune) error {
	return st.card.SetColumnChar(col, ch)
}

// Punch rows into column, replacing current punches.
func (st *Station) SetRows(col int, rows string) error {
	p, err := punch.Parse(rows)
	if err != nil {
		return err
	}
	return st.card.SetColumnPattern(col, p)
}

func (st *Station) ClearColumn(col int) error {
	return st.card.ClearColumn(col)
}

// Clear card and return to column 1.
func (st *Station) Clear() {
	st.card.Clear()
	st.cursor = 0
}

// Feed next card from reader. Empty hopper gives a blank card.
func (st *Station) Feed() error {
	c, status := st.reader.deck.ReadCard()
	switch status {
	case deck.CardOK:
	case deck.CardEmpty:
		c = card.New(card.Text)
	case deck.CardEOF:
		return ErrEOF
	case deck.CardError:
		return errors.New("reader card not valid")
	}
	st.SetCard(c)
	slog.Debug("Feed card", "hopper", st.reader.deck.HopperSize())
	return nil
}

// Move card to punch stacker and feed a blank card.
func (st *Station) Stack() error {
	d := st.punch.deck
	if d.Attached() {
		if err := d.PunchCard(st.card); err != nil {
			return fmt.Errorf("punch: %w", err)
		}
	} else {
		d.AddCard(st.card)
	}
	st.SetCard(card.New(card.Text))
	return nil
}

// Load first card of a file. EBCDIC files must be given mode, auto
// mode can't tell them from one byte per column cards.
func (st *Station) Load(fileName string, mode int) error {
	d := deck.NewDeck(mode)
	if err := d.Attach(fileName, mode, false, false); err != nil {
		return err
	}
	c, status := d.ReadCard()
	if status != deck.CardOK {
		return errors.New("no card in file: " + fileName)
	}
	st.SetCard(c)
	return d.Detach()
}

// Save card to a file. Auto mode uses configured format.
func (st *Station) Save(fileName string, mode int) error {
	if mode == deck.ModeAuto {
		mode = st.settings.Format
	}
	d := deck.NewDeck(mode)
	if err := d.Attach(fileName, mode, true, false); err != nil {
		return err
	}
	if err := d.PunchCard(st.card); err != nil {
		_ = d.Detach()
		return err
	}
	return d.Detach()
}

// Load example card, source or object.
func (st *Station) Example(kind string) error {
	switch strings.ToLower(kind) {
	case "source":
		st.SetCard(ibm1130.ExampleSource())
	case "object":
		st.SetCard(ibm1130.ExampleObject())
	default:
		return errors.New("unknown example: " + kind)
	}
	return nil
}

// Check card as source or object card.
func (st *Station) Validate(kind string) error {
	switch strings.ToLower(kind) {
	case "source":
		return ibm1130.ValidateSource(st.card)
	case "object":
		return ibm1130.ValidateObject(st.card)
	}
	return errors.New("unknown card kind: " + kind)
}
