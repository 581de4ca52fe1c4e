/*
 * Card deck read/punch routines.
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

package deck

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rcornwell/punchcard/util/card"
	"github.com/rcornwell/punchcard/util/debug"
	"github.com/rcornwell/punchcard/util/punch"
)

const (
	ModeAuto int = iota + 1
	ModeText
	ModeEBCDIC
	ModeBinary
)

var modeNames = map[string]int{
	"AUTO":   ModeAuto,
	"TEXT":   ModeText,
	"EBCDIC": ModeEBCDIC,
	"BINARY": ModeBinary,
	"DENSE":  ModeBinary,
}

// Return mode for name.
func ParseMode(name string) (int, error) {
	mode, ok := modeNames[strings.ToUpper(name)]
	if !ok {
		return 0, errors.New("invalid deck mode: " + name)
	}
	return mode, nil
}

// Return name of mode.
func ModeName(mode int) string {
	switch mode {
	case ModeAuto:
		return "auto"
	case ModeText:
		return "text"
	case ModeEBCDIC:
		return "ebcdic"
	case ModeBinary:
		return "binary"
	}
	return "unknown"
}

// Mode names for completion.
func ModeList() []string {
	return []string{"auto", "text", "ebcdic", "binary"}
}

const (
	CardOK int = iota + 1
	CardEOF
	CardEmpty
	CardError
)

const (
	debugRead = 1 << iota
	debugPunch
	debugDetail
)

var debugOption = map[string]int{
	"READ":   debugRead,
	"PUNCH":  debugPunch,
	"DETAIL": debugDetail,
}

var debugMsk int

// Enable debug option for decks.
func Debug(opt string) error {
	flag, err := debug.Lookup("deck", opt, debugOption)
	if err != nil {
		return err
	}
	debugMsk |= flag
	return nil
}

// One card in the hopper.
type entry struct {
	image card.Card
	eof   bool // End of file after this card.
	data  bool // Card holds data.
	err   bool // Card could not be converted.
}

type Deck struct {
	file       *os.File // file handle
	name       string   // Name of attached file
	mode       int      // Current input/output mode
	hopperPos  int      // Position in hopper
	eofPending bool     // Next return should be EOF
	deck       []entry  // Card images
}

/* Deck files come in three formats:

        Text: one card per line.
                returns are ignored.
                tabs are expanded to modules 8 characters.
                ~ alone on a line is treated as a EOF.

        EBCDIC: each card is 80 bytes of EBCDIC.

        Binary: each card is 108 bytes, 72 columns of 12 bits.

    Text mode recognizes some additional forms of input which allows the
    intermixing of binary cards with text cards.

    Lines beginning with ~raw are taken as a number of 4 digit octal values
    with represent each column of the card from 12 row down to 9 row. If there
    is not enough octal numbers to span a full card the remainder of the
    card will not be punched.

    Also ~eor, will generate a 7/8/9 punch card. An ~eof will gernerate a
    6/7/9 punch card, and a ~eoi will generate a 6/7/8/9 punch.

    Auto mode reads a file as text unless it has characters that can't be
    printed. Binary files that are a multiple of 108 bytes are object decks,
    other binary files are read one byte per column, 80 columns per card.

    Auto output format is text if every column has a character, otherwise
    a ~raw line.
*/

func NewDeck(mode int) *Deck {
	ctx := new(Deck)
	ctx.mode = mode
	return ctx
}

// Return if attached to a file
func (ctx *Deck) Attached() bool {
	return ctx.name != ""
}

// Attach a deck to a file
func (ctx *Deck) Attach(fileName string, mode int, write bool, eof bool) error {
	var err error

	if ctx.file != nil {
		_ = ctx.file.Close()
		ctx.file = nil
	}
	ctx.name = ""
	ctx.mode = mode
	if write {
		var file *os.File
		file, err = os.Create(fileName)
		if err != nil {
			return err
		}
		ctx.file = file
		ctx.name = fileName
		ctx.deck = []entry{}
		ctx.hopperPos = 0
		slog.Debug("Punching deck: " + fileName)
		return nil
	}
	err = ctx.readDeck(fileName)
	if err != nil {
		return err
	}
	ctx.name = fileName
	if eof {
		ctx.SetEOF()
	}
	slog.Debug(fmt.Sprintf("Read deck: %s %d cards", fileName, ctx.HopperSize()))
	return nil
}

// Detach from file
func (ctx *Deck) Detach() error {
	var err error
	if ctx.file != nil {
		err = ctx.file.Close()
		ctx.file = nil
	}
	ctx.name = ""
	ctx.deck = ctx.deck[:0]
	ctx.hopperPos = 0
	ctx.eofPending = false
	return err
}

// Number of cards left to read.
func (ctx *Deck) HopperSize() int {
	return len(ctx.deck) - ctx.hopperPos
}

// Number of cards read or punched.
func (ctx *Deck) StackSize() int {
	return len(ctx.deck)
}

// Return true if next card is end of file.
func (ctx *Deck) CardEOF() bool {
	if ctx.hopperPos >= len(ctx.deck) {
		return true
	}
	e := ctx.deck[ctx.hopperPos]
	return e.eof && !e.data
}

func (ctx *Deck) FileName() string {
	return ctx.name
}

func (ctx *Deck) Mode() int {
	return ctx.mode
}

// Set end of file flag on last card in deck
func (ctx *Deck) SetEOF() {
	if len(ctx.deck) != 0 {
		ctx.deck[len(ctx.deck)-1].eof = true
	}
}

// Read next card from hopper.
func (ctx *Deck) ReadCard() (card.Card, int) {
	if ctx.eofPending {
		ctx.eofPending = false
		return card.New(card.Binary), CardEOF
	}
	if ctx.hopperPos >= len(ctx.deck) {
		return card.New(card.Binary), CardEmpty
	}
	e := ctx.deck[ctx.hopperPos]
	ctx.hopperPos++

	if e.eof {
		if e.data {
			ctx.eofPending = true
			return e.image, CardOK
		}
		return card.New(card.Binary), CardEOF
	}
	if e.err {
		return e.image, CardError
	}
	return e.image, CardOK
}

// Empty hopper of cards
func (ctx *Deck) EmptyDeck() {
	ctx.deck = ctx.deck[0:0]
	ctx.hopperPos = 0
	ctx.eofPending = false
}

// Add n blank cards to hopper.
func (ctx *Deck) BlankDeck(n int) {
	for i := 0; i < n; i++ {
		ctx.deck = append(ctx.deck, entry{image: card.New(card.Binary), data: true})
	}
}

// Add a card to the hopper.
func (ctx *Deck) AddCard(c card.Card) {
	ctx.deck = append(ctx.deck, entry{image: c, data: true})
}

// Check if every column has a character.
func isPrintable(c card.Card) bool {
	for _, col := range c.Columns() {
		if _, ok := col.Char(); !ok {
			return false
		}
	}
	return true
}

// Format card as ~raw octal line.
func rawLine(c card.Card) []byte {
	cols := c.Patterns()
	var last int
	for last = len(cols); last > 0; last-- {
		if !cols[last-1].IsBlank() {
			break
		}
	}
	out := []byte("~raw")
	for _, p := range cols[:last] {
		out = append(out, fmt.Sprintf("%04o", p.Word())...)
	}
	return append(out, '\n')
}

// Punch a card to the attached file.
func (ctx *Deck) PunchCard(c card.Card) error {
	if ctx.file == nil {
		return errors.New("deck not attached")
	}

	var out []byte
	switch ctx.mode {
	case ModeAuto, ModeText:
		if ctx.mode == ModeAuto && !isPrintable(c) {
			out = rawLine(c)
			break
		}
		out = []byte(strings.TrimRight(c.ToText(), " ") + "\n")
	case ModeEBCDIC:
		out = c.ToEBCDIC()
	case ModeBinary:
		out = c.ToBinary()
	default:
		return fmt.Errorf("invalid deck mode: %d", ctx.mode)
	}
	debug.Debugf("deck", debugMsk, debugPunch, "punch %d %d bytes", len(ctx.deck), len(out))
	ctx.deck = append(ctx.deck, entry{image: c, data: true})
	ctx.hopperPos = len(ctx.deck)
	_, err := ctx.file.Write(out)
	return err
}

// Read file into hopper, after any cards not yet read.
func (ctx *Deck) readDeck(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	ctx.deck = ctx.deck[ctx.hopperPos:]
	ctx.hopperPos = 0
	ctx.eofPending = false

	mode := ctx.mode
	if mode == ModeAuto {
		mode = detectMode(data)
		debug.Debugf("deck", debugMsk, debugRead, "%s auto mode %d", fileName, mode)
	}

	switch mode {
	case ModeText:
		ctx.parseText(data)
	case ModeEBCDIC:
		for len(data) > 0 {
			n := min(len(data), card.EBCDICSize)
			ctx.deck = append(ctx.deck, entry{image: card.FromEBCDIC(data[:n]), data: true})
			data = data[n:]
		}
	case ModeBinary:
		for len(data) > 0 {
			if len(data) < card.DenseSize {
				// Short record.
				ctx.deck = append(ctx.deck, entry{image: card.New(card.Binary), err: true})
				break
			}
			ctx.deck = append(ctx.deck, entry{image: card.FromBinary(data[:card.DenseSize]), data: true})
			data = data[card.DenseSize:]
		}
	case modeLegacy:
		for len(data) > 0 {
			n := min(len(data), card.LegacySize)
			ctx.deck = append(ctx.deck, entry{image: card.FromBinary(data[:n]), data: true})
			data = data[n:]
		}
	}
	debug.Debugf("deck", debugMsk, debugRead, "%s %d cards", fileName, len(ctx.deck))
	return nil
}

// One byte per column, only found by auto mode.
const modeLegacy = ModeBinary + 1

// Guess format of file.
func detectMode(data []byte) int {
	if isText(data) {
		return ModeText
	}
	if len(data)%card.DenseSize == 0 {
		return ModeBinary
	}
	return modeLegacy
}

// Check if data looks like text.
func isText(data []byte) bool {
	if !utf8.Valid(data) {
		return false
	}
	for _, r := range string(data) {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// Convert text lines to cards.
func (ctx *Deck) parseText(data []byte) {
	lines := bytes.Split(data, []byte{'\n'})
	// Last line ends without newline.
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	for _, line := range lines {
		ctx.deck = append(ctx.deck, parseLine(string(line)))
	}
}

// Convert one line into card image.
func parseLine(line string) entry {
	line = strings.TrimRight(line, "\r")
	if strings.HasPrefix(line, "~") {
		if strings.TrimSpace(line[1:]) == "" {
			return entry{image: card.New(card.Text), eof: true}
		}
		word := strings.ToUpper(line[1:min(len(line), 4)])
		switch word {
		case "RAW":
			return parseRaw(line[4:])
		case "EOR":
			return specialCard(punch.New(7, 8, 9))
		case "EOF":
			return specialCard(punch.New(6, 7, 9))
		case "EOI":
			return specialCard(punch.New(6, 7, 8, 9))
		}
	}

	c := card.New(card.Text)
	col := 0
	for _, ch := range line {
		if col >= card.Columns {
			break
		}
		if ch == '\t' {
			// Skip to multiple of 8
			col = (col | 7) + 1
			continue
		}
		_ = c.SetColumnChar(col, ch)
		col++
	}
	return entry{image: c, data: true}
}

// Card with punch in column 1 only.
func specialCard(p punch.Pattern) entry {
	c := card.New(card.Binary)
	_ = c.SetColumnPattern(0, p)
	return entry{image: c, data: true}
}

// Convert octal digits to a binary card, 4 digits per column.
func parseRaw(digits string) entry {
	e := entry{image: card.New(card.Binary), data: true}
	col := 0
	j := 0
	word := uint16(0)
	for _, ch := range strings.TrimSpace(digits) {
		if col >= card.Columns {
			break
		}
		if ch < '0' || ch > '7' {
			e.err = true
			continue
		}
		word = (word << 3) | uint16(ch-'0')
		j++
		if j == 4 {
			_ = e.image.SetColumnPattern(col, punch.FromWord(word))
			col++
			j = 0
			word = 0
		}
	}
	return e
}
