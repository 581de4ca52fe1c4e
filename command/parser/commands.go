/*
 * Command executer.
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

package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	command "github.com/rcornwell/punchcard/command/command"
	"github.com/rcornwell/punchcard/emu/station"
	"github.com/rcornwell/punchcard/util/card"
	"github.com/rcornwell/punchcard/util/debug"
	"github.com/rcornwell/punchcard/util/deck"
	"github.com/rcornwell/punchcard/util/hex"
	"github.com/rcornwell/punchcard/util/picture"
)

var cmdList = []cmd{
	{Name: "attach", Min: 2, Process: attach, Complete: unitComplete(command.ValidAttach)},
	{Name: "detach", Min: 3, Process: detach, Complete: unitComplete(0)},
	{Name: "punch", Min: 1, Process: punchText},
	{Name: "column", Min: 3, Process: column},
	{Name: "rows", Min: 1, Process: rows},
	{Name: "clear", Min: 2, Process: clearCard},
	{Name: "show", Min: 2, Process: show, Complete: showComplete},
	{Name: "feed", Min: 1, Process: feed},
	{Name: "stack", Min: 2, Process: stack},
	{Name: "load", Min: 1, Process: load, Complete: fileComplete(loadOptions)},
	{Name: "save", Min: 2, Process: save, Complete: fileComplete(saveOptions)},
	{Name: "example", Min: 2, Process: example, Complete: kindComplete},
	{Name: "validate", Min: 1, Process: validate, Complete: kindComplete},
	{Name: "quit", Min: 4, Process: quit},
}

// Things show can display.
var showList = []string{"card", "columns", "ebcdic", "binary", "octal", "picture", "punch", "reader", "text"}

var cardKinds = []string{"object", "source"}

var loadOptions = []command.Options{
	{Name: "mode", OptionType: command.OptionList, OptionValid: command.ValidAttach, OptionList: deck.ModeList()},
}

var saveOptions = []command.Options{
	{Name: "format", OptionType: command.OptionList, OptionValid: command.ValidAttach, OptionList: deck.ModeList()},
}

// Show card picture after change if echo set.
func echo(st *station.Station) {
	if st.Settings().Echo {
		fmt.Fprint(output, renderPicture(st))
	}
}

// Check nothing follows command.
func (line *cmdLine) noMore(name string) error {
	if !line.atEnd() {
		return errors.New(name + " command takes no options")
	}
	return nil
}

// Handle attach commands.
func attach(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Attach")

	unit, err := line.getUnit(st)
	if err != nil {
		return false, err
	}

	optlist, err := line.getOptions(unit.Options(), command.ValidAttach)
	if err != nil {
		return false, err
	}
	if len(optlist) == 0 {
		return false, errors.New("no options give to attach command")
	}
	err = unit.Attach(optlist)
	if err != nil {
		return false, err
	}
	out, err := unit.Show([]*command.CmdOption{{Name: "cards"}})
	if err == nil {
		fmt.Fprintln(output, out)
	}
	return false, nil
}

// Handle detach command.
func detach(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Detach")

	unit, err := line.getUnit(st)
	if err != nil {
		return false, err
	}
	if err := line.noMore("detach"); err != nil {
		return false, err
	}
	return false, unit.Detach()
}

// Punch text at cursor.
func punchText(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Punch")
	text, err := line.getText()
	if err != nil {
		return false, err
	}
	err = st.Punch(text)
	echo(st)
	return false, err
}

// Move cursor to column.
func column(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Column")
	col, err := line.getColumn()
	if err != nil {
		return false, err
	}
	if err := line.noMore("column"); err != nil {
		return false, err
	}
	return false, st.SetCursor(col)
}

// Punch rows into a column.
func rows(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Rows")
	col, err := line.getColumn()
	if err != nil {
		return false, err
	}
	pattern, ok := line.parseQuoteString()
	if !ok {
		return false, errors.New("rows to punch required")
	}
	if err := line.noMore("rows"); err != nil {
		return false, err
	}
	debug.DebugColf("console", col, debugMsk, debugCmd, "rows %s", pattern)
	if err := st.SetRows(col, pattern); err != nil {
		return false, err
	}
	echo(st)
	return false, nil
}

// Clear card or one column.
func clearCard(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Clear")
	if line.atEnd() {
		st.Clear()
		echo(st)
		return false, nil
	}
	col, err := line.getColumn()
	if err != nil {
		return false, err
	}
	if err := line.noMore("clear"); err != nil {
		return false, err
	}
	if err := st.ClearColumn(col); err != nil {
		return false, err
	}
	echo(st)
	return false, nil
}

// Picture of card in station.
func renderPicture(st *station.Station) string {
	opts := picture.Plain()
	opts.Color = st.Settings().Color
	if f, ok := output.(*os.File); ok && picture.UseColor(f) {
		opts.Color = true
	}
	if st.Cursor() < card.Columns {
		opts.Cursor = st.Cursor()
	}
	return picture.Render(st.Card(), opts)
}

// List punched columns.
func showColumns(c card.Card) string {
	var str strings.Builder
	for i, col := range c.Columns() {
		if col.IsBlank() {
			continue
		}
		ch, ok := col.Char()
		if !ok {
			ch = '?'
		}
		fmt.Fprintf(&str, "%2d %04o %-12s %c\n", i+1, col.Punches.Word(), col.Punches.String(), ch)
	}
	return str.String()
}

// Column images as octal words, 20 per line.
func showOctal(c card.Card) string {
	var str strings.Builder
	words := []uint16{}
	for _, p := range c.Patterns() {
		words = append(words, p.Word())
	}
	for i := 0; i < len(words); i += 20 {
		hex.FormatDecimal(&str, byte(i+1))
		str.WriteString(": ")
		hex.FormatOctal(&str, true, words[i:min(i+20, len(words))])
		str.WriteByte('\n')
	}
	return str.String()
}

// Process the show command.
func show(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Show")
	name := line.getWord(false)
	if name == "" {
		if !line.atEnd() {
			return false, errors.New("show what?")
		}
		name = "card"
	}

	what := []string{}
	for _, s := range showList {
		if strings.HasPrefix(s, name) {
			what = append(what, s)
		}
	}
	if len(what) != 1 {
		return false, errors.New("show option not unique: " + name)
	}

	debug.Debugf("console", debugMsk, debugShow, "show %s", what[0])
	c := st.Card()
	switch what[0] {
	case "reader", "punch":
		unit, err := st.Unit(what[0])
		if err != nil {
			return false, err
		}
		optlist, err := line.getOptions(unit.Options(), command.ValidShow)
		if err != nil {
			return false, err
		}
		out, err := unit.Show(optlist)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(output, out)
		return false, nil
	}

	if err := line.noMore("show " + what[0]); err != nil {
		return false, err
	}
	switch what[0] {
	case "card":
		fmt.Fprintf(output, "type=%s column=%d punched=%d\n", c.Type(), st.Cursor()+1, c.PunchedCount())
		fmt.Fprint(output, renderPicture(st))
	case "picture":
		fmt.Fprint(output, renderPicture(st))
	case "text":
		fmt.Fprintln(output, strings.TrimRight(c.ToText(), " "))
	case "ebcdic":
		fmt.Fprint(output, hex.Dump(c.ToEBCDIC(), 20))
	case "binary":
		fmt.Fprint(output, hex.Dump(c.ToBinary(), 18))
	case "octal":
		fmt.Fprint(output, showOctal(c))
	case "columns":
		fmt.Fprint(output, showColumns(c))
	}
	return false, nil
}

// Feed next card from reader.
func feed(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Feed")
	if err := line.noMore("feed"); err != nil {
		return false, err
	}
	if err := st.Feed(); err != nil {
		return false, err
	}
	echo(st)
	return false, nil
}

// Stack card in punch.
func stack(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Stack")
	if err := line.noMore("stack"); err != nil {
		return false, err
	}
	if err := st.Stack(); err != nil {
		return false, err
	}
	fmt.Fprintf(output, "stacked %d cards\n", st.PunchDeck().StackSize())
	return false, nil
}

// Get file name and mode option for load and save.
func (line *cmdLine) getFileMode(opts []command.Options) (string, int, error) {
	fileName, ok := line.parseQuoteString()
	if !ok || fileName == "" {
		return "", 0, errors.New("file name required")
	}
	optlist, err := line.getOptions(opts, command.ValidAttach)
	if err != nil {
		return "", 0, err
	}
	mode := deck.ModeAuto
	for _, opt := range optlist {
		if opt.Name == "file" {
			return "", 0, errors.New("only one file name allowed")
		}
		mode, err = deck.ParseMode(opt.EqualOpt)
		if err != nil {
			return "", 0, err
		}
	}
	return fileName, mode, nil
}

// Load card from file.
func load(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Load")
	fileName, mode, err := line.getFileMode(loadOptions)
	if err != nil {
		return false, err
	}
	if err := st.Load(fileName, mode); err != nil {
		return false, err
	}
	echo(st)
	return false, nil
}

// Save card to file.
func save(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Save")
	fileName, mode, err := line.getFileMode(saveOptions)
	if err != nil {
		return false, err
	}
	return false, st.Save(fileName, mode)
}

// Get source or object.
func (line *cmdLine) getKind() (string, error) {
	name := line.getWord(false)
	for _, kind := range cardKinds {
		if name != "" && strings.HasPrefix(kind, name) {
			return kind, line.noMore(kind)
		}
	}
	return "", errors.New("source or object required")
}

// Load example card.
func example(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Example")
	kind, err := line.getKind()
	if err != nil {
		return false, err
	}
	if err := st.Example(kind); err != nil {
		return false, err
	}
	echo(st)
	return false, nil
}

// Validate card.
func validate(line *cmdLine, st *station.Station) (bool, error) {
	slog.Debug("Command Validate")
	kind, err := line.getKind()
	if err != nil {
		return false, err
	}
	if err := st.Validate(kind); err != nil {
		return false, err
	}
	fmt.Fprintln(output, "valid "+kind+" card")
	return false, nil
}

// Handle commands that quit.
func quit(_ *cmdLine, _ *station.Station) (bool, error) {
	slog.Debug("Command Quit")
	return true, nil
}
