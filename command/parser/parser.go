/*
 * Command parser.
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
	"io"
	"os"
	"strings"
	"unicode"

	command "github.com/rcornwell/punchcard/command/command"
	"github.com/rcornwell/punchcard/emu/station"
	"github.com/rcornwell/punchcard/util/card"
	"github.com/rcornwell/punchcard/util/debug"
)

type cmd struct {
	Name     string // Command name.
	Min      int    // Minimum match size.
	Process  func(*cmdLine, *station.Station) (bool, error)
	Complete func(*cmdLine) []string
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

// Where command output goes.
var output io.Writer = os.Stdout

const (
	debugCmd = 1 << iota
	debugShow
)

var debugOption = map[string]int{
	"CMD":  debugCmd,
	"SHOW": debugShow,
}

var debugMsk int

// Enable debug option for console.
func Debug(opt string) error {
	flag, err := debug.Lookup("console", opt, debugOption)
	if err != nil {
		return err
	}
	debugMsk |= flag
	return nil
}

// Execute the command line given.
func ProcessCommand(commandLine string, st *station.Station) (bool, error) {
	debug.Debugf("console", debugMsk, debugCmd, "command: %s", commandLine)
	line := cmdLine{line: commandLine}
	command := line.getWord(false)
	if command == "" {
		if !line.isEOL() {
			return false, errors.New("command not found: " + strings.TrimSpace(commandLine))
		}
		return false, nil
	}

	match := matchList(command)
	if len(match) == 0 {
		return false, errors.New("command not found: " + command)
	}

	if len(match) > 1 {
		return false, errors.New("unique command not found: " + command)
	}

	return match[0].Process(&line, st)
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if len(command) > len(match.Name) {
		return false
	}
	if !strings.HasPrefix(match.Name, command) {
		return false
	}
	return len(command) >= match.Min
}

// Check if command matches one of the commands.
func matchList(command string) []cmd {
	// If command empty just return.
	if command == "" {
		return []cmd{}
	}

	// Try and match one command.
	var match []cmd
	for _, m := range cmdList {
		if m.Name == command {
			return []cmd{m}
		}
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}
	return match
}

// Match list of options.
func matchOption(option string, optList []command.Options, cmdType int) command.Options {
	for _, opt := range optList {
		if (opt.OptionValid & cmdType) == 0 {
			continue
		}
		if opt.Name == option {
			return opt
		}
	}
	return command.Options{OptionType: -1}
}

// Skip forward over line until none whitespace character found.
func (line *cmdLine) skipSpace() {
	for {
		if line.pos >= len(line.line) {
			return
		}
		if unicode.IsSpace(rune(line.line[line.pos])) {
			line.pos++
			continue
		}
		return
	}
}

// Check if at end of line.
func (line *cmdLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	if line.line[line.pos] == '#' {
		return true
	}
	return false
}

// Check if at end of line after skipping spaces.
func (line *cmdLine) atEnd() bool {
	line.skipSpace()
	return line.isEOL()
}

// Return current character, 0 at end of line.
func (line *cmdLine) peek() byte {
	if line.isEOL() {
		return 0
	}
	return line.line[line.pos]
}

// Parse string that is "string" or just string.
// Return false if quote is not terminated.
func (line *cmdLine) parseQuoteString() (string, bool) {
	line.skipSpace()
	if line.isEOL() {
		return "", false
	}

	value := ""
	if line.line[line.pos] != '"' {
		// Space terminates a no quoted string.
		for line.pos < len(line.line) {
			by := line.line[line.pos]
			if unicode.IsSpace(rune(by)) {
				break
			}
			value += string([]byte{by})
			line.pos++
		}
		return value, true
	}

	line.pos++ // Skip quote
	for line.pos < len(line.line) {
		by := line.line[line.pos]
		line.pos++
		// "" gets replaced by single quote
		if by == '"' {
			if line.pos < len(line.line) && line.line[line.pos] == '"' {
				line.pos++
			} else {
				return value, true
			}
		}
		value += string([]byte{by})
	}
	return value, false
}

// Parse a decimal number.
func (line *cmdLine) getNumber() (int, error) {
	line.skipSpace()

	// Check if end of line.
	if line.isEOL() {
		return 0, errors.New("not a number")
	}

	value := 0
	for !line.isEOL() {
		by := line.line[line.pos]
		if unicode.IsSpace(rune(by)) {
			break
		}
		if !unicode.IsDigit(rune(by)) {
			return 0, errors.New("not a number")
		}
		value = (value * 10) + int(by-'0')
		line.pos++
	}

	return value, nil
}

// Get column number 1 to 80, return index.
func (line *cmdLine) getColumn() (int, error) {
	col, err := line.getNumber()
	if err != nil {
		return 0, errors.New("column must be number")
	}
	if col < 1 || col > card.Columns {
		return 0, fmt.Errorf("column %d: %w", col, card.ErrColumnRange)
	}
	return col - 1, nil
}

// Parse word of letters, stops at space or = if equal.
func (line *cmdLine) getWord(equal bool) string {
	line.skipSpace()

	// Characters must be alphabetic
	value := ""
	pos := line.pos
	for !line.isEOL() {
		by := line.line[line.pos]
		if unicode.IsSpace(rune(by)) {
			break
		}
		if by == '=' && equal {
			break
		}
		if !unicode.IsLetter(rune(by)) {
			line.pos = pos
			return ""
		}
		value += string([]byte{by})
		line.pos++
	}

	return strings.ToLower(value)
}

// Return text to punch, either quoted or rest of line.
func (line *cmdLine) getText() (string, error) {
	// One space separates command from text.
	if line.pos < len(line.line) && line.line[line.pos] == ' ' {
		line.pos++
	}
	rest := strings.TrimRight(line.line[line.pos:], "\r\n")
	if strings.HasPrefix(strings.TrimSpace(rest), "\"") {
		text, ok := line.parseQuoteString()
		if !ok {
			return "", errors.New("quoted string not terminated")
		}
		if !line.atEnd() {
			return "", errors.New("text after quoted string")
		}
		return text, nil
	}
	line.pos = len(line.line)
	return rest, nil
}

// Get an option.
func (line *cmdLine) getOption(opts []command.Options, cmdType int) (*command.CmdOption, error) {
	if line.atEnd() {
		return nil, nil
	}

	// Get a word, stoping at equal or space.
	pos := line.pos
	name := line.getWord(true)
	match := matchOption(name, opts, cmdType)

	// For attach commands, anything else is a file name.
	if match.OptionType == -1 && cmdType == command.ValidAttach && line.peek() != '=' {
		line.pos = pos
		file, ok := line.parseQuoteString()
		if !ok {
			return nil, errors.New("file name not valid")
		}
		return &command.CmdOption{Name: "file", EqualOpt: file}, nil
	}

	opt := command.CmdOption{Name: name}
	switch match.OptionType {
	case -1:
		return nil, errors.New("unknown option: " + line.line[pos:line.pos])
	case command.OptionSwitch:
		if line.peek() == '=' {
			return nil, errors.New("switch option can't have arguments: " + name)
		}
	case command.OptionFile:
		if line.peek() != '=' {
			return nil, errors.New("file options must be followed by file name: " + name)
		}
		line.pos++
		file, ok := line.parseQuoteString()
		if !ok || file == "" {
			return nil, errors.New("file name not valid: " + name)
		}
		opt.EqualOpt = file
	case command.OptionNumber:
		if line.peek() != '=' {
			return nil, errors.New("number options must be followed by number: " + name)
		}
		line.pos++
		num, err := line.getNumber()
		if err != nil {
			return nil, errors.New("number options must be followed by number: " + name)
		}
		opt.Value = num
	case command.OptionList:
		if line.peek() != '=' {
			return nil, errors.New("list options must be followed by name: " + name)
		}
		line.pos++
		listStr := line.getWord(false)
		opt.EqualOpt = listStr
		for _, mod := range match.OptionList {
			if strings.ToLower(mod) == listStr {
				return &opt, nil
			}
		}
		return nil, errors.New("option not valid for type: " + name)
	default:
		return nil, errors.New("invalid option type: " + name)
	}
	return &opt, nil
}

// Scan options and return a list of options.
func (line *cmdLine) getOptions(opts []command.Options, cmdType int) ([]*command.CmdOption, error) {
	optlist := []*command.CmdOption{}
	for {
		opt, err := line.getOption(opts, cmdType)
		if err != nil {
			return optlist, err
		}
		if opt == nil {
			break
		}
		optlist = append(optlist, opt)
	}
	return optlist, nil
}

// Return unit named on command line.
func (line *cmdLine) getUnit(st *station.Station) (command.Command, error) {
	name := line.getWord(false)
	if name == "" {
		return nil, errors.New("unit name required")
	}
	for _, unit := range station.UnitNames() {
		if strings.HasPrefix(unit, name) {
			return st.Unit(unit)
		}
	}
	return nil, errors.New("unknown unit: " + name)
}
