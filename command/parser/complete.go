/*
 * Command completion functions.
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
	"slices"
	"strings"
	"unicode"

	command "github.com/rcornwell/punchcard/command/command"
	"github.com/rcornwell/punchcard/emu/station"
)

// Called to complete a command line, during line editing.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord(false)

	// We have a command, let it try and complete it.
	if line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		// See if there is a completer for this command.
		match := matchList(name)
		if len(match) != 1 {
			return nil
		}

		if match[0].Complete != nil {
			return match[0].Complete(&line)
		}
		return nil
	}

	// Try and match one command.
	var matches []string
	for _, m := range cmdList {
		if strings.HasPrefix(m.Name, name) {
			matches = append(matches, m.Name+" ")
		}
	}
	slices.Sort(matches)
	return matches
}

// Complete last word of line from list.
func (line *cmdLine) completeList(list []string) []string {
	line.skipSpace()
	leading := line.line[:line.pos]
	word := strings.ToLower(line.line[line.pos:])
	matches := []string{}
	for _, item := range list {
		if strings.HasPrefix(item, word) {
			matches = append(matches, leading+item+" ")
		}
	}
	return matches
}

// Complete the last option on line.
func (line *cmdLine) completeOptions(opts []command.Options, cmdType int) []string {
	last := strings.LastIndexAny(line.line, " \t") + 1
	last = max(last, line.pos)
	leading := line.line[:last]
	token := strings.ToLower(line.line[last:])
	matches := []string{}

	// Complete value of list option.
	if eq := strings.IndexByte(token, '='); eq >= 0 {
		name := token[:eq]
		value := token[eq+1:]
		match := matchOption(name, opts, cmdType)
		if match.OptionType != command.OptionList {
			return matches
		}
		for _, item := range match.OptionList {
			if strings.HasPrefix(item, value) {
				matches = append(matches, leading+name+"="+item+" ")
			}
		}
		return matches
	}

	for _, opt := range opts {
		if (opt.OptionValid & cmdType) == 0 {
			continue
		}
		if !strings.HasPrefix(opt.Name, token) {
			continue
		}
		eq := "="
		if opt.OptionType == command.OptionSwitch {
			eq = " "
		}
		matches = append(matches, leading+opt.Name+eq)
	}
	slices.Sort(matches)
	return matches
}

// Complete unit name, then options for unit.
func unitComplete(cmdType int) func(*cmdLine) []string {
	return func(line *cmdLine) []string {
		line.skipSpace()
		start := line.pos
		name := line.getWord(false)
		if line.pos >= len(line.line) {
			line.pos = start
			return line.completeList(station.UnitNames())
		}
		if cmdType == 0 {
			return nil
		}
		return line.completeOptions(station.UnitOptions(name), cmdType)
	}
}

// Complete show command.
func showComplete(line *cmdLine) []string {
	line.skipSpace()
	start := line.pos
	name := line.getWord(false)
	if line.pos >= len(line.line) {
		line.pos = start
		return line.completeList(showList)
	}
	return line.completeOptions(station.UnitOptions(name), command.ValidShow)
}

// Complete options after a file name.
func fileComplete(opts []command.Options) func(*cmdLine) []string {
	return func(line *cmdLine) []string {
		_, ok := line.parseQuoteString()
		if !ok || line.pos >= len(line.line) {
			return nil
		}
		return line.completeOptions(opts, command.ValidAttach)
	}
}

// Complete source or object.
func kindComplete(line *cmdLine) []string {
	return line.completeList(cardKinds)
}
