/*
 * Configuration file parser.
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

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"unicode"
)

// List of options to pass to create routine.
type Option struct {
	Name     string    // Name of option.
	EqualOpt string    // Value of string after =.
	Value    []*string // Value of option.
}

// Current option line being parsed.
type optionLine struct {
	line string // Current option line.
	pos  int    // Current position in line.
}

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <keyword> [<whitespace> <value>] [<whitespace> <options>]
 * <keyword> := <string>
 * <value> ::= <quoteopt>
 * <options> ::= *(<option> *(<whitespace>))
 * <option> ::= <string> ['=' <quoteopt>] *(<commaopt>)
 * <commaopt> ::= ',' *(<whitespace>) <quoteopt>
 * <quoteopt> ::= <word> | '"' *(<letter> | <whitespace> | '""') '"'
 * <word> ::= *(any character except whitespace, ',' '=' and '#')
 * <string> ::= *(<letter> | <number>)
 */

const (
	TypeOption  = 1 + iota // Accepts a option parameter.
	TypeOptions            // Accepts a parameter and a list of options.
	TypeSwitch             // Option only used to set a flag.
)

// Keyword creation list.
type modelDef struct {
	create func(string, []Option) error
	ty     int
}

var models = map[string]modelDef{}

var lineNumber int

// Return type of keyword or 0 if not registered.
func getModel(mod string) int {
	model, ok := models[mod]
	if !ok {
		return 0
	}
	return model.ty
}

func register(mod string, ty int, fn func(string, []Option) error) {
	mod = strings.ToUpper(mod)
	slog.Debug("Registering config: " + mod)
	models[mod] = modelDef{create: fn, ty: ty}
}

// Register keyword with one value, should be called from init functions.
func RegisterOption(mod string, fn func(string, []Option) error) {
	register(mod, TypeOption, fn)
}

// Register keyword with value and options, should be called from init functions.
func RegisterOptions(mod string, fn func(string, []Option) error) {
	register(mod, TypeOptions, fn)
}

// Register keyword with no value, should be called from init functions.
func RegisterSwitch(mod string, fn func(string, []Option) error) {
	register(mod, TypeSwitch, fn)
}

// Keywords returns the registered keywords sorted.
func Keywords() []string {
	list := make([]string, 0, len(models))
	for name := range models {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// Create an option with one parameter.
func createOption(mod string, value string) error {
	mod = strings.ToUpper(mod)
	model, ok := models[mod]
	if !ok {
		return errors.New("unknown option: " + mod)
	}
	if model.ty != TypeOption {
		return errors.New("not a optional type: " + mod)
	}
	return model.create(value, []Option{})
}

// Create an option with options.
func createOptions(mod string, value string, options []Option) error {
	mod = strings.ToUpper(mod)
	model, ok := models[mod]
	if !ok {
		return errors.New("unknown option: " + mod)
	}
	if model.ty != TypeOptions {
		return errors.New("not a options type: " + mod)
	}
	return model.create(value, options)
}

// Create switch option.
func createSwitch(mod string) error {
	mod = strings.ToUpper(mod)
	model, ok := models[mod]
	if !ok {
		return errors.New("unknown switch: " + mod)
	}
	if model.ty != TypeSwitch {
		return errors.New("not a switch type: " + mod)
	}
	return model.create("", nil)
}

// Load in a configuration file.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return LoadConfig(file)
}

// Load configuration from a reader.
func LoadConfig(in io.Reader) error {
	lineNumber = 0
	reader := bufio.NewReader(in)
	for {
		var err error

		line := optionLine{}
		line.line, err = reader.ReadString('\n')
		lineNumber++
		if len(line.line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		err = line.parseLine()
		if err != nil {
			return err
		}
	}
	return nil
}

// Parse one line from file.
func (line *optionLine) parseLine() error {
	line.skipSpace()
	if line.isEOL() {
		return nil
	}
	keyword := strings.ToUpper(line.getName())
	if keyword == "" {
		return fmt.Errorf("invalid keyword, line: %d", lineNumber)
	}

	switch getModel(keyword) {
	case TypeOption:
		value, err := line.parseValue()
		if err != nil {
			return err
		}
		line.skipSpace()
		if !line.isEOL() || value == "" {
			return fmt.Errorf("option: %s not followed by value, line: %d", keyword, lineNumber)
		}
		return createOption(keyword, value)

	case TypeOptions:
		value, err := line.parseValue()
		if err != nil {
			return err
		}
		if value == "" {
			return fmt.Errorf("option: %s not followed by value, line: %d", keyword, lineNumber)
		}
		options, err := line.parseOptions()
		if err != nil {
			return err
		}
		return createOptions(keyword, value, options)

	case TypeSwitch:
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("switch option: %s followed by options, line: %d", keyword, lineNumber)
		}
		return createSwitch(keyword)
	}
	return fmt.Errorf("no type: %s registered, line: %d", keyword, lineNumber)
}

// Skip forward over line until none whitespace character found.
func (line *optionLine) skipSpace() {
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
func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	if line.line[line.pos] == '#' {
		return true
	}
	return false
}

// Grab letters and numbers.
func (line *optionLine) getName() string {
	value := ""
	for !line.isEOL() {
		by := line.line[line.pos]
		if !unicode.IsLetter(rune(by)) && !unicode.IsNumber(rune(by)) {
			break
		}
		value += string([]byte{by})
		line.pos++
	}
	return value
}

// Parse string that is "string" or just string.
func (line *optionLine) parseValue() (string, error) {
	line.skipSpace()
	if line.isEOL() {
		return "", nil
	}

	value := ""
	if line.line[line.pos] != '"' {
		// Space, comma or equal terminates a no quoted string.
		for !line.isEOL() {
			by := line.line[line.pos]
			if unicode.IsSpace(rune(by)) || by == ',' || by == '=' {
				break
			}
			value += string([]byte{by})
			line.pos++
		}
		return value, nil
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
				return value, nil
			}
		}
		if by == '\n' || by == '\r' {
			break
		}
		value += string([]byte{by})
	}
	return "", fmt.Errorf("invalid quoted string line: %d [%d]", lineNumber, line.pos)
}

// Parse options for a line.
func (line *optionLine) parseOption() (*Option, error) {
	// Skip leading space
	line.skipSpace()
	if line.isEOL() {
		return nil, nil
	}

	// Grab option name
	value := line.getName()
	if value == "" {
		return nil, fmt.Errorf("invalid option encountered line: %d [%d]", lineNumber, line.pos)
	}

	option := Option{Name: value}

	// Check if equals option.
	if !line.isEOL() && line.line[line.pos] == '=' {
		line.pos++
		v, err := line.parseValue()
		if err != nil {
			return nil, err
		}
		option.EqualOpt = v
	}

	// Skip any spaces.
	line.skipSpace()

	// Grab all , options
	for !line.isEOL() && line.line[line.pos] == ',' {
		line.pos++ // Skip comma
		v, err := line.parseValue()
		if err != nil {
			return nil, err
		}
		if v != "" {
			option.Value = append(option.Value, &v)
		}
		// Skip any trailing spaces.
		line.skipSpace()
	}

	return &option, nil
}

// Collect all options for line.
func (line *optionLine) parseOptions() ([]Option, error) {
	options := []Option{}
	for {
		option, err := line.parseOption()
		if err != nil {
			return nil, err
		}
		if option == nil {
			break
		}
		options = append(options, *option)
	}
	return options, nil
}
