/*
 * Reader and punch units of the station.
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
	"strings"

	"github.com/rcornwell/punchcard/command/command"
	"github.com/rcornwell/punchcard/util/deck"
)

// Reader or punch unit.
type Unit struct {
	name  string     // Unit name.
	write bool       // Unit punches cards.
	mode  int        // Default mode.
	deck  *deck.Deck // Cards in unit.
}

func newUnit(name string, write bool, mode int) *Unit {
	return &Unit{name: name, write: write, mode: mode, deck: deck.NewDeck(mode)}
}

// Return deck for unit.
func (unit *Unit) Deck() *deck.Deck {
	return unit.deck
}

func (unit *Unit) Name() string {
	return unit.name
}

// Options for attach and show commands.
func (unit *Unit) Options() []command.Options {
	opts := []command.Options{
		{Name: "file", OptionType: command.OptionFile, OptionValid: command.ValidAttach},
		{
			Name: "mode", OptionType: command.OptionList, OptionValid: command.ValidAttach,
			OptionList: deck.ModeList(),
		},
		{Name: "cards", OptionType: command.OptionSwitch, OptionValid: command.ValidShow},
	}
	if !unit.write {
		opts = append(opts, command.Options{Name: "eof", OptionType: command.OptionSwitch, OptionValid: command.ValidAttach})
		opts = append(opts, command.Options{Name: "blank", OptionType: command.OptionNumber, OptionValid: command.ValidAttach})
	}
	return opts
}

// Attach unit to a file.
func (unit *Unit) Attach(options []*command.CmdOption) error {
	fileName := ""
	mode := unit.mode
	eof := false
	blank := 0
	for _, opt := range options {
		switch opt.Name {
		case "file":
			if opt.EqualOpt == "" {
				return errors.New("file name required")
			}
			fileName = opt.EqualOpt
		case "mode":
			m, err := deck.ParseMode(opt.EqualOpt)
			if err != nil {
				return err
			}
			mode = m
		case "eof":
			if unit.write {
				return errors.New("eof not valid for punch")
			}
			eof = true
		case "blank":
			if unit.write {
				return errors.New("blank not valid for punch")
			}
			blank = opt.Value
		default:
			return errors.New("attach invalid option: " + opt.Name)
		}
	}

	if blank != 0 {
		if fileName != "" {
			return errors.New("blank can't be given with file")
		}
		unit.deck.BlankDeck(blank)
		return nil
	}
	if fileName == "" {
		return errors.New("file name required")
	}
	return unit.attachFile(fileName, mode, eof)
}

func (unit *Unit) attachFile(fileName string, mode int, eof bool) error {
	if err := unit.deck.Attach(fileName, mode, unit.write, eof); err != nil {
		return fmt.Errorf("%s attach: %w", unit.name, err)
	}
	return nil
}

// Detach unit, reader hopper is emptied.
func (unit *Unit) Detach() error {
	return unit.deck.Detach()
}

// Show status of unit.
func (unit *Unit) Show(options []*command.CmdOption) (string, error) {
	var str strings.Builder
	str.WriteString(unit.name + ": ")
	if unit.deck.Attached() {
		str.WriteString(unit.deck.FileName())
	} else {
		str.WriteString("not attached")
	}
	str.WriteString(" mode=" + deck.ModeName(unit.deck.Mode()))
	for _, opt := range options {
		switch opt.Name {
		case "cards":
			if unit.write {
				fmt.Fprintf(&str, " stacked=%d", unit.deck.StackSize())
			} else {
				fmt.Fprintf(&str, " hopper=%d", unit.deck.HopperSize())
			}
		default:
			return "", errors.New("show invalid option: " + opt.Name)
		}
	}
	return str.String(), nil
}

// Options of named unit, nil if not a unit.
func UnitOptions(name string) []command.Options {
	switch name {
	case "reader":
		return newUnit(name, false, deck.ModeAuto).Options()
	case "punch":
		return newUnit(name, true, deck.ModeAuto).Options()
	}
	return nil
}
