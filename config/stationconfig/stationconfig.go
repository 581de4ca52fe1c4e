/*
 * Station configuration options.
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

package stationconfig

import (
	"errors"
	"strings"

	config "github.com/rcornwell/punchcard/config/configparser"
	"github.com/rcornwell/punchcard/emu/station"
	"github.com/rcornwell/punchcard/util/deck"
)

// register station keywords on initialize.
func init() {
	config.RegisterOption("FORMAT", setFormat)
	config.RegisterOptions("READER", setReader)
	config.RegisterOptions("PUNCH", setPunch)
	config.RegisterSwitch("ECHO", func(_ string, _ []config.Option) error {
		station.Config.Echo = true
		return nil
	})
	config.RegisterSwitch("COLOR", func(_ string, _ []config.Option) error {
		station.Config.Color = true
		return nil
	})
}

// Set format for save and punch.
func setFormat(value string, _ []config.Option) error {
	mode, err := deck.ParseMode(value)
	if err != nil {
		return err
	}
	station.Config.Format = mode
	return nil
}

// Get mode= option.
func getMode(opt config.Option) (int, error) {
	if opt.EqualOpt == "" || len(opt.Value) != 0 {
		return 0, errors.New("mode requires one value")
	}
	return deck.ParseMode(opt.EqualOpt)
}

// Reader file with optional mode and eof.
func setReader(fileName string, options []config.Option) error {
	station.Config.ReaderFile = fileName
	for _, opt := range options {
		switch strings.ToUpper(opt.Name) {
		case "MODE":
			mode, err := getMode(opt)
			if err != nil {
				return err
			}
			station.Config.ReaderMode = mode
		case "EOF":
			station.Config.ReaderEOF = true
		default:
			return errors.New("reader invalid option: " + opt.Name)
		}
	}
	return nil
}

// Punch file with optional mode.
func setPunch(fileName string, options []config.Option) error {
	station.Config.PunchFile = fileName
	for _, opt := range options {
		switch strings.ToUpper(opt.Name) {
		case "MODE":
			mode, err := getMode(opt)
			if err != nil {
				return err
			}
			station.Config.PunchMode = mode
		default:
			return errors.New("punch invalid option: " + opt.Name)
		}
	}
	return nil
}
