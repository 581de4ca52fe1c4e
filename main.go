/*
 * IBM 1130 punch card station.
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
	"fmt"
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"
	reader "github.com/rcornwell/punchcard/command/reader"
	config "github.com/rcornwell/punchcard/config/configparser"
	"github.com/rcornwell/punchcard/emu/station"
	"github.com/rcornwell/punchcard/util/card"
	"github.com/rcornwell/punchcard/util/debug"
	"github.com/rcornwell/punchcard/util/deck"
	logger "github.com/rcornwell/punchcard/util/logger"
	"github.com/rcornwell/punchcard/util/picture"

	_ "github.com/rcornwell/punchcard/config/debugconfig"
	_ "github.com/rcornwell/punchcard/config/stationconfig"
)

const defaultConfig = "punchcard.cfg"

func main() {
	optConfig := getopt.StringLong("config", 'c', defaultConfig, "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	optInput := getopt.StringLong("input", 'i', "", "Deck to convert")
	optOutput := getopt.StringLong("output", 'o', "", "Converted deck")
	optMode := getopt.StringLong("mode", 'm', "auto", "Input deck mode: auto, text, ebcdic, binary")
	optFormat := getopt.StringLong("format", 'f', "", "Output deck mode: auto, text, ebcdic, binary")
	optText := getopt.StringLong("text", 't', "", "Punch text on one card and show it")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file io.Writer
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to create log file: "+err.Error())
			os.Exit(1)
		}
		defer f.Close()
		file = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger := slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, *optDebug))
	slog.SetDefault(Logger)

	Logger.Debug("Punch card station started")
	_, err := os.Stat(*optConfig)
	switch {
	case err == nil:
		err = config.LoadConfigFile(*optConfig)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	case *optConfig != defaultConfig:
		Logger.Error("Configuration file " + *optConfig + " can't be found")
		os.Exit(1)
	}
	defer debug.Close()

	if *optText != "" {
		c := card.FromText(*optText)
		opts := picture.Plain()
		opts.Color = station.Config.Color || picture.UseColor(os.Stdout)
		fmt.Print(picture.Render(c, opts))
		return
	}

	if *optInput != "" {
		inMode, err := deck.ParseMode(*optMode)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		outMode := station.Config.Format
		if *optFormat != "" {
			outMode, err = deck.ParseMode(*optFormat)
			if err != nil {
				Logger.Error(err.Error())
				os.Exit(1)
			}
		}
		n, err := convertDeck(*optInput, inMode, *optOutput, outMode, os.Stdout)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		Logger.Info(fmt.Sprintf("Converted %d cards", n))
		return
	}

	st, err := station.New(station.Config)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	reader.ConsoleReader(st)
	if err := st.Close(); err != nil {
		Logger.Error(err.Error())
	}
	Logger.Debug("Punch card station stopped")
}
