/*
 * Debug trace output.
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

package debug

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	config "github.com/rcornwell/punchcard/config/configparser"
)

var logFile *os.File

// Generic debug message. Written when level is enabled in mask.
func Debugf(module string, mask int, level int, format string, a ...interface{}) {
	if (mask & level) == 0 {
		return
	}
	if logFile == nil {
		slog.Debug(module + ": " + fmt.Sprintf(format, a...))
		return
	}
	fmt.Fprintf(logFile, module+": "+format+"\n", a...)
}

// Column debug message.
func DebugColf(module string, col int, mask int, level int, format string, a ...interface{}) {
	Debugf(module, mask, level, "col %02d: "+format, append([]interface{}{col + 1}, a...)...)
}

// Look up a debug option in a table of names.
func Lookup(module string, opt string, names map[string]int) (int, error) {
	flag, ok := names[strings.ToUpper(opt)]
	if !ok {
		return 0, fmt.Errorf("%s debug option invalid: %s", strings.ToLower(module), opt)
	}
	return flag, nil
}

// Close debug file.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// register debug file on initialize.
func init() {
	config.RegisterOption("DEBUGFILE", create)
}

// Create the debug file.
func create(fileName string, _ []config.Option) error {
	if logFile != nil {
		return fmt.Errorf("can't have more then one debug file, previous: %s", logFile.Name())
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create debug file: %s", fileName)
	}

	logFile = file
	return nil
}
