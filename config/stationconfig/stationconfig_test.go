/*
 * Station configuration test cases.
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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	config "github.com/rcornwell/punchcard/config/configparser"
	"github.com/rcornwell/punchcard/emu/station"
	"github.com/rcornwell/punchcard/util/deck"
)

func TestStationConfig(t *testing.T) {
	station.Config = station.DefaultSettings()
	input := `# Station setup
FORMAT ebcdic
READER "deck in.txt" mode=text eof
PUNCH out.bin MODE=binary   # object deck
ECHO
COLOR
`
	if err := config.LoadConfig(strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	want := station.Settings{
		Format:     deck.ModeEBCDIC,
		ReaderFile: "deck in.txt",
		ReaderMode: deck.ModeText,
		ReaderEOF:  true,
		PunchFile:  "out.bin",
		PunchMode:  deck.ModeBinary,
		Echo:       true,
		Color:      true,
	}
	if diff := cmp.Diff(want, station.Config); diff != "" {
		t.Errorf("Settings mismatch (-want +got):\n%s", diff)
	}
	station.Config = station.DefaultSettings()
}

func TestStationConfigErrors(t *testing.T) {
	tests := []string{
		"FORMAT cbn\n",
		"FORMAT\n",
		"READER in.txt mode=octal\n",
		"READER in.txt mode=text, ebcdic\n",
		"READER in.txt rewind\n",
		"PUNCH out.txt eof\n",
		"ECHO on\n",
	}
	for _, test := range tests {
		station.Config = station.DefaultSettings()
		if err := config.LoadConfig(strings.NewReader(test)); err == nil {
			t.Errorf("Config %q accepted", test)
		}
	}
	station.Config = station.DefaultSettings()
}
