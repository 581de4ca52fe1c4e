/*
 * Batch deck conversion.
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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rcornwell/punchcard/util/deck"
)

var errBadCard = errors.New("card not valid")

// Copy cards from input deck to output deck. With no output file the
// text of each card is listed on out.
func convertDeck(input string, inMode int, output string, outMode int, out io.Writer) (int, error) {
	in := deck.NewDeck(inMode)
	if err := in.Attach(input, inMode, false, false); err != nil {
		return 0, err
	}
	defer func() { _ = in.Detach() }()

	var punch *deck.Deck
	if output != "" {
		punch = deck.NewDeck(outMode)
		if err := punch.Attach(output, outMode, true, false); err != nil {
			return 0, err
		}
	}

	count := 0
	for {
		c, status := in.ReadCard()
		switch status {
		case deck.CardEmpty:
			if punch != nil {
				return count, punch.Detach()
			}
			return count, nil
		case deck.CardEOF:
			continue
		case deck.CardError:
			if punch != nil {
				_ = punch.Detach()
			}
			return count, fmt.Errorf("card %d: %w", count+1, errBadCard)
		}
		count++
		if punch == nil {
			fmt.Fprintf(out, "%4d %s\n", count, strings.TrimRight(c.ToText(), " "))
			continue
		}
		if err := punch.PunchCard(c); err != nil {
			_ = punch.Detach()
			return count, err
		}
	}
}
