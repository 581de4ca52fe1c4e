/*
 * IBM 029 keypunch code table.
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

package hollerith

// Rows are coded as in a column image:
// 12=04000 11=02000 0=01000 1=0400 2=0200 3=0100 4=040 5=020
// 6=010 7=04 8=02 9=01.
var table029 = [...]struct {
	ch  rune
	hol uint16
}{
	/* blank and single punches */
	{' ', 0o0000}, {'&', 0o4000}, {'-', 0o2000},
	{'0', 0o1000}, {'1', 0o0400}, {'2', 0o0200}, {'3', 0o0100},
	{'4', 0o0040}, {'5', 0o0020}, {'6', 0o0010}, {'7', 0o0004},
	{'8', 0o0002}, {'9', 0o0001},
	/* 12 zone: A-I */
	{'A', 0o4400}, {'B', 0o4200}, {'C', 0o4100}, {'D', 0o4040},
	{'E', 0o4020}, {'F', 0o4010}, {'G', 0o4004}, {'H', 0o4002},
	{'I', 0o4001},
	/* 11 zone: J-R */
	{'J', 0o2400}, {'K', 0o2200}, {'L', 0o2100}, {'M', 0o2040},
	{'N', 0o2020}, {'O', 0o2010}, {'P', 0o2004}, {'Q', 0o2002},
	{'R', 0o2001},
	/* 0 zone: / S-Z */
	{'/', 0o1400}, {'S', 0o1200}, {'T', 0o1100}, {'U', 0o1040},
	{'V', 0o1020}, {'W', 0o1010}, {'X', 0o1004}, {'Y', 0o1002},
	{'Z', 0o1001},
	/*   .        <        (        +        |     */
	/* 12-3-8   12-4-8   12-5-8   12-6-8   12-7-8  */
	{'.', 0o4102}, {'<', 0o4042}, {'(', 0o4022}, {'+', 0o4012}, {'|', 0o4006},
	/*   !        $        *        )        ;        ¬     */
	/* 11-2-8   11-3-8   11-4-8   11-5-8   11-6-8   11-7-8  */
	{'!', 0o2202}, {'$', 0o2102}, {'*', 0o2042}, {')', 0o2022}, {';', 0o2012},
	{'¬', 0o2006},
	/*   ,        %        _        >        ?    */
	/*  0-3-8    0-4-8    0-5-8    0-6-8    0-7-8 */
	{',', 0o1102}, {'%', 0o1042}, {'_', 0o1022}, {'>', 0o1012}, {'?', 0o1006},
	/*   :     #     @     '     =     "  */
	/*  2-8   3-8   4-8   5-8   6-8   7-8 */
	{':', 0o0202}, {'#', 0o0102}, {'@', 0o0042}, {'\'', 0o0022}, {'=', 0o0012},
	{'"', 0o0006},
}
