/*
 * mixvm - Format words as hex for the command console.
 *
 * Copyright 2024, Richard Cornwell
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
 */

package hex

import (
	"strings"

	"github.com/gomix/mixvm/word"
)

var hexMap = "0123456789ABCDEF"

func FormatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[(data>>4)&0xf])
	str.WriteByte(hexMap[data&0xf])
}

// FormatWord writes a word as its sign followed by its magnitude bytes
// in hex, e.g. "-0102030405".
func FormatWord(str *strings.Builder, w word.Word) {
	if w.Sign() == word.NEG {
		str.WriteByte('-')
	} else {
		str.WriteByte('+')
	}
	for i := 1; i <= w.Width(); i++ {
		FormatByte(str, w.Byte(i))
	}
}

// FormatWords writes a sequence of words, space separated.
func FormatWords(str *strings.Builder, words []word.Word) {
	for i, w := range words {
		if i > 0 {
			str.WriteByte(' ')
		}
		FormatWord(str, w)
	}
}

// FormatDecimal writes v as a decimal integer.
func FormatDecimal(str *strings.Builder, v int64) {
	str.WriteString(strings.TrimSpace(itoa(v)))
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
