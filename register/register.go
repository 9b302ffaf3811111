/*
 * mixvm - Register file and processor flags.
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

package register

import (
	"fmt"

	"github.com/gomix/mixvm/word"
)

// CompIndicator is the comparison flag CMPx leaves behind. Unordered is
// the x-ieee754 extension's fourth state: a float compare against a NaN
// operand leaves the indicator neither Less, Equal, nor Greater.
type CompIndicator int

const (
	Less CompIndicator = iota
	Equal
	Greater
	Unordered
)

func (c CompIndicator) String() string {
	switch c {
	case Less:
		return "L"
	case Greater:
		return "G"
	case Unordered:
		return "U"
	default:
		return "E"
	}
}

// NumIndex is the count of index registers, rI1..rI6.
const NumIndex = 6

// File holds every MIX register plus the two processor flags. The zero
// value is the "uninitialized" state TAOCP describes; call Reset before
// relying on any field.
type File struct {
	A, X Word5   // rA, rX: full words.
	I    [NumIndex]Word2 // rI1..rI6: signed half words.
	J    Word2   // rJ: positive half word.

	Overflow bool
	Comp     CompIndicator

	PC     int
	Halted bool
}

// Word5 and Word2 alias word.Word only to document intent at call sites;
// both are plain word.Word values.
type Word5 = word.Word
type Word2 = word.Word

// New returns a register file in the reset state.
func New() *File {
	f := &File{}
	f.Reset()
	return f
}

// Reset zeroes every register and clears both flags, per TAOCP's RESET.
func (f *File) Reset() {
	f.A = word.NewFull()
	f.X = word.NewFull()
	for i := range f.I {
		f.I[i] = word.NewHalf()
	}
	f.J = word.NewPinnedPositive()
	f.Overflow = false
	f.Comp = Equal
	f.PC = 0
	f.Halted = false
}

// Index returns rIi for i in 1..=6.
func (f *File) Index(i int) (word.Word, error) {
	if i < 1 || i > NumIndex {
		return word.Word{}, fmt.Errorf("invalid index register I%d", i)
	}
	return f.I[i-1], nil
}

// SetIndex sets rIi for i in 1..=6. w must be a half word.
func (f *File) SetIndex(i int, w word.Word) error {
	if i < 1 || i > NumIndex {
		return fmt.Errorf("invalid index register I%d", i)
	}
	if w.Width() != word.HalfBytes {
		return fmt.Errorf("I%d requires a %d-byte word, got %d", i, word.HalfBytes, w.Width())
	}
	f.I[i-1] = w
	return nil
}
