/*
 * mixvm - The eight-slot register ordering LD, ST, Jx, INC/DEC/ENT/ENN
 * and CMP all share: rA, rI1..rI6, rX.
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
 *
 * TAOCP assigns each opcode family eight consecutive C values in this
 * same order, which is why one slot table drives five different
 * instruction families instead of eight registers' worth of duplicated
 * switch statements.
 */

package vm

import (
	"fmt"

	"github.com/gomix/mixvm/register"
	"github.com/gomix/mixvm/word"
)

// regSlot binds a register's getter, setter and native width.
type regSlot struct {
	name  string
	width int
	get   func(f *register.File) word.Word
	set   func(f *register.File, w word.Word)
}

// regSlots is ordered rA, rI1..rI6, rX -- slot index doubles as the
// low 3 bits of C for the LD/ST/Jx/modify/CMP families.
var regSlots = [8]regSlot{
	{name: "A", width: word.FullBytes,
		get: func(f *register.File) word.Word { return f.A },
		set: func(f *register.File, w word.Word) { f.A = w }},
	{name: "1", width: word.HalfBytes,
		get: func(f *register.File) word.Word { return f.I[0] },
		set: func(f *register.File, w word.Word) { f.I[0] = w }},
	{name: "2", width: word.HalfBytes,
		get: func(f *register.File) word.Word { return f.I[1] },
		set: func(f *register.File, w word.Word) { f.I[1] = w }},
	{name: "3", width: word.HalfBytes,
		get: func(f *register.File) word.Word { return f.I[2] },
		set: func(f *register.File, w word.Word) { f.I[2] = w }},
	{name: "4", width: word.HalfBytes,
		get: func(f *register.File) word.Word { return f.I[3] },
		set: func(f *register.File, w word.Word) { f.I[3] = w }},
	{name: "5", width: word.HalfBytes,
		get: func(f *register.File) word.Word { return f.I[4] },
		set: func(f *register.File, w word.Word) { f.I[4] = w }},
	{name: "6", width: word.HalfBytes,
		get: func(f *register.File) word.Word { return f.I[5] },
		set: func(f *register.File, w word.Word) { f.I[5] = w }},
	{name: "X", width: word.FullBytes,
		get: func(f *register.File) word.Word { return f.X },
		set: func(f *register.File, w word.Word) { f.X = w }},
}

// fitToWidth right-justifies v's magnitude into a word of the given
// width, zero-padding on the left. If v is wider than width, the excess
// leading bytes must all be zero or the value does not fit.
func fitToWidth(v word.Word, width int) (word.Word, error) {
	mag := v.Bytes()
	if len(mag) > width {
		excess := mag[:len(mag)-width]
		for _, b := range excess {
			if b != 0 {
				return word.Word{}, fmt.Errorf("%w: %s does not fit in %d bytes", ErrInvalidMemRange, v, width)
			}
		}
		mag = mag[len(mag)-width:]
	}
	out := word.New(width)
	outBytes := out.Bytes()
	copy(outBytes[width-len(mag):], mag)
	out.SetSign(v.Sign())
	return out, nil
}

// negate returns v with its sign flipped, per the LDxN family.
func negate(v word.Word) word.Word {
	out := v.Clone()
	sign := word.NEG
	if v.Sign() == word.NEG {
		sign = word.POS
	}
	out.SetSign(sign)
	return out
}
