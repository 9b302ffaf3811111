/*
 * mixvm - binary32 conversions and arithmetic shared by the x-ieee754
 * extension: Special's FLOT/FIX and the F=7 float flavor of
 * ADD/SUB/MUL/DIV and CmpA/CmpX.
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
 * A binary32 word keeps its first magnitude byte reserved (always 0) and
 * packs the IEEE-754 bit pattern into the remaining four, most
 * significant first. The word's own sign cell mirrors the float's sign
 * so JAN/JAP and friends still work on a float-carrying register.
 */

package vm

import (
	"math"

	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/register"
	"github.com/gomix/mixvm/word"
)

func floatFromWord(w word.Word) float32 {
	b := w.Bytes()
	bits := uint32(b[1])<<24 | uint32(b[2])<<16 | uint32(b[3])<<8 | uint32(b[4])
	return math.Float32frombits(bits)
}

func wordFromFloat(f float32) word.Word {
	bits := math.Float32bits(f)
	w := word.NewFull()
	w.SetByte(1, 0)
	w.SetByte(2, byte(bits>>24))
	w.SetByte(3, byte(bits>>16))
	w.SetByte(4, byte(bits>>8))
	w.SetByte(5, byte(bits))
	sign := word.POS
	if math.Signbit(float64(f)) {
		sign = word.NEG
	}
	w.SetSign(sign)
	return w
}

// floatOperand fetches the memory word M refers to, without the L:R
// field split ADD/SUB/MUL/DIV/CmpA/CmpX normally apply -- the F=7 float
// flavor of those opcodes reads the whole word as a binary32.
func (vm *VM) floatOperand(ins instruction.Instruction) (word.Word, error) {
	m, err := vm.computeM(ins)
	if err != nil {
		return word.Word{}, err
	}
	return vm.cellAt(m)
}

// execFloatBinary implements the F=7 float flavor of ADD/SUB/MUL/DIV:
// rA and the memory operand are read as binary32, combined with op, and
// the binary32 result is stored back into rA. A NaN result sets the
// overflow toggle, mirroring FIX's own NaN handling.
func execFloatBinary(vm *VM, ins instruction.Instruction, op func(a, b float32) float32) error {
	v, err := vm.floatOperand(ins)
	if err != nil {
		return err
	}
	a := floatFromWord(vm.Reg.A)
	b := floatFromWord(v)
	r := op(a, b)
	if math.IsNaN(float64(r)) {
		vm.Reg.Overflow = true
	}
	vm.Reg.A = wordFromFloat(r)
	return nil
}

// compareFloats implements the F=7 float flavor of CmpA/CmpX: a and b
// are compared as binary32, and either operand being NaN leaves the
// comparison indicator Unordered rather than Less, Equal, or Greater.
func compareFloats(a, b float32) register.CompIndicator {
	switch {
	case math.IsNaN(float64(a)) || math.IsNaN(float64(b)):
		return register.Unordered
	case a < b:
		return register.Less
	case a > b:
		return register.Greater
	default:
		return register.Equal
	}
}
