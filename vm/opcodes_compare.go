/*
 * mixvm - CMPx (opcodes 56-63).
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
 * F names the same field in both the register and the memory operand.
 * A field that is only the sign (0:0) carries no magnitude to compare,
 * so it always reads as equal.
 *
 * F=7 is the x-ieee754 extension's float flavor of CmpA/CmpX: the
 * register and memory operand are read whole, as binary32, rather than
 * split by an L:R field -- F=7 isn't a valid field spec at all, so it's
 * checked before field/ReadField ever run. Only rA and rX carry a full
 * word, so the index-register CMP1..CMP6 slots don't get this flavor.
 */

package vm

import (
	"fmt"

	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/register"
	"github.com/gomix/mixvm/word"
)

func init() {
	for slot := 0; slot < 8; slot++ {
		opcodeTable[56+slot] = makeCompare(slot)
	}
}

func compareWords(a, b word.Word, fs word.FieldSpec) register.CompIndicator {
	if fs.L == 0 && fs.R == 0 {
		return register.Equal
	}
	av, bv := a.ToInt64(), b.ToInt64()
	switch {
	case av < bv:
		return register.Less
	case av > bv:
		return register.Greater
	default:
		return register.Equal
	}
}

func makeCompare(slot int) handler {
	s := regSlots[slot]
	return func(vm *VM, ins instruction.Instruction) error {
		m, err := vm.computeM(ins)
		if err != nil {
			return err
		}
		cell, err := vm.cellAt(m)
		if err != nil {
			return err
		}
		if ins.Modifier == 7 {
			if s.width != word.FullBytes {
				return fmt.Errorf("%w: CMP%s F=7", ErrInvalidField, s.name)
			}
			vm.Reg.Comp = compareFloats(floatFromWord(s.get(vm.Reg)), floatFromWord(cell))
			return nil
		}
		fs, err := field(ins)
		if err != nil {
			return err
		}
		if fs.R > s.width {
			return fmt.Errorf("%w: field %d:%d exceeds %d-byte register", ErrInvalidField, fs.L, fs.R, s.width)
		}
		regField := word.ReadField(s.get(vm.Reg), fs)
		memField := word.ReadField(cell, fs)
		vm.Reg.Comp = compareWords(regField, memField, fs)
		return nil
	}
}
