/*
 * mixvm - INCx, DECx, ENTx, ENNx (opcodes 48-55).
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
 * F selects the four variants within each C: 0=INC, 1=DEC, 2=ENT, 3=ENN.
 * ENT and ENN load M itself rather than a memory reference, which is why
 * they're the usual way MIX code sets up an index register.
 */

package vm

import (
	"fmt"

	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/word"
)

func init() {
	for slot := 0; slot < 8; slot++ {
		opcodeTable[48+slot] = makeModify(slot)
	}
}

func makeModify(slot int) handler {
	s := regSlots[slot]
	return func(vm *VM, ins instruction.Instruction) error {
		m, err := vm.computeM(ins)
		if err != nil {
			return err
		}
		switch ins.Modifier {
		case 0: // INC
			sum, overflow := addSigned(s.get(vm.Reg).ToInt64(), int64(m), s.width)
			if overflow {
				vm.Reg.Overflow = true
			}
			nw := word.New(s.width)
			if err := nw.SetFromInt64(sum); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidMemRange, err)
			}
			s.set(vm.Reg, nw)
		case 1: // DEC
			sum, overflow := addSigned(s.get(vm.Reg).ToInt64(), -int64(m), s.width)
			if overflow {
				vm.Reg.Overflow = true
			}
			nw := word.New(s.width)
			if err := nw.SetFromInt64(sum); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidMemRange, err)
			}
			s.set(vm.Reg, nw)
		case 2: // ENT
			nw := word.New(s.width)
			if err := nw.SetFromInt64(int64(m)); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidMemRange, err)
			}
			s.set(vm.Reg, nw)
		case 3: // ENN
			nw := word.New(s.width)
			if err := nw.SetFromInt64(int64(-m)); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidMemRange, err)
			}
			s.set(vm.Reg, nw)
		default:
			return fmt.Errorf("%w: modify F=%d", ErrInvalidField, ins.Modifier)
		}
		return nil
	}
}
