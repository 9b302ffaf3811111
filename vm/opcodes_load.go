/*
 * mixvm - LDx and LDxN (opcodes 8-23).
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

package vm

import "github.com/gomix/mixvm/instruction"

func init() {
	for slot := 0; slot < 8; slot++ {
		opcodeTable[8+slot] = makeLoad(slot, false)
		opcodeTable[16+slot] = makeLoad(slot, true)
	}
}

// makeLoad returns the handler for LD<reg> (negate=false) or LD<reg>N
// (negate=true) against regSlots[slot].
func makeLoad(slot int, negateSign bool) handler {
	s := regSlots[slot]
	return func(vm *VM, ins instruction.Instruction) error {
		v, err := vm.computeV(ins)
		if err != nil {
			return err
		}
		if negateSign {
			v = negate(v)
		}
		w, err := fitToWidth(v, s.width)
		if err != nil {
			return err
		}
		s.set(vm.Reg, w)
		return nil
	}
}
