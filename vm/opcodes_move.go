/*
 * mixvm - MOVE (opcode 7).
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
 * F is the word count here, not a field spec. rI1 names the destination
 * and advances by one after every word moved, so a MOVE whose source and
 * destination ranges overlap sees its own output partway through --
 * exactly what TAOCP's word-at-a-time definition implies.
 */

package vm

import (
	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/word"
)

func init() {
	opcodeTable[7] = execMOVE
}

func execMOVE(vm *VM, ins instruction.Instruction) error {
	m, err := vm.computeM(ins)
	if err != nil {
		return err
	}
	count := int(ins.Modifier)
	for i := 0; i < count; i++ {
		cell, err := vm.cellAt(m + i)
		if err != nil {
			return err
		}
		dst := int(vm.Reg.I[0].ToInt64())
		if err := vm.setCellAt(dst, cell); err != nil {
			return err
		}
		sum, overflow := addSigned(vm.Reg.I[0].ToInt64(), 1, word.HalfBytes)
		if overflow {
			vm.Reg.Overflow = true
		}
		nw := word.New(word.HalfBytes)
		_ = nw.SetFromInt64(sum)
		vm.Reg.I[0] = nw
	}
	return nil
}
