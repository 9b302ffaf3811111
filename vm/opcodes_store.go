/*
 * mixvm - STx, STJ and STZ (opcodes 24-33).
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

import (
	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/register"
	"github.com/gomix/mixvm/word"
)

func init() {
	for slot := 0; slot < 8; slot++ {
		opcodeTable[24+slot] = makeStore(regSlots[slot].get)
	}
	opcodeTable[32] = makeStore(func(f *register.File) word.Word { return f.J })
	opcodeTable[33] = execSTZ
}

// makeStore returns the handler for ST<reg>: it writes the (L:R) field
// of the target cell from src(vm.Reg), leaving the rest of the cell
// untouched.
func makeStore(src func(f *register.File) word.Word) handler {
	return func(vm *VM, ins instruction.Instruction) error {
		m, err := vm.computeM(ins)
		if err != nil {
			return err
		}
		cell, err := vm.cellAt(m)
		if err != nil {
			return err
		}
		fs, err := field(ins)
		if err != nil {
			return err
		}
		word.WriteField(&cell, fs, src(vm.Reg))
		return vm.setCellAt(m, cell)
	}
}

func execSTZ(vm *VM, ins instruction.Instruction) error {
	m, err := vm.computeM(ins)
	if err != nil {
		return err
	}
	cell, err := vm.cellAt(m)
	if err != nil {
		return err
	}
	fs, err := field(ins)
	if err != nil {
		return err
	}
	word.WriteField(&cell, fs, word.NewFull())
	return vm.setCellAt(m, cell)
}
