/*
 * mixvm - Effective address and field-value computation shared by every
 * opcode handler.
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
	"fmt"

	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/memory"
	"github.com/gomix/mixvm/word"
)

// maxAddressMagnitude is the widest effective address TAOCP's 12-bit
// address field can express, positive or negative.
const maxAddressMagnitude = 4095

// computeM returns the effective address: the instruction's address
// field plus rIi's value when the instruction is indexed. The result
// must still fit the 12-bit address field after that addition -- this
// is checked here, not left to whatever later uses M, so an
// address-transfer opcode like ENTA sees the same InvalidAddress a
// memory reference would.
func (vm *VM) computeM(ins instruction.Instruction) (int, error) {
	m := ins.Address
	if ins.Index != 0 {
		idx, err := vm.Reg.Index(int(ins.Index))
		if err != nil {
			return 0, fmt.Errorf("%w: I%d", ErrInvalidIndex, ins.Index)
		}
		m += int(idx.ToInt64())
	}
	if m > maxAddressMagnitude || m < -maxAddressMagnitude {
		return 0, fmt.Errorf("%w: M=%d", ErrInvalidAddress, m)
	}
	return m, nil
}

// cellAt fetches the memory cell at m, translating an out-of-range
// address into ErrInvalidAddress.
func (vm *VM) cellAt(m int) (word.Word, error) {
	if m < 0 || m >= memory.Size {
		return word.Word{}, fmt.Errorf("%w: %d", ErrInvalidAddress, m)
	}
	return vm.Mem.Get(m)
}

// setCellAt stores w at m, translating an out-of-range address into
// ErrInvalidAddress.
func (vm *VM) setCellAt(m int, w word.Word) error {
	if m < 0 || m >= memory.Size {
		return fmt.Errorf("%w: %d", ErrInvalidAddress, m)
	}
	return vm.Mem.Set(m, w)
}

// field decodes the instruction's F byte into a FieldSpec, translating a
// malformed field into ErrInvalidField.
func field(ins instruction.Instruction) (word.FieldSpec, error) {
	fs, err := word.DecodeField(ins.Modifier)
	if err != nil {
		return word.FieldSpec{}, fmt.Errorf("%w: F=%d", ErrInvalidField, ins.Modifier)
	}
	return fs, nil
}

// computeV computes M, fetches the cell there, and returns the (L:R)
// field of it named by the instruction's F byte -- the "V" operand of
// TAOCP's instruction descriptions.
func (vm *VM) computeV(ins instruction.Instruction) (word.Word, error) {
	m, err := vm.computeM(ins)
	if err != nil {
		return word.Word{}, err
	}
	cell, err := vm.cellAt(m)
	if err != nil {
		return word.Word{}, err
	}
	fs, err := field(ins)
	if err != nil {
		return word.Word{}, err
	}
	return word.ReadField(cell, fs), nil
}
