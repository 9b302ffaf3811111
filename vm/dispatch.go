/*
 * mixvm - Fetch/decode/execute.
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
 * Step performs one fetch-decode-execute cycle. PC advances before the
 * handler runs, so a jump handler that wants to fall through simply
 * leaves PC alone, and one that wants to branch overwrites it -- rJ is
 * always the address of the instruction after the jump, never the
 * jump itself.
 */

package vm

import (
	"errors"
	"fmt"

	"github.com/gomix/mixvm/instruction"
)

// handler executes one opcode against the machine, given the already
// fetched instruction. It returns a terminal error (a fault, or
// ErrHalted for HLT); non-terminal conditions such as arithmetic
// overflow are recorded on the register file and reported via nil.
type handler func(vm *VM, ins instruction.Instruction) error

// opcodeTable is indexed by the instruction's C byte, 0..63. A nil entry
// is an opcode this machine does not implement. Each opcodes_*.go file
// populates its slice of this table from its own init.
var opcodeTable [64]handler

// Step runs one instruction. Once the machine has halted, further calls
// are no-ops that return ErrHalted; every other terminal condition
// leaves the machine halted too, since MIX has no supervisor to catch a
// fault and resume.
func (vm *VM) Step() error {
	if vm.Reg.Halted {
		return ErrHalted
	}

	raw, err := vm.cellAt(vm.Reg.PC)
	if err != nil {
		return vm.fault(err)
	}
	ins, err := instruction.Decode(raw)
	if err != nil {
		return vm.fault(fmt.Errorf("%w: %v", ErrInvalidInstruction, err))
	}

	vm.Reg.PC++

	h := opcodeTable[ins.Opcode]
	if h == nil {
		return vm.fault(fmt.Errorf("%w: opcode %d", ErrInvalidInstruction, ins.Opcode))
	}

	if err := h(vm, ins); err != nil {
		if errors.Is(err, ErrHalted) {
			vm.Reg.Halted = true
			return err
		}
		return vm.fault(err)
	}
	return nil
}

// fault marks the machine halted and returns the triggering error, so
// every non-HLT terminal path shares one line.
func (vm *VM) fault(err error) error {
	vm.Reg.Halted = true
	return err
}
