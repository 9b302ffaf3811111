/*
 * mixvm - JMP family (opcode 39) and the per-register Jx jumps
 * (opcodes 40-47).
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
 * Every taken jump but JSJ records the return address in rJ before
 * overwriting PC. PC has already been advanced past the jump
 * instruction by the time a handler runs, so that's simply PC's
 * current value.
 */

package vm

import (
	"fmt"

	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/memory"
	"github.com/gomix/mixvm/register"
	"github.com/gomix/mixvm/word"
)

func init() {
	opcodeTable[39] = execJMPFamily
	for slot := 0; slot < 8; slot++ {
		opcodeTable[40+slot] = makeJx(slot)
	}
}

// setJ stashes the current PC (the return address) into rJ, preserving
// rJ's always-positive pin.
func (vm *VM) setJ() {
	j := vm.Reg.J
	_ = j.SetFromInt64(int64(vm.Reg.PC))
	vm.Reg.J = j
}

func (vm *VM) jumpTo(m int) error {
	if m < 0 || m >= memory.Size {
		return fmt.Errorf("%w: %d", ErrInvalidAddress, m)
	}
	vm.Reg.PC = m
	return nil
}

func execJMPFamily(vm *VM, ins instruction.Instruction) error {
	m, err := vm.computeM(ins)
	if err != nil {
		return err
	}

	take := false
	setJ := true
	switch ins.Modifier {
	case 0: // JMP
		take = true
	case 1: // JSJ
		take = true
		setJ = false
	case 2: // JOV
		take = vm.Reg.Overflow
		vm.Reg.Overflow = false
	case 3: // JNOV
		take = !vm.Reg.Overflow
		vm.Reg.Overflow = false
	case 4: // JL
		take = vm.Reg.Comp == register.Less
	case 5: // JE
		take = vm.Reg.Comp == register.Equal
	case 6: // JG
		take = vm.Reg.Comp == register.Greater
	case 7: // JGE
		take = vm.Reg.Comp != register.Less
	case 8: // JNE
		take = vm.Reg.Comp != register.Equal
	case 9: // JLE
		take = vm.Reg.Comp != register.Greater
	case 10: // JORD
		take = vm.Reg.Comp != register.Unordered
	case 11: // JUNORD
		take = vm.Reg.Comp == register.Unordered
	default:
		return fmt.Errorf("%w: JMP F=%d", ErrInvalidField, ins.Modifier)
	}

	if !take {
		return nil
	}
	if setJ {
		vm.setJ()
	}
	return vm.jumpTo(m)
}

// isEven reports whether w's magnitude is an even number, the x-binary
// extension's parity test: only the least significant byte's low bit
// matters since every higher byte contributes a multiple of 256.
func isEven(w word.Word) bool {
	return w.Byte(w.Width())%2 == 0
}

func makeJx(slot int) handler {
	s := regSlots[slot]
	return func(vm *VM, ins instruction.Instruction) error {
		m, err := vm.computeM(ins)
		if err != nil {
			return err
		}
		v := s.get(vm.Reg)
		iv := v.ToInt64()

		var take bool
		switch ins.Modifier {
		case 0: // JxN
			take = iv < 0
		case 1: // JxZ
			take = iv == 0
		case 2: // JxP
			take = iv > 0
		case 3: // JxNN
			take = iv >= 0
		case 4: // JxNZ
			take = iv != 0
		case 5: // JxNP
			take = iv <= 0
		case 6: // JxE
			take = isEven(v)
		case 7: // JxO
			take = !isEven(v)
		default:
			return fmt.Errorf("%w: J%sx F=%d", ErrInvalidField, s.name, ins.Modifier)
		}

		if !take {
			return nil
		}
		vm.setJ()
		return vm.jumpTo(m)
	}
}
