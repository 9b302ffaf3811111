/*
 * mixvm - NOP (opcode 0) and the Special family (opcode 5): NUM, CHAR,
 * HLT, the ieee754 float conversions, and the binarith bitwise ops.
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
 * CHAR emits MIX's character-code digits, byte values 30-39 for 0-9, not
 * the raw digit values; NUM reads them back with a plain mod-10, so the
 * pair stays each other's inverse.
 */

package vm

import (
	"fmt"
	"math"

	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/word"
)

func init() {
	opcodeTable[0] = execNOP
	opcodeTable[5] = execSpecial
}

func execNOP(vm *VM, ins instruction.Instruction) error {
	return nil
}

func execSpecial(vm *VM, ins instruction.Instruction) error {
	switch ins.Modifier {
	case 0:
		return execNUM(vm)
	case 1:
		return execCHAR(vm)
	case 2:
		return ErrHalted
	case 3:
		return execFLOT(vm)
	case 4:
		return execFIX(vm)
	case 9:
		return execBinNOT(vm)
	case 10, 11, 12:
		return execBinDyadic(vm, ins)
	default:
		return fmt.Errorf("%w: Special F=%d", ErrInvalidField, ins.Modifier)
	}
}

func execNUM(vm *VM) error {
	var value int64
	for _, b := range vm.Reg.A.Bytes() {
		value = value*10 + int64(b%10)
	}
	for _, b := range vm.Reg.X.Bytes() {
		value = value*10 + int64(b%10)
	}
	w := word.NewFull()
	if err := w.SetFromInt64(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMemRange, err)
	}
	w.SetSign(vm.Reg.A.Sign())
	vm.Reg.A = w
	return nil
}

func execCHAR(vm *VM) error {
	value := absInt64(vm.Reg.A.ToInt64())
	var digits [10]byte
	for i := 9; i >= 0; i-- {
		digits[i] = byte(value%10) + 30
		value /= 10
	}
	vm.Reg.A = word.FromBytes(vm.Reg.A.Sign(), digits[:5])
	vm.Reg.X = word.FromBytes(word.POS, digits[5:])
	return nil
}

func execFLOT(vm *VM) error {
	vm.Reg.A = wordFromFloat(float32(vm.Reg.A.ToInt64()))
	return nil
}

func execFIX(vm *VM) error {
	f := floatFromWord(vm.Reg.A)
	limit := word.Capacity(word.FullBytes)
	if math.IsNaN(float64(f)) {
		vm.Reg.Overflow = true
		w := word.NewFull()
		_ = w.SetFromInt64(0)
		vm.Reg.A = w
		return nil
	}
	n := int64(f)
	if absInt64(n) > limit {
		vm.Reg.Overflow = true
		if n < 0 {
			n = -limit
		} else {
			n = limit
		}
	}
	w := word.NewFull()
	_ = w.SetFromInt64(n)
	vm.Reg.A = w
	return nil
}

func execBinNOT(vm *VM) error {
	b := toBoolBytes(vm.Reg.A)
	for i := range b {
		if i == 0 {
			b[i] ^= 1
		} else {
			b[i] = ^b[i]
		}
	}
	vm.Reg.A = fromBoolBytes(b)
	return nil
}

func execBinDyadic(vm *VM, ins instruction.Instruction) error {
	v, err := vm.computeV(ins)
	if err != nil {
		return err
	}
	a := toBoolBytes(vm.Reg.A)
	b := toBoolBytes(v)
	var out boolBytes
	for i := range out {
		switch ins.Modifier {
		case 10: // AND
			out[i] = a[i] & b[i]
		case 11: // OR
			out[i] = a[i] | b[i]
		case 12: // XOR
			out[i] = a[i] ^ b[i]
		}
	}
	vm.Reg.A = fromBoolBytes(out)
	return nil
}
