/*
 * mixvm - Shift family (opcode 6): SLA, SRA, SLAX, SRAX, SLC, SRC, and
 * the x-binary bit shifts SLB, SRB.
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
 * The shift amount is M, the instruction's effective address; negative
 * amounts are treated as zero rather than shifting the other way.
 */

package vm

import (
	"fmt"
	"math/big"

	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/word"
)

func init() {
	opcodeTable[6] = execShift
}

func execShift(vm *VM, ins instruction.Instruction) error {
	m, err := vm.computeM(ins)
	if err != nil {
		return err
	}
	if m < 0 {
		m = 0
	}

	switch ins.Modifier {
	case 0: // SLA
		vm.Reg.A = word.FromBytes(vm.Reg.A.Sign(), bytesShiftLeft(vm.Reg.A.Bytes(), m))
	case 1: // SRA
		vm.Reg.A = word.FromBytes(vm.Reg.A.Sign(), bytesShiftRight(vm.Reg.A.Bytes(), m))
	case 2: // SLAX
		a, x := vm.axShift(bytesShiftLeft, m)
		vm.Reg.A, vm.Reg.X = a, x
	case 3: // SRAX
		a, x := vm.axShift(bytesShiftRight, m)
		vm.Reg.A, vm.Reg.X = a, x
	case 4: // SLC
		a, x := vm.axShift(bytesRotateLeft, m)
		vm.Reg.A, vm.Reg.X = a, x
	case 5: // SRC
		a, x := vm.axShift(bytesRotateRight, m)
		vm.Reg.A, vm.Reg.X = a, x
	case 6: // SLB
		a, x := vm.axBitShift(m, true)
		vm.Reg.A, vm.Reg.X = a, x
	case 7: // SRB
		a, x := vm.axBitShift(m, false)
		vm.Reg.A, vm.Reg.X = a, x
	default:
		return errInvalidField(ins.Modifier)
	}
	return nil
}

func errInvalidField(f uint8) error {
	return fmt.Errorf("%w: shift F=%d", ErrInvalidField, f)
}

func bytesShiftLeft(buf []byte, n int) []byte {
	out := make([]byte, len(buf))
	if n >= len(buf) {
		return out
	}
	copy(out, buf[n:])
	return out
}

func bytesShiftRight(buf []byte, n int) []byte {
	out := make([]byte, len(buf))
	if n >= len(buf) {
		return out
	}
	copy(out[n:], buf[:len(buf)-n])
	return out
}

func bytesRotateLeft(buf []byte, n int) []byte {
	l := len(buf)
	n = n % l
	out := make([]byte, 0, l)
	out = append(out, buf[n:]...)
	out = append(out, buf[:n]...)
	return out
}

func bytesRotateRight(buf []byte, n int) []byte {
	l := len(buf)
	n = n % l
	return bytesRotateLeft(buf, l-n)
}

// axShift applies a byte-shift function to the 10-byte concatenation of
// rA and rX, then splits the result back, keeping each register's own
// sign.
func (vm *VM) axShift(op func([]byte, int) []byte, n int) (word.Word, word.Word) {
	combined := append(append([]byte{}, vm.Reg.A.Bytes()...), vm.Reg.X.Bytes()...)
	shifted := op(combined, n)
	a := word.FromBytes(vm.Reg.A.Sign(), shifted[:word.FullBytes])
	x := word.FromBytes(vm.Reg.X.Sign(), shifted[word.FullBytes:])
	return a, x
}

// axBitShift is the x-binary bit-granular counterpart of axShift: it
// treats rA/rX as one 80-bit unsigned value, shifts it left or right by
// n bits with zero fill, and never wraps around.
func (vm *VM) axBitShift(n int, left bool) (word.Word, word.Word) {
	combined := append(append([]byte{}, vm.Reg.A.Bytes()...), vm.Reg.X.Bytes()...)
	val := new(big.Int).SetBytes(combined)
	if left {
		val.Lsh(val, uint(n))
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 80), big.NewInt(1))
		val.And(val, mask)
	} else {
		val.Rsh(val, uint(n))
	}
	buf := make([]byte, 2*word.FullBytes)
	val.FillBytes(buf)
	a := word.FromBytes(vm.Reg.A.Sign(), buf[:word.FullBytes])
	x := word.FromBytes(vm.Reg.X.Sign(), buf[word.FullBytes:])
	return a, x
}
