/*
 * mixvm - ADD, SUB, MUL, DIV (opcodes 1-4).
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
 * ADD and SUB fit comfortably in int64: a full word's magnitude tops out
 * at 256^5-1, so the sum of two never exceeds 63 bits. MUL and DIV don't
 * -- a full-word product needs 80 bits of magnitude -- so those two
 * reach for math/big rather than hand-rolling 10-byte long division.
 *
 * F=7 on any of the four is the x-ieee754 extension's float flavor:
 * operate on rA and the memory word as binary32 instead of sign-magnitude
 * integer. That reading bypasses DecodeField entirely -- F=7 isn't a
 * valid L:R field spec -- so it's checked before computeV is called.
 */

package vm

import (
	"math/big"

	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/word"
)

func init() {
	opcodeTable[1] = execADD
	opcodeTable[2] = execSUB
	opcodeTable[3] = execMUL
	opcodeTable[4] = execDIV
}

// addSigned adds two signed magnitudes already expanded to int64 and
// reports whether the true sum overflows a full word. On overflow the
// returned value is the sum reduced modulo 256^width, sign preserved,
// matching TAOCP's "the most significant digit is simply lost".
func addSigned(a, b int64, width int) (int64, bool) {
	sum := a + b
	limit := word.Capacity(width)
	mag := sum
	if mag < 0 {
		mag = -mag
	}
	if mag <= limit {
		return sum, false
	}
	modulus := limit + 1
	mag %= modulus
	if sum < 0 {
		mag = -mag
	}
	return mag, true
}

func execADD(vm *VM, ins instruction.Instruction) error {
	if ins.Modifier == 7 {
		return execFloatBinary(vm, ins, func(a, b float32) float32 { return a + b })
	}
	v, err := vm.computeV(ins)
	if err != nil {
		return err
	}
	sum, overflow := addSigned(vm.Reg.A.ToInt64(), v.ToInt64(), word.FullBytes)
	if overflow {
		vm.Reg.Overflow = true
	}
	return vm.Reg.A.SetFromInt64(sum)
}

func execSUB(vm *VM, ins instruction.Instruction) error {
	if ins.Modifier == 7 {
		return execFloatBinary(vm, ins, func(a, b float32) float32 { return a - b })
	}
	v, err := vm.computeV(ins)
	if err != nil {
		return err
	}
	sum, overflow := addSigned(vm.Reg.A.ToInt64(), -v.ToInt64(), word.FullBytes)
	if overflow {
		vm.Reg.Overflow = true
	}
	return vm.Reg.A.SetFromInt64(sum)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func execMUL(vm *VM, ins instruction.Instruction) error {
	if ins.Modifier == 7 {
		return execFloatBinary(vm, ins, func(a, b float32) float32 { return a * b })
	}
	v, err := vm.computeV(ins)
	if err != nil {
		return err
	}
	aMag := big.NewInt(absInt64(vm.Reg.A.ToInt64()))
	vMag := big.NewInt(absInt64(v.ToInt64()))
	product := new(big.Int).Mul(aMag, vMag)

	buf := make([]byte, 2*word.FullBytes)
	product.FillBytes(buf)

	sign := word.POS
	if vm.Reg.A.Sign() != v.Sign() {
		sign = word.NEG
	}
	vm.Reg.A = word.FromBytes(sign, buf[:word.FullBytes])
	vm.Reg.X = word.FromBytes(sign, buf[word.FullBytes:])
	return nil
}

// zeroDivideResult is what DIV leaves behind when it cannot complete:
// the overflow toggle set and both rA and rX cleared, rather than a
// terminal fault -- MIX treats this as a recoverable arithmetic fault a
// program can test for with JOV.
func (vm *VM) zeroDivideResult() error {
	vm.Reg.Overflow = true
	vm.Reg.A = word.NewFull()
	vm.Reg.X = word.NewFull()
	return nil
}

func execDIV(vm *VM, ins instruction.Instruction) error {
	if ins.Modifier == 7 {
		return execFloatBinary(vm, ins, func(a, b float32) float32 { return a / b })
	}
	v, err := vm.computeV(ins)
	if err != nil {
		return err
	}
	divisorMag := absInt64(v.ToInt64())
	if divisorMag == 0 {
		return vm.zeroDivideResult()
	}

	dividendBytes := make([]byte, 2*word.FullBytes)
	copy(dividendBytes[:word.FullBytes], vm.Reg.A.Bytes())
	copy(dividendBytes[word.FullBytes:], vm.Reg.X.Bytes())
	dividend := new(big.Int).SetBytes(dividendBytes)
	divisor := big.NewInt(divisorMag)

	quotient := new(big.Int)
	remainder := new(big.Int)
	quotient.QuoRem(dividend, divisor, remainder)

	if quotient.Cmp(big.NewInt(word.Capacity(word.FullBytes))) > 0 {
		return vm.zeroDivideResult()
	}

	qSign := word.POS
	if vm.Reg.A.Sign() != v.Sign() {
		qSign = word.NEG
	}
	rSign := vm.Reg.A.Sign()

	qBuf := make([]byte, word.FullBytes)
	quotient.FillBytes(qBuf)
	rBuf := make([]byte, word.FullBytes)
	remainder.FillBytes(rBuf)

	vm.Reg.A = word.FromBytes(qSign, qBuf)
	vm.Reg.X = word.FromBytes(rSign, rBuf)
	return nil
}
