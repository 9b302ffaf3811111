/*
 * mixvm - Instruction word decode/encode.
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
 * Every MIX instruction is a full word: signed address (bytes 1-2),
 * index (byte 3), modifier (byte 4), opcode (byte 5).
 */

package instruction

import (
	"errors"
	"fmt"

	"github.com/gomix/mixvm/word"
)

// ErrWidth is returned by Decode when handed a word that isn't a full
// (5-byte) word.
var ErrWidth = errors.New("instruction word must be a full word")

// Instruction is the decoded view of a full word as an instruction.
type Instruction struct {
	Address  int   // signed value of the address field
	Index    uint8 // raw I byte; validity (0..=6) is the caller's concern
	Modifier uint8 // raw F byte
	Opcode   uint8 // raw C byte
}

// Decode unpacks a full word into its instruction fields.
func Decode(w word.Word) (Instruction, error) {
	if w.Width() != word.FullBytes {
		return Instruction{}, fmt.Errorf("%w: got %d bytes", ErrWidth, w.Width())
	}
	mag := int(w.Byte(1))*256 + int(w.Byte(2))
	addr := mag
	if w.Sign() == word.NEG {
		addr = -addr
	}
	return Instruction{
		Address:  addr,
		Index:    w.Byte(3),
		Modifier: w.Byte(4),
		Opcode:   w.Byte(5),
	}, nil
}

// Encode packs an Instruction back into a full word.
func Encode(ins Instruction) word.Word {
	w := word.NewFull()
	mag := ins.Address
	sign := word.POS
	if mag < 0 {
		sign = word.NEG
		mag = -mag
	}
	w.SetSign(sign)
	w.SetByte(1, uint8(mag/256))
	w.SetByte(2, uint8(mag%256))
	w.SetByte(3, ins.Index)
	w.SetByte(4, ins.Modifier)
	w.SetByte(5, ins.Opcode)
	return w
}
