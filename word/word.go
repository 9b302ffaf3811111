/*
 * mixvm - MIX word representation.
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
 * A Word is MIX's sign-magnitude storage cell: one sign byte followed by
 * N magnitude bytes, most significant byte first. Full words (memory
 * cells, rA, rX, instructions) use N=5. Index registers use N=2. rJ also
 * uses N=2 but its sign is pinned positive on every write.
 */

package word

import "fmt"

// Sign is one of the two sentinel byte values a Word's sign cell may hold.
type Sign uint8

const (
	POS Sign = 0
	NEG Sign = 1
)

// FullBytes and HalfBytes are the two magnitude widths MIX registers use.
const (
	FullBytes = 5
	HalfBytes = 2
)

// capacity is 256^n - 1, the largest magnitude representable in n bytes.
func capacity(n int) int64 {
	return Capacity(n)
}

// Capacity returns 256^n - 1, the largest magnitude representable in n
// bytes. Exported so packages composing words (arithmetic, shifts) can
// reason about overflow without duplicating the constant.
func Capacity(n int) int64 {
	c := int64(1)
	for i := 0; i < n; i++ {
		c *= 256
	}
	return c - 1
}

// Word is a fixed-width sign-magnitude value. Bytes holds exactly n
// magnitude bytes, most significant first. A zero-value Word is +0 of
// width 0 and must not be used; construct with New, NewFull or NewHalf.
type Word struct {
	sign  Sign
	bytes []uint8
	pinPositive bool // true for rJ: sign writes are ignored, always POS.
}

// New returns a +0 word of the given magnitude width.
func New(n int) Word {
	return Word{sign: POS, bytes: make([]uint8, n)}
}

// NewFull returns a +0 full (5-byte) word.
func NewFull() Word { return New(FullBytes) }

// NewHalf returns a +0 half (2-byte) word.
func NewHalf() Word { return New(HalfBytes) }

// NewPinnedPositive returns a +0 half word whose sign can never be set
// negative; this models rJ.
func NewPinnedPositive() Word {
	w := New(HalfBytes)
	w.pinPositive = true
	return w
}

// Width returns the number of magnitude bytes.
func (w Word) Width() int { return len(w.bytes) }

// Sign returns the word's sign cell.
func (w Word) Sign() Sign { return w.sign }

// SetSign sets the sign cell, unless the word is pinned positive (rJ).
func (w *Word) SetSign(s Sign) {
	if w.pinPositive {
		w.sign = POS
		return
	}
	w.sign = s
}

// Byte returns magnitude byte i, 1-indexed (byte 1 is most significant).
func (w Word) Byte(i int) uint8 {
	return w.bytes[i-1]
}

// SetByte sets magnitude byte i, 1-indexed.
func (w *Word) SetByte(i int, v uint8) {
	w.bytes[i-1] = v
}

// Bytes returns the magnitude bytes, most significant first. The
// returned slice aliases the word's storage; callers must not retain it
// across further mutation.
func (w Word) Bytes() []uint8 {
	return w.bytes
}

// FromBytes builds a Word of width len(mag) with the given sign and
// magnitude bytes (copied).
func FromBytes(sign Sign, mag []uint8) Word {
	w := New(len(mag))
	w.sign = sign
	copy(w.bytes, mag)
	return w
}

// ToInt64 converts the word to a signed two's-complement integer.
func (w Word) ToInt64() int64 {
	var mag int64
	for _, b := range w.bytes {
		mag = mag*256 + int64(b)
	}
	if w.sign == NEG {
		return -mag
	}
	return mag
}

// SetFromInt64 sets the word's sign and magnitude from a signed integer.
// It fails if the magnitude does not fit in the word's width.
func (w *Word) SetFromInt64(v int64) error {
	sign := POS
	mag := v
	if v < 0 {
		sign = NEG
		mag = -v
	}
	if mag > capacity(len(w.bytes)) {
		return fmt.Errorf("%w: %d does not fit in %d bytes", ErrOverflow, v, len(w.bytes))
	}
	for i := len(w.bytes) - 1; i >= 0; i-- {
		w.bytes[i] = uint8(mag & 0xff)
		mag >>= 8
	}
	w.SetSign(sign)
	return nil
}

// IsZero reports whether the magnitude is all-zero (sign is ignored;
// MIX's "-0" and "+0" are both arithmetic zero).
func (w Word) IsZero() bool {
	for _, b := range w.bytes {
		if b != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the word.
func (w Word) Clone() Word {
	return FromBytes(w.sign, w.bytes)
}

// Equal reports whether two words have the same sign and magnitude.
func (w Word) Equal(o Word) bool {
	if w.sign != o.sign || len(w.bytes) != len(o.bytes) {
		return false
	}
	for i := range w.bytes {
		if w.bytes[i] != o.bytes[i] {
			return false
		}
	}
	return true
}

func (w Word) String() string {
	s := "+"
	if w.sign == NEG {
		s = "-"
	}
	for _, b := range w.bytes {
		s += fmt.Sprintf("%02X", b)
	}
	return s
}
