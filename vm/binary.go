/*
 * mixvm - the x-binarith extension: NOT/AND/OR/XOR treat a word as 41
 * boolean bits, sign cell included.
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
 * boolBytes[0] holds the sign as a 0/1 bit (POS/NEG); boolBytes[1:6] are
 * the five magnitude bytes untouched. AND/OR/XOR apply ordinary bitwise
 * ops to every position of that array; NOT complements the magnitude
 * bytes and flips only the low bit of the sign position.
 */

package vm

import "github.com/gomix/mixvm/word"

type boolBytes [1 + word.FullBytes]byte

func toBoolBytes(w word.Word) boolBytes {
	var b boolBytes
	if w.Sign() == word.NEG {
		b[0] = 1
	}
	copy(b[1:], w.Bytes())
	return b
}

func fromBoolBytes(b boolBytes) word.Word {
	sign := word.POS
	if b[0]&1 == 1 {
		sign = word.NEG
	}
	return word.FromBytes(sign, b[1:])
}
