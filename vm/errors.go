/*
 * mixvm - Step error taxonomy.
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

import "errors"

// Every terminal Step outcome is one of these sentinels, wrapped with
// context via fmt.Errorf("%w: ...", ...). Callers should compare with
// errors.Is, not string matching.
var (
	// ErrHalted means HLT executed; this is normal termination, not a
	// fault, but it is terminal like the fault kinds below.
	ErrHalted = errors.New("halted")

	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrInvalidField       = errors.New("invalid field specification")
	ErrInvalidIndex       = errors.New("invalid index register")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidMemRange    = errors.New("value does not fit in destination register")
	ErrUnknownDevice      = errors.New("unknown device")
	ErrIO                 = errors.New("device I/O failure")
)
