/*
 * mixvm - Main memory.
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
 * Get and Set both clone the word's magnitude bytes at the boundary, so
 * a cell handed out by Get never shares its backing array with a cell
 * later stored by Set -- without that, a MOVE or IN that round-trips a
 * word through a caller's local variable would leave two cells aliasing
 * the same byte slice, and a later store to either would corrupt both.
 */

package memory

import (
	"errors"
	"fmt"

	"github.com/gomix/mixvm/word"
)

// Size is the number of addressable full-word cells, per TAOCP.
const Size = 4000

// ErrAddressRange is returned when an address falls outside 0..=3999.
var ErrAddressRange = errors.New("address out of range")

// Memory is a fixed 4000-cell store of full words, addressable 0..=3999.
type Memory struct {
	cells [Size]word.Word
}

// New returns memory with every cell set to +0.
func New() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset sets every cell back to +0.
func (m *Memory) Reset() {
	for i := range m.cells {
		m.cells[i] = word.NewFull()
	}
}

func checkAddr(addr int) error {
	if addr < 0 || addr >= Size {
		return fmt.Errorf("%w: %d", ErrAddressRange, addr)
	}
	return nil
}

// Get returns the full word at addr, independent of the cell's own
// storage: mutating the result does not touch memory.
func (m *Memory) Get(addr int) (word.Word, error) {
	if err := checkAddr(addr); err != nil {
		return word.Word{}, err
	}
	return m.cells[addr].Clone(), nil
}

// Set stores a full word at addr, independent of w's own storage:
// mutating w after Set does not touch memory.
func (m *Memory) Set(addr int, w word.Word) error {
	if err := checkAddr(addr); err != nil {
		return err
	}
	m.cells[addr] = w.Clone()
	return nil
}
