/*
 * mixvm - Minimal in-memory reference device.
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
 * Device is not a faithful card reader, printer, or tape emulation --
 * those remain out of scope. It is a small buffered stand-in that a
 * config file installs with the "mem" model; the demo host installs no
 * device on its own.
 */

package memdevice

import (
	"errors"
	"fmt"

	"github.com/gomix/mixvm/word"
)

// ErrShortBuffer is returned when Read or Write is handed a buffer whose
// length doesn't match BlockSize.
var ErrShortBuffer = errors.New("buffer length does not match device block size")

// Device is a fixed-size buffer of words that Read/Write transfer to and
// from wholesale. Control code 1 marks it busy for one subsequent
// IsBusy check (modeling a device that takes one poll cycle to settle);
// any other control code clears busy immediately.
type Device struct {
	blockSize int
	buf       []word.Word
	busy      bool
}

// New returns a device holding blockSize words, initially all +0.
func New(blockSize int) *Device {
	buf := make([]word.Word, blockSize)
	for i := range buf {
		buf[i] = word.NewFull()
	}
	return &Device{blockSize: blockSize, buf: buf}
}

// Preload copies data into the device's buffer. It fails if
// len(data) != BlockSize.
func (d *Device) Preload(data []word.Word) error {
	if len(data) != d.blockSize {
		return fmt.Errorf("%w: got %d want %d", ErrShortBuffer, len(data), d.blockSize)
	}
	copy(d.buf, data)
	return nil
}

// Contents returns a copy of the device's current buffer.
func (d *Device) Contents() []word.Word {
	out := make([]word.Word, len(d.buf))
	copy(out, d.buf)
	return out
}

func (d *Device) Read(dst []word.Word) error {
	if len(dst) != d.blockSize {
		return fmt.Errorf("%w: got %d want %d", ErrShortBuffer, len(dst), d.blockSize)
	}
	copy(dst, d.buf)
	return nil
}

func (d *Device) Write(src []word.Word) error {
	if len(src) != d.blockSize {
		return fmt.Errorf("%w: got %d want %d", ErrShortBuffer, len(src), d.blockSize)
	}
	copy(d.buf, src)
	return nil
}

func (d *Device) Control(m int) error {
	d.busy = m == 1
	return nil
}

func (d *Device) IsBusy() bool {
	busy := d.busy
	d.busy = false
	return busy
}

func (d *Device) IsReady() bool { return !d.busy }

func (d *Device) BlockSize() int { return d.blockSize }
