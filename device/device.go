/*
 * mixvm - I/O device capability.
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

package device

import (
	"errors"
	"fmt"

	"github.com/gomix/mixvm/word"
)

// NumUnits is the canonical MIX device count; devices are addressed by
// F in 0..=19.
const NumUnits = 20

// ErrUnknownDevice is returned when an I/O opcode names an empty slot.
var ErrUnknownDevice = errors.New("unknown device")

// Device is the capability every I/O unit implements. All operations are
// synchronous: they complete before returning, matching MIX's model
// where JBUS/JRED poll busy/ready state from the running program rather
// than the simulator scheduling completions.
type Device interface {
	// Read fills buf with BlockSize words read from the device.
	Read(buf []word.Word) error
	// Write sends buf, which holds BlockSize words, to the device.
	Write(buf []word.Word) error
	// Control performs a device-specific command, the M operand of IOC.
	Control(m int) error
	// IsBusy reports whether the device is mid-operation.
	IsBusy() bool
	// IsReady reports whether the device can accept a new operation.
	IsReady() bool
	// BlockSize is the number of words transferred per IN/OUT.
	BlockSize() int
}

// Table is a fixed-length table of device slots, indexed 0..=19 by an
// I/O instruction's F field. A nil slot is empty.
type Table struct {
	units [NumUnits]Device
}

// Install attaches dev to slot f, replacing whatever was there.
func (t *Table) Install(f int, dev Device) error {
	if f < 0 || f >= NumUnits {
		return fmt.Errorf("device slot %d out of range 0..%d", f, NumUnits-1)
	}
	t.units[f] = dev
	return nil
}

// Get returns the device installed at slot f.
func (t *Table) Get(f int) (Device, error) {
	if f < 0 || f >= NumUnits {
		return nil, fmt.Errorf("device slot %d out of range 0..%d", f, NumUnits-1)
	}
	dev := t.units[f]
	if dev == nil {
		return nil, fmt.Errorf("%w: slot %d", ErrUnknownDevice, f)
	}
	return dev, nil
}
