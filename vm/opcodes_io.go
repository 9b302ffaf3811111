/*
 * mixvm - JBUS, IOC, IN, OUT, JRED (opcodes 34-38).
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
 * F names the device unit, 0-19. Since every Device call here completes
 * synchronously, JBUS/JRED only ever see the busy state a device's own
 * Control left behind, not one the simulator schedules on a timer.
 * A taken JBUS/JRED records the return address in rJ, like every other
 * taken jump but JSJ.
 */

package vm

import (
	"fmt"

	"github.com/gomix/mixvm/device"
	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/word"
)

func init() {
	opcodeTable[34] = execJBUS
	opcodeTable[35] = execIOC
	opcodeTable[36] = execIN
	opcodeTable[37] = execOUT
	opcodeTable[38] = execJRED
}

// deviceAt looks up the device named by an I/O instruction's F field,
// translating an empty slot into the vm package's own ErrUnknownDevice
// so callers compare against one taxonomy instead of reaching into
// device's error set directly.
func (vm *VM) deviceAt(f int) (device.Device, error) {
	dev, err := vm.Devices.Get(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownDevice, err)
	}
	return dev, nil
}

func execJBUS(vm *VM, ins instruction.Instruction) error {
	dev, err := vm.deviceAt(int(ins.Modifier))
	if err != nil {
		return err
	}
	m, err := vm.computeM(ins)
	if err != nil {
		return err
	}
	if dev.IsBusy() {
		vm.setJ()
		return vm.jumpTo(m)
	}
	return nil
}

func execJRED(vm *VM, ins instruction.Instruction) error {
	dev, err := vm.deviceAt(int(ins.Modifier))
	if err != nil {
		return err
	}
	m, err := vm.computeM(ins)
	if err != nil {
		return err
	}
	if dev.IsReady() {
		vm.setJ()
		return vm.jumpTo(m)
	}
	return nil
}

func execIOC(vm *VM, ins instruction.Instruction) error {
	dev, err := vm.deviceAt(int(ins.Modifier))
	if err != nil {
		return err
	}
	m, err := vm.computeM(ins)
	if err != nil {
		return err
	}
	if err := dev.Control(m); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

func execIN(vm *VM, ins instruction.Instruction) error {
	dev, err := vm.deviceAt(int(ins.Modifier))
	if err != nil {
		return err
	}
	m, err := vm.computeM(ins)
	if err != nil {
		return err
	}
	buf := make([]word.Word, dev.BlockSize())
	if err := dev.Read(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	for i, w := range buf {
		if err := vm.setCellAt(m+i, w); err != nil {
			return err
		}
	}
	return nil
}

func execOUT(vm *VM, ins instruction.Instruction) error {
	dev, err := vm.deviceAt(int(ins.Modifier))
	if err != nil {
		return err
	}
	m, err := vm.computeM(ins)
	if err != nil {
		return err
	}
	buf := make([]word.Word, dev.BlockSize())
	for i := range buf {
		cell, err := vm.cellAt(m + i)
		if err != nil {
			return err
		}
		buf[i] = cell
	}
	if err := dev.Write(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
