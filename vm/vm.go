/*
 * mixvm - The virtual machine: memory, registers and devices bound
 * together with a synchronous fetch-decode-execute step.
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
 * VM has no package-level state; every value a program can observe or
 * mutate lives in the struct, so nothing stops two VMs from running side
 * by side in the same process.
 */

package vm

import (
	"github.com/gomix/mixvm/device"
	"github.com/gomix/mixvm/memory"
	"github.com/gomix/mixvm/register"
)

// VM is one MIX machine: its memory, its register file, and the devices
// attached to it.
type VM struct {
	Mem     *memory.Memory
	Reg     *register.File
	Devices device.Table
}

// New returns a freshly reset machine with no devices installed.
func New() *VM {
	return &VM{
		Mem: memory.New(),
		Reg: register.New(),
	}
}

// Reset clears memory and the register file, and drops the machine back
// to address 0 with the halted flag cleared. Installed devices are left
// as they are; a device's own state is not part of CPU reset.
func (vm *VM) Reset() {
	vm.Mem.Reset()
	vm.Reg.Reset()
}

// Restart resumes execution: it clears Halted and leaves PC, memory, and
// every other register untouched. A freshly constructed or Reset machine
// already has PC at 0, so Restart takes it from there; a host that wants
// to resume from wherever a halted program left off, or from a PC it has
// set itself, gets exactly that instead of losing it to a full Reset.
func (vm *VM) Restart() {
	vm.Reg.Halted = false
}
