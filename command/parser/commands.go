/*
 * mixvm - Operator commands.
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

package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gomix/mixvm/memory"
	"github.com/gomix/mixvm/util/hex"
	"github.com/gomix/mixvm/vm"
	"github.com/gomix/mixvm/word"
)

var cmdList = []cmd{
	{Name: "step", Min: 2, Process: cmdStep},
	{Name: "run", Min: 2, Process: cmdRun},
	{Name: "reset", Min: 4, Process: cmdReset},
	{Name: "restart", Min: 4, Process: cmdRestart},
	{Name: "register", Min: 3, Process: cmdRegister},
	{Name: "examine", Min: 2, Process: cmdExamine},
	{Name: "deposit", Min: 2, Process: cmdDeposit},
	{Name: "break", Min: 3, Process: cmdBreak},
	{Name: "unbreak", Min: 3, Process: cmdUnbreak},
	{Name: "quit", Min: 1, Process: cmdQuit},
	{Name: "help", Min: 1, Process: cmdHelp},
}

// cmdStep single-steps the machine, one instruction by default or the
// count given on the line.
func cmdStep(line *cmdLine, c *Console) (bool, error) {
	count := 1
	line.skipSpace()
	if !line.isEOL() {
		n, err := line.getNumber()
		if err != nil {
			return false, err
		}
		count = n
	}
	for i := 0; i < count; i++ {
		if err := c.VM.Step(); err != nil {
			if errors.Is(err, vm.ErrHalted) {
				fmt.Println("halted")
				return false, nil
			}
			return false, err
		}
	}
	printLoc(c)
	return false, nil
}

// cmdRun runs until halt or a breakpoint is reached.
func cmdRun(line *cmdLine, c *Console) (bool, error) {
	for {
		if c.Break[c.VM.Reg.PC] {
			fmt.Printf("breakpoint at %04d\n", c.VM.Reg.PC)
			return false, nil
		}
		if err := c.VM.Step(); err != nil {
			if errors.Is(err, vm.ErrHalted) {
				fmt.Println("halted")
				return false, nil
			}
			return false, err
		}
	}
}

// cmdReset clears memory, registers and flags.
func cmdReset(_ *cmdLine, c *Console) (bool, error) {
	c.VM.Reset()
	return false, nil
}

// cmdRestart clears the halted flag and resumes from the current PC,
// leaving registers and memory untouched.
func cmdRestart(_ *cmdLine, c *Console) (bool, error) {
	c.VM.Restart()
	return false, nil
}

// cmdRegister prints one register, or every register when none is named.
func cmdRegister(line *cmdLine, c *Console) (bool, error) {
	name := line.getWord()
	if name == "" {
		printAllRegisters(c)
		return false, nil
	}
	return false, printOneRegister(c, name)
}

func printAllRegisters(c *Console) {
	r := c.VM.Reg
	var b strings.Builder
	fmt.Print("rA  ")
	hex.FormatWord(&b, r.A)
	fmt.Println(b.String())
	b.Reset()
	fmt.Print("rX  ")
	hex.FormatWord(&b, r.X)
	fmt.Println(b.String())
	for i := 1; i <= 6; i++ {
		v, _ := r.Index(i)
		b.Reset()
		fmt.Printf("rI%d ", i)
		hex.FormatWord(&b, v)
		fmt.Println(b.String())
	}
	b.Reset()
	fmt.Print("rJ  ")
	hex.FormatWord(&b, r.J)
	fmt.Println(b.String())
	fmt.Printf("PC   %04d\n", r.PC)
	fmt.Printf("OV   %v\n", r.Overflow)
	fmt.Printf("COMP %s\n", r.Comp)
}

func printOneRegister(c *Console, name string) error {
	r := c.VM.Reg
	var b strings.Builder
	switch {
	case name == "a":
		hex.FormatWord(&b, r.A)
	case name == "x":
		hex.FormatWord(&b, r.X)
	case name == "j":
		hex.FormatWord(&b, r.J)
	case len(name) == 2 && name[0] == 'i' && name[1] >= '1' && name[1] <= '6':
		v, err := r.Index(int(name[1] - '0'))
		if err != nil {
			return err
		}
		hex.FormatWord(&b, v)
	default:
		return errors.New("unknown register: " + name)
	}
	fmt.Println(b.String())
	return nil
}

// cmdExamine prints one or more memory cells starting at the given
// address.
func cmdExamine(line *cmdLine, c *Console) (bool, error) {
	addr, err := line.getNumber()
	if err != nil {
		return false, err
	}
	count := 1
	line.skipSpace()
	if !line.isEOL() {
		n, err := line.getNumber()
		if err != nil {
			return false, err
		}
		count = n
	}
	for i := 0; i < count; i++ {
		cell, err := c.VM.Mem.Get(addr + i)
		if err != nil {
			return false, err
		}
		var b strings.Builder
		hex.FormatWord(&b, cell)
		fmt.Printf("%04d: %s\n", addr+i, b.String())
	}
	return false, nil
}

// cmdDeposit stores a signed decimal value into one memory cell.
func cmdDeposit(line *cmdLine, c *Console) (bool, error) {
	addr, err := line.getNumber()
	if err != nil {
		return false, err
	}
	if addr < 0 || addr >= memory.Size {
		return false, memory.ErrAddressRange
	}
	v, err := line.getSignedNumber()
	if err != nil {
		return false, err
	}
	w := word.NewFull()
	if err := w.SetFromInt64(v); err != nil {
		return false, err
	}
	return false, c.VM.Mem.Set(addr, w)
}

// cmdBreak sets a breakpoint at an address.
func cmdBreak(line *cmdLine, c *Console) (bool, error) {
	addr, err := line.getNumber()
	if err != nil {
		return false, err
	}
	c.Break[addr] = true
	return false, nil
}

// cmdUnbreak clears a breakpoint.
func cmdUnbreak(line *cmdLine, c *Console) (bool, error) {
	addr, err := line.getNumber()
	if err != nil {
		return false, err
	}
	delete(c.Break, addr)
	return false, nil
}

func cmdQuit(_ *cmdLine, _ *Console) (bool, error) {
	return true, nil
}

func cmdHelp(_ *cmdLine, _ *Console) (bool, error) {
	fmt.Println("commands: step [n], run, reset, restart, register [name]," +
		" examine addr [count], deposit addr value, break addr," +
		" unbreak addr, quit, help")
	return false, nil
}

func printLoc(c *Console) {
	fmt.Printf("PC   %04d\n", c.VM.Reg.PC)
}
