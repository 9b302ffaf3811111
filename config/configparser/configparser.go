/*
 * mixvm - Configuration file parser.
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
 * Configuration file format:
 *
 * '#' starts a comment, rest of line ignored. Recognized directives:
 *
 *   device <unit> <model> [args...]   install a device at unit 0..19
 *   load   <addr> <value>             deposit value into memory at addr
 *   log    <file>                     write the run log to file
 *
 * Device models are registered by name through RegisterDevice, the same
 * way the S370 config format lets each device package register its own
 * model without configparser needing to import it.
 */

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/gomix/mixvm/device"
	"github.com/gomix/mixvm/memory"
	"github.com/gomix/mixvm/vm"
	"github.com/gomix/mixvm/word"
)

// DeviceFactory builds a device from the words following its model name
// on a device directive.
type DeviceFactory func(args []string) (device.Device, error)

var models = map[string]DeviceFactory{}

// RegisterDevice registers a device model under name, upper-cased, for
// the device directive to find. Call from an init function.
func RegisterDevice(name string, fn DeviceFactory) {
	models[strings.ToUpper(name)] = fn
}

// Config is what loading a configuration file returns besides its effect
// on the machine: the log file path, if one was named.
type Config struct {
	LogFile string
}

// Load reads a configuration file and applies its directives to m.
func Load(name string, m *vm.VM) (*Config, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := &Config{}
	reader := bufio.NewReader(file)
	lineNumber := 0
	for {
		raw, err := reader.ReadString('\n')
		lineNumber++
		if len(raw) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if perr := parseLine(raw, m, cfg); perr != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, perr)
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return cfg, nil
}

type configLine struct {
	line string
	pos  int
}

func (l *configLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *configLine) isEOL() bool {
	if l.pos >= len(l.line) {
		return true
	}
	return l.line[l.pos] == '#'
}

func (l *configLine) getToken() string {
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.line) && !unicode.IsSpace(rune(l.line[l.pos])) && l.line[l.pos] != '#' {
		l.pos++
	}
	return l.line[start:l.pos]
}

func (l *configLine) rest() []string {
	var out []string
	for {
		tok := l.getToken()
		if tok == "" {
			return out
		}
		out = append(out, tok)
	}
}

func parseLine(raw string, m *vm.VM, cfg *Config) error {
	l := &configLine{line: raw}
	l.skipSpace()
	if l.isEOL() {
		return nil
	}
	directive := strings.ToLower(l.getToken())

	switch directive {
	case "device":
		return parseDevice(l, m)
	case "load":
		return parseLoad(l, m)
	case "log":
		cfg.LogFile = l.getToken()
		if cfg.LogFile == "" {
			return errors.New("log directive requires a file name")
		}
		return nil
	default:
		return fmt.Errorf("unknown directive: %s", directive)
	}
}

func parseDevice(l *configLine, m *vm.VM) error {
	args := l.rest()
	if len(args) < 2 {
		return errors.New("device directive requires a unit and a model")
	}
	unit, err := parseInt(args[0])
	if err != nil {
		return fmt.Errorf("invalid device unit: %s", args[0])
	}
	model := strings.ToUpper(args[1])
	factory, ok := models[model]
	if !ok {
		return errors.New("unknown device model: " + model)
	}
	dev, err := factory(args[2:])
	if err != nil {
		return err
	}
	return m.Devices.Install(unit, dev)
}

func parseLoad(l *configLine, m *vm.VM) error {
	args := l.rest()
	if len(args) != 2 {
		return errors.New("load directive requires an address and a value")
	}
	addr, err := parseInt(args[0])
	if err != nil {
		return fmt.Errorf("invalid address: %s", args[0])
	}
	if addr < 0 || addr >= memory.Size {
		return memory.ErrAddressRange
	}
	value, err := parseSignedInt(args[1])
	if err != nil {
		return fmt.Errorf("invalid value: %s", args[1])
	}
	w := word.NewFull()
	if err := w.SetFromInt64(value); err != nil {
		return err
	}
	return m.Mem.Set(addr, w)
}

func parseInt(s string) (int, error) {
	v := 0
	if s == "" {
		return 0, errors.New("empty number")
	}
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return 0, errors.New("not a number: " + s)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

func parseSignedInt(s string) (int64, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	v, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}
