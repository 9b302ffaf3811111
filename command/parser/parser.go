/*
 * mixvm - Command parser.
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
 * Commands may be abbreviated to any prefix at least Min characters
 * long; a shorter prefix matches nothing and is reported as not found.
 * A word matching more than one command is reported as ambiguous
 * rather than guessed.
 */

package parser

import (
	"errors"
	"strings"
	"unicode"
)

type cmd struct {
	Name    string // Command name.
	Min     int    // Minimum match size.
	Process func(*cmdLine, *Console) (bool, error)
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

// ProcessCommand executes one line of input against c. The bool result
// is true when the console should exit.
func ProcessCommand(commandLine string, c *Console) (bool, error) {
	line := cmdLine{line: commandLine}
	command := line.getWord()
	if command == "" {
		return false, nil
	}

	match := matchList(command)
	if len(match) == 0 {
		return false, errors.New("command not found: " + command)
	}

	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + command)
	}

	return match[0].Process(&line, c)
}

// CompleteCmd returns every command name that line could still expand
// to, for the reader's tab completion.
func CompleteCmd(line string) []string {
	word := strings.ToLower(strings.TrimSpace(line))
	var out []string
	for _, m := range cmdList {
		if strings.HasPrefix(m.Name, word) {
			out = append(out, m.Name)
		}
	}
	return out
}

// matchCommand reports whether command is a prefix of match.Name at
// least Min characters long.
func matchCommand(match cmd, command string) bool {
	if len(command) > len(match.Name) {
		return false
	}
	l := 0
	for i := 0; i < len(command); i++ {
		l = i
		if match.Name[l] != command[l] {
			return false
		}
	}
	return (l + 1) >= match.Min
}

// matchList returns every command that command could be an abbreviation of.
func matchList(command string) []cmd {
	if command == "" {
		return []cmd{}
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}
	return match
}

// skipSpace advances past whitespace.
func (line *cmdLine) skipSpace() {
	for line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

// isEOL reports whether the line is exhausted, or a comment has begun.
func (line *cmdLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}
	return line.line[line.pos] == '#'
}

// getCurrent returns the current byte and advances past it, 0 at EOL.
func (line *cmdLine) getCurrent() byte {
	if line.isEOL() {
		return 0
	}
	by := line.line[line.pos]
	line.pos++
	return by
}

// getWord returns the next run of letters, lower-cased.
func (line *cmdLine) getWord() string {
	line.skipSpace()
	pos := line.pos
	value := ""
	by := line.getCurrent()
	for by != 0 {
		if !unicode.IsLetter(rune(by)) {
			line.pos--
			break
		}
		value += string(by)
		by = line.getCurrent()
	}
	if value == "" {
		line.pos = pos
	}
	return strings.ToLower(value)
}

// getNumber parses an unsigned decimal integer.
func (line *cmdLine) getNumber() (int, error) {
	line.skipSpace()
	if line.isEOL() {
		return 0, errors.New("expected a number")
	}
	value := 0
	pos := line.pos
	by := line.getCurrent()
	if !unicode.IsDigit(rune(by)) {
		line.pos = pos
		return 0, errors.New("expected a number")
	}
	for unicode.IsDigit(rune(by)) {
		value = value*10 + int(by-'0')
		if line.isEOL() {
			by = 0
			break
		}
		by = line.getCurrent()
	}
	if by != 0 && !unicode.IsSpace(rune(by)) {
		return 0, errors.New("expected a number")
	}
	if by != 0 {
		line.pos--
	}
	return value, nil
}

// getSignedNumber parses a decimal integer with an optional leading sign.
func (line *cmdLine) getSignedNumber() (int64, error) {
	line.skipSpace()
	if line.isEOL() {
		return 0, errors.New("expected a number")
	}
	neg := false
	if line.line[line.pos] == '+' || line.line[line.pos] == '-' {
		neg = line.line[line.pos] == '-'
		line.pos++
	}
	v, err := line.getNumber()
	if err != nil {
		return 0, err
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}
