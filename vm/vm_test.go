package vm

import (
	"errors"
	"math"
	"testing"

	"github.com/gomix/mixvm/instruction"
	"github.com/gomix/mixvm/register"
	"github.com/gomix/mixvm/word"
)

func mustSet(t *testing.T, m *VM, addr int, ins instruction.Instruction) {
	t.Helper()
	if err := m.setCellAt(addr, instruction.Encode(ins)); err != nil {
		t.Fatalf("setCellAt(%d): %v", addr, err)
	}
}

func fullWord(t *testing.T, sign word.Sign, v int64) word.Word {
	t.Helper()
	w := word.NewFull()
	if err := w.SetFromInt64(v); err != nil {
		t.Fatalf("SetFromInt64(%d): %v", v, err)
	}
	w.SetSign(sign)
	return w
}

func halfWord(t *testing.T, sign word.Sign, v int64) word.Word {
	t.Helper()
	w := word.NewHalf()
	if err := w.SetFromInt64(v); err != nil {
		t.Fatalf("SetFromInt64(%d): %v", v, err)
	}
	w.SetSign(sign)
	return w
}

// recordingDevice is a Device double that records what OUT writes to it.
type recordingDevice struct {
	block  int
	writes [][]word.Word
}

func (d *recordingDevice) Read(buf []word.Word) error  { return nil }
func (d *recordingDevice) Write(buf []word.Word) error {
	cp := make([]word.Word, len(buf))
	copy(cp, buf)
	d.writes = append(d.writes, cp)
	return nil
}
func (d *recordingDevice) Control(m int) error { return nil }
func (d *recordingDevice) IsBusy() bool        { return false }
func (d *recordingDevice) IsReady() bool       { return true }
func (d *recordingDevice) BlockSize() int      { return d.block }

func TestScenarioHelloPrinter(t *testing.T) {
	m := New()
	// OUT 2000(18): C=37, F=18, no index, A=2000.
	mustSet(t, m, 0, instruction.Instruction{Address: 2000, Opcode: 37, Modifier: 18})
	mustSet(t, m, 1, instruction.Instruction{Opcode: 5, Modifier: 2}) // HLT

	payload := []word.Word{
		fullWord(t, word.POS, 72),
		fullWord(t, word.POS, 73),
		fullWord(t, word.POS, 74),
	}
	for i, w := range payload {
		if err := m.setCellAt(2000+i, w); err != nil {
			t.Fatalf("preload: %v", err)
		}
	}

	dev := &recordingDevice{block: 3}
	if err := m.Devices.Install(18, dev); err != nil {
		t.Fatalf("Install: %v", err)
	}

	if err := m.Step(); err != nil {
		t.Fatalf("OUT step: %v", err)
	}
	if len(dev.writes) != 1 {
		t.Fatalf("expected exactly one write call, got %d", len(dev.writes))
	}
	for i, w := range dev.writes[0] {
		if !w.Equal(payload[i]) {
			t.Errorf("write[%d] = %v, want %v", i, w, payload[i])
		}
	}

	err := m.Step()
	if !errors.Is(err, ErrHalted) {
		t.Fatalf("HLT step = %v, want ErrHalted", err)
	}
	if !m.Reg.Halted {
		t.Error("machine should be halted after HLT")
	}
}

func TestScenarioArithmeticOverflow(t *testing.T) {
	m := New()
	mustSet(t, m, 0, instruction.Instruction{Address: 100, Opcode: 1, Modifier: 5}) // ADD 100
	if err := m.setCellAt(100, fullWord(t, word.POS, 1)); err != nil {
		t.Fatal(err)
	}
	if err := m.Reg.A.SetFromInt64(word.Capacity(word.FullBytes)); err != nil {
		t.Fatal(err)
	}

	if err := m.Step(); err != nil {
		t.Fatalf("ADD step: %v", err)
	}
	if !m.Reg.Overflow {
		t.Error("expected overflow toggle set")
	}
	if !m.Reg.A.IsZero() {
		t.Errorf("rA = %v, want +0", m.Reg.A)
	}
}

func TestScenarioDivideByZero(t *testing.T) {
	m := New()
	mustSet(t, m, 0, instruction.Instruction{Address: 100, Opcode: 4, Modifier: 5}) // DIV 100
	m.Reg.A = fullWord(t, word.POS, 7)
	m.Reg.X = fullWord(t, word.POS, 0)
	if err := m.setCellAt(100, fullWord(t, word.POS, 0)); err != nil {
		t.Fatal(err)
	}

	if err := m.Step(); err != nil {
		t.Fatalf("DIV step: %v", err)
	}
	if !m.Reg.Overflow {
		t.Error("expected overflow toggle set")
	}
	if !m.Reg.A.IsZero() || !m.Reg.X.IsZero() {
		t.Errorf("rA=%v rX=%v, want both +0", m.Reg.A, m.Reg.X)
	}
}

func TestScenarioLDAField(t *testing.T) {
	m := New()
	mustSet(t, m, 0, instruction.Instruction{Address: 100, Opcode: 8, Modifier: 11}) // LDA 100(1:3)
	if err := m.setCellAt(100, word.FromBytes(word.NEG, []uint8{1, 2, 3, 4, 5})); err != nil {
		t.Fatal(err)
	}

	if err := m.Step(); err != nil {
		t.Fatalf("LDA step: %v", err)
	}
	want := word.FromBytes(word.POS, []uint8{0, 0, 1, 2, 3})
	if !m.Reg.A.Equal(want) {
		t.Errorf("rA = %v, want %v", m.Reg.A, want)
	}
}

func TestScenarioJMPUpdatesJ(t *testing.T) {
	m := New()
	m.Reg.PC = 50
	mustSet(t, m, 50, instruction.Instruction{Address: 200, Opcode: 39, Modifier: 0}) // JMP 200

	if err := m.Step(); err != nil {
		t.Fatalf("JMP step: %v", err)
	}
	if m.Reg.PC != 200 {
		t.Errorf("PC = %d, want 200", m.Reg.PC)
	}
	if m.Reg.J.ToInt64() != 51 {
		t.Errorf("rJ = %d, want 51", m.Reg.J.ToInt64())
	}
}

func TestScenarioInvalidIndexHalts(t *testing.T) {
	m := New()
	mustSet(t, m, 0, instruction.Instruction{Address: 100, Index: 7, Opcode: 8, Modifier: 5})

	err := m.Step()
	if !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("Step() = %v, want ErrInvalidIndex", err)
	}
	if !m.Reg.Halted {
		t.Error("machine should be halted after an invalid index fault")
	}
}

func TestHaltedStepIsNoOp(t *testing.T) {
	m := New()
	m.Reg.Halted = true
	if err := m.Step(); !errors.Is(err, ErrHalted) {
		t.Errorf("Step() on halted machine = %v, want ErrHalted", err)
	}
	if m.Reg.PC != 0 {
		t.Error("PC must not move once halted")
	}
}

func TestADDCommutesAndAssociates(t *testing.T) {
	widths := []int64{3, -3, 1000, -1000, 0}
	for _, a := range widths {
		for _, b := range widths {
			s1, _ := addSigned(a, b, word.FullBytes)
			s2, _ := addSigned(b, a, word.FullBytes)
			if s1 != s2 {
				t.Errorf("addSigned(%d,%d)=%d != addSigned(%d,%d)=%d", a, b, s1, b, a, s2)
			}
			for _, c := range widths {
				ab, _ := addSigned(a, b, word.FullBytes)
				left, _ := addSigned(ab, c, word.FullBytes)
				bc, _ := addSigned(b, c, word.FullBytes)
				right, _ := addSigned(a, bc, word.FullBytes)
				if left != right {
					t.Errorf("(%d+%d)+%d=%d != %d+(%d+%d)=%d", a, b, c, left, a, b, c, right)
				}
			}
		}
	}
}

func TestENT_ENN(t *testing.T) {
	m := New()
	mustSet(t, m, 0, instruction.Instruction{Address: 6, Opcode: 49, Modifier: 2}) // ENT1 6
	if err := m.Step(); err != nil {
		t.Fatalf("ENT1: %v", err)
	}
	if m.Reg.I[0].ToInt64() != 6 {
		t.Fatalf("rI1 = %d, want 6", m.Reg.I[0].ToInt64())
	}

	mustSet(t, m, 1, instruction.Instruction{Address: 6, Opcode: 49, Modifier: 3}) // ENN1 6
	if err := m.Step(); err != nil {
		t.Fatalf("ENN1: %v", err)
	}
	if m.Reg.I[0].ToInt64() != -6 {
		t.Fatalf("rI1 = %d, want -6", m.Reg.I[0].ToInt64())
	}
}

func TestSTJRoundTrip(t *testing.T) {
	m := New()
	m.Reg.PC = 10
	mustSet(t, m, 10, instruction.Instruction{Address: 500, Opcode: 39, Modifier: 0}) // JMP 500
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	mustSet(t, m, 500, instruction.Instruction{Address: 600, Opcode: 32, Modifier: 5}) // STJ 600
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	cell, err := m.Mem.Get(600)
	if err != nil {
		t.Fatal(err)
	}
	if cell.Byte(4) != 0 || cell.Byte(5) != 11 { // rJ=11 stored right-justified
		t.Errorf("cell 600 = %v, want low byte 11", cell)
	}
}

func TestCMPASignOnlyFieldIsAlwaysEqual(t *testing.T) {
	m := New()
	m.Reg.A = fullWord(t, word.NEG, 5)
	if err := m.setCellAt(100, fullWord(t, word.POS, 5)); err != nil {
		t.Fatal(err)
	}
	mustSet(t, m, 0, instruction.Instruction{Address: 100, Opcode: 56, Modifier: 0}) // CMPA 100(0:0)
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.Reg.Comp != register.Equal {
		t.Errorf("Comp = %v, want Equal for a sign-only field", m.Reg.Comp)
	}
}

func TestShiftSLAX(t *testing.T) {
	m := New()
	m.Reg.A = word.FromBytes(word.POS, []uint8{1, 2, 3, 4, 5})
	m.Reg.X = word.FromBytes(word.POS, []uint8{6, 7, 8, 9, 10})
	mustSet(t, m, 0, instruction.Instruction{Address: 2, Opcode: 6, Modifier: 2}) // SLAX 2
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	wantA := word.FromBytes(word.POS, []uint8{3, 4, 5, 6, 7})
	wantX := word.FromBytes(word.POS, []uint8{8, 9, 10, 0, 0})
	if !m.Reg.A.Equal(wantA) || !m.Reg.X.Equal(wantX) {
		t.Errorf("after SLAX 2: rA=%v rX=%v", m.Reg.A, m.Reg.X)
	}
}

func TestMOVECopiesWordsAndAdvancesI1(t *testing.T) {
	m := New()
	for i := 0; i < 3; i++ {
		if err := m.setCellAt(100+i, fullWord(t, word.POS, int64(i+1))); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Reg.SetIndex(1, halfWord(t, word.POS, 200)); err != nil {
		t.Fatal(err)
	}
	mustSet(t, m, 0, instruction.Instruction{Address: 100, Opcode: 7, Modifier: 3}) // MOVE 100(3)
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		cell, err := m.Mem.Get(200 + i)
		if err != nil {
			t.Fatal(err)
		}
		if cell.ToInt64() != int64(i+1) {
			t.Errorf("cell %d = %d, want %d", 200+i, cell.ToInt64(), i+1)
		}
	}
	if m.Reg.I[0].ToInt64() != 203 {
		t.Errorf("rI1 = %d, want 203", m.Reg.I[0].ToInt64())
	}
}

func TestResetZeroesEverything(t *testing.T) {
	m := New()
	m.Reg.A = fullWord(t, word.NEG, 42)
	if err := m.setCellAt(10, fullWord(t, word.NEG, 1)); err != nil {
		t.Fatal(err)
	}
	m.Reset()
	if !m.Reg.A.IsZero() {
		t.Error("Reset should zero rA")
	}
	cell, _ := m.Mem.Get(10)
	if !cell.IsZero() {
		t.Error("Reset should zero memory")
	}
}

func TestRestartKeepsMemoryAndRegisters(t *testing.T) {
	m := New()
	if err := m.setCellAt(10, fullWord(t, word.NEG, 1)); err != nil {
		t.Fatal(err)
	}
	m.Reg.A = fullWord(t, word.NEG, 42)
	m.Reg.PC = 17
	m.Reg.Halted = true
	m.Restart()
	if m.Reg.Halted {
		t.Error("Restart should clear Halted")
	}
	if m.Reg.A.IsZero() {
		t.Error("Restart must not touch registers")
	}
	if m.Reg.PC != 17 {
		t.Errorf("Restart must not touch PC, got %d", m.Reg.PC)
	}
	cell, _ := m.Mem.Get(10)
	if cell.IsZero() {
		t.Error("Restart must not touch memory")
	}
}

func TestCHARUsesCharacterCodeDigits(t *testing.T) {
	m := New()
	if err := m.Reg.A.SetFromInt64(12); err != nil {
		t.Fatal(err)
	}
	mustSet(t, m, 0, instruction.Instruction{Opcode: 5, Modifier: 1}) // CHAR
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	wantA := word.FromBytes(word.POS, []uint8{30, 30, 30, 30, 30})
	wantX := word.FromBytes(word.POS, []uint8{30, 30, 30, 31, 32})
	if !m.Reg.A.Equal(wantA) {
		t.Errorf("rA after CHAR = %v, want %v", m.Reg.A, wantA)
	}
	if !m.Reg.X.Equal(wantX) {
		t.Errorf("rX after CHAR = %v, want %v", m.Reg.X, wantX)
	}
	// NUM must read a CHAR-encoded word back to the original value.
	mustSet(t, m, 1, instruction.Instruction{Opcode: 5, Modifier: 0}) // NUM
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.Reg.A.ToInt64() != 12 {
		t.Errorf("NUM round-trip = %d, want 12", m.Reg.A.ToInt64())
	}
}

func floatCell(t *testing.T, f float32) word.Word {
	t.Helper()
	return wordFromFloat(f)
}

func TestFloatAddSubUsesAddSubF7(t *testing.T) {
	const pi = float32(3.1415927)
	m := New()
	m.Reg.A = floatCell(t, pi)
	if err := m.setCellAt(1000, floatCell(t, -pi)); err != nil {
		t.Fatal(err)
	}
	mustSet(t, m, 0, instruction.Instruction{Address: 1000, Opcode: 1, Modifier: 7}) // ADD 1000(7)
	mustSet(t, m, 1, instruction.Instruction{Address: 1000, Opcode: 2, Modifier: 7}) // SUB 1000(7)

	if err := m.Step(); err != nil {
		t.Fatalf("float ADD step: %v", err)
	}
	if got := floatFromWord(m.Reg.A); got != 0 {
		t.Errorf("pi + (-pi) = %v, want 0", got)
	}

	if err := m.Step(); err != nil {
		t.Fatalf("float SUB step: %v", err)
	}
	if got := floatFromWord(m.Reg.A); got != pi {
		t.Errorf("0 - (-pi) = %v, want %v", got, pi)
	}
}

func TestFloatMulDivLeaveRXUntouched(t *testing.T) {
	const e = float32(2.7182817)
	const pi = float32(3.1415927)
	m := New()
	m.Reg.X = fullWord(t, word.POS, 999)
	m.Reg.A = floatCell(t, e)
	if err := m.setCellAt(1000, floatCell(t, pi)); err != nil {
		t.Fatal(err)
	}
	mustSet(t, m, 0, instruction.Instruction{Address: 1000, Opcode: 3, Modifier: 7}) // MUL 1000(7)
	if err := m.Step(); err != nil {
		t.Fatalf("float MUL step: %v", err)
	}
	if got, want := floatFromWord(m.Reg.A), e*pi; got != want {
		t.Errorf("e * pi = %v, want %v", got, want)
	}
	if m.Reg.X.ToInt64() != 999 {
		t.Errorf("float MUL touched rX: %v", m.Reg.X)
	}

	mustSet(t, m, 1, instruction.Instruction{Address: 1000, Opcode: 4, Modifier: 7}) // DIV 1000(7)
	product := floatFromWord(m.Reg.A)
	if err := m.Step(); err != nil {
		t.Fatalf("float DIV step: %v", err)
	}
	if got, want := floatFromWord(m.Reg.A), product/pi; got != want {
		t.Errorf("(e * pi) / pi = %v, want %v", got, want)
	}
	if m.Reg.X.ToInt64() != 999 {
		t.Errorf("float DIV touched rX: %v", m.Reg.X)
	}
}

func TestFloatCompareUnorderedOnNaN(t *testing.T) {
	m := New()
	m.Reg.A = floatCell(t, float32(math.NaN()))
	if err := m.setCellAt(1000, floatCell(t, float32(math.NaN()))); err != nil {
		t.Fatal(err)
	}
	mustSet(t, m, 0, instruction.Instruction{Address: 1000, Opcode: 56, Modifier: 7}) // CMPA 1000(7)
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.Reg.Comp != register.Unordered {
		t.Errorf("Comp = %v, want Unordered", m.Reg.Comp)
	}
}

func TestJORDAndJUNORD(t *testing.T) {
	m := New()
	m.Reg.Comp = register.Greater
	mustSet(t, m, 0, instruction.Instruction{Address: 10, Opcode: 39, Modifier: 10}) // JORD 10
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.Reg.PC != 10 {
		t.Errorf("JORD with ordered Comp: PC = %d, want 10", m.Reg.PC)
	}

	m.Reg.Comp = register.Unordered
	mustSet(t, m, 10, instruction.Instruction{Address: 20, Opcode: 39, Modifier: 10}) // JORD 20
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.Reg.PC != 11 {
		t.Errorf("JORD with Unordered Comp should not jump, PC = %d, want 11", m.Reg.PC)
	}

	mustSet(t, m, 11, instruction.Instruction{Address: 30, Opcode: 39, Modifier: 11}) // JUNORD 30
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.Reg.PC != 30 {
		t.Errorf("JUNORD with Unordered Comp: PC = %d, want 30", m.Reg.PC)
	}
}
