package register

import (
	"testing"

	"github.com/gomix/mixvm/word"
)

func TestResetZeroesEverything(t *testing.T) {
	f := New()
	f.A.SetSign(word.NEG)
	f.Overflow = true
	f.Comp = Less
	f.PC = 17
	f.Halted = true
	_ = f.SetIndex(1, word.FromBytes(word.NEG, []uint8{1, 2}))

	f.Reset()

	if !f.A.IsZero() || f.A.Sign() != word.POS {
		t.Errorf("rA not reset to +0")
	}
	if f.Overflow {
		t.Errorf("overflow not cleared by Reset")
	}
	if f.Comp != Equal {
		t.Errorf("comparison indicator = %v, want Equal", f.Comp)
	}
	if f.PC != 0 {
		t.Errorf("PC = %d, want 0", f.PC)
	}
	if f.Halted {
		t.Errorf("Halted not cleared by Reset")
	}
	idx, _ := f.Index(1)
	if !idx.IsZero() {
		t.Errorf("rI1 not reset to +0")
	}
}

func TestCompIndicatorString(t *testing.T) {
	cases := map[CompIndicator]string{
		Less: "L", Equal: "E", Greater: "G", Unordered: "U",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", c, got, want)
		}
	}
}

func TestJAlwaysPositive(t *testing.T) {
	f := New()
	f.J.SetSign(word.NEG)
	if f.J.Sign() != word.POS {
		t.Errorf("rJ accepted a negative sign")
	}
}

func TestIndexBounds(t *testing.T) {
	f := New()
	if _, err := f.Index(0); err == nil {
		t.Errorf("Index(0) should fail")
	}
	if _, err := f.Index(7); err == nil {
		t.Errorf("Index(7) should fail")
	}
	if err := f.SetIndex(7, word.NewHalf()); err == nil {
		t.Errorf("SetIndex(7) should fail")
	}
}
