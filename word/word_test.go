package word

import "testing"

func TestFromBytesRoundTrip(t *testing.T) {
	w := FromBytes(NEG, []uint8{1, 2, 3, 4, 5})
	got := FromBytes(w.Sign(), w.Bytes())
	if !got.Equal(w) {
		t.Errorf("FromBytes(w.Bytes()) = %v, want %v", got, w)
	}
}

func TestToInt64RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 4095, -4095, capacity(FullBytes), -capacity(FullBytes)}
	for _, k := range cases {
		w := NewFull()
		if err := w.SetFromInt64(k); err != nil {
			t.Fatalf("SetFromInt64(%d): %v", k, err)
		}
		if got := w.ToInt64(); got != k {
			t.Errorf("ToInt64() after SetFromInt64(%d) = %d", k, got)
		}
	}
}

func TestSetFromInt64Overflow(t *testing.T) {
	w := NewHalf()
	if err := w.SetFromInt64(capacity(HalfBytes) + 1); err == nil {
		t.Errorf("expected overflow error for value exceeding half-word capacity")
	}
}

func TestNegativeZeroIsZero(t *testing.T) {
	w := NewFull()
	w.SetSign(NEG)
	if !w.IsZero() {
		t.Errorf("word with zero magnitude and negative sign should be IsZero")
	}
	if w.ToInt64() != 0 {
		t.Errorf("ToInt64() of negative zero = %d, want 0", w.ToInt64())
	}
}

func TestPinnedPositiveIgnoresNegativeWrites(t *testing.T) {
	w := NewPinnedPositive()
	w.SetSign(NEG)
	if w.Sign() != POS {
		t.Errorf("pinned-positive word accepted a negative sign write")
	}
	if err := w.SetFromInt64(-5); err != nil {
		t.Fatalf("SetFromInt64(-5): %v", err)
	}
	if w.Sign() != POS {
		t.Errorf("pinned-positive word's sign changed via SetFromInt64(-5)")
	}
	if w.ToInt64() != 5 {
		t.Errorf("ToInt64() = %d, want 5 (magnitude only, sign pinned)", w.ToInt64())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	w := FromBytes(POS, []uint8{1, 2, 3, 4, 5})
	c := w.Clone()
	c.SetByte(1, 0xff)
	if w.Byte(1) == 0xff {
		t.Errorf("mutating clone affected original word")
	}
}
