package word

import "testing"

func TestDecodeField(t *testing.T) {
	cases := []struct {
		packed  uint8
		l, r    int
		wantErr bool
	}{
		{packed: 0, l: 0, r: 0},
		{packed: 5, l: 0, r: 5},
		{packed: 8 + 3, l: 1, r: 3},
		{packed: 8*2 + 1, wantErr: true}, // L>R
		{packed: 8*1 + 6, wantErr: true}, // R>5
	}
	for _, c := range cases {
		f, err := DecodeField(c.packed)
		if c.wantErr {
			if err == nil {
				t.Errorf("DecodeField(%d): expected error, got %v", c.packed, f)
			}
			continue
		}
		if err != nil {
			t.Fatalf("DecodeField(%d): %v", c.packed, err)
		}
		if f.L != c.l || f.R != c.r {
			t.Errorf("DecodeField(%d) = (%d,%d), want (%d,%d)", c.packed, f.L, f.R, c.l, c.r)
		}
		if f.Encode() != c.packed {
			t.Errorf("(%d,%d).Encode() = %d, want %d", f.L, f.R, f.Encode(), c.packed)
		}
	}
}

func TestReadFieldSignOnlyWhenLPositive(t *testing.T) {
	w := FromBytes(NEG, []uint8{1, 2, 3, 4, 5})
	got := ReadField(w, FieldSpec{L: 1, R: 3})
	if got.Sign() != POS {
		t.Errorf("field with L>0 must be positive, got sign %v", got.Sign())
	}
	want := FromBytes(POS, []uint8{1, 2, 3})
	if !got.Equal(want) {
		t.Errorf("ReadField(1:3) = %v, want %v", got, want)
	}
}

func TestReadFieldIncludesSignWhenLZero(t *testing.T) {
	w := FromBytes(NEG, []uint8{1, 2, 3, 4, 5})
	got := ReadField(w, FieldSpec{L: 0, R: 2})
	want := FromBytes(NEG, []uint8{1, 2})
	if !got.Equal(want) {
		t.Errorf("ReadField(0:2) = %v, want %v", got, want)
	}
}

func TestWriteFieldRoundTrip(t *testing.T) {
	w := FromBytes(NEG, []uint8{1, 2, 3, 4, 5})
	for _, f := range []FieldSpec{{0, 0}, {0, 5}, {1, 5}, {1, 1}, {3, 5}} {
		before := w.Clone()
		extracted := ReadField(before, f)
		after := before.Clone()
		WriteField(&after, f, extracted)
		if !after.Equal(before) {
			t.Errorf("WriteField(%v, ReadField(%v)) = %v, want %v", f, f, after, before)
		}
	}
}

func TestWriteFieldSignOnlyLeavesMagnitudeUntouched(t *testing.T) {
	dst := FromBytes(POS, []uint8{1, 2, 3, 4, 5})
	src := FromBytes(NEG, []uint8{9, 9, 9, 9, 9})
	WriteField(&dst, FieldSpec{L: 0, R: 0}, src)
	if dst.Sign() != NEG {
		t.Errorf("WriteField(0:0) did not copy sign")
	}
	want := FromBytes(NEG, []uint8{1, 2, 3, 4, 5})
	if !dst.Equal(want) {
		t.Errorf("WriteField(0:0) touched magnitude: got %v, want %v", dst, want)
	}
}

func TestWriteFieldNarrowSourcePadsWithZero(t *testing.T) {
	dst := FromBytes(POS, []uint8{0xff, 0xff, 0xff})
	src := FromBytes(POS, []uint8{0x07})
	WriteField(&dst, FieldSpec{L: 1, R: 3}, src)
	want := FromBytes(POS, []uint8{0, 0, 0x07})
	if !dst.Equal(want) {
		t.Errorf("WriteField with narrow source = %v, want %v", dst, want)
	}
}
