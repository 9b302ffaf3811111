package instruction

import (
	"testing"

	"github.com/gomix/mixvm/word"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	cases := []Instruction{
		{Address: 2000, Index: 2, Modifier: 3, Opcode: 8},
		{Address: -1, Index: 0, Modifier: 5, Opcode: 24},
		{Address: 0, Index: 6, Modifier: 0, Opcode: 39},
	}
	for _, ins := range cases {
		w := Encode(ins)
		got, err := Decode(w)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != ins {
			t.Errorf("Decode(Encode(%v)) = %v", ins, got)
		}
	}
}

func TestDecodeRejectsNonFullWidth(t *testing.T) {
	if _, err := Decode(word.NewHalf()); err == nil {
		t.Errorf("Decode should reject a half word")
	}
}

func TestDecodeFieldsFromKnownBytes(t *testing.T) {
	w := word.FromBytes(word.NEG, []uint8{7, 208, 2, 3, 8}) // A=-2000, I=2, F=3, C=8
	ins, err := Decode(w)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ins.Address != -2000 || ins.Index != 2 || ins.Modifier != 3 || ins.Opcode != 8 {
		t.Errorf("Decode = %+v, want A=-2000 I=2 F=3 C=8", ins)
	}
}
