package memory

import (
	"errors"
	"testing"

	"github.com/gomix/mixvm/word"
)

func TestNewIsAllZero(t *testing.T) {
	m := New()
	for addr := 0; addr < Size; addr += 731 {
		w, err := m.Get(addr)
		if err != nil {
			t.Fatalf("Get(%d): %v", addr, err)
		}
		if !w.IsZero() {
			t.Errorf("cell %d not zero after New()", addr)
		}
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	m := New()
	w := word.FromBytes(word.NEG, []uint8{1, 2, 3, 4, 5})
	if err := m.Set(1234, w); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := m.Get(1234)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Equal(w) {
		t.Errorf("Get(1234) = %v, want %v", got, w)
	}
}

func TestOutOfRange(t *testing.T) {
	m := New()
	if _, err := m.Get(-1); !errors.Is(err, ErrAddressRange) {
		t.Errorf("Get(-1) error = %v, want ErrAddressRange", err)
	}
	if _, err := m.Get(Size); !errors.Is(err, ErrAddressRange) {
		t.Errorf("Get(Size) error = %v, want ErrAddressRange", err)
	}
	if err := m.Set(Size, word.NewFull()); !errors.Is(err, ErrAddressRange) {
		t.Errorf("Set(Size) error = %v, want ErrAddressRange", err)
	}
}

func TestReset(t *testing.T) {
	m := New()
	_ = m.Set(0, word.FromBytes(word.NEG, []uint8{1, 2, 3, 4, 5}))
	m.Reset()
	w, _ := m.Get(0)
	if !w.IsZero() || w.Sign() != word.POS {
		t.Errorf("Reset() left cell 0 as %v, want +0", w)
	}
}
