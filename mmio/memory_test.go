package mmio

import (
	"errors"
	"testing"
)

func TestMemory(t *testing.T) {
	m := NewMemory(0x20)

	if err := m.Write32(0x4, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	if v, err := m.Read32(0x4); err != nil || v != 0xdeadbeef {
		t.Fatalf("Read32(0x4) = %#x, %v", v, err)
	}
	if v, _ := m.Read32(0x8); v != 0 {
		t.Fatalf("Read32(0x8) = %#x, want 0", v)
	}
}

func TestMemoryBounds(t *testing.T) {
	tests := []struct {
		name   string
		offset uint32
		err    error
	}{
		{"last", 0x1c, nil},
		{"misaligned", 0x2, ErrMisaligned},
		{"past", 0x20, ErrOutOfRange},
		{"overflow", 0xfffffffc, ErrOutOfRange},
	}

	m := NewMemory(0x20)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := m.Read32(test.offset); !errors.Is(err, test.err) {
				t.Errorf("Read32(%#x) = %v, want %v", test.offset, err, test.err)
			}
			if err := m.Write32(test.offset, 1); !errors.Is(err, test.err) {
				t.Errorf("Write32(%#x) = %v, want %v", test.offset, err, test.err)
			}
		})
	}
}

func TestWriteOneToClear(t *testing.T) {
	m := NewMemory(0x10)
	m.Hook(0x0, WriteOneToClear)
	m.Poke(0x0, 0x7)

	if err := m.Write32(0x0, 0x5); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Read32(0x0); v != 0x2 {
		t.Fatalf("after W1C = %#x, want 0x2", v)
	}

	m.Hook(0x0, nil)
	m.Write32(0x0, 0x5)
	if v, _ := m.Read32(0x0); v != 0x5 {
		t.Fatalf("after hook removal = %#x, want 0x5", v)
	}
}

func TestModify32(t *testing.T) {
	m := NewMemory(0x10)
	m.Poke(0x8, 0xf0)
	err := Modify32(m, 0x8, func(word uint32) uint32 { return word | 0x3 })
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Read32(0x8); v != 0xf3 {
		t.Fatalf("Modify32 result = %#x, want 0xf3", v)
	}
	if err := Modify32(m, 0x10, func(word uint32) uint32 { return word }); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Modify32 past window = %v", err)
	}
}
