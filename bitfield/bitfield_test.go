package bitfield

import "testing"

func TestReadWrite(t *testing.T) {
	tests := []struct {
		name  string
		field Field32
		word  uint32
		value uint32
		want  uint32
	}{
		{"nibble", Field32{Mask: 0xf, Index: 0}, 0, 9, 0x9},
		{"txnID", Field32{Mask: 0xfff, Index: 5}, 0, 0x3f, 0x7e0},
		{"preserveOthers", Field32{Mask: 0xfff, Index: 5}, 0x1f, 0xabc, 0x1f | 0xabc<<5},
		{"replace", Field32{Mask: 0xf, Index: 4}, 0xff, 0x3, 0x3f},
		{"truncate", Field32{Mask: 0xf, Index: 0}, 0, 0x1f, 0xf},
		{"bit", Bit(3), 0, 1, 0x8},
		{"wholeWord", Range(31, 0), 0x1234, 0xdeadbeef, 0xdeadbeef},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.field.Write(test.word, test.value)
			if got != test.want {
				t.Fatalf("Write(%#x, %#x) = %#x, want %#x", test.word, test.value, got, test.want)
			}
			if v := test.field.Read(got); v != test.value&test.field.Mask {
				t.Fatalf("Read(%#x) = %#x, want %#x", got, v, test.value&test.field.Mask)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Field32{Bit(0), Bit(31), Range(3, 0), Range(16, 5), Range(9, 0), Range(31, 0)} {
		step := f.Max()/97 + 1
		for v := uint32(0); ; v += step {
			if got := f.Read(f.Write(0, v)); got != v {
				t.Fatalf("%v: round trip of %#x gave %#x", f, v, got)
			}
			if f.Max()-v < step {
				break
			}
		}
	}
}

func TestRange(t *testing.T) {
	if got := Range(16, 5); got != (Field32{Mask: 0xfff, Index: 5}) {
		t.Errorf("Range(16, 5) = %+v", got)
	}
	if got := Range(0, 0); got != Bit(0) {
		t.Errorf("Range(0, 0) = %+v", got)
	}
	if got := Range(16, 5).String(); got != "[16:5]" {
		t.Errorf("String() = %q", got)
	}
	if got := Bit(4).String(); got != "[4]" {
		t.Errorf("String() = %q", got)
	}
}

func TestRangeReversed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Range(0, 3) did not panic")
		}
	}()
	Range(0, 3)
}

func TestValid(t *testing.T) {
	tests := []struct {
		field Field32
		valid bool
	}{
		{Field32{Mask: 0xf}, true},
		{Field32{Mask: 0xfff, Index: 20}, true},
		{Field32{Mask: 0xfff, Index: 21}, false},
		{Field32{Mask: 0x5}, false},
		{Field32{}, false},
		{Range(31, 0), true},
	}
	for _, test := range tests {
		if got := test.field.Valid(); got != test.valid {
			t.Errorf("%+v.Valid() = %v, want %v", test.field, got, test.valid)
		}
	}
}

func TestOverlaps(t *testing.T) {
	if Bit(4).Overlaps(Range(16, 5)) {
		t.Error("bit 4 overlaps [16:5]")
	}
	if !Bit(5).Overlaps(Range(16, 5)) {
		t.Error("bit 5 does not overlap [16:5]")
	}
}

func TestBit32(t *testing.T) {
	w := Bit32Write(0, 2, true)
	if w != 0x4 || !Bit32Read(w, 2) {
		t.Fatalf("Bit32Write(0, 2, true) = %#x", w)
	}
	if w = Bit32Write(w, 2, false); w != 0 {
		t.Fatalf("Bit32Write(4, 2, false) = %#x", w)
	}
}
