package regdesc

import (
	"errors"
	"github.com/google/go-cmp/cmp"
	"omibyte.io/slvguard/bitfield"
	"strings"
	"testing"
)

const sample = `
name: demo
registers:
  - name: CTRL
    desc: control
    fields:
      - bits: 0
        name: EN
      - bits: "7:4"
        name: MODE
  - name: STATUS
    swaccess: ro
    fields:
      - bits: "31:0"
  - name: SPARE
    offset: 0x10
    fields:
      - bits: 3
        name: FLAG
`

func TestParse(t *testing.T) {
	block, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}

	want := &Block{
		Name:     "demo",
		RegWidth: 32,
		Registers: []Register{
			{Name: "CTRL", Desc: "control", Offset: 0x0, SWAccess: ReadWrite, Fields: []Field{
				{Name: "EN", Bits: Bits{MSB: 0, LSB: 0}},
				{Name: "MODE", Bits: Bits{MSB: 7, LSB: 4}},
			}},
			{Name: "STATUS", Offset: 0x4, SWAccess: ReadOnly, Fields: []Field{
				{Name: "STATUS", Bits: Bits{MSB: 31, LSB: 0}},
			}},
			{Name: "SPARE", Offset: 0x10, SWAccess: ReadWrite, Fields: []Field{
				{Name: "FLAG", Bits: Bits{MSB: 3, LSB: 3}},
			}},
		},
	}
	if diff := cmp.Diff(want, block); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}

	ctrl, ok := block.Register("ctrl")
	if !ok {
		t.Fatal("CTRL not found")
	}
	mode, ok := ctrl.Field("mode")
	if !ok {
		t.Fatal("CTRL.MODE not found")
	}
	if f := mode.Field32(); f != (bitfield.Field32{Mask: 0xf, Index: 4}) {
		t.Errorf("MODE = %+v", f)
	}
	status, _ := block.Register("STATUS")
	if !status.WholeWord(32) || ctrl.WholeWord(32) {
		t.Error("WholeWord misreported")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			"misaligned",
			"name: x\nregisters:\n  - name: A\n    offset: 0x2\n    fields: [{bits: 0}]\n",
			[]string{"not 4-byte aligned"},
		},
		{
			"overlap",
			"name: x\nregisters:\n  - name: A\n    fields: [{bits: \"3:0\", name: L}, {bits: \"5:3\", name: H}]\n",
			[]string{"fields L and H overlap"},
		},
		{
			"tooWide",
			"name: x\nregisters:\n  - name: A\n    fields: [{bits: \"32:1\"}]\n",
			[]string{"exceeds 32 bits"},
		},
		{
			"duplicates",
			"name: x\nregisters:\n  - name: A\n    fields: [{bits: 0}]\n  - name: a\n    offset: 0\n    fields: [{bits: 0}]\n",
			[]string{"duplicate register a", "share offset 0x0"},
		},
		{
			"noFields",
			"name: x\nregisters:\n  - name: A\n",
			[]string{"has no fields"},
		},
		{
			"badAccess",
			"name: x\nregisters:\n  - name: A\n    swaccess: rx\n    fields: [{bits: 0}]\n",
			[]string{`unknown access "rx"`},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.src))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Parse() = %v, want ErrInvalid", err)
			}
			for _, msg := range test.want {
				if !strings.Contains(err.Error(), msg) {
					t.Errorf("error %q does not mention %q", err, msg)
				}
			}
		})
	}
}

func TestValidateReversedBits(t *testing.T) {
	block := &Block{
		Name:     "x",
		RegWidth: 32,
		Registers: []Register{
			{Name: "A", SWAccess: ReadWrite, Fields: []Field{
				{Name: "LO", Bits: Bits{MSB: 1, LSB: 0}},
				{Name: "BAD", Bits: Bits{MSB: 2, LSB: 5}},
				{Name: "HI", Bits: Bits{MSB: 7, LSB: 6}},
			}},
		},
	}
	err := Validate(block)
	if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), "field BAD has reversed bits 2:5") {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestSyntax(t *testing.T) {
	for _, src := range []string{
		"name: x\nregisters:\n  - name: A\n    fields: [{bits: \"0:3\"}]\n",
		"name: x\nregisters:\n  - name: A\n    offset: zz\n    fields: [{bits: 0}]\n",
		"name: [",
		"name: x\nregisters:\n  - name: A\n    fields:\n      - name: F\n        desc: no position\n",
	} {
		if _, err := Parse([]byte(src)); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) = %v, want ErrSyntax", src, err)
		}
	}
}

func TestParseBits(t *testing.T) {
	tests := []struct {
		in   string
		want Bits
	}{
		{"0", Bits{0, 0}},
		{"16:5", Bits{16, 5}},
		{"0x1f:0x10", Bits{31, 16}},
	}
	for _, test := range tests {
		got, err := ParseBits(test.in)
		if err != nil || got != test.want {
			t.Errorf("ParseBits(%q) = %+v, %v", test.in, got, err)
		}
		if test.in != "0x1f:0x10" && got.String() != test.in {
			t.Errorf("String() = %q, want %q", got.String(), test.in)
		}
	}
}

const sampleSVD = `<?xml version="1.0" encoding="utf-8"?>
<device>
  <name>DEMO</name>
  <size>32</size>
  <access>read-write</access>
  <peripherals>
    <peripheral>
      <name>GUARD0</name>
      <description>bus guard</description>
      <registers>
        <register>
          <name>CTRL</name>
          <description>control</description>
          <addressOffset>0x0</addressOffset>
          <fields>
            <field><name>EN</name><bitOffset>0</bitOffset><bitWidth>1</bitWidth></field>
            <field><name>MODE</name><bitRange>[7:4]</bitRange></field>
          </fields>
        </register>
        <register>
          <name>ADDR</name>
          <addressOffset>0x8</addressOffset>
          <access>read-only</access>
        </register>
      </registers>
    </peripheral>
    <peripheral derivedFrom="GUARD0">
      <name>GUARD1</name>
    </peripheral>
  </peripherals>
</device>`

func TestFromSVD(t *testing.T) {
	block, err := FromSVD([]byte(sampleSVD), "guard1")
	if err != nil {
		t.Fatal(err)
	}
	want := &Block{
		Name:     "guard1",
		RegWidth: 32,
		Registers: []Register{
			{Name: "CTRL", Desc: "control", Offset: 0x0, SWAccess: ReadWrite, Fields: []Field{
				{Name: "EN", Bits: Bits{MSB: 0, LSB: 0}},
				{Name: "MODE", Bits: Bits{MSB: 7, LSB: 4}},
			}},
			{Name: "ADDR", Offset: 0x8, SWAccess: ReadOnly, Fields: []Field{
				{Name: "ADDR", Bits: Bits{MSB: 31, LSB: 0}},
			}},
		},
	}
	if diff := cmp.Diff(want, block); diff != "" {
		t.Fatalf("FromSVD mismatch (-want +got):\n%s", diff)
	}

	if _, err := FromSVD([]byte(sampleSVD), "nope"); !errors.Is(err, ErrInvalid) {
		t.Errorf("FromSVD(nope) = %v, want ErrInvalid", err)
	}
}

func TestFromSVDDerivedFrom(t *testing.T) {
	svd := func(peripherals string) []byte {
		return []byte("<device><name>DEMO</name><peripherals>" + peripherals + "</peripherals></device>")
	}
	tests := []struct {
		name        string
		peripherals string
	}{
		{"self", `<peripheral derivedFrom="A"><name>A</name></peripheral>`},
		{"pair", `<peripheral derivedFrom="B"><name>A</name></peripheral><peripheral derivedFrom="a"><name>B</name></peripheral>`},
		{"missing base", `<peripheral derivedFrom="C"><name>A</name></peripheral>`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := FromSVD(svd(test.peripherals), "A"); !errors.Is(err, ErrInvalid) {
				t.Errorf("FromSVD = %v, want ErrInvalid", err)
			}
		})
	}
}
