// Package regdesc models the register description a peripheral's register
// map is generated from.
package regdesc

import (
	"omibyte.io/slvguard/bitfield"
	"strings"
)

// Access is the software access policy of a register.
type Access string

const (
	ReadWrite Access = "rw"
	ReadOnly  Access = "ro"
	WriteOnly Access = "wo"
)

func (a Access) Readable() bool { return a != WriteOnly }
func (a Access) Writable() bool { return a != ReadOnly }

// Block describes one peripheral.
type Block struct {
	Name      string     `yaml:"name"`
	Copyright string     `yaml:"copyright"`
	License   string     `yaml:"license"`
	RegWidth  Integer    `yaml:"regwidth"`
	Registers []Register `yaml:"registers"`
}

type Register struct {
	Name     string  `yaml:"name"`
	Desc     string  `yaml:"desc"`
	Offset   Integer `yaml:"offset"`
	SWAccess Access  `yaml:"swaccess"`
	Fields   []Field `yaml:"fields"`
}

type Field struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
	Bits Bits   `yaml:"bits"`
}

// Field32 returns the mask and index of the field.
func (f Field) Field32() bitfield.Field32 {
	return bitfield.Range(f.Bits.MSB, f.Bits.LSB)
}

// SingleBit reports whether the field covers exactly one bit.
func (f Field) SingleBit() bool {
	return f.Bits.MSB == f.Bits.LSB
}

// Register returns the register with the given name, ignoring case.
func (b *Block) Register(name string) (*Register, bool) {
	for i := range b.Registers {
		if strings.EqualFold(b.Registers[i].Name, name) {
			return &b.Registers[i], true
		}
	}
	return nil, false
}

// Field returns the field with the given name, ignoring case.
func (r *Register) Field(name string) (*Field, bool) {
	for i := range r.Fields {
		if strings.EqualFold(r.Fields[i].Name, name) {
			return &r.Fields[i], true
		}
	}
	return nil, false
}

// WholeWord reports whether the register consists of a single field covering
// all of its width.
func (r *Register) WholeWord(width uint32) bool {
	return len(r.Fields) == 1 && r.Fields[0].Bits.LSB == 0 && r.Fields[0].Bits.Width() == width
}
