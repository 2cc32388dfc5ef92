package slvguard

import (
	_ "embed"
	"omibyte.io/slvguard/bitfield"
	"omibyte.io/slvguard/regdesc"
	"strings"
	"sync"
)

//go:embed slv_guard.yaml
var rawDescription []byte

var (
	descriptionOnce sync.Once
	description     *regdesc.Block
	descriptionErr  error
)

// Description returns the register description the map was generated from.
// Each call returns a fresh copy.
func Description() (*regdesc.Block, error) {
	descriptionOnce.Do(func() {
		description, descriptionErr = regdesc.Parse(rawDescription)
	})
	if descriptionErr != nil {
		return nil, descriptionErr
	}
	block := *description
	block.Registers = make([]regdesc.Register, len(description.Registers))
	for i, reg := range description.Registers {
		reg.Fields = append([]regdesc.Field(nil), reg.Fields...)
		block.Registers[i] = reg
	}
	return &block, nil
}

// Register is one 32-bit register of the guard.
type Register struct {
	Name   string
	Desc   string
	Offset uint32
	Access regdesc.Access
	Fields []Field
}

// Field is a named bit range of a register.
type Field struct {
	Name    string
	Desc    string
	Field32 bitfield.Field32
}

// Field returns the field with the given name, ignoring case.
func (r Register) Field(name string) (Field, bool) {
	for _, f := range r.Fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// Decode splits word into its field values, in field order.
func (r Register) Decode(word uint32) []uint32 {
	values := make([]uint32, len(r.Fields))
	for i, f := range r.Fields {
		values[i] = f.Field32.Read(word)
	}
	return values
}

// Registers returns the register table ordered by offset.
func Registers() []Register {
	regs := make([]Register, len(registers))
	for i, reg := range registers {
		reg.Fields = append([]Field(nil), reg.Fields...)
		regs[i] = reg
	}
	return regs
}

// Lookup returns the register with the given name, ignoring case.
func Lookup(name string) (Register, bool) {
	for _, reg := range registers {
		if strings.EqualFold(reg.Name, name) {
			reg.Fields = append([]Field(nil), reg.Fields...)
			return reg, true
		}
	}
	return Register{}, false
}

// LookupOffset returns the register at offset.
func LookupOffset(offset uint32) (Register, bool) {
	for _, reg := range registers {
		if reg.Offset == offset {
			reg.Fields = append([]Field(nil), reg.Fields...)
			return reg, true
		}
	}
	return Register{}, false
}
