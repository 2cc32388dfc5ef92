package regdesc

import (
	"errors"
	"fmt"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
	"os"
)

var (
	ErrSyntax  = errors.New("regdesc: syntax error")
	ErrInvalid = errors.New("regdesc: invalid description")
)

const defaultRegWidth = 32

type rawBlock struct {
	Name      string        `yaml:"name"`
	Copyright string        `yaml:"copyright"`
	License   string        `yaml:"license"`
	RegWidth  Integer       `yaml:"regwidth"`
	Registers []rawRegister `yaml:"registers"`
}

type rawRegister struct {
	Name     string     `yaml:"name"`
	Desc     string     `yaml:"desc"`
	Offset   *Integer   `yaml:"offset"`
	SWAccess Access     `yaml:"swaccess"`
	Fields   []rawField `yaml:"fields"`
}

type rawField struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
	Bits *Bits  `yaml:"bits"`
}

// Parse decodes a YAML register description and validates it. Registers
// without an explicit offset follow the previous register.
func Parse(buf []byte) (*Block, error) {
	var raw rawBlock
	if err := yaml.Unmarshal(buf, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	block := &Block{
		Name:      raw.Name,
		Copyright: raw.Copyright,
		License:   raw.License,
		RegWidth:  raw.RegWidth,
	}
	if block.RegWidth == 0 {
		block.RegWidth = defaultRegWidth
	}

	next := Integer(0)
	for _, r := range raw.Registers {
		reg := Register{
			Name:     r.Name,
			Desc:     r.Desc,
			Offset:   next,
			SWAccess: r.SWAccess,
		}
		for _, f := range r.Fields {
			if f.Bits == nil {
				return nil, fmt.Errorf("%w: register %s: field %s has no bits", ErrSyntax, r.Name, f.Name)
			}
			reg.Fields = append(reg.Fields, Field{Name: f.Name, Desc: f.Desc, Bits: *f.Bits})
		}
		if r.Offset != nil {
			reg.Offset = *r.Offset
		}
		next = reg.Offset + block.RegWidth/8
		block.Registers = append(block.Registers, reg)
	}

	normalize(block)
	if err := Validate(block); err != nil {
		return nil, err
	}
	return block, nil
}

// Load reads and parses the description at path.
func Load(path string) (*Block, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return block, nil
}

// normalize fills defaults and orders registers by offset and fields by bit
// position.
func normalize(block *Block) {
	for i := range block.Registers {
		reg := &block.Registers[i]
		if len(reg.SWAccess) == 0 {
			reg.SWAccess = ReadWrite
		}
		for j := range reg.Fields {
			if len(reg.Fields[j].Name) == 0 {
				reg.Fields[j].Name = reg.Name
			}
		}
		slices.SortStableFunc(reg.Fields, func(a, b Field) bool {
			return a.Bits.LSB < b.Bits.LSB
		})
	}

	slices.SortStableFunc(block.Registers, func(a, b Register) bool {
		return a.Offset < b.Offset
	})
}
