package regdesc

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the layout invariants of a block: registers are aligned to
// the register width and do not share an offset, names are unique, fields fit
// in the register and no two fields of a register overlap. All problems are
// reported together.
func Validate(block *Block) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if len(block.Name) == 0 {
		fail("block has no name")
	}

	width := uint32(block.RegWidth)
	if width == 0 || width%8 != 0 || width > 32 {
		fail("unsupported register width %d", width)
		return errors.Join(errs...)
	}
	stride := Integer(width / 8)

	names := map[string]bool{}
	offsets := map[Integer]string{}
	for _, reg := range block.Registers {
		key := strings.ToUpper(reg.Name)
		switch {
		case len(reg.Name) == 0:
			fail("register at %#x has no name", reg.Offset)
		case names[key]:
			fail("duplicate register %s", reg.Name)
		}
		names[key] = true

		if reg.Offset%stride != 0 {
			fail("register %s offset %#x is not %d-byte aligned", reg.Name, reg.Offset, stride)
		}
		if other, ok := offsets[reg.Offset]; ok {
			fail("registers %s and %s share offset %#x", other, reg.Name, reg.Offset)
		}
		offsets[reg.Offset] = reg.Name

		switch reg.SWAccess {
		case ReadWrite, ReadOnly, WriteOnly:
		default:
			fail("register %s has unknown access %q", reg.Name, reg.SWAccess)
		}

		if len(reg.Fields) == 0 {
			fail("register %s has no fields", reg.Name)
		}

		fieldNames := map[string]bool{}
		for i, field := range reg.Fields {
			fkey := strings.ToUpper(field.Name)
			if fieldNames[fkey] {
				fail("register %s: duplicate field %s", reg.Name, field.Name)
			}
			fieldNames[fkey] = true

			if field.Bits.MSB < field.Bits.LSB {
				fail("register %s: field %s has reversed bits %d:%d", reg.Name, field.Name, field.Bits.MSB, field.Bits.LSB)
				continue
			}
			if field.Bits.MSB >= width {
				fail("register %s: field %s [%s] exceeds %d bits", reg.Name, field.Name, field.Bits, width)
				continue
			}
			for _, other := range reg.Fields[:i] {
				if other.Bits.MSB < other.Bits.LSB {
					continue
				}
				if field.Field32().Overlaps(other.Field32()) {
					fail("register %s: fields %s and %s overlap", reg.Name, other.Name, field.Name)
				}
			}
		}
	}

	return errors.Join(errs...)
}
