package regdesc

import (
	"encoding/xml"
	"fmt"
	"strings"
)

type svdDevice struct {
	Name        string          `xml:"name"`
	Size        Integer         `xml:"size"`
	Access      string          `xml:"access"`
	Peripherals []svdPeripheral `xml:"peripherals>peripheral"`
}

type svdPeripheral struct {
	Name        string        `xml:"name"`
	Description string        `xml:"description"`
	DerivedFrom string        `xml:"derivedFrom,attr"`
	Registers   []svdRegister `xml:"registers>register"`
}

type svdRegister struct {
	Name          string     `xml:"name"`
	Description   string     `xml:"description"`
	AddressOffset Integer    `xml:"addressOffset"`
	Size          Integer    `xml:"size"`
	Access        string     `xml:"access"`
	Fields        []svdField `xml:"fields>field"`
}

type svdField struct {
	Name        string   `xml:"name"`
	Description string   `xml:"description"`
	BitOffset   *Integer `xml:"bitOffset"`
	BitWidth    *Integer `xml:"bitWidth"`
	BitRange    string   `xml:"bitRange"`
}

func (f svdField) bits() (Bits, error) {
	if f.BitOffset != nil {
		width := Integer(1)
		if f.BitWidth != nil {
			width = *f.BitWidth
		}
		if width == 0 {
			return Bits{}, fmt.Errorf("%w: field %s has zero width", ErrSyntax, f.Name)
		}
		return Bits{MSB: uint32(*f.BitOffset + width - 1), LSB: uint32(*f.BitOffset)}, nil
	}
	if len(f.BitRange) > 0 {
		return ParseBits(strings.Trim(f.BitRange, "[]"))
	}
	return Bits{}, fmt.Errorf("%w: field %s has no bit position", ErrSyntax, f.Name)
}

func (d *svdDevice) peripheral(name string) *svdPeripheral {
	for i := range d.Peripherals {
		if strings.EqualFold(d.Peripherals[i].Name, name) {
			return &d.Peripherals[i]
		}
	}
	return nil
}

func svdAccess(access string) Access {
	switch access {
	case "read-only":
		return ReadOnly
	case "write-only", "writeOnce":
		return WriteOnly
	default:
		return ReadWrite
	}
}

// FromSVD builds a block from the named peripheral of a CMSIS-SVD device
// file. Registers without fields get a single field covering the register.
func FromSVD(buf []byte, peripheral string) (*Block, error) {
	var device svdDevice
	if err := xml.Unmarshal(buf, &device); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	periph := device.peripheral(peripheral)
	if periph == nil {
		return nil, fmt.Errorf("%w: peripheral %q not found in %s", ErrInvalid, peripheral, device.Name)
	}

	// A derived peripheral keeps its name and takes the registers of its base
	name := periph.Name
	seen := map[string]bool{strings.ToLower(periph.Name): true}
	for len(periph.DerivedFrom) > 0 {
		base := periph.DerivedFrom
		if seen[strings.ToLower(base)] {
			return nil, fmt.Errorf("%w: derivedFrom cycle at %s", ErrInvalid, periph.Name)
		}
		seen[strings.ToLower(base)] = true
		if periph = device.peripheral(base); periph == nil {
			return nil, fmt.Errorf("%w: %s derives from unknown peripheral %q", ErrInvalid, name, base)
		}
	}

	width := device.Size
	if width == 0 {
		width = defaultRegWidth
	}
	block := &Block{
		Name:     strings.ToLower(name),
		RegWidth: width,
	}

	for _, r := range periph.Registers {
		if r.Size != 0 && r.Size != width {
			return nil, fmt.Errorf("%w: register %s is %d bits wide, want %d", ErrInvalid, r.Name, r.Size, width)
		}
		access := r.Access
		if len(access) == 0 {
			access = device.Access
		}
		reg := Register{
			Name:     r.Name,
			Desc:     r.Description,
			Offset:   r.AddressOffset,
			SWAccess: svdAccess(access),
		}
		for _, f := range r.Fields {
			bits, err := f.bits()
			if err != nil {
				return nil, fmt.Errorf("register %s: %w", r.Name, err)
			}
			reg.Fields = append(reg.Fields, Field{Name: f.Name, Desc: f.Description, Bits: bits})
		}
		if len(reg.Fields) == 0 {
			reg.Fields = []Field{{Name: r.Name, Desc: r.Description, Bits: Bits{MSB: uint32(width) - 1}}}
		}
		block.Registers = append(block.Registers, reg)
	}

	normalize(block)
	if err := Validate(block); err != nil {
		return nil, err
	}
	return block, nil
}
