package regdesc

import (
	"encoding/xml"
	"fmt"
	"gopkg.in/yaml.v3"
	"strconv"
	"strings"
)

// Integer is an unsigned value written either in decimal or with a 0x prefix.
type Integer uint64

func parseInteger(v string) (Integer, error) {
	v = strings.TrimSpace(strings.ReplaceAll(v, "X", "x"))

	var value uint64
	var err error
	if strings.HasPrefix(v, "0x") {
		value, err = strconv.ParseUint(strings.TrimPrefix(v, "0x"), 16, 64)
	} else {
		value, err = strconv.ParseUint(v, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: bad integer %q", ErrSyntax, v)
	}
	return Integer(value), nil
}

func (i *Integer) UnmarshalYAML(node *yaml.Node) (err error) {
	*i, err = parseInteger(node.Value)
	return err
}

func (i *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) (err error) {
	var v string
	if err = d.DecodeElement(&v, &start); err != nil {
		return err
	}
	*i, err = parseInteger(v)
	return err
}

// Bits is an inclusive bit range written as "msb:lsb", or a single bit index.
type Bits struct {
	MSB uint32
	LSB uint32
}

func ParseBits(v string) (Bits, error) {
	hi, lo, found := strings.Cut(v, ":")
	msb, err := parseInteger(hi)
	if err != nil {
		return Bits{}, err
	}
	if !found {
		return Bits{MSB: uint32(msb), LSB: uint32(msb)}, nil
	}
	lsb, err := parseInteger(lo)
	if err != nil {
		return Bits{}, err
	}
	if lsb > msb {
		return Bits{}, fmt.Errorf("%w: bit range %q is reversed", ErrSyntax, v)
	}
	return Bits{MSB: uint32(msb), LSB: uint32(lsb)}, nil
}

func (b *Bits) UnmarshalYAML(node *yaml.Node) (err error) {
	*b, err = ParseBits(node.Value)
	return err
}

func (b Bits) Width() uint32 {
	return b.MSB - b.LSB + 1
}

func (b Bits) String() string {
	if b.MSB == b.LSB {
		return strconv.FormatUint(uint64(b.MSB), 10)
	}
	return fmt.Sprintf("%d:%d", b.MSB, b.LSB)
}
