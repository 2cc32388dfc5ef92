// Package bitfield packs and unpacks named bit ranges of 32-bit register words.
package bitfield

import (
	"fmt"
	"math/bits"
)

// Field32 describes a contiguous range of bits within a 32-bit word. Mask is
// stored unshifted, so a 12-bit field at bit 5 is {Mask: 0xfff, Index: 5}.
type Field32 struct {
	Mask  uint32
	Index uint32
}

// Bit returns the single-bit field at index.
func Bit(index uint32) Field32 {
	return Field32{Mask: 1, Index: index}
}

// Range returns the field spanning bits msb down to lsb inclusive. It panics
// if msb < lsb.
func Range(msb, lsb uint32) Field32 {
	if msb < lsb {
		panic(fmt.Sprintf("bitfield: reversed range [%d:%d]", msb, lsb))
	}
	width := msb - lsb + 1
	if width >= 32 {
		return Field32{Mask: 0xffffffff, Index: lsb}
	}
	return Field32{Mask: 1<<width - 1, Index: lsb}
}

// Read extracts the field value from word.
func (f Field32) Read(word uint32) uint32 {
	return (word >> f.Index) & f.Mask
}

// Write returns word with the field replaced by value. Bits of value outside
// the mask are dropped.
func (f Field32) Write(word uint32, value uint32) uint32 {
	word &^= f.ShiftedMask()
	return word | (value&f.Mask)<<f.Index
}

// ShiftedMask returns the mask in register position.
func (f Field32) ShiftedMask() uint32 {
	return f.Mask << f.Index
}

// Width returns the number of bits covered by the field.
func (f Field32) Width() int {
	return bits.OnesCount32(f.Mask)
}

// Max returns the largest value the field can hold.
func (f Field32) Max() uint32 {
	return f.Mask
}

// Overlaps reports whether the two fields share any bit.
func (f Field32) Overlaps(other Field32) bool {
	return f.ShiftedMask()&other.ShiftedMask() != 0
}

// Valid reports whether the mask is a non-empty run of ones starting at bit
// zero and the field fits in 32 bits.
func (f Field32) Valid() bool {
	if f.Mask == 0 || f.Mask&(f.Mask+1) != 0 {
		return false
	}
	return int(f.Index)+f.Width() <= 32
}

func (f Field32) String() string {
	if f.Mask == 1 {
		return fmt.Sprintf("[%d]", f.Index)
	}
	return fmt.Sprintf("[%d:%d]", int(f.Index)+f.Width()-1, f.Index)
}

// Bit32Read reports whether bit index of word is set.
func Bit32Read(word uint32, index uint32) bool {
	return Bit(index).Read(word) != 0
}

// Bit32Write returns word with bit index set to value.
func Bit32Write(word uint32, index uint32, value bool) uint32 {
	var v uint32
	if value {
		v = 1
	}
	return Bit(index).Write(word, v)
}
