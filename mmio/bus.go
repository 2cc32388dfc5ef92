// Package mmio provides 32-bit register access to a peripheral's register
// window.
package mmio

import (
	"errors"
	"fmt"
)

var (
	ErrMisaligned  = errors.New("mmio: misaligned register offset")
	ErrOutOfRange  = errors.New("mmio: register offset outside window")
	ErrClosed      = errors.New("mmio: bus closed")
	ErrUnsupported = errors.New("mmio: not supported on this platform")
)

// Bus reads and writes 32-bit registers at byte offsets from a peripheral's
// base address.
type Bus interface {
	Read32(offset uint32) (uint32, error)
	Write32(offset uint32, value uint32) error
}

func checkOffset(offset uint32, size uint32) error {
	if offset%4 != 0 {
		return fmt.Errorf("%w: %#x", ErrMisaligned, offset)
	}
	if uint64(offset)+4 > uint64(size) {
		return fmt.Errorf("%w: %#x", ErrOutOfRange, offset)
	}
	return nil
}

// Modify32 performs a read-modify-write of the register at offset. The
// sequence is not atomic.
func Modify32(bus Bus, offset uint32, fn func(word uint32) uint32) error {
	word, err := bus.Read32(offset)
	if err != nil {
		return err
	}
	return bus.Write32(offset, fn(word))
}
