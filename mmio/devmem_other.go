//go:build !linux

package mmio

// DevMem is unavailable outside Linux.
type DevMem struct{}

func Open(path string, base uint64, size uint32) (*DevMem, error) {
	return nil, ErrUnsupported
}

func (d *DevMem) Read32(offset uint32) (uint32, error)      { return 0, ErrUnsupported }
func (d *DevMem) Write32(offset uint32, value uint32) error { return ErrUnsupported }
func (d *DevMem) Close() error                              { return nil }
