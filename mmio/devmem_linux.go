//go:build linux

package mmio

import (
	"fmt"
	"golang.org/x/sys/unix"
	"os"
	"sync"
	"sync/atomic"
	"unsafe"
)

// DevMem is a register window mapped from a physical memory device such as
// /dev/mem or a UIO node.
type DevMem struct {
	mu   sync.RWMutex
	data []byte
	regs []byte
	size uint32
}

// Open maps size bytes of physical memory starting at base from the device at
// path. base need not be page aligned.
func Open(path string, base uint64, size uint32) (*DevMem, error) {
	if base%4 != 0 {
		return nil, fmt.Errorf("%w: base %#x", ErrMisaligned, base)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pageSize := uint64(os.Getpagesize())
	pageBase := base &^ (pageSize - 1)
	delta := base - pageBase
	length := (delta + uint64(size) + pageSize - 1) &^ (pageSize - 1)

	data, err := unix.Mmap(int(f.Fd()), int64(pageBase), int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s at %#x: %w", path, pageBase, err)
	}

	return &DevMem{
		data: data,
		regs: data[delta : delta+uint64(size)],
		size: size,
	}, nil
}

func (d *DevMem) word(offset uint32) (*uint32, error) {
	if d.regs == nil {
		return nil, ErrClosed
	}
	if err := checkOffset(offset, d.size); err != nil {
		return nil, err
	}
	return (*uint32)(unsafe.Pointer(&d.regs[offset])), nil
}

func (d *DevMem) Read32(offset uint32) (uint32, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, err := d.word(offset)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32(p), nil
}

func (d *DevMem) Write32(offset uint32, value uint32) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, err := d.word(offset)
	if err != nil {
		return err
	}
	atomic.StoreUint32(p, value)
	return nil
}

// Close unmaps the window.
func (d *DevMem) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.data == nil {
		return nil
	}
	err := unix.Munmap(d.data)
	d.data, d.regs = nil, nil
	return err
}
