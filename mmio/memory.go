package mmio

import "sync"

// WriteHook computes the value stored by a write to a register given its
// current value and the written value.
type WriteHook func(current uint32, written uint32) uint32

// WriteOneToClear is a WriteHook for registers whose set bits are cleared by
// writing ones to them.
func WriteOneToClear(current uint32, written uint32) uint32 {
	return current &^ written
}

// Memory is a register window backed by ordinary memory. It stands in for
// hardware in tests and simulations.
type Memory struct {
	mu    sync.Mutex
	size  uint32
	regs  map[uint32]uint32
	hooks map[uint32]WriteHook
}

// NewMemory returns a zeroed window of size bytes.
func NewMemory(size uint32) *Memory {
	return &Memory{
		size:  size,
		regs:  map[uint32]uint32{},
		hooks: map[uint32]WriteHook{},
	}
}

func (m *Memory) Read32(offset uint32) (uint32, error) {
	if err := checkOffset(offset, m.size); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regs[offset], nil
}

func (m *Memory) Write32(offset uint32, value uint32) error {
	if err := checkOffset(offset, m.size); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if hook, ok := m.hooks[offset]; ok {
		value = hook(m.regs[offset], value)
	}
	m.regs[offset] = value
	return nil
}

// Hook installs fn for writes to offset. A nil fn removes the hook.
func (m *Memory) Hook(offset uint32, fn WriteHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if fn == nil {
		delete(m.hooks, offset)
		return
	}
	m.hooks[offset] = fn
}

// Poke sets a register without running its write hook, the way hardware
// updates status registers.
func (m *Memory) Poke(offset uint32, value uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regs[offset] = value
}
