package slvguard

import (
	"fmt"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"omibyte.io/slvguard/bitfield"
	"omibyte.io/slvguard/mmio"
)

// WindowSize is the size in bytes of the guard's register window.
const WindowSize = LatencyReadRegOffset + ParamRegWidth/8

// Guard accesses one guard instance through its register window. It keeps no
// state of its own; read-modify-write sequences are not atomic and callers
// sharing a Guard must serialize them.
type Guard struct {
	bus mmio.Bus
}

func New(bus mmio.Bus) *Guard {
	return &Guard{bus: bus}
}

// Budgets are the programmed cycle budgets.
type Budgets struct {
	Write uint32
	Read  uint32
}

// Latency holds the latencies the guard measured for the last transactions.
type Latency struct {
	Write uint32
	Read  uint32
}

func (g *Guard) readField(offset uint32, f bitfield.Field32) (uint32, error) {
	word, err := g.bus.Read32(offset)
	if err != nil {
		return 0, err
	}
	return f.Read(word), nil
}

func (g *Guard) writeField(offset uint32, f bitfield.Field32, value uint32) error {
	return mmio.Modify32(g.bus, offset, func(word uint32) uint32 {
		return f.Write(word, value)
	})
}

func (g *Guard) Enable() error {
	return g.writeField(GuardEnableRegOffset, bitfield.Bit(GuardEnableEnableBit), 1)
}

func (g *Guard) Disable() error {
	return g.writeField(GuardEnableRegOffset, bitfield.Bit(GuardEnableEnableBit), 0)
}

func (g *Guard) Enabled() (bool, error) {
	v, err := g.readField(GuardEnableRegOffset, bitfield.Bit(GuardEnableEnableBit))
	return v != 0, err
}

func checkBudget(cycles uint32, f bitfield.Field32) error {
	if cycles > f.Max() {
		return fmt.Errorf("%w: %d cycles, maximum is %d", ErrBudgetRange, cycles, f.Max())
	}
	return nil
}

// SetWriteBudget programs the maximum number of cycles a write transaction
// may take.
func (g *Guard) SetWriteBudget(cycles uint32) error {
	if err := checkBudget(cycles, BudgetWriteBudgetWriteField); err != nil {
		return err
	}
	return g.writeField(BudgetWriteRegOffset, BudgetWriteBudgetWriteField, cycles)
}

// SetReadBudget programs the maximum number of cycles a read transaction may
// take.
func (g *Guard) SetReadBudget(cycles uint32) error {
	if err := checkBudget(cycles, BudgetReadBudgetReadField); err != nil {
		return err
	}
	return g.writeField(BudgetReadRegOffset, BudgetReadBudgetReadField, cycles)
}

func (g *Guard) Budgets() (b Budgets, err error) {
	if b.Write, err = g.readField(BudgetWriteRegOffset, BudgetWriteBudgetWriteField); err != nil {
		return Budgets{}, err
	}
	if b.Read, err = g.readField(BudgetReadRegOffset, BudgetReadBudgetReadField); err != nil {
		return Budgets{}, err
	}
	return b, nil
}

// RequestReset asks the guard to reset the guarded interface.
func (g *Guard) RequestReset() error {
	return g.writeField(ResetRegOffset, bitfield.Bit(ResetResetBit), 1)
}

// ResetPending reports whether a reset request is still latched.
func (g *Guard) ResetPending() (bool, error) {
	v, err := g.readField(ResetRegOffset, bitfield.Bit(ResetResetBit))
	return v != 0, err
}

// Interrupt reads the IRQ and IRQ_ADDR registers.
func (g *Guard) Interrupt() (Interrupt, error) {
	word, err := g.bus.Read32(IRQRegOffset)
	if err != nil {
		return Interrupt{}, err
	}
	irq := DecodeIRQ(word)
	if irq.Addr, err = g.bus.Read32(IRQAddrRegOffset); err != nil {
		return Interrupt{}, err
	}
	return irq, nil
}

// ClearInterrupt writes the cause flags of irq back to the IRQ register.
func (g *Guard) ClearInterrupt(irq Interrupt) error {
	return g.bus.Write32(IRQRegOffset, irq.ClearWord())
}

func (g *Guard) Latencies() (l Latency, err error) {
	if l.Write, err = g.readField(LatencyWriteRegOffset, LatencyWriteLatencyWriteField); err != nil {
		return Latency{}, err
	}
	if l.Read, err = g.readField(LatencyReadRegOffset, LatencyReadLatencyAwvldWfirstField); err != nil {
		return Latency{}, err
	}
	return l, nil
}

// ReadRegister reads a register by name.
func (g *Guard) ReadRegister(name string) (Register, uint32, error) {
	reg, ok := Lookup(name)
	if !ok {
		return Register{}, 0, fmt.Errorf("%w: %s", ErrUnknownRegister, name)
	}
	word, err := g.bus.Read32(reg.Offset)
	if err != nil {
		return Register{}, 0, fmt.Errorf("%s: %w", reg.Name, err)
	}
	return reg, word, nil
}

// WriteRegister writes a whole register word by name.
func (g *Guard) WriteRegister(name string, word uint32) error {
	reg, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRegister, name)
	}
	if !reg.Access.Writable() {
		return fmt.Errorf("%w: %s", ErrReadOnly, reg.Name)
	}
	if err := g.bus.Write32(reg.Offset, word); err != nil {
		return fmt.Errorf("%s: %w", reg.Name, err)
	}
	return nil
}

// WriteFields updates the named fields of a register with one
// read-modify-write. Values wider than a field are truncated.
func (g *Guard) WriteFields(name string, values map[string]uint32) error {
	reg, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRegister, name)
	}
	if !reg.Access.Writable() {
		return fmt.Errorf("%w: %s", ErrReadOnly, reg.Name)
	}

	// Apply the fields in a stable order
	names := maps.Keys(values)
	slices.Sort(names)

	fields := make([]Field, 0, len(names))
	for _, n := range names {
		f, ok := reg.Field(n)
		if !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, reg.Name, n)
		}
		fields = append(fields, f)
	}

	err := mmio.Modify32(g.bus, reg.Offset, func(word uint32) uint32 {
		for i, f := range fields {
			word = f.Field32.Write(word, values[names[i]])
		}
		return word
	})
	if err != nil {
		return fmt.Errorf("%s: %w", reg.Name, err)
	}
	return nil
}

// Snapshot reads every readable register, keyed by register name.
func (g *Guard) Snapshot() (map[string]uint32, error) {
	snap := map[string]uint32{}
	for _, reg := range registers {
		if !reg.Access.Readable() {
			continue
		}
		word, err := g.bus.Read32(reg.Offset)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", reg.Name, err)
		}
		snap[reg.Name] = word
	}
	return snap, nil
}
