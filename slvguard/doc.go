// Package slvguard describes the register map of the slave bus guard, a
// peripheral that enforces per-transaction cycle budgets on a bus slave and
// raises an interrupt when a transaction exceeds its budget, carries a
// mismatched ID or arrives unrequested.
//
// The constants in regs.go are generated from slv_guard.yaml and are a binary
// contract with the hardware. Guard wraps an mmio.Bus with typed accessors for
// each register.
package slvguard

//go:generate go run omibyte.io/slvguard/cmd/reggen -in slv_guard.yaml -lang go -pkg slvguard -out regs.go
