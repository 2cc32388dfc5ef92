package slvguard

import (
	"fmt"
	"strings"
)

// Cause is the set of violation flags latched in the IRQ register.
type Cause uint32

const (
	CauseWrite       Cause = 1 << IRQWriteBit
	CauseRead        Cause = 1 << IRQReadBit
	CauseMisIDWrite  Cause = 1 << IRQMisIDWrBit
	CauseMisIDRead   Cause = 1 << IRQMisIDRdBit
	CauseUnwantedTxn Cause = 1 << IRQUnwantedTxnBit

	CauseAll = CauseWrite | CauseRead | CauseMisIDWrite | CauseMisIDRead | CauseUnwantedTxn
)

var causeNames = []struct {
	cause Cause
	name  string
}{
	{CauseWrite, "write"},
	{CauseRead, "read"},
	{CauseMisIDWrite, "mis_id_wr"},
	{CauseMisIDRead, "mis_id_rd"},
	{CauseUnwantedTxn, "unwanted_txn"},
}

// Has reports whether every flag of c is set.
func (c Cause) Has(flags Cause) bool {
	return c&flags == flags
}

func (c Cause) String() string {
	if c&CauseAll == 0 {
		return "none"
	}
	var names []string
	for _, n := range causeNames {
		if c&n.cause != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseCause parses a '|' or ',' separated list of cause names as printed by
// Cause.String.
func ParseCause(s string) (Cause, error) {
	var c Cause
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "none" {
			continue
		}
		found := false
		for _, n := range causeNames {
			if n.name == part {
				c |= n.cause
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownField, part)
		}
	}
	return c, nil
}

// Interrupt is a decoded violation report.
type Interrupt struct {
	Causes Cause
	TxnID  uint16
	Addr   uint32
}

// Pending reports whether any cause flag is set.
func (i Interrupt) Pending() bool {
	return i.Causes&CauseAll != 0
}

// DecodeIRQ splits an IRQ register word into its cause flags and transaction
// ID. Addr is left zero; it lives in IRQ_ADDR.
func DecodeIRQ(word uint32) Interrupt {
	return Interrupt{
		Causes: Cause(word) & CauseAll,
		TxnID:  uint16(IRQTxnIDField.Read(word)),
	}
}

// Word encodes the cause flags and transaction ID as an IRQ register word.
func (i Interrupt) Word() uint32 {
	word := uint32(i.Causes & CauseAll)
	return IRQTxnIDField.Write(word, uint32(i.TxnID))
}

func (i Interrupt) String() string {
	return fmt.Sprintf("causes=%s txn_id=%#x addr=0x%08x", i.Causes, i.TxnID, i.Addr)
}

// ClearWord returns the IRQ register word that acknowledges the cause flags
// of i. The transaction ID field is left zero.
func (i Interrupt) ClearWord() uint32 {
	return uint32(i.Causes & CauseAll)
}
