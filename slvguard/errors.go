package slvguard

import "errors"

var (
	ErrBudgetRange     = errors.New("budget out of range")
	ErrUnknownRegister = errors.New("unknown register")
	ErrUnknownField    = errors.New("unknown field")
	ErrReadOnly        = errors.New("register is read-only")
)
