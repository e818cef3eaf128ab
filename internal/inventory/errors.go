package inventory

import "errors"

// Expected outcomes of normal inventory use. Operations wrap these with the
// offending index or code; match them with errors.Is.
var (
	ErrUnknownItemCode = errors.New("unknown item code")
	ErrInvalidIndex    = errors.New("invalid slot index")
	ErrSlotConflict    = errors.New("slot holds a different item")
	ErrInventoryFull   = errors.New("inventory is full")
	ErrStackFull       = errors.New("stack is full")
	ErrInvalidCount    = errors.New("invalid item count")
	ErrInvalidSize     = errors.New("invalid inventory size")
	ErrEmptySlot       = errors.New("slot is empty")
	ErrCorruptSnapshot = errors.New("corrupt inventory snapshot")
)
