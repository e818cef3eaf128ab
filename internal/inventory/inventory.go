// Package inventory implements a fixed-size slot inventory with one extra
// temporary slot. Item metadata comes from an injected item.Catalog.
//
// An Inventory is not safe for concurrent use. Each one belongs to a single
// owner and must be mutated only by that owner's goroutine.
package inventory

import (
	"fmt"

	"emoji-inventory/internal/item"

	"github.com/google/uuid"
)

const (
	// DefaultSize is the number of ordinary slots a new inventory gets.
	DefaultSize = 6
	// MinSize and MaxSize bound the ordinary slot count.
	MinSize = 1
	MaxSize = 256

	// TempSlot addresses the temporary slot used for drag and split
	// operations. It is never a valid ordinary index.
	TempSlot = 999_999_999
)

// Owner is the actor an inventory belongs to. The inventory keeps it for
// attribution only and never controls its lifetime.
type Owner interface {
	ID() uuid.UUID
	Name() string
}

// Inventory is an ordered, fixed-length run of slots plus a temporary slot.
type Inventory struct {
	slots   []Slot
	temp    Slot
	catalog item.Catalog
	owner   Owner
}

// New creates an inventory with size empty ordinary slots indexed 0..size-1.
// owner may be nil for inventories not attributed to anyone.
func New(owner Owner, catalog item.Catalog, size int) (*Inventory, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}
	if catalog == nil {
		return nil, fmt.Errorf("inventory: nil catalog")
	}
	inv := &Inventory{
		slots:   make([]Slot, size),
		temp:    Slot{index: TempSlot},
		catalog: catalog,
		owner:   owner,
	}
	for i := range inv.slots {
		inv.slots[i].index = i
	}
	return inv, nil
}

// Owner returns the inventory's owner.
func (inv *Inventory) Owner() Owner { return inv.owner }

// Len returns the number of ordinary slots.
func (inv *Inventory) Len() int { return len(inv.slots) }

// Slot returns a copy of the slot at index. TempSlot resolves to the
// temporary slot.
func (inv *Inventory) Slot(index int) (Slot, error) {
	s, err := inv.slot(index)
	if err != nil {
		return Slot{}, err
	}
	return *s, nil
}

// Temp returns a copy of the temporary slot.
func (inv *Inventory) Temp() Slot { return inv.temp }

// Slots returns a copy of the ordinary slots in index order.
func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Count returns the total units of code held in ordinary slots.
func (inv *Inventory) Count(code item.Code) int {
	n := 0
	for i := range inv.slots {
		if inv.slots[i].holds(code) {
			n += inv.slots[i].count
		}
	}
	return n
}

// AddItem stores one unit of code. It tops up the lowest-index slot holding
// the same item with room left, otherwise fills the lowest-index empty slot.
// It returns the index of the slot that received the unit.
func (inv *Inventory) AddItem(code item.Code) (int, error) {
	def, err := inv.lookup(code)
	if err != nil {
		return 0, err
	}
	if s := inv.findSameItem(code); s != nil {
		s.increase()
		return s.index, nil
	}
	if s := inv.findEmptySlot(); s != nil {
		s.assign(def, 1)
		return s.index, nil
	}
	return 0, fmt.Errorf("%w: no room for %q", ErrInventoryFull, code)
}

// AddItemAt stores one unit of code in the slot at index. It never
// overwrites or merges into a slot holding a different item.
func (inv *Inventory) AddItemAt(code item.Code, index int) error {
	s, err := inv.slot(index)
	if err != nil {
		return err
	}
	def, err := inv.lookup(code)
	if err != nil {
		return err
	}
	switch {
	case s.IsEmpty():
		s.assign(def, 1)
	case s.def.Code != code:
		return fmt.Errorf("%w: slot %d holds %q, not %q", ErrSlotConflict, index, s.def.Code, code)
	case !s.increase():
		return fmt.Errorf("%w: slot %d already holds %d %q", ErrStackFull, index, s.count, code)
	}
	return nil
}

// RemoveItem takes n units out of the slot at index, emptying it once the
// count reaches zero. Removing from an empty slot does nothing.
func (inv *Inventory) RemoveItem(index, n int) error {
	s, err := inv.slot(index)
	if err != nil {
		return err
	}
	if n < 1 {
		return fmt.Errorf("%w: remove %d", ErrInvalidCount, n)
	}
	if !s.IsEmpty() {
		s.decrease(n)
	}
	return nil
}

// ClearSlot empties the slot at index whatever it holds.
func (inv *Inventory) ClearSlot(index int) error {
	s, err := inv.slot(index)
	if err != nil {
		return err
	}
	s.clear()
	return nil
}

// ClearInventory empties every ordinary slot. The temporary slot is left
// as is.
func (inv *Inventory) ClearInventory() {
	for i := range inv.slots {
		inv.slots[i].clear()
	}
}

// ValidIndex reports whether index addresses an ordinary slot or TempSlot.
func (inv *Inventory) ValidIndex(index int) bool {
	return (index >= 0 && index < len(inv.slots)) || index == TempSlot
}

func (inv *Inventory) slot(index int) (*Slot, error) {
	if !inv.ValidIndex(index) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	if index == TempSlot {
		return &inv.temp, nil
	}
	return &inv.slots[index], nil
}

func (inv *Inventory) lookup(code item.Code) (item.Definition, error) {
	def, ok := inv.catalog.Lookup(code)
	if !ok {
		return item.Definition{}, fmt.Errorf("%w: %q", ErrUnknownItemCode, code)
	}
	return def, nil
}

// findSameItem returns the first ordinary slot holding code with room left.
func (inv *Inventory) findSameItem(code item.Code) *Slot {
	for i := range inv.slots {
		if s := &inv.slots[i]; s.holds(code) && s.count < s.def.MaxStack {
			return s
		}
	}
	return nil
}

// findEmptySlot returns the first empty ordinary slot.
func (inv *Inventory) findEmptySlot() *Slot {
	for i := range inv.slots {
		if inv.slots[i].IsEmpty() {
			return &inv.slots[i]
		}
	}
	return nil
}
