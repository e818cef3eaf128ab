package inventory

import "emoji-inventory/internal/item"

// Slot is one storage cell: at most one item type and a count.
// Callers only ever see copies; mutation goes through the owning Inventory.
type Slot struct {
	index int
	def   item.Definition
	count int
}

// Index is the slot's position, fixed at creation. The temporary slot
// reports TempSlot.
func (s Slot) Index() int { return s.index }

// IsEmpty reports whether the slot holds nothing.
func (s Slot) IsEmpty() bool { return s.count == 0 }

// Count is the number of units held.
func (s Slot) Count() int { return s.count }

// Item returns the held item's definition; ok is false for an empty slot.
func (s Slot) Item() (def item.Definition, ok bool) {
	if s.IsEmpty() {
		return item.Definition{}, false
	}
	return s.def, true
}

// Code returns the held item's code, or "" when empty.
func (s Slot) Code() item.Code { return s.def.Code }

// IsFull reports whether the slot is occupied and at its stack limit.
func (s Slot) IsFull() bool { return !s.IsEmpty() && s.count >= s.def.MaxStack }

// Room is how many more units of the held item fit. An empty slot reports 0
// because its capacity depends on what is put in it.
func (s Slot) Room() int {
	if s.IsEmpty() {
		return 0
	}
	return s.def.MaxStack - s.count
}

func (s *Slot) holds(code item.Code) bool { return !s.IsEmpty() && s.def.Code == code }

// assign replaces the contents. count must be within 1..def.MaxStack.
func (s *Slot) assign(def item.Definition, count int) {
	s.def = def
	s.count = count
}

// increase adds one unit; it refuses when the stack is full.
func (s *Slot) increase() bool {
	if s.IsEmpty() || s.count >= s.def.MaxStack {
		return false
	}
	s.count++
	return true
}

// decrease removes n units, clearing the slot once nothing is left.
func (s *Slot) decrease(n int) {
	s.count -= n
	if s.count <= 0 {
		s.clear()
	}
}

func (s *Slot) clear() {
	s.def = item.Definition{}
	s.count = 0
}
