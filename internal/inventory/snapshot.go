package inventory

import (
	"fmt"

	"emoji-inventory/internal/item"
)

// SlotState is the persisted form of one slot. An empty slot has an empty
// code and a zero count.
type SlotState struct {
	Code  item.Code `msgpack:"c,omitempty" json:"code,omitempty"`
	Count int       `msgpack:"n,omitempty" json:"count,omitempty"`
}

// Snapshot is the persisted form of an inventory. Only item codes are
// stored; definitions are resolved again from the catalog on Restore.
type Snapshot struct {
	Slots []SlotState `msgpack:"slots" json:"slots"`
	Temp  SlotState   `msgpack:"temp" json:"temp"`
}

// Snapshot captures the current slot contents.
func (inv *Inventory) Snapshot() Snapshot {
	snap := Snapshot{
		Slots: make([]SlotState, len(inv.slots)),
		Temp:  stateOf(inv.temp),
	}
	for i, s := range inv.slots {
		snap.Slots[i] = stateOf(s)
	}
	return snap
}

// Restore rebuilds an inventory from snap. Every slot is checked against
// the catalog so a restored inventory upholds the same invariants as one
// built through AddItem.
func Restore(owner Owner, catalog item.Catalog, snap Snapshot) (*Inventory, error) {
	inv, err := New(owner, catalog, len(snap.Slots))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	for i, st := range snap.Slots {
		if err := inv.restoreSlot(&inv.slots[i], st); err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
	}
	if err := inv.restoreSlot(&inv.temp, snap.Temp); err != nil {
		return nil, fmt.Errorf("temporary slot: %w", err)
	}
	return inv, nil
}

func (inv *Inventory) restoreSlot(s *Slot, st SlotState) error {
	if st.Code == "" && st.Count == 0 {
		return nil
	}
	if st.Code == "" || st.Count < 1 {
		return fmt.Errorf("%w: code %q count %d", ErrCorruptSnapshot, st.Code, st.Count)
	}
	def, err := inv.lookup(st.Code)
	if err != nil {
		return err
	}
	if st.Count > def.MaxStack {
		return fmt.Errorf("%w: %d %q exceeds max stack %d", ErrCorruptSnapshot, st.Count, st.Code, def.MaxStack)
	}
	s.assign(def, st.Count)
	return nil
}

func stateOf(s Slot) SlotState {
	if s.IsEmpty() {
		return SlotState{}
	}
	return SlotState{Code: s.def.Code, Count: s.count}
}
