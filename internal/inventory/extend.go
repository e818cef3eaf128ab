package inventory

import (
	"fmt"
	"sort"

	"emoji-inventory/internal/item"
)

// MoveItem moves the contents of slot from onto slot to. Matching stacks
// merge up to the item's max stack and any remainder stays behind;
// otherwise the two slots swap contents.
func (inv *Inventory) MoveItem(from, to int) error {
	src, err := inv.slot(from)
	if err != nil {
		return err
	}
	dst, err := inv.slot(to)
	if err != nil {
		return err
	}
	if src.IsEmpty() {
		return fmt.Errorf("%w: slot %d", ErrEmptySlot, from)
	}
	if from == to {
		return nil
	}
	if dst.holds(src.def.Code) {
		n := min(src.count, dst.Room())
		if n == 0 {
			return fmt.Errorf("%w: slot %d", ErrStackFull, to)
		}
		dst.count += n
		src.decrease(n)
		return nil
	}
	src.def, dst.def = dst.def, src.def
	src.count, dst.count = dst.count, src.count
	return nil
}

// SplitItem moves n units from the slot at index into the empty temporary
// slot.
func (inv *Inventory) SplitItem(index, n int) error {
	if index == TempSlot {
		return fmt.Errorf("%w: cannot split the temporary slot", ErrInvalidIndex)
	}
	src, err := inv.slot(index)
	if err != nil {
		return err
	}
	if src.IsEmpty() {
		return fmt.Errorf("%w: slot %d", ErrEmptySlot, index)
	}
	if n < 1 || n > src.count {
		return fmt.Errorf("%w: split %d of %d", ErrInvalidCount, n, src.count)
	}
	if !inv.temp.IsEmpty() {
		return fmt.Errorf("%w: temporary slot holds %q", ErrSlotConflict, inv.temp.def.Code)
	}
	inv.temp.assign(src.def, n)
	src.decrease(n)
	return nil
}

// SortInventory repacks the ordinary slots: every item's units are merged
// into as few stacks as possible, ordered by item code, with empty slots
// last. The temporary slot is left as is.
func (inv *Inventory) SortInventory() {
	defs := make(map[item.Code]item.Definition)
	totals := make(map[item.Code]int)
	for i := range inv.slots {
		s := &inv.slots[i]
		if s.IsEmpty() {
			continue
		}
		defs[s.def.Code] = s.def
		totals[s.def.Code] += s.count
	}
	codes := make([]item.Code, 0, len(defs))
	for c := range defs {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	inv.ClearInventory()
	next := 0
	for _, c := range codes {
		def, left := defs[c], totals[c]
		for left > 0 {
			n := min(left, def.MaxStack)
			inv.slots[next].assign(def, n)
			left -= n
			next++
		}
	}
}
