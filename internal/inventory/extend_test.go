package inventory

import (
	"errors"
	"testing"
)

func TestMoveItemSwap(t *testing.T) {
	inv := newTestInventory(t, 3)
	inv.AddItemAt("a", 0)
	inv.AddItemAt("b", 1)
	inv.AddItemAt("b", 1)

	if err := inv.MoveItem(0, 1); err != nil {
		t.Fatal(err)
	}
	expectSlot(t, inv, 0, "b", 2)
	expectSlot(t, inv, 1, "a", 1)

	if err := inv.MoveItem(1, 2); err != nil {
		t.Fatal(err)
	}
	expectSlot(t, inv, 1, "", 0)
	expectSlot(t, inv, 2, "a", 1)
	checkInvariants(t, inv)
}

func TestMoveItemMerge(t *testing.T) {
	inv := newTestInventory(t, 2)
	inv.AddItemAt("a", 0)
	inv.AddItemAt("a", 0)
	inv.AddItemAt("a", 1)
	inv.AddItemAt("a", 1)

	// 2 + 2 with max 3: one unit moves, one stays behind.
	if err := inv.MoveItem(1, 0); err != nil {
		t.Fatal(err)
	}
	expectSlot(t, inv, 0, "a", 3)
	expectSlot(t, inv, 1, "a", 1)

	if err := inv.MoveItem(1, 0); !errors.Is(err, ErrStackFull) {
		t.Fatalf("expected ErrStackFull, got %v", err)
	}
	checkInvariants(t, inv)
}

func TestMoveItemErrors(t *testing.T) {
	inv := newTestInventory(t, 2)
	if err := inv.MoveItem(0, 1); !errors.Is(err, ErrEmptySlot) {
		t.Errorf("expected ErrEmptySlot, got %v", err)
	}
	inv.AddItem("a")
	if err := inv.MoveItem(0, 5); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}
	if err := inv.MoveItem(0, 0); err != nil {
		t.Errorf("self move: %v", err)
	}
	expectSlot(t, inv, 0, "a", 1)
}

func TestMoveItemFromTemp(t *testing.T) {
	inv := newTestInventory(t, 2)
	inv.AddItemAt("b", TempSlot)
	if err := inv.MoveItem(TempSlot, 1); err != nil {
		t.Fatal(err)
	}
	expectSlot(t, inv, 1, "b", 1)
	if !inv.Temp().IsEmpty() {
		t.Error("temp slot should be empty after move")
	}
}

func TestSplitItem(t *testing.T) {
	inv := newTestInventory(t, 2)
	for i := 0; i < 5; i++ {
		inv.AddItemAt("b", 0)
	}
	if err := inv.SplitItem(0, 2); err != nil {
		t.Fatal(err)
	}
	expectSlot(t, inv, 0, "b", 3)
	expectSlot(t, inv, TempSlot, "b", 2)

	if err := inv.SplitItem(0, 1); !errors.Is(err, ErrSlotConflict) {
		t.Errorf("expected ErrSlotConflict with occupied temp, got %v", err)
	}
	checkInvariants(t, inv)
}

func TestSplitItemWholeStack(t *testing.T) {
	inv := newTestInventory(t, 1)
	inv.AddItem("a")
	if err := inv.SplitItem(0, 1); err != nil {
		t.Fatal(err)
	}
	if !mustSlot(t, inv, 0).IsEmpty() {
		t.Error("source should be empty")
	}
	expectSlot(t, inv, TempSlot, "a", 1)
}

func TestSplitItemErrors(t *testing.T) {
	inv := newTestInventory(t, 2)
	if err := inv.SplitItem(0, 1); !errors.Is(err, ErrEmptySlot) {
		t.Errorf("expected ErrEmptySlot, got %v", err)
	}
	inv.AddItem("a")
	for _, n := range []int{0, 2} {
		if err := inv.SplitItem(0, n); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("split %d: expected ErrInvalidCount, got %v", n, err)
		}
	}
	if err := inv.SplitItem(TempSlot, 1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}
	if err := inv.SplitItem(9, 1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestSortInventory(t *testing.T) {
	inv := newTestInventory(t, 6)
	inv.AddItemAt("b", 0)
	inv.AddItemAt("a", 1)
	inv.AddItemAt("b", 3)
	inv.AddItemAt("b", 3)
	inv.AddItemAt("a", 4)
	inv.AddItemAt("a", 5)
	inv.AddItemAt("a", 5)
	inv.AddItemAt("sword", TempSlot)

	inv.SortInventory()

	// 4×a (max 3) → 3 + 1, 3×b → 3, then empties.
	expectSlot(t, inv, 0, "a", 3)
	expectSlot(t, inv, 1, "a", 1)
	expectSlot(t, inv, 2, "b", 3)
	for i := 3; i < 6; i++ {
		expectSlot(t, inv, i, "", 0)
	}
	expectSlot(t, inv, TempSlot, "sword", 1)
	checkInvariants(t, inv)
}
