package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"emoji-inventory/internal/actor"
	"emoji-inventory/internal/inventory"
	"emoji-inventory/internal/item"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "inventories.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	a, err := actor.New("alice", item.Default(), 4)
	if err != nil {
		t.Fatal(err)
	}
	inv := a.Inventory()
	inv.AddItem("ruby")
	inv.AddItem("ruby")
	inv.AddItemAt("gold_coin", 3)
	inv.AddItemAt("scroll", inventory.TempSlot)

	if err := s.Save(a, inv.Snapshot()); err != nil {
		t.Fatal(err)
	}
	rec, err := s.Load(a.ID())
	if err != nil {
		t.Fatal(err)
	}
	if rec.Name != "alice" || rec.Owner != a.ID() || !rec.SavedAt.Equal(fixed) {
		t.Errorf("unexpected record header %+v", rec)
	}

	restored, err := actor.FromSnapshot("alice", item.Default(), rec.Snapshot)
	if err != nil {
		t.Fatal(err)
	}
	got := restored.Inventory()
	if got.Len() != 4 || got.Count("ruby") != 2 || got.Count("gold_coin") != 1 {
		t.Errorf("restored contents wrong: %+v", got.Snapshot())
	}
	if got.Temp().Code() != "scroll" {
		t.Errorf("temp slot = %q, want scroll", got.Temp().Code())
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load(actor.IDFor("nobody")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveOverwritesAndDelete(t *testing.T) {
	s := openTestStore(t)
	a, _ := actor.New("bob", item.Default(), 2)
	if err := s.Save(a, a.Inventory().Snapshot()); err != nil {
		t.Fatal(err)
	}
	a.Inventory().AddItem("bread")
	if err := s.Save(a, a.Inventory().Snapshot()); err != nil {
		t.Fatal(err)
	}
	all, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].Snapshot.Slots[0].Code != "bread" {
		t.Fatalf("expected a single updated record, got %+v", all)
	}

	if err := s.Delete(a.ID()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(a.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(a.ID()); err != nil {
		t.Errorf("deleting twice: %v", err)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventories.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := actor.New("carol", item.Default(), 3)
	a.Inventory().AddItem("emerald")
	if err := s.Save(a, a.Inventory().Snapshot()); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	rec, err := s.Load(a.ID())
	if err != nil {
		t.Fatal(err)
	}
	if rec.Snapshot.Slots[0] != (inventory.SlotState{Code: "emerald", Count: 1}) {
		t.Errorf("slot 0 = %+v", rec.Snapshot.Slots[0])
	}
}
