package render

import (
	"strings"
	"testing"

	"emoji-inventory/internal/inventory"
	"emoji-inventory/internal/item"

	"github.com/gdamore/tcell/v2"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

var gems = item.MustRegistry(
	item.Definition{Code: "ruby", Name: "Ruby", Glyph: "🔴", MaxStack: 3, Description: "Red."},
	item.Definition{Code: "sapphire", Name: "Sapphire", Glyph: "🔷", MaxStack: 5},
	item.Definition{Code: "emerald", Name: "Emerald", Glyph: "💚", MaxStack: 5},
)

func newGemInventory(t *testing.T) *inventory.Inventory {
	t.Helper()
	inv, err := inventory.New(nil, gems, inventory.DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	inv.AddItem("ruby")
	inv.AddItem("sapphire")
	inv.AddItem("emerald")
	inv.AddItem("emerald")
	return inv
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	ss.SetSize(80, 24)
	return ss
}

// screenRow returns the printable runes of row y.
func screenRow(ss tcell.SimulationScreen, y int) string {
	cells, w, _ := ss.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
		}
	}
	return b.String()
}

// ─── Text ─────────────────────────────────────────────────────────────────────

func TestTextPlain(t *testing.T) {
	inv := newGemInventory(t)
	got := Text(inv, TextOptions{})
	want := "[ Ruby(1/3), Sapphire(1/5), Emerald(2/5), (empty), (empty), (empty) ]"
	if got != want {
		t.Errorf("Text() =\n  %q\nwant\n  %q", got, want)
	}
}

func TestTextGlyphsAndTemp(t *testing.T) {
	inv := newGemInventory(t)
	if err := inv.SplitItem(2, 1); err != nil {
		t.Fatal(err)
	}
	got := Text(inv, TextOptions{Glyphs: true})
	if !strings.HasPrefix(got, "[ 🔴 Ruby(1/3), ") {
		t.Errorf("expected glyph prefix, got %q", got)
	}
	if !strings.HasSuffix(got, " temp: 💚 Emerald(1/5)") {
		t.Errorf("expected temp suffix, got %q", got)
	}
}

func TestTextColor(t *testing.T) {
	inv := newGemInventory(t)
	got := Text(inv, TextOptions{Color: true})
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", got)
	}
	if !strings.Contains(got, "Ruby") || !strings.Contains(got, "(1/3)") {
		t.Errorf("colored output lost content: %q", got)
	}
}

// ─── DrawInventory ────────────────────────────────────────────────────────────

func TestDrawInventoryRows(t *testing.T) {
	ss := newSimScreen(t)
	inv := newGemInventory(t)
	DrawInventory(ss, View{
		Title:  "alice's satchel",
		Inv:    inv,
		Cursor: 0,
		Marked: 2,
		Picker: gems.Definitions(),
		Status: "Added Ruby.",
	})

	if row := screenRow(ss, rowTitle); !strings.HasPrefix(row, "alice's satchel") {
		t.Errorf("title row = %q", row)
	}
	if row := screenRow(ss, rowSlots); !strings.Contains(row, "Ruby") || !strings.Contains(row, "1/3") {
		t.Errorf("slot 0 row = %q", row)
	}
	if row := screenRow(ss, rowSlots+2); !strings.HasPrefix(row, "* [ 2]") || !strings.Contains(row, "2/5") {
		t.Errorf("marked slot 2 row = %q", row)
	}
	if row := screenRow(ss, rowSlots+3); !strings.Contains(row, "[ 3]") || strings.Contains(row, "/") {
		t.Errorf("empty slot 3 row = %q", row)
	}
	tempRow := rowSlots + inv.Len() + 1
	if row := screenRow(ss, tempRow); !strings.Contains(row, "[ T]") {
		t.Errorf("temp row = %q", row)
	}
	if row := screenRow(ss, tempRow+2); !strings.Contains(row, "Add:") || !strings.Contains(row, "Ruby") {
		t.Errorf("picker row = %q", row)
	}
	if row := screenRow(ss, 23); !strings.HasPrefix(row, "Added Ruby.") {
		t.Errorf("status row = %q", row)
	}
}

func TestDrawInventoryCursorStyle(t *testing.T) {
	ss := newSimScreen(t)
	inv := newGemInventory(t)
	DrawInventory(ss, View{Inv: inv, Cursor: 1, Marked: NoMark})

	cells, w, _ := ss.GetContents()
	if got := cells[(rowSlots+1)*w].Style; got != styleCursor {
		t.Error("cursor row should use the cursor style")
	}
	if got := cells[rowSlots*w].Style; got == styleCursor {
		t.Error("non-cursor row should not use the cursor style")
	}
}

func TestDrawInventoryHelp(t *testing.T) {
	ss := newSimScreen(t)
	DrawInventory(ss, View{Inv: newGemInventory(t), Marked: NoMark, ShowHelp: true})
	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(screenRow(ss, y), "split half to temp") {
			found = true
		}
	}
	if !found {
		t.Error("help text not drawn")
	}
}
