package render

import (
	"fmt"
	"strings"

	"emoji-inventory/internal/inventory"

	"github.com/mgutz/ansi"
)

// TextOptions controls Text output.
type TextOptions struct {
	Glyphs bool // prefix item names with their glyph
	Color  bool // color counts with ANSI escapes: green when full, yellow otherwise
}

// emptyLabel marks an empty slot in text output.
const emptyLabel = "(empty)"

// Text prints an inventory on one line, e.g.
//
//	[ Ruby(1/3), Sapphire(1/5), Emerald(2/5), (empty), (empty), (empty) ]
//
// An occupied temporary slot is appended as "temp: Ruby(1/3)".
func Text(inv *inventory.Inventory, opts TextOptions) string {
	parts := make([]string, 0, inv.Len())
	for _, s := range inv.Slots() {
		parts = append(parts, slotText(s, opts))
	}
	out := "[ " + strings.Join(parts, ", ") + " ]"
	if t := inv.Temp(); !t.IsEmpty() {
		out += " temp: " + slotText(t, opts)
	}
	return out
}

func slotText(s inventory.Slot, opts TextOptions) string {
	def, ok := s.Item()
	if !ok {
		if opts.Color {
			return ansi.Color(emptyLabel, "black+h")
		}
		return emptyLabel
	}
	name := def.Name
	if opts.Glyphs {
		name = def.Label()
	}
	count := fmt.Sprintf("(%d/%d)", s.Count(), def.MaxStack)
	if opts.Color {
		style := "yellow"
		if s.IsFull() {
			style = "green+b"
		}
		count = ansi.Color(count, style)
	}
	return name + count
}
