// Package render draws inventories, as one line of text or as a tcell panel.
package render

import (
	"fmt"

	"emoji-inventory/internal/inventory"
	"emoji-inventory/internal/item"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// NoMark is View.Marked when no slot is marked for a move.
const NoMark = -1

// nameWidth is the display width reserved for "glyph name" in a slot row.
const nameWidth = 22

// View is everything DrawInventory needs for one frame.
type View struct {
	Title  string
	Inv    *inventory.Inventory
	Cursor int // slot index under the cursor; may be inventory.TempSlot
	Marked int // slot index marked as a move source, or NoMark

	Picker []item.Definition // catalog entries offered for adding
	Picked int               // index into Picker

	Status   string
	ShowHelp bool
}

// Layout rows, relative to the top of the screen.
const (
	rowTitle = 0
	rowRule  = 1
	rowSlots = 2
)

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleRule   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSlot   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleCursor = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleFull   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// HelpLines is the key reference shown when View.ShowHelp is set.
var HelpLines = []string{
	"↑/k ↓/j  move cursor       ←/h →/l  choose item",
	"a  add (first free stack)  p  place at cursor",
	"r  remove one              x  clear slot",
	"X  clear inventory         s  split half to temp",
	"m  mark / move here        o  sort",
	"?  toggle help             q  quit",
}

// DrawInventory clears the screen and draws v.
func DrawInventory(screen tcell.Screen, v View) {
	screen.Clear()
	w, h := screen.Size()

	drawText(screen, 0, rowTitle, v.Title, styleTitle)
	drawHLine(screen, rowRule, w)

	y := rowSlots
	for _, s := range v.Inv.Slots() {
		drawSlotRow(screen, y, fmt.Sprintf("%2d", s.Index()), s, v)
		y++
	}
	y++
	drawSlotRow(screen, y, " T", v.Inv.Temp(), v)
	y += 2

	if len(v.Picker) > 0 {
		def := v.Picker[v.Picked]
		line := fmt.Sprintf("Add: ◀ %s ▶  (stack %d)", def.Label(), def.MaxStack)
		drawText(screen, 0, y, line, styleSlot)
		y++
		drawText(screen, 0, y, runewidth.Truncate(def.Description, w, "…"), styleEmpty)
		y++
	}

	if v.ShowHelp {
		y++
		for _, l := range HelpLines {
			drawText(screen, 0, y, l, styleHelp)
			y++
		}
	}

	if v.Status != "" && h > 0 {
		drawText(screen, 0, h-1, runewidth.Truncate(v.Status, w, "…"), styleStatus)
	}
	screen.Show()
}

func drawSlotRow(screen tcell.Screen, y int, label string, s inventory.Slot, v View) {
	marker := "  "
	if s.Index() == v.Marked {
		marker = "* "
	}
	prefix := marker + "[" + label + "] "

	name, count, style := "·", "", styleEmpty
	if def, ok := s.Item(); ok {
		name = def.Label()
		count = fmt.Sprintf("%d/%d", s.Count(), def.MaxStack)
		style = styleSlot
		if s.IsFull() {
			style = styleFull
		}
	}
	if s.Index() == v.Cursor {
		style = styleCursor
	}
	name = runewidth.FillRight(runewidth.Truncate(name, nameWidth, "…"), nameWidth)
	drawText(screen, 0, y, prefix+name+" "+count, style)
}

func drawHLine(screen tcell.Screen, y, w int) {
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, '─', nil, styleRule)
	}
}

// drawText writes text from column x, advancing by each rune's display
// width. Zero-width runes (variation selectors) ride along as combining
// runes of the preceding cell. It returns the column after the text.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	col := x
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		var comb []rune
		for i+1 < len(runes) && runewidth.RuneWidth(runes[i+1]) == 0 {
			comb = append(comb, runes[i+1])
			i++
		}
		screen.SetContent(col, y, r, comb, style)
		col += max(runewidth.RuneWidth(r), 1)
	}
	return col
}
