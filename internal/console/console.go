// Package console runs an interactive inventory screen for one actor on a
// tcell screen. Every inventory failure is shown on the status line and
// logged; none of them ends the session.
package console

import (
	"errors"
	"fmt"
	"log/slog"

	"emoji-inventory/internal/actor"
	"emoji-inventory/internal/inventory"
	"emoji-inventory/internal/item"
	"emoji-inventory/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Console drives one actor's inventory from keyboard events. It must be
// used from a single goroutine, the one that owns the actor.
type Console struct {
	actor  *actor.Actor
	screen tcell.Screen
	picker []item.Definition
	logger *slog.Logger

	pos    int // cursor position: 0..Len()-1 are ordinary slots, Len() is the temp slot
	marked int
	picked int
	status string
	help   bool

	journal Journal
}

// ErrNoItems is returned by New when the picker offers nothing to add.
var ErrNoItems = errors.New("console: no items to pick from")

// New creates a console for a. picker lists the items offered for adding.
func New(a *actor.Actor, screen tcell.Screen, picker []item.Definition, logger *slog.Logger) (*Console, error) {
	if len(picker) == 0 {
		return nil, ErrNoItems
	}
	return &Console{
		actor:   a,
		screen:  screen,
		picker:  picker,
		logger:  logger.With("actor", a.Name()),
		marked:  render.NoMark,
		status:  "Press ? for help.",
		journal: newJournal(a),
	}, nil
}

// Run draws the console and processes events until the user quits or the
// screen is finalized. The session journal is saved on return.
func (c *Console) Run() {
	defer func() {
		c.journal.finish(c.actor.Inventory())
		if err := c.journal.save(); err != nil {
			c.logger.Warn("journal not saved", "error", err)
		}
	}()
	for {
		c.Draw()
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		if c.Handle(ev) {
			return
		}
	}
}

// Draw renders the current state.
func (c *Console) Draw() {
	render.DrawInventory(c.screen, render.View{
		Title:    fmt.Sprintf("🎒 %s's inventory", c.actor.Name()),
		Inv:      c.actor.Inventory(),
		Cursor:   c.cursor(),
		Marked:   c.marked,
		Picker:   c.picker,
		Picked:   c.picked,
		Status:   c.status,
		ShowHelp: c.help,
	})
}

// Status returns the current status line.
func (c *Console) Status() string { return c.status }

// Journal returns the session's action counters so far.
func (c *Console) Journal() Journal { return c.journal }

// Handle applies one event. It reports true when the console should close.
func (c *Console) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		c.screen.Sync()
	case *tcell.EventKey:
		return c.apply(keyToAction(ev))
	}
	return false
}

func (c *Console) apply(action Action) bool {
	if action == ActionNone {
		return false
	}
	inv := c.actor.Inventory()
	pick := c.picker[c.picked]
	var err error

	switch action {
	case ActionCursorUp:
		c.pos = (c.pos + inv.Len()) % (inv.Len() + 1)
		return false
	case ActionCursorDown:
		c.pos = (c.pos + 1) % (inv.Len() + 1)
		return false
	case ActionPickPrev:
		c.picked = (c.picked + len(c.picker) - 1) % len(c.picker)
		return false
	case ActionPickNext:
		c.picked = (c.picked + 1) % len(c.picker)
		return false
	case ActionHelp:
		c.help = !c.help
		return false
	case ActionQuit:
		if c.marked != render.NoMark {
			c.marked = render.NoMark
			c.status = "Move cancelled."
			return false
		}
		return true

	case ActionAdd:
		var idx int
		if idx, err = inv.AddItem(pick.Code); err == nil {
			c.status = fmt.Sprintf("Added %s to %s.", pick.Name, slotName(idx))
		}
	case ActionPlace:
		if err = inv.AddItemAt(pick.Code, c.cursor()); err == nil {
			c.status = fmt.Sprintf("Placed %s in %s.", pick.Name, slotName(c.cursor()))
		}
	case ActionRemove:
		if err = inv.RemoveItem(c.cursor(), 1); err == nil {
			c.status = fmt.Sprintf("Removed one from %s.", slotName(c.cursor()))
		}
	case ActionClearSlot:
		if err = inv.ClearSlot(c.cursor()); err == nil {
			c.status = fmt.Sprintf("Cleared %s.", slotName(c.cursor()))
		}
	case ActionClearAll:
		inv.ClearInventory()
		c.status = "Inventory cleared."
		c.logger.Info("inventory cleared")
	case ActionSplit:
		err = c.split(inv)
	case ActionMove:
		err = c.move(inv)
	case ActionSort:
		inv.SortInventory()
		c.status = "Inventory sorted."
	}

	c.journal.record(action, err)
	if err != nil {
		c.status = describe(err)
		c.logger.Debug("inventory action failed", "action", action.String(), "error", err)
	}
	return false
}

// split moves half of the cursor stack, rounded down but at least one,
// into the temp slot.
func (c *Console) split(inv *inventory.Inventory) error {
	s, err := inv.Slot(c.cursor())
	if err != nil {
		return err
	}
	if err := inv.SplitItem(c.cursor(), max(s.Count()/2, 1)); err != nil {
		return err
	}
	c.status = fmt.Sprintf("Split %d into the temp slot.", inv.Temp().Count())
	return nil
}

// move marks the cursor slot as the source on the first call and moves it
// onto the cursor slot on the second.
func (c *Console) move(inv *inventory.Inventory) error {
	if c.marked == render.NoMark {
		s, err := inv.Slot(c.cursor())
		if err != nil {
			return err
		}
		if s.IsEmpty() {
			return fmt.Errorf("%w: %s", inventory.ErrEmptySlot, slotName(c.cursor()))
		}
		c.marked = c.cursor()
		c.status = fmt.Sprintf("Moving %s: pick a target and press m.", slotName(c.marked))
		return nil
	}
	from := c.marked
	c.marked = render.NoMark
	if err := inv.MoveItem(from, c.cursor()); err != nil {
		return err
	}
	c.status = fmt.Sprintf("Moved %s to %s.", slotName(from), slotName(c.cursor()))
	return nil
}

func (c *Console) cursor() int {
	if c.pos >= c.actor.Inventory().Len() {
		return inventory.TempSlot
	}
	return c.pos
}

func slotName(index int) string {
	if index == inventory.TempSlot {
		return "the temp slot"
	}
	return fmt.Sprintf("slot %d", index)
}

// describe turns an inventory error into a status line.
func describe(err error) string {
	switch {
	case errors.Is(err, inventory.ErrInventoryFull):
		return "Inventory full."
	case errors.Is(err, inventory.ErrSlotConflict):
		return "That slot holds a different item."
	case errors.Is(err, inventory.ErrStackFull):
		return "That stack is full."
	case errors.Is(err, inventory.ErrEmptySlot):
		return "Nothing there."
	case errors.Is(err, inventory.ErrUnknownItemCode):
		return "Unknown item."
	}
	return "Can't do that: " + err.Error()
}
