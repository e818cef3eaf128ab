package console

import "github.com/gdamore/tcell/v2"

// Action is one console command.
type Action uint8

const (
	ActionNone Action = iota
	ActionCursorUp
	ActionCursorDown
	ActionPickPrev
	ActionPickNext
	ActionAdd
	ActionPlace
	ActionRemove
	ActionClearSlot
	ActionClearAll
	ActionSplit
	ActionMove
	ActionSort
	ActionHelp
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:       "none",
	ActionCursorUp:   "cursor_up",
	ActionCursorDown: "cursor_down",
	ActionPickPrev:   "pick_prev",
	ActionPickNext:   "pick_next",
	ActionAdd:        "add",
	ActionPlace:      "place",
	ActionRemove:     "remove",
	ActionClearSlot:  "clear_slot",
	ActionClearAll:   "clear_inventory",
	ActionSplit:      "split",
	ActionMove:       "move",
	ActionSort:       "sort",
	ActionHelp:       "help",
	ActionQuit:       "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// keyToAction maps a tcell key event to a console action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionCursorUp
	case tcell.KeyDown:
		return ActionCursorDown
	case tcell.KeyLeft:
		return ActionPickPrev
	case tcell.KeyRight:
		return ActionPickNext
	case tcell.KeyEnter:
		return ActionPlace
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionClearSlot
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}
	switch ev.Rune() {
	case 'k':
		return ActionCursorUp
	case 'j':
		return ActionCursorDown
	case 'h':
		return ActionPickPrev
	case 'l':
		return ActionPickNext
	case 'a':
		return ActionAdd
	case 'p':
		return ActionPlace
	case 'r':
		return ActionRemove
	case 'x':
		return ActionClearSlot
	case 'X':
		return ActionClearAll
	case 's', 'S':
		return ActionSplit
	case 'm', 'M':
		return ActionMove
	case 'o', 'O':
		return ActionSort
	case '?':
		return ActionHelp
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
