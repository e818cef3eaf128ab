package console

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"emoji-inventory/internal/actor"
	"emoji-inventory/internal/inventory"
	"emoji-inventory/internal/render"
)

// Journal records what one console session did.
type Journal struct {
	Started  time.Time      `json:"started"`
	Ended    time.Time      `json:"ended"`
	Actor    string         `json:"actor"`
	ActorID  string         `json:"actor_id"`
	Actions  map[string]int `json:"actions"`
	Failures map[string]int `json:"failures"`
	Final    string         `json:"final"`
}

func newJournal(a *actor.Actor) Journal {
	return Journal{
		Started:  time.Now().UTC(),
		Actor:    a.Name(),
		ActorID:  a.ID().String(),
		Actions:  make(map[string]int),
		Failures: make(map[string]int),
	}
}

func (j *Journal) record(action Action, err error) {
	if err != nil {
		j.Failures[action.String()]++
		return
	}
	j.Actions[action.String()]++
}

func (j *Journal) finish(inv *inventory.Inventory) {
	j.Ended = time.Now().UTC()
	j.Final = render.Text(inv, render.TextOptions{})
}

// journalFile is the session log under the data directory.
const journalFile = "sessions.jsonl"

// save appends j to the session log as one JSON line.
func (j Journal) save() (err error) {
	path, err := journalPath()
	if err != nil {
		return fmt.Errorf("journal path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	// Encode terminates the record with a newline.
	return json.NewEncoder(f).Encode(j)
}

// journalPath returns $XDG_DATA_HOME/emoji-inventory/sessions.jsonl, with
// XDG_DATA_HOME falling back to ~/.local/share.
func journalPath() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "emoji-inventory", journalFile), nil
}
