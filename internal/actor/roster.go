package actor

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// ErrAlreadyOnline is returned by Spawn when an actor with the same ID is
// already in the roster.
var ErrAlreadyOnline = errors.New("actor already online")

// Roster tracks the actors currently online. It guards only its own map;
// the actors' inventories stay with their sessions.
type Roster struct {
	mu     sync.Mutex
	actors map[uuid.UUID]*Actor
}

// NewRoster creates an empty Roster.
func NewRoster() *Roster {
	return &Roster{actors: make(map[uuid.UUID]*Actor)}
}

// Spawn adds a to the roster. At most one actor per ID can be online, which
// keeps each inventory under a single writer.
func (r *Roster) Spawn(a *Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.actors[a.id]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyOnline, a.name)
	}
	r.actors[a.id] = a
	return nil
}

// Despawn removes the actor with id. Unknown IDs are ignored.
func (r *Roster) Despawn(id uuid.UUID) {
	r.mu.Lock()
	delete(r.actors, id)
	r.mu.Unlock()
}

func (r *Roster) get(id uuid.UUID) *Actor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.actors[id]
}

// Alive reports whether an actor with id is online.
func (r *Roster) Alive(id uuid.UUID) bool {
	return r.get(id) != nil
}

// Online returns the online actors sorted by name.
func (r *Roster) Online() []*Actor {
	r.mu.Lock()
	out := make([]*Actor, 0, len(r.actors))
	for _, a := range r.actors {
		out = append(out, a)
	}
	r.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
