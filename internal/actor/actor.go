// Package actor holds the owners of inventories and the roster of actors
// currently online.
package actor

import (
	"emoji-inventory/internal/inventory"
	"emoji-inventory/internal/item"

	"github.com/google/uuid"
)

// Namespace seeds actor IDs. An actor's ID is derived from its name, so the
// same login always maps to the same stored inventory.
var Namespace = uuid.MustParse("6f1c2a8e-3b7d-4c59-9e0a-5d2f8b4c7a13")

// Actor owns exactly one inventory.
type Actor struct {
	id   uuid.UUID
	name string
	inv  *inventory.Inventory
}

// IDFor returns the ID an actor named name gets.
func IDFor(name string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(name))
}

// New creates an actor with an empty inventory of size slots.
func New(name string, catalog item.Catalog, size int) (*Actor, error) {
	a := &Actor{id: IDFor(name), name: name}
	inv, err := inventory.New(a, catalog, size)
	if err != nil {
		return nil, err
	}
	a.inv = inv
	return a, nil
}

// FromSnapshot recreates an actor whose inventory was persisted earlier.
func FromSnapshot(name string, catalog item.Catalog, snap inventory.Snapshot) (*Actor, error) {
	a := &Actor{id: IDFor(name), name: name}
	inv, err := inventory.Restore(a, catalog, snap)
	if err != nil {
		return nil, err
	}
	a.inv = inv
	return a, nil
}

// ID implements inventory.Owner.
func (a *Actor) ID() uuid.UUID { return a.id }

// Name implements inventory.Owner.
func (a *Actor) Name() string { return a.name }

// Inventory returns the actor's inventory. Only the goroutine driving this
// actor may mutate it.
func (a *Actor) Inventory() *inventory.Inventory { return a.inv }
