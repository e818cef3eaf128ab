// Package store persists inventory snapshots in a bbolt file, one
// msgpack-encoded record per owner.
package store

import (
	"errors"
	"fmt"
	"time"

	"emoji-inventory/internal/inventory"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"
)

var inventoriesBucket = []byte("inventories")

// ErrNotFound is returned by Load when no record exists for an owner.
var ErrNotFound = errors.New("no stored inventory")

// Record is what gets stored for one owner.
type Record struct {
	Owner    uuid.UUID          `msgpack:"owner"`
	Name     string             `msgpack:"name"`
	SavedAt  time.Time          `msgpack:"saved_at"`
	Snapshot inventory.Snapshot `msgpack:"snapshot"`
}

// Store is a bbolt-backed record store. It is safe for concurrent use.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(inventoriesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init %s: %w", path, err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database file.
func (s *Store) Close() error { return s.db.Close() }

// Save writes the snapshot of owner's inventory, replacing any earlier one.
func (s *Store) Save(owner inventory.Owner, snap inventory.Snapshot) error {
	rec := Record{
		Owner:    owner.ID(),
		Name:     owner.Name(),
		SavedAt:  s.now().UTC(),
		Snapshot: snap,
	}
	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("save %s: %w", rec.Name, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		key := rec.Owner
		return tx.Bucket(inventoriesBucket).Put(key[:], data)
	})
}

// Load returns the record stored for id, or ErrNotFound.
func (s *Store) Load(id uuid.UUID) (Record, error) {
	var rec Record
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(inventoriesBucket).Get(id[:])
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return decode(data, &rec)
	})
	return rec, err
}

// Delete removes the record for id. Missing records are ignored.
func (s *Store) Delete(id uuid.UUID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(inventoriesBucket).Delete(id[:])
	})
}

// All returns every stored record in key order.
func (s *Store) All() ([]Record, error) {
	var out []Record
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(inventoriesBucket).ForEach(func(_, v []byte) error {
			var rec Record
			if err := decode(v, &rec); err != nil {
				return err
			}
			out = append(out, rec)
			return nil
		})
	})
	return out, err
}

func decode(data []byte, rec *Record) error {
	if err := msgpack.Unmarshal(data, rec); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}
