package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"emoji-inventory/assets"
)

var (
	// ErrInvalidDefinition is returned for a definition with an empty code,
	// an empty name or a max stack below one.
	ErrInvalidDefinition = errors.New("invalid item definition")
	// ErrDuplicateCode is returned when two definitions share a code.
	ErrDuplicateCode = errors.New("duplicate item code")
	// ErrEmptyCatalog is returned for a registry without definitions.
	ErrEmptyCatalog = errors.New("empty item catalog")
)

// Registry is a fixed, validated Catalog. It is safe for concurrent reads.
type Registry struct {
	defs  map[Code]Definition
	order []Code
}

// NewRegistry validates defs and builds a registry preserving their order.
// At least one definition is required.
func NewRegistry(defs ...Definition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyCatalog
	}
	r := &Registry{
		defs:  make(map[Code]Definition, len(defs)),
		order: make([]Code, 0, len(defs)),
	}
	for _, d := range defs {
		if err := validate(d); err != nil {
			return nil, err
		}
		if _, dup := r.defs[d.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, d.Code)
		}
		r.defs[d.Code] = d
		r.order = append(r.order, d.Code)
	}
	return r, nil
}

// MustRegistry is NewRegistry for static tables; it panics on invalid input.
func MustRegistry(defs ...Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns a registry built from the built-in item table.
func Default() *Registry {
	defs := make([]Definition, 0, len(assets.Items))
	for _, it := range assets.Items {
		defs = append(defs, Definition{
			Code:        Code(it.Code),
			Name:        it.Name,
			Glyph:       it.Glyph,
			Description: it.Description,
			MaxStack:    it.MaxStack,
		})
	}
	return MustRegistry(defs...)
}

// LoadJSON reads a JSON array of definitions.
func LoadJSON(r io.Reader) (*Registry, error) {
	var defs []Definition
	if err := json.NewDecoder(r).Decode(&defs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewRegistry(defs...)
}

// LoadFile reads a JSON catalog file from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := LoadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Lookup implements Catalog.
func (r *Registry) Lookup(code Code) (Definition, bool) {
	d, ok := r.defs[code]
	return d, ok
}

// Len returns the number of item types.
func (r *Registry) Len() int { return len(r.order) }

// Codes returns every code in declaration order.
func (r *Registry) Codes() []Code {
	out := make([]Code, len(r.order))
	copy(out, r.order)
	return out
}

// Definitions returns every definition in declaration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, c := range r.order {
		out = append(out, r.defs[c])
	}
	return out
}

func validate(d Definition) error {
	switch {
	case d.Code == "":
		return fmt.Errorf("%w: empty code", ErrInvalidDefinition)
	case d.Name == "":
		return fmt.Errorf("%w: %q has no name", ErrInvalidDefinition, d.Code)
	case d.MaxStack < 1:
		return fmt.Errorf("%w: %q max stack %d", ErrInvalidDefinition, d.Code, d.MaxStack)
	}
	return nil
}
