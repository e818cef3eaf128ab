// Package item holds per-item-type metadata and the catalogs that resolve
// item codes to it.
package item

// Code is the stable identifier of an item type, e.g. "ruby".
type Code string

// Definition is the immutable metadata shared by every unit of an item type.
// Definitions are passed by value; no holder can change another's copy.
type Definition struct {
	Code        Code   `json:"code"`
	Name        string `json:"name"`
	Glyph       string `json:"glyph,omitempty"`
	Description string `json:"description,omitempty"`
	MaxStack    int    `json:"max_stack"`
}

// Label returns the glyph followed by the name, or just the name when the
// definition has no glyph.
func (d Definition) Label() string {
	if d.Glyph == "" {
		return d.Name
	}
	return d.Glyph + " " + d.Name
}

// Catalog resolves item codes to their definitions.
// Lookup must be pure: the same code always yields the same definition.
type Catalog interface {
	Lookup(code Code) (Definition, bool)
}
