package item

import "time"

// Prototype records a product's typical name, picture, and shelf life so a
// re-scanned barcode can pre-fill a new item's fields. Its identity is the
// barcode alone; every other field is payload that an upsert overwrites.
type Prototype struct {
	Name     string        `json:"name"`
	Picture  []byte        `json:"picture,omitempty"`
	Interval time.Duration `json:"interval"`
	Barcode  string        `json:"barcode"`
}

// Key returns the prototype's identity. Stores index prototypes by this
// value rather than comparing whole structs.
func (p Prototype) Key() string { return p.Barcode }
