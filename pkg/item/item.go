// Package item defines the tracked perishable and its barcode-keyed
// prototype template.
package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

// New mints an item with a fresh identifier. The identifier is assigned once
// at creation and follows the item for its whole lifecycle; reminders are
// keyed on it, so it must never be derived from the item's list position.
func New(name string, picture []byte, expiresAt time.Time, barcode string) *Item {
	return &Item{
		ID:        uuid.NewString(),
		Name:      name,
		Picture:   picture,
		ExpiresAt: timeutil.StartOfDay(expiresAt),
		Barcode:   barcode,
	}
}

// Item is a tracked perishable. ExpiresAt is always start of day in the
// local calendar. Picture bytes are opaque; they are stored and returned,
// never interpreted.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Picture   []byte    `json:"picture,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
	Barcode   string    `json:"barcode,omitempty"`
}

// Details returns the display text for the item's remaining shelf life.
func (i *Item) Details(now time.Time) string {
	return timeutil.DetailText(i.ExpiresAt, now)
}
