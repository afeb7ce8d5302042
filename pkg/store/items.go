package store

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/calderalabs/bestbefore/pkg/item"
)

// Items is the ordered collection of tracked items. It is always sorted
// ascending by expiration date, with ties keeping insertion order; no other
// component ever observes it out of order.
type Items struct {
	archive Archive
	items   []*item.Item
}

// NewItems loads the persisted collection. A missing archive means no data
// yet; a corrupt one is logged and abandoned for an empty collection rather
// than partially recovered.
func NewItems(archive Archive) *Items {
	s := &Items{archive: archive}
	var loaded []*item.Item
	if err := archive.Load(KeyItems, &loaded); err != nil {
		logrus.WithError(err).Warn("store: could not load items, starting empty")
		loaded = nil
	}
	s.items = loaded
	s.sort()
	return s
}

// Add inserts the item, re-sorts, persists, and returns the item's new index
// in the sorted collection.
func (s *Items) Add(it *item.Item) int {
	s.items = append(s.items, it)
	s.sort()
	s.persist()
	for i, cur := range s.items {
		if cur == it {
			return i
		}
	}
	return len(s.items) - 1
}

// Remove deletes the item at index and persists. It returns the removed item
// so the caller can cancel its reminder, or nil when the index is out of
// range.
func (s *Items) Remove(index int) *item.Item {
	if index < 0 || index >= len(s.items) {
		return nil
	}
	removed := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.persist()
	return removed
}

// Reload replaces the in-memory collection with the persisted one. Used by
// read-side refreshes reacting to Watch events; a load failure keeps the
// current collection rather than dropping it.
func (s *Items) Reload() {
	var loaded []*item.Item
	if err := s.archive.Load(KeyItems, &loaded); err != nil {
		logrus.WithError(err).Warn("store: could not reload items")
		return
	}
	s.items = loaded
	s.sort()
}

// List returns the items in sorted order. The slice is a copy; the items are
// shared.
func (s *Items) List() []*item.Item {
	out := make([]*item.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of tracked items.
func (s *Items) Len() int { return len(s.items) }

func (s *Items) sort() {
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].ExpiresAt.Before(s.items[j].ExpiresAt)
	})
}

// persist saves the whole collection. A failed save is a warning, not an
// error: the in-memory collection stays the source of truth for the rest of
// the session.
func (s *Items) persist() {
	if err := s.archive.Save(KeyItems, s.items); err != nil {
		logrus.WithError(err).Warn("store: failed to save items")
		return
	}
	logrus.Debug("store: items saved")
}
