package store

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/calderalabs/bestbefore/pkg/item"
)

// Prototypes is the set of barcode-keyed prototypes. It is a map from
// barcode to prototype, so the at-most-one-per-barcode invariant holds by
// construction instead of leaning on struct equality.
type Prototypes struct {
	archive   Archive
	byBarcode map[string]item.Prototype
}

// NewPrototypes loads the persisted set, treating a missing or corrupt
// archive as empty.
func NewPrototypes(archive Archive) *Prototypes {
	s := &Prototypes{archive: archive}
	loaded := map[string]item.Prototype{}
	if err := archive.Load(KeyPrototypes, &loaded); err != nil {
		logrus.WithError(err).Warn("store: could not load prototypes, starting empty")
		loaded = map[string]item.Prototype{}
	}
	s.byBarcode = loaded
	return s
}

// Upsert stores the prototype under its barcode, replacing any previous
// prototype with the same barcode wholesale.
func (s *Prototypes) Upsert(p item.Prototype) {
	s.byBarcode[p.Key()] = p
	s.persist()
}

// Lookup returns the prototype for an exact barcode match.
func (s *Prototypes) Lookup(barcode string) (item.Prototype, bool) {
	p, ok := s.byBarcode[barcode]
	return p, ok
}

// List returns the prototypes ordered by barcode.
func (s *Prototypes) List() []item.Prototype {
	out := make([]item.Prototype, 0, len(s.byBarcode))
	for _, p := range s.byBarcode {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Barcode < out[j].Barcode })
	return out
}

// Len returns the number of stored prototypes.
func (s *Prototypes) Len() int { return len(s.byBarcode) }

func (s *Prototypes) persist() {
	if err := s.archive.Save(KeyPrototypes, s.byBarcode); err != nil {
		logrus.WithError(err).Warn("store: failed to save prototypes")
		return
	}
	logrus.Debug("store: prototypes saved")
}
