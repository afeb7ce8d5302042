package store

import (
	"testing"
	"time"

	"github.com/calderalabs/bestbefore/pkg/item"
)

func TestUpsertReplacesByBarcode(t *testing.T) {
	s := NewPrototypes(testArchive(t))

	s.Upsert(item.Prototype{Name: "Milk", Interval: 72 * time.Hour, Barcode: "123"})
	s.Upsert(item.Prototype{Name: "Whole Milk", Interval: 96 * time.Hour, Barcode: "123"})

	if s.Len() != 1 {
		t.Fatalf("expected exactly one prototype, got %d", s.Len())
	}
	p, ok := s.Lookup("123")
	if !ok {
		t.Fatalf("expected lookup hit")
	}
	if p.Name != "Whole Milk" || p.Interval != 96*time.Hour {
		t.Fatalf("expected second upsert to win, got %+v", p)
	}
}

func TestLookupMiss(t *testing.T) {
	s := NewPrototypes(testArchive(t))
	if _, ok := s.Lookup("nope"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestPrototypesPersistAcrossLoads(t *testing.T) {
	archive := testArchive(t)

	s := NewPrototypes(archive)
	s.Upsert(item.Prototype{Name: "Milk", Interval: 72 * time.Hour, Barcode: "123"})
	s.Upsert(item.Prototype{Name: "Eggs", Interval: 240 * time.Hour, Barcode: "456"})

	reloaded := NewPrototypes(archive)
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 prototypes after reload, got %d", reloaded.Len())
	}
	p, ok := reloaded.Lookup("123")
	if !ok || p.Name != "Milk" {
		t.Fatalf("unexpected prototype after reload: %+v", p)
	}

	list := reloaded.List()
	if len(list) != 2 || list[0].Barcode != "123" || list[1].Barcode != "456" {
		t.Fatalf("expected list ordered by barcode, got %+v", list)
	}
}

func TestUpsertSaveFailureDoesNotBlockMutation(t *testing.T) {
	s := NewPrototypes(failingArchive{})
	s.Upsert(item.Prototype{Name: "Milk", Barcode: "123"})
	if _, ok := s.Lookup("123"); !ok {
		t.Fatalf("expected in-memory upsert to stand despite save failure")
	}
}
