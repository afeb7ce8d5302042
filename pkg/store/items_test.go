package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/calderalabs/bestbefore/pkg/item"
)

type testConfig struct {
	path string
}

func (c testConfig) BasePath() string  { return c.path }
func (c testConfig) ReminderHour() int { return 8 }

func testArchive(t *testing.T) *DiskArchive {
	t.Helper()
	a, err := OpenArchive(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	return a
}

func day(offset int) time.Time {
	return time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, offset)
}

func TestAddKeepsSortedOrder(t *testing.T) {
	s := NewItems(testArchive(t))

	s.Add(item.New("five", nil, day(5), ""))
	s.Add(item.New("one", nil, day(1), ""))
	s.Add(item.New("three", nil, day(3), ""))

	got := s.List()
	want := []string{"one", "three", "five"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("expected order %v, got %q at %d", want, got[i].Name, i)
		}
	}
}

func TestAddTieKeepsInsertionOrder(t *testing.T) {
	s := NewItems(testArchive(t))

	s.Add(item.New("five", nil, day(5), ""))
	s.Add(item.New("one", nil, day(1), ""))
	s.Add(item.New("three", nil, day(3), ""))
	index := s.Add(item.New("three-later", nil, day(3), ""))

	if index != 2 {
		t.Fatalf("expected tie to insert at index 2, got %d", index)
	}
	got := s.List()
	if got[1].Name != "three" || got[2].Name != "three-later" {
		t.Fatalf("expected earlier tie first, got %q then %q", got[1].Name, got[2].Name)
	}
}

func TestAddReturnsNewIndex(t *testing.T) {
	s := NewItems(testArchive(t))

	if index := s.Add(item.New("five", nil, day(5), "")); index != 0 {
		t.Fatalf("expected index 0, got %d", index)
	}
	if index := s.Add(item.New("one", nil, day(1), "")); index != 0 {
		t.Fatalf("expected insertion before, index 0, got %d", index)
	}
	if index := s.Add(item.New("three", nil, day(3), "")); index != 1 {
		t.Fatalf("expected index 1, got %d", index)
	}
}

func TestRemoveKeepsRemainingOrder(t *testing.T) {
	s := NewItems(testArchive(t))
	s.Add(item.New("one", nil, day(1), ""))
	s.Add(item.New("three", nil, day(3), ""))
	s.Add(item.New("five", nil, day(5), ""))

	removed := s.Remove(0)
	if removed == nil || removed.Name != "one" {
		t.Fatalf("expected to remove 'one', got %+v", removed)
	}

	got := s.List()
	if len(got) != 2 || got[0].Name != "three" || got[1].Name != "five" {
		t.Fatalf("unexpected remaining items: %+v", got)
	}
	if !got[0].ExpiresAt.Equal(day(3)) || !got[1].ExpiresAt.Equal(day(5)) {
		t.Fatalf("expiry dates changed on remove")
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	s := NewItems(testArchive(t))
	s.Add(item.New("one", nil, day(1), ""))
	if removed := s.Remove(5); removed != nil {
		t.Fatalf("expected nil for out-of-range index, got %+v", removed)
	}
	if removed := s.Remove(-1); removed != nil {
		t.Fatalf("expected nil for negative index, got %+v", removed)
	}
}

func TestItemsPersistAcrossLoads(t *testing.T) {
	archive := testArchive(t)

	s := NewItems(archive)
	s.Add(item.New("five", nil, day(5), ""))
	s.Add(item.New("one", nil, day(1), "8001234567890"))

	reloaded := NewItems(archive)
	got := reloaded.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 items after reload, got %d", len(got))
	}
	if got[0].Name != "one" || got[1].Name != "five" {
		t.Fatalf("unexpected order after reload: %q, %q", got[0].Name, got[1].Name)
	}
	if got[0].Barcode != "8001234567890" {
		t.Fatalf("barcode not persisted: %q", got[0].Barcode)
	}
}

func TestLoadAbsentIsEmpty(t *testing.T) {
	s := NewItems(testArchive(t))
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d items", s.Len())
	}
}

func TestLoadCorruptIsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, KeyItems), []byte("not json"), 0o644); err != nil {
		t.Fatalf("writing corrupt archive: %v", err)
	}
	a, err := OpenArchive(testConfig{path: dir})
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}

	s := NewItems(a)
	if s.Len() != 0 {
		t.Fatalf("expected corrupt archive to load as empty, got %d items", s.Len())
	}
}

// failingArchive loads fine but refuses every save.
type failingArchive struct{}

func (failingArchive) Save(string, any) error { return errors.New("disk full") }
func (failingArchive) Load(string, any) error { return nil }

func TestSaveFailureDoesNotBlockMutation(t *testing.T) {
	s := NewItems(failingArchive{})
	index := s.Add(item.New("one", nil, day(1), ""))
	if index != 0 {
		t.Fatalf("expected index 0, got %d", index)
	}
	if s.Len() != 1 {
		t.Fatalf("expected in-memory mutation to stand despite save failure, got %d items", s.Len())
	}
}
