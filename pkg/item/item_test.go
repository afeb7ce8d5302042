package item

import (
	"testing"
	"time"
)

func TestNewNormalizesExpiry(t *testing.T) {
	expires := time.Date(2026, time.September, 15, 17, 45, 0, 0, time.Local)
	it := New("Milk", nil, expires, "")
	want := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.Local)
	if !it.ExpiresAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, it.ExpiresAt)
	}
}

func TestNewMintsUniqueIDs(t *testing.T) {
	a := New("a", nil, time.Now(), "")
	b := New("b", nil, time.Now(), "")
	if a.ID == "" || b.ID == "" {
		t.Fatalf("expected non-empty ids")
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both %q", a.ID)
	}
}

func TestDetails(t *testing.T) {
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.Local)
	it := New("Yogurt", nil, now.AddDate(0, 0, 3), "")
	if got := it.Details(now); got != "Expires in: 3 days" {
		t.Fatalf("unexpected details: %q", got)
	}
}

func TestPrototypeKey(t *testing.T) {
	p := Prototype{Name: "Milk", Interval: 72 * time.Hour, Barcode: "8001234567890"}
	if p.Key() != "8001234567890" {
		t.Fatalf("expected key to be the barcode, got %q", p.Key())
	}
}
