package notify

import (
	"context"
	"testing"
	"time"

	"github.com/calderalabs/bestbefore/pkg/item"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

// fakeNotifier records schedule and cancel calls.
type fakeNotifier struct {
	scheduled []Request
	cancelled []string
}

func (f *fakeNotifier) RequestSchedule(_ context.Context, req Request) error {
	f.scheduled = append(f.scheduled, req)
	return nil
}

func (f *fakeNotifier) Cancel(ids ...string) {
	f.cancelled = append(f.cancelled, ids...)
}

func TestScheduleDayBeforeAtEight(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local)
	n := &fakeNotifier{}
	s := &Scheduler{Notifier: n, Clock: timeutil.FixedClock{T: now}}

	it := item.New("Milk", nil, time.Date(2024, time.January, 11, 0, 0, 0, 0, time.Local), "")
	s.Schedule(context.Background(), it)

	if len(n.scheduled) != 1 {
		t.Fatalf("expected one scheduled reminder, got %d", len(n.scheduled))
	}
	req := n.scheduled[0]
	want := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.Local)
	if !req.FireAt.Equal(want) {
		t.Fatalf("expected fire at %v, got %v", want, req.FireAt)
	}
	if req.Title != "Item About to Expire" {
		t.Fatalf("unexpected title %q", req.Title)
	}
	if req.Body != `"Milk" is going to expire tomorrow.` {
		t.Fatalf("unexpected body %q", req.Body)
	}
	if req.ID != Identifier(it) {
		t.Fatalf("expected identifier %q, got %q", Identifier(it), req.ID)
	}
}

func TestSchedulePastFireTimeSkipped(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local)
	n := &fakeNotifier{}
	s := &Scheduler{Notifier: n, Clock: timeutil.FixedClock{T: now}}

	// Expires today: the reminder time was yesterday morning, so no
	// past-due reminder is registered.
	it := item.New("Milk", nil, time.Date(2024, time.January, 10, 12, 0, 0, 0, time.Local), "")
	s.Schedule(context.Background(), it)

	if len(n.scheduled) != 0 {
		t.Fatalf("expected no reminder for an imminent item, got %d", len(n.scheduled))
	}
}

func TestScheduleConfiguredHour(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local)
	n := &fakeNotifier{}
	s := &Scheduler{Notifier: n, Clock: timeutil.FixedClock{T: now}, Hour: 19}

	it := item.New("Milk", nil, time.Date(2024, time.January, 12, 0, 0, 0, 0, time.Local), "")
	s.Schedule(context.Background(), it)

	want := time.Date(2024, time.January, 11, 19, 0, 0, 0, time.Local)
	if len(n.scheduled) != 1 || !n.scheduled[0].FireAt.Equal(want) {
		t.Fatalf("expected fire at %v, got %+v", want, n.scheduled)
	}
}

func TestUnscheduleCancelsByIdentifier(t *testing.T) {
	n := &fakeNotifier{}
	s := &Scheduler{Notifier: n, Clock: timeutil.FixedClock{T: time.Now()}}

	it := item.New("Milk", nil, time.Now().AddDate(0, 0, 5), "")
	s.Unschedule(it)

	if len(n.cancelled) != 1 || n.cancelled[0] != Identifier(it) {
		t.Fatalf("expected cancel of %q, got %v", Identifier(it), n.cancelled)
	}
}

// Reminder identity must survive list reshuffles: identifiers derive from
// the item's creation-time ID, so inserting an earlier-expiring item and
// then deleting it leaves the survivor's reminder keyed and cancellable.
func TestIdentifierStableAcrossReordering(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local)
	n := &fakeNotifier{}
	s := &Scheduler{Notifier: n, Clock: timeutil.FixedClock{T: now}}

	survivor := item.New("Cheese", nil, now.AddDate(0, 0, 5), "")
	s.Schedule(context.Background(), survivor)

	early := item.New("Milk", nil, now.AddDate(0, 0, 1), "")
	s.Schedule(context.Background(), early)
	s.Unschedule(early)

	if len(n.cancelled) != 1 || n.cancelled[0] != Identifier(early) {
		t.Fatalf("expected only the removed item's reminder cancelled, got %v", n.cancelled)
	}
	if Identifier(survivor) == Identifier(early) {
		t.Fatalf("identifiers collided")
	}
	if n.scheduled[0].ID != Identifier(survivor) {
		t.Fatalf("survivor's reminder no longer keyed to it")
	}
}
