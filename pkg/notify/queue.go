package notify

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/calderalabs/bestbefore/pkg/store"
)

// Queue is an Archive-backed Notifier. It records pending reminders in the
// same store as the collections so a later `remind` run can deliver the ones
// that have come due.
type Queue struct {
	archive store.Archive
	pending map[string]Request
}

// NewQueue loads the pending reminders, treating a missing or corrupt
// archive as empty.
func NewQueue(archive store.Archive) *Queue {
	q := &Queue{archive: archive}
	loaded := map[string]Request{}
	if err := archive.Load(store.KeyReminders, &loaded); err != nil {
		logrus.WithError(err).Warn("notify: could not load reminders, starting empty")
		loaded = map[string]Request{}
	}
	q.pending = loaded
	return q
}

func (q *Queue) RequestSchedule(_ context.Context, req Request) error {
	q.pending[req.ID] = req
	return q.archive.Save(store.KeyReminders, q.pending)
}

func (q *Queue) Cancel(ids ...string) {
	changed := false
	for _, id := range ids {
		if _, ok := q.pending[id]; ok {
			delete(q.pending, id)
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := q.archive.Save(store.KeyReminders, q.pending); err != nil {
		logrus.WithError(err).Warn("notify: failed to save reminders")
	}
}

// Pending returns the registered reminders ordered by fire time.
func (q *Queue) Pending() []Request {
	out := make([]Request, 0, len(q.pending))
	for _, req := range q.pending {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FireAt.Before(out[j].FireAt) })
	return out
}

// Due removes and returns the reminders whose fire time is at or before now,
// ordered by fire time.
func (q *Queue) Due(now time.Time) []Request {
	due := make([]Request, 0)
	for id, req := range q.pending {
		if !req.FireAt.After(now) {
			due = append(due, req)
			delete(q.pending, id)
		}
	}
	if len(due) == 0 {
		return due
	}
	sort.Slice(due, func(i, j int) bool { return due[i].FireAt.Before(due[j].FireAt) })
	if err := q.archive.Save(store.KeyReminders, q.pending); err != nil {
		logrus.WithError(err).Warn("notify: failed to save reminders")
	}
	return due
}
