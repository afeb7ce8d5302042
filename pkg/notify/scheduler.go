package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/calderalabs/bestbefore/pkg/item"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

const (
	identifierPrefix = "ExpirationAlarm."
	reminderTitle    = "Item About to Expire"

	// DefaultHour is the local hour a reminder fires the day before expiry.
	DefaultHour = 8
)

// Identifier returns the notification identifier for an item. It is derived
// from the item's creation-time ID, never from its list position, so it
// survives the re-sorting and removals that shift indices around.
func Identifier(it *item.Item) string {
	return identifierPrefix + it.ID
}

// Scheduler computes reminder times and issues schedule/cancel requests.
type Scheduler struct {
	Notifier Notifier
	Clock    timeutil.Clock
	Hour     int
}

func (s *Scheduler) hour() int {
	if s.Hour == 0 {
		return DefaultHour
	}
	return s.Hour
}

func (s *Scheduler) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

// FireAt returns the reminder time for an expiration date: the configured
// local hour on the day before.
func (s *Scheduler) FireAt(expiresAt time.Time) time.Time {
	return timeutil.StartOfDay(expiresAt).AddDate(0, 0, -1).Add(time.Duration(s.hour()) * time.Hour)
}

// Schedule registers a reminder for the item. Items whose reminder time has
// already passed get none; expired or imminent items never produce a
// past-due alert.
func (s *Scheduler) Schedule(ctx context.Context, it *item.Item) {
	fireAt := s.FireAt(it.ExpiresAt)
	if !fireAt.After(s.now()) {
		logrus.WithField("item", it.Name).Debug("notify: reminder time already passed, skipping")
		return
	}

	req := Request{
		ID:     Identifier(it),
		Title:  reminderTitle,
		Body:   fmt.Sprintf("%q is going to expire tomorrow.", it.Name),
		FireAt: fireAt,
	}
	if err := s.Notifier.RequestSchedule(ctx, req); err != nil {
		logrus.WithError(err).WithField("item", it.Name).Warn("notify: failed to schedule reminder")
	}
}

// Unschedule cancels the item's reminder, if one was registered.
func (s *Scheduler) Unschedule(it *item.Item) {
	s.Notifier.Cancel(Identifier(it))
}
