// Package notify derives expiration reminders from items and hands them to a
// notification collaborator. Scheduling is fire-and-forget: collaborator
// failures are logged, never retried, never surfaced.
package notify

import (
	"context"
	"time"
)

// Request describes a one-shot reminder to be delivered at FireAt.
type Request struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	FireAt time.Time `json:"fireAt"`
}

// Notifier is the external notification collaborator. RequestSchedule
// registers a one-shot reminder; Cancel withdraws reminders by identifier,
// ignoring identifiers it has never seen.
type Notifier interface {
	RequestSchedule(ctx context.Context, req Request) error
	Cancel(ids ...string)
}
