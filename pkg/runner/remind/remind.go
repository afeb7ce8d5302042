package remind

import (
	"context"

	"github.com/gen2brain/beeep"
	"github.com/sirupsen/logrus"

	"github.com/calderalabs/bestbefore/pkg/notify"
	"github.com/calderalabs/bestbefore/pkg/printers"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

// Remind delivers the reminders that have come due and lists the ones still
// pending. Delivery failures are logged and the reminder is not retried.
type Remind struct {
	Queue *notify.Queue
	Clock timeutil.Clock
}

func (r *Remind) Do(ctx context.Context) error {
	due := r.Queue.Due(r.Clock.Now())

	pp := printers.PrettyPrint{}
	if len(due) > 0 {
		for _, req := range due {
			if err := beeep.Notify(req.Title, req.Body, ""); err != nil {
				logrus.WithError(err).WithField("id", req.ID).Warn("remind: failed to deliver notification")
			}
		}
		pp.Title("Delivered")
		pp.Reminders(due...)
	}

	pp.Title("Pending Reminders")
	pp.Reminders(r.Queue.Pending()...)
	return nil
}
