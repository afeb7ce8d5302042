package remove

import (
	"context"
	"fmt"

	"github.com/calderalabs/bestbefore/pkg/notify"
	"github.com/calderalabs/bestbefore/pkg/printers"
	"github.com/calderalabs/bestbefore/pkg/store"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

// Remove deletes the item at a list index and cancels its reminder.
type Remove struct {
	Index int

	Items     *store.Items
	Scheduler *notify.Scheduler
	Clock     timeutil.Clock
}

func (r *Remove) Do(ctx context.Context) error {
	removed := r.Items.Remove(r.Index)
	if removed == nil {
		return fmt.Errorf("remove: no item at index %d", r.Index)
	}
	r.Scheduler.Unschedule(removed)

	pp := printers.PrettyPrint{}
	pp.Title("Tracked Items")
	pp.Items(r.Clock.Now(), r.Items.List()...)
	return nil
}
