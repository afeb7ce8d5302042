package get

import (
	"context"

	"github.com/calderalabs/bestbefore/pkg/notify"
	"github.com/calderalabs/bestbefore/pkg/printers"
	"github.com/calderalabs/bestbefore/pkg/store"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

// Get lists tracked items, and optionally the prototype set and pending
// reminders.
type Get struct {
	Prototypes bool
	Reminders  bool

	ItemStore      *store.Items
	PrototypeStore *store.Prototypes
	Queue          *notify.Queue
	Clock          timeutil.Clock
}

func (g *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	pp.Title("Tracked Items")
	pp.Items(g.Clock.Now(), g.ItemStore.List()...)

	if g.Prototypes {
		pp.Title("Known Products")
		pp.Prototypes(g.PrototypeStore.List()...)
	}

	if g.Reminders {
		pp.Title("Pending Reminders")
		pp.Reminders(g.Queue.Pending()...)
	}

	return nil
}
