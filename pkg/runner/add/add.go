package add

import (
	"context"
	"time"

	"github.com/calderalabs/bestbefore/pkg/form"
	"github.com/calderalabs/bestbefore/pkg/notify"
	"github.com/calderalabs/bestbefore/pkg/printers"
	"github.com/calderalabs/bestbefore/pkg/store"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

// Add commits one new item through a form session: barcode pre-fill, date or
// interval entry, then store insert and reminder scheduling.
type Add struct {
	Name    string
	Date    *time.Time
	Days    *int
	Months  *int
	Years   *int
	Barcode string
	Picture []byte

	Items      *store.Items
	Prototypes *store.Prototypes
	Scheduler  *notify.Scheduler
	Clock      timeutil.Clock
}

func (a *Add) Do(ctx context.Context) error {
	s := form.NewSession(a.Prototypes, a.Clock)

	if a.Barcode != "" {
		s.ApplyBarcode(a.Barcode)
	}
	if len(a.Picture) > 0 {
		s.ApplyPicture(a.Picture)
	}
	if a.Name != "" {
		s.SetName(a.Name)
	}

	switch {
	case a.Date != nil:
		s.SetDate(*a.Date)
	case a.Days != nil || a.Months != nil || a.Years != nil:
		s.SetDays(a.Days)
		s.SetMonths(a.Months)
		s.SetYears(a.Years)
	case s.Date() == nil:
		// Empty date field defaults to the floor, tomorrow.
		s.SetDate(s.MinDate())
	}

	it, _, err := s.Commit()
	if err != nil {
		return err
	}

	a.Items.Add(it)
	a.Scheduler.Schedule(ctx, it)

	pp := printers.PrettyPrint{}
	pp.Title("Tracked Items")
	pp.Items(a.Clock.Now(), a.Items.List()...)
	return nil
}
