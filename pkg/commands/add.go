package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/calderalabs/bestbefore/pkg/commands/options"
	"github.com/calderalabs/bestbefore/pkg/imaging"
	"github.com/calderalabs/bestbefore/pkg/notify"
	"github.com/calderalabs/bestbefore/pkg/runner/add"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Track a new item",
		Example: `
bestbefore add -n "Greek Yogurt" --days 12
bestbefore add -n Milk --date 2026-09-15 --photo milk.jpg
bestbefore add -b 8001234567890
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			date, err := ao.GetDate()
			if err != nil {
				return err
			}
			days, months, years := ao.GetInterval(cmd)

			var picture []byte
			if photo, err := ao.GetPhoto(); err != nil {
				return err
			} else if photo != nil {
				if picture, err = imaging.Process(photo); err != nil {
					return err
				}
			}

			clock := timeutil.SystemClock{}
			a := add.Add{
				Name:       ao.Name,
				Date:       date,
				Days:       days,
				Months:     months,
				Years:      years,
				Barcode:    ao.Barcode,
				Picture:    picture,
				Items:      e.items,
				Prototypes: e.prototypes,
				Scheduler: &notify.Scheduler{
					Notifier: e.queue,
					Clock:    clock,
					Hour:     e.cfg.ReminderHour(),
				},
				Clock: clock,
			}
			return a.Do(context.Background())
		},
	}

	options.AddItemArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}
