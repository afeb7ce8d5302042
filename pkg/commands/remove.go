package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calderalabs/bestbefore/pkg/notify"
	"github.com/calderalabs/bestbefore/pkg/runner/remove"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm", "delete"},
		Short:   "Stop tracking the item at a list index",
		Example: `
bestbefore remove 0
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			e, err := loadEnv()
			if err != nil {
				return err
			}
			clock := timeutil.SystemClock{}
			r := remove.Remove{
				Index: index,
				Items: e.items,
				Scheduler: &notify.Scheduler{
					Notifier: e.queue,
					Clock:    clock,
					Hour:     e.cfg.ReminderHour(),
				},
				Clock: clock,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
