package commands

import (
	"github.com/spf13/cobra"

	"github.com/calderalabs/bestbefore/pkg/notify"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
	"github.com/calderalabs/bestbefore/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui"},
		Short:   "Browse and add items interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			clock := timeutil.SystemClock{}
			scheduler := &notify.Scheduler{
				Notifier: e.queue,
				Clock:    clock,
				Hour:     e.cfg.ReminderHour(),
			}
			return tui.Run(e.archive, e.items, e.prototypes, scheduler, clock)
		},
	}

	topLevel.AddCommand(cmd)
}
