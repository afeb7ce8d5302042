package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/calderalabs/bestbefore/pkg/runner/remind"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

func addRemind(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Deliver due expiration reminders",
		Long: "Deliver the reminders whose fire time has passed as desktop " +
			"notifications and list the ones still pending. Meant to run " +
			"periodically, e.g. from cron.",
		Example: `
bestbefore remind
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			r := remind.Remind{
				Queue: e.queue,
				Clock: timeutil.SystemClock{},
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
