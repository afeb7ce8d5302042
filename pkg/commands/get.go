package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/calderalabs/bestbefore/pkg/commands/options"
	"github.com/calderalabs/bestbefore/pkg/runner/get"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

func addGet(topLevel *cobra.Command) {
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "List tracked items, soonest expiry first",
		Example: `
bestbefore get
bestbefore get --prototypes --reminders
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			g := get.Get{
				Prototypes:     lo.Prototypes,
				Reminders:      lo.Reminders,
				ItemStore:      e.items,
				PrototypeStore: e.prototypes,
				Queue:          e.queue,
				Clock:          timeutil.SystemClock{},
			}
			return g.Do(context.Background())
		},
	}

	options.AddListArgs(cmd, lo)
	topLevel.AddCommand(cmd)
}
