// Package commands wires the bestbefore command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/calderalabs/bestbefore/pkg/notify"
	"github.com/calderalabs/bestbefore/pkg/store"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bestbefore",
		Short: "Track perishable items and when they expire.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addRemove(topLevel)
	addRemind(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// env bundles the loaded config, archive, and collections a command needs.
type env struct {
	cfg        store.Config
	archive    *store.DiskArchive
	items      *store.Items
	prototypes *store.Prototypes
	queue      *notify.Queue
}

func loadEnv() (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	archive, err := store.OpenArchive(cfg)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:        cfg,
		archive:    archive,
		items:      store.NewItems(archive),
		prototypes: store.NewPrototypes(archive),
		queue:      notify.NewQueue(archive),
	}, nil
}
