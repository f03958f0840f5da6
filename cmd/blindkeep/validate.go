package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewhitmore/blindkeep/pkg/content"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [content-dir]",
		Short: "Validate a content pack without playing it",
		Long:  "Loads rooms, items, and bosses from a content directory (or the built-in pack) and runs every structural check: graph connectivity, boss bindings, lock keys, and the sentinel weapon.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pack *content.Pack
			var err error
			if len(args) == 1 {
				pack, err = content.Load(args[0])
			} else {
				pack, err = content.Default()
			}
			if err != nil {
				return err
			}

			graph, items, bosses, err := pack.Build()
			if err != nil {
				return err
			}

			fmt.Printf("Content pack %q is valid.\n", pack.Theme)
			fmt.Printf("  rooms:  %d (%d boss)\n", graph.Len(), len(graph.BossRoomIDs()))
			fmt.Printf("  items:  %d (%d scattered)\n", len(items.All()), len(items.ScatterIDs()))
			fmt.Printf("  bosses: %d\n", len(bosses.All()))
			return nil
		},
	}
}
