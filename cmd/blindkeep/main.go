package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "blindkeep",
		Short:         "A narrated dungeon you play blind",
		Long:          "blindkeep is a dungeon crawler with no screenful of map: a narrator describes what you cannot see, and you speak or type your way through.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(playCmd(), validateCmd())

	if err := root.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
