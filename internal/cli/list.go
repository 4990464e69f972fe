package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webskel-labs/webskel/internal/layout"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range layout.Names() {
			l, err := layout.Get(name)
			if err != nil {
				return err
			}
			files := 0
			for _, entry := range l.Tree {
				files += len(entry.Files)
			}
			fmt.Printf("%-10s %s (%d dirs, %d files)\n", name, l.Description, len(l.Tree), files)
		}
		return nil
	},
}
