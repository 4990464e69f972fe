package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webskel-labs/webskel/internal/layout"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <layout.yaml>",
	Short: "Validate a layout file without scaffolding",
	Long: `Check a layout file against the layout schema and the path-safety rules
(relative directories only, no path separators in file names). Exits non-zero
if the layout is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		result, err := layout.ValidateFile(path)
		if err != nil {
			return err
		}
		if !result.Valid {
			return fmt.Errorf("layout %s is invalid:\n%s", path, formatIssues(result.Issues))
		}
		fmt.Printf("%s is valid\n", path)
		return nil
	},
}
