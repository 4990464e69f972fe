package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webskel-labs/webskel/internal/branding"
	"github.com/webskel-labs/webskel/internal/layout"
	"github.com/webskel-labs/webskel/internal/scaffold"
)

var (
	createBaseDir    string
	createOnConflict string
	createDryRun     bool
)

func init() {
	createCmd.Flags().StringVar(&createBaseDir, "base-dir", "", "Base directory (default: preset's base_dir)")
	createCmd.Flags().StringVar(&createOnConflict, "on-conflict", "", "Existing-file policy: overwrite or skip (default: overwrite)")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Report what would be created without touching the filesystem")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <preset>",
	Short: "Scaffold a skeleton from a built-in preset",
	Long: `Scaffold a project skeleton from one of the presets compiled into the
binary. Run 'webskel list' to see what is available.

Examples:
  webskel create react
  webskel create vue --base-dir app --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := layout.Get(args[0])
		if err != nil {
			return err
		}
		if err := layout.CheckRequires(l, buildVersion); err != nil {
			return err
		}

		policy, err := resolveConflictPolicy(createOnConflict)
		if err != nil {
			return err
		}

		result, err := scaffold.Run(resolveBaseDir(createBaseDir, l), l, scaffold.Options{
			OnConflict: policy,
			DryRun:     createDryRun,
		})
		if err != nil {
			return err
		}

		printRunResult(result, createDryRun)

		if !createDryRun {
			fmt.Println("\nNext steps:")
			fmt.Printf("  1. Fill in the generated stubs under %s/\n", result.BaseDir)
			fmt.Printf("  2. Adjust the tree and re-run '%s create %s' — re-runs truncate stubs back to empty\n",
				branding.CLIName(), l.Name)
		}
		return nil
	},
}
