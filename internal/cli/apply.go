package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/webskel-labs/webskel/internal/layout"
	"github.com/webskel-labs/webskel/internal/scaffold"
	"github.com/webskel-labs/webskel/internal/watch"
)

var (
	applyBaseDir    string
	applyOnConflict string
	applyDryRun     bool
	applyWatch      bool
)

func init() {
	applyCmd.Flags().StringVar(&applyBaseDir, "base-dir", "", "Base directory (default: layout's base_dir, config, or \"src\")")
	applyCmd.Flags().StringVar(&applyOnConflict, "on-conflict", "", "Existing-file policy: overwrite or skip (default: overwrite)")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Report what would be created without touching the filesystem")
	applyCmd.Flags().BoolVar(&applyWatch, "watch", false, "Keep running and re-apply when the layout file changes")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply <layout.yaml>",
	Short: "Scaffold a skeleton from a layout file",
	Long: `Validate a layout file and materialize its tree of directories and
empty files under the base directory.

Examples:
  webskel apply layout.yaml
  webskel apply layout.yaml --base-dir app --on-conflict skip
  webskel apply layout.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if err := applyOnce(path); err != nil {
			return err
		}
		if !applyWatch {
			return nil
		}

		w, err := watch.New(path, 0, func() {
			if err := applyOnce(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Watching %s — press Ctrl-C to stop\n", path)
		return w.Run(ctx)
	},
}

// applyOnce validates the layout file and runs the scaffolder on it.
func applyOnce(path string) error {
	valResult, err := layout.ValidateFile(path)
	if err != nil {
		return err
	}
	if !valResult.Valid {
		return fmt.Errorf("layout %s is invalid:\n%s", path, formatIssues(valResult.Issues))
	}

	l, err := layout.Parse(path)
	if err != nil {
		return err
	}
	if err := layout.CheckRequires(l, buildVersion); err != nil {
		return err
	}

	policy, err := resolveConflictPolicy(applyOnConflict)
	if err != nil {
		return err
	}

	result, err := scaffold.Run(resolveBaseDir(applyBaseDir, l), l, scaffold.Options{
		OnConflict: policy,
		DryRun:     applyDryRun,
	})
	if err != nil {
		return err
	}

	printRunResult(result, applyDryRun)
	return nil
}
