package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webskel-labs/webskel/internal/branding"
	"github.com/webskel-labs/webskel/internal/config"
	"github.com/webskel-labs/webskel/internal/layout"
	"github.com/webskel-labs/webskel/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates empty directory-and-file skeletons for web
front-end projects, either from built-in presets or from a layout file you
write yourself.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// ─── Helpers shared by apply and create ────────────────────────────

// resolveBaseDir picks the base directory: flag, then the layout's own
// base_dir, then the user config, then the built-in default.
func resolveBaseDir(flagValue string, l *layout.Layout) string {
	if flagValue != "" {
		return flagValue
	}
	if l.BaseDir != "" {
		return l.BaseDir
	}
	config.Load()
	if dir := config.Get(config.KeyBaseDir); dir != "" {
		return dir
	}
	return layout.DefaultBaseDir
}

// resolveConflictPolicy picks the conflict policy: flag, then user config,
// then overwrite.
func resolveConflictPolicy(flagValue string) (scaffold.ConflictPolicy, error) {
	if flagValue == "" {
		config.Load()
		flagValue = config.Get(config.KeyOnConflict)
	}
	return scaffold.ParseConflictPolicy(flagValue)
}

// printRunResult reports what a scaffold run created (or would create).
func printRunResult(result *scaffold.Result, dryRun bool) {
	verb := "Created"
	if dryRun {
		verb = "Would create"
	}
	fmt.Printf("%s skeleton under %s/\n", verb, result.BaseDir)
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
	if len(result.Skipped) > 0 {
		fmt.Println("\nSkipped (already exist):")
		for _, f := range result.Skipped {
			fmt.Printf("  %s\n", f)
		}
	}
}

// formatIssues renders validation issues one per line.
func formatIssues(issues []layout.ValidationIssue) string {
	out := ""
	for _, issue := range issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		out += "  - " + msg + "\n"
	}
	return out
}
