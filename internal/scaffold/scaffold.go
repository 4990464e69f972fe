package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/webskel-labs/webskel/internal/layout"
)

// ConflictPolicy decides what happens when a target file already exists.
type ConflictPolicy string

const (
	// Overwrite truncates existing files to zero bytes. Re-runs always
	// converge on the same end state.
	Overwrite ConflictPolicy = "overwrite"
	// Skip leaves existing files untouched and reports them in
	// Result.Skipped.
	Skip ConflictPolicy = "skip"
)

// ParseConflictPolicy converts a user-supplied string to a ConflictPolicy.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(s) {
	case Overwrite, Skip:
		return ConflictPolicy(s), nil
	case "":
		return Overwrite, nil
	default:
		return "", fmt.Errorf("invalid conflict policy %q: must be %q or %q", s, Overwrite, Skip)
	}
}

// Options control a scaffold run.
type Options struct {
	OnConflict ConflictPolicy // zero value means Overwrite
	DryRun     bool           // report without touching the filesystem
}

// Result holds the outcome of a scaffold run. Paths are joined with the
// base directory and listed in creation order.
type Result struct {
	BaseDir string
	Dirs    []string
	Files   []string
	Skipped []string
}

// Run materializes the layout tree under baseDir. Directories are created
// recursively; each listed file is created empty (or truncated, per the
// conflict policy). The first filesystem failure aborts the run and leaves
// previously created entries in place.
func Run(baseDir string, l *layout.Layout, opts Options) (*Result, error) {
	if baseDir == "" {
		baseDir = layout.DefaultBaseDir
	}
	if opts.OnConflict == "" {
		opts.OnConflict = Overwrite
	}
	if err := layout.CheckTree(l); err != nil {
		return nil, fmt.Errorf("layout %s: %w", l.Name, err)
	}

	result := &Result{BaseDir: baseDir}

	for _, entry := range l.Tree {
		dir := filepath.Join(baseDir, filepath.FromSlash(entry.Dir))
		if !opts.DryRun {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("creating directory %s: %w", dir, err)
			}
		}
		result.Dirs = append(result.Dirs, dir)

		for _, name := range entry.Files {
			path := filepath.Join(dir, name)

			if opts.OnConflict == Skip {
				if _, err := os.Stat(path); err == nil {
					result.Skipped = append(result.Skipped, path)
					continue
				}
			}

			if !opts.DryRun {
				// WriteFile with nil data creates or truncates to zero bytes.
				if err := os.WriteFile(path, nil, 0644); err != nil {
					return nil, fmt.Errorf("writing %s: %w", path, err)
				}
			}
			result.Files = append(result.Files, path)
		}
	}

	return result, nil
}
