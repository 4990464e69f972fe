package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/webskel-labs/webskel/internal/layout"
)

func demoLayout(tree []layout.Entry) *layout.Layout {
	return &layout.Layout{Name: "demo", Version: "0.1.0", Tree: tree}
}

func TestRunCreatesEmptyFiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "src")

	l := demoLayout([]layout.Entry{
		{Dir: "components/auth", Files: []string{"LoginPage.jsx", "ProtectedRoute.jsx"}},
		{Dir: ".", Files: []string{"App.jsx"}},
	})

	result, err := Run(base, l, Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	assertDir(t, filepath.Join(base, "components", "auth"))
	assertEmptyFile(t, filepath.Join(base, "components", "auth", "LoginPage.jsx"))
	assertEmptyFile(t, filepath.Join(base, "components", "auth", "ProtectedRoute.jsx"))
	assertEmptyFile(t, filepath.Join(base, "App.jsx"))

	if len(result.Files) != 3 {
		t.Errorf("len(Files) = %d, want 3", len(result.Files))
	}
	if result.Files[0] != filepath.Join(base, "components", "auth", "LoginPage.jsx") {
		t.Errorf("Files[0] = %q, creation order not preserved", result.Files[0])
	}

	// components/auth holds exactly the two listed files.
	entries, err := os.ReadDir(filepath.Join(base, "components", "auth"))
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("components/auth has %d entries, want 2", len(entries))
	}
}

func TestRunCreatesIntermediateDirs(t *testing.T) {
	base := filepath.Join(t.TempDir(), "src")

	l := demoLayout([]layout.Entry{
		{Dir: "a/b/c", Files: []string{"deep.js"}},
	})

	if _, err := Run(base, l, Options{}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	assertDir(t, filepath.Join(base, "a"))
	assertDir(t, filepath.Join(base, "a", "b"))
	assertDir(t, filepath.Join(base, "a", "b", "c"))
	assertEmptyFile(t, filepath.Join(base, "a", "b", "c", "deep.js"))
}

func TestRunOverwriteTruncatesExisting(t *testing.T) {
	base := filepath.Join(t.TempDir(), "src")
	hookDir := filepath.Join(base, "hooks")
	hookFile := filepath.Join(hookDir, "useAuth.js")

	if err := os.MkdirAll(hookDir, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(hookFile, []byte("export default null\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	l := demoLayout([]layout.Entry{
		{Dir: "hooks", Files: []string{"useAuth.js"}},
	})

	result, err := Run(base, l, Options{OnConflict: Overwrite})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	assertEmptyFile(t, hookFile)
	if len(result.Skipped) != 0 {
		t.Errorf("Skipped = %v, want empty", result.Skipped)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	base := filepath.Join(t.TempDir(), "src")

	l := demoLayout([]layout.Entry{
		{Dir: "pages", Files: []string{"HomePage.jsx"}},
		{Dir: ".", Files: []string{"main.jsx"}},
	})

	if _, err := Run(base, l, Options{}); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	// Dirty one target between runs.
	if err := os.WriteFile(filepath.Join(base, "main.jsx"), []byte("dirty"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := Run(base, l, Options{}); err != nil {
		t.Fatalf("second Run() error: %v", err)
	}

	assertEmptyFile(t, filepath.Join(base, "pages", "HomePage.jsx"))
	assertEmptyFile(t, filepath.Join(base, "main.jsx"))
}

func TestRunSkipLeavesExistingContent(t *testing.T) {
	base := filepath.Join(t.TempDir(), "src")
	target := filepath.Join(base, "config.js")

	if err := os.MkdirAll(base, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(target, []byte("const x = 1\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	l := demoLayout([]layout.Entry{
		{Dir: ".", Files: []string{"config.js", "fresh.js"}},
	})

	result, err := Run(base, l, Options{OnConflict: Skip})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading target: %v", err)
	}
	if string(data) != "const x = 1\n" {
		t.Errorf("existing content was modified: %q", data)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != target {
		t.Errorf("Skipped = %v, want [%s]", result.Skipped, target)
	}
	assertEmptyFile(t, filepath.Join(base, "fresh.js"))
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	base := filepath.Join(t.TempDir(), "src")

	l := demoLayout([]layout.Entry{
		{Dir: "pages", Files: []string{"HomePage.jsx"}},
	})

	result, err := Run(base, l, Options{DryRun: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if _, err := os.Stat(base); !os.IsNotExist(err) {
		t.Errorf("dry run created %s", base)
	}
	if len(result.Dirs) != 1 || len(result.Files) != 1 {
		t.Errorf("dry run result = %+v, want 1 dir and 1 file reported", result)
	}
}

func TestRunDefaultBaseDir(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	l := demoLayout([]layout.Entry{
		{Dir: ".", Files: []string{"App.jsx"}},
	})

	if _, err := Run("", l, Options{}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	assertEmptyFile(t, filepath.Join(dir, "src", "App.jsx"))
}

func TestRunRejectsUnsafeTree(t *testing.T) {
	base := filepath.Join(t.TempDir(), "src")

	l := demoLayout([]layout.Entry{
		{Dir: "../outside", Files: []string{"x.js"}},
	})

	if _, err := Run(base, l, Options{}); err == nil {
		t.Fatal("expected error for tree escaping the base directory")
	}
}

func TestRunStopsOnFirstFailure(t *testing.T) {
	base := filepath.Join(t.TempDir(), "src")

	// "pages" is created as a file, so the second entry's MkdirAll fails.
	if err := os.MkdirAll(base, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "pages"), nil, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	l := demoLayout([]layout.Entry{
		{Dir: "hooks", Files: []string{"useAuth.js"}},
		{Dir: "pages", Files: []string{"HomePage.jsx"}},
	})

	_, err := Run(base, l, Options{})
	if err == nil {
		t.Fatal("expected error when a path component is a file")
	}
	// Entries before the failure remain on disk.
	assertEmptyFile(t, filepath.Join(base, "hooks", "useAuth.js"))
}

func TestParseConflictPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ConflictPolicy
		wantErr bool
	}{
		{"overwrite", Overwrite, false},
		{"skip", Skip, false},
		{"", Overwrite, false},
		{"merge", "", true},
	}
	for _, tt := range tests {
		got, err := ParseConflictPolicy(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseConflictPolicy(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseConflictPolicy(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseConflictPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", path)
	}
}

func assertEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("%s is a directory, want file", path)
	}
	if info.Size() != 0 {
		t.Errorf("%s has size %d, want 0", path, info.Size())
	}
}
