//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // fake $HOME so config reads/writes stay sandboxed
	ProjectDir string // a mock project directory scaffolding targets
}

// setupTestEnv creates isolated temp directories and points $HOME at one of
// them so config operations never touch the real user profile.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// writeLayout writes a layout file into dir and returns its path.
func writeLayout(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing layout file: %v", err)
	}
	return path
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected directory %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s exists but is not a directory", path)
	}
}

func assertEmptyFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("%s is a directory, want file", path)
	}
	if info.Size() != 0 {
		t.Errorf("%s has size %d, want 0", path, info.Size())
	}
}
