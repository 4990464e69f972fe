package layout

import (
	"reflect"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"react", "static", "vue"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("angular")
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			data, err := presetFS.ReadFile("presets/" + name + ".yaml")
			if err != nil {
				t.Fatalf("reading preset: %v", err)
			}
			result, err := Validate(data)
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if !result.Valid {
				t.Errorf("preset %s is invalid: %v", name, result.Issues)
			}
		})
	}
}

func TestReactPresetTree(t *testing.T) {
	l, err := Get("react")
	if err != nil {
		t.Fatalf("Get(react) error: %v", err)
	}
	if l.BaseDir != "src" {
		t.Errorf("BaseDir = %q, want %q", l.BaseDir, "src")
	}

	wantDirs := []string{
		"components/auth",
		"components/camas",
		"components/layout",
		"firebase",
		"hooks",
		"pages",
		".",
	}
	if len(l.Tree) != len(wantDirs) {
		t.Fatalf("len(Tree) = %d, want %d", len(l.Tree), len(wantDirs))
	}
	for i, dir := range wantDirs {
		if l.Tree[i].Dir != dir {
			t.Errorf("Tree[%d].Dir = %q, want %q", i, l.Tree[i].Dir, dir)
		}
	}

	wantRoot := []string{"App.jsx", "main.jsx", "routes.jsx"}
	if !reflect.DeepEqual(l.Tree[6].Files, wantRoot) {
		t.Errorf("root files = %v, want %v", l.Tree[6].Files, wantRoot)
	}
	if got := len(l.Tree[1].Files); got != 5 {
		t.Errorf("components/camas has %d files, want 5", got)
	}
}
