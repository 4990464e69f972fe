package layout

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse reads a layout file and returns the decoded Layout.
// It does not validate; callers wanting schema and path-safety checks
// should run ValidateFile first or CheckTree after.
func Parse(path string) (*Layout, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseBytes(data, path)
}

// parseBytes unmarshals YAML data into a Layout.
func parseBytes(data []byte, path string) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	return &l, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
