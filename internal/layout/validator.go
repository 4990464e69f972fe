package layout

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/layout.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a layout validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/name", "/tree/0/dir")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed; "path" for path-safety rules
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("layout.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("layout.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate validates raw YAML bytes against the layout JSON schema and the
// path-safety rules. The error return is for I/O or schema compilation
// failures; validation issues are returned in the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Unmarshal YAML to a generic structure.
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Convert YAML maps to JSON-compatible types and re-read with the
	// validator's JSON decoder so numbers round-trip consistently.
	raw = normalizeYAML(raw)
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	var issues []ValidationIssue
	if err := schema.Validate(inst); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		issues = extractIssues(validationErr)
	}

	// Path-safety rules only make sense once the document decodes into a
	// Layout; a schema-invalid tree may not.
	if len(issues) == 0 {
		l, err := parseBytes(data, "layout")
		if err != nil {
			return nil, err
		}
		issues = append(issues, treeIssues(l)...)
	}

	return &ValidationResult{
		Valid:  len(issues) == 0,
		Issues: issues,
	}, nil
}

// ValidateFile reads a file and validates it against the layout schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// CheckTree enforces the path-safety invariants on an already-parsed
// Layout: directories stay relative and inside the base directory, file
// names carry no path separators. Returns the first violation.
func CheckTree(l *Layout) error {
	for _, issue := range treeIssues(l) {
		return fmt.Errorf("%s: %s", issue.Path, issue.Message)
	}
	return nil
}

// CheckRequires verifies the running CLI version against the layout's
// optional "requires" semver constraint. Development builds (versions that
// do not parse as semver, e.g. "dev") are never gated.
func CheckRequires(l *Layout, cliVersion string) error {
	if l.Requires == "" {
		return nil
	}
	c, err := semver.NewConstraint(l.Requires)
	if err != nil {
		return fmt.Errorf("layout %s: invalid requires constraint %q: %w", l.Name, l.Requires, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(cliVersion, "v"))
	if err != nil {
		return nil
	}
	if !c.Check(v) {
		return fmt.Errorf("layout %s requires CLI version %s, running %s", l.Name, l.Requires, cliVersion)
	}
	return nil
}

// treeIssues collects path-safety violations in a layout tree.
func treeIssues(l *Layout) []ValidationIssue {
	var issues []ValidationIssue
	for i, entry := range l.Tree {
		path := fmt.Sprintf("/tree/%d/dir", i)
		switch {
		case strings.HasPrefix(entry.Dir, "/") || strings.Contains(entry.Dir, `\`):
			issues = append(issues, ValidationIssue{
				Path:    path,
				Message: fmt.Sprintf("directory %q must be a forward-slash relative path", entry.Dir),
				Keyword: "path",
			})
		case escapesBase(entry.Dir):
			issues = append(issues, ValidationIssue{
				Path:    path,
				Message: fmt.Sprintf("directory %q must not contain %q segments", entry.Dir, ".."),
				Keyword: "path",
			})
		}
		for j, name := range entry.Files {
			if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
				issues = append(issues, ValidationIssue{
					Path:    fmt.Sprintf("/tree/%d/files/%d", i, j),
					Message: fmt.Sprintf("file name %q must not contain path separators", name),
					Keyword: "path",
				})
			}
		}
	}
	return issues
}

// escapesBase reports whether any segment of a relative slash path is "..".
func escapesBase(dir string) bool {
	for _, seg := range strings.Split(dir, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Message: ve.Error(),
		}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf
// errors with specific property information.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		// Leaf error.
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types. YAML v3 may produce int/int64 mixes that JSON Schema validators do
// not handle consistently.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}
