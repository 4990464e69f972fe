// Package layout defines the scaffold specification format: an ordered tree
// of relative directories and the zero-byte files to create inside each. It
// parses layout YAML files, validates them against an embedded JSON Schema
// plus path-safety rules, gates layouts on a minimum CLI version, and ships
// the built-in presets compiled into the binary.
package layout
