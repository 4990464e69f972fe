// Package scaffold materializes a layout onto the filesystem. It powers the
// "webskel create" and "webskel apply" commands, walking the layout tree in
// order, creating directories recursively, and writing a zero-byte file for
// each listed name. Conflict handling is a policy: overwrite (truncate, the
// default) or skip existing files.
package scaffold
