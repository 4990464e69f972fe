// Package config manages user-level settings stored at ~/.webskel/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default base directory and the file-conflict policy used when a run
// meets an existing file.
package config
