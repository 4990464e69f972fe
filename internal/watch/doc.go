// Package watch re-applies a layout whenever its file changes on disk. It
// backs the "webskel apply --watch" flag with a debounced fsnotify loop so
// editors that write in bursts trigger a single re-apply.
package watch
