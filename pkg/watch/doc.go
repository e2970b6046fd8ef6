// Package watch re-runs the merge when an input descriptor changes on disk.
//
// Events are debounced: editors and generators produce bursts of writes, so
// the callback only fires after a quiet period. Directories are watched
// rather than the files themselves, since most editors replace files on save
// and replacing a file drops its inotify watch.
package watch
