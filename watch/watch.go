// Package watch reloads a .cfg file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/franku1122/confmanager/logging"
	"github.com/franku1122/confmanager/store"
)

// File monitors path and calls onChange with a freshly loaded store each
// time the file is written. It runs until ctx is cancelled.
//
// If a reload fails (missing file, unreadable), the error is logged through
// the configured sink and the previous store remains the caller's current
// one — File does not call onChange.
func File(ctx context.Context, path string, opts store.Options, onChange func(*store.Store)) error {
	if opts.Logger == nil {
		opts.Logger = logging.Stdout()
	}
	sink := opts.Logger

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %q: %w", path, err)
	}

	sink.Put(logging.Info, fmt.Sprintf("watching %s for changes", path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often write via rename (atomic save), so catch
			// create events as well as plain writes.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			st, err := store.New(opts)
			if err != nil {
				return fmt.Errorf("watch %q: %w", path, err)
			}
			if err := st.Open(path); err != nil {
				sink.Put(logging.Error,
					fmt.Sprintf("reload %s failed, keeping previous state: %v", path, err))
				continue
			}

			sink.Put(logging.Info, fmt.Sprintf("reloaded %s", path))
			onChange(st)

			// Re-add the file in case an atomic save replaced the inode.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			sink.Put(logging.Error, fmt.Sprintf("watcher error: %v", err))
		}
	}
}
