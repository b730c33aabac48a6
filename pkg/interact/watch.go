package interact

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchPreset watches a preset file and calls onChange with the re-parsed
// preset after every write, or with a nil preset and the parse error when
// the new contents are invalid. The watch covers the containing directory,
// so editors that replace the file instead of writing in place are still
// seen.
//
// onChange runs on the watcher's goroutine; hand the result off to the
// event-processing goroutine before touching a container with it. The
// returned stop function ends the watch and releases the watcher.
func WatchPreset(path string, onChange func(*Preset, error)) (stop func() error, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to watch preset: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to watch preset: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch preset: %w", err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != abs || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				onChange(LoadPreset(abs))
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				onChange(nil, fmt.Errorf("failed to watch preset: %w", werr))
			}
		}
	}()

	return w.Close, nil
}
