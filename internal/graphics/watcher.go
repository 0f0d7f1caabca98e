package graphics

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to shader source files. Directories are watched
// rather than the files themselves because editors commonly save by
// replacing the file.
type Watcher struct {
	fs    *fsnotify.Watcher
	files map[string]struct{}
}

func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	w := &Watcher{fs: fw, files: make(map[string]struct{}, len(paths))}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("shader watcher: %w", err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("shader watcher: watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Changed drains pending events without blocking and reports whether any
// watched file was written or recreated since the last call.
func (w *Watcher) Changed() bool {
	changed := false
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return changed
			}
			if w.relevant(ev) {
				changed = true
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return changed
			}
			log.Printf("shader watcher: %v", err)
		default:
			return changed
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	_, ok := w.files[filepath.Clean(ev.Name)]
	return ok
}

func (w *Watcher) Close() error {
	return w.fs.Close()
}
