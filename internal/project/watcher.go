// pattern: Imperative Shell

package project

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"rustm/internal/logging"
)

// debounceDelay coalesces bursts of filesystem events (cargo new touches
// many paths) into a single notification.
const debounceDelay = 500 * time.Millisecond

// Watcher observes the projects root and reports when its immediate
// children change, so the UI can rescan without manual refresh.
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher
	logger  *logging.ScopedLogger
}

// NewWatcher creates a watcher for the projects root.
func NewWatcher(root string, logger *logging.ScopedLogger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(root); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return &Watcher{root: root, watcher: fw, logger: logger}, nil
}

// Start blocks until ctx is cancelled, calling notify (debounced) after
// entries are created, removed, or renamed under the root. Watcher errors
// are logged and the loop continues; transient failures must not kill the
// refresh path.
func (w *Watcher) Start(ctx context.Context, notify func()) {
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("root changed", "op", event.Op.String(), "name", event.Name)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, notify)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
