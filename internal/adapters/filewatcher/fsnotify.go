// Package filewatcher provides file system monitoring adapters.
// Clean Architecture: Adapter implementing ports.FileWatcher.
package filewatcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/0xcro3dile/mapextract/internal/domain/ports"
)

// DefaultSettle is how long a file must stay quiet before its event is emitted.
const DefaultSettle = 250 * time.Millisecond

// FSNotifyWatcher implements ports.FileWatcher using fsnotify.
// Only events for names the codec recognizes are emitted. The create and write
// bursts of one file are coalesced into a single event sent once the file settles.
type FSNotifyWatcher struct {
	watcher *fsnotify.Watcher
	codec   ports.FilenameCodec
	logger  ports.Logger
	settle  time.Duration
}

// NewFSNotifyWatcher creates a new file watcher.
func NewFSNotifyWatcher(codec ports.FilenameCodec, logger ports.Logger) (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FSNotifyWatcher{
		watcher: w,
		codec:   codec,
		logger:  logger,
		settle:  DefaultSettle,
	}, nil
}

// SetSettle changes the quiet period. Zero or negative restores DefaultSettle.
func (w *FSNotifyWatcher) SetSettle(d time.Duration) {
	if d <= 0 {
		d = DefaultSettle
	}
	w.settle = d
}

type pendingEvent struct {
	op   ports.FileOperation
	seen time.Time
}

// Watch starts monitoring the directory (not its subdirectories) and emits events.
// The channel is closed when ctx is done or the watcher stops.
func (w *FSNotifyWatcher) Watch(ctx context.Context, dir string) (<-chan ports.FileEvent, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}

	events := make(chan ports.FileEvent, 100)

	go func() {
		defer close(events)

		pending := make(map[string]pendingEvent)
		ticker := time.NewTicker(w.settle / 2)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !w.codec.Decode(filepath.Base(event.Name)).Recognized() {
					continue
				}

				var op ports.FileOperation
				switch {
				case event.Op&fsnotify.Create == fsnotify.Create:
					op = ports.FileCreated
				case event.Op&fsnotify.Write == fsnotify.Write:
					op = ports.FileModified
				case event.Op&fsnotify.Remove == fsnotify.Remove:
					op = ports.FileDeleted
				default:
					continue
				}
				w.track(pending, event.Name, op)
			case now := <-ticker.C:
				for path, p := range pending {
					if now.Sub(p.seen) < w.settle {
						continue
					}
					delete(pending, path)
					select {
					case events <- ports.FileEvent{Path: path, Operation: p.op}:
					case <-ctx.Done():
						return
					}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Error("watching source directory", "dir", dir, "error", err)
			}
		}
	}()

	return events, nil
}

// track records op for path. A create followed by writes stays a create;
// a delete replaces anything pending.
func (w *FSNotifyWatcher) track(pending map[string]pendingEvent, path string, op ports.FileOperation) {
	p, ok := pending[path]
	if !ok || op == ports.FileDeleted || p.op == ports.FileDeleted {
		p.op = op
	}
	p.seen = time.Now()
	pending[path] = p
}

// Stop stops the watcher.
func (w *FSNotifyWatcher) Stop() error {
	return w.watcher.Close()
}
