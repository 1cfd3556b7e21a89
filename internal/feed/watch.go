package feed

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher signals when the snapshot file is written or replaced. It watches
// the parent directory so atomic rename-into-place is seen too.
type Watcher struct {
	watcher *fsnotify.Watcher
	name    string
	changes chan struct{}
	logger  *zap.Logger
}

// NewWatcher starts watching the directory of path
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("resolve snapshot path: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		watcher: fw,
		name:    abs,
		changes: make(chan struct{}, 1),
		logger:  logger.Named("watch"),
	}, nil
}

// Changes delivers at most one pending notification; bursts of file events
// coalesce.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Run forwards relevant file events until ctx is done, then closes the
// underlying watcher
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", zap.Error(err))

		case <-ctx.Done():
			return nil
		}
	}
}
