package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Event is emitted by Watch when a persisted collection changes on disk.
type Event struct {
	Key string
}

// Watch streams change events for the archive directory until ctx is
// cancelled. It is a read-side refresh signal only; consumers reload the
// collection they care about and never mutate state from it. The channel is
// closed once ctx is done or the watcher fails.
func (a *DiskArchive) Watch(ctx context.Context) (<-chan Event, error) {
	if a.basePath == "" {
		return nil, errors.New("store: archive base path unknown")
	}

	if err := os.MkdirAll(a.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(a.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", a.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				logrus.WithError(err).Warn("store: watcher close")
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logrus.WithError(err).Debug("store: watcher error")
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				ev := Event{Key: filepath.Base(evt.Name)}
				select {
				case events <- ev:
				default:
					// Drop when the consumer lags; the next change or
					// periodic refresh picks the state up anyway.
				}
			}
		}
	}()

	return events, nil
}
