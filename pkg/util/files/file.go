// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"
)

const (
	watchDebounceDelay = 100 * time.Millisecond
)

// Watcher encapsulates file watch and configuration,
// abstracting form the underlying file watch provider
type Watcher struct {
	Watcher      *fsnotify.Watcher
	WatchedFiles []string
	// Debounce is the quiet period after the last change before the
	// event handler runs. Defaults to 100ms
	Debounce time.Duration
	watched  []string
}

// NewFileWatcher creates Watcher
func NewFileWatcher() *Watcher {
	return &Watcher{
		WatchedFiles: []string{},
		watched:      []string{},
	}
}

// AddToWatch adds files to the WatchedFiles list monitored by this
// Watcher. The underlying watcher is created on demand if it's nil
// when the operation is invoked.
func (w *Watcher) AddToWatch(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if w.Watcher == nil {
		var err error
		w.Watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return err
		}
	}
	for _, file := range files {
		w.WatchedFiles = append(w.WatchedFiles, filepath.Clean(file))
	}
	return nil
}

// Watch monitors WatchedFiles until ctx is done. If WatchedFiles or the
// underlying watcher are not initialized, Watch returns immediately. The
// eventHandler is invoked once per burst of write, create or rename
// events on the watched files. Handler errors are logged and watching
// continues.
func (w *Watcher) Watch(ctx context.Context, eventHandler func() error) error {
	if w.Watcher == nil || len(w.WatchedFiles) == 0 {
		return nil
	}
	defer func() {
		w.Watcher.Close() // nolint: errcheck
		klog.V(6).Infof("watching files stopped")
	}()

	// watch the parent directories of the target files so editors
	// replacing a file on save don't drop the watch
	files := map[string]struct{}{}
	for _, file := range w.WatchedFiles {
		files[file] = struct{}{}
		watchDir := filepath.Dir(file)
		if contains(w.watched, watchDir) {
			continue
		}
		if err := w.Watcher.Add(watchDir); err != nil {
			return fmt.Errorf("could not watch %v: %w", file, err)
		}
		klog.V(6).Infof("watching %s", watchDir)
		w.watched = append(w.watched, watchDir)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = watchDebounceDelay
	}
	klog.V(6).Info("watching files started")
	var timerC <-chan time.Time
	for {
		select {
		case <-timerC:
			timerC = nil
			if eventHandler != nil {
				if err := eventHandler(); err != nil {
					klog.Errorf("handling file change failed: %v", err)
				}
			}
		case event, ok := <-w.Watcher.Events:
			if !ok {
				return nil
			}
			if _, watched := files[filepath.Clean(event.Name)]; !watched {
				continue
			}
			// use a timer to debounce updates
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				klog.V(6).Infof("change detected: %s (%s)", event.Name, event.Op)
				timerC = time.After(debounce)
			}
		case err, ok := <-w.Watcher.Errors:
			if !ok {
				return nil
			}
			klog.V(6).Infof("watcher error: %v", err)
		case <-ctx.Done():
			return nil
		}
	}
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
