// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package player

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/display"
)

// DefaultWatchDebounce is the default debounce interval for asset watch
// events.
const DefaultWatchDebounce = 500 * time.Millisecond

// LoadFunc decodes a movie asset file into a display tree. The decoder
// is external; the watcher only drives it.
type LoadFunc func(path string) (*display.MovieClip, error)

// Watcher reloads a movie asset whenever its file changes on disk,
// handing the freshly decoded root to a callback. It is development
// tooling: edit the asset, see the change on the next reload.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	debounce time.Duration
	load     LoadFunc
	onReload func(*display.MovieClip)

	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
}

// NewWatcher creates a watcher for one asset file. onReload receives
// each successfully decoded and validated root; decode failures are
// logged and the previous root stays live.
func NewWatcher(filePath string, debounce time.Duration, load LoadFunc, onReload func(*display.MovieClip)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	// Watch the containing directory, not the file itself, so editors
	// that save via atomic rename keep triggering events.
	if err := fw.Add(filepath.Dir(filePath)); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		watcher:   fw,
		filePath:  filePath,
		debounce:  debounce,
		load:      load,
		onReload:  onReload,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.watchLoop()
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Watcher) watchLoop() {
	defer close(w.stoppedCh)
	defer w.watcher.Close()

	absPath, _ := filepath.Abs(w.filePath)
	baseName := filepath.Base(w.filePath)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			eventAbs, _ := filepath.Abs(event.Name)
			if filepath.Base(event.Name) != baseName && eventAbs != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			w.reload()
			debounceTimer = nil
			debounceCh = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			swfkit.Logger().Warn("asset watch error", "path", w.filePath, "err", err)
		}
	}
}

// reload decodes and validates the asset; a failure is fatal for this
// reload only, never for the running instance.
func (w *Watcher) reload() {
	root, err := w.load(w.filePath)
	if err != nil {
		swfkit.Logger().Warn("asset reload failed, keeping previous tree",
			"path", w.filePath, "err", err)
		return
	}
	if err := display.Validate(root); err != nil {
		swfkit.Logger().Warn("reloaded asset is malformed, keeping previous tree",
			"path", w.filePath, "err", err)
		return
	}
	swfkit.Logger().Info("asset reloaded", "path", w.filePath)
	if w.onReload != nil {
		w.onReload(root)
	}
}
