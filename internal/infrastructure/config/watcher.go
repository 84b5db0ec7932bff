package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events editors emit for a single save
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads the movement config whenever its file changes on disk.
// Reloaded configs arrive on Updates already clamped; the receiver is
// expected to apply them between physics steps.
type Watcher struct {
	watcher *fsnotify.Watcher
	loader  *Loader
	Updates chan MovementConfig
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the movement config in dir
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		loader:  NewLoader(dir),
		Updates: make(chan MovementConfig, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching. Updates and Errors are closed once it returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Updates)
		close(w.Errors)
		close(w.done)
	}()

	// trailing debounce: reload once the file has been quiet for
	// reloadDebounce so a half-written file is never parsed
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsConfigFile(event.Name, "movement") {
				continue
			}
			timer.Reset(reloadDebounce)
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.loader.LoadMovement()
	if err != nil {
		w.report(err)
		return
	}
	select {
	case w.Updates <- *cfg:
	case <-w.closeCh:
	}
}

// report never blocks; a pending error is enough to tell the reader
func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
