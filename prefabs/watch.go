package prefabs

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is one edited spec or script on disk.
type Change struct {
	Kind AssetKind
	Path string
}

// Name is the file name, as Load and LoadScript expect it.
func (c Change) Name() string {
	return filepath.Base(c.Path)
}

// DefaultDebounce collapses the burst of events editors emit for one save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports edited specs and scripts. The Changes and Errors channels
// are closed once the watcher has stopped.
type Watcher struct {
	fs       *fsnotify.Watcher
	changes  chan Change
	errs     chan error
	done     chan struct{}
	stopped  chan struct{}
	debounce time.Duration

	closeOnce sync.Once
	closeErr  error
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:       fsw,
		changes:  make(chan Change, 16),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		debounce: DefaultDebounce,
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and waits for its goroutine to exit. It is safe to
// call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fs.Close()
		<-w.stopped
	})
	return w.closeErr
}

func (w *Watcher) run() {
	defer close(w.stopped)
	defer close(w.errs)
	defer close(w.changes)

	last := make(map[string]time.Time)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			change, ok := classifyEvent(event)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[change.Path]; seen && now.Sub(t) < w.debounce {
				continue
			}
			last[change.Path] = now
			select {
			case w.changes <- change:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// a pending error is enough to report; drop the rest
			select {
			case w.errs <- err:
			case <-w.done:
				return
			default:
			}
		}
	}
}

func classifyEvent(event fsnotify.Event) (Change, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return Change{}, false
	}
	kind, ok := Classify(event.Name)
	if !ok {
		return Change{}, false
	}
	return Change{Kind: kind, Path: event.Name}, true
}
