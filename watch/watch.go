// Package watch implements a debounced filesystem watcher
package watch

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rjeczalik/notify"
)

// Settle is how long a directory must be quiet before watchers are told about
// the changes in it
const Settle = 25 * time.Millisecond

// A Watcher receives notifications of changes
type Watcher interface {
	Changed(evs Events)
}

// A WatcherFunc is a func that is a Watcher
type WatcherFunc func(evs Events)

// Changed implements Watcher
func (f WatcherFunc) Changed(evs Events) { f(evs) }

// Watch wraps file system watchers and hands batches of change events to its
// Watchers
type Watch struct {
	evs      chan notify.EventInfo
	watchers chan Watcher
}

// New creates a new Watch that monitors the given paths. Paths ending in "/..."
// are watched recursively.
func New(paths ...string) (*Watch, error) {
	w := &Watch{
		evs:      make(chan notify.EventInfo, 16),
		watchers: make(chan Watcher, 1),
	}

	for _, path := range paths {
		err := notify.Watch(path, w.evs, notify.All)
		if err != nil {
			notify.Stop(w.evs)
			return nil, errors.Wrapf(err, "failed to watch %q", path)
		}
	}

	go w.run()
	return w, nil
}

// Notify notifies the given Watcher of changes as they happen
func (w *Watch) Notify(wr Watcher) {
	if wr != nil {
		w.watchers <- wr
	}
}

// Stop terminates this instance
func (w *Watch) Stop() {
	notify.Stop(w.evs)
	close(w.evs)
}

func (w *Watch) run() {
	var (
		batch    Events
		watchers []Watcher
		settled  <-chan time.Time // nil while nothing is pending
	)

	for {
		select {
		case wr := <-w.watchers:
			watchers = append(watchers, wr)

		case ev, ok := <-w.evs:
			if !ok {
				return
			}

			batch = append(batch, ev)
			settled = time.After(Settle)

		case <-settled:
			for _, wr := range watchers {
				wr.Changed(batch)
			}

			batch, settled = nil, nil
		}
	}
}

// Events is a batch of change events
type Events []notify.EventInfo

// HasBase checks if any event path has one of the given base names
func (evs Events) HasBase(names ...string) bool {
	for _, ev := range evs {
		base := filepath.Base(ev.Path())
		for _, name := range names {
			if base == name {
				return true
			}
		}
	}

	return false
}
