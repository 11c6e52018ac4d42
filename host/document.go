package host

import (
	"fmt"
	"sync"
)

// Document tracks whether the page finished loading.
type Document struct {
	loop *Loop

	mu        sync.Mutex
	loaded    bool
	listeners []func()
}

func NewDocument(loop *Loop, loaded bool) *Document {
	return &Document{loop: loop, loaded: loaded}
}

func (d *Document) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// OnLoad registers a one-shot listener. If the document is already loaded
// fn is posted to the loop right away, and ErrLoopClosed means it never runs.
func (d *Document) OnLoad(fn func()) error {
	d.mu.Lock()
	if !d.loaded {
		d.listeners = append(d.listeners, fn)
		d.mu.Unlock()
		return nil
	}
	d.mu.Unlock()
	return d.loop.Post(fn)
}

// MarkLoaded fires the load event. Later calls do nothing. An error means
// the loop was closed and the pending listeners were dropped.
func (d *Document) MarkLoaded() error {
	d.mu.Lock()
	if d.loaded {
		d.mu.Unlock()
		return nil
	}
	d.loaded = true
	listeners := d.listeners
	d.listeners = nil
	d.mu.Unlock()

	for i, fn := range listeners {
		if err := d.loop.Post(fn); err != nil {
			return fmt.Errorf("%w: %d load listeners dropped", err, len(listeners)-i)
		}
	}
	return nil
}
