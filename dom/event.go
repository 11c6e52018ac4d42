package dom

import "slices"

// ListenerID identifies a registered listener for removal.
type ListenerID uint64

type EventListenerFunc func(e *CustomEvent)

type listenerEntry struct {
	id       ListenerID
	listener EventListenerFunc
}

// CustomEvent is a named event carrying an arbitrary Detail payload.
type CustomEvent struct {
	Type       string
	Detail     any
	Bubbles    bool
	Cancelable bool

	Target        EventTarget
	CurrentTarget EventTarget

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault has an effect only on cancelable events.
func (e *CustomEvent) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

func (e *CustomEvent) DefaultPrevented() bool { return e.defaultPrevented }

func (e *CustomEvent) StopPropagation() { e.propagationStopped = true }

type EventTarget interface {
	// DispatchEvent returns false if a listener prevented the default action.
	DispatchEvent(e *CustomEvent) bool
}

type EventOptions struct {
	Bubbles    bool
	Cancelable bool
}

// DispatchCustomEvent builds a CustomEvent and dispatches it on target.
func DispatchCustomEvent(target EventTarget, eventType string, detail any, opts EventOptions) bool {
	return target.DispatchEvent(&CustomEvent{
		Type:       eventType,
		Detail:     detail,
		Bubbles:    opts.Bubbles,
		Cancelable: opts.Cancelable,
	})
}

func (n *Node) AddEventListener(eventType string, fn EventListenerFunc) ListenerID {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[string][]listenerEntry)
	}
	n.nextListenerID++
	id := n.nextListenerID
	n.listeners[eventType] = append(n.listeners[eventType], listenerEntry{id: id, listener: fn})
	return id
}

func (n *Node) RemoveEventListener(eventType string, id ListenerID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	entries := n.listeners[eventType]
	for i, e := range entries {
		if e.id == id {
			n.listeners[eventType] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// DispatchEvent runs n's listeners, then its ancestors' when e bubbles.
func (n *Node) DispatchEvent(e *CustomEvent) bool {
	if e.Target == nil {
		e.Target = n
	}
	for cur := n; cur != nil; cur = cur.parent {
		e.CurrentTarget = cur
		cur.mu.RLock()
		entries := slices.Clone(cur.listeners[e.Type])
		cur.mu.RUnlock()
		for _, entry := range entries {
			entry.listener(e)
		}
		if !e.Bubbles || e.propagationStopped {
			break
		}
	}
	return !e.defaultPrevented
}
