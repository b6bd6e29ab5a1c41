package prefs

import "sync"

// Listener receives the preferences written by a successful update.
type Listener func(Preferences)

// Notifier is a registry of change listeners.
type Notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
	order     []int
}

// NewNotifier creates an empty registry.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]Listener)}
}

// Subscribe registers fn and returns a func that removes it. Calling the
// returned func more than once is harmless.
func (n *Notifier) Subscribe(fn Listener) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.order = append(n.order, id)

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if _, ok := n.listeners[id]; !ok {
			return
		}
		delete(n.listeners, id)
		for i, v := range n.order {
			if v == id {
				n.order = append(n.order[:i], n.order[i+1:]...)
				break
			}
		}
	}
}

// Notify calls every listener registered at the moment of the call, once,
// in registration order. Listeners run outside the lock so they may
// subscribe or unsubscribe.
func (n *Notifier) Notify(p Preferences) {
	n.mu.Lock()
	fns := make([]Listener, 0, len(n.order))
	for _, id := range n.order {
		fns = append(fns, n.listeners[id])
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

// Len returns the number of registered listeners.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}
