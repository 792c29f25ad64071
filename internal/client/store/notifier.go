package store

import "sync"

// notifier fans a change signal out to subscribers. Callbacks run outside any
// store lock, so a subscriber may safely read a snapshot from its callback.
type notifier struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

// subscribe registers fn and returns an unsubscribe func.
func (n *notifier) subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fns == nil {
		n.fns = make(map[int]func())
	}
	id := n.next
	n.next++
	n.fns[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.fns, id)
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.fns))
	for _, fn := range n.fns {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
