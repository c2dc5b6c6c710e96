package service

import "sync"

// notifier fans out change notifications to view-layer subscribers. Callbacks
// run synchronously on the mutating goroutine, after both the in-memory state
// and the persisted record have been updated.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// subscribe registers fn and returns its unsubscribe func.
func (n *notifier) subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
