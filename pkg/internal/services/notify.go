package services

import "sync"

// Notifier fans change notifications out to subscribers. Stores embed it
// and call publish after every mutation; the UI layer re-renders off the
// callback and pulls fresh snapshots. Callbacks run synchronously on the
// mutating goroutine.
type Notifier struct {
	subMu  sync.Mutex
	nextID int
	subs   map[int]func()
}

// Subscribe registers fn and returns a cancel func that removes it.
func (n *Notifier) Subscribe(fn func()) func() {
	n.subMu.Lock()
	defer n.subMu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.subs[id] = fn

	return func() {
		n.subMu.Lock()
		defer n.subMu.Unlock()
		delete(n.subs, id)
	}
}

func (n *Notifier) publish() {
	n.subMu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
