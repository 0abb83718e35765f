package tui

import (
	"sync"

	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
)

// StateMsg carries a session snapshot into the update loop.
type StateMsg stopwatch.SessionState

// relay forwards session snapshots to the program without ever blocking the
// session. Only the newest pending snapshot is kept; older ones are
// superseded by revision.
type relay struct {
	mu      sync.Mutex
	pending *stopwatch.SessionState
	wake    chan struct{}
	done    chan struct{}
	once    sync.Once
	send    func(tea.Msg)
}

func newRelay(send func(tea.Msg)) *relay {
	r := &relay{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		send: send,
	}
	go r.loop()
	return r
}

// Offer records st as the latest snapshot. It never blocks.
func (r *relay) Offer(st stopwatch.SessionState) {
	r.mu.Lock()
	if r.pending == nil || st.Revision >= r.pending.Revision {
		r.pending = &st
	}
	r.mu.Unlock()
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *relay) Close() {
	r.once.Do(func() { close(r.done) })
}

func (r *relay) loop() {
	for {
		select {
		case <-r.done:
			return
		case <-r.wake:
		}
		r.mu.Lock()
		st := r.pending
		r.pending = nil
		r.mu.Unlock()
		if st != nil {
			r.send(StateMsg(*st))
		}
	}
}
