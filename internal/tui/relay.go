package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// dispatchMsg carries a resource notification onto the event loop.
type dispatchMsg func()

// relay queues notifications and forwards them to the program in order.
// post never blocks, so resources may notify from the event loop itself.
type relay struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
	done  chan struct{}
	once  sync.Once
}

func newRelay() *relay {
	return &relay{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (r *relay) post(f func()) {
	r.mu.Lock()
	r.queue = append(r.queue, f)
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *relay) drain() []func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := r.queue
	r.queue = nil
	return q
}

// run forwards queued notifications through send until stop.
func (r *relay) run(send func(tea.Msg)) {
	for {
		select {
		case <-r.done:
			return
		case <-r.wake:
		}
		for _, f := range r.drain() {
			send(dispatchMsg(f))
		}
	}
}

func (r *relay) stop() {
	r.once.Do(func() { close(r.done) })
}
