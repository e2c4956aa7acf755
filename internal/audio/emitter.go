package audio

import (
	"sort"
	"sync"
)

// Emitter keeps per-event subscriptions. Handlers run in subscription order
// on the goroutine that calls Emit, without the registry lock held.
type Emitter struct {
	mu       sync.Mutex
	next     int
	handlers map[Event]map[int]Handler
}

// Subscribe registers h for e and returns a func that removes it. The
// returned func is safe to call more than once.
func (em *Emitter) Subscribe(e Event, h Handler) func() {
	em.mu.Lock()
	defer em.mu.Unlock()

	if em.handlers == nil {
		em.handlers = make(map[Event]map[int]Handler)
	}
	if em.handlers[e] == nil {
		em.handlers[e] = make(map[int]Handler)
	}

	id := em.next
	em.next++
	em.handlers[e][id] = h

	var once sync.Once
	return func() {
		once.Do(func() {
			em.mu.Lock()
			defer em.mu.Unlock()
			delete(em.handlers[e], id)
		})
	}
}

// Emit calls every handler subscribed to e.
func (em *Emitter) Emit(e Event) {
	em.mu.Lock()
	ids := make([]int, 0, len(em.handlers[e]))
	for id := range em.handlers[e] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]Handler, len(ids))
	for i, id := range ids {
		handlers[i] = em.handlers[e][id]
	}
	em.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}

// Subscribers returns the number of handlers registered for e.
func (em *Emitter) Subscribers(e Event) int {
	em.mu.Lock()
	defer em.mu.Unlock()
	return len(em.handlers[e])
}
