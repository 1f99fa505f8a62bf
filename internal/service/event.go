package service

import "sync"

// Event is a multicast notification without payload. Handlers run
// synchronously, in subscription order, on the goroutine that fires.
type Event struct {
	mu       sync.Mutex
	next     int
	handlers []handler
}

type handler struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (ev *Event) Subscribe(fn func()) (unsubscribe func()) {
	ev.mu.Lock()
	defer ev.mu.Unlock()

	ev.next++
	id := ev.next
	ev.handlers = append(ev.handlers, handler{id: id, fn: fn})

	return func() {
		ev.mu.Lock()
		defer ev.mu.Unlock()
		for i, h := range ev.handlers {
			if h.id == id {
				ev.handlers = append(ev.handlers[:i:i], ev.handlers[i+1:]...)
				return
			}
		}
	}
}

// Fire calls every subscribed handler. Handlers may subscribe or
// unsubscribe while the event fires; changes apply to the next Fire.
func (ev *Event) Fire() {
	ev.mu.Lock()
	handlers := make([]handler, len(ev.handlers))
	copy(handlers, ev.handlers)
	ev.mu.Unlock()

	for _, h := range handlers {
		h.fn()
	}
}

// Len returns the number of subscribed handlers.
func (ev *Event) Len() int {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	return len(ev.handlers)
}
