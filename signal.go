package motion

// Signal is an observer registry for one event channel. F is the handler
// function signature for that channel. Handlers are invoked in no particular
// order.
//
// Signals are not safe for concurrent use; like the rest of the package they
// assume a single-writer tick loop.
type Signal[F any] struct {
	handlers map[int]F
	nextID   int
	disposed bool
}

// Connect registers fn and returns a function that unregisters it.
// Connecting to a disposed signal does nothing and returns a no-op.
func (s *Signal[F]) Connect(fn F) (unsubscribe func()) {
	if s.disposed {
		return func() {}
	}
	if s.handlers == nil {
		s.handlers = make(map[int]F)
	}
	id := s.nextID
	s.nextID++
	s.handlers[id] = fn
	return func() {
		delete(s.handlers, id)
	}
}

// Len returns the number of registered handlers.
func (s *Signal[F]) Len() int {
	return len(s.handlers)
}

// Clear removes every handler. The signal remains connectable.
func (s *Signal[F]) Clear() {
	clear(s.handlers)
}

// Dispose removes every handler and permanently refuses new connections.
func (s *Signal[F]) Dispose() {
	s.Clear()
	s.disposed = true
}
