package window

// Subscription is a handle to a registered callback. Unsubscribe removes it;
// calling Unsubscribe more than once is a no-op.
type Subscription struct {
	remove func()
}

// Unsubscribe removes the callback this subscription refers to.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.remove == nil {
		return
	}
	s.remove()
	s.remove = nil
}

// callbacks is an ordered list of callbacks. Removal keeps the relative
// order of the remaining entries.
type callbacks[F any] struct {
	nextID  uint64
	entries []callbackEntry[F]
}

type callbackEntry[F any] struct {
	id uint64
	fn F
}

func (c *callbacks[F]) add(fn F) *Subscription {
	c.nextID++
	id := c.nextID
	c.entries = append(c.entries, callbackEntry[F]{id: id, fn: fn})
	return &Subscription{remove: func() { c.remove(id) }}
}

func (c *callbacks[F]) remove(id uint64) {
	for i, e := range c.entries {
		if e.id == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// each calls visit for a snapshot of the registered callbacks, so callbacks
// may unsubscribe themselves while being notified.
func (c *callbacks[F]) each(visit func(F)) {
	if len(c.entries) == 0 {
		return
	}
	snapshot := make([]callbackEntry[F], len(c.entries))
	copy(snapshot, c.entries)
	for _, e := range snapshot {
		visit(e.fn)
	}
}

func (c *callbacks[F]) len() int {
	return len(c.entries)
}

// Setting is an observable configuration value.
type Setting[T comparable] struct {
	value     T
	observers callbacks[func(T)]
}

// NewSetting creates a setting holding the given initial value.
func NewSetting[T comparable](initial T) *Setting[T] {
	return &Setting[T]{value: initial}
}

// Get returns the current value.
func (s *Setting[T]) Get() T {
	return s.value
}

// Set stores v and notifies observers in subscription order.
// Observers are not notified when v equals the current value.
func (s *Setting[T]) Set(v T) {
	if s.value == v {
		return
	}
	s.value = v
	s.observers.each(func(fn func(T)) { fn(v) })
}

// Observe registers fn to be called on every change. When callOnStart is
// true fn is also called immediately with the current value.
func (s *Setting[T]) Observe(fn func(T), callOnStart bool) *Subscription {
	sub := s.observers.add(fn)
	if callOnStart {
		fn(s.value)
	}
	return sub
}

// Observers returns the number of registered observers.
func (s *Setting[T]) Observers() int {
	return s.observers.len()
}
