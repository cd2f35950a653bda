package signalz

import "sync"

// Subscription is the cancellation handle returned by Subscribe.
// Cancel is idempotent and stops further delivery to the observer;
// it does not signal a terminal event.
type Subscription interface {
	// Cancel stops delivery. Safe to call more than once.
	Cancel()

	// Active reports whether the subscription can still receive signals.
	Active() bool
}

// NewSubscription creates a Subscription from a stop function, for custom
// sources built on StreamFunc. The stop function runs at most once, on the
// first Cancel. A nil stop is allowed.
func NewSubscription(stop func()) Subscription {
	return newHandle(stop)
}

// handle is the basic Subscription: a one-shot stop function.
type handle struct {
	mu   sync.Mutex
	stop func()
	done bool
}

func newHandle(stop func()) *handle {
	return &handle{stop: stop}
}

// settled returns an already-inactive Subscription, used by streams that
// terminate during Subscribe itself.
func settled() Subscription {
	return &handle{done: true}
}

func (h *handle) Cancel() {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		return
	}
	h.done = true
	stop := h.stop
	h.stop = nil
	h.mu.Unlock()

	if stop != nil {
		stop()
	}
}

func (h *handle) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.done
}

// SubscriptionSet is a container of subscriptions that cancels as a unit.
// Handles may be added dynamically; adding to an already-canceled set
// cancels the handle immediately, so a subscription whose stream settled
// during Subscribe is still released exactly once.
type SubscriptionSet struct {
	mu       sync.Mutex
	canceled bool
	subs     []Subscription
}

// NewSubscriptionSet creates an empty set.
func NewSubscriptionSet() *SubscriptionSet {
	return &SubscriptionSet{}
}

// Add ties sub to the set's lifetime.
func (s *SubscriptionSet) Add(sub Subscription) {
	s.mu.Lock()
	if s.canceled {
		s.mu.Unlock()
		sub.Cancel()
		return
	}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
}

// Cancel cancels every contained subscription. Idempotent.
func (s *SubscriptionSet) Cancel() {
	s.mu.Lock()
	if s.canceled {
		s.mu.Unlock()
		return
	}
	s.canceled = true
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}
}

// Active reports whether the set has not been canceled.
func (s *SubscriptionSet) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.canceled
}
