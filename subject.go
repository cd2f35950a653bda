package signalz

import "sync"

// termState tags a subject's terminal condition. Canceled is deliberately
// distinct from completed and errored: existing subscribers hear nothing,
// while late subscribers receive ErrWindowCanceled immediately.
type termState int

const (
	stateOpen termState = iota
	stateCompleted
	stateErrored
	stateCanceled
)

// Subject is a multicast channel: values pushed with Next are fanned out to
// every current subscriber. It buffers no history: a subscriber attached
// after a value was delivered does not receive it.
//
// A Subject settles at most once, through Complete, Error, or Cancel.
// Signals arriving after it settles are dropped. Subscribing to a settled
// subject yields the matching terminal signal immediately: OnComplete after
// Complete, OnError(err) after Error(err), and OnError(ErrWindowCanceled)
// after Cancel.
//
// Fan-out iterates a snapshot of the subscriber list, so an observer
// callback may subscribe, cancel, or emit reentrantly without corrupting
// delivery to its peers.
//
// Example:
//
//	temps := signalz.NewSubject[float64]()
//
//	sub := temps.Subscribe(signalz.Observer[float64]{
//		OnValue:    func(t float64) { fmt.Println("reading:", t) },
//		OnComplete: func() { fmt.Println("sensor offline") },
//	})
//	defer sub.Cancel()
//
//	temps.Next(21.5)
//	temps.Next(22.1)
//	temps.Complete()
type Subject[T any] struct {
	mu    sync.Mutex
	state termState
	err   error
	subs  []*subjectSub[T]
}

// NewSubject creates an open subject with no subscribers.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe implements Stream. On a settled subject the terminal signal is
// delivered synchronously and the returned handle is already inactive.
func (s *Subject[T]) Subscribe(o Observer[T]) Subscription {
	s.mu.Lock()
	switch s.state {
	case stateCompleted:
		s.mu.Unlock()
		o.complete()
		return settled()
	case stateErrored:
		err := s.err
		s.mu.Unlock()
		o.error(err)
		return settled()
	case stateCanceled:
		s.mu.Unlock()
		o.error(ErrWindowCanceled)
		return settled()
	}

	sub := &subjectSub[T]{subject: s, obs: o}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
	return sub
}

func (s *Subject[T]) subscribeAny(o Observer[any]) Subscription {
	return s.Subscribe(eraseElem[T](o))
}

// Next delivers v to every current subscriber, in subscription order.
// Dropped if the subject has settled.
func (s *Subject[T]) Next(v T) {
	s.mu.Lock()
	if s.state != stateOpen {
		s.mu.Unlock()
		return
	}
	targets := make([]*subjectSub[T], len(s.subs))
	copy(targets, s.subs)
	s.mu.Unlock()

	for _, sub := range targets {
		// A subscriber canceled mid-fan-out hears nothing further.
		s.mu.Lock()
		dead := sub.dead
		s.mu.Unlock()
		if !dead {
			sub.obs.value(v)
		}
	}
}

// Complete settles the subject normally. Idempotent.
func (s *Subject[T]) Complete() {
	s.settle(stateCompleted, nil)
}

// Error settles the subject with err. Idempotent.
func (s *Subject[T]) Error(err error) {
	s.settle(stateErrored, err)
}

// Cancel settles the subject without signaling existing subscribers.
// Late subscribers receive ErrWindowCanceled.
func (s *Subject[T]) Cancel() {
	s.settle(stateCanceled, nil)
}

func (s *Subject[T]) settle(state termState, err error) {
	s.mu.Lock()
	if s.state != stateOpen {
		s.mu.Unlock()
		return
	}
	s.state = state
	s.err = err
	targets := s.subs
	s.subs = nil
	for _, sub := range targets {
		sub.dead = true
	}
	s.mu.Unlock()

	if state == stateCanceled {
		return
	}
	for _, sub := range targets {
		if state == stateCompleted {
			sub.obs.complete()
		} else {
			sub.obs.error(err)
		}
	}
}

// subjectSub is one subscriber's handle. Removal is by identity: a
// subscriber may cancel out of subscription order.
type subjectSub[T any] struct {
	subject *Subject[T]
	obs     Observer[T]
	dead    bool // guarded by subject.mu
}

func (sub *subjectSub[T]) Cancel() {
	s := sub.subject
	s.mu.Lock()
	if sub.dead {
		s.mu.Unlock()
		return
	}
	sub.dead = true
	for i, cur := range s.subs {
		if cur == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
}

func (sub *subjectSub[T]) Active() bool {
	s := sub.subject
	s.mu.Lock()
	defer s.mu.Unlock()
	return !sub.dead
}
