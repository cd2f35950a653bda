package signalz

import "time"

// Window is a read-only view of one toggled window: a bounded-lifetime
// sub-stream replaying the source values observed between its opening event
// and its closing trigger. Consumers may subscribe to observe values but
// cannot inject values or settle the window.
//
// A window that was force-canceled (its parent output subscription was torn
// down before the window closed) delivers ErrWindowCanceled to any late
// subscriber rather than leaving it waiting.
type Window[T any] struct {
	opened  time.Time
	subject *Subject[T]
}

func newWindow[T any](opened time.Time) Window[T] {
	return Window[T]{opened: opened, subject: NewSubject[T]()}
}

// OpenedAt returns the time the window's opening event was observed,
// according to the operator's Clock.
func (w Window[T]) OpenedAt() time.Time {
	return w.opened
}

// Subscribe implements Stream.
func (w Window[T]) Subscribe(o Observer[T]) Subscription {
	return w.subject.Subscribe(o)
}

func (w Window[T]) subscribeAny(o Observer[any]) Subscription {
	return w.subject.subscribeAny(o)
}
