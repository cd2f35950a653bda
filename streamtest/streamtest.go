// Package streamtest provides test utilities for signalz streams.
package streamtest

import (
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/signalz"
)

// Probe is a recording observer: it captures every value and the terminal
// signal of one subscription. Safe for streams that deliver from another
// goroutine (channel sources, timers).
type Probe[T any] struct {
	mu        sync.Mutex
	values    []T
	err       error
	completed bool
	done      chan struct{}
}

// NewProbe creates an unattached probe.
func NewProbe[T any]() *Probe[T] {
	return &Probe[T]{done: make(chan struct{})}
}

// Observer returns the observer to pass to Subscribe.
func (p *Probe[T]) Observer() signalz.Observer[T] {
	return signalz.Observer[T]{
		OnValue: func(v T) {
			p.mu.Lock()
			p.values = append(p.values, v)
			p.mu.Unlock()
		},
		OnError: func(err error) {
			p.mu.Lock()
			p.err = err
			p.mu.Unlock()
			close(p.done)
		},
		OnComplete: func() {
			p.mu.Lock()
			p.completed = true
			p.mu.Unlock()
			close(p.done)
		},
	}
}

// Values returns a copy of the values recorded so far.
func (p *Probe[T]) Values() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.values))
	copy(out, p.values)
	return out
}

// Err returns the recorded terminal error, if any.
func (p *Probe[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Completed reports whether the stream completed normally.
func (p *Probe[T]) Completed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

// WaitSettled blocks until the stream terminates or the timeout elapses.
// Returns true if the stream settled.
func (p *Probe[T]) WaitSettled(timeout time.Duration) bool {
	select {
	case <-p.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// CollectValues subscribes to a stream and returns every value delivered
// before the stream settles or the timeout elapses, whichever comes first.
// This is a shared utility to avoid duplicating collection loops in tests.
func CollectValues[T any](t *testing.T, s signalz.Stream[T], timeout time.Duration) []T {
	t.Helper()

	p := NewProbe[T]()
	sub := s.Subscribe(p.Observer())
	defer sub.Cancel()

	p.WaitSettled(timeout)
	return p.Values()
}

// CollectError subscribes to a stream and returns its terminal error, or
// nil if the stream did not error before the timeout.
func CollectError[T any](t *testing.T, s signalz.Stream[T], timeout time.Duration) error {
	t.Helper()

	p := NewProbe[T]()
	sub := s.Subscribe(p.Observer())
	defer sub.Cancel()

	p.WaitSettled(timeout)
	return p.Err()
}
