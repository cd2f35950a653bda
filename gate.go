package signalz

import "sync"

// gate wraps a downstream observer and enforces the at-most-one-terminal
// contract for an output fed by independently-timed event sources. The
// first of complete, error, or cancel wins; later signals are absorbed.
// The lock is never held across an observer callback, so a callback may
// reentrantly settle the gate.
type gate[T any] struct {
	mu       sync.Mutex
	obs      Observer[T]
	done     bool
	onSettle func()
}

func newGate[T any](obs Observer[T], onSettle func()) *gate[T] {
	return &gate[T]{obs: obs, onSettle: onSettle}
}

func (g *gate[T]) value(v T) {
	g.mu.Lock()
	if g.done {
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()
	g.obs.value(v)
}

// complete settles the gate normally. drain, if non-nil, runs after the
// gate turns terminal and before the completion is delivered: signals
// pushed reentrantly from inside drain find the gate already settled and
// are absorbed.
func (g *gate[T]) complete(drain func()) {
	if !g.trip() {
		return
	}
	if drain != nil {
		drain()
	}
	g.obs.complete()
	g.settle()
}

// error settles the gate with err. drain runs under the same contract as
// in complete.
func (g *gate[T]) error(err error, drain func()) {
	if !g.trip() {
		return
	}
	if drain != nil {
		drain()
	}
	g.obs.error(err)
	g.settle()
}

// cancel settles silently: no terminal signal reaches the observer.
func (g *gate[T]) cancel() {
	if !g.trip() {
		return
	}
	g.settle()
}

func (g *gate[T]) active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.done
}

func (g *gate[T]) trip() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.done {
		return false
	}
	g.done = true
	return true
}

func (g *gate[T]) settle() {
	if g.onSettle != nil {
		g.onSettle()
	}
}
