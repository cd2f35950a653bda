package signalz

// Take passes through the first n values, then completes the output and
// cancels the upstream subscription. A Take of zero completes immediately
// on subscribe without attaching upstream.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Take[T any] struct {
	name string
	n    int
}

// NewTake creates an operator that limits a stream to its first n values.
//
// Example:
//
//	// First three windows only.
//	first := signalz.NewTake[signalz.Window[int]](3)
//	stream := first.Apply(windows)
//
// Returns a new Take operator.
func NewTake[T any](n int) *Take[T] {
	return &Take[T]{
		name: "take",
		n:    n,
	}
}

// WithName sets a custom name for this operator.
// If not set, defaults to "take".
func (t *Take[T]) WithName(name string) *Take[T] {
	t.name = name
	return t
}

// Name returns the operator name.
func (t *Take[T]) Name() string {
	return t.name
}

// Apply binds the operator to a source stream.
func (t *Take[T]) Apply(source Stream[T]) Stream[T] {
	return StreamFunc[T](func(o Observer[T]) Subscription {
		if t.n <= 0 {
			o.complete()
			return settled()
		}

		// The upstream handle goes through a set: the limit can be hit
		// while Subscribe is still emitting synchronously, before the
		// handle exists, and Add on a canceled set releases it.
		upstream := NewSubscriptionSet()
		remaining := t.n

		upstream.Add(source.Subscribe(Observer[T]{
			OnValue: func(v T) {
				if remaining <= 0 {
					return
				}
				remaining--
				o.value(v)
				if remaining == 0 {
					o.complete()
					upstream.Cancel()
				}
			},
			OnError: func(err error) {
				o.error(err)
				upstream.Cancel()
			},
			OnComplete: func() {
				o.complete()
				upstream.Cancel()
			},
		}))

		return upstream
	})
}
