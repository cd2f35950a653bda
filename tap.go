package signalz

// Tap executes a side effect for each value while passing everything
// through unchanged. It observes without interfering: logging, metrics,
// and debugging hooks belong here rather than inside mapping functions.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Tap[T any] struct {
	name string
	fn   func(T)
}

// NewTap creates an operator that invokes fn on each value before
// forwarding it. The side effect runs inside the delivery path.
//
// Example:
//
//	var count atomic.Int64
//	counted := signalz.NewTap(func(Trade) { count.Add(1) })
//	stream := counted.Apply(trades)
//
// Returns a new Tap operator.
func NewTap[T any](fn func(T)) *Tap[T] {
	return &Tap[T]{
		name: "tap",
		fn:   fn,
	}
}

// WithName sets a custom name for this operator.
// If not set, defaults to "tap".
func (t *Tap[T]) WithName(name string) *Tap[T] {
	t.name = name
	return t
}

// Name returns the operator name.
func (t *Tap[T]) Name() string {
	return t.name
}

// Apply binds the operator to a source stream.
func (t *Tap[T]) Apply(source Stream[T]) Stream[T] {
	return StreamFunc[T](func(o Observer[T]) Subscription {
		return source.Subscribe(Observer[T]{
			OnValue: func(v T) {
				t.fn(v)
				o.value(v)
			},
			OnError:    o.OnError,
			OnComplete: o.OnComplete,
		})
	})
}
