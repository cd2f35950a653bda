package signalz

// Filter selectively passes stream values through based on a predicate.
// Only values for which the predicate returns true reach the observer;
// errors and completion pass through unchanged.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Filter[T any] struct {
	name      string
	predicate func(T) bool
}

// NewFilter creates an operator that drops values failing the predicate.
// The predicate should be pure and deterministic for predictable
// filtering.
//
// When to use:
//   - Remove invalid or unwanted values from a stream
//   - Apply business rules before windowing or aggregation
//   - Reduce downstream load early in a pipeline
//
// Example:
//
//	// Only large trades.
//	large := signalz.NewFilter(func(t Trade) bool { return t.Size >= 1000 })
//	stream := large.Apply(trades)
//
// Parameters:
//   - predicate: Returns true for values to keep
//
// Returns a new Filter operator.
func NewFilter[T any](predicate func(T) bool) *Filter[T] {
	return &Filter[T]{
		name:      "filter",
		predicate: predicate,
	}
}

// WithName sets a custom name for this operator.
// If not set, defaults to "filter".
func (f *Filter[T]) WithName(name string) *Filter[T] {
	f.name = name
	return f
}

// Name returns the operator name.
func (f *Filter[T]) Name() string {
	return f.name
}

// Apply binds the operator to a source stream.
func (f *Filter[T]) Apply(source Stream[T]) Stream[T] {
	return StreamFunc[T](func(o Observer[T]) Subscription {
		return source.Subscribe(Observer[T]{
			OnValue: func(v T) {
				if f.predicate(v) {
					o.value(v)
				}
			},
			OnError:    o.OnError,
			OnComplete: o.OnComplete,
		})
	})
}
