package signalz

// Mapper transforms each value in a stream using a mapping function.
// Errors and completion pass through unchanged.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Mapper[In, Out any] struct {
	name string
	fn   func(In) Out
}

// NewMapper creates an operator that transforms stream values one-to-one.
// The mapping function should be pure: it runs inside the delivery path,
// so side effects interleave with upstream emission.
//
// When to use:
//   - Type conversion between pipeline stages
//   - Data enrichment and field extraction
//   - Unit or format normalization
//
// Example:
//
//	// Extract the symbol from each trade.
//	symbols := signalz.NewMapper(func(t Trade) string { return t.Symbol })
//	stream := symbols.Apply(trades)
//
// Parameters:
//   - fn: Transformation function applied to each value
//
// Returns a new Mapper operator.
func NewMapper[In, Out any](fn func(In) Out) *Mapper[In, Out] {
	return &Mapper[In, Out]{
		name: "mapper",
		fn:   fn,
	}
}

// WithName sets a custom name for this operator.
// If not set, defaults to "mapper".
func (m *Mapper[In, Out]) WithName(name string) *Mapper[In, Out] {
	m.name = name
	return m
}

// Name returns the operator name.
func (m *Mapper[In, Out]) Name() string {
	return m.name
}

// Apply binds the operator to a source stream.
func (m *Mapper[In, Out]) Apply(source Stream[In]) Stream[Out] {
	return StreamFunc[Out](func(o Observer[Out]) Subscription {
		return source.Subscribe(Observer[In]{
			OnValue:    func(v In) { o.value(m.fn(v)) },
			OnError:    o.OnError,
			OnComplete: o.OnComplete,
		})
	})
}
