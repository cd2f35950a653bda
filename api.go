// Package signalz provides push-based, type-safe stream primitives built
// around explicit subscriptions, enabling event-driven processing through
// sources, operators, and multicast subjects.
//
// The core abstraction is the Stream interface: a push-based sequence of
// values delivered to a subscribed Observer, terminated by at most one of
// complete or error. Subscribing returns a Subscription whose Cancel stops
// further delivery.
//
// Basic usage:
//
//	opens := signalz.NewSubject[string]()
//	source := signalz.NewSubject[int]()
//
//	// Open a window per opening event; close it when its trigger fires.
//	toggle := signalz.NewWindowToggle[int, string](opens, func(id string) any {
//		return signalz.After(signalz.RealClock, time.Second)
//	})
//
//	sub := toggle.Apply(source).Subscribe(signalz.Observer[signalz.Window[int]]{
//		OnValue: func(w signalz.Window[int]) {
//			w.Subscribe(signalz.Observer[int]{
//				OnValue: func(v int) { fmt.Println("in window:", v) },
//			})
//		},
//	})
//	defer sub.Cancel()
//
// Delivery is serialized per subscription: callbacks for one subscription
// are never invoked in parallel, but they may be invoked reentrantly: an
// observer callback may itself emit on a subject or cancel a subscription,
// and operators are written to tolerate that.
//
// The package provides:
//   - Multicast subjects with tagged terminal states
//   - Toggled windows (one sub-stream per opening/closing pair)
//   - Coercion of stream-like values (channels, slices, funcs)
//   - Clock-driven sources for timers and intervals
//   - Mapping, filtering, tapping, and taking
package signalz

// Observer receives the signals of one subscription. Any field may be nil;
// nil callbacks are skipped. After OnError or OnComplete fires, no further
// callbacks are invoked for that subscription.
type Observer[T any] struct {
	// OnValue receives each emitted value, in emission order.
	OnValue func(T)

	// OnError receives the terminal error, if the stream fails.
	OnError func(error)

	// OnComplete is invoked once if the stream ends normally.
	OnComplete func()
}

func (o Observer[T]) value(v T) {
	if o.OnValue != nil {
		o.OnValue(v)
	}
}

func (o Observer[T]) error(err error) {
	if o.OnError != nil {
		o.OnError(err)
	}
}

func (o Observer[T]) complete() {
	if o.OnComplete != nil {
		o.OnComplete()
	}
}

// Stream is a push-based sequence of values. Subscribe attaches an Observer
// and returns a handle that cancels delivery. Each subscription observes
// values in emission order and at most one terminal event.
type Stream[T any] interface {
	Subscribe(Observer[T]) Subscription
}

// StreamFunc adapts a function to the Stream interface. It is the canonical
// cold-stream form: the function runs once per subscription.
type StreamFunc[T any] func(Observer[T]) Subscription

// Subscribe implements Stream.
func (f StreamFunc[T]) Subscribe(o Observer[T]) Subscription {
	return f(o)
}

func (f StreamFunc[T]) subscribeAny(o Observer[any]) Subscription {
	return f(eraseElem[T](o))
}

// eraseElem adapts an element-type-erased observer back to a typed one.
// Used by Trigger, where only signal timing matters.
func eraseElem[T any](o Observer[any]) Observer[T] {
	return Observer[T]{
		OnValue:    func(v T) { o.value(v) },
		OnError:    o.OnError,
		OnComplete: o.OnComplete,
	}
}
