package signalz

import "reflect"

// anyStream is the element-type-erased subscribe implemented by the
// canonical stream forms (StreamFunc, Subject, Window). Trigger uses it to
// treat a stream of any element type as a bare signal.
type anyStream interface {
	subscribeAny(Observer[any]) Subscription
}

// From coerces a stream-like value into a Stream[T].
//
// Accepted inputs:
//   - Stream[T] (including StreamFunc[T], *Subject[T], Window[T])
//   - func(Observer[T]) Subscription
//   - <-chan T or chan T (values pumped per subscription; channel close
//     completes the stream)
//   - []T (values emitted synchronously on subscribe, then complete)
//
// Anything else, including nil, returns a *CoercionError.
func From[T any](src any) (Stream[T], error) {
	switch s := src.(type) {
	case Stream[T]:
		return s, nil
	case func(Observer[T]) Subscription:
		return StreamFunc[T](s), nil
	case <-chan T:
		return FromChannel(s), nil
	case chan T:
		return FromChannel[T](s), nil
	case []T:
		return Just(s...), nil
	default:
		return nil, &CoercionError{Value: src}
	}
}

// Trigger coerces a stream-like value into a bare signal stream. The
// element type of the input is irrelevant, since only emission timing,
// error, and completion carry through, so Trigger accepts streams and
// channels of any element type. Closing notifiers are the typical use: a trigger built
// from After fires once, one built from a subject fires when the subject
// does.
//
// Accepted inputs:
//   - Stream[struct{}] or func(Observer[struct{}]) Subscription
//   - any canonical signalz stream, regardless of element type
//   - any receivable channel kind (each receive fires the signal; close
//     completes it)
//
// Anything else, including nil, returns a *CoercionError.
func Trigger(src any) (Stream[struct{}], error) {
	switch s := src.(type) {
	case Stream[struct{}]:
		return s, nil
	case func(Observer[struct{}]) Subscription:
		return StreamFunc[struct{}](s), nil
	case anyStream:
		return StreamFunc[struct{}](func(o Observer[struct{}]) Subscription {
			return s.subscribeAny(Observer[any]{
				OnValue:    func(any) { o.value(struct{}{}) },
				OnError:    o.OnError,
				OnComplete: o.OnComplete,
			})
		}), nil
	}

	val := reflect.ValueOf(src)
	if val.Kind() == reflect.Chan && val.Type().ChanDir()&reflect.RecvDir != 0 {
		return triggerChan(val), nil
	}
	return nil, &CoercionError{Value: src}
}

// triggerChan adapts an arbitrary channel kind into a signal stream via
// reflection. Each subscription runs its own receive loop.
func triggerChan(ch reflect.Value) Stream[struct{}] {
	return StreamFunc[struct{}](func(o Observer[struct{}]) Subscription {
		done := make(chan struct{})
		sub := newHandle(func() { close(done) })

		go func() {
			cases := []reflect.SelectCase{
				{Dir: reflect.SelectRecv, Chan: ch},
				{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(done)},
			}
			for {
				chosen, _, ok := reflect.Select(cases)
				if chosen == 1 {
					return
				}
				if !ok {
					if sub.Active() {
						o.complete()
						sub.Cancel()
					}
					return
				}
				if !sub.Active() {
					return
				}
				o.value(struct{}{})
			}
		}()

		return sub
	})
}
