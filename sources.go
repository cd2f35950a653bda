package signalz

// Just returns a stream that synchronously emits the given values on
// subscribe, then completes. Canceling from within an observer callback
// stops the remaining emissions.
func Just[T any](values ...T) Stream[T] {
	return StreamFunc[T](func(o Observer[T]) Subscription {
		sub := newHandle(nil)
		for _, v := range values {
			if !sub.Active() {
				return sub
			}
			o.value(v)
		}
		if sub.Active() {
			o.complete()
			sub.Cancel()
		}
		return sub
	})
}

// Empty returns a stream that completes immediately on subscribe.
func Empty[T any]() Stream[T] {
	return StreamFunc[T](func(o Observer[T]) Subscription {
		o.complete()
		return settled()
	})
}

// Never returns a stream that emits nothing and never terminates.
// Its subscriptions can only end by cancellation.
func Never[T any]() Stream[T] {
	return StreamFunc[T](func(Observer[T]) Subscription {
		return newHandle(nil)
	})
}

// Fault returns a stream that errors immediately on subscribe.
func Fault[T any](err error) Stream[T] {
	return StreamFunc[T](func(o Observer[T]) Subscription {
		o.error(err)
		return settled()
	})
}

// FromChannel adapts a receive channel to a stream. Each subscription runs
// its own receive loop in a goroutine; closing the channel completes the
// stream, canceling the subscription stops the loop. The channel itself is
// never closed by the stream.
func FromChannel[T any](ch <-chan T) Stream[T] {
	return StreamFunc[T](func(o Observer[T]) Subscription {
		done := make(chan struct{})
		sub := newHandle(func() { close(done) })

		go func() {
			for {
				select {
				case v, ok := <-ch:
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
					o.value(v)
				case <-done:
					return
				}
			}
		}()

		return sub
	})
}
