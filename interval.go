package signalz

import "time"

// After returns a stream that emits the current time once, d after
// subscription, then completes. It is the natural closing trigger for
// time-bounded windows.
//
// Example:
//
//	// Windows that stay open for five seconds.
//	toggle := signalz.NewWindowToggle[Event, string](opens,
//		func(string) any { return signalz.After(clock, 5*time.Second) },
//	)
func After(clock Clock, d time.Duration) Stream[time.Time] {
	return StreamFunc[time.Time](func(o Observer[time.Time]) Subscription {
		timer := clock.NewTimer(d)
		done := make(chan struct{})
		sub := newHandle(func() {
			timer.Stop()
			close(done)
		})

		go func() {
			select {
			case t := <-timer.C():
				if !sub.Active() {
					return
				}
				o.value(t)
				if sub.Active() {
					o.complete()
					sub.Cancel()
				}
			case <-done:
			}
		}()

		return sub
	})
}

// Interval returns a stream that emits the tick time every d. It never
// completes; subscriptions end only by cancellation, which stops the
// underlying ticker.
func Interval(clock Clock, d time.Duration) Stream[time.Time] {
	return StreamFunc[time.Time](func(o Observer[time.Time]) Subscription {
		ticker := clock.NewTicker(d)
		done := make(chan struct{})
		sub := newHandle(func() {
			ticker.Stop()
			close(done)
		})

		go func() {
			for {
				select {
				case t := <-ticker.C():
					if !sub.Active() {
						return
					}
					o.value(t)
				case <-done:
					return
				}
			}
		}()

		return sub
	})
}
