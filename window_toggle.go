package signalz

// WindowToggle opens one window per opening event and closes each window on
// its own trigger, derived from the opening value. The output emits one
// Window per opening, in opening order; each window replays the source
// values observed between its opening and its closing, open-inclusive and
// close-exclusive. Windows are independent: any number may be open at once,
// with overlapping lifetimes, and every open window receives every source
// value in its own interval.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type WindowToggle[T, O any] struct {
	name     string
	openings any
	closing  func(O) any
	clock    Clock
}

// NewWindowToggle creates an operator that emits a window of source values
// for each opening event, closed by a per-window trigger.
//
// openings is any stream-like value accepted by From[O]; each of its
// emissions opens a window. closingSelector is invoked with the opening
// value and returns any trigger-like value accepted by Trigger; the
// window closes when that trigger first fires or completes. A selector
// result that cannot be coerced fails the whole output: every open window
// (including the one just created) receives the error, then the output
// errors.
//
// The output terminates in lockstep with the source. On source completion
// every remaining window completes, oldest first, then the output
// completes. On source error every remaining window receives the error,
// then the output errors. Canceling the output subscription cancels the
// opening and closing subscriptions and force-cancels remaining windows:
// their existing subscribers hear nothing further, and late subscribers
// receive ErrWindowCanceled immediately.
//
// When to use:
//   - Per-entity activity windows opened and closed by control events
//   - Capturing bursts around externally-detected conditions
//   - Correlating a data stream against start/stop marker streams
//   - Market or session phases with overlapping lifetimes
//
// Example:
//
//	// One window per auction, closed when that auction settles.
//	opens := signalz.NewSubject[Auction]()
//	toggle := signalz.NewWindowToggle[Bid, Auction](opens,
//		func(a Auction) any { return a.Settled },
//	)
//
//	windows := toggle.Apply(bids)
//	windows.Subscribe(signalz.Observer[signalz.Window[Bid]]{
//		OnValue: func(w signalz.Window[Bid]) {
//			w.Subscribe(signalz.Observer[Bid]{
//				OnValue: func(b Bid) { record(w.OpenedAt(), b) },
//			})
//		},
//	})
//
// Parameters:
//   - openings: stream-like value whose emissions open windows
//   - closingSelector: derives each window's closing trigger
//
// Returns a new WindowToggle operator with fluent configuration.
func NewWindowToggle[T, O any](openings any, closingSelector func(O) any) *WindowToggle[T, O] {
	return &WindowToggle[T, O]{
		name:     "window-toggle",
		openings: openings,
		closing:  closingSelector,
		clock:    RealClock,
	}
}

// WithClock sets the clock used to stamp Window.OpenedAt.
// If not set, defaults to RealClock.
func (wt *WindowToggle[T, O]) WithClock(clock Clock) *WindowToggle[T, O] {
	wt.clock = clock
	return wt
}

// WithName sets a custom name for this operator.
// If not set, defaults to "window-toggle".
func (wt *WindowToggle[T, O]) WithName(name string) *WindowToggle[T, O] {
	wt.name = name
	return wt
}

// Name returns the operator name.
func (wt *WindowToggle[T, O]) Name() string {
	return wt.name
}

// Apply binds the operator to a source stream. The returned stream is cold:
// each Subscribe wires a fresh registry and listener set.
func (wt *WindowToggle[T, O]) Apply(source Stream[T]) Stream[Window[T]] {
	return StreamFunc[Window[T]](func(downstream Observer[Window[T]]) Subscription {
		openings, err := From[O](wt.openings)
		if err != nil {
			downstream.error(err)
			return settled()
		}

		registry := &windowRegistry[T]{}
		subs := NewSubscriptionSet()
		out := newGate(downstream, subs.Cancel)

		// fail drains every open window with err, then errors the output.
		// The gate turns terminal before the drain runs, so an opening or
		// source value pushed reentrantly from a window's terminal callback
		// is absorbed rather than leaking a fresh, never-drained window.
		// A second failure is absorbed outright.
		fail := func(err error) {
			out.error(err, func() {
				for _, w := range registry.snapshotAndClear() {
					w.subject.Error(err)
				}
			})
		}

		opening := openings.Subscribe(Observer[O]{
			OnValue: func(v O) {
				if !out.active() {
					return
				}
				w := newWindow[T](wt.clock.Now())
				registry.register(w)

				closing := NewSubscriptionSet()
				subs.Add(closing)
				closeWindow := func() {
					registry.remove(w)
					w.subject.Complete()
					closing.Cancel()
				}

				trigger, err := Trigger(wt.closing(v))
				if err != nil {
					fail(err)
					return
				}

				// Emit before wiring the trigger, so a consumer observes
				// the window even when the trigger fires synchronously
				// during its own subscription.
				out.value(w)

				closing.Add(trigger.Subscribe(Observer[struct{}]{
					OnValue:    func(struct{}) { closeWindow() },
					OnComplete: closeWindow,
					OnError:    fail,
				}))
			},
			OnError: fail,
			// Openings completing is not terminal: existing windows stay
			// open, no new ones open.
		})
		subs.Add(opening)

		src := source.Subscribe(Observer[T]{
			OnValue: func(v T) {
				for _, w := range registry.snapshot() {
					w.subject.Next(v)
				}
			},
			OnComplete: func() {
				out.complete(func() {
					for _, w := range registry.snapshotAndClear() {
						w.subject.Complete()
					}
				})
			},
			OnError: fail,
		})
		subs.Add(src)

		return newHandle(func() {
			out.cancel()
			for _, w := range registry.snapshotAndClear() {
				w.subject.Cancel()
			}
		})
	})
}
