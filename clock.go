package signalz

import "github.com/zoobzio/clockz"

// Clock provides time operations for deterministic testing. Operators that
// touch time (WindowToggle timestamps, After, Interval) take a Clock so
// tests can drive them with a fake.
type Clock = clockz.Clock

// Timer represents a single event timer.
type Timer = clockz.Timer

// Ticker delivers ticks at intervals.
type Ticker = clockz.Ticker

// RealClock is the default Clock using standard time.
var RealClock Clock = clockz.RealClock
