package signalz

import (
	"errors"
	"fmt"
)

// ErrWindowCanceled is delivered to observers that subscribe to a window
// after its parent subscription was canceled. Cancellation is a distinct
// terminal state: the window neither completed nor failed, and a late
// subscriber must not wait for signals that will never arrive.
var ErrWindowCanceled = errors.New("signalz: window canceled")

// CoercionError reports a value that could not be coerced into a stream.
// It is returned by From and Trigger, and surfaces as the terminal error of
// an operator whose stream-like input (or selector result) is not coercible.
type CoercionError struct {
	// Value is the input that failed coercion.
	Value any
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("signalz: cannot coerce %T into a stream", e.Value)
}
