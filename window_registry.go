package signalz

import "sync"

// windowRegistry is the ordered set of currently-open windows, insertion
// order = opening order. It is the only state shared between the opening,
// closing, and source listeners of one WindowToggle subscription.
//
// Fan-out always iterates a snapshot, never the live slice: a window
// consumer may synchronously open or close windows while a source value is
// still being distributed. Removal is by identity and idempotent, since a
// window's own closing trigger and a global drain may race to remove the
// same window.
type windowRegistry[T any] struct {
	mu      sync.Mutex
	windows []Window[T]
}

func (r *windowRegistry[T]) register(w Window[T]) {
	r.mu.Lock()
	r.windows = append(r.windows, w)
	r.mu.Unlock()
}

// remove deletes w by identity. No-op if absent.
func (r *windowRegistry[T]) remove(w Window[T]) {
	r.mu.Lock()
	for i, cur := range r.windows {
		if cur.subject == w.subject {
			r.windows = append(r.windows[:i], r.windows[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
}

// snapshot copies the current windows without clearing, for per-value
// fan-out.
func (r *windowRegistry[T]) snapshot() []Window[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Window[T], len(r.windows))
	copy(out, r.windows)
	return out
}

// snapshotAndClear atomically takes the current windows and empties the
// registry, for the global termination paths.
func (r *windowRegistry[T]) snapshotAndClear() []Window[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.windows
	r.windows = nil
	return out
}
