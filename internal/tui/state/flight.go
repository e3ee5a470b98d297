package state

import "sync/atomic"

// Flight guards an asynchronous action so only one instance runs at a time.
// It is a two-state machine: idle and in-flight.
type Flight struct {
	busy atomic.Bool
}

// TryBegin moves the guard from idle to in-flight. It returns false, and
// changes nothing, when an action is already running.
func (f *Flight) TryBegin() bool {
	return f.busy.CompareAndSwap(false, true)
}

// End returns the guard to idle.
func (f *Flight) End() {
	f.busy.Store(false)
}

// InFlight reports whether an action is running.
func (f *Flight) InFlight() bool {
	return f.busy.Load()
}
