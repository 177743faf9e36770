// Package interrupt provides the write-once interrupt latch.
//
// A Latch is set at most once per process run: the signal goroutine trips
// it on Ctrl+C and the countdown loop both polls it and selects on its
// Done channel to abort an in-flight sleep. There is no reset — a run
// handles exactly one interrupt, because the process exits right after
// detecting it.
package interrupt

import (
	"os"
	"os/signal"
	"sync/atomic"
)

// ///////////////////////////////////////////////
// Latch
// ///////////////////////////////////////////////

// Latch is a process-wide interrupt flag. The zero value is not usable;
// construct with [New].
type Latch struct {
	// tripped is the flag itself; read from the loop goroutine, written
	// from the signal goroutine.
	tripped atomic.Bool
	// done is closed exactly once when the latch trips, so sleeps can
	// select on it.
	done chan struct{}
}

// New returns an untripped latch. Until [Latch.Install] is called it can
// only be tripped programmatically, which is how tests drive it.
func New() *Latch {
	return &Latch{done: make(chan struct{})}
}

// Trip sets the latch. It is idempotent and safe to call from any
// goroutine, including concurrently.
func (l *Latch) Trip() {
	if l.tripped.CompareAndSwap(false, true) {
		close(l.done)
	}
}

// Tripped reports whether the latch has been set. Never blocks.
func (l *Latch) Tripped() bool {
	return l.tripped.Load()
}

// Done returns a channel that is closed when the latch trips.
func (l *Latch) Done() <-chan struct{} {
	return l.done
}

// ///////////////////////////////////////////////
// Signal Installation
// ///////////////////////////////////////////////

// Install registers the platform interrupt signal (Ctrl+C) and starts a
// goroutine that trips the latch on receipt. The signal channel is
// buffered so a signal arriving while the goroutine is busy is not lost.
// SIGTERM is deliberately not registered: the exit code contract is
// 128+SIGINT, and reporting 130 for a SIGTERM would mislead process
// managers.
//
// signal.Notify cannot fail, so Install has no error return. A latch
// that was never installed still behaves correctly — the countdown
// simply cannot be interrupted by a signal.
func (l *Latch) Install() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		<-ch
		l.Trip()
	}()
}
