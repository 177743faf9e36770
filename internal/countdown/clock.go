package countdown

import "time"

// ///////////////////////////////////////////////
// Clock
// ///////////////////////////////////////////////

// Clock abstracts wall-clock reads and the one-second wait so the loop
// can run against a fake in tests without real time passing.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
	// SleepUnit blocks for one second. It returns true if cancel fired
	// before the second elapsed, false once the full unit completed.
	SleepUnit(cancel <-chan struct{}) bool
}

// SystemClock implements Clock on the runtime timer. A cancelled wait
// returns immediately; there is no busy-waiting, and unrelated signals
// cannot wake the timer early (the runtime absorbs EINTR).
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// SleepUnit waits one second on a timer or aborts when cancel fires.
func (SystemClock) SleepUnit(cancel <-chan struct{}) bool {
	t := time.NewTimer(time.Second)
	defer t.Stop()
	select {
	case <-t.C:
		return false
	case <-cancel:
		return true
	}
}
