// Package countdown implements the once-per-second countdown loop and its
// progress rendering.
//
// The loop is a three-state machine: it keeps running while units remain
// and the interrupt latch is clear, and terminates either interrupted or
// done. Elapsed counts only fully completed one-second units, so an
// interrupt during unit k reports k-1.
package countdown

import (
	"io"
	"log/slog"

	"snooze/internal/interrupt"
)

// ///////////////////////////////////////////////
// Options and Result
// ///////////////////////////////////////////////

// DefaultBarWidth is the bar width used when Options.BarWidth is unset.
const DefaultBarWidth = 20

// Options holds the immutable rendering configuration for one run,
// merged from the config file and CLI flags before the loop starts.
type Options struct {
	// Multiline emits one full line per tick instead of overwriting a
	// single line.
	Multiline bool
	// Quiet suppresses per-tick output; the header and final summary
	// still print.
	Quiet bool
	// ShowBar renders the fixed-width progress bar and percentage.
	ShowBar bool
	// Colorize wraps the bar fill and summary in ANSI color.
	Colorize bool
	// BarWidth is the bar width in cells; 0 means DefaultBarWidth.
	BarWidth int
}

// Result reports how a run ended.
type Result struct {
	// Elapsed is the number of fully completed one-second units.
	Elapsed int
	// Interrupted is true when the run ended via the interrupt latch.
	Interrupted bool
}

// ///////////////////////////////////////////////
// Loop
// ///////////////////////////////////////////////

// Run counts down total seconds, rendering progress to out and, on
// interrupt, a notice to errOut. It checks the latch before every sleep
// and aborts an in-flight sleep through the latch's Done channel, so the
// loop never oversleeps an interrupt by more than the timer resolution.
//
// Invariant: 0 <= Result.Elapsed <= total, and the loop terminates
// exactly when Elapsed reaches total or the latch trips.
func Run(out, errOut io.Writer, clock Clock, latch *interrupt.Latch, total int, opts Options) Result {
	if opts.BarWidth <= 0 {
		opts.BarWidth = DefaultBarWidth
	}

	r := newRenderer(out, total, opts)
	r.header(clock.Now())

	elapsed := 0
	for elapsed < total {
		if latch.Tripped() {
			return interrupted(r, errOut, elapsed, total)
		}
		if clock.SleepUnit(latch.Done()) {
			return interrupted(r, errOut, elapsed, total)
		}
		elapsed++
		r.tick(elapsed)
		slog.Debug("tick", "elapsed_s", elapsed, "remaining_s", total-elapsed)
	}

	// A zero-second countdown never enters the loop; still show one
	// tick so the bar and percentage read 100%.
	if total == 0 {
		r.tick(0)
	}

	r.done()
	return Result{Elapsed: elapsed}
}

// interrupted finishes an aborted run: closes the in-progress line,
// writes the notice to errOut, and reports the partial result.
func interrupted(r *renderer, errOut io.Writer, elapsed, total int) Result {
	r.interrupted(errOut, elapsed)
	slog.Debug("countdown interrupted", "elapsed_s", elapsed, "total_s", total)
	return Result{Elapsed: elapsed, Interrupted: true}
}
