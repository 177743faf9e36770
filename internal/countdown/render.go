package countdown

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// ///////////////////////////////////////////////
// ANSI Codes
// ///////////////////////////////////////////////

const (
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// Bar cell characters.
const (
	barFilledCell = "#"
	barEmptyCell  = "-"
)

// ///////////////////////////////////////////////
// Bar Math
// ///////////////////////////////////////////////

// barFill returns the number of filled cells for a bar of the given
// width. Fill is floor(width * elapsed / total); a zero total is treated
// as fully complete to avoid dividing by zero. The result is clamped to
// [0, width], so it is monotonically non-decreasing in elapsed and equals
// width exactly when elapsed == total.
func barFill(width, elapsed, total int) int {
	if total <= 0 {
		return width
	}
	fill := width * elapsed / total
	if fill < 0 {
		return 0
	}
	if fill > width {
		return width
	}
	return fill
}

// percent returns round(100 * elapsed / total) clamped to [0, 100].
// A zero total reads as 100%.
func percent(elapsed, total int) int {
	if total <= 0 {
		return 100
	}
	// Integer rounding: floor(x + 1/2) with x = 100*elapsed/total.
	p := (200*elapsed + total) / (2 * total)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// plural returns "s" unless n is exactly 1.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// ///////////////////////////////////////////////
// Renderer
// ///////////////////////////////////////////////

// renderer owns all writes to the progress stream for one run. It tracks
// whether a single-line tick is currently on screen without a trailing
// newline, and the visible width of that line so a shorter successor can
// pad over it.
type renderer struct {
	out   io.Writer
	total int
	opts  Options

	// lineOpen is true while a single-line tick sits on the terminal
	// without a newline.
	lineOpen bool
	// lastWidth is the visible rune width of the last single-line tick.
	lastWidth int
}

func newRenderer(out io.Writer, total int, opts Options) *renderer {
	return &renderer{out: out, total: total, opts: opts}
}

// header prints the opening lines: what is being waited for, when the
// wait started, and the computed ETA in local HH:MM:SS. It prints even
// in quiet mode.
func (r *renderer) header(start time.Time) {
	fmt.Fprintf(r.out, "Sleeping for %d second%s...\n", r.total, plural(r.total))
	eta := start.Add(time.Duration(r.total) * time.Second)
	fmt.Fprintf(r.out, "Started at %s, ETA %s.\n", start.Format("15:04:05"), eta.Format("15:04:05"))
}

// line builds the per-tick progress line. plain carries no escape codes
// and is used for width accounting; styled is what actually gets written
// (identical to plain unless Colorize is set).
func (r *renderer) line(elapsed int) (plain, styled string) {
	var p, s strings.Builder

	if r.opts.ShowBar {
		fill := barFill(r.opts.BarWidth, elapsed, r.total)
		filled := strings.Repeat(barFilledCell, fill)
		empty := strings.Repeat(barEmptyCell, r.opts.BarWidth-fill)

		p.WriteString("[" + filled + empty + "]")
		if r.opts.Colorize {
			s.WriteString("[" + ansiGreen + filled + ansiReset + empty + "]")
		} else {
			s.WriteString("[" + filled + empty + "]")
		}

		pct := fmt.Sprintf(" %3d%% | ", percent(elapsed, r.total))
		p.WriteString(pct)
		s.WriteString(pct)
	}

	counts := fmt.Sprintf("Elapsed: %d s | Remaining: %d s", elapsed, r.total-elapsed)
	p.WriteString(counts)
	s.WriteString(counts)
	return p.String(), s.String()
}

// tick renders one iteration's progress. In single-line mode the line is
// rewritten in place with a carriage return and padded to cover whatever
// the previous tick left behind; no trailing newline is emitted so the
// final state stays visible mid-run.
func (r *renderer) tick(elapsed int) {
	if r.opts.Quiet {
		return
	}
	plain, styled := r.line(elapsed)

	if r.opts.Multiline {
		fmt.Fprintln(r.out, styled)
		return
	}

	width := utf8.RuneCountInString(plain)
	pad := ""
	if width < r.lastWidth {
		pad = strings.Repeat(" ", r.lastWidth-width)
	}
	fmt.Fprintf(r.out, "\r%s%s", styled, pad)
	r.lastWidth = width
	r.lineOpen = true
}

// closeLine terminates an open single-line tick so subsequent output
// does not clobber it.
func (r *renderer) closeLine() {
	if r.lineOpen {
		fmt.Fprintln(r.out)
		r.lineOpen = false
	}
}

// done prints the completion summary.
func (r *renderer) done() {
	r.closeLine()
	msg := fmt.Sprintf("Done. Slept for %d second%s.", r.total, plural(r.total))
	if r.opts.Colorize {
		msg = ansiGreen + msg + ansiReset
	}
	fmt.Fprintln(r.out, msg)
}

// interrupted closes any in-progress line on the progress stream, then
// reports partial progress on errOut. The notice is uncolored: it may be
// redirected separately from stdout.
func (r *renderer) interrupted(errOut io.Writer, elapsed int) {
	r.closeLine()
	fmt.Fprintf(errOut, "Interrupted at %d/%d seconds.\n", elapsed, r.total)
}
