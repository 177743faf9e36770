package main

import (
	"fmt"
	"strconv"
	"strings"

	"snooze/internal/config"
	"snooze/internal/countdown"
)

// ///////////////////////////////////////////////
// Argument Scan
// ///////////////////////////////////////////////

// cliArgs holds the result of scanning the command line.
type cliArgs struct {
	// duration is the countdown length in seconds; valid only when
	// haveDuration is true.
	duration     int
	haveDuration bool

	multiline bool
	quiet     bool
	bar       bool
	noBar     bool
	color     bool
	noColor   bool
	version   bool
}

// scanArgs performs a lenient scan over argv: recognized flags are
// applied, unrecognized flag-shaped tokens are silently skipped, and the
// first non-flag token is taken as the duration. A non-flag token that
// does not parse as a non-negative base-10 integer is an error.
//
// Note the skip rule means "-5" is treated as an unknown flag, not a
// negative duration; the scan then reports no duration, which the caller
// turns into the same usage error.
func scanArgs(argv []string) (cliArgs, error) {
	var a cliArgs
	for _, arg := range argv {
		switch arg {
		case "--multiline":
			a.multiline = true
		case "--quiet", "-q":
			a.quiet = true
		case "--bar":
			a.bar = true
		case "--no-bar":
			a.noBar = true
		case "--color":
			a.color = true
		case "--no-color":
			a.noColor = true
		case "--version":
			a.version = true
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				continue // unknown flag
			}
			if a.haveDuration {
				continue // extra positional
			}
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return a, fmt.Errorf("<seconds> must be a non-negative integer, got %q", arg)
			}
			a.duration = n
			a.haveDuration = true
		}
	}
	return a, nil
}

// ///////////////////////////////////////////////
// Option Merge
// ///////////////////////////////////////////////

// buildOptions merges config-file defaults with command-line flags
// (flags win) and applies the terminal downgrade: when stdout is not a
// terminal, single-line rendering and color are useless, so the run
// falls back to multiline without color.
func buildOptions(cfg *config.Config, a cliArgs, tty bool) countdown.Options {
	opts := countdown.Options{
		Multiline: cfg.Display.Multiline || a.multiline,
		Quiet:     cfg.Display.Quiet || a.quiet,
		ShowBar:   cfg.Display.Bar,
		Colorize:  cfg.Display.Color,
		BarWidth:  cfg.Display.BarWidth,
	}
	if a.bar {
		opts.ShowBar = true
	}
	if a.noBar {
		opts.ShowBar = false
	}
	if a.color {
		opts.Colorize = true
	}
	if a.noColor {
		opts.Colorize = false
	}
	if !tty {
		opts.Multiline = true
		opts.Colorize = false
	}
	return opts
}
