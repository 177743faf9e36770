// Terminal detection for Windows.
//
// GetConsoleMode succeeds only when the handle refers to a console
// screen buffer, which is the Windows equivalent of the Unix termios
// probe: it fails for pipes and redirected files.

//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// ///////////////////////////////////////////////
// Terminal Detection
// ///////////////////////////////////////////////

// stdoutIsTerminal reports whether stdout is attached to a console.
// When it is not, single-line rendering degrades to multiline and color
// is disabled.
func stdoutIsTerminal() bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(os.Stdout.Fd()), &mode) == nil
}
