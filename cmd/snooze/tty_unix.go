// Terminal detection for Unix-like platforms.
//
// The termios ioctl succeeds only on terminal devices; on pipes and
// regular files it fails with ENOTTY. The ioctl request constant differs
// between Linux and the BSD family, so it lives in tty_linux.go and
// tty_bsd.go.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// ///////////////////////////////////////////////
// Terminal Detection
// ///////////////////////////////////////////////

// stdoutIsTerminal reports whether stdout is attached to a terminal.
// When it is not, single-line rendering degrades to multiline and color
// is disabled.
func stdoutIsTerminal() bool {
	_, err := unix.IoctlGetTermios(int(os.Stdout.Fd()), ioctlReadTermios)
	return err == nil
}
