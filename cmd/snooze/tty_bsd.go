//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package main

import "golang.org/x/sys/unix"

// ioctlReadTermios is the termios read request on the BSD family,
// including macOS.
const ioctlReadTermios = unix.TIOCGETA
