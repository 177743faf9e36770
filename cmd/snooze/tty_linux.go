//go:build linux

package main

import "golang.org/x/sys/unix"

// ioctlReadTermios is the termios read request on Linux.
const ioctlReadTermios = unix.TCGETS
