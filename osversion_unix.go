//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package drivererr

import "golang.org/x/sys/unix"

func osVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return NotAvailable
	}
	return unix.ByteSliceToString(uts.Release[:])
}
