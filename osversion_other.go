//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package drivererr

func osVersion() string {
	return NotAvailable
}
