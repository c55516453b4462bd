//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysinfo

import "runtime"

func uname() (release, machine string) {
	return unknown, runtime.GOARCH
}
