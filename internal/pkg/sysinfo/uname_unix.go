//go:build linux || darwin || freebsd || netbsd || openbsd

package sysinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// uname 커널 릴리스와 머신 아키텍처를 반환합니다. (예: "6.8.0-45-generic", "x86_64")
func uname() (release, machine string) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return unknown, runtime.GOARCH
	}

	release = unix.ByteSliceToString(u.Release[:])
	machine = unix.ByteSliceToString(u.Machine[:])

	if release == "" {
		release = unknown
	}
	if machine == "" {
		machine = runtime.GOARCH
	}

	return release, machine
}
