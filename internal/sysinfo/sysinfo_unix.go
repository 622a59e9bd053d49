//go:build unix

package sysinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// collect reads the kernel name and release from uname(2).
func collect() Info {
	var name unix.Utsname
	if err := unix.Uname(&name); err != nil {
		return Info{Name: runtime.GOOS}
	}
	return Info{
		Name:    nulTerminated(name.Sysname[:]),
		Release: nulTerminated(name.Release[:]),
	}
}

// nulTerminated converts a fixed-size utsname field to a string,
// stopping at the first NUL byte.
func nulTerminated(field []byte) string {
	for i, c := range field {
		if c == 0 {
			return string(field[:i])
		}
	}
	return string(field)
}
