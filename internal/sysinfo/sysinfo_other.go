//go:build !unix && !windows

package sysinfo

import "runtime"

func collect() Info {
	return Info{Name: runtime.GOOS}
}
