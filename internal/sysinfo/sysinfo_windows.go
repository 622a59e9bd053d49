//go:build windows

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// collect reads the NT version numbers; RtlGetNtVersionNumbers is not
// subject to the compatibility-manifest lies GetVersionEx tells.
func collect() Info {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return Info{
		Name:    "Windows",
		Release: fmt.Sprintf("%d.%d.%d", major, minor, build),
	}
}
