// Package sysinfo reports the host operating system name and release,
// used to compose the client's default user agent.
package sysinfo

// Info holds the operating system identity of the running host.
type Info struct {
	Name    string
	Release string
}

// Source supplies host information. The default is Collect; tests and
// embedders may substitute a fixed source.
type Source func() Info

// Collect returns the host OS name and release. Platform-specific
// implementations live in the per-GOOS files.
func Collect() Info {
	return collect()
}
