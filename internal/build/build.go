// Package build carries version information injected at link time.
package build

import "runtime"

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// NewInfo assembles build info from the ldflags values in main.
func NewInfo(version, commit, buildDate string) Info {
	return Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}
}
