// Package version holds build information injected at link time.
package version

import (
	"runtime"
)

// Version is set with -ldflags "-X github.com/cloudposse/gridtable/pkg/version.Version=v1.2.3".
var Version = "0.0.0-dev"

// Info describes the running binary.
type Info struct {
	Version string `json:"version" yaml:"version"`
	OS      string `json:"os" yaml:"os"`
	Arch    string `json:"arch" yaml:"arch"`
	Go      string `json:"go" yaml:"go"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version: Version,
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		Go:      runtime.Version(),
	}
}
