// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String formats the build information on one line.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	s := fmt.Sprintf("dockarea %s", version)
	if i.Commit != "" && i.Commit != "unknown" {
		s += fmt.Sprintf(" (%s)", i.Commit)
	}
	if i.BuildDate != "" && i.BuildDate != "unknown" {
		s += " built " + i.BuildDate
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	return s
}
