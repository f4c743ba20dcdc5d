// This file is part of Rawframe.
//
// Rawframe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rawframe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rawframe.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the application, derived from the
// build information embedded by the Go toolchain.
//
// A release version number can be set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/rawframe/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the application. It is used for the
// window title and log messages.
const ApplicationName = "Rawframe"

// number is set by the linker for release builds
var number string

// revision is the vcs revision, with a "+dirty" suffix if the working tree
// was modified at build time
var revision string

// version is number if it is set. otherwise it is "unreleased" if vcs
// information is available and "local" if not
var version string

// Version returns the version string, the revision string and whether this
// is a release version.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns a string suitable for a window title.
func Title() string {
	return fmt.Sprintf("%s (%s)", ApplicationName, version)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
