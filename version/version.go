// This file is part of Falconpanel.
//
// Falconpanel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Falconpanel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Falconpanel.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the version number of the project and the vcs
// state it was built from.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Falconpanel"

// Version number of the most recent release. Set through the linker by the
// release process.
var number string

// Revision contains the vcs revision the binary was built from. If the
// source had been modified but not committed the string is suffixed with
// "+dirty".
var revision string

// Version returns the version string, the vcs revision and whether this is a
// numbered release build.
//
// If the version string is "unreleased" the project was built outside of the
// release process. If it is "local" there is no vcs information at all,
// which happens when running with "go run .".
func Version() (string, string, bool) {
	return version, revision, version == number && number != ""
}

var version string

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
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

	if number != "" {
		version = number
	} else {
		version = "unreleased"
	}

	if vcs && vcsRevision != "" {
		revision = vcsRevision
		if vcsModified {
			revision += "+dirty"
		}
	} else {
		revision = "no vcs information"
		if number == "" {
			version = "local"
		}
	}
}
