// This file is part of Vregress.
//
// Vregress is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Vregress is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Vregress.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "vregress"

// if number is empty then the project was probably not built using the makefile
var number string

// revision contains the vcs revision. if the source has been modified but has
// not been committed then the revision string will be suffixed with "+dirty"
var revision string

// Version contains the current version number of the project
//
// If the version string is "unreleased" then it means that the project has
// been built manually (ie. not with the makefile)
var Version string

func init() {
	if number == "" {
		Version = "unreleased"
	} else {
		Version = number
	}

	if revision == "" {
		info, ok := debug.ReadBuildInfo()
		if ok {
			var modified bool
			for _, v := range info.Settings {
				switch v.Key {
				case "vcs.revision":
					revision = v.Value
				case "vcs.modified":
					modified = v.Value == "true"
				}
			}
			if modified {
				revision = fmt.Sprintf("%s+dirty", revision)
			}
		}
	}

	if revision != "" {
		Version = fmt.Sprintf("%s (%s)", Version, revision)
	}
}
