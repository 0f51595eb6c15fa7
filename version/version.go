/*package version tracks the semantic version of the library and of the
parameter data baked into it.*/
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceVersion is the semantic version number of the source tree. The
// embedded parameter sets in the cosmo package carry their own version
// string which must be major-compatible with this one.
const SourceVersion = "0.3.1"

// Version is a parsed semantic version number.
type Version struct {
	Major, Minor, Patch int
}

// Parse parses a version string of the form "major.minor.patch" and returns
// an error if the string does not take that form.
func Parse(s string) (Version, error) {
	toks := strings.Split(s, ".")
	if len(toks) != 3 {
		return Version{}, fmt.Errorf("The version string '%s' does not take "+
			"the form of three period-separated non-negative numbers.", s)
	}

	var v Version
	fields := []*int{&v.Major, &v.Minor, &v.Patch}
	for i := range toks {
		n, err := strconv.Atoi(toks[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("The version string '%s' does not "+
				"take the form of three period-separated non-negative "+
				"numbers.", s)
		}
		*fields[i] = n
	}

	return v, nil
}

// String returns the canonical "major.minor.patch" form of v.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Later reports whether v represents a strictly later version than w.
func (v Version) Later(w Version) bool {
	if v.Major != w.Major {
		return v.Major > w.Major
	}
	if v.Minor != w.Minor {
		return v.Minor > w.Minor
	}
	return v.Patch > w.Patch
}

// Compatible returns a non-nil error if data versioned with the string s
// cannot be used with this version of the source. Compatibility only
// requires that the major version numbers match.
func Compatible(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	src, _ := Parse(SourceVersion)

	if v.Major != src.Major {
		return fmt.Errorf("Data version %s is not compatible with source "+
			"version %s.", s, SourceVersion)
	}
	return nil
}
