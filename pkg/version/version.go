// Package version compares loosely formatted version strings.
//
// A version is the ordered list of every maximal run of decimal digits in
// the input. Anything else is a separator. Input without digits is the
// version "0", so parsing never fails and "Unknown" compares equal to "".
// Missing trailing components count as zero.
package version

import (
	"regexp"
	"strings"
)

var (
	digitRun    = regexp.MustCompile(`[0-9]+`)
	recordRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)
)

// Version is the list of numeric components of a version string. Components
// are kept as canonical decimal strings (no leading zeros) so runs of any
// length compare without overflow.
type Version []string

// Parse extracts the numeric components of s
func Parse(s string) Version {
	runs := digitRun.FindAllString(s, -1)
	if len(runs) == 0 {
		return Version{"0"}
	}

	v := make(Version, len(runs))
	for i, r := range runs {
		v[i] = canonical(r)
	}
	return v
}

// Compare returns -1, 0 or 1 as a is older than, equal to or newer than b
func Compare(a, b string) int {
	return Parse(a).Compare(Parse(b))
}

// IsNewer reports whether candidate is strictly newer than current
func IsNewer(candidate, current string) bool {
	return Compare(candidate, current) > 0
}

// IsValid reports whether s is a dotted list of decimal numbers, the only
// form accepted for a stored version record.
func IsValid(s string) bool {
	return recordRegex.MatchString(s)
}

// Compare orders v against other, padding the shorter one with zeros
func (v Version) Compare(other Version) int {
	n := len(v)
	if len(other) > n {
		n = len(other)
	}

	for i := 0; i < n; i++ {
		if c := compareComponent(v.at(i), other.at(i)); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether both versions are the same after zero padding
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// String joins the components with dots
func (v Version) String() string {
	if len(v) == 0 {
		return "0"
	}
	return strings.Join(v, ".")
}

func (v Version) at(i int) string {
	if i < len(v) {
		return canonical(v[i])
	}
	return "0"
}

func canonical(run string) string {
	trimmed := strings.TrimLeft(run, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// compareComponent compares two canonical decimal strings numerically
func compareComponent(a, b string) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
