package registry

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FormatVersion is the state file format written by this build. Files are
// readable as long as their major version matches.
const FormatVersion = "1.0.0"

// CheckFormat reports whether a state file of the given format can be read.
// newer is true when the file was written by a newer minor or patch
// revision of the format.
func CheckFormat(format string) (newer bool, err error) {
	fv, err := parseSemver(format)
	if err != nil {
		return false, fmt.Errorf("parsing state format %q: %w", format, err)
	}
	cur := semver.MustParse(FormatVersion)

	c, err := semver.NewConstraint(fmt.Sprintf("^%d", cur.Major()))
	if err != nil {
		return false, fmt.Errorf("building format constraint: %w", err)
	}
	if !c.Check(fv) {
		return false, fmt.Errorf("state format %s is not compatible with %s", fv, cur)
	}
	return fv.GreaterThan(cur), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
