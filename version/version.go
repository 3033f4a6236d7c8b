package version

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is the current release. The schema version used by the
// migration history is the major.minor part of it.
var Version = "0.1.0"

func GetCurrentVersion() string {
	return Version
}

// GetMinorVersion returns the major.minor part of a version string.
func GetMinorVersion(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return version
	}
	return strings.Join(parts[:2], ".")
}

// GetSchemaVersion returns the version the database schema follows,
// which is the minor version with a zeroed patch level.
func GetSchemaVersion(version string) string {
	return GetMinorVersion(version) + ".0"
}

// SortVersion sorts version strings in ascending semver order in place
// and returns the slice.
func SortVersion(versions []string) []string {
	sort.Slice(versions, func(i, j int) bool {
		return semver.Compare("v"+versions[i], "v"+versions[j]) < 0
	})
	return versions
}

func IsVersionGreaterThan(version, target string) bool {
	return semver.Compare("v"+version, "v"+target) > 0
}

func IsVersionGreaterOrEqualThan(version, target string) bool {
	return semver.Compare("v"+version, "v"+target) >= 0
}
