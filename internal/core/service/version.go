package service

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// parsePlatformVersion reads a platform build number such as "6.14.0.1234"
// as a semantic version. Only the first three segments are significant.
func parsePlatformVersion(raw string) (*semver.Version, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ".", 4)
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return semver.NewVersion(strings.Join(parts, "."))
}

// sameFeatureRelease reports whether two platform versions share major and
// minor numbers. ok is false when either version is missing or unreadable.
func sameFeatureRelease(a, b string) (same bool, ok bool) {
	if a == "" || b == "" {
		return false, false
	}
	va, err := parsePlatformVersion(a)
	if err != nil {
		return false, false
	}
	vb, err := parsePlatformVersion(b)
	if err != nil {
		return false, false
	}
	return va.Major() == vb.Major() && va.Minor() == vb.Minor(), true
}
