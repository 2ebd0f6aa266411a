// Package version parses and compares release version tags.
//
// Tags are dot-separated numeric versions of up to three components
// ("1.3", "v1.3.0"). Missing trailing components default to zero.
// Non-numeric components are a validation error rather than being
// silently parsed as zero.
package version

import (
	"fmt"
	"strings"

	"github.com/blang/semver"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

// Parse parses a version tag into a semver version.
// A leading "v" or "V" prefix is accepted and stripped.
func Parse(tag string) (semver.Version, error) {
	trimmed := strings.TrimSpace(tag)
	trimmed = strings.TrimPrefix(trimmed, "v")
	trimmed = strings.TrimPrefix(trimmed, "V")

	v, err := semver.ParseTolerant(trimmed)
	if err != nil {
		return semver.Version{}, fmt.Errorf("version tag %q: %w", tag, apperrors.ErrInvalid)
	}
	return v, nil
}

// Compare compares two version tags.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// IsNewer reports whether candidate is strictly newer than current.
// Equal or older versions report false.
func IsNewer(candidate, current string) (bool, error) {
	cmp, err := Compare(candidate, current)
	if err != nil {
		return false, err
	}
	return cmp > 0, nil
}
