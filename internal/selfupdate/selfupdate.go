// Package selfupdate updates the launcher binary itself from its own
// release repository.
package selfupdate

import (
	"context"
	"strings"

	"github.com/blang/semver"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
	"github.com/mirrorbytes/launcher/internal/github"
)

// Updater checks for and applies launcher releases.
type Updater struct {
	client     *github.Client
	binaryName string
	current    string
}

// New creates an updater. currentVersion is the running build's version
// string; "dev" builds always consider a release newer.
func New(client *github.Client, binaryName, currentVersion string) *Updater {
	return &Updater{
		client:     client,
		binaryName: binaryName,
		current:    currentVersion,
	}
}

// CheckResult reports whether a newer launcher release exists.
type CheckResult struct {
	Available bool
	Current   string
	Latest    string
	Release   *github.Release
}

// Check fetches the latest release and compares it with the running
// version.
func (u *Updater) Check(ctx context.Context) (*CheckResult, error) {
	release, err := u.client.LatestRelease(ctx)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		Current: u.current,
		Latest:  release.TagName,
		Release: release,
	}

	newer, err := isNewer(release.TagName, u.current)
	if err != nil {
		return nil, err
	}
	result.Available = newer
	return result, nil
}

// isNewer reports whether the release tag is strictly newer than the
// running version. Development builds never refuse an update.
func isNewer(tag, current string) (bool, error) {
	if current == "dev" || current == "" {
		return true, nil
	}

	latest, err := parseVersion(tag)
	if err != nil {
		return false, err
	}
	running, err := parseVersion(current)
	if err != nil {
		return false, err
	}
	return latest.GT(running), nil
}

func parseVersion(v string) (semver.Version, error) {
	v = strings.TrimPrefix(v, "v")
	v = strings.TrimPrefix(v, "V")
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}, apperrors.Wrap(apperrors.ErrInvalid, "version "+v)
	}
	return parsed, nil
}
