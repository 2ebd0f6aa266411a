package selfupdate

import (
	"fmt"
	"runtime"
	"strings"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
	"github.com/mirrorbytes/launcher/internal/github"
)

// Platform identifies the OS/arch pair a release asset is built for.
type Platform struct {
	OS   string
	Arch string
}

// CurrentPlatform returns the running build's platform.
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

// ArchiveExtension returns the archive format releases use for this
// platform.
func (p Platform) ArchiveExtension() string {
	if p.OS == "windows" {
		return ".zip"
	}
	return ".tar.gz"
}

// findBinaryAsset locates the release archive for the platform.
// Release archives are named {binary}_{version}_{os}_{arch}{ext} with
// the version tag's v prefix stripped.
func findBinaryAsset(release *github.Release, binaryName string, platform Platform) (*github.Asset, error) {
	version := strings.TrimPrefix(release.TagName, "v")
	want := fmt.Sprintf("%s_%s_%s_%s%s", binaryName, version, platform.OS, platform.Arch, platform.ArchiveExtension())

	for i := range release.Assets {
		if release.Assets[i].Name == want {
			return &release.Assets[i], nil
		}
	}
	return nil, fmt.Errorf("no release asset %q for %s: %w", want, platform, apperrors.ErrNotFound)
}

// findChecksumsAsset locates the checksums file. Checksums are optional;
// a release without one returns nil.
func findChecksumsAsset(release *github.Release, binaryName string) *github.Asset {
	version := strings.TrimPrefix(release.TagName, "v")
	want := fmt.Sprintf("%s_%s_checksums.txt", binaryName, version)

	for i := range release.Assets {
		if release.Assets[i].Name == want {
			return &release.Assets[i]
		}
	}
	return nil
}
