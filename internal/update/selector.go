// Package update implements the release-acquisition pipeline: asset
// selection, streaming downloads, archive installation and the atomic
// install-directory swap.
package update

import (
	"fmt"
	"strings"

	"github.com/mirrorbytes/launcher/internal/github"
)

// patchPrefix marks delta assets, named Patch-from-<version>.<ext>.
const patchPrefix = "Patch-from-"

// SelectedAsset is the asset chosen for download, with the derived
// classification the rest of the pipeline needs.
type SelectedAsset struct {
	Name string
	URL  string
	Size int64

	// IsPatch marks a delta asset applied on top of the installed version.
	IsPatch bool

	// IsSourceFallback marks a synthesized asset pointing at the generated
	// source snapshot. Downloads of these must not send an Accept override
	// or the API answers with an error instead of the redirect.
	IsSourceFallback bool
}

// IsArchive reports whether the asset needs extraction.
func (a *SelectedAsset) IsArchive() bool {
	return strings.HasSuffix(strings.ToLower(a.Name), ".zip")
}

// SelectAsset picks the best downloadable asset from a release.
//
// Priority: a patch matching the installed version, then a native
// installer, then a plain archive, then the generated source snapshot.
// Ties within a tier go to the first match in the asset list; the list is
// never reordered. installedVersion may be empty (fresh install), which
// skips the patch tier.
func SelectAsset(release *github.Release, owner, repo, installedVersion string) (*SelectedAsset, error) {
	if installedVersion != "" {
		patchName := patchPrefix + installedVersion
		for _, asset := range release.Assets {
			if strings.Contains(asset.Name, patchName) {
				return &SelectedAsset{
					Name:    asset.Name,
					URL:     asset.BrowserDownloadURL,
					Size:    asset.Size,
					IsPatch: true,
				}, nil
			}
		}
	}

	// Full installer next; skip stray patch files for other versions.
	for _, asset := range release.Assets {
		if strings.HasSuffix(strings.ToLower(asset.Name), ".exe") && !strings.Contains(asset.Name, patchPrefix) {
			return &SelectedAsset{Name: asset.Name, URL: asset.BrowserDownloadURL, Size: asset.Size}, nil
		}
	}

	for _, asset := range release.Assets {
		if strings.HasSuffix(strings.ToLower(asset.Name), ".zip") && !strings.Contains(asset.Name, patchPrefix) {
			return &SelectedAsset{Name: asset.Name, URL: asset.BrowserDownloadURL, Size: asset.Size}, nil
		}
	}

	if fallback := release.SourceFallbackURL(); fallback != "" {
		return &SelectedAsset{
			Name:             fmt.Sprintf("%s-%s-source.zip", repo, release.TagName),
			URL:              fallback,
			IsSourceFallback: true,
		}, nil
	}

	return nil, &NoAssetError{Owner: owner, Repo: repo, Tag: release.TagName}
}
