// Package github queries the GitHub releases API for game builds.
package github

import (
	"time"
)

// Release represents one published release of a game repository.
type Release struct {
	TagName     string  `json:"tag_name"`
	Name        string  `json:"name"`
	Body        string  `json:"body"`
	Draft       bool    `json:"draft"`
	Prerelease  bool    `json:"prerelease"`
	PublishedAt string  `json:"published_at"`
	Author      Author  `json:"author"`
	Assets      []Asset `json:"assets"`
	ZipballURL  string  `json:"zipball_url"`
	TarballURL  string  `json:"tarball_url"`
}

// Author identifies who published a release.
type Author struct {
	Login string `json:"login"`
}

// Asset represents one downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// Published parses the release publish timestamp.
// Returns the zero time if the field is absent or malformed.
func (r *Release) Published() time.Time {
	ts, err := time.Parse(time.RFC3339, r.PublishedAt)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// SourceFallbackURL returns the generated source-snapshot URL, preferring
// the zipball. Empty when the release exposes neither.
func (r *Release) SourceFallbackURL() string {
	if r.ZipballURL != "" {
		return r.ZipballURL
	}
	return r.TarballURL
}
