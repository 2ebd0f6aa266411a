package update

import "fmt"

// NoAssetError is returned when a release has no usable asset and no
// source fallback. It is a user-facing terminal condition, so the message
// spells out how to fix the release rather than just stating failure.
type NoAssetError struct {
	Owner string
	Repo  string
	Tag   string
}

func (e *NoAssetError) Error() string {
	return fmt.Sprintf(`no installer or archive found in the latest release

To make the game downloadable:
  1. Open https://github.com/%s/%s/releases/tag/%s
  2. Click "Edit" on the release
  3. Upload the game zip as a release asset
  4. Update the release

Alternatively, install the game manually.`, e.Owner, e.Repo, e.Tag)
}

// EntryFileMissingError is returned when extraction completed but the
// expected entry-point executable is absent. Reported distinctly from
// extraction failure so diagnostics point at wrong archive contents
// rather than a corrupt archive.
type EntryFileMissingError struct {
	Dir  string
	File string
}

func (e *EntryFileMissingError) Error() string {
	return fmt.Sprintf("archive extracted but %s is missing under %s; the uploaded asset does not contain the game", e.File, e.Dir)
}
