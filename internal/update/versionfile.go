package update

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

// VersionFileName is the marker file inside the install directory. Its
// contents are the single source of truth for what is installed; the
// version is never guessed from other signals.
const VersionFileName = "VERSION.txt"

// ReadInstalledVersion reads the version marker from installDir. An
// absent marker (or absent directory) means "not installed" and returns
// an empty string without error.
func ReadInstalledVersion(installDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(installDir, VersionFileName))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", apperrors.Wrap(err, "readVersionFile")
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteInstalledVersion overwrites the version marker. Called only after
// the install directory holds a verified, complete installation.
func WriteInstalledVersion(installDir, tag string) error {
	path := filepath.Join(installDir, VersionFileName)
	if err := os.WriteFile(path, []byte(tag), 0644); err != nil {
		return apperrors.Wrap(err, "writeVersionFile")
	}
	return nil
}
