package update

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

// InstallArchive extracts archivePath into targetDir, verifies that the
// entry-point file exists afterwards, and deletes the archive. Existing
// files are overwritten; updates intentionally replace prior files.
// Archive deletion is best-effort and never fails the install.
func InstallArchive(archivePath, targetDir, entryFile string) error {
	if err := extractZip(archivePath, targetDir); err != nil {
		return err
	}

	if err := os.Remove(archivePath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not delete archive %s: %v\n", archivePath, err)
	}

	entryPath := filepath.Join(targetDir, entryFile)
	if _, err := os.Stat(entryPath); err != nil {
		return &EntryFileMissingError{Dir: targetDir, File: entryFile}
	}
	return nil
}

// extractZip extracts every entry of a zip archive into destDir,
// creating directories as needed and overwriting existing files.
func extractZip(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = r.Close() }()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}

	for _, entry := range r.File {
		if err := extractEntry(entry, destDir); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(entry *zip.File, destDir string) error {
	destPath, err := sanitizePath(destDir, entry.Name)
	if err != nil {
		return err
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(destPath, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}

	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", entry.Name, err)
	}
	defer func() { _ = rc.Close() }()

	mode := entry.Mode()
	if mode == 0 {
		mode = 0644
	}

	f, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}

	if _, err := io.Copy(f, rc); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}
	return f.Close()
}

// sanitizePath resolves an archive entry name under destDir, rejecting
// absolute paths and traversal outside the target.
func sanitizePath(destDir, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) || cleaned == ".." {
		return "", fmt.Errorf("archive entry %q escapes the target directory: %w", name, apperrors.ErrInvalid)
	}
	return filepath.Join(destDir, cleaned), nil
}
