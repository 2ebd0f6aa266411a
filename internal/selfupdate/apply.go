package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goupdate "github.com/inconshreveable/go-update"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
	"github.com/mirrorbytes/launcher/internal/github"
	"github.com/mirrorbytes/launcher/internal/update"
)

// Apply downloads the platform archive for the release, verifies it
// against the release checksums when present, extracts the binary and
// swaps it over the running executable. On failure the previous binary
// is rolled back.
func (u *Updater) Apply(ctx context.Context, release *github.Release, onProgress update.ProgressFunc) error {
	platform := CurrentPlatform()
	asset, err := findBinaryAsset(release, u.binaryName, platform)
	if err != nil {
		return err
	}

	tempDir, err := os.MkdirTemp("", "mbl-selfupdate-*")
	if err != nil {
		return apperrors.Wrap(err, "selfupdate")
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	downloader := update.NewDownloader()
	archivePath := filepath.Join(tempDir, asset.Name)
	opts := update.DownloadOptions{
		ExpectedSize:      asset.Size,
		AcceptOctetStream: true,
		OnProgress:        onProgress,
	}
	if err := downloader.Download(ctx, asset.BrowserDownloadURL, archivePath, opts); err != nil {
		return err
	}

	if checksums := findChecksumsAsset(release, u.binaryName); checksums != nil {
		checksumsPath := filepath.Join(tempDir, checksums.Name)
		if err := downloader.Download(ctx, checksums.BrowserDownloadURL, checksumsPath, update.DownloadOptions{AcceptOctetStream: true}); err != nil {
			return err
		}
		if err := verifyChecksum(archivePath, checksumsPath, asset.Name); err != nil {
			return err
		}
	}

	binaryPath, err := extractBinary(archivePath, tempDir, u.binaryName)
	if err != nil {
		return err
	}

	f, err := os.Open(binaryPath)
	if err != nil {
		return apperrors.Wrap(err, "selfupdate")
	}
	defer func() { _ = f.Close() }()

	if err := goupdate.Apply(f, goupdate.Options{}); err != nil {
		if rollbackErr := goupdate.RollbackError(err); rollbackErr != nil {
			return fmt.Errorf("update failed: %v, rollback failed: %w", err, rollbackErr)
		}
		return apperrors.Wrap(err, "selfupdate")
	}
	return nil
}

// verifyChecksum checks the archive's sha256 against the checksums file
// (lines of "<hex>  <filename>").
func verifyChecksum(archivePath, checksumsPath, assetName string) error {
	want, err := lookupChecksum(checksumsPath, assetName)
	if err != nil {
		return err
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return apperrors.Wrap(err, "checksum")
	}
	defer func() { _ = f.Close() }()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return apperrors.Wrap(err, "checksum")
	}

	got := hex.EncodeToString(hasher.Sum(nil))
	if !strings.EqualFold(got, want) {
		return fmt.Errorf("checksum mismatch for %s: got %s, want %s: %w", assetName, got, want, apperrors.ErrInvalid)
	}
	return nil
}

func lookupChecksum(checksumsPath, assetName string) (string, error) {
	f, err := os.Open(checksumsPath)
	if err != nil {
		return "", apperrors.Wrap(err, "checksum")
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[1] == assetName {
			return fields[0], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", apperrors.Wrap(err, "checksum")
	}
	return "", fmt.Errorf("no checksum entry for %s: %w", assetName, apperrors.ErrNotFound)
}

// extractBinary pulls the named binary out of a .tar.gz or .zip archive.
func extractBinary(archivePath, destDir, binaryName string) (string, error) {
	switch {
	case strings.HasSuffix(archivePath, ".tar.gz"):
		return extractTarGz(archivePath, destDir, binaryName)
	case strings.HasSuffix(archivePath, ".zip"):
		return extractZip(archivePath, destDir, binaryName)
	}
	return "", fmt.Errorf("unsupported archive format %s: %w", filepath.Ext(archivePath), apperrors.ErrInvalid)
}

func extractTarGz(archivePath, destDir, binaryName string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", apperrors.Wrap(err, "extract")
	}
	defer func() { _ = f.Close() }()

	gzr, err := gzip.NewReader(f)
	if err != nil {
		return "", apperrors.Wrap(err, "extract")
	}
	defer func() { _ = gzr.Close() }()

	tr := tar.NewReader(gzr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", apperrors.Wrap(err, "extract")
		}
		if header.Typeflag != tar.TypeReg || filepath.Base(header.Name) != binaryName {
			continue
		}
		return writeBinary(tr, destDir, binaryName)
	}
	return "", fmt.Errorf("binary %s not found in archive: %w", binaryName, apperrors.ErrNotFound)
}

func extractZip(archivePath, destDir, binaryName string) (string, error) {
	// Windows archives carry the .exe suffix on the binary.
	wantNames := map[string]bool{binaryName: true, binaryName + ".exe": true}

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", apperrors.Wrap(err, "extract")
	}
	defer func() { _ = zr.Close() }()

	for _, file := range zr.File {
		if file.FileInfo().IsDir() || !wantNames[filepath.Base(file.Name)] {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", apperrors.Wrap(err, "extract")
		}
		path, err := writeBinary(rc, destDir, filepath.Base(file.Name))
		_ = rc.Close()
		return path, err
	}
	return "", fmt.Errorf("binary %s not found in archive: %w", binaryName, apperrors.ErrNotFound)
}

func writeBinary(r io.Reader, destDir, name string) (string, error) {
	path := filepath.Join(destDir, name)
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return "", apperrors.Wrap(err, "extract")
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return "", apperrors.Wrap(err, "extract")
	}
	if err := out.Close(); err != nil {
		return "", apperrors.Wrap(err, "extract")
	}
	return path, nil
}
