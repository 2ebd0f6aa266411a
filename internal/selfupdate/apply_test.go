package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

func makeTarGz(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "archive.tar.gz")
	f, err := os.Create(path)
	require.NoError(t, err)

	gzw := gzip.NewWriter(f)
	tw := tar.NewWriter(gzw)
	for name, content := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name,
			Mode: 0755,
			Size: int64(len(content)),
		}))
		_, err = tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gzw.Close())
	require.NoError(t, f.Close())
	return path
}

func makeBinaryZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "archive.zip")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestExtractBinary_TarGz(t *testing.T) {
	archive := makeTarGz(t, map[string]string{
		"README.md": "docs",
		"mbl":       "launcher binary",
	})

	dest := t.TempDir()
	path, err := extractBinary(archive, dest, "mbl")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "launcher binary", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestExtractBinary_Zip(t *testing.T) {
	archive := makeBinaryZip(t, map[string]string{
		"LICENSE": "license",
		"mbl.exe": "launcher binary",
	})

	path, err := extractBinary(archive, t.TempDir(), "mbl")
	require.NoError(t, err)
	assert.Equal(t, "mbl.exe", filepath.Base(path))
}

func TestExtractBinary_Missing(t *testing.T) {
	archive := makeTarGz(t, map[string]string{"README.md": "docs"})

	_, err := extractBinary(archive, t.TempDir(), "mbl")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestExtractBinary_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.rar")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := extractBinary(path, t.TempDir(), "mbl")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalid(err))
}
