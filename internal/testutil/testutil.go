// Package testutil provides helper functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempDir creates a temporary directory and registers a cleanup function.
// The directory is automatically deleted when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Errorf("failed to cleanup temp dir %s: %v", dir, err)
		}
	})

	return dir
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// InstallDir creates a fake install directory containing an entry-point
// executable and a version marker, and returns its path.
func InstallDir(t *testing.T, exeName, version string) string {
	t.Helper()

	dir := filepath.Join(TempDir(t), "game")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create install dir: %v", err)
	}
	WriteFile(t, filepath.Join(dir, exeName), "binary")
	if version != "" {
		WriteFile(t, filepath.Join(dir, "VERSION.txt"), version)
	}
	return dir
}
