package errors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

// TestBaseErrors verifies that all base error types have correct messages.
func TestBaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotFound", apperrors.ErrNotFound, "not found"},
		{"ErrNotInstalled", apperrors.ErrNotInstalled, "not installed"},
		{"ErrAlreadyInProgress", apperrors.ErrAlreadyInProgress, "operation already in progress"},
		{"ErrNoBackup", apperrors.ErrNoBackup, "no backup found"},
		{"ErrRedirectLoop", apperrors.ErrRedirectLoop, "too many redirects"},
		{"ErrInvalid", apperrors.ErrInvalid, "invalid"},
		{"ErrIO", apperrors.ErrIO, "I/O error"},
		{"ErrCanceled", apperrors.ErrCanceled, "canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestReleaseError verifies ReleaseError formatting and unwrapping.
func TestReleaseError(t *testing.T) {
	tests := []struct {
		name string
		err  *apperrors.ReleaseError
		want string
	}{
		{
			name: "with repo",
			err:  &apperrors.ReleaseError{Op: "latest", Err: apperrors.ErrNotFound, Repo: "acme/game"},
			want: "release latest acme/game: not found",
		},
		{
			name: "without repo",
			err:  &apperrors.ReleaseError{Op: "list", Err: apperrors.ErrInvalid},
			want: "release list: invalid",
		},
		{
			name: "wrapped custom error",
			err:  &apperrors.ReleaseError{Op: "byTag", Err: fmt.Errorf("custom error"), Repo: "a/b"},
			want: "release byTag a/b: custom error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("Unwrap returns original error", func(t *testing.T) {
		original := apperrors.ErrNotFound
		wrapped := &apperrors.ReleaseError{Op: "latest", Err: original}
		if !errors.Is(wrapped, original) {
			t.Error("Unwrap() did not return the original error for errors.Is")
		}
	})
}

// TestInstallError verifies InstallError formatting and unwrapping.
func TestInstallError(t *testing.T) {
	tests := []struct {
		name string
		err  *apperrors.InstallError
		want string
	}{
		{
			name: "with dir",
			err:  &apperrors.InstallError{Stage: "extract", Err: apperrors.ErrIO, Dir: "/games/illusion"},
			want: "install extract /games/illusion: I/O error",
		},
		{
			name: "without dir",
			err:  &apperrors.InstallError{Stage: "download", Err: apperrors.ErrRedirectLoop},
			want: "install download: too many redirects",
		},
		{
			name: "wrapped os error",
			err:  &apperrors.InstallError{Stage: "swap", Err: os.ErrNotExist},
			want: "install swap: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("Unwrap supports errors.Is through the chain", func(t *testing.T) {
		wrapped := &apperrors.InstallError{Stage: "swap", Err: apperrors.Wrap(apperrors.ErrIO, "rename")}
		if !errors.Is(wrapped, apperrors.ErrIO) {
			t.Error("errors.Is failed on a doubly wrapped error")
		}
	})
}

// TestBackupError verifies BackupError formatting.
func TestBackupError(t *testing.T) {
	tests := []struct {
		name string
		err  *apperrors.BackupError
		want string
	}{
		{
			name: "with name",
			err:  &apperrors.BackupError{Op: "restore", Err: apperrors.ErrNotFound, Name: "pre-restore"},
			want: `backup restore "pre-restore": not found`,
		},
		{
			name: "without name",
			err:  &apperrors.BackupError{Op: "create", Err: apperrors.ErrIO},
			want: "backup create: I/O error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestConfigError verifies ConfigError formatting.
func TestConfigError(t *testing.T) {
	withPath := &apperrors.ConfigError{Path: "/home/u/.config/mbl/config.toml", Err: apperrors.ErrInvalid}
	if got, want := withPath.Error(), "config /home/u/.config/mbl/config.toml: invalid"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	withoutPath := &apperrors.ConfigError{Err: apperrors.ErrInvalid}
	if got, want := withoutPath.Error(), "config: invalid"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// TestWrap verifies Wrap adds context and preserves the error chain.
func TestWrap(t *testing.T) {
	err := apperrors.Wrap(apperrors.ErrNoBackup, "rollback")
	if got, want := err.Error(), "rollback: no backup found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, apperrors.ErrNoBackup) {
		t.Error("errors.Is failed through Wrap")
	}
}

// TestIsHelpers verifies the Is* helper functions.
func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(error) bool
		err  error
		want bool
	}{
		{"IsNotFound direct", apperrors.IsNotFound, apperrors.ErrNotFound, true},
		{"IsNotFound wrapped", apperrors.IsNotFound, apperrors.Wrap(apperrors.ErrNotFound, "op"), true},
		{"IsNotFound mismatch", apperrors.IsNotFound, apperrors.ErrIO, false},
		{"IsNotInstalled", apperrors.IsNotInstalled, apperrors.ErrNotInstalled, true},
		{"IsAlreadyInProgress", apperrors.IsAlreadyInProgress, apperrors.ErrAlreadyInProgress, true},
		{"IsNoBackup", apperrors.IsNoBackup, apperrors.ErrNoBackup, true},
		{"IsRedirectLoop", apperrors.IsRedirectLoop, apperrors.ErrRedirectLoop, true},
		{"IsInvalid", apperrors.IsInvalid, apperrors.ErrInvalid, true},
		{"IsIO", apperrors.IsIO, apperrors.ErrIO, true},
		{"IsCanceled", apperrors.IsCanceled, apperrors.ErrCanceled, true},
		{"nil error", apperrors.IsNotFound, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestAsHelpers verifies the As* helper functions.
func TestAsHelpers(t *testing.T) {
	t.Run("AsReleaseError finds nested error", func(t *testing.T) {
		inner := &apperrors.ReleaseError{Op: "latest", Err: apperrors.ErrNotFound, Repo: "a/b"}
		wrapped := apperrors.Wrap(inner, "check")
		re, ok := apperrors.AsReleaseError(wrapped)
		if !ok {
			t.Fatal("AsReleaseError() returned false")
		}
		if re.Op != "latest" || re.Repo != "a/b" {
			t.Errorf("unexpected fields: %+v", re)
		}
	})

	t.Run("AsInstallError on unrelated error", func(t *testing.T) {
		if _, ok := apperrors.AsInstallError(apperrors.ErrIO); ok {
			t.Error("AsInstallError() matched an unrelated error")
		}
	})

	t.Run("AsBackupError finds direct error", func(t *testing.T) {
		be := &apperrors.BackupError{Op: "delete", Err: apperrors.ErrNotFound, Name: "old"}
		got, ok := apperrors.AsBackupError(be)
		if !ok || got.Name != "old" {
			t.Errorf("AsBackupError() = %+v, %v", got, ok)
		}
	})

	t.Run("AsConfigError finds nested error", func(t *testing.T) {
		ce := &apperrors.ConfigError{Path: "p", Err: apperrors.ErrInvalid}
		got, ok := apperrors.AsConfigError(fmt.Errorf("load: %w", ce))
		if !ok || got.Path != "p" {
			t.Errorf("AsConfigError() = %+v, %v", got, ok)
		}
	})
}
