// Package errors provides a structured error type hierarchy for the launcher.
//
// This package defines base error types for common error conditions, wrapped
// error types that add contextual information, and helper functions for error
// wrapping and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - resource not found (repository, release, backup, game)
//   - ErrNotInstalled - no version marker in the install directory
//   - ErrAlreadyInProgress - a check or install is already running
//   - ErrNoBackup - rollback requested but no backup directory exists
//   - ErrRedirectLoop - a download exceeded the redirect bound
//   - ErrInvalid - validation failed
//   - ErrIO - file I/O error
//   - ErrCanceled - user canceled operation
//
// Wrapped error types (add context):
//   - ReleaseError{Op, Repo, Err} - release index errors
//   - InstallError{Stage, Dir, Err} - update pipeline errors
//   - BackupError{Op, Name, Err} - save backup errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	// Use sentinel errors directly
//	return errors.ErrNotFound
//
//	// Wrap with context using Wrap
//	return errors.Wrap(err, "readVersionFile")
//
//	// Use structured error types
//	return &errors.InstallError{Stage: "extract", Dir: dir, Err: err}
//
//	// Check error types
//	if errors.IsNotFound(err) {
//	    // handle not found
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = baseError("not found")

	// ErrNotInstalled indicates the install directory has no version marker.
	ErrNotInstalled = baseError("not installed")

	// ErrAlreadyInProgress indicates a check or install is already running.
	ErrAlreadyInProgress = baseError("operation already in progress")

	// ErrNoBackup indicates a rollback was requested with nothing to roll back to.
	ErrNoBackup = baseError("no backup found")

	// ErrRedirectLoop indicates a download exceeded the redirect bound.
	ErrRedirectLoop = baseError("too many redirects")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")

	// ErrCanceled indicates the user canceled an operation.
	ErrCanceled = baseError("canceled")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// ReleaseError represents an error that occurred while querying the release index.
type ReleaseError struct {
	// Op is the operation being performed (e.g., "latest", "list", "byTag").
	Op string
	// Repo is the owner/name pair being queried (optional).
	Repo string
	// Err is the underlying error.
	Err error
}

func (e *ReleaseError) Error() string {
	if e.Repo != "" {
		return fmt.Sprintf("release %s %s: %s", e.Op, e.Repo, e.Err)
	}
	return fmt.Sprintf("release %s: %s", e.Op, e.Err)
}

func (e *ReleaseError) Unwrap() error { return e.Err }

// InstallError represents an error that occurred during an update pipeline stage.
type InstallError struct {
	// Stage is the pipeline stage (e.g., "download", "extract", "install").
	Stage string
	// Dir is the install directory (optional).
	Dir string
	// Err is the underlying error.
	Err error
}

func (e *InstallError) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("install %s %s: %s", e.Stage, e.Dir, e.Err)
	}
	return fmt.Sprintf("install %s: %s", e.Stage, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// BackupError represents an error that occurred during a save backup operation.
type BackupError struct {
	// Op is the operation being performed (e.g., "create", "restore", "delete").
	Op string
	// Name is the backup name (optional).
	Name string
	// Err is the underlying error.
	Err error
}

func (e *BackupError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("backup %s %q: %s", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("backup %s: %s", e.Op, e.Err)
}

func (e *BackupError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotInstalled reports whether err is or wraps ErrNotInstalled.
func IsNotInstalled(err error) bool {
	return errors.Is(err, ErrNotInstalled)
}

// IsAlreadyInProgress reports whether err is or wraps ErrAlreadyInProgress.
func IsAlreadyInProgress(err error) bool {
	return errors.Is(err, ErrAlreadyInProgress)
}

// IsNoBackup reports whether err is or wraps ErrNoBackup.
func IsNoBackup(err error) bool {
	return errors.Is(err, ErrNoBackup)
}

// IsRedirectLoop reports whether err is or wraps ErrRedirectLoop.
func IsRedirectLoop(err error) bool {
	return errors.Is(err, ErrRedirectLoop)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsCanceled reports whether err is or wraps ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// AsReleaseError reports whether err can be typed as a *ReleaseError.
func AsReleaseError(err error) (*ReleaseError, bool) {
	var re *ReleaseError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// AsInstallError reports whether err can be typed as a *InstallError.
func AsInstallError(err error) (*InstallError, bool) {
	var ie *InstallError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// AsBackupError reports whether err can be typed as a *BackupError.
func AsBackupError(err error) (*BackupError, bool) {
	var be *BackupError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
