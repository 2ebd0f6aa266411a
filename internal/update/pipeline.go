package update

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
	"github.com/mirrorbytes/launcher/internal/fsutil"
	"github.com/mirrorbytes/launcher/internal/github"
	"github.com/mirrorbytes/launcher/internal/version"
)

// Stage identifies where the pipeline currently is. Stages of one apply
// are strictly ordered; no two stages overlap for the same pipeline.
type Stage int

const (
	// StageIdle means no operation is running.
	StageIdle Stage = iota
	// StageChecking means the release index is being queried.
	StageChecking
	// StageDownloading means the selected asset is streaming to disk.
	StageDownloading
	// StageExtracting means the archive is being unpacked into place.
	StageExtracting
	// StageInstalling means the version marker is being written.
	StageInstalling
)

// String returns the stage name for logs and error context.
func (s Stage) String() string {
	switch s {
	case StageChecking:
		return "check"
	case StageDownloading:
		return "download"
	case StageExtracting:
		return "extract"
	case StageInstalling:
		return "install"
	default:
		return "idle"
	}
}

// CheckResult is the outcome of an update check.
type CheckResult struct {
	// Available reports whether a strictly newer release exists (or no
	// version is installed at all).
	Available bool

	// InstalledVersion is the local marker value, empty for fresh installs.
	InstalledVersion string

	// Version is the remote release tag.
	Version string

	// Release is the full release metadata (notes, publish date, author).
	Release *github.Release

	// Asset is the asset selected for download; nil when not Available.
	Asset *SelectedAsset
}

// ApplyOptions carry the caller's observers for an apply run.
type ApplyOptions struct {
	// OnStage, when set, is invoked at each stage transition.
	OnStage func(Stage)

	// OnProgress, when set, receives download percentages.
	OnProgress ProgressFunc
}

func (o ApplyOptions) stage(s Stage) {
	if o.OnStage != nil {
		o.OnStage(s)
	}
}

// Pipeline composes the release client, downloader, archive installer and
// version marker into the check/apply/rollback operations for one game
// install. A pipeline owns its install directory: nothing else mutates it.
type Pipeline struct {
	client     *github.Client
	downloader *Downloader
	installDir string
	exeName    string

	checking   atomic.Bool
	installing atomic.Bool
}

// NewPipeline creates a pipeline for one install directory.
func NewPipeline(client *github.Client, installDir, exeName string) *Pipeline {
	return &Pipeline{
		client:     client,
		downloader: NewDownloader(),
		installDir: installDir,
		exeName:    exeName,
	}
}

// InstallDir returns the canonical install path.
func (p *Pipeline) InstallDir() string { return p.installDir }

// EntryPath returns the full path of the entry-point executable.
func (p *Pipeline) EntryPath() string { return filepath.Join(p.installDir, p.exeName) }

// InstalledVersion reads the local version marker; empty means not installed.
func (p *Pipeline) InstalledVersion() (string, error) {
	return ReadInstalledVersion(p.installDir)
}

// Check queries the release index and decides whether an update applies.
// A strictly newer remote version is required; equal or lesser reports
// up to date. A concurrent Check is a no-op returning ErrAlreadyInProgress.
// Check never mutates local state.
func (p *Pipeline) Check(ctx context.Context) (*CheckResult, error) {
	if !p.checking.CompareAndSwap(false, true) {
		return nil, apperrors.ErrAlreadyInProgress
	}
	defer p.checking.Store(false)

	installed, err := p.InstalledVersion()
	if err != nil {
		return nil, err
	}

	release, err := p.client.LatestRelease(ctx)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		InstalledVersion: installed,
		Version:          release.TagName,
		Release:          release,
	}

	if installed != "" {
		newer, err := version.IsNewer(release.TagName, installed)
		if err != nil {
			return nil, &apperrors.ReleaseError{Op: "compare", Repo: p.client.Slug(), Err: err}
		}
		if !newer {
			return result, nil
		}
	}

	asset, err := SelectAsset(release, p.client.Owner, p.client.Repo, installed)
	if err != nil {
		return nil, err
	}

	result.Available = true
	result.Asset = asset
	return result, nil
}

// Apply downloads the selected asset and transitions the install
// directory to versionTag. The swap is atomic from the outside: the
// canonical path holds either the previous complete install or the new
// verified one, never a half-written state. On any failure the previous
// installation is restored exactly and the error is returned.
func (p *Pipeline) Apply(ctx context.Context, versionTag string, asset *SelectedAsset, opts ApplyOptions) error {
	if asset == nil {
		return fmt.Errorf("no asset selected: %w", apperrors.ErrInvalid)
	}
	if !p.installing.CompareAndSwap(false, true) {
		return apperrors.ErrAlreadyInProgress
	}
	defer p.installing.Store(false)

	tempDir, err := os.MkdirTemp("", "mbl-update-*")
	if err != nil {
		return &apperrors.InstallError{Stage: StageDownloading.String(), Dir: p.installDir, Err: err}
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	opts.stage(StageDownloading)
	archivePath := filepath.Join(tempDir, asset.Name)
	dlOpts := DownloadOptions{
		ExpectedSize:      asset.Size,
		AcceptOctetStream: !asset.IsSourceFallback,
		OnProgress:        opts.OnProgress,
	}
	if err := p.downloader.Download(ctx, asset.URL, archivePath, dlOpts); err != nil {
		return &apperrors.InstallError{Stage: StageDownloading.String(), Dir: p.installDir, Err: err}
	}

	opts.stage(StageExtracting)
	backupPath, err := stageBackup(p.installDir)
	if err != nil {
		return &apperrors.InstallError{Stage: StageExtracting.String(), Dir: p.installDir, Err: err}
	}

	fail := func(stage Stage, cause error) error {
		if restoreErr := restoreBackup(p.installDir, backupPath); restoreErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: restore after failed %s: %v\n", stage, restoreErr)
		}
		return &apperrors.InstallError{Stage: stage.String(), Dir: p.installDir, Err: cause}
	}

	if err := p.place(archivePath, asset, backupPath); err != nil {
		return fail(StageExtracting, err)
	}

	opts.stage(StageInstalling)
	if err := WriteInstalledVersion(p.installDir, versionTag); err != nil {
		return fail(StageInstalling, err)
	}

	if err := commitSwap(backupPath); err != nil {
		// The new install is complete and verified; a leftover backup
		// directory is not worth failing over.
		fmt.Fprintf(os.Stderr, "Warning: could not remove backup %s: %v\n", backupPath, err)
	}

	opts.stage(StageIdle)
	return nil
}

// place materializes the downloaded asset at the canonical path. Patch
// archives overlay a copy of the previous install; full archives extract
// into a fresh directory; bare installers are moved in as-is.
func (p *Pipeline) place(archivePath string, asset *SelectedAsset, backupPath string) error {
	if asset.IsPatch {
		if backupPath == "" {
			return fmt.Errorf("patch update without an existing install: %w", apperrors.ErrNotInstalled)
		}
		if err := fsutil.CopyDir(backupPath, p.installDir); err != nil {
			return err
		}
	}

	if asset.IsArchive() {
		return InstallArchive(archivePath, p.installDir, p.exeName)
	}

	// A bare installer executable is the deliverable itself.
	if err := os.MkdirAll(p.installDir, 0755); err != nil {
		return err
	}
	return fsutil.CopyFile(archivePath, filepath.Join(p.installDir, asset.Name), 0755)
}

// Rollback restores the newest backup directory over the canonical path.
// Backups are deleted after successful installs, so this only succeeds
// against a backup left by a failed apply or one retained manually.
func (p *Pipeline) Rollback() error {
	if !p.installing.CompareAndSwap(false, true) {
		return apperrors.ErrAlreadyInProgress
	}
	defer p.installing.Store(false)

	return Rollback(p.installDir)
}
