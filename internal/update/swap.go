package update

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

// backupInfix joins the install directory name and the swap timestamp.
// A backup directory is always a sibling of the canonical path.
const backupInfix = "_backup_"

// stageBackup renames installDir aside to a timestamped backup name and
// returns the backup path. When installDir does not exist (fresh install)
// it returns an empty path and no error.
func stageBackup(installDir string) (string, error) {
	if _, err := os.Stat(installDir); os.IsNotExist(err) {
		return "", nil
	}

	backupPath := fmt.Sprintf("%s%s%d", installDir, backupInfix, time.Now().UnixMilli())
	if err := os.Rename(installDir, backupPath); err != nil {
		return "", apperrors.Wrap(err, "stageBackup")
	}
	return backupPath, nil
}

// commitSwap removes the staged backup after a fully verified install.
func commitSwap(backupPath string) error {
	if backupPath == "" {
		return nil
	}
	if err := os.RemoveAll(backupPath); err != nil {
		return apperrors.Wrap(err, "commitSwap")
	}
	return nil
}

// restoreBackup puts the staged backup back at the canonical path,
// discarding whatever half-finished state occupies it. After restore the
// installation is byte-identical to its pre-swap state.
func restoreBackup(installDir, backupPath string) error {
	if err := os.RemoveAll(installDir); err != nil {
		return apperrors.Wrap(err, "restoreBackup")
	}
	if backupPath == "" {
		return nil
	}
	if err := os.Rename(backupPath, installDir); err != nil {
		return apperrors.Wrap(err, "restoreBackup")
	}
	return nil
}

// LatestBackup finds the newest backup directory sibling to installDir.
// Returns ErrNoBackup when none exists.
func LatestBackup(installDir string) (string, error) {
	parent := filepath.Dir(installDir)
	prefix := filepath.Base(installDir) + backupInfix

	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", apperrors.Wrap(err, "latestBackup")
	}

	var backups []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			backups = append(backups, entry.Name())
		}
	}
	if len(backups) == 0 {
		return "", apperrors.ErrNoBackup
	}

	// Timestamps are epoch millis, so the lexicographically greatest
	// name of equal-length suffixes is the newest; sort descending and
	// take the head.
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return filepath.Join(parent, backups[0]), nil
}

// Rollback restores the most recent backup over the canonical install
// directory. This is the explicit user-triggered operation; the failure
// path inside Apply restores its own staged backup automatically.
func Rollback(installDir string) error {
	backupPath, err := LatestBackup(installDir)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(installDir); err != nil {
		return apperrors.Wrap(err, "rollback")
	}
	if err := os.Rename(backupPath, installDir); err != nil {
		return apperrors.Wrap(err, "rollback")
	}
	return nil
}
