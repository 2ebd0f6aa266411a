// Package launch starts installed games and removes installations.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

// Start launches the entry executable detached from the launcher
// process. It returns the PID once the process has started; the game
// keeps running after the launcher exits.
func Start(installDir, exeName string) (int, error) {
	entry := filepath.Join(installDir, exeName)
	if _, err := os.Stat(entry); os.IsNotExist(err) {
		return 0, fmt.Errorf("%s: %w", entry, apperrors.ErrNotInstalled)
	}

	cmd := exec.Command(entry)
	cmd.Dir = installDir
	if err := cmd.Start(); err != nil {
		return 0, apperrors.Wrap(err, "launch")
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, apperrors.Wrap(err, "launch")
	}
	return pid, nil
}

// Uninstall removes the install directory. Removing an absent
// installation succeeds.
func Uninstall(installDir string) error {
	if err := os.RemoveAll(installDir); err != nil {
		return apperrors.Wrap(err, "uninstall")
	}
	return nil
}
