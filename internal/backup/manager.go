package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mirrorbytes/launcher/internal/config"
	apperrors "github.com/mirrorbytes/launcher/internal/errors"
	"github.com/mirrorbytes/launcher/internal/fsutil"
)

// Manager creates, lists, restores and rotates save-game backups under
// one root directory.
type Manager struct {
	root       string
	maxBackups int
}

// NewManager creates a manager rooted at root. maxBackups bounds how
// many non-manual backups are kept per game; 0 keeps all.
func NewManager(root string, maxBackups int) *Manager {
	return &Manager{root: root, maxBackups: maxBackups}
}

func (m *Manager) gameDir(gameID string) string {
	return filepath.Join(m.root, gameID)
}

func (m *Manager) backupDir(gameID, id string) string {
	return filepath.Join(m.root, gameID, id)
}

// Create copies the game's save directory into a new backup and writes
// its metadata. Automatic backups trigger rotation afterwards.
func (m *Manager) Create(game *config.GameConfig, name string, kind Kind) (*Metadata, error) {
	if game.SaveDir == "" {
		return nil, &apperrors.BackupError{Op: "create", Name: name,
			Err: fmt.Errorf("game %q has no save_dir configured: %w", game.ID, apperrors.ErrInvalid)}
	}
	if _, err := os.Stat(game.SaveDir); os.IsNotExist(err) {
		return nil, &apperrors.BackupError{Op: "create", Name: name,
			Err: fmt.Errorf("save directory %s: %w", game.SaveDir, apperrors.ErrNotFound)}
	}

	meta := &Metadata{
		ID:         uuid.New().String(),
		Name:       name,
		GameID:     game.ID,
		Kind:       kind,
		Created:    time.Now().UTC(),
		SourcePath: game.SaveDir,
	}

	dir := m.backupDir(game.ID, meta.ID)
	if err := fsutil.CopyDir(game.SaveDir, filepath.Join(dir, dataDirName)); err != nil {
		_ = os.RemoveAll(dir)
		return nil, &apperrors.BackupError{Op: "create", Name: name, Err: err}
	}

	size, err := fsutil.DirSize(filepath.Join(dir, dataDirName))
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, &apperrors.BackupError{Op: "create", Name: name, Err: err}
	}
	meta.SizeBytes = size

	if err := m.writeMetadata(meta); err != nil {
		_ = os.RemoveAll(dir)
		return nil, err
	}

	if kind == KindAuto {
		if err := m.rotate(game.ID); err != nil {
			return nil, err
		}
	}
	return meta, nil
}

// List returns all backups of a game, newest first. A game with no
// backups yields an empty list, not an error.
func (m *Manager) List(gameID string) ([]Metadata, error) {
	entries, err := os.ReadDir(m.gameDir(gameID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.BackupError{Op: "list", Name: gameID, Err: err}
	}

	var backups []Metadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := m.readMetadata(gameID, entry.Name())
		if err != nil {
			// A backup directory without readable metadata is skipped
			// rather than failing the whole listing.
			continue
		}
		backups = append(backups, *meta)
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Created.After(backups[j].Created)
	})
	return backups, nil
}

// Get loads one backup's metadata by ID.
func (m *Manager) Get(gameID, id string) (*Metadata, error) {
	meta, err := m.readMetadata(gameID, id)
	if err != nil {
		return nil, &apperrors.BackupError{Op: "get", Name: id, Err: apperrors.ErrNotFound}
	}
	return meta, nil
}

// Delete removes one backup.
func (m *Manager) Delete(gameID, id string) error {
	dir := m.backupDir(gameID, id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return &apperrors.BackupError{Op: "delete", Name: id, Err: apperrors.ErrNotFound}
	}
	if err := os.RemoveAll(dir); err != nil {
		return &apperrors.BackupError{Op: "delete", Name: id, Err: err}
	}
	return nil
}

// Restore replaces the game's save directory with the backup's data.
// The current save data is captured in a pre-restore backup first, and
// the swap is staged so a copy failure leaves the original in place.
func (m *Manager) Restore(game *config.GameConfig, id string) (*Metadata, error) {
	meta, err := m.Get(game.ID, id)
	if err != nil {
		return nil, err
	}
	if game.SaveDir == "" {
		return nil, &apperrors.BackupError{Op: "restore", Name: id,
			Err: fmt.Errorf("game %q has no save_dir configured: %w", game.ID, apperrors.ErrInvalid)}
	}

	staged := ""
	if _, statErr := os.Stat(game.SaveDir); statErr == nil {
		if _, err := m.Create(game, "before restore of "+meta.Name, KindPreRestore); err != nil {
			return nil, err
		}
		staged = fmt.Sprintf("%s_pre_restore_%d", game.SaveDir, time.Now().UnixMilli())
		if err := os.Rename(game.SaveDir, staged); err != nil {
			return nil, &apperrors.BackupError{Op: "restore", Name: id, Err: err}
		}
	}

	if err := fsutil.CopyDir(filepath.Join(m.backupDir(game.ID, id), dataDirName), game.SaveDir); err != nil {
		_ = os.RemoveAll(game.SaveDir)
		if staged != "" {
			if renameErr := os.Rename(staged, game.SaveDir); renameErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not restore %s: %v\n", game.SaveDir, renameErr)
			}
		}
		return nil, &apperrors.BackupError{Op: "restore", Name: id, Err: err}
	}

	if staged != "" {
		if err := os.RemoveAll(staged); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not remove staged save data %s: %v\n", staged, err)
		}
	}
	return meta, nil
}

// rotate deletes the oldest non-manual backups beyond the configured
// limit. Manual backups never count against it.
func (m *Manager) rotate(gameID string) error {
	if m.maxBackups <= 0 {
		return nil
	}

	backups, err := m.List(gameID)
	if err != nil {
		return err
	}

	var rotatable []Metadata
	for _, b := range backups {
		if b.Kind != KindManual {
			rotatable = append(rotatable, b)
		}
	}
	// List is newest first, so everything past the limit is oldest.
	for _, b := range rotatable[min(m.maxBackups, len(rotatable)):] {
		if err := m.Delete(gameID, b.ID); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) metadataPath(gameID, id string) string {
	return filepath.Join(m.backupDir(gameID, id), MetadataFileName)
}

func (m *Manager) writeMetadata(meta *Metadata) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return &apperrors.BackupError{Op: "create", Name: meta.Name, Err: err}
	}
	path := m.metadataPath(meta.GameID, meta.ID)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &apperrors.BackupError{Op: "create", Name: meta.Name, Err: err}
	}
	return nil
}

func (m *Manager) readMetadata(gameID, id string) (*Metadata, error) {
	data, err := os.ReadFile(m.metadataPath(gameID, id))
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
