// Package backup manages save-game backups.
//
// Each backup lives in its own directory under
// <root>/<gameID>/<backupID>/ with the copied save data in data/ and a
// backup.yaml metadata file next to it.
package backup

import (
	"time"
)

// Kind classifies how a backup came to exist.
type Kind string

const (
	// KindManual marks a backup the user created explicitly.
	// Manual backups are never rotated away.
	KindManual Kind = "manual"

	// KindAuto marks a backup taken automatically before an update.
	KindAuto Kind = "auto"

	// KindPreRestore marks the safety backup taken of the current save
	// data right before a restore overwrites it.
	KindPreRestore Kind = "pre-restore"
)

// MetadataFileName is the per-backup metadata file.
const MetadataFileName = "backup.yaml"

// dataDirName holds the copied save data inside a backup directory.
const dataDirName = "data"

// Metadata describes one backup.
type Metadata struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	GameID     string    `yaml:"game_id"`
	Kind       Kind      `yaml:"kind"`
	Created    time.Time `yaml:"created"`
	SourcePath string    `yaml:"source_path"`
	SizeBytes  int64     `yaml:"size_bytes"`
}
