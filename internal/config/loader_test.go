package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleConfig = `
[launcher]
check_schedule = "@daily"
max_backups = 3

[github]
token = "file-token"

[[games]]
id = "illusion"
name = "Illusion"
owner = "acme"
repo = "illusion"
install_dir = "/games/illusion"
exe_name = "Illusion.exe"
save_dir = "/games/illusion-saves"
`

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, sampleConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	// File values override defaults, untouched fields keep them.
	assert.Equal(t, "@daily", cfg.Launcher.CheckSchedule)
	assert.Equal(t, 3, cfg.Launcher.MaxBackups)
	assert.Equal(t, "en", cfg.Launcher.Language)
	assert.Equal(t, "file-token", cfg.GitHub.Token)

	require.Len(t, cfg.Games, 1)
	assert.Equal(t, "illusion", cfg.Games[0].ID)
	assert.Equal(t, "/games/illusion", cfg.Games[0].InstallDir)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	cfgErr, ok := apperrors.AsConfigError(err)
	require.True(t, ok)
	assert.Contains(t, cfgErr.Path, "missing.toml")
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfigFile(t, "[launcher\ncheck_schedule = ")

	_, err := Load(path)
	require.Error(t, err)
	_, ok := apperrors.AsConfigError(err)
	assert.True(t, ok)
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfigFile(t, `
[[games]]
id = "broken"
owner = "acme"
repo = "broken"
exe_name = "Broken.exe"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "install_dir")
}

func TestLoad_TokenEnvOverride(t *testing.T) {
	path := writeConfigFile(t, sampleConfig)

	t.Setenv("GITHUB_TOKEN", "ambient-token")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ambient-token", cfg.GitHub.Token)

	// The launcher-specific variable wins over the conventional one.
	t.Setenv("MBL_GITHUB_TOKEN", "mbl-token")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mbl-token", cfg.GitHub.Token)
}

func TestLoad_LauncherEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, sampleConfig)

	t.Setenv("MBL_LAUNCHER_MAX_BACKUPS", "7")
	t.Setenv("MBL_LAUNCHER_NO_TUI", "true")
	t.Setenv("MBL_LAUNCHER_LANGUAGE", "de")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Launcher.MaxBackups)
	assert.True(t, cfg.Launcher.NoTUI)
	assert.Equal(t, "de", cfg.Launcher.Language)
}

func TestLoad_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := writeConfigFile(t, `
[launcher]
backups_dir = "~/backups"

[[games]]
id = "illusion"
owner = "acme"
repo = "illusion"
install_dir = "~/games/illusion"
exe_name = "Illusion.exe"
save_dir = "~/saves/illusion"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "backups"), cfg.Launcher.BackupsDir)
	assert.Equal(t, filepath.Join(home, "games", "illusion"), cfg.Games[0].InstallDir)
	assert.Equal(t, filepath.Join(home, "saves", "illusion"), cfg.Games[0].SaveDir)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Games = []GameConfig{{
		ID:         "illusion",
		Owner:      "acme",
		Repo:       "illusion",
		InstallDir: "/games/illusion",
		ExeName:    "Illusion.exe",
	}}
	require.NoError(t, Write(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Launcher.CheckSchedule, loaded.Launcher.CheckSchedule)
	require.Len(t, loaded.Games, 1)
	assert.Equal(t, "illusion", loaded.Games[0].ID)
}
