package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrorbytes/launcher/internal/update"
)

func TestDownloadModel_StagesAndProgress(t *testing.T) {
	m := NewDownloadModel("Illusion v1.1.0", nil)

	next, _ := m.Update(StageMsg(update.StageDownloading))
	m = next.(DownloadModel)
	next, _ = m.Update(ProgressMsg(42))
	m = next.(DownloadModel)

	view := m.View()
	assert.Contains(t, view, "Illusion v1.1.0")
	assert.Contains(t, view, "Downloading")

	next, _ = m.Update(StageMsg(update.StageExtracting))
	m = next.(DownloadModel)
	assert.Contains(t, m.View(), "Extracting")
}

func TestDownloadModel_Done(t *testing.T) {
	m := NewDownloadModel("Illusion v1.1.0", nil)

	next, cmd := m.Update(DoneMsg{})
	m = next.(DownloadModel)
	require.NotNil(t, cmd)
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "Done")
}

func TestDownloadModel_Failure(t *testing.T) {
	m := NewDownloadModel("Illusion v1.1.0", nil)

	next, cmd := m.Update(DoneMsg{Err: errors.New("disk full")})
	m = next.(DownloadModel)
	require.NotNil(t, cmd)
	assert.Error(t, m.Err())
	assert.Contains(t, m.View(), "disk full")
}

func TestDownloadModel_Cancel(t *testing.T) {
	canceled := false
	m := NewDownloadModel("Illusion v1.1.0", func() { canceled = true })

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(DownloadModel)
	assert.True(t, m.Canceled)
	assert.True(t, canceled)
}
