// Package tui provides Bubble Tea models for mbl.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mirrorbytes/launcher/internal/update"
)

// ProgressMsg carries a new download percentage.
type ProgressMsg int

// StageMsg is sent when the pipeline moves to a new stage.
type StageMsg update.Stage

// DoneMsg is sent when the update finishes, successfully or not.
type DoneMsg struct {
	Err error
}

// DownloadModel renders one update's stages with a progress bar.
type DownloadModel struct {
	// Title is shown above the progress bar (game name and version).
	Title string

	// Canceled indicates the user aborted with ctrl+c.
	Canceled bool

	stage    update.Stage
	percent  int
	err      error
	finished bool

	bar    progress.Model
	cancel context.CancelFunc

	titleStyle lipgloss.Style
	stageStyle lipgloss.Style
	errorStyle lipgloss.Style
	doneStyle  lipgloss.Style
}

// NewDownloadModel creates a download model. cancel is invoked when the
// user aborts; the running update is expected to return its context's
// error, which ends the program.
func NewDownloadModel(title string, cancel context.CancelFunc) DownloadModel {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Bold(true)
	stageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("red"))
	doneStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("green"))

	return DownloadModel{
		Title:      title,
		bar:        progress.New(progress.WithDefaultGradient()),
		cancel:     cancel,
		titleStyle: titleStyle,
		stageStyle: stageStyle,
		errorStyle: errorStyle,
		doneStyle:  doneStyle,
	}
}

// Init implements tea.Model.
func (m DownloadModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DownloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Canceled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4
		return m, nil

	case StageMsg:
		m.stage = update.Stage(msg)
		return m, nil

	case ProgressMsg:
		m.percent = int(msg)
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

// Err returns the update's final error, nil on success.
func (m DownloadModel) Err() error {
	return m.err
}

// View implements tea.Model.
func (m DownloadModel) View() string {
	s := m.titleStyle.Render(m.Title) + "\n\n"

	switch {
	case m.finished && m.err != nil:
		s += m.errorStyle.Render(fmt.Sprintf("Failed: %v", m.err)) + "\n"
	case m.finished:
		s += m.doneStyle.Render("Done") + "\n"
	case m.stage == update.StageDownloading:
		s += m.stageStyle.Render(stageLabel(m.stage)) + "\n"
		s += m.bar.ViewAs(float64(m.percent)/100) + "\n"
	default:
		s += m.stageStyle.Render(stageLabel(m.stage)) + "\n"
	}

	if !m.finished {
		s += m.stageStyle.Render("\nctrl+c to cancel") + "\n"
	}
	return s
}

func stageLabel(s update.Stage) string {
	switch s {
	case update.StageDownloading:
		return "Downloading..."
	case update.StageExtracting:
		return "Extracting..."
	case update.StageInstalling:
		return "Installing..."
	default:
		return "Waiting..."
	}
}

// RunDownload drives an update behind the download model. apply runs in
// the background and reports through the pipeline callbacks; the
// returned error is the update's own result (context.Canceled when the
// user aborted).
func RunDownload(ctx context.Context, title string, apply func(ctx context.Context, onStage func(update.Stage), onProgress update.ProgressFunc) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewDownloadModel(title, cancel))

	go func() {
		err := apply(ctx,
			func(s update.Stage) { p.Send(StageMsg(s)) },
			func(percent int) { p.Send(ProgressMsg(percent)) },
		)
		p.Send(DoneMsg{Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	return final.(DownloadModel).Err()
}
