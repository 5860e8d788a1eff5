package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pthm/prosecheck/internal/engine"
)

// Message types for updating the model
type (
	// SnapshotMsg carries an engine progress snapshot
	SnapshotMsg engine.Snapshot
	// DoneMsg ends the progress display
	DoneMsg struct{ Err error }
)

// Model is the Bubbletea model for progress display
type Model struct {
	snap     engine.Snapshot
	spinner  spinner.Model
	progress progress.Model
	width    int
	quitting bool
	err      error
}

// NewModel creates a new progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		spinner:  s,
		progress: p,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SnapshotMsg:
		m.snap = engine.Snapshot(msg)
		if m.snap.Stage.Terminal() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	if m.snap.Stage == engine.StageRules && m.snap.TaskCount > 0 {
		pct := float64(m.snap.TasksDone) / float64(m.snap.TaskCount)
		sb.WriteString(m.progress.ViewAs(pct))
		sb.WriteString("\n")
	}

	sb.WriteString(m.spinner.View())
	sb.WriteString(" ")
	sb.WriteString(stageLabel(m.snap))

	return sb.String()
}

func stageLabel(snap engine.Snapshot) string {
	switch snap.Stage {
	case engine.StageExtract:
		return "Extracting blocks..."
	case engine.StageSegment:
		return "Segmenting sentences..."
	case engine.StageRules:
		if snap.TaskCount > 0 {
			return fmt.Sprintf("Running rules (%d/%d)...", snap.TasksDone, snap.TaskCount)
		}
		return "Running rules..."
	case engine.StageScore:
		return "Scoring..."
	default:
		return "Analyzing..."
	}
}
