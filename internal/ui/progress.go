package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pthm/prosecheck/internal/engine"
)

// ProgressController manages the bubbletea program for progress display
type ProgressController struct {
	ui      *UI
	program *tea.Program
}

// StartProgress starts the progress display if in interactive mode.
// Returns nil if not in interactive mode.
func (ui *UI) StartProgress() *ProgressController {
	if ui.Mode != OutputModeInteractive {
		return nil
	}

	m := NewModel()
	p := tea.NewProgram(m, tea.WithOutput(ui.ErrWriter))

	ctrl := &ProgressController{
		ui:      ui,
		program: p,
	}

	go func() {
		if _, err := p.Run(); err != nil {
			_ = err
		}
	}()

	return ctrl
}

// Follow forwards a job's progress snapshots to the display until the
// stream closes. Safe on a nil controller.
func (pc *ProgressController) Follow(watch <-chan engine.Snapshot) {
	if pc == nil || pc.program == nil {
		return
	}
	go func() {
		for snap := range watch {
			pc.program.Send(SnapshotMsg(snap))
		}
	}()
}

// Done signals that all work is complete
func (pc *ProgressController) Done(err error) {
	if pc != nil && pc.program != nil {
		pc.program.Send(DoneMsg{Err: err})
		pc.program.Wait()
	}
}
