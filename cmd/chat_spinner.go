package cmd

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type replyDoneMsg struct{}

type replyWaitModel struct {
	spinner spinner.Model
	done    <-chan struct{}
}

func newReplyWaitModel(done <-chan struct{}) replyWaitModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return replyWaitModel{spinner: s, done: done}
}

func (m replyWaitModel) Init() tea.Cmd {
	done := m.done
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		<-done
		return replyDoneMsg{}
	})
}

func (m replyWaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case replyDoneMsg:
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m replyWaitModel) View() string {
	return m.spinner.View() + " awaiting reply…"
}

// waitForReply blocks until the scheduled reply lands (or is canceled),
// showing a spinner meanwhile. Program output is discarded so piped runs
// stay clean; the refreshed chat view is printed afterwards.
func waitForReply(done <-chan struct{}) error {
	p := tea.NewProgram(
		newReplyWaitModel(done),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	_, err := p.Run()
	return err
}
