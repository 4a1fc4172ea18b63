package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/peerchat-cli/internal/application"
)

const refreshLabel = "Refreshing peers and channels..."

// Elapsed time is shown once a refresh runs longer than this.
const slowRefreshAfter = time.Second

type refreshFunc func(context.Context) (application.DirectoryView, error)

type refreshDoneMsg struct {
	view application.DirectoryView
	err  error
}

// refreshSpinner shows progress on stderr while the directory loads and
// carries the resulting view back to the command.
type refreshSpinner struct {
	spinner spinner.Model
	hint    lipgloss.Style
	started time.Time
	elapsed time.Duration
	load    tea.Cmd

	result refreshDoneMsg
	done   bool
}

func newRefreshSpinner(ctx context.Context, refresh refreshFunc) refreshSpinner {
	return refreshSpinner{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("141"))),
		),
		hint:    lipgloss.NewStyle().Faint(true),
		started: time.Now(),
		load: func() tea.Msg {
			view, err := refresh(ctx)
			return refreshDoneMsg{view: view, err: err}
		},
	}
}

func (m refreshSpinner) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m refreshSpinner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		m.result = msg
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		m.elapsed = time.Since(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m refreshSpinner) View() string {
	if m.done {
		return ""
	}

	line := m.spinner.View() + " " + refreshLabel
	if m.elapsed >= slowRefreshAfter {
		line += " " + m.hint.Render(fmt.Sprintf("(%ds)", int(m.elapsed.Seconds())))
	}
	return line
}

// runRefreshSpinner runs refresh under a spinner drawn on output. The view is
// returned even when refresh reports a partial failure.
func runRefreshSpinner(ctx context.Context, output io.Writer, refresh refreshFunc) (application.DirectoryView, error) {
	p := tea.NewProgram(
		newRefreshSpinner(ctx, refresh),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return application.DirectoryView{}, fmt.Errorf("run refresh spinner: %w", err)
	}

	model, ok := final.(refreshSpinner)
	if !ok {
		return application.DirectoryView{}, fmt.Errorf("unexpected final spinner model type %T", final)
	}
	return model.result.view, model.result.err
}
