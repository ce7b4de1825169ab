package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"sensei/internal/catalog"
	"sensei/internal/diag"
	"sensei/internal/exercise"
	"sensei/internal/tutor"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
	codeStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(4)
)

// resultMsg delivers one check result into the TUI loop.
type resultMsg struct{ res *tutor.Result }

// sessionDoneMsg reports the watch session ending, normally on cancellation.
type sessionDoneMsg struct{ err error }

// watchModel shows the latest check result and waits for the next save.
type watchModel struct {
	path    string
	cat     *catalog.Catalog
	spin    spinner.Model
	res     *tutor.Result
	checks  int
	stopped bool
}

func newWatchModel(path string) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return watchModel{path: path, cat: catalog.MustLoad(), spin: sp}
}

func (m watchModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case resultMsg:
		m.res = msg.res
		m.checks++
		return m, nil
	case sessionDoneMsg:
		m.stopped = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m watchModel) View() string {
	if m.stopped {
		return ""
	}
	s := titleStyle.Render("sensei") + " " + dimStyle.Render(m.path) + "\n\n"
	s += m.renderLatest()
	s += "\n" + m.spin.View() + dimStyle.Render(
		fmt.Sprintf(" waiting for changes (%d checks so far) · q to quit", m.checks)) + "\n"
	return s
}

func (m watchModel) renderLatest() string {
	if m.res == nil {
		return dimStyle.Render("checking...") + "\n"
	}
	if len(m.res.Diags) == 0 {
		return dimStyle.Render("nothing to report; does the file declare an analyzer class?") + "\n"
	}
	var s string
	for _, d := range m.res.Diags {
		pos := m.res.File.Text.PositionFor(d.Span.Start)
		style := errStyle
		if m.cat.Severity(d.ID) == diag.SevInfo {
			style = okStyle
		}
		s += fmt.Sprintf("%s %s\n", dimStyle.Render(pos.String()+":"), style.Render(m.cat.Render(d)))
		if line := m.res.File.Text.Line(d.Span.Start); line != "" {
			s += codeStyle.Render(line) + "\n"
		}
	}
	return s
}

// runWatch drives the file-watch session under the TUI until the user quits
// or the context is cancelled.
func runWatch(ctx context.Context, path string, log *zap.Logger) error {
	cfg, err := exercise.LoadSettings()
	if err != nil {
		log.Warn("settings ignored", zap.Error(err))
	}
	sess := tutor.NewSession(path, log).WithDebounce(cfg.Debounce())
	p := tea.NewProgram(newWatchModel(path))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- sess.Run(ctx) }()
	go func() {
		for res := range sess.Results() {
			p.Send(resultMsg{res: res})
		}
		p.Send(sessionDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running watch ui: %w", err)
	}
	cancel()
	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
