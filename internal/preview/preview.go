// Package preview shows the dashboard in a terminal while the refresh loop
// runs against a channel-backed sink, so themes can be checked without
// panel hardware.
//
// It follows the Elm-style Model-Update-View shape: the loop delivers
// pre-rendered ANSI frames over a channel, a bubbles spinner covers the
// wait for the first frame, and q / Esc / Ctrl+C cancels the loop context.
package preview

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 1)
)

// frameMsg carries one rendered ANSI frame.
type frameMsg string

// closedMsg signals that the frame channel was closed (loop stopped).
type closedMsg struct{}

// Model is the bubbletea model for the live preview.
type Model struct {
	frames   <-chan string
	cancel   context.CancelFunc
	spin     spinner.Model
	frame    string
	themeTag string
	quitting bool
}

// NewModel creates a preview over a stream of rendered frames. cancel stops
// the refresh loop feeding the channel.
func NewModel(frames <-chan string, themeTag string, cancel context.CancelFunc) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return Model{
		frames:   frames,
		cancel:   cancel,
		spin:     sp,
		themeTag: themeTag,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForFrame(m.frames))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case frameMsg:
		m.frame = string(msg)
		return m, waitForFrame(m.frames)

	case closedMsg:
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		if m.frame != "" {
			// First frame arrived; stop animating the spinner.
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.frame == "" {
		return headerStyle.Render("pidash preview · "+m.themeTag) + "\n\n  " +
			m.spin.View() + " waiting for first frame...\n"
	}
	return headerStyle.Render("pidash preview · "+m.themeTag) + "\n" +
		m.frame +
		footerStyle.Render("q quit")
}

func waitForFrame(frames <-chan string) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-frames
		if !ok {
			return closedMsg{}
		}
		return frameMsg(s)
	}
}
