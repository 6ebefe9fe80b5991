package preview

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewShowsSpinnerBeforeFirstFrame(t *testing.T) {
	m := NewModel(make(chan string), "plain", func() {})

	view := m.View()
	assert.Contains(t, view, "waiting for first frame")
	assert.Contains(t, view, "plain")
}

func TestFrameMsgReplacesSpinner(t *testing.T) {
	frames := make(chan string, 1)
	m := NewModel(frames, "cyber", func() {})

	next, cmd := m.Update(frameMsg("PIXELS"))
	require.NotNil(t, cmd)

	view := next.View()
	assert.Contains(t, view, "PIXELS")
	assert.NotContains(t, view, "waiting for first frame")
}

func TestQuitKeyCancelsLoop(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	cancelled := false
	m := NewModel(make(chan string), "plain", func() {
		cancelled = true
		cancel()
	})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.True(t, cancelled)
	assert.Empty(t, next.View())
}

func TestClosedChannelQuits(t *testing.T) {
	frames := make(chan string)
	close(frames)
	m := NewModel(frames, "plain", func() {})

	msg := waitForFrame(frames)()
	_, ok := msg.(closedMsg)
	require.True(t, ok)

	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
}
