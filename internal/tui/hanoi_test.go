package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/hanoi"
	"github.com/katalvlaran/dsakit/internal/render"
)

func newTestModel(t *testing.T, discs int) HanoiModel {
	t.Helper()
	r := render.New(lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii)))
	m, err := NewHanoiModel(discs, 0, r, nil)
	require.NoError(t, err)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends keys in order and returns the final model and last command.
func press(m HanoiModel, keys ...tea.KeyMsg) (HanoiModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(HanoiModel)
	}
	return m, cmd
}

func TestHanoiModel_InvalidDiscs(t *testing.T) {
	_, err := NewHanoiModel(hanoi.MaxDiscs+1, 0, nil, nil)
	assert.ErrorIs(t, err, hanoi.ErrInvalidDiscs)
}

func TestHanoiModel_ManualPlay(t *testing.T) {
	m := newTestModel(t, 2)
	assert.Contains(t, m.View(), "Goal: move 2 discs to peg C")

	m, _ = press(m, runes("p"))
	require.Equal(t, modePlay, m.mode)
	assert.Contains(t, m.View(), "Moves: 0")

	// pick from an empty peg
	m, _ = press(m, runes("2"))
	assert.Equal(t, "Peg B is empty", m.status)
	assert.Equal(t, render.NoSelection, m.selected)

	m, _ = press(m, runes("1"))
	assert.Equal(t, hanoi.A, m.selected)
	assert.Contains(t, m.View(), "[A]")
	m, _ = press(m, runes("b"))
	assert.Equal(t, 1, m.game.Moves())

	// larger disc onto smaller is refused
	m, _ = press(m, runes("1"), runes("2"))
	assert.Contains(t, m.status, "illegal move")
	assert.Equal(t, 1, m.game.Moves())

	m, _ = press(m, runes("a"), runes("c"), runes("2"), runes("3"))
	assert.Equal(t, modeDone, m.mode)
	assert.Equal(t, "You solved it in 3 moves!", m.status)

	m, _ = press(m, runes("x"))
	assert.Equal(t, modeMenu, m.mode, "any key leaves the victory screen")
}

func TestHanoiModel_EscDropsSelectionThenLeaves(t *testing.T) {
	m := newTestModel(t, 3)
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m, _ = press(m, runes("p"), runes("1"), esc)
	assert.Equal(t, modePlay, m.mode)
	assert.Equal(t, render.NoSelection, m.selected)

	m, _ = press(m, esc)
	assert.Equal(t, modeMenu, m.mode)
}

func TestHanoiModel_AutoSolve(t *testing.T) {
	m := newTestModel(t, 3)
	m, cmd := press(m, runes("s"))
	require.Equal(t, modeSolve, m.mode)
	require.NotNil(t, cmd)
	assert.True(t, m.game.Solving())

	for steps := 0; cmd != nil; steps++ {
		require.Less(t, steps, 20, "solver must terminate")
		next, c := m.Update(cmd())
		m, cmd = next.(HanoiModel), c
	}

	assert.Equal(t, modeDone, m.mode)
	assert.Equal(t, "The computer has finished in 7 moves.", m.status)
	assert.Equal(t, [hanoi.NumPegs][]int{{}, {}, {3, 2, 1}}, m.game.Pegs())
	assert.False(t, m.game.Solving())
}

func TestHanoiModel_BackCancelsSolve(t *testing.T) {
	m := newTestModel(t, 4)
	m, cmd := press(m, runes("s"))

	for i := 0; i < 3; i++ {
		next, c := m.Update(cmd())
		m, cmd = next.(HanoiModel), c
	}
	require.Equal(t, 3, m.game.Moves())
	stale := cmd()

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeMenu, m.mode)
	assert.False(t, m.game.Solving())

	next, c := m.Update(stale)
	m = next.(HanoiModel)
	assert.Nil(t, c)
	assert.Equal(t, 3, m.game.Moves(), "ticks from the abandoned solve are ignored")

	// a new solve starts from scratch
	m, _ = press(m, runes("s"))
	assert.Zero(t, m.game.Moves())
	assert.True(t, m.game.Solving())
}

func TestHanoiModel_Quit(t *testing.T) {
	m := newTestModel(t, 3)
	m, _ = press(m, runes("s"))
	m, cmd := press(m, runes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.False(t, m.game.Solving())
}
