// Package tui provides the interactive Tower of Hanoi program: a menu, manual
// play with the number keys, and an auto-solve paced by ticks that stops as
// soon as the player returns to the menu.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/dsakit/hanoi"
	"github.com/katalvlaran/dsakit/internal/render"
)

type mode int

const (
	modeMenu mode = iota
	modePlay
	modeSolve
	modeDone
)

// stepMsg asks for the next solver move. Ticks from an abandoned solve carry
// an old epoch and are dropped.
type stepMsg struct{ epoch int }

type hanoiKeyMap struct {
	Play  key.Binding
	Solve key.Binding
	PegA  key.Binding
	PegB  key.Binding
	PegC  key.Binding
	Back  key.Binding
	Quit  key.Binding

	mode mode
}

func (k hanoiKeyMap) ShortHelp() []key.Binding {
	switch k.mode {
	case modePlay:
		return []key.Binding{k.PegA, k.PegB, k.PegC, k.Back, k.Quit}
	case modeSolve, modeDone:
		return []key.Binding{k.Back, k.Quit}
	default:
		return []key.Binding{k.Play, k.Solve, k.Quit}
	}
}

func (k hanoiKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Solve},
		{k.PegA, k.PegB, k.PegC},
		{k.Back, k.Quit},
	}
}

var defaultHanoiKeys = hanoiKeyMap{
	Play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play manually"),
	),
	Solve: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "watch auto-solve"),
	),
	PegA: key.NewBinding(
		key.WithKeys("1", "a"),
		key.WithHelp("1/a", "peg A"),
	),
	PegB: key.NewBinding(
		key.WithKeys("2", "b"),
		key.WithHelp("2/b", "peg B"),
	),
	PegC: key.NewBinding(
		key.WithKeys("3", "c"),
		key.WithHelp("3/c", "peg C"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "m"),
		key.WithHelp("esc/m", "menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HanoiModel is the bubbletea model for the puzzle.
type HanoiModel struct {
	game     *hanoi.Game
	solver   *hanoi.Solver
	delay    time.Duration
	mode     mode
	selected hanoi.Peg
	status   string
	epoch    int

	keys   hanoiKeyMap
	help   help.Model
	render *render.Renderer
	log    *slog.Logger
}

// NewHanoiModel returns a model at the menu for a game of discs discs; delay
// paces the auto-solve.
func NewHanoiModel(discs int, delay time.Duration, r *render.Renderer, log *slog.Logger) (HanoiModel, error) {
	g, err := hanoi.New(discs)
	if err != nil {
		return HanoiModel{}, err
	}
	if r == nil {
		r = render.New(nil)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return HanoiModel{
		game:     g,
		delay:    delay,
		selected: render.NoSelection,
		keys:     defaultHanoiKeys,
		help:     help.New(),
		render:   r,
		log:      log,
	}, nil
}

func (m HanoiModel) Init() tea.Cmd {
	return nil
}

func (m HanoiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		return m.step(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.toMenu()
			return m, tea.Quit
		}
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modePlay:
			return m.updatePlay(msg), nil
		default:
			if key.Matches(msg, m.keys.Back) || m.mode == modeDone {
				m.toMenu()
			}
		}
	}

	return m, nil
}

func (m HanoiModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Play):
		m.game.Reset()
		m.mode = modePlay
		m.status = ""
		m.log.Debug("hanoi play", "discs", m.game.Discs())
	case key.Matches(msg, m.keys.Solve):
		m.game.Reset()
		solver, err := hanoi.NewSolver(m.game)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.solver = solver
		m.epoch++
		m.mode = modeSolve
		m.status = "Auto-solving..."
		m.log.Debug("hanoi solve", "discs", m.game.Discs(), "delay", m.delay)
		return m, m.tick()
	}

	return m, nil
}

func (m HanoiModel) updatePlay(msg tea.KeyMsg) HanoiModel {
	var peg hanoi.Peg
	switch {
	case key.Matches(msg, m.keys.PegA):
		peg = hanoi.A
	case key.Matches(msg, m.keys.PegB):
		peg = hanoi.B
	case key.Matches(msg, m.keys.PegC):
		peg = hanoi.C
	case key.Matches(msg, m.keys.Back):
		if m.selected != render.NoSelection {
			m.selected = render.NoSelection
		} else {
			m.toMenu()
		}
		return m
	default:
		return m
	}

	if m.selected == render.NoSelection {
		if _, ok := m.game.Top(peg); !ok {
			m.status = fmt.Sprintf("Peg %s is empty", peg)
			return m
		}
		m.selected = peg
		m.status = ""
		return m
	}

	from := m.selected
	m.selected = render.NoSelection
	if from == peg {
		return m
	}
	won, err := m.game.Apply(from, peg)
	if err != nil {
		m.status = err.Error()
		m.log.Debug("hanoi move refused", "from", from, "to", peg, "err", err)
		return m
	}
	m.status = ""
	if won {
		m.mode = modeDone
		m.status = fmt.Sprintf("You solved it in %d moves!", m.game.Moves())
		m.log.Info("hanoi solved", "moves", m.game.Moves())
	}

	return m
}

func (m HanoiModel) step(msg stepMsg) (tea.Model, tea.Cmd) {
	if msg.epoch != m.epoch || m.mode != modeSolve || m.solver == nil {
		return m, nil
	}
	mv, ok, err := m.solver.Next()
	switch {
	case err != nil:
		m.status = err.Error()
		m.mode = modeDone
		return m, nil
	case !ok:
		m.mode = modeDone
		m.status = fmt.Sprintf("The computer has finished in %d moves.", m.game.Moves())
		return m, nil
	}
	m.status = fmt.Sprintf("Auto-solving... %s", mv)

	return m, m.tick()
}

func (m HanoiModel) tick() tea.Cmd {
	epoch := m.epoch
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return stepMsg{epoch: epoch} })
}

// toMenu abandons any solve in place and shows the menu.
func (m *HanoiModel) toMenu() {
	if m.solver != nil {
		m.solver.Stop()
		m.solver = nil
	}
	m.epoch++
	m.mode = modeMenu
	m.selected = render.NoSelection
	m.status = ""
}

func (m HanoiModel) View() string {
	var b strings.Builder
	b.WriteString(m.render.Title("TOWER OF HANOI"))
	b.WriteString("\n\n")

	if m.mode == modeMenu {
		b.WriteString(fmt.Sprintf("Goal: move %d discs to peg C\n\n", m.game.Discs()))
	} else {
		b.WriteString(m.render.Pegs(m.game, m.selected))
		b.WriteString(fmt.Sprintf("\n\nMoves: %d\n", m.game.Moves()))
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}

	keys := m.keys
	keys.mode = m.mode
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")

	return b.String()
}

// Game exposes the puzzle state.
func (m HanoiModel) Game() *hanoi.Game { return m.game }

// RunHanoi runs the puzzle on the terminal until the player quits or ctx is
// cancelled.
func RunHanoi(ctx context.Context, discs int, delay time.Duration, r *render.Renderer, log *slog.Logger) error {
	m, err := NewHanoiModel(discs, delay, r, log)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("hanoi program: %w", err)
	}

	return nil
}
