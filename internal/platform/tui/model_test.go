package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/resource-rush/internal/config"
	"github.com/vovakirdan/resource-rush/internal/core"
	"github.com/vovakirdan/resource-rush/internal/game"
)

func newTestModel(t *testing.T) (Model, *game.Game) {
	t.Helper()
	g := game.New(game.Options{Config: config.DefaultRushConfig()})
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 11})
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func TestModelKeyMovesPlayer(t *testing.T) {
	m, g := newTestModel(t)
	s := g.Session()
	start := s.Player()

	// Either up or left is always open from the start corner unless both are holes.
	moves := s.ValidMoves()
	if len(moves) == 0 {
		t.Skip("generated level has no legal first move")
	}
	msg := tea.KeyMsg{Type: tea.KeyUp}
	if moves[0] == start.Add(game.DirLeft.Delta()) {
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	}

	m = update(t, m, msg)
	if s.Player() == start {
		t.Error("player did not move")
	}
	if m.State().Moves != game.ParamsFor(1).MoveBudget-1 && !m.State().Blocked {
		t.Errorf("State().Moves = %d, want one fewer than the budget", m.State().Moves)
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c did not return a quit command")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() {
		t.Error("esc did not request back")
	}
	if m.View() != "" {
		t.Error("View() should be empty after leaving")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, g := newTestModel(t)
	level := g.Session().Level()
	grid := g.Session().Grid()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.Session().Grid() != grid || g.Session().Level() != level {
		t.Error("resize replaced the session")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 30-footerHeight)
	}
}

func TestModelIgnoresNonLeftClicks(t *testing.T) {
	m, g := newTestModel(t)
	start := g.Session().Player()

	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if g.Session().Player() != start {
		t.Error("non-left click moved the player")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	for _, want := range []string{"Level 1 of 10", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if strings.Contains(out, "play again") {
		t.Error("View() shows the restart hint during play")
	}
}

// stubGame reports a fixed state and records the frames it is stepped with.
type stubGame struct {
	state  core.GameState
	frames []core.InputFrame
}

func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Resize(int, int) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state, Accepted: true}
}

func TestModelRestartOnlyAfterVictory(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 1})

	m = update(t, m, runeKey('r'))
	if len(g.frames) != 0 {
		t.Errorf("r during play stepped the game %d times, want 0", len(g.frames))
	}

	g.state = core.GameState{Blocked: true}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if strings.Contains(m.View(), "play again") {
		t.Error("View() shows the restart hint while a notification is open")
	}

	g.state = core.GameState{Finished: true}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "play again") {
		t.Errorf("View() after victory missing restart hint:\n%s", m.View())
	}

	steps := len(g.frames)
	update(t, m, runeKey('r'))
	if len(g.frames) != steps+1 || !g.frames[steps].Has(core.ActionRestart) {
		t.Error("r after victory did not reach the game as Restart")
	}
}
