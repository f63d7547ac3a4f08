package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/resource-rush/internal/core"
)

// footerHeight is the number of rows below the game screen.
const footerHeight = 1

// Game is the interface the platform drives.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game and starts it.
func NewModel(game Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameH := core.FloorZero(cfg.ScreenH - footerHeight)
	game.Reset(core.RuntimeConfig{ScreenW: cfg.ScreenW, ScreenH: gameH, Seed: cfg.Seed})

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
	m.help.Width = cfg.ScreenW
	m.keyMapper.SetState(m.gameState)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m.step()
}

// handleMouse turns a left click into a pointer selection.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.inputFrame.Click(msg.X, msg.Y)
	return m.step()
}

// step runs one game step with the pending input.
func (m Model) step() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.keyMapper.SetState(m.gameState)
	m.inputFrame.Clear()
	return m, nil
}

// handleResize processes window resize events. The session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gameH := core.FloorZero(msg.Height - footerHeight)
	m.screen.Resize(msg.Width, gameH)
	m.game.Resize(msg.Width, gameH)
	m.help.Width = msg.Width
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".rush", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("rush_level%d_%s.txt", m.gameState.Level, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	footer := centerText(m.help.View(m.keyMapper.Keys()), m.screen.Width())
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// WantsBack returns true if the player left the game with the back key.
func (m Model) WantsBack() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the player pressed back rather than quit.
func Run(game Game, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Cell clicks select moves
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WantsBack(), nil
}
