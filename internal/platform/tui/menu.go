package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/resource-rush/internal/core"
	"github.com/vovakirdan/resource-rush/internal/game"
)

// MenuChoice is a top-level menu entry.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuSelectLevel
	MenuLevelTable
	MenuQuit
)

var menuLabels = []string{
	"Play",
	"Select Level...",
	"Level Table",
	"Quit",
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	maxLevels     int
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	quitting      bool
	started       bool
	startLevel    int // 0 keeps the configured start level
	openLevels    bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig, maxLevels int) MenuModel {
	return MenuModel{
		maxLevels: maxLevels,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleMenuKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMenuKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuLabels)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch MenuChoice(m.cursor) {
		case MenuPlay:
			m.started = true
			return m, tea.Quit
		case MenuSelectLevel:
			m.inLevelSelect = true
			m.levelCursor = 0
		case MenuLevelTable:
			m.openLevels = true
			return m, tea.Quit
		case MenuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < m.maxLevels-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.started = true
		m.startLevel = m.levelCursor + 1
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S A N T A ' S   R E S O U R C E   R U S H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Collect the gifts and reach Santa in %d levels", m.maxLevels), m.width))
	b.WriteString("\n\n")

	for i, label := range menuLabels {
		line := "  " + label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, p := range game.AllParams(m.maxLevels) {
		line := fmt.Sprintf("%2d. %2d moves, %d gifts", p.Level, p.MoveBudget, p.RequiredResources)
		if p.Advanced() {
			line += ", mines"
		}
		if i == m.levelCursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Started returns true if the player chose to start a game.
func (m MenuModel) Started() bool {
	return m.started
}

// StartLevel returns the chosen start level, or 0 for the configured one.
func (m MenuModel) StartLevel() int {
	return m.startLevel
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsLevels returns true if user requested the level table.
func (m MenuModel) WantsLevels() bool {
	return m.openLevels
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Play        bool
	StartLevel  int // 0 keeps the configured start level
	Config      core.RuntimeConfig
	WantsLevels bool
	Quit        bool
}

// Result summarizes the menu's final state.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsLevels():
		result.WantsLevels = true
	case m.IsQuitting() || !m.Started():
		result.Quit = true
	default:
		result.Play = true
		result.StartLevel = m.StartLevel()
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, maxLevels int) (MenuResult, error) {
	model := NewMenuModel(cfg, maxLevels)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
