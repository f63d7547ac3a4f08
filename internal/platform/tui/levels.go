package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/resource-rush/internal/game"
)

// LevelsKeyMap defines the key bindings for the level table.
type LevelsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LevelsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultLevelsKeyMap returns default key bindings.
func DefaultLevelsKeyMap() LevelsKeyMap {
	return LevelsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelColumns are the level table headers, shared with the CLI listing.
var LevelColumns = []string{"Level", "Moves", "Gifts", "Placed", "Icy", "Mines", "Holes"}

// LevelRow formats one level's parameters in LevelColumns order.
func LevelRow(p game.LevelParams) []string {
	return []string{
		strconv.Itoa(p.Level),
		strconv.Itoa(p.MoveBudget),
		strconv.Itoa(p.RequiredResources),
		strconv.Itoa(p.Resources),
		strconv.Itoa(p.Penalties),
		strconv.Itoa(p.Mines),
		strconv.Itoa(p.Missing),
	}
}

// LevelsModel is the Bubble Tea model for the level table screen.
type LevelsModel struct {
	params    []game.LevelParams
	table     table.Model
	help      help.Model
	keys      LevelsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewLevelsModel creates a new level table model.
func NewLevelsModel(maxLevels, width, height int) LevelsModel {
	m := LevelsModel{
		params: game.AllParams(maxLevels),
		help:   help.New(),
		keys:   DefaultLevelsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates the table sized to the current window.
func (m *LevelsModel) createTable() table.Model {
	columns := make([]table.Column, len(LevelColumns))
	for i, title := range LevelColumns {
		columns[i] = table.Column{Title: title, Width: 7}
	}

	rows := make([]table.Row, len(m.params))
	for i, p := range m.params {
		rows[i] = table.Row(LevelRow(p))
	}

	height := min(len(rows)+1, max(m.height-8, 3))
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m LevelsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the level table.
func (m LevelsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level table.
func (m LevelsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("LEVELS 1-%d", len(m.params))), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	b.WriteString("\n")

	if sel := m.Selected(); sel != nil {
		note := "Levels 1-5: icy patches only"
		if sel.Advanced() {
			note = "Hidden mines cost 2 moves. Holes cannot be crossed."
		}
		b.WriteString(centerText(menuHintStyle.Render(note), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the parameters under the table cursor.
func (m LevelsModel) Selected() *game.LevelParams {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.params) {
		return nil
	}
	return &m.params[i]
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LevelsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LevelsModel) IsQuitting() bool {
	return m.quitting
}

// RunLevels runs the level table screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunLevels(maxLevels, width, height int) (goBack bool, err error) {
	model := NewLevelsModel(maxLevels, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(LevelsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
