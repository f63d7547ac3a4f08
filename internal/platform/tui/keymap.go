package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/resource-rush/internal/core"
)

// KeyMap defines the key bindings for play and menus.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Confirm, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Restart, k.Screenshot},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. Letter keys match either case.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "W"),
			key.WithHelp("up/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "S"),
			key.WithHelp("down/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "A"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "D"),
			key.WithHelp("right/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "ok"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "play again"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "B"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// SetState enables the bindings the game accepts in state. Moves need an
// idle board, Confirm an open notification, and Restart a finished run.
// Disabled bindings neither match nor show in help.
func (km *KeyMapper) SetState(state core.GameState) {
	playing := !state.Blocked && !state.Finished
	km.keys.Up.SetEnabled(playing)
	km.keys.Down.SetEnabled(playing)
	km.keys.Left.SetEnabled(playing)
	km.keys.Right.SetEnabled(playing)
	km.keys.Confirm.SetEnabled(state.Blocked)
	km.keys.Restart.SetEnabled(state.Finished && !state.Blocked)
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "k": // vim-style k for up
		return MenuActionUp
	case "j": // vim-style j for down
		return MenuActionDown
	}

	action, isQuit := km.MapKey(msg)
	if isQuit {
		return MenuActionQuit
	}
	switch action {
	case core.ActionUp:
		return MenuActionUp
	case core.ActionDown:
		return MenuActionDown
	case core.ActionConfirm:
		return MenuActionSelect
	case core.ActionBack:
		return MenuActionBack
	}
	return MenuActionNone
}
