package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/resource-rush/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"W", runeKey('W'), core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"A", runeKey('A'), core.ActionLeft, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"S", runeKey('S'), core.ActionDown, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"D", runeKey('D'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestKeyMapperSetState(t *testing.T) {
	tests := []struct {
		name    string
		state   core.GameState
		move    bool
		confirm bool
		restart bool
	}{
		{"playing", core.GameState{}, true, false, false},
		{"notification open", core.GameState{Blocked: true}, false, true, false},
		{"victory notification", core.GameState{Blocked: true, Finished: true}, false, true, false},
		{"run finished", core.GameState{Finished: true}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewKeyMapper()
			km.SetState(tt.state)
			keys := km.Keys()

			if got := keys.Up.Enabled(); got != tt.move {
				t.Errorf("Up.Enabled() = %v, want %v", got, tt.move)
			}
			if got := keys.Confirm.Enabled(); got != tt.confirm {
				t.Errorf("Confirm.Enabled() = %v, want %v", got, tt.confirm)
			}
			if got := keys.Restart.Enabled(); got != tt.restart {
				t.Errorf("Restart.Enabled() = %v, want %v", got, tt.restart)
			}

			action, _ := km.MapKey(runeKey('r'))
			if got := action == core.ActionRestart; got != tt.restart {
				t.Errorf("MapKey(r) = %v, restart enabled %v", action, tt.restart)
			}
			if q, _ := km.MapKey(runeKey('q')); q != core.ActionQuit {
				t.Errorf("MapKey(q) = %v, want Quit", q)
			}
		})
	}
}

func TestShortHelpFollowsState(t *testing.T) {
	km := NewKeyMapper()
	h := help.New()

	km.SetState(core.GameState{})
	view := h.View(km.Keys())
	if strings.Contains(view, "play again") {
		t.Errorf("help during play = %q, want no restart hint", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("help during play = %q, want quit hint", view)
	}

	km.SetState(core.GameState{Finished: true})
	view = h.View(km.Keys())
	if !strings.Contains(view, "play again") {
		t.Errorf("help after victory = %q, want restart hint", view)
	}
	if strings.Contains(view, "up") {
		t.Errorf("help after victory = %q, want no move hints", view)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{runeKey('S'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
