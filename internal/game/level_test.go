package game

import "testing"

func TestParamsFor(t *testing.T) {
	tests := []struct {
		level     int
		budget    int
		required  int
		missing   int
		mines     int
		penalties int
	}{
		{1, 22, 2, 0, 0, 2},
		{2, 24, 3, 0, 0, 3},
		{3, 26, 3, 0, 0, 4},
		{4, 28, 4, 0, 0, 5},
		{5, 30, 4, 0, 0, 6},
		{6, 29, 5, 2, 2, 10},
		{7, 30, 5, 4, 3, 10},
		{8, 32, 5, 6, 4, 10},
		{9, 33, 5, 8, 5, 10},
		{10, 35, 5, 8, 5, 10},
	}

	for _, tt := range tests {
		p := ParamsFor(tt.level)
		if p.MoveBudget != tt.budget {
			t.Errorf("level %d: MoveBudget = %d, want %d", tt.level, p.MoveBudget, tt.budget)
		}
		if p.RequiredResources != tt.required {
			t.Errorf("level %d: RequiredResources = %d, want %d", tt.level, p.RequiredResources, tt.required)
		}
		if p.Missing != tt.missing {
			t.Errorf("level %d: Missing = %d, want %d", tt.level, p.Missing, tt.missing)
		}
		if p.Mines != tt.mines {
			t.Errorf("level %d: Mines = %d, want %d", tt.level, p.Mines, tt.mines)
		}
		if p.Penalties != tt.penalties {
			t.Errorf("level %d: Penalties = %d, want %d", tt.level, p.Penalties, tt.penalties)
		}
		if p.Resources != p.RequiredResources+1 {
			t.Errorf("level %d: Resources = %d, want %d", tt.level, p.Resources, p.RequiredResources+1)
		}
	}
}

func TestAdvancedLevels(t *testing.T) {
	for _, p := range AllParams(MaxLevels) {
		want := p.Level >= 6
		if p.Advanced() != want {
			t.Errorf("level %d: Advanced() = %v, want %v", p.Level, p.Advanced(), want)
		}
		if !p.Advanced() && (p.Missing != 0 || p.Mines != 0) {
			t.Errorf("level %d: basic level has missing=%d mines=%d", p.Level, p.Missing, p.Mines)
		}
	}
}
