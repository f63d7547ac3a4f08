package game

// Snapshot captures the complete session state for determinism testing and rendering checks.
type Snapshot struct {
	Level     int
	MaxLevels int
	Lives     int
	Moves     int
	Collected int
	Required  int
	Player    Coord
	Resources []Coord
	Penalties []Coord
	Mines     []Coord
	Missing   []Coord
	Revealed  []Coord
	Phase     Phase
	Notice    *Notification
	Outcome   Outcome
}

// Snapshot returns a copy of the current state. Coordinate lists are in row-major order.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Level:     s.level,
		MaxLevels: s.MaxLevels(),
		Lives:     s.lives,
		Moves:     s.moves,
		Collected: s.collected,
		Required:  s.required,
		Player:    s.player,
		Resources: Cells(s.grid.Resources),
		Penalties: Cells(s.grid.Penalties),
		Mines:     Cells(s.grid.Mines),
		Missing:   Cells(s.grid.Missing),
		Revealed:  Cells(s.grid.Revealed),
		Phase:     s.phase,
		Outcome:   s.outcome,
	}
	if s.notice != nil {
		n := *s.notice
		snap.Notice = &n
	}
	return snap
}
