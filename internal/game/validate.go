package game

// IsValidMove reports whether the player at from may step onto to: the
// destination must be on the board, not a missing cell, and exactly one
// orthogonal step away.
func IsValidMove(g *Grid, from, to Coord) bool {
	if !to.InBounds() {
		return false
	}
	if g.Missing.Has(to) {
		return false
	}
	return from.Manhattan(to) == 1
}

// ValidMoves returns every legal destination from the player's position.
func ValidMoves(g *Grid, from Coord) []Coord {
	var out []Coord
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if to := from.Add(d.Delta()); IsValidMove(g, from, to) {
			out = append(out, to)
		}
	}
	return out
}
