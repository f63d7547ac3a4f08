package game

import (
	"github.com/zyedidia/generic/mapset"
)

// Role is what occupies a cell.
type Role int

const (
	RoleEmpty Role = iota
	RoleTarget
	RoleResource
	RolePenalty
	RoleMine
	RoleMissing
)

func (r Role) String() string {
	switch r {
	case RoleEmpty:
		return "empty"
	case RoleTarget:
		return "target"
	case RoleResource:
		return "resource"
	case RolePenalty:
		return "penalty"
	case RoleMine:
		return "mine"
	case RoleMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Grid holds the per-level role sets. Resources, Penalties, Mines and Missing
// are disjoint when generated. Revealed records triggered mines for display only.
type Grid struct {
	Resources mapset.Set[Coord]
	Penalties mapset.Set[Coord]
	Mines     mapset.Set[Coord]
	Missing   mapset.Set[Coord]
	Revealed  mapset.Set[Coord]
}

// NewGrid returns a grid with every set empty.
func NewGrid() *Grid {
	return &Grid{
		Resources: mapset.New[Coord](),
		Penalties: mapset.New[Coord](),
		Mines:     mapset.New[Coord](),
		Missing:   mapset.New[Coord](),
		Revealed:  mapset.New[Coord](),
	}
}

// Occupied reports whether c belongs to any of the four role sets.
func (g *Grid) Occupied(c Coord) bool {
	return g.Resources.Has(c) || g.Penalties.Has(c) || g.Mines.Has(c) || g.Missing.Has(c)
}

// RoleAt returns the role of c. Mines are reported whether hidden or not;
// callers that draw the board decide what to show.
func (g *Grid) RoleAt(c Coord) Role {
	switch {
	case c == TargetPos:
		return RoleTarget
	case g.Missing.Has(c):
		return RoleMissing
	case g.Mines.Has(c):
		return RoleMine
	case g.Penalties.Has(c):
		return RolePenalty
	case g.Resources.Has(c):
		return RoleResource
	default:
		return RoleEmpty
	}
}

// Cells returns the members of a set in row-major order.
func Cells(s mapset.Set[Coord]) []Coord {
	out := make([]Coord, 0, s.Size())
	for y := range GridSize {
		for x := range GridSize {
			if c := C(x, y); s.Has(c) {
				out = append(out, c)
			}
		}
	}
	return out
}
