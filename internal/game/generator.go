package game

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// DefaultMaxAttempts is the number of samples tried per item before skipping it.
const DefaultMaxAttempts = 50

// Generator places obstacles and resources on fresh grids.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewGenerator creates a generator with a seeded RNG. A non-positive
// maxAttempts uses DefaultMaxAttempts.
func NewGenerator(seed int64, maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: maxAttempts,
	}
}

// Generate builds a grid for p. Placement is best effort: an item that finds
// no free cell within the attempt limit is skipped. The number of skipped
// items is returned alongside the grid.
func (gen *Generator) Generate(p LevelParams) (*Grid, int) {
	g := NewGrid()
	skipped := 0
	skipped += gen.place(g, g.Missing, p.Missing)
	skipped += gen.place(g, g.Mines, p.Mines)
	skipped += gen.place(g, g.Penalties, p.Penalties)
	skipped += gen.place(g, g.Resources, p.Resources)
	return g, skipped
}

func (gen *Generator) place(g *Grid, set mapset.Set[Coord], n int) int {
	skipped := 0
	for range n {
		if c, ok := gen.freeCell(g); ok {
			set.Put(c)
		} else {
			skipped++
		}
	}
	return skipped
}

// freeCell samples uniform coordinates until one is neither a fixed corner
// nor already occupied.
func (gen *Generator) freeCell(g *Grid) (Coord, bool) {
	for range gen.maxAttempts {
		c := C(gen.rng.Intn(GridSize), gen.rng.Intn(GridSize))
		if c == StartPos || c == TargetPos || g.Occupied(c) {
			continue
		}
		return c, true
	}
	return Coord{}, false
}
