package game

// MaxLevels is the default number of levels in a run.
const MaxLevels = 10

// advancedFrom is the first level that uses the advanced formulas.
const advancedFrom = 6

// LevelParams are the generation parameters derived for a level number.
type LevelParams struct {
	Level             int
	MoveBudget        int
	RequiredResources int
	Missing           int
	Mines             int
	Penalties         int
	Resources         int // Placed resources: one spare above the requirement
}

// ParamsFor returns the parameters for the given 1-indexed level.
func ParamsFor(level int) LevelParams {
	p := LevelParams{Level: level}
	if level >= advancedFrom {
		p.MoveBudget = 20 + (3*level)/2
		p.RequiredResources = min(3+level/2, 5)
		p.Missing = min((level-5)*2, 8)
		p.Mines = min(level-4, 5)
		p.Penalties = min(level*2, 10)
	} else {
		p.MoveBudget = 20 + 2*level
		p.RequiredResources = min(2+level/2, 4)
		p.Penalties = min(level+1, 6)
	}
	p.Resources = p.RequiredResources + 1
	return p
}

// Advanced reports whether the level has missing cells and mines.
func (p LevelParams) Advanced() bool {
	return p.Level >= advancedFrom
}

// AllParams returns the parameters of levels 1..maxLevels.
func AllParams(maxLevels int) []LevelParams {
	out := make([]LevelParams, 0, maxLevels)
	for lvl := 1; lvl <= maxLevels; lvl++ {
		out = append(out, ParamsFor(lvl))
	}
	return out
}
