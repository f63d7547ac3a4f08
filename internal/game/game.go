package game

import (
	"github.com/vovakirdan/resource-rush/internal/core"
)

// Game adapts a Session to the platform: it turns input frames into session
// commands and draws the session onto a screen.
type Game struct {
	opts    Options
	session *Session

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game. Reset must be called before the first Step.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// Reset starts a new session with the runtime seed and screen size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	opts := g.opts
	opts.Seed = cfg.Seed
	g.session = NewSession(opts)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	accepted := g.step(in)
	g.logEvents()
	return core.StepResult{State: g.State(), Accepted: accepted}
}

func (g *Game) step(in core.InputFrame) bool {
	if g.tooSmall {
		return false
	}
	s := g.session

	// An open notification swallows everything but its acknowledgement
	if s.Notice() != nil {
		if in.Has(core.ActionConfirm) {
			return s.Acknowledge()
		}
		if in.Pointer != nil && g.noticeRect().Contains(in.Pointer.X, in.Pointer.Y) {
			return s.Acknowledge()
		}
		return false
	}

	if s.Phase() == PhaseVictory {
		if in.Has(core.ActionRestart) {
			s.Restart()
			return true
		}
		return false
	}

	if in.Pointer != nil {
		if c, ok := g.cellAt(*in.Pointer); ok {
			return s.Move(c)
		}
		return false
	}

	if dir, ok := directionFor(in); ok {
		return s.Move(s.Player().Add(dir.Delta()))
	}
	return false
}

// logEvents drains the session's event queue into the debug log.
func (g *Game) logEvents() {
	s := g.session
	for _, ev := range s.TakeEvents() {
		s.logger.Debug("event",
			"kind", ev.Kind,
			"level", ev.Level,
			"at", ev.At,
			"moves", ev.Moves,
			"lives", ev.Lives,
		)
	}
}

// State returns the summary the platform reads after each step.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Level:    s.Level(),
		Lives:    s.Lives(),
		Moves:    s.Moves(),
		Blocked:  s.Notice() != nil,
		Finished: s.Phase() == PhaseVictory,
	}
}
