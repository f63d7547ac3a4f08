package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/resource-rush/internal/config"
	"github.com/vovakirdan/resource-rush/internal/core"
)

// Phase is the session's position in the turn cycle.
type Phase int

const (
	PhaseIdle            Phase = iota // Accepting moves
	PhaseAwaitingAck                  // A notification is open mid-turn
	PhaseLevelTransition              // A notification whose acknowledgement regenerates a level is open
	PhaseVictory                      // Run complete; only Restart is accepted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingAck:
		return "awaiting_ack"
	case PhaseLevelTransition:
		return "level_transition"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Options configures a Session.
type Options struct {
	Config config.RushConfig
	Seed   int64
	Logger *log.Logger // nil discards logs
	Sharer Sharer      // nil disables sharing
}

// afterAck is the deferred action run when the open notification is acknowledged.
type afterAck int

const (
	afterResume afterAck = iota
	afterNextLevel
	afterRetry
	afterGameOver
	afterShare
)

// Session is the state of one run: the current level's grid, the player,
// and the counters that carry across levels.
type Session struct {
	cfg    config.RushConfig
	gen    *Generator
	logger *log.Logger
	sharer Sharer

	grid      *Grid
	player    Coord
	level     int
	lives     int
	moves     int
	collected int
	required  int

	phase   Phase
	turn    *turn
	notice  *Notification
	after   afterAck
	outcome Outcome
	events  []Event
}

// NewSession creates a session and generates its first level.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		cfg:    opts.Config,
		gen:    NewGenerator(opts.Seed, opts.Config.Placement.MaxAttempts),
		logger: logger,
		sharer: opts.Sharer,
	}
	s.Restart()
	return s
}

// Restart begins a new run at the configured start level with full lives.
func (s *Session) Restart() {
	s.level = core.Clamp(s.cfg.Session.StartLevel, 1, s.MaxLevels())
	s.lives = s.cfg.Session.Lives
	s.turn = nil
	s.notice = nil
	s.after = afterResume
	s.outcome = OutcomeNone
	s.phase = PhaseIdle
	s.setupLevel()
	s.logger.Info("run started", "level", s.level, "lives", s.lives)
}

// setupLevel regenerates the grid and per-level counters for s.level.
func (s *Session) setupLevel() {
	p := ParamsFor(s.level)
	grid, skipped := s.gen.Generate(p)

	s.grid = grid
	s.player = StartPos
	s.moves = p.MoveBudget
	s.required = p.RequiredResources
	s.collected = 0

	s.logger.Debug("level ready",
		"level", p.Level,
		"moves", p.MoveBudget,
		"required", p.RequiredResources,
		"missing", grid.Missing.Size(),
		"mines", grid.Mines.Size(),
		"penalties", grid.Penalties.Size(),
		"resources", grid.Resources.Size(),
	)
	if skipped > 0 {
		s.logger.Debug("level under-populated", "level", p.Level, "skipped", skipped)
	}
}

// IsValidMove reports whether the player may step onto c.
func (s *Session) IsValidMove(c Coord) bool {
	return IsValidMove(s.grid, s.player, c)
}

// ValidMoves returns the legal destinations while moves are accepted.
func (s *Session) ValidMoves() []Coord {
	if !s.CanMove() {
		return nil
	}
	return ValidMoves(s.grid, s.player)
}

// CanMove reports whether a move request would be considered at all.
func (s *Session) CanMove() bool {
	return s.phase == PhaseIdle && s.moves > 0
}

// Move starts a turn toward c. It returns false, changing nothing, when a
// turn is in progress, no moves remain, or c is not a legal destination.
func (s *Session) Move(c Coord) bool {
	if !s.CanMove() || !s.IsValidMove(c) {
		return false
	}

	s.moves = core.FloorZero(s.moves - 1)
	s.player = c
	s.emit(EventMoved)

	s.turn = &turn{at: c}
	s.resolve()
	return true
}

// Acknowledge dismisses the open notification and resumes the suspended
// turn. It returns false when nothing is open.
func (s *Session) Acknowledge() bool {
	if s.notice == nil {
		return false
	}
	after := s.after
	s.notice = nil
	s.after = afterResume

	switch after {
	case afterNextLevel:
		s.setupLevel()
	case afterRetry:
		// The retry budget comes from the level formula via setupLevel.
		s.setupLevel()
	case afterGameOver:
		s.level = 1
		s.lives = s.cfg.Session.Lives
		s.setupLevel()
	case afterShare:
		s.share()
	}

	s.resolve()
	return true
}

// suspend opens a notification and parks the turn until Acknowledge.
func (s *Session) suspend(kind NoticeKind, arg int, phase Phase, after afterAck) {
	n := newNotification(s.cfg.Messages, kind, arg)
	s.notice = &n
	s.phase = phase
	s.after = after
}

func (s *Session) share() {
	if s.sharer == nil || !s.cfg.Share.Enabled {
		return
	}
	data := ShareData{
		Title: s.cfg.Share.Title,
		Text:  s.cfg.Share.Text,
		URL:   s.cfg.Share.URL,
	}
	if err := s.sharer.Share(data); err != nil {
		s.logger.Warn("share failed", "error", err)
		s.emit(EventShareFailed)
	}
}

func (s *Session) emit(kind EventKind) {
	s.events = append(s.events, Event{
		Kind:  kind,
		Level: s.level,
		At:    s.player,
		Moves: s.moves,
		Lives: s.lives,
	})
}

// TakeEvents returns the queued events and clears the queue.
func (s *Session) TakeEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// MaxLevels returns the number of levels in a run.
func (s *Session) MaxLevels() int {
	if s.cfg.Session.MaxLevels <= 0 {
		return MaxLevels
	}
	return s.cfg.Session.MaxLevels
}

// Grid returns the current level's grid.
func (s *Session) Grid() *Grid { return s.grid }

// Player returns the player position.
func (s *Session) Player() Coord { return s.player }

// Level returns the current 1-indexed level.
func (s *Session) Level() int { return s.level }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Moves returns the remaining move budget.
func (s *Session) Moves() int { return s.moves }

// Collected returns the resources collected on this level.
func (s *Session) Collected() int { return s.collected }

// Required returns the resources needed to finish this level.
func (s *Session) Required() int { return s.required }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Notice returns the open notification, or nil.
func (s *Session) Notice() *Notification { return s.notice }

// Outcome returns the outcome of the last completed turn.
func (s *Session) Outcome() Outcome { return s.outcome }
