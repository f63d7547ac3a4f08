package game

import (
	"github.com/vovakirdan/resource-rush/internal/core"
)

// stage is the next step a turn will run.
type stage int

const (
	stageMine stage = iota
	stagePenalty
	stageCollect
	stageWin
	stageExhaust
	stageDone
)

// Hazard costs, applied after the step itself.
const (
	minePenalty = 2
	icePenalty  = 1
)

// turn is a move being resolved. It survives across notifications so the
// session can resume it where it stopped.
type turn struct {
	at      Coord
	stage   stage
	outcome Outcome
}

// resolve runs the current turn until it finishes or a notification
// suspends it.
func (s *Session) resolve() {
	for s.turn != nil {
		t := s.turn
		switch t.stage {
		case stageMine:
			t.stage = stagePenalty
			if s.grid.Mines.Has(t.at) {
				s.grid.Mines.Remove(t.at)
				s.grid.Revealed.Put(t.at)
				s.moves = core.FloorZero(s.moves - minePenalty)
				s.emit(EventMineTriggered)
				s.logger.Debug("mine triggered", "at", t.at, "moves", s.moves)
				s.suspend(NoticeMine, 0, PhaseAwaitingAck, afterResume)
				return
			}

		case stagePenalty:
			// Independent of the mine check; generated sets never overlap.
			t.stage = stageCollect
			if s.grid.Penalties.Has(t.at) {
				s.moves = core.FloorZero(s.moves - icePenalty)
				s.emit(EventPenalty)
				s.logger.Debug("penalty cell", "at", t.at, "moves", s.moves)
				s.suspend(NoticePenalty, 0, PhaseAwaitingAck, afterResume)
				return
			}

		case stageCollect:
			t.stage = stageWin
			if s.grid.Resources.Has(t.at) {
				s.grid.Resources.Remove(t.at)
				s.collected++
				s.emit(EventResourceCollected)
			}

		case stageWin:
			t.stage = stageExhaust
			if t.at != TargetPos || s.collected < s.required {
				continue
			}
			if s.level >= s.MaxLevels() {
				t.stage = stageDone
				t.outcome = OutcomeVictory
				s.emit(EventVictory)
				s.logger.Info("victory", "lives", s.lives)
				s.suspend(NoticeVictory, 0, PhaseAwaitingAck, afterShare)
				return
			}
			s.level++
			t.outcome = OutcomeLevelComplete
			s.emit(EventLevelComplete)
			s.logger.Info("level complete", "next", s.level)
			s.suspend(NoticeLevelComplete, s.level, PhaseLevelTransition, afterNextLevel)
			return

		case stageExhaust:
			t.stage = stageDone
			if s.moves > 0 {
				continue
			}
			s.lives--
			if s.lives <= 0 {
				t.outcome = OutcomeGameOver
				s.emit(EventGameOver)
				s.logger.Info("game over", "level", s.level)
				s.suspend(NoticeGameOver, 0, PhaseLevelTransition, afterGameOver)
				return
			}
			t.outcome = OutcomeRetry
			s.emit(EventRetry)
			s.logger.Info("out of moves", "level", s.level, "lives", s.lives)
			s.suspend(NoticeRetry, s.lives, PhaseLevelTransition, afterRetry)
			return

		case stageDone:
			if t.outcome == OutcomeNone {
				t.outcome = OutcomeContinue
			}
			s.outcome = t.outcome
			s.turn = nil
			if t.outcome == OutcomeVictory {
				s.phase = PhaseVictory
			} else {
				s.phase = PhaseIdle
			}
		}
	}
}
