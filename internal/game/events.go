package game

// EventKind identifies something that happened during a turn.
type EventKind int

const (
	EventMoved EventKind = iota
	EventMineTriggered
	EventPenalty
	EventResourceCollected
	EventLevelComplete
	EventVictory
	EventRetry
	EventGameOver
	EventShareFailed
)

func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventMineTriggered:
		return "mine_triggered"
	case EventPenalty:
		return "penalty"
	case EventResourceCollected:
		return "resource_collected"
	case EventLevelComplete:
		return "level_complete"
	case EventVictory:
		return "victory"
	case EventRetry:
		return "retry"
	case EventGameOver:
		return "game_over"
	case EventShareFailed:
		return "share_failed"
	default:
		return "unknown"
	}
}

// Event records a state change with the counters right after it.
type Event struct {
	Kind  EventKind
	Level int
	At    Coord
	Moves int
	Lives int
}

// Outcome is the result of a completed turn.
type Outcome int

const (
	OutcomeNone Outcome = iota // No turn has completed yet
	OutcomeContinue
	OutcomeLevelComplete
	OutcomeVictory
	OutcomeRetry
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeContinue:
		return "continue"
	case OutcomeLevelComplete:
		return "level_complete"
	case OutcomeVictory:
		return "victory"
	case OutcomeRetry:
		return "retry"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
