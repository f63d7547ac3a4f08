package game

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/resource-rush/internal/config"
)

// NoticeKind identifies a notification.
type NoticeKind int

const (
	NoticeMine NoticeKind = iota
	NoticePenalty
	NoticeLevelComplete
	NoticeVictory
	NoticeRetry
	NoticeGameOver
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeMine:
		return "mine"
	case NoticePenalty:
		return "penalty"
	case NoticeLevelComplete:
		return "level_complete"
	case NoticeVictory:
		return "victory"
	case NoticeRetry:
		return "retry"
	case NoticeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Notification is a popup that blocks play until acknowledged.
type Notification struct {
	Kind    NoticeKind
	Title   string
	Message string
	Button  string
}

// newNotification fills a notification from the configured texts. The first
// %d in the message is replaced with arg; other text is kept as written.
func newNotification(msgs config.Messages, kind NoticeKind, arg int) Notification {
	var n config.Notice
	switch kind {
	case NoticeMine:
		n = msgs.Mine
	case NoticePenalty:
		n = msgs.Penalty
	case NoticeLevelComplete:
		n = msgs.LevelComplete
	case NoticeVictory:
		n = msgs.Victory
	case NoticeRetry:
		n = msgs.Retry
	case NoticeGameOver:
		n = msgs.GameOver
	}

	return Notification{
		Kind:    kind,
		Title:   n.Title,
		Message: strings.Replace(n.Message, "%d", strconv.Itoa(arg), 1),
		Button:  n.Button,
	}
}

// ShareData is the payload offered to a Sharer after victory.
type ShareData struct {
	Title string
	Text  string
	URL   string
}

// Sharer publishes a victory. Errors are logged by the session and never
// interrupt play.
type Sharer interface {
	Share(data ShareData) error
}
