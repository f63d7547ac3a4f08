package tui

import (
	"errors"
	"testing"

	"github.com/vovakirdan/resource-rush/internal/game"
)

func TestClipboardSharer(t *testing.T) {
	var copied string
	s := &ClipboardSharer{write: func(text string) error {
		copied = text
		return nil
	}}

	data := game.ShareData{Title: "Rush", Text: "I saved Christmas", URL: "https://example.com"}
	if err := s.Share(data); err != nil {
		t.Fatalf("Share() = %v", err)
	}
	if copied != "Rush\nI saved Christmas\nhttps://example.com" {
		t.Errorf("copied %q", copied)
	}
}

func TestClipboardSharerErrors(t *testing.T) {
	boom := errors.New("boom")
	s := &ClipboardSharer{write: func(string) error { return boom }}
	if err := s.Share(game.ShareData{Text: "x"}); !errors.Is(err, boom) {
		t.Errorf("Share() = %v, want wrapped boom", err)
	}

	s = &ClipboardSharer{unsupported: true}
	if err := s.Share(game.ShareData{Text: "x"}); !errors.Is(err, ErrClipboardUnsupported) {
		t.Errorf("Share() = %v, want ErrClipboardUnsupported", err)
	}
}

func TestShareTextSkipsEmpty(t *testing.T) {
	if got := ShareText(game.ShareData{Text: "only"}); got != "only" {
		t.Errorf("ShareText = %q, want %q", got, "only")
	}
}
