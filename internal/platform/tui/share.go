package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/vovakirdan/resource-rush/internal/game"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("share: clipboard not supported on this system")

// ClipboardSharer shares a victory by copying the message to the system clipboard.
type ClipboardSharer struct {
	write       func(string) error
	unsupported bool
}

// NewClipboardSharer creates a sharer backed by the system clipboard.
func NewClipboardSharer() *ClipboardSharer {
	return &ClipboardSharer{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// Share copies the title, text and URL as one message.
func (c *ClipboardSharer) Share(data game.ShareData) error {
	if c.unsupported {
		return ErrClipboardUnsupported
	}
	if err := c.write(ShareText(data)); err != nil {
		return fmt.Errorf("share: copy to clipboard: %w", err)
	}
	return nil
}

// ShareText joins the non-empty parts of a share payload, one per line.
func ShareText(data game.ShareData) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{data.Title, data.Text, data.URL} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n")
}
