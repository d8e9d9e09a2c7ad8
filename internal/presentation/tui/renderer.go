// Package tui renders the dataset summary for the terminal.
package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// maxWidth caps the rendered summary so tables stay readable on wide
// terminals.
const maxWidth = 100

// NewRenderer returns a function that renders markdown using glamour.
// Output wraps to the terminal width when it is narrower than the cap.
func NewRenderer() func(string) (string, error) {
	width := maxWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
