package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintHeading prints a colored heading line above the summary output.
func PrintHeading(text string) {
	p := termenv.ColorProfile()
	fmt.Println(termenv.String(text).Foreground(p.Color("#007786")).Bold())
}
