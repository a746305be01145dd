// Package terminal provides small terminal manipulation helpers.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines erases previously printed text, typically a credential
// prompt the user just answered. It accounts for line wrapping at the current
// terminal width plus the newline produced by pressing Enter.
func ClearPreviousLines(textLength int) {
	termWidth := 80 // fallback when not a tty
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}

	// The cursor sits on a fresh line after Enter; clear that one too.
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K")
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
