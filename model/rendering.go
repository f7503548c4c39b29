package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// ErrInconsistentGrid is returned when a board reports an in-range cell as missing
var ErrInconsistentGrid = errors.New("grid reported no cell inside its own bounds")

// TerminalRenderer draws a board as text, two columns per cell
type TerminalRenderer struct{}

// Display renders the board to w
func (r *TerminalRenderer) Display(w io.Writer, g GameOfLife) error {
	bw := bufio.NewWriter(w)
	for y := range g.Height() {
		for x := range g.Width() {
			alive, ok := g.IsCellAlive(x, y)
			if !ok {
				return errors.Wrapf(ErrInconsistentGrid, "[Display] cell (%d, %d) of %dx%d", x, y, g.Width(), g.Height())
			}
			if alive {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[Display] failed to flush")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) error {
	_, err := io.WriteString(w, ansiClearScreen)
	return errors.Wrap(err, "[Clear] failed to write")
}
