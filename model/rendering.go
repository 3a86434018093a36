package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	escReset    = "\x1bc"
	escCursorAt = "\x1b[%d;%dH"
	greenSquare = "\x1b[48;2;0;255;0m  \x1b[0m"

	// each cell is drawn two terminal columns wide
	cellWidth = 2
)

// TerminalRenderer draws boards with ANSI escape sequences
type TerminalRenderer struct {
	out *bufio.Writer
}

// NewTerminalRenderer returns a renderer writing to w
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: bufio.NewWriter(w)}
}

// Clear resets the terminal screen
func (r *TerminalRenderer) Clear() {
	r.out.WriteString(escReset)
}

// Display draws every visible cell of the board relative to its boundary's top-left corner
func (r *TerminalRenderer) Display(b Board) {
	origin := b.Boundary().Min
	for _, c := range b.Visible() {
		line := int(c.Row) - int(origin.Row) + 1
		col := cellWidth*(int(c.Col)-int(origin.Col)) + 1
		fmt.Fprintf(r.out, escCursorAt, line, col)
		r.out.WriteString(greenSquare)
	}
}

// Status writes text lines starting at the top-left corner of the screen
func (r *TerminalRenderer) Status(lines ...string) {
	for i, line := range lines {
		fmt.Fprintf(r.out, escCursorAt, i+1, 1)
		r.out.WriteString(line)
	}
}

// Flush pushes the buffered frame to the terminal
func (r *TerminalRenderer) Flush() error {
	if err := r.out.Flush(); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Flush] failed to write frame")
	}
	return nil
}
