//go:build unix

package utils

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// TerminalSize returns the rows and columns of the terminal attached to fd
func TerminalSize(fd int) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "[TerminalSize] failed to query window size of fd %d", fd)
	}
	return int(ws.Row), int(ws.Col), nil
}
