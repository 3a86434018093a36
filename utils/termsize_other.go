//go:build !unix

package utils

import "github.com/pkg/errors"

// TerminalSize is not supported on this platform
func TerminalSize(fd int) (rows, cols int, err error) {
	return 0, 0, errors.Errorf("[TerminalSize] unsupported platform for fd %d", fd)
}
