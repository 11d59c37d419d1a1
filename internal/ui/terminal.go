package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Interactive reports whether stdin is a terminal we can prompt on.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
