// Package termio wraps the terminal handling the CLI needs: geometry
// detection and a raw-mode single-key wait.
package termio

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// Fallback geometry when the output is not a terminal.
const (
	DefaultCols = 80
	DefaultRows = 20
)

// Size returns the terminal dimensions of f, falling back to 80x20
// when f is not a terminal.
func Size(f *os.File) (cols, rows int) {
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return DefaultCols, DefaultRows
	}
	return cols, rows
}

// WaitForKey puts f into raw mode, blocks until a single byte arrives
// and restores the previous terminal state. Restoration runs on every
// exit path; a failed read still restores, and a failed restore is
// reported alongside the read error.
func WaitForKey(f *os.File) error {
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	var buf [1]byte
	_, readErr := f.Read(buf[:])
	return errors.Join(readErr, term.Restore(fd, old))
}
