package termio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeFallsBackForNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	require.NoError(t, err)
	defer f.Close()

	cols, rows := Size(f)
	require.Equal(t, DefaultCols, cols)
	require.Equal(t, DefaultRows, rows)
}

func TestWaitForKeyRejectsNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	require.NoError(t, err)
	defer f.Close()

	// MakeRaw must fail cleanly on a regular file; nothing to restore.
	require.Error(t, WaitForKey(f))
}
