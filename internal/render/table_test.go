package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprbinds/internal/binds"
)

// renderLines renders with a zero theme (no ANSI codes) and splits the
// output into lines.
func renderLines(t *testing.T, width int, rows []binds.Display) []string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, Table{Width: width}.Render(&buf, rows))
	out := strings.TrimSuffix(buf.String(), "\n")
	return strings.Split(out, "\n")
}

func TestRenderEmptyInput(t *testing.T) {
	lines := renderLines(t, 40, nil)

	// Header-only table: top border, header row, bottom border.
	require.Len(t, lines, 3)
	require.Contains(t, lines[1], "Keybind")
	require.Contains(t, lines[1], "Action")
	require.True(t, strings.HasPrefix(lines[0], "┌"))
	require.True(t, strings.HasPrefix(lines[2], "└"))
}

func TestRenderSingleRow(t *testing.T) {
	rows := []binds.Display{
		{Key: "SUPER+Left/Right", Action: "movewindow l/r"},
	}
	lines := renderLines(t, 60, rows)

	require.Len(t, lines, 5)
	require.Contains(t, lines[3], "SUPER+Left/Right")
	require.Contains(t, lines[3], "movewindow l/r")
}

func TestRenderNeverExceedsWidth(t *testing.T) {
	rows := []binds.Display{
		{Key: "SUPER+Q", Action: "exec kitty"},
		{Key: "SUPER+SHIFT+E", Action: strings.Repeat("a very long action string ", 8)},
		{Key: "SUPER+R", Action: "submap " + strings.Repeat("x", 120)},
	}

	for _, width := range []int{24, 40, 78} {
		lines := renderLines(t, width, rows)
		for i, line := range lines {
			// Content width plus the two outer border cells.
			require.LessOrEqual(t, runewidth.StringWidth(line), width+2,
				"width %d line %d: %q", width, i, line)
		}
	}
}

func TestRenderWrapsWithMarker(t *testing.T) {
	rows := []binds.Display{
		{Key: "SUPER+E", Action: strings.Repeat("word ", 20)},
	}
	lines := renderLines(t, 40, rows)

	var continuations int
	for _, line := range lines {
		if strings.Contains(line, "→ ") {
			continuations++
			// Continuation rows leave the key column empty.
			cells := strings.Split(line, "│")
			require.Equal(t, strings.Repeat(" ", len(cells[1])), cells[1])
		}
	}
	require.Greater(t, continuations, 0)

	// The main row still carries the key beside the first wrapped line.
	require.Contains(t, lines[3], "SUPER+E")
	require.NotContains(t, lines[3], "→")
}

func TestRenderCapsKeyColumn(t *testing.T) {
	rows := []binds.Display{
		{Key: strings.Repeat("SUPER+", 20) + "Q", Action: "exec kitty"},
	}
	width := 40
	lines := renderLines(t, width, rows)

	for _, line := range lines {
		require.LessOrEqual(t, runewidth.StringWidth(line), width+2)
	}
	// The overlong key is truncated, not allowed to blow up the column.
	require.Contains(t, lines[3], "…")
}

func TestRenderEmptyAction(t *testing.T) {
	rows := []binds.Display{
		{Key: "SUPER+F", Action: ""},
	}
	lines := renderLines(t, 40, rows)
	require.Len(t, lines, 5)
	require.Contains(t, lines[3], "SUPER+F")
}

func TestRenderBordersAlign(t *testing.T) {
	rows := []binds.Display{
		{Key: "SUPER+Q", Action: "exec kitty"},
		{Key: "SUPER+M", Action: "exit"},
	}
	lines := renderLines(t, 50, rows)

	w := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		require.Equal(t, w, runewidth.StringWidth(line), "line %d", i)
	}
	require.Equal(t, strings.Count(lines[0], "┬"), 1)
	require.Equal(t, strings.Count(lines[2], "┼"), 1)
	require.Equal(t, strings.Count(lines[len(lines)-1], "┴"), 1)
}

func TestWrap(t *testing.T) {
	require.Equal(t, []string{""}, wrap("", 10))
	require.Equal(t, []string{"one two"}, wrap("one two", 10))
	require.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))

	// Words wider than a line hard-break instead of overflowing.
	long := strings.Repeat("x", 25)
	for _, line := range wrap(long, 10) {
		require.LessOrEqual(t, runewidth.StringWidth(line), 10)
	}
}
