// Package render draws keybinding tables with box-drawing borders.
package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bnema/hyprbinds/internal/binds"
)

const (
	headerKey    = "Keybind"
	headerAction = "Action"
	wrapMarker   = "→ "
)

// Table lays out display records into a bordered two-column table.
// Width is the content width (key column + separator + action column);
// rendered lines are Width+2 cells wide including the outer borders, so
// callers typically pass terminal columns minus a small margin.
type Table struct {
	Width int
	Theme Theme
}

// Render writes the table to w. Keys wider than the capped key column
// are truncated with an ellipsis; actions word-wrap into continuation
// rows marked with an arrow. An empty row set renders a header-only
// table.
func (t Table) Render(w io.Writer, rows []binds.Display) error {
	keyW, actionW := t.columns(rows)
	wrapW := actionW - runewidth.StringWidth(wrapMarker)
	if wrapW < 1 {
		wrapW = 1
	}

	bw := bufio.NewWriter(w)
	t.borderLine(bw, "┌", "┬", "┐", keyW, actionW)
	t.row(bw, t.Theme.Header.Render(pad(headerKey, keyW)), t.Theme.Header.Render(pad(headerAction, actionW)))

	if len(rows) > 0 {
		t.borderLine(bw, "├", "┼", "┤", keyW, actionW)
	}
	for _, r := range rows {
		key := runewidth.Truncate(r.Key, keyW, "…")
		lines := wrap(r.Action, wrapW)

		t.row(bw, t.Theme.Key.Render(pad(key, keyW)), pad(lines[0], actionW))
		for _, extra := range lines[1:] {
			cont := t.Theme.Marker.Render(wrapMarker) + pad(extra, actionW-runewidth.StringWidth(wrapMarker))
			t.row(bw, pad("", keyW), cont)
		}
	}

	t.borderLine(bw, "└", "┴", "┘", keyW, actionW)
	return bw.Flush()
}

// columns computes the two column widths. The key column fits the
// longest key plus padding but never exceeds half the table; the guard
// against an empty row set is the header width itself.
func (t Table) columns(rows []binds.Display) (keyW, actionW int) {
	keyW = runewidth.StringWidth(headerKey)
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Key); w > keyW {
			keyW = w
		}
	}
	keyW += 2
	if half := t.Width / 2; keyW > half {
		keyW = half
	}
	actionW = t.Width - keyW - 1
	if actionW < 1 {
		actionW = 1
	}
	return keyW, actionW
}

func (t Table) borderLine(w *bufio.Writer, left, mid, right string, keyW, actionW int) {
	line := left + strings.Repeat("─", keyW) + mid + strings.Repeat("─", actionW) + right
	w.WriteString(t.Theme.Border.Render(line))
	w.WriteByte('\n')
}

func (t Table) row(w *bufio.Writer, keyCell, actionCell string) {
	sep := t.Theme.Border.Render("│")
	w.WriteString(sep)
	w.WriteString(keyCell)
	w.WriteString(sep)
	w.WriteString(actionCell)
	w.WriteString(sep)
	w.WriteByte('\n')
}

// pad right-pads s with spaces to the given display width. Styling is
// applied to already-padded cells so it never shifts the column math.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// wrap greedily word-wraps s to the given display width, hard-breaking
// words that are wider than a whole line. It always returns at least
// one line so the main row stays well-formed for empty actions.
func wrap(s string, width int) []string {
	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range strings.Fields(s) {
		wordW := runewidth.StringWidth(word)
		if lineW > 0 && lineW+1+wordW > width {
			flush()
		}
		if wordW > width {
			word = breakWord(&lines, &line, &lineW, word, width)
			wordW = runewidth.StringWidth(word)
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(word)
		lineW += wordW
	}
	if lineW > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// breakWord emits full-width chunks of an overlong word and returns the
// remaining tail that fits on a line.
func breakWord(lines *[]string, line *strings.Builder, lineW *int, word string, width int) string {
	if *lineW > 0 {
		*lines = append(*lines, line.String())
		line.Reset()
		*lineW = 0
	}
	for runewidth.StringWidth(word) > width {
		chunk := runewidth.Truncate(word, width, "")
		if chunk == "" {
			break
		}
		*lines = append(*lines, chunk)
		word = word[len(chunk):]
	}
	return word
}
