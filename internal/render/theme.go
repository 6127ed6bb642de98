package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles layered on top of the fixed table
// layout. The zero value renders plain text, which is what tests and
// non-terminal output get.
type Theme struct {
	Border lipgloss.Style
	Header lipgloss.Style
	Key    lipgloss.Style
	Marker lipgloss.Style
}

// DefaultTheme returns the standard terminal theme: dim borders, bold
// header, highlighted key column.
func DefaultTheme() Theme {
	return Theme{
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
		Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
