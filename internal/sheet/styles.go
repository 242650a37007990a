package sheet

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the build reporter.
// Lipgloss degrades colors based on terminal capabilities.
var (
	// StyleLocation is used for file positions and section headers.
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError is used for failed rules and lexer diagnostics.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleCaret marks the column of a diagnostic and load warnings.
	StyleCaret = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleSuccess is used for the summary of a clean build.
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleMuted is used for issue codes and hints.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
