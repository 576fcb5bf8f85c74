package ui

import "github.com/charmbracelet/lipgloss"

// ASCII art for the plura welcome screen as single string to preserve exact formatting
const pluraASCII = `██████   ████     ████  ████  ██████     ██████
████  ██ ████     ████  ████  ████  ██ ████  ████
██████   ████     ████  ████  ██████   ██████████
████     ████     ████  ████  ████  ██ ████  ████
████     ████████  ████████   ████  ██ ████  ████`

// Tagline shown under the welcome header
const Tagline = "Your Cinematic Universe Awaits."

// FormatASCIIHeader renders the plura ASCII header with the theme gradient ends
// Render as single block to preserve spacing and structure
func FormatASCIIHeader() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(PluraCyan).
		Bold(true)

	return headerStyle.Render(pluraASCII)
}

// FormatTagline renders the welcome subtitle
func FormatTagline() string {
	return lipgloss.NewStyle().
		Foreground(PluraFuchsia).
		Italic(true).
		Render(Tagline)
}
