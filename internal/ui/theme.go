package ui

import "github.com/charmbracelet/lipgloss"

// Plura theme colors (neon cinema)
var (
	// Primary colors
	PluraCyan       = lipgloss.Color("#22d3ee") // Focus ring
	PluraFuchsia    = lipgloss.Color("#d946ef") // Accent
	PluraBackground = lipgloss.Color("#0f172a") // Night
	PluraForeground = lipgloss.Color("#f1f5f9") // Screen white
	PluraMuted      = lipgloss.Color("#94a3b8") // Slate
	PluraSurface    = lipgloss.Color("#1e293b") // Card surface

	// Semantic colors
	ColorSuccess = lipgloss.Color("#2ecc71")
	ColorWarning = lipgloss.Color("#f39c12")
	ColorError   = lipgloss.Color("#ef4444")
	ColorInfo    = PluraCyan
	ColorRating  = lipgloss.Color("#facc15")
)

// Styles for TUI components
var (
	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PluraForeground).
			Background(PluraFuchsia).
			Padding(0, 1)

	// Footer style (keybindings)
	FooterStyle = lipgloss.NewStyle().
			Foreground(PluraMuted).
			Background(PluraBackground).
			Padding(0, 1)

	// Title style (for sections)
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PluraCyan)

	// Content style
	ContentStyle = lipgloss.NewStyle().
			Foreground(PluraForeground)

	// Muted text style
	MutedStyle = lipgloss.NewStyle().
			Foreground(PluraMuted)

	// Rating style
	RatingStyle = lipgloss.NewStyle().
			Foreground(ColorRating).
			Bold(true)

	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	// Welcome screen call to action
	WelcomeButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(PluraMuted).
				Foreground(PluraForeground).
				Padding(0, 3)

	FocusedWelcomeButtonStyle = WelcomeButtonStyle.
					BorderForeground(PluraCyan).
					Foreground(PluraCyan).
					Bold(true)

	// Pills for tabs and bottom nav
	PillStyle = lipgloss.NewStyle().
			Foreground(PluraMuted).
			Background(PluraSurface).
			Padding(0, 2)

	ActivePillStyle = PillStyle.
			Foreground(PluraForeground).
			Background(lipgloss.Color("#0e7490")).
			Bold(true)

	FocusedPillStyle = PillStyle.
				Foreground(PluraBackground).
				Background(PluraCyan).
				Bold(true)

	// Cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PluraSurface).
			Padding(0, 1)

	FocusedCardStyle = CardStyle.
				BorderForeground(PluraCyan)

	// Detail panel
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PluraFuchsia).
			Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(PluraForeground).
			Background(PluraSurface).
			Padding(0, 2)

	FocusedButtonStyle = ButtonStyle.
				Foreground(PluraBackground).
				Background(PluraCyan).
				Bold(true)
)

// FormatKeybinding formats a keybinding for display in footer
func FormatKeybinding(key, description string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(PluraCyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(PluraMuted)

	return keyStyle.Render(key) + " " + descStyle.Render(description)
}

// FormatHeader formats a header with consistent styling
func FormatHeader(title string, width int) string {
	return HeaderStyle.Width(width).Render(title)
}

// FormatFooter formats footer with keybindings
func FormatFooter(width int, keybindings ...string) string {
	footer := ""
	for i, kb := range keybindings {
		if i > 0 {
			footer += "  "
		}
		footer += kb
	}
	return FooterStyle.Width(width).MaxHeight(1).Render(footer)
}

// Status marker styles (moonbit-inspired)
var (
	OKMarker   = lipgloss.NewStyle().Foreground(ColorSuccess).SetString("[OK]")
	InfoMarker = lipgloss.NewStyle().Foreground(ColorInfo).SetString("[INFO]")
	FailMarker = lipgloss.NewStyle().Foreground(ColorError).SetString("[FAIL]")
)

// FormatStatusOK returns an [OK] marker with message
func FormatStatusOK(message string) string {
	return OKMarker.String() + " " + message
}

// FormatStatusInfo returns an [INFO] marker with message
func FormatStatusInfo(message string) string {
	return InfoMarker.String() + " " + message
}

// FormatStatusFail returns a [FAIL] marker with message
func FormatStatusFail(message string) string {
	return FailMarker.String() + " " + message
}
