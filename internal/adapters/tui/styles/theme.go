package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Source colors
	SourceStartMenu = lipgloss.Color("#60A5FA") // Blue
	SourcePath      = lipgloss.Color("#F97316") // Orange

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Candidate line styles
	Candidate = lipgloss.NewStyle()

	CandidateSelected = lipgloss.NewStyle().
				Background(Primary).
				Foreground(White).
				Bold(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Table styles for list and history output
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Stale = lipgloss.NewStyle().
		Foreground(Warning).
		Italic(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// SourceColor returns the color for a source code ("S" or "P")
func SourceColor(code string) lipgloss.Color {
	switch code {
	case "S":
		return SourceStartMenu
	case "P":
		return SourcePath
	default:
		return Muted
	}
}

// SourceBadge renders a source code in its color
func SourceBadge(code string) string {
	return lipgloss.NewStyle().Foreground(SourceColor(code)).Bold(true).Render(code)
}
