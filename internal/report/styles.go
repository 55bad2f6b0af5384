package report

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — section headers
	colorAccent  = lipgloss.Color("#FFD700") // Gold — strong placements
	colorSuccess = lipgloss.Color("#00E676") // Green — benefic findings
	colorDanger  = lipgloss.Color("#FF5252") // Red — debilitation/weakness
	colorMuted   = lipgloss.Color("#8C8C8C") // Gray — secondary values
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white — primary text
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSection = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			MarginTop(1)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	styleCell = lipgloss.NewStyle().
			Foreground(colorWhite).
			Padding(0, 1)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleStrong = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleBenefic = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleMalefic = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleBorder = lipgloss.NewStyle().
			Foreground(colorMuted)
)
