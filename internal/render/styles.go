package render

import "github.com/charmbracelet/lipgloss"

// Palette matching the fatih/color output of the commands.
var (
	ColorCyan   = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}
	ColorGray   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
)

var (
	// StyleHeader is used for table header rows.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true).
			Padding(0, 1)

	// StyleCell is the base style for table cells.
	StyleCell = lipgloss.NewStyle().Padding(0, 1)

	// StyleOverdue highlights a loan past its return date.
	StyleOverdue = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Padding(0, 1)

	// StyleEmpty is for "(none)" placeholders.
	StyleEmpty = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleBorder is for table borders.
	StyleBorder = lipgloss.NewStyle().Foreground(ColorGray)
)
