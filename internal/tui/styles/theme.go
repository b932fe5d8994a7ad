package styles

import (
	"github.com/allbin/rtscts/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	// Pin level styles
	LevelHighStyle = lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true)

	LevelLowStyle = lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true)

	// Prompt shown while a pin is held
	PromptStyle = lipgloss.NewStyle().
			Foreground(colors.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(colors.Surface1).
			PaddingLeft(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colors.Overlay1)

	ReleasedStyle = lipgloss.NewStyle().
			Foreground(colors.Yellow)
)

// GetLevelStyle returns the style for a pin driven high (true) or low (false)
func GetLevelStyle(high bool) lipgloss.Style {
	if high {
		return LevelHighStyle
	}
	return LevelLowStyle
}
