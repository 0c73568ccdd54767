package settings

import "github.com/charmbracelet/lipgloss"

const PidFilePath = "/tmp/clockface.pid"
const LogFilePath = "/tmp/clockface.log"

type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Faint      lipgloss.Color
}

//nolint:gochecknoglobals // ok
var Dark = Theme{
	Name:       "dark",
	Background: lipgloss.Color("#1a1b26"),
	Foreground: lipgloss.Color("#c0caf5"),
	Accent:     lipgloss.Color("#7aa2f7"),
	Faint:      lipgloss.Color("#565f89"),
}

//nolint:gochecknoglobals // ok
var Light = Theme{
	Name:       "light",
	Background: lipgloss.Color("#e1e2e7"),
	Foreground: lipgloss.Color("#343b58"),
	Accent:     lipgloss.Color("#2e7de9"),
	Faint:      lipgloss.Color("#848cb5"),
}

// ForDarkMode resolves the theme toggle into a palette.
func ForDarkMode(darkMode bool) Theme {
	if darkMode {
		return Dark
	}

	return Light
}
