package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		Padding(0, 1).
		MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B82F6"))

	warnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F59E0B"))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")).
		Bold(true)
)

// DisplayWelcomeBanner shows the welcome banner
func DisplayWelcomeBanner() {
	fmt.Println(titleStyle.Render("OptionsGo — option chain viewer"))
	fmt.Println(headerStyle.Render("Fetches live call-option chains straight from the options page"))
	fmt.Println()
}

// DisplayWarning prints a non-fatal warning line
func DisplayWarning(msg string) {
	fmt.Println(warnStyle.Render("! " + msg))
}

// DisplayError prints a fatal error line
func DisplayError(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}
