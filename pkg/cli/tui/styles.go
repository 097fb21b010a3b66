package tui

import (
	"strings"

	"devlinks-go/pkg/models"

	"github.com/charmbracelet/lipgloss"
)

// Consistent color palette for every flow.
var (
	colorPrimary = lipgloss.Color("#633CFF") // devlinks purple
	colorError   = lipgloss.Color("#FF3939")
	colorSuccess = lipgloss.Color("42")
	colorInfo    = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("240")
	colorBorder  = lipgloss.Color("238")
)

// Reusable style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	boldStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	grabbedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2).
			Width(40)
)

func renderTitle(title string) string {
	return "\n" + titleStyle.Render(title) + "\n"
}

func renderSuccess(msg string) string {
	return successStyle.Render("✓ " + msg)
}

func renderError(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

func renderDivider(length int) string {
	return dividerStyle.Render(strings.Repeat("─", length))
}

// renderPlatformBadge paints the platform name over its brand color, the
// terminal stand-in for the branded link buttons.
func renderPlatformBadge(platform models.Platform, width int) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(platform.Color)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1).
		Width(width)
	label := platform.Glyph
	if label != "" {
		label += " "
	}
	return style.Render(label + platform.Name)
}
