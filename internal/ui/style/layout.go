package style

import (
	"github.com/charmbracelet/lipgloss"
)

var palette = DefaultPalette()

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Background(palette.Background).
			Foreground(palette.Primary).
			Bold(true).
			Padding(0, 2).
			Margin(0, 0, 1, 0)

	TitleStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0)
)

// Layout styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(0, 1)

	ActivePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.Primary).
				Padding(0, 1)
)

// Status styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted)
)

// AdaptiveJoinHorizontal stacks panes vertically on narrow screens
func AdaptiveJoinHorizontal(width int, panes ...string) string {
	if width < 120 {
		return lipgloss.JoinVertical(lipgloss.Left, panes...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

// AdaptiveWidth returns a share of the width, or nearly all of it on narrow
// screens
func AdaptiveWidth(width, percentage int) int {
	if width < 120 {
		return width - 4
	}
	return (width * percentage) / 100
}
