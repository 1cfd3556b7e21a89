package style

import (
	"github.com/charmbracelet/lipgloss"
)

// WalletCellStyles provides styling for a wallet row
type WalletCellStyles struct {
	Index        lipgloss.Style
	Name         lipgloss.Style
	Balance      lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Pending      lipgloss.Style
	Row          lipgloss.Style
	RowFocused   lipgloss.Style
}

// NewWalletCellStyles creates wallet row styles with the given palette
func NewWalletCellStyles(palette Palette) WalletCellStyles {
	return WalletCellStyles{
		Index: lipgloss.NewStyle().
			Bold(true).
			Width(4),

		Name: lipgloss.NewStyle().
			Foreground(palette.Text).
			Width(18),

		Balance: lipgloss.NewStyle().
			Foreground(palette.TextSecondary).
			Width(14).
			Align(lipgloss.Right),

		Input: lipgloss.NewStyle().
			Foreground(palette.Text).
			Background(palette.BackgroundAlt).
			Padding(0, 1).
			Width(14),

		InputFocused: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Padding(0, 1).
			Width(14),

		Pending: lipgloss.NewStyle().
			Foreground(palette.Warning),

		Row: lipgloss.NewStyle().
			Padding(0, 1),

		RowFocused: lipgloss.NewStyle().
			Padding(0, 1).
			Background(palette.BackgroundAlt),
	}
}

// TokenCellStyles provides styling for a token card
type TokenCellStyles struct {
	Container        lipgloss.Style
	ContainerFocused lipgloss.Style
	Title            lipgloss.Style
	Pair             lipgloss.Style
	Label            lipgloss.Style
	Value            lipgloss.Style
	Placeholder      lipgloss.Style
	Positive         lipgloss.Style
	Negative         lipgloss.Style
	Forecast         lipgloss.Style
}

// NewTokenCellStyles creates token card styles
func NewTokenCellStyles(palette Palette) TokenCellStyles {
	return TokenCellStyles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(0, 1),

		ContainerFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		Pair: lipgloss.NewStyle().
			Foreground(palette.TextSecondary),

		Label: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		Value: lipgloss.NewStyle().
			Foreground(palette.Text),

		Placeholder: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Italic(true),

		Positive: lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true),

		Negative: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true),

		Forecast: lipgloss.NewStyle().
			Foreground(palette.TextMuted),
	}
}

// HeaderStyles provides styling for the status header
type HeaderStyles struct {
	Container lipgloss.Style
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Pending   lipgloss.Style
	Good      lipgloss.Style
	Bad       lipgloss.Style
}

// NewHeaderStyles creates header styles with the given palette
func NewHeaderStyles(palette Palette) HeaderStyles {
	return HeaderStyles{
		Container: lipgloss.NewStyle().
			Foreground(palette.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(0, 2).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		Pending: lipgloss.NewStyle().
			Foreground(palette.Warning).
			Bold(true),

		Good: lipgloss.NewStyle().
			Foreground(palette.Success),

		Bad: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true),
	}
}
