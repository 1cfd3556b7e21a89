package style

import "github.com/charmbracelet/lipgloss"

var (
	// Primary colors
	Cyan    = lipgloss.Color("#00E5FF") // Primary highlight
	Magenta = lipgloss.Color("#FF1B6B") // Accent
	Yellow  = lipgloss.Color("#FFB500") // Warnings
	Green   = lipgloss.Color("#2AFFAA") // Positive PnL / success
	Red     = lipgloss.Color("#FF5555") // Negative PnL / errors
	Blue    = lipgloss.Color("#3B82F6") // Info
	Purple  = lipgloss.Color("#8B5CF6") // Secondary accent
	Orange  = lipgloss.Color("#FF8A3D")

	// Base colors
	Base03 = lipgloss.Color("#1B1D23") // Background
	Base02 = lipgloss.Color("#262831") // Darker background
	Base01 = lipgloss.Color("#6C7280") // Muted text
	Base2  = lipgloss.Color("#ECEFF4") // Primary text
	Base1  = lipgloss.Color("#B4BCC8") // Secondary text
)

// Palette provides a centralized color management
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color

	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextSecondary lipgloss.Color

	Up   lipgloss.Color
	Down lipgloss.Color
	Flat lipgloss.Color
}

// DefaultPalette returns the default color palette
func DefaultPalette() Palette {
	return Palette{
		Primary:   Cyan,
		Secondary: Magenta,
		Success:   Green,
		Error:     Red,
		Warning:   Yellow,
		Info:      Blue,

		Background:    Base03,
		BackgroundAlt: Base02,
		Text:          Base2,
		TextMuted:     Base01,
		TextSecondary: Base1,

		Up:   Green,
		Down: Red,
		Flat: Yellow,
	}
}

// slotColors colors the wallet slot by 1-based list position
var slotColors = map[int]lipgloss.Color{
	1: Cyan,
	2: Magenta,
	3: Yellow,
	4: Purple,
	5: Orange,
}

// NeutralSlot is the slot color of a wallet without a token
var NeutralSlot = Base01

// SlotColor returns the slot color for a 1-based position. Positions without
// an entry use the color of position 1.
func SlotColor(position int) lipgloss.Color {
	if c, ok := slotColors[position]; ok {
		return c
	}
	return slotColors[1]
}

// WalletSlotColor picks the slot color of a wallet row
func WalletSlotColor(position int, assigned bool) lipgloss.Color {
	if !assigned {
		return NeutralSlot
	}
	return SlotColor(position)
}
