package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the application. Printable keys are
// not bound here: they belong to the focused entry field.
type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding

	DiscardEdit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "switch pane"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		DiscardEdit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "discard edit"),
		),
	}
}

// ContextualHelp returns help text for the current route. walletPane selects
// the dashboard bindings of the wallet pane.
func (k KeyMap) ContextualHelp(route Route, walletPane bool) []key.Binding {
	switch route {
	case RouteDashboard:
		if walletPane {
			return []key.Binding{k.Up, k.Down, k.DiscardEdit, k.Tab, k.Quit}
		}
		return []key.Binding{k.Up, k.Down, k.Enter, k.Tab, k.Quit}
	case RouteTokenDetail:
		return []key.Binding{k.Back, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}
