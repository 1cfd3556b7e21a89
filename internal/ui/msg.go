package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
)

// Tea message types for UI communication

// RouterMsg represents navigation between screens
type RouterMsg struct {
	To      Route
	TokenID string
}

// EntryAmountChangedMsg is emitted by a wallet cell on every change of its
// entry field. Text is the full field text, unvalidated.
type EntryAmountChangedMsg struct {
	WalletID int64
	Text     string
}

// SnapshotMsg carries a fresh view model set from the data feed
type SnapshotMsg struct {
	Snapshot   viewmodel.Snapshot
	ReceivedAt time.Time
}

// ErrorMsg represents error conditions
type ErrorMsg struct {
	Error error
	Title string
}

// ListenBus returns a tea.Cmd that waits for the next message on the bus
func ListenBus(bus <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-bus
		if !ok {
			return nil
		}
		return msg
	}
}

// Route represents different screens in the application
type Route int

const (
	RouteDashboard Route = iota
	RouteTokenDetail
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteDashboard:
		return "dashboard"
	case RouteTokenDetail:
		return "token_detail"
	default:
		return "unknown"
	}
}
