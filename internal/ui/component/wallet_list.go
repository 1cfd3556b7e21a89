package component

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/tokenboard/internal/ui"
	"github.com/rovshanmuradov/tokenboard/internal/ui/state"
	"github.com/rovshanmuradov/tokenboard/internal/ui/style"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
)

// EntryAmountChangeFunc is called with the wallet id and the full field text
// on every entry field change
type EntryAmountChangeFunc func(walletID int64, text string) tea.Cmd

// EmitEntryAmountChanged turns an entry change into a ui.EntryAmountChangedMsg
func EmitEntryAmountChanged(walletID int64, text string) tea.Cmd {
	return func() tea.Msg {
		return ui.EntryAmountChangedMsg{WalletID: walletID, Text: text}
	}
}

// WalletList renders one wallet cell per wallet, in sequence order. Focus is
// tracked by wallet id, so reordering the wallets never moves it to another
// wallet. The entry field cursor belongs to the focused wallet and is reset
// whenever focus moves.
type WalletList struct {
	wallets  []viewmodel.WalletViewModel
	edits    state.EntryEdits
	onChange EntryAmountChangeFunc

	focusedID int64
	hasFocus  bool
	active    bool
	width     int

	// cursor is the rune offset in the focused field; -1 is the end of the text
	cursor int

	cell *WalletCell
}

// NewWalletList creates a wallet list. A nil onChange emits
// ui.EntryAmountChangedMsg.
func NewWalletList(onChange EntryAmountChangeFunc) *WalletList {
	if onChange == nil {
		onChange = EmitEntryAmountChanged
	}
	return &WalletList{
		edits:    state.NewEntryEdits(),
		onChange: onChange,
		cursor:   -1,
		cell:     NewWalletCell(),
	}
}

// SetWallets replaces the wallet sequence. Focus stays on the same wallet id
// when it is still present, otherwise it moves to the first wallet.
func (l *WalletList) SetWallets(wallets []viewmodel.WalletViewModel) *WalletList {
	l.wallets = wallets

	if l.hasFocus && l.indexOf(l.focusedID) >= 0 {
		return l
	}

	l.hasFocus = len(wallets) > 0
	if l.hasFocus {
		l.focusedID = wallets[0].ID
	}
	l.ResetCursor()
	return l
}

// SetEdits sets the pending edits to display
func (l *WalletList) SetEdits(edits state.EntryEdits) *WalletList {
	l.edits = edits
	return l
}

// SetActive marks the list as the pane receiving keys
func (l *WalletList) SetActive(active bool) *WalletList {
	l.active = active
	return l
}

// SetWidth sets the list width used to size the rows
func (l *WalletList) SetWidth(width int) *WalletList {
	l.width = width
	return l
}

// Focus moves focus to the wallet with the given id
func (l *WalletList) Focus(walletID int64) bool {
	if l.indexOf(walletID) < 0 {
		return false
	}
	if !l.hasFocus || l.focusedID != walletID {
		l.ResetCursor()
	}
	l.focusedID = walletID
	l.hasFocus = true
	return true
}

// Focused returns the focused wallet id
func (l *WalletList) Focused() (int64, bool) {
	return l.focusedID, l.hasFocus
}

// FocusNext moves focus one wallet down
func (l *WalletList) FocusNext() {
	l.moveFocus(1)
}

// FocusPrev moves focus one wallet up
func (l *WalletList) FocusPrev() {
	l.moveFocus(-1)
}

func (l *WalletList) moveFocus(delta int) {
	if !l.hasFocus {
		return
	}
	next := l.indexOf(l.focusedID) + delta
	if next < 0 || next >= len(l.wallets) {
		return
	}
	l.focusedID = l.wallets[next].ID
	l.ResetCursor()
}

// ResetCursor moves the focused field cursor to the end of its text
func (l *WalletList) ResetCursor() {
	l.cursor = -1
}

func (l *WalletList) indexOf(walletID int64) int {
	for i, w := range l.wallets {
		if w.ID == walletID {
			return i
		}
	}
	return -1
}

// Cells returns the props of every row, in sequence order
func (l *WalletList) Cells() []WalletCellProps {
	cells := make([]WalletCellProps, len(l.wallets))
	for i, w := range l.wallets {
		entry, pending := l.edits.Lookup(w.ID)
		if !pending {
			entry = w.FormattedEntryAmount()
		}

		cursor := -1
		if l.hasFocus && w.ID == l.focusedID {
			cursor = l.cursor
		}

		cells[i] = WalletCellProps{
			Key:         w.ID,
			Index:       i + 1,
			Wallet:      w,
			EntryAmount: entry,
			Pending:     pending,
			Focused:     l.active && l.hasFocus && w.ID == l.focusedID,
			Cursor:      clampCursor(cursor, len([]rune(entry))),
			Width:       l.width,
			OnChange: func(text string) tea.Cmd {
				return l.onChange(w.ID, text)
			},
		}
	}
	return cells
}

// HandleKey routes a key to the focused wallet's entry field
func (l *WalletList) HandleKey(msg tea.KeyMsg) tea.Cmd {
	return l.Update(msg)
}

// Update routes a message to the focused wallet's entry field. Besides keys
// this delivers the result of a clipboard paste the field asked for.
func (l *WalletList) Update(msg tea.Msg) tea.Cmd {
	if !l.hasFocus {
		return nil
	}
	for _, props := range l.Cells() {
		if props.Key == l.focusedID {
			var cmd tea.Cmd
			l.cursor, cmd = l.cell.Update(props, msg)
			return cmd
		}
	}
	return nil
}

// View renders the list
func (l *WalletList) View() string {
	if len(l.wallets) == 0 {
		return style.MutedStyle.Render("No wallets")
	}

	rows := make([]string, 0, len(l.wallets))
	for _, props := range l.Cells() {
		rows = append(rows, l.cell.View(props))
	}
	return strings.Join(rows, "\n")
}

// Len returns the number of wallets
func (l *WalletList) Len() int {
	return len(l.wallets)
}
