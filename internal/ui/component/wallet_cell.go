package component

import (
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tokenboard/internal/ui/style"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
)

// WalletCellProps is everything a wallet row is rendered from
type WalletCellProps struct {
	Key    int64 // wallet id
	Index  int   // 1-based position in the list
	Wallet viewmodel.WalletViewModel

	// EntryAmount is the text shown in the entry field: the pending edit if
	// one exists, otherwise the formatted canonical amount.
	EntryAmount string
	Pending     bool
	Focused     bool
	// Cursor is the rune offset of the field cursor within EntryAmount
	Cursor int
	// Width is the row width; zero keeps the default column sizes
	Width int

	// OnChange receives the full field text after every change
	OnChange func(text string) tea.Cmd
}

// SlotColor returns the color of the row's slot marker
func (p WalletCellProps) SlotColor() lipgloss.Color {
	return style.WalletSlotColor(p.Index, p.Wallet.Assigned())
}

// WalletCell renders wallet rows. It holds no per-row state: the field value
// always comes from the props.
type WalletCell struct {
	styles style.WalletCellStyles
}

// NewWalletCell creates a new wallet cell renderer
func NewWalletCell() *WalletCell {
	return &WalletCell{
		styles: style.NewWalletCellStyles(style.DefaultPalette()),
	}
}

// View renders one wallet row
func (c *WalletCell) View(p WalletCellProps) string {
	slot := lipgloss.NewStyle().Foreground(p.SlotColor()).Render("●")
	index := c.styles.Index.Foreground(p.SlotColor()).Render(fmt.Sprintf("#%d", p.Index))
	nameWidth := walletNameWidth(p.Width)
	name := c.styles.Name.Width(nameWidth).Render(truncate(p.Wallet.Name, nameWidth-1))
	balance := c.styles.Balance.Render(p.Wallet.FormattedBalance())

	entry := c.renderEntry(p)

	row := lipgloss.JoinHorizontal(lipgloss.Left, slot, " ", index, name, balance, "  ", entry)
	if p.Focused {
		return c.styles.RowFocused.Render(row)
	}
	return c.styles.Row.Render(row)
}

func (c *WalletCell) renderEntry(p WalletCellProps) string {
	if p.Focused {
		runes := []rune(p.EntryAmount)
		pos := clampCursor(p.Cursor, len(runes))
		text := string(runes[:pos]) + "▏" + string(runes[pos:])
		return c.styles.InputFocused.Render(text)
	}

	entry := c.styles.Input.Render(p.EntryAmount)
	if p.Pending {
		entry += c.styles.Pending.Render(" *")
	}
	return entry
}

// Update applies a message to the row's entry field and returns the new
// cursor position. When the text changes, OnChange is called exactly once with
// the full new text; messages that leave the text unchanged produce no call.
// Commands of the field itself, such as the clipboard read behind ctrl+v, are
// returned so their result comes back through Update.
func (c *WalletCell) Update(p WalletCellProps, msg tea.Msg) (int, tea.Cmd) {
	if p.OnChange == nil {
		return p.Cursor, nil
	}

	in := entryInput(p.EntryAmount, p.Cursor)
	in, inputCmd := in.Update(msg)

	text := in.Value()
	if text == p.EntryAmount {
		return in.Position(), inputCmd
	}
	return in.Position(), tea.Batch(inputCmd, p.OnChange(text))
}

// entryInput builds a focused text input holding value with the cursor at pos
func entryInput(value string, pos int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 0
	in.Cursor.SetMode(cursor.CursorStatic)
	in.SetValue(value)
	in.SetCursor(clampCursor(pos, len([]rune(value))))
	in.Focus()
	return in
}

func clampCursor(pos, length int) int {
	if pos < 0 || pos > length {
		return length
	}
	return pos
}

// walletNameWidth sizes the name column so the row fits width. The other
// columns take 40 cells.
func walletNameWidth(width int) int {
	if width <= 0 {
		return 18
	}
	return min(max(width-40, 8), 32)
}

// truncate shortens s to at most width runes
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width > 3 {
		return string(runes[:width-3]) + "..."
	}
	return string(runes[:width])
}
