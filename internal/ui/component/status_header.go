package component

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tokenboard/internal/ui/style"
)

// FeedStatus describes the last snapshot delivery
type FeedStatus struct {
	UpdatedAt time.Time
	Err       error
}

// StatusHeader shows list sizes, pending edits and feed health
type StatusHeader struct {
	title        string
	wallets      int
	tokens       int
	pendingEdits int
	feed         FeedStatus
	width        int
	styles       style.HeaderStyles
}

// NewStatusHeader creates a new status header component
func NewStatusHeader(title string) *StatusHeader {
	return &StatusHeader{
		title:  title,
		styles: style.NewHeaderStyles(style.DefaultPalette()),
	}
}

// SetCounts updates the wallet and token counts
func (sh *StatusHeader) SetCounts(wallets, tokens int) {
	sh.wallets = wallets
	sh.tokens = tokens
}

// SetPendingEdits updates the number of unsaved entry edits
func (sh *StatusHeader) SetPendingEdits(n int) {
	sh.pendingEdits = n
}

// SetFeedStatus updates the feed status
func (sh *StatusHeader) SetFeedStatus(status FeedStatus) {
	sh.feed = status
}

// SetWidth sets the component width for responsive layout
func (sh *StatusHeader) SetWidth(width int) {
	sh.width = width
}

// View renders the status header
func (sh *StatusHeader) View() string {
	title := sh.styles.Title.Render(sh.title)
	counts := sh.styles.Muted.Render(fmt.Sprintf("Wallets: %d | Tokens: %d", sh.wallets, sh.tokens))

	pending := sh.styles.Muted.Render("No pending edits")
	if sh.pendingEdits > 0 {
		pending = sh.styles.Pending.Render(fmt.Sprintf("Pending edits: %d", sh.pendingEdits))
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Left,
		title,
		" | ",
		counts,
		" | ",
		pending,
		" | ",
		sh.renderFeed(),
	)

	container := sh.styles.Container
	if sh.width > 4 {
		container = container.Width(sh.width - 4)
	}
	return container.Render(content)
}

func (sh *StatusHeader) renderFeed() string {
	if sh.feed.Err != nil {
		return sh.styles.Bad.Render("Feed: " + sh.feed.Err.Error())
	}
	if sh.feed.UpdatedAt.IsZero() {
		return sh.styles.Muted.Render("Feed: waiting")
	}
	return sh.styles.Good.Render("Feed: " + sh.feed.UpdatedAt.Format("15:04:05"))
}
