package component

import (
	"strings"

	"github.com/rovshanmuradov/tokenboard/internal/ui/style"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
)

// forecastOverlay is the forecast flag every list cell receives. The list
// never shows forecasts, whatever the caller asked for.
const forecastOverlay = false

// TokenList renders one compact token cell per token, keyed by token id
type TokenList struct {
	tokens            []viewmodel.TokenViewModel
	requestedForecast bool

	selectedID  string
	hasSelected bool
	active      bool
	width       int

	cell *TokenCell
}

// NewTokenList creates a token list rendering with cell
func NewTokenList(cell *TokenCell) *TokenList {
	return &TokenList{cell: cell}
}

// SetTokens replaces the token sequence. showForecast is kept for reference
// only; see forecastOverlay.
func (l *TokenList) SetTokens(tokens []viewmodel.TokenViewModel, showForecast bool) *TokenList {
	l.tokens = tokens
	l.requestedForecast = showForecast

	if l.hasSelected && l.indexOf(l.selectedID) >= 0 {
		return l
	}

	l.hasSelected = len(tokens) > 0
	if l.hasSelected {
		l.selectedID = tokens[0].TokenID
	}
	return l
}

// RequestedForecast returns the showForecast flag the list was given
func (l *TokenList) RequestedForecast() bool {
	return l.requestedForecast
}

// SetActive marks the list as the pane receiving keys
func (l *TokenList) SetActive(active bool) *TokenList {
	l.active = active
	return l
}

// SetWidth sets the list width used to size the rows
func (l *TokenList) SetWidth(width int) *TokenList {
	l.width = width
	return l
}

// Select moves the selection to the token with the given id
func (l *TokenList) Select(tokenID string) bool {
	if l.indexOf(tokenID) < 0 {
		return false
	}
	l.selectedID = tokenID
	l.hasSelected = true
	return true
}

// Selected returns the selected token
func (l *TokenList) Selected() (viewmodel.TokenViewModel, bool) {
	if !l.hasSelected {
		return viewmodel.TokenViewModel{}, false
	}
	i := l.indexOf(l.selectedID)
	if i < 0 {
		return viewmodel.TokenViewModel{}, false
	}
	return l.tokens[i], true
}

// SelectNext moves the selection one token down
func (l *TokenList) SelectNext() {
	l.moveSelection(1)
}

// SelectPrev moves the selection one token up
func (l *TokenList) SelectPrev() {
	l.moveSelection(-1)
}

func (l *TokenList) moveSelection(delta int) {
	if !l.hasSelected {
		return
	}
	next := l.indexOf(l.selectedID) + delta
	if next < 0 || next >= len(l.tokens) {
		return
	}
	l.selectedID = l.tokens[next].TokenID
}

func (l *TokenList) indexOf(tokenID string) int {
	for i, t := range l.tokens {
		if t.TokenID == tokenID {
			return i
		}
	}
	return -1
}

// Cells returns the props of every token cell, in sequence order
func (l *TokenList) Cells() []TokenCellProps {
	cells := make([]TokenCellProps, len(l.tokens))
	for i, t := range l.tokens {
		cells[i] = TokenCellProps{
			Key:          t.TokenID,
			Token:        t,
			ShowForecast: forecastOverlay,
			Focused:      l.active && l.hasSelected && t.TokenID == l.selectedID,
			Compact:      true,
			Width:        l.width,
		}
	}
	return cells
}

// View renders the list
func (l *TokenList) View() string {
	if len(l.tokens) == 0 {
		return style.MutedStyle.Render("No tokens")
	}

	rows := make([]string, 0, len(l.tokens))
	for _, props := range l.Cells() {
		rows = append(rows, l.cell.View(props))
	}
	return strings.Join(rows, "\n")
}

// Len returns the number of tokens
func (l *TokenList) Len() int {
	return len(l.tokens)
}
