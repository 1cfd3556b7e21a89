package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/tokenboard/internal/ui"
	"github.com/rovshanmuradov/tokenboard/internal/ui/component"
	"github.com/rovshanmuradov/tokenboard/internal/ui/router"
	"github.com/rovshanmuradov/tokenboard/internal/ui/style"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
)

// TokenDetailScreen shows a single token as a full card. It is the only
// screen that may draw the forecast tail.
type TokenDetailScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	cell *component.TokenCell
	help help.Model

	tokenID      string
	token        viewmodel.TokenViewModel
	found        bool
	showForecast bool
}

// NewTokenDetailScreen creates a detail screen for token. showForecast
// enables the forecast overlay on the chart.
func NewTokenDetailScreen(token viewmodel.TokenViewModel, showForecast bool, opts component.TokenCellOptions) *TokenDetailScreen {
	return &TokenDetailScreen{
		keyMap:       ui.DefaultKeyMap(),
		cell:         component.NewTokenCell(opts),
		help:         help.New(),
		tokenID:      token.TokenID,
		token:        token,
		found:        true,
		showForecast: showForecast,
	}
}

// Init initializes the screen
func (s *TokenDetailScreen) Init() tea.Cmd {
	return nil
}

// Route returns the token detail route
func (s *TokenDetailScreen) Route() ui.Route {
	return ui.RouteTokenDetail
}

// Update handles screen updates
func (s *TokenDetailScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, s.keyMap.Quit) {
			return s, tea.Quit
		}

	case ui.SnapshotMsg:
		s.refresh(msg.Snapshot)
	}
	return s, nil
}

// refresh picks up the shown token from a newer snapshot
func (s *TokenDetailScreen) refresh(snap viewmodel.Snapshot) {
	for _, t := range snap.Tokens {
		if t.TokenID == s.tokenID {
			s.token = t
			s.found = true
			return
		}
	}
	s.found = false
}

// View renders the token card
func (s *TokenDetailScreen) View() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(style.TitleStyle.Render(fmt.Sprintf("Token %s", s.tokenID)))
	content.WriteString("\n")

	if !s.found {
		content.WriteString(style.ErrorStyle.Render("Token is no longer in the snapshot"))
		content.WriteString("\n")
	}

	content.WriteString(s.cell.View(component.TokenCellProps{
		Key:          s.tokenID,
		Token:        s.token,
		ShowForecast: s.showForecast,
		Focused:      true,
	}))
	content.WriteString("\n")
	content.WriteString(s.help.ShortHelpView(s.keyMap.ContextualHelp(ui.RouteTokenDetail, false)))

	return content.String()
}

// SetSize sets the screen dimensions
func (s *TokenDetailScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.help.Width = width
}

// Token returns the token currently shown
func (s *TokenDetailScreen) Token() viewmodel.TokenViewModel {
	return s.token
}

// Stale reports whether the token vanished from the latest snapshot
func (s *TokenDetailScreen) Stale() bool {
	return !s.found
}
