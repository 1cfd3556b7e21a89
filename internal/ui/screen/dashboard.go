package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tokenboard/internal/ui"
	"github.com/rovshanmuradov/tokenboard/internal/ui/component"
	"github.com/rovshanmuradov/tokenboard/internal/ui/router"
	"github.com/rovshanmuradov/tokenboard/internal/ui/state"
	"github.com/rovshanmuradov/tokenboard/internal/ui/style"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
	"go.uber.org/zap"
)

// Pane identifies the dashboard list receiving keys
type Pane int

const (
	PaneWallets Pane = iota
	PaneTokens
)

// DashboardOptions configures the dashboard screen
type DashboardOptions struct {
	// ShowForecast is handed to the token list, which records it but never
	// draws forecasts.
	ShowForecast bool
	TokenCell    component.TokenCellOptions
}

// DashboardScreen shows the wallet and token lists side by side. It owns the
// pending entry edits and is the only place they are changed.
type DashboardScreen struct {
	width  int
	height int
	keyMap ui.KeyMap
	logger *zap.Logger
	opts   DashboardOptions

	// UI components
	header  *component.StatusHeader
	wallets *component.WalletList
	tokens  *component.TokenList
	help    help.Model

	// State
	snapshot viewmodel.Snapshot
	edits    state.EntryEdits
	pane     Pane
	feed     component.FeedStatus
}

// NewDashboardScreen creates the dashboard screen
func NewDashboardScreen(opts DashboardOptions, logger *zap.Logger) *DashboardScreen {
	s := &DashboardScreen{
		keyMap:  ui.DefaultKeyMap(),
		logger:  logger.Named("dashboard"),
		opts:    opts,
		header:  component.NewStatusHeader("Tokenboard"),
		tokens:  component.NewTokenList(component.NewTokenCell(opts.TokenCell)),
		help:    help.New(),
		edits:   state.NewEntryEdits(),
		pane:    PaneWallets,
	}
	// Keys are handled inside Update, so the edit is reduced before the next
	// key builds its field from props.
	s.wallets = component.NewWalletList(func(walletID int64, text string) tea.Cmd {
		s.applyEdit(ui.EntryAmountChangedMsg{WalletID: walletID, Text: text})
		return nil
	})
	s.sync()
	return s
}

// Init initializes the dashboard
func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

// Route returns the dashboard route
func (s *DashboardScreen) Route() ui.Route {
	return ui.RouteDashboard
}

// Update handles screen updates
func (s *DashboardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := s.handleKey(msg)
		s.sync()
		return s, cmd

	case ui.EntryAmountChangedMsg:
		s.applyEdit(msg)

	case ui.SnapshotMsg:
		s.applySnapshot(msg)

	case ui.ErrorMsg:
		s.feed.Err = msg.Error
		s.logger.Warn("Feed error", zap.String("title", msg.Title), zap.Error(msg.Error))

	default:
		// Results of field commands, such as a clipboard paste
		if s.pane == PaneWallets {
			cmd := s.wallets.Update(msg)
			s.sync()
			return s, cmd
		}
	}

	s.sync()
	return s, nil
}

func (s *DashboardScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keyMap.Quit):
		return tea.Quit

	case key.Matches(msg, s.keyMap.Tab), key.Matches(msg, s.keyMap.ShiftTab):
		s.togglePane()
		return nil

	case key.Matches(msg, s.keyMap.Up):
		if s.pane == PaneWallets {
			s.wallets.FocusPrev()
		} else {
			s.tokens.SelectPrev()
		}
		return nil

	case key.Matches(msg, s.keyMap.Down):
		if s.pane == PaneWallets {
			s.wallets.FocusNext()
		} else {
			s.tokens.SelectNext()
		}
		return nil
	}

	if s.pane == PaneTokens {
		if key.Matches(msg, s.keyMap.Enter) {
			if token, ok := s.tokens.Selected(); ok {
				return router.Navigate(ui.RouteTokenDetail, token.TokenID)
			}
		}
		return nil
	}

	if key.Matches(msg, s.keyMap.DiscardEdit) {
		if id, ok := s.wallets.Focused(); ok {
			s.edits = s.edits.Discard(id)
			s.wallets.ResetCursor()
		}
		return nil
	}

	return s.wallets.HandleKey(msg)
}

func (s *DashboardScreen) applyEdit(msg ui.EntryAmountChangedMsg) {
	s.edits = s.edits.Apply(msg.WalletID, msg.Text)
	s.logger.Debug("Entry amount edited",
		zap.Int64("wallet_id", msg.WalletID),
		zap.String("text", msg.Text))
}

func (s *DashboardScreen) togglePane() {
	if s.pane == PaneWallets {
		s.pane = PaneTokens
	} else {
		s.pane = PaneWallets
	}
}

func (s *DashboardScreen) applySnapshot(msg ui.SnapshotMsg) {
	before := s.edits.Len()
	s.snapshot = msg.Snapshot
	s.edits = s.edits.Prune(msg.Snapshot.WalletIDs())
	s.feed = component.FeedStatus{UpdatedAt: msg.ReceivedAt}

	if dropped := before - s.edits.Len(); dropped > 0 {
		s.logger.Info("Dropped edits of removed wallets", zap.Int("count", dropped))
	}
}

// sync pushes the screen state down into the components
func (s *DashboardScreen) sync() {
	s.wallets.SetWallets(s.snapshot.Wallets).
		SetEdits(s.edits).
		SetActive(s.pane == PaneWallets)
	s.tokens.SetTokens(s.snapshot.Tokens, s.opts.ShowForecast).
		SetActive(s.pane == PaneTokens)

	s.header.SetCounts(len(s.snapshot.Wallets), len(s.snapshot.Tokens))
	s.header.SetPendingEdits(s.edits.Len())
	s.header.SetFeedStatus(s.feed)
}

// View renders the dashboard
func (s *DashboardScreen) View() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}

	paneWidth := style.AdaptiveWidth(s.width, 50) - 2
	walletPane := s.panel(PaneWallets, paneWidth).Render(
		style.TitleStyle.Render("Wallets") + "\n" + s.wallets.View())
	tokenPane := s.panel(PaneTokens, paneWidth).Render(
		style.TitleStyle.Render("Tokens") + "\n" + s.tokens.View())

	var content strings.Builder
	content.WriteString(s.header.View())
	content.WriteString("\n")
	content.WriteString(style.AdaptiveJoinHorizontal(s.width, walletPane, tokenPane))
	content.WriteString("\n")
	content.WriteString(s.help.ShortHelpView(s.keyMap.ContextualHelp(ui.RouteDashboard, s.pane == PaneWallets)))

	return content.String()
}

func (s *DashboardScreen) panel(p Pane, width int) lipgloss.Style {
	if s.pane == p {
		return style.ActivePanelStyle.Width(width)
	}
	return style.PanelStyle.Width(width)
}

// SetSize sets the screen dimensions
func (s *DashboardScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.help.Width = width

	paneWidth := style.AdaptiveWidth(width, 50) - 4
	s.header.SetWidth(width)
	s.wallets.SetWidth(paneWidth)
	s.tokens.SetWidth(paneWidth)
}

// Edits returns the pending entry edits
func (s *DashboardScreen) Edits() state.EntryEdits {
	return s.edits
}

// ActivePane returns the pane receiving keys
func (s *DashboardScreen) ActivePane() Pane {
	return s.pane
}

// Token looks up a token of the current snapshot
func (s *DashboardScreen) Token(tokenID string) (viewmodel.TokenViewModel, bool) {
	for _, t := range s.snapshot.Tokens {
		if t.TokenID == tokenID {
			return t, true
		}
	}
	return viewmodel.TokenViewModel{}, false
}

// Wallets returns the wallet list component
func (s *DashboardScreen) Wallets() *component.WalletList {
	return s.wallets
}

// Tokens returns the token list component
func (s *DashboardScreen) Tokens() *component.TokenList {
	return s.tokens
}
