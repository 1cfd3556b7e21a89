package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/tokenboard/internal/config"
	"github.com/rovshanmuradov/tokenboard/internal/ui"
	"github.com/rovshanmuradov/tokenboard/internal/ui/component"
	"github.com/rovshanmuradov/tokenboard/internal/ui/router"
	"github.com/rovshanmuradov/tokenboard/internal/ui/screen"
	"go.uber.org/zap"
)

// AppModel represents the main TUI application model
type AppModel struct {
	router    *router.Router
	dashboard *screen.DashboardScreen
	bus       <-chan tea.Msg
	cfg       *config.Config
	cellOpts  component.TokenCellOptions
	logger    *zap.Logger
	width     int
	height    int
}

// NewAppModel creates a new application model. Messages arriving on bus are
// fed into the program.
func NewAppModel(cfg *config.Config, bus <-chan tea.Msg, logger *zap.Logger) *AppModel {
	cellOpts := component.DefaultTokenCellOptions()
	cellOpts.Placeholder = cfg.TokenCell.Placeholder
	cellOpts.UnknownTradingLabel = cfg.TokenCell.UnknownTradingLabel

	dashboard := screen.NewDashboardScreen(screen.DashboardOptions{
		ShowForecast: cfg.UI.ShowForecast,
		TokenCell:    cellOpts,
	}, logger)

	return &AppModel{
		router:    router.New(dashboard),
		dashboard: dashboard,
		bus:       bus,
		cfg:       cfg,
		cellOpts:  cellOpts,
		logger:    logger,
	}
}

// Init initializes the application
func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Init(),
		ui.ListenBus(m.bus),
	)
}

// Update handles application-level updates
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.router.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		_, cmd := m.router.Update(msg)
		return m, cmd

	case ui.RouterMsg:
		return m, m.handleNavigation(msg)

	case ui.SnapshotMsg, ui.ErrorMsg:
		// Feed messages reach every screen on the stack, then the bus is
		// read again.
		return m, tea.Batch(m.router.Broadcast(msg), ui.ListenBus(m.bus))

	default:
		_, cmd := m.router.Update(msg)
		return m, cmd
	}
}

// handleNavigation handles navigation to different screens
func (m *AppModel) handleNavigation(msg ui.RouterMsg) tea.Cmd {
	switch msg.To {
	case ui.RouteDashboard:
		for m.router.CanGoBack() {
			m.router.Pop()
		}
		return nil

	case ui.RouteTokenDetail:
		token, ok := m.dashboard.Token(msg.TokenID)
		if !ok {
			m.logger.Warn("Token not in snapshot", zap.String("token_id", msg.TokenID))
			return nil
		}
		detail := screen.NewTokenDetailScreen(token, m.cfg.UI.TokenDetailForecast, m.cellOpts)
		// A queued navigation landing on an open detail swaps it instead of
		// stacking a second one.
		if m.router.Current().Route() == ui.RouteTokenDetail {
			return m.router.Replace(detail)
		}
		return m.router.Push(detail)

	default:
		return nil
	}
}

// View renders the application
func (m *AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return m.router.View()
}
