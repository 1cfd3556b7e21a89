package ui

import (
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// SafeModel wraps a model so a panic in Init, Update or View is logged instead
// of tearing down the terminal.
type SafeModel struct {
	model  tea.Model
	logger *zap.Logger
}

// NewSafeModel creates a new panic-safe wrapper
func NewSafeModel(model tea.Model, logger *zap.Logger) *SafeModel {
	return &SafeModel{
		model:  model,
		logger: logger,
	}
}

// Init wraps the Init method with panic recovery
func (sm *SafeModel) Init() (cmd tea.Cmd) {
	defer sm.recoverFromPanic("Init", &cmd)
	return sm.model.Init()
}

// Update wraps the Update method with panic recovery
func (sm *SafeModel) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer sm.recoverFromPanic("Update", &cmd)
	model = sm
	updated, cmd := sm.model.Update(msg)
	sm.model = updated
	return sm, cmd
}

// View wraps the View method with panic recovery
func (sm *SafeModel) View() (view string) {
	defer func() {
		if r := recover(); r != nil {
			sm.logger.Error("View panic recovered",
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())))
			view = "UI Error: View crashed. Press Ctrl+C to exit."
		}
	}()
	return sm.model.View()
}

// Unwrap returns the wrapped model
func (sm *SafeModel) Unwrap() tea.Model {
	return sm.model
}

func (sm *SafeModel) recoverFromPanic(method string, cmd *tea.Cmd) {
	if r := recover(); r != nil {
		sm.logger.Error("UI method panic recovered",
			zap.String("method", method),
			zap.Any("panic", r),
			zap.String("stack", string(debug.Stack())))
		*cmd = nil
	}
}
