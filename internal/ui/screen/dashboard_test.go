package screen

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/tokenboard/internal/ui"
	"github.com/rovshanmuradov/tokenboard/internal/ui/component"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSnapshot() viewmodel.Snapshot {
	return viewmodel.Snapshot{
		Wallets: []viewmodel.WalletViewModel{
			{ID: 10, Name: "alpha", Balance: decimal.NewFromInt(100), EntryAmount: decimal.NewFromInt(5), TokenID: 1},
			{ID: 20, Name: "beta", Balance: decimal.NewFromInt(50), EntryAmount: decimal.RequireFromString("1.5")},
		},
		Tokens: []viewmodel.TokenViewModel{
			{TokenID: "tokA", ID: 1, Name: "Alpha", ChartData: []float64{1, 2}, ForecastData: []float64{3}},
			{TokenID: "tokB", ID: 2, Name: "Beta"},
		},
	}
}

func newTestDashboard(t *testing.T, opts DashboardOptions) *DashboardScreen {
	t.Helper()

	if opts.TokenCell == (component.TokenCellOptions{}) {
		opts.TokenCell = component.DefaultTokenCellOptions()
	}
	s := NewDashboardScreen(opts, zap.NewNop())
	s.SetSize(160, 40)
	s.Update(ui.SnapshotMsg{Snapshot: testSnapshot(), ReceivedAt: time.Now()})
	return s
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(s *DashboardScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestDashboardTypingRecordsEdit(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})

	typeText(s, "12")

	text, ok := s.Edits().Lookup(10)
	require.True(t, ok)
	assert.Equal(t, "5.0012", text, "every key builds on the previous edit")
	assert.Equal(t, "5.0012", s.Wallets().Cells()[0].EntryAmount)

	_, ok = s.Edits().Lookup(20)
	assert.False(t, ok)
}

func TestDashboardClearedFieldStaysPending(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})

	for range "5.00" {
		s.Update(keyMsg(tea.KeyBackspace))
	}

	text, ok := s.Edits().Lookup(10)
	require.True(t, ok)
	assert.Equal(t, "", text)
	assert.Equal(t, "", s.Wallets().Cells()[0].EntryAmount)
}

func TestDashboardForwardsInvalidTextVerbatim(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})

	typeText(s, "abc")

	text, _ := s.Edits().Lookup(10)
	assert.Equal(t, "5.00abc", text)
}

func TestDashboardAppliesEditMessages(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})

	s.Update(ui.EntryAmountChangedMsg{WalletID: 20, Text: "7"})

	text, ok := s.Edits().Lookup(20)
	require.True(t, ok)
	assert.Equal(t, "7", text)
	assert.Equal(t, "7", s.Wallets().Cells()[1].EntryAmount)
}

func TestDashboardEscDiscardsFocusedEdit(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})
	s.Update(ui.EntryAmountChangedMsg{WalletID: 10, Text: "9"})
	s.Update(ui.EntryAmountChangedMsg{WalletID: 20, Text: "8"})

	_, cmd := s.Update(keyMsg(tea.KeyEsc))
	assert.Nil(t, cmd)

	_, ok := s.Edits().Lookup(10)
	assert.False(t, ok)
	assert.Equal(t, "5.00", s.Wallets().Cells()[0].EntryAmount)

	_, ok = s.Edits().Lookup(20)
	assert.True(t, ok)
}

func TestDashboardEditsAtCursor(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})

	s.Update(keyMsg(tea.KeyLeft))
	s.Update(keyMsg(tea.KeyLeft))
	typeText(s, "9")
	typeText(s, "1")

	text, ok := s.Edits().Lookup(10)
	require.True(t, ok)
	assert.Equal(t, "5.9100", text)

	s.Update(keyMsg(tea.KeyHome))
	s.Update(keyMsg(tea.KeyDelete))
	text, _ = s.Edits().Lookup(10)
	assert.Equal(t, ".9100", text)
}

func TestDashboardDiscardMovesCursorToEnd(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})

	s.Update(keyMsg(tea.KeyHome))
	typeText(s, "1")
	s.Update(keyMsg(tea.KeyEsc))
	typeText(s, "2")

	text, ok := s.Edits().Lookup(10)
	require.True(t, ok)
	assert.Equal(t, "5.002", text)
}

func TestDashboardArrowsMoveFocusWithoutEditing(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})

	s.Update(keyMsg(tea.KeyDown))
	id, ok := s.Wallets().Focused()
	require.True(t, ok)
	assert.Equal(t, int64(20), id)

	typeText(s, "0")
	text, _ := s.Edits().Lookup(20)
	assert.Equal(t, "1.500", text)
	assert.Equal(t, 1, s.Edits().Len())
}

func TestDashboardSnapshotPrunesEdits(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})
	s.Update(ui.EntryAmountChangedMsg{WalletID: 10, Text: "9"})
	s.Update(ui.EntryAmountChangedMsg{WalletID: 20, Text: "8"})

	snap := testSnapshot()
	snap.Wallets = snap.Wallets[1:]
	s.Update(ui.SnapshotMsg{Snapshot: snap})

	_, ok := s.Edits().Lookup(10)
	assert.False(t, ok)
	text, ok := s.Edits().Lookup(20)
	require.True(t, ok)
	assert.Equal(t, "8", text)

	id, ok := s.Wallets().Focused()
	require.True(t, ok)
	assert.Equal(t, int64(20), id)
}

func TestDashboardSnapshotKeepsFocusByID(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})
	s.Update(keyMsg(tea.KeyDown))

	snap := testSnapshot()
	snap.Wallets[0], snap.Wallets[1] = snap.Wallets[1], snap.Wallets[0]
	s.Update(ui.SnapshotMsg{Snapshot: snap})

	id, ok := s.Wallets().Focused()
	require.True(t, ok)
	assert.Equal(t, int64(20), id)
}

func TestDashboardTokenPane(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})

	s.Update(keyMsg(tea.KeyTab))
	assert.Equal(t, PaneTokens, s.ActivePane())

	s.Update(keyMsg(tea.KeyDown))
	typeText(s, "9")
	assert.Equal(t, 0, s.Edits().Len(), "keys on the token pane never reach wallets")

	_, cmd := s.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, ui.RouterMsg{To: ui.RouteTokenDetail, TokenID: "tokB"}, cmd())

	s.Update(keyMsg(tea.KeyShiftTab))
	assert.Equal(t, PaneWallets, s.ActivePane())
}

func TestDashboardNeverShowsForecast(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{ShowForecast: true})

	assert.True(t, s.Tokens().RequestedForecast())
	for _, c := range s.Tokens().Cells() {
		assert.False(t, c.ShowForecast)
	}
}

func TestDashboardFeedError(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})

	s.Update(ui.ErrorMsg{Error: errors.New("snapshot unreadable"), Title: "feed"})
	assert.Contains(t, s.View(), "snapshot unreadable")

	s.Update(ui.SnapshotMsg{Snapshot: testSnapshot(), ReceivedAt: time.Now()})
	assert.NotContains(t, s.View(), "snapshot unreadable")
}

func TestDashboardView(t *testing.T) {
	s := NewDashboardScreen(DashboardOptions{TokenCell: component.DefaultTokenCellOptions()}, zap.NewNop())
	assert.Equal(t, "Loading...", s.View())

	s.SetSize(160, 40)
	view := s.View()
	assert.Contains(t, view, "No wallets")
	assert.Contains(t, view, "No tokens")

	s.Update(ui.SnapshotMsg{Snapshot: testSnapshot(), ReceivedAt: time.Now()})
	view = s.View()
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "Alpha")
	assert.True(t, strings.Index(view, "alpha") < strings.Index(view, "beta"))
	assert.Contains(t, view, "discard edit")
}

func TestDashboardQuit(t *testing.T) {
	s := newTestDashboard(t, DashboardOptions{})

	_, cmd := s.Update(keyMsg(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
