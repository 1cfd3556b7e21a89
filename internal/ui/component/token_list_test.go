package component

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens() []viewmodel.TokenViewModel {
	return []viewmodel.TokenViewModel{
		{
			TokenID:      "tokA",
			ID:           1,
			Name:         "Alpha",
			Pair:         "ALP/SOL",
			Pattern:      "UUDF",
			Price:        decimal.RequireFromString("0.0042"),
			StartPrice:   decimal.RequireFromString("0.0040"),
			ChartData:    []float64{1, 2, 3, 2},
			ForecastData: []float64{3, 4},

			EntryPrice:     viewmodel.Some(decimal.RequireFromString("0.0041")),
			HasRealTrading: viewmodel.TriTrue,
		},
		{TokenID: "tokB", ID: 2, Name: "Beta"},
		{TokenID: "tokC", ID: 3, Name: "Gamma", ForecastData: []float64{1}},
	}
}

func TestTokenListSuppressesForecast(t *testing.T) {
	for _, requested := range []bool{true, false} {
		list := NewTokenList(NewTokenCell(DefaultTokenCellOptions())).SetTokens(testTokens(), requested)

		assert.Equal(t, requested, list.RequestedForecast())
		for _, c := range list.Cells() {
			assert.False(t, c.ShowForecast, "token %s with showForecast=%v", c.Key, requested)
		}
	}
}

func TestTokenListForwardsFieldsVerbatim(t *testing.T) {
	tokens := testTokens()
	cells := NewTokenList(NewTokenCell(DefaultTokenCellOptions())).SetTokens(tokens, false).Cells()

	require.Len(t, cells, len(tokens))
	for i, c := range cells {
		assert.Equal(t, tokens[i], c.Token)
		assert.Equal(t, tokens[i].TokenID, c.Key)
	}
	assert.False(t, cells[1].Token.EntryPrice.IsSome(), "empty fields stay empty, not zero")
}

func TestTokenListKeysFollowRecordsAfterShuffle(t *testing.T) {
	tokens := testTokens()
	list := NewTokenList(NewTokenCell(DefaultTokenCellOptions())).SetTokens(tokens, false)
	require.True(t, list.Select("tokC"))

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 10; round++ {
		shuffled := append([]viewmodel.TokenViewModel{}, tokens...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		list.SetTokens(shuffled, false)

		for i, c := range list.Cells() {
			assert.Equal(t, shuffled[i].TokenID, c.Key)
			assert.Equal(t, shuffled[i].Name, c.Token.Name)
		}

		selected, ok := list.Selected()
		require.True(t, ok)
		assert.Equal(t, "tokC", selected.TokenID)
	}
}

func TestTokenListSelection(t *testing.T) {
	list := NewTokenList(NewTokenCell(DefaultTokenCellOptions())).SetTokens(testTokens(), false)

	selected, ok := list.Selected()
	require.True(t, ok)
	assert.Equal(t, "tokA", selected.TokenID)

	list.SelectNext()
	list.SelectNext()
	list.SelectNext()
	selected, _ = list.Selected()
	assert.Equal(t, "tokC", selected.TokenID)

	list.SelectPrev()
	selected, _ = list.Selected()
	assert.Equal(t, "tokB", selected.TokenID)

	list.SetTokens(nil, false)
	_, ok = list.Selected()
	assert.False(t, ok)
}

func TestTokenListView(t *testing.T) {
	list := NewTokenList(NewTokenCell(DefaultTokenCellOptions())).SetTokens(testTokens(), true)
	view := list.View()

	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, "Gamma")
	assert.Equal(t, 1, strings.Count(view, "▲▲▼■"), "pattern strip rendered once")

	empty := NewTokenList(NewTokenCell(DefaultTokenCellOptions())).SetTokens(nil, false)
	assert.Contains(t, empty.View(), "No tokens")
}

func TestTokenListWidthShrinksChart(t *testing.T) {
	tokens := testTokens()[:1]
	wide := NewTokenList(NewTokenCell(DefaultTokenCellOptions())).SetTokens(tokens, false)
	narrow := NewTokenList(NewTokenCell(DefaultTokenCellOptions())).SetTokens(tokens, false).SetWidth(60)

	assert.Equal(t, 60, narrow.Cells()[0].Width)
	assert.Less(t, lipgloss.Width(narrow.View()), lipgloss.Width(wide.View()))

	roomy := NewTokenList(NewTokenCell(DefaultTokenCellOptions())).SetTokens(tokens, false).SetWidth(200)
	assert.Equal(t, lipgloss.Width(wide.View()), lipgloss.Width(roomy.View()), "chart never grows past its configured width")
}
