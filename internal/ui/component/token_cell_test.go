package component

import (
	"strings"
	"testing"

	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCellEmptyLifecycleUsesPlaceholder(t *testing.T) {
	cell := NewTokenCell(DefaultTokenCellOptions())
	fields := cell.Lifecycle(viewmodel.TokenViewModel{TokenID: "bare"})

	require.Len(t, fields, 9)
	for _, f := range fields {
		assert.True(t, f.Missing, f.Label)
		assert.NotEqual(t, "0", f.Value, f.Label)
		if f.Label == "Real trading" {
			assert.Equal(t, "?", f.Value)
		} else {
			assert.Equal(t, "—", f.Value, f.Label)
		}
	}
}

func TestTokenCellPresentZeroIsNotPlaceholder(t *testing.T) {
	cell := NewTokenCell(DefaultTokenCellOptions())
	tok := viewmodel.TokenViewModel{
		EntryIteration:   viewmodel.Some[int64](0),
		ExitPrice:        viewmodel.Some(decimal.Zero),
		PlannedSellPrice: viewmodel.Some(decimal.RequireFromString("1.25")),
		HasRealTrading:   viewmodel.TriFalse,
	}

	byLabel := map[string]TokenField{}
	for _, f := range cell.Lifecycle(tok) {
		byLabel[f.Label] = f
	}

	assert.Equal(t, TokenField{Label: "Entry iter", Value: "0"}, byLabel["Entry iter"])
	assert.Equal(t, TokenField{Label: "Exit price", Value: "0"}, byLabel["Exit price"])
	assert.Equal(t, TokenField{Label: "Planned sell", Value: "1.25"}, byLabel["Planned sell"])
	assert.Equal(t, TokenField{Label: "Real trading", Value: "no"}, byLabel["Real trading"])
	assert.True(t, byLabel["Exit amount"].Missing)
}

func TestTokenCellUnknownTradingLabelIsConfigurable(t *testing.T) {
	cell := NewTokenCell(TokenCellOptions{Placeholder: "n/a", UnknownTradingLabel: "unchecked"})
	fields := cell.Lifecycle(viewmodel.TokenViewModel{})

	last := fields[len(fields)-1]
	assert.Equal(t, "Real trading", last.Label)
	assert.Equal(t, "unchecked", last.Value)
	assert.Equal(t, "n/a", fields[0].Value)
}

func TestTokenCellMetrics(t *testing.T) {
	cell := NewTokenCell(DefaultTokenCellOptions())
	tok := viewmodel.TokenViewModel{
		Price:       decimal.RequireFromString("3"),
		StartPrice:  decimal.RequireFromString("2"),
		MarketCap:   decimal.RequireFromString("125000.7"),
		Holders:     321,
		Buys:        12,
		Sells:       4,
		Income:      decimal.RequireFromString("10.5"),
		Profit:      decimal.RequireFromString("-2.344"),
		LiveSeconds: 90,
	}

	got := map[string]string{}
	for _, f := range cell.Metrics(tok) {
		got[f.Label] = f.Value
	}

	assert.Equal(t, "$3", got["Price"])
	assert.Equal(t, "+50.00%", got["Change"])
	assert.Equal(t, "$125001", got["MCap"])
	assert.Equal(t, "321", got["Holders"])
	assert.Equal(t, "12/4", got["Buys/Sells"])
	assert.Equal(t, "$10.50", got["Income"])
	assert.Equal(t, "-2.34", got["Profit"])
	assert.Equal(t, "1m30s", got["Live"])
}

func TestTokenCellChangeWithoutStartPrice(t *testing.T) {
	cell := NewTokenCell(DefaultTokenCellOptions())
	for _, f := range cell.Metrics(viewmodel.TokenViewModel{Price: decimal.NewFromInt(1)}) {
		if f.Label == "Change" {
			assert.True(t, f.Missing)
			assert.Equal(t, "—", f.Value)
		}
	}
}

func TestTokenCellViewNeverPanics(t *testing.T) {
	cell := NewTokenCell(DefaultTokenCellOptions())
	bare := viewmodel.TokenViewModel{}

	for _, compact := range []bool{true, false} {
		for _, forecast := range []bool{true, false} {
			props := TokenCellProps{Token: bare, Compact: compact, ShowForecast: forecast}
			assert.NotPanics(t, func() {
				view := cell.View(props)
				assert.Contains(t, view, "—")
			})
		}
	}
}

func TestTokenCellCardShowsForecastOnlyWhenAsked(t *testing.T) {
	cell := NewTokenCell(TokenCellOptions{DetailChartWidth: 6})
	tok := viewmodel.TokenViewModel{
		Name:         "Alpha",
		ChartData:    []float64{1, 1, 1, 1},
		ForecastData: []float64{8, 8},
	}

	without := cell.View(TokenCellProps{Token: tok})
	with := cell.View(TokenCellProps{Token: tok, ShowForecast: true})

	assert.Contains(t, without, "▄▄▄▄")
	assert.NotContains(t, without, "█")
	assert.Contains(t, with, "▁▁▁▁██")
	assert.True(t, strings.Contains(with, "Alpha"))
}

func TestParsePattern(t *testing.T) {
	assert.Equal(t,
		[]Segment{SegmentUp, SegmentDown, SegmentFlat, SegmentFlat, SegmentUnknown, SegmentUp},
		ParsePattern("uD F-x U"))
	assert.Empty(t, ParsePattern("  "))
}

func TestPatternStripPlaceholder(t *testing.T) {
	strip := NewPatternStrip()
	assert.Equal(t, "—", strip.View("", "—"))
	assert.Equal(t, "▲▼■·", strip.View("UDF?", "—"))
}
