package viewmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenViewModel is a display-ready token record. Every value is computed
// upstream; the trade lifecycle fields stay empty until a trade exists.
type TokenViewModel struct {
	TokenID string `json:"tokenId"`
	ID      int64  `json:"id"`

	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Pair    string `json:"pair"`

	MarketCap  decimal.Decimal `json:"marketCap"`
	Holders    int64           `json:"holders"`
	Buys       int64           `json:"buys"`
	Sells      int64           `json:"sells"`
	Price      decimal.Decimal `json:"price"`
	StartPrice decimal.Decimal `json:"startPrice"`
	Income     decimal.Decimal `json:"income"`
	Profit     decimal.Decimal `json:"profit"`

	ChartData    []float64 `json:"chartData"`
	ForecastData []float64 `json:"forecastData,omitempty"`

	// LiveSeconds is how long the token has been live
	LiveSeconds int64 `json:"liveDuration"`

	EntryTokenAmount     Optional[decimal.Decimal] `json:"entryTokenAmount"`
	ExitTokenAmount      Optional[decimal.Decimal] `json:"exitTokenAmount"`
	EntryPrice           Optional[decimal.Decimal] `json:"entryPrice"`
	ExitPrice            Optional[decimal.Decimal] `json:"exitPrice"`
	EntryIteration       Optional[int64]           `json:"entryIteration"`
	ExitIteration        Optional[int64]           `json:"exitIteration"`
	PlannedSellPrice     Optional[decimal.Decimal] `json:"plannedSellPrice"`
	PlannedSellIteration Optional[int64]           `json:"plannedSellIteration"`
	HasRealTrading       TriState                  `json:"hasRealTrading"`
}

// LiveDuration returns the live time as a duration
func (t TokenViewModel) LiveDuration() time.Duration {
	return time.Duration(t.LiveSeconds) * time.Second
}

// HasForecast reports whether forecast points were supplied
func (t TokenViewModel) HasForecast() bool {
	return len(t.ForecastData) > 0
}

// PriceChangePercent returns the change from StartPrice to Price. The second
// value is false when StartPrice is zero.
func (t TokenViewModel) PriceChangePercent() (decimal.Decimal, bool) {
	if t.StartPrice.IsZero() {
		return decimal.Zero, false
	}
	return t.Price.Sub(t.StartPrice).Div(t.StartPrice).Mul(decimal.NewFromInt(100)), true
}
