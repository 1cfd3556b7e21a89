package component

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tokenboard/internal/ui/style"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
	"github.com/shopspring/decimal"
)

// TokenCellOptions configures how a token cell renders missing data
type TokenCellOptions struct {
	// Placeholder is shown for every field the data layer left empty
	Placeholder string
	// UnknownTradingLabel is shown while real trading has not been checked
	UnknownTradingLabel string
	ChartWidth          int
	DetailChartWidth    int
}

// DefaultTokenCellOptions returns the default token cell options
func DefaultTokenCellOptions() TokenCellOptions {
	return TokenCellOptions{
		Placeholder:         "—",
		UnknownTradingLabel: "?",
		ChartWidth:          20,
		DetailChartWidth:    48,
	}
}

// TokenCellProps is everything a token cell is rendered from
type TokenCellProps struct {
	Key          string // token id
	Token        viewmodel.TokenViewModel
	ShowForecast bool
	Focused      bool
	Compact      bool
	// Width bounds a compact row; zero keeps the configured chart width
	Width int
}

// TokenField is one labelled value of a token cell
type TokenField struct {
	Label   string
	Value   string
	Missing bool
}

const (
	// rowFixedWidth is border and padding plus the name, pair, price, change
	// and gap columns of a compact row
	rowFixedWidth = 4 + 14 + 12 + 14 + 10 + 2
	minChartWidth = 4
)

// TokenCell renders token rows and detail cards
type TokenCell struct {
	opts    TokenCellOptions
	styles  style.TokenCellStyles
	pattern *PatternStrip
}

// NewTokenCell creates a new token cell renderer
func NewTokenCell(opts TokenCellOptions) *TokenCell {
	defaults := DefaultTokenCellOptions()
	if opts.Placeholder == "" {
		opts.Placeholder = defaults.Placeholder
	}
	if opts.UnknownTradingLabel == "" {
		opts.UnknownTradingLabel = defaults.UnknownTradingLabel
	}
	if opts.ChartWidth <= 0 {
		opts.ChartWidth = defaults.ChartWidth
	}
	if opts.DetailChartWidth <= 0 {
		opts.DetailChartWidth = defaults.DetailChartWidth
	}

	return &TokenCell{
		opts:    opts,
		styles:  style.NewTokenCellStyles(style.DefaultPalette()),
		pattern: NewPatternStrip(),
	}
}

// Options returns the cell options
func (c *TokenCell) Options() TokenCellOptions {
	return c.opts
}

// Metrics returns the market metric fields of a token
func (c *TokenCell) Metrics(t viewmodel.TokenViewModel) []TokenField {
	change := TokenField{Label: "Change", Value: c.opts.Placeholder, Missing: true}
	if pct, ok := t.PriceChangePercent(); ok {
		change = TokenField{Label: "Change", Value: signed(pct, 2) + "%"}
	}

	return []TokenField{
		{Label: "Price", Value: "$" + t.Price.String()},
		change,
		{Label: "MCap", Value: "$" + t.MarketCap.StringFixed(0)},
		{Label: "Holders", Value: strconv.FormatInt(t.Holders, 10)},
		{Label: "Buys/Sells", Value: fmt.Sprintf("%d/%d", t.Buys, t.Sells)},
		{Label: "Income", Value: "$" + t.Income.StringFixed(2)},
		{Label: "Profit", Value: signed(t.Profit, 2)},
		{Label: "Live", Value: t.LiveDuration().String()},
	}
}

// Lifecycle returns the trade lifecycle fields of a token. Empty fields carry
// the placeholder and are flagged Missing; they never read as zero.
func (c *TokenCell) Lifecycle(t viewmodel.TokenViewModel) []TokenField {
	return []TokenField{
		c.decimalField("Entry amount", t.EntryTokenAmount),
		c.decimalField("Entry price", t.EntryPrice),
		c.intField("Entry iter", t.EntryIteration),
		c.decimalField("Exit amount", t.ExitTokenAmount),
		c.decimalField("Exit price", t.ExitPrice),
		c.intField("Exit iter", t.ExitIteration),
		c.decimalField("Planned sell", t.PlannedSellPrice),
		c.intField("Planned iter", t.PlannedSellIteration),
		c.realTradingField(t.HasRealTrading),
	}
}

func (c *TokenCell) decimalField(label string, v viewmodel.Optional[decimal.Decimal]) TokenField {
	d, ok := v.Get()
	if !ok {
		return TokenField{Label: label, Value: c.opts.Placeholder, Missing: true}
	}
	return TokenField{Label: label, Value: d.String()}
}

func (c *TokenCell) intField(label string, v viewmodel.Optional[int64]) TokenField {
	n, ok := v.Get()
	if !ok {
		return TokenField{Label: label, Value: c.opts.Placeholder, Missing: true}
	}
	return TokenField{Label: label, Value: strconv.FormatInt(n, 10)}
}

func (c *TokenCell) realTradingField(v viewmodel.TriState) TokenField {
	if !v.Known() {
		return TokenField{Label: "Real trading", Value: c.opts.UnknownTradingLabel, Missing: true}
	}
	if v == viewmodel.TriTrue {
		return TokenField{Label: "Real trading", Value: "yes"}
	}
	return TokenField{Label: "Real trading", Value: "no"}
}

// View renders a token as a one-line row or a detail card
func (c *TokenCell) View(p TokenCellProps) string {
	if p.Compact {
		return c.rowView(p)
	}
	return c.cardView(p)
}

func (c *TokenCell) rowView(p TokenCellProps) string {
	t := p.Token
	metrics := c.Metrics(t)

	name := c.styles.Title.Width(14).Render(truncate(c.orPlaceholder(t.Name), 13))
	pair := c.styles.Pair.Width(12).Render(truncate(c.orPlaceholder(t.Pair), 11))
	price := c.styles.Value.Width(14).Render(metrics[0].Value)
	change := c.fieldValue(metrics[1]).Width(10).Render(metrics[1].Value)
	chart := c.chart(t, p.ShowForecast, c.rowChartWidth(t, p.Width))
	pattern := c.pattern.View(t.Pattern, c.opts.Placeholder)

	row := lipgloss.JoinHorizontal(lipgloss.Left, name, pair, price, change, chart, "  ", pattern)
	if p.Focused {
		return c.styles.ContainerFocused.Render(row)
	}
	return c.styles.Container.Render(row)
}

// rowChartWidth fits the sparkline into what a row of the given width leaves
// after its fixed columns and the pattern strip
func (c *TokenCell) rowChartWidth(t viewmodel.TokenViewModel, width int) int {
	if width <= 0 {
		return c.opts.ChartWidth
	}
	patternWidth := max(len(ParsePattern(t.Pattern)), lipgloss.Width(c.opts.Placeholder))
	free := width - rowFixedWidth - patternWidth
	return min(max(free, minChartWidth), c.opts.ChartWidth)
}

func (c *TokenCell) cardView(p TokenCellProps) string {
	t := p.Token

	title := c.styles.Title.Render(c.orPlaceholder(t.Name)) + "  " +
		c.styles.Pair.Render(c.orPlaceholder(t.Pair)) + "  " +
		c.styles.Label.Render(t.TokenID)

	chart := c.chart(t, p.ShowForecast, c.opts.DetailChartWidth)
	pattern := c.styles.Label.Render("Pattern ") + c.pattern.View(t.Pattern, c.opts.Placeholder)

	sections := []string{
		title,
		chart,
		pattern,
		"",
		c.grid(c.Metrics(t), 4),
		"",
		c.grid(c.Lifecycle(t), 3),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if p.Focused {
		return c.styles.ContainerFocused.Render(content)
	}
	return c.styles.Container.Render(content)
}

func (c *TokenCell) chart(t viewmodel.TokenViewModel, showForecast bool, width int) string {
	spark := NewSparkline(width).SetData(t.ChartData).ShowTrend(true)
	if showForecast && t.HasForecast() {
		spark.SetForecast(t.ForecastData)
	}
	return spark.View()
}

// grid lays fields out in rows of perRow columns
func (c *TokenCell) grid(fields []TokenField, perRow int) string {
	var rows []string
	for start := 0; start < len(fields); start += perRow {
		end := start + perRow
		if end > len(fields) {
			end = len(fields)
		}

		cols := make([]string, 0, perRow)
		for _, f := range fields[start:end] {
			cell := c.styles.Label.Render(f.Label+" ") + c.fieldValue(f).Render(f.Value)
			cols = append(cols, lipgloss.NewStyle().Width(28).Render(cell))
		}
		rows = append(rows, strings.Join(cols, ""))
	}
	return strings.Join(rows, "\n")
}

func (c *TokenCell) fieldValue(f TokenField) lipgloss.Style {
	if f.Missing {
		return c.styles.Placeholder
	}
	switch {
	case strings.HasPrefix(f.Value, "+"):
		return c.styles.Positive
	case strings.HasPrefix(f.Value, "-"):
		return c.styles.Negative
	default:
		return c.styles.Value
	}
}

func (c *TokenCell) orPlaceholder(s string) string {
	if s == "" {
		return c.opts.Placeholder
	}
	return s
}

// signed formats d with an explicit sign
func signed(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	if d.IsPositive() {
		return "+" + s
	}
	return s
}
