package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tokenboard/internal/ui/style"
)

// Spark characters from lowest to highest
var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline represents a mini graph of a price series with an optional
// forecast tail
type Sparkline struct {
	data          []float64
	forecast      []float64
	width         int
	color         lipgloss.Color
	forecastColor lipgloss.Color
	showTrend     bool
}

// NewSparkline creates a new sparkline component
func NewSparkline(width int) *Sparkline {
	palette := style.DefaultPalette()
	return &Sparkline{
		width:         width,
		color:         palette.Primary,
		forecastColor: palette.TextMuted,
	}
}

// SetData sets the data points for the sparkline
func (s *Sparkline) SetData(data []float64) *Sparkline {
	s.data = make([]float64, len(data))
	copy(s.data, data)
	return s
}

// SetForecast sets the forecast points drawn after the data
func (s *Sparkline) SetForecast(forecast []float64) *Sparkline {
	s.forecast = make([]float64, len(forecast))
	copy(s.forecast, forecast)
	return s
}

// SetColor sets the color for the sparkline
func (s *Sparkline) SetColor(color lipgloss.Color) *Sparkline {
	s.color = color
	return s
}

// ShowTrend enables/disables the trend arrow after the sparkline
func (s *Sparkline) ShowTrend(show bool) *Sparkline {
	s.showTrend = show
	return s
}

// View renders the sparkline
func (s *Sparkline) View() string {
	if s.width <= 0 {
		return ""
	}

	data, forecast := s.visible()
	if len(data) == 0 && len(forecast) == 0 {
		return lipgloss.NewStyle().Foreground(s.forecastColor).Render(strings.Repeat("▁", s.width))
	}

	all := append(append([]float64{}, data...), forecast...)
	blocks := s.blocks(all)

	out := lipgloss.NewStyle().Foreground(s.color).Render(string(blocks[:len(data)]))
	if len(forecast) > 0 {
		out += lipgloss.NewStyle().Foreground(s.forecastColor).Render(string(blocks[len(data):]))
	}
	if pad := s.width - len(all); pad > 0 {
		out += strings.Repeat(" ", pad)
	}

	if s.showTrend {
		out += " " + s.trendView()
	}
	return out
}

// visible returns the points that fit the width. The forecast keeps priority
// and the oldest data points are dropped first.
func (s *Sparkline) visible() ([]float64, []float64) {
	forecast := s.forecast
	if len(forecast) > s.width {
		forecast = forecast[:s.width]
	}

	room := s.width - len(forecast)
	data := s.data
	if len(data) > room {
		data = data[len(data)-room:]
	}
	return data, forecast
}

func (s *Sparkline) blocks(values []float64) []rune {
	min, max := minMax(values)
	out := make([]rune, len(values))

	for i, value := range values {
		if min == max {
			out[i] = '▄'
			continue
		}

		normalized := (value - min) / (max - min)
		index := int(normalized * float64(len(sparkChars)-1))
		if index < 0 {
			index = 0
		} else if index >= len(sparkChars) {
			index = len(sparkChars) - 1
		}
		out[i] = sparkChars[index]
	}
	return out
}

func (s *Sparkline) trendView() string {
	palette := style.DefaultPalette()
	switch s.Trend() {
	case TrendUp:
		return lipgloss.NewStyle().Foreground(palette.Up).Render("↗")
	case TrendDown:
		return lipgloss.NewStyle().Foreground(palette.Down).Render("↘")
	default:
		return lipgloss.NewStyle().Foreground(palette.TextMuted).Render("→")
	}
}

// Trend is the direction of a series
type Trend int

const (
	TrendFlat Trend = iota
	TrendUp
	TrendDown
)

// Trend returns the direction from the first to the last data point
func (s *Sparkline) Trend() Trend {
	if len(s.data) < 2 {
		return TrendFlat
	}

	first := s.data[0]
	last := s.data[len(s.data)-1]
	switch {
	case last > first:
		return TrendUp
	case last < first:
		return TrendDown
	default:
		return TrendFlat
	}
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
