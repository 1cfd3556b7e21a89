package component

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tokenboard/internal/ui/style"
)

// Segment is one step of a trading pattern
type Segment int

const (
	SegmentUnknown Segment = iota
	SegmentUp
	SegmentDown
	SegmentFlat
)

// ParsePattern splits a pattern string into segments. U is up, D is down,
// F or - is flat, case-insensitive. Whitespace is skipped and any other rune
// is an unknown segment.
func ParsePattern(pattern string) []Segment {
	segments := make([]Segment, 0, len(pattern))
	for _, r := range pattern {
		if unicode.IsSpace(r) {
			continue
		}
		switch unicode.ToUpper(r) {
		case 'U':
			segments = append(segments, SegmentUp)
		case 'D':
			segments = append(segments, SegmentDown)
		case 'F', '-':
			segments = append(segments, SegmentFlat)
		default:
			segments = append(segments, SegmentUnknown)
		}
	}
	return segments
}

// PatternStrip renders pattern segments as colored glyphs
type PatternStrip struct {
	up      lipgloss.Style
	down    lipgloss.Style
	flat    lipgloss.Style
	unknown lipgloss.Style
}

// NewPatternStrip creates a pattern renderer
func NewPatternStrip() *PatternStrip {
	palette := style.DefaultPalette()
	return &PatternStrip{
		up:      lipgloss.NewStyle().Foreground(palette.Up),
		down:    lipgloss.NewStyle().Foreground(palette.Down),
		flat:    lipgloss.NewStyle().Foreground(palette.Flat),
		unknown: lipgloss.NewStyle().Foreground(palette.TextMuted),
	}
}

// View renders the segments of pattern. An empty pattern renders placeholder.
func (p *PatternStrip) View(pattern, placeholder string) string {
	segments := ParsePattern(pattern)
	if len(segments) == 0 {
		return p.unknown.Render(placeholder)
	}

	var b strings.Builder
	for _, seg := range segments {
		switch seg {
		case SegmentUp:
			b.WriteString(p.up.Render("▲"))
		case SegmentDown:
			b.WriteString(p.down.Render("▼"))
		case SegmentFlat:
			b.WriteString(p.flat.Render("■"))
		default:
			b.WriteString(p.unknown.Render("·"))
		}
	}
	return b.String()
}
