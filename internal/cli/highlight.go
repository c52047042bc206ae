package cli

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"koyomi/internal/clipparse"
)

var (
	dateSpanStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	timeSpanStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
)

type segment struct {
	Text string
	Kind clipparse.HighlightKind // empty for plain text
}

// highlightSegments splits text into plain and highlighted runs. Spans are
// sorted by start offset; when spans overlap, the earliest-added one keeps
// the shared offsets and the later span is clipped.
func highlightSegments(text string, spans []clipparse.Highlight) []segment {
	runes := []rune(text)
	sorted := make([]clipparse.Highlight, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var segments []segment
	cursor := 0
	for _, h := range sorted {
		start := clamp(h.Start, cursor, len(runes))
		end := clamp(h.End, start, len(runes))
		if cursor < start {
			segments = append(segments, segment{Text: string(runes[cursor:start])})
		}
		if start < end {
			segments = append(segments, segment{Text: string(runes[start:end]), Kind: h.Kind})
		}
		cursor = end
	}
	if cursor < len(runes) {
		segments = append(segments, segment{Text: string(runes[cursor:])})
	}
	return segments
}

func renderHighlights(text string, spans []clipparse.Highlight) string {
	var b strings.Builder
	for _, seg := range highlightSegments(text, spans) {
		switch seg.Kind {
		case clipparse.HighlightDate:
			b.WriteString(dateSpanStyle.Render(seg.Text))
		case clipparse.HighlightTime:
			b.WriteString(timeSpanStyle.Render(seg.Text))
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
