// Package clipparse turns free-form clipboard text into a calendar event
// draft. It recognizes one date expression (kanji numerals, numeric
// notations or relative words) and up to two time expressions, and reports
// which substrings were consumed so the UI can highlight them.
//
// Everything in this package is a pure function over the input string and
// the supplied clock; it is safe to call from any goroutine.
package clipparse

import (
	"strings"
	"time"
	"unicode/utf8"

	"koyomi/internal/timeparse"
)

type HighlightKind string

const (
	HighlightDate HighlightKind = "date"
	HighlightTime HighlightKind = "time"
)

// Range is a half-open span of rune offsets into the trimmed text.
type Range struct {
	Start int
	End   int
}

type Highlight struct {
	Start int           `json:"start"`
	End   int           `json:"end"`
	Kind  HighlightKind `json:"kind"`
}

type DateCandidate struct {
	Year  int
	Month time.Month
	Day   int
	Range Range
}

// TimeCandidate is a matched clock time. Hour is taken as written and not
// checked against 0-23; building the draft normalizes overflow.
type TimeCandidate struct {
	Hour   int
	Minute int
	Range  Range
}

// Parsed is the draft suggested from one clipboard read. Start and End use
// the timeparse literal layouts: date-only when AllDay, local date-time
// otherwise. Highlight offsets index into Text, the trimmed input the
// parser actually scanned.
type Parsed struct {
	Start      string      `json:"start"`
	End        string      `json:"end,omitempty"`
	AllDay     bool        `json:"allDay"`
	Title      string      `json:"title,omitempty"`
	Highlights []Highlight `json:"highlights"`
	Text       string      `json:"-"`
}

// Parse extracts an event draft from raw clipboard text. It returns false
// when the text is empty or contains neither a date expression nor a time
// expression. A text with times but no date anchors on today without
// emitting a date highlight.
func Parse(raw string, now time.Time) (*Parsed, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, false
	}
	times := extractTimes(text)
	base, dateRange, ok := resolveBase(text, now, len(times) > 0)
	if !ok {
		return nil, false
	}
	return buildDraft(text, base, dateRange, times), true
}

// ParseWithDate is Parse with the date detection replaced by an explicit
// base date, for manual overrides like `--date tomorrow`. No date
// highlight is emitted.
func ParseWithDate(raw string, base time.Time) (*Parsed, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, false
	}
	midnight := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location())
	return buildDraft(text, midnight, nil, extractTimes(text)), true
}

// resolveBase picks the anchor date: an explicit match wins, otherwise
// today when at least one time was found elsewhere in the text.
func resolveBase(text string, now time.Time, haveTimes bool) (time.Time, *Range, bool) {
	if cand, ok := detectDate(text, now); ok {
		r := cand.Range
		return time.Date(cand.Year, cand.Month, cand.Day, 0, 0, 0, 0, now.Location()), &r, true
	}
	if haveTimes {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil, true
	}
	return time.Time{}, nil, false
}

func buildDraft(text string, base time.Time, dateRange *Range, times []TimeCandidate) *Parsed {
	highlights := make([]Highlight, 0, 3)
	if dateRange != nil {
		highlights = append(highlights, Highlight{Start: dateRange.Start, End: dateRange.End, Kind: HighlightDate})
	}

	p := &Parsed{Title: firstLine(text), Text: text}

	switch {
	case len(times) >= 2:
		// Candidates beyond the first two are ignored and never highlighted.
		start := atTime(base, times[0])
		end := atTime(base, times[1])
		if !end.After(start) {
			end = start.Add(time.Hour)
		}
		p.Start = timeparse.FormatDateTime(start)
		p.End = timeparse.FormatDateTime(end)
		highlights = append(highlights, timeHighlight(times[0]), timeHighlight(times[1]))
	case len(times) == 1:
		start := atTime(base, times[0])
		p.Start = timeparse.FormatDateTime(start)
		p.End = timeparse.FormatDateTime(start.Add(time.Hour))
		highlights = append(highlights, timeHighlight(times[0]))
	default:
		p.AllDay = true
		p.Start = timeparse.FormatDate(base)
	}

	p.Highlights = highlights
	return p
}

func atTime(base time.Time, tc TimeCandidate) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), tc.Hour, tc.Minute, 0, 0, base.Location())
}

func timeHighlight(tc TimeCandidate) Highlight {
	return Highlight{Start: tc.Range.Start, End: tc.Range.End, Kind: HighlightTime}
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}

// runeRange converts a byte span from a regexp match into rune offsets.
func runeRange(text string, byteStart, byteEnd int) Range {
	start := utf8.RuneCountInString(text[:byteStart])
	return Range{Start: start, End: start + utf8.RuneCountInString(text[byteStart:byteEnd])}
}
