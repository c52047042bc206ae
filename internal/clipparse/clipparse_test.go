package clipparse

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func TestParseDateOnlyAllDay(t *testing.T) {
	parsed, ok := Parse("打合せ 2024-12-01", testNow)
	if !ok {
		t.Fatalf("expected a parse result")
	}
	if !parsed.AllDay {
		t.Fatalf("expected an all-day draft")
	}
	if parsed.Start != "2024-12-01" {
		t.Fatalf("expected start 2024-12-01, got %q", parsed.Start)
	}
	if parsed.End != "" {
		t.Fatalf("expected no end, got %q", parsed.End)
	}
	if len(parsed.Highlights) != 1 {
		t.Fatalf("expected exactly one highlight, got %d", len(parsed.Highlights))
	}
	h := parsed.Highlights[0]
	if h.Kind != HighlightDate {
		t.Fatalf("expected a date highlight, got %q", h.Kind)
	}
	if got := string([]rune(parsed.Text)[h.Start:h.End]); got != "2024-12-01" {
		t.Fatalf("highlight covers %q, want the date substring", got)
	}
}

func TestParseTitleIsFirstLine(t *testing.T) {
	parsed, ok := Parse("会議\n2024-12-01 10:00", testNow)
	if !ok {
		t.Fatalf("expected a parse result")
	}
	if parsed.Title != "会議" {
		t.Fatalf("expected title 会議, got %q", parsed.Title)
	}
	if parsed.AllDay {
		t.Fatalf("expected a timed draft")
	}
	if parsed.Start != "2024-12-01T10:00" {
		t.Fatalf("expected start 2024-12-01T10:00, got %q", parsed.Start)
	}
	if parsed.End != "2024-12-01T11:00" {
		t.Fatalf("expected end one hour after start, got %q", parsed.End)
	}
}

func TestParseRelativeDateWithTimes(t *testing.T) {
	parsed, ok := Parse("今日15時から16時に打合せ", testNow)
	if !ok {
		t.Fatalf("expected a parse result")
	}
	if parsed.AllDay {
		t.Fatalf("expected a timed draft")
	}
	if parsed.Start != "2024-05-10T15:00" {
		t.Fatalf("expected start today 15:00, got %q", parsed.Start)
	}
	if parsed.End != "2024-05-10T16:00" {
		t.Fatalf("expected end today 16:00, got %q", parsed.End)
	}
	kinds := []HighlightKind{}
	for _, h := range parsed.Highlights {
		kinds = append(kinds, h.Kind)
	}
	if len(kinds) != 3 || kinds[0] != HighlightDate || kinds[1] != HighlightTime || kinds[2] != HighlightTime {
		t.Fatalf("expected date,time,time highlights, got %v", kinds)
	}
	if got := string([]rune(parsed.Text)[parsed.Highlights[0].Start:parsed.Highlights[0].End]); got != "今日" {
		t.Fatalf("date highlight covers %q, want 今日", got)
	}
}

func TestParseSecondTimeBeforeFirstForcesOneHour(t *testing.T) {
	parsed, ok := Parse("2024-12-01 16:00 15:00", testNow)
	if !ok {
		t.Fatalf("expected a parse result")
	}
	if parsed.Start != "2024-12-01T16:00" {
		t.Fatalf("expected start 16:00, got %q", parsed.Start)
	}
	if parsed.End != "2024-12-01T17:00" {
		t.Fatalf("expected end forced to start+1h, got %q", parsed.End)
	}
}

func TestParseExtraTimesIgnored(t *testing.T) {
	parsed, ok := Parse("2024-12-01 10:00 11:00 12:00", testNow)
	if !ok {
		t.Fatalf("expected a parse result")
	}
	if parsed.End != "2024-12-01T11:00" {
		t.Fatalf("expected end from the second candidate, got %q", parsed.End)
	}
	timeHighlights := 0
	for _, h := range parsed.Highlights {
		if h.Kind == HighlightTime {
			timeHighlights++
		}
	}
	if timeHighlights != 2 {
		t.Fatalf("expected two time highlights, got %d", timeHighlights)
	}
}

func TestParseMixedNotationOrdersColonFirst(t *testing.T) {
	// The kanji time appears first in the text, but the colon scan runs
	// first, so 9:00 becomes the start.
	parsed, ok := Parse("2024-12-01 10時 9:00", testNow)
	if !ok {
		t.Fatalf("expected a parse result")
	}
	if parsed.Start != "2024-12-01T09:00" {
		t.Fatalf("expected colon notation to win the start slot, got %q", parsed.Start)
	}
	if parsed.End != "2024-12-01T10:00" {
		t.Fatalf("expected kanji notation as end, got %q", parsed.End)
	}
}

func TestParseTimeOnlyFallsBackToToday(t *testing.T) {
	parsed, ok := Parse("15:00 打合せ", testNow)
	if !ok {
		t.Fatalf("expected a parse result")
	}
	if parsed.Start != "2024-05-10T15:00" {
		t.Fatalf("expected today's date, got %q", parsed.Start)
	}
	for _, h := range parsed.Highlights {
		if h.Kind == HighlightDate {
			t.Fatalf("implicit today must not emit a date highlight")
		}
	}
}

func TestParseNothingRecognized(t *testing.T) {
	if _, ok := Parse("よろしくお願いします", testNow); ok {
		t.Fatalf("expected no result for text without date or time")
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, ok := Parse("", testNow); ok {
		t.Fatalf("expected no result for empty input")
	}
	if _, ok := Parse("   \n\t ", testNow); ok {
		t.Fatalf("expected no result for whitespace input")
	}
}

func TestParseWithDateOverride(t *testing.T) {
	base := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	parsed, ok := ParseWithDate("ランチ 12:00", base)
	if !ok {
		t.Fatalf("expected a parse result")
	}
	if parsed.Start != "2024-06-01T12:00" {
		t.Fatalf("expected the override date, got %q", parsed.Start)
	}
	for _, h := range parsed.Highlights {
		if h.Kind == HighlightDate {
			t.Fatalf("override must not emit a date highlight")
		}
	}
}

func TestParseTrimsBeforeMatching(t *testing.T) {
	parsed, ok := Parse("  2024-12-01  ", testNow)
	if !ok {
		t.Fatalf("expected a parse result")
	}
	h := parsed.Highlights[0]
	if got := string([]rune(parsed.Text)[h.Start:h.End]); got != "2024-12-01" {
		t.Fatalf("offsets must index the trimmed text, highlight covers %q", got)
	}
}
