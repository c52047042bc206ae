package cli

import (
	"testing"

	"koyomi/internal/clipparse"
)

func TestHighlightSegments(t *testing.T) {
	text := "今日15時から16時に打合せ"
	spans := []clipparse.Highlight{
		{Start: 0, End: 2, Kind: clipparse.HighlightDate},
		{Start: 2, End: 5, Kind: clipparse.HighlightTime},
		{Start: 7, End: 10, Kind: clipparse.HighlightTime},
	}
	segments := highlightSegments(text, spans)
	want := []segment{
		{Text: "今日", Kind: clipparse.HighlightDate},
		{Text: "15時", Kind: clipparse.HighlightTime},
		{Text: "から"},
		{Text: "16時", Kind: clipparse.HighlightTime},
		{Text: "に打合せ"},
	}
	if len(segments) != len(want) {
		t.Fatalf("expected %d segments, got %d: %+v", len(want), len(segments), segments)
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Fatalf("segment %d = %+v, want %+v", i, segments[i], want[i])
		}
	}
}

func TestHighlightSegmentsSortsByStart(t *testing.T) {
	text := "abc def"
	spans := []clipparse.Highlight{
		{Start: 4, End: 7, Kind: clipparse.HighlightTime},
		{Start: 0, End: 3, Kind: clipparse.HighlightDate},
	}
	segments := highlightSegments(text, spans)
	if len(segments) != 3 || segments[0].Text != "abc" || segments[2].Text != "def" {
		t.Fatalf("expected spans rendered in offset order, got %+v", segments)
	}
}

func TestHighlightSegmentsOverlapKeepsEarlierSpan(t *testing.T) {
	text := "abcdef"
	spans := []clipparse.Highlight{
		{Start: 0, End: 4, Kind: clipparse.HighlightDate},
		{Start: 2, End: 6, Kind: clipparse.HighlightTime},
	}
	segments := highlightSegments(text, spans)
	want := []segment{
		{Text: "abcd", Kind: clipparse.HighlightDate},
		{Text: "ef", Kind: clipparse.HighlightTime},
	}
	if len(segments) != len(want) {
		t.Fatalf("expected %d segments, got %+v", len(want), segments)
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Fatalf("segment %d = %+v, want %+v", i, segments[i], want[i])
		}
	}
}

func TestHighlightSegmentsClampsOutOfRange(t *testing.T) {
	text := "短い"
	spans := []clipparse.Highlight{{Start: 1, End: 99, Kind: clipparse.HighlightTime}}
	segments := highlightSegments(text, spans)
	if len(segments) != 2 || segments[1].Text != "い" {
		t.Fatalf("expected the span clamped to the text, got %+v", segments)
	}
}
