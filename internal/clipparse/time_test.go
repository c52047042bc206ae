package clipparse

import "testing"

func TestExtractTimesColonNotation(t *testing.T) {
	times := extractTimes("10:00から11:30まで")
	if len(times) != 2 {
		t.Fatalf("expected two candidates, got %d", len(times))
	}
	if times[0].Hour != 10 || times[0].Minute != 0 {
		t.Fatalf("expected 10:00 first, got %d:%02d", times[0].Hour, times[0].Minute)
	}
	if times[1].Hour != 11 || times[1].Minute != 30 {
		t.Fatalf("expected 11:30 second, got %d:%02d", times[1].Hour, times[1].Minute)
	}
}

func TestExtractTimesKanjiNotation(t *testing.T) {
	times := extractTimes("15時から16時45分まで")
	if len(times) != 2 {
		t.Fatalf("expected two candidates, got %d", len(times))
	}
	if times[0].Hour != 15 || times[0].Minute != 0 {
		t.Fatalf("expected minute to default to 0, got %d:%02d", times[0].Hour, times[0].Minute)
	}
	if times[1].Hour != 16 || times[1].Minute != 45 {
		t.Fatalf("expected 16:45, got %d:%02d", times[1].Hour, times[1].Minute)
	}
}

func TestExtractTimesColonScanPrecedesKanjiScan(t *testing.T) {
	times := extractTimes("18時 9:00")
	if len(times) != 2 {
		t.Fatalf("expected two candidates, got %d", len(times))
	}
	if times[0].Hour != 9 {
		t.Fatalf("expected the colon match first despite document order, got hour %d", times[0].Hour)
	}
	if times[1].Hour != 18 {
		t.Fatalf("expected the kanji match second, got hour %d", times[1].Hour)
	}
}

func TestExtractTimesHourNotRangeChecked(t *testing.T) {
	times := extractTimes("25:00")
	if len(times) != 1 || times[0].Hour != 25 {
		t.Fatalf("expected hour 25 to be accepted as written, got %+v", times)
	}
}

func TestExtractTimesRanges(t *testing.T) {
	text := "会議 15時30分"
	times := extractTimes(text)
	if len(times) != 1 {
		t.Fatalf("expected one candidate, got %d", len(times))
	}
	runes := []rune(text)
	if got := string(runes[times[0].Range.Start:times[0].Range.End]); got != "15時30分" {
		t.Fatalf("range covers %q, want 15時30分", got)
	}
}

func TestExtractTimesNone(t *testing.T) {
	if times := extractTimes("よろしくお願いします"); len(times) != 0 {
		t.Fatalf("expected no candidates, got %d", len(times))
	}
}
