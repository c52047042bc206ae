package timeparse

import (
	"testing"
	"time"
)

func TestDateOnlyRoundTrip(t *testing.T) {
	date := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	got, err := ParseDateOnly(FormatDate(date), time.UTC)
	if err != nil {
		t.Fatalf("ParseDateOnly error: %v", err)
	}
	if !got.Equal(date) {
		t.Fatalf("round trip changed the date: %v != %v", got, date)
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	ts := time.Date(2024, 12, 1, 10, 30, 0, 0, time.UTC)
	got, err := ParseDateTime(FormatDateTime(ts), time.UTC)
	if err != nil {
		t.Fatalf("ParseDateTime error: %v", err)
	}
	if !got.Equal(ts) {
		t.Fatalf("round trip changed the time: %v != %v", got, ts)
	}
}

func TestParseDateNaturalLanguage(t *testing.T) {
	now := time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)
	got, err := ParseDate("tomorrow", now, time.UTC)
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	want := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseDateLiteralFallback(t *testing.T) {
	now := time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)
	got, err := ParseDate("2026-02-01", now, time.UTC)
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if FormatDate(got) != "2026-02-01" {
		t.Fatalf("expected 2026-02-01, got %s", FormatDate(got))
	}
}

func TestLoadLocation(t *testing.T) {
	if loc, err := LoadLocation(""); err != nil || loc != time.Local {
		t.Fatalf("expected local for empty name, got %v, %v", loc, err)
	}
	if _, err := LoadLocation("Asia/Tokyo"); err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}
}
