package utils

import (
	"testing"
	"time"
)

func TestFormatShortDateTime(t *testing.T) {
	ts := time.Date(2025, 8, 9, 10, 0, 0, 0, time.UTC)
	if got := FormatShortDateTime(ts); got != "09/08/2025 10:00" {
		t.Fatalf("FormatShortDateTime = %q", got)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate(" 2025-08-09 ")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got := FormatDate(parsed); got != "2025-08-09" {
		t.Fatalf("FormatDate = %q", got)
	}
}

func TestParseDateRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "09/08/2025", "2025-13-40"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) expected error", in)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	parsed, err := ParseDateTime("2025-08-09 10:30:00")
	if err != nil {
		t.Fatalf("ParseDateTime returned error: %v", err)
	}
	if parsed.Hour() != 10 || parsed.Minute() != 30 {
		t.Fatalf("unexpected time: %v", parsed)
	}
}
