package dates

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 19, 10, 0, 0, 0, time.UTC)

func TestParse_RFC3339(t *testing.T) {
	got, err := Parse("2026-09-14T09:00:00Z", testNow)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_CalendarDate(t *testing.T) {
	got, err := Parse("2026-09-14", testNow)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.September || got.Day() != 14 {
		t.Errorf("unexpected date: %v", got)
	}
}

func TestParse_RelativeFuture(t *testing.T) {
	got, err := Parse("tomorrow", testNow)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !got.After(testNow) {
		t.Errorf("expected a future date, got %v", got)
	}
	if got.Sub(testNow) > 48*time.Hour {
		t.Errorf("tomorrow should be within 48h of now, got %v", got)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse("  ", testNow); err == nil {
		t.Fatal("expected an error for empty input")
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := Parse("not a date at all zzz", testNow); err == nil {
		t.Fatal("expected an error for unparseable input")
	}
}
