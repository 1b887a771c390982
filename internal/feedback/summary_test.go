package feedback

import (
	"testing"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Responses != 0 || s.Average != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestSummarize_AveragesAndHistogram(t *testing.T) {
	entries := []platform.Feedback{
		{Rating: 5, ContentRating: 4, Comment: "great"},
		{Rating: 4, ContentRating: 2},
		{Rating: 5},
		{Rating: 2, Comment: "too long"},
	}

	s := Summarize(entries)

	if s.Responses != 4 {
		t.Fatalf("expected 4 responses, got %d", s.Responses)
	}
	if s.Average != 4.0 {
		t.Errorf("expected average 4.0, got %v", s.Average)
	}
	if s.Comments != 2 {
		t.Errorf("expected 2 comments, got %d", s.Comments)
	}

	// Content average only covers the two entries that rated content.
	if s.ContentAvg != 3.0 {
		t.Errorf("expected content average 3.0, got %v", s.ContentAvg)
	}
	if s.DeliveryAvg != 0 {
		t.Errorf("expected delivery average 0 when nobody rated it, got %v", s.DeliveryAvg)
	}

	want := [5]int{0, 1, 0, 1, 2}
	if s.Histogram != want {
		t.Errorf("unexpected histogram: got %v, want %v", s.Histogram, want)
	}
}

func TestSummarize_IgnoresOutOfRangeRatings(t *testing.T) {
	entries := []platform.Feedback{
		{Rating: 0},
		{Rating: 6},
		{Rating: -3},
		{Rating: 3},
	}

	s := Summarize(entries)
	if s.Responses != 1 {
		t.Fatalf("expected 1 valid response, got %d", s.Responses)
	}
	if s.Average != 3.0 {
		t.Errorf("expected average 3.0, got %v", s.Average)
	}
}

func TestSummarize_OutOfRangeAspectSkipped(t *testing.T) {
	entries := []platform.Feedback{
		{Rating: 4, VenueRating: 9},
		{Rating: 4, VenueRating: 3},
	}

	s := Summarize(entries)
	if s.VenueAvg != 3.0 {
		t.Errorf("out-of-range aspect rating must be skipped, got venue average %v", s.VenueAvg)
	}
}
