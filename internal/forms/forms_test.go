package forms

import (
	"strings"
	"testing"
	"time"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

func TestValidate_OK(t *testing.T) {
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	create := platform.EventCreate{
		Title:     "Clinical Ethics Workshop",
		EventType: platform.EventTypeVirtual,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	}
	if err := Validate(create); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(platform.EventCreate{})
	if err == nil {
		t.Fatal("expected an error for an empty payload")
	}
	if !strings.Contains(err.Error(), "title is required") {
		t.Errorf("expected a title message, got %q", err)
	}
}

func TestValidate_EndBeforeStart(t *testing.T) {
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	create := platform.EventCreate{
		Title:     "Clinical Ethics Workshop",
		EventType: platform.EventTypeVirtual,
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	}
	err := Validate(create)
	if err == nil {
		t.Fatal("expected an error when end precedes start")
	}
	if !strings.Contains(err.Error(), "endtime must be after starttime") {
		t.Errorf("unexpected message: %q", err)
	}
}

func TestValidate_BadEmailAndRole(t *testing.T) {
	err := Validate(platform.MemberInvite{Email: "not-an-email", Role: "boss"})
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "email must be a valid email address") {
		t.Errorf("expected email message, got %q", msg)
	}
	if !strings.Contains(msg, "role must be one of") {
		t.Errorf("expected role message, got %q", msg)
	}
}

func TestValidate_RatingBounds(t *testing.T) {
	if err := Validate(platform.FeedbackSubmit{Rating: 6}); err == nil {
		t.Fatal("expected an error for a rating above 5")
	}
	if err := Validate(platform.FeedbackSubmit{Rating: 3, VenueRating: 1}); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}
