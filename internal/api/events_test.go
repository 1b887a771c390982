package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

func eventCreateFixture() platform.EventCreate {
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	return platform.EventCreate{
		Title:     "Clinical Ethics Workshop",
		EventType: platform.EventTypeInPerson,
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
		CPDPoints: 3,
	}
}

func TestClient_ListEvents_QueryParams(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("search") != "ethics" {
			t.Errorf("unexpected search: %s", query.Get("search"))
		}
		if query.Get("upcoming") != "true" {
			t.Errorf("unexpected upcoming: %s", query.Get("upcoming"))
		}
		if query.Get("status") != platform.EventStatusPublished {
			t.Errorf("unexpected status: %s", query.Get("status"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 1,
			"next": null,
			"previous": null,
			"results": [{
				"uuid": "5c3a7f10-9a21-4b8e-9e11-2f4f2f9b1a77",
				"title": "Clinical Ethics Workshop",
				"event_type": "in_person",
				"status": "published",
				"start_time": "2026-09-14T09:00:00Z",
				"end_time": "2026-09-14T12:00:00Z",
				"cpd_points": 3
			}]
		}`))
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	page, err := client.ListEvents(context.Background(), EventListOptions{
		Search:   "ethics",
		Status:   platform.EventStatusPublished,
		Upcoming: true,
	})
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(page.Results) != 1 {
		t.Fatalf("expected 1 event, got %d", len(page.Results))
	}
	event := page.Results[0]
	if event.Title != "Clinical Ethics Workshop" {
		t.Errorf("unexpected title: %s", event.Title)
	}
	if event.CPDPoints != 3 {
		t.Errorf("unexpected cpd_points: %v", event.CPDPoints)
	}
}

func TestClient_CreateEvent(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/events/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected Content-Type: %s", ct)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if payload["title"] != "Clinical Ethics Workshop" {
			t.Errorf("unexpected title in payload: %v", payload["title"])
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"uuid": "5c3a7f10-9a21-4b8e-9e11-2f4f2f9b1a77",
			"title": "Clinical Ethics Workshop",
			"event_type": "in_person",
			"status": "draft",
			"start_time": "2026-09-14T09:00:00Z",
			"end_time": "2026-09-14T12:00:00Z",
			"cpd_points": 3
		}`))
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	event, err := client.CreateEvent(context.Background(), eventCreateFixture())
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if event.Status != platform.EventStatusDraft {
		t.Errorf("expected draft status, got %s", event.Status)
	}
}

func TestClient_Register_Waitlisted(t *testing.T) {
	eventID := uuid.MustParse("5c3a7f10-9a21-4b8e-9e11-2f4f2f9b1a77")

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/"+eventID.String()+"/register/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"uuid": "97b5e1a3-6c44-4f0a-b1a9-0a7f6d2e3c55",
			"event": "5c3a7f10-9a21-4b8e-9e11-2f4f2f9b1a77",
			"attendee": {"uuid": "8f14e45f-ea4a-4f5b-8d57-0d0f1c9e4a11", "email": "a@b.c"},
			"status": "waitlisted",
			"registered_at": "2026-08-01T10:00:00Z"
		}`))
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	reg, err := client.Register(context.Background(), eventID)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.Status != platform.RegistrationStatusWaitlisted {
		t.Errorf("expected waitlisted, got %s", reg.Status)
	}
}

func TestClient_PublishEvent_ValidationError(t *testing.T) {
	eventID := uuid.MustParse("5c3a7f10-9a21-4b8e-9e11-2f4f2f9b1a77")

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Cannot publish without a venue.","details":{"venue_name":"required"}}}`))
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	_, err := client.PublishEvent(context.Background(), eventID)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if msg := ErrorMessage(err); msg != "Cannot publish without a venue." {
		t.Errorf("unexpected user message: %q", msg)
	}
}
