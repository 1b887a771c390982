package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

func TestDecodePage_Envelope(t *testing.T) {
	data := []byte(`{
		"count": 42,
		"next": "https://api.example.com/v1/events/?page=2",
		"previous": null,
		"results": [{"uuid": "5c3a7f10-9a21-4b8e-9e11-2f4f2f9b1a77", "title": "A"}]
	}`)

	page, err := decodePage[platform.Event](data)
	if err != nil {
		t.Fatalf("decodePage failed: %v", err)
	}
	if page.Count != 42 {
		t.Errorf("unexpected count: %d", page.Count)
	}
	if !page.HasMore() {
		t.Error("expected HasMore with a next link")
	}
	if page.Previous != "" {
		t.Errorf("expected empty previous, got %q", page.Previous)
	}
	if len(page.Results) != 1 || page.Results[0].Title != "A" {
		t.Errorf("unexpected results: %+v", page.Results)
	}
}

func TestDecodePage_BareArray(t *testing.T) {
	data := []byte(`[{"title": "A"}, {"title": "B"}]`)

	page, err := decodePage[platform.Event](data)
	if err != nil {
		t.Fatalf("decodePage failed: %v", err)
	}
	if page.Count != 2 {
		t.Errorf("expected count 2 from bare array, got %d", page.Count)
	}
	if page.HasMore() {
		t.Error("bare arrays have no next link")
	}
}

func TestDecodePage_MissingResults(t *testing.T) {
	if _, err := decodePage[platform.Event]([]byte(`{"count": 3}`)); err == nil {
		t.Fatal("expected an error for an envelope without results")
	}
}

func TestAll_FollowsNextLinks(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "", "1":
			fmt.Fprintf(w, `{"count": 3, "next": %q, "previous": null,
				"results": [{"title": "A"}, {"title": "B"}]}`, server.URL+"/events/?page=2")
		case "2":
			_, _ = w.Write([]byte(`{"count": 3, "next": null, "previous": null,
				"results": [{"title": "C"}]}`))
		default:
			t.Errorf("unexpected page: %s", r.URL.Query().Get("page"))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("token"), WithRateLimit(100))
	ctx := context.Background()

	first, err := client.ListEvents(ctx, EventListOptions{})
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	all, err := All(ctx, client, first)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events across pages, got %d", len(all))
	}
	if all[2].Title != "C" {
		t.Errorf("unexpected last event: %+v", all[2])
	}
}

func TestAll_BoundedFollowing(t *testing.T) {
	// A backend that always points at another page must not loop forever.
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"count": 1, "next": %q, "previous": null, "results": [{"title": "loop"}]}`,
			server.URL+"/events/")
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("token"), WithRateLimit(10000))
	ctx := context.Background()

	first, err := client.ListEvents(ctx, EventListOptions{})
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	all, err := All(ctx, client, first)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != maxFollowPages+1 {
		t.Errorf("expected following to stop at %d pages, got %d results", maxFollowPages, len(all))
	}
}
