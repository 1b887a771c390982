package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

func TestClient_Members(t *testing.T) {
	orgID := uuid.MustParse("2c9b4a71-3d5e-4f88-a1b2-9c8d7e6f5a44")

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organizations/"+orgID.String()+"/members/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 2,
			"next": null,
			"previous": null,
			"results": [
				{
					"uuid": "97b5e1a3-6c44-4f0a-b1a9-0a7f6d2e3c55",
					"user": {"uuid": "8f14e45f-ea4a-4f5b-8d57-0d0f1c9e4a11", "email": "admin@clinic.ca", "first_name": "Ada", "last_name": "Li"},
					"role": "admin",
					"joined_at": "2026-01-10T00:00:00Z"
				},
				{
					"uuid": "11b5e1a3-6c44-4f0a-b1a9-0a7f6d2e3c99",
					"user": {"uuid": "9914e45f-ea4a-4f5b-8d57-0d0f1c9e4a22", "email": "tutor@clinic.ca"},
					"role": "instructor",
					"joined_at": "2026-02-01T00:00:00Z"
				}
			]
		}`))
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	page, err := client.Members(context.Background(), orgID)
	if err != nil {
		t.Fatalf("Members failed: %v", err)
	}
	if len(page.Results) != 2 {
		t.Fatalf("expected 2 members, got %d", len(page.Results))
	}
	if !platform.BillableSeat(page.Results[0].Role) {
		t.Error("admin should occupy a billable seat")
	}
	if platform.BillableSeat(page.Results[1].Role) {
		t.Error("instructor should not occupy a billable seat")
	}
	if got := page.Results[0].User.FullName(); got != "Ada Li" {
		t.Errorf("unexpected full name: %q", got)
	}
}

func TestClient_InviteMember(t *testing.T) {
	orgID := uuid.MustParse("2c9b4a71-3d5e-4f88-a1b2-9c8d7e6f5a44")

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		var payload platform.MemberInvite
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode invite payload: %v", err)
		}
		if payload.Email != "new@clinic.ca" || payload.Role != platform.RoleOrganizer {
			t.Errorf("unexpected payload: %+v", payload)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"uuid": "33b5e1a3-6c44-4f0a-b1a9-0a7f6d2e3c11",
			"email": "new@clinic.ca",
			"role": "organizer",
			"created_at": "2026-08-01T10:00:00Z"
		}`))
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	invite, err := client.InviteMember(context.Background(), orgID, platform.MemberInvite{
		Email: "new@clinic.ca",
		Role:  platform.RoleOrganizer,
	})
	if err != nil {
		t.Fatalf("InviteMember failed: %v", err)
	}
	if invite.Email != "new@clinic.ca" {
		t.Errorf("unexpected invite email: %s", invite.Email)
	}
}

func TestClient_InviteMember_SeatLimit(t *testing.T) {
	orgID := uuid.MustParse("2c9b4a71-3d5e-4f88-a1b2-9c8d7e6f5a44")

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"message":"No billable seats available on the current plan."}}`))
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	_, err := client.InviteMember(context.Background(), orgID, platform.MemberInvite{
		Email: "new@clinic.ca",
		Role:  platform.RoleAdmin,
	})
	if err == nil {
		t.Fatal("expected seat limit error")
	}
	if msg := ErrorMessage(err); msg != "No billable seats available on the current plan." {
		t.Errorf("unexpected user message: %q", msg)
	}
}
