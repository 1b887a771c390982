package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

func TestClient_Subscription_NotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	_, err := client.Subscription(context.Background())
	if !IsNotFound(err) {
		t.Fatalf("expected IsNotFound, got %v", err)
	}
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/billing/checkout/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url": "https://checkout.stripe.com/c/pay/cs_test_123"}`))
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	session, err := client.CreateCheckoutSession(context.Background(), platform.CheckoutRequest{
		Plan:  "team-monthly",
		Seats: 5,
	})
	if err != nil {
		t.Fatalf("CreateCheckoutSession failed: %v", err)
	}
	if session.URL != "https://checkout.stripe.com/c/pay/cs_test_123" {
		t.Errorf("unexpected URL: %s", session.URL)
	}
}

func TestClient_CreateCheckoutSession_MissingURL(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	if _, err := client.CreateCheckoutSession(context.Background(), platform.CheckoutRequest{Plan: "solo"}); err == nil {
		t.Fatal("expected an error when the backend returns no checkout URL")
	}
}

func TestClient_ValidatePromoCode_Invalid(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/promo-codes/validate/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code": "SUMMER20", "valid": false, "reason": "Code has expired."}`))
	}))
	defer mockServer.Close()

	client := NewClient(mockServer.URL, StaticToken("token"), WithRateLimit(100))

	promo, err := client.ValidatePromoCode(context.Background(), "SUMMER20", "team-monthly")
	if err != nil {
		t.Fatalf("ValidatePromoCode failed: %v", err)
	}
	if promo.Valid {
		t.Error("expected the code to be invalid")
	}
	if promo.Reason != "Code has expired." {
		t.Errorf("unexpected reason: %q", promo.Reason)
	}
}

func TestSubscription_SeatsAvailable(t *testing.T) {
	sub := platform.Subscription{Seats: 10, SeatsInUse: 7}
	if got := sub.SeatsAvailable(); got != 3 {
		t.Errorf("expected 3 seats available, got %d", got)
	}

	over := platform.Subscription{Seats: 5, SeatsInUse: 6}
	if got := over.SeatsAvailable(); got != 0 {
		t.Errorf("overallocated subscription should report 0 available, got %d", got)
	}
}
