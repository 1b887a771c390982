package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rutvikrj26/cpd-events-cli/internal/credstore"
)

func TestLoginCommand_StoresToken(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login/":
			if r.Header.Get("Authorization") != "" {
				t.Errorf("login must not send a bearer token, got %q", r.Header.Get("Authorization"))
			}
			_, _ = w.Write([]byte(`{"access": "issued-token", "refresh": "refresh-token"}`))
		case "/accounts/me/":
			if got := r.Header.Get("Authorization"); got != "Bearer issued-token" {
				t.Errorf("profile fetch should use the new token, got %q", got)
			}
			_, _ = w.Write([]byte(`{"uuid": "8f14e45f-ea4a-4f5b-8d57-0d0f1c9e4a11", "email": "ada@clinic.ca", "first_name": "Ada", "last_name": "Li"}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer mockServer.Close()

	configDir := t.TempDir()
	t.Setenv("CPD_API_URL", mockServer.URL)
	t.Setenv("CPD_CONFIG_DIR", configDir)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader("hunter2\n"))
	rootCmd.SetArgs([]string{"login", "--email", "ada@clinic.ca"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("login command failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Logged in as Ada Li <ada@clinic.ca>") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	store, err := credstore.Open(configDir)
	if err != nil {
		t.Fatalf("reopen credstore: %v", err)
	}
	if store.Token() != "issued-token" {
		t.Errorf("expected the issued token to be persisted, got %q", store.Token())
	}
}

func TestPingCommand_Healthy(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok", "checks": {"database": "ok"}}`))
	}))
	defer mockServer.Close()

	t.Setenv("CPD_API_URL", mockServer.URL)
	t.Setenv("CPD_CONFIG_DIR", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ping"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("ping command failed: %v", err)
	}
	if !strings.Contains(buf.String(), "ok") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "database") {
		t.Errorf("expected per-check detail, got:\n%s", buf.String())
	}
}
