package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompterAsk(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("Acme Clinic\n"), &out)

	got, err := p.ask("Organization name", "")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if got != "Acme Clinic" {
		t.Errorf("unexpected answer: %q", got)
	}
}

func TestPrompterAsk_EmptyUsesFallback(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("\n"), &out)

	got, err := p.ask("Plan", "starter")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if got != "starter" {
		t.Errorf("expected fallback, got %q", got)
	}
	if !strings.Contains(out.String(), "[starter]") {
		t.Errorf("prompt should show the fallback, got %q", out.String())
	}
}

func TestPrompterAskSecret_PipedInput(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("hunter2\n"), &out)

	got, err := p.askSecret("Password")
	if err != nil {
		t.Fatalf("askSecret failed: %v", err)
	}
	if got != "hunter2" {
		t.Errorf("unexpected secret: %q", got)
	}
	if strings.Contains(out.String(), "hunter2") {
		t.Errorf("prompt output must not contain the secret: %q", out.String())
	}
}

func TestPrompterConfirm(t *testing.T) {
	cases := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader(tc.input), &out)
		got, err := p.confirm("Proceed?", tc.def)
		if err != nil {
			t.Fatalf("confirm(%q) failed: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("confirm(%q, def=%v) = %v, want %v", tc.input, tc.def, got, tc.want)
		}
	}
}
