package cmd

import (
	"testing"
	"unicode/utf8"
)

func TestFormatPoints(t *testing.T) {
	cases := map[float64]string{
		3:    "3",
		2.5:  "2.5",
		1.25: "1.25",
		0:    "0",
	}
	for in, want := range cases {
		if got := formatPoints(in); got != want {
			t.Errorf("formatPoints(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := formatMoney(4900, "cad"); got != "49.00 CAD" {
		t.Errorf("unexpected: %q", got)
	}
	if got := formatMoney(500, ""); got != "5.00 USD" {
		t.Errorf("default currency should be USD, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("unexpected: %q", got)
	}
	if got := truncate("a very long event title", 10); got != "a very ..." {
		t.Errorf("unexpected: %q", got)
	}
	// Multi-byte titles must be cut on rune boundaries.
	if got := truncate("crème brûlée aux amandes", 10); got != "crème b..." {
		t.Errorf("unexpected: %q", got)
	}
	if got := truncate("継続教育ポイントのワークショップ", 8); !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
}

func TestRatingBar(t *testing.T) {
	if got := ratingBar(10, 10); got != "####################" {
		t.Errorf("full bar expected, got %q", got)
	}
	if got := ratingBar(0, 10); got != "" {
		t.Errorf("empty bar expected, got %q", got)
	}
	// A non-zero count always shows at least one mark.
	if got := ratingBar(1, 1000); got != "#" {
		t.Errorf("minimum visible bar expected, got %q", got)
	}
	if got := ratingBar(3, 0); got != "" {
		t.Errorf("zero total must not divide, got %q", got)
	}
}
