package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// table writes rows in aligned columns. Every list command renders
// through this so output stays consistent and scriptable.
func table(w io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02")
}

func formatPoints(points float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", points), "0"), ".")
}

func formatMoney(cents int, currency string) string {
	if currency == "" {
		currency = "usd"
	}
	return fmt.Sprintf("%.2f %s", float64(cents)/100, strings.ToUpper(currency))
}

// truncate shortens s for table cells. Counts runes, not bytes, so
// non-ASCII titles are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// ratingBar renders a histogram bar scaled to width 20.
func ratingBar(count, total int) string {
	if total == 0 {
		return ""
	}
	width := count * 20 / total
	if count > 0 && width == 0 {
		width = 1
	}
	return strings.Repeat("#", width)
}
