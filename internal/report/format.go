package report

import (
	"fmt"
	"strings"
	"time"
)

// formatCurrency renders a USD amount with thousand grouping, e.g.
// "$2,520.75".
func formatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// formatDate renders "Jan 2, 2006"; unparseable input is passed through.
func formatDate(s string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}

func formatTime(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// formatEnum upper-cases an enum label and replaces underscores, so
// "quality_check" reads "QUALITY CHECK".
func formatEnum(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "_", " "))
}
