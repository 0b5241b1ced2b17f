// Package util holds display formatting shared by the page renderer.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateTimeLayout is the day-first layout used on broadcast cards.
const DateTimeLayout = "02.01.2006 15:04"

// FormatDateTime formats t in loc; a nil loc keeps t's own location.
func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "—"
	}
	if loc != nil {
		t = t.In(loc)
	}

	return t.Format(DateTimeLayout)
}

// FormatPercent formats a percentage with one decimal (e.g., "72.5%").
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatMinutes formats a duration given in minutes (e.g., "3.5 мин").
func FormatMinutes(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64) + " мин"
}

// FormatCount groups thousands with spaces (e.g., "12 345").
func FormatCount(n int64) string {
	sign := ""
	magnitude := uint64(n)
	if n < 0 {
		sign = "-"
		magnitude = -magnitude
	}

	digits := strconv.FormatUint(magnitude, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.WriteString(sign)

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
