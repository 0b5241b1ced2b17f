package entity

import (
	"strings"
	"unicode/utf8"
)

// CounterColor is the color of the live character counter.
type CounterColor string

const (
	CounterGreen  CounterColor = "green"
	CounterOrange CounterColor = "orange"
	CounterRed    CounterColor = "red"
)

// CharCounter describes the counter shown below a message body.
type CharCounter struct {
	Count int          `json:"count"`
	Limit int          `json:"limit"`
	Color CounterColor `json:"color"`
}

// CountChars counts user-perceived characters (runes), not bytes.
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}

// NewCharCounter colors the count: below warnAt green, below limit orange, otherwise red.
// Messages at or above the limit are not rejected.
func NewCharCounter(text string, warnAt, limit int) CharCounter {
	count := CountChars(text)
	color := CounterGreen
	switch {
	case count >= limit:
		color = CounterRed
	case count >= warnAt:
		color = CounterOrange
	}

	return CharCounter{Count: count, Limit: limit, Color: color}
}

// PlaceholderValues holds the optional quick-send fields.
type PlaceholderValues struct {
	StartTime string
	EndTime   string
	Location  string
	Reason    string
}

// Fill substitutes every non-empty value; empty values leave the placeholder text as is.
func (v PlaceholderValues) Fill(message string) string {
	pairs := make([]string, 0, 8)
	for placeholder, value := range map[string]string{
		PlaceholderStartTime: v.StartTime,
		PlaceholderEndTime:   v.EndTime,
		PlaceholderLocation:  v.Location,
		PlaceholderReason:    v.Reason,
	} {
		if value = strings.TrimSpace(value); value != "" {
			pairs = append(pairs, placeholder, value)
		}
	}
	if len(pairs) == 0 {
		return message
	}

	return strings.NewReplacer(pairs...).Replace(message)
}

// Preview shortens text to limit runes, appending "..." when something was cut.
func Preview(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)

	return string(runes[:limit]) + "..."
}

// CategoryCode lower-cases a category name and replaces spaces with underscores.
func CategoryCode(name string) EmergencyType {
	return EmergencyType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_"))
}

// Placeholders lists the known placeholders present in template, in form order.
func Placeholders(template string) []string {
	var found []string
	for _, placeholder := range []string{PlaceholderStartTime, PlaceholderEndTime, PlaceholderLocation, PlaceholderReason} {
		if containsPlaceholder(template, placeholder) {
			found = append(found, placeholder)
		}
	}

	return found
}

func containsPlaceholder(template, placeholder string) bool {
	return strings.Contains(template, placeholder)
}
