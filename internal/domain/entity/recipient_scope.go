package entity

import (
	"slices"
	"strings"
)

// RecipientScope is the audience the operator picked. It only drives the estimate; every
// send still goes to all active citizens with a phone.
type RecipientScope string

const (
	ScopeAll        RecipientScope = "all"
	ScopePhonesOnly RecipientScope = "phones_only"
	ScopeByArea     RecipientScope = "by_area"
	ScopeByAge      RecipientScope = "by_age"
	ScopeSelective  RecipientScope = "selective"
)

var scopeLabels = map[RecipientScope]string{
	ScopeAll:        "🌍 Всем жителям",
	ScopePhonesOnly: "📱 Только с телефонами",
	ScopeByArea:     "📍 По районам",
	ScopeByAge:      "👥 По возрасту",
	ScopeSelective:  "👥 Выборочно",
}

// QuickScopes are offered on the quick-send form.
var QuickScopes = []RecipientScope{ScopeAll, ScopeByArea, ScopeSelective}

// CustomScopes are offered on the custom-send form.
var CustomScopes = []RecipientScope{ScopeAll, ScopePhonesOnly, ScopeByAge}

// Label returns the display label with its emoji prefix.
func (s RecipientScope) Label() string {
	if label, ok := scopeLabels[s]; ok {
		return label
	}

	return string(s)
}

// RecipientScopes lists every known scope; the first one is the fallback.
var RecipientScopes = []RecipientScope{ScopeAll, ScopePhonesOnly, ScopeByArea, ScopeByAge, ScopeSelective}

// ParseRecipientScope accepts a code or a label with or without the emoji prefix.
// An empty value is the all-residents scope; ok is false for anything unrecognised.
func ParseRecipientScope(value string) (RecipientScope, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ScopeAll, true
	}

	for scope, label := range scopeLabels {
		if strings.EqualFold(value, string(scope)) || value == label || value == stripEmoji(label) {
			return scope, true
		}
	}

	return "", false
}

// ResolveRecipientScope parses value and falls back to the first offered scope when the
// value is unrecognised or not offered.
func ResolveRecipientScope(value string, offered []RecipientScope) RecipientScope {
	if len(offered) == 0 {
		offered = RecipientScopes
	}

	scope, ok := ParseRecipientScope(value)
	if !ok || !slices.Contains(offered, scope) {
		return offered[0]
	}

	return scope
}

// stripEmoji drops the leading "<emoji> " prefix of a label.
func stripEmoji(label string) string {
	if _, rest, ok := strings.Cut(label, " "); ok {
		return rest
	}

	return label
}
