package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCharCounter_Thresholds(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  CounterColor
	}{
		{name: "empty", count: 0, want: CounterGreen},
		{name: "just below warn", count: 119, want: CounterGreen},
		{name: "at warn", count: 120, want: CounterOrange},
		{name: "just below limit", count: 159, want: CounterOrange},
		{name: "at limit", count: 160, want: CounterRed},
		{name: "over limit", count: 200, want: CounterRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := NewCharCounter(strings.Repeat("я", tt.count), 120, 160)

			assert.Equal(t, tt.count, counter.Count)
			assert.Equal(t, 160, counter.Limit)
			assert.Equal(t, tt.want, counter.Color)
		})
	}
}

func TestPlaceholderValues_Fill(t *testing.T) {
	message := "Вода с {start_time} до {end_time}. Место: {location}. Причина: {reason}"

	filled := PlaceholderValues{
		StartTime: "09:00",
		EndTime:   "18:00",
		Location:  "ул. Навои, дома 1-50",
	}.Fill(message)

	assert.Equal(t, "Вода с 09:00 до 18:00. Место: ул. Навои, дома 1-50. Причина: {reason}", filled)
	assert.NotContains(t, filled, PlaceholderStartTime)
}

func TestPlaceholderValues_FillNothing(t *testing.T) {
	message := ResolveQuickTemplate(EmergencyTypeGas).Template

	assert.Equal(t, message, PlaceholderValues{StartTime: "   "}.Fill(message))
}

func TestResolveQuickTemplate(t *testing.T) {
	water := ResolveQuickTemplate(EmergencyTypeWater)
	assert.Equal(t, PriorityMedium, water.Priority)
	assert.True(t, water.NeedsTimeRange())
	assert.True(t, water.HasPlaceholder(PlaceholderReason))
	assert.False(t, water.HasPlaceholder(PlaceholderLocation))

	roads := ResolveQuickTemplate(EmergencyTypeRoadWorks)
	assert.Equal(t, PriorityLow, roads.Priority)
	assert.True(t, roads.HasPlaceholder(PlaceholderLocation))

	unknown := ResolveQuickTemplate("flood")
	assert.Equal(t, EmergencyTypeAnnouncement, unknown.Type)
	assert.Equal(t, PriorityMedium, unknown.Priority)

	assert.Len(t, QuickTemplates(), 7)
}

func TestCustomCategoryCodes(t *testing.T) {
	codes := make([]EmergencyType, 0, len(CustomCategories))
	for _, category := range CustomCategories {
		codes = append(codes, category.Code())
	}

	assert.Equal(t, []EmergencyType{
		EmergencyTypeUtilities,
		EmergencyTypeRoadWorks,
		EmergencyTypeSecurity,
		EmergencyTypeMedical,
		EmergencyTypeGeneral,
	}, codes)
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("ж", 100)

	assert.Equal(t, strings.Repeat("ж", 80)+"...", Preview(long, 80))
	assert.Equal(t, "коротко", Preview("коротко", 80))
}

func TestParseLabels(t *testing.T) {
	typ, ok := ParseEmergencyTypeLabel("Вода")
	require.True(t, ok)
	assert.Equal(t, EmergencyTypeWater, typ)

	typ, ok = ParseEmergencyTypeLabel("road_works")
	require.True(t, ok)
	assert.Equal(t, EmergencyTypeRoadWorks, typ)

	_, ok = ParseEmergencyTypeLabel("Все")
	assert.False(t, ok)

	p, ok := ParsePriorityLabel("Высокий")
	require.True(t, ok)
	assert.Equal(t, PriorityHigh, p)

	_, ok = ParsePriorityLabel("Все")
	assert.False(t, ok)

	assert.Equal(t, PeriodMonth, ParseHistoryPeriod("За месяц"))
	assert.Equal(t, PeriodQuarter, ParseHistoryPeriod("quarter"))
	assert.Equal(t, PeriodAll, ParseHistoryPeriod("whenever"))
	assert.Equal(t, PeriodWeek, ParseHistoryPeriod(""))
	assert.Equal(t, PeriodWeek, ParseHistoryPeriod("  "))

}

func TestParseRecipientScope(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   RecipientScope
		wantOK bool
	}{
		{name: "label with emoji", value: "📍 По районам", want: ScopeByArea, wantOK: true},
		{name: "label without emoji", value: "По районам", want: ScopeByArea, wantOK: true},
		{name: "code", value: "phones_only", want: ScopePhonesOnly, wantOK: true},
		{name: "empty", value: "", want: ScopeAll, wantOK: true},
		{name: "unknown", value: "соседи", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRecipientScope(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRecipientScope(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		offered []RecipientScope
		want    RecipientScope
	}{
		{name: "offered value", value: "by_area", offered: QuickScopes, want: ScopeByArea},
		{name: "unknown value falls back to first", value: "nonsense", offered: QuickScopes, want: ScopeAll},
		{name: "value not offered falls back to first", value: "by_age", offered: QuickScopes, want: ScopeAll},
		{name: "selective stays selective on quick form", value: "selective", offered: QuickScopes, want: ScopeSelective},
		{name: "unknown value on custom form", value: "соседи", offered: CustomScopes, want: ScopeAll},
		{name: "no offered list uses every scope", value: "by_age", offered: nil, want: ScopeByAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRecipientScope(tt.value, tt.offered))
		})
	}
}

func TestStartOfWindow(t *testing.T) {
	now := time.Date(2024, 3, 31, 15, 45, 0, 0, time.UTC)

	start := StartOfWindow(now, 30)
	require.NotNil(t, start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *start)

	assert.Nil(t, StartOfWindow(now, 0))
}

func TestPriorityPresentation(t *testing.T) {
	assert.Equal(t, "#FFC107", PriorityLow.Color())
	assert.Equal(t, "#FF9800", PriorityMedium.Color())
	assert.Equal(t, "#F44336", PriorityHigh.Color())
	assert.Equal(t, "⚪", Priority(7).Icon())
	assert.False(t, Priority(0).IsValid())
}

func TestPermissions_Allows(t *testing.T) {
	assert.True(t, PermissionsFromStrings([]string{"all"}).Allows(PermissionEmergency))
	assert.True(t, PermissionsFromStrings([]string{"sms", "emergency"}).Allows(PermissionEmergency))
	assert.False(t, PermissionsFromStrings([]string{"citizens", "sms"}).Allows(PermissionEmergency))
}

func TestNewRecipientSummary(t *testing.T) {
	summary := NewRecipientSummary(200, 150)
	assert.InDelta(t, 75.0, summary.CoveragePercent, 0.001)

	assert.Zero(t, NewRecipientSummary(0, 0).CoveragePercent)
}

func TestPlaceholders(t *testing.T) {
	road := ResolveQuickTemplate(EmergencyTypeRoadWorks)
	assert.Equal(t, []string{PlaceholderStartTime, PlaceholderEndTime, PlaceholderLocation}, Placeholders(road.Template))

	water := ResolveQuickTemplate(EmergencyTypeWater)
	assert.Equal(t, []string{PlaceholderStartTime, PlaceholderEndTime, PlaceholderReason}, Placeholders(water.Template))

	assert.Empty(t, Placeholders("Собрание жителей в 18:00"))
}
