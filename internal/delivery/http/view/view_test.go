package view

import (
	"testing"

	"mahalla/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  View
	}{
		{value: "", want: ViewMain},
		{value: "main", want: ViewMain},
		{value: "quick", want: ViewQuick},
		{value: "custom", want: ViewCustom},
		{value: "history", want: ViewHistory},
		{value: "stats", want: ViewStats},
		{value: "error", want: ViewMain},
		{value: "unknown", want: ViewMain},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseView(tt.value))
		})
	}
}

func TestScopeOptions(t *testing.T) {
	t.Parallel()

	options := ScopeOptions(entity.QuickScopes, "by_area")
	require.Len(t, options, 3)
	assert.False(t, options[0].Selected)
	assert.True(t, options[1].Selected)

	options = ScopeOptions(entity.QuickScopes, "nonsense")
	assert.True(t, options[0].Selected)
}

func TestPriorityOptions(t *testing.T) {
	t.Parallel()

	options := PriorityOptions(0)
	require.Len(t, options, 3)
	assert.True(t, options[1].Selected)
	assert.Equal(t, "2", options[1].Value)
}

func TestHistoryFilterOptions(t *testing.T) {
	t.Parallel()

	water := entity.EmergencyTypeWater
	high := entity.PriorityHigh

	periods, types, priorities := HistoryFilterOptions(entity.PeriodMonth, entity.HistoryFilter{
		EmergencyType: &water,
		Priority:      &high,
	})

	selected := func(options []Option) string {
		for _, o := range options {
			if o.Selected {
				return o.Value
			}
		}

		return ""
	}

	assert.Equal(t, string(entity.PeriodMonth), selected(periods))
	assert.Equal(t, "water", selected(types))
	assert.Equal(t, "3", selected(priorities))
	assert.Equal(t, "Все", priorities[0].Label)
	assert.Equal(t, "3", priorities[1].Value)
}

func TestNewStatsContent(t *testing.T) {
	t.Parallel()

	content := NewStatsContent(&entity.BroadcastStats{
		ByType: []entity.TypeCount{
			{EmergencyType: entity.EmergencyTypeWater, Count: 3},
			{EmergencyType: entity.EmergencyTypeGas, Count: 1},
		},
		ByPriority: []entity.PriorityCount{
			{Priority: entity.PriorityLow, Count: 1},
			{Priority: entity.PriorityHigh, Count: 3},
		},
	})

	require.Len(t, content.Slices, 2)
	assert.InDelta(t, 75.0, content.Slices[0].Percent, 0.001)
	assert.InDelta(t, 25.0, content.Slices[1].Percent, 0.001)
	assert.Contains(t, string(content.PieGradient), "conic-gradient(")

	require.Len(t, content.Bars, 2)
	assert.Equal(t, "#FFC107", content.Bars[0].Color)
	assert.Equal(t, "#F44336", content.Bars[1].Color)
	assert.InDelta(t, 75.0, content.Bars[1].Percent, 0.001)
}

func TestNewStatsContentEmpty(t *testing.T) {
	t.Parallel()

	content := NewStatsContent(&entity.BroadcastStats{})

	assert.Empty(t, content.Slices)
	assert.Empty(t, content.Bars)
	assert.Empty(t, string(content.PieGradient))
}
