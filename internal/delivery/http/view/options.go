package view

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"mahalla/internal/domain/entity"
)

var pieColors = []string{"#2196F3", "#4CAF50", "#FF9800", "#9C27B0", "#F44336", "#00BCD4", "#795548", "#607D8B"}

// ScopeOptions lists the scopes with the selected one marked; an empty or unknown selection marks the first.
func ScopeOptions(scopes []entity.RecipientScope, selected string) []Option {
	current := entity.ResolveRecipientScope(selected, scopes)

	options := make([]Option, 0, len(scopes))
	for _, scope := range scopes {
		options = append(options, Option{Value: string(scope), Label: scope.Label(), Selected: scope == current})
	}

	return options
}

// MultiOptions marks every value contained in selected.
func MultiOptions(values, selected []string) []Option {
	options := make([]Option, 0, len(values))
	for _, value := range values {
		options = append(options, Option{Value: value, Label: value, Selected: slices.Contains(selected, value)})
	}

	return options
}

// CategoryOptions lists the custom-send categories by their Russian titles.
func CategoryOptions(selected string) []Option {
	options := make([]Option, 0, len(entity.CustomCategories))
	for i, category := range entity.CustomCategories {
		isSelected := strings.EqualFold(selected, category.Name) || (selected == "" && i == len(entity.CustomCategories)-1)
		options = append(options, Option{Value: category.Name, Label: category.Title, Selected: isSelected})
	}

	return options
}

// PriorityOptions lists low, medium and high; zero selects medium.
func PriorityOptions(selected int) []Option {
	if selected == 0 {
		selected = int(entity.PriorityMedium)
	}

	options := make([]Option, 0, len(entity.Priorities))
	for _, priority := range entity.Priorities {
		options = append(options, Option{
			Value:    strconv.Itoa(int(priority)),
			Label:    priority.Icon() + " " + priority.Name(),
			Selected: int(priority) == selected,
		})
	}

	return options
}

// HistoryFilterOptions builds the three history selectors from the applied result.
func HistoryFilterOptions(period entity.HistoryPeriod, filter entity.HistoryFilter) (periods, types, priorities []Option) {
	for _, p := range []entity.HistoryPeriod{entity.PeriodWeek, entity.PeriodMonth, entity.PeriodQuarter, entity.PeriodAll} {
		periods = append(periods, Option{Value: string(p), Label: p.Label(), Selected: p == period})
	}

	types = append(types, Option{Value: "", Label: "Все", Selected: filter.EmergencyType == nil})
	for _, t := range entity.HistoryTypeOrder {
		types = append(types, Option{Value: string(t), Label: t.Label(), Selected: filter.EmergencyType != nil && *filter.EmergencyType == t})
	}

	priorities = append(priorities, Option{Value: "", Label: "Все", Selected: filter.Priority == nil})
	for i := len(entity.Priorities) - 1; i >= 0; i-- {
		p := entity.Priorities[i]
		priorities = append(priorities, Option{Value: strconv.Itoa(int(p)), Label: p.Name(), Selected: filter.Priority != nil && *filter.Priority == p})
	}

	return periods, types, priorities
}

// NewStatsContent derives the chart geometry from the aggregates.
func NewStatsContent(stats *entity.BroadcastStats) StatsContent {
	content := StatsContent{Stats: stats}

	var typeTotal, priorityTotal int64
	for _, tc := range stats.ByType {
		typeTotal += tc.Count
	}
	for _, pc := range stats.ByPriority {
		priorityTotal += pc.Count
	}

	stops := make([]string, 0, len(stats.ByType))
	var offset float64
	for i, tc := range stats.ByType {
		slice := Slice{Label: tc.EmergencyType.Label(), Count: tc.Count, Color: pieColors[i%len(pieColors)]}
		if typeTotal > 0 {
			slice.Percent = float64(tc.Count) / float64(typeTotal) * 100
		}
		stops = append(stops, fmt.Sprintf("%s %.2f%% %.2f%%", slice.Color, offset, offset+slice.Percent))
		offset += slice.Percent
		content.Slices = append(content.Slices, slice)
	}
	if len(stops) > 0 {
		content.PieGradient = cssGradient(stops)
	}

	for _, pc := range stats.ByPriority {
		bar := Bar{Label: pc.Priority.Name(), Count: pc.Count, Color: pc.Priority.Color()}
		if priorityTotal > 0 {
			bar.Percent = float64(pc.Count) / float64(priorityTotal) * 100
		}
		content.Bars = append(content.Bars, bar)
	}

	return content
}
