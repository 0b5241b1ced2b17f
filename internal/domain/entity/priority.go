package entity

import "strings"

// Priority affects display color and icon only.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// Priorities lists the valid priorities in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// IsValid checks if the Priority is one of 1, 2, 3.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Name returns the Russian display name.
func (p Priority) Name() string {
	switch p {
	case PriorityLow:
		return "Низкий"
	case PriorityMedium:
		return "Средний"
	case PriorityHigh:
		return "Высокий"
	default:
		return "Обычный"
	}
}

// Icon returns the colored circle shown next to the priority.
func (p Priority) Icon() string {
	switch p {
	case PriorityLow:
		return "🟡"
	case PriorityMedium:
		return "🟠"
	case PriorityHigh:
		return "🔴"
	default:
		return "⚪"
	}
}

// Color returns the chart color of the priority.
func (p Priority) Color() string {
	switch p {
	case PriorityLow:
		return "#FFC107"
	case PriorityMedium:
		return "#FF9800"
	case PriorityHigh:
		return "#F44336"
	default:
		return "#999999"
	}
}

// ParsePriorityLabel maps a history filter value ("Высокий", "high" or "3") to a priority.
// ok is false for "Все" and unknown values.
func ParsePriorityLabel(value string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "низкий", "low", "1":
		return PriorityLow, true
	case "средний", "medium", "2":
		return PriorityMedium, true
	case "высокий", "high", "3":
		return PriorityHigh, true
	default:
		return 0, false
	}
}
