package entity

import (
	"strings"
	"time"
)

// HistoryPeriod is the lower bound option of the history view.
type HistoryPeriod string

const (
	PeriodWeek    HistoryPeriod = "week"
	PeriodMonth   HistoryPeriod = "month"
	PeriodQuarter HistoryPeriod = "quarter"
	PeriodAll     HistoryPeriod = "all"
)

// HistoryPeriods lists the options in display order.
var HistoryPeriods = []HistoryPeriod{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodAll}

var periodLabels = map[HistoryPeriod]string{
	PeriodWeek:    "За неделю",
	PeriodMonth:   "За месяц",
	PeriodQuarter: "За квартал",
	PeriodAll:     "Все время",
}

// Label returns the Russian display label.
func (p HistoryPeriod) Label() string {
	return periodLabels[p]
}

// Days returns the window length; 0 means no lower bound.
func (p HistoryPeriod) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodQuarter:
		return 90
	default:
		return 0
	}
}

// ParseHistoryPeriod accepts a label or a code. An empty value is the first option (last
// week); unknown values mean all time.
func ParseHistoryPeriod(value string) HistoryPeriod {
	value = strings.TrimSpace(value)
	if value == "" {
		return PeriodWeek
	}

	for period, label := range periodLabels {
		if value == label || strings.EqualFold(value, string(period)) {
			return period
		}
	}

	return PeriodAll
}

// StartOfWindow returns local midnight of (now - days) or nil for an unbounded window.
func StartOfWindow(now time.Time, days int) *time.Time {
	if days <= 0 {
		return nil
	}

	day := now.AddDate(0, 0, -days)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())

	return &start
}

// HistoryFilter holds the predicates of the history query; nil fields add no predicate.
type HistoryFilter struct {
	Since         *time.Time
	EmergencyType *EmergencyType
	Priority      *Priority
}
