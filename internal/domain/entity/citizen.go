package entity

// Citizen is the read-only projection of a resident used for recipient selection.
type Citizen struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
}

// HasPhone reports whether the citizen can receive an SMS.
func (c Citizen) HasPhone() bool {
	return c.Phone != ""
}

// RecipientSummary is the sidebar overview of the citizen registry.
type RecipientSummary struct {
	TotalActive     int64   `json:"total_active"`
	WithPhone       int64   `json:"with_phone"`
	CoveragePercent float64 `json:"coverage_percent"`
}

// NewRecipientSummary computes SMS coverage; it is 0 when there are no active citizens.
func NewRecipientSummary(totalActive, withPhone int64) RecipientSummary {
	summary := RecipientSummary{TotalActive: totalActive, WithPhone: withPhone}
	if totalActive > 0 {
		summary.CoveragePercent = float64(withPhone) / float64(totalActive) * 100
	}

	return summary
}
