// Package entity contains the core business objects of the project.
package entity

import "time"

// EmergencyBroadcast represents one emergency notification campaign.
type EmergencyBroadcast struct {
	ID            int64         `json:"id"`             // Sequential identifier of the broadcast.
	Title         string        `json:"title"`          // Short headline shown to the operator.
	MessageText   string        `json:"message_text"`   // Body delivered to every recipient.
	EmergencyType EmergencyType `json:"emergency_type"` // Category code, e.g. "water".
	Priority      Priority      `json:"priority"`       // 1=low, 2=medium, 3=high.
	AffectedArea  *string       `json:"affected_area"`  // Optional free-text area description.
	SentCount     int           `json:"sent_count"`     // Number of delivery-log rows written for it.
	CreatedBy     *int64        `json:"created_by"`     // Operator who sent it.
	CreatedAt     time.Time     `json:"created_at"`     // Timestamp of the send.
}

// AffectedAreaOrEmpty returns the affected area or an empty string.
func (b *EmergencyBroadcast) AffectedAreaOrEmpty() string {
	if b.AffectedArea == nil {
		return ""
	}

	return *b.AffectedArea
}

// SmsStatus is the delivery state of a single log row.
type SmsStatus string

const (
	SmsStatusPending   SmsStatus = "PENDING"
	SmsStatusSent      SmsStatus = "SENT"
	SmsStatusDelivered SmsStatus = "DELIVERED"
	SmsStatusFailed    SmsStatus = "FAILED"
)

// SmsLogEntry represents one simulated delivery of a broadcast to a citizen.
type SmsLogEntry struct {
	ID          int64     `json:"id"`
	CampaignID  int64     `json:"campaign_id"` // References EmergencyBroadcast.ID.
	CitizenID   int64     `json:"citizen_id"`
	Phone       string    `json:"phone"`
	MessageText string    `json:"message_text"`
	Status      SmsStatus `json:"status"`
	SentAt      time.Time `json:"sent_at"`
}

// TypeCount is one bucket of the per-type breakdown.
type TypeCount struct {
	EmergencyType EmergencyType `json:"emergency_type"`
	Count         int64         `json:"count"`
}

// PriorityCount is one bucket of the per-priority breakdown.
type PriorityCount struct {
	Priority Priority `json:"priority"`
	Count    int64    `json:"count"`
}

// BroadcastStats aggregates the statistics panel.
type BroadcastStats struct {
	TotalBroadcasts    int64           `json:"total_broadcasts"`
	RecentBroadcasts   int64           `json:"recent_broadcasts"`
	TotalSmsLogs       int64           `json:"total_sms_logs"`
	AvgResponseMinutes float64         `json:"avg_response_minutes"`
	ByType             []TypeCount     `json:"by_type"`
	ByPriority         []PriorityCount `json:"by_priority"`
}
