package model

import "time"

// EmergencySmsModel is the GORM-specific struct for the 'emergency_sms' table.
// One row per broadcast; rows are never updated or deleted by this service.
type EmergencySmsModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Title         string    `gorm:"type:text;not null"`
	MessageText   string    `gorm:"type:text;not null"`
	EmergencyType string    `gorm:"type:text;not null;index"`
	Priority      int       `gorm:"not null;check:chk_emergency_sms_priority,priority IN (1,2,3)"`
	AffectedArea  *string   `gorm:"type:text"`
	SentCount     int       `gorm:"not null"`
	CreatedBy     *int64    `gorm:"index"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (EmergencySmsModel) TableName() string {
	return "emergency_sms"
}

// SmsLogModel is the GORM-specific struct for the 'sms_logs' table.
// CampaignID references emergency_sms.id for emergency broadcasts.
type SmsLogModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	CampaignID   *int64     `gorm:"index"`
	CitizenID    *int64     `gorm:"index"`
	Phone        string     `gorm:"type:text;not null"`
	MessageText  string     `gorm:"type:text;not null"`
	Status       string     `gorm:"type:text;not null;default:'PENDING';check:chk_sms_logs_status,status IN ('PENDING','SENT','DELIVERED','FAILED')"`
	ErrorMessage *string    `gorm:"type:text"`
	SentAt       *time.Time
	DeliveredAt  *time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SmsLogModel) TableName() string {
	return "sms_logs"
}
