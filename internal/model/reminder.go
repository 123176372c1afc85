package model

import "time"

// Reminder is a titled note that becomes due at ScheduledAt.
// Reminders are never updated after creation.
type Reminder struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	ScheduledAt time.Time `gorm:"index;not null" json:"scheduled_at"`
	RawText     string    `gorm:"type:text;not null" json:"raw_text"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
