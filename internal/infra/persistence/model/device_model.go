package model

import (
	"time"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents a client install that registers push tokens.
type DeviceModel struct {
	ID         string `gorm:"type:varchar(255);primary_key"`
	Platform   string `gorm:"type:varchar(50);not null;default:'unknown'"`
	LastSeenAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// PushTokenModel is the GORM-specific struct for the 'push_tokens' table.
// Token values are unique and never reused once invalid.
type PushTokenModel struct {
	Value         string    `gorm:"type:text;primary_key"`
	DeviceID      string    `gorm:"type:varchar(255);not null;index:idx_push_tokens_device_status"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active';index:idx_push_tokens_device_status"`
	IssuedAt      time.Time `gorm:"not null"`
	StaleAt       *time.Time
	InvalidatedAt *time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "push_tokens"
}
