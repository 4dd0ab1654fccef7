package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationJobModel is the GORM-specific struct for the 'notification_jobs' table.
// It is the durable record of a job; the queue only holds references to it.
type NotificationJobModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key"`
	Title           string         `gorm:"type:text;not null;default:''"`
	Body            string         `gorm:"type:text;not null;default:''"`
	Data            datatypes.JSON `gorm:"type:jsonb"`
	TargetKind      string         `gorm:"type:varchar(20);not null"`
	TargetValue     string         `gorm:"type:varchar(255);not null"`
	Priority        string         `gorm:"type:varchar(20);not null;default:'normal'"`
	State           string         `gorm:"type:varchar(20);not null;index"`
	Attempts        int            `gorm:"not null;default:0"`
	NextAttemptAt   *time.Time
	LastError       string `gorm:"type:text"`
	CancelRequested bool   `gorm:"not null;default:false"`
	RequestID       string `gorm:"type:varchar(64)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationJobModel) TableName() string {
	return "notification_jobs"
}

// DeliveryAttemptModel is the GORM-specific struct for the 'delivery_attempts' table.
// It represents one upstream call for one token of a job.
type DeliveryAttemptModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_attempts_job_token"`
	Token     string    `gorm:"type:text;not null;index:idx_delivery_attempts_job_token"`
	DeviceID  string    `gorm:"type:varchar(255);not null"`
	State     string    `gorm:"type:varchar(20);not null"`
	Attempt   int       `gorm:"not null"`
	Reason    string    `gorm:"type:text"`
	MessageID string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryAttemptModel) TableName() string {
	return "delivery_attempts"
}
