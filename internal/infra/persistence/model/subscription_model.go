package model

import (
	"time"
)

// TopicSubscriptionModel is the GORM-specific struct for the 'topic_subscriptions' table.
type TopicSubscriptionModel struct {
	Topic        string `gorm:"type:varchar(255);primary_key"`
	DeviceID     string `gorm:"type:varchar(255);primary_key;index"`
	SubscribedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TopicSubscriptionModel) TableName() string {
	return "topic_subscriptions"
}
