package postgres

import (
	"context"
	"time"

	"pushrelay/internal/domain/repository"
	"pushrelay/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// topicRepository implements the repository.TopicRepository interface.
type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository is the constructor for topicRepository.
func NewTopicRepository(db *gorm.DB) repository.TopicRepository {
	return &topicRepository{db: db}
}

// Subscribe adds the device to the topic. Subscribing twice is a no-op.
func (repo *topicRepository) Subscribe(ctx context.Context, topic, deviceID string) error {
	sub := &model.TopicSubscriptionModel{
		Topic:        topic,
		DeviceID:     deviceID,
		SubscribedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(sub).Error; err != nil {
		return storeError(err, "failed to subscribe device to topic")
	}

	return nil
}

// Unsubscribe removes the device from the topic.
func (repo *topicRepository) Unsubscribe(ctx context.Context, topic, deviceID string) error {
	result := repo.db.WithContext(ctx).
		Where("topic = ? AND device_id = ?", topic, deviceID).
		Delete(&model.TopicSubscriptionModel{})

	if result.Error != nil {
		return storeError(result.Error, "failed to unsubscribe device from topic")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// FindSubscribers returns the device ids subscribed to the topic.
func (repo *topicRepository) FindSubscribers(ctx context.Context, topic string) ([]string, error) {
	var deviceIDs []string

	if err := repo.db.WithContext(ctx).
		Model(&model.TopicSubscriptionModel{}).
		Where("topic = ?", topic).
		Order("subscribed_at ASC").
		Pluck("device_id", &deviceIDs).Error; err != nil {
		return nil, storeError(err, "failed to find topic subscribers")
	}

	return deviceIDs, nil
}
