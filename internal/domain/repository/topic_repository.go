package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrSubscriptionNotFound is returned when a device is not subscribed to a topic.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// TopicRepository defines the interface for topic subscriptions.
type TopicRepository interface {
	// Subscribe adds the device to the topic. Subscribing twice is a no-op.
	Subscribe(ctx context.Context, topic, deviceID string) error

	// Unsubscribe removes the device from the topic.
	Unsubscribe(ctx context.Context, topic, deviceID string) error

	// FindSubscribers returns the device ids subscribed to the topic.
	FindSubscribers(ctx context.Context, topic string) ([]string, error)
}
