package usecase

import "context"

// TopicUsecase manages topic subscriptions used by topic fan-out.
type TopicUsecase interface {
	// Subscribe adds the device to the topic.
	Subscribe(ctx context.Context, topic, deviceID string) error

	// Unsubscribe removes the device from the topic.
	Unsubscribe(ctx context.Context, topic, deviceID string) error

	// Subscribers lists the device ids subscribed to the topic.
	Subscribers(ctx context.Context, topic string) ([]string, error)
}
