package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/usecase"

	"github.com/pkg/errors"
)

type topicService struct {
	topicRepo repository.TopicRepository
	logger    *slog.Logger
}

// NewTopicService creates a new topic service instance
func NewTopicService(topicRepo repository.TopicRepository, logger *slog.Logger) usecase.TopicUsecase {
	return &topicService{
		topicRepo: topicRepo,
		logger:    logger,
	}
}

// Subscribe adds the device to the topic
func (s *topicService) Subscribe(ctx context.Context, topic, deviceID string) error {
	topic, deviceID, err := normalizeSubscription(topic, deviceID)
	if err != nil {
		return err
	}

	if err := s.topicRepo.Subscribe(ctx, topic, deviceID); err != nil {
		return fmt.Errorf("failed to subscribe device: %w", err)
	}

	s.logger.Debug("[Topic] Device subscribed", slog.String("topic", topic), slog.String("deviceID", deviceID))

	return nil
}

// Unsubscribe removes the device from the topic
func (s *topicService) Unsubscribe(ctx context.Context, topic, deviceID string) error {
	topic, deviceID, err := normalizeSubscription(topic, deviceID)
	if err != nil {
		return err
	}

	err = s.topicRepo.Unsubscribe(ctx, topic, deviceID)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		return domainerrors.ErrNotFound.WithDetails("subscription not found")
	}
	if err != nil {
		return fmt.Errorf("failed to unsubscribe device: %w", err)
	}

	return nil
}

// Subscribers lists the devices subscribed to the topic
func (s *topicService) Subscribers(ctx context.Context, topic string) ([]string, error) {
	deviceIDs, err := s.topicRepo.FindSubscribers(ctx, strings.TrimSpace(topic))
	if err != nil {
		return nil, fmt.Errorf("failed to find subscribers: %w", err)
	}

	return deviceIDs, nil
}

func normalizeSubscription(topic, deviceID string) (string, string, error) {
	topic = strings.TrimSpace(topic)
	deviceID = strings.TrimSpace(deviceID)
	if topic == "" || deviceID == "" {
		return "", "", domainerrors.ErrValidationFailed.WithDetails("topic and device id are required")
	}

	return topic, deviceID, nil
}
