package bolt

import (
	"bytes"
	"context"
	"time"

	"pushrelay/internal/domain/repository"

	bolt "go.etcd.io/bbolt"
)

type topicRepository struct {
	runner
}

// topicKey is "<topic>\x00<deviceID>"; the value is the subscription time.
func topicKey(topic, deviceID string) []byte {
	key := make([]byte, 0, len(topic)+1+len(deviceID))
	key = append(key, topic...)
	key = append(key, 0)

	return append(key, deviceID...)
}

// Subscribe adds the device to the topic. Subscribing twice is a no-op.
func (repo *topicRepository) Subscribe(ctx context.Context, topic, deviceID string) error {
	return repo.update(ctx, func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketTopics)
		key := topicKey(topic, deviceID)
		if bkt.Get(key) != nil {
			return nil
		}

		at, err := time.Now().UTC().MarshalBinary()
		if err != nil {
			return err
		}

		return bkt.Put(key, at)
	})
}

// Unsubscribe removes the device from the topic.
func (repo *topicRepository) Unsubscribe(ctx context.Context, topic, deviceID string) error {
	return repo.update(ctx, func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketTopics)
		key := topicKey(topic, deviceID)
		if bkt.Get(key) == nil {
			return repository.ErrSubscriptionNotFound
		}

		return bkt.Delete(key)
	})
}

// FindSubscribers returns the device ids subscribed to the topic.
func (repo *topicRepository) FindSubscribers(ctx context.Context, topic string) ([]string, error) {
	var deviceIDs []string

	err := repo.view(ctx, func(tx *bolt.Tx) error {
		prefix := append([]byte(topic), 0)
		cursor := tx.Bucket(bucketTopics).Cursor()
		for k, _ := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = cursor.Next() {
			deviceIDs = append(deviceIDs, string(k[len(prefix):]))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deviceIDs, nil
}
