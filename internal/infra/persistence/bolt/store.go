// Package bolt is an embedded single-node store for tokens, jobs and receipts
// backed by bbolt. Values are JSON encoded domain entities.
package bolt

import (
	"context"
	"os"
	"path/filepath"
	"time"

	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/errors"

	bolt "go.etcd.io/bbolt"
)

const storeName = "bolt"

var (
	bucketDevices      = []byte("devices")
	bucketTokens       = []byte("tokens")
	bucketDeviceTokens = []byte("device_tokens")
	bucketTopics       = []byte("topic_subscriptions")
	bucketJobs         = []byte("jobs")
	bucketAttempts     = []byte("delivery_attempts")

	allBuckets = [][]byte{
		bucketDevices,
		bucketTokens,
		bucketDeviceTokens,
		bucketTopics,
		bucketJobs,
		bucketAttempts,
	}

	errStop = errors.New("stop iteration")
)

// Store owns the bbolt database file.
type Store struct {
	db *bolt.DB
}

// Open creates the database file and its buckets.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create bolt directory")
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bolt database")
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to create bolt buckets")
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DeviceRepository returns a repository.DeviceRepository on this store.
func (s *Store) DeviceRepository() repository.DeviceRepository {
	return &deviceRepository{runner: runner{db: s.db}}
}

// TokenRepository returns a repository.TokenRepository on this store.
func (s *Store) TokenRepository() repository.TokenRepository {
	return &tokenRepository{runner: runner{db: s.db}}
}

// TopicRepository returns a repository.TopicRepository on this store.
func (s *Store) TopicRepository() repository.TopicRepository {
	return &topicRepository{runner: runner{db: s.db}}
}

// JobRepository returns a repository.JobRepository on this store.
func (s *Store) JobRepository() repository.JobRepository {
	return &jobRepository{runner: runner{db: s.db}}
}

// ReceiptRepository returns a repository.ReceiptRepository on this store.
func (s *Store) ReceiptRepository() repository.ReceiptRepository {
	return &receiptRepository{runner: runner{db: s.db}}
}

// runner executes closures either in their own bolt transaction or inside
// the transaction a TransactionManager already opened.
type runner struct {
	db *bolt.DB
	tx *bolt.Tx
}

func (r runner) view(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.tx != nil {
		return classify(fn(r.tx))
	}

	return classify(r.db.View(fn))
}

func (r runner) update(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.tx != nil {
		return classify(fn(r.tx))
	}

	return classify(r.db.Update(fn))
}

var passthrough = []error{
	repository.ErrDeviceNotFound,
	repository.ErrTokenNotFound,
	repository.ErrDuplicateToken,
	repository.ErrSubscriptionNotFound,
	repository.ErrJobNotFound,
	context.Canceled,
	context.DeadlineExceeded,
}

// classify keeps repository sentinels intact and reports anything else as an
// unavailable store.
func classify(err error) error {
	if err == nil || domainerrors.IsStoreUnavailable(err) {
		return err
	}

	for _, sentinel := range passthrough {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	return domainerrors.NewStoreUnavailableError(storeName, err)
}
