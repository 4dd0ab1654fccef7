package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"pushrelay/internal/domain/constants"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisClient is the subset of go-redis the queue needs.
type redisClient interface {
	LPush(ctx context.Context, key string, values ...any) *redis.IntCmd
	RPush(ctx context.Context, key string, values ...any) *redis.IntCmd
	RPopLPush(ctx context.Context, source, destination string) *redis.StringCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	LRem(ctx context.Context, key string, count int64, value any) *redis.IntCmd
	LLen(ctx context.Context, key string) *redis.IntCmd
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...any) *redis.IntCmd
	ZAdd(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd
	ZRangeByScore(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd
	ZRem(ctx context.Context, key string, members ...any) *redis.IntCmd
	ZCard(ctx context.Context, key string) *redis.IntCmd
}

var priorities = []entity.Priority{entity.PriorityHigh, entity.PriorityNormal, entity.PriorityLow}

// RedisQueueOptions configures a RedisQueue.
type RedisQueueOptions struct {
	Prefix       string
	Capacity     int
	FullPolicy   string
	PollInterval time.Duration
	LeaseTTL     time.Duration
}

// RedisQueue implements service.DeliveryQueue on redis. It keeps
//  1. `{prefix}:ready:{priority}`: one FIFO list per priority (LPush/RPopLPush).
//  2. `{prefix}:pending:{consumer}`: jobs handed to this consumer's workers but not yet acked.
//  3. `{prefix}:consumers`: a sorted set of consumers scored by lease deadline.
//  4. `{prefix}:delayed`: a sorted set of retries scored by visibility time.
//  5. `{prefix}:known`: ids queued or in flight, for enqueue deduplication.
//
// Every process gets its own consumer id. Pending lists are only reclaimed
// once their consumer's lease has expired.
type RedisQueue struct {
	client       redisClient
	consumer     string
	prefix       string
	capacity     int
	fullPolicy   string
	pollInterval time.Duration
	leaseTTL     time.Duration
	now          func() time.Time
	logger       *slog.Logger

	// leased is set once this consumer has taken a job; only then is the
	// lease kept alive.
	leased    atomic.Bool
	renewedAt atomic.Int64
}

var (
	_ service.DeliveryQueue  = (*RedisQueue)(nil)
	_ service.QueueRecoverer = (*RedisQueue)(nil)
)

// NewRedisQueue is the constructor for RedisQueue.
func NewRedisQueue(client redisClient, opts RedisQueueOptions, logger *slog.Logger) (*RedisQueue, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if opts.LeaseTTL <= 0 {
		return nil, errors.New("lease TTL must be positive")
	}

	consumer := uuid.NewString()
	logger = logger.With(
		slog.String("component", "redis_queue"),
		slog.String("consumer", consumer),
	)

	return &RedisQueue{
		client:       client,
		consumer:     consumer,
		prefix:       opts.Prefix,
		capacity:     opts.Capacity,
		fullPolicy:   opts.FullPolicy,
		pollInterval: opts.PollInterval,
		leaseTTL:     opts.LeaseTTL,
		now:          time.Now,
		logger:       logger,
	}, nil
}

func (q *RedisQueue) readyKey(p entity.Priority) string { return q.prefix + ":ready:" + string(p) }
func (q *RedisQueue) pendingKey() string                { return q.pendingKeyOf(q.consumer) }
func (q *RedisQueue) pendingKeyOf(c string) string      { return q.prefix + ":pending:" + c }
func (q *RedisQueue) consumersKey() string              { return q.prefix + ":consumers" }
func (q *RedisQueue) delayedKey() string                { return q.prefix + ":delayed" }
func (q *RedisQueue) knownKey() string                  { return q.prefix + ":known" }

func storeErr(err error, details string) error {
	return domainerrors.NewStoreUnavailableError("redis", errors.Wrap(err, details))
}

// Enqueue adds the job. Ids already queued or in flight are ignored.
func (q *RedisQueue) Enqueue(ctx context.Context, job *entity.NotificationJob) (uuid.UUID, error) {
	for {
		full, err := q.full(ctx)
		if err != nil {
			return uuid.Nil, err
		}
		if !full {
			break
		}
		if q.fullPolicy != constants.QueueFullBlock {
			return uuid.Nil, domainerrors.ErrQueueFull
		}

		select {
		case <-ctx.Done():
			return uuid.Nil, ctx.Err()
		case <-time.After(q.pollInterval):
		}
	}

	added, err := q.client.SAdd(ctx, q.knownKey(), job.ID.String()).Result()
	if err != nil {
		return uuid.Nil, storeErr(err, "failed to register job id")
	}
	if added == 0 {
		return job.ID, nil
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to marshal job")
	}

	if err := q.client.LPush(ctx, q.readyKey(entity.ParsePriority(string(job.Priority))), payload).Err(); err != nil {
		_ = q.client.SRem(ctx, q.knownKey(), job.ID.String())

		return uuid.Nil, storeErr(err, "failed to push job")
	}

	return job.ID, nil
}

func (q *RedisQueue) full(ctx context.Context) (bool, error) {
	if q.capacity <= 0 {
		return false, nil
	}

	n, err := q.Len(ctx)
	if err != nil {
		return false, err
	}

	return n >= q.capacity, nil
}

// promote moves due retries from the delayed set into their ready lists.
func (q *RedisQueue) promote(ctx context.Context) error {
	due, err := q.client.ZRangeByScore(ctx, q.delayedKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(q.now().UnixMilli(), 10),
	}).Result()
	if err != nil {
		return storeErr(err, "failed to read delayed jobs")
	}

	for _, payload := range due {
		// ZRem decides which poller owns the promotion.
		removed, err := q.client.ZRem(ctx, q.delayedKey(), payload).Result()
		if err != nil {
			return storeErr(err, "failed to remove delayed job")
		}
		if removed == 0 {
			continue
		}

		var job entity.NotificationJob
		if err := json.Unmarshal([]byte(payload), &job); err != nil {
			q.logger.Warn("Dropping undecodable delayed job", slog.Any("error", err))

			continue
		}

		if err := q.client.LPush(ctx, q.readyKey(entity.ParsePriority(string(job.Priority))), payload).Err(); err != nil {
			return storeErr(err, "failed to promote delayed job")
		}
	}

	return nil
}

// Dequeue polls the ready lists in priority order until a job is available.
func (q *RedisQueue) Dequeue(ctx context.Context) (*entity.NotificationJob, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := q.promote(ctx); err != nil {
			return nil, err
		}

		// The lease must be live before a job lands in the pending list.
		if err := q.renewLease(ctx, false); err != nil {
			return nil, err
		}

		for _, p := range priorities {
			payload, err := q.client.RPopLPush(ctx, q.readyKey(p), q.pendingKey()).Result()
			if errors.Is(err, redis.Nil) {
				continue
			}
			if err != nil {
				return nil, storeErr(err, "failed to pop job")
			}

			var job entity.NotificationJob
			if err := json.Unmarshal([]byte(payload), &job); err != nil {
				q.logger.Warn("Removing poison job from pending list", slog.Any("error", err))
				_ = q.client.LRem(ctx, q.pendingKey(), 1, payload)

				continue
			}

			return &job, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(q.pollInterval):
		}
	}
}

// removePending deletes the pending entry of jobID by value.
func (q *RedisQueue) removePending(ctx context.Context, jobID uuid.UUID) (bool, error) {
	payloads, err := q.client.LRange(ctx, q.pendingKey(), 0, -1).Result()
	if err != nil {
		return false, storeErr(err, "failed to read pending list")
	}

	for _, payload := range payloads {
		var job entity.NotificationJob
		if err := json.Unmarshal([]byte(payload), &job); err != nil {
			continue
		}
		if job.ID != jobID {
			continue
		}

		if err := q.client.LRem(ctx, q.pendingKey(), 1, payload).Err(); err != nil {
			return false, storeErr(err, "failed to remove pending job")
		}

		return true, nil
	}

	return false, nil
}

// Ack removes the job from the pending list and forgets its id.
func (q *RedisQueue) Ack(ctx context.Context, jobID uuid.UUID) error {
	found, err := q.removePending(ctx, jobID)
	if err != nil {
		return err
	}
	if !found {
		q.logger.Warn("Ack for job not in pending list", slog.String("jobID", jobID.String()))
	}

	if err := q.client.SRem(ctx, q.knownKey(), jobID.String()).Err(); err != nil {
		return storeErr(err, "failed to forget job id")
	}

	return nil
}

// Requeue moves the job from pending to the delayed set. Capacity does not apply.
// A job that is known but not pending is already queued and is left alone.
func (q *RedisQueue) Requeue(ctx context.Context, job *entity.NotificationJob, delay time.Duration) error {
	removed, err := q.removePending(ctx, job.ID)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "failed to marshal job")
	}

	added, err := q.client.SAdd(ctx, q.knownKey(), job.ID.String()).Result()
	if err != nil {
		return storeErr(err, "failed to register job id")
	}
	if !removed && added == 0 {
		return nil
	}

	score := float64(q.now().Add(delay).UnixMilli())
	if err := q.client.ZAdd(ctx, q.delayedKey(), redis.Z{Score: score, Member: string(payload)}).Err(); err != nil {
		return storeErr(err, "failed to schedule job")
	}

	return nil
}

// Len returns the number of ready and delayed jobs.
func (q *RedisQueue) Len(ctx context.Context) (int, error) {
	var total int64

	for _, p := range priorities {
		n, err := q.client.LLen(ctx, q.readyKey(p)).Result()
		if err != nil {
			return 0, storeErr(err, "failed to read queue length")
		}
		total += n
	}

	n, err := q.client.ZCard(ctx, q.delayedKey()).Result()
	if err != nil {
		return 0, storeErr(err, "failed to read delayed length")
	}

	return int(total + n), nil
}

// renewLease pushes this consumer's lease deadline forward. Unless forced, it
// skips the write while the lease still has more than two thirds to run.
func (q *RedisQueue) renewLease(ctx context.Context, force bool) error {
	now := q.now()
	if !force && now.Sub(time.UnixMilli(q.renewedAt.Load())) < q.leaseTTL/3 {
		return nil
	}

	deadline := float64(now.Add(q.leaseTTL).UnixMilli())
	if err := q.client.ZAdd(ctx, q.consumersKey(), redis.Z{Score: deadline, Member: q.consumer}).Err(); err != nil {
		return storeErr(err, "failed to renew consumer lease")
	}
	q.renewedAt.Store(now.UnixMilli())
	q.leased.Store(true)

	return nil
}

// KeepAlive renews the consumer lease until ctx is done. Processes that
// never dequeue hold no lease and KeepAlive does nothing for them.
func (q *RedisQueue) KeepAlive(ctx context.Context) {
	ticker := time.NewTicker(q.leaseTTL / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !q.leased.Load() {
			continue
		}
		if err := q.renewLease(ctx, true); err != nil && ctx.Err() == nil {
			q.logger.Warn("Failed to renew consumer lease", slog.Any("error", err))
		}
	}
}

// Release drops the consumer lease when nothing is left in flight. A
// non-empty pending list keeps its lease so it is reclaimed after expiry.
func (q *RedisQueue) Release(ctx context.Context) error {
	if !q.leased.Load() {
		return nil
	}

	n, err := q.client.LLen(ctx, q.pendingKey()).Result()
	if err != nil {
		return storeErr(err, "failed to read pending length")
	}
	if n > 0 {
		q.logger.Warn("Leaving in-flight jobs for another consumer to reclaim", slog.Int64("count", n))

		return nil
	}

	if err := q.client.ZRem(ctx, q.consumersKey(), q.consumer).Err(); err != nil {
		return storeErr(err, "failed to release consumer lease")
	}

	return nil
}

// Reclaim moves the pending jobs of consumers whose lease has expired back
// to the head of their ready lists. In-flight jobs of live consumers are
// left alone.
func (q *RedisQueue) Reclaim(ctx context.Context) (int, error) {
	expired, err := q.client.ZRangeByScore(ctx, q.consumersKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(q.now().UnixMilli(), 10),
	}).Result()
	if err != nil {
		return 0, storeErr(err, "failed to read consumer leases")
	}

	reclaimed := 0
	for _, consumer := range expired {
		if consumer == q.consumer {
			continue
		}

		// ZRem decides which pool owns the reclaim.
		removed, err := q.client.ZRem(ctx, q.consumersKey(), consumer).Result()
		if err != nil {
			return reclaimed, storeErr(err, "failed to remove expired lease")
		}
		if removed == 0 {
			continue
		}

		n, err := q.reclaimPending(ctx, consumer)
		reclaimed += n
		if err != nil {
			return reclaimed, err
		}
	}

	if reclaimed > 0 {
		q.logger.Info("Reclaimed in-flight jobs from expired consumers", slog.Int("count", reclaimed))
	}

	return reclaimed, nil
}

func (q *RedisQueue) reclaimPending(ctx context.Context, consumer string) (int, error) {
	key := q.pendingKeyOf(consumer)

	payloads, err := q.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return 0, storeErr(err, "failed to read pending list")
	}

	restored := 0
	// The oldest pending entry is at the tail; restore it last so it is served first.
	for _, payload := range payloads {
		var job entity.NotificationJob
		if err := json.Unmarshal([]byte(payload), &job); err != nil {
			q.logger.Warn("Dropping undecodable pending job", slog.Any("error", err))
			_ = q.client.LRem(ctx, key, 1, payload)

			continue
		}

		if err := q.client.RPush(ctx, q.readyKey(entity.ParsePriority(string(job.Priority))), payload).Err(); err != nil {
			return restored, storeErr(err, "failed to restore pending job")
		}
		if err := q.client.LRem(ctx, key, 1, payload).Err(); err != nil {
			return restored, storeErr(err, "failed to clear pending job")
		}
		restored++
	}

	return restored, nil
}
