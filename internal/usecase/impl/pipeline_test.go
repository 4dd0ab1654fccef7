package impl

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"pushrelay/internal/domain/constants"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/infra/persistence/bolt"
	"pushrelay/internal/infra/queue"
	"pushrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGateway fails each token according to its script, then succeeds.
type scriptedGateway struct {
	mu      sync.Mutex
	scripts map[string][]error
	calls   map[string]int
}

func newScriptedGateway(scripts map[string][]error) *scriptedGateway {
	return &scriptedGateway{scripts: scripts, calls: make(map[string]int)}
}

func (g *scriptedGateway) Send(_ context.Context, token string, _ *entity.Message) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.calls[token]
	g.calls[token]++
	if script := g.scripts[token]; n < len(script) && script[n] != nil {
		return "", script[n]
	}

	return "msg-" + token, nil
}

func (g *scriptedGateway) Name() string { return "scripted" }

func (g *scriptedGateway) Calls(token string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.calls[token]
}

// recordingQueue records retry delays and makes retried jobs visible at once.
type recordingQueue struct {
	*queue.MemoryQueue

	mu     sync.Mutex
	delays []time.Duration
}

func (q *recordingQueue) Requeue(ctx context.Context, job *entity.NotificationJob, delay time.Duration) error {
	q.mu.Lock()
	q.delays = append(q.delays, delay)
	q.mu.Unlock()

	return q.MemoryQueue.Requeue(ctx, job, 0)
}

type pipeline struct {
	queue   *recordingQueue
	tokens  usecase.TokenUsecase
	topics  usecase.TopicUsecase
	jobs    usecase.JobUsecase
	process usecase.ProcessUsecase
	store   *bolt.Store
}

func newPipeline(t *testing.T, gateway *scriptedGateway) *pipeline {
	t.Helper()

	store, err := bolt.Open(filepath.Join(t.TempDir(), "pipeline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := newDiscardLogger()
	cfg := newTestConfig()
	q := &recordingQueue{MemoryQueue: queue.NewMemoryQueue(100, constants.QueueFullReject, logger)}

	tokens := NewTokenService(TokenServiceParams{
		TxManager: store.TransactionManager(),
		TokenRepo: store.TokenRepository(),
		Config:    cfg,
		Logger:    logger,
	})
	topics := NewTopicService(store.TopicRepository(), logger)
	receipts := NewReceiptService(store.ReceiptRepository(), store.JobRepository(), logger)
	retry := NewRetryService(RetryServiceParams{
		JobRepo:  store.JobRepository(),
		Queue:    q,
		Receipts: receipts,
		Config:   cfg,
		Logger:   logger,
	})
	dispatcher := NewDispatchService(DispatchServiceParams{
		Tokens:   tokens,
		Topics:   topics,
		Receipts: receipts,
		Gateway:  gateway,
		Config:   cfg,
		Logger:   logger,
	})

	return &pipeline{
		queue:   q,
		tokens:  tokens,
		topics:  topics,
		jobs:    NewJobService(store.JobRepository(), q, receipts, logger),
		process: NewProcessService(store.JobRepository(), q, dispatcher, retry, logger),
		store:   store,
	}
}

// drain processes jobs until the queue stays empty.
func (p *pipeline) drain(t *testing.T) {
	t.Helper()

	for range 50 {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		job, err := p.queue.Dequeue(ctx)
		cancel()
		if err != nil {
			return
		}
		require.NoError(t, p.process.Process(context.Background(), job))
	}
	t.Fatal("queue did not drain")
}

func (p *pipeline) register(t *testing.T, deviceID, token string) {
	t.Helper()

	_, err := p.tokens.Register(context.Background(), &usecase.RegisterTokenInput{DeviceID: deviceID, Token: token, Platform: "android"})
	require.NoError(t, err)
}

func (p *pipeline) submit(t *testing.T, kind, target string) uuid.UUID {
	t.Helper()

	jobID, err := p.jobs.Submit(context.Background(), &usecase.SubmitJobInput{
		Title:      "hello",
		Body:       "world",
		TargetKind: kind,
		Target:     target,
	})
	require.NoError(t, err)

	return jobID
}

func TestPipeline_RateLimitedThenDelivered(t *testing.T) {
	rateLimited := domainerrors.NewTransientDeliveryError("rate limited", nil)
	gateway := newScriptedGateway(map[string][]error{
		"token-a": {rateLimited, rateLimited, rateLimited},
	})
	p := newPipeline(t, gateway)
	p.register(t, "device-1", "token-a")

	jobID := p.submit(t, "device", "device-1")
	p.drain(t)

	status, err := p.jobs.Status(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobDelivered, status.State)
	assert.Equal(t, 4, status.Attempts)
	assert.Equal(t, 1, status.Delivered)
	assert.Equal(t, 4, gateway.Calls("token-a"))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, p.queue.delays)
}

func TestPipeline_ExhaustedRetriesDeadLetter(t *testing.T) {
	unavailable := domainerrors.NewTransientDeliveryError("unavailable", nil)
	gateway := newScriptedGateway(map[string][]error{
		"token-a": {unavailable, unavailable, unavailable, unavailable, unavailable, unavailable},
	})
	p := newPipeline(t, gateway)
	p.register(t, "device-1", "token-a")

	jobID := p.submit(t, "device", "device-1")
	p.drain(t)

	status, err := p.jobs.Status(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobDeadLetter, status.State)
	assert.Equal(t, 5, status.Attempts)
	assert.Equal(t, 5, gateway.Calls("token-a"))
	assert.Len(t, p.queue.delays, 4)

	queued, err := p.queue.Len(context.Background())
	require.NoError(t, err)
	assert.Zero(t, queued)
}

func TestPipeline_TopicRetryDoesNotResendDelivered(t *testing.T) {
	gateway := newScriptedGateway(map[string][]error{
		"token-b": {domainerrors.NewTransientDeliveryError("unavailable", nil)},
	})
	p := newPipeline(t, gateway)
	ctx := context.Background()

	p.register(t, "device-1", "token-a")
	p.register(t, "device-2", "token-b")
	require.NoError(t, p.topics.Subscribe(ctx, "news", "device-1"))
	require.NoError(t, p.topics.Subscribe(ctx, "news", "device-2"))

	jobID := p.submit(t, "topic", "news")
	p.drain(t)

	status, err := p.jobs.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobDelivered, status.State)
	assert.Equal(t, 2, status.Delivered)
	assert.Equal(t, 1, gateway.Calls("token-a"))
	assert.Equal(t, 2, gateway.Calls("token-b"))
}

func TestPipeline_UnregisteredTokenInvalidated(t *testing.T) {
	gateway := newScriptedGateway(map[string][]error{
		"token-old": {domainerrors.NewPermanentDeliveryError("unregistered", nil)},
	})
	p := newPipeline(t, gateway)
	ctx := context.Background()

	p.register(t, "device-1", "token-old")
	p.register(t, "device-1", "token-new")

	jobID := p.submit(t, "device", "device-1")
	p.drain(t)

	status, err := p.jobs.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobDelivered, status.State)
	assert.Equal(t, 1, status.Attempts)
	assert.Empty(t, p.queue.delays)

	old, err := p.store.TokenRepository().FindTokenByValue(ctx, "token-old")
	require.NoError(t, err)
	assert.Equal(t, entity.TokenInvalid, old.Status)

	tokens, err := p.tokens.Lookup(ctx, "device-1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "token-new", tokens[0].Value)

	_, err = p.tokens.Register(ctx, &usecase.RegisterTokenInput{DeviceID: "device-1", Token: "token-old"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalidated)
}

func TestPipeline_CancelStopsRetries(t *testing.T) {
	unavailable := domainerrors.NewTransientDeliveryError("unavailable", nil)
	gateway := newScriptedGateway(map[string][]error{
		"token-a": {unavailable, unavailable, unavailable},
	})
	p := newPipeline(t, gateway)
	ctx := context.Background()
	p.register(t, "device-1", "token-a")

	jobID := p.submit(t, "device", "device-1")

	job, err := p.queue.Dequeue(ctx)
	require.NoError(t, err)
	require.NoError(t, p.process.Process(ctx, job))

	_, err = p.jobs.Cancel(ctx, jobID)
	require.NoError(t, err)
	p.drain(t)

	status, err := p.jobs.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobCancelled, status.State)
	assert.Equal(t, 1, gateway.Calls("token-a"))

	_, err = p.jobs.Cancel(ctx, jobID)
	assert.ErrorIs(t, err, domainerrors.ErrJobAlreadyTerminal)
}

func TestPipeline_RecoverResumesUnfinishedJobs(t *testing.T) {
	gateway := newScriptedGateway(nil)
	p := newPipeline(t, gateway)
	ctx := context.Background()
	p.register(t, "device-1", "token-a")

	jobID := p.submit(t, "device", "device-1")

	// A fresh queue stands in for a restart that lost the in-memory contents.
	p.queue.MemoryQueue = queue.NewMemoryQueue(100, constants.QueueFullReject, newDiscardLogger())

	recovered, err := p.jobs.Recover(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	p.drain(t)

	status, err := p.jobs.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobDelivered, status.State)
}
