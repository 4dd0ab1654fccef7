package impl

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"
	mockRepo "pushrelay/internal/mocks/repository"
	mockSvc "pushrelay/internal/mocks/service"
	mockUsecase "pushrelay/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type retryServiceFixtures struct {
	service   *retryService
	jobRepo   *mockRepo.MockJobRepository
	queue     *mockSvc.MockDeliveryQueue
	receipts  *mockUsecase.MockReceiptUsecase
	publisher *mockSvc.MockEventPublisher
}

func createTestRetryService(t *testing.T) retryServiceFixtures {
	jobRepo := mockRepo.NewMockJobRepository(t)
	queue := mockSvc.NewMockDeliveryQueue(t)
	receipts := mockUsecase.NewMockReceiptUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewRetryService(RetryServiceParams{
		JobRepo:   jobRepo,
		Queue:     queue,
		Receipts:  receipts,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*retryService)
	srv.now = func() time.Time { return fixedNow }

	return retryServiceFixtures{
		service:   srv,
		jobRepo:   jobRepo,
		queue:     queue,
		receipts:  receipts,
		publisher: publisher,
	}
}

func statusWith(job *entity.NotificationJob, delivered, failed, pending int) *entity.JobStatus {
	status := &entity.JobStatus{JobID: job.ID, State: job.State, Delivered: delivered, Failed: failed, Pending: pending}
	for range delivered + failed + pending {
		status.Recipients = append(status.Recipients, &entity.RecipientStatus{})
	}

	return status
}

func (fx retryServiceFixtures) expectFinish(t *testing.T, job *entity.NotificationJob, state entity.JobState) {
	t.Helper()

	fx.jobRepo.EXPECT().
		UpdateJob(mock.Anything, mock.MatchedBy(func(j *entity.NotificationJob) bool {
			return j.ID == job.ID && j.State == state && j.NextAttemptAt == nil
		})).
		Return(nil).Once()
	fx.queue.EXPECT().Ack(mock.Anything, job.ID).Return(nil).Once()
	fx.publisher.EXPECT().
		PublishJobEvent(mock.Anything, mock.MatchedBy(func(e *service.JobEvent) bool {
			return e.JobID == job.ID.String() && e.State == string(state)
		})).
		Return(nil).Once()
}

func TestRetryService_Backoff_WithoutJitter(t *testing.T) {
	fx := createTestRetryService(t)

	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 8 * time.Second, 8 * time.Second}
	for retry, expected := range want {
		assert.Equal(t, expected, fx.service.Backoff(retry), "retry %d", retry)
	}
	assert.Equal(t, time.Second, fx.service.Backoff(-1))
}

func TestRetryService_Backoff_JitterBoundedAndNonDecreasing(t *testing.T) {
	fx := createTestRetryService(t)
	fx.service.jitterFactor = 0.5

	tests := []struct {
		name   string
		jitter func() float64
	}{
		{name: "no jitter drawn", jitter: func() float64 { return 0 }},
		{name: "max jitter drawn", jitter: func() float64 { return 0.999999 }},
		{name: "random jitter", jitter: rand.New(rand.NewPCG(1, 2)).Float64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.service.jitter = tt.jitter

			previous := time.Duration(0)
			for retry := range 12 {
				unjittered := min(time.Second<<retry, 8*time.Second)
				delay := fx.service.Backoff(retry)

				assert.GreaterOrEqual(t, delay, unjittered)
				assert.LessOrEqual(t, delay, 8*time.Second)
				assert.GreaterOrEqual(t, delay, previous)
				previous = delay
			}
		})
	}
}

func TestRetryService_Settle_DeviceDelivered(t *testing.T) {
	fx := createTestRetryService(t)
	ctx := context.Background()

	job := newTestJob(entity.TargetDevice, "device-1")
	job.Attempts = 1
	job.State = entity.JobInFlight
	attempts := []*entity.DeliveryAttempt{
		newAttempt(job.ID, "device-1", "token-a", 1, entity.AttemptDelivered, ""),
		newAttempt(job.ID, "device-1", "token-b", 1, entity.AttemptTransientFailure, "unavailable"),
	}

	fx.receipts.EXPECT().Status(ctx, job.ID).Return(statusWith(job, 1, 0, 1), nil)
	fx.expectFinish(t, job, entity.JobDelivered)

	state, err := fx.service.Settle(ctx, job, attempts)
	require.NoError(t, err)
	assert.Equal(t, entity.JobDelivered, state)
	assert.Equal(t, entity.JobDelivered, job.State)
}

func TestRetryService_Settle_TransientRequeuesWithBackoff(t *testing.T) {
	fx := createTestRetryService(t)
	ctx := context.Background()

	job := newTestJob(entity.TargetDevice, "device-1")
	job.Attempts = 2
	job.State = entity.JobInFlight
	attempts := []*entity.DeliveryAttempt{
		newAttempt(job.ID, "device-1", "token-a", 2, entity.AttemptTransientFailure, "rate limited"),
	}

	fx.receipts.EXPECT().Status(ctx, job.ID).Return(statusWith(job, 0, 0, 1), nil)
	fx.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(newTestJob(entity.TargetDevice, "device-1"), nil)
	fx.jobRepo.EXPECT().
		UpdateJob(ctx, mock.MatchedBy(func(j *entity.NotificationJob) bool {
			return j.State == entity.JobRetrying && j.LastError == "rate limited" &&
				j.NextAttemptAt != nil && j.NextAttemptAt.Equal(fixedNow.Add(2*time.Second))
		})).
		Return(nil)
	fx.queue.EXPECT().Requeue(ctx, job, 2*time.Second).Return(nil)

	state, err := fx.service.Settle(ctx, job, attempts)
	require.NoError(t, err)
	assert.Equal(t, entity.JobRetrying, state)
	fx.queue.AssertNotCalled(t, "Ack", mock.Anything, mock.Anything)
}

func TestRetryService_Settle_RetryAfterRaisesDelay(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter []time.Duration
		wantDelay  time.Duration
	}{
		{name: "below backoff", retryAfter: []time.Duration{500 * time.Millisecond}, wantDelay: time.Second},
		{name: "longest wins", retryAfter: []time.Duration{3 * time.Second, 5 * time.Second}, wantDelay: 5 * time.Second},
		{name: "bounded by cap", retryAfter: []time.Duration{time.Minute}, wantDelay: 8 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRetryService(t)
			ctx := context.Background()

			job := newTestJob(entity.TargetTopic, "news")
			job.Attempts = 1
			job.State = entity.JobInFlight

			var attempts []*entity.DeliveryAttempt
			for i, wait := range tt.retryAfter {
				attempt := newAttempt(job.ID, "device-1", fmt.Sprintf("token-%d", i), 1, entity.AttemptTransientFailure, "rate_limited")
				attempt.RetryAfter = wait
				attempts = append(attempts, attempt)
			}

			fx.receipts.EXPECT().Status(ctx, job.ID).Return(statusWith(job, 0, 0, len(attempts)), nil)
			fx.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(newTestJob(entity.TargetTopic, "news"), nil)
			fx.jobRepo.EXPECT().
				UpdateJob(ctx, mock.MatchedBy(func(j *entity.NotificationJob) bool {
					return j.NextAttemptAt != nil && j.NextAttemptAt.Equal(fixedNow.Add(tt.wantDelay))
				})).
				Return(nil)
			fx.queue.EXPECT().Requeue(ctx, job, tt.wantDelay).Return(nil)

			state, err := fx.service.Settle(ctx, job, attempts)
			require.NoError(t, err)
			assert.Equal(t, entity.JobRetrying, state)
		})
	}
}

func TestRetryService_Settle_ExhaustedDeadLetters(t *testing.T) {
	fx := createTestRetryService(t)
	ctx := context.Background()

	job := newTestJob(entity.TargetDevice, "device-1")
	job.Attempts = 5
	attempts := []*entity.DeliveryAttempt{
		newAttempt(job.ID, "device-1", "token-a", 5, entity.AttemptTransientFailure, "unavailable"),
	}

	fx.receipts.EXPECT().Status(ctx, job.ID).Return(statusWith(job, 0, 0, 1), nil)
	fx.expectFinish(t, job, entity.JobDeadLetter)

	state, err := fx.service.Settle(ctx, job, attempts)
	require.NoError(t, err)
	assert.Equal(t, entity.JobDeadLetter, state)
	assert.Contains(t, job.LastError, "unavailable")
	fx.queue.AssertNotCalled(t, "Requeue", mock.Anything, mock.Anything, mock.Anything)
}

func TestRetryService_Settle_PermanentOnlyFails(t *testing.T) {
	fx := createTestRetryService(t)
	ctx := context.Background()

	job := newTestJob(entity.TargetDevice, "device-1")
	job.Attempts = 1
	attempts := []*entity.DeliveryAttempt{
		newAttempt(job.ID, "device-1", "token-a", 1, entity.AttemptPermanentFailure, "unregistered"),
	}

	fx.receipts.EXPECT().Status(ctx, job.ID).Return(statusWith(job, 0, 1, 0), nil)
	fx.expectFinish(t, job, entity.JobFailed)

	state, err := fx.service.Settle(ctx, job, attempts)
	require.NoError(t, err)
	assert.Equal(t, entity.JobFailed, state)
	assert.Equal(t, "unregistered", job.LastError)
}

func TestRetryService_Settle_TopicOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		attempts  func(job *entity.NotificationJob) []*entity.DeliveryAttempt
		status    func(job *entity.NotificationJob) *entity.JobStatus
		wantState entity.JobState
		wantError string
	}{
		{
			name:      "no subscribers",
			attempts:  func(*entity.NotificationJob) []*entity.DeliveryAttempt { return nil },
			status:    func(job *entity.NotificationJob) *entity.JobStatus { return statusWith(job, 0, 0, 0) },
			wantState: entity.JobFailed,
			wantError: reasonNoRecipients,
		},
		{
			name: "all terminal with one success",
			attempts: func(job *entity.NotificationJob) []*entity.DeliveryAttempt {
				return []*entity.DeliveryAttempt{
					newAttempt(job.ID, "device-1", "token-a", 1, entity.AttemptDelivered, ""),
					newAttempt(job.ID, "device-2", "token-b", 1, entity.AttemptPermanentFailure, "unregistered"),
				}
			},
			status:    func(job *entity.NotificationJob) *entity.JobStatus { return statusWith(job, 1, 1, 0) },
			wantState: entity.JobDelivered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRetryService(t)
			ctx := context.Background()

			job := newTestJob(entity.TargetTopic, "news")
			job.Attempts = 1

			fx.receipts.EXPECT().Status(ctx, job.ID).Return(tt.status(job), nil)
			fx.expectFinish(t, job, tt.wantState)

			state, err := fx.service.Settle(ctx, job, tt.attempts(job))
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, state)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, job.LastError)
			}
		})
	}
}

func TestRetryService_Settle_TopicWithTransientKeepsRetrying(t *testing.T) {
	fx := createTestRetryService(t)
	ctx := context.Background()

	job := newTestJob(entity.TargetTopic, "news")
	job.Attempts = 1
	attempts := []*entity.DeliveryAttempt{
		newAttempt(job.ID, "device-1", "token-a", 1, entity.AttemptDelivered, ""),
		newAttempt(job.ID, "device-2", "token-b", 1, entity.AttemptTransientFailure, "unavailable"),
	}

	fx.receipts.EXPECT().Status(ctx, job.ID).Return(statusWith(job, 1, 0, 1), nil)
	fx.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(newTestJob(entity.TargetTopic, "news"), nil)
	fx.jobRepo.EXPECT().UpdateJob(ctx, job).Return(nil)
	fx.queue.EXPECT().Requeue(ctx, job, time.Second).Return(nil)

	state, err := fx.service.Settle(ctx, job, attempts)
	require.NoError(t, err)
	assert.Equal(t, entity.JobRetrying, state)
}

func TestRetryService_Retry_CancelRequestedStopsRetries(t *testing.T) {
	fx := createTestRetryService(t)
	ctx := context.Background()

	job := newTestJob(entity.TargetDevice, "device-1")
	job.Attempts = 1

	stored := *job
	stored.CancelRequested = true

	fx.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(&stored, nil)
	fx.receipts.EXPECT().Status(ctx, job.ID).Return(statusWith(job, 0, 0, 1), nil)
	fx.expectFinish(t, job, entity.JobCancelled)

	state, err := fx.service.Retry(ctx, job, domainerrors.NewTransientDeliveryError("unavailable", nil))
	require.NoError(t, err)
	assert.Equal(t, entity.JobCancelled, state)
	fx.queue.AssertNotCalled(t, "Requeue", mock.Anything, mock.Anything, mock.Anything)
}

func TestRetryService_RateLimitedThreeTimesThenDelivered(t *testing.T) {
	fx := createTestRetryService(t)
	fx.service.jitterFactor = 0.25
	fx.service.jitter = rand.New(rand.NewPCG(7, 11)).Float64
	ctx := context.Background()

	job := newTestJob(entity.TargetDevice, "device-1")

	var delays []time.Duration
	fx.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(newTestJob(entity.TargetDevice, "device-1"), nil).Times(3)
	fx.jobRepo.EXPECT().
		UpdateJob(ctx, mock.MatchedBy(func(j *entity.NotificationJob) bool { return j.State == entity.JobRetrying })).
		Return(nil).Times(3)
	fx.queue.EXPECT().
		Requeue(ctx, job, mock.AnythingOfType("time.Duration")).
		Run(func(_ context.Context, _ *entity.NotificationJob, delay time.Duration) {
			delays = append(delays, delay)
		}).
		Return(nil).Times(3)

	for round := 1; round <= 3; round++ {
		job.Attempts = round
		attempts := []*entity.DeliveryAttempt{
			newAttempt(job.ID, "device-1", "token-a", round, entity.AttemptTransientFailure, "rate limited"),
		}
		fx.receipts.EXPECT().Status(ctx, job.ID).Return(statusWith(job, 0, 0, 1), nil).Once()

		state, err := fx.service.Settle(ctx, job, attempts)
		require.NoError(t, err)
		require.Equal(t, entity.JobRetrying, state)
	}

	job.Attempts = 4
	fx.receipts.EXPECT().Status(ctx, job.ID).Return(statusWith(job, 1, 0, 0), nil).Times(2)
	fx.expectFinish(t, job, entity.JobDelivered)

	state, err := fx.service.Settle(ctx, job, []*entity.DeliveryAttempt{
		newAttempt(job.ID, "device-1", "token-a", 4, entity.AttemptDelivered, ""),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.JobDelivered, state)

	require.Len(t, delays, 3)
	for i, base := range []time.Duration{time.Second, 2 * time.Second, 4 * time.Second} {
		assert.GreaterOrEqual(t, delays[i], base)
		assert.Less(t, delays[i], base+base/4+time.Nanosecond)
	}
}

func TestRetryService_Finish_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestRetryService(t)
	ctx := context.Background()

	job := newTestJob(entity.TargetDevice, "device-1")

	fx.jobRepo.EXPECT().UpdateJob(ctx, job).Return(nil)
	fx.queue.EXPECT().Ack(ctx, job.ID).Return(nil)
	fx.receipts.EXPECT().Status(ctx, job.ID).Return(nil, errors.New("receipts down"))
	fx.publisher.EXPECT().PublishJobEvent(ctx, mock.AnythingOfType("*service.JobEvent")).Return(errors.New("pubsub down"))

	require.NoError(t, fx.service.Finish(ctx, job, entity.JobFailed, "boom"))
	assert.Equal(t, entity.JobFailed, job.State)
	assert.Equal(t, "boom", job.LastError)
}

func TestRetryService_Finish_UpdateError(t *testing.T) {
	fx := createTestRetryService(t)
	ctx := context.Background()

	job := newTestJob(entity.TargetDevice, "device-1")
	fx.jobRepo.EXPECT().UpdateJob(ctx, job).Return(domainerrors.NewStoreUnavailableError("postgres", errors.New("down")))

	err := fx.service.Finish(ctx, job, entity.JobDelivered, "")
	assert.True(t, domainerrors.IsStoreUnavailable(err))
	fx.queue.AssertNotCalled(t, "Ack", mock.Anything, mock.Anything)
}
