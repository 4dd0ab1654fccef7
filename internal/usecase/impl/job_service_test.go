package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	mockRepo "pushrelay/internal/mocks/repository"
	mockSvc "pushrelay/internal/mocks/service"
	mockUsecase "pushrelay/internal/mocks/usecase"
	"pushrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type jobServiceFixtures struct {
	service  *jobService
	jobRepo  *mockRepo.MockJobRepository
	queue    *mockSvc.MockDeliveryQueue
	receipts *mockUsecase.MockReceiptUsecase
}

func createTestJobService(t *testing.T) jobServiceFixtures {
	jobRepo := mockRepo.NewMockJobRepository(t)
	queue := mockSvc.NewMockDeliveryQueue(t)
	receipts := mockUsecase.NewMockReceiptUsecase(t)

	srv := NewJobService(jobRepo, queue, receipts, newDiscardLogger()).(*jobService)
	srv.now = func() time.Time { return fixedNow }

	return jobServiceFixtures{
		service:  srv,
		jobRepo:  jobRepo,
		queue:    queue,
		receipts: receipts,
	}
}

func TestJobService_Submit(t *testing.T) {
	fx := createTestJobService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")

	input := &usecase.SubmitJobInput{
		Title:      "Order ready",
		Body:       "Your order is ready for pickup",
		Data:       map[string]string{"order_id": "42"},
		TargetKind: "device",
		Target:     " device-1 ",
		Priority:   "high",
	}

	var created *entity.NotificationJob
	fx.jobRepo.EXPECT().
		CreateJob(ctx, mock.AnythingOfType("*entity.NotificationJob")).
		Run(func(_ context.Context, job *entity.NotificationJob) { created = job }).
		Return(nil)
	fx.queue.EXPECT().
		Enqueue(ctx, mock.AnythingOfType("*entity.NotificationJob")).
		RunAndReturn(func(_ context.Context, job *entity.NotificationJob) (uuid.UUID, error) { return job.ID, nil })

	jobID, err := fx.service.Submit(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, created.ID, jobID)
	assert.Equal(t, entity.JobPending, created.State)
	assert.Equal(t, entity.Target{Kind: entity.TargetDevice, Value: "device-1"}, created.Target)
	assert.Equal(t, entity.PriorityHigh, created.Priority)
	assert.Equal(t, "req-123", created.RequestID)
	assert.Equal(t, "42", created.Payload.Data["order_id"])
	assert.Equal(t, fixedNow, created.CreatedAt)
}

func TestJobService_Submit_DefaultsPriority(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	fx.jobRepo.EXPECT().
		CreateJob(ctx, mock.MatchedBy(func(job *entity.NotificationJob) bool {
			return job.Priority == entity.PriorityNormal && job.Target.Kind == entity.TargetTopic
		})).
		Return(nil)
	fx.queue.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.NotificationJob")).Return(uuid.New(), nil)

	_, err := fx.service.Submit(ctx, &usecase.SubmitJobInput{TargetKind: "topic", Target: "news"})
	require.NoError(t, err)
}

func TestJobService_Status_DelegatesToReceipts(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	jobID := uuid.New()

	expected := &entity.JobStatus{JobID: jobID, State: entity.JobDelivered, Delivered: 1}
	fx.receipts.EXPECT().Status(ctx, jobID).Return(expected, nil)

	status, err := fx.service.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Same(t, expected, status)
}

func TestJobService_Cancel(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	job := newTestJob(entity.TargetDevice, "device-1")
	job.State = entity.JobRetrying

	fx.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	fx.jobRepo.EXPECT().RequestCancel(ctx, job.ID).Return(nil)

	cancelled, err := fx.service.Cancel(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.CancelRequested)
	assert.Equal(t, entity.JobRetrying, cancelled.State)
}

func TestJobService_Recover(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	pending := newTestJob(entity.TargetDevice, "device-1")
	inFlight := newTestJob(entity.TargetDevice, "device-2")
	inFlight.State = entity.JobInFlight

	waiting := newTestJob(entity.TargetDevice, "device-3")
	waiting.State = entity.JobRetrying
	nextAttempt := fixedNow.Add(3 * time.Second)
	waiting.NextAttemptAt = &nextAttempt

	due := newTestJob(entity.TargetDevice, "device-4")
	due.State = entity.JobRetrying
	past := fixedNow.Add(-time.Second)
	due.NextAttemptAt = &past

	fx.jobRepo.EXPECT().
		FindJobsByState(ctx, []entity.JobState{entity.JobPending, entity.JobInFlight, entity.JobRetrying}, 0, 0).
		Return([]*entity.NotificationJob{pending, inFlight, waiting, due}, nil)
	fx.queue.EXPECT().Enqueue(ctx, pending).Return(pending.ID, nil)
	fx.queue.EXPECT().Enqueue(ctx, inFlight).Return(inFlight.ID, nil)
	fx.queue.EXPECT().Requeue(ctx, waiting, 3*time.Second).Return(nil)
	fx.queue.EXPECT().Enqueue(ctx, due).Return(due.ID, nil)

	recovered, err := fx.service.Recover(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, recovered)
}

func TestJobService_Recover_StopsOnQueueError(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	first := newTestJob(entity.TargetDevice, "device-1")
	second := newTestJob(entity.TargetDevice, "device-2")

	fx.jobRepo.EXPECT().
		FindJobsByState(ctx, mock.Anything, 0, 0).
		Return([]*entity.NotificationJob{first, second}, nil)
	fx.queue.EXPECT().Enqueue(ctx, first).Return(first.ID, nil)
	fx.queue.EXPECT().Enqueue(ctx, second).Return(uuid.Nil, domainerrors.ErrQueueFull)

	recovered, err := fx.service.Recover(ctx)
	assert.Equal(t, 1, recovered)
	assert.ErrorIs(t, err, domainerrors.ErrQueueFull)
}
