package handler

import (
	"net/http"
	"testing"

	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	mockUsecase "pushrelay/internal/mocks/usecase"
	"pushrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestJobHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockJobUsecase) {
	jobUC := mockUsecase.NewMockJobUsecase(t)
	h := NewJobHandler(JobHandlerParams{JobUC: jobUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/v1/jobs", h.SubmitJob)
	e.GET("/v1/jobs/:id", h.GetJob)
	e.POST("/v1/jobs/:id/cancel", h.CancelJob)

	return e, jobUC
}

func TestJobHandler_SubmitJob(t *testing.T) {
	e, jobUC := createTestJobHandler(t)
	jobID := uuid.New()

	jobUC.EXPECT().
		Submit(mock.Anything, mock.MatchedBy(func(input *usecase.SubmitJobInput) bool {
			return input.TargetKind == "topic" && input.Target == "news" && input.Data["k"] == "v"
		})).
		Return(jobID, nil)

	rec := doRequest(e, http.MethodPost, "/v1/jobs",
		`{"title":"Hi","body":"There","data":{"k":"v"},"target_kind":"topic","target":"news"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	var body SubmitJobResponse
	decodeData(t, rec, &body)
	assert.Equal(t, jobID, body.JobID)
}

func TestJobHandler_SubmitJob_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(jobUC *mockUsecase.MockJobUsecase)
		wantCode int
		wantErr  string
	}{
		{
			name:     "malformed body",
			body:     `[`,
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_INPUT",
		},
		{
			name:     "unknown target kind",
			body:     `{"target_kind":"email","target":"a@b.c"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "missing target",
			body:     `{"target_kind":"device"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "unknown priority",
			body:     `{"target_kind":"device","target":"device-1","priority":"urgent"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name: "queue full",
			body: `{"target_kind":"device","target":"device-1"}`,
			setup: func(jobUC *mockUsecase.MockJobUsecase) {
				jobUC.EXPECT().Submit(mock.Anything, mock.Anything).Return(uuid.Nil, domainerrors.ErrQueueFull)
			},
			wantCode: http.StatusTooManyRequests,
			wantErr:  "QUEUE_FULL",
		},
		{
			name: "blank target",
			body: `{"target_kind":"device","target":"  "}`,
			setup: func(jobUC *mockUsecase.MockJobUsecase) {
				jobUC.EXPECT().Submit(mock.Anything, mock.Anything).Return(uuid.Nil, domainerrors.ErrInvalidTarget)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_TARGET",
		},
		{
			name: "reserved data key",
			body: `{"target_kind":"device","target":"device-1","data":{"from":"shop"}}`,
			setup: func(jobUC *mockUsecase.MockJobUsecase) {
				jobUC.EXPECT().Submit(mock.Anything, mock.Anything).
					Return(uuid.Nil, domainerrors.ErrInvalidPayload.WithDetails(`data key "from" is reserved`))
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_PAYLOAD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, jobUC := createTestJobHandler(t)
			if tt.setup != nil {
				tt.setup(jobUC)
			}

			rec := doRequest(e, http.MethodPost, "/v1/jobs", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)

			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestJobHandler_GetJob(t *testing.T) {
	e, jobUC := createTestJobHandler(t)
	jobID := uuid.New()

	jobUC.EXPECT().Status(mock.Anything, jobID).Return(&entity.JobStatus{
		JobID:     jobID,
		State:     entity.JobDelivered,
		Delivered: 2,
	}, nil)

	rec := doRequest(e, http.MethodGet, "/v1/jobs/"+jobID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var status entity.JobStatus
	decodeData(t, rec, &status)
	assert.Equal(t, jobID, status.JobID)
	assert.Equal(t, entity.JobDelivered, status.State)
	assert.Equal(t, 2, status.Delivered)
}

func TestJobHandler_GetJob_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		e, _ := createTestJobHandler(t)

		rec := doRequest(e, http.MethodGet, "/v1/jobs/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("unknown job", func(t *testing.T) {
		e, jobUC := createTestJobHandler(t)
		jobID := uuid.New()
		jobUC.EXPECT().Status(mock.Anything, jobID).Return(nil, domainerrors.ErrJobNotFound)

		rec := doRequest(e, http.MethodGet, "/v1/jobs/"+jobID.String(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "JOB_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestJobHandler_CancelJob(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		e, jobUC := createTestJobHandler(t)
		jobID := uuid.New()
		jobUC.EXPECT().Cancel(mock.Anything, jobID).Return(&entity.NotificationJob{
			ID:              jobID,
			State:           entity.JobRetrying,
			CancelRequested: true,
		}, nil)

		rec := doRequest(e, http.MethodPost, "/v1/jobs/"+jobID.String()+"/cancel", "")
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("already terminal", func(t *testing.T) {
		e, jobUC := createTestJobHandler(t)
		jobID := uuid.New()
		jobUC.EXPECT().Cancel(mock.Anything, jobID).Return(nil, domainerrors.ErrJobAlreadyTerminal)

		rec := doRequest(e, http.MethodPost, "/v1/jobs/"+jobID.String()+"/cancel", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "JOB_ALREADY_TERMINAL", decodeEnvelope(t, rec).Error.Code)
	})
}
