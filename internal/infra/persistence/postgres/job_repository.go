package postgres

import (
	"context"
	"encoding/json"

	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jobRepository implements the repository.JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// CreateJob persists a new job.
func (repo *jobRepository) CreateJob(ctx context.Context, job *entity.NotificationJob) error {
	jobM, err := fromJobDomain(job)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		return storeError(err, "failed to create job")
	}

	return nil
}

// FindJobByID retrieves a job by its id.
func (repo *jobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*entity.NotificationJob, error) {
	var jobM model.NotificationJobModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, storeError(err, "failed to find job by ID")
	}

	return toJobDomain(&jobM)
}

// UpdateJob persists the mutable bookkeeping of a job.
func (repo *jobRepository) UpdateJob(ctx context.Context, job *entity.NotificationJob) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationJobModel{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"state":           string(job.State),
			"attempts":        job.Attempts,
			"next_attempt_at": job.NextAttemptAt,
			"last_error":      job.LastError,
			"updated_at":      job.UpdatedAt,
		})

	if result.Error != nil {
		return storeError(result.Error, "failed to update job")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// RequestCancel flags the job for cooperative cancellation.
func (repo *jobRepository) RequestCancel(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationJobModel{}).
		Where("id = ?", id).
		Update("cancel_requested", true)

	if result.Error != nil {
		return storeError(result.Error, "failed to request job cancellation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// FindJobsByState lists jobs in any of the states, oldest first.
func (repo *jobRepository) FindJobsByState(ctx context.Context, states []entity.JobState, limit, offset int) ([]*entity.NotificationJob, error) {
	var jobModels []*model.NotificationJobModel

	query := repo.db.WithContext(ctx).
		Where("state IN ?", stateStrings(states)).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&jobModels).Error; err != nil {
		return nil, storeError(err, "failed to find jobs by state")
	}

	jobs := make([]*entity.NotificationJob, 0, len(jobModels))
	for _, jobM := range jobModels {
		job, err := toJobDomain(jobM)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// CountJobsByState counts jobs in any of the states.
func (repo *jobRepository) CountJobsByState(ctx context.Context, states []entity.JobState) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationJobModel{}).
		Where("state IN ?", stateStrings(states)).
		Count(&count).Error; err != nil {
		return 0, storeError(err, "failed to count jobs by state")
	}

	return count, nil
}

// receiptRepository implements the repository.ReceiptRepository interface.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository is the constructor for receiptRepository.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// CreateAttempt appends a delivery attempt record.
func (repo *receiptRepository) CreateAttempt(ctx context.Context, attempt *entity.DeliveryAttempt) error {
	if err := repo.db.WithContext(ctx).Create(fromAttemptDomain(attempt)).Error; err != nil {
		return storeError(err, "failed to create delivery attempt")
	}

	return nil
}

// FindAttemptsByJob returns every attempt of a job in creation order.
func (repo *receiptRepository) FindAttemptsByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.DeliveryAttempt, error) {
	var attemptModels []*model.DeliveryAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&attemptModels).Error; err != nil {
		return nil, storeError(err, "failed to find delivery attempts")
	}

	attempts := make([]*entity.DeliveryAttempt, 0, len(attemptModels))
	for _, attemptM := range attemptModels {
		attempts = append(attempts, toAttemptDomain(attemptM))
	}

	return attempts, nil
}

// HasAttemptInState reports whether the (job, token) pair has an attempt in state.
func (repo *receiptRepository) HasAttemptInState(ctx context.Context, jobID uuid.UUID, token string, state entity.AttemptState) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryAttemptModel{}).
		Where("job_id = ? AND token = ? AND state = ?", jobID, token, string(state)).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, storeError(err, "failed to check delivery attempt")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func stateStrings(states []entity.JobState) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, string(s))
	}

	return out
}

// toJobDomain converts a GORM NotificationJobModel to a domain NotificationJob entity.
func toJobDomain(data *model.NotificationJobModel) (*entity.NotificationJob, error) {
	var payloadData map[string]string
	if len(data.Data) > 0 {
		if err := json.Unmarshal(data.Data, &payloadData); err != nil {
			return nil, errors.Wrap(err, "failed to decode job data")
		}
	}

	return &entity.NotificationJob{
		ID: data.ID,
		Payload: entity.Payload{
			Title: data.Title,
			Body:  data.Body,
			Data:  payloadData,
		},
		Target: entity.Target{
			Kind:  entity.TargetKind(data.TargetKind),
			Value: data.TargetValue,
		},
		Priority:        entity.Priority(data.Priority),
		State:           entity.JobState(data.State),
		Attempts:        data.Attempts,
		NextAttemptAt:   data.NextAttemptAt,
		LastError:       data.LastError,
		CancelRequested: data.CancelRequested,
		RequestID:       data.RequestID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

// fromJobDomain converts a domain NotificationJob entity to a GORM NotificationJobModel.
func fromJobDomain(data *entity.NotificationJob) (*model.NotificationJobModel, error) {
	var raw []byte
	if len(data.Payload.Data) > 0 {
		encoded, err := json.Marshal(data.Payload.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode job data")
		}
		raw = encoded
	}

	return &model.NotificationJobModel{
		ID:              data.ID,
		Title:           data.Payload.Title,
		Body:            data.Payload.Body,
		Data:            raw,
		TargetKind:      string(data.Target.Kind),
		TargetValue:     data.Target.Value,
		Priority:        string(data.Priority),
		State:           string(data.State),
		Attempts:        data.Attempts,
		NextAttemptAt:   data.NextAttemptAt,
		LastError:       data.LastError,
		CancelRequested: data.CancelRequested,
		RequestID:       data.RequestID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

// toAttemptDomain converts a GORM DeliveryAttemptModel to a domain DeliveryAttempt entity.
func toAttemptDomain(data *model.DeliveryAttemptModel) *entity.DeliveryAttempt {
	return &entity.DeliveryAttempt{
		ID:        data.ID,
		JobID:     data.JobID,
		Token:     data.Token,
		DeviceID:  data.DeviceID,
		State:     entity.AttemptState(data.State),
		Attempt:   data.Attempt,
		Reason:    data.Reason,
		MessageID: data.MessageID,
		CreatedAt: data.CreatedAt,
	}
}

// fromAttemptDomain converts a domain DeliveryAttempt entity to a GORM DeliveryAttemptModel.
func fromAttemptDomain(data *entity.DeliveryAttempt) *model.DeliveryAttemptModel {
	return &model.DeliveryAttemptModel{
		ID:        data.ID,
		JobID:     data.JobID,
		Token:     data.Token,
		DeviceID:  data.DeviceID,
		State:     string(data.State),
		Attempt:   data.Attempt,
		Reason:    data.Reason,
		MessageID: data.MessageID,
		CreatedAt: data.CreatedAt,
	}
}
