package bolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"slices"
	"sort"

	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/errors"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

type jobRepository struct {
	runner
}

func putJob(tx *bolt.Tx, job *entity.NotificationJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}

	return tx.Bucket(bucketJobs).Put(job.ID[:], payload)
}

// CreateJob persists a new job.
func (repo *jobRepository) CreateJob(ctx context.Context, job *entity.NotificationJob) error {
	return repo.update(ctx, func(tx *bolt.Tx) error {
		if tx.Bucket(bucketJobs).Get(job.ID[:]) != nil {
			return errors.Errorf("job %s already exists", job.ID)
		}

		return putJob(tx, job)
	})
}

// FindJobByID retrieves a job by its id.
func (repo *jobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*entity.NotificationJob, error) {
	var job *entity.NotificationJob

	err := repo.view(ctx, func(tx *bolt.Tx) error {
		found, err := getJob(tx, id)
		job = found

		return err
	})
	if err != nil {
		return nil, err
	}

	return job, nil
}

func getJob(tx *bolt.Tx, id uuid.UUID) (*entity.NotificationJob, error) {
	raw := tx.Bucket(bucketJobs).Get(id[:])
	if raw == nil {
		return nil, repository.ErrJobNotFound
	}

	job := new(entity.NotificationJob)
	if err := json.Unmarshal(raw, job); err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateJob persists the mutable bookkeeping of a job.
func (repo *jobRepository) UpdateJob(ctx context.Context, job *entity.NotificationJob) error {
	return repo.update(ctx, func(tx *bolt.Tx) error {
		prev, err := getJob(tx, job.ID)
		if err != nil {
			return err
		}

		stored := *job
		stored.CancelRequested = job.CancelRequested || prev.CancelRequested

		return putJob(tx, &stored)
	})
}

// RequestCancel flags the job for cooperative cancellation.
func (repo *jobRepository) RequestCancel(ctx context.Context, id uuid.UUID) error {
	return repo.update(ctx, func(tx *bolt.Tx) error {
		job, err := getJob(tx, id)
		if err != nil {
			return err
		}
		job.CancelRequested = true

		return putJob(tx, job)
	})
}

func (repo *jobRepository) scan(ctx context.Context, states []entity.JobState) ([]*entity.NotificationJob, error) {
	var jobs []*entity.NotificationJob

	err := repo.view(ctx, func(tx *bolt.Tx) error {
		return tx.Bucket(bucketJobs).ForEach(func(_, v []byte) error {
			var job entity.NotificationJob
			if err := json.Unmarshal(v, &job); err != nil {
				return err
			}
			if slices.Contains(states, job.State) {
				jobs = append(jobs, &job)
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return jobs, nil
}

// FindJobsByState lists jobs in any of the states, oldest first.
func (repo *jobRepository) FindJobsByState(ctx context.Context, states []entity.JobState, limit, offset int) ([]*entity.NotificationJob, error) {
	jobs, err := repo.scan(ctx, states)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
	})

	if limit <= 0 {
		return jobs, nil
	}
	if offset >= len(jobs) {
		return []*entity.NotificationJob{}, nil
	}

	end := min(offset+limit, len(jobs))

	return jobs[offset:end], nil
}

// CountJobsByState counts jobs in any of the states.
func (repo *jobRepository) CountJobsByState(ctx context.Context, states []entity.JobState) (int64, error) {
	jobs, err := repo.scan(ctx, states)
	if err != nil {
		return 0, err
	}

	return int64(len(jobs)), nil
}

type receiptRepository struct {
	runner
}

// attemptKey is the job id followed by a big-endian bucket sequence, so a
// prefix scan yields the attempts of a job in creation order.
func attemptKey(jobID uuid.UUID, seq uint64) []byte {
	key := make([]byte, len(jobID)+8)
	copy(key, jobID[:])
	binary.BigEndian.PutUint64(key[len(jobID):], seq)

	return key
}

func (repo *receiptRepository) forEachAttempt(tx *bolt.Tx, jobID uuid.UUID, fn func(*entity.DeliveryAttempt) error) error {
	prefix := jobID[:]
	cursor := tx.Bucket(bucketAttempts).Cursor()
	for k, v := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cursor.Next() {
		var attempt entity.DeliveryAttempt
		if err := json.Unmarshal(v, &attempt); err != nil {
			return err
		}
		if err := fn(&attempt); err != nil {
			return err
		}
	}

	return nil
}

// CreateAttempt appends a delivery attempt record.
func (repo *receiptRepository) CreateAttempt(ctx context.Context, attempt *entity.DeliveryAttempt) error {
	return repo.update(ctx, func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketAttempts)
		seq, err := bkt.NextSequence()
		if err != nil {
			return err
		}

		payload, err := json.Marshal(attempt)
		if err != nil {
			return err
		}

		return bkt.Put(attemptKey(attempt.JobID, seq), payload)
	})
}

// FindAttemptsByJob returns every attempt of a job in creation order.
func (repo *receiptRepository) FindAttemptsByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.DeliveryAttempt, error) {
	attempts := []*entity.DeliveryAttempt{}

	err := repo.view(ctx, func(tx *bolt.Tx) error {
		return repo.forEachAttempt(tx, jobID, func(attempt *entity.DeliveryAttempt) error {
			attempts = append(attempts, attempt)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return attempts, nil
}

// HasAttemptInState reports whether the (job, token) pair has an attempt in state.
func (repo *receiptRepository) HasAttemptInState(ctx context.Context, jobID uuid.UUID, token string, state entity.AttemptState) (bool, error) {
	found := false

	err := repo.view(ctx, func(tx *bolt.Tx) error {
		err := repo.forEachAttempt(tx, jobID, func(attempt *entity.DeliveryAttempt) error {
			if attempt.Token == token && attempt.State == state {
				found = true

				return errStop
			}

			return nil
		})
		if errors.Is(err, errStop) {
			return nil
		}

		return err
	})
	if err != nil {
		return false, err
	}

	return found, nil
}
