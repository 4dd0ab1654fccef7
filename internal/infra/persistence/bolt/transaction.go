package bolt

import (
	"context"

	"pushrelay/internal/domain/repository"

	bolt "go.etcd.io/bbolt"
)

type boltTransactionManager struct {
	db *bolt.DB
}

type boltRepositoryFactory struct {
	tx *bolt.Tx
}

// NewDeviceRepository creates a device repository bound to the transaction.
func (f *boltRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return &deviceRepository{runner: runner{tx: f.tx}}
}

// NewTokenRepository creates a token repository bound to the transaction.
func (f *boltRepositoryFactory) NewTokenRepository() repository.TokenRepository {
	return &tokenRepository{runner: runner{tx: f.tx}}
}

// NewJobRepository creates a job repository bound to the transaction.
func (f *boltRepositoryFactory) NewJobRepository() repository.JobRepository {
	return &jobRepository{runner: runner{tx: f.tx}}
}

// TransactionManager returns a repository.TransactionManager on this store.
// bbolt serializes writers, so Execute blocks while another update runs.
func (s *Store) TransactionManager() repository.TransactionManager {
	return &boltTransactionManager{db: s.db}
}

// Execute runs fn in one read-write transaction. Returning an error rolls back.
func (tm *boltTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var fnErr error
	err := tm.db.Update(func(tx *bolt.Tx) error {
		fnErr = fn(&boltRepositoryFactory{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return classify(err)
}
