package sqlite

import (
	"context"
	"database/sql"

	"github.com/adampetrovic/ttpcount/internal/storage"
)

// Repositories groups the SQLite-backed repositories (here, just the job
// repository) and an optional transaction they share.
type Repositories struct {
	db   *sql.DB
	tx   *sql.Tx
	jobs *JobRepository
}

// NewRepositories creates a new repositories instance.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		db:   db,
		jobs: NewJobRepository(db),
	}
}

// Jobs returns the job repository.
func (r *Repositories) Jobs() storage.JobRepository {
	return r.jobs
}

// BeginTx starts a transaction and returns a new repositories instance
// bound to it.
func (r *Repositories) BeginTx(ctx context.Context) (*Repositories, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		db:   r.db,
		tx:   tx,
		jobs: NewJobRepository(tx),
	}, nil
}

// Commit commits the transaction, if any.
func (r *Repositories) Commit() error {
	if r.tx == nil {
		return nil
	}
	return r.tx.Commit()
}

// Rollback rolls back the transaction, if any.
func (r *Repositories) Rollback() error {
	if r.tx == nil {
		return nil
	}
	return r.tx.Rollback()
}
