package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adampetrovic/ttpcount/internal/storage"
)

// JobRepository implements storage.JobRepository using SQLite.
type JobRepository struct {
	db DBExecutor
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db DBExecutor) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job record.
func (r *JobRepository) Create(ctx context.Context, job *storage.JobRecord) error {
	query := `
		INSERT INTO jobs (id, n, k, max_count, workers, mode, optimal, status, total, per_rank_json, error, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.N, job.K, job.Max, job.Workers, job.Mode, job.Optimal,
		job.Status, job.Total, job.PerRankJSON, job.Error, job.StartedAt, job.CompletedAt)
	if err != nil {
		return fmt.Errorf("creating job: %w", err)
	}
	return nil
}

// Get retrieves a job record by ID.
func (r *JobRepository) Get(ctx context.Context, id string) (*storage.JobRecord, error) {
	query := `
		SELECT id, n, k, max_count, workers, mode, optimal, status, total, per_rank_json, error, started_at, completed_at
		FROM jobs
		WHERE id = ?
	`
	job := &storage.JobRecord{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.N, &job.K, &job.Max, &job.Workers, &job.Mode, &job.Optimal,
		&job.Status, &job.Total, &job.PerRankJSON, &job.Error, &job.StartedAt, &job.CompletedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return job, nil
}

// List returns job records, optionally filtered by status. An empty
// status returns every record, most recent first.
func (r *JobRepository) List(ctx context.Context, status string) ([]*storage.JobRecord, error) {
	query := `
		SELECT id, n, k, max_count, workers, mode, optimal, status, total, per_rank_json, error, started_at, completed_at
		FROM jobs
	`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY started_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*storage.JobRecord
	for rows.Next() {
		job := &storage.JobRecord{}
		if err := rows.Scan(
			&job.ID, &job.N, &job.K, &job.Max, &job.Workers, &job.Mode, &job.Optimal,
			&job.Status, &job.Total, &job.PerRankJSON, &job.Error, &job.StartedAt, &job.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}
	return jobs, nil
}

// Update overwrites a job record's mutable fields.
func (r *JobRepository) Update(ctx context.Context, job *storage.JobRecord) error {
	query := `
		UPDATE jobs
		SET status = ?, total = ?, per_rank_json = ?, error = ?, completed_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		job.Status, job.Total, job.PerRankJSON, job.Error, job.CompletedAt, job.ID)
	if err != nil {
		return fmt.Errorf("updating job: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes a job record.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}
