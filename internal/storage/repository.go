package storage

import (
	"context"
	"errors"
	"time"
)

// Common errors
var (
	ErrNotFound = errors.New("not found")
)

// JobRecord is the persisted record of one counting run: its plan, its
// final outcome, and timestamps. It is bookkeeping, not search state —
// a completed or failed job can be inspected and listed, never resumed.
type JobRecord struct {
	ID          string
	N           int
	K           int
	Max         int64
	Workers     int
	Mode        string
	Optimal     bool
	Status      string
	Total       int64
	PerRankJSON string // JSON-encoded []coordinator.RankResult, opaque to storage
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// JobRepository defines methods for job record storage.
type JobRepository interface {
	Create(ctx context.Context, job *JobRecord) error
	Get(ctx context.Context, id string) (*JobRecord, error)
	List(ctx context.Context, status string) ([]*JobRecord, error)
	Update(ctx context.Context, job *JobRecord) error
	Delete(ctx context.Context, id string) error
}
