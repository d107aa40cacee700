package coordinator

import (
	"context"
	"time"
)

// JobStatus represents the status of a counting job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
	JobStatusFailed    JobStatus = "failed"
)

// Job represents one submitted counting run: a Plan, its status, and — once
// finished — its Result. The job record is bookkeeping metadata, not
// resumable search state: per §6/§7 the search itself persists nothing.
type Job struct {
	ID          string
	Plan        Plan
	Status      JobStatus
	Result      *Result
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
	CancelFunc  context.CancelFunc `json:"-"`
}
