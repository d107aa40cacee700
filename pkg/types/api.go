package types

import (
	"time"
)

// SubmitJobRequest is the body of a job submission. K and Max are
// optional: zero means "let the coordinator pick its default".
type SubmitJobRequest struct {
	N       int    `json:"n" validate:"required,min=2,max=64"`
	K       int    `json:"k" validate:"omitempty,min=0"`
	Max     int64  `json:"max" validate:"omitempty,min=0"`
	Workers int    `json:"workers" validate:"omitempty,min=1,max=256"`
	Mode    string `json:"mode" validate:"omitempty,oneof=static dynamic"`
	Optimal bool   `json:"optimal"`
}

// SubmitJobResponse is returned immediately after a job is accepted.
type SubmitJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// JobStatusResponse describes a job's current state.
type JobStatusResponse struct {
	JobID       string     `json:"job_id"`
	N           int        `json:"n"`
	K           int        `json:"k"`
	Max         int64      `json:"max"`
	Workers     int        `json:"workers"`
	Mode        string     `json:"mode"`
	Optimal     bool       `json:"optimal"`
	Status      string     `json:"status"`
	Total       *int64     `json:"total,omitempty"`
	Error       *string    `json:"error,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// JobListResponse wraps a filtered list of jobs.
type JobListResponse struct {
	Jobs []JobStatusResponse `json:"jobs"`
}

// Generic API response types
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}
