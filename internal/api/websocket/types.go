package websocket

import "time"

// Message types for job events.
const (
	JobProgress  = "job_progress"
	JobCompleted = "job_completed"
	JobFailed    = "job_failed"

	SystemStatus = "system_status"
	ClientCount  = "client_count"
)

// JobProgressData is the payload for JobProgress events.
type JobProgressData struct {
	JobID     string    `json:"job_id"`
	Rank      int       `json:"rank"`
	Local     int64     `json:"local"`
	TaskIndex int       `json:"task_index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobCompletedData is the payload for JobCompleted events.
type JobCompletedData struct {
	JobID       string        `json:"job_id"`
	CompletedAt time.Time     `json:"completed_at"`
	Duration    time.Duration `json:"duration"`
	Total       int64         `json:"total"`
	TaskCount   int           `json:"task_count"`
}

// JobFailedData is the payload for JobFailed events.
type JobFailedData struct {
	JobID    string    `json:"job_id"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failed_at"`
}

// ClientCountData is the payload for ClientCount events.
type ClientCountData struct {
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}
