package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// JobManager tracks the lifecycle of counting jobs: submit, run
// asynchronously, report progress, and retain the final record. It owns
// no search state past a job's lifetime — only the Job record itself,
// per the "Persisted state: None" invariant on the search proper.
type JobManager struct {
	jobs        map[string]*Job
	mutex       sync.RWMutex
	broadcaster *JobBroadcaster
	onTerminal  func(*Job)
	nextSeq     int
}

// NewJobManager creates an empty job manager. broadcaster may be nil.
func NewJobManager(broadcaster *JobBroadcaster) *JobManager {
	return &JobManager{
		jobs:        make(map[string]*Job),
		broadcaster: broadcaster,
	}
}

// SetTerminalHook installs a callback invoked once, with the job's
// mutex released, whenever a job reaches a terminal status. Used by
// Service to mirror the final record into storage without polling.
func (jm *JobManager) SetTerminalHook(hook func(*Job)) {
	jm.mutex.Lock()
	jm.onTerminal = hook
	jm.mutex.Unlock()
}

// Submit registers a new job for plan and starts it in a goroutine,
// returning its ID immediately. The caller observes progress via
// GetJob or the broadcaster.
func (jm *JobManager) Submit(plan Plan) string {
	jm.mutex.Lock()
	jm.nextSeq++
	jobID := fmt.Sprintf("job_%d_%d", plan.N, jm.nextSeq)
	ctx, cancel := context.WithCancel(context.Background())
	job := &Job{
		ID:         jobID,
		Plan:       plan,
		Status:     JobStatusPending,
		StartedAt:  time.Now(),
		CancelFunc: cancel,
	}
	jm.jobs[jobID] = job
	jm.mutex.Unlock()

	go jm.run(ctx, job)

	return jobID
}

func (jm *JobManager) run(ctx context.Context, job *Job) {
	jm.setStatus(job.ID, JobStatusRunning)

	start := time.Now()
	onProgress := func(p Progress) {
		if jm.broadcaster != nil {
			jm.broadcaster.BroadcastProgress(job.ID, p)
		}
	}

	result, err := Run(ctx, job.Plan, onProgress)

	select {
	case <-ctx.Done():
		jm.setStatus(job.ID, JobStatusCancelled)
		jm.fireTerminalHook(job.ID)
		return
	default:
	}

	completedAt := time.Now()
	jm.mutex.Lock()
	job.CompletedAt = &completedAt
	if err != nil {
		job.Status = JobStatusFailed
		job.Error = err.Error()
	} else {
		job.Status = JobStatusCompleted
		job.Result = &result
	}
	jm.mutex.Unlock()

	if jm.broadcaster != nil {
		if err != nil {
			jm.broadcaster.BroadcastFailed(job.ID, err)
		} else {
			jm.broadcaster.BroadcastCompleted(job.ID, result, completedAt.Sub(start))
		}
	}

	jm.fireTerminalHook(job.ID)
}

func (jm *JobManager) fireTerminalHook(jobID string) {
	jm.mutex.RLock()
	hook := jm.onTerminal
	job, ok := jm.jobs[jobID]
	jm.mutex.RUnlock()
	if hook != nil && ok {
		hook(job)
	}
}

// GetJob returns the job record for id.
func (jm *JobManager) GetJob(id string) (*Job, error) {
	jm.mutex.RLock()
	defer jm.mutex.RUnlock()

	job, ok := jm.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s not found", id)
	}
	return job, nil
}

// CancelJob cancels a pending or running job. Cancelling a job that has
// already reached a terminal status is a no-op, not an error; an unknown
// ID is an error.
func (jm *JobManager) CancelJob(id string) error {
	jm.mutex.Lock()
	defer jm.mutex.Unlock()

	job, ok := jm.jobs[id]
	if !ok {
		return fmt.Errorf("job %s not found", id)
	}
	if job.Status == JobStatusRunning || job.Status == JobStatusPending {
		job.CancelFunc()
		job.Status = JobStatusCancelled
		completedAt := time.Now()
		job.CompletedAt = &completedAt
	}
	return nil
}

// ListJobs returns every job, optionally filtered by status. An empty
// status returns all jobs.
func (jm *JobManager) ListJobs(status JobStatus) []*Job {
	jm.mutex.RLock()
	defer jm.mutex.RUnlock()

	var jobs []*Job
	for _, job := range jm.jobs {
		if status == "" || job.Status == status {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// DeleteJob removes a job record, refusing to remove one still running.
func (jm *JobManager) DeleteJob(id string) error {
	jm.mutex.Lock()
	defer jm.mutex.Unlock()

	job, ok := jm.jobs[id]
	if !ok {
		return fmt.Errorf("job %s not found", id)
	}
	if job.Status == JobStatusRunning || job.Status == JobStatusPending {
		return fmt.Errorf("cannot delete job %s: still %s", id, job.Status)
	}
	delete(jm.jobs, id)
	return nil
}

func (jm *JobManager) setStatus(id string, status JobStatus) {
	jm.mutex.Lock()
	defer jm.mutex.Unlock()
	if job, ok := jm.jobs[id]; ok {
		job.Status = status
	}
}
