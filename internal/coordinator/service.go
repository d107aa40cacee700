package coordinator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adampetrovic/ttpcount/internal/storage"
)

// Service ties the in-memory JobManager to persistent storage: a job's
// JobRecord is written when the job is submitted and overwritten when it
// reaches a terminal status (the running transition is not written), and
// the record survives process restarts even though the in-flight search
// itself never does.
type Service struct {
	repo       storage.JobRepository
	jobManager *JobManager
}

// NewService creates a coordinator service backed by repo. broadcaster
// may be nil.
func NewService(repo storage.JobRepository, broadcaster *JobBroadcaster) *Service {
	s := &Service{
		repo:       repo,
		jobManager: NewJobManager(broadcaster),
	}
	s.jobManager.SetTerminalHook(func(job *Job) {
		// Best-effort: a storage failure here leaves the in-memory job
		// intact, only its durability is affected.
		_ = s.repo.Update(context.Background(), jobRecordFromJob(job))
	})
	return s
}

// SubmitJob starts a new counting run for plan, persists its initial
// record, and returns its ID immediately.
func (s *Service) SubmitJob(ctx context.Context, plan Plan) (string, error) {
	jobID := s.jobManager.Submit(plan)

	job, err := s.jobManager.GetJob(jobID)
	if err != nil {
		return "", fmt.Errorf("fetching submitted job: %w", err)
	}

	record := jobRecordFromJob(job)
	if err := s.repo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("persisting job record: %w", err)
	}

	return jobID, nil
}

// GetJob returns the live in-memory job if present, falling back to the
// persisted record for jobs from a previous process.
func (s *Service) GetJob(ctx context.Context, jobID string) (*Job, error) {
	if job, err := s.jobManager.GetJob(jobID); err == nil {
		return job, nil
	}
	record, err := s.repo.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return jobFromRecord(record), nil
}

// CancelJob cancels a running job.
func (s *Service) CancelJob(jobID string) error {
	return s.jobManager.CancelJob(jobID)
}

// ListJobs returns persisted job records, optionally filtered by status.
func (s *Service) ListJobs(ctx context.Context, status string) ([]*storage.JobRecord, error) {
	return s.repo.List(ctx, status)
}

// DeleteJob removes a job's in-memory entry (if any) and its persisted
// record. A job that is still pending or running keeps its in-memory
// entry; only its persisted record is removed.
func (s *Service) DeleteJob(ctx context.Context, jobID string) error {
	_ = s.jobManager.DeleteJob(jobID)
	return s.repo.Delete(ctx, jobID)
}

func jobRecordFromJob(job *Job) *storage.JobRecord {
	record := &storage.JobRecord{
		ID:        job.ID,
		N:         job.Plan.N,
		K:         job.Plan.K,
		Max:       job.Plan.Max,
		Workers:   job.Plan.Workers,
		Mode:      string(job.Plan.Mode),
		Optimal:   job.Plan.Optimal,
		Status:    string(job.Status),
		Error:     job.Error,
		StartedAt: job.StartedAt,
	}
	if job.Result != nil {
		record.Total = job.Result.Total
		if encoded, err := json.Marshal(job.Result.PerRank); err == nil {
			record.PerRankJSON = string(encoded)
		}
	}
	record.CompletedAt = job.CompletedAt
	return record
}

func jobFromRecord(record *storage.JobRecord) *Job {
	job := &Job{
		ID: record.ID,
		Plan: Plan{
			N:       record.N,
			K:       record.K,
			Max:     record.Max,
			Workers: record.Workers,
			Mode:    Mode(record.Mode),
			Optimal: record.Optimal,
		},
		Status:      JobStatus(record.Status),
		Error:       record.Error,
		StartedAt:   record.StartedAt,
		CompletedAt: record.CompletedAt,
	}
	var perRank []RankResult
	if record.PerRankJSON != "" {
		_ = json.Unmarshal([]byte(record.PerRankJSON), &perRank)
	}
	if record.Total != 0 || len(perRank) > 0 {
		job.Result = &Result{Total: record.Total, PerRank: perRank}
	}
	return job
}
