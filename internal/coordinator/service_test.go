package coordinator

import (
	"context"
	"sync"
	"testing"

	"github.com/adampetrovic/ttpcount/internal/storage"
)

// fakeJobRepository is an in-memory storage.JobRepository for exercising
// Service without a real database.
type fakeJobRepository struct {
	mutex   sync.Mutex
	records map[string]*storage.JobRecord
}

func newFakeJobRepository() *fakeJobRepository {
	return &fakeJobRepository{records: make(map[string]*storage.JobRecord)}
}

func (f *fakeJobRepository) Create(_ context.Context, job *storage.JobRecord) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	cp := *job
	f.records[job.ID] = &cp
	return nil
}

func (f *fakeJobRepository) Get(_ context.Context, id string) (*storage.JobRecord, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	record, ok := f.records[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *record
	return &cp, nil
}

func (f *fakeJobRepository) List(_ context.Context, status string) ([]*storage.JobRecord, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	var out []*storage.JobRecord
	for _, record := range f.records {
		if status == "" || record.Status == status {
			cp := *record
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeJobRepository) Update(_ context.Context, job *storage.JobRecord) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if _, ok := f.records[job.ID]; !ok {
		return storage.ErrNotFound
	}
	cp := *job
	f.records[job.ID] = &cp
	return nil
}

func (f *fakeJobRepository) Delete(_ context.Context, id string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if _, ok := f.records[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func TestService_SubmitJobPersistsInitialRecord(t *testing.T) {
	repo := newFakeJobRepository()
	svc := NewService(repo, nil)

	jobID, err := svc.SubmitJob(context.Background(), Plan{N: 4, K: 1, Max: 1 << 30, Workers: 1, Mode: ModeStatic})
	if err != nil {
		t.Fatalf("SubmitJob error: %v", err)
	}

	record, err := repo.Get(context.Background(), jobID)
	if err != nil {
		t.Fatalf("repo.Get error: %v", err)
	}
	if record.N != 4 {
		t.Errorf("record.N = %d, want 4", record.N)
	}
}

func TestService_TerminalHookUpdatesStorage(t *testing.T) {
	repo := newFakeJobRepository()
	svc := NewService(repo, nil)

	jobID, err := svc.SubmitJob(context.Background(), Plan{N: 4, K: 1, Max: 1 << 30, Workers: 1, Mode: ModeStatic})
	if err != nil {
		t.Fatalf("SubmitJob error: %v", err)
	}

	waitForTerminal(t, svc.jobManager, jobID)

	record, err := repo.Get(context.Background(), jobID)
	if err != nil {
		t.Fatalf("repo.Get error: %v", err)
	}
	if record.Status != string(JobStatusCompleted) {
		t.Errorf("persisted record status = %s, want %s", record.Status, JobStatusCompleted)
	}
	if record.Total <= 0 {
		t.Errorf("persisted record Total = %d, want > 0", record.Total)
	}
}

func TestService_GetJobFallsBackToStorage(t *testing.T) {
	repo := newFakeJobRepository()
	svc := NewService(repo, nil)

	jobID, err := svc.SubmitJob(context.Background(), Plan{N: 4, K: 1, Max: 1 << 30, Workers: 1, Mode: ModeStatic})
	if err != nil {
		t.Fatalf("SubmitJob error: %v", err)
	}
	waitForTerminal(t, svc.jobManager, jobID)

	// Simulate a fresh process: the in-memory job manager has lost the
	// job, but the repository still has it.
	svc.jobManager = NewJobManager(nil)

	job, err := svc.GetJob(context.Background(), jobID)
	if err != nil {
		t.Fatalf("GetJob error: %v", err)
	}
	if job.Status != JobStatusCompleted {
		t.Errorf("job.Status = %s, want completed", job.Status)
	}
}

func TestService_GetJobUnknownID(t *testing.T) {
	repo := newFakeJobRepository()
	svc := NewService(repo, nil)

	if _, err := svc.GetJob(context.Background(), "does-not-exist"); err == nil {
		t.Error("expected error for unknown job ID")
	}
}

func TestService_DeleteJobRemovesRecord(t *testing.T) {
	repo := newFakeJobRepository()
	svc := NewService(repo, nil)

	jobID, err := svc.SubmitJob(context.Background(), Plan{N: 4, K: 1, Max: 1 << 30, Workers: 1, Mode: ModeStatic})
	if err != nil {
		t.Fatalf("SubmitJob error: %v", err)
	}
	waitForTerminal(t, svc.jobManager, jobID)

	if err := svc.DeleteJob(context.Background(), jobID); err != nil {
		t.Fatalf("DeleteJob error: %v", err)
	}
	if _, err := repo.Get(context.Background(), jobID); err == nil {
		t.Error("expected repository record to be gone after DeleteJob")
	}
}

func TestService_ListJobsReturnsPersistedRecords(t *testing.T) {
	repo := newFakeJobRepository()
	svc := NewService(repo, nil)

	jobID, err := svc.SubmitJob(context.Background(), Plan{N: 4, K: 1, Max: 1 << 30, Workers: 1, Mode: ModeStatic})
	if err != nil {
		t.Fatalf("SubmitJob error: %v", err)
	}
	waitForTerminal(t, svc.jobManager, jobID)

	records, err := svc.ListJobs(context.Background(), "")
	if err != nil {
		t.Fatalf("ListJobs error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("ListJobs returned %d records, want 1", len(records))
	}
	if records[0].ID != jobID {
		t.Errorf("ListJobs returned job %s, want %s", records[0].ID, jobID)
	}
}
