package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adampetrovic/ttpcount/internal/api/middleware"
	"github.com/adampetrovic/ttpcount/internal/coordinator"
	"github.com/adampetrovic/ttpcount/internal/storage"
	"github.com/adampetrovic/ttpcount/pkg/types"
)

// JobHandler handles counting-job HTTP requests.
type JobHandler struct {
	service *coordinator.Service
}

// NewJobHandler creates a new job handler.
func NewJobHandler(service *coordinator.Service) *JobHandler {
	return &JobHandler{service: service}
}

// SubmitJob starts a new counting run.
// POST /api/v1/jobs
func (h *JobHandler) SubmitJob(c *gin.Context) {
	var request types.SubmitJobRequest
	if err := middleware.BindAndValidate(c, &request); err != nil {
		c.Error(err)
		return
	}

	plan := coordinator.Plan{
		N:       request.N,
		K:       request.K,
		Max:     request.Max,
		Workers: request.Workers,
		Mode:    coordinator.Mode(request.Mode),
		Optimal: request.Optimal,
	}
	if plan.Max == 0 {
		plan.Max = coordinator.Unbounded
	}
	if plan.Workers == 0 {
		plan.Workers = 1
	}
	if plan.Mode == "" {
		plan.Mode = coordinator.ModeStatic
	}

	jobID, err := h.service.SubmitJob(c.Request.Context(), plan)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "failed to submit job",
			Details: map[string]string{
				"error": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusAccepted, types.SubmitJobResponse{
		JobID:  jobID,
		Status: string(coordinator.JobStatusPending),
	})
}

// GetJob returns a job's current status and, if finished, its result.
// GET /api/v1/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("id")

	job, err := h.service.GetJob(c.Request.Context(), jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error: "job not found",
			Details: map[string]string{
				"job_id": jobID,
			},
		})
		return
	}

	c.JSON(http.StatusOK, jobToResponse(job))
}

// ListJobs returns jobs, optionally filtered by status.
// GET /api/v1/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	status := c.Query("status")

	records, err := h.service.ListJobs(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error: "failed to list jobs",
			Details: map[string]string{
				"error": err.Error(),
			},
		})
		return
	}

	resp := types.JobListResponse{Jobs: make([]types.JobStatusResponse, 0, len(records))}
	for _, record := range records {
		resp.Jobs = append(resp.Jobs, recordToResponse(record))
	}
	c.JSON(http.StatusOK, resp)
}

// CancelJob cancels a running job.
// POST /api/v1/jobs/:id/cancel
func (h *JobHandler) CancelJob(c *gin.Context) {
	jobID := c.Param("id")

	if err := h.service.CancelJob(jobID); err != nil {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error: "failed to cancel job",
			Details: map[string]string{
				"job_id": jobID,
				"error":  err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "job_id": jobID})
}

// DeleteJob removes a job's record.
// DELETE /api/v1/jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID := c.Param("id")

	if err := h.service.DeleteJob(c.Request.Context(), jobID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, storage.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, types.ErrorResponse{
			Error: "failed to delete job",
			Details: map[string]string{
				"job_id": jobID,
				"error":  err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted", "job_id": jobID})
}

// RegisterRoutes registers job routes with the Gin router.
func (h *JobHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/jobs", h.SubmitJob)
	router.GET("/jobs", h.ListJobs)
	router.GET("/jobs/:id", h.GetJob)
	router.POST("/jobs/:id/cancel", h.CancelJob)
	router.DELETE("/jobs/:id", h.DeleteJob)
}

func jobToResponse(job *coordinator.Job) types.JobStatusResponse {
	resp := types.JobStatusResponse{
		JobID:       job.ID,
		N:           job.Plan.N,
		K:           job.Plan.K,
		Max:         job.Plan.Max,
		Workers:     job.Plan.Workers,
		Mode:        string(job.Plan.Mode),
		Optimal:     job.Plan.Optimal,
		Status:      string(job.Status),
		StartedAt:   job.StartedAt,
		CompletedAt: job.CompletedAt,
	}
	if job.Result != nil {
		resp.Total = &job.Result.Total
	}
	if job.Error != "" {
		resp.Error = &job.Error
	}
	return resp
}

func recordToResponse(record *storage.JobRecord) types.JobStatusResponse {
	resp := types.JobStatusResponse{
		JobID:       record.ID,
		N:           record.N,
		K:           record.K,
		Max:         record.Max,
		Workers:     record.Workers,
		Mode:        record.Mode,
		Optimal:     record.Optimal,
		Status:      record.Status,
		StartedAt:   record.StartedAt,
		CompletedAt: record.CompletedAt,
	}
	if record.Status == string(coordinator.JobStatusCompleted) {
		total := record.Total
		resp.Total = &total
	}
	if record.Error != "" {
		resp.Error = &record.Error
	}
	return resp
}
